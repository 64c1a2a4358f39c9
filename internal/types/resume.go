// Package types provides type definitions for structured data used throughout the coop-ready system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// SectionType identifies a resume section
type SectionType string

// Known resume sections
const (
	SectionSummary    SectionType = "summary"
	SectionSkills     SectionType = "skills"
	SectionExperience SectionType = "experience"
	SectionEducation  SectionType = "education"
	SectionProjects   SectionType = "projects"
	SectionFormat     SectionType = "format"
)

// AllSectionTypes lists every section type in canonical order
var AllSectionTypes = []SectionType{
	SectionSummary,
	SectionSkills,
	SectionExperience,
	SectionEducation,
	SectionProjects,
	SectionFormat,
}

// ParseSectionType converts a string to a SectionType, reporting whether it is known
func ParseSectionType(raw string) (SectionType, bool) {
	candidate := SectionType(strings.ToLower(strings.TrimSpace(raw)))
	for _, st := range AllSectionTypes {
		if st == candidate {
			return st, true
		}
	}
	return "", false
}

// ExperienceEntry is one job in the experience section
type ExperienceEntry struct {
	Title       string   `json:"title,omitempty"`
	Company     string   `json:"company,omitempty"`
	Dates       string   `json:"dates,omitempty"`
	Description string   `json:"description,omitempty"` // Free text, used when bullets were not split out
	Bullets     []string `json:"bullets,omitempty"`
}

// EducationEntry is one line of education history
type EducationEntry struct {
	Institution string `json:"institution,omitempty"`
	Degree      string `json:"degree,omitempty"`
	Dates       string `json:"dates,omitempty"`
	Details     string `json:"details,omitempty"`
}

// ParsedResume is the structured breakdown produced by the resume text extractor.
// Every field is optional; an empty value means the section was not found.
type ParsedResume struct {
	Contact    string            `json:"contact,omitempty"`
	Summary    string            `json:"summary,omitempty"`
	Skills     []string          `json:"skills,omitempty"`
	Experience []ExperienceEntry `json:"experience,omitempty"`
	Education  []EducationEntry  `json:"education,omitempty"`
	Projects   string            `json:"projects,omitempty"`
	Other      string            `json:"other,omitempty"`
}

// IsEmpty reports whether no section carries any text
func (p ParsedResume) IsEmpty() bool {
	s := p.Sections()
	return strings.TrimSpace(p.Contact+p.Other+s.Summary+s.Skills+s.Experience+s.Education+s.Projects) == ""
}

// Sections flattens the parsed resume into per-section text
func (p ParsedResume) Sections() ParsedSections {
	var exp []string
	for _, e := range p.Experience {
		parts := []string{e.Title, e.Company, e.Dates, e.Description}
		parts = append(parts, e.Bullets...)
		exp = append(exp, joinNonEmpty(parts, "\n"))
	}

	var edu []string
	for _, e := range p.Education {
		edu = append(edu, joinNonEmpty([]string{e.Degree, e.Institution, e.Dates, e.Details}, "\n"))
	}

	return ParsedSections{
		Summary:    strings.TrimSpace(p.Summary),
		Skills:     joinNonEmpty(p.Skills, "\n"),
		Experience: joinNonEmpty(exp, "\n\n"),
		Education:  joinNonEmpty(edu, "\n\n"),
		Projects:   strings.TrimSpace(p.Projects),
	}
}

// ParsedSections holds the text of each resume section keyed by type.
// A section the extractor did not return is an empty string.
type ParsedSections struct {
	Summary    string `json:"summary,omitempty"`
	Skills     string `json:"skills,omitempty"`
	Experience string `json:"experience,omitempty"`
	Education  string `json:"education,omitempty"`
	Projects   string `json:"projects,omitempty"`
}

// Resume rebuilds a ParsedResume from section text. Skills are split per line and
// experience and education become a single free-text entry each.
func (s ParsedSections) Resume() ParsedResume {
	pr := ParsedResume{
		Summary:  strings.TrimSpace(s.Summary),
		Projects: strings.TrimSpace(s.Projects),
	}
	for _, line := range strings.Split(s.Skills, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			pr.Skills = append(pr.Skills, t)
		}
	}
	if t := strings.TrimSpace(s.Experience); t != "" {
		pr.Experience = []ExperienceEntry{{Description: t}}
	}
	if t := strings.TrimSpace(s.Education); t != "" {
		pr.Education = []EducationEntry{{Details: t}}
	}
	return pr
}

// SectionText is a section's type paired with its text
type SectionText struct {
	Type SectionType
	Text string
}

// Ordered returns the sections in a fixed search order. Empty sections are included.
func (s ParsedSections) Ordered() []SectionText {
	return []SectionText{
		{Type: SectionSummary, Text: s.Summary},
		{Type: SectionSkills, Text: s.Skills},
		{Type: SectionExperience, Text: s.Experience},
		{Type: SectionProjects, Text: s.Projects},
		{Type: SectionEducation, Text: s.Education},
	}
}

// Text returns the text for one section type
func (s ParsedSections) Text(st SectionType) string {
	switch st {
	case SectionSummary:
		return s.Summary
	case SectionSkills:
		return s.Skills
	case SectionExperience:
		return s.Experience
	case SectionEducation:
		return s.Education
	case SectionProjects:
		return s.Projects
	default:
		return ""
	}
}

// Combined joins every non-empty section
func (s ParsedSections) Combined() string {
	var parts []string
	for _, sec := range s.Ordered() {
		parts = append(parts, sec.Text)
	}
	return joinNonEmpty(parts, "\n\n")
}

func joinNonEmpty(parts []string, sep string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			kept = append(kept, t)
		}
	}
	return strings.Join(kept, sep)
}
