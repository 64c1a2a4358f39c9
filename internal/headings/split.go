package headings

import (
	"strings"

	"github.com/lawrence-dass/coop-ready/internal/types"
)

// SplitSections builds a ParsedResume from raw resume text by cutting it at
// recognized heading lines. Text above the first heading becomes the contact
// block. Sections without a SectionType, such as Certifications, go to Other.
// It reports false when the text has no recognizable heading.
func SplitSections(text string) (types.ParsedResume, bool) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	found := Scan(text)
	if len(found) == 0 {
		return types.ParsedResume{}, false
	}

	var (
		pr    types.ParsedResume
		other []string
	)
	pr.Contact = strings.TrimSpace(strings.Join(lines[:found[0].Line], "\n"))

	for i, h := range found {
		end := len(lines)
		if i+1 < len(found) {
			end = found[i+1].Line
		}
		body := strings.TrimSpace(strings.Join(lines[h.Line+1:end], "\n"))
		if body == "" {
			continue
		}

		switch h.Section {
		case types.SectionSummary:
			pr.Summary = joinBlock(pr.Summary, body)
		case types.SectionSkills:
			pr.Skills = append(pr.Skills, nonEmptyLines(body)...)
		case types.SectionExperience:
			pr.Experience = append(pr.Experience, types.ExperienceEntry{Description: body})
		case types.SectionEducation:
			pr.Education = append(pr.Education, types.EducationEntry{Details: body})
		case types.SectionProjects:
			pr.Projects = joinBlock(pr.Projects, body)
		default:
			other = append(other, h.Text+"\n"+body)
		}
	}
	pr.Other = strings.Join(other, "\n\n")
	return pr, true
}

func joinBlock(existing, body string) string {
	if existing == "" {
		return body
	}
	return existing + "\n\n" + body
}

func nonEmptyLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			out = append(out, t)
		}
	}
	return out
}
