// Package structure checks resume section order and headings against North
// American conventions for each candidate type.
package structure

import (
	"github.com/lawrence-dass/coop-ready/internal/headings"
	"github.com/lawrence-dass/coop-ready/internal/types"
)

// Input is everything the structural rules look at
type Input struct {
	CandidateType types.CandidateType `json:"candidateType"`
	ParsedResume  types.ParsedResume  `json:"parsedResume"`
	// SectionOrder is the order sections appear in the resume. When empty it is
	// detected from heading lines in RawResumeText.
	SectionOrder  []types.SectionType `json:"sectionOrder,omitempty"`
	RawResumeText string              `json:"rawResumeText,omitempty"`
}

// rule inspects a resume and reports a suggestion when it is violated
type rule func(r *resume) (types.StructuralSuggestion, bool)

// resume is the evaluated view of an Input shared by all rules
type resume struct {
	in       Input
	order    []types.SectionType
	headings []headings.Heading
}

func newResume(in Input) *resume {
	r := &resume{in: in, headings: headings.Scan(in.RawResumeText)}
	if len(in.SectionOrder) > 0 {
		r.order = dedupeOrder(in.SectionOrder)
	} else {
		r.order = orderFromHeadings(r.headings)
	}
	return r
}

// position returns the index of st in the section order, or -1
func (r *resume) position(st types.SectionType) int {
	for i, s := range r.order {
		if s == st {
			return i
		}
	}
	return -1
}

// before reports whether both sections are present and a comes first
func (r *resume) before(a, b types.SectionType) bool {
	pa, pb := r.position(a), r.position(b)
	return pa >= 0 && pb >= 0 && pa < pb
}

// ruleSetFor returns the rules specific to a candidate type
func ruleSetFor(ct types.CandidateType) []rule {
	switch ct {
	case types.CandidateCoop:
		return coopRules()
	case types.CandidateCareerChanger:
		return careerChangerRules()
	case types.CandidateFulltime:
		return fulltimeRules()
	default:
		return nil
	}
}

// GenerateStructuralSuggestions evaluates the candidate type's rules and the
// universal heading rule. Each violation yields its own suggestion; rule sets
// run in a fixed order so the output is deterministic.
func GenerateStructuralSuggestions(in Input) []types.StructuralSuggestion {
	r := newResume(in)

	out := []types.StructuralSuggestion{}
	for _, check := range ruleSetFor(in.CandidateType) {
		if s, ok := check(r); ok {
			out = append(out, s)
		}
	}
	return append(out, nonStandardHeadings(r)...)
}

// DetectSectionOrder lists sections in the order their heading lines appear.
// Non-standard alias headings count; sections without a SectionType do not.
func DetectSectionOrder(rawText string) []types.SectionType {
	return orderFromHeadings(headings.Scan(rawText))
}

func orderFromHeadings(hs []headings.Heading) []types.SectionType {
	order := []types.SectionType{}
	seen := make(map[types.SectionType]bool)
	for _, h := range hs {
		if h.Section == "" || seen[h.Section] {
			continue
		}
		seen[h.Section] = true
		order = append(order, h.Section)
	}
	return order
}

func dedupeOrder(in []types.SectionType) []types.SectionType {
	out := make([]types.SectionType, 0, len(in))
	seen := make(map[types.SectionType]bool)
	for _, st := range in {
		if seen[st] {
			continue
		}
		seen[st] = true
		out = append(out, st)
	}
	return out
}
