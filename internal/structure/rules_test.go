package structure

import (
	"testing"

	"github.com/lawrence-dass/coop-ready/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const coopAllViolations = `Jane Doe
jane@example.com

Summary
Motivated and passionate student seeking an opportunity to grow.

Experience
Barista, Blue Bottle
- Served customers

Education
BSc Computer Science

Projects
- Built a chess engine in Go

Skills
Go, Python`

const coopCompliant = `Jane Doe

Summary
Second-year computer science student targeting backend co-op roles using Go and PostgreSQL

Skills
Go, PostgreSQL, Docker

Education
BSc Computer Science

Project Experience
- Built a chess engine in Go

Experience
Barista, Blue Bottle`

func ids(suggestions []types.StructuralSuggestion) []string {
	out := []string{}
	for _, s := range suggestions {
		out = append(out, s.ID)
	}
	return out
}

func TestGenerateStructuralSuggestions_CoopAllRulesFire(t *testing.T) {
	got := GenerateStructuralSuggestions(Input{
		CandidateType: types.CandidateCoop,
		ParsedResume: types.ParsedResume{
			Summary:  "Motivated and passionate student seeking an opportunity to grow.",
			Projects: "Built a chess engine in Go",
		},
		RawResumeText: coopAllViolations,
	})

	assert.GreaterOrEqual(t, len(got), 4)
	assert.ElementsMatch(t, []string{
		RuleCoopExperienceBeforeEducation,
		RuleCoopSkillsNotAtTop,
		RuleCoopGenericSummary,
		RuleCoopProjectsHeading,
	}, ids(got))

	byID := make(map[string]types.StructuralSuggestion)
	for _, s := range got {
		byID[s.ID] = s
	}
	assert.Equal(t, types.PriorityHigh, byID[RuleCoopExperienceBeforeEducation].Priority)
	assert.Equal(t, types.PriorityCritical, byID[RuleCoopSkillsNotAtTop].Priority)
	assert.Equal(t, types.PriorityHigh, byID[RuleCoopGenericSummary].Priority)
	assert.Equal(t, types.PriorityModerate, byID[RuleCoopProjectsHeading].Priority)
	assert.Equal(t, types.SuggestionSectionHeading, byID[RuleCoopProjectsHeading].Category)
	assert.Contains(t, byID[RuleCoopProjectsHeading].CurrentState, "Projects")
	assert.Contains(t, byID[RuleCoopGenericSummary].CurrentState, "Motivated")
}

func TestGenerateStructuralSuggestions_CoopCompliant(t *testing.T) {
	got := GenerateStructuralSuggestions(Input{
		CandidateType: types.CandidateCoop,
		ParsedResume: types.ParsedResume{
			Summary:  "Second-year computer science student targeting backend co-op roles using Go and PostgreSQL",
			Projects: "Built a chess engine in Go",
		},
		RawResumeText: coopCompliant,
	})
	assert.Empty(t, got)
}

func TestGenerateStructuralSuggestions_CoopRulesIndependently(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want []string
	}{
		{
			name: "missing skills section",
			in: Input{
				CandidateType: types.CandidateCoop,
				SectionOrder:  []types.SectionType{types.SectionSummary, types.SectionEducation},
			},
			want: []string{RuleCoopSkillsNotAtTop},
		},
		{
			name: "unknown order skips order rules",
			in:   Input{CandidateType: types.CandidateCoop},
			want: []string{},
		},
		{
			name: "projects heading needs raw text",
			in: Input{
				CandidateType: types.CandidateCoop,
				ParsedResume:  types.ParsedResume{Projects: "Chess engine"},
				SectionOrder:  []types.SectionType{types.SectionSkills, types.SectionProjects},
			},
			want: []string{},
		},
		{
			name: "explicit order overrides headings",
			in: Input{
				CandidateType: types.CandidateCoop,
				SectionOrder:  []types.SectionType{types.SectionSkills, types.SectionExperience, types.SectionEducation},
				RawResumeText: "Education\nBSc\n\nSkills\nGo",
			},
			want: []string{RuleCoopExperienceBeforeEducation},
		},
		{
			name: "specific summary passes",
			in: Input{
				CandidateType: types.CandidateCoop,
				ParsedResume:  types.ParsedResume{Summary: "Third-year student building Go APIs"},
			},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(GenerateStructuralSuggestions(tt.in)))
		})
	}
}

func TestGenerateStructuralSuggestions_CareerChanger(t *testing.T) {
	t.Run("no summary and education last", func(t *testing.T) {
		got := GenerateStructuralSuggestions(Input{
			CandidateType: types.CandidateCareerChanger,
			SectionOrder:  []types.SectionType{types.SectionExperience, types.SectionSkills, types.SectionEducation},
		})
		assert.Equal(t, []string{RuleCareerChangerNoSummary, RuleCareerChangerEducationLast}, ids(got))
		assert.Equal(t, types.PriorityCritical, got[0].Priority)
		assert.Equal(t, types.PriorityHigh, got[1].Priority)
	})

	t.Run("compliant", func(t *testing.T) {
		got := GenerateStructuralSuggestions(Input{
			CandidateType: types.CandidateCareerChanger,
			ParsedResume:  types.ParsedResume{Summary: "Former teacher moving into data analysis"},
			SectionOrder:  []types.SectionType{types.SectionSummary, types.SectionEducation, types.SectionExperience},
		})
		assert.Empty(t, got)
	})
}

func TestGenerateStructuralSuggestions_Fulltime(t *testing.T) {
	got := GenerateStructuralSuggestions(Input{
		CandidateType: types.CandidateFulltime,
		RawResumeText: "Education\nBSc\n\nExperience\nAcme",
	})
	require.Len(t, got, 1)
	assert.Equal(t, RuleFulltimeEducationBeforeWork, got[0].ID)
	assert.Equal(t, "Education > Experience", got[0].CurrentState)

	got = GenerateStructuralSuggestions(Input{
		CandidateType: types.CandidateFulltime,
		RawResumeText: "Experience\nAcme\n\nEducation\nBSc",
	})
	assert.Empty(t, got)
}

func TestGenerateStructuralSuggestions_NonStandardHeadings(t *testing.T) {
	t.Run("phrase inside prose does not fire", func(t *testing.T) {
		raw := "Summary\nMy journey into software started in retail\n\nExperience\nAcme\n\nEducation\nBSc"
		got := GenerateStructuralSuggestions(Input{
			CandidateType: types.CandidateFulltime,
			ParsedResume:  types.ParsedResume{Summary: "My journey into software started in retail"},
			RawResumeText: raw,
		})
		for _, s := range got {
			assert.NotEqual(t, types.SuggestionSectionHeading, s.Category)
		}
	})

	t.Run("standalone heading line fires", func(t *testing.T) {
		raw := "Summary\nBuilder of things\n\nMy Journey\nAcme Corp\n\nEducation\nBSc"
		got := GenerateStructuralSuggestions(Input{
			CandidateType: types.CandidateFulltime,
			RawResumeText: raw,
		})
		require.Len(t, got, 1)
		assert.Equal(t, RuleNonStandardHeadingPrefix+"experience-my-journey", got[0].ID)
		assert.Equal(t, types.SuggestionSectionHeading, got[0].Category)
		assert.Equal(t, types.PriorityHigh, got[0].Priority)
		assert.Equal(t, `Rename "My Journey" to "Experience"`, got[0].Title)
		assert.Equal(t, "Line 4: My Journey", got[0].CurrentState)
	})

	t.Run("applies to every candidate type", func(t *testing.T) {
		raw := "WHAT I KNOW\nGo, SQL"
		for _, ct := range []types.CandidateType{types.CandidateCoop, types.CandidateCareerChanger, types.CandidateFulltime, "unknown"} {
			got := GenerateStructuralSuggestions(Input{CandidateType: ct, ParsedResume: types.ParsedResume{Summary: "Go developer"}, RawResumeText: raw})
			assert.Contains(t, ids(got), RuleNonStandardHeadingPrefix+"skills-what-i-know", "candidate type %s", ct)
		}
	})

	t.Run("aliases for one section get distinct ids", func(t *testing.T) {
		raw := "My Journey\nAcme Corp\n\nMy Work\nGlobex\n\nWhere I’ve Worked\nInitech\n\nMy Work\nHooli"
		got := GenerateStructuralSuggestions(Input{CandidateType: types.CandidateFulltime, RawResumeText: raw})
		assert.Equal(t, []string{
			RuleNonStandardHeadingPrefix + "experience-my-journey",
			RuleNonStandardHeadingPrefix + "experience-my-work",
			RuleNonStandardHeadingPrefix + "experience-where-ive-worked",
			RuleNonStandardHeadingPrefix + "experience-my-work-2",
		}, ids(got))
	})

	t.Run("title is title cased", func(t *testing.T) {
		got := GenerateStructuralSuggestions(Input{CandidateType: "unknown", RawResumeText: "WHAT I KNOW\nGo"})
		require.Len(t, got, 1)
		assert.Equal(t, `Rename "What I Know" to "Skills"`, got[0].Title)
	})
}

func TestGenerateStructuralSuggestions_Deterministic(t *testing.T) {
	in := Input{
		CandidateType: types.CandidateCoop,
		ParsedResume:  types.ParsedResume{Summary: "Hard-working team player", Projects: "Chess"},
		RawResumeText: coopAllViolations + "\n\nMy Toolbox\nVim",
	}
	assert.Equal(t, GenerateStructuralSuggestions(in), GenerateStructuralSuggestions(in))
}

func TestDetectSectionOrder(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []types.SectionType
	}{
		{name: "empty", raw: "", want: []types.SectionType{}},
		{
			name: "standard headings",
			raw:  coopAllViolations,
			want: []types.SectionType{types.SectionSummary, types.SectionExperience, types.SectionEducation, types.SectionProjects, types.SectionSkills},
		},
		{
			name: "aliases and duplicates",
			raw:  "About Me\nhi\nWhere I've Worked\nAcme\nCertifications\nAWS\nWork Experience\nGlobex",
			want: []types.SectionType{types.SectionSummary, types.SectionExperience},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectSectionOrder(tt.raw))
		})
	}
}
