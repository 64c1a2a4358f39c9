package keywords

import (
	"testing"
	"time"

	"github.com/lawrence-dass/coop-ready/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var analyzedAt = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func kw(keyword string, cat types.KeywordCategory, imp types.Importance) types.ExtractedKeyword {
	return types.ExtractedKeyword{Keyword: keyword, Category: cat, Importance: imp}
}

func TestClassify_Tiers(t *testing.T) {
	sections := types.ParsedSections{
		Summary:    "Computer science student who led a team of four in a campus hackathon.",
		Skills:     "Python, React, PostgreSQL, Git",
		Experience: "Built dashboards with React and Python\nWrote unit tests for REST services",
	}

	tests := []struct {
		name      string
		keyword   types.ExtractedKeyword
		found     bool
		matchType types.MatchType
		placement string
	}{
		{"exact case-insensitive", kw("python", types.CategoryTechnologies, types.ImportanceHigh), true, types.MatchExact, "skills"},
		{"fuzzy js suffix", kw("React.js", types.CategoryTechnologies, types.ImportanceHigh), true, types.MatchFuzzy, "skills"},
		{"fuzzy alias", kw("Postgres", types.CategoryTechnologies, types.ImportanceMedium), true, types.MatchFuzzy, "skills"},
		{"semantic concept", kw("Leadership", types.CategorySoftSkills, types.ImportanceMedium), true, types.MatchSemantic, "summary"},
		{"missing", kw("Kubernetes", types.CategoryTechnologies, types.ImportanceLow), false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify("", sections, []types.ExtractedKeyword{tt.keyword}, analyzedAt)
			if !tt.found {
				require.Len(t, result.Missing, 1)
				assert.Empty(t, result.Matched)
				assert.Equal(t, tt.keyword.Importance, result.Missing[0].Importance)
				return
			}
			require.Len(t, result.Matched, 1)
			m := result.Matched[0]
			assert.True(t, m.Found)
			assert.Equal(t, tt.matchType, m.MatchType)
			assert.Equal(t, tt.placement, m.Placement)
			assert.NotEmpty(t, m.Context)
		})
	}
}

func TestClassify_ExactBeatsFuzzy(t *testing.T) {
	// "React.js" appears verbatim in experience and as "React" in skills.
	// The exact tier must win even though skills is searched first.
	sections := types.ParsedSections{
		Skills:     "React",
		Experience: "Migrated the admin panel to React.js",
	}
	result := Classify("", sections, []types.ExtractedKeyword{kw("React.js", types.CategoryTechnologies, types.ImportanceHigh)}, analyzedAt)

	require.Len(t, result.Matched, 1)
	assert.Equal(t, types.MatchExact, result.Matched[0].MatchType)
	assert.Equal(t, "experience", result.Matched[0].Placement)
}

func TestClassify_WordBoundary(t *testing.T) {
	result := Classify("Experienced with JavaScript and TypeScript", types.ParsedSections{},
		[]types.ExtractedKeyword{kw("Java", types.CategoryTechnologies, types.ImportanceHigh)}, analyzedAt)

	assert.Empty(t, result.Matched)
	require.Len(t, result.Missing, 1)
}

func TestClassify_NoFalseMatches(t *testing.T) {
	tests := []struct {
		name    string
		keyword string
		text    string
	}{
		{"C inside C# and C++", "C", "Wrote services in C# and C++"},
		{"C inside C.NET", "C", "Maintained a C.NET desktop app"},
		{"Next.js against the word next", "Next.js", "Planned the next release with the design team"},
		{"Express.js against the word express", "Express.js", "Shipped an express checkout flow"},
		{"Node.js against the word node", "Node.js", "Balanced every node of the search tree"},
		{"Rust against rusted", "Rust", "Restored rusted bike frames"},
		{"Redis against redid", "Redis", "Redid the onboarding guide"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify(tt.text, types.ParsedSections{},
				[]types.ExtractedKeyword{kw(tt.keyword, types.CategoryTechnologies, types.ImportanceHigh)}, analyzedAt)

			assert.Empty(t, result.Matched)
			require.Len(t, result.Missing, 1)
			assert.Equal(t, tt.keyword, result.Missing[0].Keyword)
		})
	}
}

func TestClassify_TechBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		keyword   string
		text      string
		matchType types.MatchType
	}{
		{"C before a slash", "C", "Wrote firmware in C/C++", types.MatchExact},
		{"C at sentence end", "C", "Most of the tooling was written in C.", types.MatchExact},
		{"C# verbatim", "C#", "Built Unity tools in C#", types.MatchExact},
		{"Node satisfied by Node.js", "Node", "Built APIs with Node.js and Express", types.MatchFuzzy},
		{"NextJS spelling", "Next.js", "Rebuilt the storefront in NextJS", types.MatchFuzzy},
		{"stem still used for long words", "Microservices", "Designed a payments microservice", types.MatchFuzzy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify(tt.text, types.ParsedSections{},
				[]types.ExtractedKeyword{kw(tt.keyword, types.CategoryTechnologies, types.ImportanceHigh)}, analyzedAt)

			require.Len(t, result.Matched, 1)
			assert.Equal(t, tt.matchType, result.Matched[0].MatchType)
		})
	}
}

func TestClassify_RawTextFallback(t *testing.T) {
	result := Classify("Deployed services on Kubernetes", types.ParsedSections{},
		[]types.ExtractedKeyword{kw("k8s", types.CategoryTechnologies, types.ImportanceHigh)}, analyzedAt)

	require.Len(t, result.Matched, 1)
	assert.Equal(t, types.MatchFuzzy, result.Matched[0].MatchType)
	assert.Equal(t, "resume", result.Matched[0].Placement)
}

func TestClassify_PartitionAndMatchRate(t *testing.T) {
	kws := []types.ExtractedKeyword{
		kw("Go", types.CategoryTechnologies, types.ImportanceHigh),
		kw("Docker", types.CategoryTechnologies, types.ImportanceHigh),
		kw("Terraform", types.CategoryTechnologies, types.ImportanceLow),
		kw("golang", types.CategoryTechnologies, types.ImportanceHigh), // duplicate of Go
		kw("   ", types.CategoryTechnologies, types.ImportanceHigh),    // blank
	}
	result := Classify("Wrote Go services packaged with Docker", types.ParsedSections{}, kws, analyzedAt)

	assert.Len(t, result.Matched, 2)
	assert.Len(t, result.Missing, 1)
	assert.Equal(t, 3, result.Total())
	assert.Equal(t, 67, result.MatchRate)
	assert.Equal(t, analyzedAt, result.AnalyzedAt)

	seen := map[string]bool{}
	for _, m := range result.Matched {
		seen[m.Keyword] = true
	}
	for _, m := range result.Missing {
		assert.False(t, seen[m.Keyword], "keyword %q is both matched and missing", m.Keyword)
	}
}

func TestClassify_DefaultsMalformedFields(t *testing.T) {
	result := Classify("", types.ParsedSections{}, []types.ExtractedKeyword{
		{Keyword: "Rust", Importance: "urgent"},
	}, analyzedAt)

	require.Len(t, result.Missing, 1)
	assert.Equal(t, types.ImportanceMedium, result.Missing[0].Importance)
	assert.Equal(t, types.CategoryOther, result.Missing[0].Category)
}

func TestClassify_EmptyInput(t *testing.T) {
	result := Classify("", types.ParsedSections{}, nil, analyzedAt)

	assert.Empty(t, result.Matched)
	assert.Empty(t, result.Missing)
	assert.Equal(t, 0, result.MatchRate)
}

func TestClassify_Deterministic(t *testing.T) {
	sections := types.ParsedSections{Skills: "Go, Docker, AWS", Experience: "Mentored two interns"}
	kws := []types.ExtractedKeyword{
		kw("Amazon Web Services", types.CategoryTechnologies, types.ImportanceHigh),
		kw("Mentoring", types.CategorySoftSkills, types.ImportanceLow),
		kw("Go", types.CategoryTechnologies, types.ImportanceHigh),
		kw("GraphQL", types.CategoryTechnologies, types.ImportanceMedium),
	}

	first := Classify("", sections, kws, analyzedAt)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Classify("", sections, kws, analyzedAt))
	}
}

func TestMatchRate(t *testing.T) {
	assert.Equal(t, 0, MatchRate(0, 0))
	assert.Equal(t, 100, MatchRate(4, 0))
	assert.Equal(t, 33, MatchRate(1, 2))
	assert.Equal(t, 87, MatchRate(13, 2))
}
