package scoring

import (
	"testing"

	"github.com/lawrence-dass/coop-ready/internal/types"
	"github.com/stretchr/testify/assert"
)

func matched(mt types.MatchType, imp types.Importance, n int) []types.MatchedKeyword {
	out := make([]types.MatchedKeyword, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, types.MatchedKeyword{Keyword: "kw", Found: true, MatchType: mt, Importance: imp})
	}
	return out
}

func missing(imp types.Importance, n int) []types.ExtractedKeyword {
	out := make([]types.ExtractedKeyword, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, types.ExtractedKeyword{Keyword: "gap", Importance: imp})
	}
	return out
}

func TestCalculateKeywordScore(t *testing.T) {
	tests := []struct {
		name        string
		result      types.KeywordAnalysisResult
		wantScore   int
		wantPenalty int
		wantHigh    int
	}{
		{
			name:      "all exact matches",
			result:    types.KeywordAnalysisResult{Matched: matched(types.MatchExact, types.ImportanceHigh, 5)},
			wantScore: 100,
		},
		{
			name:      "all semantic matches",
			result:    types.KeywordAnalysisResult{Matched: matched(types.MatchSemantic, types.ImportanceMedium, 4)},
			wantScore: 65,
		},
		{
			name:      "single fuzzy match",
			result:    types.KeywordAnalysisResult{Matched: matched(types.MatchFuzzy, types.ImportanceLow, 1)},
			wantScore: 85,
		},
		{
			name:      "no matches",
			result:    types.KeywordAnalysisResult{Missing: missing(types.ImportanceMedium, 3)},
			wantScore: 0,
		},
		{
			name:      "zero keywords",
			result:    types.KeywordAnalysisResult{},
			wantScore: 0,
		},
		{
			// base 8/11 = 72.7, minus 5 for the missing high keyword
			name: "penalty for missing high keyword",
			result: types.KeywordAnalysisResult{
				Matched: matched(types.MatchExact, types.ImportanceMedium, 4),
				Missing: missing(types.ImportanceHigh, 1),
			},
			wantScore:   68,
			wantPenalty: 5,
			wantHigh:    1,
		},
		{
			// base 1/10 = 10, penalized to -5, floored at 40% of base
			name: "penalty floor",
			result: types.KeywordAnalysisResult{
				Matched: matched(types.MatchExact, types.ImportanceLow, 1),
				Missing: missing(types.ImportanceHigh, 3),
			},
			wantScore:   4,
			wantPenalty: 6,
			wantHigh:    3,
		},
		{
			name: "unknown importance weighs as medium",
			result: types.KeywordAnalysisResult{
				Matched: matched(types.MatchExact, "", 1),
				Missing: missing("critical", 1),
			},
			wantScore: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateKeywordScore(tt.result)
			assert.Equal(t, tt.wantScore, got.Score)
			assert.Equal(t, tt.wantPenalty, got.PenaltyApplied)
			assert.Equal(t, tt.wantHigh, got.MissingHighImportance)
			assert.Equal(t, len(tt.result.Matched), got.MatchedCount)
			assert.Equal(t, tt.result.Total(), got.TotalCount)
		})
	}
}

func TestCalculateKeywordScore_MissingHighCostsMoreThanLow(t *testing.T) {
	base := matched(types.MatchExact, types.ImportanceMedium, 2)

	withHigh := CalculateKeywordScore(types.KeywordAnalysisResult{Matched: base, Missing: missing(types.ImportanceHigh, 1)})
	withLow := CalculateKeywordScore(types.KeywordAnalysisResult{Matched: base, Missing: missing(types.ImportanceLow, 1)})

	assert.Less(t, withHigh.Score, withLow.Score, "missing high keyword should reduce the score more than a missing low one")
}

func TestCalculateKeywordScore_Bounds(t *testing.T) {
	for high := 0; high <= 10; high++ {
		for low := 0; low <= 10; low++ {
			result := types.KeywordAnalysisResult{
				Matched: matched(types.MatchFuzzy, types.ImportanceLow, low),
				Missing: missing(types.ImportanceHigh, high),
			}
			got := CalculateKeywordScore(result)
			assert.GreaterOrEqual(t, got.Score, 0)
			assert.LessOrEqual(t, got.Score, 100)
			assert.GreaterOrEqual(t, got.PenaltyApplied, 0)
		}
	}
}
