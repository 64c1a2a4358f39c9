package scoring

import (
	"math"

	"github.com/lawrence-dass/coop-ready/internal/types"
)

// CalculateKeywordScore converts a keyword analysis into a 0-100 score.
//
// Each keyword carries an importance weight; matched keywords earn that weight
// scaled by their match tier. The base score is earned over possible weight.
// A fixed penalty is then taken per missing high-importance keyword, but the
// result never drops below PenaltyFloorRatio of the base score.
func CalculateKeywordScore(result types.KeywordAnalysisResult) types.KeywordScore {
	ks := types.KeywordScore{
		MatchedCount: len(result.Matched),
		TotalCount:   result.Total(),
	}
	if ks.TotalCount == 0 {
		return ks
	}

	var earned, possible float64
	for _, m := range result.Matched {
		w := importanceWeight(m.Importance)
		earned += w * matchWeight(m.MatchType)
		possible += w
	}
	for _, m := range result.Missing {
		possible += importanceWeight(m.Importance)
		if types.NormalizeImportance(string(m.Importance)) == types.ImportanceHigh {
			ks.MissingHighImportance++
		}
	}
	if possible == 0 {
		return ks
	}

	base := earned / possible * 100
	penalized := base - MissingHighPenalty*float64(ks.MissingHighImportance)
	final := math.Max(penalized, base*PenaltyFloorRatio)

	ks.Score = clampScore(final)
	ks.PenaltyApplied = clampScore(base) - ks.Score
	return ks
}

// clampScore rounds to the nearest integer and clamps to [0,100]
func clampScore(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	r := int(math.Round(v))
	if r < 0 {
		return 0
	}
	if r > 100 {
		return 100
	}
	return r
}

// ratioScore scales count/threshold to 0-100, capped at 100
func ratioScore(count, threshold int) int {
	if count <= 0 || threshold <= 0 {
		return 0
	}
	return clampScore(float64(count) / float64(threshold) * 100)
}
