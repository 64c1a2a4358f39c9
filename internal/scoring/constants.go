// Package scoring computes the deterministic ATS score and its component sub-scores.
package scoring

import "github.com/lawrence-dass/coop-ready/internal/types"

// MatchTypeWeights is the credit a matched keyword earns per match tier
var MatchTypeWeights = map[types.MatchType]float64{
	types.MatchExact:    1.0,
	types.MatchFuzzy:    0.85,
	types.MatchSemantic: 0.65,
}

// ImportanceWeights scales each keyword's share of the keyword score
var ImportanceWeights = map[types.Importance]float64{
	types.ImportanceHigh:   3.0,
	types.ImportanceMedium: 2.0,
	types.ImportanceLow:    1.0,
}

// Keyword score penalty calibration
const (
	// MissingHighPenalty is subtracted per missing high-importance keyword
	MissingHighPenalty = 5.0
	// PenaltyFloorRatio bounds the penalized score below by this share of the base score
	PenaltyFloorRatio = 0.4
)

// Section density thresholds: the count at which a section earns full credit
const (
	SummaryWordThreshold      = 30
	SkillsItemThreshold       = 6
	ExperienceBulletThreshold = 8
)

// Format contact lookup
const (
	ContactBothScore      = 100
	ContactEmailOnlyScore = 60
	ContactPhoneOnlyScore = 40
)

// DefaultWeights are the composite weights applied to each component
var DefaultWeights = types.ScoreWeights{
	Keyword: 0.50,
	Section: 0.25,
	Format:  0.25,
}

// matchWeight returns the tier credit, treating unknown tiers as semantic
func matchWeight(mt types.MatchType) float64 {
	if w, ok := MatchTypeWeights[mt]; ok {
		return w
	}
	return MatchTypeWeights[types.MatchSemantic]
}

// importanceWeight returns the importance multiplier, treating unknown levels as medium
func importanceWeight(imp types.Importance) float64 {
	if w, ok := ImportanceWeights[types.NormalizeImportance(string(imp))]; ok {
		return w
	}
	return ImportanceWeights[types.ImportanceMedium]
}
