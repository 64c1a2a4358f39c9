// Package types provides type definitions for structured data used throughout the coop-ready system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// KeywordScore is the keyword component of the ATS score
type KeywordScore struct {
	Score                 int `json:"score"`
	MatchedCount          int `json:"matchedCount"`
	TotalCount            int `json:"totalCount"`
	MissingHighImportance int `json:"missingHighImportance"`
	PenaltyApplied        int `json:"penaltyApplied"` // Points deducted after the floor is applied
}

// SectionScore is the section density component of the ATS score
type SectionScore struct {
	Score                 int `json:"score"`
	SummaryScore          int `json:"summaryScore"`
	SkillsScore           int `json:"skillsScore"`
	ExperienceScore       int `json:"experienceScore"`
	SummaryWordCount      int `json:"summaryWordCount"`
	SkillsItemCount       int `json:"skillsItemCount"`
	ExperienceBulletCount int `json:"experienceBulletCount"`
}

// FormatScore is the ATS parseability component of the score
type FormatScore struct {
	Score              int  `json:"score"`
	HasEmail           bool `json:"hasEmail"`
	HasPhone           bool `json:"hasPhone"`
	HasDatePatterns    bool `json:"hasDatePatterns"`
	HasSectionHeaders  bool `json:"hasSectionHeaders"`
	HasBulletStructure bool `json:"hasBulletStructure"`
	ContactScore       int  `json:"contactScore"`
	StructureScore     int  `json:"structureScore"`
}

// ScoreWeights are the composite weights applied to each component
type ScoreWeights struct {
	Keyword float64 `json:"keyword"`
	Section float64 `json:"section"`
	Format  float64 `json:"format"`
}

// ScoreBreakdown is the composite ATS score with its component details
type ScoreBreakdown struct {
	Score        int          `json:"score"`
	KeywordScore int          `json:"keywordScore"`
	SectionScore int          `json:"sectionScore"`
	FormatScore  int          `json:"formatScore"`
	Keyword      KeywordScore `json:"keyword"`
	Section      SectionScore `json:"section"`
	Format       FormatScore  `json:"format"`
	Weights      ScoreWeights `json:"weights"`
}
