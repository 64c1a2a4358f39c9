// Package types provides type definitions for structured data used throughout the coop-ready system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"
	"time"
)

// Importance ranks how strongly a job description asks for a keyword
type Importance string

// Importance levels assigned by the keyword extractor
const (
	ImportanceHigh   Importance = "high"
	ImportanceMedium Importance = "medium"
	ImportanceLow    Importance = "low"
)

// NormalizeImportance maps untrusted extractor output onto a known level.
// Anything unrecognized becomes medium.
func NormalizeImportance(raw string) Importance {
	switch Importance(strings.ToLower(strings.TrimSpace(raw))) {
	case ImportanceHigh:
		return ImportanceHigh
	case ImportanceLow:
		return ImportanceLow
	default:
		return ImportanceMedium
	}
}

// KeywordCategory groups extracted keywords (Skills, Technologies, ...)
type KeywordCategory string

// Categories emitted by the keyword extractor
const (
	CategorySkills         KeywordCategory = "Skills"
	CategoryTechnologies   KeywordCategory = "Technologies"
	CategorySoftSkills     KeywordCategory = "SoftSkills"
	CategoryQualifications KeywordCategory = "Qualifications"
	CategoryExperience     KeywordCategory = "Experience"
	CategoryCertifications KeywordCategory = "Certifications"
	CategoryOther          KeywordCategory = "Other"
)

// NormalizeCategory trims the category and falls back to Other when blank.
// Unknown but non-blank categories pass through unchanged.
func NormalizeCategory(raw string) KeywordCategory {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return CategoryOther
	}
	return KeywordCategory(trimmed)
}

// MatchType is the tier at which a keyword was found in the resume
type MatchType string

// Match tiers, strongest first
const (
	MatchExact    MatchType = "exact"
	MatchFuzzy    MatchType = "fuzzy"
	MatchSemantic MatchType = "semantic"
)

// ExtractedKeyword is a keyword pulled from a job description
type ExtractedKeyword struct {
	Keyword    string          `json:"keyword"`
	Category   KeywordCategory `json:"category"`
	Importance Importance      `json:"importance"`
}

// Normalized returns a copy with importance and category coerced to known values
func (k ExtractedKeyword) Normalized() ExtractedKeyword {
	return ExtractedKeyword{
		Keyword:    strings.TrimSpace(k.Keyword),
		Category:   NormalizeCategory(string(k.Category)),
		Importance: NormalizeImportance(string(k.Importance)),
	}
}

// MatchedKeyword is a job description keyword that was found in the resume
type MatchedKeyword struct {
	Keyword    string          `json:"keyword"`
	Category   KeywordCategory `json:"category"`
	Importance Importance      `json:"importance,omitempty"`
	Found      bool            `json:"found"`
	MatchType  MatchType       `json:"matchType"`
	Placement  string          `json:"placement,omitempty"` // Section where the match was found
	Context    string          `json:"context,omitempty"`   // Snippet around the match
}

// KeywordAnalysisResult partitions the extracted keywords into matched and missing
type KeywordAnalysisResult struct {
	Matched    []MatchedKeyword   `json:"matched"`
	Missing    []ExtractedKeyword `json:"missing"`
	MatchRate  int                `json:"matchRate"`
	AnalyzedAt time.Time          `json:"analyzedAt"`
}

// Total returns the number of keywords in the analysis
func (r KeywordAnalysisResult) Total() int {
	return len(r.Matched) + len(r.Missing)
}
