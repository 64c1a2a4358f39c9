// Package types provides type definitions for structured data used throughout the coop-ready system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"
)

// CandidateType selects which structural rule set applies
type CandidateType string

// Supported candidate types
const (
	CandidateCoop          CandidateType = "coop"
	CandidateCareerChanger CandidateType = "career_changer"
	CandidateFulltime      CandidateType = "fulltime"
)

// ParseCandidateType validates a candidate type string
func ParseCandidateType(raw string) (CandidateType, error) {
	switch ct := CandidateType(strings.ToLower(strings.TrimSpace(raw))); ct {
	case CandidateCoop, CandidateCareerChanger, CandidateFulltime:
		return ct, nil
	default:
		return "", fmt.Errorf("unknown candidate type %q (want coop, career_changer, or fulltime)", raw)
	}
}

// SuggestionCategory classifies a structural suggestion
type SuggestionCategory string

// Structural suggestion categories
const (
	SuggestionSectionOrder    SuggestionCategory = "section_order"
	SuggestionSectionPresence SuggestionCategory = "section_presence"
	SuggestionSectionHeading  SuggestionCategory = "section_heading"
)

// SuggestionPriority ranks structural suggestions
type SuggestionPriority string

// Structural suggestion priorities
const (
	PriorityCritical SuggestionPriority = "critical"
	PriorityHigh     SuggestionPriority = "high"
	PriorityModerate SuggestionPriority = "moderate"
)

// StructuralSuggestion is one fired structural rule
type StructuralSuggestion struct {
	ID                string             `json:"id"`
	Category          SuggestionCategory `json:"category"`
	Priority          SuggestionPriority `json:"priority"`
	Title             string             `json:"title"`
	Description       string             `json:"description"`
	CurrentState      string             `json:"currentState,omitempty"`
	RecommendedAction string             `json:"recommendedAction"`
}
