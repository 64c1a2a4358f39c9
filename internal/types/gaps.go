// Package types provides type definitions for structured data used throughout the coop-ready system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Addressability says whether and how a gap can be closed without inventing content
type Addressability string

// Addressability classes
const (
	AddressTerminology Addressability = "terminology" // Resume already shows the skill under other words
	AddressPotential   Addressability = "potential"   // Could be added if the candidate truly has it
	AddressUnfixable   Addressability = "unfixable"   // Would require fabricating credentials or history
)

// Requirement says whether the job description requires or prefers a keyword
type Requirement string

// Requirement levels
const (
	RequirementRequired  Requirement = "required"
	RequirementPreferred Requirement = "preferred"
)

// RequirementFor derives the requirement level from keyword importance.
// Only high importance keywords are treated as required.
func RequirementFor(imp Importance) Requirement {
	if imp == ImportanceHigh {
		return RequirementRequired
	}
	return RequirementPreferred
}

// ProcessedGap is a missing keyword annotated with how it can be addressed
type ProcessedGap struct {
	Keyword         string          `json:"keyword"`
	Category        KeywordCategory `json:"category"`
	Priority        Importance      `json:"priority"`
	Requirement     Requirement     `json:"requirement"`
	PotentialImpact int             `json:"potentialImpact"`
	Addressability  Addressability  `json:"addressability"`
	Reason          string          `json:"reason"`
	Evidence        *string         `json:"evidence"`
	TargetSections  []SectionType   `json:"targetSections"`
	Instruction     string          `json:"instruction"`
}

// Targets reports whether the gap lists the given section as a target
func (g ProcessedGap) Targets(st SectionType) bool {
	for _, t := range g.TargetSections {
		if t == st {
			return true
		}
	}
	return false
}

// GapSummary aggregates a processed gap list
type GapSummary struct {
	Total                int `json:"total"`
	Terminology          int `json:"terminology"`
	Potential            int `json:"potential"`
	Unfixable            int `json:"unfixable"`
	Required             int `json:"required"`
	Preferred            int `json:"preferred"`
	TotalPotentialImpact int `json:"totalPotentialImpact"`
}

// SectionGaps groups gaps for display against one resume section
type SectionGaps struct {
	Section            SectionType    `json:"section"`
	TerminologyFixes   []ProcessedGap `json:"terminologyFixes"`
	PotentialAdditions []ProcessedGap `json:"potentialAdditions"`
	Opportunities      []ProcessedGap `json:"opportunities"`
	CannotFix          []ProcessedGap `json:"cannotFix"`
}
