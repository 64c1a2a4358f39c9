package gaps

import "github.com/lawrence-dass/coop-ready/internal/types"

// FilterGapsForSection groups gaps into display buckets for one section.
//
//   - TerminologyFixes: required terminology gaps targeting the section
//   - PotentialAdditions: required potential gaps targeting the section
//   - Opportunities: preferred gaps that are not unfixable and target the section
//   - CannotFix: every unfixable gap, whatever its targets
//
// Input order is preserved within each bucket.
func FilterGapsForSection(gaps []types.ProcessedGap, section types.SectionType) types.SectionGaps {
	out := types.SectionGaps{
		Section:            section,
		TerminologyFixes:   []types.ProcessedGap{},
		PotentialAdditions: []types.ProcessedGap{},
		Opportunities:      []types.ProcessedGap{},
		CannotFix:          []types.ProcessedGap{},
	}

	for _, g := range gaps {
		if g.Addressability == types.AddressUnfixable {
			out.CannotFix = append(out.CannotFix, g)
			continue
		}
		if !g.Targets(section) {
			continue
		}
		switch {
		case g.Requirement == types.RequirementRequired && g.Addressability == types.AddressTerminology:
			out.TerminologyFixes = append(out.TerminologyFixes, g)
		case g.Requirement == types.RequirementRequired && g.Addressability == types.AddressPotential:
			out.PotentialAdditions = append(out.PotentialAdditions, g)
		case g.Requirement == types.RequirementPreferred:
			out.Opportunities = append(out.Opportunities, g)
		}
	}
	return out
}

// FilterAllSections buckets gaps for every content section
func FilterAllSections(gaps []types.ProcessedGap) []types.SectionGaps {
	out := make([]types.SectionGaps, 0, len(types.AllSectionTypes))
	for _, st := range types.AllSectionTypes {
		if st == types.SectionFormat {
			continue
		}
		out = append(out, FilterGapsForSection(gaps, st))
	}
	return out
}
