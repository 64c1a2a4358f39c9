// Package gaps classifies missing job description keywords by whether they can
// be addressed truthfully, and groups them for display per resume section.
package gaps

import (
	"fmt"
	"strings"

	"github.com/lawrence-dass/coop-ready/internal/keywords"
	"github.com/lawrence-dass/coop-ready/internal/scoring"
	"github.com/lawrence-dass/coop-ready/internal/types"
)

// GapResult is the processed gap list with its summary
type GapResult struct {
	ProcessedGaps []types.ProcessedGap `json:"processedGaps"`
	Summary       types.GapSummary     `json:"summary"`
}

type options struct {
	policy *Policy
}

// Option configures ProcessGapAddressability
type Option func(*options)

// WithPolicy replaces the embedded default policy
func WithPolicy(p *Policy) Option {
	return func(o *options) {
		if p != nil {
			o.policy = p
		}
	}
}

// evidence is a related phrase found in the resume
type evidence struct {
	text     string
	sections []types.SectionType
}

// ProcessGapAddressability annotates every missing keyword in result.
//
// A gap is terminology when the resume already shows a related term from the
// policy, potential when its category can be added to an existing section, and
// unfixable when closing it would mean claiming a credential or history the
// candidate does not have. Sections are searched in a fixed order, so the
// output is deterministic. Empty sections are skipped.
func ProcessGapAddressability(result types.KeywordAnalysisResult, resumeText string, sections types.ParsedSections, opts ...Option) GapResult {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.policy == nil {
		p, err := DefaultPolicy()
		if err != nil {
			p = &Policy{}
		}
		o.policy = p
	}

	baseline := scoring.CalculateKeywordScore(result).Score

	out := GapResult{ProcessedGaps: make([]types.ProcessedGap, 0, len(result.Missing))}
	for i, raw := range result.Missing {
		kw := raw.Normalized()
		if kw.Keyword == "" {
			continue
		}

		gap := types.ProcessedGap{
			Keyword:     kw.Keyword,
			Category:    kw.Category,
			Priority:    kw.Importance,
			Requirement: types.RequirementFor(kw.Importance),
		}

		if ev, ok := findEvidence(o.policy, kw.Keyword, resumeText, sections); ok {
			text := ev.text
			gap.Addressability = types.AddressTerminology
			gap.Evidence = &text
			gap.TargetSections = ev.sections
			if len(gap.TargetSections) == 0 {
				gap.TargetSections = o.policy.targetsFor(kw.Category)
			}
			gap.Reason = fmt.Sprintf("Your resume mentions %q, which shows %s experience under different wording", text, kw.Keyword)
			gap.Instruction = fmt.Sprintf("Reword the existing %s content that mentions %q to name %s explicitly. Do not add new claims.", sectionList(gap.TargetSections), text, kw.Keyword)
		} else if o.policy.isUnfixable(kw) {
			gap.Addressability = types.AddressUnfixable
			gap.TargetSections = []types.SectionType{}
			gap.Reason = fmt.Sprintf("%s is a credential or history requirement that rewording cannot satisfy", kw.Keyword)
			gap.Instruction = fmt.Sprintf("Only list %s if it is true. Otherwise address it in a cover letter or plan to earn it.", kw.Keyword)
		} else {
			gap.Addressability = types.AddressPotential
			gap.TargetSections = o.policy.targetsFor(kw.Category)
			gap.Reason = fmt.Sprintf("%s does not appear anywhere in your resume", kw.Keyword)
			gap.Instruction = fmt.Sprintf("If you have genuinely used %s, add it to your %s section. Leave it out if you have not.", kw.Keyword, sectionList(gap.TargetSections))
		}

		if gap.Addressability != types.AddressUnfixable {
			gap.PotentialImpact = impactIfMatched(result, i, baseline)
		}

		out.ProcessedGaps = append(out.ProcessedGaps, gap)
	}

	out.Summary = Summarize(out.ProcessedGaps)
	return out
}

// findEvidence searches every non-empty section for a related term. The
// evidence text is the first match in section order; target sections are all
// sections holding any related term. The raw text is searched only when no
// section has evidence.
func findEvidence(p *Policy, keyword, resumeText string, sections types.ParsedSections) (evidence, bool) {
	terms := p.relatedTerms(keyword)
	if len(terms) == 0 {
		return evidence{}, false
	}

	var ev evidence
	for _, sec := range sections.Ordered() {
		if strings.TrimSpace(sec.Text) == "" {
			continue
		}
		for _, term := range terms {
			found, ok := findTerm(term, sec.Text)
			if !ok {
				continue
			}
			if ev.text == "" {
				ev.text = found
			}
			ev.sections = append(ev.sections, sec.Type)
			break
		}
	}
	if ev.text != "" {
		return ev, true
	}

	for _, term := range terms {
		if found, ok := findTerm(term, resumeText); ok {
			return evidence{text: found}, true
		}
	}
	return evidence{}, false
}

func findTerm(term relatedTerm, text string) (string, bool) {
	if term.pattern == nil {
		return "", false
	}
	return keywords.FindPhrase(term.pattern, text)
}

// impactIfMatched is the keyword score gained if missing keyword i were an exact match
func impactIfMatched(result types.KeywordAnalysisResult, i, baseline int) int {
	gap := result.Missing[i].Normalized()

	whatIf := types.KeywordAnalysisResult{
		Matched: make([]types.MatchedKeyword, 0, len(result.Matched)+1),
		Missing: make([]types.ExtractedKeyword, 0, len(result.Missing)-1),
	}
	whatIf.Matched = append(whatIf.Matched, result.Matched...)
	whatIf.Matched = append(whatIf.Matched, types.MatchedKeyword{
		Keyword:    gap.Keyword,
		Category:   gap.Category,
		Importance: gap.Importance,
		Found:      true,
		MatchType:  types.MatchExact,
	})
	whatIf.Missing = append(whatIf.Missing, result.Missing[:i]...)
	whatIf.Missing = append(whatIf.Missing, result.Missing[i+1:]...)

	return max(scoring.CalculateKeywordScore(whatIf).Score-baseline, 0)
}

// Summarize counts gaps per addressability and requirement
func Summarize(gaps []types.ProcessedGap) types.GapSummary {
	s := types.GapSummary{Total: len(gaps)}
	for _, g := range gaps {
		switch g.Addressability {
		case types.AddressTerminology:
			s.Terminology++
		case types.AddressPotential:
			s.Potential++
		case types.AddressUnfixable:
			s.Unfixable++
		}
		if g.Requirement == types.RequirementRequired {
			s.Required++
		} else {
			s.Preferred++
		}
		s.TotalPotentialImpact += g.PotentialImpact
	}
	return s
}

func sectionList(sections []types.SectionType) string {
	names := make([]string, len(sections))
	for i, s := range sections {
		names[i] = string(s)
	}
	switch len(names) {
	case 0:
		return "resume"
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
	}
}
