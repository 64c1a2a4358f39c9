// Package analysis runs the full resume scoring pipeline for one scan.
package analysis

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/lawrence-dass/coop-ready/internal/gaps"
	"github.com/lawrence-dass/coop-ready/internal/headings"
	"github.com/lawrence-dass/coop-ready/internal/keywords"
	"github.com/lawrence-dass/coop-ready/internal/scoring"
	"github.com/lawrence-dass/coop-ready/internal/structure"
	"github.com/lawrence-dass/coop-ready/internal/types"
	"golang.org/x/sync/errgroup"
)

// DefaultCandidateType applies when the caller does not name one
const DefaultCandidateType = types.CandidateCoop

// Input is one resume and job description keyword list to analyze
type Input struct {
	ResumeText   string                   `json:"resumeText"`
	ParsedResume types.ParsedResume       `json:"parsedResume"`
	Keywords     []types.ExtractedKeyword `json:"keywords"`

	// Sections overrides the per-section text derived from ParsedResume for keyword
	// classification and gap evidence. Density scoring and the structural rules read
	// ParsedResume, and fall back to Sections only when ParsedResume is empty.
	Sections      *types.ParsedSections `json:"sections,omitempty"`
	CandidateType types.CandidateType   `json:"candidateType,omitempty"`
	SectionOrder  []types.SectionType   `json:"sectionOrder,omitempty"`
	Weights       *types.ScoreWeights   `json:"weights,omitempty"`

	// AnalyzedAt stamps the keyword analysis. Zero means now.
	AnalyzedAt time.Time `json:"analyzedAt,omitempty"`
}

// Options configures Run
type Options struct {
	Policy *gaps.Policy
}

// Report is the complete analysis of one scan
type Report struct {
	Score             types.ScoreBreakdown         `json:"score"`
	Keywords          types.KeywordAnalysisResult  `json:"keywords"`
	Gaps              gaps.GapResult               `json:"gaps"`
	SectionGaps       []types.SectionGaps          `json:"sectionGaps"`
	Suggestions       []types.StructuralSuggestion `json:"suggestions"`
	FormatActionItems []string                     `json:"formatActionItems"`
	SectionOrder      []types.SectionType          `json:"sectionOrder"`
	CandidateType     types.CandidateType          `json:"candidateType"`
}

// Validate checks the input and fills defaults
func (in *Input) Validate() error {
	if strings.TrimSpace(in.ResumeText) == "" && in.ParsedResume.IsEmpty() && (in.Sections == nil || strings.TrimSpace(in.Sections.Combined()) == "") {
		return ErrResumeTextMissing
	}

	if in.CandidateType == "" {
		in.CandidateType = DefaultCandidateType
	} else {
		ct, err := types.ParseCandidateType(string(in.CandidateType))
		if err != nil {
			return &ValidationError{Field: "candidateType", Message: err.Error()}
		}
		in.CandidateType = ct
	}

	in.SectionOrder = append([]types.SectionType(nil), in.SectionOrder...)
	for i, st := range in.SectionOrder {
		parsed, ok := types.ParseSectionType(string(st))
		if !ok || parsed == types.SectionFormat {
			return &ValidationError{Field: fmt.Sprintf("sectionOrder[%d]", i), Message: fmt.Sprintf("unknown section %q", st)}
		}
		in.SectionOrder[i] = parsed
	}

	if w := in.Weights; w != nil {
		if w.Keyword < 0 || w.Section < 0 || w.Format < 0 || w.Keyword+w.Section+w.Format <= 0 {
			return &ValidationError{Field: "weights", Message: "weights must be non-negative with a positive sum"}
		}
	}
	return nil
}

// Run classifies keywords, then computes every score, the gap list and the
// structural suggestions. The independent scorers run concurrently; the report
// is assembled in a fixed order so identical input yields identical output.
func Run(ctx context.Context, in Input, opts Options) (*Report, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if in.AnalyzedAt.IsZero() {
		in.AnalyzedAt = time.Now().UTC()
	}

	if in.ParsedResume.IsEmpty() {
		in.ParsedResume = fallbackResume(in)
	}

	sections := in.ParsedResume.Sections()
	if in.Sections != nil {
		sections = *in.Sections
	}
	text := in.ResumeText
	if strings.TrimSpace(text) == "" {
		text = strings.TrimSpace(in.ParsedResume.Contact + "\n\n" + sections.Combined())
	}

	kwResult := keywords.Classify(text, sections, in.Keywords, in.AnalyzedAt)

	var (
		kwScore     types.KeywordScore
		secScore    types.SectionScore
		fmtScore    types.FormatScore
		gapResult   gaps.GapResult
		suggestions []types.StructuralSuggestion
		order       []types.SectionType
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gCtx.Err(); err != nil {
			return err
		}
		kwScore = scoring.CalculateKeywordScore(kwResult)
		return nil
	})
	g.Go(func() error {
		if err := gCtx.Err(); err != nil {
			return err
		}
		var gapOpts []gaps.Option
		if opts.Policy != nil {
			gapOpts = append(gapOpts, gaps.WithPolicy(opts.Policy))
		}
		gapResult = gaps.ProcessGapAddressability(kwResult, text, sections, gapOpts...)
		return nil
	})
	g.Go(func() error {
		if err := gCtx.Err(); err != nil {
			return err
		}
		secScore = scoring.CalculateSectionScore(in.ParsedResume)
		return nil
	})
	g.Go(func() error {
		if err := gCtx.Err(); err != nil {
			return err
		}
		fmtScore = scoring.CalculateFormatScore(text)
		return nil
	})
	g.Go(func() error {
		if err := gCtx.Err(); err != nil {
			return err
		}
		order = in.SectionOrder
		if len(order) == 0 {
			order = structure.DetectSectionOrder(in.ResumeText)
		}
		suggestions = structure.GenerateStructuralSuggestions(structure.Input{
			CandidateType: in.CandidateType,
			ParsedResume:  in.ParsedResume,
			SectionOrder:  order,
			RawResumeText: in.ResumeText,
		})
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analysis canceled: %w", err)
	}

	breakdown := scoring.CalculateComposite(kwScore, secScore, fmtScore)
	if in.Weights != nil {
		breakdown = scoring.CalculateCompositeWithWeights(kwScore, secScore, fmtScore, *in.Weights)
	}

	log.Printf("[ANALYZE] %d keywords (%d matched, %d missing), score %d", kwResult.Total(), len(kwResult.Matched), len(kwResult.Missing), breakdown.Score)

	return &Report{
		Score:             breakdown,
		Keywords:          kwResult,
		Gaps:              gapResult,
		SectionGaps:       gaps.FilterAllSections(gapResult.ProcessedGaps),
		Suggestions:       suggestions,
		FormatActionItems: scoring.GenerateFormatActionItems(fmtScore),
		SectionOrder:      order,
		CandidateType:     in.CandidateType,
	}, nil
}

// fallbackResume derives the structure used for density scoring when no parsed
// resume was supplied: from Sections when given, otherwise by splitting the raw
// text at its headings.
func fallbackResume(in Input) types.ParsedResume {
	if in.Sections != nil {
		return in.Sections.Resume()
	}
	pr, ok := headings.SplitSections(in.ResumeText)
	if !ok {
		log.Printf("[ANALYZE] no section headings found in resume text, section score needs a parsed resume")
	}
	return pr
}
