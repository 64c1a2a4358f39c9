// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/lawrence-dass/coop-ready/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to n runes, ending with "..." when cut
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// bar renders a 0-100 score as a 20 cell meter
func bar(score int) string {
	filled := max(0, min(20, score/5))
	return strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)
}

// PrintScoreBreakdown outputs the composite score and its components.
func (p *Printer) PrintScoreBreakdown(b *types.ScoreBreakdown) {
	if b == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Overall   %3d  %s\n\n", b.Score, bar(b.Score))
	fmt.Fprintf(&sb, "Keywords  %3d  (weight %.2f)\n", b.KeywordScore, b.Weights.Keyword)
	fmt.Fprintf(&sb, "  %d/%d matched", b.Keyword.MatchedCount, b.Keyword.TotalCount)
	if b.Keyword.PenaltyApplied > 0 {
		fmt.Fprintf(&sb, ", -%d for %d missing high", b.Keyword.PenaltyApplied, b.Keyword.MissingHighImportance)
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Sections  %3d  (weight %.2f)\n", b.SectionScore, b.Weights.Section)
	fmt.Fprintf(&sb, "  summary %d words, skills %d items, %d bullets\n",
		b.Section.SummaryWordCount, b.Section.SkillsItemCount, b.Section.ExperienceBulletCount)
	fmt.Fprintf(&sb, "Format    %3d  (weight %.2f)\n", b.FormatScore, b.Weights.Format)
	fmt.Fprintf(&sb, "  contact %d, structure %d", b.Format.ContactScore, b.Format.StructureScore)

	p.printBox("ATS SCORE", sb.String())
}

// PrintKeywordAnalysis outputs matched and missing keywords.
func (p *Printer) PrintKeywordAnalysis(result *types.KeywordAnalysisResult) {
	if result == nil || result.Total() == 0 {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Match rate: %d%% (%d of %d)\n", result.MatchRate, len(result.Matched), result.Total())

	if len(result.Matched) > 0 {
		sb.WriteString("\nMatched:\n")
		count := min(len(result.Matched), maxItemsToShow)
		for _, m := range result.Matched[:count] {
			fmt.Fprintf(&sb, "  ✓ %s [%s]", m.Keyword, m.MatchType)
			if m.Placement != "" {
				fmt.Fprintf(&sb, " in %s", m.Placement)
			}
			sb.WriteString("\n")
		}
		if len(result.Matched) > maxItemsToShow {
			fmt.Fprintf(&sb, "  ... and %d more\n", len(result.Matched)-maxItemsToShow)
		}
	}

	if len(result.Missing) > 0 {
		sb.WriteString("\nMissing:\n")
		count := min(len(result.Missing), maxItemsToShow)
		for _, m := range result.Missing[:count] {
			fmt.Fprintf(&sb, "  ✗ %s (%s)\n", m.Keyword, m.Importance)
		}
		if len(result.Missing) > maxItemsToShow {
			fmt.Fprintf(&sb, "  ... and %d more\n", len(result.Missing)-maxItemsToShow)
		}
	}

	p.printBox("KEYWORD ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// gapMarks maps addressability to a list marker
var gapMarks = map[types.Addressability]string{
	types.AddressTerminology: "↺",
	types.AddressPotential:   "+",
	types.AddressUnfixable:   "✗",
}

// PrintGaps outputs the gap summary followed by the highest impact gaps.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintGaps(gaps []types.ProcessedGap, summary types.GapSummary) {
	if len(gaps) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO KEYWORD GAPS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d gaps: %d terminology, %d potential, %d unfixable\n",
		summary.Total, summary.Terminology, summary.Potential, summary.Unfixable)
	fmt.Fprintf(&sb, "Required %d, preferred %d, up to +%d points\n\n",
		summary.Required, summary.Preferred, summary.TotalPotentialImpact)

	count := min(len(gaps), maxItemsToShow)
	for i, g := range gaps[:count] {
		fmt.Fprintf(&sb, "%s %s (+%d)\n", gapMarks[g.Addressability], g.Keyword, g.PotentialImpact)
		fmt.Fprintf(&sb, "  %s\n", g.Instruction)
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(gaps) > maxItemsToShow {
		fmt.Fprintf(&sb, "\n... and %d more gaps", len(gaps)-maxItemsToShow)
	}

	p.printBox("KEYWORD GAPS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs the structural suggestions in rule order.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSuggestions(suggestions []types.StructuralSuggestion) {
	if len(suggestions) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO STRUCTURAL ISSUES")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	for i, s := range suggestions {
		fmt.Fprintf(&sb, "⚠ [%s] %s\n", s.Priority, s.Title)
		if s.CurrentState != "" {
			fmt.Fprintf(&sb, "  Now: %s\n", s.CurrentState)
		}
		fmt.Fprintf(&sb, "  Do:  %s\n", s.RecommendedAction)
		if i < len(suggestions)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("STRUCTURAL SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintActionItems outputs format fixes as a checklist.
func (p *Printer) PrintActionItems(items []string) {
	if len(items) == 0 {
		return
	}

	var sb strings.Builder
	for _, item := range items {
		fmt.Fprintf(&sb, "☐ %s\n", item)
	}
	p.printBox("FORMAT ACTION ITEMS", strings.TrimSuffix(sb.String(), "\n"))
}
