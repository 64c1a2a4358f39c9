package main

import (
	"context"
	"fmt"

	"github.com/lawrence-dass/coop-ready/internal/analysis"
	"github.com/lawrence-dass/coop-ready/internal/config"
	"github.com/lawrence-dass/coop-ready/internal/gaps"
	"github.com/lawrence-dass/coop-ready/internal/observability"
	"github.com/lawrence-dass/coop-ready/internal/types"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against job description keywords",
	Long: `Runs the full analysis: keyword matching, keyword/section/format scores, the composite
ATS score, gap addressability and structural suggestions.

Keywords come from --keywords (a JSON list) or are extracted from --job-description with
Gemini. Configuration can be loaded from a JSON file using --config. Command-line arguments
override config file values.`,
	RunE: runScore,
}

var (
	scoreConfigPath     string
	scoreResume         string
	scoreParsedResume   string
	scoreKeywords       string
	scoreJobDescription string
	scoreCandidateType  string
	scoreSectionOrder   string
	scoreWeights        string
	scorePolicy         string
	scoreOutput         string
	scoreOut            string
	scoreAPIKey         string
	scoreVerbose        bool
)

func init() {
	scoreCmd.Flags().StringVar(&scoreConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	scoreCmd.Flags().StringVarP(&scoreResume, "resume", "r", "", "Path to resume text or HTML file")
	scoreCmd.Flags().StringVar(&scoreParsedResume, "parsed-resume", "", "Path to parsed resume JSON")
	scoreCmd.Flags().StringVarP(&scoreKeywords, "keywords", "k", "", "Path to keywords JSON (mutually exclusive with --job-description)")
	scoreCmd.Flags().StringVarP(&scoreJobDescription, "job-description", "j", "", "Path to job description text or HTML; keywords are extracted with Gemini")
	scoreCmd.Flags().StringVarP(&scoreCandidateType, "candidate-type", "c", "", "coop, career_changer or fulltime (default coop)")
	scoreCmd.Flags().StringVar(&scoreSectionOrder, "section-order", "", "Comma-separated section order, detected from headings when omitted")
	scoreCmd.Flags().StringVar(&scoreWeights, "weights", "", "Composite weights keyword,section,format (default 0.5,0.25,0.25)")
	scoreCmd.Flags().StringVar(&scorePolicy, "policy", "", "Path to a gap policy JSON overriding the built-in one")
	scoreCmd.Flags().StringVarP(&scoreOutput, "output", "f", "", "Output format: json or text (default json)")
	scoreCmd.Flags().StringVarP(&scoreOut, "out", "o", "", "Write the JSON report to this file instead of stdout")
	scoreCmd.Flags().StringVar(&scoreAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print boxed summaries to stderr")

	rootCmd.AddCommand(scoreCmd)
}

// scoreConfig merges the config file, flags and defaults
func scoreConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if scoreConfigPath != "" {
		loaded, err := config.LoadConfig(scoreConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	flags := cmd.Flags()
	if flags.Changed("resume") {
		cfg.Resume = scoreResume
	}
	if flags.Changed("parsed-resume") {
		cfg.ParsedResume = scoreParsedResume
	}
	if flags.Changed("keywords") {
		cfg.Keywords = scoreKeywords
	}
	if flags.Changed("job-description") {
		cfg.JobDescription = scoreJobDescription
	}
	if flags.Changed("candidate-type") {
		cfg.CandidateType = scoreCandidateType
	}
	if flags.Changed("section-order") {
		order, err := parseSectionOrder(scoreSectionOrder)
		if err != nil {
			return cfg, fmt.Errorf("invalid --section-order: %w", err)
		}
		cfg.SectionOrder = order
	}
	if flags.Changed("weights") {
		w, err := parseWeights(scoreWeights)
		if err != nil {
			return cfg, fmt.Errorf("invalid --weights: %w", err)
		}
		cfg.Weights = w
	}
	if flags.Changed("policy") {
		cfg.Policy = scorePolicy
	}
	if flags.Changed("output") {
		cfg.Output = scoreOutput
	}
	if flags.Changed("api-key") {
		cfg.APIKey = scoreAPIKey
	}
	if flags.Changed("verbose") {
		cfg.Verbose = scoreVerbose
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		CandidateType: string(analysis.DefaultCandidateType),
		Output:        config.OutputJSON,
	})

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if cfg.Resume == "" && cfg.ParsedResume == "" {
		return cfg, fmt.Errorf("either --resume or --parsed-resume must be provided (via flag or config)")
	}
	if cfg.Keywords == "" && cfg.JobDescription == "" {
		return cfg, fmt.Errorf("either --keywords or --job-description must be provided (via flag or config)")
	}
	return cfg, nil
}

func runScore(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := scoreConfig(cmd)
	if err != nil {
		return err
	}

	in := analysis.Input{
		CandidateType: types.CandidateType(cfg.CandidateType),
		SectionOrder:  cfg.SectionOrder,
		Weights:       cfg.Weights,
	}

	if cfg.Resume != "" {
		if in.ResumeText, err = loadResumeText(cfg.Resume); err != nil {
			return err
		}
	}
	if cfg.ParsedResume != "" {
		if in.ParsedResume, err = loadParsedResume(cfg.ParsedResume); err != nil {
			return err
		}
	}

	if cfg.Keywords != "" {
		in.Keywords, err = loadKeywords(cfg.Keywords)
	} else {
		in.Keywords, err = extractKeywordsFromFile(ctx, cfg.JobDescription, apiKeyOr(cfg.APIKey))
	}
	if err != nil {
		return err
	}

	var opts analysis.Options
	if cfg.Policy != "" {
		if opts.Policy, err = gaps.LoadPolicyFile(cfg.Policy); err != nil {
			return fmt.Errorf("failed to load gap policy: %w", err)
		}
	}

	report, err := analysis.Run(ctx, in, opts)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if cfg.Verbose {
		printReport(observability.NewPrinter(cmd.ErrOrStderr()), report)
	}

	if cfg.Output == config.OutputText && scoreOut == "" {
		printReport(observability.NewPrinter(cmd.OutOrStdout()), report)
		return nil
	}
	return writeJSON(report, scoreOut, func(b []byte) error {
		_, err := cmd.OutOrStdout().Write(b)
		return err
	})
}

// printReport renders every part of a report as boxed summaries
func printReport(p *observability.Printer, report *analysis.Report) {
	p.PrintScoreBreakdown(&report.Score)
	p.PrintKeywordAnalysis(&report.Keywords)
	p.PrintGaps(report.Gaps.ProcessedGaps, report.Gaps.Summary)
	p.PrintSuggestions(report.Suggestions)
	p.PrintActionItems(report.FormatActionItems)
}
