package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lawrence-dass/coop-ready/internal/ingestion"
	"github.com/lawrence-dass/coop-ready/internal/llm"
	"github.com/lawrence-dass/coop-ready/internal/schemas"
	"github.com/lawrence-dass/coop-ready/internal/types"
)

// loadKeywords reads a keyword list and checks it against the keywords schema
func loadKeywords(path string) ([]types.ExtractedKeyword, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keywords file: %w", err)
	}
	if err := schemas.Validate(schemas.Keywords, data); err != nil {
		return nil, fmt.Errorf("invalid keywords file %s: %w", path, err)
	}

	var kws []types.ExtractedKeyword
	if err := json.Unmarshal(data, &kws); err != nil {
		return nil, fmt.Errorf("failed to parse keywords file: %w", err)
	}
	return kws, nil
}

// loadParsedResume reads a structured resume produced by an upstream extractor
func loadParsedResume(path string) (types.ParsedResume, error) {
	var pr types.ParsedResume
	data, err := os.ReadFile(path)
	if err != nil {
		return pr, fmt.Errorf("failed to read parsed resume: %w", err)
	}
	if err := json.Unmarshal(data, &pr); err != nil {
		return pr, fmt.Errorf("failed to parse parsed resume JSON: %w", err)
	}
	return pr, nil
}

// loadResumeText reads and cleans a text or HTML resume
func loadResumeText(path string) (string, error) {
	text, _, err := ingestion.IngestResumeFromFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume: %w", err)
	}
	return text, nil
}

// loadGaps accepts either a bare gap array or an object carrying processedGaps,
// such as the gaps field of a score report
func loadGaps(path string) ([]types.ProcessedGap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gaps file: %w", err)
	}

	var list []types.ProcessedGap
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	var wrapped struct {
		ProcessedGaps []types.ProcessedGap `json:"processedGaps"`
		Gaps          *struct {
			ProcessedGaps []types.ProcessedGap `json:"processedGaps"`
		} `json:"gaps"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to parse gaps file: %w", err)
	}
	switch {
	case wrapped.ProcessedGaps != nil:
		return wrapped.ProcessedGaps, nil
	case wrapped.Gaps != nil && wrapped.Gaps.ProcessedGaps != nil:
		return wrapped.Gaps.ProcessedGaps, nil
	default:
		return nil, fmt.Errorf("gaps file %s has no processedGaps", path)
	}
}

// parseSectionOrder parses a comma-separated section list such as "experience,education"
func parseSectionOrder(raw string) ([]types.SectionType, error) {
	var order []types.SectionType
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		st, ok := types.ParseSectionType(part)
		if !ok || st == types.SectionFormat {
			return nil, fmt.Errorf("unknown section %q", part)
		}
		order = append(order, st)
	}
	return order, nil
}

// parseWeights parses "keyword,section,format" weights such as "0.6,0.2,0.2"
func parseWeights(raw string) (*types.ScoreWeights, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("weights must be three comma-separated numbers (keyword,section,format)")
	}
	vals := make([]float64, 3)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weight %q: %w", p, err)
		}
		vals[i] = v
	}
	return &types.ScoreWeights{Keyword: vals[0], Section: vals[1], Format: vals[2]}, nil
}

// writeJSON writes v as indented JSON to path, or to fallback when path is empty
func writeJSON(v any, path string, fallback func([]byte) error) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	b = append(b, '\n')
	if path == "" {
		return fallback(b)
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// newLLMClient builds the model client used for keyword extraction
var newLLMClient = func(ctx context.Context, apiKey string) (llm.Client, error) {
	return llm.NewGeminiClient(ctx, llm.ConfigFromEnv(), apiKey)
}

// apiKeyOr returns flagValue or the GEMINI_API_KEY environment variable
func apiKeyOr(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(llm.EnvAPIKey)
}

// extractKeywordsFromFile reads a job description and asks the model for its keywords
func extractKeywordsFromFile(ctx context.Context, path, apiKey string) ([]types.ExtractedKeyword, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("keyword extraction needs an API key (--api-key or %s)", llm.EnvAPIKey)
	}

	text, _, err := ingestion.IngestFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job description: %w", err)
	}

	client, err := newLLMClient(ctx, apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	return llm.ExtractKeywords(ctx, client, text)
}
