package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode"

	"github.com/lawrence-dass/coop-ready/internal/prompts"
	"github.com/lawrence-dass/coop-ready/internal/types"
)

// ParseError represents a model response that could not be read as keywords
type ParseError struct {
	Message string
	Raw     string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// knownCategories are offered to the model and used to normalize its spelling
var knownCategories = []types.KeywordCategory{
	types.CategorySkills,
	types.CategoryTechnologies,
	types.CategorySoftSkills,
	types.CategoryQualifications,
	types.CategoryExperience,
	types.CategoryCertifications,
	types.CategoryOther,
}

// ExtractKeywords asks the model for the ATS keywords in a job description.
// A response that does not parse is retried once with a stricter prompt.
func ExtractKeywords(ctx context.Context, client Client, jdText string) ([]types.ExtractedKeyword, error) {
	jdText = strings.TrimSpace(jdText)
	if jdText == "" {
		return nil, fmt.Errorf("job description is empty")
	}

	names := make([]string, len(knownCategories))
	for i, c := range knownCategories {
		names[i] = string(c)
	}
	prompt, err := prompts.Render(prompts.KeywordsFile, "extract-keywords", map[string]string{
		"JobDescription": jdText,
		"Categories":     strings.Join(names, ", "),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build keyword prompt: %w", err)
	}

	log.Printf("[LLM] Extracting keywords from %d-character job description", len(jdText))
	raw, err := client.GenerateJSON(ctx, prompt, TierLite)
	if err != nil {
		return nil, fmt.Errorf("keyword extraction failed: %w", err)
	}

	kws, err := ParseKeywords(raw)
	var pe *ParseError
	if errors.As(err, &pe) {
		log.Printf("[LLM] Keyword response did not parse, retrying: %v", err)
		retry, rerr := prompts.Render(prompts.KeywordsFile, "extract-keywords-retry", map[string]string{"JobDescription": jdText})
		if rerr != nil {
			return nil, fmt.Errorf("failed to build retry prompt: %w", rerr)
		}
		raw, err = client.GenerateJSON(ctx, retry, TierLite)
		if err != nil {
			return nil, fmt.Errorf("keyword extraction retry failed: %w", err)
		}
		kws, err = ParseKeywords(raw)
	}
	if err != nil {
		return nil, err
	}

	log.Printf("[LLM] Extracted %d keywords", len(kws))
	return kws, nil
}

// looseString accepts a JSON string and treats any other value as empty
type looseString string

func (s *looseString) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		*s = looseString(str)
	}
	return nil
}

type rawKeyword struct {
	Keyword    looseString `json:"keyword"`
	Category   looseString `json:"category"`
	Importance looseString `json:"importance"`
}

// ParseKeywords reads a keyword list from model output.
// The list may be a bare array or wrapped in {"keywords": [...]}; entries may be
// objects or plain strings. Blank keywords are dropped, duplicates are removed
// case-insensitively, and missing or unknown importance becomes medium.
func ParseKeywords(raw string) ([]types.ExtractedKeyword, error) {
	cleaned := []byte(CleanJSONBlock(raw))
	if len(bytes.TrimSpace(cleaned)) == 0 {
		return nil, &ParseError{Message: "empty keyword response", Raw: raw}
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(cleaned, &entries); err != nil {
		var wrapped struct {
			Keywords []json.RawMessage `json:"keywords"`
		}
		if werr := json.Unmarshal(cleaned, &wrapped); werr != nil || wrapped.Keywords == nil {
			return nil, &ParseError{Message: "keyword response is not a JSON array", Raw: raw, Cause: err}
		}
		entries = wrapped.Keywords
	}

	out := make([]types.ExtractedKeyword, 0, len(entries))
	seen := make(map[string]bool)
	for _, entry := range entries {
		var rk rawKeyword
		var plain string
		if err := json.Unmarshal(entry, &plain); err == nil {
			rk.Keyword = looseString(plain)
		} else if err := json.Unmarshal(entry, &rk); err != nil {
			continue
		}

		kw := types.ExtractedKeyword{
			Keyword:    string(rk.Keyword),
			Category:   normalizeCategory(string(rk.Category)),
			Importance: types.Importance(rk.Importance),
		}.Normalized()
		if kw.Keyword == "" {
			continue
		}
		key := strings.ToLower(kw.Keyword)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, kw)
	}
	return out, nil
}

// normalizeCategory maps spellings like "soft skills" onto known categories
func normalizeCategory(raw string) types.KeywordCategory {
	squash := func(s string) string {
		return strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) {
				return unicode.ToLower(r)
			}
			return -1
		}, s)
	}
	key := squash(raw)
	for _, c := range knownCategories {
		if squash(string(c)) == key {
			return c
		}
	}
	return types.NormalizeCategory(raw)
}
