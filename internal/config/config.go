// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lawrence-dass/coop-ready/internal/types"
)

// Output formats for CLI results
const (
	OutputJSON = "json"
	OutputText = "text"
)

// DefaultPort is the HTTP port used by serve when none is configured
const DefaultPort = 8080

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	Resume         string `json:"resume,omitempty"`          // Path to resume text file
	ParsedResume   string `json:"parsed_resume,omitempty"`   // Path to parsed resume JSON
	JobDescription string `json:"job_description,omitempty"` // Path to job description (text or HTML)
	Keywords       string `json:"keywords,omitempty"`        // Path to pre-extracted keywords JSON
	Policy         string `json:"policy,omitempty"`          // Path to a gap policy overriding the built-in one

	// Analysis
	CandidateType string              `json:"candidate_type,omitempty"`
	SectionOrder  []types.SectionType `json:"section_order,omitempty"`
	Weights       *types.ScoreWeights `json:"weights,omitempty"`

	// Behavior
	APIKey  string `json:"api_key,omitempty"` // Gemini API key
	Output  string `json:"output,omitempty"`  // json or text
	Port    int    `json:"port,omitempty"`    // HTTP port for serve
	Verbose bool   `json:"verbose,omitempty"` // Print boxed summaries to stderr
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required inputs are checked by the CLI after flags are merged.
func (c *Config) Validate() error {
	if c.JobDescription != "" && c.Keywords != "" {
		return fmt.Errorf("config error: 'job_description' and 'keywords' are mutually exclusive")
	}

	if c.CandidateType != "" {
		if _, err := types.ParseCandidateType(c.CandidateType); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}

	for _, st := range c.SectionOrder {
		if _, ok := types.ParseSectionType(string(st)); !ok {
			return fmt.Errorf("config error: unknown section %q in 'section_order'", st)
		}
	}

	if w := c.Weights; w != nil {
		if w.Keyword < 0 || w.Section < 0 || w.Format < 0 {
			return fmt.Errorf("config error: 'weights' must be non-negative")
		}
		if w.Keyword+w.Section+w.Format == 0 {
			return fmt.Errorf("config error: 'weights' must not all be zero")
		}
	}

	switch c.Output {
	case "", OutputJSON, OutputText:
	default:
		return fmt.Errorf("config error: 'output' must be %q or %q", OutputJSON, OutputText)
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	for field, path := range map[string]string{
		"resume":          c.Resume,
		"parsed_resume":   c.ParsedResume,
		"job_description": c.JobDescription,
		"keywords":        c.Keywords,
		"policy":          c.Policy,
	} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", field, path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.ParsedResume == "" {
		result.ParsedResume = defaults.ParsedResume
	}
	if result.JobDescription == "" {
		result.JobDescription = defaults.JobDescription
	}
	if result.Keywords == "" {
		result.Keywords = defaults.Keywords
	}
	if result.Policy == "" {
		result.Policy = defaults.Policy
	}
	if result.CandidateType == "" {
		result.CandidateType = defaults.CandidateType
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Output == "" {
		if defaults.Output != "" {
			result.Output = defaults.Output
		} else {
			result.Output = OutputJSON
		}
	}

	if len(result.SectionOrder) == 0 && len(defaults.SectionOrder) > 0 {
		result.SectionOrder = append([]types.SectionType(nil), defaults.SectionOrder...)
	}
	if result.Weights == nil && defaults.Weights != nil {
		w := *defaults.Weights
		result.Weights = &w
	}

	if result.Port == 0 {
		if defaults.Port > 0 {
			result.Port = defaults.Port
		} else {
			result.Port = DefaultPort
		}
	}

	// Bool fields: cannot distinguish unset from false, so CLI flags always win

	return result
}
