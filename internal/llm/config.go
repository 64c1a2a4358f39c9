// Package llm wraps the Gemini API for job description keyword extraction.
package llm

import (
	"os"
	"strings"
)

// ModelTier represents the capability level of a model
type ModelTier string

const (
	// TierLite is for extraction and classification
	TierLite ModelTier = "lite"
	// TierStandard is for structured output that needs more reasoning
	TierStandard ModelTier = "standard"
)

// Provider represents an LLM provider
type Provider string

// ProviderGemini is the Google Gemini provider
const ProviderGemini Provider = "gemini"

// Environment variables read by ConfigFromEnv
const (
	EnvAPIKey = "GEMINI_API_KEY"
	EnvModel  = "GEMINI_MODEL"
)

// Config holds the model configuration
type Config struct {
	Provider    Provider
	Models      map[ModelTier]string
	Temperature float32
}

// DefaultConfig returns the default Gemini configuration
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
		Temperature: 0.1,
	}
}

// ConfigFromEnv returns the default configuration with GEMINI_MODEL, when set,
// used for every tier
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()
	if model := strings.TrimSpace(os.Getenv(EnvModel)); model != "" {
		for tier := range cfg.Models {
			cfg.Models[tier] = model
		}
	}
	return cfg
}

// GetModel returns the model name for a tier, falling back to standard then lite
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}
