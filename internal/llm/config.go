package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds provider configuration.
type Config struct {
	// Provider selects the backend: "anthropic", "openai", or "mock".
	Provider string

	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig
	Retry     RetryConfig
}

// AnthropicConfig holds Anthropic-specific settings.
type AnthropicConfig struct {
	APIKey string
	Model  string
}

// OpenAIConfig holds OpenAI-specific settings. BaseURL allows
// OpenAI-compatible endpoints such as OpenRouter.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "anthropic",
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
	}
}

// ConfigFromEnv builds a Config from DSAGEN_* environment variables,
// falling back to the standard API key variables when the prefixed
// ones are unset.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("DSAGEN_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}

	if k := os.Getenv("DSAGEN_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	} else if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("DSAGEN_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	if k := os.Getenv("DSAGEN_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	} else if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("DSAGEN_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("DSAGEN_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	// When no provider was chosen explicitly, pick the first one with a key.
	if os.Getenv("DSAGEN_LLM_PROVIDER") == "" {
		switch {
		case cfg.Anthropic.APIKey != "":
			cfg.Provider = "anthropic"
		case cfg.OpenAI.APIKey != "":
			cfg.Provider = "openai"
		}
	}

	return cfg
}

// Validate checks that the selected provider has its required API key.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("DSAGEN_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("DSAGEN_OPENAI_API_KEY is required for the openai provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
