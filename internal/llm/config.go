package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects the text provider.
	// Values: "gemini", "openai", "anthropic", "openrouter", "mock"
	Provider string

	// ImageProvider selects the image provider. Empty means the text
	// provider when it can draw, otherwise the first of gemini/openai
	// with a key.
	ImageProvider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single request including retries. Plan generation
	// with search grounding and thinking is slow, hence the generous default.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey    string
	Model     string // Default: "claude-sonnet"
	FastModel string // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey     string
	Model      string // Default: "gpt-plan"
	FastModel  string // Default: "gpt-fast"
	ImageModel string // Default: "gpt-image"
	BaseURL    string // Optional. Override for compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey     string
	Model      string // Default: "gemini-pro"
	FastModel  string // Default: "gemini-flash"
	ImageModel string // Default: "gemini-image"
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey    string
	Model     string // Default: "google/gemini-3-pro-preview"
	FastModel string // Default: "google/gemini-3-flash-preview"
	BaseURL   string // Default: "https://openrouter.ai/api/v1"
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
		Provider: "gemini",
		Anthropic: AnthropicConfig{
			Model:     "claude-sonnet",
			FastModel: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model:      "gpt-plan",
			FastModel:  "gpt-fast",
			ImageModel: "gpt-image",
		},
		Gemini: GeminiConfig{
			Model:      "gemini-pro",
			FastModel:  "gemini-flash",
			ImageModel: "gemini-image",
		},
		OpenRouter: OpenRouterConfig{
			Model:     "google/gemini-3-pro-preview",
			FastModel: "google/gemini-3-flash-preview",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 3 * time.Minute,
	}
}

// DiscoverKeys fills empty API keys from the vendors' standard environment
// variables (GEMINI_API_KEY, OPENAI_API_KEY, ...). When the configured
// provider has no key but another one does, the provider is switched to
// the first one found in the order Gemini, OpenAI, Anthropic, OpenRouter.
func DiscoverKeys(cfg Config) Config {
	if cfg.Gemini.APIKey == "" {
		cfg.Gemini.APIKey = firstEnv("GEMINI_API_KEY", "GOOGLE_API_KEY")
	}
	if cfg.OpenAI.APIKey == "" {
		cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.Anthropic.APIKey == "" {
		cfg.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if cfg.OpenRouter.APIKey == "" {
		cfg.OpenRouter.APIKey = os.Getenv("OPENROUTER_API_KEY")
	}

	if cfg.Provider == "mock" || cfg.KeyFor(cfg.Provider) != "" {
		return cfg
	}
	for _, p := range []string{"gemini", "openai", "anthropic", "openrouter"} {
		if cfg.KeyFor(p) != "" {
			cfg.Provider = p
			break
		}
	}
	return cfg
}

func firstEnv(names ...string) string {
	for _, n := range names {
		if v := os.Getenv(n); v != "" {
			return v
		}
	}
	return ""
}

// KeyFor returns the API key configured for provider.
func (c Config) KeyFor(provider string) string {
	switch provider {
	case "gemini":
		return c.Gemini.APIKey
	case "openai":
		return c.OpenAI.APIKey
	case "anthropic":
		return c.Anthropic.APIKey
	case "openrouter":
		return c.OpenRouter.APIKey
	}
	return ""
}

// HasKey reports whether the selected text provider can be used.
func (c Config) HasKey() bool {
	return c.Provider == "mock" || c.KeyFor(c.Provider) != ""
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("anthropic.api_key is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("openai.api_key is required for the openai provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("gemini.api_key is required for the gemini provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("openrouter.api_key is required for the openrouter provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}

// resolveImageProvider picks the image backend following the rules on
// Config.ImageProvider. It returns "" when no backend is usable.
func (c Config) resolveImageProvider() string {
	if c.ImageProvider != "" {
		return c.ImageProvider
	}
	switch c.Provider {
	case "gemini", "openai", "mock":
		return c.Provider
	}
	for _, p := range []string{"gemini", "openai"} {
		if c.KeyFor(p) != "" {
			return p
		}
	}
	return ""
}
