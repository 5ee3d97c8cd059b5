package llm

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Config selects and tunes the provider behind the tutor. It is filled
// from the llm.* keys of the budai config.
type Config struct {
	// Provider is one of anthropic, openai, gemini, openrouter or mock.
	// Empty means no provider and the tutor serves fallbacks only.
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds one tutor call, retries included. Zero disables it.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

// OpenAIConfig.BaseURL points the client at any OpenAI-compatible API.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig drives the backoff in RetryProvider. MaxWait also caps any
// Retry-After the provider asks for.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// Validate rejects settings that would make RetryProvider misbehave.
func (r RetryConfig) Validate() error {
	var errs []error
	if r.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("llm.retry.max_attempts must be at least 1, got %d", r.MaxAttempts))
	}
	if r.InitialWait <= 0 {
		errs = append(errs, fmt.Errorf("llm.retry.initial_wait must be positive, got %s", r.InitialWait))
	}
	if r.MaxWait < r.InitialWait {
		errs = append(errs, fmt.Errorf("llm.retry.max_wait (%s) must not be below initial_wait (%s)", r.MaxWait, r.InitialWait))
	}
	if r.Multiplier < 1 {
		errs = append(errs, fmt.Errorf("llm.retry.multiplier must be at least 1, got %v", r.Multiplier))
	}
	return errors.Join(errs...)
}

// DefaultConfig uses the small, cheap model of each vendor. Coach replies
// are short and task JSON is small, so larger models add cost, not quality.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.5-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// vendorKeys lists the standard key variables in discovery order.
var vendorKeys = []struct {
	env      string
	provider string
	set      func(*Config, string)
}{
	{"GEMINI_API_KEY", "gemini", func(c *Config, k string) { c.Gemini.APIKey = k }},
	{"OPENAI_API_KEY", "openai", func(c *Config, k string) { c.OpenAI.APIKey = k }},
	{"ANTHROPIC_API_KEY", "anthropic", func(c *Config, k string) { c.Anthropic.APIKey = k }},
	{"OPENROUTER_API_KEY", "openrouter", func(c *Config, k string) { c.OpenRouter.APIKey = k }},
}

// DiscoverConfig picks the first vendor whose standard API key variable is
// set, so a developer key works without any BUDAI_LLM_* settings.
func DiscoverConfig() (Config, bool) {
	for _, v := range vendorKeys {
		if k := os.Getenv(v.env); k != "" {
			cfg := DefaultConfig()
			cfg.Provider = v.provider
			v.set(&cfg, k)
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate checks the selected provider's key, the retry policy and the
// timeout.
func (c Config) Validate() error {
	var errs []error
	if key, ok := c.apiKey(); !ok {
		errs = append(errs, fmt.Errorf("unknown LLM provider: %q", c.Provider))
	} else if key == "" && c.Provider != "mock" {
		errs = append(errs, fmt.Errorf("BUDAI_LLM_%s_API_KEY is required for the %s provider", strings.ToUpper(c.Provider), c.Provider))
	}
	if err := c.Retry.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("llm.timeout must not be negative, got %s", c.Timeout))
	}
	return errors.Join(errs...)
}

func (c Config) apiKey() (string, bool) {
	switch c.Provider {
	case "anthropic":
		return c.Anthropic.APIKey, true
	case "openai":
		return c.OpenAI.APIKey, true
	case "gemini":
		return c.Gemini.APIKey, true
	case "openrouter":
		return c.OpenRouter.APIKey, true
	case "mock":
		return "", true
	}
	return "", false
}
