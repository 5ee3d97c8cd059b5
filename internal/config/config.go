// Package config loads runtime settings from defaults, an optional config
// file, a .env file and BUDAI_* environment variables, in increasing order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/abhisek/budai/internal/llm"
)

// EnvPrefix is prepended to every environment override, e.g.
// BUDAI_SERVER_ADDR for server.addr.
const EnvPrefix = "BUDAI"

// devSecret is only accepted when server.mode is "debug".
const devSecret = "budai-dev-secret"

// Config is the fully resolved application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	LLM      llm.Config
	Content  ContentConfig
	Scoring  ScoringConfig
	Rewards  RewardsConfig
	Coach    CoachConfig
	Log      LogConfig
}

type ServerConfig struct {
	Addr string
	Mode string // gin mode: debug, release, test
}

type DatabaseConfig struct {
	Driver string // sqlite or postgres
	DSN    string // empty selects the default SQLite file
}

type AuthConfig struct {
	JWTSecret           string
	TokenTTL            time.Duration
	RequireVerification bool
	DevCodes            bool // echo verification codes in API responses
}

type ContentConfig struct {
	Language string
}

type ScoringConfig struct {
	Weight float64 // share of a new sample in the rolling 5C score
}

type RewardsConfig struct {
	TaskXP int
}

type CoachConfig struct {
	MaxTurns int
}

type LogConfig struct {
	Level  string
	Format string // json or console
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.mode", "release")

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "")

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", 7*24*time.Hour)
	v.SetDefault("auth.require_verification", false)
	v.SetDefault("auth.dev_codes", false)

	d := llm.DefaultConfig()
	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.anthropic.api_key", "")
	v.SetDefault("llm.anthropic.model", d.Anthropic.Model)
	v.SetDefault("llm.openai.api_key", "")
	v.SetDefault("llm.openai.model", d.OpenAI.Model)
	v.SetDefault("llm.openai.base_url", "")
	v.SetDefault("llm.gemini.api_key", "")
	v.SetDefault("llm.gemini.model", d.Gemini.Model)
	v.SetDefault("llm.openrouter.api_key", "")
	v.SetDefault("llm.openrouter.model", d.OpenRouter.Model)
	v.SetDefault("llm.timeout", d.Timeout)
	v.SetDefault("llm.retry.max_attempts", d.Retry.MaxAttempts)
	v.SetDefault("llm.retry.initial_wait", d.Retry.InitialWait)
	v.SetDefault("llm.retry.max_wait", d.Retry.MaxWait)
	v.SetDefault("llm.retry.multiplier", d.Retry.Multiplier)

	v.SetDefault("content.language", "zh-CN")
	v.SetDefault("scoring.weight", 0.3)
	v.SetDefault("rewards.task_xp", 100)
	v.SetDefault("coach.max_turns", 20)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// Load resolves the configuration. path names an optional config file
// (yaml, toml or json); an empty path skips it. A .env file in the working
// directory is loaded if present.
func Load(path string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := fromViper(v)
	if cfg.LLM.Provider == "" {
		if found, ok := llm.DiscoverConfig(); ok {
			cfg.LLM.Provider = found.Provider
			cfg.LLM.Anthropic.APIKey = firstNonEmpty(cfg.LLM.Anthropic.APIKey, found.Anthropic.APIKey)
			cfg.LLM.OpenAI.APIKey = firstNonEmpty(cfg.LLM.OpenAI.APIKey, found.OpenAI.APIKey)
			cfg.LLM.Gemini.APIKey = firstNonEmpty(cfg.LLM.Gemini.APIKey, found.Gemini.APIKey)
			cfg.LLM.OpenRouter.APIKey = firstNonEmpty(cfg.LLM.OpenRouter.APIKey, found.OpenRouter.APIKey)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Server: ServerConfig{
			Addr: v.GetString("server.addr"),
			Mode: v.GetString("server.mode"),
		},
		Database: DatabaseConfig{
			Driver: v.GetString("database.driver"),
			DSN:    v.GetString("database.dsn"),
		},
		Auth: AuthConfig{
			JWTSecret:           v.GetString("auth.jwt_secret"),
			TokenTTL:            v.GetDuration("auth.token_ttl"),
			RequireVerification: v.GetBool("auth.require_verification"),
			DevCodes:            v.GetBool("auth.dev_codes"),
		},
		LLM: llm.Config{
			Provider: v.GetString("llm.provider"),
			Anthropic: llm.AnthropicConfig{
				APIKey: v.GetString("llm.anthropic.api_key"),
				Model:  v.GetString("llm.anthropic.model"),
			},
			OpenAI: llm.OpenAIConfig{
				APIKey:  v.GetString("llm.openai.api_key"),
				Model:   v.GetString("llm.openai.model"),
				BaseURL: v.GetString("llm.openai.base_url"),
			},
			Gemini: llm.GeminiConfig{
				APIKey: v.GetString("llm.gemini.api_key"),
				Model:  v.GetString("llm.gemini.model"),
			},
			OpenRouter: llm.OpenRouterConfig{
				APIKey: v.GetString("llm.openrouter.api_key"),
				Model:  v.GetString("llm.openrouter.model"),
			},
			Retry: llm.RetryConfig{
				MaxAttempts: v.GetInt("llm.retry.max_attempts"),
				InitialWait: v.GetDuration("llm.retry.initial_wait"),
				MaxWait:     v.GetDuration("llm.retry.max_wait"),
				Multiplier:  v.GetFloat64("llm.retry.multiplier"),
			},
			Timeout: v.GetDuration("llm.timeout"),
		},
		Content: ContentConfig{Language: v.GetString("content.language")},
		Scoring: ScoringConfig{Weight: v.GetFloat64("scoring.weight")},
		Rewards: RewardsConfig{TaskXP: v.GetInt("rewards.task_xp")},
		Coach:   CoachConfig{MaxTurns: v.GetInt("coach.max_turns")},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var errs []error

	if c.Scoring.Weight <= 0 || c.Scoring.Weight > 1 {
		errs = append(errs, fmt.Errorf("scoring.weight must be in (0,1], got %v", c.Scoring.Weight))
	}
	if c.Rewards.TaskXP < 0 {
		errs = append(errs, fmt.Errorf("rewards.task_xp must not be negative"))
	}
	if c.Coach.MaxTurns < 1 {
		errs = append(errs, fmt.Errorf("coach.max_turns must be at least 1"))
	}
	switch c.Database.Driver {
	case "sqlite", "postgres":
	default:
		errs = append(errs, fmt.Errorf("database.driver must be sqlite or postgres, got %q", c.Database.Driver))
	}
	if c.Database.Driver == "postgres" && c.Database.DSN == "" {
		errs = append(errs, fmt.Errorf("database.dsn is required for postgres"))
	}
	if c.LLM.Provider != "" {
		if err := c.LLM.Validate(); err != nil {
			errs = append(errs, err)
		}
	} else if err := c.LLM.Retry.Validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// ValidateServer checks the settings only the HTTP server needs. In debug
// mode a missing JWT secret is replaced with a fixed development secret.
func (c *Config) ValidateServer() error {
	if !c.JWTSecretMissing() {
		return nil
	}
	if c.Server.Mode == "debug" {
		c.Auth.JWTSecret = devSecret
		return nil
	}
	return fmt.Errorf("auth.jwt_secret is required (set %s_AUTH_JWT_SECRET)", EnvPrefix)
}

// JWTSecretMissing reports whether no signing secret is configured.
func (c *Config) JWTSecretMissing() bool {
	return c.Auth.JWTSecret == ""
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
