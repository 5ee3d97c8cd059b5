package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/budai/internal/llm"
)

func clearLLMKeys(t *testing.T) {
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearLLMKeys(t)
	t.Chdir(t.TempDir())
	t.Setenv("BUDAI_AUTH_JWT_SECRET", "s3cret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 0.3, cfg.Scoring.Weight)
	assert.Equal(t, 100, cfg.Rewards.TaskXP)
	assert.Equal(t, 20, cfg.Coach.MaxTurns)
	assert.Equal(t, "zh-CN", cfg.Content.Language)
	assert.Empty(t, cfg.LLM.Provider)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearLLMKeys(t)
	t.Chdir(t.TempDir())
	t.Setenv("BUDAI_AUTH_JWT_SECRET", "s3cret")
	t.Setenv("BUDAI_SCORING_WEIGHT", "0.5")
	t.Setenv("BUDAI_LLM_PROVIDER", "mock")
	t.Setenv("BUDAI_COACH_MAX_TURNS", "5")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.Scoring.Weight)
	assert.Equal(t, "mock", cfg.LLM.Provider)
	assert.Equal(t, 5, cfg.Coach.MaxTurns)
}

func TestLoad_ConfigFileAndDotEnv(t *testing.T) {
	clearLLMKeys(t)
	dir := t.TempDir()
	t.Chdir(dir)
	t.Cleanup(func() { os.Unsetenv("BUDAI_AUTH_JWT_SECRET") })

	require.NoError(t, os.WriteFile(".env", []byte("BUDAI_AUTH_JWT_SECRET=from-dotenv\n"), 0o600))
	path := filepath.Join(dir, "budai.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rewards:\n  task_xp: 150\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 150, cfg.Rewards.TaskXP)
	assert.Equal(t, "from-dotenv", cfg.Auth.JWTSecret)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server:   ServerConfig{Mode: "release"},
			Database: DatabaseConfig{Driver: "sqlite"},
			Auth:     AuthConfig{JWTSecret: "x"},
			Scoring:  ScoringConfig{Weight: 0.3},
			Rewards:  RewardsConfig{TaskXP: 100},
			Coach:    CoachConfig{MaxTurns: 20},
			LLM:      llm.Config{Retry: llm.DefaultConfig().Retry},
		}
	}

	require.NoError(t, base().Validate())

	c := base()
	c.Scoring.Weight = 0
	assert.Error(t, c.Validate())

	c = base()
	c.Scoring.Weight = 1.5
	assert.Error(t, c.Validate())

	c = base()
	c.Auth.JWTSecret = ""
	require.NoError(t, c.Validate(), "secret is only checked for the server")
	assert.Error(t, c.ValidateServer())

	c = base()
	c.Auth.JWTSecret = ""
	c.Server.Mode = "debug"
	require.NoError(t, c.ValidateServer())
	assert.Equal(t, devSecret, c.Auth.JWTSecret)

	c = base()
	c.Database.Driver = "postgres"
	assert.Error(t, c.Validate())

	c = base()
	c.LLM.Provider = "anthropic"
	assert.Error(t, c.Validate(), "missing api key")

	c = base()
	c.LLM.Retry.MaxAttempts = 0
	assert.Error(t, c.Validate(), "retry policy is checked without a provider")

	c = base()
	c.LLM.Provider = "mock"
	c.LLM.Retry.MaxWait = 0
	assert.Error(t, c.Validate())
}

func TestNewLogger(t *testing.T) {
	l, err := NewLogger(LogConfig{Level: "warn", Format: "console"}, false)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(-1))

	l, err = NewLogger(LogConfig{Level: "warn"}, true)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(-1))

	_, err = NewLogger(LogConfig{Level: "loud"}, false)
	assert.Error(t, err)
}
