package llm

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func taskSchema() *Schema {
	return &Schema{
		Name: "daily-task-test",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title":  map[string]any{"type": "string"},
				"prompt": map[string]any{"type": "string"},
			},
			"required": []any{"title", "prompt"},
		},
	}
}

func TestMockProvider_ReplaysInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"title":"观察云朵"}`), Usage: Usage{InputTokens: 10, OutputTokens: 5}},
		MockJSON(map[string]string{"reply": "你觉得云朵像什么？"}),
	)

	first, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "今天的任务"}}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"观察云朵"}`, string(first.Content))
	assert.Equal(t, 10, first.Usage.InputTokens)
	assert.Equal(t, StopEnd, first.StopReason)

	second, err := mock.Generate(context.Background(), Request{System: "你是陪练老师"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"reply":"你觉得云朵像什么？"}`, string(second.Content))

	assert.Equal(t, 2, mock.CallCount())
	assert.Equal(t, "你是陪练老师", mock.LastRequest().System)
}

func TestMockProvider_Errors(t *testing.T) {
	t.Run("empty queue is an outage", func(t *testing.T) {
		_, err := NewMockProvider().Generate(context.Background(), Request{})
		var unavail *ErrProviderUnavailable
		assert.ErrorAs(t, err, &unavail)
	})

	t.Run("queued error", func(t *testing.T) {
		_, err := NewMockProvider(MockResponse{Err: &ErrRateLimit{}}).Generate(context.Background(), Request{})
		var rl *ErrRateLimit
		assert.ErrorAs(t, err, &rl)
	})

	t.Run("blocked stop", func(t *testing.T) {
		mock := NewMockProvider(MockResponse{StopReason: StopBlocked})
		_, err := mock.Generate(context.Background(), Request{})
		var blocked *ErrContentBlocked
		assert.ErrorAs(t, err, &blocked)
	})

	t.Run("truncated structured output", func(t *testing.T) {
		mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"title":"观`), StopReason: StopMaxTokens})
		_, err := mock.Generate(context.Background(), Request{Schema: taskSchema()})
		var mt *ErrMaxTokensExceeded
		require.ErrorAs(t, err, &mt)
		assert.Equal(t, `{"title":"观`, string(mt.Content))
	})

	assert.Nil(t, NewMockProvider().LastRequest())
}

func TestCheckStop(t *testing.T) {
	body := json.RawMessage(`{"reply":"好"}`)

	assert.NoError(t, checkStop(StopEnd, "end_turn", taskSchema(), body))
	assert.NoError(t, checkStop(StopMaxTokens, "length", nil, body), "free text may be cut short")

	var mt *ErrMaxTokensExceeded
	assert.ErrorAs(t, checkStop(StopMaxTokens, "length", taskSchema(), body), &mt)

	var blocked *ErrContentBlocked
	require.ErrorAs(t, checkStop(StopBlocked, "SAFETY", nil, body), &blocked)
	assert.Equal(t, "SAFETY", blocked.Reason)
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "unknown", PurposeFrom(ctx))
	assert.Equal(t, PurposeCoach, PurposeFrom(WithPurpose(ctx, PurposeCoach)))
}

func TestConfig_Validate(t *testing.T) {
	with := func(mod func(*Config)) Config {
		c := DefaultConfig()
		mod(&c)
		return c
	}
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", with(func(c *Config) {}), true},
		{"anthropic with key", with(func(c *Config) { c.Anthropic.APIKey = "sk-test" }), false},
		{"openai without key", with(func(c *Config) { c.Provider = "openai" }), true},
		{"openai with key", with(func(c *Config) { c.Provider = "openai"; c.OpenAI.APIKey = "sk-test" }), false},
		{"gemini without key", with(func(c *Config) { c.Provider = "gemini" }), true},
		{"openrouter with key", with(func(c *Config) { c.Provider = "openrouter"; c.OpenRouter.APIKey = "sk-or" }), false},
		{"mock needs no key", with(func(c *Config) { c.Provider = "mock" }), false},
		{"unknown provider", with(func(c *Config) { c.Provider = "unknown" }), true},
		{"zero attempts", with(func(c *Config) { c.Provider = "mock"; c.Retry.MaxAttempts = 0 }), true},
		{"negative attempts", with(func(c *Config) { c.Provider = "mock"; c.Retry.MaxAttempts = -2 }), true},
		{"zero initial wait", with(func(c *Config) { c.Provider = "mock"; c.Retry.InitialWait = 0 }), true},
		{"max wait below initial", with(func(c *Config) { c.Provider = "mock"; c.Retry.MaxWait = time.Millisecond }), true},
		{"shrinking multiplier", with(func(c *Config) { c.Provider = "mock"; c.Retry.Multiplier = 0.5 }), true},
		{"negative timeout", with(func(c *Config) { c.Provider = "mock"; c.Timeout = -time.Second }), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDiscoverConfig(t *testing.T) {
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
	_, ok := DiscoverConfig()
	assert.False(t, ok)

	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	t.Setenv("OPENAI_API_KEY", "sk-oai")
	cfg, ok := DiscoverConfig()
	require.True(t, ok)
	assert.Equal(t, "openai", cfg.Provider, "openai is checked before anthropic")
	assert.Equal(t, "sk-oai", cfg.OpenAI.APIKey)
	assert.NoError(t, cfg.Validate())
}
