package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnthropicProvider(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL),
		option.WithMaxRetries(0),
	)
	return &AnthropicProvider{client: &client, model: "claude-haiku-4-5-20251001"}
}

func anthropicMessage(text, stop string) map[string]any {
	return map[string]any{
		"id":          "msg_test",
		"type":        "message",
		"role":        "assistant",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"model":       "claude-haiku-4-5-20251001",
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
	}
}

func anthropicReply(status int, body any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}
}

func TestAnthropicProvider_StructuredTask(t *testing.T) {
	var sent map[string]any
	handler := func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&sent)
		anthropicReply(http.StatusOK, anthropicMessage(`{"title":"厨房小侦探","prompt":"找一找厨房里会变形的东西"}`, "end_turn"))(w, r)
	}

	p := newTestAnthropicProvider(t, handler)
	resp, err := p.Generate(context.Background(), Request{
		System:    "你是一位耐心的成长教练。",
		Messages:  []Message{{Role: RoleUser, Content: "为8岁的孩子出一个今日任务"}},
		Schema:    taskSchema(),
		MaxTokens: 512,
	})
	require.NoError(t, err)
	assert.Equal(t, 50, resp.Usage.InputTokens)
	assert.Equal(t, 80, resp.Usage.TotalTokens)
	assert.Equal(t, StopEnd, resp.StopReason)
	assert.Contains(t, string(resp.Content), "厨房小侦探")

	system, ok := sent["system"].([]any)
	require.True(t, ok)
	require.Len(t, system, 1)
	assert.Contains(t, system[0], "cache_control")
}

func TestAnthropicProvider_StopReasons(t *testing.T) {
	t.Run("refusal is blocked", func(t *testing.T) {
		p := newTestAnthropicProvider(t, anthropicReply(http.StatusOK, anthropicMessage("", "refusal")))
		_, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "..."}}, MaxTokens: 64})
		var blocked *ErrContentBlocked
		require.ErrorAs(t, err, &blocked)
		assert.Equal(t, "refusal", blocked.Reason)
	})

	t.Run("truncated json", func(t *testing.T) {
		p := newTestAnthropicProvider(t, anthropicReply(http.StatusOK, anthropicMessage(`{"title":"厨`, "max_tokens")))
		_, err := p.Generate(context.Background(), Request{
			Messages: []Message{{Role: RoleUser, Content: "出题"}}, Schema: taskSchema(), MaxTokens: 8,
		})
		var mt *ErrMaxTokensExceeded
		assert.ErrorAs(t, err, &mt)
	})

	t.Run("truncated free text is kept", func(t *testing.T) {
		p := newTestAnthropicProvider(t, anthropicReply(http.StatusOK, anthropicMessage("你观察得真仔细", "max_tokens")))
		resp, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "聊聊"}}, MaxTokens: 8})
		require.NoError(t, err)
		assert.Equal(t, StopMaxTokens, resp.StopReason)
	})
}

func TestAnthropicProvider_HTTPErrors(t *testing.T) {
	apiError := func(kind string) map[string]any {
		return map[string]any{"type": "error", "error": map[string]any{"type": kind, "message": kind}}
	}
	req := Request{Messages: []Message{{Role: RoleUser, Content: "test"}}, MaxTokens: 100}

	p := newTestAnthropicProvider(t, anthropicReply(http.StatusTooManyRequests, apiError("rate_limit_error")))
	_, err := p.Generate(context.Background(), req)
	var rl *ErrRateLimit
	assert.ErrorAs(t, err, &rl)

	p = newTestAnthropicProvider(t, anthropicReply(http.StatusInternalServerError, apiError("api_error")))
	_, err = p.Generate(context.Background(), req)
	var unavail *ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavail)
}

func TestAnthropicModelMapping(t *testing.T) {
	assert.Equal(t, "claude-sonnet-4-5-20250929", resolveModel("claude-sonnet", anthropicModels))
	assert.Equal(t, "claude-haiku-4-5-20251001", resolveModel("claude-haiku", anthropicModels))
	assert.Equal(t, "claude-opus-4-1", resolveModel("claude-opus-4-1", anthropicModels))
	assert.Equal(t, "claude-haiku-4-5-20251001", (&AnthropicProvider{model: "claude-haiku-4-5-20251001"}).ModelID())
}
