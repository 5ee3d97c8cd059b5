package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOpenAIProvider(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := openai.DefaultConfig("test-key")
	config.BaseURL = server.URL + "/v1"
	return &OpenAIProvider{client: openai.NewClientWithConfig(config), model: "gpt-4o-mini"}
}

func openAIChoice(message map[string]any, finish string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1757000000,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{{"index": 0, "message": message, "finish_reason": finish}},
			"usage":   map[string]any{"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65},
		})
	}
}

func assistant(content string) map[string]any {
	return map[string]any{"role": "assistant", "content": content}
}

func TestOpenAIProvider_StructuredTask(t *testing.T) {
	var sent struct {
		Messages       []openai.ChatCompletionMessage `json:"messages"`
		ResponseFormat map[string]any                 `json:"response_format"`
	}
	reply := openAIChoice(assistant(`{"title":"数一数台阶","prompt":"上楼时数一数一共有几级台阶"}`), "stop")
	handler := func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&sent)
		reply(w, r)
	}

	p := newTestOpenAIProvider(t, handler)
	resp, err := p.Generate(context.Background(), Request{
		System:    "你是一位耐心的成长教练。",
		Messages:  []Message{{Role: RoleUser, Content: "出一个今日任务"}, {Role: RoleAssistant, Content: "好的"}},
		Schema:    taskSchema(),
		MaxTokens: 256,
	})
	require.NoError(t, err)
	assert.Equal(t, 65, resp.Usage.TotalTokens)
	assert.Equal(t, StopEnd, resp.StopReason)
	assert.Contains(t, string(resp.Content), "数一数台阶")

	require.Len(t, sent.Messages, 3)
	assert.Equal(t, openai.ChatMessageRoleSystem, sent.Messages[0].Role)
	assert.Equal(t, openai.ChatMessageRoleAssistant, sent.Messages[2].Role)
	assert.Equal(t, string(openai.ChatCompletionResponseFormatTypeJSONSchema), sent.ResponseFormat["type"])
}

func TestOpenAIProvider_Blocked(t *testing.T) {
	req := Request{Messages: []Message{{Role: RoleUser, Content: "..."}}, MaxTokens: 64}

	p := newTestOpenAIProvider(t, openAIChoice(assistant(""), "content_filter"))
	_, err := p.Generate(context.Background(), req)
	var blocked *ErrContentBlocked
	require.ErrorAs(t, err, &blocked)
	assert.Equal(t, "content_filter", blocked.Reason)

	refusal := map[string]any{"role": "assistant", "content": "", "refusal": "I can't help with that."}
	p = newTestOpenAIProvider(t, openAIChoice(refusal, "stop"))
	_, err = p.Generate(context.Background(), req)
	require.ErrorAs(t, err, &blocked)
	assert.Equal(t, "I can't help with that.", blocked.Reason)
}

func TestOpenAIProvider_Length(t *testing.T) {
	p := newTestOpenAIProvider(t, openAIChoice(assistant(`{"title":"数`), "length"))
	_, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "出题"}}, Schema: taskSchema(), MaxTokens: 4,
	})
	var mt *ErrMaxTokensExceeded
	assert.ErrorAs(t, err, &mt)
}

func TestOpenAIProvider_HTTPErrors(t *testing.T) {
	status := func(code int) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(code)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"message": http.StatusText(code), "type": "error"},
			})
		}
	}
	req := Request{Messages: []Message{{Role: RoleUser, Content: "test"}}, MaxTokens: 100}

	_, err := newTestOpenAIProvider(t, status(http.StatusTooManyRequests)).Generate(context.Background(), req)
	var rl *ErrRateLimit
	assert.ErrorAs(t, err, &rl)

	_, err = newTestOpenAIProvider(t, status(http.StatusBadGateway)).Generate(context.Background(), req)
	var unavail *ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavail)
}

func TestOpenAIProvider_NoChoices(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "x", "object": "chat.completion", "choices": []any{}})
	}
	_, err := newTestOpenAIProvider(t, handler).Generate(context.Background(), Request{MaxTokens: 10})
	var inv *ErrInvalidResponse
	assert.ErrorAs(t, err, &inv)
}

func TestNewOpenAIProvider(t *testing.T) {
	_, err := NewOpenAIProvider(OpenAIConfig{})
	assert.Error(t, err)

	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "test-key", Model: "gpt-4.1-mini", BaseURL: "https://example.test/v1"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4.1-mini", p.ModelID())
}
