package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenRouterProvider(t *testing.T) {
	_, err := NewOpenRouterProvider(OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"})
	assert.Error(t, err, "API key is required")

	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or-test", Model: "openai/gpt-4.1-mini"})
	require.NoError(t, err)
	assert.Equal(t, "openai/gpt-4.1-mini", p.ModelID(), "vendor IDs pass through unmapped")

	p, err = NewOpenRouterProvider(OpenRouterConfig{
		APIKey:  "sk-or-test",
		Model:   "google/gemini-2.5-flash",
		BaseURL: "https://router.example.test/v1",
	})
	require.NoError(t, err)
	assert.NotNil(t, LookupCost(p.ModelID()))
}

func TestOpenRouterAttribution(t *testing.T) {
	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		openAIChoice(assistant("好的"), "stop")(w, r)
	}))
	t.Cleanup(server.Close)

	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or-test", Model: "openai/gpt-4o-mini", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "你好"}}, MaxTokens: 16})
	require.NoError(t, err)
	assert.Equal(t, openRouterTitle, got.Get("X-Title"))
	assert.Equal(t, openRouterReferer, got.Get("HTTP-Referer"))
	assert.Equal(t, "Bearer sk-or-test", got.Get("Authorization"))
}
