package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	assert.Equal(t, "gemini-2.5-flash", resolveModel("gemini-flash", geminiModels))
	assert.Equal(t, "gemini-2.5-pro", resolveModel("gemini-pro", geminiModels))
	assert.Equal(t, "gemini-2.0-flash", resolveModel("gemini-2.0-flash", geminiModels))
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"feedback": map[string]any{"type": "string", "description": "写给孩子的话"},
			"score":    map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
			"ability":  map[string]any{"type": "string", "enum": []any{"expression", "logic"}},
			"games": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 1,
				"maxItems": float64(3),
			},
		},
		"required": []any{"feedback", "score"},
	}

	schema := buildGeminiSchema(def)

	assert.Equal(t, genai.TypeObject, schema.Type)
	require.Len(t, schema.Properties, 4)
	assert.Equal(t, genai.TypeString, schema.Properties["feedback"].Type)
	assert.Equal(t, "写给孩子的话", schema.Properties["feedback"].Description)
	assert.Len(t, schema.Properties["ability"].Enum, 2)
	assert.ElementsMatch(t, []string{"feedback", "score"}, schema.Required)

	score := schema.Properties["score"]
	assert.Equal(t, genai.TypeInteger, score.Type)
	require.NotNil(t, score.Minimum)
	require.NotNil(t, score.Maximum)
	assert.Equal(t, 1.0, *score.Minimum)
	assert.Equal(t, 5.0, *score.Maximum)

	games := schema.Properties["games"]
	assert.Equal(t, genai.TypeArray, games.Type)
	assert.Equal(t, genai.TypeString, games.Items.Type)
	require.NotNil(t, games.MinItems)
	require.NotNil(t, games.MaxItems)
	assert.Equal(t, int64(1), *games.MinItems)
	assert.Equal(t, int64(3), *games.MaxItems)
}

func TestMapGeminiStopReason(t *testing.T) {
	result := func(r genai.FinishReason) *genai.GenerateContentResponse {
		return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{FinishReason: r}}}
	}
	assert.Equal(t, StopEnd, mapGeminiStopReason(result(genai.FinishReasonStop)))
	assert.Equal(t, StopMaxTokens, mapGeminiStopReason(result(genai.FinishReasonMaxTokens)))
	assert.Equal(t, StopBlocked, mapGeminiStopReason(result(genai.FinishReasonSafety)))
	assert.Equal(t, StopBlocked, mapGeminiStopReason(result(genai.FinishReasonProhibitedContent)))
	assert.Equal(t, StopEnd, mapGeminiStopReason(&genai.GenerateContentResponse{}))
	assert.Equal(t, "SAFETY", geminiFinishReason(result(genai.FinishReasonSafety)))
}
