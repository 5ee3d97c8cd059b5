package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evaluationSchema() *Schema {
	return &Schema{
		Name: "evaluation-test",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"feedback": map[string]any{"type": "string"},
				"score":    map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
				"ability":  map[string]any{"type": "string", "enum": []any{"expression", "logic", "creativity"}},
				"tags": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"feedback", "score"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"feedback":"说得很有条理","score":4,"ability":"logic"}`, false},
		{"optional fields omitted", `{"feedback":"继续加油","score":3}`, false},
		{"missing required", `{"feedback":"继续加油"}`, true},
		{"wrong type", `{"feedback":"好","score":"四"}`, true},
		{"out of range", `{"feedback":"好","score":9}`, true},
		{"unknown enum", `{"feedback":"好","score":3,"ability":"music"}`, true},
		{"bad array items", `{"feedback":"好","score":3,"tags":[1,2]}`, true},
		{"malformed", `{not json}`, true},
		{"empty", ``, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validateResponse(evaluationSchema(), json.RawMessage(tt.raw))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var inv *ErrInvalidResponse
			require.ErrorAs(t, err, &inv)
			assert.Equal(t, tt.raw, string(inv.Content))
		})
	}
}

func TestValidateResponse_StripsFence(t *testing.T) {
	raw := json.RawMessage("```json\n{\"feedback\":\"真棒\",\"score\":5}\n```\n")
	body, err := validateResponse(evaluationSchema(), raw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"feedback":"真棒","score":5}`, string(body))
}

func TestValidateResponse_NilSchemaPassesThrough(t *testing.T) {
	raw := json.RawMessage("你好呀")
	body, err := validateResponse(nil, raw)
	require.NoError(t, err)
	assert.Equal(t, raw, body)
}

func TestStripFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, string(stripFence([]byte("  {\"a\":1}\n"))))
	assert.Equal(t, `{"a":1}`, string(stripFence([]byte("```\n{\"a\":1}```"))))
}
