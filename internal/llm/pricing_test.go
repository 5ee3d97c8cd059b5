package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCost(t *testing.T) {
	tests := []struct {
		model string
		input float64
	}{
		{"claude-haiku-4-5-20251001", 1},
		{"claude-sonnet-4-5-20250929", 3},
		{"gpt-4o-mini", 0.15},
		{"gpt-4o-2024-08-06", 2.5},
		{"openai/gpt-4.1-mini", 0.4},
		{"google/gemini-2.5-flash", 0.3},
	}
	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			c := LookupCost(tt.model)
			require.NotNil(t, c)
			assert.Equal(t, tt.input, c.InputPerMTok)
		})
	}

	assert.Nil(t, LookupCost("mock"))
	assert.Nil(t, LookupCost(""))
}

func TestModelCost_Cost(t *testing.T) {
	c := ModelCost{InputPerMTok: 1, OutputPerMTok: 5}
	assert.InDelta(t, 0.0035, c.Cost(1000, 500), 1e-9)
}
