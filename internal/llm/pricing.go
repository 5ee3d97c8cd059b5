package llm

import "strings"

// ModelCost is USD per million tokens.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return float64(inputTokens)*c.InputPerMTok/1_000_000 +
		float64(outputTokens)*c.OutputPerMTok/1_000_000
}

// LookupCost finds pricing for a model ID as reported by a provider.
// OpenRouter IDs carry a vendor prefix ("openai/gpt-4o-mini") and dated
// snapshots a suffix; both fall back to the base entry. Returns nil when
// the model is not priced.
func LookupCost(modelID string) *ModelCost {
	id := modelID
	if i := strings.LastIndex(id, "/"); i >= 0 {
		id = id[i+1:]
	}
	for _, candidate := range []string{id, strings.TrimSuffix(id, "-latest"), trimSnapshot(id)} {
		if c, ok := modelCosts[candidate]; ok {
			return &c
		}
	}
	return nil
}

// trimSnapshot strips a trailing date such as -20250929 or -2024-08-06.
func trimSnapshot(id string) string {
	parts := strings.Split(id, "-")
	n := len(parts)
	switch {
	case n > 1 && isDigits(parts[n-1], 8):
		parts = parts[:n-1]
	case n > 3 && isDigits(parts[n-3], 4) && isDigits(parts[n-2], 2) && isDigits(parts[n-1], 2):
		parts = parts[:n-3]
	}
	return strings.Join(parts, "-")
}

func isDigits(s string, width int) bool {
	if len(s) != width {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Prices as published by each vendor, September 2025.
var modelCosts = map[string]ModelCost{
	"claude-haiku-4-5":  {1, 5},
	"claude-sonnet-4":   {3, 15},
	"claude-sonnet-4-5": {3, 15},
	"claude-opus-4-1":   {15, 75},
	"claude-3-5-haiku":  {0.8, 4},

	"gpt-4o":       {2.5, 10},
	"gpt-4o-mini":  {0.15, 0.6},
	"gpt-4.1":      {2, 8},
	"gpt-4.1-mini": {0.4, 1.6},
	"gpt-4.1-nano": {0.1, 0.4},
	"gpt-5":        {1.25, 10},
	"gpt-5-mini":   {0.25, 2},

	"gemini-2.0-flash":      {0.1, 0.4},
	"gemini-2.0-flash-exp":  {0, 0},
	"gemini-2.5-flash":      {0.3, 2.5},
	"gemini-2.5-flash-lite": {0.1, 0.4},
	"gemini-2.5-pro":        {1.25, 10},
}
