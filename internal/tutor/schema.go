package tutor

import "github.com/abhisek/budai/internal/llm"

func scoreProperty(desc string) map[string]any {
	return map[string]any{
		"type":        "number",
		"minimum":     1,
		"maximum":     5,
		"description": desc,
	}
}

var scoresDefinition = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"expression":  scoreProperty("表达力 1-5"),
		"logic":       scoreProperty("逻辑力 1-5"),
		"exploration": scoreProperty("探究力 1-5"),
		"creativity":  scoreProperty("创造力 1-5"),
		"habit":       scoreProperty("习惯力 1-5"),
	},
	"required":             []any{"expression", "logic", "exploration", "creativity", "habit"},
	"additionalProperties": false,
}

var stringList = map[string]any{
	"type":  "array",
	"items": map[string]any{"type": "string"},
}

// AssessmentSchema constrains the assessment response.
var AssessmentSchema = &llm.Schema{
	Name:        "ability-assessment",
	Description: "5C ability scores with a short analysis and suggestions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"scores": scoresDefinition,
			"analysis": map[string]any{
				"type":        "string",
				"description": "Encouraging analysis, at most 50 characters",
			},
			"suggestions": stringList,
		},
		"required":             []any{"scores", "analysis", "suggestions"},
		"additionalProperties": false,
	},
}

// TaskSchema constrains generated daily tasks.
var TaskSchema = &llm.Schema{
	Name:        "daily-task",
	Description: "A short playful learning task for a child",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":       map[string]any{"type": "string", "description": "Short catchy title"},
			"description": map[string]any{"type": "string", "description": "One sentence about the task"},
			"prompt":      map[string]any{"type": "string", "description": "What the child is asked to do"},
			"constraints": stringList,
			"expected_minutes": map[string]any{
				"type":        "integer",
				"minimum":     3,
				"maximum":     20,
				"description": "Expected duration in minutes",
			},
		},
		"required":             []any{"title", "description", "prompt", "constraints", "expected_minutes"},
		"additionalProperties": false,
	},
}

// EvaluationSchema constrains task evaluations.
var EvaluationSchema = &llm.Schema{
	Name:        "task-evaluation",
	Description: "5C scores and feedback for a completed task",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"scores":          scoresDefinition,
			"feedback":        map[string]any{"type": "string", "description": "Encouraging feedback, at most 50 characters"},
			"suggestions":     stringList,
			"exemplar_answer": map[string]any{"type": "string", "description": "Example answer of 100-150 characters"},
		},
		"required":             []any{"scores", "feedback", "suggestions", "exemplar_answer"},
		"additionalProperties": false,
	},
}

// ReportSchema constrains weekly report narratives.
var ReportSchema = &llm.Schema{
	Name:        "weekly-report",
	Description: "Parent-facing weekly learning report",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{"type": "string"},
			"insights": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"expression":  map[string]any{"type": "string"},
					"logic":       map[string]any{"type": "string"},
					"exploration": map[string]any{"type": "string"},
					"creativity":  map[string]any{"type": "string"},
					"habit":       map[string]any{"type": "string"},
				},
				"required":             []any{"expression", "logic", "exploration", "creativity", "habit"},
				"additionalProperties": false,
			},
			"suggestions":       stringList,
			"recommended_games": stringList,
		},
		"required":             []any{"summary", "insights", "suggestions", "recommended_games"},
		"additionalProperties": false,
	},
}
