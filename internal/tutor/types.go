package tutor

import (
	"time"

	"github.com/abhisek/budai/internal/ability"
	"github.com/abhisek/budai/internal/chat"
)

// AssessInput is the material for a diagnostic assessment.
type AssessInput struct {
	Age       int
	Grade     string
	Responses []string
}

// Assessment is the scored outcome of an assessment.
type Assessment struct {
	Scores      ability.Scores `json:"scores"`
	Analysis    string         `json:"analysis"`
	Suggestions []string       `json:"suggestions"`
	Fallback    bool           `json:"-"` // true when canned content was used
}

// TaskInput describes the task to generate.
type TaskInput struct {
	Age        int
	Ability    ability.Ability
	Difficulty int
	Interests  []string
}

// TaskContent is a generated activity.
type TaskContent struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Prompt          string   `json:"prompt"`
	Constraints     []string `json:"constraints"`
	ExpectedMinutes int      `json:"expectedMinutes"`
	Fallback        bool     `json:"-"`
}

// EvalInput is a submission to evaluate against its task.
type EvalInput struct {
	Task       TaskContent
	Ability    ability.Ability
	Submission string
	TimeSpent  time.Duration
}

// Evaluation is the scored feedback for a submission.
type Evaluation struct {
	Scores         ability.Scores `json:"scores"`
	Feedback       string         `json:"feedback"`
	Suggestions    []string       `json:"suggestions"`
	ExemplarAnswer string         `json:"exemplarAnswer"`
	Fallback       bool           `json:"-"`
}

// CoachInput is one coaching turn.
type CoachInput struct {
	TaskContent string
	History     []chat.Turn
	Message     string
}

// CoachReply is the coach's answer to one turn.
type CoachReply struct {
	Reply         string   `json:"response"`
	Suggestions   []string `json:"suggestions"`
	Encouragement string   `json:"encouragement"`
	Fallback      bool     `json:"-"`
}

// ReportInput is the week's aggregated activity.
type ReportInput struct {
	Nickname       string
	TasksCompleted int
	AverageScore   float64
	MostImproved   ability.Ability
	NeedsWork      ability.Ability
	Scores         ability.Scores
}

// ReportContent is the narrative part of a weekly report.
type ReportContent struct {
	Summary          string            `json:"summary"`
	Insights         map[string]string `json:"insights"` // keyed by ability
	Suggestions      []string          `json:"suggestions"`
	RecommendedGames []string          `json:"familyGames"`
	Fallback         bool              `json:"-"`
}
