// Package tutor produces the learning content: assessments, daily tasks,
// evaluations, coach replies and weekly report narratives. Every
// operation degrades to canned content when the model is unavailable.
package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/budai/internal/ability"
	"github.com/abhisek/budai/internal/chat"
	"github.com/abhisek/budai/internal/llm"
)

// ErrNoProvider is reported when no model is configured.
var ErrNoProvider = errors.New("no LLM provider configured")

// Service generates content through an LLM provider.
type Service struct {
	provider llm.Provider
	cfg      Config
	logger   *zap.Logger
}

// NewService creates a content service. A nil provider is allowed and
// makes every operation return its fallback.
func NewService(provider llm.Provider, cfg Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{provider: provider, cfg: cfg, logger: logger}
}

// Assess scores a child's assessment responses.
func (s *Service) Assess(ctx context.Context, in AssessInput) *Assessment {
	out, err := s.assess(ctx, in)
	if err != nil {
		s.fallback(llm.PurposeAssessment, err)
		return fallbackAssessment()
	}
	return out
}

// GenerateTask creates a daily task for one ability.
func (s *Service) GenerateTask(ctx context.Context, in TaskInput) *TaskContent {
	out, err := s.generateTask(ctx, in)
	if err != nil {
		s.fallback(llm.PurposeDailyTask, err)
		return fallbackTask()
	}
	return out
}

// Evaluate scores a task submission.
func (s *Service) Evaluate(ctx context.Context, in EvalInput) *Evaluation {
	out, err := s.evaluate(ctx, in)
	if err != nil {
		s.fallback(llm.PurposeEvaluation, err)
		return fallbackEvaluation()
	}
	return out
}

// Coach answers one message in a coaching conversation.
func (s *Service) Coach(ctx context.Context, in CoachInput) *CoachReply {
	out, err := s.coach(ctx, in)
	if err != nil {
		s.fallback(llm.PurposeCoach, err)
		return fallbackCoach()
	}
	return out
}

// WeeklyReport writes the narrative for a week of activity.
func (s *Service) WeeklyReport(ctx context.Context, in ReportInput) *ReportContent {
	out, err := s.weeklyReport(ctx, in)
	if err != nil {
		s.fallback(llm.PurposeWeeklyReport, err)
		return fallbackReport()
	}
	return out
}

func (s *Service) fallback(purpose string, err error) {
	if errors.Is(err, ErrNoProvider) {
		s.logger.Debug("using canned content", zap.String("purpose", purpose))
		return
	}
	s.logger.Warn("LLM generation failed, using canned content",
		zap.String("purpose", purpose), zap.Error(err))
}

func (s *Service) generate(ctx context.Context, purpose string, req llm.Request, out any) error {
	if s.provider == nil {
		return ErrNoProvider
	}
	resp, err := s.provider.Generate(llm.WithPurpose(ctx, purpose), req)
	if err != nil {
		return fmt.Errorf("%s generation: %w", purpose, err)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Content, out); err != nil {
		return fmt.Errorf("parse %s response: %w", purpose, err)
	}
	return nil
}

type assessOutput struct {
	Scores      ability.Scores `json:"scores"`
	Analysis    string         `json:"analysis"`
	Suggestions []string       `json:"suggestions"`
}

func (s *Service) assess(ctx context.Context, in AssessInput) (*Assessment, error) {
	req := llm.Request{
		System:      assessSystemPrompt(s.cfg.Language),
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: assessUserPrompt(in)}},
		Schema:      AssessmentSchema,
		MaxTokens:   s.cfg.AssessMaxTokens,
		Temperature: s.cfg.Temperature,
	}
	var out assessOutput
	if err := s.generate(ctx, llm.PurposeAssessment, req, &out); err != nil {
		return nil, err
	}
	fb := fallbackAssessment()
	return &Assessment{
		Scores:      out.Scores.Clamp(),
		Analysis:    orDefault(out.Analysis, fb.Analysis),
		Suggestions: listOrDefault(out.Suggestions, fb.Suggestions),
	}, nil
}

type taskOutput struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Prompt          string   `json:"prompt"`
	Constraints     []string `json:"constraints"`
	ExpectedMinutes int      `json:"expected_minutes"`
}

func (s *Service) generateTask(ctx context.Context, in TaskInput) (*TaskContent, error) {
	req := llm.Request{
		System:      taskSystemPrompt(s.cfg.Language),
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: taskUserPrompt(in)}},
		Schema:      TaskSchema,
		MaxTokens:   s.cfg.TaskMaxTokens,
		Temperature: s.cfg.TaskTemperature,
	}
	var out taskOutput
	if err := s.generate(ctx, llm.PurposeDailyTask, req, &out); err != nil {
		return nil, err
	}
	if strings.TrimSpace(out.Prompt) == "" {
		return nil, fmt.Errorf("daily task response has no prompt")
	}
	minutes := out.ExpectedMinutes
	if minutes <= 0 {
		minutes = 10
	}
	return &TaskContent{
		Title:           orDefault(out.Title, "今日挑战"),
		Description:     orDefault(out.Description, "完成一个有趣的小任务"),
		Prompt:          out.Prompt,
		Constraints:     nonNil(out.Constraints),
		ExpectedMinutes: minutes,
	}, nil
}

type evalOutput struct {
	Scores         ability.Scores `json:"scores"`
	Feedback       string         `json:"feedback"`
	Suggestions    []string       `json:"suggestions"`
	ExemplarAnswer string         `json:"exemplar_answer"`
}

func (s *Service) evaluate(ctx context.Context, in EvalInput) (*Evaluation, error) {
	req := llm.Request{
		System:      evalSystemPrompt(s.cfg.Language, in),
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: evalUserPrompt(in)}},
		Schema:      EvaluationSchema,
		MaxTokens:   s.cfg.EvalMaxTokens,
		Temperature: s.cfg.Temperature,
	}
	var out evalOutput
	if err := s.generate(ctx, llm.PurposeEvaluation, req, &out); err != nil {
		return nil, err
	}
	fb := fallbackEvaluation()
	return &Evaluation{
		Scores:         out.Scores.Clamp(),
		Feedback:       orDefault(out.Feedback, fb.Feedback),
		Suggestions:    listOrDefault(out.Suggestions, fb.Suggestions),
		ExemplarAnswer: orDefault(out.ExemplarAnswer, fb.ExemplarAnswer),
	}, nil
}

func (s *Service) coach(ctx context.Context, in CoachInput) (*CoachReply, error) {
	history := chat.Tail(in.History, s.cfg.CoachHistory)
	msgs := make([]llm.Message, 0, len(history)+1)
	for _, t := range history {
		role := llm.RoleUser
		if t.Role == chat.RoleCoach {
			role = llm.RoleAssistant
		}
		msgs = append(msgs, llm.Message{Role: role, Content: t.Content})
	}
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: in.Message})

	if s.provider == nil {
		return nil, ErrNoProvider
	}
	resp, err := s.provider.Generate(llm.WithPurpose(ctx, llm.PurposeCoach), llm.Request{
		System:      coachSystemPrompt(s.cfg.Language, in.TaskContent),
		Messages:    msgs,
		MaxTokens:   s.cfg.CoachMaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("coach generation: %w", err)
	}
	reply := strings.TrimSpace(string(resp.Content))
	if reply == "" {
		return nil, fmt.Errorf("coach response is empty")
	}
	return &CoachReply{
		Reply:         chat.Truncate(reply, CoachReplyLimit),
		Suggestions:   append([]string(nil), coachSuggestions...),
		Encouragement: coachEncouragement,
	}, nil
}

type reportOutput struct {
	Summary          string            `json:"summary"`
	Insights         map[string]string `json:"insights"`
	Suggestions      []string          `json:"suggestions"`
	RecommendedGames []string          `json:"recommended_games"`
}

func (s *Service) weeklyReport(ctx context.Context, in ReportInput) (*ReportContent, error) {
	req := llm.Request{
		System:      reportSystemPrompt(s.cfg.Language),
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: reportUserPrompt(in)}},
		Schema:      ReportSchema,
		MaxTokens:   s.cfg.ReportMaxTokens,
		Temperature: s.cfg.Temperature,
	}
	var out reportOutput
	if err := s.generate(ctx, llm.PurposeWeeklyReport, req, &out); err != nil {
		return nil, err
	}
	fb := fallbackReport()
	insights := defaultInsights()
	for _, a := range ability.All() {
		if v := strings.TrimSpace(out.Insights[string(a)]); v != "" {
			insights[string(a)] = v
		}
	}
	return &ReportContent{
		Summary:          orDefault(out.Summary, fb.Summary),
		Insights:         insights,
		Suggestions:      listOrDefault(out.Suggestions, fb.Suggestions),
		RecommendedGames: listOrDefault(out.RecommendedGames, fb.RecommendedGames),
	}, nil
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func listOrDefault(l, def []string) []string {
	if len(l) == 0 {
		return def
	}
	return l
}

func nonNil(l []string) []string {
	if l == nil {
		return []string{}
	}
	return l
}
