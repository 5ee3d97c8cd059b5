package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/budai/internal/ability"
	"github.com/abhisek/budai/internal/chat"
	"github.com/abhisek/budai/internal/llm"
)

func mockJSON(t *testing.T, v any) llm.MockResponse {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return llm.MockResponse{Content: b}
}

func newTestService(p llm.Provider) (*Service, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewService(p, DefaultConfig(), zap.New(core)), logs
}

func TestAssess(t *testing.T) {
	mock := llm.NewMockProvider(mockJSON(t, map[string]any{
		"scores": map[string]any{
			"expression": 4.5, "logic": 3, "exploration": 9, "creativity": 0.2,
		},
		"analysis":    "表达清晰",
		"suggestions": []string{"多读绘本"},
	}))
	svc, _ := newTestService(mock)

	got := svc.Assess(context.Background(), AssessInput{Age: 8, Grade: "二年级", Responses: []string{"我喜欢恐龙"}})

	assert.False(t, got.Fallback)
	assert.Equal(t, 4.5, got.Scores.Expression)
	assert.Equal(t, ability.MaxScore, got.Scores.Exploration)
	assert.Equal(t, ability.MinScore, got.Scores.Creativity)
	assert.Equal(t, ability.NeutralScore, got.Scores.Habit)
	assert.Equal(t, "表达清晰", got.Analysis)
	assert.Equal(t, []string{"多读绘本"}, got.Suggestions)

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Equal(t, AssessmentSchema, req.Schema)
	assert.Contains(t, req.Messages[0].Content, "我喜欢恐龙")
	assert.Contains(t, req.Messages[0].Content, "8岁")
}

func TestAssess_FallbackOnError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	svc, logs := newTestService(mock)

	got := svc.Assess(context.Background(), AssessInput{Age: 7})

	assert.True(t, got.Fallback)
	assert.Equal(t, ability.Neutral(), got.Scores)
	assert.Equal(t, "孩子表现很棒，继续努力！", got.Analysis)
	assert.Len(t, got.Suggestions, 3)
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestAssess_FallbackOnBadJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	svc, _ := newTestService(mock)

	assert.True(t, svc.Assess(context.Background(), AssessInput{}).Fallback)
}

func TestNilProvider(t *testing.T) {
	svc, logs := newTestService(nil)
	ctx := context.Background()

	assert.True(t, svc.Assess(ctx, AssessInput{}).Fallback)
	assert.True(t, svc.GenerateTask(ctx, TaskInput{}).Fallback)
	assert.True(t, svc.Evaluate(ctx, EvalInput{}).Fallback)
	assert.True(t, svc.Coach(ctx, CoachInput{Message: "hi"}).Fallback)
	assert.True(t, svc.WeeklyReport(ctx, ReportInput{}).Fallback)
	assert.Zero(t, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestGenerateTask(t *testing.T) {
	mock := llm.NewMockProvider(mockJSON(t, map[string]any{
		"title":            "",
		"description":      "描述一只小猫",
		"prompt":           "用三句话描述你见过的小猫",
		"constraints":      []string{"用上颜色词"},
		"expected_minutes": 0,
	}))
	svc, _ := newTestService(mock)

	got := svc.GenerateTask(context.Background(), TaskInput{
		Age: 9, Ability: ability.Expression, Difficulty: 3, Interests: []string{"猫", "画画"},
	})

	assert.False(t, got.Fallback)
	assert.Equal(t, "今日挑战", got.Title)
	assert.Equal(t, "用三句话描述你见过的小猫", got.Prompt)
	assert.Equal(t, 10, got.ExpectedMinutes)

	msg := mock.Calls[0].Messages[0].Content
	assert.Contains(t, msg, "表达力")
	assert.Contains(t, msg, "3/5")
	assert.Contains(t, msg, "猫、画画")
	assert.Equal(t, DefaultConfig().TaskTemperature, mock.Calls[0].Temperature)
}

func TestGenerateTask_EmptyPromptFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(mockJSON(t, map[string]any{"title": "x"}))
	svc, _ := newTestService(mock)

	got := svc.GenerateTask(context.Background(), TaskInput{Ability: ability.Logic})
	assert.True(t, got.Fallback)
	assert.Equal(t, "故事接龙", got.Title)
	assert.Equal(t, 10, got.ExpectedMinutes)
}

func TestEvaluate(t *testing.T) {
	mock := llm.NewMockProvider(mockJSON(t, map[string]any{
		"scores": map[string]any{
			"expression": 4, "logic": 4, "exploration": 3, "creativity": 5, "habit": 4,
		},
		"feedback":        "很有想象力",
		"suggestions":     []string{},
		"exemplar_answer": "",
	}))
	svc, _ := newTestService(mock)

	got := svc.Evaluate(context.Background(), EvalInput{
		Task:       TaskContent{Title: "故事接龙", Description: "续写故事", Prompt: "小兔子迷路了"},
		Ability:    ability.Creativity,
		Submission: "小兔子遇到了一只会飞的乌龟",
		TimeSpent:  7*time.Minute + 20*time.Second,
	})

	assert.False(t, got.Fallback)
	assert.Equal(t, 5.0, got.Scores.Creativity)
	assert.Equal(t, "很有想象力", got.Feedback)
	assert.Equal(t, []string{"继续保持", "多加练习", "大胆尝试"}, got.Suggestions)
	assert.Equal(t, "参考答案：可以从多个角度思考这个问题...", got.ExemplarAnswer)

	req := mock.Calls[0]
	assert.Contains(t, req.System, "用时：7分钟")
	assert.Contains(t, req.System, "续写故事")
	assert.Contains(t, req.Messages[0].Content, "会飞的乌龟")
}

func TestCoach(t *testing.T) {
	long := strings.Repeat("好", 200)
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("  " + long + "\n")})
	svc, _ := newTestService(mock)

	history := make([]chat.Turn, 0, 14)
	for i := 0; i < 7; i++ {
		history = append(history,
			chat.Turn{Role: chat.RoleChild, Content: "q"},
			chat.Turn{Role: chat.RoleCoach, Content: "a"},
		)
	}

	got := svc.Coach(context.Background(), CoachInput{
		TaskContent: "描述你的房间",
		History:     history,
		Message:     "我的房间有一张床",
	})

	assert.False(t, got.Fallback)
	assert.Equal(t, CoachReplyLimit, utf8.RuneCountInString(got.Reply))
	assert.Equal(t, coachEncouragement, got.Encouragement)
	assert.Len(t, got.Suggestions, 3)

	req := mock.Calls[0]
	assert.Nil(t, req.Schema)
	assert.Contains(t, req.System, "描述你的房间")
	require.Len(t, req.Messages, DefaultConfig().CoachHistory+1)
	assert.Equal(t, llm.RoleUser, req.Messages[0].Role)
	assert.Equal(t, llm.RoleAssistant, req.Messages[1].Role)
	last := req.Messages[len(req.Messages)-1]
	assert.Equal(t, llm.RoleUser, last.Role)
	assert.Equal(t, "我的房间有一张床", last.Content)
}

func TestCoach_Fallback(t *testing.T) {
	svc, _ := newTestService(llm.NewMockProvider())

	got := svc.Coach(context.Background(), CoachInput{Message: "hi"})
	assert.True(t, got.Fallback)
	assert.Equal(t, "你的想法很有创意！能再详细说说吗？", got.Reply)
	assert.Equal(t, "继续努力，你可以的！", got.Encouragement)
}

func TestWeeklyReport(t *testing.T) {
	mock := llm.NewMockProvider(mockJSON(t, map[string]any{
		"summary":           "本周很棒",
		"insights":          map[string]string{"logic": "推理进步", "creativity": " "},
		"suggestions":       []string{"一起读书"},
		"recommended_games": []string{},
	}))
	svc, _ := newTestService(mock)

	got := svc.WeeklyReport(context.Background(), ReportInput{
		Nickname:       "小明",
		TasksCompleted: 5,
		AverageScore:   3.84,
		MostImproved:   ability.Logic,
		NeedsWork:      ability.Habit,
		Scores:         ability.Neutral(),
	})

	assert.False(t, got.Fallback)
	assert.Equal(t, "本周很棒", got.Summary)
	assert.Equal(t, "推理进步", got.Insights["logic"])
	assert.Equal(t, fallbackInsights[ability.Creativity], got.Insights["creativity"])
	assert.Len(t, got.Insights, 5)
	assert.Equal(t, []string{"家庭故事会", "逻辑游戏"}, got.RecommendedGames)

	msg := mock.Calls[0].Messages[0].Content
	assert.Contains(t, msg, "小明")
	assert.Contains(t, msg, "3.8")
	assert.Contains(t, msg, "逻辑力")
	assert.Contains(t, msg, "习惯力")
}

func TestLanguageLine(t *testing.T) {
	assert.Equal(t, "所有输出使用简体中文。", languageLine("zh-CN"))
	assert.Equal(t, "所有输出使用简体中文。", languageLine(""))
	assert.Contains(t, languageLine("en"), `"en"`)
}

func TestAgeForGrade(t *testing.T) {
	tests := []struct {
		grade string
		want  int
	}{
		{"1", 7},
		{"三年级", 9},
		{"六年级", 12},
		{"grade 2", 8},
		{"10", 16},
		{"", DefaultAge},
		{"幼儿园", DefaultAge},
		{"0", DefaultAge},
	}
	for _, tt := range tests {
		t.Run(tt.grade, func(t *testing.T) {
			assert.Equal(t, tt.want, AgeForGrade(tt.grade))
		})
	}
}
