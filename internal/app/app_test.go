package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhisek/budai/internal/ability"
	"github.com/abhisek/budai/internal/auth"
	"github.com/abhisek/budai/internal/badges"
	"github.com/abhisek/budai/internal/llm"
	"github.com/abhisek/budai/internal/store"
	"github.com/abhisek/budai/internal/tutor"
)

var testNow = time.Date(2026, 3, 10, 15, 0, 0, 0, time.Local)

type testEnv struct {
	app   *App
	store *store.Store
	mock  *llm.MockProvider
}

func newTestEnv(t *testing.T, opts Options) *testEnv {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := store.Open(store.DriverSQLite, fmt.Sprintf("file:app_%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	mock := llm.NewMockProvider()
	tu := tutor.NewService(mock, tutor.DefaultConfig(), zap.NewNop())
	a := New(s, tu, auth.NewTokenManager("test-secret", time.Hour), auth.NewCodeStore(), opts, zap.NewNop())
	a.now = func() time.Time { return testNow }
	require.NoError(t, a.Seed(context.Background()))
	return &testEnv{app: a, store: s, mock: mock}
}

func (e *testEnv) user(t *testing.T, phone string) uuid.UUID {
	t.Helper()
	sess, err := e.app.Register(context.Background(), phone, "secret1", "123456")
	require.NoError(t, err)
	return sess.User.ID
}

func (e *testEnv) child(t *testing.T, userID uuid.UUID) *store.Child {
	t.Helper()
	c, err := e.app.CreateChild(context.Background(), userID, ChildInput{
		Nickname:  "小明",
		Grade:     "三年级",
		Interests: []string{"恐龙", " "},
	})
	require.NoError(t, err)
	return c
}

func (e *testEnv) respond(t *testing.T, v any) {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	e.mock.AddResponse(llm.MockResponse{Content: b})
}

func evalJSON(s ability.Scores) map[string]any {
	return map[string]any{
		"scores":          s,
		"feedback":        "写得很好",
		"suggestions":     []string{"多用形容词"},
		"exemplar_answer": "示例",
	}
}

func uniform(v float64) ability.Scores {
	return ability.Scores{Expression: v, Logic: v, Exploration: v, Creativity: v, Habit: v}
}

func assertValidation(t *testing.T, err error, msg string) {
	t.Helper()
	var ve *ValidationError
	require.True(t, errors.As(err, &ve), "expected validation error, got %v", err)
	if msg != "" {
		assert.Equal(t, msg, ve.Message)
	}
}

func TestRegisterAndLogin(t *testing.T) {
	e := newTestEnv(t, DefaultOptions())
	ctx := context.Background()

	sess, err := e.app.Register(ctx, "13800138000", "secret1", "123456")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
	assert.NotNil(t, sess.User.LastLoginAt)
	assert.Empty(t, sess.Children)

	claims, err := e.app.Tokens().Verify(sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.User.ID, claims.UserID)

	_, err = e.app.Register(ctx, "13800138000", "secret1", "123456")
	assertValidation(t, err, "该手机号已注册")

	_, err = e.app.Login(ctx, "13800138000", "wrong-pass")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "手机号或密码错误", Message(err))

	_, err = e.app.Login(ctx, "13900139000", "secret1")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = e.app.Login(ctx, "13800138000", strings.Repeat("密", 25))
	assert.ErrorIs(t, err, ErrUnauthorized)

	e.child(t, sess.User.ID)
	sess, err = e.app.Login(ctx, "13800138000", "secret1")
	require.NoError(t, err)
	assert.Len(t, sess.Children, 1)
	b, err := json.Marshal(sess.User)
	require.NoError(t, err)
	assert.NotContains(t, string(b), sess.User.PasswordHash)
}

func TestRegister_Validation(t *testing.T) {
	e := newTestEnv(t, DefaultOptions())
	tests := []struct {
		name, phone, password, code, msg string
	}{
		{"missing phone", "", "secret1", "123456", "请填写所有必填字段"},
		{"missing code", "13800138000", "secret1", " ", "请填写所有必填字段"},
		{"bad phone", "12345", "secret1", "123456", "手机号格式不正确"},
		{"short password", "13800138000", "abc", "123456", "密码长度至少6位"},
		{"password over bcrypt limit", "13800138000", strings.Repeat("密", 25), "123456", "密码过长"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.app.Register(context.Background(), tt.phone, tt.password, tt.code)
			assertValidation(t, err, tt.msg)
		})
	}
}

func TestRegister_RequiresCode(t *testing.T) {
	opts := DefaultOptions()
	opts.RequireVerification = true
	opts.DevCodes = true
	e := newTestEnv(t, opts)
	ctx := context.Background()

	_, err := e.app.Register(ctx, "13800138000", "secret1", "000000")
	assertValidation(t, err, "验证码错误或已过期")

	res, err := e.app.SendCode(ctx, "13800138000")
	require.NoError(t, err)
	require.Len(t, res.Code, auth.CodeLength)

	_, err = e.app.Register(ctx, "13800138000", "secret1", res.Code)
	require.NoError(t, err)

	_, err = e.app.SendCode(ctx, "123")
	assertValidation(t, err, "手机号格式不正确")
}

func TestSendCode_HidesCodeOutsideDev(t *testing.T) {
	e := newTestEnv(t, DefaultOptions())
	res, err := e.app.SendCode(context.Background(), "13800138000")
	require.NoError(t, err)
	assert.True(t, res.Sent)
	assert.Empty(t, res.Code)
}

func TestChildren(t *testing.T) {
	e := newTestEnv(t, DefaultOptions())
	ctx := context.Background()
	owner := e.user(t, "13800138000")
	other := e.user(t, "13900139000")

	_, err := e.app.CreateChild(ctx, owner, ChildInput{Nickname: "小明"})
	assertValidation(t, err, "请填写孩子昵称和年级")

	c := e.child(t, owner)
	assert.Equal(t, []string{"恐龙"}, c.Interests)
	assert.Equal(t, ability.Neutral(), c.Scores)
	assert.Equal(t, 1, c.Level)
	assert.Equal(t, "萌芽新星", c.GlobalTitle)

	name := "小红"
	updated, err := e.app.UpdateChild(ctx, owner, c.ID.String(), ChildPatch{Nickname: &name, Interests: []string{"画画"}})
	require.NoError(t, err)
	assert.Equal(t, "小红", updated.Nickname)
	assert.Equal(t, "三年级", updated.Grade)
	assert.Equal(t, []string{"画画"}, updated.Interests)

	blank := " "
	_, err = e.app.UpdateChild(ctx, owner, c.ID.String(), ChildPatch{Nickname: &blank})
	assertValidation(t, err, "")

	_, err = e.app.UpdateChild(ctx, owner, "", ChildPatch{})
	assertValidation(t, err, "请提供孩子ID")

	_, err = e.app.UpdateChild(ctx, other, c.ID.String(), ChildPatch{Nickname: &name})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = e.app.GetChild(ctx, owner, "not-a-uuid")
	assert.ErrorIs(t, err, ErrNotFound)

	view, err := e.app.GetChild(ctx, owner, c.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 1, view.Progress.Level)
	assert.Empty(t, view.Badges)

	list, err := e.app.ListChildren(ctx, other)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSubmitAssessment(t *testing.T) {
	e := newTestEnv(t, DefaultOptions())
	ctx := context.Background()
	u := e.user(t, "13800138000")
	c := e.child(t, u)

	_, err := e.app.SubmitAssessment(ctx, u, c.ID.String(), []string{"", " "})
	assertValidation(t, err, "请提供孩子ID和评估回答")

	first := ability.Scores{Expression: 4, Logic: 2, Exploration: 3, Creativity: 5, Habit: 3}
	e.respond(t, map[string]any{"scores": first, "analysis": "很棒", "suggestions": []string{"多读"}})

	res, err := e.app.SubmitAssessment(ctx, u, c.ID.String(), []string{"我喜欢恐龙"})
	require.NoError(t, err)
	assert.Equal(t, store.AssessmentInitial, res.Assessment.Kind)
	assert.Equal(t, first, res.Child.Scores)
	assert.Contains(t, e.mock.Calls[0].Messages[0].Content, "9岁")

	// Fallback scores of 3 are blended into the stored scores.
	res, err = e.app.SubmitAssessment(ctx, u, c.ID.String(), []string{"第二次"})
	require.NoError(t, err)
	assert.Equal(t, store.AssessmentPeriodic, res.Assessment.Kind)
	assert.True(t, res.Result.Fallback)
	assert.InDelta(t, 4*0.7+3*0.3, res.Child.Scores.Expression, 1e-9)
	assert.InDelta(t, 2*0.7+3*0.3, res.Child.Scores.Logic, 1e-9)

	list, err := e.app.ListAssessments(ctx, u, c.ID.String())
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestDailyTask(t *testing.T) {
	e := newTestEnv(t, DefaultOptions())
	ctx := context.Background()
	u := e.user(t, "13800138000")
	c := e.child(t, u)
	_, err := e.store.Children().SetScores(ctx, c.ID, ability.Scores{Expression: 4, Logic: 1.6, Exploration: 3, Creativity: 3, Habit: 3})
	require.NoError(t, err)

	e.respond(t, map[string]any{
		"title": "数字侦探", "description": "找规律", "prompt": "1, 3, 5, ? 下一个是几？",
		"constraints": []string{"说出理由"}, "expected_minutes": 8,
	})

	res, err := e.app.DailyTask(ctx, u, c.ID.String())
	require.NoError(t, err)
	assert.False(t, res.Resumed)
	assert.Equal(t, "logic", res.Task.Ability)
	assert.Equal(t, 2, res.Task.Difficulty)
	assert.Equal(t, "数字侦探", res.Task.Title)
	assert.Equal(t, store.StatusInProgress, res.TaskRecord.Status)

	msg := e.mock.Calls[0].Messages[0].Content
	assert.Contains(t, msg, "逻辑力")
	assert.Contains(t, msg, "恐龙")

	again, err := e.app.DailyTask(ctx, u, c.ID.String())
	require.NoError(t, err)
	assert.True(t, again.Resumed)
	assert.Equal(t, res.TaskRecord.ID, again.TaskRecord.ID)
	assert.Equal(t, 1, e.mock.CallCount())
}

func TestEvaluateTask(t *testing.T) {
	e := newTestEnv(t, DefaultOptions())
	ctx := context.Background()
	u := e.user(t, "13800138000")
	c := e.child(t, u)
	_, err := e.store.Children().SetScores(ctx, c.ID, ability.Scores{Expression: 4.5, Logic: 3, Exploration: 3, Creativity: 3, Habit: 3})
	require.NoError(t, err)

	daily, err := e.app.DailyTask(ctx, u, c.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "故事接龙", daily.Task.Title)

	_, err = e.app.EvaluateTask(ctx, u, daily.TaskRecord.ID.String(), "", 0)
	assertValidation(t, err, "请提供任务记录ID和提交内容")

	other := e.user(t, "13900139000")
	_, err = e.app.EvaluateTask(ctx, other, daily.TaskRecord.ID.String(), "故事", 0)
	assert.ErrorIs(t, err, ErrNotFound)

	e.respond(t, evalJSON(uniform(5)))
	res, err := e.app.EvaluateTask(ctx, u, daily.TaskRecord.ID.String(), "小兔子找到了回家的路", 7*time.Minute)
	require.NoError(t, err)

	assert.Equal(t, store.StatusCompleted, res.TaskRecord.Status)
	assert.Equal(t, 420, res.TaskRecord.TimeSpentSecs)
	assert.Equal(t, 100, res.XPEarned)
	assert.Equal(t, 1, res.Progress.Level)
	assert.Equal(t, 100, res.Progress.XP)
	assert.Equal(t, 1, res.Streak)
	assert.InDelta(t, 4.5*0.7+5*0.3, res.Scores.Expression, 1e-9)
	assert.InDelta(t, 3*0.7+5*0.3, res.Scores.Logic, 1e-9)
	require.Len(t, res.NewBadges, 1)
	assert.Equal(t, string(badges.ExpressionStar), res.NewBadges[0].Key)

	child, err := e.store.Children().Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, child.XP)
	assert.Equal(t, 1, child.Streak)
	require.NotNil(t, child.LastActiveOn)

	growth, err := e.app.Growth(ctx, u, c.ID.String(), "", "")
	require.NoError(t, err)
	require.Len(t, growth.Records, 1)
	assert.Equal(t, 1, growth.Records[0].TasksCompleted)
	assert.Equal(t, 100, growth.Records[0].XPEarned)
	require.Len(t, growth.Works, 1)
	assert.Equal(t, "任务完成 - 故事接龙", growth.Works[0].Title)
	assert.Equal(t, "写得很好", growth.Works[0].Comment)
	assert.Len(t, growth.Badges, 1)

	_, err = e.app.EvaluateTask(ctx, u, daily.TaskRecord.ID.String(), "再来一次", 0)
	assertValidation(t, err, "该任务已完成")
}

func TestEvaluateTask_LevelUp(t *testing.T) {
	opts := DefaultOptions()
	opts.TaskXP = 250
	e := newTestEnv(t, opts)
	ctx := context.Background()
	u := e.user(t, "13800138000")
	c := e.child(t, u)

	daily, err := e.app.DailyTask(ctx, u, c.ID.String())
	require.NoError(t, err)
	res, err := e.app.EvaluateTask(ctx, u, daily.TaskRecord.ID.String(), "完成", 0)
	require.NoError(t, err)
	assert.True(t, res.LeveledUp)
	assert.Equal(t, 2, res.Progress.Level)
	assert.Equal(t, 50, res.Progress.XPIntoLevel)
	assert.True(t, res.Evaluation.Fallback)
	assert.Empty(t, res.NewBadges)
}

func TestCoach(t *testing.T) {
	opts := DefaultOptions()
	opts.CoachMaxTurns = 2
	e := newTestEnv(t, opts)
	ctx := context.Background()
	u := e.user(t, "13800138000")
	c := e.child(t, u)
	daily, err := e.app.DailyTask(ctx, u, c.ID.String())
	require.NoError(t, err)
	rid := daily.TaskRecord.ID.String()

	hist, err := e.app.CoachHistory(ctx, u, c.ID.String(), rid)
	require.NoError(t, err)
	assert.Empty(t, hist.Messages)
	assert.Zero(t, hist.TurnCount)

	_, err = e.app.Coach(ctx, u, c.ID.String(), rid, " ")
	assertValidation(t, err, "请提供完整信息")

	e.mock.AddResponse(llm.MockResponse{Content: json.RawMessage("小兔子现在心情怎么样？")})
	res, err := e.app.Coach(ctx, u, c.ID.String(), rid, "我不知道怎么写")
	require.NoError(t, err)
	assert.Equal(t, "小兔子现在心情怎么样？", res.Reply)
	assert.Equal(t, 1, res.Session.TurnCount)
	require.Len(t, res.Session.Messages, 2)
	assert.Contains(t, e.mock.Calls[len(e.mock.Calls)-1].System, "故事接龙")

	res, err = e.app.Coach(ctx, u, c.ID.String(), rid, "它很害怕")
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.Equal(t, 2, res.Session.TurnCount)
	assert.Len(t, res.Session.Messages, 4)

	_, err = e.app.Coach(ctx, u, c.ID.String(), rid, "还有呢")
	assertValidation(t, err, "本次陪练已达到2轮上限")

	other := e.child(t, u)
	_, err = e.app.Coach(ctx, u, other.ID.String(), rid, "hi")
	assert.ErrorIs(t, err, ErrNotFound)

	hist, err = e.app.CoachHistory(ctx, u, c.ID.String(), rid)
	require.NoError(t, err)
	assert.Len(t, hist.Messages, 4)
}

func TestContribute(t *testing.T) {
	e := newTestEnv(t, DefaultOptions())
	ctx := context.Background()
	u := e.user(t, "13800138000")
	c := e.child(t, u)

	themes, err := e.app.ListThemes(ctx)
	require.NoError(t, err)
	require.Len(t, themes, len(defaultThemes))
	var forest store.ThemeSummary
	for _, th := range themes {
		assert.True(t, th.IsActive)
		if th.Title == "森林奇遇记" {
			forest = th
		}
	}
	require.NotEqual(t, uuid.Nil, forest.ID)

	_, err = e.app.Contribute(ctx, u, c.ID.String(), forest.ID.String(), "poem", "内容")
	assertValidation(t, err, "不支持的共创类型")

	_, err = e.app.Contribute(ctx, u, c.ID.String(), uuid.NewString(), "idea", "内容")
	assert.ErrorIs(t, err, ErrNotFound)

	past := testNow.AddDate(0, -2, 0)
	require.NoError(t, e.store.CoCreate().EnsureTheme(ctx, store.Theme{
		Title: "旧主题", StartDate: past, EndDate: past.AddDate(0, 0, 7),
	}))
	themes, err = e.app.ListThemes(ctx)
	require.NoError(t, err)
	var old store.ThemeSummary
	for _, th := range themes {
		if th.Title == "旧主题" {
			old = th
		}
	}
	assert.False(t, old.IsActive)
	_, err = e.app.Contribute(ctx, u, c.ID.String(), old.ID.String(), "idea", "内容")
	assertValidation(t, err, "该主题不在活动期内")

	var res *ContributeResult
	for i := 0; i < 5; i++ {
		res, err = e.app.Contribute(ctx, u, c.ID.String(), forest.ID.String(), "plot", fmt.Sprintf("情节%d", i))
		require.NoError(t, err)
	}
	assert.Equal(t, "plot", res.Contribution.Kind)
	require.Len(t, res.NewBadges, 1)
	assert.Equal(t, string(badges.CoCreator), res.NewBadges[0].Key)

	themes, err = e.app.ListThemes(ctx)
	require.NoError(t, err)
	for _, th := range themes {
		if th.ID == forest.ID {
			assert.Equal(t, 5, th.ContributionCount)
			assert.Equal(t, 1, th.ParticipantCount)
		}
	}
}

func TestGenerateWeeklyReport(t *testing.T) {
	e := newTestEnv(t, DefaultOptions())
	ctx := context.Background()
	u := e.user(t, "13800138000")
	c := e.child(t, u)

	daily, err := e.app.DailyTask(ctx, u, c.ID.String())
	require.NoError(t, err)
	e.respond(t, evalJSON(ability.Scores{Expression: 4, Logic: 3, Exploration: 3, Creativity: 5, Habit: 4}))
	_, err = e.app.EvaluateTask(ctx, u, daily.TaskRecord.ID.String(), "完成", time.Minute)
	require.NoError(t, err)

	_, err = e.app.GenerateWeeklyReport(ctx, u, c.ID.String(), "2026-03-09", "")
	assertValidation(t, err, "请提供完整信息")
	_, err = e.app.GenerateWeeklyReport(ctx, u, c.ID.String(), "03/09/2026", "2026-03-15")
	assertValidation(t, err, "")
	_, err = e.app.GenerateWeeklyReport(ctx, u, c.ID.String(), "2026-03-15", "2026-03-09")
	assertValidation(t, err, "结束日期不能早于开始日期")

	rep, err := e.app.GenerateWeeklyReport(ctx, u, c.ID.String(), "2026-03-09", "2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, 1, rep.TasksCompleted)
	assert.InDelta(t, 3.8, rep.AverageScore, 1e-9)
	assert.Equal(t, "creativity", rep.MostImproved)
	assert.Equal(t, "孩子本周学习认真，进步明显！", rep.Summary)
	assert.Len(t, rep.Insights, 5)

	again, err := e.app.GenerateWeeklyReport(ctx, u, c.ID.String(), "2026-03-09", "2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, rep.ID, again.ID)

	empty, err := e.app.GenerateWeeklyReport(ctx, u, c.ID.String(), "2026-02-01", "2026-02-07")
	require.NoError(t, err)
	assert.Zero(t, empty.TasksCompleted)
	assert.Empty(t, empty.MostImproved)
}

func TestWeekStats(t *testing.T) {
	avg, improved := weekStats(nil)
	assert.Zero(t, avg)
	assert.Empty(t, improved)

	first := ability.Scores{Expression: 3, Logic: 3, Exploration: 3, Creativity: 3, Habit: 3}
	last := ability.Scores{Expression: 3.5, Logic: 4.5, Exploration: 3, Creativity: 3, Habit: 3}
	avg, improved = weekStats([]store.TaskRecord{
		{Scores: &first},
		{},
		{Scores: &last},
	})
	assert.InDelta(t, 3.2, avg, 1e-9)
	assert.Equal(t, ability.Logic, improved)
}

func TestGrowth_DateRange(t *testing.T) {
	e := newTestEnv(t, DefaultOptions())
	ctx := context.Background()
	u := e.user(t, "13800138000")
	c := e.child(t, u)

	view, err := e.app.Growth(ctx, u, c.ID.String(), "2026-03-01", "2026-03-05")
	require.NoError(t, err)
	assert.Empty(t, view.Records)
	assert.Nil(t, view.LatestReport)
	assert.Equal(t, ability.Neutral(), view.Scores)

	_, err = e.app.Growth(ctx, u, c.ID.String(), "2026-03-05", "2026-03-01")
	assertValidation(t, err, "")
	_, err = e.app.Growth(ctx, u, "", "", "")
	assertValidation(t, err, "请提供孩子ID")
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "x", Message(invalid("x")))
	assert.Equal(t, "y", Message(notFound("y")))
	assert.Equal(t, "z", Message(errors.New("z")))
	assert.ErrorIs(t, fmt.Errorf("wrap: %w", unauthorized("u")), ErrUnauthorized)
}
