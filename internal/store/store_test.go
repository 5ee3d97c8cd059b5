package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/budai/internal/ability"
	"github.com/abhisek/budai/internal/chat"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name)
	s, err := Open(DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seedChild(t *testing.T, s *Store) (*User, *Child) {
	t.Helper()
	ctx := context.Background()
	u, err := s.Users().Create(ctx, "13800138000", "hash")
	require.NoError(t, err)
	c, err := s.Children().Create(ctx, NewChild{
		UserID:    u.ID,
		Nickname:  "小明",
		Grade:     "三年级",
		Interests: []string{"恐龙"},
		Title:     "萌芽新星",
	})
	require.NoError(t, err)
	return u, c
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open("mysql", "whatever")
	require.Error(t, err)
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)

	var got string
	err := s.DB().QueryRow("PRAGMA foreign_keys").Scan(&got)
	require.NoError(t, err)
	assert.Equal(t, "1", got)
}

func TestUserRepo(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u, err := s.Users().Create(ctx, "13900000000", "hash")
	require.NoError(t, err)
	assert.Equal(t, "parent", u.Role)
	assert.Nil(t, u.LastLoginAt)

	_, err = s.Users().Create(ctx, "13900000000", "other")
	assert.True(t, errors.Is(err, ErrConflict), "duplicate phone: %v", err)

	got, err := s.Users().GetByPhone(ctx, "13900000000")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = s.Users().GetByPhone(ctx, "13911111111")
	assert.True(t, errors.Is(err, ErrNotFound))

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, s.Users().TouchLogin(ctx, u.ID, now))
	got, err = s.Users().Get(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastLoginAt)
	assert.True(t, got.LastLoginAt.Equal(now))
}

func TestChildRepo_Ownership(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	u, c := seedChild(t, s)

	assert.Equal(t, 1, c.Level)
	assert.Equal(t, ability.Neutral(), c.Scores)

	_, err := s.Children().GetOwned(ctx, u.ID, c.ID)
	require.NoError(t, err)

	_, err = s.Children().GetOwned(ctx, uuid.New(), c.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	list, err := s.Children().ListByUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestChildRepo_UpdateAndProgress(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	_, c := seedChild(t, s)

	nick := "小红"
	updated, err := s.Children().Update(ctx, c.ID, ChildUpdate{Nickname: &nick})
	require.NoError(t, err)
	assert.Equal(t, "小红", updated.Nickname)
	assert.Equal(t, "三年级", updated.Grade)

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	scores := ability.Scores{Expression: 3.3, Logic: 3.1, Exploration: 3, Creativity: 3.6, Habit: 3}
	got, err := s.Children().ApplyProgress(ctx, c.ID, ProgressUpdate{
		Scores:       scores,
		XP:           250,
		Level:        2,
		Title:        "萌芽新星",
		Streak:       3,
		LastActiveOn: day,
	})
	require.NoError(t, err)
	assert.Equal(t, 250, got.XP)
	assert.Equal(t, 2, got.Level)
	assert.Equal(t, 3, got.Streak)
	assert.InDelta(t, 3.6, got.Scores.Creativity, 1e-9)
	require.NotNil(t, got.LastActiveOn)
}

func TestTaskRepo_Lifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	u, c := seedChild(t, s)

	task, err := s.Tasks().CreateTask(ctx, Task{
		Ability:         "creativity",
		Difficulty:      3,
		Title:           "奇妙的一天",
		Description:     "写一个小故事",
		Prompt:          "如果你能飞",
		Constraints:     []string{"不少于50字"},
		ExpectedMinutes: 10,
	})
	require.NoError(t, err)

	start := time.Now().Add(-time.Hour)
	rec, err := s.Tasks().StartRecord(ctx, c.ID, task.ID, start)
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, rec.Status)
	assert.Nil(t, rec.Scores)

	open, err := s.Tasks().LatestInProgress(ctx, c.ID, start.Add(-time.Minute))
	require.NoError(t, err)
	require.NotNil(t, open)
	assert.Equal(t, rec.ID, open.ID)
	require.NotNil(t, open.Task)
	assert.Equal(t, "奇妙的一天", open.Task.Title)

	_, err = s.Tasks().GetRecordOwned(ctx, uuid.New(), rec.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	done := time.Now()
	completed, err := s.Tasks().Complete(ctx, rec.ID, Completion{
		Submission:    "我飞到了云上",
		TimeSpentSecs: 300,
		CompletedAt:   done,
		Scores:        ability.Scores{Expression: 4, Logic: 3, Exploration: 3, Creativity: 5, Habit: 3},
		Feedback:      "很棒",
		XPEarned:      100,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, completed.Status)
	require.NotNil(t, completed.Scores)
	assert.Equal(t, 5.0, completed.Scores.Creativity)

	_, err = s.Tasks().Complete(ctx, rec.ID, Completion{CompletedAt: done})
	assert.True(t, errors.Is(err, ErrConflict), "second completion: %v", err)

	owned, err := s.Tasks().GetRecordOwned(ctx, u.ID, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, owned.XPEarned)

	recs, err := s.Tasks().CompletedBetween(ctx, c.ID, done.Add(-time.Minute), done.Add(time.Minute))
	require.NoError(t, err)
	assert.Len(t, recs, 1)

	open, err = s.Tasks().LatestInProgress(ctx, c.ID, start.Add(-time.Minute))
	require.NoError(t, err)
	assert.Nil(t, open)
}

func TestBadgeRepo_AwardOnce(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	_, c := seedChild(t, s)

	require.NoError(t, s.Badges().Ensure(ctx, Badge{Key: "streak-7", Name: "坚持一周"}))
	require.NoError(t, s.Badges().Ensure(ctx, Badge{Key: "streak-7", Name: "连续7天"}))

	badges, err := s.Badges().ListBadges(ctx)
	require.NoError(t, err)
	require.Len(t, badges, 1)
	assert.Equal(t, "连续7天", badges[0].Name)

	now := time.Now()
	_, err = s.Badges().Award(ctx, c.ID, "streak-7", now)
	require.NoError(t, err)
	_, err = s.Badges().Award(ctx, c.ID, "streak-7", now)
	assert.True(t, errors.Is(err, ErrConflict))

	_, err = s.Badges().Award(ctx, c.ID, "missing", now)
	assert.True(t, errors.Is(err, ErrNotFound))

	awards, err := s.Badges().ListAwards(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, awards, 1)
	assert.Equal(t, "streak-7", awards[0].Key)
}

func TestCoCreateRepo(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	_, c := seedChild(t, s)

	now := time.Now()
	theme := Theme{
		Title:     "森林奇遇记",
		Prompt:    "森林里住着谁?",
		StartDate: now.AddDate(0, 0, -1),
		EndDate:   now.AddDate(0, 0, 6),
	}
	require.NoError(t, s.CoCreate().EnsureTheme(ctx, theme))
	require.NoError(t, s.CoCreate().EnsureTheme(ctx, theme))

	themes, err := s.CoCreate().ListThemes(ctx, now)
	require.NoError(t, err)
	require.Len(t, themes, 1)
	assert.True(t, themes[0].IsActive)

	for i := 0; i < 2; i++ {
		_, err := s.CoCreate().AddContribution(ctx, Contribution{
			ChildID: c.ID,
			ThemeID: themes[0].ID,
			Kind:    "idea",
			Content: "一只会说话的狐狸",
		})
		require.NoError(t, err)
	}

	themes, err = s.CoCreate().ListThemes(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 2, themes[0].ContributionCount)
	assert.Equal(t, 1, themes[0].ParticipantCount)

	n, err := s.CoCreate().CountByChild(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestThemeActive(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	th := Theme{StartDate: start, EndDate: start.AddDate(0, 0, 6)}

	assert.False(t, th.Active(start.Add(-time.Second)))
	assert.True(t, th.Active(start))
	assert.True(t, th.Active(start.AddDate(0, 0, 6).Add(23*time.Hour)))
	assert.False(t, th.Active(start.AddDate(0, 0, 7)))
}

func TestReportRepo_Upsert(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	_, c := seedChild(t, s)

	latest, err := s.Reports().Latest(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, latest)

	week := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	rep := WeeklyReport{
		ChildID:        c.ID,
		WeekStart:      week,
		WeekEnd:        week.AddDate(0, 0, 7),
		TasksCompleted: 2,
		Summary:        "first",
		Insights:       map[string]string{"expression": "更敢说了"},
	}
	first, err := s.Reports().Save(ctx, rep)
	require.NoError(t, err)

	rep.Summary = "second"
	rep.TasksCompleted = 3
	second, err := s.Reports().Save(ctx, rep)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	latest, err = s.Reports().Latest(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "second", latest.Summary)
	assert.Equal(t, 3, latest.TasksCompleted)
	assert.Equal(t, "更敢说了", latest.Insights["expression"])
}

func TestGrowthRepo_RunningAverage(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	_, c := seedChild(t, s)

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	_, err := s.Growth().AddTask(ctx, c.ID, day, 100, ability.Scores{Expression: 4, Logic: 2, Exploration: 3, Creativity: 5, Habit: 3})
	require.NoError(t, err)
	rec, err := s.Growth().AddTask(ctx, c.ID, day, 100, ability.Scores{Expression: 2, Logic: 4, Exploration: 3, Creativity: 3, Habit: 5})
	require.NoError(t, err)

	assert.Equal(t, 2, rec.TasksCompleted)
	assert.Equal(t, 200, rec.XPEarned)
	assert.InDelta(t, 3.0, rec.Averages.Expression, 1e-9)
	assert.InDelta(t, 4.0, rec.Averages.Creativity, 1e-9)

	_, err = s.Growth().AddTask(ctx, c.ID, day.AddDate(0, 0, 1), 100, ability.Neutral())
	require.NoError(t, err)

	rows, err := s.Growth().Range(ctx, c.ID, day, day.AddDate(0, 0, 7))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.True(t, rows[0].Date.Before(rows[1].Date))
}

func TestWorkRepo(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	_, c := seedChild(t, s)

	for i := 0; i < 3; i++ {
		_, err := s.Works().Create(ctx, Work{
			ChildID: c.ID,
			Title:   fmt.Sprintf("作品%d", i),
			Content: "内容",
			Score:   4,
		})
		require.NoError(t, err)
	}

	works, err := s.Works().Recent(ctx, c.ID, 2)
	require.NoError(t, err)
	assert.Len(t, works, 2)
	assert.Equal(t, "task", works[0].Kind)
}

func TestCoachRepo_Upsert(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	_, c := seedChild(t, s)
	recID := uuid.New()

	got, err := s.Coach().Find(ctx, c.ID, recID)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = s.Coach().Save(ctx, CoachSession{
		ChildID:      c.ID,
		TaskRecordID: recID,
		Messages:     []chat.Turn{{Role: chat.RoleChild, Content: "怎么开头?"}},
		TurnCount:    1,
	})
	require.NoError(t, err)

	_, err = s.Coach().Save(ctx, CoachSession{
		ChildID:      c.ID,
		TaskRecordID: recID,
		Messages: []chat.Turn{
			{Role: chat.RoleChild, Content: "怎么开头?"},
			{Role: chat.RoleCoach, Content: "你最想写什么?"},
		},
		TurnCount: 1,
	})
	require.NoError(t, err)

	got, err = s.Coach().Find(ctx, c.ID, recID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Len(t, got.Messages, 2)
	assert.Equal(t, chat.RoleCoach, got.Messages[1].Role)
}

func TestEventRepo_LLMUsage(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Events()

	events := []LLMRequestEventData{
		{Provider: "mock", Model: "m1", Purpose: "evaluation", InputTokens: 10, OutputTokens: 5, LatencyMs: 100, Success: true},
		{Provider: "mock", Model: "m1", Purpose: "evaluation", InputTokens: 20, OutputTokens: 5, LatencyMs: 300, Success: true},
		{Provider: "mock", Model: "m2", Purpose: "coach", InputTokens: 7, OutputTokens: 3, LatencyMs: 50, Success: false, ErrorMessage: "boom"},
	}
	for _, e := range events {
		require.NoError(t, repo.AppendLLMRequest(ctx, e))
	}

	list, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "coach", list[0].Purpose, "newest first")

	ev, err := repo.GetLLMEvent(ctx, list[0].ID)
	require.NoError(t, err)
	require.NotNil(t, ev)
	assert.Equal(t, "boom", ev.ErrorMessage)

	missing, err := repo.GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	usage := map[string]LLMUsageStats{}
	for _, u := range byPurpose {
		usage[u.Purpose] = u
	}
	assert.Equal(t, 2, usage["evaluation"].Calls)
	assert.Equal(t, 30, usage["evaluation"].InputTokens)
	assert.Equal(t, int64(200), usage["evaluation"].AvgLatencyMs)

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	assert.Len(t, byModel, 2)
}

func TestWithTx_RollsBack(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	_, c := seedChild(t, s)

	sentinel := errors.New("abort")
	err := s.WithTx(ctx, func(tx *Store) error {
		if _, err := tx.Works().Create(ctx, Work{ChildID: c.ID, Title: "t", Content: "c"}); err != nil {
			return err
		}
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)

	works, err := s.Works().Recent(ctx, c.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, works)
}
