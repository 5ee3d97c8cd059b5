package growth

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/budai/internal/ability"
	"github.com/abhisek/budai/internal/app"
	"github.com/abhisek/budai/internal/progress"
	"github.com/abhisek/budai/internal/router"
	"github.com/abhisek/budai/internal/store"
)

type fakeLoader struct {
	view *app.GrowthView
	err  error
}

func (f fakeLoader) Growth(context.Context, uuid.UUID, string, string, string) (*app.GrowthView, error) {
	return f.view, f.err
}

func sampleView() *app.GrowthView {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	return &app.GrowthView{
		Scores:   ability.Neutral(),
		Progress: progress.SnapshotFor(150),
		Streak:   3,
		Records: []store.GrowthRecord{
			{TasksCompleted: 2},
			{TasksCompleted: 1},
		},
		Badges: []store.BadgeAward{
			{Badge: store.Badge{Name: "表达之星", Icon: "🌟"}},
		},
		LatestReport: &store.WeeklyReport{
			WeekStart: start,
			WeekEnd:   start.AddDate(0, 0, 6),
			Summary:   "本周表现稳定",
		},
	}
}

func load(t *testing.T, s *GrowthScreen) {
	t.Helper()
	cmd := s.Init()
	require.NotNil(t, cmd)
	s.Update(cmd())
}

func TestGrowthScreen_View(t *testing.T) {
	s := New(fakeLoader{view: sampleView()}, uuid.New(), uuid.New(), "小明")
	assert.Contains(t, s.View(80, 100), "加载中")

	load(t, s)
	view := s.View(80, 100)
	for _, want := range []string{"小明", "连续学习 3 天", "完成 3 个任务", "表达之星", "逻辑力", "本周表现稳定"} {
		assert.Contains(t, view, want)
	}
}

func TestGrowthScreen_Error(t *testing.T) {
	s := New(fakeLoader{err: assertErr("孩子档案不存在")}, uuid.New(), uuid.New(), "小明")
	load(t, s)
	assert.Contains(t, s.View(80, 40), "孩子档案不存在")
}

func TestGrowthScreen_EscPops(t *testing.T) {
	s := New(fakeLoader{view: sampleView()}, uuid.New(), uuid.New(), "小明")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)
}

func TestGrowthScreen_ScrollClamped(t *testing.T) {
	s := New(fakeLoader{view: sampleView()}, uuid.New(), uuid.New(), "小明")
	load(t, s)
	for i := 0; i < 500; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	assert.NotEmpty(t, s.View(80, 5))
	assert.Less(t, s.offset, 500)
}

type assertErr string

func (e assertErr) Error() string { return string(e) }
