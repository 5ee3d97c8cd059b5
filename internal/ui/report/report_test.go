package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/budai/internal/ability"
	"github.com/abhisek/budai/internal/store"
)

func sampleReport() *store.WeeklyReport {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	return &store.WeeklyReport{
		WeekStart:      start,
		WeekEnd:        start.AddDate(0, 0, 6),
		TasksCompleted: 4,
		AverageScore:   3.65,
		MostImproved:   "logic",
		NeedsWork:      "habit",
		Summary:        "这周进步很大",
		Insights: map[string]string{
			"logic": "能按步骤讲清楚原因",
			"habit": "坚持完成了每日任务",
		},
		Suggestions:      []string{"睡前聊聊今天的发现"},
		RecommendedGames: []string{"故事接龙"},
	}
}

func TestRender(t *testing.T) {
	out := Render("小明", sampleReport(), 80)

	for _, want := range []string{
		"小明的成长周报",
		"2026-03-02 至 2026-03-08",
		"4 个",
		"3.65",
		"逻辑力",
		"习惯力",
		"这周进步很大",
		"能按步骤讲清楚原因",
		"1. 睡前聊聊今天的发现",
		"1. 故事接龙",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRender_EmptyWeek(t *testing.T) {
	rep := sampleReport()
	rep.MostImproved = ""
	rep.Suggestions = nil
	rep.RecommendedGames = nil
	rep.Insights = nil

	out := Render("小明", rep, 80)
	assert.Contains(t, out, "暂无")
	assert.NotContains(t, out, "亲子小游戏")
	assert.NotContains(t, out, "能力观察")
}

func TestProfile(t *testing.T) {
	out := Profile(ability.Neutral(), 50)
	for _, a := range ability.All() {
		assert.Contains(t, out, a.Label())
	}
	assert.Contains(t, out, "3.0")
}
