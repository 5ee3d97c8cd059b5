// Package report renders weekly growth reports and ability profiles for
// the terminal.
package report

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/budai/internal/ability"
	"github.com/abhisek/budai/internal/store"
	"github.com/abhisek/budai/internal/ui/components"
	"github.com/abhisek/budai/internal/ui/theme"
)

const dateFormat = "2006-01-02"

// Render draws a weekly report as a bordered card width columns wide.
func Render(nickname string, rep *store.WeeklyReport, width int) string {
	inner := width - 6
	if inner < 30 {
		inner = 30
	}
	text := theme.Body.Width(inner)

	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("%s的成长周报", nickname)))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%s 至 %s",
		rep.WeekStart.Format(dateFormat), rep.WeekEnd.Format(dateFormat))))
	b.WriteString("\n\n")

	b.WriteString(stat("完成任务", fmt.Sprintf("%d 个", rep.TasksCompleted)))
	b.WriteString(stat("平均得分", fmt.Sprintf("%.2f", rep.AverageScore)))
	b.WriteString(stat("进步最大", abilityLabel(rep.MostImproved)))
	b.WriteString(stat("继续加油", abilityLabel(rep.NeedsWork)))
	b.WriteString("\n")

	if rep.Summary != "" {
		b.WriteString(theme.Section.Render("本周总结"))
		b.WriteString("\n")
		b.WriteString(text.Render(rep.Summary))
		b.WriteString("\n\n")
	}

	if len(rep.Insights) > 0 {
		b.WriteString(theme.Section.Render("能力观察"))
		b.WriteString("\n")
		for _, a := range ability.All() {
			note, ok := rep.Insights[string(a)]
			if !ok || note == "" {
				continue
			}
			b.WriteString(text.Render(fmt.Sprintf("%s：%s", a.Label(), note)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(list("给家长的建议", rep.Suggestions, text))
	b.WriteString(list("亲子小游戏", rep.RecommendedGames, text))

	return theme.Card.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}

// Profile draws one score bar per ability.
func Profile(scores ability.Scores, width int) string {
	lines := make([]string, 0, len(ability.All()))
	for _, a := range ability.All() {
		lines = append(lines, components.NewScoreBar(a.Label(), scores.Get(a), width).View())
	}
	return strings.Join(lines, "\n")
}

func stat(label, value string) string {
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render(label+"：") +
		theme.Highlight.Render(value) + "\n"
}

func list(title string, items []string, style lipgloss.Style) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(theme.Section.Render(title))
	b.WriteString("\n")
	for i, it := range items {
		b.WriteString(style.Render(fmt.Sprintf("%d. %s", i+1, it)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

func abilityLabel(s string) string {
	if s == "" {
		return "暂无"
	}
	a, err := ability.Parse(s)
	if err != nil {
		return s
	}
	return a.Label()
}
