package growth

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/budai/internal/app"
	"github.com/abhisek/budai/internal/router"
	"github.com/abhisek/budai/internal/screen"
	"github.com/abhisek/budai/internal/ui/components"
	"github.com/abhisek/budai/internal/ui/layout"
	"github.com/abhisek/budai/internal/ui/report"
	"github.com/abhisek/budai/internal/ui/theme"
)

// Loader fetches a child's growth view.
type Loader interface {
	Growth(ctx context.Context, userID uuid.UUID, childID, from, to string) (*app.GrowthView, error)
}

type growthLoadedMsg struct {
	View *app.GrowthView
	Err  error
}

// GrowthScreen shows level, ability profile, badges and the latest report.
type GrowthScreen struct {
	loader   Loader
	userID   uuid.UUID
	childID  uuid.UUID
	nickname string
	view     *app.GrowthView
	loaded   bool
	errMsg   string
	offset   int
}

var _ screen.Screen = (*GrowthScreen)(nil)
var _ screen.KeyHintProvider = (*GrowthScreen)(nil)

// New creates a GrowthScreen for one child.
func New(loader Loader, userID, childID uuid.UUID, nickname string) *GrowthScreen {
	return &GrowthScreen{loader: loader, userID: userID, childID: childID, nickname: nickname}
}

func (s *GrowthScreen) Init() tea.Cmd {
	return func() tea.Msg {
		v, err := s.loader.Growth(context.Background(), s.userID, s.childID.String(), "", "")
		return growthLoadedMsg{View: v, Err: err}
	}
}

func (s *GrowthScreen) Title() string {
	return "成长档案"
}

func (s *GrowthScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "滚动"},
		{Key: "Esc", Description: "返回"},
	}
}

func (s *GrowthScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case growthLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = app.Message(msg.Err)
		} else {
			s.view = msg.View
		}
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc", "q":
			return s, router.Pop()
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			s.offset++
		}
	}
	return s, nil
}

func (s *GrowthScreen) View(width, height int) string {
	if !s.loaded {
		return theme.Hint.Render("加载中…")
	}
	if s.errMsg != "" {
		return theme.Warning.Render(s.errMsg)
	}

	lines := strings.Split(s.render(width), "\n")
	if height > 0 && len(lines) > height {
		maxOffset := len(lines) - height
		if s.offset > maxOffset {
			s.offset = maxOffset
		}
		lines = lines[s.offset : s.offset+height]
	}
	return strings.Join(lines, "\n")
}

func (s *GrowthScreen) render(width int) string {
	v := s.view
	barWidth := width - 4
	if barWidth > 60 {
		barWidth = 60
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("%s · Lv.%d %s", s.nickname, v.Progress.Level, v.Progress.Title)))
	b.WriteString("\n")
	b.WriteString(components.NewXPBar(v.Progress.XPIntoLevel, v.Progress.XPForNextLevel, barWidth).View())
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("连续学习 %d 天 · 近30天完成 %d 个任务 · 获得 %d 枚徽章",
		v.Streak, tasksIn(v), len(v.Badges))))
	b.WriteString("\n\n")

	b.WriteString(theme.Section.Render("能力画像"))
	b.WriteString("\n")
	b.WriteString(report.Profile(v.Scores, barWidth))
	b.WriteString("\n")

	if len(v.Badges) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Section.Render("徽章"))
		b.WriteString("\n")
		names := make([]string, 0, len(v.Badges))
		for _, aw := range v.Badges {
			names = append(names, aw.Icon+" "+aw.Name)
		}
		b.WriteString(theme.Body.Render(strings.Join(names, "  ")))
		b.WriteString("\n")
	}

	if v.LatestReport != nil {
		b.WriteString("\n")
		b.WriteString(report.Render(s.nickname, v.LatestReport, width-2))
	}
	return b.String()
}

func tasksIn(v *app.GrowthView) int {
	n := 0
	for _, r := range v.Records {
		n += r.TasksCompleted
	}
	return n
}
