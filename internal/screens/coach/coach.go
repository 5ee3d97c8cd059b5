package coach

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/abhisek/budai/internal/app"
	"github.com/abhisek/budai/internal/chat"
	"github.com/abhisek/budai/internal/router"
	"github.com/abhisek/budai/internal/screen"
	"github.com/abhisek/budai/internal/store"
	"github.com/abhisek/budai/internal/ui/components"
	"github.com/abhisek/budai/internal/ui/layout"
	"github.com/abhisek/budai/internal/ui/theme"
)

// messageLimit bounds one typed message.
const messageLimit = 200

// Coacher answers child messages for one task record.
type Coacher interface {
	Coach(ctx context.Context, userID uuid.UUID, childID, recordID, message string) (*app.CoachResult, error)
}

// Target identifies the conversation.
type Target struct {
	UserID   uuid.UUID
	ChildID  uuid.UUID
	RecordID uuid.UUID
	Task     string // shown above the conversation
	MaxTurns int
}

// CoachScreen is a chat window between a child and the AI coach.
type CoachScreen struct {
	coacher       Coacher
	target        Target
	turns         []chat.Turn
	turnCount     int
	suggestions   []string
	encouragement string
	input         components.MessageInput
	waiting       bool
	errMsg        string
	growth        func() screen.Screen
}

var _ screen.Screen = (*CoachScreen)(nil)
var _ screen.KeyHintProvider = (*CoachScreen)(nil)

// New creates a CoachScreen resuming history. growth, when set, builds the
// screen opened with ctrl+g.
func New(c Coacher, target Target, history *store.CoachSession, growth func() screen.Screen) *CoachScreen {
	s := &CoachScreen{
		coacher: c,
		target:  target,
		input:   components.NewMessageInput("和小助手聊聊你的想法…", messageLimit),
		growth:  growth,
	}
	if history != nil {
		s.turns = append(s.turns, history.Messages...)
		s.turnCount = history.TurnCount
	}
	return s
}

func (s *CoachScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *CoachScreen) Title() string {
	return "AI陪练"
}

func (s *CoachScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Enter", Description: "发送"}}
	if s.growth != nil {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+G", Description: "成长档案"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "退出"})
}

func (s *CoachScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		return s.handleReply(msg)

	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			return s.send()
		case "ctrl+g":
			if s.growth != nil {
				return s, router.Push(s.growth())
			}
			return s, nil
		}
	}

	if s.waiting {
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *CoachScreen) send() (screen.Screen, tea.Cmd) {
	text := s.input.Value()
	if s.waiting || text == "" {
		return s, nil
	}
	if s.exhausted() {
		s.errMsg = fmt.Sprintf("本次陪练已达到%d轮上限", s.target.MaxTurns)
		return s, nil
	}

	s.turns = append(s.turns, chat.Turn{Role: chat.RoleChild, Content: text})
	s.input.Reset()
	s.input.SetEnabled(false)
	s.waiting = true
	s.errMsg = ""

	t := s.target
	return s, func() tea.Msg {
		res, err := s.coacher.Coach(context.Background(), t.UserID, t.ChildID.String(), t.RecordID.String(), text)
		return replyMsg{Result: res, Err: err}
	}
}

func (s *CoachScreen) handleReply(msg replyMsg) (screen.Screen, tea.Cmd) {
	s.waiting = false
	cmd := s.input.SetEnabled(true)

	if msg.Err != nil {
		// Drop the optimistic child turn; nothing was saved.
		if n := len(s.turns); n > 0 && s.turns[n-1].Role == chat.RoleChild {
			s.turns = s.turns[:n-1]
		}
		s.errMsg = app.Message(msg.Err)
		return s, cmd
	}

	if msg.Result.Session != nil {
		s.turns = append([]chat.Turn(nil), msg.Result.Session.Messages...)
		s.turnCount = msg.Result.Session.TurnCount
	} else {
		s.turns = append(s.turns, chat.Turn{Role: chat.RoleCoach, Content: msg.Result.Reply})
		s.turnCount++
	}
	s.suggestions = msg.Result.Suggestions
	s.encouragement = msg.Result.Encouragement
	return s, cmd
}

func (s *CoachScreen) exhausted() bool {
	return s.target.MaxTurns > 0 && s.turnCount >= s.target.MaxTurns
}

func (s *CoachScreen) View(width, height int) string {
	bubbleWidth := width * 2 / 3
	if bubbleWidth < 20 {
		bubbleWidth = 20
	}

	var top []string
	if s.target.Task != "" {
		top = append(top, theme.Card.Width(width-2).Render(theme.Body.Render(s.target.Task)))
	}

	var bottom []string
	if s.encouragement != "" {
		bottom = append(bottom, theme.Encouragement.Render("★ "+s.encouragement))
	}
	for _, sg := range s.suggestions {
		bottom = append(bottom, theme.Hint.Render("· "+sg))
	}
	switch {
	case s.errMsg != "":
		bottom = append(bottom, theme.Warning.Render(s.errMsg))
	case s.waiting:
		bottom = append(bottom, theme.Hint.Render("小助手正在思考…"))
	case s.target.MaxTurns > 0:
		bottom = append(bottom, theme.Hint.Render(fmt.Sprintf("已聊 %d/%d 轮", s.turnCount, s.target.MaxTurns)))
	}
	bottom = append(bottom, s.input.View())

	used := lipgloss.Height(strings.Join(top, "\n")) + lipgloss.Height(strings.Join(bottom, "\n"))
	history := s.renderTurns(width, bubbleWidth, height-used)

	parts := append(top, history)
	parts = append(parts, bottom...)
	return strings.Join(parts, "\n")
}

// renderTurns draws the newest turns that fit in height rows.
func (s *CoachScreen) renderTurns(width, bubbleWidth, height int) string {
	if height <= 0 {
		return ""
	}
	var blocks []string
	rows := 0
	for i := len(s.turns) - 1; i >= 0; i-- {
		b := renderTurn(s.turns[i], width, bubbleWidth)
		h := lipgloss.Height(b)
		if rows+h > height {
			break
		}
		rows += h
		blocks = append([]string{b}, blocks...)
	}
	return lipgloss.NewStyle().Height(height).Render(strings.Join(blocks, "\n"))
}

func renderTurn(t chat.Turn, width, bubbleWidth int) string {
	if t.Role == chat.RoleChild {
		b := theme.ChildBubble.Width(bubbleWidth).Render(t.Content)
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, b)
	}
	return theme.CoachBubble.Width(bubbleWidth).Render(t.Content)
}
