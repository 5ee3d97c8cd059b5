package coach

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/budai/internal/app"
	"github.com/abhisek/budai/internal/chat"
	"github.com/abhisek/budai/internal/router"
	"github.com/abhisek/budai/internal/screen"
	"github.com/abhisek/budai/internal/store"
	"github.com/abhisek/budai/internal/tutor"
)

type fakeCoacher struct {
	calls   []string
	err     error
	session store.CoachSession
}

func (f *fakeCoacher) Coach(_ context.Context, _ uuid.UUID, _, _, message string) (*app.CoachResult, error) {
	f.calls = append(f.calls, message)
	if f.err != nil {
		return nil, f.err
	}
	f.session.Messages = append(f.session.Messages,
		chat.Turn{Role: chat.RoleChild, Content: message},
		chat.Turn{Role: chat.RoleCoach, Content: "说说你的理由吧"},
	)
	f.session.TurnCount++
	sess := f.session
	return &app.CoachResult{
		CoachReply: &tutor.CoachReply{
			Reply:         "说说你的理由吧",
			Suggestions:   []string{"先想一想开头"},
			Encouragement: "你真棒",
		},
		Session: &sess,
	}, nil
}

func typeText(s screen.Screen, text string) screen.Screen {
	for _, r := range text {
		s, _ = s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return s
}

func enter(s screen.Screen) (screen.Screen, tea.Cmd) {
	return s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
}

func newScreen(c Coacher, maxTurns int) *CoachScreen {
	return New(c, Target{
		UserID:   uuid.New(),
		ChildID:  uuid.New(),
		RecordID: uuid.New(),
		Task:     "小小故事家：讲一个关于月亮的故事",
		MaxTurns: maxTurns,
	}, nil, nil)
}

func TestCoachScreen_SendAndReply(t *testing.T) {
	fc := &fakeCoacher{}
	s := newScreen(fc, 20)

	var sc screen.Screen = typeText(s, "我想讲兔子")
	sc, cmd := enter(sc)
	require.NotNil(t, cmd)
	assert.True(t, s.waiting)
	require.Len(t, s.turns, 1)

	sc, _ = sc.Update(cmd())
	assert.False(t, s.waiting)
	assert.Equal(t, []string{"我想讲兔子"}, fc.calls)
	require.Len(t, s.turns, 2)
	assert.Equal(t, chat.RoleCoach, s.turns[1].Role)
	assert.Equal(t, 1, s.turnCount)

	view := sc.View(80, 30)
	assert.Contains(t, view, "说说你的理由吧")
	assert.Contains(t, view, "你真棒")
	assert.Contains(t, view, "已聊 1/20 轮")
}

func TestCoachScreen_EmptyMessageIgnored(t *testing.T) {
	fc := &fakeCoacher{}
	_, cmd := enter(newScreen(fc, 20))
	assert.Nil(t, cmd)
	assert.Empty(t, fc.calls)
}

func TestCoachScreen_ErrorDropsTurn(t *testing.T) {
	fc := &fakeCoacher{err: errors.New("boom")}
	s := newScreen(fc, 20)

	sc, cmd := enter(typeText(s, "你好"))
	require.NotNil(t, cmd)
	sc.Update(cmd())

	assert.Empty(t, s.turns)
	assert.Equal(t, "boom", s.errMsg)
}

func TestCoachScreen_TurnLimit(t *testing.T) {
	fc := &fakeCoacher{}
	s := New(fc, Target{MaxTurns: 1}, &store.CoachSession{
		Messages: []chat.Turn{
			{Role: chat.RoleChild, Content: "一"},
			{Role: chat.RoleCoach, Content: "二"},
		},
		TurnCount: 1,
	}, nil)

	_, cmd := enter(typeText(s, "还想聊"))
	assert.Nil(t, cmd)
	assert.Empty(t, fc.calls)
	assert.Equal(t, "本次陪练已达到1轮上限", s.errMsg)
}

func TestCoachScreen_GrowthShortcut(t *testing.T) {
	opened := 0
	s := New(&fakeCoacher{}, Target{}, nil, func() screen.Screen {
		opened++
		return newScreen(&fakeCoacher{}, 1)
	})

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'g', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PushScreenMsg)
	assert.True(t, ok)
	assert.Equal(t, 1, opened)
}
