package shell

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/budai/internal/router"
	"github.com/abhisek/budai/internal/screen"
	"github.com/abhisek/budai/internal/ui/layout"
)

type stubScreen struct{ title string }

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "body of " + s.title }
func (s *stubScreen) Title() string                           { return s.title }

func sized(m tea.Model) Model {
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(Model)
}

func TestView_Frame(t *testing.T) {
	m := sized(New(&stubScreen{title: "AI陪练"}, layout.Status{Nickname: "小明", Level: 2, Streak: 4}))
	out := m.render()

	assert.Contains(t, out, "Budai")
	assert.Contains(t, out, "AI陪练")
	assert.Contains(t, out, "Lv.2")
	assert.Contains(t, out, "★ 4天")
	assert.Contains(t, out, "body of AI陪练")
	assert.Contains(t, out, "退出")
}

func TestView_TooSmall(t *testing.T) {
	next, _ := New(&stubScreen{title: "x"}, layout.Status{}).Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	assert.Contains(t, next.(Model).render(), "窗口太小")
}

func TestEscPopsOnlyAboveRoot(t *testing.T) {
	m := sized(New(&stubScreen{title: "root"}, layout.Status{}))

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)

	next, _ := m.Update(router.PushScreenMsg{Screen: &stubScreen{title: "child"}})
	m = next.(Model)
	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)
}
