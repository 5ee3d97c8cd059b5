// Package screen defines the contract between the terminal shell and the
// views it stacks.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/budai/internal/ui/layout"
)

type Screen interface {
	// Init runs each time the screen becomes the top of the stack.
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	// View draws the body only. The shell owns the header and footer and
	// passes the space left between them.
	View(width, height int) string
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
