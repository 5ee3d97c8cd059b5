package components

import (
	"strings"
	"unicode/utf8"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// MessageInput wraps bubbles/textinput for one-line chat messages.
type MessageInput struct {
	Model textinput.Model
}

// NewMessageInput creates a focused input limited to limit runes.
func NewMessageInput(placeholder string, limit int) MessageInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	if limit > 0 {
		ti.CharLimit = limit
	}
	ti.Focus()
	return MessageInput{Model: ti}
}

// Init returns the initial command.
func (m MessageInput) Init() tea.Cmd {
	return m.Model.Focus()
}

// Update handles messages.
func (m MessageInput) Update(msg tea.Msg) (MessageInput, tea.Cmd) {
	var cmd tea.Cmd
	m.Model, cmd = m.Model.Update(msg)
	return m, cmd
}

// View renders the input.
func (m MessageInput) View() string {
	return m.Model.View()
}

// Value returns the trimmed input text.
func (m MessageInput) Value() string {
	return strings.TrimSpace(m.Model.Value())
}

// Len returns the number of runes typed so far.
func (m MessageInput) Len() int {
	return utf8.RuneCountInString(m.Model.Value())
}

// Reset clears the input.
func (m *MessageInput) Reset() {
	m.Model.Reset()
}

// SetEnabled focuses or blurs the input.
func (m *MessageInput) SetEnabled(on bool) tea.Cmd {
	if on {
		return m.Model.Focus()
	}
	m.Model.Blur()
	return nil
}
