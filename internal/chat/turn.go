// Package chat holds the conversation turn type shared by the coach flow,
// its persisted session rows and the LLM prompts built from them.
package chat

import "unicode/utf8"

// Role is the sender of a turn.
type Role string

const (
	RoleChild Role = "user"
	RoleCoach Role = "assistant"
)

// Turn is one message in a coach conversation.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Tail returns at most the last n turns.
func Tail(turns []Turn, n int) []Turn {
	if n <= 0 || len(turns) <= n {
		return turns
	}
	return turns[len(turns)-n:]
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}
