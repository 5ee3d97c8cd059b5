package coach

import "github.com/abhisek/budai/internal/app"

// replyMsg carries the coach's answer to one child message.
type replyMsg struct {
	Result *app.CoachResult
	Err    error
}
