package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/budai/internal/chat"
	"github.com/abhisek/budai/internal/store"
	"github.com/abhisek/budai/internal/tutor"
)

// CoachResult is one coach reply with the updated conversation.
type CoachResult struct {
	*tutor.CoachReply
	Session *store.CoachSession `json:"session"`
}

// Coach answers a child's message about an unfinished or finished task.
func (a *App) Coach(ctx context.Context, userID uuid.UUID, childID, recordID, message string) (*CoachResult, error) {
	message = strings.TrimSpace(message)
	if strings.TrimSpace(childID) == "" || strings.TrimSpace(recordID) == "" || message == "" {
		return nil, invalid("请提供完整信息")
	}
	c, rec, err := a.coachTarget(ctx, userID, childID, recordID)
	if err != nil {
		return nil, err
	}

	sess, err := a.store.Coach().Find(ctx, c.ID, rec.ID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		sess = &store.CoachSession{ChildID: c.ID, TaskRecordID: rec.ID}
	}
	if a.opts.CoachMaxTurns > 0 && sess.TurnCount >= a.opts.CoachMaxTurns {
		return nil, invalid(fmt.Sprintf("本次陪练已达到%d轮上限", a.opts.CoachMaxTurns))
	}

	reply := a.tutor.Coach(ctx, tutor.CoachInput{
		TaskContent: coachTaskText(rec.Task),
		History:     sess.Messages,
		Message:     message,
	})

	sess.Messages = append(sess.Messages,
		chat.Turn{Role: chat.RoleChild, Content: message},
		chat.Turn{Role: chat.RoleCoach, Content: reply.Reply},
	)
	sess.TurnCount++
	saved, err := a.store.Coach().Save(ctx, *sess)
	if err != nil {
		return nil, err
	}
	return &CoachResult{CoachReply: reply, Session: saved}, nil
}

// CoachHistory returns the conversation for a task attempt. A task with no
// conversation yet yields an empty session.
func (a *App) CoachHistory(ctx context.Context, userID uuid.UUID, childID, recordID string) (*store.CoachSession, error) {
	if strings.TrimSpace(childID) == "" || strings.TrimSpace(recordID) == "" {
		return nil, invalid("请提供完整信息")
	}
	c, rec, err := a.coachTarget(ctx, userID, childID, recordID)
	if err != nil {
		return nil, err
	}
	sess, err := a.store.Coach().Find(ctx, c.ID, rec.ID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return &store.CoachSession{ChildID: c.ID, TaskRecordID: rec.ID, Messages: []chat.Turn{}}, nil
	}
	return sess, nil
}

func (a *App) coachTarget(ctx context.Context, userID uuid.UUID, childID, recordID string) (*store.Child, *store.TaskRecord, error) {
	c, err := a.ownedChild(ctx, userID, childID)
	if err != nil {
		return nil, nil, err
	}
	rec, err := a.ownedRecord(ctx, userID, recordID)
	if err != nil {
		return nil, nil, err
	}
	if rec.ChildID != c.ID {
		return nil, nil, notFound("任务记录不存在")
	}
	return c, rec, nil
}

func coachTaskText(t *store.Task) string {
	if t.Prompt == "" {
		return t.Title
	}
	return t.Title + "：" + t.Prompt
}
