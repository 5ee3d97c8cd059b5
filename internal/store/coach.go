package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/budai/ent"
	"github.com/abhisek/budai/ent/coachsession"
)

type coachRepo struct {
	client *ent.Client
}

func (r *coachRepo) Find(ctx context.Context, childID, taskRecordID uuid.UUID) (*CoachSession, error) {
	row, err := r.client.CoachSession.Query().
		Where(
			coachsession.ChildID(childID),
			coachsession.TaskRecordID(taskRecordID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query coach session: %w", err)
	}
	return toCoachSession(row), nil
}

func (r *coachRepo) Save(ctx context.Context, s CoachSession) (*CoachSession, error) {
	existing, err := r.client.CoachSession.Query().
		Where(
			coachsession.ChildID(s.ChildID),
			coachsession.TaskRecordID(s.TaskRecordID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query coach session: %w", err)
	}

	var row *ent.CoachSession
	if existing == nil {
		row, err = r.client.CoachSession.Create().
			SetChildID(s.ChildID).
			SetTaskRecordID(s.TaskRecordID).
			SetMessages(s.Messages).
			SetTurnCount(s.TurnCount).
			Save(ctx)
	} else {
		row, err = existing.Update().
			SetMessages(s.Messages).
			SetTurnCount(s.TurnCount).
			Save(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("save coach session: %w", mapErr(err))
	}
	return toCoachSession(row), nil
}

func toCoachSession(s *ent.CoachSession) *CoachSession {
	return &CoachSession{
		ID:           s.ID,
		ChildID:      s.ChildID,
		TaskRecordID: s.TaskRecordID,
		Messages:     s.Messages,
		TurnCount:    s.TurnCount,
	}
}
