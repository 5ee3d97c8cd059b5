package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/budai/ent"
	"github.com/abhisek/budai/ent/work"
)

type workRepo struct {
	client *ent.Client
}

func (r *workRepo) Create(ctx context.Context, w Work) (*Work, error) {
	kind := w.Kind
	if kind == "" {
		kind = "task"
	}
	row, err := r.client.Work.Create().
		SetChildID(w.ChildID).
		SetNillableTaskRecordID(w.TaskRecordID).
		SetTitle(w.Title).
		SetKind(kind).
		SetContent(w.Content).
		SetComment(w.Comment).
		SetScore(w.Score).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create work: %w", mapErr(err))
	}
	return toWork(row), nil
}

func (r *workRepo) Recent(ctx context.Context, childID uuid.UUID, limit int) ([]Work, error) {
	q := r.client.Work.Query().
		Where(work.ChildID(childID)).
		Order(ent.Desc(work.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list works: %w", err)
	}
	out := make([]Work, 0, len(rows))
	for _, row := range rows {
		out = append(out, *toWork(row))
	}
	return out, nil
}

func toWork(w *ent.Work) *Work {
	return &Work{
		ID:           w.ID,
		ChildID:      w.ChildID,
		TaskRecordID: w.TaskRecordID,
		Title:        w.Title,
		Kind:         w.Kind,
		Content:      w.Content,
		Comment:      w.Comment,
		Score:        w.Score,
		CreatedAt:    w.CreatedAt,
	}
}
