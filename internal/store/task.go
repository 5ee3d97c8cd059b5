package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/budai/ent"
	"github.com/abhisek/budai/ent/child"
	"github.com/abhisek/budai/ent/taskrecord"
	"github.com/abhisek/budai/internal/ability"
)

type taskRepo struct {
	client *ent.Client
}

func (r *taskRepo) CreateTask(ctx context.Context, t Task) (*Task, error) {
	row, err := r.client.Task.Create().
		SetAbility(t.Ability).
		SetDifficulty(t.Difficulty).
		SetTitle(t.Title).
		SetDescription(t.Description).
		SetPrompt(t.Prompt).
		SetConstraints(nonNil(t.Constraints)).
		SetExpectedMinutes(t.ExpectedMinutes).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", mapErr(err))
	}
	return toTask(row), nil
}

func (r *taskRepo) StartRecord(ctx context.Context, childID, taskID uuid.UUID, at time.Time) (*TaskRecord, error) {
	row, err := r.client.TaskRecord.Create().
		SetChildID(childID).
		SetTaskID(taskID).
		SetStartedAt(at).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("start task record: %w", mapErr(err))
	}
	return toTaskRecord(row), nil
}

func (r *taskRepo) GetRecordOwned(ctx context.Context, userID, id uuid.UUID) (*TaskRecord, error) {
	row, err := r.client.TaskRecord.Query().
		Where(
			taskrecord.ID(id),
			taskrecord.HasChildWith(child.UserID(userID)),
		).
		WithTask().
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("get task record: %w", mapErr(err))
	}
	return toTaskRecord(row), nil
}

func (r *taskRepo) LatestInProgress(ctx context.Context, childID uuid.UUID, since time.Time) (*TaskRecord, error) {
	row, err := r.client.TaskRecord.Query().
		Where(
			taskrecord.ChildID(childID),
			taskrecord.StatusEQ(taskrecord.StatusInProgress),
			taskrecord.StartedAtGTE(since),
		).
		Order(ent.Desc(taskrecord.FieldStartedAt)).
		WithTask().
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query in-progress record: %w", err)
	}
	return toTaskRecord(row), nil
}

func (r *taskRepo) Complete(ctx context.Context, id uuid.UUID, c Completion) (*TaskRecord, error) {
	row, err := r.client.TaskRecord.UpdateOneID(id).
		Where(taskrecord.StatusEQ(taskrecord.StatusInProgress)).
		SetStatus(taskrecord.StatusCompleted).
		SetSubmission(c.Submission).
		SetTimeSpentSecs(c.TimeSpentSecs).
		SetCompletedAt(c.CompletedAt).
		SetExpressionScore(c.Scores.Expression).
		SetLogicScore(c.Scores.Logic).
		SetExplorationScore(c.Scores.Exploration).
		SetCreativityScore(c.Scores.Creativity).
		SetHabitScore(c.Scores.Habit).
		SetFeedback(c.Feedback).
		SetSuggestions(nonNil(c.Suggestions)).
		SetExemplarAnswer(c.ExemplarAnswer).
		SetXpEarned(c.XPEarned).
		Save(ctx)
	if err != nil {
		// The status predicate turns a second completion into not-found.
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("complete task record: %w", ErrConflict)
		}
		return nil, fmt.Errorf("complete task record: %w", mapErr(err))
	}
	return toTaskRecord(row), nil
}

func (r *taskRepo) CompletedBetween(ctx context.Context, childID uuid.UUID, from, to time.Time) ([]TaskRecord, error) {
	rows, err := r.client.TaskRecord.Query().
		Where(
			taskrecord.ChildID(childID),
			taskrecord.StatusEQ(taskrecord.StatusCompleted),
			taskrecord.CompletedAtGTE(from),
			taskrecord.CompletedAtLT(to),
		).
		Order(ent.Asc(taskrecord.FieldCompletedAt)).
		WithTask().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query completed records: %w", err)
	}
	out := make([]TaskRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, *toTaskRecord(row))
	}
	return out, nil
}

func toTask(t *ent.Task) *Task {
	return &Task{
		ID:              t.ID,
		Ability:         t.Ability,
		Difficulty:      t.Difficulty,
		Title:           t.Title,
		Description:     t.Description,
		Prompt:          t.Prompt,
		Constraints:     nonNil(t.Constraints),
		ExpectedMinutes: t.ExpectedMinutes,
	}
}

func toTaskRecord(r *ent.TaskRecord) *TaskRecord {
	rec := &TaskRecord{
		ID:             r.ID,
		ChildID:        r.ChildID,
		TaskID:         r.TaskID,
		Status:         string(r.Status),
		Submission:     r.Submission,
		TimeSpentSecs:  r.TimeSpentSecs,
		StartedAt:      r.StartedAt,
		CompletedAt:    r.CompletedAt,
		Feedback:       r.Feedback,
		Suggestions:    r.Suggestions,
		ExemplarAnswer: r.ExemplarAnswer,
		XPEarned:       r.XpEarned,
	}
	if r.ExpressionScore != nil {
		rec.Scores = &ability.Scores{
			Expression:  deref(r.ExpressionScore),
			Logic:       deref(r.LogicScore),
			Exploration: deref(r.ExplorationScore),
			Creativity:  deref(r.CreativityScore),
			Habit:       deref(r.HabitScore),
		}
	}
	if t := r.Edges.Task; t != nil {
		rec.Task = toTask(t)
	}
	return rec
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
