package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/budai/ent"
	"github.com/abhisek/budai/ent/growthrecord"
	"github.com/abhisek/budai/internal/ability"
)

type growthRepo struct {
	client *ent.Client
}

// AddTask keeps a running average so a day's record never needs the
// underlying task rows to be re-read.
func (r *growthRepo) AddTask(ctx context.Context, childID uuid.UUID, day time.Time, xp int, sample ability.Scores) (*GrowthRecord, error) {
	existing, err := r.client.GrowthRecord.Query().
		Where(
			growthrecord.ChildID(childID),
			growthrecord.DateGTE(day),
			growthrecord.DateLT(day.AddDate(0, 0, 1)),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query growth record: %w", err)
	}

	if existing == nil {
		row, err := r.client.GrowthRecord.Create().
			SetChildID(childID).
			SetDate(day).
			SetTasksCompleted(1).
			SetXpEarned(xp).
			SetAverageExpressionScore(sample.Expression).
			SetAverageLogicScore(sample.Logic).
			SetAverageExplorationScore(sample.Exploration).
			SetAverageCreativityScore(sample.Creativity).
			SetAverageHabitScore(sample.Habit).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create growth record: %w", mapErr(err))
		}
		return toGrowth(row), nil
	}

	n := float64(existing.TasksCompleted)
	avg := func(old, v float64) float64 { return (old*n + v) / (n + 1) }
	row, err := existing.Update().
		AddTasksCompleted(1).
		AddXpEarned(xp).
		SetAverageExpressionScore(avg(existing.AverageExpressionScore, sample.Expression)).
		SetAverageLogicScore(avg(existing.AverageLogicScore, sample.Logic)).
		SetAverageExplorationScore(avg(existing.AverageExplorationScore, sample.Exploration)).
		SetAverageCreativityScore(avg(existing.AverageCreativityScore, sample.Creativity)).
		SetAverageHabitScore(avg(existing.AverageHabitScore, sample.Habit)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update growth record: %w", mapErr(err))
	}
	return toGrowth(row), nil
}

func (r *growthRepo) Range(ctx context.Context, childID uuid.UUID, from, to time.Time) ([]GrowthRecord, error) {
	rows, err := r.client.GrowthRecord.Query().
		Where(
			growthrecord.ChildID(childID),
			growthrecord.DateGTE(from),
			growthrecord.DateLT(to),
		).
		Order(ent.Asc(growthrecord.FieldDate)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query growth records: %w", err)
	}
	out := make([]GrowthRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, *toGrowth(row))
	}
	return out, nil
}

func toGrowth(g *ent.GrowthRecord) *GrowthRecord {
	return &GrowthRecord{
		ID:             g.ID,
		ChildID:        g.ChildID,
		Date:           g.Date,
		TasksCompleted: g.TasksCompleted,
		XPEarned:       g.XpEarned,
		Averages: ability.Scores{
			Expression:  g.AverageExpressionScore,
			Logic:       g.AverageLogicScore,
			Exploration: g.AverageExplorationScore,
			Creativity:  g.AverageCreativityScore,
			Habit:       g.AverageHabitScore,
		},
	}
}
