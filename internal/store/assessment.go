package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/budai/ent"
	"github.com/abhisek/budai/ent/assessment"
	"github.com/abhisek/budai/internal/ability"
)

type assessmentRepo struct {
	client *ent.Client
}

func (r *assessmentRepo) Create(ctx context.Context, a Assessment) (*Assessment, error) {
	row, err := r.client.Assessment.Create().
		SetChildID(a.ChildID).
		SetKind(assessment.Kind(a.Kind)).
		SetResponses(a.Responses).
		SetAnalysis(a.Analysis).
		SetSuggestions(a.Suggestions).
		SetExpressionScore(a.Scores.Expression).
		SetLogicScore(a.Scores.Logic).
		SetExplorationScore(a.Scores.Exploration).
		SetCreativityScore(a.Scores.Creativity).
		SetHabitScore(a.Scores.Habit).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create assessment: %w", mapErr(err))
	}
	return toAssessment(row), nil
}

func (r *assessmentRepo) CountByChild(ctx context.Context, childID uuid.UUID) (int, error) {
	n, err := r.client.Assessment.Query().
		Where(assessment.ChildID(childID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count assessments: %w", err)
	}
	return n, nil
}

func (r *assessmentRepo) ListByChild(ctx context.Context, childID uuid.UUID, limit int) ([]Assessment, error) {
	q := r.client.Assessment.Query().
		Where(assessment.ChildID(childID)).
		Order(ent.Desc(assessment.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	out := make([]Assessment, 0, len(rows))
	for _, row := range rows {
		out = append(out, *toAssessment(row))
	}
	return out, nil
}

func toAssessment(a *ent.Assessment) *Assessment {
	return &Assessment{
		ID:          a.ID,
		ChildID:     a.ChildID,
		Kind:        string(a.Kind),
		Responses:   a.Responses,
		Analysis:    a.Analysis,
		Suggestions: nonNil(a.Suggestions),
		Scores: ability.Scores{
			Expression:  a.ExpressionScore,
			Logic:       a.LogicScore,
			Exploration: a.ExplorationScore,
			Creativity:  a.CreativityScore,
			Habit:       a.HabitScore,
		},
		CreatedAt: a.CreatedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
