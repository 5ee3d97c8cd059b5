package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/budai/ent"
	"github.com/abhisek/budai/ent/weeklyreport"
)

type reportRepo struct {
	client *ent.Client
}

func (r *reportRepo) Save(ctx context.Context, rep WeeklyReport) (*WeeklyReport, error) {
	existing, err := r.client.WeeklyReport.Query().
		Where(
			weeklyreport.ChildID(rep.ChildID),
			weeklyreport.WeekStartGTE(rep.WeekStart),
			weeklyreport.WeekStartLT(rep.WeekStart.AddDate(0, 0, 1)),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query weekly report: %w", err)
	}

	var row *ent.WeeklyReport
	if existing == nil {
		row, err = r.client.WeeklyReport.Create().
			SetChildID(rep.ChildID).
			SetWeekStart(rep.WeekStart).
			SetWeekEnd(rep.WeekEnd).
			SetTasksCompleted(rep.TasksCompleted).
			SetAverageScore(rep.AverageScore).
			SetMostImproved(rep.MostImproved).
			SetNeedsWork(rep.NeedsWork).
			SetSummary(rep.Summary).
			SetInsights(rep.Insights).
			SetSuggestions(nonNil(rep.Suggestions)).
			SetRecommendedGames(nonNil(rep.RecommendedGames)).
			Save(ctx)
	} else {
		row, err = existing.Update().
			SetWeekEnd(rep.WeekEnd).
			SetTasksCompleted(rep.TasksCompleted).
			SetAverageScore(rep.AverageScore).
			SetMostImproved(rep.MostImproved).
			SetNeedsWork(rep.NeedsWork).
			SetSummary(rep.Summary).
			SetInsights(rep.Insights).
			SetSuggestions(nonNil(rep.Suggestions)).
			SetRecommendedGames(nonNil(rep.RecommendedGames)).
			Save(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("save weekly report: %w", mapErr(err))
	}
	return toReport(row), nil
}

func (r *reportRepo) Latest(ctx context.Context, childID uuid.UUID) (*WeeklyReport, error) {
	row, err := r.client.WeeklyReport.Query().
		Where(weeklyreport.ChildID(childID)).
		Order(ent.Desc(weeklyreport.FieldWeekStart)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest weekly report: %w", err)
	}
	return toReport(row), nil
}

func toReport(r *ent.WeeklyReport) *WeeklyReport {
	insights := r.Insights
	if insights == nil {
		insights = map[string]string{}
	}
	return &WeeklyReport{
		ID:               r.ID,
		ChildID:          r.ChildID,
		WeekStart:        r.WeekStart,
		WeekEnd:          r.WeekEnd,
		TasksCompleted:   r.TasksCompleted,
		AverageScore:     r.AverageScore,
		MostImproved:     r.MostImproved,
		NeedsWork:        r.NeedsWork,
		Summary:          r.Summary,
		Insights:         insights,
		Suggestions:      nonNil(r.Suggestions),
		RecommendedGames: nonNil(r.RecommendedGames),
		CreatedAt:        r.CreatedAt,
	}
}
