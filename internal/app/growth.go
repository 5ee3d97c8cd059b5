package app

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/budai/internal/ability"
	"github.com/abhisek/budai/internal/progress"
	"github.com/abhisek/budai/internal/store"
)

const (
	defaultGrowthDays = 30
	recentWorks       = 10
)

// GrowthView is a child's progress over a date range.
type GrowthView struct {
	ChildID      uuid.UUID            `json:"childId"`
	Scores       ability.Scores       `json:"scores"`
	Progress     progress.Snapshot    `json:"progress"`
	Streak       int                  `json:"streak"`
	Records      []store.GrowthRecord `json:"records"`
	Badges       []store.BadgeAward   `json:"badges"`
	Works        []store.Work         `json:"works"`
	LatestReport *store.WeeklyReport  `json:"latestReport,omitempty"`
}

// Growth returns daily growth records between from and to (inclusive
// days, default the last 30 days) with badges, recent works and the
// latest weekly report.
func (a *App) Growth(ctx context.Context, userID uuid.UUID, childID, from, to string) (*GrowthView, error) {
	if strings.TrimSpace(childID) == "" {
		return nil, invalid("请提供孩子ID")
	}
	c, err := a.ownedChild(ctx, userID, childID)
	if err != nil {
		return nil, err
	}

	end := progress.Day(a.now())
	if strings.TrimSpace(to) != "" {
		if end, err = a.parseDate(to); err != nil {
			return nil, err
		}
	}
	start := end.AddDate(0, 0, -(defaultGrowthDays - 1))
	if strings.TrimSpace(from) != "" {
		if start, err = a.parseDate(from); err != nil {
			return nil, err
		}
	}
	if end.Before(start) {
		return nil, invalid("结束日期不能早于开始日期")
	}

	records, err := a.store.Growth().Range(ctx, c.ID, start, end.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	awards, err := a.store.Badges().ListAwards(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	works, err := a.store.Works().Recent(ctx, c.ID, recentWorks)
	if err != nil {
		return nil, err
	}
	latest, err := a.store.Reports().Latest(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	return &GrowthView{
		ChildID:      c.ID,
		Scores:       c.Scores,
		Progress:     progress.SnapshotFor(c.XP),
		Streak:       c.Streak,
		Records:      records,
		Badges:       awards,
		Works:        works,
		LatestReport: latest,
	}, nil
}
