package app

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/budai/internal/ability"
	"github.com/abhisek/budai/internal/progress"
	"github.com/abhisek/budai/internal/store"
	"github.com/abhisek/budai/internal/tutor"
)

const dateLayout = "2006-01-02"

// GenerateWeeklyReport aggregates the tasks completed between weekStart
// and weekEnd (both inclusive days) and stores the narrated report. A
// second report for the same week replaces the first.
func (a *App) GenerateWeeklyReport(ctx context.Context, userID uuid.UUID, childID, weekStart, weekEnd string) (*store.WeeklyReport, error) {
	if strings.TrimSpace(childID) == "" || strings.TrimSpace(weekStart) == "" || strings.TrimSpace(weekEnd) == "" {
		return nil, invalid("请提供完整信息")
	}
	start, err := a.parseDate(weekStart)
	if err != nil {
		return nil, err
	}
	end, err := a.parseDate(weekEnd)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, invalid("结束日期不能早于开始日期")
	}
	c, err := a.ownedChild(ctx, userID, childID)
	if err != nil {
		return nil, err
	}
	return a.weeklyReport(ctx, c, start, end)
}

func (a *App) weeklyReport(ctx context.Context, c *store.Child, start, end time.Time) (*store.WeeklyReport, error) {
	recs, err := a.store.Tasks().CompletedBetween(ctx, c.ID, start, end.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	avg, improved := weekStats(recs)
	needsWork := ability.Weakest(c.Scores)

	content := a.tutor.WeeklyReport(ctx, tutor.ReportInput{
		Nickname:       c.Nickname,
		TasksCompleted: len(recs),
		AverageScore:   avg,
		MostImproved:   improved,
		NeedsWork:      needsWork,
		Scores:         c.Scores,
	})

	rep, err := a.store.Reports().Save(ctx, store.WeeklyReport{
		ChildID:          c.ID,
		WeekStart:        start,
		WeekEnd:          end,
		TasksCompleted:   len(recs),
		AverageScore:     avg,
		MostImproved:     string(improved),
		NeedsWork:        string(needsWork),
		Summary:          content.Summary,
		Insights:         content.Insights,
		Suggestions:      content.Suggestions,
		RecommendedGames: content.RecommendedGames,
	})
	if err != nil {
		return nil, err
	}
	a.logger.Info("weekly report generated",
		zap.Stringer("child_id", c.ID),
		zap.Time("week_start", start),
		zap.Int("tasks", len(recs)),
		zap.Bool("fallback", content.Fallback))
	return rep, nil
}

// weekStats returns the mean task score and the ability that moved most
// between the first and last scored task. With one task, its strongest
// ability is reported; with none, the ability is empty.
func weekStats(recs []store.TaskRecord) (float64, ability.Ability) {
	samples := make([]ability.Scores, 0, len(recs))
	for _, r := range recs {
		if r.Scores != nil {
			samples = append(samples, *r.Scores)
		}
	}
	switch len(samples) {
	case 0:
		return 0, ""
	case 1:
		return round2(samples[0].Average()), ability.Strongest(samples[0])
	}

	var sum float64
	for _, s := range samples {
		sum += s.Average()
	}
	avg := round2(sum / float64(len(samples)))
	return avg, ability.Strongest(ability.Delta(samples[0], samples[len(samples)-1]))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

// parseDate accepts YYYY-MM-DD in local time or RFC 3339, and returns the
// start of that day.
func (a *App) parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	loc := a.now().Location()
	if t, err := time.ParseInLocation(dateLayout, s, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, invalid("日期格式不正确，请使用YYYY-MM-DD")
	}
	return progress.Day(t.In(loc)), nil
}
