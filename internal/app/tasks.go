package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/budai/internal/ability"
	"github.com/abhisek/budai/internal/progress"
	"github.com/abhisek/budai/internal/store"
	"github.com/abhisek/budai/internal/tutor"
)

// DailyTaskResult is the task a child should work on today.
type DailyTaskResult struct {
	Task       *store.Task       `json:"task"`
	TaskRecord *store.TaskRecord `json:"taskRecord"`
	Resumed    bool              `json:"resumed"`
}

// EvaluateResult is returned by EvaluateTask.
type EvaluateResult struct {
	TaskRecord *store.TaskRecord  `json:"taskRecord"`
	Evaluation *tutor.Evaluation  `json:"evaluation"`
	XPEarned   int                `json:"xpEarned"`
	Progress   progress.Snapshot  `json:"progress"`
	LeveledUp  bool               `json:"leveledUp"`
	Streak     int                `json:"streak"`
	Scores     ability.Scores     `json:"scores"`
	NewBadges  []store.BadgeAward `json:"newBadges"`
}

// DailyTask returns today's task for the child. An unfinished task started
// today is resumed; otherwise a new one targets the weakest ability.
func (a *App) DailyTask(ctx context.Context, userID uuid.UUID, childID string) (*DailyTaskResult, error) {
	if strings.TrimSpace(childID) == "" {
		return nil, invalid("请提供孩子ID")
	}
	c, err := a.ownedChild(ctx, userID, childID)
	if err != nil {
		return nil, err
	}

	now := a.now()
	rec, err := a.store.Tasks().LatestInProgress(ctx, c.ID, progress.Day(now))
	if err != nil {
		return nil, err
	}
	if rec != nil && rec.Task != nil {
		return &DailyTaskResult{Task: rec.Task, TaskRecord: rec, Resumed: true}, nil
	}

	target := ability.Weakest(c.Scores)
	difficulty := ability.DifficultyFor(c.Scores.Get(target))
	content := a.tutor.GenerateTask(ctx, tutor.TaskInput{
		Age:        tutor.AgeForGrade(c.Grade),
		Ability:    target,
		Difficulty: difficulty,
		Interests:  c.Interests,
	})

	out := &DailyTaskResult{}
	err = a.store.WithTx(ctx, func(tx *store.Store) error {
		var err error
		out.Task, err = tx.Tasks().CreateTask(ctx, store.Task{
			Ability:         string(target),
			Difficulty:      difficulty,
			Title:           content.Title,
			Description:     content.Description,
			Prompt:          content.Prompt,
			Constraints:     content.Constraints,
			ExpectedMinutes: content.ExpectedMinutes,
		})
		if err != nil {
			return err
		}
		out.TaskRecord, err = tx.Tasks().StartRecord(ctx, c.ID, out.Task.ID, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	out.TaskRecord.Task = out.Task

	a.logger.Info("daily task assigned",
		zap.Stringer("child_id", c.ID),
		zap.String("ability", string(target)),
		zap.Int("difficulty", difficulty),
		zap.Bool("fallback", content.Fallback))
	return out, nil
}

// EvaluateTask scores a submission and applies its rewards: blended
// scores, XP and level, streak, growth record, archived work and badges.
func (a *App) EvaluateTask(ctx context.Context, userID uuid.UUID, recordID, submission string, timeSpent time.Duration) (*EvaluateResult, error) {
	submission = strings.TrimSpace(submission)
	if strings.TrimSpace(recordID) == "" || submission == "" {
		return nil, invalid("请提供任务记录ID和提交内容")
	}
	if timeSpent < 0 {
		return nil, invalid("用时不能为负数")
	}
	rec, err := a.ownedRecord(ctx, userID, recordID)
	if err != nil {
		return nil, err
	}
	if rec.Status == store.StatusCompleted {
		return nil, invalid("该任务已完成")
	}
	c, err := a.store.Children().Get(ctx, rec.ChildID)
	if err != nil {
		return nil, err
	}

	now := a.now()
	if timeSpent == 0 && rec.StartedAt.Before(now) {
		timeSpent = now.Sub(rec.StartedAt)
	}
	task := taskContent(rec.Task)
	eval := a.tutor.Evaluate(ctx, tutor.EvalInput{
		Task:       task,
		Ability:    ability.Ability(rec.Task.Ability),
		Submission: submission,
		TimeSpent:  timeSpent,
	})

	xp := a.opts.TaskXP
	scores := ability.Blend(c.Scores, eval.Scores, a.opts.Weight)
	totalXP := c.XP + xp
	level := progress.LevelFor(totalXP)
	streak := progress.NextStreak(c.Streak, c.LastActiveOn, now)

	out := &EvaluateResult{
		Evaluation: eval,
		XPEarned:   xp,
		Progress:   progress.SnapshotFor(totalXP),
		LeveledUp:  level > c.Level,
		Streak:     streak,
		Scores:     scores,
	}
	err = a.store.WithTx(ctx, func(tx *store.Store) error {
		var err error
		out.TaskRecord, err = tx.Tasks().Complete(ctx, rec.ID, store.Completion{
			Submission:     submission,
			TimeSpentSecs:  int(timeSpent / time.Second),
			CompletedAt:    now,
			Scores:         eval.Scores,
			Feedback:       eval.Feedback,
			Suggestions:    eval.Suggestions,
			ExemplarAnswer: eval.ExemplarAnswer,
			XPEarned:       xp,
		})
		if err != nil {
			return err
		}
		_, err = tx.Children().ApplyProgress(ctx, c.ID, store.ProgressUpdate{
			Scores:       scores,
			XP:           totalXP,
			Level:        level,
			Title:        progress.TitleFor(level),
			Streak:       streak,
			LastActiveOn: progress.Day(now),
		})
		if err != nil {
			return err
		}
		if _, err := tx.Growth().AddTask(ctx, c.ID, progress.Day(now), xp, eval.Scores); err != nil {
			return err
		}
		_, err = tx.Works().Create(ctx, store.Work{
			ChildID:      c.ID,
			TaskRecordID: &rec.ID,
			Title:        fmt.Sprintf("任务完成 - %s", rec.Task.Title),
			Kind:         "task",
			Content:      submission,
			Comment:      eval.Feedback,
			Score:        eval.Scores.Average(),
		})
		return err
	})
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, invalid("该任务已完成")
		}
		return nil, err
	}
	out.TaskRecord.Task = rec.Task

	out.NewBadges = a.badges.CheckAndAward(ctx, c.ID)
	if out.NewBadges == nil {
		out.NewBadges = []store.BadgeAward{}
	}

	a.logger.Info("task evaluated",
		zap.Stringer("child_id", c.ID),
		zap.Stringer("task_record_id", rec.ID),
		zap.Int("xp", totalXP),
		zap.Int("level", level),
		zap.Int("streak", streak),
		zap.Int("new_badges", len(out.NewBadges)),
		zap.Bool("fallback", eval.Fallback))
	return out, nil
}

func (a *App) ownedRecord(ctx context.Context, userID uuid.UUID, recordID string) (*store.TaskRecord, error) {
	id, err := uuid.Parse(strings.TrimSpace(recordID))
	if err != nil {
		return nil, notFound("任务记录不存在")
	}
	rec, err := a.store.Tasks().GetRecordOwned(ctx, userID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, notFound("任务记录不存在")
		}
		return nil, err
	}
	if rec.Task == nil {
		return nil, fmt.Errorf("task record %s has no task", rec.ID)
	}
	return rec, nil
}

func taskContent(t *store.Task) tutor.TaskContent {
	return tutor.TaskContent{
		Title:           t.Title,
		Description:     t.Description,
		Prompt:          t.Prompt,
		Constraints:     t.Constraints,
		ExpectedMinutes: t.ExpectedMinutes,
	}
}
