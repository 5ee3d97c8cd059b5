package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/budai/internal/app"
	"github.com/abhisek/budai/internal/screen"
	coachscreen "github.com/abhisek/budai/internal/screens/coach"
	"github.com/abhisek/budai/internal/screens/growth"
	"github.com/abhisek/budai/internal/store"
	"github.com/abhisek/budai/internal/ui/layout"
	"github.com/abhisek/budai/internal/ui/shell"
)

var coachCmd = &cobra.Command{
	Use:   "coach",
	Short: "Chat with the AI coach about a task in the terminal",
	Long: "Opens a terminal chat between a child and the AI coach. Without --task the\n" +
		"child's daily task is used, creating it if needed.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		childArg, _ := cmd.Flags().GetString("child")
		taskArg, _ := cmd.Flags().GetString("task")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		child, err := lookupChild(ctx, s, childArg)
		if err != nil {
			return err
		}
		a, err := buildApp(ctx, s)
		if err != nil {
			return err
		}

		rec, err := coachRecord(ctx, s, a, child, taskArg)
		if err != nil {
			return err
		}
		history, err := a.CoachHistory(ctx, child.UserID, child.ID.String(), rec.ID.String())
		if err != nil {
			return errors.New(app.Message(err))
		}

		target := coachscreen.Target{
			UserID:   child.UserID,
			ChildID:  child.ID,
			RecordID: rec.ID,
			Task:     taskText(rec.Task),
			MaxTurns: cfg.Coach.MaxTurns,
		}
		openGrowth := func() screen.Screen {
			return growth.New(a, child.UserID, child.ID, child.Nickname)
		}
		status := layout.Status{Nickname: child.Nickname, Level: child.Level, Streak: child.Streak}

		return shell.Run(coachscreen.New(a, target, history, openGrowth), status)
	},
}

// coachRecord returns the record named by taskArg, or today's task when
// taskArg is empty.
func coachRecord(ctx context.Context, s *store.Store, a *app.App, child *store.Child, taskArg string) (*store.TaskRecord, error) {
	if taskArg == "" {
		res, err := a.DailyTask(ctx, child.UserID, child.ID.String())
		if err != nil {
			return nil, errors.New(app.Message(err))
		}
		rec := *res.TaskRecord
		rec.Task = res.Task
		return &rec, nil
	}

	id, err := uuid.Parse(taskArg)
	if err != nil {
		return nil, fmt.Errorf("invalid task record ID %q: %w", taskArg, err)
	}
	rec, err := s.Tasks().GetRecordOwned(ctx, child.UserID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("task record %s not found", taskArg)
		}
		return nil, fmt.Errorf("get task record: %w", err)
	}
	if rec.ChildID != child.ID {
		return nil, fmt.Errorf("task record %s belongs to another child", taskArg)
	}
	return rec, nil
}

func taskText(t *store.Task) string {
	if t == nil {
		return ""
	}
	return t.Title + "：" + t.Prompt
}

func init() {
	coachCmd.Flags().String("child", "", "Child ID")
	coachCmd.Flags().String("task", "", "Task record ID (default: today's task)")
	_ = coachCmd.MarkFlagRequired("child")
}
