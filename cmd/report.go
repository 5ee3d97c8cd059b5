package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/budai/internal/app"
	"github.com/abhisek/budai/internal/store"
	"github.com/abhisek/budai/internal/ui/report"
)

const dateLayout = "2006-01-02"

var reportCmd = &cobra.Command{
	Use:   "report <child-id>",
	Short: "Generate and print a child's weekly growth report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")
		if to == "" {
			to = time.Now().Format(dateLayout)
		}
		if from == "" {
			end, err := time.ParseInLocation(dateLayout, to, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --to %q: %w", to, err)
			}
			from = end.AddDate(0, 0, -6).Format(dateLayout)
		}
		width, _ := cmd.Flags().GetInt("width")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		child, err := lookupChild(ctx, s, args[0])
		if err != nil {
			return err
		}

		a, err := buildApp(ctx, s)
		if err != nil {
			return err
		}
		rep, err := a.GenerateWeeklyReport(ctx, child.UserID, child.ID.String(), from, to)
		if err != nil {
			return errors.New(app.Message(err))
		}

		fmt.Println(report.Render(child.Nickname, rep, width))
		return nil
	},
}

// lookupChild resolves a child by ID regardless of owner; the CLI runs
// with operator rights on the local database.
func lookupChild(ctx context.Context, s *store.Store, raw string) (*store.Child, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid child ID %q: %w", raw, err)
	}
	c, err := s.Children().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("child %s not found", raw)
		}
		return nil, fmt.Errorf("get child: %w", err)
	}
	return c, nil
}

func init() {
	reportCmd.Flags().String("from", "", "First day of the report, YYYY-MM-DD (default: six days before --to)")
	reportCmd.Flags().String("to", "", "Last day of the report, YYYY-MM-DD (default: today)")
	reportCmd.Flags().Int("width", 80, "Output width in columns")
}
