package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/budai/ent"
	"github.com/abhisek/budai/ent/cocreationcontribution"
	"github.com/abhisek/budai/ent/cocreationtheme"
)

type coCreateRepo struct {
	client *ent.Client
}

func (r *coCreateRepo) EnsureTheme(ctx context.Context, t Theme) error {
	exists, err := r.client.CoCreationTheme.Query().
		Where(cocreationtheme.Title(t.Title)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("query theme: %w", err)
	}
	if exists {
		return nil
	}
	_, err = r.client.CoCreationTheme.Create().
		SetTitle(t.Title).
		SetDescription(t.Description).
		SetPrompt(t.Prompt).
		SetStartDate(t.StartDate).
		SetEndDate(t.EndDate).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create theme: %w", mapErr(err))
	}
	return nil
}

func (r *coCreateRepo) GetTheme(ctx context.Context, id uuid.UUID) (*Theme, error) {
	row, err := r.client.CoCreationTheme.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get theme: %w", mapErr(err))
	}
	t := toTheme(row)
	return &t, nil
}

func (r *coCreateRepo) ListThemes(ctx context.Context, at time.Time) ([]ThemeSummary, error) {
	rows, err := r.client.CoCreationTheme.Query().
		WithContributions().
		Order(ent.Desc(cocreationtheme.FieldStartDate)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list themes: %w", err)
	}

	out := make([]ThemeSummary, 0, len(rows))
	for _, row := range rows {
		participants := make(map[uuid.UUID]struct{})
		for _, c := range row.Edges.Contributions {
			participants[c.ChildID] = struct{}{}
		}
		t := toTheme(row)
		out = append(out, ThemeSummary{
			Theme:             t,
			ContributionCount: len(row.Edges.Contributions),
			ParticipantCount:  len(participants),
			IsActive:          t.Active(at),
		})
	}
	return out, nil
}

func (r *coCreateRepo) AddContribution(ctx context.Context, c Contribution) (*Contribution, error) {
	row, err := r.client.CoCreationContribution.Create().
		SetChildID(c.ChildID).
		SetThemeID(c.ThemeID).
		SetKind(cocreationcontribution.Kind(c.Kind)).
		SetContent(c.Content).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("add contribution: %w", mapErr(err))
	}
	return &Contribution{
		ID:        row.ID,
		ChildID:   row.ChildID,
		ThemeID:   row.ThemeID,
		Kind:      string(row.Kind),
		Content:   row.Content,
		CreatedAt: row.CreatedAt,
	}, nil
}

func (r *coCreateRepo) CountByChild(ctx context.Context, childID uuid.UUID) (int, error) {
	n, err := r.client.CoCreationContribution.Query().
		Where(cocreationcontribution.ChildID(childID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count contributions: %w", err)
	}
	return n, nil
}

func toTheme(t *ent.CoCreationTheme) Theme {
	return Theme{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Prompt:      t.Prompt,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
	}
}
