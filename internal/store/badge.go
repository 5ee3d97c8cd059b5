package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/budai/ent"
	"github.com/abhisek/budai/ent/badge"
	"github.com/abhisek/budai/ent/badgeaward"
)

type badgeRepo struct {
	client *ent.Client
}

func (r *badgeRepo) Ensure(ctx context.Context, b Badge) error {
	existing, err := r.client.Badge.Query().
		Where(badge.Key(b.Key)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = r.client.Badge.Create().
			SetKey(b.Key).
			SetName(b.Name).
			SetDescription(b.Description).
			SetIcon(b.Icon).
			SetCriteria(b.Criteria).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create badge %s: %w", b.Key, mapErr(err))
		}
		return nil
	case err != nil:
		return fmt.Errorf("query badge %s: %w", b.Key, err)
	}

	err = existing.Update().
		SetName(b.Name).
		SetDescription(b.Description).
		SetIcon(b.Icon).
		SetCriteria(b.Criteria).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update badge %s: %w", b.Key, err)
	}
	return nil
}

func (r *badgeRepo) ListBadges(ctx context.Context) ([]Badge, error) {
	rows, err := r.client.Badge.Query().
		Order(ent.Asc(badge.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list badges: %w", err)
	}
	out := make([]Badge, 0, len(rows))
	for _, row := range rows {
		out = append(out, toBadge(row))
	}
	return out, nil
}

func (r *badgeRepo) Award(ctx context.Context, childID uuid.UUID, key string, at time.Time) (*BadgeAward, error) {
	b, err := r.client.Badge.Query().
		Where(badge.Key(key)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("award badge %s: %w", key, mapErr(err))
	}

	row, err := r.client.BadgeAward.Create().
		SetChildID(childID).
		SetBadgeID(b.ID).
		SetAwardedAt(at).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("award badge %s: %w", key, mapErr(err))
	}
	return &BadgeAward{Badge: toBadge(b), ChildID: row.ChildID, AwardedAt: row.AwardedAt}, nil
}

func (r *badgeRepo) ListAwards(ctx context.Context, childID uuid.UUID) ([]BadgeAward, error) {
	rows, err := r.client.BadgeAward.Query().
		Where(badgeaward.ChildID(childID)).
		WithBadge().
		Order(ent.Asc(badgeaward.FieldAwardedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list badge awards: %w", err)
	}
	out := make([]BadgeAward, 0, len(rows))
	for _, row := range rows {
		a := BadgeAward{ChildID: row.ChildID, AwardedAt: row.AwardedAt}
		if row.Edges.Badge != nil {
			a.Badge = toBadge(row.Edges.Badge)
		}
		out = append(out, a)
	}
	return out, nil
}

func toBadge(b *ent.Badge) Badge {
	return Badge{
		ID:          b.ID,
		Key:         b.Key,
		Name:        b.Name,
		Description: b.Description,
		Icon:        b.Icon,
		Criteria:    b.Criteria,
	}
}
