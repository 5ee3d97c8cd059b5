package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/budai/ent"
	"github.com/abhisek/budai/ent/child"
	"github.com/abhisek/budai/internal/ability"
)

type childRepo struct {
	client *ent.Client
}

func (r *childRepo) Create(ctx context.Context, c NewChild) (*Child, error) {
	interests := c.Interests
	if interests == nil {
		interests = []string{}
	}
	row, err := r.client.Child.Create().
		SetUserID(c.UserID).
		SetNickname(c.Nickname).
		SetGrade(c.Grade).
		SetInterests(interests).
		SetAvatarURL(c.AvatarURL).
		SetGlobalTitle(c.Title).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create child: %w", mapErr(err))
	}
	return toChild(row), nil
}

func (r *childRepo) Get(ctx context.Context, id uuid.UUID) (*Child, error) {
	row, err := r.client.Child.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get child: %w", mapErr(err))
	}
	return toChild(row), nil
}

func (r *childRepo) GetOwned(ctx context.Context, userID, id uuid.UUID) (*Child, error) {
	row, err := r.client.Child.Query().
		Where(child.ID(id), child.UserID(userID)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("get child: %w", mapErr(err))
	}
	return toChild(row), nil
}

func (r *childRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]Child, error) {
	rows, err := r.client.Child.Query().
		Where(child.UserID(userID)).
		Order(ent.Asc(child.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list children: %w", err)
	}
	out := make([]Child, 0, len(rows))
	for _, row := range rows {
		out = append(out, *toChild(row))
	}
	return out, nil
}

func (r *childRepo) Update(ctx context.Context, id uuid.UUID, u ChildUpdate) (*Child, error) {
	upd := r.client.Child.UpdateOneID(id)
	if u.Nickname != nil {
		upd.SetNickname(*u.Nickname)
	}
	if u.Grade != nil {
		upd.SetGrade(*u.Grade)
	}
	if u.Interests != nil {
		upd.SetInterests(u.Interests)
	}
	if u.AvatarURL != nil {
		upd.SetAvatarURL(*u.AvatarURL)
	}
	row, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update child: %w", mapErr(err))
	}
	return toChild(row), nil
}

func (r *childRepo) SetScores(ctx context.Context, id uuid.UUID, s ability.Scores) (*Child, error) {
	row, err := r.client.Child.UpdateOneID(id).
		SetExpressionScore(s.Expression).
		SetLogicScore(s.Logic).
		SetExplorationScore(s.Exploration).
		SetCreativityScore(s.Creativity).
		SetHabitScore(s.Habit).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("set child scores: %w", mapErr(err))
	}
	return toChild(row), nil
}

func (r *childRepo) ApplyProgress(ctx context.Context, id uuid.UUID, p ProgressUpdate) (*Child, error) {
	row, err := r.client.Child.UpdateOneID(id).
		SetExpressionScore(p.Scores.Expression).
		SetLogicScore(p.Scores.Logic).
		SetExplorationScore(p.Scores.Exploration).
		SetCreativityScore(p.Scores.Creativity).
		SetHabitScore(p.Scores.Habit).
		SetXp(p.XP).
		SetLevel(p.Level).
		SetGlobalTitle(p.Title).
		SetStreak(p.Streak).
		SetLastActiveOn(p.LastActiveOn).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("apply progress: %w", mapErr(err))
	}
	return toChild(row), nil
}

func toChild(c *ent.Child) *Child {
	interests := c.Interests
	if interests == nil {
		interests = []string{}
	}
	return &Child{
		ID:           c.ID,
		UserID:       c.UserID,
		Nickname:     c.Nickname,
		Grade:        c.Grade,
		Interests:    interests,
		AvatarURL:    c.AvatarURL,
		Level:        c.Level,
		XP:           c.Xp,
		Streak:       c.Streak,
		LastActiveOn: c.LastActiveOn,
		GlobalTitle:  c.GlobalTitle,
		Scores: ability.Scores{
			Expression:  c.ExpressionScore,
			Logic:       c.LogicScore,
			Exploration: c.ExplorationScore,
			Creativity:  c.CreativityScore,
			Habit:       c.HabitScore,
		},
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
