package app

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/budai/internal/progress"
	"github.com/abhisek/budai/internal/store"
)

// ChildInput is the profile data for a new child.
type ChildInput struct {
	Nickname  string
	Grade     string
	Interests []string
	AvatarURL string
}

// ChildPatch holds profile changes. Nil fields are left unchanged.
type ChildPatch struct {
	Nickname  *string
	Grade     *string
	Interests []string
	AvatarURL *string
}

// ChildView is a child with derived progression and earned badges.
type ChildView struct {
	*store.Child
	Progress progress.Snapshot  `json:"progress"`
	Badges   []store.BadgeAward `json:"badges"`
}

// ListChildren returns the user's children.
func (a *App) ListChildren(ctx context.Context, userID uuid.UUID) ([]store.Child, error) {
	return a.store.Children().ListByUser(ctx, userID)
}

// CreateChild adds a child profile to the user's account.
func (a *App) CreateChild(ctx context.Context, userID uuid.UUID, in ChildInput) (*store.Child, error) {
	nickname := strings.TrimSpace(in.Nickname)
	grade := strings.TrimSpace(in.Grade)
	if nickname == "" || grade == "" {
		return nil, invalid("请填写孩子昵称和年级")
	}
	return a.store.Children().Create(ctx, store.NewChild{
		UserID:    userID,
		Nickname:  nickname,
		Grade:     grade,
		Interests: cleanList(in.Interests),
		AvatarURL: strings.TrimSpace(in.AvatarURL),
		Title:     progress.TitleFor(1),
	})
}

// UpdateChild edits a child profile owned by the user.
func (a *App) UpdateChild(ctx context.Context, userID uuid.UUID, childID string, p ChildPatch) (*store.Child, error) {
	if strings.TrimSpace(childID) == "" {
		return nil, invalid("请提供孩子ID")
	}
	c, err := a.ownedChild(ctx, userID, childID)
	if err != nil {
		return nil, err
	}

	var u store.ChildUpdate
	if p.Nickname != nil {
		n := strings.TrimSpace(*p.Nickname)
		if n == "" {
			return nil, invalid("孩子昵称不能为空")
		}
		u.Nickname = &n
	}
	if p.Grade != nil {
		g := strings.TrimSpace(*p.Grade)
		if g == "" {
			return nil, invalid("年级不能为空")
		}
		u.Grade = &g
	}
	if p.Interests != nil {
		u.Interests = cleanList(p.Interests)
	}
	u.AvatarURL = p.AvatarURL
	return a.store.Children().Update(ctx, c.ID, u)
}

// GetChild returns a child with its progression and badges.
func (a *App) GetChild(ctx context.Context, userID uuid.UUID, childID string) (*ChildView, error) {
	c, err := a.ownedChild(ctx, userID, childID)
	if err != nil {
		return nil, err
	}
	awards, err := a.store.Badges().ListAwards(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	return &ChildView{Child: c, Progress: progress.SnapshotFor(c.XP), Badges: awards}, nil
}

func (a *App) ownedChild(ctx context.Context, userID uuid.UUID, childID string) (*store.Child, error) {
	id, err := uuid.Parse(strings.TrimSpace(childID))
	if err != nil {
		return nil, notFound("孩子档案不存在")
	}
	c, err := a.store.Children().GetOwned(ctx, userID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, notFound("孩子档案不存在")
		}
		return nil, err
	}
	return c, nil
}

// cleanList trims entries and drops blanks. Never returns nil.
func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
