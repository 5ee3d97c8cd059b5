package app

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/budai/internal/store"
)

// Contribution kinds.
var contributionKinds = map[string]bool{
	"idea":      true,
	"character": true,
	"plot":      true,
	"ending":    true,
	"drawing":   true,
}

// ContributeResult is returned by Contribute.
type ContributeResult struct {
	Contribution *store.Contribution `json:"contribution"`
	NewBadges    []store.BadgeAward  `json:"newBadges"`
}

// ListThemes returns every theme with participation counts.
func (a *App) ListThemes(ctx context.Context) ([]store.ThemeSummary, error) {
	return a.store.CoCreate().ListThemes(ctx, a.now())
}

// Contribute adds a child's piece to an active co-creation theme.
func (a *App) Contribute(ctx context.Context, userID uuid.UUID, childID, themeID, kind, content string) (*ContributeResult, error) {
	kind = strings.TrimSpace(kind)
	content = strings.TrimSpace(content)
	if strings.TrimSpace(childID) == "" || strings.TrimSpace(themeID) == "" || kind == "" || content == "" {
		return nil, invalid("请提供完整信息")
	}
	if !contributionKinds[kind] {
		return nil, invalid("不支持的共创类型")
	}
	c, err := a.ownedChild(ctx, userID, childID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(strings.TrimSpace(themeID))
	if err != nil {
		return nil, notFound("共创主题不存在")
	}
	theme, err := a.store.CoCreate().GetTheme(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, notFound("共创主题不存在")
		}
		return nil, err
	}
	if !theme.Active(a.now()) {
		return nil, invalid("该主题不在活动期内")
	}

	contrib, err := a.store.CoCreate().AddContribution(ctx, store.Contribution{
		ChildID: c.ID,
		ThemeID: theme.ID,
		Kind:    kind,
		Content: content,
	})
	if err != nil {
		return nil, err
	}

	awards := a.badges.CheckAndAward(ctx, c.ID)
	if awards == nil {
		awards = []store.BadgeAward{}
	}
	return &ContributeResult{Contribution: contrib, NewBadges: awards}, nil
}
