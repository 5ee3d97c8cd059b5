package app

import (
	"context"
	"fmt"

	"github.com/abhisek/budai/internal/progress"
	"github.com/abhisek/budai/internal/store"
)

var defaultThemes = []struct {
	title, description, prompt string
	days                       int
}{
	{
		title:       "森林奇遇记",
		description: "一起编一个发生在神秘森林里的冒险故事",
		prompt:      "森林深处有一扇会说话的小门，它会通向哪里呢？",
		days:        14,
	},
	{
		title:       "未来城市",
		description: "想象一百年后的城市会是什么样子",
		prompt:      "在未来城市里，人们怎样上学、出行和玩耍？",
		days:        28,
	},
	{
		title:       "魔法学校",
		description: "设计一所属于孩子们的魔法学校",
		prompt:      "魔法学校里最受欢迎的一门课是什么？",
		days:        42,
	},
}

// Seed writes the badge catalog and the default co-creation themes. It is
// idempotent; existing themes keep their dates.
func (a *App) Seed(ctx context.Context) error {
	if err := a.badges.Seed(ctx); err != nil {
		return err
	}
	start := progress.Day(a.now())
	for _, t := range defaultThemes {
		err := a.store.CoCreate().EnsureTheme(ctx, store.Theme{
			Title:       t.title,
			Description: t.description,
			Prompt:      t.prompt,
			StartDate:   start,
			EndDate:     start.AddDate(0, 0, t.days),
		})
		if err != nil {
			return fmt.Errorf("seed theme %q: %w", t.title, err)
		}
	}
	return nil
}
