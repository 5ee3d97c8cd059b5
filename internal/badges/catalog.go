package badges

// catalog is ordered for display. Keys are persisted and must not change.
var catalog = []Definition{
	{
		Key:         Streak7,
		Name:        "坚持一周",
		Description: "连续7天完成任务",
		Icon:        "🔥",
		Criteria:    "streak >= 7",
		Earned:      func(s Stats) bool { return s.Streak >= 7 },
	},
	{
		Key:         Streak14,
		Name:        "习惯养成",
		Description: "连续14天完成任务",
		Icon:        "🌟",
		Criteria:    "streak >= 14",
		Earned:      func(s Stats) bool { return s.Streak >= 14 },
	},
	{
		Key:         ExpressionStar,
		Name:        "表达之星",
		Description: "表达力达到4分",
		Icon:        "🎤",
		Criteria:    "expression >= 4",
		Earned:      func(s Stats) bool { return s.Scores.Expression >= 4 },
	},
	{
		Key:         LogicStar,
		Name:        "逻辑之星",
		Description: "逻辑力达到4分",
		Icon:        "🧩",
		Criteria:    "logic >= 4",
		Earned:      func(s Stats) bool { return s.Scores.Logic >= 4 },
	},
	{
		Key:         ExplorationStar,
		Name:        "探索先锋",
		Description: "探索力达到4.5分",
		Icon:        "🔭",
		Criteria:    "exploration >= 4.5",
		Earned:      func(s Stats) bool { return s.Scores.Exploration >= 4.5 },
	},
	{
		Key:         CreativityStar,
		Name:        "创意达人",
		Description: "创造力达到4分",
		Icon:        "🎨",
		Criteria:    "creativity >= 4",
		Earned:      func(s Stats) bool { return s.Scores.Creativity >= 4 },
	},
	{
		Key:         AllRounder,
		Name:        "全能小将",
		Description: "五项能力全部达到4分",
		Icon:        "🏆",
		Criteria:    "all abilities >= 4",
		Earned:      func(s Stats) bool { return s.Scores.Min() >= 4 },
	},
	{
		Key:         CoCreator,
		Name:        "共创伙伴",
		Description: "参与5次共创",
		Icon:        "🤝",
		Criteria:    "contributions >= 5",
		Earned:      func(s Stats) bool { return s.Contributions >= 5 },
	},
}

// Catalog returns all badge definitions in display order.
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the definition for key.
func Lookup(key Key) (Definition, bool) {
	for _, d := range catalog {
		if d.Key == key {
			return d, true
		}
	}
	return Definition{}, false
}

// Eligible returns every definition whose rule st satisfies.
func Eligible(st Stats) []Definition {
	var out []Definition
	for _, d := range catalog {
		if d.Earned(st) {
			out = append(out, d)
		}
	}
	return out
}
