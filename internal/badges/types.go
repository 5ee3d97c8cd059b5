package badges

import "github.com/abhisek/budai/internal/ability"

// Key identifies a badge in the catalog.
type Key string

const (
	Streak7         Key = "streak-7"
	Streak14        Key = "streak-14"
	ExpressionStar  Key = "expression-star"
	LogicStar       Key = "logic-star"
	ExplorationStar Key = "exploration-star"
	CreativityStar  Key = "creativity-star"
	AllRounder      Key = "all-rounder"
	CoCreator       Key = "co-creator"
)

// Stats is the slice of a child's state that badge rules look at.
type Stats struct {
	Streak        int
	Scores        ability.Scores
	Contributions int
}

// Definition describes one badge and the rule that earns it.
type Definition struct {
	Key         Key
	Name        string
	Description string
	Icon        string
	Criteria    string
	Earned      func(Stats) bool
}
