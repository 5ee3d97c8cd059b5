// Package ability implements the 5C model: the five tracked child
// abilities and the arithmetic used to move their scores.
package ability

import (
	"fmt"
	"math"
)

// Ability identifies one of the five tracked dimensions.
type Ability string

const (
	Expression  Ability = "expression"
	Logic       Ability = "logic"
	Exploration Ability = "exploration"
	Creativity  Ability = "creativity"
	Habit       Ability = "habit"
)

// Score bounds for every ability.
const (
	MinScore     = 1.0
	MaxScore     = 5.0
	NeutralScore = 3.0
)

// All returns the abilities in canonical order. Ties in Weakest and
// Strongest resolve to the earliest ability in this order.
func All() []Ability {
	return []Ability{Expression, Logic, Exploration, Creativity, Habit}
}

// Parse converts a string to an Ability.
func Parse(s string) (Ability, error) {
	for _, a := range All() {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown ability %q", s)
}

// Label returns the product label shown to families.
func (a Ability) Label() string {
	switch a {
	case Expression:
		return "表达力"
	case Logic:
		return "逻辑力"
	case Exploration:
		return "探究力"
	case Creativity:
		return "创造力"
	case Habit:
		return "习惯力"
	default:
		return string(a)
	}
}

// Description is the one-line rubric used in prompts.
func (a Ability) Description() string {
	switch a {
	case Expression:
		return "expresses ideas clearly, completely and in order"
	case Logic:
		return "thinks in steps and understands cause and effect"
	case Exploration:
		return "stays curious, asks questions and explores actively"
	case Creativity:
		return "has original ideas and a vivid imagination"
	case Habit:
		return "sticks with tasks and builds good routines"
	default:
		return ""
	}
}

// DifficultyFor maps an ability score to a task difficulty level 1-5.
func DifficultyFor(score float64) int {
	d := int(math.Round(score))
	if d < 1 {
		return 1
	}
	if d > 5 {
		return 5
	}
	return d
}
