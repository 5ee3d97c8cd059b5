// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Assessment is the predicate function for assessment builders.
type Assessment func(*sql.Selector)

// Badge is the predicate function for badge builders.
type Badge func(*sql.Selector)

// BadgeAward is the predicate function for badgeaward builders.
type BadgeAward func(*sql.Selector)

// Child is the predicate function for child builders.
type Child func(*sql.Selector)

// CoCreationContribution is the predicate function for cocreationcontribution builders.
type CoCreationContribution func(*sql.Selector)

// CoCreationTheme is the predicate function for cocreationtheme builders.
type CoCreationTheme func(*sql.Selector)

// CoachSession is the predicate function for coachsession builders.
type CoachSession func(*sql.Selector)

// GrowthRecord is the predicate function for growthrecord builders.
type GrowthRecord func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// TaskRecord is the predicate function for taskrecord builders.
type TaskRecord func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// WeeklyReport is the predicate function for weeklyreport builders.
type WeeklyReport func(*sql.Selector)

// Work is the predicate function for work builders.
type Work func(*sql.Selector)
