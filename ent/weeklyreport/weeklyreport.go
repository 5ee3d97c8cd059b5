// Code generated by ent, DO NOT EDIT.

package weeklyreport

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the weeklyreport type in the database.
	Label = "weekly_report"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldChildID holds the string denoting the child_id field in the database.
	FieldChildID = "child_id"
	// FieldWeekStart holds the string denoting the week_start field in the database.
	FieldWeekStart = "week_start"
	// FieldWeekEnd holds the string denoting the week_end field in the database.
	FieldWeekEnd = "week_end"
	// FieldTasksCompleted holds the string denoting the tasks_completed field in the database.
	FieldTasksCompleted = "tasks_completed"
	// FieldAverageScore holds the string denoting the average_score field in the database.
	FieldAverageScore = "average_score"
	// FieldMostImproved holds the string denoting the most_improved field in the database.
	FieldMostImproved = "most_improved"
	// FieldNeedsWork holds the string denoting the needs_work field in the database.
	FieldNeedsWork = "needs_work"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldInsights holds the string denoting the insights field in the database.
	FieldInsights = "insights"
	// FieldSuggestions holds the string denoting the suggestions field in the database.
	FieldSuggestions = "suggestions"
	// FieldRecommendedGames holds the string denoting the recommended_games field in the database.
	FieldRecommendedGames = "recommended_games"
	// EdgeChild holds the string denoting the child edge name in mutations.
	EdgeChild = "child"
	// Table holds the table name of the weeklyreport in the database.
	Table = "weekly_reports"
	// ChildTable is the table that holds the child relation/edge.
	ChildTable = "weekly_reports"
	// ChildInverseTable is the table name for the Child entity.
	// It exists in this package in order to avoid circular dependency with the "child" package.
	ChildInverseTable = "childs"
	// ChildColumn is the table column denoting the child relation/edge.
	ChildColumn = "child_id"
)

// Columns holds all SQL columns for weeklyreport fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldChildID,
	FieldWeekStart,
	FieldWeekEnd,
	FieldTasksCompleted,
	FieldAverageScore,
	FieldMostImproved,
	FieldNeedsWork,
	FieldSummary,
	FieldInsights,
	FieldSuggestions,
	FieldRecommendedGames,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultTasksCompleted holds the default value on creation for the "tasks_completed" field.
	DefaultTasksCompleted int
	// DefaultAverageScore holds the default value on creation for the "average_score" field.
	DefaultAverageScore float64
	// DefaultMostImproved holds the default value on creation for the "most_improved" field.
	DefaultMostImproved string
	// DefaultNeedsWork holds the default value on creation for the "needs_work" field.
	DefaultNeedsWork string
	// DefaultSummary holds the default value on creation for the "summary" field.
	DefaultSummary string
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the WeeklyReport queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByChildID orders the results by the child_id field.
func ByChildID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChildID, opts...).ToFunc()
}

// ByWeekStart orders the results by the week_start field.
func ByWeekStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeekStart, opts...).ToFunc()
}

// ByWeekEnd orders the results by the week_end field.
func ByWeekEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeekEnd, opts...).ToFunc()
}

// ByTasksCompleted orders the results by the tasks_completed field.
func ByTasksCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTasksCompleted, opts...).ToFunc()
}

// ByAverageScore orders the results by the average_score field.
func ByAverageScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAverageScore, opts...).ToFunc()
}

// ByMostImproved orders the results by the most_improved field.
func ByMostImproved(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMostImproved, opts...).ToFunc()
}

// ByNeedsWork orders the results by the needs_work field.
func ByNeedsWork(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsWork, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByChildField orders the results by child field.
func ByChildField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChildStep(), sql.OrderByField(field, opts...))
	}
}
func newChildStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChildInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ChildTable, ChildColumn),
	)
}
