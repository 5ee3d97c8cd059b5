// Code generated by ent, DO NOT EDIT.

package growthrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the growthrecord type in the database.
	Label = "growth_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldChildID holds the string denoting the child_id field in the database.
	FieldChildID = "child_id"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldTasksCompleted holds the string denoting the tasks_completed field in the database.
	FieldTasksCompleted = "tasks_completed"
	// FieldXpEarned holds the string denoting the xp_earned field in the database.
	FieldXpEarned = "xp_earned"
	// FieldAverageExpressionScore holds the string denoting the average_expression_score field in the database.
	FieldAverageExpressionScore = "average_expression_score"
	// FieldAverageLogicScore holds the string denoting the average_logic_score field in the database.
	FieldAverageLogicScore = "average_logic_score"
	// FieldAverageExplorationScore holds the string denoting the average_exploration_score field in the database.
	FieldAverageExplorationScore = "average_exploration_score"
	// FieldAverageCreativityScore holds the string denoting the average_creativity_score field in the database.
	FieldAverageCreativityScore = "average_creativity_score"
	// FieldAverageHabitScore holds the string denoting the average_habit_score field in the database.
	FieldAverageHabitScore = "average_habit_score"
	// EdgeChild holds the string denoting the child edge name in mutations.
	EdgeChild = "child"
	// Table holds the table name of the growthrecord in the database.
	Table = "growth_records"
	// ChildTable is the table that holds the child relation/edge.
	ChildTable = "growth_records"
	// ChildInverseTable is the table name for the Child entity.
	// It exists in this package in order to avoid circular dependency with the "child" package.
	ChildInverseTable = "childs"
	// ChildColumn is the table column denoting the child relation/edge.
	ChildColumn = "child_id"
)

// Columns holds all SQL columns for growthrecord fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldChildID,
	FieldDate,
	FieldTasksCompleted,
	FieldXpEarned,
	FieldAverageExpressionScore,
	FieldAverageLogicScore,
	FieldAverageExplorationScore,
	FieldAverageCreativityScore,
	FieldAverageHabitScore,
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
	// DefaultXpEarned holds the default value on creation for the "xp_earned" field.
	DefaultXpEarned int
	// DefaultAverageExpressionScore holds the default value on creation for the "average_expression_score" field.
	DefaultAverageExpressionScore float64
	// DefaultAverageLogicScore holds the default value on creation for the "average_logic_score" field.
	DefaultAverageLogicScore float64
	// DefaultAverageExplorationScore holds the default value on creation for the "average_exploration_score" field.
	DefaultAverageExplorationScore float64
	// DefaultAverageCreativityScore holds the default value on creation for the "average_creativity_score" field.
	DefaultAverageCreativityScore float64
	// DefaultAverageHabitScore holds the default value on creation for the "average_habit_score" field.
	DefaultAverageHabitScore float64
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the GrowthRecord queries.
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

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// ByTasksCompleted orders the results by the tasks_completed field.
func ByTasksCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTasksCompleted, opts...).ToFunc()
}

// ByXpEarned orders the results by the xp_earned field.
func ByXpEarned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldXpEarned, opts...).ToFunc()
}

// ByAverageExpressionScore orders the results by the average_expression_score field.
func ByAverageExpressionScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAverageExpressionScore, opts...).ToFunc()
}

// ByAverageLogicScore orders the results by the average_logic_score field.
func ByAverageLogicScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAverageLogicScore, opts...).ToFunc()
}

// ByAverageExplorationScore orders the results by the average_exploration_score field.
func ByAverageExplorationScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAverageExplorationScore, opts...).ToFunc()
}

// ByAverageCreativityScore orders the results by the average_creativity_score field.
func ByAverageCreativityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAverageCreativityScore, opts...).ToFunc()
}

// ByAverageHabitScore orders the results by the average_habit_score field.
func ByAverageHabitScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAverageHabitScore, opts...).ToFunc()
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
