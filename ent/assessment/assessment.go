// Code generated by ent, DO NOT EDIT.

package assessment

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the assessment type in the database.
	Label = "assessment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldExpressionScore holds the string denoting the expression_score field in the database.
	FieldExpressionScore = "expression_score"
	// FieldLogicScore holds the string denoting the logic_score field in the database.
	FieldLogicScore = "logic_score"
	// FieldExplorationScore holds the string denoting the exploration_score field in the database.
	FieldExplorationScore = "exploration_score"
	// FieldCreativityScore holds the string denoting the creativity_score field in the database.
	FieldCreativityScore = "creativity_score"
	// FieldHabitScore holds the string denoting the habit_score field in the database.
	FieldHabitScore = "habit_score"
	// FieldChildID holds the string denoting the child_id field in the database.
	FieldChildID = "child_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldResponses holds the string denoting the responses field in the database.
	FieldResponses = "responses"
	// FieldAnalysis holds the string denoting the analysis field in the database.
	FieldAnalysis = "analysis"
	// FieldSuggestions holds the string denoting the suggestions field in the database.
	FieldSuggestions = "suggestions"
	// EdgeChild holds the string denoting the child edge name in mutations.
	EdgeChild = "child"
	// Table holds the table name of the assessment in the database.
	Table = "assessments"
	// ChildTable is the table that holds the child relation/edge.
	ChildTable = "assessments"
	// ChildInverseTable is the table name for the Child entity.
	// It exists in this package in order to avoid circular dependency with the "child" package.
	ChildInverseTable = "childs"
	// ChildColumn is the table column denoting the child relation/edge.
	ChildColumn = "child_id"
)

// Columns holds all SQL columns for assessment fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldExpressionScore,
	FieldLogicScore,
	FieldExplorationScore,
	FieldCreativityScore,
	FieldHabitScore,
	FieldChildID,
	FieldKind,
	FieldResponses,
	FieldAnalysis,
	FieldSuggestions,
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
	// DefaultExpressionScore holds the default value on creation for the "expression_score" field.
	DefaultExpressionScore float64
	// DefaultLogicScore holds the default value on creation for the "logic_score" field.
	DefaultLogicScore float64
	// DefaultExplorationScore holds the default value on creation for the "exploration_score" field.
	DefaultExplorationScore float64
	// DefaultCreativityScore holds the default value on creation for the "creativity_score" field.
	DefaultCreativityScore float64
	// DefaultHabitScore holds the default value on creation for the "habit_score" field.
	DefaultHabitScore float64
	// DefaultAnalysis holds the default value on creation for the "analysis" field.
	DefaultAnalysis string
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindInitial  Kind = "initial"
	KindPeriodic Kind = "periodic"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindInitial, KindPeriodic:
		return nil
	default:
		return fmt.Errorf("assessment: invalid enum value for kind field: %q", k)
	}
}

// OrderOption defines the ordering options for the Assessment queries.
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

// ByExpressionScore orders the results by the expression_score field.
func ByExpressionScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpressionScore, opts...).ToFunc()
}

// ByLogicScore orders the results by the logic_score field.
func ByLogicScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLogicScore, opts...).ToFunc()
}

// ByExplorationScore orders the results by the exploration_score field.
func ByExplorationScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExplorationScore, opts...).ToFunc()
}

// ByCreativityScore orders the results by the creativity_score field.
func ByCreativityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreativityScore, opts...).ToFunc()
}

// ByHabitScore orders the results by the habit_score field.
func ByHabitScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHabitScore, opts...).ToFunc()
}

// ByChildID orders the results by the child_id field.
func ByChildID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChildID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByAnalysis orders the results by the analysis field.
func ByAnalysis(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalysis, opts...).ToFunc()
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
