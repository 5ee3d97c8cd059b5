// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/budai/ent/child"
	"github.com/abhisek/budai/ent/growthrecord"
	"github.com/google/uuid"
)

// GrowthRecord is the model entity for the GrowthRecord schema.
type GrowthRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// ChildID holds the value of the "child_id" field.
	ChildID uuid.UUID `json:"child_id,omitempty"`
	// Local midnight of the day
	Date time.Time `json:"date,omitempty"`
	// TasksCompleted holds the value of the "tasks_completed" field.
	TasksCompleted int `json:"tasks_completed,omitempty"`
	// XpEarned holds the value of the "xp_earned" field.
	XpEarned int `json:"xp_earned,omitempty"`
	// AverageExpressionScore holds the value of the "average_expression_score" field.
	AverageExpressionScore float64 `json:"average_expression_score,omitempty"`
	// AverageLogicScore holds the value of the "average_logic_score" field.
	AverageLogicScore float64 `json:"average_logic_score,omitempty"`
	// AverageExplorationScore holds the value of the "average_exploration_score" field.
	AverageExplorationScore float64 `json:"average_exploration_score,omitempty"`
	// AverageCreativityScore holds the value of the "average_creativity_score" field.
	AverageCreativityScore float64 `json:"average_creativity_score,omitempty"`
	// AverageHabitScore holds the value of the "average_habit_score" field.
	AverageHabitScore float64 `json:"average_habit_score,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GrowthRecordQuery when eager-loading is set.
	Edges        GrowthRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// GrowthRecordEdges holds the relations/edges for other nodes in the graph.
type GrowthRecordEdges struct {
	// Child holds the value of the child edge.
	Child *Child `json:"child,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ChildOrErr returns the Child value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GrowthRecordEdges) ChildOrErr() (*Child, error) {
	if e.Child != nil {
		return e.Child, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: child.Label}
	}
	return nil, &NotLoadedError{edge: "child"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GrowthRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case growthrecord.FieldAverageExpressionScore, growthrecord.FieldAverageLogicScore, growthrecord.FieldAverageExplorationScore, growthrecord.FieldAverageCreativityScore, growthrecord.FieldAverageHabitScore:
			values[i] = new(sql.NullFloat64)
		case growthrecord.FieldTasksCompleted, growthrecord.FieldXpEarned:
			values[i] = new(sql.NullInt64)
		case growthrecord.FieldCreatedAt, growthrecord.FieldUpdatedAt, growthrecord.FieldDate:
			values[i] = new(sql.NullTime)
		case growthrecord.FieldID, growthrecord.FieldChildID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GrowthRecord fields.
func (_m *GrowthRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case growthrecord.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case growthrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case growthrecord.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case growthrecord.FieldChildID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field child_id", values[i])
			} else if value != nil {
				_m.ChildID = *value
			}
		case growthrecord.FieldDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.Time
			}
		case growthrecord.FieldTasksCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tasks_completed", values[i])
			} else if value.Valid {
				_m.TasksCompleted = int(value.Int64)
			}
		case growthrecord.FieldXpEarned:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field xp_earned", values[i])
			} else if value.Valid {
				_m.XpEarned = int(value.Int64)
			}
		case growthrecord.FieldAverageExpressionScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field average_expression_score", values[i])
			} else if value.Valid {
				_m.AverageExpressionScore = value.Float64
			}
		case growthrecord.FieldAverageLogicScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field average_logic_score", values[i])
			} else if value.Valid {
				_m.AverageLogicScore = value.Float64
			}
		case growthrecord.FieldAverageExplorationScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field average_exploration_score", values[i])
			} else if value.Valid {
				_m.AverageExplorationScore = value.Float64
			}
		case growthrecord.FieldAverageCreativityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field average_creativity_score", values[i])
			} else if value.Valid {
				_m.AverageCreativityScore = value.Float64
			}
		case growthrecord.FieldAverageHabitScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field average_habit_score", values[i])
			} else if value.Valid {
				_m.AverageHabitScore = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GrowthRecord.
// This includes values selected through modifiers, order, etc.
func (_m *GrowthRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryChild queries the "child" edge of the GrowthRecord entity.
func (_m *GrowthRecord) QueryChild() *ChildQuery {
	return NewGrowthRecordClient(_m.config).QueryChild(_m)
}

// Update returns a builder for updating this GrowthRecord.
// Note that you need to call GrowthRecord.Unwrap() before calling this method if this GrowthRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GrowthRecord) Update() *GrowthRecordUpdateOne {
	return NewGrowthRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GrowthRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GrowthRecord) Unwrap() *GrowthRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GrowthRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GrowthRecord) String() string {
	var builder strings.Builder
	builder.WriteString("GrowthRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("child_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChildID))
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(_m.Date.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("tasks_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.TasksCompleted))
	builder.WriteString(", ")
	builder.WriteString("xp_earned=")
	builder.WriteString(fmt.Sprintf("%v", _m.XpEarned))
	builder.WriteString(", ")
	builder.WriteString("average_expression_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.AverageExpressionScore))
	builder.WriteString(", ")
	builder.WriteString("average_logic_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.AverageLogicScore))
	builder.WriteString(", ")
	builder.WriteString("average_exploration_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.AverageExplorationScore))
	builder.WriteString(", ")
	builder.WriteString("average_creativity_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.AverageCreativityScore))
	builder.WriteString(", ")
	builder.WriteString("average_habit_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.AverageHabitScore))
	builder.WriteByte(')')
	return builder.String()
}

// GrowthRecords is a parsable slice of GrowthRecord.
type GrowthRecords []*GrowthRecord
