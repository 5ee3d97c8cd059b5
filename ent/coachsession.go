// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/budai/ent/child"
	"github.com/abhisek/budai/ent/coachsession"
	"github.com/abhisek/budai/internal/chat"
	"github.com/google/uuid"
)

// CoachSession is the model entity for the CoachSession schema.
type CoachSession struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// ChildID holds the value of the "child_id" field.
	ChildID uuid.UUID `json:"child_id,omitempty"`
	// TaskRecordID holds the value of the "task_record_id" field.
	TaskRecordID uuid.UUID `json:"task_record_id,omitempty"`
	// Messages holds the value of the "messages" field.
	Messages []chat.Turn `json:"messages,omitempty"`
	// TurnCount holds the value of the "turn_count" field.
	TurnCount int `json:"turn_count,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CoachSessionQuery when eager-loading is set.
	Edges        CoachSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CoachSessionEdges holds the relations/edges for other nodes in the graph.
type CoachSessionEdges struct {
	// Child holds the value of the child edge.
	Child *Child `json:"child,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ChildOrErr returns the Child value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CoachSessionEdges) ChildOrErr() (*Child, error) {
	if e.Child != nil {
		return e.Child, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: child.Label}
	}
	return nil, &NotLoadedError{edge: "child"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CoachSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case coachsession.FieldMessages:
			values[i] = new([]byte)
		case coachsession.FieldTurnCount:
			values[i] = new(sql.NullInt64)
		case coachsession.FieldCreatedAt, coachsession.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case coachsession.FieldID, coachsession.FieldChildID, coachsession.FieldTaskRecordID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CoachSession fields.
func (_m *CoachSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case coachsession.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case coachsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case coachsession.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case coachsession.FieldChildID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field child_id", values[i])
			} else if value != nil {
				_m.ChildID = *value
			}
		case coachsession.FieldTaskRecordID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field task_record_id", values[i])
			} else if value != nil {
				_m.TaskRecordID = *value
			}
		case coachsession.FieldMessages:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field messages", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Messages); err != nil {
					return fmt.Errorf("unmarshal field messages: %w", err)
				}
			}
		case coachsession.FieldTurnCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field turn_count", values[i])
			} else if value.Valid {
				_m.TurnCount = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CoachSession.
// This includes values selected through modifiers, order, etc.
func (_m *CoachSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryChild queries the "child" edge of the CoachSession entity.
func (_m *CoachSession) QueryChild() *ChildQuery {
	return NewCoachSessionClient(_m.config).QueryChild(_m)
}

// Update returns a builder for updating this CoachSession.
// Note that you need to call CoachSession.Unwrap() before calling this method if this CoachSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CoachSession) Update() *CoachSessionUpdateOne {
	return NewCoachSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CoachSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CoachSession) Unwrap() *CoachSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CoachSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CoachSession) String() string {
	var builder strings.Builder
	builder.WriteString("CoachSession(")
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
	builder.WriteString("task_record_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TaskRecordID))
	builder.WriteString(", ")
	builder.WriteString("messages=")
	builder.WriteString(fmt.Sprintf("%v", _m.Messages))
	builder.WriteString(", ")
	builder.WriteString("turn_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.TurnCount))
	builder.WriteByte(')')
	return builder.String()
}

// CoachSessions is a parsable slice of CoachSession.
type CoachSessions []*CoachSession
