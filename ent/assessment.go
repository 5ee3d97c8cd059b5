// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/budai/ent/assessment"
	"github.com/abhisek/budai/ent/child"
	"github.com/google/uuid"
)

// Assessment is the model entity for the Assessment schema.
type Assessment struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// ExpressionScore holds the value of the "expression_score" field.
	ExpressionScore float64 `json:"expression_score,omitempty"`
	// LogicScore holds the value of the "logic_score" field.
	LogicScore float64 `json:"logic_score,omitempty"`
	// ExplorationScore holds the value of the "exploration_score" field.
	ExplorationScore float64 `json:"exploration_score,omitempty"`
	// CreativityScore holds the value of the "creativity_score" field.
	CreativityScore float64 `json:"creativity_score,omitempty"`
	// HabitScore holds the value of the "habit_score" field.
	HabitScore float64 `json:"habit_score,omitempty"`
	// ChildID holds the value of the "child_id" field.
	ChildID uuid.UUID `json:"child_id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind assessment.Kind `json:"kind,omitempty"`
	// Responses holds the value of the "responses" field.
	Responses []string `json:"responses,omitempty"`
	// Analysis holds the value of the "analysis" field.
	Analysis string `json:"analysis,omitempty"`
	// Suggestions holds the value of the "suggestions" field.
	Suggestions []string `json:"suggestions,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AssessmentQuery when eager-loading is set.
	Edges        AssessmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AssessmentEdges holds the relations/edges for other nodes in the graph.
type AssessmentEdges struct {
	// Child holds the value of the child edge.
	Child *Child `json:"child,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ChildOrErr returns the Child value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AssessmentEdges) ChildOrErr() (*Child, error) {
	if e.Child != nil {
		return e.Child, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: child.Label}
	}
	return nil, &NotLoadedError{edge: "child"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Assessment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case assessment.FieldResponses, assessment.FieldSuggestions:
			values[i] = new([]byte)
		case assessment.FieldExpressionScore, assessment.FieldLogicScore, assessment.FieldExplorationScore, assessment.FieldCreativityScore, assessment.FieldHabitScore:
			values[i] = new(sql.NullFloat64)
		case assessment.FieldKind, assessment.FieldAnalysis:
			values[i] = new(sql.NullString)
		case assessment.FieldCreatedAt, assessment.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case assessment.FieldID, assessment.FieldChildID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Assessment fields.
func (_m *Assessment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case assessment.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case assessment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case assessment.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case assessment.FieldExpressionScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field expression_score", values[i])
			} else if value.Valid {
				_m.ExpressionScore = value.Float64
			}
		case assessment.FieldLogicScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field logic_score", values[i])
			} else if value.Valid {
				_m.LogicScore = value.Float64
			}
		case assessment.FieldExplorationScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field exploration_score", values[i])
			} else if value.Valid {
				_m.ExplorationScore = value.Float64
			}
		case assessment.FieldCreativityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field creativity_score", values[i])
			} else if value.Valid {
				_m.CreativityScore = value.Float64
			}
		case assessment.FieldHabitScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field habit_score", values[i])
			} else if value.Valid {
				_m.HabitScore = value.Float64
			}
		case assessment.FieldChildID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field child_id", values[i])
			} else if value != nil {
				_m.ChildID = *value
			}
		case assessment.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = assessment.Kind(value.String)
			}
		case assessment.FieldResponses:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field responses", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Responses); err != nil {
					return fmt.Errorf("unmarshal field responses: %w", err)
				}
			}
		case assessment.FieldAnalysis:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field analysis", values[i])
			} else if value.Valid {
				_m.Analysis = value.String
			}
		case assessment.FieldSuggestions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field suggestions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Suggestions); err != nil {
					return fmt.Errorf("unmarshal field suggestions: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Assessment.
// This includes values selected through modifiers, order, etc.
func (_m *Assessment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryChild queries the "child" edge of the Assessment entity.
func (_m *Assessment) QueryChild() *ChildQuery {
	return NewAssessmentClient(_m.config).QueryChild(_m)
}

// Update returns a builder for updating this Assessment.
// Note that you need to call Assessment.Unwrap() before calling this method if this Assessment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Assessment) Update() *AssessmentUpdateOne {
	return NewAssessmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Assessment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Assessment) Unwrap() *Assessment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Assessment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Assessment) String() string {
	var builder strings.Builder
	builder.WriteString("Assessment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("expression_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExpressionScore))
	builder.WriteString(", ")
	builder.WriteString("logic_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.LogicScore))
	builder.WriteString(", ")
	builder.WriteString("exploration_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExplorationScore))
	builder.WriteString(", ")
	builder.WriteString("creativity_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreativityScore))
	builder.WriteString(", ")
	builder.WriteString("habit_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.HabitScore))
	builder.WriteString(", ")
	builder.WriteString("child_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChildID))
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	builder.WriteString("responses=")
	builder.WriteString(fmt.Sprintf("%v", _m.Responses))
	builder.WriteString(", ")
	builder.WriteString("analysis=")
	builder.WriteString(_m.Analysis)
	builder.WriteString(", ")
	builder.WriteString("suggestions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Suggestions))
	builder.WriteByte(')')
	return builder.String()
}

// Assessments is a parsable slice of Assessment.
type Assessments []*Assessment
