// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/budai/ent/child"
	"github.com/abhisek/budai/ent/cocreationcontribution"
	"github.com/abhisek/budai/ent/cocreationtheme"
	"github.com/google/uuid"
)

// CoCreationContribution is the model entity for the CoCreationContribution schema.
type CoCreationContribution struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// ChildID holds the value of the "child_id" field.
	ChildID uuid.UUID `json:"child_id,omitempty"`
	// ThemeID holds the value of the "theme_id" field.
	ThemeID uuid.UUID `json:"theme_id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind cocreationcontribution.Kind `json:"kind,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CoCreationContributionQuery when eager-loading is set.
	Edges        CoCreationContributionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CoCreationContributionEdges holds the relations/edges for other nodes in the graph.
type CoCreationContributionEdges struct {
	// Child holds the value of the child edge.
	Child *Child `json:"child,omitempty"`
	// Theme holds the value of the theme edge.
	Theme *CoCreationTheme `json:"theme,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ChildOrErr returns the Child value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CoCreationContributionEdges) ChildOrErr() (*Child, error) {
	if e.Child != nil {
		return e.Child, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: child.Label}
	}
	return nil, &NotLoadedError{edge: "child"}
}

// ThemeOrErr returns the Theme value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CoCreationContributionEdges) ThemeOrErr() (*CoCreationTheme, error) {
	if e.Theme != nil {
		return e.Theme, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: cocreationtheme.Label}
	}
	return nil, &NotLoadedError{edge: "theme"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CoCreationContribution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cocreationcontribution.FieldKind, cocreationcontribution.FieldContent:
			values[i] = new(sql.NullString)
		case cocreationcontribution.FieldCreatedAt, cocreationcontribution.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case cocreationcontribution.FieldID, cocreationcontribution.FieldChildID, cocreationcontribution.FieldThemeID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CoCreationContribution fields.
func (_m *CoCreationContribution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cocreationcontribution.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case cocreationcontribution.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case cocreationcontribution.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case cocreationcontribution.FieldChildID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field child_id", values[i])
			} else if value != nil {
				_m.ChildID = *value
			}
		case cocreationcontribution.FieldThemeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field theme_id", values[i])
			} else if value != nil {
				_m.ThemeID = *value
			}
		case cocreationcontribution.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = cocreationcontribution.Kind(value.String)
			}
		case cocreationcontribution.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CoCreationContribution.
// This includes values selected through modifiers, order, etc.
func (_m *CoCreationContribution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryChild queries the "child" edge of the CoCreationContribution entity.
func (_m *CoCreationContribution) QueryChild() *ChildQuery {
	return NewCoCreationContributionClient(_m.config).QueryChild(_m)
}

// QueryTheme queries the "theme" edge of the CoCreationContribution entity.
func (_m *CoCreationContribution) QueryTheme() *CoCreationThemeQuery {
	return NewCoCreationContributionClient(_m.config).QueryTheme(_m)
}

// Update returns a builder for updating this CoCreationContribution.
// Note that you need to call CoCreationContribution.Unwrap() before calling this method if this CoCreationContribution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CoCreationContribution) Update() *CoCreationContributionUpdateOne {
	return NewCoCreationContributionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CoCreationContribution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CoCreationContribution) Unwrap() *CoCreationContribution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CoCreationContribution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CoCreationContribution) String() string {
	var builder strings.Builder
	builder.WriteString("CoCreationContribution(")
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
	builder.WriteString("theme_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ThemeID))
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteByte(')')
	return builder.String()
}

// CoCreationContributions is a parsable slice of CoCreationContribution.
type CoCreationContributions []*CoCreationContribution
