// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/budai/ent/cocreationtheme"
	"github.com/google/uuid"
)

// CoCreationTheme is the model entity for the CoCreationTheme schema.
type CoCreationTheme struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Prompt holds the value of the "prompt" field.
	Prompt string `json:"prompt,omitempty"`
	// StartDate holds the value of the "start_date" field.
	StartDate time.Time `json:"start_date,omitempty"`
	// EndDate holds the value of the "end_date" field.
	EndDate time.Time `json:"end_date,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CoCreationThemeQuery when eager-loading is set.
	Edges        CoCreationThemeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CoCreationThemeEdges holds the relations/edges for other nodes in the graph.
type CoCreationThemeEdges struct {
	// Contributions holds the value of the contributions edge.
	Contributions []*CoCreationContribution `json:"contributions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ContributionsOrErr returns the Contributions value or an error if the edge
// was not loaded in eager-loading.
func (e CoCreationThemeEdges) ContributionsOrErr() ([]*CoCreationContribution, error) {
	if e.loadedTypes[0] {
		return e.Contributions, nil
	}
	return nil, &NotLoadedError{edge: "contributions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CoCreationTheme) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cocreationtheme.FieldTitle, cocreationtheme.FieldDescription, cocreationtheme.FieldPrompt:
			values[i] = new(sql.NullString)
		case cocreationtheme.FieldCreatedAt, cocreationtheme.FieldUpdatedAt, cocreationtheme.FieldStartDate, cocreationtheme.FieldEndDate:
			values[i] = new(sql.NullTime)
		case cocreationtheme.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CoCreationTheme fields.
func (_m *CoCreationTheme) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cocreationtheme.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case cocreationtheme.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case cocreationtheme.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case cocreationtheme.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case cocreationtheme.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case cocreationtheme.FieldPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[i])
			} else if value.Valid {
				_m.Prompt = value.String
			}
		case cocreationtheme.FieldStartDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_date", values[i])
			} else if value.Valid {
				_m.StartDate = value.Time
			}
		case cocreationtheme.FieldEndDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field end_date", values[i])
			} else if value.Valid {
				_m.EndDate = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CoCreationTheme.
// This includes values selected through modifiers, order, etc.
func (_m *CoCreationTheme) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryContributions queries the "contributions" edge of the CoCreationTheme entity.
func (_m *CoCreationTheme) QueryContributions() *CoCreationContributionQuery {
	return NewCoCreationThemeClient(_m.config).QueryContributions(_m)
}

// Update returns a builder for updating this CoCreationTheme.
// Note that you need to call CoCreationTheme.Unwrap() before calling this method if this CoCreationTheme
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CoCreationTheme) Update() *CoCreationThemeUpdateOne {
	return NewCoCreationThemeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CoCreationTheme entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CoCreationTheme) Unwrap() *CoCreationTheme {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CoCreationTheme is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CoCreationTheme) String() string {
	var builder strings.Builder
	builder.WriteString("CoCreationTheme(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("prompt=")
	builder.WriteString(_m.Prompt)
	builder.WriteString(", ")
	builder.WriteString("start_date=")
	builder.WriteString(_m.StartDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("end_date=")
	builder.WriteString(_m.EndDate.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CoCreationThemes is a parsable slice of CoCreationTheme.
type CoCreationThemes []*CoCreationTheme
