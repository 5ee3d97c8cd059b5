// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/budai/ent/badge"
	"github.com/abhisek/budai/ent/badgeaward"
	"github.com/abhisek/budai/ent/child"
	"github.com/google/uuid"
)

// BadgeAward is the model entity for the BadgeAward schema.
type BadgeAward struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ChildID holds the value of the "child_id" field.
	ChildID uuid.UUID `json:"child_id,omitempty"`
	// BadgeID holds the value of the "badge_id" field.
	BadgeID uuid.UUID `json:"badge_id,omitempty"`
	// AwardedAt holds the value of the "awarded_at" field.
	AwardedAt time.Time `json:"awarded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BadgeAwardQuery when eager-loading is set.
	Edges        BadgeAwardEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BadgeAwardEdges holds the relations/edges for other nodes in the graph.
type BadgeAwardEdges struct {
	// Child holds the value of the child edge.
	Child *Child `json:"child,omitempty"`
	// Badge holds the value of the badge edge.
	Badge *Badge `json:"badge,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ChildOrErr returns the Child value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BadgeAwardEdges) ChildOrErr() (*Child, error) {
	if e.Child != nil {
		return e.Child, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: child.Label}
	}
	return nil, &NotLoadedError{edge: "child"}
}

// BadgeOrErr returns the Badge value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BadgeAwardEdges) BadgeOrErr() (*Badge, error) {
	if e.Badge != nil {
		return e.Badge, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: badge.Label}
	}
	return nil, &NotLoadedError{edge: "badge"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BadgeAward) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case badgeaward.FieldAwardedAt:
			values[i] = new(sql.NullTime)
		case badgeaward.FieldID, badgeaward.FieldChildID, badgeaward.FieldBadgeID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BadgeAward fields.
func (_m *BadgeAward) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case badgeaward.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case badgeaward.FieldChildID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field child_id", values[i])
			} else if value != nil {
				_m.ChildID = *value
			}
		case badgeaward.FieldBadgeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field badge_id", values[i])
			} else if value != nil {
				_m.BadgeID = *value
			}
		case badgeaward.FieldAwardedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field awarded_at", values[i])
			} else if value.Valid {
				_m.AwardedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BadgeAward.
// This includes values selected through modifiers, order, etc.
func (_m *BadgeAward) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryChild queries the "child" edge of the BadgeAward entity.
func (_m *BadgeAward) QueryChild() *ChildQuery {
	return NewBadgeAwardClient(_m.config).QueryChild(_m)
}

// QueryBadge queries the "badge" edge of the BadgeAward entity.
func (_m *BadgeAward) QueryBadge() *BadgeQuery {
	return NewBadgeAwardClient(_m.config).QueryBadge(_m)
}

// Update returns a builder for updating this BadgeAward.
// Note that you need to call BadgeAward.Unwrap() before calling this method if this BadgeAward
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BadgeAward) Update() *BadgeAwardUpdateOne {
	return NewBadgeAwardClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BadgeAward entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BadgeAward) Unwrap() *BadgeAward {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BadgeAward is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BadgeAward) String() string {
	var builder strings.Builder
	builder.WriteString("BadgeAward(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("child_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChildID))
	builder.WriteString(", ")
	builder.WriteString("badge_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BadgeID))
	builder.WriteString(", ")
	builder.WriteString("awarded_at=")
	builder.WriteString(_m.AwardedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BadgeAwards is a parsable slice of BadgeAward.
type BadgeAwards []*BadgeAward
