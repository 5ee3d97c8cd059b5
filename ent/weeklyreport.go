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
	"github.com/abhisek/budai/ent/weeklyreport"
	"github.com/google/uuid"
)

// WeeklyReport is the model entity for the WeeklyReport schema.
type WeeklyReport struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// ChildID holds the value of the "child_id" field.
	ChildID uuid.UUID `json:"child_id,omitempty"`
	// WeekStart holds the value of the "week_start" field.
	WeekStart time.Time `json:"week_start,omitempty"`
	// WeekEnd holds the value of the "week_end" field.
	WeekEnd time.Time `json:"week_end,omitempty"`
	// TasksCompleted holds the value of the "tasks_completed" field.
	TasksCompleted int `json:"tasks_completed,omitempty"`
	// AverageScore holds the value of the "average_score" field.
	AverageScore float64 `json:"average_score,omitempty"`
	// MostImproved holds the value of the "most_improved" field.
	MostImproved string `json:"most_improved,omitempty"`
	// NeedsWork holds the value of the "needs_work" field.
	NeedsWork string `json:"needs_work,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// Insights holds the value of the "insights" field.
	Insights map[string]string `json:"insights,omitempty"`
	// Suggestions holds the value of the "suggestions" field.
	Suggestions []string `json:"suggestions,omitempty"`
	// RecommendedGames holds the value of the "recommended_games" field.
	RecommendedGames []string `json:"recommended_games,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WeeklyReportQuery when eager-loading is set.
	Edges        WeeklyReportEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WeeklyReportEdges holds the relations/edges for other nodes in the graph.
type WeeklyReportEdges struct {
	// Child holds the value of the child edge.
	Child *Child `json:"child,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ChildOrErr returns the Child value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WeeklyReportEdges) ChildOrErr() (*Child, error) {
	if e.Child != nil {
		return e.Child, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: child.Label}
	}
	return nil, &NotLoadedError{edge: "child"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WeeklyReport) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case weeklyreport.FieldInsights, weeklyreport.FieldSuggestions, weeklyreport.FieldRecommendedGames:
			values[i] = new([]byte)
		case weeklyreport.FieldAverageScore:
			values[i] = new(sql.NullFloat64)
		case weeklyreport.FieldTasksCompleted:
			values[i] = new(sql.NullInt64)
		case weeklyreport.FieldMostImproved, weeklyreport.FieldNeedsWork, weeklyreport.FieldSummary:
			values[i] = new(sql.NullString)
		case weeklyreport.FieldCreatedAt, weeklyreport.FieldUpdatedAt, weeklyreport.FieldWeekStart, weeklyreport.FieldWeekEnd:
			values[i] = new(sql.NullTime)
		case weeklyreport.FieldID, weeklyreport.FieldChildID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WeeklyReport fields.
func (_m *WeeklyReport) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case weeklyreport.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case weeklyreport.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case weeklyreport.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case weeklyreport.FieldChildID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field child_id", values[i])
			} else if value != nil {
				_m.ChildID = *value
			}
		case weeklyreport.FieldWeekStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field week_start", values[i])
			} else if value.Valid {
				_m.WeekStart = value.Time
			}
		case weeklyreport.FieldWeekEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field week_end", values[i])
			} else if value.Valid {
				_m.WeekEnd = value.Time
			}
		case weeklyreport.FieldTasksCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tasks_completed", values[i])
			} else if value.Valid {
				_m.TasksCompleted = int(value.Int64)
			}
		case weeklyreport.FieldAverageScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field average_score", values[i])
			} else if value.Valid {
				_m.AverageScore = value.Float64
			}
		case weeklyreport.FieldMostImproved:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field most_improved", values[i])
			} else if value.Valid {
				_m.MostImproved = value.String
			}
		case weeklyreport.FieldNeedsWork:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field needs_work", values[i])
			} else if value.Valid {
				_m.NeedsWork = value.String
			}
		case weeklyreport.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case weeklyreport.FieldInsights:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field insights", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Insights); err != nil {
					return fmt.Errorf("unmarshal field insights: %w", err)
				}
			}
		case weeklyreport.FieldSuggestions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field suggestions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Suggestions); err != nil {
					return fmt.Errorf("unmarshal field suggestions: %w", err)
				}
			}
		case weeklyreport.FieldRecommendedGames:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recommended_games", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RecommendedGames); err != nil {
					return fmt.Errorf("unmarshal field recommended_games: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WeeklyReport.
// This includes values selected through modifiers, order, etc.
func (_m *WeeklyReport) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryChild queries the "child" edge of the WeeklyReport entity.
func (_m *WeeklyReport) QueryChild() *ChildQuery {
	return NewWeeklyReportClient(_m.config).QueryChild(_m)
}

// Update returns a builder for updating this WeeklyReport.
// Note that you need to call WeeklyReport.Unwrap() before calling this method if this WeeklyReport
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WeeklyReport) Update() *WeeklyReportUpdateOne {
	return NewWeeklyReportClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WeeklyReport entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WeeklyReport) Unwrap() *WeeklyReport {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WeeklyReport is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WeeklyReport) String() string {
	var builder strings.Builder
	builder.WriteString("WeeklyReport(")
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
	builder.WriteString("week_start=")
	builder.WriteString(_m.WeekStart.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("week_end=")
	builder.WriteString(_m.WeekEnd.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("tasks_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.TasksCompleted))
	builder.WriteString(", ")
	builder.WriteString("average_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.AverageScore))
	builder.WriteString(", ")
	builder.WriteString("most_improved=")
	builder.WriteString(_m.MostImproved)
	builder.WriteString(", ")
	builder.WriteString("needs_work=")
	builder.WriteString(_m.NeedsWork)
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("insights=")
	builder.WriteString(fmt.Sprintf("%v", _m.Insights))
	builder.WriteString(", ")
	builder.WriteString("suggestions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Suggestions))
	builder.WriteString(", ")
	builder.WriteString("recommended_games=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecommendedGames))
	builder.WriteByte(')')
	return builder.String()
}

// WeeklyReports is a parsable slice of WeeklyReport.
type WeeklyReports []*WeeklyReport
