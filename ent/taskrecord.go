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
	"github.com/abhisek/budai/ent/task"
	"github.com/abhisek/budai/ent/taskrecord"
	"github.com/google/uuid"
)

// TaskRecord is the model entity for the TaskRecord schema.
type TaskRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// ChildID holds the value of the "child_id" field.
	ChildID uuid.UUID `json:"child_id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID uuid.UUID `json:"task_id,omitempty"`
	// Status holds the value of the "status" field.
	Status taskrecord.Status `json:"status,omitempty"`
	// Submission holds the value of the "submission" field.
	Submission string `json:"submission,omitempty"`
	// TimeSpentSecs holds the value of the "time_spent_secs" field.
	TimeSpentSecs int `json:"time_spent_secs,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// ExpressionScore holds the value of the "expression_score" field.
	ExpressionScore *float64 `json:"expression_score,omitempty"`
	// LogicScore holds the value of the "logic_score" field.
	LogicScore *float64 `json:"logic_score,omitempty"`
	// ExplorationScore holds the value of the "exploration_score" field.
	ExplorationScore *float64 `json:"exploration_score,omitempty"`
	// CreativityScore holds the value of the "creativity_score" field.
	CreativityScore *float64 `json:"creativity_score,omitempty"`
	// HabitScore holds the value of the "habit_score" field.
	HabitScore *float64 `json:"habit_score,omitempty"`
	// Feedback holds the value of the "feedback" field.
	Feedback string `json:"feedback,omitempty"`
	// Suggestions holds the value of the "suggestions" field.
	Suggestions []string `json:"suggestions,omitempty"`
	// ExemplarAnswer holds the value of the "exemplar_answer" field.
	ExemplarAnswer string `json:"exemplar_answer,omitempty"`
	// XpEarned holds the value of the "xp_earned" field.
	XpEarned int `json:"xp_earned,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaskRecordQuery when eager-loading is set.
	Edges        TaskRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaskRecordEdges holds the relations/edges for other nodes in the graph.
type TaskRecordEdges struct {
	// Child holds the value of the child edge.
	Child *Child `json:"child,omitempty"`
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ChildOrErr returns the Child value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaskRecordEdges) ChildOrErr() (*Child, error) {
	if e.Child != nil {
		return e.Child, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: child.Label}
	}
	return nil, &NotLoadedError{edge: "child"}
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaskRecordEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TaskRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case taskrecord.FieldSuggestions:
			values[i] = new([]byte)
		case taskrecord.FieldExpressionScore, taskrecord.FieldLogicScore, taskrecord.FieldExplorationScore, taskrecord.FieldCreativityScore, taskrecord.FieldHabitScore:
			values[i] = new(sql.NullFloat64)
		case taskrecord.FieldTimeSpentSecs, taskrecord.FieldXpEarned:
			values[i] = new(sql.NullInt64)
		case taskrecord.FieldStatus, taskrecord.FieldSubmission, taskrecord.FieldFeedback, taskrecord.FieldExemplarAnswer:
			values[i] = new(sql.NullString)
		case taskrecord.FieldCreatedAt, taskrecord.FieldUpdatedAt, taskrecord.FieldStartedAt, taskrecord.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case taskrecord.FieldID, taskrecord.FieldChildID, taskrecord.FieldTaskID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TaskRecord fields.
func (_m *TaskRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case taskrecord.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case taskrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case taskrecord.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case taskrecord.FieldChildID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field child_id", values[i])
			} else if value != nil {
				_m.ChildID = *value
			}
		case taskrecord.FieldTaskID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value != nil {
				_m.TaskID = *value
			}
		case taskrecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = taskrecord.Status(value.String)
			}
		case taskrecord.FieldSubmission:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field submission", values[i])
			} else if value.Valid {
				_m.Submission = value.String
			}
		case taskrecord.FieldTimeSpentSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_spent_secs", values[i])
			} else if value.Valid {
				_m.TimeSpentSecs = int(value.Int64)
			}
		case taskrecord.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case taskrecord.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case taskrecord.FieldExpressionScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field expression_score", values[i])
			} else if value.Valid {
				_m.ExpressionScore = new(float64)
				*_m.ExpressionScore = value.Float64
			}
		case taskrecord.FieldLogicScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field logic_score", values[i])
			} else if value.Valid {
				_m.LogicScore = new(float64)
				*_m.LogicScore = value.Float64
			}
		case taskrecord.FieldExplorationScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field exploration_score", values[i])
			} else if value.Valid {
				_m.ExplorationScore = new(float64)
				*_m.ExplorationScore = value.Float64
			}
		case taskrecord.FieldCreativityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field creativity_score", values[i])
			} else if value.Valid {
				_m.CreativityScore = new(float64)
				*_m.CreativityScore = value.Float64
			}
		case taskrecord.FieldHabitScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field habit_score", values[i])
			} else if value.Valid {
				_m.HabitScore = new(float64)
				*_m.HabitScore = value.Float64
			}
		case taskrecord.FieldFeedback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feedback", values[i])
			} else if value.Valid {
				_m.Feedback = value.String
			}
		case taskrecord.FieldSuggestions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field suggestions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Suggestions); err != nil {
					return fmt.Errorf("unmarshal field suggestions: %w", err)
				}
			}
		case taskrecord.FieldExemplarAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exemplar_answer", values[i])
			} else if value.Valid {
				_m.ExemplarAnswer = value.String
			}
		case taskrecord.FieldXpEarned:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field xp_earned", values[i])
			} else if value.Valid {
				_m.XpEarned = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TaskRecord.
// This includes values selected through modifiers, order, etc.
func (_m *TaskRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryChild queries the "child" edge of the TaskRecord entity.
func (_m *TaskRecord) QueryChild() *ChildQuery {
	return NewTaskRecordClient(_m.config).QueryChild(_m)
}

// QueryTask queries the "task" edge of the TaskRecord entity.
func (_m *TaskRecord) QueryTask() *TaskQuery {
	return NewTaskRecordClient(_m.config).QueryTask(_m)
}

// Update returns a builder for updating this TaskRecord.
// Note that you need to call TaskRecord.Unwrap() before calling this method if this TaskRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TaskRecord) Update() *TaskRecordUpdateOne {
	return NewTaskRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TaskRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TaskRecord) Unwrap() *TaskRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TaskRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TaskRecord) String() string {
	var builder strings.Builder
	builder.WriteString("TaskRecord(")
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
	builder.WriteString("task_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TaskID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("submission=")
	builder.WriteString(_m.Submission)
	builder.WriteString(", ")
	builder.WriteString("time_spent_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeSpentSecs))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ExpressionScore; v != nil {
		builder.WriteString("expression_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.LogicScore; v != nil {
		builder.WriteString("logic_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ExplorationScore; v != nil {
		builder.WriteString("exploration_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CreativityScore; v != nil {
		builder.WriteString("creativity_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.HabitScore; v != nil {
		builder.WriteString("habit_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("feedback=")
	builder.WriteString(_m.Feedback)
	builder.WriteString(", ")
	builder.WriteString("suggestions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Suggestions))
	builder.WriteString(", ")
	builder.WriteString("exemplar_answer=")
	builder.WriteString(_m.ExemplarAnswer)
	builder.WriteString(", ")
	builder.WriteString("xp_earned=")
	builder.WriteString(fmt.Sprintf("%v", _m.XpEarned))
	builder.WriteByte(')')
	return builder.String()
}

// TaskRecords is a parsable slice of TaskRecord.
type TaskRecords []*TaskRecord
