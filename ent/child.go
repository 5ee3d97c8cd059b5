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
	"github.com/abhisek/budai/ent/user"
	"github.com/google/uuid"
)

// Child is the model entity for the Child schema.
type Child struct {
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
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// Nickname holds the value of the "nickname" field.
	Nickname string `json:"nickname,omitempty"`
	// Grade holds the value of the "grade" field.
	Grade string `json:"grade,omitempty"`
	// Interests holds the value of the "interests" field.
	Interests []string `json:"interests,omitempty"`
	// AvatarURL holds the value of the "avatar_url" field.
	AvatarURL string `json:"avatar_url,omitempty"`
	// Level holds the value of the "level" field.
	Level int `json:"level,omitempty"`
	// Xp holds the value of the "xp" field.
	Xp int `json:"xp,omitempty"`
	// Consecutive days with a completed task
	Streak int `json:"streak,omitempty"`
	// LastActiveOn holds the value of the "last_active_on" field.
	LastActiveOn *time.Time `json:"last_active_on,omitempty"`
	// GlobalTitle holds the value of the "global_title" field.
	GlobalTitle string `json:"global_title,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ChildQuery when eager-loading is set.
	Edges        ChildEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ChildEdges holds the relations/edges for other nodes in the graph.
type ChildEdges struct {
	// Parent holds the value of the parent edge.
	Parent *User `json:"parent,omitempty"`
	// Assessments holds the value of the assessments edge.
	Assessments []*Assessment `json:"assessments,omitempty"`
	// TaskRecords holds the value of the task_records edge.
	TaskRecords []*TaskRecord `json:"task_records,omitempty"`
	// BadgeAwards holds the value of the badge_awards edge.
	BadgeAwards []*BadgeAward `json:"badge_awards,omitempty"`
	// Contributions holds the value of the contributions edge.
	Contributions []*CoCreationContribution `json:"contributions,omitempty"`
	// WeeklyReports holds the value of the weekly_reports edge.
	WeeklyReports []*WeeklyReport `json:"weekly_reports,omitempty"`
	// GrowthRecords holds the value of the growth_records edge.
	GrowthRecords []*GrowthRecord `json:"growth_records,omitempty"`
	// Works holds the value of the works edge.
	Works []*Work `json:"works,omitempty"`
	// CoachSessions holds the value of the coach_sessions edge.
	CoachSessions []*CoachSession `json:"coach_sessions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [9]bool
}

// ParentOrErr returns the Parent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ChildEdges) ParentOrErr() (*User, error) {
	if e.Parent != nil {
		return e.Parent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "parent"}
}

// AssessmentsOrErr returns the Assessments value or an error if the edge
// was not loaded in eager-loading.
func (e ChildEdges) AssessmentsOrErr() ([]*Assessment, error) {
	if e.loadedTypes[1] {
		return e.Assessments, nil
	}
	return nil, &NotLoadedError{edge: "assessments"}
}

// TaskRecordsOrErr returns the TaskRecords value or an error if the edge
// was not loaded in eager-loading.
func (e ChildEdges) TaskRecordsOrErr() ([]*TaskRecord, error) {
	if e.loadedTypes[2] {
		return e.TaskRecords, nil
	}
	return nil, &NotLoadedError{edge: "task_records"}
}

// BadgeAwardsOrErr returns the BadgeAwards value or an error if the edge
// was not loaded in eager-loading.
func (e ChildEdges) BadgeAwardsOrErr() ([]*BadgeAward, error) {
	if e.loadedTypes[3] {
		return e.BadgeAwards, nil
	}
	return nil, &NotLoadedError{edge: "badge_awards"}
}

// ContributionsOrErr returns the Contributions value or an error if the edge
// was not loaded in eager-loading.
func (e ChildEdges) ContributionsOrErr() ([]*CoCreationContribution, error) {
	if e.loadedTypes[4] {
		return e.Contributions, nil
	}
	return nil, &NotLoadedError{edge: "contributions"}
}

// WeeklyReportsOrErr returns the WeeklyReports value or an error if the edge
// was not loaded in eager-loading.
func (e ChildEdges) WeeklyReportsOrErr() ([]*WeeklyReport, error) {
	if e.loadedTypes[5] {
		return e.WeeklyReports, nil
	}
	return nil, &NotLoadedError{edge: "weekly_reports"}
}

// GrowthRecordsOrErr returns the GrowthRecords value or an error if the edge
// was not loaded in eager-loading.
func (e ChildEdges) GrowthRecordsOrErr() ([]*GrowthRecord, error) {
	if e.loadedTypes[6] {
		return e.GrowthRecords, nil
	}
	return nil, &NotLoadedError{edge: "growth_records"}
}

// WorksOrErr returns the Works value or an error if the edge
// was not loaded in eager-loading.
func (e ChildEdges) WorksOrErr() ([]*Work, error) {
	if e.loadedTypes[7] {
		return e.Works, nil
	}
	return nil, &NotLoadedError{edge: "works"}
}

// CoachSessionsOrErr returns the CoachSessions value or an error if the edge
// was not loaded in eager-loading.
func (e ChildEdges) CoachSessionsOrErr() ([]*CoachSession, error) {
	if e.loadedTypes[8] {
		return e.CoachSessions, nil
	}
	return nil, &NotLoadedError{edge: "coach_sessions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Child) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case child.FieldInterests:
			values[i] = new([]byte)
		case child.FieldExpressionScore, child.FieldLogicScore, child.FieldExplorationScore, child.FieldCreativityScore, child.FieldHabitScore:
			values[i] = new(sql.NullFloat64)
		case child.FieldLevel, child.FieldXp, child.FieldStreak:
			values[i] = new(sql.NullInt64)
		case child.FieldNickname, child.FieldGrade, child.FieldAvatarURL, child.FieldGlobalTitle:
			values[i] = new(sql.NullString)
		case child.FieldCreatedAt, child.FieldUpdatedAt, child.FieldLastActiveOn:
			values[i] = new(sql.NullTime)
		case child.FieldID, child.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Child fields.
func (_m *Child) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case child.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case child.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case child.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case child.FieldExpressionScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field expression_score", values[i])
			} else if value.Valid {
				_m.ExpressionScore = value.Float64
			}
		case child.FieldLogicScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field logic_score", values[i])
			} else if value.Valid {
				_m.LogicScore = value.Float64
			}
		case child.FieldExplorationScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field exploration_score", values[i])
			} else if value.Valid {
				_m.ExplorationScore = value.Float64
			}
		case child.FieldCreativityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field creativity_score", values[i])
			} else if value.Valid {
				_m.CreativityScore = value.Float64
			}
		case child.FieldHabitScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field habit_score", values[i])
			} else if value.Valid {
				_m.HabitScore = value.Float64
			}
		case child.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case child.FieldNickname:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field nickname", values[i])
			} else if value.Valid {
				_m.Nickname = value.String
			}
		case child.FieldGrade:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field grade", values[i])
			} else if value.Valid {
				_m.Grade = value.String
			}
		case child.FieldInterests:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field interests", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Interests); err != nil {
					return fmt.Errorf("unmarshal field interests: %w", err)
				}
			}
		case child.FieldAvatarURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field avatar_url", values[i])
			} else if value.Valid {
				_m.AvatarURL = value.String
			}
		case child.FieldLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = int(value.Int64)
			}
		case child.FieldXp:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field xp", values[i])
			} else if value.Valid {
				_m.Xp = int(value.Int64)
			}
		case child.FieldStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field streak", values[i])
			} else if value.Valid {
				_m.Streak = int(value.Int64)
			}
		case child.FieldLastActiveOn:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_active_on", values[i])
			} else if value.Valid {
				_m.LastActiveOn = new(time.Time)
				*_m.LastActiveOn = value.Time
			}
		case child.FieldGlobalTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field global_title", values[i])
			} else if value.Valid {
				_m.GlobalTitle = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Child.
// This includes values selected through modifiers, order, etc.
func (_m *Child) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryParent queries the "parent" edge of the Child entity.
func (_m *Child) QueryParent() *UserQuery {
	return NewChildClient(_m.config).QueryParent(_m)
}

// QueryAssessments queries the "assessments" edge of the Child entity.
func (_m *Child) QueryAssessments() *AssessmentQuery {
	return NewChildClient(_m.config).QueryAssessments(_m)
}

// QueryTaskRecords queries the "task_records" edge of the Child entity.
func (_m *Child) QueryTaskRecords() *TaskRecordQuery {
	return NewChildClient(_m.config).QueryTaskRecords(_m)
}

// QueryBadgeAwards queries the "badge_awards" edge of the Child entity.
func (_m *Child) QueryBadgeAwards() *BadgeAwardQuery {
	return NewChildClient(_m.config).QueryBadgeAwards(_m)
}

// QueryContributions queries the "contributions" edge of the Child entity.
func (_m *Child) QueryContributions() *CoCreationContributionQuery {
	return NewChildClient(_m.config).QueryContributions(_m)
}

// QueryWeeklyReports queries the "weekly_reports" edge of the Child entity.
func (_m *Child) QueryWeeklyReports() *WeeklyReportQuery {
	return NewChildClient(_m.config).QueryWeeklyReports(_m)
}

// QueryGrowthRecords queries the "growth_records" edge of the Child entity.
func (_m *Child) QueryGrowthRecords() *GrowthRecordQuery {
	return NewChildClient(_m.config).QueryGrowthRecords(_m)
}

// QueryWorks queries the "works" edge of the Child entity.
func (_m *Child) QueryWorks() *WorkQuery {
	return NewChildClient(_m.config).QueryWorks(_m)
}

// QueryCoachSessions queries the "coach_sessions" edge of the Child entity.
func (_m *Child) QueryCoachSessions() *CoachSessionQuery {
	return NewChildClient(_m.config).QueryCoachSessions(_m)
}

// Update returns a builder for updating this Child.
// Note that you need to call Child.Unwrap() before calling this method if this Child
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Child) Update() *ChildUpdateOne {
	return NewChildClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Child entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Child) Unwrap() *Child {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Child is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Child) String() string {
	var builder strings.Builder
	builder.WriteString("Child(")
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
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("nickname=")
	builder.WriteString(_m.Nickname)
	builder.WriteString(", ")
	builder.WriteString("grade=")
	builder.WriteString(_m.Grade)
	builder.WriteString(", ")
	builder.WriteString("interests=")
	builder.WriteString(fmt.Sprintf("%v", _m.Interests))
	builder.WriteString(", ")
	builder.WriteString("avatar_url=")
	builder.WriteString(_m.AvatarURL)
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(fmt.Sprintf("%v", _m.Level))
	builder.WriteString(", ")
	builder.WriteString("xp=")
	builder.WriteString(fmt.Sprintf("%v", _m.Xp))
	builder.WriteString(", ")
	builder.WriteString("streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.Streak))
	builder.WriteString(", ")
	if v := _m.LastActiveOn; v != nil {
		builder.WriteString("last_active_on=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("global_title=")
	builder.WriteString(_m.GlobalTitle)
	builder.WriteByte(')')
	return builder.String()
}

// Childs is a parsable slice of Child.
type Childs []*Child
