// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/budai/ent/assessment"
	"github.com/abhisek/budai/ent/badge"
	"github.com/abhisek/budai/ent/badgeaward"
	"github.com/abhisek/budai/ent/child"
	"github.com/abhisek/budai/ent/coachsession"
	"github.com/abhisek/budai/ent/cocreationcontribution"
	"github.com/abhisek/budai/ent/cocreationtheme"
	"github.com/abhisek/budai/ent/growthrecord"
	"github.com/abhisek/budai/ent/llmrequestevent"
	"github.com/abhisek/budai/ent/predicate"
	"github.com/abhisek/budai/ent/task"
	"github.com/abhisek/budai/ent/taskrecord"
	"github.com/abhisek/budai/ent/user"
	"github.com/abhisek/budai/ent/weeklyreport"
	"github.com/abhisek/budai/ent/work"
	"github.com/abhisek/budai/internal/chat"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAssessment             = "Assessment"
	TypeBadge                  = "Badge"
	TypeBadgeAward             = "BadgeAward"
	TypeChild                  = "Child"
	TypeCoCreationContribution = "CoCreationContribution"
	TypeCoCreationTheme        = "CoCreationTheme"
	TypeCoachSession           = "CoachSession"
	TypeGrowthRecord           = "GrowthRecord"
	TypeLLMRequestEvent        = "LLMRequestEvent"
	TypeTask                   = "Task"
	TypeTaskRecord             = "TaskRecord"
	TypeUser                   = "User"
	TypeWeeklyReport           = "WeeklyReport"
	TypeWork                   = "Work"
)

// AssessmentMutation represents an operation that mutates the Assessment nodes in the graph.
type AssessmentMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	created_at           *time.Time
	updated_at           *time.Time
	expression_score     *float64
	addexpression_score  *float64
	logic_score          *float64
	addlogic_score       *float64
	exploration_score    *float64
	addexploration_score *float64
	creativity_score     *float64
	addcreativity_score  *float64
	habit_score          *float64
	addhabit_score       *float64
	kind                 *assessment.Kind
	responses            *[]string
	appendresponses      []string
	analysis             *string
	suggestions          *[]string
	appendsuggestions    []string
	clearedFields        map[string]struct{}
	child                *uuid.UUID
	clearedchild         bool
	done                 bool
	oldValue             func(context.Context) (*Assessment, error)
	predicates           []predicate.Assessment
}

var _ ent.Mutation = (*AssessmentMutation)(nil)

// assessmentOption allows management of the mutation configuration using functional options.
type assessmentOption func(*AssessmentMutation)

// newAssessmentMutation creates new mutation for the Assessment entity.
func newAssessmentMutation(c config, op Op, opts ...assessmentOption) *AssessmentMutation {
	m := &AssessmentMutation{
		config:        c,
		op:            op,
		typ:           TypeAssessment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAssessmentID sets the ID field of the mutation.
func withAssessmentID(id uuid.UUID) assessmentOption {
	return func(m *AssessmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Assessment
		)
		m.oldValue = func(ctx context.Context) (*Assessment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Assessment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAssessment sets the old Assessment of the mutation.
func withAssessment(node *Assessment) assessmentOption {
	return func(m *AssessmentMutation) {
		m.oldValue = func(context.Context) (*Assessment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AssessmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AssessmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Assessment entities.
func (m *AssessmentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AssessmentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AssessmentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Assessment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AssessmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AssessmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AssessmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AssessmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AssessmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AssessmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetExpressionScore sets the "expression_score" field.
func (m *AssessmentMutation) SetExpressionScore(f float64) {
	m.expression_score = &f
	m.addexpression_score = nil
}

// ExpressionScore returns the value of the "expression_score" field in the mutation.
func (m *AssessmentMutation) ExpressionScore() (r float64, exists bool) {
	v := m.expression_score
	if v == nil {
		return
	}
	return *v, true
}

// OldExpressionScore returns the old "expression_score" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldExpressionScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpressionScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpressionScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpressionScore: %w", err)
	}
	return oldValue.ExpressionScore, nil
}

// AddExpressionScore adds f to the "expression_score" field.
func (m *AssessmentMutation) AddExpressionScore(f float64) {
	if m.addexpression_score != nil {
		*m.addexpression_score += f
	} else {
		m.addexpression_score = &f
	}
}

// AddedExpressionScore returns the value that was added to the "expression_score" field in this mutation.
func (m *AssessmentMutation) AddedExpressionScore() (r float64, exists bool) {
	v := m.addexpression_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetExpressionScore resets all changes to the "expression_score" field.
func (m *AssessmentMutation) ResetExpressionScore() {
	m.expression_score = nil
	m.addexpression_score = nil
}

// SetLogicScore sets the "logic_score" field.
func (m *AssessmentMutation) SetLogicScore(f float64) {
	m.logic_score = &f
	m.addlogic_score = nil
}

// LogicScore returns the value of the "logic_score" field in the mutation.
func (m *AssessmentMutation) LogicScore() (r float64, exists bool) {
	v := m.logic_score
	if v == nil {
		return
	}
	return *v, true
}

// OldLogicScore returns the old "logic_score" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldLogicScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLogicScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLogicScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLogicScore: %w", err)
	}
	return oldValue.LogicScore, nil
}

// AddLogicScore adds f to the "logic_score" field.
func (m *AssessmentMutation) AddLogicScore(f float64) {
	if m.addlogic_score != nil {
		*m.addlogic_score += f
	} else {
		m.addlogic_score = &f
	}
}

// AddedLogicScore returns the value that was added to the "logic_score" field in this mutation.
func (m *AssessmentMutation) AddedLogicScore() (r float64, exists bool) {
	v := m.addlogic_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetLogicScore resets all changes to the "logic_score" field.
func (m *AssessmentMutation) ResetLogicScore() {
	m.logic_score = nil
	m.addlogic_score = nil
}

// SetExplorationScore sets the "exploration_score" field.
func (m *AssessmentMutation) SetExplorationScore(f float64) {
	m.exploration_score = &f
	m.addexploration_score = nil
}

// ExplorationScore returns the value of the "exploration_score" field in the mutation.
func (m *AssessmentMutation) ExplorationScore() (r float64, exists bool) {
	v := m.exploration_score
	if v == nil {
		return
	}
	return *v, true
}

// OldExplorationScore returns the old "exploration_score" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldExplorationScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExplorationScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExplorationScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExplorationScore: %w", err)
	}
	return oldValue.ExplorationScore, nil
}

// AddExplorationScore adds f to the "exploration_score" field.
func (m *AssessmentMutation) AddExplorationScore(f float64) {
	if m.addexploration_score != nil {
		*m.addexploration_score += f
	} else {
		m.addexploration_score = &f
	}
}

// AddedExplorationScore returns the value that was added to the "exploration_score" field in this mutation.
func (m *AssessmentMutation) AddedExplorationScore() (r float64, exists bool) {
	v := m.addexploration_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetExplorationScore resets all changes to the "exploration_score" field.
func (m *AssessmentMutation) ResetExplorationScore() {
	m.exploration_score = nil
	m.addexploration_score = nil
}

// SetCreativityScore sets the "creativity_score" field.
func (m *AssessmentMutation) SetCreativityScore(f float64) {
	m.creativity_score = &f
	m.addcreativity_score = nil
}

// CreativityScore returns the value of the "creativity_score" field in the mutation.
func (m *AssessmentMutation) CreativityScore() (r float64, exists bool) {
	v := m.creativity_score
	if v == nil {
		return
	}
	return *v, true
}

// OldCreativityScore returns the old "creativity_score" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldCreativityScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreativityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreativityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreativityScore: %w", err)
	}
	return oldValue.CreativityScore, nil
}

// AddCreativityScore adds f to the "creativity_score" field.
func (m *AssessmentMutation) AddCreativityScore(f float64) {
	if m.addcreativity_score != nil {
		*m.addcreativity_score += f
	} else {
		m.addcreativity_score = &f
	}
}

// AddedCreativityScore returns the value that was added to the "creativity_score" field in this mutation.
func (m *AssessmentMutation) AddedCreativityScore() (r float64, exists bool) {
	v := m.addcreativity_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreativityScore resets all changes to the "creativity_score" field.
func (m *AssessmentMutation) ResetCreativityScore() {
	m.creativity_score = nil
	m.addcreativity_score = nil
}

// SetHabitScore sets the "habit_score" field.
func (m *AssessmentMutation) SetHabitScore(f float64) {
	m.habit_score = &f
	m.addhabit_score = nil
}

// HabitScore returns the value of the "habit_score" field in the mutation.
func (m *AssessmentMutation) HabitScore() (r float64, exists bool) {
	v := m.habit_score
	if v == nil {
		return
	}
	return *v, true
}

// OldHabitScore returns the old "habit_score" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldHabitScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHabitScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHabitScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHabitScore: %w", err)
	}
	return oldValue.HabitScore, nil
}

// AddHabitScore adds f to the "habit_score" field.
func (m *AssessmentMutation) AddHabitScore(f float64) {
	if m.addhabit_score != nil {
		*m.addhabit_score += f
	} else {
		m.addhabit_score = &f
	}
}

// AddedHabitScore returns the value that was added to the "habit_score" field in this mutation.
func (m *AssessmentMutation) AddedHabitScore() (r float64, exists bool) {
	v := m.addhabit_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetHabitScore resets all changes to the "habit_score" field.
func (m *AssessmentMutation) ResetHabitScore() {
	m.habit_score = nil
	m.addhabit_score = nil
}

// SetChildID sets the "child_id" field.
func (m *AssessmentMutation) SetChildID(u uuid.UUID) {
	m.child = &u
}

// ChildID returns the value of the "child_id" field in the mutation.
func (m *AssessmentMutation) ChildID() (r uuid.UUID, exists bool) {
	v := m.child
	if v == nil {
		return
	}
	return *v, true
}

// OldChildID returns the old "child_id" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldChildID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChildID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChildID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChildID: %w", err)
	}
	return oldValue.ChildID, nil
}

// ResetChildID resets all changes to the "child_id" field.
func (m *AssessmentMutation) ResetChildID() {
	m.child = nil
}

// SetKind sets the "kind" field.
func (m *AssessmentMutation) SetKind(a assessment.Kind) {
	m.kind = &a
}

// Kind returns the value of the "kind" field in the mutation.
func (m *AssessmentMutation) Kind() (r assessment.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldKind(ctx context.Context) (v assessment.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *AssessmentMutation) ResetKind() {
	m.kind = nil
}

// SetResponses sets the "responses" field.
func (m *AssessmentMutation) SetResponses(s []string) {
	m.responses = &s
	m.appendresponses = nil
}

// Responses returns the value of the "responses" field in the mutation.
func (m *AssessmentMutation) Responses() (r []string, exists bool) {
	v := m.responses
	if v == nil {
		return
	}
	return *v, true
}

// OldResponses returns the old "responses" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldResponses(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponses: %w", err)
	}
	return oldValue.Responses, nil
}

// AppendResponses adds s to the "responses" field.
func (m *AssessmentMutation) AppendResponses(s []string) {
	m.appendresponses = append(m.appendresponses, s...)
}

// AppendedResponses returns the list of values that were appended to the "responses" field in this mutation.
func (m *AssessmentMutation) AppendedResponses() ([]string, bool) {
	if len(m.appendresponses) == 0 {
		return nil, false
	}
	return m.appendresponses, true
}

// ResetResponses resets all changes to the "responses" field.
func (m *AssessmentMutation) ResetResponses() {
	m.responses = nil
	m.appendresponses = nil
}

// SetAnalysis sets the "analysis" field.
func (m *AssessmentMutation) SetAnalysis(s string) {
	m.analysis = &s
}

// Analysis returns the value of the "analysis" field in the mutation.
func (m *AssessmentMutation) Analysis() (r string, exists bool) {
	v := m.analysis
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysis returns the old "analysis" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldAnalysis(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysis: %w", err)
	}
	return oldValue.Analysis, nil
}

// ResetAnalysis resets all changes to the "analysis" field.
func (m *AssessmentMutation) ResetAnalysis() {
	m.analysis = nil
}

// SetSuggestions sets the "suggestions" field.
func (m *AssessmentMutation) SetSuggestions(s []string) {
	m.suggestions = &s
	m.appendsuggestions = nil
}

// Suggestions returns the value of the "suggestions" field in the mutation.
func (m *AssessmentMutation) Suggestions() (r []string, exists bool) {
	v := m.suggestions
	if v == nil {
		return
	}
	return *v, true
}

// OldSuggestions returns the old "suggestions" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldSuggestions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuggestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuggestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuggestions: %w", err)
	}
	return oldValue.Suggestions, nil
}

// AppendSuggestions adds s to the "suggestions" field.
func (m *AssessmentMutation) AppendSuggestions(s []string) {
	m.appendsuggestions = append(m.appendsuggestions, s...)
}

// AppendedSuggestions returns the list of values that were appended to the "suggestions" field in this mutation.
func (m *AssessmentMutation) AppendedSuggestions() ([]string, bool) {
	if len(m.appendsuggestions) == 0 {
		return nil, false
	}
	return m.appendsuggestions, true
}

// ClearSuggestions clears the value of the "suggestions" field.
func (m *AssessmentMutation) ClearSuggestions() {
	m.suggestions = nil
	m.appendsuggestions = nil
	m.clearedFields[assessment.FieldSuggestions] = struct{}{}
}

// SuggestionsCleared returns if the "suggestions" field was cleared in this mutation.
func (m *AssessmentMutation) SuggestionsCleared() bool {
	_, ok := m.clearedFields[assessment.FieldSuggestions]
	return ok
}

// ResetSuggestions resets all changes to the "suggestions" field.
func (m *AssessmentMutation) ResetSuggestions() {
	m.suggestions = nil
	m.appendsuggestions = nil
	delete(m.clearedFields, assessment.FieldSuggestions)
}

// ClearChild clears the "child" edge to the Child entity.
func (m *AssessmentMutation) ClearChild() {
	m.clearedchild = true
	m.clearedFields[assessment.FieldChildID] = struct{}{}
}

// ChildCleared reports if the "child" edge to the Child entity was cleared.
func (m *AssessmentMutation) ChildCleared() bool {
	return m.clearedchild
}

// ChildIDs returns the "child" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChildID instead. It exists only for internal usage by the builders.
func (m *AssessmentMutation) ChildIDs() (ids []uuid.UUID) {
	if id := m.child; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChild resets all changes to the "child" edge.
func (m *AssessmentMutation) ResetChild() {
	m.child = nil
	m.clearedchild = false
}

// Where appends a list predicates to the AssessmentMutation builder.
func (m *AssessmentMutation) Where(ps ...predicate.Assessment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AssessmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AssessmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Assessment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AssessmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AssessmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Assessment).
func (m *AssessmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AssessmentMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.created_at != nil {
		fields = append(fields, assessment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, assessment.FieldUpdatedAt)
	}
	if m.expression_score != nil {
		fields = append(fields, assessment.FieldExpressionScore)
	}
	if m.logic_score != nil {
		fields = append(fields, assessment.FieldLogicScore)
	}
	if m.exploration_score != nil {
		fields = append(fields, assessment.FieldExplorationScore)
	}
	if m.creativity_score != nil {
		fields = append(fields, assessment.FieldCreativityScore)
	}
	if m.habit_score != nil {
		fields = append(fields, assessment.FieldHabitScore)
	}
	if m.child != nil {
		fields = append(fields, assessment.FieldChildID)
	}
	if m.kind != nil {
		fields = append(fields, assessment.FieldKind)
	}
	if m.responses != nil {
		fields = append(fields, assessment.FieldResponses)
	}
	if m.analysis != nil {
		fields = append(fields, assessment.FieldAnalysis)
	}
	if m.suggestions != nil {
		fields = append(fields, assessment.FieldSuggestions)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AssessmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case assessment.FieldCreatedAt:
		return m.CreatedAt()
	case assessment.FieldUpdatedAt:
		return m.UpdatedAt()
	case assessment.FieldExpressionScore:
		return m.ExpressionScore()
	case assessment.FieldLogicScore:
		return m.LogicScore()
	case assessment.FieldExplorationScore:
		return m.ExplorationScore()
	case assessment.FieldCreativityScore:
		return m.CreativityScore()
	case assessment.FieldHabitScore:
		return m.HabitScore()
	case assessment.FieldChildID:
		return m.ChildID()
	case assessment.FieldKind:
		return m.Kind()
	case assessment.FieldResponses:
		return m.Responses()
	case assessment.FieldAnalysis:
		return m.Analysis()
	case assessment.FieldSuggestions:
		return m.Suggestions()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AssessmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case assessment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case assessment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case assessment.FieldExpressionScore:
		return m.OldExpressionScore(ctx)
	case assessment.FieldLogicScore:
		return m.OldLogicScore(ctx)
	case assessment.FieldExplorationScore:
		return m.OldExplorationScore(ctx)
	case assessment.FieldCreativityScore:
		return m.OldCreativityScore(ctx)
	case assessment.FieldHabitScore:
		return m.OldHabitScore(ctx)
	case assessment.FieldChildID:
		return m.OldChildID(ctx)
	case assessment.FieldKind:
		return m.OldKind(ctx)
	case assessment.FieldResponses:
		return m.OldResponses(ctx)
	case assessment.FieldAnalysis:
		return m.OldAnalysis(ctx)
	case assessment.FieldSuggestions:
		return m.OldSuggestions(ctx)
	}
	return nil, fmt.Errorf("unknown Assessment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case assessment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case assessment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case assessment.FieldExpressionScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpressionScore(v)
		return nil
	case assessment.FieldLogicScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLogicScore(v)
		return nil
	case assessment.FieldExplorationScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExplorationScore(v)
		return nil
	case assessment.FieldCreativityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreativityScore(v)
		return nil
	case assessment.FieldHabitScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHabitScore(v)
		return nil
	case assessment.FieldChildID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChildID(v)
		return nil
	case assessment.FieldKind:
		v, ok := value.(assessment.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case assessment.FieldResponses:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponses(v)
		return nil
	case assessment.FieldAnalysis:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysis(v)
		return nil
	case assessment.FieldSuggestions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuggestions(v)
		return nil
	}
	return fmt.Errorf("unknown Assessment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AssessmentMutation) AddedFields() []string {
	var fields []string
	if m.addexpression_score != nil {
		fields = append(fields, assessment.FieldExpressionScore)
	}
	if m.addlogic_score != nil {
		fields = append(fields, assessment.FieldLogicScore)
	}
	if m.addexploration_score != nil {
		fields = append(fields, assessment.FieldExplorationScore)
	}
	if m.addcreativity_score != nil {
		fields = append(fields, assessment.FieldCreativityScore)
	}
	if m.addhabit_score != nil {
		fields = append(fields, assessment.FieldHabitScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AssessmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case assessment.FieldExpressionScore:
		return m.AddedExpressionScore()
	case assessment.FieldLogicScore:
		return m.AddedLogicScore()
	case assessment.FieldExplorationScore:
		return m.AddedExplorationScore()
	case assessment.FieldCreativityScore:
		return m.AddedCreativityScore()
	case assessment.FieldHabitScore:
		return m.AddedHabitScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case assessment.FieldExpressionScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExpressionScore(v)
		return nil
	case assessment.FieldLogicScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLogicScore(v)
		return nil
	case assessment.FieldExplorationScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExplorationScore(v)
		return nil
	case assessment.FieldCreativityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreativityScore(v)
		return nil
	case assessment.FieldHabitScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHabitScore(v)
		return nil
	}
	return fmt.Errorf("unknown Assessment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AssessmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(assessment.FieldSuggestions) {
		fields = append(fields, assessment.FieldSuggestions)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AssessmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AssessmentMutation) ClearField(name string) error {
	switch name {
	case assessment.FieldSuggestions:
		m.ClearSuggestions()
		return nil
	}
	return fmt.Errorf("unknown Assessment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AssessmentMutation) ResetField(name string) error {
	switch name {
	case assessment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case assessment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case assessment.FieldExpressionScore:
		m.ResetExpressionScore()
		return nil
	case assessment.FieldLogicScore:
		m.ResetLogicScore()
		return nil
	case assessment.FieldExplorationScore:
		m.ResetExplorationScore()
		return nil
	case assessment.FieldCreativityScore:
		m.ResetCreativityScore()
		return nil
	case assessment.FieldHabitScore:
		m.ResetHabitScore()
		return nil
	case assessment.FieldChildID:
		m.ResetChildID()
		return nil
	case assessment.FieldKind:
		m.ResetKind()
		return nil
	case assessment.FieldResponses:
		m.ResetResponses()
		return nil
	case assessment.FieldAnalysis:
		m.ResetAnalysis()
		return nil
	case assessment.FieldSuggestions:
		m.ResetSuggestions()
		return nil
	}
	return fmt.Errorf("unknown Assessment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AssessmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.child != nil {
		edges = append(edges, assessment.EdgeChild)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AssessmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case assessment.EdgeChild:
		if id := m.child; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AssessmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AssessmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AssessmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedchild {
		edges = append(edges, assessment.EdgeChild)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AssessmentMutation) EdgeCleared(name string) bool {
	switch name {
	case assessment.EdgeChild:
		return m.clearedchild
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AssessmentMutation) ClearEdge(name string) error {
	switch name {
	case assessment.EdgeChild:
		m.ClearChild()
		return nil
	}
	return fmt.Errorf("unknown Assessment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AssessmentMutation) ResetEdge(name string) error {
	switch name {
	case assessment.EdgeChild:
		m.ResetChild()
		return nil
	}
	return fmt.Errorf("unknown Assessment edge %s", name)
}

// BadgeMutation represents an operation that mutates the Badge nodes in the graph.
type BadgeMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	key           *string
	name          *string
	description   *string
	icon          *string
	criteria      *string
	clearedFields map[string]struct{}
	awards        map[uuid.UUID]struct{}
	removedawards map[uuid.UUID]struct{}
	clearedawards bool
	done          bool
	oldValue      func(context.Context) (*Badge, error)
	predicates    []predicate.Badge
}

var _ ent.Mutation = (*BadgeMutation)(nil)

// badgeOption allows management of the mutation configuration using functional options.
type badgeOption func(*BadgeMutation)

// newBadgeMutation creates new mutation for the Badge entity.
func newBadgeMutation(c config, op Op, opts ...badgeOption) *BadgeMutation {
	m := &BadgeMutation{
		config:        c,
		op:            op,
		typ:           TypeBadge,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBadgeID sets the ID field of the mutation.
func withBadgeID(id uuid.UUID) badgeOption {
	return func(m *BadgeMutation) {
		var (
			err   error
			once  sync.Once
			value *Badge
		)
		m.oldValue = func(ctx context.Context) (*Badge, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Badge.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBadge sets the old Badge of the mutation.
func withBadge(node *Badge) badgeOption {
	return func(m *BadgeMutation) {
		m.oldValue = func(context.Context) (*Badge, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BadgeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BadgeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Badge entities.
func (m *BadgeMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BadgeMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BadgeMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Badge.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *BadgeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BadgeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Badge entity.
// If the Badge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BadgeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BadgeMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BadgeMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Badge entity.
// If the Badge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BadgeMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetKey sets the "key" field.
func (m *BadgeMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *BadgeMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the Badge entity.
// If the Badge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *BadgeMutation) ResetKey() {
	m.key = nil
}

// SetName sets the "name" field.
func (m *BadgeMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *BadgeMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Badge entity.
// If the Badge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *BadgeMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *BadgeMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *BadgeMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Badge entity.
// If the Badge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *BadgeMutation) ResetDescription() {
	m.description = nil
}

// SetIcon sets the "icon" field.
func (m *BadgeMutation) SetIcon(s string) {
	m.icon = &s
}

// Icon returns the value of the "icon" field in the mutation.
func (m *BadgeMutation) Icon() (r string, exists bool) {
	v := m.icon
	if v == nil {
		return
	}
	return *v, true
}

// OldIcon returns the old "icon" field's value of the Badge entity.
// If the Badge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeMutation) OldIcon(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIcon is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIcon requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIcon: %w", err)
	}
	return oldValue.Icon, nil
}

// ResetIcon resets all changes to the "icon" field.
func (m *BadgeMutation) ResetIcon() {
	m.icon = nil
}

// SetCriteria sets the "criteria" field.
func (m *BadgeMutation) SetCriteria(s string) {
	m.criteria = &s
}

// Criteria returns the value of the "criteria" field in the mutation.
func (m *BadgeMutation) Criteria() (r string, exists bool) {
	v := m.criteria
	if v == nil {
		return
	}
	return *v, true
}

// OldCriteria returns the old "criteria" field's value of the Badge entity.
// If the Badge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeMutation) OldCriteria(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCriteria is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCriteria requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCriteria: %w", err)
	}
	return oldValue.Criteria, nil
}

// ResetCriteria resets all changes to the "criteria" field.
func (m *BadgeMutation) ResetCriteria() {
	m.criteria = nil
}

// AddAwardIDs adds the "awards" edge to the BadgeAward entity by ids.
func (m *BadgeMutation) AddAwardIDs(ids ...uuid.UUID) {
	if m.awards == nil {
		m.awards = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.awards[ids[i]] = struct{}{}
	}
}

// ClearAwards clears the "awards" edge to the BadgeAward entity.
func (m *BadgeMutation) ClearAwards() {
	m.clearedawards = true
}

// AwardsCleared reports if the "awards" edge to the BadgeAward entity was cleared.
func (m *BadgeMutation) AwardsCleared() bool {
	return m.clearedawards
}

// RemoveAwardIDs removes the "awards" edge to the BadgeAward entity by IDs.
func (m *BadgeMutation) RemoveAwardIDs(ids ...uuid.UUID) {
	if m.removedawards == nil {
		m.removedawards = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.awards, ids[i])
		m.removedawards[ids[i]] = struct{}{}
	}
}

// RemovedAwards returns the removed IDs of the "awards" edge to the BadgeAward entity.
func (m *BadgeMutation) RemovedAwardsIDs() (ids []uuid.UUID) {
	for id := range m.removedawards {
		ids = append(ids, id)
	}
	return
}

// AwardsIDs returns the "awards" edge IDs in the mutation.
func (m *BadgeMutation) AwardsIDs() (ids []uuid.UUID) {
	for id := range m.awards {
		ids = append(ids, id)
	}
	return
}

// ResetAwards resets all changes to the "awards" edge.
func (m *BadgeMutation) ResetAwards() {
	m.awards = nil
	m.clearedawards = false
	m.removedawards = nil
}

// Where appends a list predicates to the BadgeMutation builder.
func (m *BadgeMutation) Where(ps ...predicate.Badge) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BadgeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BadgeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Badge, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BadgeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BadgeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Badge).
func (m *BadgeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BadgeMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, badge.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, badge.FieldUpdatedAt)
	}
	if m.key != nil {
		fields = append(fields, badge.FieldKey)
	}
	if m.name != nil {
		fields = append(fields, badge.FieldName)
	}
	if m.description != nil {
		fields = append(fields, badge.FieldDescription)
	}
	if m.icon != nil {
		fields = append(fields, badge.FieldIcon)
	}
	if m.criteria != nil {
		fields = append(fields, badge.FieldCriteria)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BadgeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case badge.FieldCreatedAt:
		return m.CreatedAt()
	case badge.FieldUpdatedAt:
		return m.UpdatedAt()
	case badge.FieldKey:
		return m.Key()
	case badge.FieldName:
		return m.Name()
	case badge.FieldDescription:
		return m.Description()
	case badge.FieldIcon:
		return m.Icon()
	case badge.FieldCriteria:
		return m.Criteria()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BadgeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case badge.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case badge.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case badge.FieldKey:
		return m.OldKey(ctx)
	case badge.FieldName:
		return m.OldName(ctx)
	case badge.FieldDescription:
		return m.OldDescription(ctx)
	case badge.FieldIcon:
		return m.OldIcon(ctx)
	case badge.FieldCriteria:
		return m.OldCriteria(ctx)
	}
	return nil, fmt.Errorf("unknown Badge field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BadgeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case badge.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case badge.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case badge.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case badge.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case badge.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case badge.FieldIcon:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIcon(v)
		return nil
	case badge.FieldCriteria:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCriteria(v)
		return nil
	}
	return fmt.Errorf("unknown Badge field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BadgeMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BadgeMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BadgeMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Badge numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BadgeMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BadgeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BadgeMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Badge nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BadgeMutation) ResetField(name string) error {
	switch name {
	case badge.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case badge.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case badge.FieldKey:
		m.ResetKey()
		return nil
	case badge.FieldName:
		m.ResetName()
		return nil
	case badge.FieldDescription:
		m.ResetDescription()
		return nil
	case badge.FieldIcon:
		m.ResetIcon()
		return nil
	case badge.FieldCriteria:
		m.ResetCriteria()
		return nil
	}
	return fmt.Errorf("unknown Badge field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BadgeMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.awards != nil {
		edges = append(edges, badge.EdgeAwards)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BadgeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case badge.EdgeAwards:
		ids := make([]ent.Value, 0, len(m.awards))
		for id := range m.awards {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BadgeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedawards != nil {
		edges = append(edges, badge.EdgeAwards)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BadgeMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case badge.EdgeAwards:
		ids := make([]ent.Value, 0, len(m.removedawards))
		for id := range m.removedawards {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BadgeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedawards {
		edges = append(edges, badge.EdgeAwards)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BadgeMutation) EdgeCleared(name string) bool {
	switch name {
	case badge.EdgeAwards:
		return m.clearedawards
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BadgeMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Badge unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BadgeMutation) ResetEdge(name string) error {
	switch name {
	case badge.EdgeAwards:
		m.ResetAwards()
		return nil
	}
	return fmt.Errorf("unknown Badge edge %s", name)
}

// BadgeAwardMutation represents an operation that mutates the BadgeAward nodes in the graph.
type BadgeAwardMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	awarded_at    *time.Time
	clearedFields map[string]struct{}
	child         *uuid.UUID
	clearedchild  bool
	badge         *uuid.UUID
	clearedbadge  bool
	done          bool
	oldValue      func(context.Context) (*BadgeAward, error)
	predicates    []predicate.BadgeAward
}

var _ ent.Mutation = (*BadgeAwardMutation)(nil)

// badgeawardOption allows management of the mutation configuration using functional options.
type badgeawardOption func(*BadgeAwardMutation)

// newBadgeAwardMutation creates new mutation for the BadgeAward entity.
func newBadgeAwardMutation(c config, op Op, opts ...badgeawardOption) *BadgeAwardMutation {
	m := &BadgeAwardMutation{
		config:        c,
		op:            op,
		typ:           TypeBadgeAward,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBadgeAwardID sets the ID field of the mutation.
func withBadgeAwardID(id uuid.UUID) badgeawardOption {
	return func(m *BadgeAwardMutation) {
		var (
			err   error
			once  sync.Once
			value *BadgeAward
		)
		m.oldValue = func(ctx context.Context) (*BadgeAward, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BadgeAward.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBadgeAward sets the old BadgeAward of the mutation.
func withBadgeAward(node *BadgeAward) badgeawardOption {
	return func(m *BadgeAwardMutation) {
		m.oldValue = func(context.Context) (*BadgeAward, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BadgeAwardMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BadgeAwardMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BadgeAward entities.
func (m *BadgeAwardMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BadgeAwardMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BadgeAwardMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BadgeAward.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChildID sets the "child_id" field.
func (m *BadgeAwardMutation) SetChildID(u uuid.UUID) {
	m.child = &u
}

// ChildID returns the value of the "child_id" field in the mutation.
func (m *BadgeAwardMutation) ChildID() (r uuid.UUID, exists bool) {
	v := m.child
	if v == nil {
		return
	}
	return *v, true
}

// OldChildID returns the old "child_id" field's value of the BadgeAward entity.
// If the BadgeAward object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeAwardMutation) OldChildID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChildID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChildID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChildID: %w", err)
	}
	return oldValue.ChildID, nil
}

// ResetChildID resets all changes to the "child_id" field.
func (m *BadgeAwardMutation) ResetChildID() {
	m.child = nil
}

// SetBadgeID sets the "badge_id" field.
func (m *BadgeAwardMutation) SetBadgeID(u uuid.UUID) {
	m.badge = &u
}

// BadgeID returns the value of the "badge_id" field in the mutation.
func (m *BadgeAwardMutation) BadgeID() (r uuid.UUID, exists bool) {
	v := m.badge
	if v == nil {
		return
	}
	return *v, true
}

// OldBadgeID returns the old "badge_id" field's value of the BadgeAward entity.
// If the BadgeAward object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeAwardMutation) OldBadgeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBadgeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBadgeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBadgeID: %w", err)
	}
	return oldValue.BadgeID, nil
}

// ResetBadgeID resets all changes to the "badge_id" field.
func (m *BadgeAwardMutation) ResetBadgeID() {
	m.badge = nil
}

// SetAwardedAt sets the "awarded_at" field.
func (m *BadgeAwardMutation) SetAwardedAt(t time.Time) {
	m.awarded_at = &t
}

// AwardedAt returns the value of the "awarded_at" field in the mutation.
func (m *BadgeAwardMutation) AwardedAt() (r time.Time, exists bool) {
	v := m.awarded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAwardedAt returns the old "awarded_at" field's value of the BadgeAward entity.
// If the BadgeAward object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeAwardMutation) OldAwardedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAwardedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAwardedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAwardedAt: %w", err)
	}
	return oldValue.AwardedAt, nil
}

// ResetAwardedAt resets all changes to the "awarded_at" field.
func (m *BadgeAwardMutation) ResetAwardedAt() {
	m.awarded_at = nil
}

// ClearChild clears the "child" edge to the Child entity.
func (m *BadgeAwardMutation) ClearChild() {
	m.clearedchild = true
	m.clearedFields[badgeaward.FieldChildID] = struct{}{}
}

// ChildCleared reports if the "child" edge to the Child entity was cleared.
func (m *BadgeAwardMutation) ChildCleared() bool {
	return m.clearedchild
}

// ChildIDs returns the "child" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChildID instead. It exists only for internal usage by the builders.
func (m *BadgeAwardMutation) ChildIDs() (ids []uuid.UUID) {
	if id := m.child; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChild resets all changes to the "child" edge.
func (m *BadgeAwardMutation) ResetChild() {
	m.child = nil
	m.clearedchild = false
}

// ClearBadge clears the "badge" edge to the Badge entity.
func (m *BadgeAwardMutation) ClearBadge() {
	m.clearedbadge = true
	m.clearedFields[badgeaward.FieldBadgeID] = struct{}{}
}

// BadgeCleared reports if the "badge" edge to the Badge entity was cleared.
func (m *BadgeAwardMutation) BadgeCleared() bool {
	return m.clearedbadge
}

// BadgeIDs returns the "badge" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BadgeID instead. It exists only for internal usage by the builders.
func (m *BadgeAwardMutation) BadgeIDs() (ids []uuid.UUID) {
	if id := m.badge; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBadge resets all changes to the "badge" edge.
func (m *BadgeAwardMutation) ResetBadge() {
	m.badge = nil
	m.clearedbadge = false
}

// Where appends a list predicates to the BadgeAwardMutation builder.
func (m *BadgeAwardMutation) Where(ps ...predicate.BadgeAward) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BadgeAwardMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BadgeAwardMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BadgeAward, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BadgeAwardMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BadgeAwardMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BadgeAward).
func (m *BadgeAwardMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BadgeAwardMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.child != nil {
		fields = append(fields, badgeaward.FieldChildID)
	}
	if m.badge != nil {
		fields = append(fields, badgeaward.FieldBadgeID)
	}
	if m.awarded_at != nil {
		fields = append(fields, badgeaward.FieldAwardedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BadgeAwardMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case badgeaward.FieldChildID:
		return m.ChildID()
	case badgeaward.FieldBadgeID:
		return m.BadgeID()
	case badgeaward.FieldAwardedAt:
		return m.AwardedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BadgeAwardMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case badgeaward.FieldChildID:
		return m.OldChildID(ctx)
	case badgeaward.FieldBadgeID:
		return m.OldBadgeID(ctx)
	case badgeaward.FieldAwardedAt:
		return m.OldAwardedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BadgeAward field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BadgeAwardMutation) SetField(name string, value ent.Value) error {
	switch name {
	case badgeaward.FieldChildID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChildID(v)
		return nil
	case badgeaward.FieldBadgeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBadgeID(v)
		return nil
	case badgeaward.FieldAwardedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAwardedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BadgeAward field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BadgeAwardMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BadgeAwardMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BadgeAwardMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown BadgeAward numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BadgeAwardMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BadgeAwardMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BadgeAwardMutation) ClearField(name string) error {
	return fmt.Errorf("unknown BadgeAward nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BadgeAwardMutation) ResetField(name string) error {
	switch name {
	case badgeaward.FieldChildID:
		m.ResetChildID()
		return nil
	case badgeaward.FieldBadgeID:
		m.ResetBadgeID()
		return nil
	case badgeaward.FieldAwardedAt:
		m.ResetAwardedAt()
		return nil
	}
	return fmt.Errorf("unknown BadgeAward field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BadgeAwardMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.child != nil {
		edges = append(edges, badgeaward.EdgeChild)
	}
	if m.badge != nil {
		edges = append(edges, badgeaward.EdgeBadge)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BadgeAwardMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case badgeaward.EdgeChild:
		if id := m.child; id != nil {
			return []ent.Value{*id}
		}
	case badgeaward.EdgeBadge:
		if id := m.badge; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BadgeAwardMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BadgeAwardMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BadgeAwardMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedchild {
		edges = append(edges, badgeaward.EdgeChild)
	}
	if m.clearedbadge {
		edges = append(edges, badgeaward.EdgeBadge)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BadgeAwardMutation) EdgeCleared(name string) bool {
	switch name {
	case badgeaward.EdgeChild:
		return m.clearedchild
	case badgeaward.EdgeBadge:
		return m.clearedbadge
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BadgeAwardMutation) ClearEdge(name string) error {
	switch name {
	case badgeaward.EdgeChild:
		m.ClearChild()
		return nil
	case badgeaward.EdgeBadge:
		m.ClearBadge()
		return nil
	}
	return fmt.Errorf("unknown BadgeAward unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BadgeAwardMutation) ResetEdge(name string) error {
	switch name {
	case badgeaward.EdgeChild:
		m.ResetChild()
		return nil
	case badgeaward.EdgeBadge:
		m.ResetBadge()
		return nil
	}
	return fmt.Errorf("unknown BadgeAward edge %s", name)
}

// ChildMutation represents an operation that mutates the Child nodes in the graph.
type ChildMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	created_at            *time.Time
	updated_at            *time.Time
	expression_score      *float64
	addexpression_score   *float64
	logic_score           *float64
	addlogic_score        *float64
	exploration_score     *float64
	addexploration_score  *float64
	creativity_score      *float64
	addcreativity_score   *float64
	habit_score           *float64
	addhabit_score        *float64
	nickname              *string
	grade                 *string
	interests             *[]string
	appendinterests       []string
	avatar_url            *string
	level                 *int
	addlevel              *int
	xp                    *int
	addxp                 *int
	streak                *int
	addstreak             *int
	last_active_on        *time.Time
	global_title          *string
	clearedFields         map[string]struct{}
	parent                *uuid.UUID
	clearedparent         bool
	assessments           map[uuid.UUID]struct{}
	removedassessments    map[uuid.UUID]struct{}
	clearedassessments    bool
	task_records          map[uuid.UUID]struct{}
	removedtask_records   map[uuid.UUID]struct{}
	clearedtask_records   bool
	badge_awards          map[uuid.UUID]struct{}
	removedbadge_awards   map[uuid.UUID]struct{}
	clearedbadge_awards   bool
	contributions         map[uuid.UUID]struct{}
	removedcontributions  map[uuid.UUID]struct{}
	clearedcontributions  bool
	weekly_reports        map[uuid.UUID]struct{}
	removedweekly_reports map[uuid.UUID]struct{}
	clearedweekly_reports bool
	growth_records        map[uuid.UUID]struct{}
	removedgrowth_records map[uuid.UUID]struct{}
	clearedgrowth_records bool
	works                 map[uuid.UUID]struct{}
	removedworks          map[uuid.UUID]struct{}
	clearedworks          bool
	coach_sessions        map[uuid.UUID]struct{}
	removedcoach_sessions map[uuid.UUID]struct{}
	clearedcoach_sessions bool
	done                  bool
	oldValue              func(context.Context) (*Child, error)
	predicates            []predicate.Child
}

var _ ent.Mutation = (*ChildMutation)(nil)

// childOption allows management of the mutation configuration using functional options.
type childOption func(*ChildMutation)

// newChildMutation creates new mutation for the Child entity.
func newChildMutation(c config, op Op, opts ...childOption) *ChildMutation {
	m := &ChildMutation{
		config:        c,
		op:            op,
		typ:           TypeChild,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChildID sets the ID field of the mutation.
func withChildID(id uuid.UUID) childOption {
	return func(m *ChildMutation) {
		var (
			err   error
			once  sync.Once
			value *Child
		)
		m.oldValue = func(ctx context.Context) (*Child, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Child.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChild sets the old Child of the mutation.
func withChild(node *Child) childOption {
	return func(m *ChildMutation) {
		m.oldValue = func(context.Context) (*Child, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChildMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChildMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Child entities.
func (m *ChildMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChildMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChildMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Child.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ChildMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChildMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Child entity.
// If the Child object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChildMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChildMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ChildMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ChildMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Child entity.
// If the Child object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChildMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ChildMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetExpressionScore sets the "expression_score" field.
func (m *ChildMutation) SetExpressionScore(f float64) {
	m.expression_score = &f
	m.addexpression_score = nil
}

// ExpressionScore returns the value of the "expression_score" field in the mutation.
func (m *ChildMutation) ExpressionScore() (r float64, exists bool) {
	v := m.expression_score
	if v == nil {
		return
	}
	return *v, true
}

// OldExpressionScore returns the old "expression_score" field's value of the Child entity.
// If the Child object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChildMutation) OldExpressionScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpressionScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpressionScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpressionScore: %w", err)
	}
	return oldValue.ExpressionScore, nil
}

// AddExpressionScore adds f to the "expression_score" field.
func (m *ChildMutation) AddExpressionScore(f float64) {
	if m.addexpression_score != nil {
		*m.addexpression_score += f
	} else {
		m.addexpression_score = &f
	}
}

// AddedExpressionScore returns the value that was added to the "expression_score" field in this mutation.
func (m *ChildMutation) AddedExpressionScore() (r float64, exists bool) {
	v := m.addexpression_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetExpressionScore resets all changes to the "expression_score" field.
func (m *ChildMutation) ResetExpressionScore() {
	m.expression_score = nil
	m.addexpression_score = nil
}

// SetLogicScore sets the "logic_score" field.
func (m *ChildMutation) SetLogicScore(f float64) {
	m.logic_score = &f
	m.addlogic_score = nil
}

// LogicScore returns the value of the "logic_score" field in the mutation.
func (m *ChildMutation) LogicScore() (r float64, exists bool) {
	v := m.logic_score
	if v == nil {
		return
	}
	return *v, true
}

// OldLogicScore returns the old "logic_score" field's value of the Child entity.
// If the Child object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChildMutation) OldLogicScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLogicScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLogicScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLogicScore: %w", err)
	}
	return oldValue.LogicScore, nil
}

// AddLogicScore adds f to the "logic_score" field.
func (m *ChildMutation) AddLogicScore(f float64) {
	if m.addlogic_score != nil {
		*m.addlogic_score += f
	} else {
		m.addlogic_score = &f
	}
}

// AddedLogicScore returns the value that was added to the "logic_score" field in this mutation.
func (m *ChildMutation) AddedLogicScore() (r float64, exists bool) {
	v := m.addlogic_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetLogicScore resets all changes to the "logic_score" field.
func (m *ChildMutation) ResetLogicScore() {
	m.logic_score = nil
	m.addlogic_score = nil
}

// SetExplorationScore sets the "exploration_score" field.
func (m *ChildMutation) SetExplorationScore(f float64) {
	m.exploration_score = &f
	m.addexploration_score = nil
}

// ExplorationScore returns the value of the "exploration_score" field in the mutation.
func (m *ChildMutation) ExplorationScore() (r float64, exists bool) {
	v := m.exploration_score
	if v == nil {
		return
	}
	return *v, true
}

// OldExplorationScore returns the old "exploration_score" field's value of the Child entity.
// If the Child object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChildMutation) OldExplorationScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExplorationScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExplorationScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExplorationScore: %w", err)
	}
	return oldValue.ExplorationScore, nil
}

// AddExplorationScore adds f to the "exploration_score" field.
func (m *ChildMutation) AddExplorationScore(f float64) {
	if m.addexploration_score != nil {
		*m.addexploration_score += f
	} else {
		m.addexploration_score = &f
	}
}

// AddedExplorationScore returns the value that was added to the "exploration_score" field in this mutation.
func (m *ChildMutation) AddedExplorationScore() (r float64, exists bool) {
	v := m.addexploration_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetExplorationScore resets all changes to the "exploration_score" field.
func (m *ChildMutation) ResetExplorationScore() {
	m.exploration_score = nil
	m.addexploration_score = nil
}

// SetCreativityScore sets the "creativity_score" field.
func (m *ChildMutation) SetCreativityScore(f float64) {
	m.creativity_score = &f
	m.addcreativity_score = nil
}

// CreativityScore returns the value of the "creativity_score" field in the mutation.
func (m *ChildMutation) CreativityScore() (r float64, exists bool) {
	v := m.creativity_score
	if v == nil {
		return
	}
	return *v, true
}

// OldCreativityScore returns the old "creativity_score" field's value of the Child entity.
// If the Child object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChildMutation) OldCreativityScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreativityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreativityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreativityScore: %w", err)
	}
	return oldValue.CreativityScore, nil
}

// AddCreativityScore adds f to the "creativity_score" field.
func (m *ChildMutation) AddCreativityScore(f float64) {
	if m.addcreativity_score != nil {
		*m.addcreativity_score += f
	} else {
		m.addcreativity_score = &f
	}
}

// AddedCreativityScore returns the value that was added to the "creativity_score" field in this mutation.
func (m *ChildMutation) AddedCreativityScore() (r float64, exists bool) {
	v := m.addcreativity_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreativityScore resets all changes to the "creativity_score" field.
func (m *ChildMutation) ResetCreativityScore() {
	m.creativity_score = nil
	m.addcreativity_score = nil
}

// SetHabitScore sets the "habit_score" field.
func (m *ChildMutation) SetHabitScore(f float64) {
	m.habit_score = &f
	m.addhabit_score = nil
}

// HabitScore returns the value of the "habit_score" field in the mutation.
func (m *ChildMutation) HabitScore() (r float64, exists bool) {
	v := m.habit_score
	if v == nil {
		return
	}
	return *v, true
}

// OldHabitScore returns the old "habit_score" field's value of the Child entity.
// If the Child object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChildMutation) OldHabitScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHabitScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHabitScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHabitScore: %w", err)
	}
	return oldValue.HabitScore, nil
}

// AddHabitScore adds f to the "habit_score" field.
func (m *ChildMutation) AddHabitScore(f float64) {
	if m.addhabit_score != nil {
		*m.addhabit_score += f
	} else {
		m.addhabit_score = &f
	}
}

// AddedHabitScore returns the value that was added to the "habit_score" field in this mutation.
func (m *ChildMutation) AddedHabitScore() (r float64, exists bool) {
	v := m.addhabit_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetHabitScore resets all changes to the "habit_score" field.
func (m *ChildMutation) ResetHabitScore() {
	m.habit_score = nil
	m.addhabit_score = nil
}

// SetUserID sets the "user_id" field.
func (m *ChildMutation) SetUserID(u uuid.UUID) {
	m.parent = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ChildMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.parent
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Child entity.
// If the Child object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChildMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ChildMutation) ResetUserID() {
	m.parent = nil
}

// SetNickname sets the "nickname" field.
func (m *ChildMutation) SetNickname(s string) {
	m.nickname = &s
}

// Nickname returns the value of the "nickname" field in the mutation.
func (m *ChildMutation) Nickname() (r string, exists bool) {
	v := m.nickname
	if v == nil {
		return
	}
	return *v, true
}

// OldNickname returns the old "nickname" field's value of the Child entity.
// If the Child object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChildMutation) OldNickname(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNickname is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNickname requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNickname: %w", err)
	}
	return oldValue.Nickname, nil
}

// ResetNickname resets all changes to the "nickname" field.
func (m *ChildMutation) ResetNickname() {
	m.nickname = nil
}

// SetGrade sets the "grade" field.
func (m *ChildMutation) SetGrade(s string) {
	m.grade = &s
}

// Grade returns the value of the "grade" field in the mutation.
func (m *ChildMutation) Grade() (r string, exists bool) {
	v := m.grade
	if v == nil {
		return
	}
	return *v, true
}

// OldGrade returns the old "grade" field's value of the Child entity.
// If the Child object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChildMutation) OldGrade(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrade: %w", err)
	}
	return oldValue.Grade, nil
}

// ResetGrade resets all changes to the "grade" field.
func (m *ChildMutation) ResetGrade() {
	m.grade = nil
}

// SetInterests sets the "interests" field.
func (m *ChildMutation) SetInterests(s []string) {
	m.interests = &s
	m.appendinterests = nil
}

// Interests returns the value of the "interests" field in the mutation.
func (m *ChildMutation) Interests() (r []string, exists bool) {
	v := m.interests
	if v == nil {
		return
	}
	return *v, true
}

// OldInterests returns the old "interests" field's value of the Child entity.
// If the Child object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChildMutation) OldInterests(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInterests is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInterests requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInterests: %w", err)
	}
	return oldValue.Interests, nil
}

// AppendInterests adds s to the "interests" field.
func (m *ChildMutation) AppendInterests(s []string) {
	m.appendinterests = append(m.appendinterests, s...)
}

// AppendedInterests returns the list of values that were appended to the "interests" field in this mutation.
func (m *ChildMutation) AppendedInterests() ([]string, bool) {
	if len(m.appendinterests) == 0 {
		return nil, false
	}
	return m.appendinterests, true
}

// ClearInterests clears the value of the "interests" field.
func (m *ChildMutation) ClearInterests() {
	m.interests = nil
	m.appendinterests = nil
	m.clearedFields[child.FieldInterests] = struct{}{}
}

// InterestsCleared returns if the "interests" field was cleared in this mutation.
func (m *ChildMutation) InterestsCleared() bool {
	_, ok := m.clearedFields[child.FieldInterests]
	return ok
}

// ResetInterests resets all changes to the "interests" field.
func (m *ChildMutation) ResetInterests() {
	m.interests = nil
	m.appendinterests = nil
	delete(m.clearedFields, child.FieldInterests)
}

// SetAvatarURL sets the "avatar_url" field.
func (m *ChildMutation) SetAvatarURL(s string) {
	m.avatar_url = &s
}

// AvatarURL returns the value of the "avatar_url" field in the mutation.
func (m *ChildMutation) AvatarURL() (r string, exists bool) {
	v := m.avatar_url
	if v == nil {
		return
	}
	return *v, true
}

// OldAvatarURL returns the old "avatar_url" field's value of the Child entity.
// If the Child object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChildMutation) OldAvatarURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvatarURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvatarURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvatarURL: %w", err)
	}
	return oldValue.AvatarURL, nil
}

// ResetAvatarURL resets all changes to the "avatar_url" field.
func (m *ChildMutation) ResetAvatarURL() {
	m.avatar_url = nil
}

// SetLevel sets the "level" field.
func (m *ChildMutation) SetLevel(i int) {
	m.level = &i
	m.addlevel = nil
}

// Level returns the value of the "level" field in the mutation.
func (m *ChildMutation) Level() (r int, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the Child entity.
// If the Child object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChildMutation) OldLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// AddLevel adds i to the "level" field.
func (m *ChildMutation) AddLevel(i int) {
	if m.addlevel != nil {
		*m.addlevel += i
	} else {
		m.addlevel = &i
	}
}

// AddedLevel returns the value that was added to the "level" field in this mutation.
func (m *ChildMutation) AddedLevel() (r int, exists bool) {
	v := m.addlevel
	if v == nil {
		return
	}
	return *v, true
}

// ResetLevel resets all changes to the "level" field.
func (m *ChildMutation) ResetLevel() {
	m.level = nil
	m.addlevel = nil
}

// SetXp sets the "xp" field.
func (m *ChildMutation) SetXp(i int) {
	m.xp = &i
	m.addxp = nil
}

// Xp returns the value of the "xp" field in the mutation.
func (m *ChildMutation) Xp() (r int, exists bool) {
	v := m.xp
	if v == nil {
		return
	}
	return *v, true
}

// OldXp returns the old "xp" field's value of the Child entity.
// If the Child object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChildMutation) OldXp(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldXp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldXp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldXp: %w", err)
	}
	return oldValue.Xp, nil
}

// AddXp adds i to the "xp" field.
func (m *ChildMutation) AddXp(i int) {
	if m.addxp != nil {
		*m.addxp += i
	} else {
		m.addxp = &i
	}
}

// AddedXp returns the value that was added to the "xp" field in this mutation.
func (m *ChildMutation) AddedXp() (r int, exists bool) {
	v := m.addxp
	if v == nil {
		return
	}
	return *v, true
}

// ResetXp resets all changes to the "xp" field.
func (m *ChildMutation) ResetXp() {
	m.xp = nil
	m.addxp = nil
}

// SetStreak sets the "streak" field.
func (m *ChildMutation) SetStreak(i int) {
	m.streak = &i
	m.addstreak = nil
}

// Streak returns the value of the "streak" field in the mutation.
func (m *ChildMutation) Streak() (r int, exists bool) {
	v := m.streak
	if v == nil {
		return
	}
	return *v, true
}

// OldStreak returns the old "streak" field's value of the Child entity.
// If the Child object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChildMutation) OldStreak(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreak is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreak requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreak: %w", err)
	}
	return oldValue.Streak, nil
}

// AddStreak adds i to the "streak" field.
func (m *ChildMutation) AddStreak(i int) {
	if m.addstreak != nil {
		*m.addstreak += i
	} else {
		m.addstreak = &i
	}
}

// AddedStreak returns the value that was added to the "streak" field in this mutation.
func (m *ChildMutation) AddedStreak() (r int, exists bool) {
	v := m.addstreak
	if v == nil {
		return
	}
	return *v, true
}

// ResetStreak resets all changes to the "streak" field.
func (m *ChildMutation) ResetStreak() {
	m.streak = nil
	m.addstreak = nil
}

// SetLastActiveOn sets the "last_active_on" field.
func (m *ChildMutation) SetLastActiveOn(t time.Time) {
	m.last_active_on = &t
}

// LastActiveOn returns the value of the "last_active_on" field in the mutation.
func (m *ChildMutation) LastActiveOn() (r time.Time, exists bool) {
	v := m.last_active_on
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActiveOn returns the old "last_active_on" field's value of the Child entity.
// If the Child object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChildMutation) OldLastActiveOn(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActiveOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActiveOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActiveOn: %w", err)
	}
	return oldValue.LastActiveOn, nil
}

// ClearLastActiveOn clears the value of the "last_active_on" field.
func (m *ChildMutation) ClearLastActiveOn() {
	m.last_active_on = nil
	m.clearedFields[child.FieldLastActiveOn] = struct{}{}
}

// LastActiveOnCleared returns if the "last_active_on" field was cleared in this mutation.
func (m *ChildMutation) LastActiveOnCleared() bool {
	_, ok := m.clearedFields[child.FieldLastActiveOn]
	return ok
}

// ResetLastActiveOn resets all changes to the "last_active_on" field.
func (m *ChildMutation) ResetLastActiveOn() {
	m.last_active_on = nil
	delete(m.clearedFields, child.FieldLastActiveOn)
}

// SetGlobalTitle sets the "global_title" field.
func (m *ChildMutation) SetGlobalTitle(s string) {
	m.global_title = &s
}

// GlobalTitle returns the value of the "global_title" field in the mutation.
func (m *ChildMutation) GlobalTitle() (r string, exists bool) {
	v := m.global_title
	if v == nil {
		return
	}
	return *v, true
}

// OldGlobalTitle returns the old "global_title" field's value of the Child entity.
// If the Child object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChildMutation) OldGlobalTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGlobalTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGlobalTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGlobalTitle: %w", err)
	}
	return oldValue.GlobalTitle, nil
}

// ResetGlobalTitle resets all changes to the "global_title" field.
func (m *ChildMutation) ResetGlobalTitle() {
	m.global_title = nil
}

// SetParentID sets the "parent" edge to the User entity by id.
func (m *ChildMutation) SetParentID(id uuid.UUID) {
	m.parent = &id
}

// ClearParent clears the "parent" edge to the User entity.
func (m *ChildMutation) ClearParent() {
	m.clearedparent = true
	m.clearedFields[child.FieldUserID] = struct{}{}
}

// ParentCleared reports if the "parent" edge to the User entity was cleared.
func (m *ChildMutation) ParentCleared() bool {
	return m.clearedparent
}

// ParentID returns the "parent" edge ID in the mutation.
func (m *ChildMutation) ParentID() (id uuid.UUID, exists bool) {
	if m.parent != nil {
		return *m.parent, true
	}
	return
}

// ParentIDs returns the "parent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ParentID instead. It exists only for internal usage by the builders.
func (m *ChildMutation) ParentIDs() (ids []uuid.UUID) {
	if id := m.parent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParent resets all changes to the "parent" edge.
func (m *ChildMutation) ResetParent() {
	m.parent = nil
	m.clearedparent = false
}

// AddAssessmentIDs adds the "assessments" edge to the Assessment entity by ids.
func (m *ChildMutation) AddAssessmentIDs(ids ...uuid.UUID) {
	if m.assessments == nil {
		m.assessments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.assessments[ids[i]] = struct{}{}
	}
}

// ClearAssessments clears the "assessments" edge to the Assessment entity.
func (m *ChildMutation) ClearAssessments() {
	m.clearedassessments = true
}

// AssessmentsCleared reports if the "assessments" edge to the Assessment entity was cleared.
func (m *ChildMutation) AssessmentsCleared() bool {
	return m.clearedassessments
}

// RemoveAssessmentIDs removes the "assessments" edge to the Assessment entity by IDs.
func (m *ChildMutation) RemoveAssessmentIDs(ids ...uuid.UUID) {
	if m.removedassessments == nil {
		m.removedassessments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.assessments, ids[i])
		m.removedassessments[ids[i]] = struct{}{}
	}
}

// RemovedAssessments returns the removed IDs of the "assessments" edge to the Assessment entity.
func (m *ChildMutation) RemovedAssessmentsIDs() (ids []uuid.UUID) {
	for id := range m.removedassessments {
		ids = append(ids, id)
	}
	return
}

// AssessmentsIDs returns the "assessments" edge IDs in the mutation.
func (m *ChildMutation) AssessmentsIDs() (ids []uuid.UUID) {
	for id := range m.assessments {
		ids = append(ids, id)
	}
	return
}

// ResetAssessments resets all changes to the "assessments" edge.
func (m *ChildMutation) ResetAssessments() {
	m.assessments = nil
	m.clearedassessments = false
	m.removedassessments = nil
}

// AddTaskRecordIDs adds the "task_records" edge to the TaskRecord entity by ids.
func (m *ChildMutation) AddTaskRecordIDs(ids ...uuid.UUID) {
	if m.task_records == nil {
		m.task_records = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.task_records[ids[i]] = struct{}{}
	}
}

// ClearTaskRecords clears the "task_records" edge to the TaskRecord entity.
func (m *ChildMutation) ClearTaskRecords() {
	m.clearedtask_records = true
}

// TaskRecordsCleared reports if the "task_records" edge to the TaskRecord entity was cleared.
func (m *ChildMutation) TaskRecordsCleared() bool {
	return m.clearedtask_records
}

// RemoveTaskRecordIDs removes the "task_records" edge to the TaskRecord entity by IDs.
func (m *ChildMutation) RemoveTaskRecordIDs(ids ...uuid.UUID) {
	if m.removedtask_records == nil {
		m.removedtask_records = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.task_records, ids[i])
		m.removedtask_records[ids[i]] = struct{}{}
	}
}

// RemovedTaskRecords returns the removed IDs of the "task_records" edge to the TaskRecord entity.
func (m *ChildMutation) RemovedTaskRecordsIDs() (ids []uuid.UUID) {
	for id := range m.removedtask_records {
		ids = append(ids, id)
	}
	return
}

// TaskRecordsIDs returns the "task_records" edge IDs in the mutation.
func (m *ChildMutation) TaskRecordsIDs() (ids []uuid.UUID) {
	for id := range m.task_records {
		ids = append(ids, id)
	}
	return
}

// ResetTaskRecords resets all changes to the "task_records" edge.
func (m *ChildMutation) ResetTaskRecords() {
	m.task_records = nil
	m.clearedtask_records = false
	m.removedtask_records = nil
}

// AddBadgeAwardIDs adds the "badge_awards" edge to the BadgeAward entity by ids.
func (m *ChildMutation) AddBadgeAwardIDs(ids ...uuid.UUID) {
	if m.badge_awards == nil {
		m.badge_awards = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.badge_awards[ids[i]] = struct{}{}
	}
}

// ClearBadgeAwards clears the "badge_awards" edge to the BadgeAward entity.
func (m *ChildMutation) ClearBadgeAwards() {
	m.clearedbadge_awards = true
}

// BadgeAwardsCleared reports if the "badge_awards" edge to the BadgeAward entity was cleared.
func (m *ChildMutation) BadgeAwardsCleared() bool {
	return m.clearedbadge_awards
}

// RemoveBadgeAwardIDs removes the "badge_awards" edge to the BadgeAward entity by IDs.
func (m *ChildMutation) RemoveBadgeAwardIDs(ids ...uuid.UUID) {
	if m.removedbadge_awards == nil {
		m.removedbadge_awards = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.badge_awards, ids[i])
		m.removedbadge_awards[ids[i]] = struct{}{}
	}
}

// RemovedBadgeAwards returns the removed IDs of the "badge_awards" edge to the BadgeAward entity.
func (m *ChildMutation) RemovedBadgeAwardsIDs() (ids []uuid.UUID) {
	for id := range m.removedbadge_awards {
		ids = append(ids, id)
	}
	return
}

// BadgeAwardsIDs returns the "badge_awards" edge IDs in the mutation.
func (m *ChildMutation) BadgeAwardsIDs() (ids []uuid.UUID) {
	for id := range m.badge_awards {
		ids = append(ids, id)
	}
	return
}

// ResetBadgeAwards resets all changes to the "badge_awards" edge.
func (m *ChildMutation) ResetBadgeAwards() {
	m.badge_awards = nil
	m.clearedbadge_awards = false
	m.removedbadge_awards = nil
}

// AddContributionIDs adds the "contributions" edge to the CoCreationContribution entity by ids.
func (m *ChildMutation) AddContributionIDs(ids ...uuid.UUID) {
	if m.contributions == nil {
		m.contributions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.contributions[ids[i]] = struct{}{}
	}
}

// ClearContributions clears the "contributions" edge to the CoCreationContribution entity.
func (m *ChildMutation) ClearContributions() {
	m.clearedcontributions = true
}

// ContributionsCleared reports if the "contributions" edge to the CoCreationContribution entity was cleared.
func (m *ChildMutation) ContributionsCleared() bool {
	return m.clearedcontributions
}

// RemoveContributionIDs removes the "contributions" edge to the CoCreationContribution entity by IDs.
func (m *ChildMutation) RemoveContributionIDs(ids ...uuid.UUID) {
	if m.removedcontributions == nil {
		m.removedcontributions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.contributions, ids[i])
		m.removedcontributions[ids[i]] = struct{}{}
	}
}

// RemovedContributions returns the removed IDs of the "contributions" edge to the CoCreationContribution entity.
func (m *ChildMutation) RemovedContributionsIDs() (ids []uuid.UUID) {
	for id := range m.removedcontributions {
		ids = append(ids, id)
	}
	return
}

// ContributionsIDs returns the "contributions" edge IDs in the mutation.
func (m *ChildMutation) ContributionsIDs() (ids []uuid.UUID) {
	for id := range m.contributions {
		ids = append(ids, id)
	}
	return
}

// ResetContributions resets all changes to the "contributions" edge.
func (m *ChildMutation) ResetContributions() {
	m.contributions = nil
	m.clearedcontributions = false
	m.removedcontributions = nil
}

// AddWeeklyReportIDs adds the "weekly_reports" edge to the WeeklyReport entity by ids.
func (m *ChildMutation) AddWeeklyReportIDs(ids ...uuid.UUID) {
	if m.weekly_reports == nil {
		m.weekly_reports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.weekly_reports[ids[i]] = struct{}{}
	}
}

// ClearWeeklyReports clears the "weekly_reports" edge to the WeeklyReport entity.
func (m *ChildMutation) ClearWeeklyReports() {
	m.clearedweekly_reports = true
}

// WeeklyReportsCleared reports if the "weekly_reports" edge to the WeeklyReport entity was cleared.
func (m *ChildMutation) WeeklyReportsCleared() bool {
	return m.clearedweekly_reports
}

// RemoveWeeklyReportIDs removes the "weekly_reports" edge to the WeeklyReport entity by IDs.
func (m *ChildMutation) RemoveWeeklyReportIDs(ids ...uuid.UUID) {
	if m.removedweekly_reports == nil {
		m.removedweekly_reports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.weekly_reports, ids[i])
		m.removedweekly_reports[ids[i]] = struct{}{}
	}
}

// RemovedWeeklyReports returns the removed IDs of the "weekly_reports" edge to the WeeklyReport entity.
func (m *ChildMutation) RemovedWeeklyReportsIDs() (ids []uuid.UUID) {
	for id := range m.removedweekly_reports {
		ids = append(ids, id)
	}
	return
}

// WeeklyReportsIDs returns the "weekly_reports" edge IDs in the mutation.
func (m *ChildMutation) WeeklyReportsIDs() (ids []uuid.UUID) {
	for id := range m.weekly_reports {
		ids = append(ids, id)
	}
	return
}

// ResetWeeklyReports resets all changes to the "weekly_reports" edge.
func (m *ChildMutation) ResetWeeklyReports() {
	m.weekly_reports = nil
	m.clearedweekly_reports = false
	m.removedweekly_reports = nil
}

// AddGrowthRecordIDs adds the "growth_records" edge to the GrowthRecord entity by ids.
func (m *ChildMutation) AddGrowthRecordIDs(ids ...uuid.UUID) {
	if m.growth_records == nil {
		m.growth_records = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.growth_records[ids[i]] = struct{}{}
	}
}

// ClearGrowthRecords clears the "growth_records" edge to the GrowthRecord entity.
func (m *ChildMutation) ClearGrowthRecords() {
	m.clearedgrowth_records = true
}

// GrowthRecordsCleared reports if the "growth_records" edge to the GrowthRecord entity was cleared.
func (m *ChildMutation) GrowthRecordsCleared() bool {
	return m.clearedgrowth_records
}

// RemoveGrowthRecordIDs removes the "growth_records" edge to the GrowthRecord entity by IDs.
func (m *ChildMutation) RemoveGrowthRecordIDs(ids ...uuid.UUID) {
	if m.removedgrowth_records == nil {
		m.removedgrowth_records = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.growth_records, ids[i])
		m.removedgrowth_records[ids[i]] = struct{}{}
	}
}

// RemovedGrowthRecords returns the removed IDs of the "growth_records" edge to the GrowthRecord entity.
func (m *ChildMutation) RemovedGrowthRecordsIDs() (ids []uuid.UUID) {
	for id := range m.removedgrowth_records {
		ids = append(ids, id)
	}
	return
}

// GrowthRecordsIDs returns the "growth_records" edge IDs in the mutation.
func (m *ChildMutation) GrowthRecordsIDs() (ids []uuid.UUID) {
	for id := range m.growth_records {
		ids = append(ids, id)
	}
	return
}

// ResetGrowthRecords resets all changes to the "growth_records" edge.
func (m *ChildMutation) ResetGrowthRecords() {
	m.growth_records = nil
	m.clearedgrowth_records = false
	m.removedgrowth_records = nil
}

// AddWorkIDs adds the "works" edge to the Work entity by ids.
func (m *ChildMutation) AddWorkIDs(ids ...uuid.UUID) {
	if m.works == nil {
		m.works = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.works[ids[i]] = struct{}{}
	}
}

// ClearWorks clears the "works" edge to the Work entity.
func (m *ChildMutation) ClearWorks() {
	m.clearedworks = true
}

// WorksCleared reports if the "works" edge to the Work entity was cleared.
func (m *ChildMutation) WorksCleared() bool {
	return m.clearedworks
}

// RemoveWorkIDs removes the "works" edge to the Work entity by IDs.
func (m *ChildMutation) RemoveWorkIDs(ids ...uuid.UUID) {
	if m.removedworks == nil {
		m.removedworks = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.works, ids[i])
		m.removedworks[ids[i]] = struct{}{}
	}
}

// RemovedWorks returns the removed IDs of the "works" edge to the Work entity.
func (m *ChildMutation) RemovedWorksIDs() (ids []uuid.UUID) {
	for id := range m.removedworks {
		ids = append(ids, id)
	}
	return
}

// WorksIDs returns the "works" edge IDs in the mutation.
func (m *ChildMutation) WorksIDs() (ids []uuid.UUID) {
	for id := range m.works {
		ids = append(ids, id)
	}
	return
}

// ResetWorks resets all changes to the "works" edge.
func (m *ChildMutation) ResetWorks() {
	m.works = nil
	m.clearedworks = false
	m.removedworks = nil
}

// AddCoachSessionIDs adds the "coach_sessions" edge to the CoachSession entity by ids.
func (m *ChildMutation) AddCoachSessionIDs(ids ...uuid.UUID) {
	if m.coach_sessions == nil {
		m.coach_sessions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.coach_sessions[ids[i]] = struct{}{}
	}
}

// ClearCoachSessions clears the "coach_sessions" edge to the CoachSession entity.
func (m *ChildMutation) ClearCoachSessions() {
	m.clearedcoach_sessions = true
}

// CoachSessionsCleared reports if the "coach_sessions" edge to the CoachSession entity was cleared.
func (m *ChildMutation) CoachSessionsCleared() bool {
	return m.clearedcoach_sessions
}

// RemoveCoachSessionIDs removes the "coach_sessions" edge to the CoachSession entity by IDs.
func (m *ChildMutation) RemoveCoachSessionIDs(ids ...uuid.UUID) {
	if m.removedcoach_sessions == nil {
		m.removedcoach_sessions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.coach_sessions, ids[i])
		m.removedcoach_sessions[ids[i]] = struct{}{}
	}
}

// RemovedCoachSessions returns the removed IDs of the "coach_sessions" edge to the CoachSession entity.
func (m *ChildMutation) RemovedCoachSessionsIDs() (ids []uuid.UUID) {
	for id := range m.removedcoach_sessions {
		ids = append(ids, id)
	}
	return
}

// CoachSessionsIDs returns the "coach_sessions" edge IDs in the mutation.
func (m *ChildMutation) CoachSessionsIDs() (ids []uuid.UUID) {
	for id := range m.coach_sessions {
		ids = append(ids, id)
	}
	return
}

// ResetCoachSessions resets all changes to the "coach_sessions" edge.
func (m *ChildMutation) ResetCoachSessions() {
	m.coach_sessions = nil
	m.clearedcoach_sessions = false
	m.removedcoach_sessions = nil
}

// Where appends a list predicates to the ChildMutation builder.
func (m *ChildMutation) Where(ps ...predicate.Child) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChildMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChildMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Child, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChildMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChildMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Child).
func (m *ChildMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChildMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.created_at != nil {
		fields = append(fields, child.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, child.FieldUpdatedAt)
	}
	if m.expression_score != nil {
		fields = append(fields, child.FieldExpressionScore)
	}
	if m.logic_score != nil {
		fields = append(fields, child.FieldLogicScore)
	}
	if m.exploration_score != nil {
		fields = append(fields, child.FieldExplorationScore)
	}
	if m.creativity_score != nil {
		fields = append(fields, child.FieldCreativityScore)
	}
	if m.habit_score != nil {
		fields = append(fields, child.FieldHabitScore)
	}
	if m.parent != nil {
		fields = append(fields, child.FieldUserID)
	}
	if m.nickname != nil {
		fields = append(fields, child.FieldNickname)
	}
	if m.grade != nil {
		fields = append(fields, child.FieldGrade)
	}
	if m.interests != nil {
		fields = append(fields, child.FieldInterests)
	}
	if m.avatar_url != nil {
		fields = append(fields, child.FieldAvatarURL)
	}
	if m.level != nil {
		fields = append(fields, child.FieldLevel)
	}
	if m.xp != nil {
		fields = append(fields, child.FieldXp)
	}
	if m.streak != nil {
		fields = append(fields, child.FieldStreak)
	}
	if m.last_active_on != nil {
		fields = append(fields, child.FieldLastActiveOn)
	}
	if m.global_title != nil {
		fields = append(fields, child.FieldGlobalTitle)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChildMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case child.FieldCreatedAt:
		return m.CreatedAt()
	case child.FieldUpdatedAt:
		return m.UpdatedAt()
	case child.FieldExpressionScore:
		return m.ExpressionScore()
	case child.FieldLogicScore:
		return m.LogicScore()
	case child.FieldExplorationScore:
		return m.ExplorationScore()
	case child.FieldCreativityScore:
		return m.CreativityScore()
	case child.FieldHabitScore:
		return m.HabitScore()
	case child.FieldUserID:
		return m.UserID()
	case child.FieldNickname:
		return m.Nickname()
	case child.FieldGrade:
		return m.Grade()
	case child.FieldInterests:
		return m.Interests()
	case child.FieldAvatarURL:
		return m.AvatarURL()
	case child.FieldLevel:
		return m.Level()
	case child.FieldXp:
		return m.Xp()
	case child.FieldStreak:
		return m.Streak()
	case child.FieldLastActiveOn:
		return m.LastActiveOn()
	case child.FieldGlobalTitle:
		return m.GlobalTitle()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChildMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case child.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case child.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case child.FieldExpressionScore:
		return m.OldExpressionScore(ctx)
	case child.FieldLogicScore:
		return m.OldLogicScore(ctx)
	case child.FieldExplorationScore:
		return m.OldExplorationScore(ctx)
	case child.FieldCreativityScore:
		return m.OldCreativityScore(ctx)
	case child.FieldHabitScore:
		return m.OldHabitScore(ctx)
	case child.FieldUserID:
		return m.OldUserID(ctx)
	case child.FieldNickname:
		return m.OldNickname(ctx)
	case child.FieldGrade:
		return m.OldGrade(ctx)
	case child.FieldInterests:
		return m.OldInterests(ctx)
	case child.FieldAvatarURL:
		return m.OldAvatarURL(ctx)
	case child.FieldLevel:
		return m.OldLevel(ctx)
	case child.FieldXp:
		return m.OldXp(ctx)
	case child.FieldStreak:
		return m.OldStreak(ctx)
	case child.FieldLastActiveOn:
		return m.OldLastActiveOn(ctx)
	case child.FieldGlobalTitle:
		return m.OldGlobalTitle(ctx)
	}
	return nil, fmt.Errorf("unknown Child field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChildMutation) SetField(name string, value ent.Value) error {
	switch name {
	case child.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case child.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case child.FieldExpressionScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpressionScore(v)
		return nil
	case child.FieldLogicScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLogicScore(v)
		return nil
	case child.FieldExplorationScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExplorationScore(v)
		return nil
	case child.FieldCreativityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreativityScore(v)
		return nil
	case child.FieldHabitScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHabitScore(v)
		return nil
	case child.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case child.FieldNickname:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNickname(v)
		return nil
	case child.FieldGrade:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrade(v)
		return nil
	case child.FieldInterests:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInterests(v)
		return nil
	case child.FieldAvatarURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvatarURL(v)
		return nil
	case child.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case child.FieldXp:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetXp(v)
		return nil
	case child.FieldStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreak(v)
		return nil
	case child.FieldLastActiveOn:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActiveOn(v)
		return nil
	case child.FieldGlobalTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGlobalTitle(v)
		return nil
	}
	return fmt.Errorf("unknown Child field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChildMutation) AddedFields() []string {
	var fields []string
	if m.addexpression_score != nil {
		fields = append(fields, child.FieldExpressionScore)
	}
	if m.addlogic_score != nil {
		fields = append(fields, child.FieldLogicScore)
	}
	if m.addexploration_score != nil {
		fields = append(fields, child.FieldExplorationScore)
	}
	if m.addcreativity_score != nil {
		fields = append(fields, child.FieldCreativityScore)
	}
	if m.addhabit_score != nil {
		fields = append(fields, child.FieldHabitScore)
	}
	if m.addlevel != nil {
		fields = append(fields, child.FieldLevel)
	}
	if m.addxp != nil {
		fields = append(fields, child.FieldXp)
	}
	if m.addstreak != nil {
		fields = append(fields, child.FieldStreak)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChildMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case child.FieldExpressionScore:
		return m.AddedExpressionScore()
	case child.FieldLogicScore:
		return m.AddedLogicScore()
	case child.FieldExplorationScore:
		return m.AddedExplorationScore()
	case child.FieldCreativityScore:
		return m.AddedCreativityScore()
	case child.FieldHabitScore:
		return m.AddedHabitScore()
	case child.FieldLevel:
		return m.AddedLevel()
	case child.FieldXp:
		return m.AddedXp()
	case child.FieldStreak:
		return m.AddedStreak()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChildMutation) AddField(name string, value ent.Value) error {
	switch name {
	case child.FieldExpressionScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExpressionScore(v)
		return nil
	case child.FieldLogicScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLogicScore(v)
		return nil
	case child.FieldExplorationScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExplorationScore(v)
		return nil
	case child.FieldCreativityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreativityScore(v)
		return nil
	case child.FieldHabitScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHabitScore(v)
		return nil
	case child.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLevel(v)
		return nil
	case child.FieldXp:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddXp(v)
		return nil
	case child.FieldStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStreak(v)
		return nil
	}
	return fmt.Errorf("unknown Child numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChildMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(child.FieldInterests) {
		fields = append(fields, child.FieldInterests)
	}
	if m.FieldCleared(child.FieldLastActiveOn) {
		fields = append(fields, child.FieldLastActiveOn)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChildMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChildMutation) ClearField(name string) error {
	switch name {
	case child.FieldInterests:
		m.ClearInterests()
		return nil
	case child.FieldLastActiveOn:
		m.ClearLastActiveOn()
		return nil
	}
	return fmt.Errorf("unknown Child nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChildMutation) ResetField(name string) error {
	switch name {
	case child.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case child.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case child.FieldExpressionScore:
		m.ResetExpressionScore()
		return nil
	case child.FieldLogicScore:
		m.ResetLogicScore()
		return nil
	case child.FieldExplorationScore:
		m.ResetExplorationScore()
		return nil
	case child.FieldCreativityScore:
		m.ResetCreativityScore()
		return nil
	case child.FieldHabitScore:
		m.ResetHabitScore()
		return nil
	case child.FieldUserID:
		m.ResetUserID()
		return nil
	case child.FieldNickname:
		m.ResetNickname()
		return nil
	case child.FieldGrade:
		m.ResetGrade()
		return nil
	case child.FieldInterests:
		m.ResetInterests()
		return nil
	case child.FieldAvatarURL:
		m.ResetAvatarURL()
		return nil
	case child.FieldLevel:
		m.ResetLevel()
		return nil
	case child.FieldXp:
		m.ResetXp()
		return nil
	case child.FieldStreak:
		m.ResetStreak()
		return nil
	case child.FieldLastActiveOn:
		m.ResetLastActiveOn()
		return nil
	case child.FieldGlobalTitle:
		m.ResetGlobalTitle()
		return nil
	}
	return fmt.Errorf("unknown Child field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChildMutation) AddedEdges() []string {
	edges := make([]string, 0, 9)
	if m.parent != nil {
		edges = append(edges, child.EdgeParent)
	}
	if m.assessments != nil {
		edges = append(edges, child.EdgeAssessments)
	}
	if m.task_records != nil {
		edges = append(edges, child.EdgeTaskRecords)
	}
	if m.badge_awards != nil {
		edges = append(edges, child.EdgeBadgeAwards)
	}
	if m.contributions != nil {
		edges = append(edges, child.EdgeContributions)
	}
	if m.weekly_reports != nil {
		edges = append(edges, child.EdgeWeeklyReports)
	}
	if m.growth_records != nil {
		edges = append(edges, child.EdgeGrowthRecords)
	}
	if m.works != nil {
		edges = append(edges, child.EdgeWorks)
	}
	if m.coach_sessions != nil {
		edges = append(edges, child.EdgeCoachSessions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChildMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case child.EdgeParent:
		if id := m.parent; id != nil {
			return []ent.Value{*id}
		}
	case child.EdgeAssessments:
		ids := make([]ent.Value, 0, len(m.assessments))
		for id := range m.assessments {
			ids = append(ids, id)
		}
		return ids
	case child.EdgeTaskRecords:
		ids := make([]ent.Value, 0, len(m.task_records))
		for id := range m.task_records {
			ids = append(ids, id)
		}
		return ids
	case child.EdgeBadgeAwards:
		ids := make([]ent.Value, 0, len(m.badge_awards))
		for id := range m.badge_awards {
			ids = append(ids, id)
		}
		return ids
	case child.EdgeContributions:
		ids := make([]ent.Value, 0, len(m.contributions))
		for id := range m.contributions {
			ids = append(ids, id)
		}
		return ids
	case child.EdgeWeeklyReports:
		ids := make([]ent.Value, 0, len(m.weekly_reports))
		for id := range m.weekly_reports {
			ids = append(ids, id)
		}
		return ids
	case child.EdgeGrowthRecords:
		ids := make([]ent.Value, 0, len(m.growth_records))
		for id := range m.growth_records {
			ids = append(ids, id)
		}
		return ids
	case child.EdgeWorks:
		ids := make([]ent.Value, 0, len(m.works))
		for id := range m.works {
			ids = append(ids, id)
		}
		return ids
	case child.EdgeCoachSessions:
		ids := make([]ent.Value, 0, len(m.coach_sessions))
		for id := range m.coach_sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChildMutation) RemovedEdges() []string {
	edges := make([]string, 0, 9)
	if m.removedassessments != nil {
		edges = append(edges, child.EdgeAssessments)
	}
	if m.removedtask_records != nil {
		edges = append(edges, child.EdgeTaskRecords)
	}
	if m.removedbadge_awards != nil {
		edges = append(edges, child.EdgeBadgeAwards)
	}
	if m.removedcontributions != nil {
		edges = append(edges, child.EdgeContributions)
	}
	if m.removedweekly_reports != nil {
		edges = append(edges, child.EdgeWeeklyReports)
	}
	if m.removedgrowth_records != nil {
		edges = append(edges, child.EdgeGrowthRecords)
	}
	if m.removedworks != nil {
		edges = append(edges, child.EdgeWorks)
	}
	if m.removedcoach_sessions != nil {
		edges = append(edges, child.EdgeCoachSessions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChildMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case child.EdgeAssessments:
		ids := make([]ent.Value, 0, len(m.removedassessments))
		for id := range m.removedassessments {
			ids = append(ids, id)
		}
		return ids
	case child.EdgeTaskRecords:
		ids := make([]ent.Value, 0, len(m.removedtask_records))
		for id := range m.removedtask_records {
			ids = append(ids, id)
		}
		return ids
	case child.EdgeBadgeAwards:
		ids := make([]ent.Value, 0, len(m.removedbadge_awards))
		for id := range m.removedbadge_awards {
			ids = append(ids, id)
		}
		return ids
	case child.EdgeContributions:
		ids := make([]ent.Value, 0, len(m.removedcontributions))
		for id := range m.removedcontributions {
			ids = append(ids, id)
		}
		return ids
	case child.EdgeWeeklyReports:
		ids := make([]ent.Value, 0, len(m.removedweekly_reports))
		for id := range m.removedweekly_reports {
			ids = append(ids, id)
		}
		return ids
	case child.EdgeGrowthRecords:
		ids := make([]ent.Value, 0, len(m.removedgrowth_records))
		for id := range m.removedgrowth_records {
			ids = append(ids, id)
		}
		return ids
	case child.EdgeWorks:
		ids := make([]ent.Value, 0, len(m.removedworks))
		for id := range m.removedworks {
			ids = append(ids, id)
		}
		return ids
	case child.EdgeCoachSessions:
		ids := make([]ent.Value, 0, len(m.removedcoach_sessions))
		for id := range m.removedcoach_sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChildMutation) ClearedEdges() []string {
	edges := make([]string, 0, 9)
	if m.clearedparent {
		edges = append(edges, child.EdgeParent)
	}
	if m.clearedassessments {
		edges = append(edges, child.EdgeAssessments)
	}
	if m.clearedtask_records {
		edges = append(edges, child.EdgeTaskRecords)
	}
	if m.clearedbadge_awards {
		edges = append(edges, child.EdgeBadgeAwards)
	}
	if m.clearedcontributions {
		edges = append(edges, child.EdgeContributions)
	}
	if m.clearedweekly_reports {
		edges = append(edges, child.EdgeWeeklyReports)
	}
	if m.clearedgrowth_records {
		edges = append(edges, child.EdgeGrowthRecords)
	}
	if m.clearedworks {
		edges = append(edges, child.EdgeWorks)
	}
	if m.clearedcoach_sessions {
		edges = append(edges, child.EdgeCoachSessions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChildMutation) EdgeCleared(name string) bool {
	switch name {
	case child.EdgeParent:
		return m.clearedparent
	case child.EdgeAssessments:
		return m.clearedassessments
	case child.EdgeTaskRecords:
		return m.clearedtask_records
	case child.EdgeBadgeAwards:
		return m.clearedbadge_awards
	case child.EdgeContributions:
		return m.clearedcontributions
	case child.EdgeWeeklyReports:
		return m.clearedweekly_reports
	case child.EdgeGrowthRecords:
		return m.clearedgrowth_records
	case child.EdgeWorks:
		return m.clearedworks
	case child.EdgeCoachSessions:
		return m.clearedcoach_sessions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChildMutation) ClearEdge(name string) error {
	switch name {
	case child.EdgeParent:
		m.ClearParent()
		return nil
	}
	return fmt.Errorf("unknown Child unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChildMutation) ResetEdge(name string) error {
	switch name {
	case child.EdgeParent:
		m.ResetParent()
		return nil
	case child.EdgeAssessments:
		m.ResetAssessments()
		return nil
	case child.EdgeTaskRecords:
		m.ResetTaskRecords()
		return nil
	case child.EdgeBadgeAwards:
		m.ResetBadgeAwards()
		return nil
	case child.EdgeContributions:
		m.ResetContributions()
		return nil
	case child.EdgeWeeklyReports:
		m.ResetWeeklyReports()
		return nil
	case child.EdgeGrowthRecords:
		m.ResetGrowthRecords()
		return nil
	case child.EdgeWorks:
		m.ResetWorks()
		return nil
	case child.EdgeCoachSessions:
		m.ResetCoachSessions()
		return nil
	}
	return fmt.Errorf("unknown Child edge %s", name)
}

// CoCreationContributionMutation represents an operation that mutates the CoCreationContribution nodes in the graph.
type CoCreationContributionMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	kind          *cocreationcontribution.Kind
	content       *string
	clearedFields map[string]struct{}
	child         *uuid.UUID
	clearedchild  bool
	theme         *uuid.UUID
	clearedtheme  bool
	done          bool
	oldValue      func(context.Context) (*CoCreationContribution, error)
	predicates    []predicate.CoCreationContribution
}

var _ ent.Mutation = (*CoCreationContributionMutation)(nil)

// cocreationcontributionOption allows management of the mutation configuration using functional options.
type cocreationcontributionOption func(*CoCreationContributionMutation)

// newCoCreationContributionMutation creates new mutation for the CoCreationContribution entity.
func newCoCreationContributionMutation(c config, op Op, opts ...cocreationcontributionOption) *CoCreationContributionMutation {
	m := &CoCreationContributionMutation{
		config:        c,
		op:            op,
		typ:           TypeCoCreationContribution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCoCreationContributionID sets the ID field of the mutation.
func withCoCreationContributionID(id uuid.UUID) cocreationcontributionOption {
	return func(m *CoCreationContributionMutation) {
		var (
			err   error
			once  sync.Once
			value *CoCreationContribution
		)
		m.oldValue = func(ctx context.Context) (*CoCreationContribution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CoCreationContribution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCoCreationContribution sets the old CoCreationContribution of the mutation.
func withCoCreationContribution(node *CoCreationContribution) cocreationcontributionOption {
	return func(m *CoCreationContributionMutation) {
		m.oldValue = func(context.Context) (*CoCreationContribution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CoCreationContributionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CoCreationContributionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CoCreationContribution entities.
func (m *CoCreationContributionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CoCreationContributionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CoCreationContributionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CoCreationContribution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *CoCreationContributionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CoCreationContributionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CoCreationContribution entity.
// If the CoCreationContribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoCreationContributionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CoCreationContributionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CoCreationContributionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CoCreationContributionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CoCreationContribution entity.
// If the CoCreationContribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoCreationContributionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CoCreationContributionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetChildID sets the "child_id" field.
func (m *CoCreationContributionMutation) SetChildID(u uuid.UUID) {
	m.child = &u
}

// ChildID returns the value of the "child_id" field in the mutation.
func (m *CoCreationContributionMutation) ChildID() (r uuid.UUID, exists bool) {
	v := m.child
	if v == nil {
		return
	}
	return *v, true
}

// OldChildID returns the old "child_id" field's value of the CoCreationContribution entity.
// If the CoCreationContribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoCreationContributionMutation) OldChildID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChildID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChildID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChildID: %w", err)
	}
	return oldValue.ChildID, nil
}

// ResetChildID resets all changes to the "child_id" field.
func (m *CoCreationContributionMutation) ResetChildID() {
	m.child = nil
}

// SetThemeID sets the "theme_id" field.
func (m *CoCreationContributionMutation) SetThemeID(u uuid.UUID) {
	m.theme = &u
}

// ThemeID returns the value of the "theme_id" field in the mutation.
func (m *CoCreationContributionMutation) ThemeID() (r uuid.UUID, exists bool) {
	v := m.theme
	if v == nil {
		return
	}
	return *v, true
}

// OldThemeID returns the old "theme_id" field's value of the CoCreationContribution entity.
// If the CoCreationContribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoCreationContributionMutation) OldThemeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThemeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThemeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThemeID: %w", err)
	}
	return oldValue.ThemeID, nil
}

// ResetThemeID resets all changes to the "theme_id" field.
func (m *CoCreationContributionMutation) ResetThemeID() {
	m.theme = nil
}

// SetKind sets the "kind" field.
func (m *CoCreationContributionMutation) SetKind(c cocreationcontribution.Kind) {
	m.kind = &c
}

// Kind returns the value of the "kind" field in the mutation.
func (m *CoCreationContributionMutation) Kind() (r cocreationcontribution.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the CoCreationContribution entity.
// If the CoCreationContribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoCreationContributionMutation) OldKind(ctx context.Context) (v cocreationcontribution.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *CoCreationContributionMutation) ResetKind() {
	m.kind = nil
}

// SetContent sets the "content" field.
func (m *CoCreationContributionMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *CoCreationContributionMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the CoCreationContribution entity.
// If the CoCreationContribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoCreationContributionMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *CoCreationContributionMutation) ResetContent() {
	m.content = nil
}

// ClearChild clears the "child" edge to the Child entity.
func (m *CoCreationContributionMutation) ClearChild() {
	m.clearedchild = true
	m.clearedFields[cocreationcontribution.FieldChildID] = struct{}{}
}

// ChildCleared reports if the "child" edge to the Child entity was cleared.
func (m *CoCreationContributionMutation) ChildCleared() bool {
	return m.clearedchild
}

// ChildIDs returns the "child" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChildID instead. It exists only for internal usage by the builders.
func (m *CoCreationContributionMutation) ChildIDs() (ids []uuid.UUID) {
	if id := m.child; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChild resets all changes to the "child" edge.
func (m *CoCreationContributionMutation) ResetChild() {
	m.child = nil
	m.clearedchild = false
}

// ClearTheme clears the "theme" edge to the CoCreationTheme entity.
func (m *CoCreationContributionMutation) ClearTheme() {
	m.clearedtheme = true
	m.clearedFields[cocreationcontribution.FieldThemeID] = struct{}{}
}

// ThemeCleared reports if the "theme" edge to the CoCreationTheme entity was cleared.
func (m *CoCreationContributionMutation) ThemeCleared() bool {
	return m.clearedtheme
}

// ThemeIDs returns the "theme" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ThemeID instead. It exists only for internal usage by the builders.
func (m *CoCreationContributionMutation) ThemeIDs() (ids []uuid.UUID) {
	if id := m.theme; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTheme resets all changes to the "theme" edge.
func (m *CoCreationContributionMutation) ResetTheme() {
	m.theme = nil
	m.clearedtheme = false
}

// Where appends a list predicates to the CoCreationContributionMutation builder.
func (m *CoCreationContributionMutation) Where(ps ...predicate.CoCreationContribution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CoCreationContributionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CoCreationContributionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CoCreationContribution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CoCreationContributionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CoCreationContributionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CoCreationContribution).
func (m *CoCreationContributionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CoCreationContributionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, cocreationcontribution.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, cocreationcontribution.FieldUpdatedAt)
	}
	if m.child != nil {
		fields = append(fields, cocreationcontribution.FieldChildID)
	}
	if m.theme != nil {
		fields = append(fields, cocreationcontribution.FieldThemeID)
	}
	if m.kind != nil {
		fields = append(fields, cocreationcontribution.FieldKind)
	}
	if m.content != nil {
		fields = append(fields, cocreationcontribution.FieldContent)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CoCreationContributionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case cocreationcontribution.FieldCreatedAt:
		return m.CreatedAt()
	case cocreationcontribution.FieldUpdatedAt:
		return m.UpdatedAt()
	case cocreationcontribution.FieldChildID:
		return m.ChildID()
	case cocreationcontribution.FieldThemeID:
		return m.ThemeID()
	case cocreationcontribution.FieldKind:
		return m.Kind()
	case cocreationcontribution.FieldContent:
		return m.Content()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CoCreationContributionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case cocreationcontribution.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case cocreationcontribution.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case cocreationcontribution.FieldChildID:
		return m.OldChildID(ctx)
	case cocreationcontribution.FieldThemeID:
		return m.OldThemeID(ctx)
	case cocreationcontribution.FieldKind:
		return m.OldKind(ctx)
	case cocreationcontribution.FieldContent:
		return m.OldContent(ctx)
	}
	return nil, fmt.Errorf("unknown CoCreationContribution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CoCreationContributionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case cocreationcontribution.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case cocreationcontribution.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case cocreationcontribution.FieldChildID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChildID(v)
		return nil
	case cocreationcontribution.FieldThemeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThemeID(v)
		return nil
	case cocreationcontribution.FieldKind:
		v, ok := value.(cocreationcontribution.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case cocreationcontribution.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	}
	return fmt.Errorf("unknown CoCreationContribution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CoCreationContributionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CoCreationContributionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CoCreationContributionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CoCreationContribution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CoCreationContributionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CoCreationContributionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CoCreationContributionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CoCreationContribution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CoCreationContributionMutation) ResetField(name string) error {
	switch name {
	case cocreationcontribution.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case cocreationcontribution.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case cocreationcontribution.FieldChildID:
		m.ResetChildID()
		return nil
	case cocreationcontribution.FieldThemeID:
		m.ResetThemeID()
		return nil
	case cocreationcontribution.FieldKind:
		m.ResetKind()
		return nil
	case cocreationcontribution.FieldContent:
		m.ResetContent()
		return nil
	}
	return fmt.Errorf("unknown CoCreationContribution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CoCreationContributionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.child != nil {
		edges = append(edges, cocreationcontribution.EdgeChild)
	}
	if m.theme != nil {
		edges = append(edges, cocreationcontribution.EdgeTheme)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CoCreationContributionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case cocreationcontribution.EdgeChild:
		if id := m.child; id != nil {
			return []ent.Value{*id}
		}
	case cocreationcontribution.EdgeTheme:
		if id := m.theme; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CoCreationContributionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CoCreationContributionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CoCreationContributionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedchild {
		edges = append(edges, cocreationcontribution.EdgeChild)
	}
	if m.clearedtheme {
		edges = append(edges, cocreationcontribution.EdgeTheme)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CoCreationContributionMutation) EdgeCleared(name string) bool {
	switch name {
	case cocreationcontribution.EdgeChild:
		return m.clearedchild
	case cocreationcontribution.EdgeTheme:
		return m.clearedtheme
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CoCreationContributionMutation) ClearEdge(name string) error {
	switch name {
	case cocreationcontribution.EdgeChild:
		m.ClearChild()
		return nil
	case cocreationcontribution.EdgeTheme:
		m.ClearTheme()
		return nil
	}
	return fmt.Errorf("unknown CoCreationContribution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CoCreationContributionMutation) ResetEdge(name string) error {
	switch name {
	case cocreationcontribution.EdgeChild:
		m.ResetChild()
		return nil
	case cocreationcontribution.EdgeTheme:
		m.ResetTheme()
		return nil
	}
	return fmt.Errorf("unknown CoCreationContribution edge %s", name)
}

// CoCreationThemeMutation represents an operation that mutates the CoCreationTheme nodes in the graph.
type CoCreationThemeMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	created_at           *time.Time
	updated_at           *time.Time
	title                *string
	description          *string
	prompt               *string
	start_date           *time.Time
	end_date             *time.Time
	clearedFields        map[string]struct{}
	contributions        map[uuid.UUID]struct{}
	removedcontributions map[uuid.UUID]struct{}
	clearedcontributions bool
	done                 bool
	oldValue             func(context.Context) (*CoCreationTheme, error)
	predicates           []predicate.CoCreationTheme
}

var _ ent.Mutation = (*CoCreationThemeMutation)(nil)

// cocreationthemeOption allows management of the mutation configuration using functional options.
type cocreationthemeOption func(*CoCreationThemeMutation)

// newCoCreationThemeMutation creates new mutation for the CoCreationTheme entity.
func newCoCreationThemeMutation(c config, op Op, opts ...cocreationthemeOption) *CoCreationThemeMutation {
	m := &CoCreationThemeMutation{
		config:        c,
		op:            op,
		typ:           TypeCoCreationTheme,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCoCreationThemeID sets the ID field of the mutation.
func withCoCreationThemeID(id uuid.UUID) cocreationthemeOption {
	return func(m *CoCreationThemeMutation) {
		var (
			err   error
			once  sync.Once
			value *CoCreationTheme
		)
		m.oldValue = func(ctx context.Context) (*CoCreationTheme, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CoCreationTheme.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCoCreationTheme sets the old CoCreationTheme of the mutation.
func withCoCreationTheme(node *CoCreationTheme) cocreationthemeOption {
	return func(m *CoCreationThemeMutation) {
		m.oldValue = func(context.Context) (*CoCreationTheme, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CoCreationThemeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CoCreationThemeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CoCreationTheme entities.
func (m *CoCreationThemeMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CoCreationThemeMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CoCreationThemeMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CoCreationTheme.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *CoCreationThemeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CoCreationThemeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CoCreationTheme entity.
// If the CoCreationTheme object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoCreationThemeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CoCreationThemeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CoCreationThemeMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CoCreationThemeMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CoCreationTheme entity.
// If the CoCreationTheme object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoCreationThemeMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CoCreationThemeMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTitle sets the "title" field.
func (m *CoCreationThemeMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *CoCreationThemeMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the CoCreationTheme entity.
// If the CoCreationTheme object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoCreationThemeMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *CoCreationThemeMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *CoCreationThemeMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *CoCreationThemeMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the CoCreationTheme entity.
// If the CoCreationTheme object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoCreationThemeMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *CoCreationThemeMutation) ResetDescription() {
	m.description = nil
}

// SetPrompt sets the "prompt" field.
func (m *CoCreationThemeMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *CoCreationThemeMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the CoCreationTheme entity.
// If the CoCreationTheme object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoCreationThemeMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *CoCreationThemeMutation) ResetPrompt() {
	m.prompt = nil
}

// SetStartDate sets the "start_date" field.
func (m *CoCreationThemeMutation) SetStartDate(t time.Time) {
	m.start_date = &t
}

// StartDate returns the value of the "start_date" field in the mutation.
func (m *CoCreationThemeMutation) StartDate() (r time.Time, exists bool) {
	v := m.start_date
	if v == nil {
		return
	}
	return *v, true
}

// OldStartDate returns the old "start_date" field's value of the CoCreationTheme entity.
// If the CoCreationTheme object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoCreationThemeMutation) OldStartDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartDate: %w", err)
	}
	return oldValue.StartDate, nil
}

// ResetStartDate resets all changes to the "start_date" field.
func (m *CoCreationThemeMutation) ResetStartDate() {
	m.start_date = nil
}

// SetEndDate sets the "end_date" field.
func (m *CoCreationThemeMutation) SetEndDate(t time.Time) {
	m.end_date = &t
}

// EndDate returns the value of the "end_date" field in the mutation.
func (m *CoCreationThemeMutation) EndDate() (r time.Time, exists bool) {
	v := m.end_date
	if v == nil {
		return
	}
	return *v, true
}

// OldEndDate returns the old "end_date" field's value of the CoCreationTheme entity.
// If the CoCreationTheme object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoCreationThemeMutation) OldEndDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndDate: %w", err)
	}
	return oldValue.EndDate, nil
}

// ResetEndDate resets all changes to the "end_date" field.
func (m *CoCreationThemeMutation) ResetEndDate() {
	m.end_date = nil
}

// AddContributionIDs adds the "contributions" edge to the CoCreationContribution entity by ids.
func (m *CoCreationThemeMutation) AddContributionIDs(ids ...uuid.UUID) {
	if m.contributions == nil {
		m.contributions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.contributions[ids[i]] = struct{}{}
	}
}

// ClearContributions clears the "contributions" edge to the CoCreationContribution entity.
func (m *CoCreationThemeMutation) ClearContributions() {
	m.clearedcontributions = true
}

// ContributionsCleared reports if the "contributions" edge to the CoCreationContribution entity was cleared.
func (m *CoCreationThemeMutation) ContributionsCleared() bool {
	return m.clearedcontributions
}

// RemoveContributionIDs removes the "contributions" edge to the CoCreationContribution entity by IDs.
func (m *CoCreationThemeMutation) RemoveContributionIDs(ids ...uuid.UUID) {
	if m.removedcontributions == nil {
		m.removedcontributions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.contributions, ids[i])
		m.removedcontributions[ids[i]] = struct{}{}
	}
}

// RemovedContributions returns the removed IDs of the "contributions" edge to the CoCreationContribution entity.
func (m *CoCreationThemeMutation) RemovedContributionsIDs() (ids []uuid.UUID) {
	for id := range m.removedcontributions {
		ids = append(ids, id)
	}
	return
}

// ContributionsIDs returns the "contributions" edge IDs in the mutation.
func (m *CoCreationThemeMutation) ContributionsIDs() (ids []uuid.UUID) {
	for id := range m.contributions {
		ids = append(ids, id)
	}
	return
}

// ResetContributions resets all changes to the "contributions" edge.
func (m *CoCreationThemeMutation) ResetContributions() {
	m.contributions = nil
	m.clearedcontributions = false
	m.removedcontributions = nil
}

// Where appends a list predicates to the CoCreationThemeMutation builder.
func (m *CoCreationThemeMutation) Where(ps ...predicate.CoCreationTheme) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CoCreationThemeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CoCreationThemeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CoCreationTheme, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CoCreationThemeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CoCreationThemeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CoCreationTheme).
func (m *CoCreationThemeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CoCreationThemeMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, cocreationtheme.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, cocreationtheme.FieldUpdatedAt)
	}
	if m.title != nil {
		fields = append(fields, cocreationtheme.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, cocreationtheme.FieldDescription)
	}
	if m.prompt != nil {
		fields = append(fields, cocreationtheme.FieldPrompt)
	}
	if m.start_date != nil {
		fields = append(fields, cocreationtheme.FieldStartDate)
	}
	if m.end_date != nil {
		fields = append(fields, cocreationtheme.FieldEndDate)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CoCreationThemeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case cocreationtheme.FieldCreatedAt:
		return m.CreatedAt()
	case cocreationtheme.FieldUpdatedAt:
		return m.UpdatedAt()
	case cocreationtheme.FieldTitle:
		return m.Title()
	case cocreationtheme.FieldDescription:
		return m.Description()
	case cocreationtheme.FieldPrompt:
		return m.Prompt()
	case cocreationtheme.FieldStartDate:
		return m.StartDate()
	case cocreationtheme.FieldEndDate:
		return m.EndDate()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CoCreationThemeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case cocreationtheme.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case cocreationtheme.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case cocreationtheme.FieldTitle:
		return m.OldTitle(ctx)
	case cocreationtheme.FieldDescription:
		return m.OldDescription(ctx)
	case cocreationtheme.FieldPrompt:
		return m.OldPrompt(ctx)
	case cocreationtheme.FieldStartDate:
		return m.OldStartDate(ctx)
	case cocreationtheme.FieldEndDate:
		return m.OldEndDate(ctx)
	}
	return nil, fmt.Errorf("unknown CoCreationTheme field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CoCreationThemeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case cocreationtheme.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case cocreationtheme.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case cocreationtheme.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case cocreationtheme.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case cocreationtheme.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case cocreationtheme.FieldStartDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartDate(v)
		return nil
	case cocreationtheme.FieldEndDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndDate(v)
		return nil
	}
	return fmt.Errorf("unknown CoCreationTheme field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CoCreationThemeMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CoCreationThemeMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CoCreationThemeMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CoCreationTheme numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CoCreationThemeMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CoCreationThemeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CoCreationThemeMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CoCreationTheme nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CoCreationThemeMutation) ResetField(name string) error {
	switch name {
	case cocreationtheme.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case cocreationtheme.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case cocreationtheme.FieldTitle:
		m.ResetTitle()
		return nil
	case cocreationtheme.FieldDescription:
		m.ResetDescription()
		return nil
	case cocreationtheme.FieldPrompt:
		m.ResetPrompt()
		return nil
	case cocreationtheme.FieldStartDate:
		m.ResetStartDate()
		return nil
	case cocreationtheme.FieldEndDate:
		m.ResetEndDate()
		return nil
	}
	return fmt.Errorf("unknown CoCreationTheme field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CoCreationThemeMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.contributions != nil {
		edges = append(edges, cocreationtheme.EdgeContributions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CoCreationThemeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case cocreationtheme.EdgeContributions:
		ids := make([]ent.Value, 0, len(m.contributions))
		for id := range m.contributions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CoCreationThemeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedcontributions != nil {
		edges = append(edges, cocreationtheme.EdgeContributions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CoCreationThemeMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case cocreationtheme.EdgeContributions:
		ids := make([]ent.Value, 0, len(m.removedcontributions))
		for id := range m.removedcontributions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CoCreationThemeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcontributions {
		edges = append(edges, cocreationtheme.EdgeContributions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CoCreationThemeMutation) EdgeCleared(name string) bool {
	switch name {
	case cocreationtheme.EdgeContributions:
		return m.clearedcontributions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CoCreationThemeMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown CoCreationTheme unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CoCreationThemeMutation) ResetEdge(name string) error {
	switch name {
	case cocreationtheme.EdgeContributions:
		m.ResetContributions()
		return nil
	}
	return fmt.Errorf("unknown CoCreationTheme edge %s", name)
}

// CoachSessionMutation represents an operation that mutates the CoachSession nodes in the graph.
type CoachSessionMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	created_at     *time.Time
	updated_at     *time.Time
	task_record_id *uuid.UUID
	messages       *[]chat.Turn
	appendmessages []chat.Turn
	turn_count     *int
	addturn_count  *int
	clearedFields  map[string]struct{}
	child          *uuid.UUID
	clearedchild   bool
	done           bool
	oldValue       func(context.Context) (*CoachSession, error)
	predicates     []predicate.CoachSession
}

var _ ent.Mutation = (*CoachSessionMutation)(nil)

// coachsessionOption allows management of the mutation configuration using functional options.
type coachsessionOption func(*CoachSessionMutation)

// newCoachSessionMutation creates new mutation for the CoachSession entity.
func newCoachSessionMutation(c config, op Op, opts ...coachsessionOption) *CoachSessionMutation {
	m := &CoachSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeCoachSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCoachSessionID sets the ID field of the mutation.
func withCoachSessionID(id uuid.UUID) coachsessionOption {
	return func(m *CoachSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *CoachSession
		)
		m.oldValue = func(ctx context.Context) (*CoachSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CoachSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCoachSession sets the old CoachSession of the mutation.
func withCoachSession(node *CoachSession) coachsessionOption {
	return func(m *CoachSessionMutation) {
		m.oldValue = func(context.Context) (*CoachSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CoachSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CoachSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CoachSession entities.
func (m *CoachSessionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CoachSessionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CoachSessionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CoachSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *CoachSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CoachSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CoachSession entity.
// If the CoachSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoachSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CoachSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CoachSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CoachSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CoachSession entity.
// If the CoachSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoachSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CoachSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetChildID sets the "child_id" field.
func (m *CoachSessionMutation) SetChildID(u uuid.UUID) {
	m.child = &u
}

// ChildID returns the value of the "child_id" field in the mutation.
func (m *CoachSessionMutation) ChildID() (r uuid.UUID, exists bool) {
	v := m.child
	if v == nil {
		return
	}
	return *v, true
}

// OldChildID returns the old "child_id" field's value of the CoachSession entity.
// If the CoachSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoachSessionMutation) OldChildID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChildID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChildID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChildID: %w", err)
	}
	return oldValue.ChildID, nil
}

// ResetChildID resets all changes to the "child_id" field.
func (m *CoachSessionMutation) ResetChildID() {
	m.child = nil
}

// SetTaskRecordID sets the "task_record_id" field.
func (m *CoachSessionMutation) SetTaskRecordID(u uuid.UUID) {
	m.task_record_id = &u
}

// TaskRecordID returns the value of the "task_record_id" field in the mutation.
func (m *CoachSessionMutation) TaskRecordID() (r uuid.UUID, exists bool) {
	v := m.task_record_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskRecordID returns the old "task_record_id" field's value of the CoachSession entity.
// If the CoachSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoachSessionMutation) OldTaskRecordID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskRecordID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskRecordID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskRecordID: %w", err)
	}
	return oldValue.TaskRecordID, nil
}

// ResetTaskRecordID resets all changes to the "task_record_id" field.
func (m *CoachSessionMutation) ResetTaskRecordID() {
	m.task_record_id = nil
}

// SetMessages sets the "messages" field.
func (m *CoachSessionMutation) SetMessages(c []chat.Turn) {
	m.messages = &c
	m.appendmessages = nil
}

// Messages returns the value of the "messages" field in the mutation.
func (m *CoachSessionMutation) Messages() (r []chat.Turn, exists bool) {
	v := m.messages
	if v == nil {
		return
	}
	return *v, true
}

// OldMessages returns the old "messages" field's value of the CoachSession entity.
// If the CoachSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoachSessionMutation) OldMessages(ctx context.Context) (v []chat.Turn, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessages: %w", err)
	}
	return oldValue.Messages, nil
}

// AppendMessages adds c to the "messages" field.
func (m *CoachSessionMutation) AppendMessages(c []chat.Turn) {
	m.appendmessages = append(m.appendmessages, c...)
}

// AppendedMessages returns the list of values that were appended to the "messages" field in this mutation.
func (m *CoachSessionMutation) AppendedMessages() ([]chat.Turn, bool) {
	if len(m.appendmessages) == 0 {
		return nil, false
	}
	return m.appendmessages, true
}

// ClearMessages clears the value of the "messages" field.
func (m *CoachSessionMutation) ClearMessages() {
	m.messages = nil
	m.appendmessages = nil
	m.clearedFields[coachsession.FieldMessages] = struct{}{}
}

// MessagesCleared returns if the "messages" field was cleared in this mutation.
func (m *CoachSessionMutation) MessagesCleared() bool {
	_, ok := m.clearedFields[coachsession.FieldMessages]
	return ok
}

// ResetMessages resets all changes to the "messages" field.
func (m *CoachSessionMutation) ResetMessages() {
	m.messages = nil
	m.appendmessages = nil
	delete(m.clearedFields, coachsession.FieldMessages)
}

// SetTurnCount sets the "turn_count" field.
func (m *CoachSessionMutation) SetTurnCount(i int) {
	m.turn_count = &i
	m.addturn_count = nil
}

// TurnCount returns the value of the "turn_count" field in the mutation.
func (m *CoachSessionMutation) TurnCount() (r int, exists bool) {
	v := m.turn_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTurnCount returns the old "turn_count" field's value of the CoachSession entity.
// If the CoachSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoachSessionMutation) OldTurnCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTurnCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTurnCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTurnCount: %w", err)
	}
	return oldValue.TurnCount, nil
}

// AddTurnCount adds i to the "turn_count" field.
func (m *CoachSessionMutation) AddTurnCount(i int) {
	if m.addturn_count != nil {
		*m.addturn_count += i
	} else {
		m.addturn_count = &i
	}
}

// AddedTurnCount returns the value that was added to the "turn_count" field in this mutation.
func (m *CoachSessionMutation) AddedTurnCount() (r int, exists bool) {
	v := m.addturn_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTurnCount resets all changes to the "turn_count" field.
func (m *CoachSessionMutation) ResetTurnCount() {
	m.turn_count = nil
	m.addturn_count = nil
}

// ClearChild clears the "child" edge to the Child entity.
func (m *CoachSessionMutation) ClearChild() {
	m.clearedchild = true
	m.clearedFields[coachsession.FieldChildID] = struct{}{}
}

// ChildCleared reports if the "child" edge to the Child entity was cleared.
func (m *CoachSessionMutation) ChildCleared() bool {
	return m.clearedchild
}

// ChildIDs returns the "child" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChildID instead. It exists only for internal usage by the builders.
func (m *CoachSessionMutation) ChildIDs() (ids []uuid.UUID) {
	if id := m.child; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChild resets all changes to the "child" edge.
func (m *CoachSessionMutation) ResetChild() {
	m.child = nil
	m.clearedchild = false
}

// Where appends a list predicates to the CoachSessionMutation builder.
func (m *CoachSessionMutation) Where(ps ...predicate.CoachSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CoachSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CoachSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CoachSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CoachSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CoachSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CoachSession).
func (m *CoachSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CoachSessionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, coachsession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, coachsession.FieldUpdatedAt)
	}
	if m.child != nil {
		fields = append(fields, coachsession.FieldChildID)
	}
	if m.task_record_id != nil {
		fields = append(fields, coachsession.FieldTaskRecordID)
	}
	if m.messages != nil {
		fields = append(fields, coachsession.FieldMessages)
	}
	if m.turn_count != nil {
		fields = append(fields, coachsession.FieldTurnCount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CoachSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case coachsession.FieldCreatedAt:
		return m.CreatedAt()
	case coachsession.FieldUpdatedAt:
		return m.UpdatedAt()
	case coachsession.FieldChildID:
		return m.ChildID()
	case coachsession.FieldTaskRecordID:
		return m.TaskRecordID()
	case coachsession.FieldMessages:
		return m.Messages()
	case coachsession.FieldTurnCount:
		return m.TurnCount()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CoachSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case coachsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case coachsession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case coachsession.FieldChildID:
		return m.OldChildID(ctx)
	case coachsession.FieldTaskRecordID:
		return m.OldTaskRecordID(ctx)
	case coachsession.FieldMessages:
		return m.OldMessages(ctx)
	case coachsession.FieldTurnCount:
		return m.OldTurnCount(ctx)
	}
	return nil, fmt.Errorf("unknown CoachSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CoachSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case coachsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case coachsession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case coachsession.FieldChildID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChildID(v)
		return nil
	case coachsession.FieldTaskRecordID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskRecordID(v)
		return nil
	case coachsession.FieldMessages:
		v, ok := value.([]chat.Turn)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessages(v)
		return nil
	case coachsession.FieldTurnCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTurnCount(v)
		return nil
	}
	return fmt.Errorf("unknown CoachSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CoachSessionMutation) AddedFields() []string {
	var fields []string
	if m.addturn_count != nil {
		fields = append(fields, coachsession.FieldTurnCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CoachSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case coachsession.FieldTurnCount:
		return m.AddedTurnCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CoachSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case coachsession.FieldTurnCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTurnCount(v)
		return nil
	}
	return fmt.Errorf("unknown CoachSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CoachSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(coachsession.FieldMessages) {
		fields = append(fields, coachsession.FieldMessages)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CoachSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CoachSessionMutation) ClearField(name string) error {
	switch name {
	case coachsession.FieldMessages:
		m.ClearMessages()
		return nil
	}
	return fmt.Errorf("unknown CoachSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CoachSessionMutation) ResetField(name string) error {
	switch name {
	case coachsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case coachsession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case coachsession.FieldChildID:
		m.ResetChildID()
		return nil
	case coachsession.FieldTaskRecordID:
		m.ResetTaskRecordID()
		return nil
	case coachsession.FieldMessages:
		m.ResetMessages()
		return nil
	case coachsession.FieldTurnCount:
		m.ResetTurnCount()
		return nil
	}
	return fmt.Errorf("unknown CoachSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CoachSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.child != nil {
		edges = append(edges, coachsession.EdgeChild)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CoachSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case coachsession.EdgeChild:
		if id := m.child; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CoachSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CoachSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CoachSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedchild {
		edges = append(edges, coachsession.EdgeChild)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CoachSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case coachsession.EdgeChild:
		return m.clearedchild
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CoachSessionMutation) ClearEdge(name string) error {
	switch name {
	case coachsession.EdgeChild:
		m.ClearChild()
		return nil
	}
	return fmt.Errorf("unknown CoachSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CoachSessionMutation) ResetEdge(name string) error {
	switch name {
	case coachsession.EdgeChild:
		m.ResetChild()
		return nil
	}
	return fmt.Errorf("unknown CoachSession edge %s", name)
}

// GrowthRecordMutation represents an operation that mutates the GrowthRecord nodes in the graph.
type GrowthRecordMutation struct {
	config
	op                           Op
	typ                          string
	id                           *uuid.UUID
	created_at                   *time.Time
	updated_at                   *time.Time
	date                         *time.Time
	tasks_completed              *int
	addtasks_completed           *int
	xp_earned                    *int
	addxp_earned                 *int
	average_expression_score     *float64
	addaverage_expression_score  *float64
	average_logic_score          *float64
	addaverage_logic_score       *float64
	average_exploration_score    *float64
	addaverage_exploration_score *float64
	average_creativity_score     *float64
	addaverage_creativity_score  *float64
	average_habit_score          *float64
	addaverage_habit_score       *float64
	clearedFields                map[string]struct{}
	child                        *uuid.UUID
	clearedchild                 bool
	done                         bool
	oldValue                     func(context.Context) (*GrowthRecord, error)
	predicates                   []predicate.GrowthRecord
}

var _ ent.Mutation = (*GrowthRecordMutation)(nil)

// growthrecordOption allows management of the mutation configuration using functional options.
type growthrecordOption func(*GrowthRecordMutation)

// newGrowthRecordMutation creates new mutation for the GrowthRecord entity.
func newGrowthRecordMutation(c config, op Op, opts ...growthrecordOption) *GrowthRecordMutation {
	m := &GrowthRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeGrowthRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGrowthRecordID sets the ID field of the mutation.
func withGrowthRecordID(id uuid.UUID) growthrecordOption {
	return func(m *GrowthRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *GrowthRecord
		)
		m.oldValue = func(ctx context.Context) (*GrowthRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GrowthRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGrowthRecord sets the old GrowthRecord of the mutation.
func withGrowthRecord(node *GrowthRecord) growthrecordOption {
	return func(m *GrowthRecordMutation) {
		m.oldValue = func(context.Context) (*GrowthRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GrowthRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GrowthRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GrowthRecord entities.
func (m *GrowthRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GrowthRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GrowthRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GrowthRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *GrowthRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GrowthRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GrowthRecord entity.
// If the GrowthRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GrowthRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GrowthRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *GrowthRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *GrowthRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the GrowthRecord entity.
// If the GrowthRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GrowthRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *GrowthRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetChildID sets the "child_id" field.
func (m *GrowthRecordMutation) SetChildID(u uuid.UUID) {
	m.child = &u
}

// ChildID returns the value of the "child_id" field in the mutation.
func (m *GrowthRecordMutation) ChildID() (r uuid.UUID, exists bool) {
	v := m.child
	if v == nil {
		return
	}
	return *v, true
}

// OldChildID returns the old "child_id" field's value of the GrowthRecord entity.
// If the GrowthRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GrowthRecordMutation) OldChildID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChildID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChildID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChildID: %w", err)
	}
	return oldValue.ChildID, nil
}

// ResetChildID resets all changes to the "child_id" field.
func (m *GrowthRecordMutation) ResetChildID() {
	m.child = nil
}

// SetDate sets the "date" field.
func (m *GrowthRecordMutation) SetDate(t time.Time) {
	m.date = &t
}

// Date returns the value of the "date" field in the mutation.
func (m *GrowthRecordMutation) Date() (r time.Time, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the GrowthRecord entity.
// If the GrowthRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GrowthRecordMutation) OldDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *GrowthRecordMutation) ResetDate() {
	m.date = nil
}

// SetTasksCompleted sets the "tasks_completed" field.
func (m *GrowthRecordMutation) SetTasksCompleted(i int) {
	m.tasks_completed = &i
	m.addtasks_completed = nil
}

// TasksCompleted returns the value of the "tasks_completed" field in the mutation.
func (m *GrowthRecordMutation) TasksCompleted() (r int, exists bool) {
	v := m.tasks_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldTasksCompleted returns the old "tasks_completed" field's value of the GrowthRecord entity.
// If the GrowthRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GrowthRecordMutation) OldTasksCompleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTasksCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTasksCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTasksCompleted: %w", err)
	}
	return oldValue.TasksCompleted, nil
}

// AddTasksCompleted adds i to the "tasks_completed" field.
func (m *GrowthRecordMutation) AddTasksCompleted(i int) {
	if m.addtasks_completed != nil {
		*m.addtasks_completed += i
	} else {
		m.addtasks_completed = &i
	}
}

// AddedTasksCompleted returns the value that was added to the "tasks_completed" field in this mutation.
func (m *GrowthRecordMutation) AddedTasksCompleted() (r int, exists bool) {
	v := m.addtasks_completed
	if v == nil {
		return
	}
	return *v, true
}

// ResetTasksCompleted resets all changes to the "tasks_completed" field.
func (m *GrowthRecordMutation) ResetTasksCompleted() {
	m.tasks_completed = nil
	m.addtasks_completed = nil
}

// SetXpEarned sets the "xp_earned" field.
func (m *GrowthRecordMutation) SetXpEarned(i int) {
	m.xp_earned = &i
	m.addxp_earned = nil
}

// XpEarned returns the value of the "xp_earned" field in the mutation.
func (m *GrowthRecordMutation) XpEarned() (r int, exists bool) {
	v := m.xp_earned
	if v == nil {
		return
	}
	return *v, true
}

// OldXpEarned returns the old "xp_earned" field's value of the GrowthRecord entity.
// If the GrowthRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GrowthRecordMutation) OldXpEarned(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldXpEarned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldXpEarned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldXpEarned: %w", err)
	}
	return oldValue.XpEarned, nil
}

// AddXpEarned adds i to the "xp_earned" field.
func (m *GrowthRecordMutation) AddXpEarned(i int) {
	if m.addxp_earned != nil {
		*m.addxp_earned += i
	} else {
		m.addxp_earned = &i
	}
}

// AddedXpEarned returns the value that was added to the "xp_earned" field in this mutation.
func (m *GrowthRecordMutation) AddedXpEarned() (r int, exists bool) {
	v := m.addxp_earned
	if v == nil {
		return
	}
	return *v, true
}

// ResetXpEarned resets all changes to the "xp_earned" field.
func (m *GrowthRecordMutation) ResetXpEarned() {
	m.xp_earned = nil
	m.addxp_earned = nil
}

// SetAverageExpressionScore sets the "average_expression_score" field.
func (m *GrowthRecordMutation) SetAverageExpressionScore(f float64) {
	m.average_expression_score = &f
	m.addaverage_expression_score = nil
}

// AverageExpressionScore returns the value of the "average_expression_score" field in the mutation.
func (m *GrowthRecordMutation) AverageExpressionScore() (r float64, exists bool) {
	v := m.average_expression_score
	if v == nil {
		return
	}
	return *v, true
}

// OldAverageExpressionScore returns the old "average_expression_score" field's value of the GrowthRecord entity.
// If the GrowthRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GrowthRecordMutation) OldAverageExpressionScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAverageExpressionScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAverageExpressionScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAverageExpressionScore: %w", err)
	}
	return oldValue.AverageExpressionScore, nil
}

// AddAverageExpressionScore adds f to the "average_expression_score" field.
func (m *GrowthRecordMutation) AddAverageExpressionScore(f float64) {
	if m.addaverage_expression_score != nil {
		*m.addaverage_expression_score += f
	} else {
		m.addaverage_expression_score = &f
	}
}

// AddedAverageExpressionScore returns the value that was added to the "average_expression_score" field in this mutation.
func (m *GrowthRecordMutation) AddedAverageExpressionScore() (r float64, exists bool) {
	v := m.addaverage_expression_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetAverageExpressionScore resets all changes to the "average_expression_score" field.
func (m *GrowthRecordMutation) ResetAverageExpressionScore() {
	m.average_expression_score = nil
	m.addaverage_expression_score = nil
}

// SetAverageLogicScore sets the "average_logic_score" field.
func (m *GrowthRecordMutation) SetAverageLogicScore(f float64) {
	m.average_logic_score = &f
	m.addaverage_logic_score = nil
}

// AverageLogicScore returns the value of the "average_logic_score" field in the mutation.
func (m *GrowthRecordMutation) AverageLogicScore() (r float64, exists bool) {
	v := m.average_logic_score
	if v == nil {
		return
	}
	return *v, true
}

// OldAverageLogicScore returns the old "average_logic_score" field's value of the GrowthRecord entity.
// If the GrowthRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GrowthRecordMutation) OldAverageLogicScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAverageLogicScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAverageLogicScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAverageLogicScore: %w", err)
	}
	return oldValue.AverageLogicScore, nil
}

// AddAverageLogicScore adds f to the "average_logic_score" field.
func (m *GrowthRecordMutation) AddAverageLogicScore(f float64) {
	if m.addaverage_logic_score != nil {
		*m.addaverage_logic_score += f
	} else {
		m.addaverage_logic_score = &f
	}
}

// AddedAverageLogicScore returns the value that was added to the "average_logic_score" field in this mutation.
func (m *GrowthRecordMutation) AddedAverageLogicScore() (r float64, exists bool) {
	v := m.addaverage_logic_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetAverageLogicScore resets all changes to the "average_logic_score" field.
func (m *GrowthRecordMutation) ResetAverageLogicScore() {
	m.average_logic_score = nil
	m.addaverage_logic_score = nil
}

// SetAverageExplorationScore sets the "average_exploration_score" field.
func (m *GrowthRecordMutation) SetAverageExplorationScore(f float64) {
	m.average_exploration_score = &f
	m.addaverage_exploration_score = nil
}

// AverageExplorationScore returns the value of the "average_exploration_score" field in the mutation.
func (m *GrowthRecordMutation) AverageExplorationScore() (r float64, exists bool) {
	v := m.average_exploration_score
	if v == nil {
		return
	}
	return *v, true
}

// OldAverageExplorationScore returns the old "average_exploration_score" field's value of the GrowthRecord entity.
// If the GrowthRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GrowthRecordMutation) OldAverageExplorationScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAverageExplorationScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAverageExplorationScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAverageExplorationScore: %w", err)
	}
	return oldValue.AverageExplorationScore, nil
}

// AddAverageExplorationScore adds f to the "average_exploration_score" field.
func (m *GrowthRecordMutation) AddAverageExplorationScore(f float64) {
	if m.addaverage_exploration_score != nil {
		*m.addaverage_exploration_score += f
	} else {
		m.addaverage_exploration_score = &f
	}
}

// AddedAverageExplorationScore returns the value that was added to the "average_exploration_score" field in this mutation.
func (m *GrowthRecordMutation) AddedAverageExplorationScore() (r float64, exists bool) {
	v := m.addaverage_exploration_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetAverageExplorationScore resets all changes to the "average_exploration_score" field.
func (m *GrowthRecordMutation) ResetAverageExplorationScore() {
	m.average_exploration_score = nil
	m.addaverage_exploration_score = nil
}

// SetAverageCreativityScore sets the "average_creativity_score" field.
func (m *GrowthRecordMutation) SetAverageCreativityScore(f float64) {
	m.average_creativity_score = &f
	m.addaverage_creativity_score = nil
}

// AverageCreativityScore returns the value of the "average_creativity_score" field in the mutation.
func (m *GrowthRecordMutation) AverageCreativityScore() (r float64, exists bool) {
	v := m.average_creativity_score
	if v == nil {
		return
	}
	return *v, true
}

// OldAverageCreativityScore returns the old "average_creativity_score" field's value of the GrowthRecord entity.
// If the GrowthRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GrowthRecordMutation) OldAverageCreativityScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAverageCreativityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAverageCreativityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAverageCreativityScore: %w", err)
	}
	return oldValue.AverageCreativityScore, nil
}

// AddAverageCreativityScore adds f to the "average_creativity_score" field.
func (m *GrowthRecordMutation) AddAverageCreativityScore(f float64) {
	if m.addaverage_creativity_score != nil {
		*m.addaverage_creativity_score += f
	} else {
		m.addaverage_creativity_score = &f
	}
}

// AddedAverageCreativityScore returns the value that was added to the "average_creativity_score" field in this mutation.
func (m *GrowthRecordMutation) AddedAverageCreativityScore() (r float64, exists bool) {
	v := m.addaverage_creativity_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetAverageCreativityScore resets all changes to the "average_creativity_score" field.
func (m *GrowthRecordMutation) ResetAverageCreativityScore() {
	m.average_creativity_score = nil
	m.addaverage_creativity_score = nil
}

// SetAverageHabitScore sets the "average_habit_score" field.
func (m *GrowthRecordMutation) SetAverageHabitScore(f float64) {
	m.average_habit_score = &f
	m.addaverage_habit_score = nil
}

// AverageHabitScore returns the value of the "average_habit_score" field in the mutation.
func (m *GrowthRecordMutation) AverageHabitScore() (r float64, exists bool) {
	v := m.average_habit_score
	if v == nil {
		return
	}
	return *v, true
}

// OldAverageHabitScore returns the old "average_habit_score" field's value of the GrowthRecord entity.
// If the GrowthRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GrowthRecordMutation) OldAverageHabitScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAverageHabitScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAverageHabitScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAverageHabitScore: %w", err)
	}
	return oldValue.AverageHabitScore, nil
}

// AddAverageHabitScore adds f to the "average_habit_score" field.
func (m *GrowthRecordMutation) AddAverageHabitScore(f float64) {
	if m.addaverage_habit_score != nil {
		*m.addaverage_habit_score += f
	} else {
		m.addaverage_habit_score = &f
	}
}

// AddedAverageHabitScore returns the value that was added to the "average_habit_score" field in this mutation.
func (m *GrowthRecordMutation) AddedAverageHabitScore() (r float64, exists bool) {
	v := m.addaverage_habit_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetAverageHabitScore resets all changes to the "average_habit_score" field.
func (m *GrowthRecordMutation) ResetAverageHabitScore() {
	m.average_habit_score = nil
	m.addaverage_habit_score = nil
}

// ClearChild clears the "child" edge to the Child entity.
func (m *GrowthRecordMutation) ClearChild() {
	m.clearedchild = true
	m.clearedFields[growthrecord.FieldChildID] = struct{}{}
}

// ChildCleared reports if the "child" edge to the Child entity was cleared.
func (m *GrowthRecordMutation) ChildCleared() bool {
	return m.clearedchild
}

// ChildIDs returns the "child" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChildID instead. It exists only for internal usage by the builders.
func (m *GrowthRecordMutation) ChildIDs() (ids []uuid.UUID) {
	if id := m.child; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChild resets all changes to the "child" edge.
func (m *GrowthRecordMutation) ResetChild() {
	m.child = nil
	m.clearedchild = false
}

// Where appends a list predicates to the GrowthRecordMutation builder.
func (m *GrowthRecordMutation) Where(ps ...predicate.GrowthRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GrowthRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GrowthRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GrowthRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GrowthRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GrowthRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GrowthRecord).
func (m *GrowthRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GrowthRecordMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, growthrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, growthrecord.FieldUpdatedAt)
	}
	if m.child != nil {
		fields = append(fields, growthrecord.FieldChildID)
	}
	if m.date != nil {
		fields = append(fields, growthrecord.FieldDate)
	}
	if m.tasks_completed != nil {
		fields = append(fields, growthrecord.FieldTasksCompleted)
	}
	if m.xp_earned != nil {
		fields = append(fields, growthrecord.FieldXpEarned)
	}
	if m.average_expression_score != nil {
		fields = append(fields, growthrecord.FieldAverageExpressionScore)
	}
	if m.average_logic_score != nil {
		fields = append(fields, growthrecord.FieldAverageLogicScore)
	}
	if m.average_exploration_score != nil {
		fields = append(fields, growthrecord.FieldAverageExplorationScore)
	}
	if m.average_creativity_score != nil {
		fields = append(fields, growthrecord.FieldAverageCreativityScore)
	}
	if m.average_habit_score != nil {
		fields = append(fields, growthrecord.FieldAverageHabitScore)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GrowthRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case growthrecord.FieldCreatedAt:
		return m.CreatedAt()
	case growthrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	case growthrecord.FieldChildID:
		return m.ChildID()
	case growthrecord.FieldDate:
		return m.Date()
	case growthrecord.FieldTasksCompleted:
		return m.TasksCompleted()
	case growthrecord.FieldXpEarned:
		return m.XpEarned()
	case growthrecord.FieldAverageExpressionScore:
		return m.AverageExpressionScore()
	case growthrecord.FieldAverageLogicScore:
		return m.AverageLogicScore()
	case growthrecord.FieldAverageExplorationScore:
		return m.AverageExplorationScore()
	case growthrecord.FieldAverageCreativityScore:
		return m.AverageCreativityScore()
	case growthrecord.FieldAverageHabitScore:
		return m.AverageHabitScore()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GrowthRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case growthrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case growthrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case growthrecord.FieldChildID:
		return m.OldChildID(ctx)
	case growthrecord.FieldDate:
		return m.OldDate(ctx)
	case growthrecord.FieldTasksCompleted:
		return m.OldTasksCompleted(ctx)
	case growthrecord.FieldXpEarned:
		return m.OldXpEarned(ctx)
	case growthrecord.FieldAverageExpressionScore:
		return m.OldAverageExpressionScore(ctx)
	case growthrecord.FieldAverageLogicScore:
		return m.OldAverageLogicScore(ctx)
	case growthrecord.FieldAverageExplorationScore:
		return m.OldAverageExplorationScore(ctx)
	case growthrecord.FieldAverageCreativityScore:
		return m.OldAverageCreativityScore(ctx)
	case growthrecord.FieldAverageHabitScore:
		return m.OldAverageHabitScore(ctx)
	}
	return nil, fmt.Errorf("unknown GrowthRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GrowthRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case growthrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case growthrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case growthrecord.FieldChildID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChildID(v)
		return nil
	case growthrecord.FieldDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case growthrecord.FieldTasksCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTasksCompleted(v)
		return nil
	case growthrecord.FieldXpEarned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetXpEarned(v)
		return nil
	case growthrecord.FieldAverageExpressionScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAverageExpressionScore(v)
		return nil
	case growthrecord.FieldAverageLogicScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAverageLogicScore(v)
		return nil
	case growthrecord.FieldAverageExplorationScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAverageExplorationScore(v)
		return nil
	case growthrecord.FieldAverageCreativityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAverageCreativityScore(v)
		return nil
	case growthrecord.FieldAverageHabitScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAverageHabitScore(v)
		return nil
	}
	return fmt.Errorf("unknown GrowthRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GrowthRecordMutation) AddedFields() []string {
	var fields []string
	if m.addtasks_completed != nil {
		fields = append(fields, growthrecord.FieldTasksCompleted)
	}
	if m.addxp_earned != nil {
		fields = append(fields, growthrecord.FieldXpEarned)
	}
	if m.addaverage_expression_score != nil {
		fields = append(fields, growthrecord.FieldAverageExpressionScore)
	}
	if m.addaverage_logic_score != nil {
		fields = append(fields, growthrecord.FieldAverageLogicScore)
	}
	if m.addaverage_exploration_score != nil {
		fields = append(fields, growthrecord.FieldAverageExplorationScore)
	}
	if m.addaverage_creativity_score != nil {
		fields = append(fields, growthrecord.FieldAverageCreativityScore)
	}
	if m.addaverage_habit_score != nil {
		fields = append(fields, growthrecord.FieldAverageHabitScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GrowthRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case growthrecord.FieldTasksCompleted:
		return m.AddedTasksCompleted()
	case growthrecord.FieldXpEarned:
		return m.AddedXpEarned()
	case growthrecord.FieldAverageExpressionScore:
		return m.AddedAverageExpressionScore()
	case growthrecord.FieldAverageLogicScore:
		return m.AddedAverageLogicScore()
	case growthrecord.FieldAverageExplorationScore:
		return m.AddedAverageExplorationScore()
	case growthrecord.FieldAverageCreativityScore:
		return m.AddedAverageCreativityScore()
	case growthrecord.FieldAverageHabitScore:
		return m.AddedAverageHabitScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GrowthRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case growthrecord.FieldTasksCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTasksCompleted(v)
		return nil
	case growthrecord.FieldXpEarned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddXpEarned(v)
		return nil
	case growthrecord.FieldAverageExpressionScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAverageExpressionScore(v)
		return nil
	case growthrecord.FieldAverageLogicScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAverageLogicScore(v)
		return nil
	case growthrecord.FieldAverageExplorationScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAverageExplorationScore(v)
		return nil
	case growthrecord.FieldAverageCreativityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAverageCreativityScore(v)
		return nil
	case growthrecord.FieldAverageHabitScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAverageHabitScore(v)
		return nil
	}
	return fmt.Errorf("unknown GrowthRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GrowthRecordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GrowthRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GrowthRecordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown GrowthRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GrowthRecordMutation) ResetField(name string) error {
	switch name {
	case growthrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case growthrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case growthrecord.FieldChildID:
		m.ResetChildID()
		return nil
	case growthrecord.FieldDate:
		m.ResetDate()
		return nil
	case growthrecord.FieldTasksCompleted:
		m.ResetTasksCompleted()
		return nil
	case growthrecord.FieldXpEarned:
		m.ResetXpEarned()
		return nil
	case growthrecord.FieldAverageExpressionScore:
		m.ResetAverageExpressionScore()
		return nil
	case growthrecord.FieldAverageLogicScore:
		m.ResetAverageLogicScore()
		return nil
	case growthrecord.FieldAverageExplorationScore:
		m.ResetAverageExplorationScore()
		return nil
	case growthrecord.FieldAverageCreativityScore:
		m.ResetAverageCreativityScore()
		return nil
	case growthrecord.FieldAverageHabitScore:
		m.ResetAverageHabitScore()
		return nil
	}
	return fmt.Errorf("unknown GrowthRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GrowthRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.child != nil {
		edges = append(edges, growthrecord.EdgeChild)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GrowthRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case growthrecord.EdgeChild:
		if id := m.child; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GrowthRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GrowthRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GrowthRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedchild {
		edges = append(edges, growthrecord.EdgeChild)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GrowthRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case growthrecord.EdgeChild:
		return m.clearedchild
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GrowthRecordMutation) ClearEdge(name string) error {
	switch name {
	case growthrecord.EdgeChild:
		m.ClearChild()
		return nil
	}
	return fmt.Errorf("unknown GrowthRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GrowthRecordMutation) ResetEdge(name string) error {
	switch name {
	case growthrecord.EdgeChild:
		m.ResetChild()
		return nil
	}
	return fmt.Errorf("unknown GrowthRecord edge %s", name)
}

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	request_body     *string
	response_body    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// SetRequestBody sets the "request_body" field.
func (m *LLMRequestEventMutation) SetRequestBody(s string) {
	m.request_body = &s
}

// RequestBody returns the value of the "request_body" field in the mutation.
func (m *LLMRequestEventMutation) RequestBody() (r string, exists bool) {
	v := m.request_body
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestBody returns the old "request_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldRequestBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestBody: %w", err)
	}
	return oldValue.RequestBody, nil
}

// ResetRequestBody resets all changes to the "request_body" field.
func (m *LLMRequestEventMutation) ResetRequestBody() {
	m.request_body = nil
}

// SetResponseBody sets the "response_body" field.
func (m *LLMRequestEventMutation) SetResponseBody(s string) {
	m.response_body = &s
}

// ResponseBody returns the value of the "response_body" field in the mutation.
func (m *LLMRequestEventMutation) ResponseBody() (r string, exists bool) {
	v := m.response_body
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseBody returns the old "response_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldResponseBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseBody: %w", err)
	}
	return oldValue.ResponseBody, nil
}

// ResetResponseBody resets all changes to the "response_body" field.
func (m *LLMRequestEventMutation) ResetResponseBody() {
	m.response_body = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	if m.request_body != nil {
		fields = append(fields, llmrequestevent.FieldRequestBody)
	}
	if m.response_body != nil {
		fields = append(fields, llmrequestevent.FieldResponseBody)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	case llmrequestevent.FieldRequestBody:
		return m.RequestBody()
	case llmrequestevent.FieldResponseBody:
		return m.ResponseBody()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case llmrequestevent.FieldRequestBody:
		return m.OldRequestBody(ctx)
	case llmrequestevent.FieldResponseBody:
		return m.OldResponseBody(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case llmrequestevent.FieldRequestBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestBody(v)
		return nil
	case llmrequestevent.FieldResponseBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseBody(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case llmrequestevent.FieldRequestBody:
		m.ResetRequestBody()
		return nil
	case llmrequestevent.FieldResponseBody:
		m.ResetResponseBody()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	created_at          *time.Time
	updated_at          *time.Time
	ability             *string
	difficulty          *int
	adddifficulty       *int
	title               *string
	description         *string
	prompt              *string
	constraints         *[]string
	appendconstraints   []string
	expected_minutes    *int
	addexpected_minutes *int
	clearedFields       map[string]struct{}
	records             map[uuid.UUID]struct{}
	removedrecords      map[uuid.UUID]struct{}
	clearedrecords      bool
	done                bool
	oldValue            func(context.Context) (*Task, error)
	predicates          []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id uuid.UUID) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetAbility sets the "ability" field.
func (m *TaskMutation) SetAbility(s string) {
	m.ability = &s
}

// Ability returns the value of the "ability" field in the mutation.
func (m *TaskMutation) Ability() (r string, exists bool) {
	v := m.ability
	if v == nil {
		return
	}
	return *v, true
}

// OldAbility returns the old "ability" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAbility(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAbility is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAbility requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAbility: %w", err)
	}
	return oldValue.Ability, nil
}

// ResetAbility resets all changes to the "ability" field.
func (m *TaskMutation) ResetAbility() {
	m.ability = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *TaskMutation) SetDifficulty(i int) {
	m.difficulty = &i
	m.adddifficulty = nil
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *TaskMutation) Difficulty() (r int, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDifficulty(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// AddDifficulty adds i to the "difficulty" field.
func (m *TaskMutation) AddDifficulty(i int) {
	if m.adddifficulty != nil {
		*m.adddifficulty += i
	} else {
		m.adddifficulty = &i
	}
}

// AddedDifficulty returns the value that was added to the "difficulty" field in this mutation.
func (m *TaskMutation) AddedDifficulty() (r int, exists bool) {
	v := m.adddifficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *TaskMutation) ResetDifficulty() {
	m.difficulty = nil
	m.adddifficulty = nil
}

// SetTitle sets the "title" field.
func (m *TaskMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TaskMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TaskMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *TaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *TaskMutation) ResetDescription() {
	m.description = nil
}

// SetPrompt sets the "prompt" field.
func (m *TaskMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *TaskMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *TaskMutation) ResetPrompt() {
	m.prompt = nil
}

// SetConstraints sets the "constraints" field.
func (m *TaskMutation) SetConstraints(s []string) {
	m.constraints = &s
	m.appendconstraints = nil
}

// Constraints returns the value of the "constraints" field in the mutation.
func (m *TaskMutation) Constraints() (r []string, exists bool) {
	v := m.constraints
	if v == nil {
		return
	}
	return *v, true
}

// OldConstraints returns the old "constraints" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldConstraints(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConstraints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConstraints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConstraints: %w", err)
	}
	return oldValue.Constraints, nil
}

// AppendConstraints adds s to the "constraints" field.
func (m *TaskMutation) AppendConstraints(s []string) {
	m.appendconstraints = append(m.appendconstraints, s...)
}

// AppendedConstraints returns the list of values that were appended to the "constraints" field in this mutation.
func (m *TaskMutation) AppendedConstraints() ([]string, bool) {
	if len(m.appendconstraints) == 0 {
		return nil, false
	}
	return m.appendconstraints, true
}

// ClearConstraints clears the value of the "constraints" field.
func (m *TaskMutation) ClearConstraints() {
	m.constraints = nil
	m.appendconstraints = nil
	m.clearedFields[task.FieldConstraints] = struct{}{}
}

// ConstraintsCleared returns if the "constraints" field was cleared in this mutation.
func (m *TaskMutation) ConstraintsCleared() bool {
	_, ok := m.clearedFields[task.FieldConstraints]
	return ok
}

// ResetConstraints resets all changes to the "constraints" field.
func (m *TaskMutation) ResetConstraints() {
	m.constraints = nil
	m.appendconstraints = nil
	delete(m.clearedFields, task.FieldConstraints)
}

// SetExpectedMinutes sets the "expected_minutes" field.
func (m *TaskMutation) SetExpectedMinutes(i int) {
	m.expected_minutes = &i
	m.addexpected_minutes = nil
}

// ExpectedMinutes returns the value of the "expected_minutes" field in the mutation.
func (m *TaskMutation) ExpectedMinutes() (r int, exists bool) {
	v := m.expected_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldExpectedMinutes returns the old "expected_minutes" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldExpectedMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpectedMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpectedMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpectedMinutes: %w", err)
	}
	return oldValue.ExpectedMinutes, nil
}

// AddExpectedMinutes adds i to the "expected_minutes" field.
func (m *TaskMutation) AddExpectedMinutes(i int) {
	if m.addexpected_minutes != nil {
		*m.addexpected_minutes += i
	} else {
		m.addexpected_minutes = &i
	}
}

// AddedExpectedMinutes returns the value that was added to the "expected_minutes" field in this mutation.
func (m *TaskMutation) AddedExpectedMinutes() (r int, exists bool) {
	v := m.addexpected_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetExpectedMinutes resets all changes to the "expected_minutes" field.
func (m *TaskMutation) ResetExpectedMinutes() {
	m.expected_minutes = nil
	m.addexpected_minutes = nil
}

// AddRecordIDs adds the "records" edge to the TaskRecord entity by ids.
func (m *TaskMutation) AddRecordIDs(ids ...uuid.UUID) {
	if m.records == nil {
		m.records = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.records[ids[i]] = struct{}{}
	}
}

// ClearRecords clears the "records" edge to the TaskRecord entity.
func (m *TaskMutation) ClearRecords() {
	m.clearedrecords = true
}

// RecordsCleared reports if the "records" edge to the TaskRecord entity was cleared.
func (m *TaskMutation) RecordsCleared() bool {
	return m.clearedrecords
}

// RemoveRecordIDs removes the "records" edge to the TaskRecord entity by IDs.
func (m *TaskMutation) RemoveRecordIDs(ids ...uuid.UUID) {
	if m.removedrecords == nil {
		m.removedrecords = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.records, ids[i])
		m.removedrecords[ids[i]] = struct{}{}
	}
}

// RemovedRecords returns the removed IDs of the "records" edge to the TaskRecord entity.
func (m *TaskMutation) RemovedRecordsIDs() (ids []uuid.UUID) {
	for id := range m.removedrecords {
		ids = append(ids, id)
	}
	return
}

// RecordsIDs returns the "records" edge IDs in the mutation.
func (m *TaskMutation) RecordsIDs() (ids []uuid.UUID) {
	for id := range m.records {
		ids = append(ids, id)
	}
	return
}

// ResetRecords resets all changes to the "records" edge.
func (m *TaskMutation) ResetRecords() {
	m.records = nil
	m.clearedrecords = false
	m.removedrecords = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, task.FieldUpdatedAt)
	}
	if m.ability != nil {
		fields = append(fields, task.FieldAbility)
	}
	if m.difficulty != nil {
		fields = append(fields, task.FieldDifficulty)
	}
	if m.title != nil {
		fields = append(fields, task.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, task.FieldDescription)
	}
	if m.prompt != nil {
		fields = append(fields, task.FieldPrompt)
	}
	if m.constraints != nil {
		fields = append(fields, task.FieldConstraints)
	}
	if m.expected_minutes != nil {
		fields = append(fields, task.FieldExpectedMinutes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldUpdatedAt:
		return m.UpdatedAt()
	case task.FieldAbility:
		return m.Ability()
	case task.FieldDifficulty:
		return m.Difficulty()
	case task.FieldTitle:
		return m.Title()
	case task.FieldDescription:
		return m.Description()
	case task.FieldPrompt:
		return m.Prompt()
	case task.FieldConstraints:
		return m.Constraints()
	case task.FieldExpectedMinutes:
		return m.ExpectedMinutes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case task.FieldAbility:
		return m.OldAbility(ctx)
	case task.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case task.FieldTitle:
		return m.OldTitle(ctx)
	case task.FieldDescription:
		return m.OldDescription(ctx)
	case task.FieldPrompt:
		return m.OldPrompt(ctx)
	case task.FieldConstraints:
		return m.OldConstraints(ctx)
	case task.FieldExpectedMinutes:
		return m.OldExpectedMinutes(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case task.FieldAbility:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAbility(v)
		return nil
	case task.FieldDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case task.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case task.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case task.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case task.FieldConstraints:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConstraints(v)
		return nil
	case task.FieldExpectedMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpectedMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.adddifficulty != nil {
		fields = append(fields, task.FieldDifficulty)
	}
	if m.addexpected_minutes != nil {
		fields = append(fields, task.FieldExpectedMinutes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldDifficulty:
		return m.AddedDifficulty()
	case task.FieldExpectedMinutes:
		return m.AddedExpectedMinutes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficulty(v)
		return nil
	case task.FieldExpectedMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExpectedMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldConstraints) {
		fields = append(fields, task.FieldConstraints)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldConstraints:
		m.ClearConstraints()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case task.FieldAbility:
		m.ResetAbility()
		return nil
	case task.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case task.FieldTitle:
		m.ResetTitle()
		return nil
	case task.FieldDescription:
		m.ResetDescription()
		return nil
	case task.FieldPrompt:
		m.ResetPrompt()
		return nil
	case task.FieldConstraints:
		m.ResetConstraints()
		return nil
	case task.FieldExpectedMinutes:
		m.ResetExpectedMinutes()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.records != nil {
		edges = append(edges, task.EdgeRecords)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeRecords:
		ids := make([]ent.Value, 0, len(m.records))
		for id := range m.records {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedrecords != nil {
		edges = append(edges, task.EdgeRecords)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeRecords:
		ids := make([]ent.Value, 0, len(m.removedrecords))
		for id := range m.removedrecords {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrecords {
		edges = append(edges, task.EdgeRecords)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeRecords:
		return m.clearedrecords
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeRecords:
		m.ResetRecords()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}

// TaskRecordMutation represents an operation that mutates the TaskRecord nodes in the graph.
type TaskRecordMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	created_at           *time.Time
	updated_at           *time.Time
	status               *taskrecord.Status
	submission           *string
	time_spent_secs      *int
	addtime_spent_secs   *int
	started_at           *time.Time
	completed_at         *time.Time
	expression_score     *float64
	addexpression_score  *float64
	logic_score          *float64
	addlogic_score       *float64
	exploration_score    *float64
	addexploration_score *float64
	creativity_score     *float64
	addcreativity_score  *float64
	habit_score          *float64
	addhabit_score       *float64
	feedback             *string
	suggestions          *[]string
	appendsuggestions    []string
	exemplar_answer      *string
	xp_earned            *int
	addxp_earned         *int
	clearedFields        map[string]struct{}
	child                *uuid.UUID
	clearedchild         bool
	task                 *uuid.UUID
	clearedtask          bool
	done                 bool
	oldValue             func(context.Context) (*TaskRecord, error)
	predicates           []predicate.TaskRecord
}

var _ ent.Mutation = (*TaskRecordMutation)(nil)

// taskrecordOption allows management of the mutation configuration using functional options.
type taskrecordOption func(*TaskRecordMutation)

// newTaskRecordMutation creates new mutation for the TaskRecord entity.
func newTaskRecordMutation(c config, op Op, opts ...taskrecordOption) *TaskRecordMutation {
	m := &TaskRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskRecordID sets the ID field of the mutation.
func withTaskRecordID(id uuid.UUID) taskrecordOption {
	return func(m *TaskRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskRecord
		)
		m.oldValue = func(ctx context.Context) (*TaskRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskRecord sets the old TaskRecord of the mutation.
func withTaskRecord(node *TaskRecord) taskrecordOption {
	return func(m *TaskRecordMutation) {
		m.oldValue = func(context.Context) (*TaskRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TaskRecord entities.
func (m *TaskRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TaskRecord entity.
// If the TaskRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TaskRecord entity.
// If the TaskRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetChildID sets the "child_id" field.
func (m *TaskRecordMutation) SetChildID(u uuid.UUID) {
	m.child = &u
}

// ChildID returns the value of the "child_id" field in the mutation.
func (m *TaskRecordMutation) ChildID() (r uuid.UUID, exists bool) {
	v := m.child
	if v == nil {
		return
	}
	return *v, true
}

// OldChildID returns the old "child_id" field's value of the TaskRecord entity.
// If the TaskRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRecordMutation) OldChildID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChildID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChildID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChildID: %w", err)
	}
	return oldValue.ChildID, nil
}

// ResetChildID resets all changes to the "child_id" field.
func (m *TaskRecordMutation) ResetChildID() {
	m.child = nil
}

// SetTaskID sets the "task_id" field.
func (m *TaskRecordMutation) SetTaskID(u uuid.UUID) {
	m.task = &u
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *TaskRecordMutation) TaskID() (r uuid.UUID, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the TaskRecord entity.
// If the TaskRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRecordMutation) OldTaskID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *TaskRecordMutation) ResetTaskID() {
	m.task = nil
}

// SetStatus sets the "status" field.
func (m *TaskRecordMutation) SetStatus(t taskrecord.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskRecordMutation) Status() (r taskrecord.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TaskRecord entity.
// If the TaskRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRecordMutation) OldStatus(ctx context.Context) (v taskrecord.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskRecordMutation) ResetStatus() {
	m.status = nil
}

// SetSubmission sets the "submission" field.
func (m *TaskRecordMutation) SetSubmission(s string) {
	m.submission = &s
}

// Submission returns the value of the "submission" field in the mutation.
func (m *TaskRecordMutation) Submission() (r string, exists bool) {
	v := m.submission
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmission returns the old "submission" field's value of the TaskRecord entity.
// If the TaskRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRecordMutation) OldSubmission(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmission is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmission requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmission: %w", err)
	}
	return oldValue.Submission, nil
}

// ResetSubmission resets all changes to the "submission" field.
func (m *TaskRecordMutation) ResetSubmission() {
	m.submission = nil
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (m *TaskRecordMutation) SetTimeSpentSecs(i int) {
	m.time_spent_secs = &i
	m.addtime_spent_secs = nil
}

// TimeSpentSecs returns the value of the "time_spent_secs" field in the mutation.
func (m *TaskRecordMutation) TimeSpentSecs() (r int, exists bool) {
	v := m.time_spent_secs
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeSpentSecs returns the old "time_spent_secs" field's value of the TaskRecord entity.
// If the TaskRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRecordMutation) OldTimeSpentSecs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeSpentSecs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeSpentSecs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeSpentSecs: %w", err)
	}
	return oldValue.TimeSpentSecs, nil
}

// AddTimeSpentSecs adds i to the "time_spent_secs" field.
func (m *TaskRecordMutation) AddTimeSpentSecs(i int) {
	if m.addtime_spent_secs != nil {
		*m.addtime_spent_secs += i
	} else {
		m.addtime_spent_secs = &i
	}
}

// AddedTimeSpentSecs returns the value that was added to the "time_spent_secs" field in this mutation.
func (m *TaskRecordMutation) AddedTimeSpentSecs() (r int, exists bool) {
	v := m.addtime_spent_secs
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeSpentSecs resets all changes to the "time_spent_secs" field.
func (m *TaskRecordMutation) ResetTimeSpentSecs() {
	m.time_spent_secs = nil
	m.addtime_spent_secs = nil
}

// SetStartedAt sets the "started_at" field.
func (m *TaskRecordMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TaskRecordMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the TaskRecord entity.
// If the TaskRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRecordMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TaskRecordMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *TaskRecordMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TaskRecordMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the TaskRecord entity.
// If the TaskRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRecordMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TaskRecordMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[taskrecord.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TaskRecordMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[taskrecord.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TaskRecordMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, taskrecord.FieldCompletedAt)
}

// SetExpressionScore sets the "expression_score" field.
func (m *TaskRecordMutation) SetExpressionScore(f float64) {
	m.expression_score = &f
	m.addexpression_score = nil
}

// ExpressionScore returns the value of the "expression_score" field in the mutation.
func (m *TaskRecordMutation) ExpressionScore() (r float64, exists bool) {
	v := m.expression_score
	if v == nil {
		return
	}
	return *v, true
}

// OldExpressionScore returns the old "expression_score" field's value of the TaskRecord entity.
// If the TaskRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRecordMutation) OldExpressionScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpressionScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpressionScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpressionScore: %w", err)
	}
	return oldValue.ExpressionScore, nil
}

// AddExpressionScore adds f to the "expression_score" field.
func (m *TaskRecordMutation) AddExpressionScore(f float64) {
	if m.addexpression_score != nil {
		*m.addexpression_score += f
	} else {
		m.addexpression_score = &f
	}
}

// AddedExpressionScore returns the value that was added to the "expression_score" field in this mutation.
func (m *TaskRecordMutation) AddedExpressionScore() (r float64, exists bool) {
	v := m.addexpression_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearExpressionScore clears the value of the "expression_score" field.
func (m *TaskRecordMutation) ClearExpressionScore() {
	m.expression_score = nil
	m.addexpression_score = nil
	m.clearedFields[taskrecord.FieldExpressionScore] = struct{}{}
}

// ExpressionScoreCleared returns if the "expression_score" field was cleared in this mutation.
func (m *TaskRecordMutation) ExpressionScoreCleared() bool {
	_, ok := m.clearedFields[taskrecord.FieldExpressionScore]
	return ok
}

// ResetExpressionScore resets all changes to the "expression_score" field.
func (m *TaskRecordMutation) ResetExpressionScore() {
	m.expression_score = nil
	m.addexpression_score = nil
	delete(m.clearedFields, taskrecord.FieldExpressionScore)
}

// SetLogicScore sets the "logic_score" field.
func (m *TaskRecordMutation) SetLogicScore(f float64) {
	m.logic_score = &f
	m.addlogic_score = nil
}

// LogicScore returns the value of the "logic_score" field in the mutation.
func (m *TaskRecordMutation) LogicScore() (r float64, exists bool) {
	v := m.logic_score
	if v == nil {
		return
	}
	return *v, true
}

// OldLogicScore returns the old "logic_score" field's value of the TaskRecord entity.
// If the TaskRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRecordMutation) OldLogicScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLogicScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLogicScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLogicScore: %w", err)
	}
	return oldValue.LogicScore, nil
}

// AddLogicScore adds f to the "logic_score" field.
func (m *TaskRecordMutation) AddLogicScore(f float64) {
	if m.addlogic_score != nil {
		*m.addlogic_score += f
	} else {
		m.addlogic_score = &f
	}
}

// AddedLogicScore returns the value that was added to the "logic_score" field in this mutation.
func (m *TaskRecordMutation) AddedLogicScore() (r float64, exists bool) {
	v := m.addlogic_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearLogicScore clears the value of the "logic_score" field.
func (m *TaskRecordMutation) ClearLogicScore() {
	m.logic_score = nil
	m.addlogic_score = nil
	m.clearedFields[taskrecord.FieldLogicScore] = struct{}{}
}

// LogicScoreCleared returns if the "logic_score" field was cleared in this mutation.
func (m *TaskRecordMutation) LogicScoreCleared() bool {
	_, ok := m.clearedFields[taskrecord.FieldLogicScore]
	return ok
}

// ResetLogicScore resets all changes to the "logic_score" field.
func (m *TaskRecordMutation) ResetLogicScore() {
	m.logic_score = nil
	m.addlogic_score = nil
	delete(m.clearedFields, taskrecord.FieldLogicScore)
}

// SetExplorationScore sets the "exploration_score" field.
func (m *TaskRecordMutation) SetExplorationScore(f float64) {
	m.exploration_score = &f
	m.addexploration_score = nil
}

// ExplorationScore returns the value of the "exploration_score" field in the mutation.
func (m *TaskRecordMutation) ExplorationScore() (r float64, exists bool) {
	v := m.exploration_score
	if v == nil {
		return
	}
	return *v, true
}

// OldExplorationScore returns the old "exploration_score" field's value of the TaskRecord entity.
// If the TaskRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRecordMutation) OldExplorationScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExplorationScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExplorationScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExplorationScore: %w", err)
	}
	return oldValue.ExplorationScore, nil
}

// AddExplorationScore adds f to the "exploration_score" field.
func (m *TaskRecordMutation) AddExplorationScore(f float64) {
	if m.addexploration_score != nil {
		*m.addexploration_score += f
	} else {
		m.addexploration_score = &f
	}
}

// AddedExplorationScore returns the value that was added to the "exploration_score" field in this mutation.
func (m *TaskRecordMutation) AddedExplorationScore() (r float64, exists bool) {
	v := m.addexploration_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearExplorationScore clears the value of the "exploration_score" field.
func (m *TaskRecordMutation) ClearExplorationScore() {
	m.exploration_score = nil
	m.addexploration_score = nil
	m.clearedFields[taskrecord.FieldExplorationScore] = struct{}{}
}

// ExplorationScoreCleared returns if the "exploration_score" field was cleared in this mutation.
func (m *TaskRecordMutation) ExplorationScoreCleared() bool {
	_, ok := m.clearedFields[taskrecord.FieldExplorationScore]
	return ok
}

// ResetExplorationScore resets all changes to the "exploration_score" field.
func (m *TaskRecordMutation) ResetExplorationScore() {
	m.exploration_score = nil
	m.addexploration_score = nil
	delete(m.clearedFields, taskrecord.FieldExplorationScore)
}

// SetCreativityScore sets the "creativity_score" field.
func (m *TaskRecordMutation) SetCreativityScore(f float64) {
	m.creativity_score = &f
	m.addcreativity_score = nil
}

// CreativityScore returns the value of the "creativity_score" field in the mutation.
func (m *TaskRecordMutation) CreativityScore() (r float64, exists bool) {
	v := m.creativity_score
	if v == nil {
		return
	}
	return *v, true
}

// OldCreativityScore returns the old "creativity_score" field's value of the TaskRecord entity.
// If the TaskRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRecordMutation) OldCreativityScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreativityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreativityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreativityScore: %w", err)
	}
	return oldValue.CreativityScore, nil
}

// AddCreativityScore adds f to the "creativity_score" field.
func (m *TaskRecordMutation) AddCreativityScore(f float64) {
	if m.addcreativity_score != nil {
		*m.addcreativity_score += f
	} else {
		m.addcreativity_score = &f
	}
}

// AddedCreativityScore returns the value that was added to the "creativity_score" field in this mutation.
func (m *TaskRecordMutation) AddedCreativityScore() (r float64, exists bool) {
	v := m.addcreativity_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearCreativityScore clears the value of the "creativity_score" field.
func (m *TaskRecordMutation) ClearCreativityScore() {
	m.creativity_score = nil
	m.addcreativity_score = nil
	m.clearedFields[taskrecord.FieldCreativityScore] = struct{}{}
}

// CreativityScoreCleared returns if the "creativity_score" field was cleared in this mutation.
func (m *TaskRecordMutation) CreativityScoreCleared() bool {
	_, ok := m.clearedFields[taskrecord.FieldCreativityScore]
	return ok
}

// ResetCreativityScore resets all changes to the "creativity_score" field.
func (m *TaskRecordMutation) ResetCreativityScore() {
	m.creativity_score = nil
	m.addcreativity_score = nil
	delete(m.clearedFields, taskrecord.FieldCreativityScore)
}

// SetHabitScore sets the "habit_score" field.
func (m *TaskRecordMutation) SetHabitScore(f float64) {
	m.habit_score = &f
	m.addhabit_score = nil
}

// HabitScore returns the value of the "habit_score" field in the mutation.
func (m *TaskRecordMutation) HabitScore() (r float64, exists bool) {
	v := m.habit_score
	if v == nil {
		return
	}
	return *v, true
}

// OldHabitScore returns the old "habit_score" field's value of the TaskRecord entity.
// If the TaskRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRecordMutation) OldHabitScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHabitScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHabitScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHabitScore: %w", err)
	}
	return oldValue.HabitScore, nil
}

// AddHabitScore adds f to the "habit_score" field.
func (m *TaskRecordMutation) AddHabitScore(f float64) {
	if m.addhabit_score != nil {
		*m.addhabit_score += f
	} else {
		m.addhabit_score = &f
	}
}

// AddedHabitScore returns the value that was added to the "habit_score" field in this mutation.
func (m *TaskRecordMutation) AddedHabitScore() (r float64, exists bool) {
	v := m.addhabit_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearHabitScore clears the value of the "habit_score" field.
func (m *TaskRecordMutation) ClearHabitScore() {
	m.habit_score = nil
	m.addhabit_score = nil
	m.clearedFields[taskrecord.FieldHabitScore] = struct{}{}
}

// HabitScoreCleared returns if the "habit_score" field was cleared in this mutation.
func (m *TaskRecordMutation) HabitScoreCleared() bool {
	_, ok := m.clearedFields[taskrecord.FieldHabitScore]
	return ok
}

// ResetHabitScore resets all changes to the "habit_score" field.
func (m *TaskRecordMutation) ResetHabitScore() {
	m.habit_score = nil
	m.addhabit_score = nil
	delete(m.clearedFields, taskrecord.FieldHabitScore)
}

// SetFeedback sets the "feedback" field.
func (m *TaskRecordMutation) SetFeedback(s string) {
	m.feedback = &s
}

// Feedback returns the value of the "feedback" field in the mutation.
func (m *TaskRecordMutation) Feedback() (r string, exists bool) {
	v := m.feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedback returns the old "feedback" field's value of the TaskRecord entity.
// If the TaskRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRecordMutation) OldFeedback(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedback: %w", err)
	}
	return oldValue.Feedback, nil
}

// ResetFeedback resets all changes to the "feedback" field.
func (m *TaskRecordMutation) ResetFeedback() {
	m.feedback = nil
}

// SetSuggestions sets the "suggestions" field.
func (m *TaskRecordMutation) SetSuggestions(s []string) {
	m.suggestions = &s
	m.appendsuggestions = nil
}

// Suggestions returns the value of the "suggestions" field in the mutation.
func (m *TaskRecordMutation) Suggestions() (r []string, exists bool) {
	v := m.suggestions
	if v == nil {
		return
	}
	return *v, true
}

// OldSuggestions returns the old "suggestions" field's value of the TaskRecord entity.
// If the TaskRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRecordMutation) OldSuggestions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuggestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuggestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuggestions: %w", err)
	}
	return oldValue.Suggestions, nil
}

// AppendSuggestions adds s to the "suggestions" field.
func (m *TaskRecordMutation) AppendSuggestions(s []string) {
	m.appendsuggestions = append(m.appendsuggestions, s...)
}

// AppendedSuggestions returns the list of values that were appended to the "suggestions" field in this mutation.
func (m *TaskRecordMutation) AppendedSuggestions() ([]string, bool) {
	if len(m.appendsuggestions) == 0 {
		return nil, false
	}
	return m.appendsuggestions, true
}

// ClearSuggestions clears the value of the "suggestions" field.
func (m *TaskRecordMutation) ClearSuggestions() {
	m.suggestions = nil
	m.appendsuggestions = nil
	m.clearedFields[taskrecord.FieldSuggestions] = struct{}{}
}

// SuggestionsCleared returns if the "suggestions" field was cleared in this mutation.
func (m *TaskRecordMutation) SuggestionsCleared() bool {
	_, ok := m.clearedFields[taskrecord.FieldSuggestions]
	return ok
}

// ResetSuggestions resets all changes to the "suggestions" field.
func (m *TaskRecordMutation) ResetSuggestions() {
	m.suggestions = nil
	m.appendsuggestions = nil
	delete(m.clearedFields, taskrecord.FieldSuggestions)
}

// SetExemplarAnswer sets the "exemplar_answer" field.
func (m *TaskRecordMutation) SetExemplarAnswer(s string) {
	m.exemplar_answer = &s
}

// ExemplarAnswer returns the value of the "exemplar_answer" field in the mutation.
func (m *TaskRecordMutation) ExemplarAnswer() (r string, exists bool) {
	v := m.exemplar_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldExemplarAnswer returns the old "exemplar_answer" field's value of the TaskRecord entity.
// If the TaskRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRecordMutation) OldExemplarAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExemplarAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExemplarAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExemplarAnswer: %w", err)
	}
	return oldValue.ExemplarAnswer, nil
}

// ResetExemplarAnswer resets all changes to the "exemplar_answer" field.
func (m *TaskRecordMutation) ResetExemplarAnswer() {
	m.exemplar_answer = nil
}

// SetXpEarned sets the "xp_earned" field.
func (m *TaskRecordMutation) SetXpEarned(i int) {
	m.xp_earned = &i
	m.addxp_earned = nil
}

// XpEarned returns the value of the "xp_earned" field in the mutation.
func (m *TaskRecordMutation) XpEarned() (r int, exists bool) {
	v := m.xp_earned
	if v == nil {
		return
	}
	return *v, true
}

// OldXpEarned returns the old "xp_earned" field's value of the TaskRecord entity.
// If the TaskRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskRecordMutation) OldXpEarned(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldXpEarned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldXpEarned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldXpEarned: %w", err)
	}
	return oldValue.XpEarned, nil
}

// AddXpEarned adds i to the "xp_earned" field.
func (m *TaskRecordMutation) AddXpEarned(i int) {
	if m.addxp_earned != nil {
		*m.addxp_earned += i
	} else {
		m.addxp_earned = &i
	}
}

// AddedXpEarned returns the value that was added to the "xp_earned" field in this mutation.
func (m *TaskRecordMutation) AddedXpEarned() (r int, exists bool) {
	v := m.addxp_earned
	if v == nil {
		return
	}
	return *v, true
}

// ResetXpEarned resets all changes to the "xp_earned" field.
func (m *TaskRecordMutation) ResetXpEarned() {
	m.xp_earned = nil
	m.addxp_earned = nil
}

// ClearChild clears the "child" edge to the Child entity.
func (m *TaskRecordMutation) ClearChild() {
	m.clearedchild = true
	m.clearedFields[taskrecord.FieldChildID] = struct{}{}
}

// ChildCleared reports if the "child" edge to the Child entity was cleared.
func (m *TaskRecordMutation) ChildCleared() bool {
	return m.clearedchild
}

// ChildIDs returns the "child" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChildID instead. It exists only for internal usage by the builders.
func (m *TaskRecordMutation) ChildIDs() (ids []uuid.UUID) {
	if id := m.child; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChild resets all changes to the "child" edge.
func (m *TaskRecordMutation) ResetChild() {
	m.child = nil
	m.clearedchild = false
}

// ClearTask clears the "task" edge to the Task entity.
func (m *TaskRecordMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[taskrecord.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *TaskRecordMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *TaskRecordMutation) TaskIDs() (ids []uuid.UUID) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *TaskRecordMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the TaskRecordMutation builder.
func (m *TaskRecordMutation) Where(ps ...predicate.TaskRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskRecord).
func (m *TaskRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskRecordMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.created_at != nil {
		fields = append(fields, taskrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, taskrecord.FieldUpdatedAt)
	}
	if m.child != nil {
		fields = append(fields, taskrecord.FieldChildID)
	}
	if m.task != nil {
		fields = append(fields, taskrecord.FieldTaskID)
	}
	if m.status != nil {
		fields = append(fields, taskrecord.FieldStatus)
	}
	if m.submission != nil {
		fields = append(fields, taskrecord.FieldSubmission)
	}
	if m.time_spent_secs != nil {
		fields = append(fields, taskrecord.FieldTimeSpentSecs)
	}
	if m.started_at != nil {
		fields = append(fields, taskrecord.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, taskrecord.FieldCompletedAt)
	}
	if m.expression_score != nil {
		fields = append(fields, taskrecord.FieldExpressionScore)
	}
	if m.logic_score != nil {
		fields = append(fields, taskrecord.FieldLogicScore)
	}
	if m.exploration_score != nil {
		fields = append(fields, taskrecord.FieldExplorationScore)
	}
	if m.creativity_score != nil {
		fields = append(fields, taskrecord.FieldCreativityScore)
	}
	if m.habit_score != nil {
		fields = append(fields, taskrecord.FieldHabitScore)
	}
	if m.feedback != nil {
		fields = append(fields, taskrecord.FieldFeedback)
	}
	if m.suggestions != nil {
		fields = append(fields, taskrecord.FieldSuggestions)
	}
	if m.exemplar_answer != nil {
		fields = append(fields, taskrecord.FieldExemplarAnswer)
	}
	if m.xp_earned != nil {
		fields = append(fields, taskrecord.FieldXpEarned)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case taskrecord.FieldCreatedAt:
		return m.CreatedAt()
	case taskrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	case taskrecord.FieldChildID:
		return m.ChildID()
	case taskrecord.FieldTaskID:
		return m.TaskID()
	case taskrecord.FieldStatus:
		return m.Status()
	case taskrecord.FieldSubmission:
		return m.Submission()
	case taskrecord.FieldTimeSpentSecs:
		return m.TimeSpentSecs()
	case taskrecord.FieldStartedAt:
		return m.StartedAt()
	case taskrecord.FieldCompletedAt:
		return m.CompletedAt()
	case taskrecord.FieldExpressionScore:
		return m.ExpressionScore()
	case taskrecord.FieldLogicScore:
		return m.LogicScore()
	case taskrecord.FieldExplorationScore:
		return m.ExplorationScore()
	case taskrecord.FieldCreativityScore:
		return m.CreativityScore()
	case taskrecord.FieldHabitScore:
		return m.HabitScore()
	case taskrecord.FieldFeedback:
		return m.Feedback()
	case taskrecord.FieldSuggestions:
		return m.Suggestions()
	case taskrecord.FieldExemplarAnswer:
		return m.ExemplarAnswer()
	case taskrecord.FieldXpEarned:
		return m.XpEarned()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case taskrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case taskrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case taskrecord.FieldChildID:
		return m.OldChildID(ctx)
	case taskrecord.FieldTaskID:
		return m.OldTaskID(ctx)
	case taskrecord.FieldStatus:
		return m.OldStatus(ctx)
	case taskrecord.FieldSubmission:
		return m.OldSubmission(ctx)
	case taskrecord.FieldTimeSpentSecs:
		return m.OldTimeSpentSecs(ctx)
	case taskrecord.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case taskrecord.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case taskrecord.FieldExpressionScore:
		return m.OldExpressionScore(ctx)
	case taskrecord.FieldLogicScore:
		return m.OldLogicScore(ctx)
	case taskrecord.FieldExplorationScore:
		return m.OldExplorationScore(ctx)
	case taskrecord.FieldCreativityScore:
		return m.OldCreativityScore(ctx)
	case taskrecord.FieldHabitScore:
		return m.OldHabitScore(ctx)
	case taskrecord.FieldFeedback:
		return m.OldFeedback(ctx)
	case taskrecord.FieldSuggestions:
		return m.OldSuggestions(ctx)
	case taskrecord.FieldExemplarAnswer:
		return m.OldExemplarAnswer(ctx)
	case taskrecord.FieldXpEarned:
		return m.OldXpEarned(ctx)
	}
	return nil, fmt.Errorf("unknown TaskRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case taskrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case taskrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case taskrecord.FieldChildID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChildID(v)
		return nil
	case taskrecord.FieldTaskID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case taskrecord.FieldStatus:
		v, ok := value.(taskrecord.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case taskrecord.FieldSubmission:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmission(v)
		return nil
	case taskrecord.FieldTimeSpentSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeSpentSecs(v)
		return nil
	case taskrecord.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case taskrecord.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case taskrecord.FieldExpressionScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpressionScore(v)
		return nil
	case taskrecord.FieldLogicScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLogicScore(v)
		return nil
	case taskrecord.FieldExplorationScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExplorationScore(v)
		return nil
	case taskrecord.FieldCreativityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreativityScore(v)
		return nil
	case taskrecord.FieldHabitScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHabitScore(v)
		return nil
	case taskrecord.FieldFeedback:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedback(v)
		return nil
	case taskrecord.FieldSuggestions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuggestions(v)
		return nil
	case taskrecord.FieldExemplarAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExemplarAnswer(v)
		return nil
	case taskrecord.FieldXpEarned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetXpEarned(v)
		return nil
	}
	return fmt.Errorf("unknown TaskRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskRecordMutation) AddedFields() []string {
	var fields []string
	if m.addtime_spent_secs != nil {
		fields = append(fields, taskrecord.FieldTimeSpentSecs)
	}
	if m.addexpression_score != nil {
		fields = append(fields, taskrecord.FieldExpressionScore)
	}
	if m.addlogic_score != nil {
		fields = append(fields, taskrecord.FieldLogicScore)
	}
	if m.addexploration_score != nil {
		fields = append(fields, taskrecord.FieldExplorationScore)
	}
	if m.addcreativity_score != nil {
		fields = append(fields, taskrecord.FieldCreativityScore)
	}
	if m.addhabit_score != nil {
		fields = append(fields, taskrecord.FieldHabitScore)
	}
	if m.addxp_earned != nil {
		fields = append(fields, taskrecord.FieldXpEarned)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case taskrecord.FieldTimeSpentSecs:
		return m.AddedTimeSpentSecs()
	case taskrecord.FieldExpressionScore:
		return m.AddedExpressionScore()
	case taskrecord.FieldLogicScore:
		return m.AddedLogicScore()
	case taskrecord.FieldExplorationScore:
		return m.AddedExplorationScore()
	case taskrecord.FieldCreativityScore:
		return m.AddedCreativityScore()
	case taskrecord.FieldHabitScore:
		return m.AddedHabitScore()
	case taskrecord.FieldXpEarned:
		return m.AddedXpEarned()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case taskrecord.FieldTimeSpentSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeSpentSecs(v)
		return nil
	case taskrecord.FieldExpressionScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExpressionScore(v)
		return nil
	case taskrecord.FieldLogicScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLogicScore(v)
		return nil
	case taskrecord.FieldExplorationScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExplorationScore(v)
		return nil
	case taskrecord.FieldCreativityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreativityScore(v)
		return nil
	case taskrecord.FieldHabitScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHabitScore(v)
		return nil
	case taskrecord.FieldXpEarned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddXpEarned(v)
		return nil
	}
	return fmt.Errorf("unknown TaskRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(taskrecord.FieldCompletedAt) {
		fields = append(fields, taskrecord.FieldCompletedAt)
	}
	if m.FieldCleared(taskrecord.FieldExpressionScore) {
		fields = append(fields, taskrecord.FieldExpressionScore)
	}
	if m.FieldCleared(taskrecord.FieldLogicScore) {
		fields = append(fields, taskrecord.FieldLogicScore)
	}
	if m.FieldCleared(taskrecord.FieldExplorationScore) {
		fields = append(fields, taskrecord.FieldExplorationScore)
	}
	if m.FieldCleared(taskrecord.FieldCreativityScore) {
		fields = append(fields, taskrecord.FieldCreativityScore)
	}
	if m.FieldCleared(taskrecord.FieldHabitScore) {
		fields = append(fields, taskrecord.FieldHabitScore)
	}
	if m.FieldCleared(taskrecord.FieldSuggestions) {
		fields = append(fields, taskrecord.FieldSuggestions)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskRecordMutation) ClearField(name string) error {
	switch name {
	case taskrecord.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case taskrecord.FieldExpressionScore:
		m.ClearExpressionScore()
		return nil
	case taskrecord.FieldLogicScore:
		m.ClearLogicScore()
		return nil
	case taskrecord.FieldExplorationScore:
		m.ClearExplorationScore()
		return nil
	case taskrecord.FieldCreativityScore:
		m.ClearCreativityScore()
		return nil
	case taskrecord.FieldHabitScore:
		m.ClearHabitScore()
		return nil
	case taskrecord.FieldSuggestions:
		m.ClearSuggestions()
		return nil
	}
	return fmt.Errorf("unknown TaskRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskRecordMutation) ResetField(name string) error {
	switch name {
	case taskrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case taskrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case taskrecord.FieldChildID:
		m.ResetChildID()
		return nil
	case taskrecord.FieldTaskID:
		m.ResetTaskID()
		return nil
	case taskrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case taskrecord.FieldSubmission:
		m.ResetSubmission()
		return nil
	case taskrecord.FieldTimeSpentSecs:
		m.ResetTimeSpentSecs()
		return nil
	case taskrecord.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case taskrecord.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case taskrecord.FieldExpressionScore:
		m.ResetExpressionScore()
		return nil
	case taskrecord.FieldLogicScore:
		m.ResetLogicScore()
		return nil
	case taskrecord.FieldExplorationScore:
		m.ResetExplorationScore()
		return nil
	case taskrecord.FieldCreativityScore:
		m.ResetCreativityScore()
		return nil
	case taskrecord.FieldHabitScore:
		m.ResetHabitScore()
		return nil
	case taskrecord.FieldFeedback:
		m.ResetFeedback()
		return nil
	case taskrecord.FieldSuggestions:
		m.ResetSuggestions()
		return nil
	case taskrecord.FieldExemplarAnswer:
		m.ResetExemplarAnswer()
		return nil
	case taskrecord.FieldXpEarned:
		m.ResetXpEarned()
		return nil
	}
	return fmt.Errorf("unknown TaskRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.child != nil {
		edges = append(edges, taskrecord.EdgeChild)
	}
	if m.task != nil {
		edges = append(edges, taskrecord.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case taskrecord.EdgeChild:
		if id := m.child; id != nil {
			return []ent.Value{*id}
		}
	case taskrecord.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedchild {
		edges = append(edges, taskrecord.EdgeChild)
	}
	if m.clearedtask {
		edges = append(edges, taskrecord.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case taskrecord.EdgeChild:
		return m.clearedchild
	case taskrecord.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskRecordMutation) ClearEdge(name string) error {
	switch name {
	case taskrecord.EdgeChild:
		m.ClearChild()
		return nil
	case taskrecord.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown TaskRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskRecordMutation) ResetEdge(name string) error {
	switch name {
	case taskrecord.EdgeChild:
		m.ResetChild()
		return nil
	case taskrecord.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown TaskRecord edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	created_at      *time.Time
	updated_at      *time.Time
	phone           *string
	password_hash   *string
	role            *user.Role
	last_login_at   *time.Time
	clearedFields   map[string]struct{}
	children        map[uuid.UUID]struct{}
	removedchildren map[uuid.UUID]struct{}
	clearedchildren bool
	done            bool
	oldValue        func(context.Context) (*User, error)
	predicates      []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uuid.UUID) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPhone sets the "phone" field.
func (m *UserMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *UserMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ResetPhone resets all changes to the "phone" field.
func (m *UserMutation) ResetPhone() {
	m.phone = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(u user.Role) {
	m.role = &u
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r user.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v user.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetLastLoginAt sets the "last_login_at" field.
func (m *UserMutation) SetLastLoginAt(t time.Time) {
	m.last_login_at = &t
}

// LastLoginAt returns the value of the "last_login_at" field in the mutation.
func (m *UserMutation) LastLoginAt() (r time.Time, exists bool) {
	v := m.last_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLoginAt returns the old "last_login_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastLoginAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLoginAt: %w", err)
	}
	return oldValue.LastLoginAt, nil
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (m *UserMutation) ClearLastLoginAt() {
	m.last_login_at = nil
	m.clearedFields[user.FieldLastLoginAt] = struct{}{}
}

// LastLoginAtCleared returns if the "last_login_at" field was cleared in this mutation.
func (m *UserMutation) LastLoginAtCleared() bool {
	_, ok := m.clearedFields[user.FieldLastLoginAt]
	return ok
}

// ResetLastLoginAt resets all changes to the "last_login_at" field.
func (m *UserMutation) ResetLastLoginAt() {
	m.last_login_at = nil
	delete(m.clearedFields, user.FieldLastLoginAt)
}

// AddChildIDs adds the "children" edge to the Child entity by ids.
func (m *UserMutation) AddChildIDs(ids ...uuid.UUID) {
	if m.children == nil {
		m.children = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.children[ids[i]] = struct{}{}
	}
}

// ClearChildren clears the "children" edge to the Child entity.
func (m *UserMutation) ClearChildren() {
	m.clearedchildren = true
}

// ChildrenCleared reports if the "children" edge to the Child entity was cleared.
func (m *UserMutation) ChildrenCleared() bool {
	return m.clearedchildren
}

// RemoveChildIDs removes the "children" edge to the Child entity by IDs.
func (m *UserMutation) RemoveChildIDs(ids ...uuid.UUID) {
	if m.removedchildren == nil {
		m.removedchildren = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.children, ids[i])
		m.removedchildren[ids[i]] = struct{}{}
	}
}

// RemovedChildren returns the removed IDs of the "children" edge to the Child entity.
func (m *UserMutation) RemovedChildrenIDs() (ids []uuid.UUID) {
	for id := range m.removedchildren {
		ids = append(ids, id)
	}
	return
}

// ChildrenIDs returns the "children" edge IDs in the mutation.
func (m *UserMutation) ChildrenIDs() (ids []uuid.UUID) {
	for id := range m.children {
		ids = append(ids, id)
	}
	return
}

// ResetChildren resets all changes to the "children" edge.
func (m *UserMutation) ResetChildren() {
	m.children = nil
	m.clearedchildren = false
	m.removedchildren = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	if m.phone != nil {
		fields = append(fields, user.FieldPhone)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.last_login_at != nil {
		fields = append(fields, user.FieldLastLoginAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	case user.FieldPhone:
		return m.Phone()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldRole:
		return m.Role()
	case user.FieldLastLoginAt:
		return m.LastLoginAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case user.FieldPhone:
		return m.OldPhone(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldLastLoginAt:
		return m.OldLastLoginAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case user.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldRole:
		v, ok := value.(user.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldLastLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLoginAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldLastLoginAt) {
		fields = append(fields, user.FieldLastLoginAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldLastLoginAt:
		m.ClearLastLoginAt()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case user.FieldPhone:
		m.ResetPhone()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldLastLoginAt:
		m.ResetLastLoginAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.children != nil {
		edges = append(edges, user.EdgeChildren)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeChildren:
		ids := make([]ent.Value, 0, len(m.children))
		for id := range m.children {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedchildren != nil {
		edges = append(edges, user.EdgeChildren)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeChildren:
		ids := make([]ent.Value, 0, len(m.removedchildren))
		for id := range m.removedchildren {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedchildren {
		edges = append(edges, user.EdgeChildren)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeChildren:
		return m.clearedchildren
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeChildren:
		m.ResetChildren()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}

// WeeklyReportMutation represents an operation that mutates the WeeklyReport nodes in the graph.
type WeeklyReportMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	created_at              *time.Time
	updated_at              *time.Time
	week_start              *time.Time
	week_end                *time.Time
	tasks_completed         *int
	addtasks_completed      *int
	average_score           *float64
	addaverage_score        *float64
	most_improved           *string
	needs_work              *string
	summary                 *string
	insights                *map[string]string
	suggestions             *[]string
	appendsuggestions       []string
	recommended_games       *[]string
	appendrecommended_games []string
	clearedFields           map[string]struct{}
	child                   *uuid.UUID
	clearedchild            bool
	done                    bool
	oldValue                func(context.Context) (*WeeklyReport, error)
	predicates              []predicate.WeeklyReport
}

var _ ent.Mutation = (*WeeklyReportMutation)(nil)

// weeklyreportOption allows management of the mutation configuration using functional options.
type weeklyreportOption func(*WeeklyReportMutation)

// newWeeklyReportMutation creates new mutation for the WeeklyReport entity.
func newWeeklyReportMutation(c config, op Op, opts ...weeklyreportOption) *WeeklyReportMutation {
	m := &WeeklyReportMutation{
		config:        c,
		op:            op,
		typ:           TypeWeeklyReport,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWeeklyReportID sets the ID field of the mutation.
func withWeeklyReportID(id uuid.UUID) weeklyreportOption {
	return func(m *WeeklyReportMutation) {
		var (
			err   error
			once  sync.Once
			value *WeeklyReport
		)
		m.oldValue = func(ctx context.Context) (*WeeklyReport, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WeeklyReport.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWeeklyReport sets the old WeeklyReport of the mutation.
func withWeeklyReport(node *WeeklyReport) weeklyreportOption {
	return func(m *WeeklyReportMutation) {
		m.oldValue = func(context.Context) (*WeeklyReport, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WeeklyReportMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WeeklyReportMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WeeklyReport entities.
func (m *WeeklyReportMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WeeklyReportMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WeeklyReportMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WeeklyReport.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *WeeklyReportMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WeeklyReportMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WeeklyReport entity.
// If the WeeklyReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeeklyReportMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WeeklyReportMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WeeklyReportMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WeeklyReportMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WeeklyReport entity.
// If the WeeklyReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeeklyReportMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WeeklyReportMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetChildID sets the "child_id" field.
func (m *WeeklyReportMutation) SetChildID(u uuid.UUID) {
	m.child = &u
}

// ChildID returns the value of the "child_id" field in the mutation.
func (m *WeeklyReportMutation) ChildID() (r uuid.UUID, exists bool) {
	v := m.child
	if v == nil {
		return
	}
	return *v, true
}

// OldChildID returns the old "child_id" field's value of the WeeklyReport entity.
// If the WeeklyReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeeklyReportMutation) OldChildID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChildID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChildID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChildID: %w", err)
	}
	return oldValue.ChildID, nil
}

// ResetChildID resets all changes to the "child_id" field.
func (m *WeeklyReportMutation) ResetChildID() {
	m.child = nil
}

// SetWeekStart sets the "week_start" field.
func (m *WeeklyReportMutation) SetWeekStart(t time.Time) {
	m.week_start = &t
}

// WeekStart returns the value of the "week_start" field in the mutation.
func (m *WeeklyReportMutation) WeekStart() (r time.Time, exists bool) {
	v := m.week_start
	if v == nil {
		return
	}
	return *v, true
}

// OldWeekStart returns the old "week_start" field's value of the WeeklyReport entity.
// If the WeeklyReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeeklyReportMutation) OldWeekStart(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeekStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeekStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeekStart: %w", err)
	}
	return oldValue.WeekStart, nil
}

// ResetWeekStart resets all changes to the "week_start" field.
func (m *WeeklyReportMutation) ResetWeekStart() {
	m.week_start = nil
}

// SetWeekEnd sets the "week_end" field.
func (m *WeeklyReportMutation) SetWeekEnd(t time.Time) {
	m.week_end = &t
}

// WeekEnd returns the value of the "week_end" field in the mutation.
func (m *WeeklyReportMutation) WeekEnd() (r time.Time, exists bool) {
	v := m.week_end
	if v == nil {
		return
	}
	return *v, true
}

// OldWeekEnd returns the old "week_end" field's value of the WeeklyReport entity.
// If the WeeklyReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeeklyReportMutation) OldWeekEnd(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeekEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeekEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeekEnd: %w", err)
	}
	return oldValue.WeekEnd, nil
}

// ResetWeekEnd resets all changes to the "week_end" field.
func (m *WeeklyReportMutation) ResetWeekEnd() {
	m.week_end = nil
}

// SetTasksCompleted sets the "tasks_completed" field.
func (m *WeeklyReportMutation) SetTasksCompleted(i int) {
	m.tasks_completed = &i
	m.addtasks_completed = nil
}

// TasksCompleted returns the value of the "tasks_completed" field in the mutation.
func (m *WeeklyReportMutation) TasksCompleted() (r int, exists bool) {
	v := m.tasks_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldTasksCompleted returns the old "tasks_completed" field's value of the WeeklyReport entity.
// If the WeeklyReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeeklyReportMutation) OldTasksCompleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTasksCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTasksCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTasksCompleted: %w", err)
	}
	return oldValue.TasksCompleted, nil
}

// AddTasksCompleted adds i to the "tasks_completed" field.
func (m *WeeklyReportMutation) AddTasksCompleted(i int) {
	if m.addtasks_completed != nil {
		*m.addtasks_completed += i
	} else {
		m.addtasks_completed = &i
	}
}

// AddedTasksCompleted returns the value that was added to the "tasks_completed" field in this mutation.
func (m *WeeklyReportMutation) AddedTasksCompleted() (r int, exists bool) {
	v := m.addtasks_completed
	if v == nil {
		return
	}
	return *v, true
}

// ResetTasksCompleted resets all changes to the "tasks_completed" field.
func (m *WeeklyReportMutation) ResetTasksCompleted() {
	m.tasks_completed = nil
	m.addtasks_completed = nil
}

// SetAverageScore sets the "average_score" field.
func (m *WeeklyReportMutation) SetAverageScore(f float64) {
	m.average_score = &f
	m.addaverage_score = nil
}

// AverageScore returns the value of the "average_score" field in the mutation.
func (m *WeeklyReportMutation) AverageScore() (r float64, exists bool) {
	v := m.average_score
	if v == nil {
		return
	}
	return *v, true
}

// OldAverageScore returns the old "average_score" field's value of the WeeklyReport entity.
// If the WeeklyReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeeklyReportMutation) OldAverageScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAverageScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAverageScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAverageScore: %w", err)
	}
	return oldValue.AverageScore, nil
}

// AddAverageScore adds f to the "average_score" field.
func (m *WeeklyReportMutation) AddAverageScore(f float64) {
	if m.addaverage_score != nil {
		*m.addaverage_score += f
	} else {
		m.addaverage_score = &f
	}
}

// AddedAverageScore returns the value that was added to the "average_score" field in this mutation.
func (m *WeeklyReportMutation) AddedAverageScore() (r float64, exists bool) {
	v := m.addaverage_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetAverageScore resets all changes to the "average_score" field.
func (m *WeeklyReportMutation) ResetAverageScore() {
	m.average_score = nil
	m.addaverage_score = nil
}

// SetMostImproved sets the "most_improved" field.
func (m *WeeklyReportMutation) SetMostImproved(s string) {
	m.most_improved = &s
}

// MostImproved returns the value of the "most_improved" field in the mutation.
func (m *WeeklyReportMutation) MostImproved() (r string, exists bool) {
	v := m.most_improved
	if v == nil {
		return
	}
	return *v, true
}

// OldMostImproved returns the old "most_improved" field's value of the WeeklyReport entity.
// If the WeeklyReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeeklyReportMutation) OldMostImproved(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMostImproved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMostImproved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMostImproved: %w", err)
	}
	return oldValue.MostImproved, nil
}

// ResetMostImproved resets all changes to the "most_improved" field.
func (m *WeeklyReportMutation) ResetMostImproved() {
	m.most_improved = nil
}

// SetNeedsWork sets the "needs_work" field.
func (m *WeeklyReportMutation) SetNeedsWork(s string) {
	m.needs_work = &s
}

// NeedsWork returns the value of the "needs_work" field in the mutation.
func (m *WeeklyReportMutation) NeedsWork() (r string, exists bool) {
	v := m.needs_work
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsWork returns the old "needs_work" field's value of the WeeklyReport entity.
// If the WeeklyReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeeklyReportMutation) OldNeedsWork(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsWork is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsWork requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsWork: %w", err)
	}
	return oldValue.NeedsWork, nil
}

// ResetNeedsWork resets all changes to the "needs_work" field.
func (m *WeeklyReportMutation) ResetNeedsWork() {
	m.needs_work = nil
}

// SetSummary sets the "summary" field.
func (m *WeeklyReportMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *WeeklyReportMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the WeeklyReport entity.
// If the WeeklyReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeeklyReportMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ResetSummary resets all changes to the "summary" field.
func (m *WeeklyReportMutation) ResetSummary() {
	m.summary = nil
}

// SetInsights sets the "insights" field.
func (m *WeeklyReportMutation) SetInsights(value map[string]string) {
	m.insights = &value
}

// Insights returns the value of the "insights" field in the mutation.
func (m *WeeklyReportMutation) Insights() (r map[string]string, exists bool) {
	v := m.insights
	if v == nil {
		return
	}
	return *v, true
}

// OldInsights returns the old "insights" field's value of the WeeklyReport entity.
// If the WeeklyReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeeklyReportMutation) OldInsights(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInsights is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInsights requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInsights: %w", err)
	}
	return oldValue.Insights, nil
}

// ClearInsights clears the value of the "insights" field.
func (m *WeeklyReportMutation) ClearInsights() {
	m.insights = nil
	m.clearedFields[weeklyreport.FieldInsights] = struct{}{}
}

// InsightsCleared returns if the "insights" field was cleared in this mutation.
func (m *WeeklyReportMutation) InsightsCleared() bool {
	_, ok := m.clearedFields[weeklyreport.FieldInsights]
	return ok
}

// ResetInsights resets all changes to the "insights" field.
func (m *WeeklyReportMutation) ResetInsights() {
	m.insights = nil
	delete(m.clearedFields, weeklyreport.FieldInsights)
}

// SetSuggestions sets the "suggestions" field.
func (m *WeeklyReportMutation) SetSuggestions(s []string) {
	m.suggestions = &s
	m.appendsuggestions = nil
}

// Suggestions returns the value of the "suggestions" field in the mutation.
func (m *WeeklyReportMutation) Suggestions() (r []string, exists bool) {
	v := m.suggestions
	if v == nil {
		return
	}
	return *v, true
}

// OldSuggestions returns the old "suggestions" field's value of the WeeklyReport entity.
// If the WeeklyReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeeklyReportMutation) OldSuggestions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuggestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuggestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuggestions: %w", err)
	}
	return oldValue.Suggestions, nil
}

// AppendSuggestions adds s to the "suggestions" field.
func (m *WeeklyReportMutation) AppendSuggestions(s []string) {
	m.appendsuggestions = append(m.appendsuggestions, s...)
}

// AppendedSuggestions returns the list of values that were appended to the "suggestions" field in this mutation.
func (m *WeeklyReportMutation) AppendedSuggestions() ([]string, bool) {
	if len(m.appendsuggestions) == 0 {
		return nil, false
	}
	return m.appendsuggestions, true
}

// ClearSuggestions clears the value of the "suggestions" field.
func (m *WeeklyReportMutation) ClearSuggestions() {
	m.suggestions = nil
	m.appendsuggestions = nil
	m.clearedFields[weeklyreport.FieldSuggestions] = struct{}{}
}

// SuggestionsCleared returns if the "suggestions" field was cleared in this mutation.
func (m *WeeklyReportMutation) SuggestionsCleared() bool {
	_, ok := m.clearedFields[weeklyreport.FieldSuggestions]
	return ok
}

// ResetSuggestions resets all changes to the "suggestions" field.
func (m *WeeklyReportMutation) ResetSuggestions() {
	m.suggestions = nil
	m.appendsuggestions = nil
	delete(m.clearedFields, weeklyreport.FieldSuggestions)
}

// SetRecommendedGames sets the "recommended_games" field.
func (m *WeeklyReportMutation) SetRecommendedGames(s []string) {
	m.recommended_games = &s
	m.appendrecommended_games = nil
}

// RecommendedGames returns the value of the "recommended_games" field in the mutation.
func (m *WeeklyReportMutation) RecommendedGames() (r []string, exists bool) {
	v := m.recommended_games
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendedGames returns the old "recommended_games" field's value of the WeeklyReport entity.
// If the WeeklyReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeeklyReportMutation) OldRecommendedGames(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendedGames is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendedGames requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendedGames: %w", err)
	}
	return oldValue.RecommendedGames, nil
}

// AppendRecommendedGames adds s to the "recommended_games" field.
func (m *WeeklyReportMutation) AppendRecommendedGames(s []string) {
	m.appendrecommended_games = append(m.appendrecommended_games, s...)
}

// AppendedRecommendedGames returns the list of values that were appended to the "recommended_games" field in this mutation.
func (m *WeeklyReportMutation) AppendedRecommendedGames() ([]string, bool) {
	if len(m.appendrecommended_games) == 0 {
		return nil, false
	}
	return m.appendrecommended_games, true
}

// ClearRecommendedGames clears the value of the "recommended_games" field.
func (m *WeeklyReportMutation) ClearRecommendedGames() {
	m.recommended_games = nil
	m.appendrecommended_games = nil
	m.clearedFields[weeklyreport.FieldRecommendedGames] = struct{}{}
}

// RecommendedGamesCleared returns if the "recommended_games" field was cleared in this mutation.
func (m *WeeklyReportMutation) RecommendedGamesCleared() bool {
	_, ok := m.clearedFields[weeklyreport.FieldRecommendedGames]
	return ok
}

// ResetRecommendedGames resets all changes to the "recommended_games" field.
func (m *WeeklyReportMutation) ResetRecommendedGames() {
	m.recommended_games = nil
	m.appendrecommended_games = nil
	delete(m.clearedFields, weeklyreport.FieldRecommendedGames)
}

// ClearChild clears the "child" edge to the Child entity.
func (m *WeeklyReportMutation) ClearChild() {
	m.clearedchild = true
	m.clearedFields[weeklyreport.FieldChildID] = struct{}{}
}

// ChildCleared reports if the "child" edge to the Child entity was cleared.
func (m *WeeklyReportMutation) ChildCleared() bool {
	return m.clearedchild
}

// ChildIDs returns the "child" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChildID instead. It exists only for internal usage by the builders.
func (m *WeeklyReportMutation) ChildIDs() (ids []uuid.UUID) {
	if id := m.child; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChild resets all changes to the "child" edge.
func (m *WeeklyReportMutation) ResetChild() {
	m.child = nil
	m.clearedchild = false
}

// Where appends a list predicates to the WeeklyReportMutation builder.
func (m *WeeklyReportMutation) Where(ps ...predicate.WeeklyReport) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WeeklyReportMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WeeklyReportMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WeeklyReport, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WeeklyReportMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WeeklyReportMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WeeklyReport).
func (m *WeeklyReportMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WeeklyReportMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.created_at != nil {
		fields = append(fields, weeklyreport.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, weeklyreport.FieldUpdatedAt)
	}
	if m.child != nil {
		fields = append(fields, weeklyreport.FieldChildID)
	}
	if m.week_start != nil {
		fields = append(fields, weeklyreport.FieldWeekStart)
	}
	if m.week_end != nil {
		fields = append(fields, weeklyreport.FieldWeekEnd)
	}
	if m.tasks_completed != nil {
		fields = append(fields, weeklyreport.FieldTasksCompleted)
	}
	if m.average_score != nil {
		fields = append(fields, weeklyreport.FieldAverageScore)
	}
	if m.most_improved != nil {
		fields = append(fields, weeklyreport.FieldMostImproved)
	}
	if m.needs_work != nil {
		fields = append(fields, weeklyreport.FieldNeedsWork)
	}
	if m.summary != nil {
		fields = append(fields, weeklyreport.FieldSummary)
	}
	if m.insights != nil {
		fields = append(fields, weeklyreport.FieldInsights)
	}
	if m.suggestions != nil {
		fields = append(fields, weeklyreport.FieldSuggestions)
	}
	if m.recommended_games != nil {
		fields = append(fields, weeklyreport.FieldRecommendedGames)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WeeklyReportMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case weeklyreport.FieldCreatedAt:
		return m.CreatedAt()
	case weeklyreport.FieldUpdatedAt:
		return m.UpdatedAt()
	case weeklyreport.FieldChildID:
		return m.ChildID()
	case weeklyreport.FieldWeekStart:
		return m.WeekStart()
	case weeklyreport.FieldWeekEnd:
		return m.WeekEnd()
	case weeklyreport.FieldTasksCompleted:
		return m.TasksCompleted()
	case weeklyreport.FieldAverageScore:
		return m.AverageScore()
	case weeklyreport.FieldMostImproved:
		return m.MostImproved()
	case weeklyreport.FieldNeedsWork:
		return m.NeedsWork()
	case weeklyreport.FieldSummary:
		return m.Summary()
	case weeklyreport.FieldInsights:
		return m.Insights()
	case weeklyreport.FieldSuggestions:
		return m.Suggestions()
	case weeklyreport.FieldRecommendedGames:
		return m.RecommendedGames()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WeeklyReportMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case weeklyreport.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case weeklyreport.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case weeklyreport.FieldChildID:
		return m.OldChildID(ctx)
	case weeklyreport.FieldWeekStart:
		return m.OldWeekStart(ctx)
	case weeklyreport.FieldWeekEnd:
		return m.OldWeekEnd(ctx)
	case weeklyreport.FieldTasksCompleted:
		return m.OldTasksCompleted(ctx)
	case weeklyreport.FieldAverageScore:
		return m.OldAverageScore(ctx)
	case weeklyreport.FieldMostImproved:
		return m.OldMostImproved(ctx)
	case weeklyreport.FieldNeedsWork:
		return m.OldNeedsWork(ctx)
	case weeklyreport.FieldSummary:
		return m.OldSummary(ctx)
	case weeklyreport.FieldInsights:
		return m.OldInsights(ctx)
	case weeklyreport.FieldSuggestions:
		return m.OldSuggestions(ctx)
	case weeklyreport.FieldRecommendedGames:
		return m.OldRecommendedGames(ctx)
	}
	return nil, fmt.Errorf("unknown WeeklyReport field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WeeklyReportMutation) SetField(name string, value ent.Value) error {
	switch name {
	case weeklyreport.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case weeklyreport.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case weeklyreport.FieldChildID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChildID(v)
		return nil
	case weeklyreport.FieldWeekStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeekStart(v)
		return nil
	case weeklyreport.FieldWeekEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeekEnd(v)
		return nil
	case weeklyreport.FieldTasksCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTasksCompleted(v)
		return nil
	case weeklyreport.FieldAverageScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAverageScore(v)
		return nil
	case weeklyreport.FieldMostImproved:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMostImproved(v)
		return nil
	case weeklyreport.FieldNeedsWork:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsWork(v)
		return nil
	case weeklyreport.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case weeklyreport.FieldInsights:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInsights(v)
		return nil
	case weeklyreport.FieldSuggestions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuggestions(v)
		return nil
	case weeklyreport.FieldRecommendedGames:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendedGames(v)
		return nil
	}
	return fmt.Errorf("unknown WeeklyReport field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WeeklyReportMutation) AddedFields() []string {
	var fields []string
	if m.addtasks_completed != nil {
		fields = append(fields, weeklyreport.FieldTasksCompleted)
	}
	if m.addaverage_score != nil {
		fields = append(fields, weeklyreport.FieldAverageScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WeeklyReportMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case weeklyreport.FieldTasksCompleted:
		return m.AddedTasksCompleted()
	case weeklyreport.FieldAverageScore:
		return m.AddedAverageScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WeeklyReportMutation) AddField(name string, value ent.Value) error {
	switch name {
	case weeklyreport.FieldTasksCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTasksCompleted(v)
		return nil
	case weeklyreport.FieldAverageScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAverageScore(v)
		return nil
	}
	return fmt.Errorf("unknown WeeklyReport numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WeeklyReportMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(weeklyreport.FieldInsights) {
		fields = append(fields, weeklyreport.FieldInsights)
	}
	if m.FieldCleared(weeklyreport.FieldSuggestions) {
		fields = append(fields, weeklyreport.FieldSuggestions)
	}
	if m.FieldCleared(weeklyreport.FieldRecommendedGames) {
		fields = append(fields, weeklyreport.FieldRecommendedGames)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WeeklyReportMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WeeklyReportMutation) ClearField(name string) error {
	switch name {
	case weeklyreport.FieldInsights:
		m.ClearInsights()
		return nil
	case weeklyreport.FieldSuggestions:
		m.ClearSuggestions()
		return nil
	case weeklyreport.FieldRecommendedGames:
		m.ClearRecommendedGames()
		return nil
	}
	return fmt.Errorf("unknown WeeklyReport nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WeeklyReportMutation) ResetField(name string) error {
	switch name {
	case weeklyreport.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case weeklyreport.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case weeklyreport.FieldChildID:
		m.ResetChildID()
		return nil
	case weeklyreport.FieldWeekStart:
		m.ResetWeekStart()
		return nil
	case weeklyreport.FieldWeekEnd:
		m.ResetWeekEnd()
		return nil
	case weeklyreport.FieldTasksCompleted:
		m.ResetTasksCompleted()
		return nil
	case weeklyreport.FieldAverageScore:
		m.ResetAverageScore()
		return nil
	case weeklyreport.FieldMostImproved:
		m.ResetMostImproved()
		return nil
	case weeklyreport.FieldNeedsWork:
		m.ResetNeedsWork()
		return nil
	case weeklyreport.FieldSummary:
		m.ResetSummary()
		return nil
	case weeklyreport.FieldInsights:
		m.ResetInsights()
		return nil
	case weeklyreport.FieldSuggestions:
		m.ResetSuggestions()
		return nil
	case weeklyreport.FieldRecommendedGames:
		m.ResetRecommendedGames()
		return nil
	}
	return fmt.Errorf("unknown WeeklyReport field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WeeklyReportMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.child != nil {
		edges = append(edges, weeklyreport.EdgeChild)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WeeklyReportMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case weeklyreport.EdgeChild:
		if id := m.child; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WeeklyReportMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WeeklyReportMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WeeklyReportMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedchild {
		edges = append(edges, weeklyreport.EdgeChild)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WeeklyReportMutation) EdgeCleared(name string) bool {
	switch name {
	case weeklyreport.EdgeChild:
		return m.clearedchild
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WeeklyReportMutation) ClearEdge(name string) error {
	switch name {
	case weeklyreport.EdgeChild:
		m.ClearChild()
		return nil
	}
	return fmt.Errorf("unknown WeeklyReport unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WeeklyReportMutation) ResetEdge(name string) error {
	switch name {
	case weeklyreport.EdgeChild:
		m.ResetChild()
		return nil
	}
	return fmt.Errorf("unknown WeeklyReport edge %s", name)
}

// WorkMutation represents an operation that mutates the Work nodes in the graph.
type WorkMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	created_at     *time.Time
	updated_at     *time.Time
	task_record_id *uuid.UUID
	title          *string
	kind           *string
	content        *string
	comment        *string
	score          *float64
	addscore       *float64
	clearedFields  map[string]struct{}
	child          *uuid.UUID
	clearedchild   bool
	done           bool
	oldValue       func(context.Context) (*Work, error)
	predicates     []predicate.Work
}

var _ ent.Mutation = (*WorkMutation)(nil)

// workOption allows management of the mutation configuration using functional options.
type workOption func(*WorkMutation)

// newWorkMutation creates new mutation for the Work entity.
func newWorkMutation(c config, op Op, opts ...workOption) *WorkMutation {
	m := &WorkMutation{
		config:        c,
		op:            op,
		typ:           TypeWork,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkID sets the ID field of the mutation.
func withWorkID(id uuid.UUID) workOption {
	return func(m *WorkMutation) {
		var (
			err   error
			once  sync.Once
			value *Work
		)
		m.oldValue = func(ctx context.Context) (*Work, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Work.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWork sets the old Work of the mutation.
func withWork(node *Work) workOption {
	return func(m *WorkMutation) {
		m.oldValue = func(context.Context) (*Work, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Work entities.
func (m *WorkMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Work.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Work entity.
// If the Work object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Work entity.
// If the Work object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorkMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetChildID sets the "child_id" field.
func (m *WorkMutation) SetChildID(u uuid.UUID) {
	m.child = &u
}

// ChildID returns the value of the "child_id" field in the mutation.
func (m *WorkMutation) ChildID() (r uuid.UUID, exists bool) {
	v := m.child
	if v == nil {
		return
	}
	return *v, true
}

// OldChildID returns the old "child_id" field's value of the Work entity.
// If the Work object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkMutation) OldChildID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChildID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChildID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChildID: %w", err)
	}
	return oldValue.ChildID, nil
}

// ResetChildID resets all changes to the "child_id" field.
func (m *WorkMutation) ResetChildID() {
	m.child = nil
}

// SetTaskRecordID sets the "task_record_id" field.
func (m *WorkMutation) SetTaskRecordID(u uuid.UUID) {
	m.task_record_id = &u
}

// TaskRecordID returns the value of the "task_record_id" field in the mutation.
func (m *WorkMutation) TaskRecordID() (r uuid.UUID, exists bool) {
	v := m.task_record_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskRecordID returns the old "task_record_id" field's value of the Work entity.
// If the Work object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkMutation) OldTaskRecordID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskRecordID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskRecordID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskRecordID: %w", err)
	}
	return oldValue.TaskRecordID, nil
}

// ClearTaskRecordID clears the value of the "task_record_id" field.
func (m *WorkMutation) ClearTaskRecordID() {
	m.task_record_id = nil
	m.clearedFields[work.FieldTaskRecordID] = struct{}{}
}

// TaskRecordIDCleared returns if the "task_record_id" field was cleared in this mutation.
func (m *WorkMutation) TaskRecordIDCleared() bool {
	_, ok := m.clearedFields[work.FieldTaskRecordID]
	return ok
}

// ResetTaskRecordID resets all changes to the "task_record_id" field.
func (m *WorkMutation) ResetTaskRecordID() {
	m.task_record_id = nil
	delete(m.clearedFields, work.FieldTaskRecordID)
}

// SetTitle sets the "title" field.
func (m *WorkMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *WorkMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Work entity.
// If the Work object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *WorkMutation) ResetTitle() {
	m.title = nil
}

// SetKind sets the "kind" field.
func (m *WorkMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *WorkMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Work entity.
// If the Work object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *WorkMutation) ResetKind() {
	m.kind = nil
}

// SetContent sets the "content" field.
func (m *WorkMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *WorkMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Work entity.
// If the Work object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *WorkMutation) ResetContent() {
	m.content = nil
}

// SetComment sets the "comment" field.
func (m *WorkMutation) SetComment(s string) {
	m.comment = &s
}

// Comment returns the value of the "comment" field in the mutation.
func (m *WorkMutation) Comment() (r string, exists bool) {
	v := m.comment
	if v == nil {
		return
	}
	return *v, true
}

// OldComment returns the old "comment" field's value of the Work entity.
// If the Work object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkMutation) OldComment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComment: %w", err)
	}
	return oldValue.Comment, nil
}

// ResetComment resets all changes to the "comment" field.
func (m *WorkMutation) ResetComment() {
	m.comment = nil
}

// SetScore sets the "score" field.
func (m *WorkMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *WorkMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the Work entity.
// If the Work object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *WorkMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *WorkMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *WorkMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// ClearChild clears the "child" edge to the Child entity.
func (m *WorkMutation) ClearChild() {
	m.clearedchild = true
	m.clearedFields[work.FieldChildID] = struct{}{}
}

// ChildCleared reports if the "child" edge to the Child entity was cleared.
func (m *WorkMutation) ChildCleared() bool {
	return m.clearedchild
}

// ChildIDs returns the "child" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChildID instead. It exists only for internal usage by the builders.
func (m *WorkMutation) ChildIDs() (ids []uuid.UUID) {
	if id := m.child; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChild resets all changes to the "child" edge.
func (m *WorkMutation) ResetChild() {
	m.child = nil
	m.clearedchild = false
}

// Where appends a list predicates to the WorkMutation builder.
func (m *WorkMutation) Where(ps ...predicate.Work) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Work, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Work).
func (m *WorkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, work.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, work.FieldUpdatedAt)
	}
	if m.child != nil {
		fields = append(fields, work.FieldChildID)
	}
	if m.task_record_id != nil {
		fields = append(fields, work.FieldTaskRecordID)
	}
	if m.title != nil {
		fields = append(fields, work.FieldTitle)
	}
	if m.kind != nil {
		fields = append(fields, work.FieldKind)
	}
	if m.content != nil {
		fields = append(fields, work.FieldContent)
	}
	if m.comment != nil {
		fields = append(fields, work.FieldComment)
	}
	if m.score != nil {
		fields = append(fields, work.FieldScore)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case work.FieldCreatedAt:
		return m.CreatedAt()
	case work.FieldUpdatedAt:
		return m.UpdatedAt()
	case work.FieldChildID:
		return m.ChildID()
	case work.FieldTaskRecordID:
		return m.TaskRecordID()
	case work.FieldTitle:
		return m.Title()
	case work.FieldKind:
		return m.Kind()
	case work.FieldContent:
		return m.Content()
	case work.FieldComment:
		return m.Comment()
	case work.FieldScore:
		return m.Score()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case work.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case work.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case work.FieldChildID:
		return m.OldChildID(ctx)
	case work.FieldTaskRecordID:
		return m.OldTaskRecordID(ctx)
	case work.FieldTitle:
		return m.OldTitle(ctx)
	case work.FieldKind:
		return m.OldKind(ctx)
	case work.FieldContent:
		return m.OldContent(ctx)
	case work.FieldComment:
		return m.OldComment(ctx)
	case work.FieldScore:
		return m.OldScore(ctx)
	}
	return nil, fmt.Errorf("unknown Work field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case work.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case work.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case work.FieldChildID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChildID(v)
		return nil
	case work.FieldTaskRecordID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskRecordID(v)
		return nil
	case work.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case work.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case work.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case work.FieldComment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComment(v)
		return nil
	case work.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	}
	return fmt.Errorf("unknown Work field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, work.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case work.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkMutation) AddField(name string, value ent.Value) error {
	switch name {
	case work.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown Work numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(work.FieldTaskRecordID) {
		fields = append(fields, work.FieldTaskRecordID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkMutation) ClearField(name string) error {
	switch name {
	case work.FieldTaskRecordID:
		m.ClearTaskRecordID()
		return nil
	}
	return fmt.Errorf("unknown Work nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkMutation) ResetField(name string) error {
	switch name {
	case work.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case work.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case work.FieldChildID:
		m.ResetChildID()
		return nil
	case work.FieldTaskRecordID:
		m.ResetTaskRecordID()
		return nil
	case work.FieldTitle:
		m.ResetTitle()
		return nil
	case work.FieldKind:
		m.ResetKind()
		return nil
	case work.FieldContent:
		m.ResetContent()
		return nil
	case work.FieldComment:
		m.ResetComment()
		return nil
	case work.FieldScore:
		m.ResetScore()
		return nil
	}
	return fmt.Errorf("unknown Work field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.child != nil {
		edges = append(edges, work.EdgeChild)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case work.EdgeChild:
		if id := m.child; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedchild {
		edges = append(edges, work.EdgeChild)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkMutation) EdgeCleared(name string) bool {
	switch name {
	case work.EdgeChild:
		return m.clearedchild
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkMutation) ClearEdge(name string) error {
	switch name {
	case work.EdgeChild:
		m.ClearChild()
		return nil
	}
	return fmt.Errorf("unknown Work unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkMutation) ResetEdge(name string) error {
	switch name {
	case work.EdgeChild:
		m.ResetChild()
		return nil
	}
	return fmt.Errorf("unknown Work edge %s", name)
}
