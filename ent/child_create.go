// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/budai/ent/assessment"
	"github.com/abhisek/budai/ent/badgeaward"
	"github.com/abhisek/budai/ent/child"
	"github.com/abhisek/budai/ent/coachsession"
	"github.com/abhisek/budai/ent/cocreationcontribution"
	"github.com/abhisek/budai/ent/growthrecord"
	"github.com/abhisek/budai/ent/taskrecord"
	"github.com/abhisek/budai/ent/user"
	"github.com/abhisek/budai/ent/weeklyreport"
	"github.com/abhisek/budai/ent/work"
	"github.com/google/uuid"
)

// ChildCreate is the builder for creating a Child entity.
type ChildCreate struct {
	config
	mutation *ChildMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChildCreate) SetCreatedAt(v time.Time) *ChildCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChildCreate) SetNillableCreatedAt(v *time.Time) *ChildCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ChildCreate) SetUpdatedAt(v time.Time) *ChildCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ChildCreate) SetNillableUpdatedAt(v *time.Time) *ChildCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetExpressionScore sets the "expression_score" field.
func (_c *ChildCreate) SetExpressionScore(v float64) *ChildCreate {
	_c.mutation.SetExpressionScore(v)
	return _c
}

// SetNillableExpressionScore sets the "expression_score" field if the given value is not nil.
func (_c *ChildCreate) SetNillableExpressionScore(v *float64) *ChildCreate {
	if v != nil {
		_c.SetExpressionScore(*v)
	}
	return _c
}

// SetLogicScore sets the "logic_score" field.
func (_c *ChildCreate) SetLogicScore(v float64) *ChildCreate {
	_c.mutation.SetLogicScore(v)
	return _c
}

// SetNillableLogicScore sets the "logic_score" field if the given value is not nil.
func (_c *ChildCreate) SetNillableLogicScore(v *float64) *ChildCreate {
	if v != nil {
		_c.SetLogicScore(*v)
	}
	return _c
}

// SetExplorationScore sets the "exploration_score" field.
func (_c *ChildCreate) SetExplorationScore(v float64) *ChildCreate {
	_c.mutation.SetExplorationScore(v)
	return _c
}

// SetNillableExplorationScore sets the "exploration_score" field if the given value is not nil.
func (_c *ChildCreate) SetNillableExplorationScore(v *float64) *ChildCreate {
	if v != nil {
		_c.SetExplorationScore(*v)
	}
	return _c
}

// SetCreativityScore sets the "creativity_score" field.
func (_c *ChildCreate) SetCreativityScore(v float64) *ChildCreate {
	_c.mutation.SetCreativityScore(v)
	return _c
}

// SetNillableCreativityScore sets the "creativity_score" field if the given value is not nil.
func (_c *ChildCreate) SetNillableCreativityScore(v *float64) *ChildCreate {
	if v != nil {
		_c.SetCreativityScore(*v)
	}
	return _c
}

// SetHabitScore sets the "habit_score" field.
func (_c *ChildCreate) SetHabitScore(v float64) *ChildCreate {
	_c.mutation.SetHabitScore(v)
	return _c
}

// SetNillableHabitScore sets the "habit_score" field if the given value is not nil.
func (_c *ChildCreate) SetNillableHabitScore(v *float64) *ChildCreate {
	if v != nil {
		_c.SetHabitScore(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ChildCreate) SetUserID(v uuid.UUID) *ChildCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNickname sets the "nickname" field.
func (_c *ChildCreate) SetNickname(v string) *ChildCreate {
	_c.mutation.SetNickname(v)
	return _c
}

// SetGrade sets the "grade" field.
func (_c *ChildCreate) SetGrade(v string) *ChildCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// SetInterests sets the "interests" field.
func (_c *ChildCreate) SetInterests(v []string) *ChildCreate {
	_c.mutation.SetInterests(v)
	return _c
}

// SetAvatarURL sets the "avatar_url" field.
func (_c *ChildCreate) SetAvatarURL(v string) *ChildCreate {
	_c.mutation.SetAvatarURL(v)
	return _c
}

// SetNillableAvatarURL sets the "avatar_url" field if the given value is not nil.
func (_c *ChildCreate) SetNillableAvatarURL(v *string) *ChildCreate {
	if v != nil {
		_c.SetAvatarURL(*v)
	}
	return _c
}

// SetLevel sets the "level" field.
func (_c *ChildCreate) SetLevel(v int) *ChildCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *ChildCreate) SetNillableLevel(v *int) *ChildCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetXp sets the "xp" field.
func (_c *ChildCreate) SetXp(v int) *ChildCreate {
	_c.mutation.SetXp(v)
	return _c
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_c *ChildCreate) SetNillableXp(v *int) *ChildCreate {
	if v != nil {
		_c.SetXp(*v)
	}
	return _c
}

// SetStreak sets the "streak" field.
func (_c *ChildCreate) SetStreak(v int) *ChildCreate {
	_c.mutation.SetStreak(v)
	return _c
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_c *ChildCreate) SetNillableStreak(v *int) *ChildCreate {
	if v != nil {
		_c.SetStreak(*v)
	}
	return _c
}

// SetLastActiveOn sets the "last_active_on" field.
func (_c *ChildCreate) SetLastActiveOn(v time.Time) *ChildCreate {
	_c.mutation.SetLastActiveOn(v)
	return _c
}

// SetNillableLastActiveOn sets the "last_active_on" field if the given value is not nil.
func (_c *ChildCreate) SetNillableLastActiveOn(v *time.Time) *ChildCreate {
	if v != nil {
		_c.SetLastActiveOn(*v)
	}
	return _c
}

// SetGlobalTitle sets the "global_title" field.
func (_c *ChildCreate) SetGlobalTitle(v string) *ChildCreate {
	_c.mutation.SetGlobalTitle(v)
	return _c
}

// SetNillableGlobalTitle sets the "global_title" field if the given value is not nil.
func (_c *ChildCreate) SetNillableGlobalTitle(v *string) *ChildCreate {
	if v != nil {
		_c.SetGlobalTitle(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChildCreate) SetID(v uuid.UUID) *ChildCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ChildCreate) SetNillableID(v *uuid.UUID) *ChildCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetParentID sets the "parent" edge to the User entity by ID.
func (_c *ChildCreate) SetParentID(id uuid.UUID) *ChildCreate {
	_c.mutation.SetParentID(id)
	return _c
}

// SetParent sets the "parent" edge to the User entity.
func (_c *ChildCreate) SetParent(v *User) *ChildCreate {
	return _c.SetParentID(v.ID)
}

// AddAssessmentIDs adds the "assessments" edge to the Assessment entity by IDs.
func (_c *ChildCreate) AddAssessmentIDs(ids ...uuid.UUID) *ChildCreate {
	_c.mutation.AddAssessmentIDs(ids...)
	return _c
}

// AddAssessments adds the "assessments" edges to the Assessment entity.
func (_c *ChildCreate) AddAssessments(v ...*Assessment) *ChildCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAssessmentIDs(ids...)
}

// AddTaskRecordIDs adds the "task_records" edge to the TaskRecord entity by IDs.
func (_c *ChildCreate) AddTaskRecordIDs(ids ...uuid.UUID) *ChildCreate {
	_c.mutation.AddTaskRecordIDs(ids...)
	return _c
}

// AddTaskRecords adds the "task_records" edges to the TaskRecord entity.
func (_c *ChildCreate) AddTaskRecords(v ...*TaskRecord) *ChildCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTaskRecordIDs(ids...)
}

// AddBadgeAwardIDs adds the "badge_awards" edge to the BadgeAward entity by IDs.
func (_c *ChildCreate) AddBadgeAwardIDs(ids ...uuid.UUID) *ChildCreate {
	_c.mutation.AddBadgeAwardIDs(ids...)
	return _c
}

// AddBadgeAwards adds the "badge_awards" edges to the BadgeAward entity.
func (_c *ChildCreate) AddBadgeAwards(v ...*BadgeAward) *ChildCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBadgeAwardIDs(ids...)
}

// AddContributionIDs adds the "contributions" edge to the CoCreationContribution entity by IDs.
func (_c *ChildCreate) AddContributionIDs(ids ...uuid.UUID) *ChildCreate {
	_c.mutation.AddContributionIDs(ids...)
	return _c
}

// AddContributions adds the "contributions" edges to the CoCreationContribution entity.
func (_c *ChildCreate) AddContributions(v ...*CoCreationContribution) *ChildCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddContributionIDs(ids...)
}

// AddWeeklyReportIDs adds the "weekly_reports" edge to the WeeklyReport entity by IDs.
func (_c *ChildCreate) AddWeeklyReportIDs(ids ...uuid.UUID) *ChildCreate {
	_c.mutation.AddWeeklyReportIDs(ids...)
	return _c
}

// AddWeeklyReports adds the "weekly_reports" edges to the WeeklyReport entity.
func (_c *ChildCreate) AddWeeklyReports(v ...*WeeklyReport) *ChildCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddWeeklyReportIDs(ids...)
}

// AddGrowthRecordIDs adds the "growth_records" edge to the GrowthRecord entity by IDs.
func (_c *ChildCreate) AddGrowthRecordIDs(ids ...uuid.UUID) *ChildCreate {
	_c.mutation.AddGrowthRecordIDs(ids...)
	return _c
}

// AddGrowthRecords adds the "growth_records" edges to the GrowthRecord entity.
func (_c *ChildCreate) AddGrowthRecords(v ...*GrowthRecord) *ChildCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddGrowthRecordIDs(ids...)
}

// AddWorkIDs adds the "works" edge to the Work entity by IDs.
func (_c *ChildCreate) AddWorkIDs(ids ...uuid.UUID) *ChildCreate {
	_c.mutation.AddWorkIDs(ids...)
	return _c
}

// AddWorks adds the "works" edges to the Work entity.
func (_c *ChildCreate) AddWorks(v ...*Work) *ChildCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddWorkIDs(ids...)
}

// AddCoachSessionIDs adds the "coach_sessions" edge to the CoachSession entity by IDs.
func (_c *ChildCreate) AddCoachSessionIDs(ids ...uuid.UUID) *ChildCreate {
	_c.mutation.AddCoachSessionIDs(ids...)
	return _c
}

// AddCoachSessions adds the "coach_sessions" edges to the CoachSession entity.
func (_c *ChildCreate) AddCoachSessions(v ...*CoachSession) *ChildCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCoachSessionIDs(ids...)
}

// Mutation returns the ChildMutation object of the builder.
func (_c *ChildCreate) Mutation() *ChildMutation {
	return _c.mutation
}

// Save creates the Child in the database.
func (_c *ChildCreate) Save(ctx context.Context) (*Child, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChildCreate) SaveX(ctx context.Context) *Child {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChildCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChildCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChildCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := child.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := child.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ExpressionScore(); !ok {
		v := child.DefaultExpressionScore
		_c.mutation.SetExpressionScore(v)
	}
	if _, ok := _c.mutation.LogicScore(); !ok {
		v := child.DefaultLogicScore
		_c.mutation.SetLogicScore(v)
	}
	if _, ok := _c.mutation.ExplorationScore(); !ok {
		v := child.DefaultExplorationScore
		_c.mutation.SetExplorationScore(v)
	}
	if _, ok := _c.mutation.CreativityScore(); !ok {
		v := child.DefaultCreativityScore
		_c.mutation.SetCreativityScore(v)
	}
	if _, ok := _c.mutation.HabitScore(); !ok {
		v := child.DefaultHabitScore
		_c.mutation.SetHabitScore(v)
	}
	if _, ok := _c.mutation.AvatarURL(); !ok {
		v := child.DefaultAvatarURL
		_c.mutation.SetAvatarURL(v)
	}
	if _, ok := _c.mutation.Level(); !ok {
		v := child.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.Xp(); !ok {
		v := child.DefaultXp
		_c.mutation.SetXp(v)
	}
	if _, ok := _c.mutation.Streak(); !ok {
		v := child.DefaultStreak
		_c.mutation.SetStreak(v)
	}
	if _, ok := _c.mutation.GlobalTitle(); !ok {
		v := child.DefaultGlobalTitle
		_c.mutation.SetGlobalTitle(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := child.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChildCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Child.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Child.updated_at"`)}
	}
	if _, ok := _c.mutation.ExpressionScore(); !ok {
		return &ValidationError{Name: "expression_score", err: errors.New(`ent: missing required field "Child.expression_score"`)}
	}
	if _, ok := _c.mutation.LogicScore(); !ok {
		return &ValidationError{Name: "logic_score", err: errors.New(`ent: missing required field "Child.logic_score"`)}
	}
	if _, ok := _c.mutation.ExplorationScore(); !ok {
		return &ValidationError{Name: "exploration_score", err: errors.New(`ent: missing required field "Child.exploration_score"`)}
	}
	if _, ok := _c.mutation.CreativityScore(); !ok {
		return &ValidationError{Name: "creativity_score", err: errors.New(`ent: missing required field "Child.creativity_score"`)}
	}
	if _, ok := _c.mutation.HabitScore(); !ok {
		return &ValidationError{Name: "habit_score", err: errors.New(`ent: missing required field "Child.habit_score"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Child.user_id"`)}
	}
	if _, ok := _c.mutation.Nickname(); !ok {
		return &ValidationError{Name: "nickname", err: errors.New(`ent: missing required field "Child.nickname"`)}
	}
	if v, ok := _c.mutation.Nickname(); ok {
		if err := child.NicknameValidator(v); err != nil {
			return &ValidationError{Name: "nickname", err: fmt.Errorf(`ent: validator failed for field "Child.nickname": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Grade(); !ok {
		return &ValidationError{Name: "grade", err: errors.New(`ent: missing required field "Child.grade"`)}
	}
	if v, ok := _c.mutation.Grade(); ok {
		if err := child.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "Child.grade": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AvatarURL(); !ok {
		return &ValidationError{Name: "avatar_url", err: errors.New(`ent: missing required field "Child.avatar_url"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "Child.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := child.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Child.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Xp(); !ok {
		return &ValidationError{Name: "xp", err: errors.New(`ent: missing required field "Child.xp"`)}
	}
	if v, ok := _c.mutation.Xp(); ok {
		if err := child.XpValidator(v); err != nil {
			return &ValidationError{Name: "xp", err: fmt.Errorf(`ent: validator failed for field "Child.xp": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Streak(); !ok {
		return &ValidationError{Name: "streak", err: errors.New(`ent: missing required field "Child.streak"`)}
	}
	if v, ok := _c.mutation.Streak(); ok {
		if err := child.StreakValidator(v); err != nil {
			return &ValidationError{Name: "streak", err: fmt.Errorf(`ent: validator failed for field "Child.streak": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GlobalTitle(); !ok {
		return &ValidationError{Name: "global_title", err: errors.New(`ent: missing required field "Child.global_title"`)}
	}
	if len(_c.mutation.ParentIDs()) == 0 {
		return &ValidationError{Name: "parent", err: errors.New(`ent: missing required edge "Child.parent"`)}
	}
	return nil
}

func (_c *ChildCreate) sqlSave(ctx context.Context) (*Child, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChildCreate) createSpec() (*Child, *sqlgraph.CreateSpec) {
	var (
		_node = &Child{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(child.Table, sqlgraph.NewFieldSpec(child.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(child.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(child.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ExpressionScore(); ok {
		_spec.SetField(child.FieldExpressionScore, field.TypeFloat64, value)
		_node.ExpressionScore = value
	}
	if value, ok := _c.mutation.LogicScore(); ok {
		_spec.SetField(child.FieldLogicScore, field.TypeFloat64, value)
		_node.LogicScore = value
	}
	if value, ok := _c.mutation.ExplorationScore(); ok {
		_spec.SetField(child.FieldExplorationScore, field.TypeFloat64, value)
		_node.ExplorationScore = value
	}
	if value, ok := _c.mutation.CreativityScore(); ok {
		_spec.SetField(child.FieldCreativityScore, field.TypeFloat64, value)
		_node.CreativityScore = value
	}
	if value, ok := _c.mutation.HabitScore(); ok {
		_spec.SetField(child.FieldHabitScore, field.TypeFloat64, value)
		_node.HabitScore = value
	}
	if value, ok := _c.mutation.Nickname(); ok {
		_spec.SetField(child.FieldNickname, field.TypeString, value)
		_node.Nickname = value
	}
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(child.FieldGrade, field.TypeString, value)
		_node.Grade = value
	}
	if value, ok := _c.mutation.Interests(); ok {
		_spec.SetField(child.FieldInterests, field.TypeJSON, value)
		_node.Interests = value
	}
	if value, ok := _c.mutation.AvatarURL(); ok {
		_spec.SetField(child.FieldAvatarURL, field.TypeString, value)
		_node.AvatarURL = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(child.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Xp(); ok {
		_spec.SetField(child.FieldXp, field.TypeInt, value)
		_node.Xp = value
	}
	if value, ok := _c.mutation.Streak(); ok {
		_spec.SetField(child.FieldStreak, field.TypeInt, value)
		_node.Streak = value
	}
	if value, ok := _c.mutation.LastActiveOn(); ok {
		_spec.SetField(child.FieldLastActiveOn, field.TypeTime, value)
		_node.LastActiveOn = &value
	}
	if value, ok := _c.mutation.GlobalTitle(); ok {
		_spec.SetField(child.FieldGlobalTitle, field.TypeString, value)
		_node.GlobalTitle = value
	}
	if nodes := _c.mutation.ParentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   child.ParentTable,
			Columns: []string{child.ParentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AssessmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   child.AssessmentsTable,
			Columns: []string{child.AssessmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TaskRecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   child.TaskRecordsTable,
			Columns: []string{child.TaskRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BadgeAwardsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   child.BadgeAwardsTable,
			Columns: []string{child.BadgeAwardsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(badgeaward.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ContributionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   child.ContributionsTable,
			Columns: []string{child.ContributionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cocreationcontribution.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.WeeklyReportsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   child.WeeklyReportsTable,
			Columns: []string{child.WeeklyReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(weeklyreport.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.GrowthRecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   child.GrowthRecordsTable,
			Columns: []string{child.GrowthRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(growthrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.WorksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   child.WorksTable,
			Columns: []string{child.WorksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(work.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CoachSessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   child.CoachSessionsTable,
			Columns: []string{child.CoachSessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(coachsession.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ChildCreateBulk is the builder for creating many Child entities in bulk.
type ChildCreateBulk struct {
	config
	err      error
	builders []*ChildCreate
}

// Save creates the Child entities in the database.
func (_c *ChildCreateBulk) Save(ctx context.Context) ([]*Child, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Child, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChildMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ChildCreateBulk) SaveX(ctx context.Context) []*Child {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChildCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChildCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
