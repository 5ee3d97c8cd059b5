// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/budai/ent/assessment"
	"github.com/abhisek/budai/ent/badgeaward"
	"github.com/abhisek/budai/ent/child"
	"github.com/abhisek/budai/ent/coachsession"
	"github.com/abhisek/budai/ent/cocreationcontribution"
	"github.com/abhisek/budai/ent/growthrecord"
	"github.com/abhisek/budai/ent/predicate"
	"github.com/abhisek/budai/ent/taskrecord"
	"github.com/abhisek/budai/ent/user"
	"github.com/abhisek/budai/ent/weeklyreport"
	"github.com/abhisek/budai/ent/work"
	"github.com/google/uuid"
)

// ChildUpdate is the builder for updating Child entities.
type ChildUpdate struct {
	config
	hooks    []Hook
	mutation *ChildMutation
}

// Where appends a list predicates to the ChildUpdate builder.
func (_u *ChildUpdate) Where(ps ...predicate.Child) *ChildUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChildUpdate) SetUpdatedAt(v time.Time) *ChildUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetExpressionScore sets the "expression_score" field.
func (_u *ChildUpdate) SetExpressionScore(v float64) *ChildUpdate {
	_u.mutation.ResetExpressionScore()
	_u.mutation.SetExpressionScore(v)
	return _u
}

// SetNillableExpressionScore sets the "expression_score" field if the given value is not nil.
func (_u *ChildUpdate) SetNillableExpressionScore(v *float64) *ChildUpdate {
	if v != nil {
		_u.SetExpressionScore(*v)
	}
	return _u
}

// AddExpressionScore adds value to the "expression_score" field.
func (_u *ChildUpdate) AddExpressionScore(v float64) *ChildUpdate {
	_u.mutation.AddExpressionScore(v)
	return _u
}

// SetLogicScore sets the "logic_score" field.
func (_u *ChildUpdate) SetLogicScore(v float64) *ChildUpdate {
	_u.mutation.ResetLogicScore()
	_u.mutation.SetLogicScore(v)
	return _u
}

// SetNillableLogicScore sets the "logic_score" field if the given value is not nil.
func (_u *ChildUpdate) SetNillableLogicScore(v *float64) *ChildUpdate {
	if v != nil {
		_u.SetLogicScore(*v)
	}
	return _u
}

// AddLogicScore adds value to the "logic_score" field.
func (_u *ChildUpdate) AddLogicScore(v float64) *ChildUpdate {
	_u.mutation.AddLogicScore(v)
	return _u
}

// SetExplorationScore sets the "exploration_score" field.
func (_u *ChildUpdate) SetExplorationScore(v float64) *ChildUpdate {
	_u.mutation.ResetExplorationScore()
	_u.mutation.SetExplorationScore(v)
	return _u
}

// SetNillableExplorationScore sets the "exploration_score" field if the given value is not nil.
func (_u *ChildUpdate) SetNillableExplorationScore(v *float64) *ChildUpdate {
	if v != nil {
		_u.SetExplorationScore(*v)
	}
	return _u
}

// AddExplorationScore adds value to the "exploration_score" field.
func (_u *ChildUpdate) AddExplorationScore(v float64) *ChildUpdate {
	_u.mutation.AddExplorationScore(v)
	return _u
}

// SetCreativityScore sets the "creativity_score" field.
func (_u *ChildUpdate) SetCreativityScore(v float64) *ChildUpdate {
	_u.mutation.ResetCreativityScore()
	_u.mutation.SetCreativityScore(v)
	return _u
}

// SetNillableCreativityScore sets the "creativity_score" field if the given value is not nil.
func (_u *ChildUpdate) SetNillableCreativityScore(v *float64) *ChildUpdate {
	if v != nil {
		_u.SetCreativityScore(*v)
	}
	return _u
}

// AddCreativityScore adds value to the "creativity_score" field.
func (_u *ChildUpdate) AddCreativityScore(v float64) *ChildUpdate {
	_u.mutation.AddCreativityScore(v)
	return _u
}

// SetHabitScore sets the "habit_score" field.
func (_u *ChildUpdate) SetHabitScore(v float64) *ChildUpdate {
	_u.mutation.ResetHabitScore()
	_u.mutation.SetHabitScore(v)
	return _u
}

// SetNillableHabitScore sets the "habit_score" field if the given value is not nil.
func (_u *ChildUpdate) SetNillableHabitScore(v *float64) *ChildUpdate {
	if v != nil {
		_u.SetHabitScore(*v)
	}
	return _u
}

// AddHabitScore adds value to the "habit_score" field.
func (_u *ChildUpdate) AddHabitScore(v float64) *ChildUpdate {
	_u.mutation.AddHabitScore(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ChildUpdate) SetUserID(v uuid.UUID) *ChildUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ChildUpdate) SetNillableUserID(v *uuid.UUID) *ChildUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetNickname sets the "nickname" field.
func (_u *ChildUpdate) SetNickname(v string) *ChildUpdate {
	_u.mutation.SetNickname(v)
	return _u
}

// SetNillableNickname sets the "nickname" field if the given value is not nil.
func (_u *ChildUpdate) SetNillableNickname(v *string) *ChildUpdate {
	if v != nil {
		_u.SetNickname(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *ChildUpdate) SetGrade(v string) *ChildUpdate {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *ChildUpdate) SetNillableGrade(v *string) *ChildUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetInterests sets the "interests" field.
func (_u *ChildUpdate) SetInterests(v []string) *ChildUpdate {
	_u.mutation.SetInterests(v)
	return _u
}

// AppendInterests appends value to the "interests" field.
func (_u *ChildUpdate) AppendInterests(v []string) *ChildUpdate {
	_u.mutation.AppendInterests(v)
	return _u
}

// ClearInterests clears the value of the "interests" field.
func (_u *ChildUpdate) ClearInterests() *ChildUpdate {
	_u.mutation.ClearInterests()
	return _u
}

// SetAvatarURL sets the "avatar_url" field.
func (_u *ChildUpdate) SetAvatarURL(v string) *ChildUpdate {
	_u.mutation.SetAvatarURL(v)
	return _u
}

// SetNillableAvatarURL sets the "avatar_url" field if the given value is not nil.
func (_u *ChildUpdate) SetNillableAvatarURL(v *string) *ChildUpdate {
	if v != nil {
		_u.SetAvatarURL(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *ChildUpdate) SetLevel(v int) *ChildUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ChildUpdate) SetNillableLevel(v *int) *ChildUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *ChildUpdate) AddLevel(v int) *ChildUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetXp sets the "xp" field.
func (_u *ChildUpdate) SetXp(v int) *ChildUpdate {
	_u.mutation.ResetXp()
	_u.mutation.SetXp(v)
	return _u
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_u *ChildUpdate) SetNillableXp(v *int) *ChildUpdate {
	if v != nil {
		_u.SetXp(*v)
	}
	return _u
}

// AddXp adds value to the "xp" field.
func (_u *ChildUpdate) AddXp(v int) *ChildUpdate {
	_u.mutation.AddXp(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *ChildUpdate) SetStreak(v int) *ChildUpdate {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *ChildUpdate) SetNillableStreak(v *int) *ChildUpdate {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *ChildUpdate) AddStreak(v int) *ChildUpdate {
	_u.mutation.AddStreak(v)
	return _u
}

// SetLastActiveOn sets the "last_active_on" field.
func (_u *ChildUpdate) SetLastActiveOn(v time.Time) *ChildUpdate {
	_u.mutation.SetLastActiveOn(v)
	return _u
}

// SetNillableLastActiveOn sets the "last_active_on" field if the given value is not nil.
func (_u *ChildUpdate) SetNillableLastActiveOn(v *time.Time) *ChildUpdate {
	if v != nil {
		_u.SetLastActiveOn(*v)
	}
	return _u
}

// ClearLastActiveOn clears the value of the "last_active_on" field.
func (_u *ChildUpdate) ClearLastActiveOn() *ChildUpdate {
	_u.mutation.ClearLastActiveOn()
	return _u
}

// SetGlobalTitle sets the "global_title" field.
func (_u *ChildUpdate) SetGlobalTitle(v string) *ChildUpdate {
	_u.mutation.SetGlobalTitle(v)
	return _u
}

// SetNillableGlobalTitle sets the "global_title" field if the given value is not nil.
func (_u *ChildUpdate) SetNillableGlobalTitle(v *string) *ChildUpdate {
	if v != nil {
		_u.SetGlobalTitle(*v)
	}
	return _u
}

// SetParentID sets the "parent" edge to the User entity by ID.
func (_u *ChildUpdate) SetParentID(id uuid.UUID) *ChildUpdate {
	_u.mutation.SetParentID(id)
	return _u
}

// SetParent sets the "parent" edge to the User entity.
func (_u *ChildUpdate) SetParent(v *User) *ChildUpdate {
	return _u.SetParentID(v.ID)
}

// AddAssessmentIDs adds the "assessments" edge to the Assessment entity by IDs.
func (_u *ChildUpdate) AddAssessmentIDs(ids ...uuid.UUID) *ChildUpdate {
	_u.mutation.AddAssessmentIDs(ids...)
	return _u
}

// AddAssessments adds the "assessments" edges to the Assessment entity.
func (_u *ChildUpdate) AddAssessments(v ...*Assessment) *ChildUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssessmentIDs(ids...)
}

// AddTaskRecordIDs adds the "task_records" edge to the TaskRecord entity by IDs.
func (_u *ChildUpdate) AddTaskRecordIDs(ids ...uuid.UUID) *ChildUpdate {
	_u.mutation.AddTaskRecordIDs(ids...)
	return _u
}

// AddTaskRecords adds the "task_records" edges to the TaskRecord entity.
func (_u *ChildUpdate) AddTaskRecords(v ...*TaskRecord) *ChildUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskRecordIDs(ids...)
}

// AddBadgeAwardIDs adds the "badge_awards" edge to the BadgeAward entity by IDs.
func (_u *ChildUpdate) AddBadgeAwardIDs(ids ...uuid.UUID) *ChildUpdate {
	_u.mutation.AddBadgeAwardIDs(ids...)
	return _u
}

// AddBadgeAwards adds the "badge_awards" edges to the BadgeAward entity.
func (_u *ChildUpdate) AddBadgeAwards(v ...*BadgeAward) *ChildUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBadgeAwardIDs(ids...)
}

// AddContributionIDs adds the "contributions" edge to the CoCreationContribution entity by IDs.
func (_u *ChildUpdate) AddContributionIDs(ids ...uuid.UUID) *ChildUpdate {
	_u.mutation.AddContributionIDs(ids...)
	return _u
}

// AddContributions adds the "contributions" edges to the CoCreationContribution entity.
func (_u *ChildUpdate) AddContributions(v ...*CoCreationContribution) *ChildUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddContributionIDs(ids...)
}

// AddWeeklyReportIDs adds the "weekly_reports" edge to the WeeklyReport entity by IDs.
func (_u *ChildUpdate) AddWeeklyReportIDs(ids ...uuid.UUID) *ChildUpdate {
	_u.mutation.AddWeeklyReportIDs(ids...)
	return _u
}

// AddWeeklyReports adds the "weekly_reports" edges to the WeeklyReport entity.
func (_u *ChildUpdate) AddWeeklyReports(v ...*WeeklyReport) *ChildUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWeeklyReportIDs(ids...)
}

// AddGrowthRecordIDs adds the "growth_records" edge to the GrowthRecord entity by IDs.
func (_u *ChildUpdate) AddGrowthRecordIDs(ids ...uuid.UUID) *ChildUpdate {
	_u.mutation.AddGrowthRecordIDs(ids...)
	return _u
}

// AddGrowthRecords adds the "growth_records" edges to the GrowthRecord entity.
func (_u *ChildUpdate) AddGrowthRecords(v ...*GrowthRecord) *ChildUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGrowthRecordIDs(ids...)
}

// AddWorkIDs adds the "works" edge to the Work entity by IDs.
func (_u *ChildUpdate) AddWorkIDs(ids ...uuid.UUID) *ChildUpdate {
	_u.mutation.AddWorkIDs(ids...)
	return _u
}

// AddWorks adds the "works" edges to the Work entity.
func (_u *ChildUpdate) AddWorks(v ...*Work) *ChildUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWorkIDs(ids...)
}

// AddCoachSessionIDs adds the "coach_sessions" edge to the CoachSession entity by IDs.
func (_u *ChildUpdate) AddCoachSessionIDs(ids ...uuid.UUID) *ChildUpdate {
	_u.mutation.AddCoachSessionIDs(ids...)
	return _u
}

// AddCoachSessions adds the "coach_sessions" edges to the CoachSession entity.
func (_u *ChildUpdate) AddCoachSessions(v ...*CoachSession) *ChildUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCoachSessionIDs(ids...)
}

// Mutation returns the ChildMutation object of the builder.
func (_u *ChildUpdate) Mutation() *ChildMutation {
	return _u.mutation
}

// ClearParent clears the "parent" edge to the User entity.
func (_u *ChildUpdate) ClearParent() *ChildUpdate {
	_u.mutation.ClearParent()
	return _u
}

// ClearAssessments clears all "assessments" edges to the Assessment entity.
func (_u *ChildUpdate) ClearAssessments() *ChildUpdate {
	_u.mutation.ClearAssessments()
	return _u
}

// RemoveAssessmentIDs removes the "assessments" edge to Assessment entities by IDs.
func (_u *ChildUpdate) RemoveAssessmentIDs(ids ...uuid.UUID) *ChildUpdate {
	_u.mutation.RemoveAssessmentIDs(ids...)
	return _u
}

// RemoveAssessments removes "assessments" edges to Assessment entities.
func (_u *ChildUpdate) RemoveAssessments(v ...*Assessment) *ChildUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssessmentIDs(ids...)
}

// ClearTaskRecords clears all "task_records" edges to the TaskRecord entity.
func (_u *ChildUpdate) ClearTaskRecords() *ChildUpdate {
	_u.mutation.ClearTaskRecords()
	return _u
}

// RemoveTaskRecordIDs removes the "task_records" edge to TaskRecord entities by IDs.
func (_u *ChildUpdate) RemoveTaskRecordIDs(ids ...uuid.UUID) *ChildUpdate {
	_u.mutation.RemoveTaskRecordIDs(ids...)
	return _u
}

// RemoveTaskRecords removes "task_records" edges to TaskRecord entities.
func (_u *ChildUpdate) RemoveTaskRecords(v ...*TaskRecord) *ChildUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskRecordIDs(ids...)
}

// ClearBadgeAwards clears all "badge_awards" edges to the BadgeAward entity.
func (_u *ChildUpdate) ClearBadgeAwards() *ChildUpdate {
	_u.mutation.ClearBadgeAwards()
	return _u
}

// RemoveBadgeAwardIDs removes the "badge_awards" edge to BadgeAward entities by IDs.
func (_u *ChildUpdate) RemoveBadgeAwardIDs(ids ...uuid.UUID) *ChildUpdate {
	_u.mutation.RemoveBadgeAwardIDs(ids...)
	return _u
}

// RemoveBadgeAwards removes "badge_awards" edges to BadgeAward entities.
func (_u *ChildUpdate) RemoveBadgeAwards(v ...*BadgeAward) *ChildUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBadgeAwardIDs(ids...)
}

// ClearContributions clears all "contributions" edges to the CoCreationContribution entity.
func (_u *ChildUpdate) ClearContributions() *ChildUpdate {
	_u.mutation.ClearContributions()
	return _u
}

// RemoveContributionIDs removes the "contributions" edge to CoCreationContribution entities by IDs.
func (_u *ChildUpdate) RemoveContributionIDs(ids ...uuid.UUID) *ChildUpdate {
	_u.mutation.RemoveContributionIDs(ids...)
	return _u
}

// RemoveContributions removes "contributions" edges to CoCreationContribution entities.
func (_u *ChildUpdate) RemoveContributions(v ...*CoCreationContribution) *ChildUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveContributionIDs(ids...)
}

// ClearWeeklyReports clears all "weekly_reports" edges to the WeeklyReport entity.
func (_u *ChildUpdate) ClearWeeklyReports() *ChildUpdate {
	_u.mutation.ClearWeeklyReports()
	return _u
}

// RemoveWeeklyReportIDs removes the "weekly_reports" edge to WeeklyReport entities by IDs.
func (_u *ChildUpdate) RemoveWeeklyReportIDs(ids ...uuid.UUID) *ChildUpdate {
	_u.mutation.RemoveWeeklyReportIDs(ids...)
	return _u
}

// RemoveWeeklyReports removes "weekly_reports" edges to WeeklyReport entities.
func (_u *ChildUpdate) RemoveWeeklyReports(v ...*WeeklyReport) *ChildUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWeeklyReportIDs(ids...)
}

// ClearGrowthRecords clears all "growth_records" edges to the GrowthRecord entity.
func (_u *ChildUpdate) ClearGrowthRecords() *ChildUpdate {
	_u.mutation.ClearGrowthRecords()
	return _u
}

// RemoveGrowthRecordIDs removes the "growth_records" edge to GrowthRecord entities by IDs.
func (_u *ChildUpdate) RemoveGrowthRecordIDs(ids ...uuid.UUID) *ChildUpdate {
	_u.mutation.RemoveGrowthRecordIDs(ids...)
	return _u
}

// RemoveGrowthRecords removes "growth_records" edges to GrowthRecord entities.
func (_u *ChildUpdate) RemoveGrowthRecords(v ...*GrowthRecord) *ChildUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGrowthRecordIDs(ids...)
}

// ClearWorks clears all "works" edges to the Work entity.
func (_u *ChildUpdate) ClearWorks() *ChildUpdate {
	_u.mutation.ClearWorks()
	return _u
}

// RemoveWorkIDs removes the "works" edge to Work entities by IDs.
func (_u *ChildUpdate) RemoveWorkIDs(ids ...uuid.UUID) *ChildUpdate {
	_u.mutation.RemoveWorkIDs(ids...)
	return _u
}

// RemoveWorks removes "works" edges to Work entities.
func (_u *ChildUpdate) RemoveWorks(v ...*Work) *ChildUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWorkIDs(ids...)
}

// ClearCoachSessions clears all "coach_sessions" edges to the CoachSession entity.
func (_u *ChildUpdate) ClearCoachSessions() *ChildUpdate {
	_u.mutation.ClearCoachSessions()
	return _u
}

// RemoveCoachSessionIDs removes the "coach_sessions" edge to CoachSession entities by IDs.
func (_u *ChildUpdate) RemoveCoachSessionIDs(ids ...uuid.UUID) *ChildUpdate {
	_u.mutation.RemoveCoachSessionIDs(ids...)
	return _u
}

// RemoveCoachSessions removes "coach_sessions" edges to CoachSession entities.
func (_u *ChildUpdate) RemoveCoachSessions(v ...*CoachSession) *ChildUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCoachSessionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChildUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChildUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChildUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChildUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChildUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := child.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChildUpdate) check() error {
	if v, ok := _u.mutation.Nickname(); ok {
		if err := child.NicknameValidator(v); err != nil {
			return &ValidationError{Name: "nickname", err: fmt.Errorf(`ent: validator failed for field "Child.nickname": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Grade(); ok {
		if err := child.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "Child.grade": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := child.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Child.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Xp(); ok {
		if err := child.XpValidator(v); err != nil {
			return &ValidationError{Name: "xp", err: fmt.Errorf(`ent: validator failed for field "Child.xp": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Streak(); ok {
		if err := child.StreakValidator(v); err != nil {
			return &ValidationError{Name: "streak", err: fmt.Errorf(`ent: validator failed for field "Child.streak": %w`, err)}
		}
	}
	if _u.mutation.ParentCleared() && len(_u.mutation.ParentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Child.parent"`)
	}
	return nil
}

func (_u *ChildUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(child.Table, child.Columns, sqlgraph.NewFieldSpec(child.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(child.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpressionScore(); ok {
		_spec.SetField(child.FieldExpressionScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExpressionScore(); ok {
		_spec.AddField(child.FieldExpressionScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LogicScore(); ok {
		_spec.SetField(child.FieldLogicScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLogicScore(); ok {
		_spec.AddField(child.FieldLogicScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExplorationScore(); ok {
		_spec.SetField(child.FieldExplorationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExplorationScore(); ok {
		_spec.AddField(child.FieldExplorationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreativityScore(); ok {
		_spec.SetField(child.FieldCreativityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCreativityScore(); ok {
		_spec.AddField(child.FieldCreativityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.HabitScore(); ok {
		_spec.SetField(child.FieldHabitScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHabitScore(); ok {
		_spec.AddField(child.FieldHabitScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Nickname(); ok {
		_spec.SetField(child.FieldNickname, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(child.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.Interests(); ok {
		_spec.SetField(child.FieldInterests, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInterests(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, child.FieldInterests, value)
		})
	}
	if _u.mutation.InterestsCleared() {
		_spec.ClearField(child.FieldInterests, field.TypeJSON)
	}
	if value, ok := _u.mutation.AvatarURL(); ok {
		_spec.SetField(child.FieldAvatarURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(child.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(child.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Xp(); ok {
		_spec.SetField(child.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXp(); ok {
		_spec.AddField(child.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(child.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(child.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastActiveOn(); ok {
		_spec.SetField(child.FieldLastActiveOn, field.TypeTime, value)
	}
	if _u.mutation.LastActiveOnCleared() {
		_spec.ClearField(child.FieldLastActiveOn, field.TypeTime)
	}
	if value, ok := _u.mutation.GlobalTitle(); ok {
		_spec.SetField(child.FieldGlobalTitle, field.TypeString, value)
	}
	if _u.mutation.ParentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssessmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssessmentsIDs(); len(nodes) > 0 && !_u.mutation.AssessmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssessmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TaskRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTaskRecordsIDs(); len(nodes) > 0 && !_u.mutation.TaskRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaskRecordsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BadgeAwardsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBadgeAwardsIDs(); len(nodes) > 0 && !_u.mutation.BadgeAwardsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BadgeAwardsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ContributionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedContributionsIDs(); len(nodes) > 0 && !_u.mutation.ContributionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContributionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WeeklyReportsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWeeklyReportsIDs(); len(nodes) > 0 && !_u.mutation.WeeklyReportsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WeeklyReportsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GrowthRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGrowthRecordsIDs(); len(nodes) > 0 && !_u.mutation.GrowthRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GrowthRecordsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WorksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWorksIDs(); len(nodes) > 0 && !_u.mutation.WorksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CoachSessionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCoachSessionsIDs(); len(nodes) > 0 && !_u.mutation.CoachSessionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CoachSessionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{child.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChildUpdateOne is the builder for updating a single Child entity.
type ChildUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChildMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChildUpdateOne) SetUpdatedAt(v time.Time) *ChildUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetExpressionScore sets the "expression_score" field.
func (_u *ChildUpdateOne) SetExpressionScore(v float64) *ChildUpdateOne {
	_u.mutation.ResetExpressionScore()
	_u.mutation.SetExpressionScore(v)
	return _u
}

// SetNillableExpressionScore sets the "expression_score" field if the given value is not nil.
func (_u *ChildUpdateOne) SetNillableExpressionScore(v *float64) *ChildUpdateOne {
	if v != nil {
		_u.SetExpressionScore(*v)
	}
	return _u
}

// AddExpressionScore adds value to the "expression_score" field.
func (_u *ChildUpdateOne) AddExpressionScore(v float64) *ChildUpdateOne {
	_u.mutation.AddExpressionScore(v)
	return _u
}

// SetLogicScore sets the "logic_score" field.
func (_u *ChildUpdateOne) SetLogicScore(v float64) *ChildUpdateOne {
	_u.mutation.ResetLogicScore()
	_u.mutation.SetLogicScore(v)
	return _u
}

// SetNillableLogicScore sets the "logic_score" field if the given value is not nil.
func (_u *ChildUpdateOne) SetNillableLogicScore(v *float64) *ChildUpdateOne {
	if v != nil {
		_u.SetLogicScore(*v)
	}
	return _u
}

// AddLogicScore adds value to the "logic_score" field.
func (_u *ChildUpdateOne) AddLogicScore(v float64) *ChildUpdateOne {
	_u.mutation.AddLogicScore(v)
	return _u
}

// SetExplorationScore sets the "exploration_score" field.
func (_u *ChildUpdateOne) SetExplorationScore(v float64) *ChildUpdateOne {
	_u.mutation.ResetExplorationScore()
	_u.mutation.SetExplorationScore(v)
	return _u
}

// SetNillableExplorationScore sets the "exploration_score" field if the given value is not nil.
func (_u *ChildUpdateOne) SetNillableExplorationScore(v *float64) *ChildUpdateOne {
	if v != nil {
		_u.SetExplorationScore(*v)
	}
	return _u
}

// AddExplorationScore adds value to the "exploration_score" field.
func (_u *ChildUpdateOne) AddExplorationScore(v float64) *ChildUpdateOne {
	_u.mutation.AddExplorationScore(v)
	return _u
}

// SetCreativityScore sets the "creativity_score" field.
func (_u *ChildUpdateOne) SetCreativityScore(v float64) *ChildUpdateOne {
	_u.mutation.ResetCreativityScore()
	_u.mutation.SetCreativityScore(v)
	return _u
}

// SetNillableCreativityScore sets the "creativity_score" field if the given value is not nil.
func (_u *ChildUpdateOne) SetNillableCreativityScore(v *float64) *ChildUpdateOne {
	if v != nil {
		_u.SetCreativityScore(*v)
	}
	return _u
}

// AddCreativityScore adds value to the "creativity_score" field.
func (_u *ChildUpdateOne) AddCreativityScore(v float64) *ChildUpdateOne {
	_u.mutation.AddCreativityScore(v)
	return _u
}

// SetHabitScore sets the "habit_score" field.
func (_u *ChildUpdateOne) SetHabitScore(v float64) *ChildUpdateOne {
	_u.mutation.ResetHabitScore()
	_u.mutation.SetHabitScore(v)
	return _u
}

// SetNillableHabitScore sets the "habit_score" field if the given value is not nil.
func (_u *ChildUpdateOne) SetNillableHabitScore(v *float64) *ChildUpdateOne {
	if v != nil {
		_u.SetHabitScore(*v)
	}
	return _u
}

// AddHabitScore adds value to the "habit_score" field.
func (_u *ChildUpdateOne) AddHabitScore(v float64) *ChildUpdateOne {
	_u.mutation.AddHabitScore(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ChildUpdateOne) SetUserID(v uuid.UUID) *ChildUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ChildUpdateOne) SetNillableUserID(v *uuid.UUID) *ChildUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetNickname sets the "nickname" field.
func (_u *ChildUpdateOne) SetNickname(v string) *ChildUpdateOne {
	_u.mutation.SetNickname(v)
	return _u
}

// SetNillableNickname sets the "nickname" field if the given value is not nil.
func (_u *ChildUpdateOne) SetNillableNickname(v *string) *ChildUpdateOne {
	if v != nil {
		_u.SetNickname(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *ChildUpdateOne) SetGrade(v string) *ChildUpdateOne {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *ChildUpdateOne) SetNillableGrade(v *string) *ChildUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetInterests sets the "interests" field.
func (_u *ChildUpdateOne) SetInterests(v []string) *ChildUpdateOne {
	_u.mutation.SetInterests(v)
	return _u
}

// AppendInterests appends value to the "interests" field.
func (_u *ChildUpdateOne) AppendInterests(v []string) *ChildUpdateOne {
	_u.mutation.AppendInterests(v)
	return _u
}

// ClearInterests clears the value of the "interests" field.
func (_u *ChildUpdateOne) ClearInterests() *ChildUpdateOne {
	_u.mutation.ClearInterests()
	return _u
}

// SetAvatarURL sets the "avatar_url" field.
func (_u *ChildUpdateOne) SetAvatarURL(v string) *ChildUpdateOne {
	_u.mutation.SetAvatarURL(v)
	return _u
}

// SetNillableAvatarURL sets the "avatar_url" field if the given value is not nil.
func (_u *ChildUpdateOne) SetNillableAvatarURL(v *string) *ChildUpdateOne {
	if v != nil {
		_u.SetAvatarURL(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *ChildUpdateOne) SetLevel(v int) *ChildUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ChildUpdateOne) SetNillableLevel(v *int) *ChildUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *ChildUpdateOne) AddLevel(v int) *ChildUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetXp sets the "xp" field.
func (_u *ChildUpdateOne) SetXp(v int) *ChildUpdateOne {
	_u.mutation.ResetXp()
	_u.mutation.SetXp(v)
	return _u
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_u *ChildUpdateOne) SetNillableXp(v *int) *ChildUpdateOne {
	if v != nil {
		_u.SetXp(*v)
	}
	return _u
}

// AddXp adds value to the "xp" field.
func (_u *ChildUpdateOne) AddXp(v int) *ChildUpdateOne {
	_u.mutation.AddXp(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *ChildUpdateOne) SetStreak(v int) *ChildUpdateOne {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *ChildUpdateOne) SetNillableStreak(v *int) *ChildUpdateOne {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *ChildUpdateOne) AddStreak(v int) *ChildUpdateOne {
	_u.mutation.AddStreak(v)
	return _u
}

// SetLastActiveOn sets the "last_active_on" field.
func (_u *ChildUpdateOne) SetLastActiveOn(v time.Time) *ChildUpdateOne {
	_u.mutation.SetLastActiveOn(v)
	return _u
}

// SetNillableLastActiveOn sets the "last_active_on" field if the given value is not nil.
func (_u *ChildUpdateOne) SetNillableLastActiveOn(v *time.Time) *ChildUpdateOne {
	if v != nil {
		_u.SetLastActiveOn(*v)
	}
	return _u
}

// ClearLastActiveOn clears the value of the "last_active_on" field.
func (_u *ChildUpdateOne) ClearLastActiveOn() *ChildUpdateOne {
	_u.mutation.ClearLastActiveOn()
	return _u
}

// SetGlobalTitle sets the "global_title" field.
func (_u *ChildUpdateOne) SetGlobalTitle(v string) *ChildUpdateOne {
	_u.mutation.SetGlobalTitle(v)
	return _u
}

// SetNillableGlobalTitle sets the "global_title" field if the given value is not nil.
func (_u *ChildUpdateOne) SetNillableGlobalTitle(v *string) *ChildUpdateOne {
	if v != nil {
		_u.SetGlobalTitle(*v)
	}
	return _u
}

// SetParentID sets the "parent" edge to the User entity by ID.
func (_u *ChildUpdateOne) SetParentID(id uuid.UUID) *ChildUpdateOne {
	_u.mutation.SetParentID(id)
	return _u
}

// SetParent sets the "parent" edge to the User entity.
func (_u *ChildUpdateOne) SetParent(v *User) *ChildUpdateOne {
	return _u.SetParentID(v.ID)
}

// AddAssessmentIDs adds the "assessments" edge to the Assessment entity by IDs.
func (_u *ChildUpdateOne) AddAssessmentIDs(ids ...uuid.UUID) *ChildUpdateOne {
	_u.mutation.AddAssessmentIDs(ids...)
	return _u
}

// AddAssessments adds the "assessments" edges to the Assessment entity.
func (_u *ChildUpdateOne) AddAssessments(v ...*Assessment) *ChildUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssessmentIDs(ids...)
}

// AddTaskRecordIDs adds the "task_records" edge to the TaskRecord entity by IDs.
func (_u *ChildUpdateOne) AddTaskRecordIDs(ids ...uuid.UUID) *ChildUpdateOne {
	_u.mutation.AddTaskRecordIDs(ids...)
	return _u
}

// AddTaskRecords adds the "task_records" edges to the TaskRecord entity.
func (_u *ChildUpdateOne) AddTaskRecords(v ...*TaskRecord) *ChildUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskRecordIDs(ids...)
}

// AddBadgeAwardIDs adds the "badge_awards" edge to the BadgeAward entity by IDs.
func (_u *ChildUpdateOne) AddBadgeAwardIDs(ids ...uuid.UUID) *ChildUpdateOne {
	_u.mutation.AddBadgeAwardIDs(ids...)
	return _u
}

// AddBadgeAwards adds the "badge_awards" edges to the BadgeAward entity.
func (_u *ChildUpdateOne) AddBadgeAwards(v ...*BadgeAward) *ChildUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBadgeAwardIDs(ids...)
}

// AddContributionIDs adds the "contributions" edge to the CoCreationContribution entity by IDs.
func (_u *ChildUpdateOne) AddContributionIDs(ids ...uuid.UUID) *ChildUpdateOne {
	_u.mutation.AddContributionIDs(ids...)
	return _u
}

// AddContributions adds the "contributions" edges to the CoCreationContribution entity.
func (_u *ChildUpdateOne) AddContributions(v ...*CoCreationContribution) *ChildUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddContributionIDs(ids...)
}

// AddWeeklyReportIDs adds the "weekly_reports" edge to the WeeklyReport entity by IDs.
func (_u *ChildUpdateOne) AddWeeklyReportIDs(ids ...uuid.UUID) *ChildUpdateOne {
	_u.mutation.AddWeeklyReportIDs(ids...)
	return _u
}

// AddWeeklyReports adds the "weekly_reports" edges to the WeeklyReport entity.
func (_u *ChildUpdateOne) AddWeeklyReports(v ...*WeeklyReport) *ChildUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWeeklyReportIDs(ids...)
}

// AddGrowthRecordIDs adds the "growth_records" edge to the GrowthRecord entity by IDs.
func (_u *ChildUpdateOne) AddGrowthRecordIDs(ids ...uuid.UUID) *ChildUpdateOne {
	_u.mutation.AddGrowthRecordIDs(ids...)
	return _u
}

// AddGrowthRecords adds the "growth_records" edges to the GrowthRecord entity.
func (_u *ChildUpdateOne) AddGrowthRecords(v ...*GrowthRecord) *ChildUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGrowthRecordIDs(ids...)
}

// AddWorkIDs adds the "works" edge to the Work entity by IDs.
func (_u *ChildUpdateOne) AddWorkIDs(ids ...uuid.UUID) *ChildUpdateOne {
	_u.mutation.AddWorkIDs(ids...)
	return _u
}

// AddWorks adds the "works" edges to the Work entity.
func (_u *ChildUpdateOne) AddWorks(v ...*Work) *ChildUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWorkIDs(ids...)
}

// AddCoachSessionIDs adds the "coach_sessions" edge to the CoachSession entity by IDs.
func (_u *ChildUpdateOne) AddCoachSessionIDs(ids ...uuid.UUID) *ChildUpdateOne {
	_u.mutation.AddCoachSessionIDs(ids...)
	return _u
}

// AddCoachSessions adds the "coach_sessions" edges to the CoachSession entity.
func (_u *ChildUpdateOne) AddCoachSessions(v ...*CoachSession) *ChildUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCoachSessionIDs(ids...)
}

// Mutation returns the ChildMutation object of the builder.
func (_u *ChildUpdateOne) Mutation() *ChildMutation {
	return _u.mutation
}

// ClearParent clears the "parent" edge to the User entity.
func (_u *ChildUpdateOne) ClearParent() *ChildUpdateOne {
	_u.mutation.ClearParent()
	return _u
}

// ClearAssessments clears all "assessments" edges to the Assessment entity.
func (_u *ChildUpdateOne) ClearAssessments() *ChildUpdateOne {
	_u.mutation.ClearAssessments()
	return _u
}

// RemoveAssessmentIDs removes the "assessments" edge to Assessment entities by IDs.
func (_u *ChildUpdateOne) RemoveAssessmentIDs(ids ...uuid.UUID) *ChildUpdateOne {
	_u.mutation.RemoveAssessmentIDs(ids...)
	return _u
}

// RemoveAssessments removes "assessments" edges to Assessment entities.
func (_u *ChildUpdateOne) RemoveAssessments(v ...*Assessment) *ChildUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssessmentIDs(ids...)
}

// ClearTaskRecords clears all "task_records" edges to the TaskRecord entity.
func (_u *ChildUpdateOne) ClearTaskRecords() *ChildUpdateOne {
	_u.mutation.ClearTaskRecords()
	return _u
}

// RemoveTaskRecordIDs removes the "task_records" edge to TaskRecord entities by IDs.
func (_u *ChildUpdateOne) RemoveTaskRecordIDs(ids ...uuid.UUID) *ChildUpdateOne {
	_u.mutation.RemoveTaskRecordIDs(ids...)
	return _u
}

// RemoveTaskRecords removes "task_records" edges to TaskRecord entities.
func (_u *ChildUpdateOne) RemoveTaskRecords(v ...*TaskRecord) *ChildUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskRecordIDs(ids...)
}

// ClearBadgeAwards clears all "badge_awards" edges to the BadgeAward entity.
func (_u *ChildUpdateOne) ClearBadgeAwards() *ChildUpdateOne {
	_u.mutation.ClearBadgeAwards()
	return _u
}

// RemoveBadgeAwardIDs removes the "badge_awards" edge to BadgeAward entities by IDs.
func (_u *ChildUpdateOne) RemoveBadgeAwardIDs(ids ...uuid.UUID) *ChildUpdateOne {
	_u.mutation.RemoveBadgeAwardIDs(ids...)
	return _u
}

// RemoveBadgeAwards removes "badge_awards" edges to BadgeAward entities.
func (_u *ChildUpdateOne) RemoveBadgeAwards(v ...*BadgeAward) *ChildUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBadgeAwardIDs(ids...)
}

// ClearContributions clears all "contributions" edges to the CoCreationContribution entity.
func (_u *ChildUpdateOne) ClearContributions() *ChildUpdateOne {
	_u.mutation.ClearContributions()
	return _u
}

// RemoveContributionIDs removes the "contributions" edge to CoCreationContribution entities by IDs.
func (_u *ChildUpdateOne) RemoveContributionIDs(ids ...uuid.UUID) *ChildUpdateOne {
	_u.mutation.RemoveContributionIDs(ids...)
	return _u
}

// RemoveContributions removes "contributions" edges to CoCreationContribution entities.
func (_u *ChildUpdateOne) RemoveContributions(v ...*CoCreationContribution) *ChildUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveContributionIDs(ids...)
}

// ClearWeeklyReports clears all "weekly_reports" edges to the WeeklyReport entity.
func (_u *ChildUpdateOne) ClearWeeklyReports() *ChildUpdateOne {
	_u.mutation.ClearWeeklyReports()
	return _u
}

// RemoveWeeklyReportIDs removes the "weekly_reports" edge to WeeklyReport entities by IDs.
func (_u *ChildUpdateOne) RemoveWeeklyReportIDs(ids ...uuid.UUID) *ChildUpdateOne {
	_u.mutation.RemoveWeeklyReportIDs(ids...)
	return _u
}

// RemoveWeeklyReports removes "weekly_reports" edges to WeeklyReport entities.
func (_u *ChildUpdateOne) RemoveWeeklyReports(v ...*WeeklyReport) *ChildUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWeeklyReportIDs(ids...)
}

// ClearGrowthRecords clears all "growth_records" edges to the GrowthRecord entity.
func (_u *ChildUpdateOne) ClearGrowthRecords() *ChildUpdateOne {
	_u.mutation.ClearGrowthRecords()
	return _u
}

// RemoveGrowthRecordIDs removes the "growth_records" edge to GrowthRecord entities by IDs.
func (_u *ChildUpdateOne) RemoveGrowthRecordIDs(ids ...uuid.UUID) *ChildUpdateOne {
	_u.mutation.RemoveGrowthRecordIDs(ids...)
	return _u
}

// RemoveGrowthRecords removes "growth_records" edges to GrowthRecord entities.
func (_u *ChildUpdateOne) RemoveGrowthRecords(v ...*GrowthRecord) *ChildUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGrowthRecordIDs(ids...)
}

// ClearWorks clears all "works" edges to the Work entity.
func (_u *ChildUpdateOne) ClearWorks() *ChildUpdateOne {
	_u.mutation.ClearWorks()
	return _u
}

// RemoveWorkIDs removes the "works" edge to Work entities by IDs.
func (_u *ChildUpdateOne) RemoveWorkIDs(ids ...uuid.UUID) *ChildUpdateOne {
	_u.mutation.RemoveWorkIDs(ids...)
	return _u
}

// RemoveWorks removes "works" edges to Work entities.
func (_u *ChildUpdateOne) RemoveWorks(v ...*Work) *ChildUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWorkIDs(ids...)
}

// ClearCoachSessions clears all "coach_sessions" edges to the CoachSession entity.
func (_u *ChildUpdateOne) ClearCoachSessions() *ChildUpdateOne {
	_u.mutation.ClearCoachSessions()
	return _u
}

// RemoveCoachSessionIDs removes the "coach_sessions" edge to CoachSession entities by IDs.
func (_u *ChildUpdateOne) RemoveCoachSessionIDs(ids ...uuid.UUID) *ChildUpdateOne {
	_u.mutation.RemoveCoachSessionIDs(ids...)
	return _u
}

// RemoveCoachSessions removes "coach_sessions" edges to CoachSession entities.
func (_u *ChildUpdateOne) RemoveCoachSessions(v ...*CoachSession) *ChildUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCoachSessionIDs(ids...)
}

// Where appends a list predicates to the ChildUpdate builder.
func (_u *ChildUpdateOne) Where(ps ...predicate.Child) *ChildUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChildUpdateOne) Select(field string, fields ...string) *ChildUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Child entity.
func (_u *ChildUpdateOne) Save(ctx context.Context) (*Child, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChildUpdateOne) SaveX(ctx context.Context) *Child {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChildUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChildUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChildUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := child.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChildUpdateOne) check() error {
	if v, ok := _u.mutation.Nickname(); ok {
		if err := child.NicknameValidator(v); err != nil {
			return &ValidationError{Name: "nickname", err: fmt.Errorf(`ent: validator failed for field "Child.nickname": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Grade(); ok {
		if err := child.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "Child.grade": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := child.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Child.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Xp(); ok {
		if err := child.XpValidator(v); err != nil {
			return &ValidationError{Name: "xp", err: fmt.Errorf(`ent: validator failed for field "Child.xp": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Streak(); ok {
		if err := child.StreakValidator(v); err != nil {
			return &ValidationError{Name: "streak", err: fmt.Errorf(`ent: validator failed for field "Child.streak": %w`, err)}
		}
	}
	if _u.mutation.ParentCleared() && len(_u.mutation.ParentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Child.parent"`)
	}
	return nil
}

func (_u *ChildUpdateOne) sqlSave(ctx context.Context) (_node *Child, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(child.Table, child.Columns, sqlgraph.NewFieldSpec(child.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Child.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, child.FieldID)
		for _, f := range fields {
			if !child.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != child.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(child.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpressionScore(); ok {
		_spec.SetField(child.FieldExpressionScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExpressionScore(); ok {
		_spec.AddField(child.FieldExpressionScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LogicScore(); ok {
		_spec.SetField(child.FieldLogicScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLogicScore(); ok {
		_spec.AddField(child.FieldLogicScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExplorationScore(); ok {
		_spec.SetField(child.FieldExplorationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExplorationScore(); ok {
		_spec.AddField(child.FieldExplorationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreativityScore(); ok {
		_spec.SetField(child.FieldCreativityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCreativityScore(); ok {
		_spec.AddField(child.FieldCreativityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.HabitScore(); ok {
		_spec.SetField(child.FieldHabitScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHabitScore(); ok {
		_spec.AddField(child.FieldHabitScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Nickname(); ok {
		_spec.SetField(child.FieldNickname, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(child.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.Interests(); ok {
		_spec.SetField(child.FieldInterests, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInterests(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, child.FieldInterests, value)
		})
	}
	if _u.mutation.InterestsCleared() {
		_spec.ClearField(child.FieldInterests, field.TypeJSON)
	}
	if value, ok := _u.mutation.AvatarURL(); ok {
		_spec.SetField(child.FieldAvatarURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(child.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(child.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Xp(); ok {
		_spec.SetField(child.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXp(); ok {
		_spec.AddField(child.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(child.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(child.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastActiveOn(); ok {
		_spec.SetField(child.FieldLastActiveOn, field.TypeTime, value)
	}
	if _u.mutation.LastActiveOnCleared() {
		_spec.ClearField(child.FieldLastActiveOn, field.TypeTime)
	}
	if value, ok := _u.mutation.GlobalTitle(); ok {
		_spec.SetField(child.FieldGlobalTitle, field.TypeString, value)
	}
	if _u.mutation.ParentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssessmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssessmentsIDs(); len(nodes) > 0 && !_u.mutation.AssessmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssessmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TaskRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTaskRecordsIDs(); len(nodes) > 0 && !_u.mutation.TaskRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaskRecordsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BadgeAwardsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBadgeAwardsIDs(); len(nodes) > 0 && !_u.mutation.BadgeAwardsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BadgeAwardsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ContributionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedContributionsIDs(); len(nodes) > 0 && !_u.mutation.ContributionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContributionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WeeklyReportsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWeeklyReportsIDs(); len(nodes) > 0 && !_u.mutation.WeeklyReportsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WeeklyReportsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GrowthRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGrowthRecordsIDs(); len(nodes) > 0 && !_u.mutation.GrowthRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GrowthRecordsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WorksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWorksIDs(); len(nodes) > 0 && !_u.mutation.WorksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CoachSessionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCoachSessionsIDs(); len(nodes) > 0 && !_u.mutation.CoachSessionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CoachSessionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Child{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{child.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
