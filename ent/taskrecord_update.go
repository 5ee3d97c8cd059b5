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
	"github.com/abhisek/budai/ent/child"
	"github.com/abhisek/budai/ent/predicate"
	"github.com/abhisek/budai/ent/task"
	"github.com/abhisek/budai/ent/taskrecord"
	"github.com/google/uuid"
)

// TaskRecordUpdate is the builder for updating TaskRecord entities.
type TaskRecordUpdate struct {
	config
	hooks    []Hook
	mutation *TaskRecordMutation
}

// Where appends a list predicates to the TaskRecordUpdate builder.
func (_u *TaskRecordUpdate) Where(ps ...predicate.TaskRecord) *TaskRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskRecordUpdate) SetUpdatedAt(v time.Time) *TaskRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetChildID sets the "child_id" field.
func (_u *TaskRecordUpdate) SetChildID(v uuid.UUID) *TaskRecordUpdate {
	_u.mutation.SetChildID(v)
	return _u
}

// SetNillableChildID sets the "child_id" field if the given value is not nil.
func (_u *TaskRecordUpdate) SetNillableChildID(v *uuid.UUID) *TaskRecordUpdate {
	if v != nil {
		_u.SetChildID(*v)
	}
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *TaskRecordUpdate) SetTaskID(v uuid.UUID) *TaskRecordUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *TaskRecordUpdate) SetNillableTaskID(v *uuid.UUID) *TaskRecordUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskRecordUpdate) SetStatus(v taskrecord.Status) *TaskRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskRecordUpdate) SetNillableStatus(v *taskrecord.Status) *TaskRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSubmission sets the "submission" field.
func (_u *TaskRecordUpdate) SetSubmission(v string) *TaskRecordUpdate {
	_u.mutation.SetSubmission(v)
	return _u
}

// SetNillableSubmission sets the "submission" field if the given value is not nil.
func (_u *TaskRecordUpdate) SetNillableSubmission(v *string) *TaskRecordUpdate {
	if v != nil {
		_u.SetSubmission(*v)
	}
	return _u
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_u *TaskRecordUpdate) SetTimeSpentSecs(v int) *TaskRecordUpdate {
	_u.mutation.ResetTimeSpentSecs()
	_u.mutation.SetTimeSpentSecs(v)
	return _u
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_u *TaskRecordUpdate) SetNillableTimeSpentSecs(v *int) *TaskRecordUpdate {
	if v != nil {
		_u.SetTimeSpentSecs(*v)
	}
	return _u
}

// AddTimeSpentSecs adds value to the "time_spent_secs" field.
func (_u *TaskRecordUpdate) AddTimeSpentSecs(v int) *TaskRecordUpdate {
	_u.mutation.AddTimeSpentSecs(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskRecordUpdate) SetStartedAt(v time.Time) *TaskRecordUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskRecordUpdate) SetNillableStartedAt(v *time.Time) *TaskRecordUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskRecordUpdate) SetCompletedAt(v time.Time) *TaskRecordUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskRecordUpdate) SetNillableCompletedAt(v *time.Time) *TaskRecordUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskRecordUpdate) ClearCompletedAt() *TaskRecordUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetExpressionScore sets the "expression_score" field.
func (_u *TaskRecordUpdate) SetExpressionScore(v float64) *TaskRecordUpdate {
	_u.mutation.ResetExpressionScore()
	_u.mutation.SetExpressionScore(v)
	return _u
}

// SetNillableExpressionScore sets the "expression_score" field if the given value is not nil.
func (_u *TaskRecordUpdate) SetNillableExpressionScore(v *float64) *TaskRecordUpdate {
	if v != nil {
		_u.SetExpressionScore(*v)
	}
	return _u
}

// AddExpressionScore adds value to the "expression_score" field.
func (_u *TaskRecordUpdate) AddExpressionScore(v float64) *TaskRecordUpdate {
	_u.mutation.AddExpressionScore(v)
	return _u
}

// ClearExpressionScore clears the value of the "expression_score" field.
func (_u *TaskRecordUpdate) ClearExpressionScore() *TaskRecordUpdate {
	_u.mutation.ClearExpressionScore()
	return _u
}

// SetLogicScore sets the "logic_score" field.
func (_u *TaskRecordUpdate) SetLogicScore(v float64) *TaskRecordUpdate {
	_u.mutation.ResetLogicScore()
	_u.mutation.SetLogicScore(v)
	return _u
}

// SetNillableLogicScore sets the "logic_score" field if the given value is not nil.
func (_u *TaskRecordUpdate) SetNillableLogicScore(v *float64) *TaskRecordUpdate {
	if v != nil {
		_u.SetLogicScore(*v)
	}
	return _u
}

// AddLogicScore adds value to the "logic_score" field.
func (_u *TaskRecordUpdate) AddLogicScore(v float64) *TaskRecordUpdate {
	_u.mutation.AddLogicScore(v)
	return _u
}

// ClearLogicScore clears the value of the "logic_score" field.
func (_u *TaskRecordUpdate) ClearLogicScore() *TaskRecordUpdate {
	_u.mutation.ClearLogicScore()
	return _u
}

// SetExplorationScore sets the "exploration_score" field.
func (_u *TaskRecordUpdate) SetExplorationScore(v float64) *TaskRecordUpdate {
	_u.mutation.ResetExplorationScore()
	_u.mutation.SetExplorationScore(v)
	return _u
}

// SetNillableExplorationScore sets the "exploration_score" field if the given value is not nil.
func (_u *TaskRecordUpdate) SetNillableExplorationScore(v *float64) *TaskRecordUpdate {
	if v != nil {
		_u.SetExplorationScore(*v)
	}
	return _u
}

// AddExplorationScore adds value to the "exploration_score" field.
func (_u *TaskRecordUpdate) AddExplorationScore(v float64) *TaskRecordUpdate {
	_u.mutation.AddExplorationScore(v)
	return _u
}

// ClearExplorationScore clears the value of the "exploration_score" field.
func (_u *TaskRecordUpdate) ClearExplorationScore() *TaskRecordUpdate {
	_u.mutation.ClearExplorationScore()
	return _u
}

// SetCreativityScore sets the "creativity_score" field.
func (_u *TaskRecordUpdate) SetCreativityScore(v float64) *TaskRecordUpdate {
	_u.mutation.ResetCreativityScore()
	_u.mutation.SetCreativityScore(v)
	return _u
}

// SetNillableCreativityScore sets the "creativity_score" field if the given value is not nil.
func (_u *TaskRecordUpdate) SetNillableCreativityScore(v *float64) *TaskRecordUpdate {
	if v != nil {
		_u.SetCreativityScore(*v)
	}
	return _u
}

// AddCreativityScore adds value to the "creativity_score" field.
func (_u *TaskRecordUpdate) AddCreativityScore(v float64) *TaskRecordUpdate {
	_u.mutation.AddCreativityScore(v)
	return _u
}

// ClearCreativityScore clears the value of the "creativity_score" field.
func (_u *TaskRecordUpdate) ClearCreativityScore() *TaskRecordUpdate {
	_u.mutation.ClearCreativityScore()
	return _u
}

// SetHabitScore sets the "habit_score" field.
func (_u *TaskRecordUpdate) SetHabitScore(v float64) *TaskRecordUpdate {
	_u.mutation.ResetHabitScore()
	_u.mutation.SetHabitScore(v)
	return _u
}

// SetNillableHabitScore sets the "habit_score" field if the given value is not nil.
func (_u *TaskRecordUpdate) SetNillableHabitScore(v *float64) *TaskRecordUpdate {
	if v != nil {
		_u.SetHabitScore(*v)
	}
	return _u
}

// AddHabitScore adds value to the "habit_score" field.
func (_u *TaskRecordUpdate) AddHabitScore(v float64) *TaskRecordUpdate {
	_u.mutation.AddHabitScore(v)
	return _u
}

// ClearHabitScore clears the value of the "habit_score" field.
func (_u *TaskRecordUpdate) ClearHabitScore() *TaskRecordUpdate {
	_u.mutation.ClearHabitScore()
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *TaskRecordUpdate) SetFeedback(v string) *TaskRecordUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *TaskRecordUpdate) SetNillableFeedback(v *string) *TaskRecordUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// SetSuggestions sets the "suggestions" field.
func (_u *TaskRecordUpdate) SetSuggestions(v []string) *TaskRecordUpdate {
	_u.mutation.SetSuggestions(v)
	return _u
}

// AppendSuggestions appends value to the "suggestions" field.
func (_u *TaskRecordUpdate) AppendSuggestions(v []string) *TaskRecordUpdate {
	_u.mutation.AppendSuggestions(v)
	return _u
}

// ClearSuggestions clears the value of the "suggestions" field.
func (_u *TaskRecordUpdate) ClearSuggestions() *TaskRecordUpdate {
	_u.mutation.ClearSuggestions()
	return _u
}

// SetExemplarAnswer sets the "exemplar_answer" field.
func (_u *TaskRecordUpdate) SetExemplarAnswer(v string) *TaskRecordUpdate {
	_u.mutation.SetExemplarAnswer(v)
	return _u
}

// SetNillableExemplarAnswer sets the "exemplar_answer" field if the given value is not nil.
func (_u *TaskRecordUpdate) SetNillableExemplarAnswer(v *string) *TaskRecordUpdate {
	if v != nil {
		_u.SetExemplarAnswer(*v)
	}
	return _u
}

// SetXpEarned sets the "xp_earned" field.
func (_u *TaskRecordUpdate) SetXpEarned(v int) *TaskRecordUpdate {
	_u.mutation.ResetXpEarned()
	_u.mutation.SetXpEarned(v)
	return _u
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_u *TaskRecordUpdate) SetNillableXpEarned(v *int) *TaskRecordUpdate {
	if v != nil {
		_u.SetXpEarned(*v)
	}
	return _u
}

// AddXpEarned adds value to the "xp_earned" field.
func (_u *TaskRecordUpdate) AddXpEarned(v int) *TaskRecordUpdate {
	_u.mutation.AddXpEarned(v)
	return _u
}

// SetChild sets the "child" edge to the Child entity.
func (_u *TaskRecordUpdate) SetChild(v *Child) *TaskRecordUpdate {
	return _u.SetChildID(v.ID)
}

// SetTask sets the "task" edge to the Task entity.
func (_u *TaskRecordUpdate) SetTask(v *Task) *TaskRecordUpdate {
	return _u.SetTaskID(v.ID)
}

// Mutation returns the TaskRecordMutation object of the builder.
func (_u *TaskRecordUpdate) Mutation() *TaskRecordMutation {
	return _u.mutation
}

// ClearChild clears the "child" edge to the Child entity.
func (_u *TaskRecordUpdate) ClearChild() *TaskRecordUpdate {
	_u.mutation.ClearChild()
	return _u
}

// ClearTask clears the "task" edge to the Task entity.
func (_u *TaskRecordUpdate) ClearTask() *TaskRecordUpdate {
	_u.mutation.ClearTask()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := taskrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskRecordUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := taskrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TaskRecord.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimeSpentSecs(); ok {
		if err := taskrecord.TimeSpentSecsValidator(v); err != nil {
			return &ValidationError{Name: "time_spent_secs", err: fmt.Errorf(`ent: validator failed for field "TaskRecord.time_spent_secs": %w`, err)}
		}
	}
	if _u.mutation.ChildCleared() && len(_u.mutation.ChildIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaskRecord.child"`)
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaskRecord.task"`)
	}
	return nil
}

func (_u *TaskRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskrecord.Table, taskrecord.Columns, sqlgraph.NewFieldSpec(taskrecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(taskrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(taskrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Submission(); ok {
		_spec.SetField(taskrecord.FieldSubmission, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeSpentSecs(); ok {
		_spec.SetField(taskrecord.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(taskrecord.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(taskrecord.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(taskrecord.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(taskrecord.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpressionScore(); ok {
		_spec.SetField(taskrecord.FieldExpressionScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExpressionScore(); ok {
		_spec.AddField(taskrecord.FieldExpressionScore, field.TypeFloat64, value)
	}
	if _u.mutation.ExpressionScoreCleared() {
		_spec.ClearField(taskrecord.FieldExpressionScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LogicScore(); ok {
		_spec.SetField(taskrecord.FieldLogicScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLogicScore(); ok {
		_spec.AddField(taskrecord.FieldLogicScore, field.TypeFloat64, value)
	}
	if _u.mutation.LogicScoreCleared() {
		_spec.ClearField(taskrecord.FieldLogicScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExplorationScore(); ok {
		_spec.SetField(taskrecord.FieldExplorationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExplorationScore(); ok {
		_spec.AddField(taskrecord.FieldExplorationScore, field.TypeFloat64, value)
	}
	if _u.mutation.ExplorationScoreCleared() {
		_spec.ClearField(taskrecord.FieldExplorationScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CreativityScore(); ok {
		_spec.SetField(taskrecord.FieldCreativityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCreativityScore(); ok {
		_spec.AddField(taskrecord.FieldCreativityScore, field.TypeFloat64, value)
	}
	if _u.mutation.CreativityScoreCleared() {
		_spec.ClearField(taskrecord.FieldCreativityScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.HabitScore(); ok {
		_spec.SetField(taskrecord.FieldHabitScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHabitScore(); ok {
		_spec.AddField(taskrecord.FieldHabitScore, field.TypeFloat64, value)
	}
	if _u.mutation.HabitScoreCleared() {
		_spec.ClearField(taskrecord.FieldHabitScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(taskrecord.FieldFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.Suggestions(); ok {
		_spec.SetField(taskrecord.FieldSuggestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSuggestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, taskrecord.FieldSuggestions, value)
		})
	}
	if _u.mutation.SuggestionsCleared() {
		_spec.ClearField(taskrecord.FieldSuggestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExemplarAnswer(); ok {
		_spec.SetField(taskrecord.FieldExemplarAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.XpEarned(); ok {
		_spec.SetField(taskrecord.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpEarned(); ok {
		_spec.AddField(taskrecord.FieldXpEarned, field.TypeInt, value)
	}
	if _u.mutation.ChildCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskrecord.ChildTable,
			Columns: []string{taskrecord.ChildColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(child.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskrecord.ChildTable,
			Columns: []string{taskrecord.ChildColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(child.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TaskCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskrecord.TaskTable,
			Columns: []string{taskrecord.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskrecord.TaskTable,
			Columns: []string{taskrecord.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskRecordUpdateOne is the builder for updating a single TaskRecord entity.
type TaskRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskRecordMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskRecordUpdateOne) SetUpdatedAt(v time.Time) *TaskRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetChildID sets the "child_id" field.
func (_u *TaskRecordUpdateOne) SetChildID(v uuid.UUID) *TaskRecordUpdateOne {
	_u.mutation.SetChildID(v)
	return _u
}

// SetNillableChildID sets the "child_id" field if the given value is not nil.
func (_u *TaskRecordUpdateOne) SetNillableChildID(v *uuid.UUID) *TaskRecordUpdateOne {
	if v != nil {
		_u.SetChildID(*v)
	}
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *TaskRecordUpdateOne) SetTaskID(v uuid.UUID) *TaskRecordUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *TaskRecordUpdateOne) SetNillableTaskID(v *uuid.UUID) *TaskRecordUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskRecordUpdateOne) SetStatus(v taskrecord.Status) *TaskRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskRecordUpdateOne) SetNillableStatus(v *taskrecord.Status) *TaskRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSubmission sets the "submission" field.
func (_u *TaskRecordUpdateOne) SetSubmission(v string) *TaskRecordUpdateOne {
	_u.mutation.SetSubmission(v)
	return _u
}

// SetNillableSubmission sets the "submission" field if the given value is not nil.
func (_u *TaskRecordUpdateOne) SetNillableSubmission(v *string) *TaskRecordUpdateOne {
	if v != nil {
		_u.SetSubmission(*v)
	}
	return _u
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_u *TaskRecordUpdateOne) SetTimeSpentSecs(v int) *TaskRecordUpdateOne {
	_u.mutation.ResetTimeSpentSecs()
	_u.mutation.SetTimeSpentSecs(v)
	return _u
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_u *TaskRecordUpdateOne) SetNillableTimeSpentSecs(v *int) *TaskRecordUpdateOne {
	if v != nil {
		_u.SetTimeSpentSecs(*v)
	}
	return _u
}

// AddTimeSpentSecs adds value to the "time_spent_secs" field.
func (_u *TaskRecordUpdateOne) AddTimeSpentSecs(v int) *TaskRecordUpdateOne {
	_u.mutation.AddTimeSpentSecs(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskRecordUpdateOne) SetStartedAt(v time.Time) *TaskRecordUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskRecordUpdateOne) SetNillableStartedAt(v *time.Time) *TaskRecordUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskRecordUpdateOne) SetCompletedAt(v time.Time) *TaskRecordUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskRecordUpdateOne) SetNillableCompletedAt(v *time.Time) *TaskRecordUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskRecordUpdateOne) ClearCompletedAt() *TaskRecordUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetExpressionScore sets the "expression_score" field.
func (_u *TaskRecordUpdateOne) SetExpressionScore(v float64) *TaskRecordUpdateOne {
	_u.mutation.ResetExpressionScore()
	_u.mutation.SetExpressionScore(v)
	return _u
}

// SetNillableExpressionScore sets the "expression_score" field if the given value is not nil.
func (_u *TaskRecordUpdateOne) SetNillableExpressionScore(v *float64) *TaskRecordUpdateOne {
	if v != nil {
		_u.SetExpressionScore(*v)
	}
	return _u
}

// AddExpressionScore adds value to the "expression_score" field.
func (_u *TaskRecordUpdateOne) AddExpressionScore(v float64) *TaskRecordUpdateOne {
	_u.mutation.AddExpressionScore(v)
	return _u
}

// ClearExpressionScore clears the value of the "expression_score" field.
func (_u *TaskRecordUpdateOne) ClearExpressionScore() *TaskRecordUpdateOne {
	_u.mutation.ClearExpressionScore()
	return _u
}

// SetLogicScore sets the "logic_score" field.
func (_u *TaskRecordUpdateOne) SetLogicScore(v float64) *TaskRecordUpdateOne {
	_u.mutation.ResetLogicScore()
	_u.mutation.SetLogicScore(v)
	return _u
}

// SetNillableLogicScore sets the "logic_score" field if the given value is not nil.
func (_u *TaskRecordUpdateOne) SetNillableLogicScore(v *float64) *TaskRecordUpdateOne {
	if v != nil {
		_u.SetLogicScore(*v)
	}
	return _u
}

// AddLogicScore adds value to the "logic_score" field.
func (_u *TaskRecordUpdateOne) AddLogicScore(v float64) *TaskRecordUpdateOne {
	_u.mutation.AddLogicScore(v)
	return _u
}

// ClearLogicScore clears the value of the "logic_score" field.
func (_u *TaskRecordUpdateOne) ClearLogicScore() *TaskRecordUpdateOne {
	_u.mutation.ClearLogicScore()
	return _u
}

// SetExplorationScore sets the "exploration_score" field.
func (_u *TaskRecordUpdateOne) SetExplorationScore(v float64) *TaskRecordUpdateOne {
	_u.mutation.ResetExplorationScore()
	_u.mutation.SetExplorationScore(v)
	return _u
}

// SetNillableExplorationScore sets the "exploration_score" field if the given value is not nil.
func (_u *TaskRecordUpdateOne) SetNillableExplorationScore(v *float64) *TaskRecordUpdateOne {
	if v != nil {
		_u.SetExplorationScore(*v)
	}
	return _u
}

// AddExplorationScore adds value to the "exploration_score" field.
func (_u *TaskRecordUpdateOne) AddExplorationScore(v float64) *TaskRecordUpdateOne {
	_u.mutation.AddExplorationScore(v)
	return _u
}

// ClearExplorationScore clears the value of the "exploration_score" field.
func (_u *TaskRecordUpdateOne) ClearExplorationScore() *TaskRecordUpdateOne {
	_u.mutation.ClearExplorationScore()
	return _u
}

// SetCreativityScore sets the "creativity_score" field.
func (_u *TaskRecordUpdateOne) SetCreativityScore(v float64) *TaskRecordUpdateOne {
	_u.mutation.ResetCreativityScore()
	_u.mutation.SetCreativityScore(v)
	return _u
}

// SetNillableCreativityScore sets the "creativity_score" field if the given value is not nil.
func (_u *TaskRecordUpdateOne) SetNillableCreativityScore(v *float64) *TaskRecordUpdateOne {
	if v != nil {
		_u.SetCreativityScore(*v)
	}
	return _u
}

// AddCreativityScore adds value to the "creativity_score" field.
func (_u *TaskRecordUpdateOne) AddCreativityScore(v float64) *TaskRecordUpdateOne {
	_u.mutation.AddCreativityScore(v)
	return _u
}

// ClearCreativityScore clears the value of the "creativity_score" field.
func (_u *TaskRecordUpdateOne) ClearCreativityScore() *TaskRecordUpdateOne {
	_u.mutation.ClearCreativityScore()
	return _u
}

// SetHabitScore sets the "habit_score" field.
func (_u *TaskRecordUpdateOne) SetHabitScore(v float64) *TaskRecordUpdateOne {
	_u.mutation.ResetHabitScore()
	_u.mutation.SetHabitScore(v)
	return _u
}

// SetNillableHabitScore sets the "habit_score" field if the given value is not nil.
func (_u *TaskRecordUpdateOne) SetNillableHabitScore(v *float64) *TaskRecordUpdateOne {
	if v != nil {
		_u.SetHabitScore(*v)
	}
	return _u
}

// AddHabitScore adds value to the "habit_score" field.
func (_u *TaskRecordUpdateOne) AddHabitScore(v float64) *TaskRecordUpdateOne {
	_u.mutation.AddHabitScore(v)
	return _u
}

// ClearHabitScore clears the value of the "habit_score" field.
func (_u *TaskRecordUpdateOne) ClearHabitScore() *TaskRecordUpdateOne {
	_u.mutation.ClearHabitScore()
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *TaskRecordUpdateOne) SetFeedback(v string) *TaskRecordUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *TaskRecordUpdateOne) SetNillableFeedback(v *string) *TaskRecordUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// SetSuggestions sets the "suggestions" field.
func (_u *TaskRecordUpdateOne) SetSuggestions(v []string) *TaskRecordUpdateOne {
	_u.mutation.SetSuggestions(v)
	return _u
}

// AppendSuggestions appends value to the "suggestions" field.
func (_u *TaskRecordUpdateOne) AppendSuggestions(v []string) *TaskRecordUpdateOne {
	_u.mutation.AppendSuggestions(v)
	return _u
}

// ClearSuggestions clears the value of the "suggestions" field.
func (_u *TaskRecordUpdateOne) ClearSuggestions() *TaskRecordUpdateOne {
	_u.mutation.ClearSuggestions()
	return _u
}

// SetExemplarAnswer sets the "exemplar_answer" field.
func (_u *TaskRecordUpdateOne) SetExemplarAnswer(v string) *TaskRecordUpdateOne {
	_u.mutation.SetExemplarAnswer(v)
	return _u
}

// SetNillableExemplarAnswer sets the "exemplar_answer" field if the given value is not nil.
func (_u *TaskRecordUpdateOne) SetNillableExemplarAnswer(v *string) *TaskRecordUpdateOne {
	if v != nil {
		_u.SetExemplarAnswer(*v)
	}
	return _u
}

// SetXpEarned sets the "xp_earned" field.
func (_u *TaskRecordUpdateOne) SetXpEarned(v int) *TaskRecordUpdateOne {
	_u.mutation.ResetXpEarned()
	_u.mutation.SetXpEarned(v)
	return _u
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_u *TaskRecordUpdateOne) SetNillableXpEarned(v *int) *TaskRecordUpdateOne {
	if v != nil {
		_u.SetXpEarned(*v)
	}
	return _u
}

// AddXpEarned adds value to the "xp_earned" field.
func (_u *TaskRecordUpdateOne) AddXpEarned(v int) *TaskRecordUpdateOne {
	_u.mutation.AddXpEarned(v)
	return _u
}

// SetChild sets the "child" edge to the Child entity.
func (_u *TaskRecordUpdateOne) SetChild(v *Child) *TaskRecordUpdateOne {
	return _u.SetChildID(v.ID)
}

// SetTask sets the "task" edge to the Task entity.
func (_u *TaskRecordUpdateOne) SetTask(v *Task) *TaskRecordUpdateOne {
	return _u.SetTaskID(v.ID)
}

// Mutation returns the TaskRecordMutation object of the builder.
func (_u *TaskRecordUpdateOne) Mutation() *TaskRecordMutation {
	return _u.mutation
}

// ClearChild clears the "child" edge to the Child entity.
func (_u *TaskRecordUpdateOne) ClearChild() *TaskRecordUpdateOne {
	_u.mutation.ClearChild()
	return _u
}

// ClearTask clears the "task" edge to the Task entity.
func (_u *TaskRecordUpdateOne) ClearTask() *TaskRecordUpdateOne {
	_u.mutation.ClearTask()
	return _u
}

// Where appends a list predicates to the TaskRecordUpdate builder.
func (_u *TaskRecordUpdateOne) Where(ps ...predicate.TaskRecord) *TaskRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskRecordUpdateOne) Select(field string, fields ...string) *TaskRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TaskRecord entity.
func (_u *TaskRecordUpdateOne) Save(ctx context.Context) (*TaskRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskRecordUpdateOne) SaveX(ctx context.Context) *TaskRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := taskrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := taskrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TaskRecord.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimeSpentSecs(); ok {
		if err := taskrecord.TimeSpentSecsValidator(v); err != nil {
			return &ValidationError{Name: "time_spent_secs", err: fmt.Errorf(`ent: validator failed for field "TaskRecord.time_spent_secs": %w`, err)}
		}
	}
	if _u.mutation.ChildCleared() && len(_u.mutation.ChildIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaskRecord.child"`)
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaskRecord.task"`)
	}
	return nil
}

func (_u *TaskRecordUpdateOne) sqlSave(ctx context.Context) (_node *TaskRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskrecord.Table, taskrecord.Columns, sqlgraph.NewFieldSpec(taskrecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaskRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taskrecord.FieldID)
		for _, f := range fields {
			if !taskrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != taskrecord.FieldID {
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
		_spec.SetField(taskrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(taskrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Submission(); ok {
		_spec.SetField(taskrecord.FieldSubmission, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeSpentSecs(); ok {
		_spec.SetField(taskrecord.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(taskrecord.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(taskrecord.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(taskrecord.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(taskrecord.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpressionScore(); ok {
		_spec.SetField(taskrecord.FieldExpressionScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExpressionScore(); ok {
		_spec.AddField(taskrecord.FieldExpressionScore, field.TypeFloat64, value)
	}
	if _u.mutation.ExpressionScoreCleared() {
		_spec.ClearField(taskrecord.FieldExpressionScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LogicScore(); ok {
		_spec.SetField(taskrecord.FieldLogicScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLogicScore(); ok {
		_spec.AddField(taskrecord.FieldLogicScore, field.TypeFloat64, value)
	}
	if _u.mutation.LogicScoreCleared() {
		_spec.ClearField(taskrecord.FieldLogicScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExplorationScore(); ok {
		_spec.SetField(taskrecord.FieldExplorationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExplorationScore(); ok {
		_spec.AddField(taskrecord.FieldExplorationScore, field.TypeFloat64, value)
	}
	if _u.mutation.ExplorationScoreCleared() {
		_spec.ClearField(taskrecord.FieldExplorationScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CreativityScore(); ok {
		_spec.SetField(taskrecord.FieldCreativityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCreativityScore(); ok {
		_spec.AddField(taskrecord.FieldCreativityScore, field.TypeFloat64, value)
	}
	if _u.mutation.CreativityScoreCleared() {
		_spec.ClearField(taskrecord.FieldCreativityScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.HabitScore(); ok {
		_spec.SetField(taskrecord.FieldHabitScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHabitScore(); ok {
		_spec.AddField(taskrecord.FieldHabitScore, field.TypeFloat64, value)
	}
	if _u.mutation.HabitScoreCleared() {
		_spec.ClearField(taskrecord.FieldHabitScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(taskrecord.FieldFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.Suggestions(); ok {
		_spec.SetField(taskrecord.FieldSuggestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSuggestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, taskrecord.FieldSuggestions, value)
		})
	}
	if _u.mutation.SuggestionsCleared() {
		_spec.ClearField(taskrecord.FieldSuggestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExemplarAnswer(); ok {
		_spec.SetField(taskrecord.FieldExemplarAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.XpEarned(); ok {
		_spec.SetField(taskrecord.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpEarned(); ok {
		_spec.AddField(taskrecord.FieldXpEarned, field.TypeInt, value)
	}
	if _u.mutation.ChildCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskrecord.ChildTable,
			Columns: []string{taskrecord.ChildColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(child.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskrecord.ChildTable,
			Columns: []string{taskrecord.ChildColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(child.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TaskCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskrecord.TaskTable,
			Columns: []string{taskrecord.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskrecord.TaskTable,
			Columns: []string{taskrecord.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TaskRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
