// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/budai/ent/child"
	"github.com/abhisek/budai/ent/growthrecord"
	"github.com/abhisek/budai/ent/predicate"
	"github.com/google/uuid"
)

// GrowthRecordUpdate is the builder for updating GrowthRecord entities.
type GrowthRecordUpdate struct {
	config
	hooks    []Hook
	mutation *GrowthRecordMutation
}

// Where appends a list predicates to the GrowthRecordUpdate builder.
func (_u *GrowthRecordUpdate) Where(ps ...predicate.GrowthRecord) *GrowthRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GrowthRecordUpdate) SetUpdatedAt(v time.Time) *GrowthRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetChildID sets the "child_id" field.
func (_u *GrowthRecordUpdate) SetChildID(v uuid.UUID) *GrowthRecordUpdate {
	_u.mutation.SetChildID(v)
	return _u
}

// SetNillableChildID sets the "child_id" field if the given value is not nil.
func (_u *GrowthRecordUpdate) SetNillableChildID(v *uuid.UUID) *GrowthRecordUpdate {
	if v != nil {
		_u.SetChildID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *GrowthRecordUpdate) SetDate(v time.Time) *GrowthRecordUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *GrowthRecordUpdate) SetNillableDate(v *time.Time) *GrowthRecordUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetTasksCompleted sets the "tasks_completed" field.
func (_u *GrowthRecordUpdate) SetTasksCompleted(v int) *GrowthRecordUpdate {
	_u.mutation.ResetTasksCompleted()
	_u.mutation.SetTasksCompleted(v)
	return _u
}

// SetNillableTasksCompleted sets the "tasks_completed" field if the given value is not nil.
func (_u *GrowthRecordUpdate) SetNillableTasksCompleted(v *int) *GrowthRecordUpdate {
	if v != nil {
		_u.SetTasksCompleted(*v)
	}
	return _u
}

// AddTasksCompleted adds value to the "tasks_completed" field.
func (_u *GrowthRecordUpdate) AddTasksCompleted(v int) *GrowthRecordUpdate {
	_u.mutation.AddTasksCompleted(v)
	return _u
}

// SetXpEarned sets the "xp_earned" field.
func (_u *GrowthRecordUpdate) SetXpEarned(v int) *GrowthRecordUpdate {
	_u.mutation.ResetXpEarned()
	_u.mutation.SetXpEarned(v)
	return _u
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_u *GrowthRecordUpdate) SetNillableXpEarned(v *int) *GrowthRecordUpdate {
	if v != nil {
		_u.SetXpEarned(*v)
	}
	return _u
}

// AddXpEarned adds value to the "xp_earned" field.
func (_u *GrowthRecordUpdate) AddXpEarned(v int) *GrowthRecordUpdate {
	_u.mutation.AddXpEarned(v)
	return _u
}

// SetAverageExpressionScore sets the "average_expression_score" field.
func (_u *GrowthRecordUpdate) SetAverageExpressionScore(v float64) *GrowthRecordUpdate {
	_u.mutation.ResetAverageExpressionScore()
	_u.mutation.SetAverageExpressionScore(v)
	return _u
}

// SetNillableAverageExpressionScore sets the "average_expression_score" field if the given value is not nil.
func (_u *GrowthRecordUpdate) SetNillableAverageExpressionScore(v *float64) *GrowthRecordUpdate {
	if v != nil {
		_u.SetAverageExpressionScore(*v)
	}
	return _u
}

// AddAverageExpressionScore adds value to the "average_expression_score" field.
func (_u *GrowthRecordUpdate) AddAverageExpressionScore(v float64) *GrowthRecordUpdate {
	_u.mutation.AddAverageExpressionScore(v)
	return _u
}

// SetAverageLogicScore sets the "average_logic_score" field.
func (_u *GrowthRecordUpdate) SetAverageLogicScore(v float64) *GrowthRecordUpdate {
	_u.mutation.ResetAverageLogicScore()
	_u.mutation.SetAverageLogicScore(v)
	return _u
}

// SetNillableAverageLogicScore sets the "average_logic_score" field if the given value is not nil.
func (_u *GrowthRecordUpdate) SetNillableAverageLogicScore(v *float64) *GrowthRecordUpdate {
	if v != nil {
		_u.SetAverageLogicScore(*v)
	}
	return _u
}

// AddAverageLogicScore adds value to the "average_logic_score" field.
func (_u *GrowthRecordUpdate) AddAverageLogicScore(v float64) *GrowthRecordUpdate {
	_u.mutation.AddAverageLogicScore(v)
	return _u
}

// SetAverageExplorationScore sets the "average_exploration_score" field.
func (_u *GrowthRecordUpdate) SetAverageExplorationScore(v float64) *GrowthRecordUpdate {
	_u.mutation.ResetAverageExplorationScore()
	_u.mutation.SetAverageExplorationScore(v)
	return _u
}

// SetNillableAverageExplorationScore sets the "average_exploration_score" field if the given value is not nil.
func (_u *GrowthRecordUpdate) SetNillableAverageExplorationScore(v *float64) *GrowthRecordUpdate {
	if v != nil {
		_u.SetAverageExplorationScore(*v)
	}
	return _u
}

// AddAverageExplorationScore adds value to the "average_exploration_score" field.
func (_u *GrowthRecordUpdate) AddAverageExplorationScore(v float64) *GrowthRecordUpdate {
	_u.mutation.AddAverageExplorationScore(v)
	return _u
}

// SetAverageCreativityScore sets the "average_creativity_score" field.
func (_u *GrowthRecordUpdate) SetAverageCreativityScore(v float64) *GrowthRecordUpdate {
	_u.mutation.ResetAverageCreativityScore()
	_u.mutation.SetAverageCreativityScore(v)
	return _u
}

// SetNillableAverageCreativityScore sets the "average_creativity_score" field if the given value is not nil.
func (_u *GrowthRecordUpdate) SetNillableAverageCreativityScore(v *float64) *GrowthRecordUpdate {
	if v != nil {
		_u.SetAverageCreativityScore(*v)
	}
	return _u
}

// AddAverageCreativityScore adds value to the "average_creativity_score" field.
func (_u *GrowthRecordUpdate) AddAverageCreativityScore(v float64) *GrowthRecordUpdate {
	_u.mutation.AddAverageCreativityScore(v)
	return _u
}

// SetAverageHabitScore sets the "average_habit_score" field.
func (_u *GrowthRecordUpdate) SetAverageHabitScore(v float64) *GrowthRecordUpdate {
	_u.mutation.ResetAverageHabitScore()
	_u.mutation.SetAverageHabitScore(v)
	return _u
}

// SetNillableAverageHabitScore sets the "average_habit_score" field if the given value is not nil.
func (_u *GrowthRecordUpdate) SetNillableAverageHabitScore(v *float64) *GrowthRecordUpdate {
	if v != nil {
		_u.SetAverageHabitScore(*v)
	}
	return _u
}

// AddAverageHabitScore adds value to the "average_habit_score" field.
func (_u *GrowthRecordUpdate) AddAverageHabitScore(v float64) *GrowthRecordUpdate {
	_u.mutation.AddAverageHabitScore(v)
	return _u
}

// SetChild sets the "child" edge to the Child entity.
func (_u *GrowthRecordUpdate) SetChild(v *Child) *GrowthRecordUpdate {
	return _u.SetChildID(v.ID)
}

// Mutation returns the GrowthRecordMutation object of the builder.
func (_u *GrowthRecordUpdate) Mutation() *GrowthRecordMutation {
	return _u.mutation
}

// ClearChild clears the "child" edge to the Child entity.
func (_u *GrowthRecordUpdate) ClearChild() *GrowthRecordUpdate {
	_u.mutation.ClearChild()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GrowthRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GrowthRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GrowthRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GrowthRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GrowthRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := growthrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GrowthRecordUpdate) check() error {
	if _u.mutation.ChildCleared() && len(_u.mutation.ChildIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GrowthRecord.child"`)
	}
	return nil
}

func (_u *GrowthRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(growthrecord.Table, growthrecord.Columns, sqlgraph.NewFieldSpec(growthrecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(growthrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(growthrecord.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TasksCompleted(); ok {
		_spec.SetField(growthrecord.FieldTasksCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTasksCompleted(); ok {
		_spec.AddField(growthrecord.FieldTasksCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpEarned(); ok {
		_spec.SetField(growthrecord.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpEarned(); ok {
		_spec.AddField(growthrecord.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AverageExpressionScore(); ok {
		_spec.SetField(growthrecord.FieldAverageExpressionScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageExpressionScore(); ok {
		_spec.AddField(growthrecord.FieldAverageExpressionScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AverageLogicScore(); ok {
		_spec.SetField(growthrecord.FieldAverageLogicScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageLogicScore(); ok {
		_spec.AddField(growthrecord.FieldAverageLogicScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AverageExplorationScore(); ok {
		_spec.SetField(growthrecord.FieldAverageExplorationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageExplorationScore(); ok {
		_spec.AddField(growthrecord.FieldAverageExplorationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AverageCreativityScore(); ok {
		_spec.SetField(growthrecord.FieldAverageCreativityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageCreativityScore(); ok {
		_spec.AddField(growthrecord.FieldAverageCreativityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AverageHabitScore(); ok {
		_spec.SetField(growthrecord.FieldAverageHabitScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageHabitScore(); ok {
		_spec.AddField(growthrecord.FieldAverageHabitScore, field.TypeFloat64, value)
	}
	if _u.mutation.ChildCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   growthrecord.ChildTable,
			Columns: []string{growthrecord.ChildColumn},
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
			Table:   growthrecord.ChildTable,
			Columns: []string{growthrecord.ChildColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{growthrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GrowthRecordUpdateOne is the builder for updating a single GrowthRecord entity.
type GrowthRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GrowthRecordMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GrowthRecordUpdateOne) SetUpdatedAt(v time.Time) *GrowthRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetChildID sets the "child_id" field.
func (_u *GrowthRecordUpdateOne) SetChildID(v uuid.UUID) *GrowthRecordUpdateOne {
	_u.mutation.SetChildID(v)
	return _u
}

// SetNillableChildID sets the "child_id" field if the given value is not nil.
func (_u *GrowthRecordUpdateOne) SetNillableChildID(v *uuid.UUID) *GrowthRecordUpdateOne {
	if v != nil {
		_u.SetChildID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *GrowthRecordUpdateOne) SetDate(v time.Time) *GrowthRecordUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *GrowthRecordUpdateOne) SetNillableDate(v *time.Time) *GrowthRecordUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetTasksCompleted sets the "tasks_completed" field.
func (_u *GrowthRecordUpdateOne) SetTasksCompleted(v int) *GrowthRecordUpdateOne {
	_u.mutation.ResetTasksCompleted()
	_u.mutation.SetTasksCompleted(v)
	return _u
}

// SetNillableTasksCompleted sets the "tasks_completed" field if the given value is not nil.
func (_u *GrowthRecordUpdateOne) SetNillableTasksCompleted(v *int) *GrowthRecordUpdateOne {
	if v != nil {
		_u.SetTasksCompleted(*v)
	}
	return _u
}

// AddTasksCompleted adds value to the "tasks_completed" field.
func (_u *GrowthRecordUpdateOne) AddTasksCompleted(v int) *GrowthRecordUpdateOne {
	_u.mutation.AddTasksCompleted(v)
	return _u
}

// SetXpEarned sets the "xp_earned" field.
func (_u *GrowthRecordUpdateOne) SetXpEarned(v int) *GrowthRecordUpdateOne {
	_u.mutation.ResetXpEarned()
	_u.mutation.SetXpEarned(v)
	return _u
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_u *GrowthRecordUpdateOne) SetNillableXpEarned(v *int) *GrowthRecordUpdateOne {
	if v != nil {
		_u.SetXpEarned(*v)
	}
	return _u
}

// AddXpEarned adds value to the "xp_earned" field.
func (_u *GrowthRecordUpdateOne) AddXpEarned(v int) *GrowthRecordUpdateOne {
	_u.mutation.AddXpEarned(v)
	return _u
}

// SetAverageExpressionScore sets the "average_expression_score" field.
func (_u *GrowthRecordUpdateOne) SetAverageExpressionScore(v float64) *GrowthRecordUpdateOne {
	_u.mutation.ResetAverageExpressionScore()
	_u.mutation.SetAverageExpressionScore(v)
	return _u
}

// SetNillableAverageExpressionScore sets the "average_expression_score" field if the given value is not nil.
func (_u *GrowthRecordUpdateOne) SetNillableAverageExpressionScore(v *float64) *GrowthRecordUpdateOne {
	if v != nil {
		_u.SetAverageExpressionScore(*v)
	}
	return _u
}

// AddAverageExpressionScore adds value to the "average_expression_score" field.
func (_u *GrowthRecordUpdateOne) AddAverageExpressionScore(v float64) *GrowthRecordUpdateOne {
	_u.mutation.AddAverageExpressionScore(v)
	return _u
}

// SetAverageLogicScore sets the "average_logic_score" field.
func (_u *GrowthRecordUpdateOne) SetAverageLogicScore(v float64) *GrowthRecordUpdateOne {
	_u.mutation.ResetAverageLogicScore()
	_u.mutation.SetAverageLogicScore(v)
	return _u
}

// SetNillableAverageLogicScore sets the "average_logic_score" field if the given value is not nil.
func (_u *GrowthRecordUpdateOne) SetNillableAverageLogicScore(v *float64) *GrowthRecordUpdateOne {
	if v != nil {
		_u.SetAverageLogicScore(*v)
	}
	return _u
}

// AddAverageLogicScore adds value to the "average_logic_score" field.
func (_u *GrowthRecordUpdateOne) AddAverageLogicScore(v float64) *GrowthRecordUpdateOne {
	_u.mutation.AddAverageLogicScore(v)
	return _u
}

// SetAverageExplorationScore sets the "average_exploration_score" field.
func (_u *GrowthRecordUpdateOne) SetAverageExplorationScore(v float64) *GrowthRecordUpdateOne {
	_u.mutation.ResetAverageExplorationScore()
	_u.mutation.SetAverageExplorationScore(v)
	return _u
}

// SetNillableAverageExplorationScore sets the "average_exploration_score" field if the given value is not nil.
func (_u *GrowthRecordUpdateOne) SetNillableAverageExplorationScore(v *float64) *GrowthRecordUpdateOne {
	if v != nil {
		_u.SetAverageExplorationScore(*v)
	}
	return _u
}

// AddAverageExplorationScore adds value to the "average_exploration_score" field.
func (_u *GrowthRecordUpdateOne) AddAverageExplorationScore(v float64) *GrowthRecordUpdateOne {
	_u.mutation.AddAverageExplorationScore(v)
	return _u
}

// SetAverageCreativityScore sets the "average_creativity_score" field.
func (_u *GrowthRecordUpdateOne) SetAverageCreativityScore(v float64) *GrowthRecordUpdateOne {
	_u.mutation.ResetAverageCreativityScore()
	_u.mutation.SetAverageCreativityScore(v)
	return _u
}

// SetNillableAverageCreativityScore sets the "average_creativity_score" field if the given value is not nil.
func (_u *GrowthRecordUpdateOne) SetNillableAverageCreativityScore(v *float64) *GrowthRecordUpdateOne {
	if v != nil {
		_u.SetAverageCreativityScore(*v)
	}
	return _u
}

// AddAverageCreativityScore adds value to the "average_creativity_score" field.
func (_u *GrowthRecordUpdateOne) AddAverageCreativityScore(v float64) *GrowthRecordUpdateOne {
	_u.mutation.AddAverageCreativityScore(v)
	return _u
}

// SetAverageHabitScore sets the "average_habit_score" field.
func (_u *GrowthRecordUpdateOne) SetAverageHabitScore(v float64) *GrowthRecordUpdateOne {
	_u.mutation.ResetAverageHabitScore()
	_u.mutation.SetAverageHabitScore(v)
	return _u
}

// SetNillableAverageHabitScore sets the "average_habit_score" field if the given value is not nil.
func (_u *GrowthRecordUpdateOne) SetNillableAverageHabitScore(v *float64) *GrowthRecordUpdateOne {
	if v != nil {
		_u.SetAverageHabitScore(*v)
	}
	return _u
}

// AddAverageHabitScore adds value to the "average_habit_score" field.
func (_u *GrowthRecordUpdateOne) AddAverageHabitScore(v float64) *GrowthRecordUpdateOne {
	_u.mutation.AddAverageHabitScore(v)
	return _u
}

// SetChild sets the "child" edge to the Child entity.
func (_u *GrowthRecordUpdateOne) SetChild(v *Child) *GrowthRecordUpdateOne {
	return _u.SetChildID(v.ID)
}

// Mutation returns the GrowthRecordMutation object of the builder.
func (_u *GrowthRecordUpdateOne) Mutation() *GrowthRecordMutation {
	return _u.mutation
}

// ClearChild clears the "child" edge to the Child entity.
func (_u *GrowthRecordUpdateOne) ClearChild() *GrowthRecordUpdateOne {
	_u.mutation.ClearChild()
	return _u
}

// Where appends a list predicates to the GrowthRecordUpdate builder.
func (_u *GrowthRecordUpdateOne) Where(ps ...predicate.GrowthRecord) *GrowthRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GrowthRecordUpdateOne) Select(field string, fields ...string) *GrowthRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GrowthRecord entity.
func (_u *GrowthRecordUpdateOne) Save(ctx context.Context) (*GrowthRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GrowthRecordUpdateOne) SaveX(ctx context.Context) *GrowthRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GrowthRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GrowthRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GrowthRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := growthrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GrowthRecordUpdateOne) check() error {
	if _u.mutation.ChildCleared() && len(_u.mutation.ChildIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GrowthRecord.child"`)
	}
	return nil
}

func (_u *GrowthRecordUpdateOne) sqlSave(ctx context.Context) (_node *GrowthRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(growthrecord.Table, growthrecord.Columns, sqlgraph.NewFieldSpec(growthrecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GrowthRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, growthrecord.FieldID)
		for _, f := range fields {
			if !growthrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != growthrecord.FieldID {
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
		_spec.SetField(growthrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(growthrecord.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TasksCompleted(); ok {
		_spec.SetField(growthrecord.FieldTasksCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTasksCompleted(); ok {
		_spec.AddField(growthrecord.FieldTasksCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpEarned(); ok {
		_spec.SetField(growthrecord.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpEarned(); ok {
		_spec.AddField(growthrecord.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AverageExpressionScore(); ok {
		_spec.SetField(growthrecord.FieldAverageExpressionScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageExpressionScore(); ok {
		_spec.AddField(growthrecord.FieldAverageExpressionScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AverageLogicScore(); ok {
		_spec.SetField(growthrecord.FieldAverageLogicScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageLogicScore(); ok {
		_spec.AddField(growthrecord.FieldAverageLogicScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AverageExplorationScore(); ok {
		_spec.SetField(growthrecord.FieldAverageExplorationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageExplorationScore(); ok {
		_spec.AddField(growthrecord.FieldAverageExplorationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AverageCreativityScore(); ok {
		_spec.SetField(growthrecord.FieldAverageCreativityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageCreativityScore(); ok {
		_spec.AddField(growthrecord.FieldAverageCreativityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AverageHabitScore(); ok {
		_spec.SetField(growthrecord.FieldAverageHabitScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageHabitScore(); ok {
		_spec.AddField(growthrecord.FieldAverageHabitScore, field.TypeFloat64, value)
	}
	if _u.mutation.ChildCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   growthrecord.ChildTable,
			Columns: []string{growthrecord.ChildColumn},
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
			Table:   growthrecord.ChildTable,
			Columns: []string{growthrecord.ChildColumn},
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
	_node = &GrowthRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{growthrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
