// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/budai/ent/child"
	"github.com/abhisek/budai/ent/growthrecord"
	"github.com/google/uuid"
)

// GrowthRecordCreate is the builder for creating a GrowthRecord entity.
type GrowthRecordCreate struct {
	config
	mutation *GrowthRecordMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *GrowthRecordCreate) SetCreatedAt(v time.Time) *GrowthRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GrowthRecordCreate) SetNillableCreatedAt(v *time.Time) *GrowthRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *GrowthRecordCreate) SetUpdatedAt(v time.Time) *GrowthRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *GrowthRecordCreate) SetNillableUpdatedAt(v *time.Time) *GrowthRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetChildID sets the "child_id" field.
func (_c *GrowthRecordCreate) SetChildID(v uuid.UUID) *GrowthRecordCreate {
	_c.mutation.SetChildID(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *GrowthRecordCreate) SetDate(v time.Time) *GrowthRecordCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetTasksCompleted sets the "tasks_completed" field.
func (_c *GrowthRecordCreate) SetTasksCompleted(v int) *GrowthRecordCreate {
	_c.mutation.SetTasksCompleted(v)
	return _c
}

// SetNillableTasksCompleted sets the "tasks_completed" field if the given value is not nil.
func (_c *GrowthRecordCreate) SetNillableTasksCompleted(v *int) *GrowthRecordCreate {
	if v != nil {
		_c.SetTasksCompleted(*v)
	}
	return _c
}

// SetXpEarned sets the "xp_earned" field.
func (_c *GrowthRecordCreate) SetXpEarned(v int) *GrowthRecordCreate {
	_c.mutation.SetXpEarned(v)
	return _c
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_c *GrowthRecordCreate) SetNillableXpEarned(v *int) *GrowthRecordCreate {
	if v != nil {
		_c.SetXpEarned(*v)
	}
	return _c
}

// SetAverageExpressionScore sets the "average_expression_score" field.
func (_c *GrowthRecordCreate) SetAverageExpressionScore(v float64) *GrowthRecordCreate {
	_c.mutation.SetAverageExpressionScore(v)
	return _c
}

// SetNillableAverageExpressionScore sets the "average_expression_score" field if the given value is not nil.
func (_c *GrowthRecordCreate) SetNillableAverageExpressionScore(v *float64) *GrowthRecordCreate {
	if v != nil {
		_c.SetAverageExpressionScore(*v)
	}
	return _c
}

// SetAverageLogicScore sets the "average_logic_score" field.
func (_c *GrowthRecordCreate) SetAverageLogicScore(v float64) *GrowthRecordCreate {
	_c.mutation.SetAverageLogicScore(v)
	return _c
}

// SetNillableAverageLogicScore sets the "average_logic_score" field if the given value is not nil.
func (_c *GrowthRecordCreate) SetNillableAverageLogicScore(v *float64) *GrowthRecordCreate {
	if v != nil {
		_c.SetAverageLogicScore(*v)
	}
	return _c
}

// SetAverageExplorationScore sets the "average_exploration_score" field.
func (_c *GrowthRecordCreate) SetAverageExplorationScore(v float64) *GrowthRecordCreate {
	_c.mutation.SetAverageExplorationScore(v)
	return _c
}

// SetNillableAverageExplorationScore sets the "average_exploration_score" field if the given value is not nil.
func (_c *GrowthRecordCreate) SetNillableAverageExplorationScore(v *float64) *GrowthRecordCreate {
	if v != nil {
		_c.SetAverageExplorationScore(*v)
	}
	return _c
}

// SetAverageCreativityScore sets the "average_creativity_score" field.
func (_c *GrowthRecordCreate) SetAverageCreativityScore(v float64) *GrowthRecordCreate {
	_c.mutation.SetAverageCreativityScore(v)
	return _c
}

// SetNillableAverageCreativityScore sets the "average_creativity_score" field if the given value is not nil.
func (_c *GrowthRecordCreate) SetNillableAverageCreativityScore(v *float64) *GrowthRecordCreate {
	if v != nil {
		_c.SetAverageCreativityScore(*v)
	}
	return _c
}

// SetAverageHabitScore sets the "average_habit_score" field.
func (_c *GrowthRecordCreate) SetAverageHabitScore(v float64) *GrowthRecordCreate {
	_c.mutation.SetAverageHabitScore(v)
	return _c
}

// SetNillableAverageHabitScore sets the "average_habit_score" field if the given value is not nil.
func (_c *GrowthRecordCreate) SetNillableAverageHabitScore(v *float64) *GrowthRecordCreate {
	if v != nil {
		_c.SetAverageHabitScore(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GrowthRecordCreate) SetID(v uuid.UUID) *GrowthRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *GrowthRecordCreate) SetNillableID(v *uuid.UUID) *GrowthRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetChild sets the "child" edge to the Child entity.
func (_c *GrowthRecordCreate) SetChild(v *Child) *GrowthRecordCreate {
	return _c.SetChildID(v.ID)
}

// Mutation returns the GrowthRecordMutation object of the builder.
func (_c *GrowthRecordCreate) Mutation() *GrowthRecordMutation {
	return _c.mutation
}

// Save creates the GrowthRecord in the database.
func (_c *GrowthRecordCreate) Save(ctx context.Context) (*GrowthRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GrowthRecordCreate) SaveX(ctx context.Context) *GrowthRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GrowthRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GrowthRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GrowthRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := growthrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := growthrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.TasksCompleted(); !ok {
		v := growthrecord.DefaultTasksCompleted
		_c.mutation.SetTasksCompleted(v)
	}
	if _, ok := _c.mutation.XpEarned(); !ok {
		v := growthrecord.DefaultXpEarned
		_c.mutation.SetXpEarned(v)
	}
	if _, ok := _c.mutation.AverageExpressionScore(); !ok {
		v := growthrecord.DefaultAverageExpressionScore
		_c.mutation.SetAverageExpressionScore(v)
	}
	if _, ok := _c.mutation.AverageLogicScore(); !ok {
		v := growthrecord.DefaultAverageLogicScore
		_c.mutation.SetAverageLogicScore(v)
	}
	if _, ok := _c.mutation.AverageExplorationScore(); !ok {
		v := growthrecord.DefaultAverageExplorationScore
		_c.mutation.SetAverageExplorationScore(v)
	}
	if _, ok := _c.mutation.AverageCreativityScore(); !ok {
		v := growthrecord.DefaultAverageCreativityScore
		_c.mutation.SetAverageCreativityScore(v)
	}
	if _, ok := _c.mutation.AverageHabitScore(); !ok {
		v := growthrecord.DefaultAverageHabitScore
		_c.mutation.SetAverageHabitScore(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := growthrecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GrowthRecordCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GrowthRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "GrowthRecord.updated_at"`)}
	}
	if _, ok := _c.mutation.ChildID(); !ok {
		return &ValidationError{Name: "child_id", err: errors.New(`ent: missing required field "GrowthRecord.child_id"`)}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "GrowthRecord.date"`)}
	}
	if _, ok := _c.mutation.TasksCompleted(); !ok {
		return &ValidationError{Name: "tasks_completed", err: errors.New(`ent: missing required field "GrowthRecord.tasks_completed"`)}
	}
	if _, ok := _c.mutation.XpEarned(); !ok {
		return &ValidationError{Name: "xp_earned", err: errors.New(`ent: missing required field "GrowthRecord.xp_earned"`)}
	}
	if _, ok := _c.mutation.AverageExpressionScore(); !ok {
		return &ValidationError{Name: "average_expression_score", err: errors.New(`ent: missing required field "GrowthRecord.average_expression_score"`)}
	}
	if _, ok := _c.mutation.AverageLogicScore(); !ok {
		return &ValidationError{Name: "average_logic_score", err: errors.New(`ent: missing required field "GrowthRecord.average_logic_score"`)}
	}
	if _, ok := _c.mutation.AverageExplorationScore(); !ok {
		return &ValidationError{Name: "average_exploration_score", err: errors.New(`ent: missing required field "GrowthRecord.average_exploration_score"`)}
	}
	if _, ok := _c.mutation.AverageCreativityScore(); !ok {
		return &ValidationError{Name: "average_creativity_score", err: errors.New(`ent: missing required field "GrowthRecord.average_creativity_score"`)}
	}
	if _, ok := _c.mutation.AverageHabitScore(); !ok {
		return &ValidationError{Name: "average_habit_score", err: errors.New(`ent: missing required field "GrowthRecord.average_habit_score"`)}
	}
	if len(_c.mutation.ChildIDs()) == 0 {
		return &ValidationError{Name: "child", err: errors.New(`ent: missing required edge "GrowthRecord.child"`)}
	}
	return nil
}

func (_c *GrowthRecordCreate) sqlSave(ctx context.Context) (*GrowthRecord, error) {
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

func (_c *GrowthRecordCreate) createSpec() (*GrowthRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &GrowthRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(growthrecord.Table, sqlgraph.NewFieldSpec(growthrecord.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(growthrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(growthrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(growthrecord.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.TasksCompleted(); ok {
		_spec.SetField(growthrecord.FieldTasksCompleted, field.TypeInt, value)
		_node.TasksCompleted = value
	}
	if value, ok := _c.mutation.XpEarned(); ok {
		_spec.SetField(growthrecord.FieldXpEarned, field.TypeInt, value)
		_node.XpEarned = value
	}
	if value, ok := _c.mutation.AverageExpressionScore(); ok {
		_spec.SetField(growthrecord.FieldAverageExpressionScore, field.TypeFloat64, value)
		_node.AverageExpressionScore = value
	}
	if value, ok := _c.mutation.AverageLogicScore(); ok {
		_spec.SetField(growthrecord.FieldAverageLogicScore, field.TypeFloat64, value)
		_node.AverageLogicScore = value
	}
	if value, ok := _c.mutation.AverageExplorationScore(); ok {
		_spec.SetField(growthrecord.FieldAverageExplorationScore, field.TypeFloat64, value)
		_node.AverageExplorationScore = value
	}
	if value, ok := _c.mutation.AverageCreativityScore(); ok {
		_spec.SetField(growthrecord.FieldAverageCreativityScore, field.TypeFloat64, value)
		_node.AverageCreativityScore = value
	}
	if value, ok := _c.mutation.AverageHabitScore(); ok {
		_spec.SetField(growthrecord.FieldAverageHabitScore, field.TypeFloat64, value)
		_node.AverageHabitScore = value
	}
	if nodes := _c.mutation.ChildIDs(); len(nodes) > 0 {
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
		_node.ChildID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// GrowthRecordCreateBulk is the builder for creating many GrowthRecord entities in bulk.
type GrowthRecordCreateBulk struct {
	config
	err      error
	builders []*GrowthRecordCreate
}

// Save creates the GrowthRecord entities in the database.
func (_c *GrowthRecordCreateBulk) Save(ctx context.Context) ([]*GrowthRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GrowthRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GrowthRecordMutation)
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
func (_c *GrowthRecordCreateBulk) SaveX(ctx context.Context) []*GrowthRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GrowthRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GrowthRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
