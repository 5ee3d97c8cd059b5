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
	"github.com/abhisek/budai/ent/child"
	"github.com/google/uuid"
)

// AssessmentCreate is the builder for creating a Assessment entity.
type AssessmentCreate struct {
	config
	mutation *AssessmentMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *AssessmentCreate) SetCreatedAt(v time.Time) *AssessmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AssessmentCreate) SetNillableCreatedAt(v *time.Time) *AssessmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AssessmentCreate) SetUpdatedAt(v time.Time) *AssessmentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AssessmentCreate) SetNillableUpdatedAt(v *time.Time) *AssessmentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetExpressionScore sets the "expression_score" field.
func (_c *AssessmentCreate) SetExpressionScore(v float64) *AssessmentCreate {
	_c.mutation.SetExpressionScore(v)
	return _c
}

// SetNillableExpressionScore sets the "expression_score" field if the given value is not nil.
func (_c *AssessmentCreate) SetNillableExpressionScore(v *float64) *AssessmentCreate {
	if v != nil {
		_c.SetExpressionScore(*v)
	}
	return _c
}

// SetLogicScore sets the "logic_score" field.
func (_c *AssessmentCreate) SetLogicScore(v float64) *AssessmentCreate {
	_c.mutation.SetLogicScore(v)
	return _c
}

// SetNillableLogicScore sets the "logic_score" field if the given value is not nil.
func (_c *AssessmentCreate) SetNillableLogicScore(v *float64) *AssessmentCreate {
	if v != nil {
		_c.SetLogicScore(*v)
	}
	return _c
}

// SetExplorationScore sets the "exploration_score" field.
func (_c *AssessmentCreate) SetExplorationScore(v float64) *AssessmentCreate {
	_c.mutation.SetExplorationScore(v)
	return _c
}

// SetNillableExplorationScore sets the "exploration_score" field if the given value is not nil.
func (_c *AssessmentCreate) SetNillableExplorationScore(v *float64) *AssessmentCreate {
	if v != nil {
		_c.SetExplorationScore(*v)
	}
	return _c
}

// SetCreativityScore sets the "creativity_score" field.
func (_c *AssessmentCreate) SetCreativityScore(v float64) *AssessmentCreate {
	_c.mutation.SetCreativityScore(v)
	return _c
}

// SetNillableCreativityScore sets the "creativity_score" field if the given value is not nil.
func (_c *AssessmentCreate) SetNillableCreativityScore(v *float64) *AssessmentCreate {
	if v != nil {
		_c.SetCreativityScore(*v)
	}
	return _c
}

// SetHabitScore sets the "habit_score" field.
func (_c *AssessmentCreate) SetHabitScore(v float64) *AssessmentCreate {
	_c.mutation.SetHabitScore(v)
	return _c
}

// SetNillableHabitScore sets the "habit_score" field if the given value is not nil.
func (_c *AssessmentCreate) SetNillableHabitScore(v *float64) *AssessmentCreate {
	if v != nil {
		_c.SetHabitScore(*v)
	}
	return _c
}

// SetChildID sets the "child_id" field.
func (_c *AssessmentCreate) SetChildID(v uuid.UUID) *AssessmentCreate {
	_c.mutation.SetChildID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *AssessmentCreate) SetKind(v assessment.Kind) *AssessmentCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetResponses sets the "responses" field.
func (_c *AssessmentCreate) SetResponses(v []string) *AssessmentCreate {
	_c.mutation.SetResponses(v)
	return _c
}

// SetAnalysis sets the "analysis" field.
func (_c *AssessmentCreate) SetAnalysis(v string) *AssessmentCreate {
	_c.mutation.SetAnalysis(v)
	return _c
}

// SetNillableAnalysis sets the "analysis" field if the given value is not nil.
func (_c *AssessmentCreate) SetNillableAnalysis(v *string) *AssessmentCreate {
	if v != nil {
		_c.SetAnalysis(*v)
	}
	return _c
}

// SetSuggestions sets the "suggestions" field.
func (_c *AssessmentCreate) SetSuggestions(v []string) *AssessmentCreate {
	_c.mutation.SetSuggestions(v)
	return _c
}

// SetID sets the "id" field.
func (_c *AssessmentCreate) SetID(v uuid.UUID) *AssessmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AssessmentCreate) SetNillableID(v *uuid.UUID) *AssessmentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetChild sets the "child" edge to the Child entity.
func (_c *AssessmentCreate) SetChild(v *Child) *AssessmentCreate {
	return _c.SetChildID(v.ID)
}

// Mutation returns the AssessmentMutation object of the builder.
func (_c *AssessmentCreate) Mutation() *AssessmentMutation {
	return _c.mutation
}

// Save creates the Assessment in the database.
func (_c *AssessmentCreate) Save(ctx context.Context) (*Assessment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssessmentCreate) SaveX(ctx context.Context) *Assessment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssessmentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := assessment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := assessment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ExpressionScore(); !ok {
		v := assessment.DefaultExpressionScore
		_c.mutation.SetExpressionScore(v)
	}
	if _, ok := _c.mutation.LogicScore(); !ok {
		v := assessment.DefaultLogicScore
		_c.mutation.SetLogicScore(v)
	}
	if _, ok := _c.mutation.ExplorationScore(); !ok {
		v := assessment.DefaultExplorationScore
		_c.mutation.SetExplorationScore(v)
	}
	if _, ok := _c.mutation.CreativityScore(); !ok {
		v := assessment.DefaultCreativityScore
		_c.mutation.SetCreativityScore(v)
	}
	if _, ok := _c.mutation.HabitScore(); !ok {
		v := assessment.DefaultHabitScore
		_c.mutation.SetHabitScore(v)
	}
	if _, ok := _c.mutation.Analysis(); !ok {
		v := assessment.DefaultAnalysis
		_c.mutation.SetAnalysis(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := assessment.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssessmentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Assessment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Assessment.updated_at"`)}
	}
	if _, ok := _c.mutation.ExpressionScore(); !ok {
		return &ValidationError{Name: "expression_score", err: errors.New(`ent: missing required field "Assessment.expression_score"`)}
	}
	if _, ok := _c.mutation.LogicScore(); !ok {
		return &ValidationError{Name: "logic_score", err: errors.New(`ent: missing required field "Assessment.logic_score"`)}
	}
	if _, ok := _c.mutation.ExplorationScore(); !ok {
		return &ValidationError{Name: "exploration_score", err: errors.New(`ent: missing required field "Assessment.exploration_score"`)}
	}
	if _, ok := _c.mutation.CreativityScore(); !ok {
		return &ValidationError{Name: "creativity_score", err: errors.New(`ent: missing required field "Assessment.creativity_score"`)}
	}
	if _, ok := _c.mutation.HabitScore(); !ok {
		return &ValidationError{Name: "habit_score", err: errors.New(`ent: missing required field "Assessment.habit_score"`)}
	}
	if _, ok := _c.mutation.ChildID(); !ok {
		return &ValidationError{Name: "child_id", err: errors.New(`ent: missing required field "Assessment.child_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Assessment.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := assessment.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Assessment.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Responses(); !ok {
		return &ValidationError{Name: "responses", err: errors.New(`ent: missing required field "Assessment.responses"`)}
	}
	if _, ok := _c.mutation.Analysis(); !ok {
		return &ValidationError{Name: "analysis", err: errors.New(`ent: missing required field "Assessment.analysis"`)}
	}
	if len(_c.mutation.ChildIDs()) == 0 {
		return &ValidationError{Name: "child", err: errors.New(`ent: missing required edge "Assessment.child"`)}
	}
	return nil
}

func (_c *AssessmentCreate) sqlSave(ctx context.Context) (*Assessment, error) {
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

func (_c *AssessmentCreate) createSpec() (*Assessment, *sqlgraph.CreateSpec) {
	var (
		_node = &Assessment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assessment.Table, sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(assessment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(assessment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ExpressionScore(); ok {
		_spec.SetField(assessment.FieldExpressionScore, field.TypeFloat64, value)
		_node.ExpressionScore = value
	}
	if value, ok := _c.mutation.LogicScore(); ok {
		_spec.SetField(assessment.FieldLogicScore, field.TypeFloat64, value)
		_node.LogicScore = value
	}
	if value, ok := _c.mutation.ExplorationScore(); ok {
		_spec.SetField(assessment.FieldExplorationScore, field.TypeFloat64, value)
		_node.ExplorationScore = value
	}
	if value, ok := _c.mutation.CreativityScore(); ok {
		_spec.SetField(assessment.FieldCreativityScore, field.TypeFloat64, value)
		_node.CreativityScore = value
	}
	if value, ok := _c.mutation.HabitScore(); ok {
		_spec.SetField(assessment.FieldHabitScore, field.TypeFloat64, value)
		_node.HabitScore = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(assessment.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Responses(); ok {
		_spec.SetField(assessment.FieldResponses, field.TypeJSON, value)
		_node.Responses = value
	}
	if value, ok := _c.mutation.Analysis(); ok {
		_spec.SetField(assessment.FieldAnalysis, field.TypeString, value)
		_node.Analysis = value
	}
	if value, ok := _c.mutation.Suggestions(); ok {
		_spec.SetField(assessment.FieldSuggestions, field.TypeJSON, value)
		_node.Suggestions = value
	}
	if nodes := _c.mutation.ChildIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assessment.ChildTable,
			Columns: []string{assessment.ChildColumn},
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

// AssessmentCreateBulk is the builder for creating many Assessment entities in bulk.
type AssessmentCreateBulk struct {
	config
	err      error
	builders []*AssessmentCreate
}

// Save creates the Assessment entities in the database.
func (_c *AssessmentCreateBulk) Save(ctx context.Context) ([]*Assessment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Assessment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssessmentMutation)
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
func (_c *AssessmentCreateBulk) SaveX(ctx context.Context) []*Assessment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
