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
	"github.com/abhisek/budai/ent/coachsession"
	"github.com/abhisek/budai/internal/chat"
	"github.com/google/uuid"
)

// CoachSessionCreate is the builder for creating a CoachSession entity.
type CoachSessionCreate struct {
	config
	mutation *CoachSessionMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *CoachSessionCreate) SetCreatedAt(v time.Time) *CoachSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CoachSessionCreate) SetNillableCreatedAt(v *time.Time) *CoachSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CoachSessionCreate) SetUpdatedAt(v time.Time) *CoachSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CoachSessionCreate) SetNillableUpdatedAt(v *time.Time) *CoachSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetChildID sets the "child_id" field.
func (_c *CoachSessionCreate) SetChildID(v uuid.UUID) *CoachSessionCreate {
	_c.mutation.SetChildID(v)
	return _c
}

// SetTaskRecordID sets the "task_record_id" field.
func (_c *CoachSessionCreate) SetTaskRecordID(v uuid.UUID) *CoachSessionCreate {
	_c.mutation.SetTaskRecordID(v)
	return _c
}

// SetMessages sets the "messages" field.
func (_c *CoachSessionCreate) SetMessages(v []chat.Turn) *CoachSessionCreate {
	_c.mutation.SetMessages(v)
	return _c
}

// SetTurnCount sets the "turn_count" field.
func (_c *CoachSessionCreate) SetTurnCount(v int) *CoachSessionCreate {
	_c.mutation.SetTurnCount(v)
	return _c
}

// SetNillableTurnCount sets the "turn_count" field if the given value is not nil.
func (_c *CoachSessionCreate) SetNillableTurnCount(v *int) *CoachSessionCreate {
	if v != nil {
		_c.SetTurnCount(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CoachSessionCreate) SetID(v uuid.UUID) *CoachSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CoachSessionCreate) SetNillableID(v *uuid.UUID) *CoachSessionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetChild sets the "child" edge to the Child entity.
func (_c *CoachSessionCreate) SetChild(v *Child) *CoachSessionCreate {
	return _c.SetChildID(v.ID)
}

// Mutation returns the CoachSessionMutation object of the builder.
func (_c *CoachSessionCreate) Mutation() *CoachSessionMutation {
	return _c.mutation
}

// Save creates the CoachSession in the database.
func (_c *CoachSessionCreate) Save(ctx context.Context) (*CoachSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CoachSessionCreate) SaveX(ctx context.Context) *CoachSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CoachSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CoachSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CoachSessionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := coachsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := coachsession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.TurnCount(); !ok {
		v := coachsession.DefaultTurnCount
		_c.mutation.SetTurnCount(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := coachsession.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CoachSessionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CoachSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CoachSession.updated_at"`)}
	}
	if _, ok := _c.mutation.ChildID(); !ok {
		return &ValidationError{Name: "child_id", err: errors.New(`ent: missing required field "CoachSession.child_id"`)}
	}
	if _, ok := _c.mutation.TaskRecordID(); !ok {
		return &ValidationError{Name: "task_record_id", err: errors.New(`ent: missing required field "CoachSession.task_record_id"`)}
	}
	if _, ok := _c.mutation.TurnCount(); !ok {
		return &ValidationError{Name: "turn_count", err: errors.New(`ent: missing required field "CoachSession.turn_count"`)}
	}
	if len(_c.mutation.ChildIDs()) == 0 {
		return &ValidationError{Name: "child", err: errors.New(`ent: missing required edge "CoachSession.child"`)}
	}
	return nil
}

func (_c *CoachSessionCreate) sqlSave(ctx context.Context) (*CoachSession, error) {
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

func (_c *CoachSessionCreate) createSpec() (*CoachSession, *sqlgraph.CreateSpec) {
	var (
		_node = &CoachSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(coachsession.Table, sqlgraph.NewFieldSpec(coachsession.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(coachsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(coachsession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.TaskRecordID(); ok {
		_spec.SetField(coachsession.FieldTaskRecordID, field.TypeUUID, value)
		_node.TaskRecordID = value
	}
	if value, ok := _c.mutation.Messages(); ok {
		_spec.SetField(coachsession.FieldMessages, field.TypeJSON, value)
		_node.Messages = value
	}
	if value, ok := _c.mutation.TurnCount(); ok {
		_spec.SetField(coachsession.FieldTurnCount, field.TypeInt, value)
		_node.TurnCount = value
	}
	if nodes := _c.mutation.ChildIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   coachsession.ChildTable,
			Columns: []string{coachsession.ChildColumn},
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

// CoachSessionCreateBulk is the builder for creating many CoachSession entities in bulk.
type CoachSessionCreateBulk struct {
	config
	err      error
	builders []*CoachSessionCreate
}

// Save creates the CoachSession entities in the database.
func (_c *CoachSessionCreateBulk) Save(ctx context.Context) ([]*CoachSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CoachSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CoachSessionMutation)
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
func (_c *CoachSessionCreateBulk) SaveX(ctx context.Context) []*CoachSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CoachSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CoachSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
