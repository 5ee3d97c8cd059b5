// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/budai/ent/badge"
	"github.com/abhisek/budai/ent/badgeaward"
	"github.com/abhisek/budai/ent/child"
	"github.com/google/uuid"
)

// BadgeAwardCreate is the builder for creating a BadgeAward entity.
type BadgeAwardCreate struct {
	config
	mutation *BadgeAwardMutation
	hooks    []Hook
}

// SetChildID sets the "child_id" field.
func (_c *BadgeAwardCreate) SetChildID(v uuid.UUID) *BadgeAwardCreate {
	_c.mutation.SetChildID(v)
	return _c
}

// SetBadgeID sets the "badge_id" field.
func (_c *BadgeAwardCreate) SetBadgeID(v uuid.UUID) *BadgeAwardCreate {
	_c.mutation.SetBadgeID(v)
	return _c
}

// SetAwardedAt sets the "awarded_at" field.
func (_c *BadgeAwardCreate) SetAwardedAt(v time.Time) *BadgeAwardCreate {
	_c.mutation.SetAwardedAt(v)
	return _c
}

// SetNillableAwardedAt sets the "awarded_at" field if the given value is not nil.
func (_c *BadgeAwardCreate) SetNillableAwardedAt(v *time.Time) *BadgeAwardCreate {
	if v != nil {
		_c.SetAwardedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BadgeAwardCreate) SetID(v uuid.UUID) *BadgeAwardCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BadgeAwardCreate) SetNillableID(v *uuid.UUID) *BadgeAwardCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetChild sets the "child" edge to the Child entity.
func (_c *BadgeAwardCreate) SetChild(v *Child) *BadgeAwardCreate {
	return _c.SetChildID(v.ID)
}

// SetBadge sets the "badge" edge to the Badge entity.
func (_c *BadgeAwardCreate) SetBadge(v *Badge) *BadgeAwardCreate {
	return _c.SetBadgeID(v.ID)
}

// Mutation returns the BadgeAwardMutation object of the builder.
func (_c *BadgeAwardCreate) Mutation() *BadgeAwardMutation {
	return _c.mutation
}

// Save creates the BadgeAward in the database.
func (_c *BadgeAwardCreate) Save(ctx context.Context) (*BadgeAward, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BadgeAwardCreate) SaveX(ctx context.Context) *BadgeAward {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BadgeAwardCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BadgeAwardCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BadgeAwardCreate) defaults() {
	if _, ok := _c.mutation.AwardedAt(); !ok {
		v := badgeaward.DefaultAwardedAt()
		_c.mutation.SetAwardedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := badgeaward.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BadgeAwardCreate) check() error {
	if _, ok := _c.mutation.ChildID(); !ok {
		return &ValidationError{Name: "child_id", err: errors.New(`ent: missing required field "BadgeAward.child_id"`)}
	}
	if _, ok := _c.mutation.BadgeID(); !ok {
		return &ValidationError{Name: "badge_id", err: errors.New(`ent: missing required field "BadgeAward.badge_id"`)}
	}
	if _, ok := _c.mutation.AwardedAt(); !ok {
		return &ValidationError{Name: "awarded_at", err: errors.New(`ent: missing required field "BadgeAward.awarded_at"`)}
	}
	if len(_c.mutation.ChildIDs()) == 0 {
		return &ValidationError{Name: "child", err: errors.New(`ent: missing required edge "BadgeAward.child"`)}
	}
	if len(_c.mutation.BadgeIDs()) == 0 {
		return &ValidationError{Name: "badge", err: errors.New(`ent: missing required edge "BadgeAward.badge"`)}
	}
	return nil
}

func (_c *BadgeAwardCreate) sqlSave(ctx context.Context) (*BadgeAward, error) {
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

func (_c *BadgeAwardCreate) createSpec() (*BadgeAward, *sqlgraph.CreateSpec) {
	var (
		_node = &BadgeAward{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(badgeaward.Table, sqlgraph.NewFieldSpec(badgeaward.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.AwardedAt(); ok {
		_spec.SetField(badgeaward.FieldAwardedAt, field.TypeTime, value)
		_node.AwardedAt = value
	}
	if nodes := _c.mutation.ChildIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   badgeaward.ChildTable,
			Columns: []string{badgeaward.ChildColumn},
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
	if nodes := _c.mutation.BadgeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   badgeaward.BadgeTable,
			Columns: []string{badgeaward.BadgeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(badge.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.BadgeID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BadgeAwardCreateBulk is the builder for creating many BadgeAward entities in bulk.
type BadgeAwardCreateBulk struct {
	config
	err      error
	builders []*BadgeAwardCreate
}

// Save creates the BadgeAward entities in the database.
func (_c *BadgeAwardCreateBulk) Save(ctx context.Context) ([]*BadgeAward, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BadgeAward, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BadgeAwardMutation)
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
func (_c *BadgeAwardCreateBulk) SaveX(ctx context.Context) []*BadgeAward {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BadgeAwardCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BadgeAwardCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
