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
	"github.com/abhisek/budai/ent/cocreationcontribution"
	"github.com/abhisek/budai/ent/cocreationtheme"
	"github.com/google/uuid"
)

// CoCreationContributionCreate is the builder for creating a CoCreationContribution entity.
type CoCreationContributionCreate struct {
	config
	mutation *CoCreationContributionMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *CoCreationContributionCreate) SetCreatedAt(v time.Time) *CoCreationContributionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CoCreationContributionCreate) SetNillableCreatedAt(v *time.Time) *CoCreationContributionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CoCreationContributionCreate) SetUpdatedAt(v time.Time) *CoCreationContributionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CoCreationContributionCreate) SetNillableUpdatedAt(v *time.Time) *CoCreationContributionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetChildID sets the "child_id" field.
func (_c *CoCreationContributionCreate) SetChildID(v uuid.UUID) *CoCreationContributionCreate {
	_c.mutation.SetChildID(v)
	return _c
}

// SetThemeID sets the "theme_id" field.
func (_c *CoCreationContributionCreate) SetThemeID(v uuid.UUID) *CoCreationContributionCreate {
	_c.mutation.SetThemeID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *CoCreationContributionCreate) SetKind(v cocreationcontribution.Kind) *CoCreationContributionCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *CoCreationContributionCreate) SetContent(v string) *CoCreationContributionCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetID sets the "id" field.
func (_c *CoCreationContributionCreate) SetID(v uuid.UUID) *CoCreationContributionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CoCreationContributionCreate) SetNillableID(v *uuid.UUID) *CoCreationContributionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetChild sets the "child" edge to the Child entity.
func (_c *CoCreationContributionCreate) SetChild(v *Child) *CoCreationContributionCreate {
	return _c.SetChildID(v.ID)
}

// SetTheme sets the "theme" edge to the CoCreationTheme entity.
func (_c *CoCreationContributionCreate) SetTheme(v *CoCreationTheme) *CoCreationContributionCreate {
	return _c.SetThemeID(v.ID)
}

// Mutation returns the CoCreationContributionMutation object of the builder.
func (_c *CoCreationContributionCreate) Mutation() *CoCreationContributionMutation {
	return _c.mutation
}

// Save creates the CoCreationContribution in the database.
func (_c *CoCreationContributionCreate) Save(ctx context.Context) (*CoCreationContribution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CoCreationContributionCreate) SaveX(ctx context.Context) *CoCreationContribution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CoCreationContributionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CoCreationContributionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CoCreationContributionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := cocreationcontribution.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := cocreationcontribution.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := cocreationcontribution.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CoCreationContributionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CoCreationContribution.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CoCreationContribution.updated_at"`)}
	}
	if _, ok := _c.mutation.ChildID(); !ok {
		return &ValidationError{Name: "child_id", err: errors.New(`ent: missing required field "CoCreationContribution.child_id"`)}
	}
	if _, ok := _c.mutation.ThemeID(); !ok {
		return &ValidationError{Name: "theme_id", err: errors.New(`ent: missing required field "CoCreationContribution.theme_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "CoCreationContribution.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := cocreationcontribution.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "CoCreationContribution.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "CoCreationContribution.content"`)}
	}
	if len(_c.mutation.ChildIDs()) == 0 {
		return &ValidationError{Name: "child", err: errors.New(`ent: missing required edge "CoCreationContribution.child"`)}
	}
	if len(_c.mutation.ThemeIDs()) == 0 {
		return &ValidationError{Name: "theme", err: errors.New(`ent: missing required edge "CoCreationContribution.theme"`)}
	}
	return nil
}

func (_c *CoCreationContributionCreate) sqlSave(ctx context.Context) (*CoCreationContribution, error) {
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

func (_c *CoCreationContributionCreate) createSpec() (*CoCreationContribution, *sqlgraph.CreateSpec) {
	var (
		_node = &CoCreationContribution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cocreationcontribution.Table, sqlgraph.NewFieldSpec(cocreationcontribution.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(cocreationcontribution.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(cocreationcontribution.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(cocreationcontribution.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(cocreationcontribution.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if nodes := _c.mutation.ChildIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cocreationcontribution.ChildTable,
			Columns: []string{cocreationcontribution.ChildColumn},
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
	if nodes := _c.mutation.ThemeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cocreationcontribution.ThemeTable,
			Columns: []string{cocreationcontribution.ThemeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cocreationtheme.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ThemeID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CoCreationContributionCreateBulk is the builder for creating many CoCreationContribution entities in bulk.
type CoCreationContributionCreateBulk struct {
	config
	err      error
	builders []*CoCreationContributionCreate
}

// Save creates the CoCreationContribution entities in the database.
func (_c *CoCreationContributionCreateBulk) Save(ctx context.Context) ([]*CoCreationContribution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CoCreationContribution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CoCreationContributionMutation)
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
func (_c *CoCreationContributionCreateBulk) SaveX(ctx context.Context) []*CoCreationContribution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CoCreationContributionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CoCreationContributionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
