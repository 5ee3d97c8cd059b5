// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/budai/ent/cocreationcontribution"
	"github.com/abhisek/budai/ent/cocreationtheme"
	"github.com/google/uuid"
)

// CoCreationThemeCreate is the builder for creating a CoCreationTheme entity.
type CoCreationThemeCreate struct {
	config
	mutation *CoCreationThemeMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *CoCreationThemeCreate) SetCreatedAt(v time.Time) *CoCreationThemeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CoCreationThemeCreate) SetNillableCreatedAt(v *time.Time) *CoCreationThemeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CoCreationThemeCreate) SetUpdatedAt(v time.Time) *CoCreationThemeCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CoCreationThemeCreate) SetNillableUpdatedAt(v *time.Time) *CoCreationThemeCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *CoCreationThemeCreate) SetTitle(v string) *CoCreationThemeCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *CoCreationThemeCreate) SetDescription(v string) *CoCreationThemeCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *CoCreationThemeCreate) SetNillableDescription(v *string) *CoCreationThemeCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *CoCreationThemeCreate) SetPrompt(v string) *CoCreationThemeCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *CoCreationThemeCreate) SetStartDate(v time.Time) *CoCreationThemeCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetEndDate sets the "end_date" field.
func (_c *CoCreationThemeCreate) SetEndDate(v time.Time) *CoCreationThemeCreate {
	_c.mutation.SetEndDate(v)
	return _c
}

// SetID sets the "id" field.
func (_c *CoCreationThemeCreate) SetID(v uuid.UUID) *CoCreationThemeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CoCreationThemeCreate) SetNillableID(v *uuid.UUID) *CoCreationThemeCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddContributionIDs adds the "contributions" edge to the CoCreationContribution entity by IDs.
func (_c *CoCreationThemeCreate) AddContributionIDs(ids ...uuid.UUID) *CoCreationThemeCreate {
	_c.mutation.AddContributionIDs(ids...)
	return _c
}

// AddContributions adds the "contributions" edges to the CoCreationContribution entity.
func (_c *CoCreationThemeCreate) AddContributions(v ...*CoCreationContribution) *CoCreationThemeCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddContributionIDs(ids...)
}

// Mutation returns the CoCreationThemeMutation object of the builder.
func (_c *CoCreationThemeCreate) Mutation() *CoCreationThemeMutation {
	return _c.mutation
}

// Save creates the CoCreationTheme in the database.
func (_c *CoCreationThemeCreate) Save(ctx context.Context) (*CoCreationTheme, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CoCreationThemeCreate) SaveX(ctx context.Context) *CoCreationTheme {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CoCreationThemeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CoCreationThemeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CoCreationThemeCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := cocreationtheme.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := cocreationtheme.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Description(); !ok {
		v := cocreationtheme.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := cocreationtheme.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CoCreationThemeCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CoCreationTheme.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CoCreationTheme.updated_at"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "CoCreationTheme.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := cocreationtheme.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "CoCreationTheme.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "CoCreationTheme.description"`)}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "CoCreationTheme.prompt"`)}
	}
	if _, ok := _c.mutation.StartDate(); !ok {
		return &ValidationError{Name: "start_date", err: errors.New(`ent: missing required field "CoCreationTheme.start_date"`)}
	}
	if _, ok := _c.mutation.EndDate(); !ok {
		return &ValidationError{Name: "end_date", err: errors.New(`ent: missing required field "CoCreationTheme.end_date"`)}
	}
	return nil
}

func (_c *CoCreationThemeCreate) sqlSave(ctx context.Context) (*CoCreationTheme, error) {
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

func (_c *CoCreationThemeCreate) createSpec() (*CoCreationTheme, *sqlgraph.CreateSpec) {
	var (
		_node = &CoCreationTheme{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cocreationtheme.Table, sqlgraph.NewFieldSpec(cocreationtheme.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(cocreationtheme.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(cocreationtheme.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(cocreationtheme.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(cocreationtheme.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(cocreationtheme.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(cocreationtheme.FieldStartDate, field.TypeTime, value)
		_node.StartDate = value
	}
	if value, ok := _c.mutation.EndDate(); ok {
		_spec.SetField(cocreationtheme.FieldEndDate, field.TypeTime, value)
		_node.EndDate = value
	}
	if nodes := _c.mutation.ContributionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cocreationtheme.ContributionsTable,
			Columns: []string{cocreationtheme.ContributionsColumn},
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
	return _node, _spec
}

// CoCreationThemeCreateBulk is the builder for creating many CoCreationTheme entities in bulk.
type CoCreationThemeCreateBulk struct {
	config
	err      error
	builders []*CoCreationThemeCreate
}

// Save creates the CoCreationTheme entities in the database.
func (_c *CoCreationThemeCreateBulk) Save(ctx context.Context) ([]*CoCreationTheme, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CoCreationTheme, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CoCreationThemeMutation)
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
func (_c *CoCreationThemeCreateBulk) SaveX(ctx context.Context) []*CoCreationTheme {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CoCreationThemeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CoCreationThemeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
