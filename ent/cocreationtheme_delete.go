// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/budai/ent/cocreationtheme"
	"github.com/abhisek/budai/ent/predicate"
)

// CoCreationThemeDelete is the builder for deleting a CoCreationTheme entity.
type CoCreationThemeDelete struct {
	config
	hooks    []Hook
	mutation *CoCreationThemeMutation
}

// Where appends a list predicates to the CoCreationThemeDelete builder.
func (_d *CoCreationThemeDelete) Where(ps ...predicate.CoCreationTheme) *CoCreationThemeDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CoCreationThemeDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CoCreationThemeDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CoCreationThemeDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(cocreationtheme.Table, sqlgraph.NewFieldSpec(cocreationtheme.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// CoCreationThemeDeleteOne is the builder for deleting a single CoCreationTheme entity.
type CoCreationThemeDeleteOne struct {
	_d *CoCreationThemeDelete
}

// Where appends a list predicates to the CoCreationThemeDelete builder.
func (_d *CoCreationThemeDeleteOne) Where(ps ...predicate.CoCreationTheme) *CoCreationThemeDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CoCreationThemeDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{cocreationtheme.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CoCreationThemeDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
