// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/budai/ent/cocreationcontribution"
	"github.com/abhisek/budai/ent/predicate"
)

// CoCreationContributionDelete is the builder for deleting a CoCreationContribution entity.
type CoCreationContributionDelete struct {
	config
	hooks    []Hook
	mutation *CoCreationContributionMutation
}

// Where appends a list predicates to the CoCreationContributionDelete builder.
func (_d *CoCreationContributionDelete) Where(ps ...predicate.CoCreationContribution) *CoCreationContributionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CoCreationContributionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CoCreationContributionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CoCreationContributionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(cocreationcontribution.Table, sqlgraph.NewFieldSpec(cocreationcontribution.FieldID, field.TypeUUID))
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

// CoCreationContributionDeleteOne is the builder for deleting a single CoCreationContribution entity.
type CoCreationContributionDeleteOne struct {
	_d *CoCreationContributionDelete
}

// Where appends a list predicates to the CoCreationContributionDelete builder.
func (_d *CoCreationContributionDeleteOne) Where(ps ...predicate.CoCreationContribution) *CoCreationContributionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CoCreationContributionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{cocreationcontribution.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CoCreationContributionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
