// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/budai/ent/badge"
	"github.com/abhisek/budai/ent/badgeaward"
	"github.com/abhisek/budai/ent/child"
	"github.com/abhisek/budai/ent/predicate"
	"github.com/google/uuid"
)

// BadgeAwardUpdate is the builder for updating BadgeAward entities.
type BadgeAwardUpdate struct {
	config
	hooks    []Hook
	mutation *BadgeAwardMutation
}

// Where appends a list predicates to the BadgeAwardUpdate builder.
func (_u *BadgeAwardUpdate) Where(ps ...predicate.BadgeAward) *BadgeAwardUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChildID sets the "child_id" field.
func (_u *BadgeAwardUpdate) SetChildID(v uuid.UUID) *BadgeAwardUpdate {
	_u.mutation.SetChildID(v)
	return _u
}

// SetNillableChildID sets the "child_id" field if the given value is not nil.
func (_u *BadgeAwardUpdate) SetNillableChildID(v *uuid.UUID) *BadgeAwardUpdate {
	if v != nil {
		_u.SetChildID(*v)
	}
	return _u
}

// SetBadgeID sets the "badge_id" field.
func (_u *BadgeAwardUpdate) SetBadgeID(v uuid.UUID) *BadgeAwardUpdate {
	_u.mutation.SetBadgeID(v)
	return _u
}

// SetNillableBadgeID sets the "badge_id" field if the given value is not nil.
func (_u *BadgeAwardUpdate) SetNillableBadgeID(v *uuid.UUID) *BadgeAwardUpdate {
	if v != nil {
		_u.SetBadgeID(*v)
	}
	return _u
}

// SetChild sets the "child" edge to the Child entity.
func (_u *BadgeAwardUpdate) SetChild(v *Child) *BadgeAwardUpdate {
	return _u.SetChildID(v.ID)
}

// SetBadge sets the "badge" edge to the Badge entity.
func (_u *BadgeAwardUpdate) SetBadge(v *Badge) *BadgeAwardUpdate {
	return _u.SetBadgeID(v.ID)
}

// Mutation returns the BadgeAwardMutation object of the builder.
func (_u *BadgeAwardUpdate) Mutation() *BadgeAwardMutation {
	return _u.mutation
}

// ClearChild clears the "child" edge to the Child entity.
func (_u *BadgeAwardUpdate) ClearChild() *BadgeAwardUpdate {
	_u.mutation.ClearChild()
	return _u
}

// ClearBadge clears the "badge" edge to the Badge entity.
func (_u *BadgeAwardUpdate) ClearBadge() *BadgeAwardUpdate {
	_u.mutation.ClearBadge()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BadgeAwardUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BadgeAwardUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BadgeAwardUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BadgeAwardUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BadgeAwardUpdate) check() error {
	if _u.mutation.ChildCleared() && len(_u.mutation.ChildIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BadgeAward.child"`)
	}
	if _u.mutation.BadgeCleared() && len(_u.mutation.BadgeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BadgeAward.badge"`)
	}
	return nil
}

func (_u *BadgeAwardUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(badgeaward.Table, badgeaward.Columns, sqlgraph.NewFieldSpec(badgeaward.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ChildCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BadgeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BadgeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{badgeaward.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BadgeAwardUpdateOne is the builder for updating a single BadgeAward entity.
type BadgeAwardUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BadgeAwardMutation
}

// SetChildID sets the "child_id" field.
func (_u *BadgeAwardUpdateOne) SetChildID(v uuid.UUID) *BadgeAwardUpdateOne {
	_u.mutation.SetChildID(v)
	return _u
}

// SetNillableChildID sets the "child_id" field if the given value is not nil.
func (_u *BadgeAwardUpdateOne) SetNillableChildID(v *uuid.UUID) *BadgeAwardUpdateOne {
	if v != nil {
		_u.SetChildID(*v)
	}
	return _u
}

// SetBadgeID sets the "badge_id" field.
func (_u *BadgeAwardUpdateOne) SetBadgeID(v uuid.UUID) *BadgeAwardUpdateOne {
	_u.mutation.SetBadgeID(v)
	return _u
}

// SetNillableBadgeID sets the "badge_id" field if the given value is not nil.
func (_u *BadgeAwardUpdateOne) SetNillableBadgeID(v *uuid.UUID) *BadgeAwardUpdateOne {
	if v != nil {
		_u.SetBadgeID(*v)
	}
	return _u
}

// SetChild sets the "child" edge to the Child entity.
func (_u *BadgeAwardUpdateOne) SetChild(v *Child) *BadgeAwardUpdateOne {
	return _u.SetChildID(v.ID)
}

// SetBadge sets the "badge" edge to the Badge entity.
func (_u *BadgeAwardUpdateOne) SetBadge(v *Badge) *BadgeAwardUpdateOne {
	return _u.SetBadgeID(v.ID)
}

// Mutation returns the BadgeAwardMutation object of the builder.
func (_u *BadgeAwardUpdateOne) Mutation() *BadgeAwardMutation {
	return _u.mutation
}

// ClearChild clears the "child" edge to the Child entity.
func (_u *BadgeAwardUpdateOne) ClearChild() *BadgeAwardUpdateOne {
	_u.mutation.ClearChild()
	return _u
}

// ClearBadge clears the "badge" edge to the Badge entity.
func (_u *BadgeAwardUpdateOne) ClearBadge() *BadgeAwardUpdateOne {
	_u.mutation.ClearBadge()
	return _u
}

// Where appends a list predicates to the BadgeAwardUpdate builder.
func (_u *BadgeAwardUpdateOne) Where(ps ...predicate.BadgeAward) *BadgeAwardUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BadgeAwardUpdateOne) Select(field string, fields ...string) *BadgeAwardUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BadgeAward entity.
func (_u *BadgeAwardUpdateOne) Save(ctx context.Context) (*BadgeAward, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BadgeAwardUpdateOne) SaveX(ctx context.Context) *BadgeAward {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BadgeAwardUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BadgeAwardUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BadgeAwardUpdateOne) check() error {
	if _u.mutation.ChildCleared() && len(_u.mutation.ChildIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BadgeAward.child"`)
	}
	if _u.mutation.BadgeCleared() && len(_u.mutation.BadgeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BadgeAward.badge"`)
	}
	return nil
}

func (_u *BadgeAwardUpdateOne) sqlSave(ctx context.Context) (_node *BadgeAward, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(badgeaward.Table, badgeaward.Columns, sqlgraph.NewFieldSpec(badgeaward.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BadgeAward.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, badgeaward.FieldID)
		for _, f := range fields {
			if !badgeaward.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != badgeaward.FieldID {
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
	if _u.mutation.ChildCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BadgeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BadgeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &BadgeAward{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{badgeaward.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
