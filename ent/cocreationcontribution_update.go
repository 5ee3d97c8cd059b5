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
	"github.com/abhisek/budai/ent/cocreationcontribution"
	"github.com/abhisek/budai/ent/cocreationtheme"
	"github.com/abhisek/budai/ent/predicate"
	"github.com/google/uuid"
)

// CoCreationContributionUpdate is the builder for updating CoCreationContribution entities.
type CoCreationContributionUpdate struct {
	config
	hooks    []Hook
	mutation *CoCreationContributionMutation
}

// Where appends a list predicates to the CoCreationContributionUpdate builder.
func (_u *CoCreationContributionUpdate) Where(ps ...predicate.CoCreationContribution) *CoCreationContributionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CoCreationContributionUpdate) SetUpdatedAt(v time.Time) *CoCreationContributionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetChildID sets the "child_id" field.
func (_u *CoCreationContributionUpdate) SetChildID(v uuid.UUID) *CoCreationContributionUpdate {
	_u.mutation.SetChildID(v)
	return _u
}

// SetNillableChildID sets the "child_id" field if the given value is not nil.
func (_u *CoCreationContributionUpdate) SetNillableChildID(v *uuid.UUID) *CoCreationContributionUpdate {
	if v != nil {
		_u.SetChildID(*v)
	}
	return _u
}

// SetThemeID sets the "theme_id" field.
func (_u *CoCreationContributionUpdate) SetThemeID(v uuid.UUID) *CoCreationContributionUpdate {
	_u.mutation.SetThemeID(v)
	return _u
}

// SetNillableThemeID sets the "theme_id" field if the given value is not nil.
func (_u *CoCreationContributionUpdate) SetNillableThemeID(v *uuid.UUID) *CoCreationContributionUpdate {
	if v != nil {
		_u.SetThemeID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *CoCreationContributionUpdate) SetKind(v cocreationcontribution.Kind) *CoCreationContributionUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *CoCreationContributionUpdate) SetNillableKind(v *cocreationcontribution.Kind) *CoCreationContributionUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *CoCreationContributionUpdate) SetContent(v string) *CoCreationContributionUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *CoCreationContributionUpdate) SetNillableContent(v *string) *CoCreationContributionUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetChild sets the "child" edge to the Child entity.
func (_u *CoCreationContributionUpdate) SetChild(v *Child) *CoCreationContributionUpdate {
	return _u.SetChildID(v.ID)
}

// SetTheme sets the "theme" edge to the CoCreationTheme entity.
func (_u *CoCreationContributionUpdate) SetTheme(v *CoCreationTheme) *CoCreationContributionUpdate {
	return _u.SetThemeID(v.ID)
}

// Mutation returns the CoCreationContributionMutation object of the builder.
func (_u *CoCreationContributionUpdate) Mutation() *CoCreationContributionMutation {
	return _u.mutation
}

// ClearChild clears the "child" edge to the Child entity.
func (_u *CoCreationContributionUpdate) ClearChild() *CoCreationContributionUpdate {
	_u.mutation.ClearChild()
	return _u
}

// ClearTheme clears the "theme" edge to the CoCreationTheme entity.
func (_u *CoCreationContributionUpdate) ClearTheme() *CoCreationContributionUpdate {
	_u.mutation.ClearTheme()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CoCreationContributionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CoCreationContributionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CoCreationContributionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CoCreationContributionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CoCreationContributionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := cocreationcontribution.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CoCreationContributionUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := cocreationcontribution.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "CoCreationContribution.kind": %w`, err)}
		}
	}
	if _u.mutation.ChildCleared() && len(_u.mutation.ChildIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CoCreationContribution.child"`)
	}
	if _u.mutation.ThemeCleared() && len(_u.mutation.ThemeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CoCreationContribution.theme"`)
	}
	return nil
}

func (_u *CoCreationContributionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cocreationcontribution.Table, cocreationcontribution.Columns, sqlgraph.NewFieldSpec(cocreationcontribution.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(cocreationcontribution.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(cocreationcontribution.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(cocreationcontribution.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ChildCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ThemeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ThemeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cocreationcontribution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CoCreationContributionUpdateOne is the builder for updating a single CoCreationContribution entity.
type CoCreationContributionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CoCreationContributionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CoCreationContributionUpdateOne) SetUpdatedAt(v time.Time) *CoCreationContributionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetChildID sets the "child_id" field.
func (_u *CoCreationContributionUpdateOne) SetChildID(v uuid.UUID) *CoCreationContributionUpdateOne {
	_u.mutation.SetChildID(v)
	return _u
}

// SetNillableChildID sets the "child_id" field if the given value is not nil.
func (_u *CoCreationContributionUpdateOne) SetNillableChildID(v *uuid.UUID) *CoCreationContributionUpdateOne {
	if v != nil {
		_u.SetChildID(*v)
	}
	return _u
}

// SetThemeID sets the "theme_id" field.
func (_u *CoCreationContributionUpdateOne) SetThemeID(v uuid.UUID) *CoCreationContributionUpdateOne {
	_u.mutation.SetThemeID(v)
	return _u
}

// SetNillableThemeID sets the "theme_id" field if the given value is not nil.
func (_u *CoCreationContributionUpdateOne) SetNillableThemeID(v *uuid.UUID) *CoCreationContributionUpdateOne {
	if v != nil {
		_u.SetThemeID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *CoCreationContributionUpdateOne) SetKind(v cocreationcontribution.Kind) *CoCreationContributionUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *CoCreationContributionUpdateOne) SetNillableKind(v *cocreationcontribution.Kind) *CoCreationContributionUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *CoCreationContributionUpdateOne) SetContent(v string) *CoCreationContributionUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *CoCreationContributionUpdateOne) SetNillableContent(v *string) *CoCreationContributionUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetChild sets the "child" edge to the Child entity.
func (_u *CoCreationContributionUpdateOne) SetChild(v *Child) *CoCreationContributionUpdateOne {
	return _u.SetChildID(v.ID)
}

// SetTheme sets the "theme" edge to the CoCreationTheme entity.
func (_u *CoCreationContributionUpdateOne) SetTheme(v *CoCreationTheme) *CoCreationContributionUpdateOne {
	return _u.SetThemeID(v.ID)
}

// Mutation returns the CoCreationContributionMutation object of the builder.
func (_u *CoCreationContributionUpdateOne) Mutation() *CoCreationContributionMutation {
	return _u.mutation
}

// ClearChild clears the "child" edge to the Child entity.
func (_u *CoCreationContributionUpdateOne) ClearChild() *CoCreationContributionUpdateOne {
	_u.mutation.ClearChild()
	return _u
}

// ClearTheme clears the "theme" edge to the CoCreationTheme entity.
func (_u *CoCreationContributionUpdateOne) ClearTheme() *CoCreationContributionUpdateOne {
	_u.mutation.ClearTheme()
	return _u
}

// Where appends a list predicates to the CoCreationContributionUpdate builder.
func (_u *CoCreationContributionUpdateOne) Where(ps ...predicate.CoCreationContribution) *CoCreationContributionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CoCreationContributionUpdateOne) Select(field string, fields ...string) *CoCreationContributionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CoCreationContribution entity.
func (_u *CoCreationContributionUpdateOne) Save(ctx context.Context) (*CoCreationContribution, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CoCreationContributionUpdateOne) SaveX(ctx context.Context) *CoCreationContribution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CoCreationContributionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CoCreationContributionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CoCreationContributionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := cocreationcontribution.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CoCreationContributionUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := cocreationcontribution.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "CoCreationContribution.kind": %w`, err)}
		}
	}
	if _u.mutation.ChildCleared() && len(_u.mutation.ChildIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CoCreationContribution.child"`)
	}
	if _u.mutation.ThemeCleared() && len(_u.mutation.ThemeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CoCreationContribution.theme"`)
	}
	return nil
}

func (_u *CoCreationContributionUpdateOne) sqlSave(ctx context.Context) (_node *CoCreationContribution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cocreationcontribution.Table, cocreationcontribution.Columns, sqlgraph.NewFieldSpec(cocreationcontribution.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CoCreationContribution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cocreationcontribution.FieldID)
		for _, f := range fields {
			if !cocreationcontribution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cocreationcontribution.FieldID {
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
		_spec.SetField(cocreationcontribution.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(cocreationcontribution.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(cocreationcontribution.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ChildCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ThemeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ThemeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CoCreationContribution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cocreationcontribution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
