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
	"github.com/abhisek/budai/ent/badge"
	"github.com/abhisek/budai/ent/badgeaward"
	"github.com/abhisek/budai/ent/predicate"
	"github.com/google/uuid"
)

// BadgeUpdate is the builder for updating Badge entities.
type BadgeUpdate struct {
	config
	hooks    []Hook
	mutation *BadgeMutation
}

// Where appends a list predicates to the BadgeUpdate builder.
func (_u *BadgeUpdate) Where(ps ...predicate.Badge) *BadgeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BadgeUpdate) SetUpdatedAt(v time.Time) *BadgeUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetKey sets the "key" field.
func (_u *BadgeUpdate) SetKey(v string) *BadgeUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *BadgeUpdate) SetNillableKey(v *string) *BadgeUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *BadgeUpdate) SetName(v string) *BadgeUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BadgeUpdate) SetNillableName(v *string) *BadgeUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *BadgeUpdate) SetDescription(v string) *BadgeUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *BadgeUpdate) SetNillableDescription(v *string) *BadgeUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetIcon sets the "icon" field.
func (_u *BadgeUpdate) SetIcon(v string) *BadgeUpdate {
	_u.mutation.SetIcon(v)
	return _u
}

// SetNillableIcon sets the "icon" field if the given value is not nil.
func (_u *BadgeUpdate) SetNillableIcon(v *string) *BadgeUpdate {
	if v != nil {
		_u.SetIcon(*v)
	}
	return _u
}

// SetCriteria sets the "criteria" field.
func (_u *BadgeUpdate) SetCriteria(v string) *BadgeUpdate {
	_u.mutation.SetCriteria(v)
	return _u
}

// SetNillableCriteria sets the "criteria" field if the given value is not nil.
func (_u *BadgeUpdate) SetNillableCriteria(v *string) *BadgeUpdate {
	if v != nil {
		_u.SetCriteria(*v)
	}
	return _u
}

// AddAwardIDs adds the "awards" edge to the BadgeAward entity by IDs.
func (_u *BadgeUpdate) AddAwardIDs(ids ...uuid.UUID) *BadgeUpdate {
	_u.mutation.AddAwardIDs(ids...)
	return _u
}

// AddAwards adds the "awards" edges to the BadgeAward entity.
func (_u *BadgeUpdate) AddAwards(v ...*BadgeAward) *BadgeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAwardIDs(ids...)
}

// Mutation returns the BadgeMutation object of the builder.
func (_u *BadgeUpdate) Mutation() *BadgeMutation {
	return _u.mutation
}

// ClearAwards clears all "awards" edges to the BadgeAward entity.
func (_u *BadgeUpdate) ClearAwards() *BadgeUpdate {
	_u.mutation.ClearAwards()
	return _u
}

// RemoveAwardIDs removes the "awards" edge to BadgeAward entities by IDs.
func (_u *BadgeUpdate) RemoveAwardIDs(ids ...uuid.UUID) *BadgeUpdate {
	_u.mutation.RemoveAwardIDs(ids...)
	return _u
}

// RemoveAwards removes "awards" edges to BadgeAward entities.
func (_u *BadgeUpdate) RemoveAwards(v ...*BadgeAward) *BadgeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAwardIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BadgeUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BadgeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BadgeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BadgeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BadgeUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := badge.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BadgeUpdate) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := badge.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "Badge.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := badge.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Badge.name": %w`, err)}
		}
	}
	return nil
}

func (_u *BadgeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(badge.Table, badge.Columns, sqlgraph.NewFieldSpec(badge.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(badge.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(badge.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(badge.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(badge.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Icon(); ok {
		_spec.SetField(badge.FieldIcon, field.TypeString, value)
	}
	if value, ok := _u.mutation.Criteria(); ok {
		_spec.SetField(badge.FieldCriteria, field.TypeString, value)
	}
	if _u.mutation.AwardsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   badge.AwardsTable,
			Columns: []string{badge.AwardsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(badgeaward.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAwardsIDs(); len(nodes) > 0 && !_u.mutation.AwardsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   badge.AwardsTable,
			Columns: []string{badge.AwardsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(badgeaward.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AwardsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   badge.AwardsTable,
			Columns: []string{badge.AwardsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(badgeaward.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{badge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BadgeUpdateOne is the builder for updating a single Badge entity.
type BadgeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BadgeMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BadgeUpdateOne) SetUpdatedAt(v time.Time) *BadgeUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetKey sets the "key" field.
func (_u *BadgeUpdateOne) SetKey(v string) *BadgeUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *BadgeUpdateOne) SetNillableKey(v *string) *BadgeUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *BadgeUpdateOne) SetName(v string) *BadgeUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BadgeUpdateOne) SetNillableName(v *string) *BadgeUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *BadgeUpdateOne) SetDescription(v string) *BadgeUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *BadgeUpdateOne) SetNillableDescription(v *string) *BadgeUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetIcon sets the "icon" field.
func (_u *BadgeUpdateOne) SetIcon(v string) *BadgeUpdateOne {
	_u.mutation.SetIcon(v)
	return _u
}

// SetNillableIcon sets the "icon" field if the given value is not nil.
func (_u *BadgeUpdateOne) SetNillableIcon(v *string) *BadgeUpdateOne {
	if v != nil {
		_u.SetIcon(*v)
	}
	return _u
}

// SetCriteria sets the "criteria" field.
func (_u *BadgeUpdateOne) SetCriteria(v string) *BadgeUpdateOne {
	_u.mutation.SetCriteria(v)
	return _u
}

// SetNillableCriteria sets the "criteria" field if the given value is not nil.
func (_u *BadgeUpdateOne) SetNillableCriteria(v *string) *BadgeUpdateOne {
	if v != nil {
		_u.SetCriteria(*v)
	}
	return _u
}

// AddAwardIDs adds the "awards" edge to the BadgeAward entity by IDs.
func (_u *BadgeUpdateOne) AddAwardIDs(ids ...uuid.UUID) *BadgeUpdateOne {
	_u.mutation.AddAwardIDs(ids...)
	return _u
}

// AddAwards adds the "awards" edges to the BadgeAward entity.
func (_u *BadgeUpdateOne) AddAwards(v ...*BadgeAward) *BadgeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAwardIDs(ids...)
}

// Mutation returns the BadgeMutation object of the builder.
func (_u *BadgeUpdateOne) Mutation() *BadgeMutation {
	return _u.mutation
}

// ClearAwards clears all "awards" edges to the BadgeAward entity.
func (_u *BadgeUpdateOne) ClearAwards() *BadgeUpdateOne {
	_u.mutation.ClearAwards()
	return _u
}

// RemoveAwardIDs removes the "awards" edge to BadgeAward entities by IDs.
func (_u *BadgeUpdateOne) RemoveAwardIDs(ids ...uuid.UUID) *BadgeUpdateOne {
	_u.mutation.RemoveAwardIDs(ids...)
	return _u
}

// RemoveAwards removes "awards" edges to BadgeAward entities.
func (_u *BadgeUpdateOne) RemoveAwards(v ...*BadgeAward) *BadgeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAwardIDs(ids...)
}

// Where appends a list predicates to the BadgeUpdate builder.
func (_u *BadgeUpdateOne) Where(ps ...predicate.Badge) *BadgeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BadgeUpdateOne) Select(field string, fields ...string) *BadgeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Badge entity.
func (_u *BadgeUpdateOne) Save(ctx context.Context) (*Badge, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BadgeUpdateOne) SaveX(ctx context.Context) *Badge {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BadgeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BadgeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BadgeUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := badge.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BadgeUpdateOne) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := badge.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "Badge.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := badge.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Badge.name": %w`, err)}
		}
	}
	return nil
}

func (_u *BadgeUpdateOne) sqlSave(ctx context.Context) (_node *Badge, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(badge.Table, badge.Columns, sqlgraph.NewFieldSpec(badge.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Badge.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, badge.FieldID)
		for _, f := range fields {
			if !badge.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != badge.FieldID {
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
		_spec.SetField(badge.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(badge.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(badge.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(badge.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Icon(); ok {
		_spec.SetField(badge.FieldIcon, field.TypeString, value)
	}
	if value, ok := _u.mutation.Criteria(); ok {
		_spec.SetField(badge.FieldCriteria, field.TypeString, value)
	}
	if _u.mutation.AwardsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   badge.AwardsTable,
			Columns: []string{badge.AwardsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(badgeaward.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAwardsIDs(); len(nodes) > 0 && !_u.mutation.AwardsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   badge.AwardsTable,
			Columns: []string{badge.AwardsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(badgeaward.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AwardsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   badge.AwardsTable,
			Columns: []string{badge.AwardsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(badgeaward.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Badge{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{badge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
