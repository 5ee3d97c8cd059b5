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
	"github.com/abhisek/budai/ent/predicate"
	"github.com/abhisek/budai/ent/work"
	"github.com/google/uuid"
)

// WorkUpdate is the builder for updating Work entities.
type WorkUpdate struct {
	config
	hooks    []Hook
	mutation *WorkMutation
}

// Where appends a list predicates to the WorkUpdate builder.
func (_u *WorkUpdate) Where(ps ...predicate.Work) *WorkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkUpdate) SetUpdatedAt(v time.Time) *WorkUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetChildID sets the "child_id" field.
func (_u *WorkUpdate) SetChildID(v uuid.UUID) *WorkUpdate {
	_u.mutation.SetChildID(v)
	return _u
}

// SetNillableChildID sets the "child_id" field if the given value is not nil.
func (_u *WorkUpdate) SetNillableChildID(v *uuid.UUID) *WorkUpdate {
	if v != nil {
		_u.SetChildID(*v)
	}
	return _u
}

// SetTaskRecordID sets the "task_record_id" field.
func (_u *WorkUpdate) SetTaskRecordID(v uuid.UUID) *WorkUpdate {
	_u.mutation.SetTaskRecordID(v)
	return _u
}

// SetNillableTaskRecordID sets the "task_record_id" field if the given value is not nil.
func (_u *WorkUpdate) SetNillableTaskRecordID(v *uuid.UUID) *WorkUpdate {
	if v != nil {
		_u.SetTaskRecordID(*v)
	}
	return _u
}

// ClearTaskRecordID clears the value of the "task_record_id" field.
func (_u *WorkUpdate) ClearTaskRecordID() *WorkUpdate {
	_u.mutation.ClearTaskRecordID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *WorkUpdate) SetTitle(v string) *WorkUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *WorkUpdate) SetNillableTitle(v *string) *WorkUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *WorkUpdate) SetKind(v string) *WorkUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *WorkUpdate) SetNillableKind(v *string) *WorkUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *WorkUpdate) SetContent(v string) *WorkUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *WorkUpdate) SetNillableContent(v *string) *WorkUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetComment sets the "comment" field.
func (_u *WorkUpdate) SetComment(v string) *WorkUpdate {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *WorkUpdate) SetNillableComment(v *string) *WorkUpdate {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *WorkUpdate) SetScore(v float64) *WorkUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *WorkUpdate) SetNillableScore(v *float64) *WorkUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *WorkUpdate) AddScore(v float64) *WorkUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetChild sets the "child" edge to the Child entity.
func (_u *WorkUpdate) SetChild(v *Child) *WorkUpdate {
	return _u.SetChildID(v.ID)
}

// Mutation returns the WorkMutation object of the builder.
func (_u *WorkUpdate) Mutation() *WorkMutation {
	return _u.mutation
}

// ClearChild clears the "child" edge to the Child entity.
func (_u *WorkUpdate) ClearChild() *WorkUpdate {
	_u.mutation.ClearChild()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := work.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := work.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Work.title": %w`, err)}
		}
	}
	if _u.mutation.ChildCleared() && len(_u.mutation.ChildIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Work.child"`)
	}
	return nil
}

func (_u *WorkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(work.Table, work.Columns, sqlgraph.NewFieldSpec(work.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(work.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TaskRecordID(); ok {
		_spec.SetField(work.FieldTaskRecordID, field.TypeUUID, value)
	}
	if _u.mutation.TaskRecordIDCleared() {
		_spec.ClearField(work.FieldTaskRecordID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(work.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(work.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(work.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(work.FieldComment, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(work.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(work.FieldScore, field.TypeFloat64, value)
	}
	if _u.mutation.ChildCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   work.ChildTable,
			Columns: []string{work.ChildColumn},
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
			Table:   work.ChildTable,
			Columns: []string{work.ChildColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{work.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkUpdateOne is the builder for updating a single Work entity.
type WorkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkUpdateOne) SetUpdatedAt(v time.Time) *WorkUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetChildID sets the "child_id" field.
func (_u *WorkUpdateOne) SetChildID(v uuid.UUID) *WorkUpdateOne {
	_u.mutation.SetChildID(v)
	return _u
}

// SetNillableChildID sets the "child_id" field if the given value is not nil.
func (_u *WorkUpdateOne) SetNillableChildID(v *uuid.UUID) *WorkUpdateOne {
	if v != nil {
		_u.SetChildID(*v)
	}
	return _u
}

// SetTaskRecordID sets the "task_record_id" field.
func (_u *WorkUpdateOne) SetTaskRecordID(v uuid.UUID) *WorkUpdateOne {
	_u.mutation.SetTaskRecordID(v)
	return _u
}

// SetNillableTaskRecordID sets the "task_record_id" field if the given value is not nil.
func (_u *WorkUpdateOne) SetNillableTaskRecordID(v *uuid.UUID) *WorkUpdateOne {
	if v != nil {
		_u.SetTaskRecordID(*v)
	}
	return _u
}

// ClearTaskRecordID clears the value of the "task_record_id" field.
func (_u *WorkUpdateOne) ClearTaskRecordID() *WorkUpdateOne {
	_u.mutation.ClearTaskRecordID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *WorkUpdateOne) SetTitle(v string) *WorkUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *WorkUpdateOne) SetNillableTitle(v *string) *WorkUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *WorkUpdateOne) SetKind(v string) *WorkUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *WorkUpdateOne) SetNillableKind(v *string) *WorkUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *WorkUpdateOne) SetContent(v string) *WorkUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *WorkUpdateOne) SetNillableContent(v *string) *WorkUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetComment sets the "comment" field.
func (_u *WorkUpdateOne) SetComment(v string) *WorkUpdateOne {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *WorkUpdateOne) SetNillableComment(v *string) *WorkUpdateOne {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *WorkUpdateOne) SetScore(v float64) *WorkUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *WorkUpdateOne) SetNillableScore(v *float64) *WorkUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *WorkUpdateOne) AddScore(v float64) *WorkUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetChild sets the "child" edge to the Child entity.
func (_u *WorkUpdateOne) SetChild(v *Child) *WorkUpdateOne {
	return _u.SetChildID(v.ID)
}

// Mutation returns the WorkMutation object of the builder.
func (_u *WorkUpdateOne) Mutation() *WorkMutation {
	return _u.mutation
}

// ClearChild clears the "child" edge to the Child entity.
func (_u *WorkUpdateOne) ClearChild() *WorkUpdateOne {
	_u.mutation.ClearChild()
	return _u
}

// Where appends a list predicates to the WorkUpdate builder.
func (_u *WorkUpdateOne) Where(ps ...predicate.Work) *WorkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkUpdateOne) Select(field string, fields ...string) *WorkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Work entity.
func (_u *WorkUpdateOne) Save(ctx context.Context) (*Work, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkUpdateOne) SaveX(ctx context.Context) *Work {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := work.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := work.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Work.title": %w`, err)}
		}
	}
	if _u.mutation.ChildCleared() && len(_u.mutation.ChildIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Work.child"`)
	}
	return nil
}

func (_u *WorkUpdateOne) sqlSave(ctx context.Context) (_node *Work, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(work.Table, work.Columns, sqlgraph.NewFieldSpec(work.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Work.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, work.FieldID)
		for _, f := range fields {
			if !work.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != work.FieldID {
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
		_spec.SetField(work.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TaskRecordID(); ok {
		_spec.SetField(work.FieldTaskRecordID, field.TypeUUID, value)
	}
	if _u.mutation.TaskRecordIDCleared() {
		_spec.ClearField(work.FieldTaskRecordID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(work.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(work.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(work.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(work.FieldComment, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(work.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(work.FieldScore, field.TypeFloat64, value)
	}
	if _u.mutation.ChildCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   work.ChildTable,
			Columns: []string{work.ChildColumn},
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
			Table:   work.ChildTable,
			Columns: []string{work.ChildColumn},
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
	_node = &Work{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{work.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
