// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/budai/ent/child"
	"github.com/abhisek/budai/ent/coachsession"
	"github.com/abhisek/budai/ent/predicate"
	"github.com/abhisek/budai/internal/chat"
	"github.com/google/uuid"
)

// CoachSessionUpdate is the builder for updating CoachSession entities.
type CoachSessionUpdate struct {
	config
	hooks    []Hook
	mutation *CoachSessionMutation
}

// Where appends a list predicates to the CoachSessionUpdate builder.
func (_u *CoachSessionUpdate) Where(ps ...predicate.CoachSession) *CoachSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CoachSessionUpdate) SetUpdatedAt(v time.Time) *CoachSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetChildID sets the "child_id" field.
func (_u *CoachSessionUpdate) SetChildID(v uuid.UUID) *CoachSessionUpdate {
	_u.mutation.SetChildID(v)
	return _u
}

// SetNillableChildID sets the "child_id" field if the given value is not nil.
func (_u *CoachSessionUpdate) SetNillableChildID(v *uuid.UUID) *CoachSessionUpdate {
	if v != nil {
		_u.SetChildID(*v)
	}
	return _u
}

// SetTaskRecordID sets the "task_record_id" field.
func (_u *CoachSessionUpdate) SetTaskRecordID(v uuid.UUID) *CoachSessionUpdate {
	_u.mutation.SetTaskRecordID(v)
	return _u
}

// SetNillableTaskRecordID sets the "task_record_id" field if the given value is not nil.
func (_u *CoachSessionUpdate) SetNillableTaskRecordID(v *uuid.UUID) *CoachSessionUpdate {
	if v != nil {
		_u.SetTaskRecordID(*v)
	}
	return _u
}

// SetMessages sets the "messages" field.
func (_u *CoachSessionUpdate) SetMessages(v []chat.Turn) *CoachSessionUpdate {
	_u.mutation.SetMessages(v)
	return _u
}

// AppendMessages appends value to the "messages" field.
func (_u *CoachSessionUpdate) AppendMessages(v []chat.Turn) *CoachSessionUpdate {
	_u.mutation.AppendMessages(v)
	return _u
}

// ClearMessages clears the value of the "messages" field.
func (_u *CoachSessionUpdate) ClearMessages() *CoachSessionUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// SetTurnCount sets the "turn_count" field.
func (_u *CoachSessionUpdate) SetTurnCount(v int) *CoachSessionUpdate {
	_u.mutation.ResetTurnCount()
	_u.mutation.SetTurnCount(v)
	return _u
}

// SetNillableTurnCount sets the "turn_count" field if the given value is not nil.
func (_u *CoachSessionUpdate) SetNillableTurnCount(v *int) *CoachSessionUpdate {
	if v != nil {
		_u.SetTurnCount(*v)
	}
	return _u
}

// AddTurnCount adds value to the "turn_count" field.
func (_u *CoachSessionUpdate) AddTurnCount(v int) *CoachSessionUpdate {
	_u.mutation.AddTurnCount(v)
	return _u
}

// SetChild sets the "child" edge to the Child entity.
func (_u *CoachSessionUpdate) SetChild(v *Child) *CoachSessionUpdate {
	return _u.SetChildID(v.ID)
}

// Mutation returns the CoachSessionMutation object of the builder.
func (_u *CoachSessionUpdate) Mutation() *CoachSessionMutation {
	return _u.mutation
}

// ClearChild clears the "child" edge to the Child entity.
func (_u *CoachSessionUpdate) ClearChild() *CoachSessionUpdate {
	_u.mutation.ClearChild()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CoachSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CoachSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CoachSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CoachSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CoachSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := coachsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CoachSessionUpdate) check() error {
	if _u.mutation.ChildCleared() && len(_u.mutation.ChildIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CoachSession.child"`)
	}
	return nil
}

func (_u *CoachSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(coachsession.Table, coachsession.Columns, sqlgraph.NewFieldSpec(coachsession.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(coachsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TaskRecordID(); ok {
		_spec.SetField(coachsession.FieldTaskRecordID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Messages(); ok {
		_spec.SetField(coachsession.FieldMessages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMessages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, coachsession.FieldMessages, value)
		})
	}
	if _u.mutation.MessagesCleared() {
		_spec.ClearField(coachsession.FieldMessages, field.TypeJSON)
	}
	if value, ok := _u.mutation.TurnCount(); ok {
		_spec.SetField(coachsession.FieldTurnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurnCount(); ok {
		_spec.AddField(coachsession.FieldTurnCount, field.TypeInt, value)
	}
	if _u.mutation.ChildCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{coachsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CoachSessionUpdateOne is the builder for updating a single CoachSession entity.
type CoachSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CoachSessionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CoachSessionUpdateOne) SetUpdatedAt(v time.Time) *CoachSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetChildID sets the "child_id" field.
func (_u *CoachSessionUpdateOne) SetChildID(v uuid.UUID) *CoachSessionUpdateOne {
	_u.mutation.SetChildID(v)
	return _u
}

// SetNillableChildID sets the "child_id" field if the given value is not nil.
func (_u *CoachSessionUpdateOne) SetNillableChildID(v *uuid.UUID) *CoachSessionUpdateOne {
	if v != nil {
		_u.SetChildID(*v)
	}
	return _u
}

// SetTaskRecordID sets the "task_record_id" field.
func (_u *CoachSessionUpdateOne) SetTaskRecordID(v uuid.UUID) *CoachSessionUpdateOne {
	_u.mutation.SetTaskRecordID(v)
	return _u
}

// SetNillableTaskRecordID sets the "task_record_id" field if the given value is not nil.
func (_u *CoachSessionUpdateOne) SetNillableTaskRecordID(v *uuid.UUID) *CoachSessionUpdateOne {
	if v != nil {
		_u.SetTaskRecordID(*v)
	}
	return _u
}

// SetMessages sets the "messages" field.
func (_u *CoachSessionUpdateOne) SetMessages(v []chat.Turn) *CoachSessionUpdateOne {
	_u.mutation.SetMessages(v)
	return _u
}

// AppendMessages appends value to the "messages" field.
func (_u *CoachSessionUpdateOne) AppendMessages(v []chat.Turn) *CoachSessionUpdateOne {
	_u.mutation.AppendMessages(v)
	return _u
}

// ClearMessages clears the value of the "messages" field.
func (_u *CoachSessionUpdateOne) ClearMessages() *CoachSessionUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// SetTurnCount sets the "turn_count" field.
func (_u *CoachSessionUpdateOne) SetTurnCount(v int) *CoachSessionUpdateOne {
	_u.mutation.ResetTurnCount()
	_u.mutation.SetTurnCount(v)
	return _u
}

// SetNillableTurnCount sets the "turn_count" field if the given value is not nil.
func (_u *CoachSessionUpdateOne) SetNillableTurnCount(v *int) *CoachSessionUpdateOne {
	if v != nil {
		_u.SetTurnCount(*v)
	}
	return _u
}

// AddTurnCount adds value to the "turn_count" field.
func (_u *CoachSessionUpdateOne) AddTurnCount(v int) *CoachSessionUpdateOne {
	_u.mutation.AddTurnCount(v)
	return _u
}

// SetChild sets the "child" edge to the Child entity.
func (_u *CoachSessionUpdateOne) SetChild(v *Child) *CoachSessionUpdateOne {
	return _u.SetChildID(v.ID)
}

// Mutation returns the CoachSessionMutation object of the builder.
func (_u *CoachSessionUpdateOne) Mutation() *CoachSessionMutation {
	return _u.mutation
}

// ClearChild clears the "child" edge to the Child entity.
func (_u *CoachSessionUpdateOne) ClearChild() *CoachSessionUpdateOne {
	_u.mutation.ClearChild()
	return _u
}

// Where appends a list predicates to the CoachSessionUpdate builder.
func (_u *CoachSessionUpdateOne) Where(ps ...predicate.CoachSession) *CoachSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CoachSessionUpdateOne) Select(field string, fields ...string) *CoachSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CoachSession entity.
func (_u *CoachSessionUpdateOne) Save(ctx context.Context) (*CoachSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CoachSessionUpdateOne) SaveX(ctx context.Context) *CoachSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CoachSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CoachSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CoachSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := coachsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CoachSessionUpdateOne) check() error {
	if _u.mutation.ChildCleared() && len(_u.mutation.ChildIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CoachSession.child"`)
	}
	return nil
}

func (_u *CoachSessionUpdateOne) sqlSave(ctx context.Context) (_node *CoachSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(coachsession.Table, coachsession.Columns, sqlgraph.NewFieldSpec(coachsession.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CoachSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, coachsession.FieldID)
		for _, f := range fields {
			if !coachsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != coachsession.FieldID {
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
		_spec.SetField(coachsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TaskRecordID(); ok {
		_spec.SetField(coachsession.FieldTaskRecordID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Messages(); ok {
		_spec.SetField(coachsession.FieldMessages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMessages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, coachsession.FieldMessages, value)
		})
	}
	if _u.mutation.MessagesCleared() {
		_spec.ClearField(coachsession.FieldMessages, field.TypeJSON)
	}
	if value, ok := _u.mutation.TurnCount(); ok {
		_spec.SetField(coachsession.FieldTurnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurnCount(); ok {
		_spec.AddField(coachsession.FieldTurnCount, field.TypeInt, value)
	}
	if _u.mutation.ChildCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CoachSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{coachsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
