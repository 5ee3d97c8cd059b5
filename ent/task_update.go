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
	"github.com/abhisek/budai/ent/predicate"
	"github.com/abhisek/budai/ent/task"
	"github.com/abhisek/budai/ent/taskrecord"
	"github.com/google/uuid"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdate) SetUpdatedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAbility sets the "ability" field.
func (_u *TaskUpdate) SetAbility(v string) *TaskUpdate {
	_u.mutation.SetAbility(v)
	return _u
}

// SetNillableAbility sets the "ability" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableAbility(v *string) *TaskUpdate {
	if v != nil {
		_u.SetAbility(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *TaskUpdate) SetDifficulty(v int) *TaskUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDifficulty(v *int) *TaskUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *TaskUpdate) AddDifficulty(v int) *TaskUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *TaskUpdate) SetTitle(v string) *TaskUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTitle(v *string) *TaskUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdate) SetDescription(v string) *TaskUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDescription(v *string) *TaskUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *TaskUpdate) SetPrompt(v string) *TaskUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePrompt(v *string) *TaskUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetConstraints sets the "constraints" field.
func (_u *TaskUpdate) SetConstraints(v []string) *TaskUpdate {
	_u.mutation.SetConstraints(v)
	return _u
}

// AppendConstraints appends value to the "constraints" field.
func (_u *TaskUpdate) AppendConstraints(v []string) *TaskUpdate {
	_u.mutation.AppendConstraints(v)
	return _u
}

// ClearConstraints clears the value of the "constraints" field.
func (_u *TaskUpdate) ClearConstraints() *TaskUpdate {
	_u.mutation.ClearConstraints()
	return _u
}

// SetExpectedMinutes sets the "expected_minutes" field.
func (_u *TaskUpdate) SetExpectedMinutes(v int) *TaskUpdate {
	_u.mutation.ResetExpectedMinutes()
	_u.mutation.SetExpectedMinutes(v)
	return _u
}

// SetNillableExpectedMinutes sets the "expected_minutes" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableExpectedMinutes(v *int) *TaskUpdate {
	if v != nil {
		_u.SetExpectedMinutes(*v)
	}
	return _u
}

// AddExpectedMinutes adds value to the "expected_minutes" field.
func (_u *TaskUpdate) AddExpectedMinutes(v int) *TaskUpdate {
	_u.mutation.AddExpectedMinutes(v)
	return _u
}

// AddRecordIDs adds the "records" edge to the TaskRecord entity by IDs.
func (_u *TaskUpdate) AddRecordIDs(ids ...uuid.UUID) *TaskUpdate {
	_u.mutation.AddRecordIDs(ids...)
	return _u
}

// AddRecords adds the "records" edges to the TaskRecord entity.
func (_u *TaskUpdate) AddRecords(v ...*TaskRecord) *TaskUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecordIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearRecords clears all "records" edges to the TaskRecord entity.
func (_u *TaskUpdate) ClearRecords() *TaskUpdate {
	_u.mutation.ClearRecords()
	return _u
}

// RemoveRecordIDs removes the "records" edge to TaskRecord entities by IDs.
func (_u *TaskUpdate) RemoveRecordIDs(ids ...uuid.UUID) *TaskUpdate {
	_u.mutation.RemoveRecordIDs(ids...)
	return _u
}

// RemoveRecords removes "records" edges to TaskRecord entities.
func (_u *TaskUpdate) RemoveRecords(v ...*TaskRecord) *TaskUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecordIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.Ability(); ok {
		if err := task.AbilityValidator(v); err != nil {
			return &ValidationError{Name: "ability", err: fmt.Errorf(`ent: validator failed for field "Task.ability": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := task.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Task.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := task.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Task.title": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Ability(); ok {
		_spec.SetField(task.FieldAbility, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(task.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(task.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(task.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Constraints(); ok {
		_spec.SetField(task.FieldConstraints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConstraints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldConstraints, value)
		})
	}
	if _u.mutation.ConstraintsCleared() {
		_spec.ClearField(task.FieldConstraints, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExpectedMinutes(); ok {
		_spec.SetField(task.FieldExpectedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExpectedMinutes(); ok {
		_spec.AddField(task.FieldExpectedMinutes, field.TypeInt, value)
	}
	if _u.mutation.RecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.RecordsTable,
			Columns: []string{task.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskrecord.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecordsIDs(); len(nodes) > 0 && !_u.mutation.RecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.RecordsTable,
			Columns: []string{task.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.RecordsTable,
			Columns: []string{task.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdateOne) SetUpdatedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAbility sets the "ability" field.
func (_u *TaskUpdateOne) SetAbility(v string) *TaskUpdateOne {
	_u.mutation.SetAbility(v)
	return _u
}

// SetNillableAbility sets the "ability" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableAbility(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetAbility(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *TaskUpdateOne) SetDifficulty(v int) *TaskUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDifficulty(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *TaskUpdateOne) AddDifficulty(v int) *TaskUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *TaskUpdateOne) SetTitle(v string) *TaskUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTitle(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdateOne) SetDescription(v string) *TaskUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDescription(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *TaskUpdateOne) SetPrompt(v string) *TaskUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePrompt(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetConstraints sets the "constraints" field.
func (_u *TaskUpdateOne) SetConstraints(v []string) *TaskUpdateOne {
	_u.mutation.SetConstraints(v)
	return _u
}

// AppendConstraints appends value to the "constraints" field.
func (_u *TaskUpdateOne) AppendConstraints(v []string) *TaskUpdateOne {
	_u.mutation.AppendConstraints(v)
	return _u
}

// ClearConstraints clears the value of the "constraints" field.
func (_u *TaskUpdateOne) ClearConstraints() *TaskUpdateOne {
	_u.mutation.ClearConstraints()
	return _u
}

// SetExpectedMinutes sets the "expected_minutes" field.
func (_u *TaskUpdateOne) SetExpectedMinutes(v int) *TaskUpdateOne {
	_u.mutation.ResetExpectedMinutes()
	_u.mutation.SetExpectedMinutes(v)
	return _u
}

// SetNillableExpectedMinutes sets the "expected_minutes" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableExpectedMinutes(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetExpectedMinutes(*v)
	}
	return _u
}

// AddExpectedMinutes adds value to the "expected_minutes" field.
func (_u *TaskUpdateOne) AddExpectedMinutes(v int) *TaskUpdateOne {
	_u.mutation.AddExpectedMinutes(v)
	return _u
}

// AddRecordIDs adds the "records" edge to the TaskRecord entity by IDs.
func (_u *TaskUpdateOne) AddRecordIDs(ids ...uuid.UUID) *TaskUpdateOne {
	_u.mutation.AddRecordIDs(ids...)
	return _u
}

// AddRecords adds the "records" edges to the TaskRecord entity.
func (_u *TaskUpdateOne) AddRecords(v ...*TaskRecord) *TaskUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecordIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearRecords clears all "records" edges to the TaskRecord entity.
func (_u *TaskUpdateOne) ClearRecords() *TaskUpdateOne {
	_u.mutation.ClearRecords()
	return _u
}

// RemoveRecordIDs removes the "records" edge to TaskRecord entities by IDs.
func (_u *TaskUpdateOne) RemoveRecordIDs(ids ...uuid.UUID) *TaskUpdateOne {
	_u.mutation.RemoveRecordIDs(ids...)
	return _u
}

// RemoveRecords removes "records" edges to TaskRecord entities.
func (_u *TaskUpdateOne) RemoveRecords(v ...*TaskRecord) *TaskUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecordIDs(ids...)
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.Ability(); ok {
		if err := task.AbilityValidator(v); err != nil {
			return &ValidationError{Name: "ability", err: fmt.Errorf(`ent: validator failed for field "Task.ability": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := task.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Task.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := task.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Task.title": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
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
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Ability(); ok {
		_spec.SetField(task.FieldAbility, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(task.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(task.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(task.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Constraints(); ok {
		_spec.SetField(task.FieldConstraints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConstraints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldConstraints, value)
		})
	}
	if _u.mutation.ConstraintsCleared() {
		_spec.ClearField(task.FieldConstraints, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExpectedMinutes(); ok {
		_spec.SetField(task.FieldExpectedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExpectedMinutes(); ok {
		_spec.AddField(task.FieldExpectedMinutes, field.TypeInt, value)
	}
	if _u.mutation.RecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.RecordsTable,
			Columns: []string{task.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskrecord.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecordsIDs(); len(nodes) > 0 && !_u.mutation.RecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.RecordsTable,
			Columns: []string{task.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.RecordsTable,
			Columns: []string{task.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
