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
	"github.com/abhisek/budai/ent/task"
	"github.com/abhisek/budai/ent/taskrecord"
	"github.com/google/uuid"
)

// TaskRecordCreate is the builder for creating a TaskRecord entity.
type TaskRecordCreate struct {
	config
	mutation *TaskRecordMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskRecordCreate) SetCreatedAt(v time.Time) *TaskRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskRecordCreate) SetNillableCreatedAt(v *time.Time) *TaskRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TaskRecordCreate) SetUpdatedAt(v time.Time) *TaskRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TaskRecordCreate) SetNillableUpdatedAt(v *time.Time) *TaskRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetChildID sets the "child_id" field.
func (_c *TaskRecordCreate) SetChildID(v uuid.UUID) *TaskRecordCreate {
	_c.mutation.SetChildID(v)
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *TaskRecordCreate) SetTaskID(v uuid.UUID) *TaskRecordCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TaskRecordCreate) SetStatus(v taskrecord.Status) *TaskRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TaskRecordCreate) SetNillableStatus(v *taskrecord.Status) *TaskRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSubmission sets the "submission" field.
func (_c *TaskRecordCreate) SetSubmission(v string) *TaskRecordCreate {
	_c.mutation.SetSubmission(v)
	return _c
}

// SetNillableSubmission sets the "submission" field if the given value is not nil.
func (_c *TaskRecordCreate) SetNillableSubmission(v *string) *TaskRecordCreate {
	if v != nil {
		_c.SetSubmission(*v)
	}
	return _c
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_c *TaskRecordCreate) SetTimeSpentSecs(v int) *TaskRecordCreate {
	_c.mutation.SetTimeSpentSecs(v)
	return _c
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_c *TaskRecordCreate) SetNillableTimeSpentSecs(v *int) *TaskRecordCreate {
	if v != nil {
		_c.SetTimeSpentSecs(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *TaskRecordCreate) SetStartedAt(v time.Time) *TaskRecordCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TaskRecordCreate) SetCompletedAt(v time.Time) *TaskRecordCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *TaskRecordCreate) SetNillableCompletedAt(v *time.Time) *TaskRecordCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetExpressionScore sets the "expression_score" field.
func (_c *TaskRecordCreate) SetExpressionScore(v float64) *TaskRecordCreate {
	_c.mutation.SetExpressionScore(v)
	return _c
}

// SetNillableExpressionScore sets the "expression_score" field if the given value is not nil.
func (_c *TaskRecordCreate) SetNillableExpressionScore(v *float64) *TaskRecordCreate {
	if v != nil {
		_c.SetExpressionScore(*v)
	}
	return _c
}

// SetLogicScore sets the "logic_score" field.
func (_c *TaskRecordCreate) SetLogicScore(v float64) *TaskRecordCreate {
	_c.mutation.SetLogicScore(v)
	return _c
}

// SetNillableLogicScore sets the "logic_score" field if the given value is not nil.
func (_c *TaskRecordCreate) SetNillableLogicScore(v *float64) *TaskRecordCreate {
	if v != nil {
		_c.SetLogicScore(*v)
	}
	return _c
}

// SetExplorationScore sets the "exploration_score" field.
func (_c *TaskRecordCreate) SetExplorationScore(v float64) *TaskRecordCreate {
	_c.mutation.SetExplorationScore(v)
	return _c
}

// SetNillableExplorationScore sets the "exploration_score" field if the given value is not nil.
func (_c *TaskRecordCreate) SetNillableExplorationScore(v *float64) *TaskRecordCreate {
	if v != nil {
		_c.SetExplorationScore(*v)
	}
	return _c
}

// SetCreativityScore sets the "creativity_score" field.
func (_c *TaskRecordCreate) SetCreativityScore(v float64) *TaskRecordCreate {
	_c.mutation.SetCreativityScore(v)
	return _c
}

// SetNillableCreativityScore sets the "creativity_score" field if the given value is not nil.
func (_c *TaskRecordCreate) SetNillableCreativityScore(v *float64) *TaskRecordCreate {
	if v != nil {
		_c.SetCreativityScore(*v)
	}
	return _c
}

// SetHabitScore sets the "habit_score" field.
func (_c *TaskRecordCreate) SetHabitScore(v float64) *TaskRecordCreate {
	_c.mutation.SetHabitScore(v)
	return _c
}

// SetNillableHabitScore sets the "habit_score" field if the given value is not nil.
func (_c *TaskRecordCreate) SetNillableHabitScore(v *float64) *TaskRecordCreate {
	if v != nil {
		_c.SetHabitScore(*v)
	}
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *TaskRecordCreate) SetFeedback(v string) *TaskRecordCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_c *TaskRecordCreate) SetNillableFeedback(v *string) *TaskRecordCreate {
	if v != nil {
		_c.SetFeedback(*v)
	}
	return _c
}

// SetSuggestions sets the "suggestions" field.
func (_c *TaskRecordCreate) SetSuggestions(v []string) *TaskRecordCreate {
	_c.mutation.SetSuggestions(v)
	return _c
}

// SetExemplarAnswer sets the "exemplar_answer" field.
func (_c *TaskRecordCreate) SetExemplarAnswer(v string) *TaskRecordCreate {
	_c.mutation.SetExemplarAnswer(v)
	return _c
}

// SetNillableExemplarAnswer sets the "exemplar_answer" field if the given value is not nil.
func (_c *TaskRecordCreate) SetNillableExemplarAnswer(v *string) *TaskRecordCreate {
	if v != nil {
		_c.SetExemplarAnswer(*v)
	}
	return _c
}

// SetXpEarned sets the "xp_earned" field.
func (_c *TaskRecordCreate) SetXpEarned(v int) *TaskRecordCreate {
	_c.mutation.SetXpEarned(v)
	return _c
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_c *TaskRecordCreate) SetNillableXpEarned(v *int) *TaskRecordCreate {
	if v != nil {
		_c.SetXpEarned(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskRecordCreate) SetID(v uuid.UUID) *TaskRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TaskRecordCreate) SetNillableID(v *uuid.UUID) *TaskRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetChild sets the "child" edge to the Child entity.
func (_c *TaskRecordCreate) SetChild(v *Child) *TaskRecordCreate {
	return _c.SetChildID(v.ID)
}

// SetTask sets the "task" edge to the Task entity.
func (_c *TaskRecordCreate) SetTask(v *Task) *TaskRecordCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the TaskRecordMutation object of the builder.
func (_c *TaskRecordCreate) Mutation() *TaskRecordMutation {
	return _c.mutation
}

// Save creates the TaskRecord in the database.
func (_c *TaskRecordCreate) Save(ctx context.Context) (*TaskRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskRecordCreate) SaveX(ctx context.Context) *TaskRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := taskrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := taskrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := taskrecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Submission(); !ok {
		v := taskrecord.DefaultSubmission
		_c.mutation.SetSubmission(v)
	}
	if _, ok := _c.mutation.TimeSpentSecs(); !ok {
		v := taskrecord.DefaultTimeSpentSecs
		_c.mutation.SetTimeSpentSecs(v)
	}
	if _, ok := _c.mutation.Feedback(); !ok {
		v := taskrecord.DefaultFeedback
		_c.mutation.SetFeedback(v)
	}
	if _, ok := _c.mutation.ExemplarAnswer(); !ok {
		v := taskrecord.DefaultExemplarAnswer
		_c.mutation.SetExemplarAnswer(v)
	}
	if _, ok := _c.mutation.XpEarned(); !ok {
		v := taskrecord.DefaultXpEarned
		_c.mutation.SetXpEarned(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := taskrecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskRecordCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TaskRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TaskRecord.updated_at"`)}
	}
	if _, ok := _c.mutation.ChildID(); !ok {
		return &ValidationError{Name: "child_id", err: errors.New(`ent: missing required field "TaskRecord.child_id"`)}
	}
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "TaskRecord.task_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "TaskRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := taskrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TaskRecord.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Submission(); !ok {
		return &ValidationError{Name: "submission", err: errors.New(`ent: missing required field "TaskRecord.submission"`)}
	}
	if _, ok := _c.mutation.TimeSpentSecs(); !ok {
		return &ValidationError{Name: "time_spent_secs", err: errors.New(`ent: missing required field "TaskRecord.time_spent_secs"`)}
	}
	if v, ok := _c.mutation.TimeSpentSecs(); ok {
		if err := taskrecord.TimeSpentSecsValidator(v); err != nil {
			return &ValidationError{Name: "time_spent_secs", err: fmt.Errorf(`ent: validator failed for field "TaskRecord.time_spent_secs": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "TaskRecord.started_at"`)}
	}
	if _, ok := _c.mutation.Feedback(); !ok {
		return &ValidationError{Name: "feedback", err: errors.New(`ent: missing required field "TaskRecord.feedback"`)}
	}
	if _, ok := _c.mutation.ExemplarAnswer(); !ok {
		return &ValidationError{Name: "exemplar_answer", err: errors.New(`ent: missing required field "TaskRecord.exemplar_answer"`)}
	}
	if _, ok := _c.mutation.XpEarned(); !ok {
		return &ValidationError{Name: "xp_earned", err: errors.New(`ent: missing required field "TaskRecord.xp_earned"`)}
	}
	if len(_c.mutation.ChildIDs()) == 0 {
		return &ValidationError{Name: "child", err: errors.New(`ent: missing required edge "TaskRecord.child"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "TaskRecord.task"`)}
	}
	return nil
}

func (_c *TaskRecordCreate) sqlSave(ctx context.Context) (*TaskRecord, error) {
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

func (_c *TaskRecordCreate) createSpec() (*TaskRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(taskrecord.Table, sqlgraph.NewFieldSpec(taskrecord.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(taskrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(taskrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(taskrecord.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Submission(); ok {
		_spec.SetField(taskrecord.FieldSubmission, field.TypeString, value)
		_node.Submission = value
	}
	if value, ok := _c.mutation.TimeSpentSecs(); ok {
		_spec.SetField(taskrecord.FieldTimeSpentSecs, field.TypeInt, value)
		_node.TimeSpentSecs = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(taskrecord.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(taskrecord.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ExpressionScore(); ok {
		_spec.SetField(taskrecord.FieldExpressionScore, field.TypeFloat64, value)
		_node.ExpressionScore = &value
	}
	if value, ok := _c.mutation.LogicScore(); ok {
		_spec.SetField(taskrecord.FieldLogicScore, field.TypeFloat64, value)
		_node.LogicScore = &value
	}
	if value, ok := _c.mutation.ExplorationScore(); ok {
		_spec.SetField(taskrecord.FieldExplorationScore, field.TypeFloat64, value)
		_node.ExplorationScore = &value
	}
	if value, ok := _c.mutation.CreativityScore(); ok {
		_spec.SetField(taskrecord.FieldCreativityScore, field.TypeFloat64, value)
		_node.CreativityScore = &value
	}
	if value, ok := _c.mutation.HabitScore(); ok {
		_spec.SetField(taskrecord.FieldHabitScore, field.TypeFloat64, value)
		_node.HabitScore = &value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(taskrecord.FieldFeedback, field.TypeString, value)
		_node.Feedback = value
	}
	if value, ok := _c.mutation.Suggestions(); ok {
		_spec.SetField(taskrecord.FieldSuggestions, field.TypeJSON, value)
		_node.Suggestions = value
	}
	if value, ok := _c.mutation.ExemplarAnswer(); ok {
		_spec.SetField(taskrecord.FieldExemplarAnswer, field.TypeString, value)
		_node.ExemplarAnswer = value
	}
	if value, ok := _c.mutation.XpEarned(); ok {
		_spec.SetField(taskrecord.FieldXpEarned, field.TypeInt, value)
		_node.XpEarned = value
	}
	if nodes := _c.mutation.ChildIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskrecord.ChildTable,
			Columns: []string{taskrecord.ChildColumn},
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
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskrecord.TaskTable,
			Columns: []string{taskrecord.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TaskRecordCreateBulk is the builder for creating many TaskRecord entities in bulk.
type TaskRecordCreateBulk struct {
	config
	err      error
	builders []*TaskRecordCreate
}

// Save creates the TaskRecord entities in the database.
func (_c *TaskRecordCreateBulk) Save(ctx context.Context) ([]*TaskRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TaskRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskRecordMutation)
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
func (_c *TaskRecordCreateBulk) SaveX(ctx context.Context) []*TaskRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
