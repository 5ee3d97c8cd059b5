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
	"github.com/abhisek/budai/ent/weeklyreport"
	"github.com/google/uuid"
)

// WeeklyReportCreate is the builder for creating a WeeklyReport entity.
type WeeklyReportCreate struct {
	config
	mutation *WeeklyReportMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *WeeklyReportCreate) SetCreatedAt(v time.Time) *WeeklyReportCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WeeklyReportCreate) SetNillableCreatedAt(v *time.Time) *WeeklyReportCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WeeklyReportCreate) SetUpdatedAt(v time.Time) *WeeklyReportCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WeeklyReportCreate) SetNillableUpdatedAt(v *time.Time) *WeeklyReportCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetChildID sets the "child_id" field.
func (_c *WeeklyReportCreate) SetChildID(v uuid.UUID) *WeeklyReportCreate {
	_c.mutation.SetChildID(v)
	return _c
}

// SetWeekStart sets the "week_start" field.
func (_c *WeeklyReportCreate) SetWeekStart(v time.Time) *WeeklyReportCreate {
	_c.mutation.SetWeekStart(v)
	return _c
}

// SetWeekEnd sets the "week_end" field.
func (_c *WeeklyReportCreate) SetWeekEnd(v time.Time) *WeeklyReportCreate {
	_c.mutation.SetWeekEnd(v)
	return _c
}

// SetTasksCompleted sets the "tasks_completed" field.
func (_c *WeeklyReportCreate) SetTasksCompleted(v int) *WeeklyReportCreate {
	_c.mutation.SetTasksCompleted(v)
	return _c
}

// SetNillableTasksCompleted sets the "tasks_completed" field if the given value is not nil.
func (_c *WeeklyReportCreate) SetNillableTasksCompleted(v *int) *WeeklyReportCreate {
	if v != nil {
		_c.SetTasksCompleted(*v)
	}
	return _c
}

// SetAverageScore sets the "average_score" field.
func (_c *WeeklyReportCreate) SetAverageScore(v float64) *WeeklyReportCreate {
	_c.mutation.SetAverageScore(v)
	return _c
}

// SetNillableAverageScore sets the "average_score" field if the given value is not nil.
func (_c *WeeklyReportCreate) SetNillableAverageScore(v *float64) *WeeklyReportCreate {
	if v != nil {
		_c.SetAverageScore(*v)
	}
	return _c
}

// SetMostImproved sets the "most_improved" field.
func (_c *WeeklyReportCreate) SetMostImproved(v string) *WeeklyReportCreate {
	_c.mutation.SetMostImproved(v)
	return _c
}

// SetNillableMostImproved sets the "most_improved" field if the given value is not nil.
func (_c *WeeklyReportCreate) SetNillableMostImproved(v *string) *WeeklyReportCreate {
	if v != nil {
		_c.SetMostImproved(*v)
	}
	return _c
}

// SetNeedsWork sets the "needs_work" field.
func (_c *WeeklyReportCreate) SetNeedsWork(v string) *WeeklyReportCreate {
	_c.mutation.SetNeedsWork(v)
	return _c
}

// SetNillableNeedsWork sets the "needs_work" field if the given value is not nil.
func (_c *WeeklyReportCreate) SetNillableNeedsWork(v *string) *WeeklyReportCreate {
	if v != nil {
		_c.SetNeedsWork(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *WeeklyReportCreate) SetSummary(v string) *WeeklyReportCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *WeeklyReportCreate) SetNillableSummary(v *string) *WeeklyReportCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetInsights sets the "insights" field.
func (_c *WeeklyReportCreate) SetInsights(v map[string]string) *WeeklyReportCreate {
	_c.mutation.SetInsights(v)
	return _c
}

// SetSuggestions sets the "suggestions" field.
func (_c *WeeklyReportCreate) SetSuggestions(v []string) *WeeklyReportCreate {
	_c.mutation.SetSuggestions(v)
	return _c
}

// SetRecommendedGames sets the "recommended_games" field.
func (_c *WeeklyReportCreate) SetRecommendedGames(v []string) *WeeklyReportCreate {
	_c.mutation.SetRecommendedGames(v)
	return _c
}

// SetID sets the "id" field.
func (_c *WeeklyReportCreate) SetID(v uuid.UUID) *WeeklyReportCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *WeeklyReportCreate) SetNillableID(v *uuid.UUID) *WeeklyReportCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetChild sets the "child" edge to the Child entity.
func (_c *WeeklyReportCreate) SetChild(v *Child) *WeeklyReportCreate {
	return _c.SetChildID(v.ID)
}

// Mutation returns the WeeklyReportMutation object of the builder.
func (_c *WeeklyReportCreate) Mutation() *WeeklyReportMutation {
	return _c.mutation
}

// Save creates the WeeklyReport in the database.
func (_c *WeeklyReportCreate) Save(ctx context.Context) (*WeeklyReport, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WeeklyReportCreate) SaveX(ctx context.Context) *WeeklyReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WeeklyReportCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WeeklyReportCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WeeklyReportCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := weeklyreport.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := weeklyreport.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.TasksCompleted(); !ok {
		v := weeklyreport.DefaultTasksCompleted
		_c.mutation.SetTasksCompleted(v)
	}
	if _, ok := _c.mutation.AverageScore(); !ok {
		v := weeklyreport.DefaultAverageScore
		_c.mutation.SetAverageScore(v)
	}
	if _, ok := _c.mutation.MostImproved(); !ok {
		v := weeklyreport.DefaultMostImproved
		_c.mutation.SetMostImproved(v)
	}
	if _, ok := _c.mutation.NeedsWork(); !ok {
		v := weeklyreport.DefaultNeedsWork
		_c.mutation.SetNeedsWork(v)
	}
	if _, ok := _c.mutation.Summary(); !ok {
		v := weeklyreport.DefaultSummary
		_c.mutation.SetSummary(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := weeklyreport.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WeeklyReportCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WeeklyReport.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WeeklyReport.updated_at"`)}
	}
	if _, ok := _c.mutation.ChildID(); !ok {
		return &ValidationError{Name: "child_id", err: errors.New(`ent: missing required field "WeeklyReport.child_id"`)}
	}
	if _, ok := _c.mutation.WeekStart(); !ok {
		return &ValidationError{Name: "week_start", err: errors.New(`ent: missing required field "WeeklyReport.week_start"`)}
	}
	if _, ok := _c.mutation.WeekEnd(); !ok {
		return &ValidationError{Name: "week_end", err: errors.New(`ent: missing required field "WeeklyReport.week_end"`)}
	}
	if _, ok := _c.mutation.TasksCompleted(); !ok {
		return &ValidationError{Name: "tasks_completed", err: errors.New(`ent: missing required field "WeeklyReport.tasks_completed"`)}
	}
	if _, ok := _c.mutation.AverageScore(); !ok {
		return &ValidationError{Name: "average_score", err: errors.New(`ent: missing required field "WeeklyReport.average_score"`)}
	}
	if _, ok := _c.mutation.MostImproved(); !ok {
		return &ValidationError{Name: "most_improved", err: errors.New(`ent: missing required field "WeeklyReport.most_improved"`)}
	}
	if _, ok := _c.mutation.NeedsWork(); !ok {
		return &ValidationError{Name: "needs_work", err: errors.New(`ent: missing required field "WeeklyReport.needs_work"`)}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "WeeklyReport.summary"`)}
	}
	if len(_c.mutation.ChildIDs()) == 0 {
		return &ValidationError{Name: "child", err: errors.New(`ent: missing required edge "WeeklyReport.child"`)}
	}
	return nil
}

func (_c *WeeklyReportCreate) sqlSave(ctx context.Context) (*WeeklyReport, error) {
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

func (_c *WeeklyReportCreate) createSpec() (*WeeklyReport, *sqlgraph.CreateSpec) {
	var (
		_node = &WeeklyReport{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(weeklyreport.Table, sqlgraph.NewFieldSpec(weeklyreport.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(weeklyreport.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(weeklyreport.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.WeekStart(); ok {
		_spec.SetField(weeklyreport.FieldWeekStart, field.TypeTime, value)
		_node.WeekStart = value
	}
	if value, ok := _c.mutation.WeekEnd(); ok {
		_spec.SetField(weeklyreport.FieldWeekEnd, field.TypeTime, value)
		_node.WeekEnd = value
	}
	if value, ok := _c.mutation.TasksCompleted(); ok {
		_spec.SetField(weeklyreport.FieldTasksCompleted, field.TypeInt, value)
		_node.TasksCompleted = value
	}
	if value, ok := _c.mutation.AverageScore(); ok {
		_spec.SetField(weeklyreport.FieldAverageScore, field.TypeFloat64, value)
		_node.AverageScore = value
	}
	if value, ok := _c.mutation.MostImproved(); ok {
		_spec.SetField(weeklyreport.FieldMostImproved, field.TypeString, value)
		_node.MostImproved = value
	}
	if value, ok := _c.mutation.NeedsWork(); ok {
		_spec.SetField(weeklyreport.FieldNeedsWork, field.TypeString, value)
		_node.NeedsWork = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(weeklyreport.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Insights(); ok {
		_spec.SetField(weeklyreport.FieldInsights, field.TypeJSON, value)
		_node.Insights = value
	}
	if value, ok := _c.mutation.Suggestions(); ok {
		_spec.SetField(weeklyreport.FieldSuggestions, field.TypeJSON, value)
		_node.Suggestions = value
	}
	if value, ok := _c.mutation.RecommendedGames(); ok {
		_spec.SetField(weeklyreport.FieldRecommendedGames, field.TypeJSON, value)
		_node.RecommendedGames = value
	}
	if nodes := _c.mutation.ChildIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   weeklyreport.ChildTable,
			Columns: []string{weeklyreport.ChildColumn},
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
	return _node, _spec
}

// WeeklyReportCreateBulk is the builder for creating many WeeklyReport entities in bulk.
type WeeklyReportCreateBulk struct {
	config
	err      error
	builders []*WeeklyReportCreate
}

// Save creates the WeeklyReport entities in the database.
func (_c *WeeklyReportCreateBulk) Save(ctx context.Context) ([]*WeeklyReport, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WeeklyReport, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WeeklyReportMutation)
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
func (_c *WeeklyReportCreateBulk) SaveX(ctx context.Context) []*WeeklyReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WeeklyReportCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WeeklyReportCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
