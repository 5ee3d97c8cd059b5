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
	"github.com/abhisek/budai/ent/predicate"
	"github.com/abhisek/budai/ent/weeklyreport"
	"github.com/google/uuid"
)

// WeeklyReportUpdate is the builder for updating WeeklyReport entities.
type WeeklyReportUpdate struct {
	config
	hooks    []Hook
	mutation *WeeklyReportMutation
}

// Where appends a list predicates to the WeeklyReportUpdate builder.
func (_u *WeeklyReportUpdate) Where(ps ...predicate.WeeklyReport) *WeeklyReportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WeeklyReportUpdate) SetUpdatedAt(v time.Time) *WeeklyReportUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetChildID sets the "child_id" field.
func (_u *WeeklyReportUpdate) SetChildID(v uuid.UUID) *WeeklyReportUpdate {
	_u.mutation.SetChildID(v)
	return _u
}

// SetNillableChildID sets the "child_id" field if the given value is not nil.
func (_u *WeeklyReportUpdate) SetNillableChildID(v *uuid.UUID) *WeeklyReportUpdate {
	if v != nil {
		_u.SetChildID(*v)
	}
	return _u
}

// SetWeekStart sets the "week_start" field.
func (_u *WeeklyReportUpdate) SetWeekStart(v time.Time) *WeeklyReportUpdate {
	_u.mutation.SetWeekStart(v)
	return _u
}

// SetNillableWeekStart sets the "week_start" field if the given value is not nil.
func (_u *WeeklyReportUpdate) SetNillableWeekStart(v *time.Time) *WeeklyReportUpdate {
	if v != nil {
		_u.SetWeekStart(*v)
	}
	return _u
}

// SetWeekEnd sets the "week_end" field.
func (_u *WeeklyReportUpdate) SetWeekEnd(v time.Time) *WeeklyReportUpdate {
	_u.mutation.SetWeekEnd(v)
	return _u
}

// SetNillableWeekEnd sets the "week_end" field if the given value is not nil.
func (_u *WeeklyReportUpdate) SetNillableWeekEnd(v *time.Time) *WeeklyReportUpdate {
	if v != nil {
		_u.SetWeekEnd(*v)
	}
	return _u
}

// SetTasksCompleted sets the "tasks_completed" field.
func (_u *WeeklyReportUpdate) SetTasksCompleted(v int) *WeeklyReportUpdate {
	_u.mutation.ResetTasksCompleted()
	_u.mutation.SetTasksCompleted(v)
	return _u
}

// SetNillableTasksCompleted sets the "tasks_completed" field if the given value is not nil.
func (_u *WeeklyReportUpdate) SetNillableTasksCompleted(v *int) *WeeklyReportUpdate {
	if v != nil {
		_u.SetTasksCompleted(*v)
	}
	return _u
}

// AddTasksCompleted adds value to the "tasks_completed" field.
func (_u *WeeklyReportUpdate) AddTasksCompleted(v int) *WeeklyReportUpdate {
	_u.mutation.AddTasksCompleted(v)
	return _u
}

// SetAverageScore sets the "average_score" field.
func (_u *WeeklyReportUpdate) SetAverageScore(v float64) *WeeklyReportUpdate {
	_u.mutation.ResetAverageScore()
	_u.mutation.SetAverageScore(v)
	return _u
}

// SetNillableAverageScore sets the "average_score" field if the given value is not nil.
func (_u *WeeklyReportUpdate) SetNillableAverageScore(v *float64) *WeeklyReportUpdate {
	if v != nil {
		_u.SetAverageScore(*v)
	}
	return _u
}

// AddAverageScore adds value to the "average_score" field.
func (_u *WeeklyReportUpdate) AddAverageScore(v float64) *WeeklyReportUpdate {
	_u.mutation.AddAverageScore(v)
	return _u
}

// SetMostImproved sets the "most_improved" field.
func (_u *WeeklyReportUpdate) SetMostImproved(v string) *WeeklyReportUpdate {
	_u.mutation.SetMostImproved(v)
	return _u
}

// SetNillableMostImproved sets the "most_improved" field if the given value is not nil.
func (_u *WeeklyReportUpdate) SetNillableMostImproved(v *string) *WeeklyReportUpdate {
	if v != nil {
		_u.SetMostImproved(*v)
	}
	return _u
}

// SetNeedsWork sets the "needs_work" field.
func (_u *WeeklyReportUpdate) SetNeedsWork(v string) *WeeklyReportUpdate {
	_u.mutation.SetNeedsWork(v)
	return _u
}

// SetNillableNeedsWork sets the "needs_work" field if the given value is not nil.
func (_u *WeeklyReportUpdate) SetNillableNeedsWork(v *string) *WeeklyReportUpdate {
	if v != nil {
		_u.SetNeedsWork(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *WeeklyReportUpdate) SetSummary(v string) *WeeklyReportUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *WeeklyReportUpdate) SetNillableSummary(v *string) *WeeklyReportUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetInsights sets the "insights" field.
func (_u *WeeklyReportUpdate) SetInsights(v map[string]string) *WeeklyReportUpdate {
	_u.mutation.SetInsights(v)
	return _u
}

// ClearInsights clears the value of the "insights" field.
func (_u *WeeklyReportUpdate) ClearInsights() *WeeklyReportUpdate {
	_u.mutation.ClearInsights()
	return _u
}

// SetSuggestions sets the "suggestions" field.
func (_u *WeeklyReportUpdate) SetSuggestions(v []string) *WeeklyReportUpdate {
	_u.mutation.SetSuggestions(v)
	return _u
}

// AppendSuggestions appends value to the "suggestions" field.
func (_u *WeeklyReportUpdate) AppendSuggestions(v []string) *WeeklyReportUpdate {
	_u.mutation.AppendSuggestions(v)
	return _u
}

// ClearSuggestions clears the value of the "suggestions" field.
func (_u *WeeklyReportUpdate) ClearSuggestions() *WeeklyReportUpdate {
	_u.mutation.ClearSuggestions()
	return _u
}

// SetRecommendedGames sets the "recommended_games" field.
func (_u *WeeklyReportUpdate) SetRecommendedGames(v []string) *WeeklyReportUpdate {
	_u.mutation.SetRecommendedGames(v)
	return _u
}

// AppendRecommendedGames appends value to the "recommended_games" field.
func (_u *WeeklyReportUpdate) AppendRecommendedGames(v []string) *WeeklyReportUpdate {
	_u.mutation.AppendRecommendedGames(v)
	return _u
}

// ClearRecommendedGames clears the value of the "recommended_games" field.
func (_u *WeeklyReportUpdate) ClearRecommendedGames() *WeeklyReportUpdate {
	_u.mutation.ClearRecommendedGames()
	return _u
}

// SetChild sets the "child" edge to the Child entity.
func (_u *WeeklyReportUpdate) SetChild(v *Child) *WeeklyReportUpdate {
	return _u.SetChildID(v.ID)
}

// Mutation returns the WeeklyReportMutation object of the builder.
func (_u *WeeklyReportUpdate) Mutation() *WeeklyReportMutation {
	return _u.mutation
}

// ClearChild clears the "child" edge to the Child entity.
func (_u *WeeklyReportUpdate) ClearChild() *WeeklyReportUpdate {
	_u.mutation.ClearChild()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WeeklyReportUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WeeklyReportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WeeklyReportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WeeklyReportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WeeklyReportUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := weeklyreport.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WeeklyReportUpdate) check() error {
	if _u.mutation.ChildCleared() && len(_u.mutation.ChildIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WeeklyReport.child"`)
	}
	return nil
}

func (_u *WeeklyReportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(weeklyreport.Table, weeklyreport.Columns, sqlgraph.NewFieldSpec(weeklyreport.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(weeklyreport.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.WeekStart(); ok {
		_spec.SetField(weeklyreport.FieldWeekStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.WeekEnd(); ok {
		_spec.SetField(weeklyreport.FieldWeekEnd, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TasksCompleted(); ok {
		_spec.SetField(weeklyreport.FieldTasksCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTasksCompleted(); ok {
		_spec.AddField(weeklyreport.FieldTasksCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AverageScore(); ok {
		_spec.SetField(weeklyreport.FieldAverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageScore(); ok {
		_spec.AddField(weeklyreport.FieldAverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MostImproved(); ok {
		_spec.SetField(weeklyreport.FieldMostImproved, field.TypeString, value)
	}
	if value, ok := _u.mutation.NeedsWork(); ok {
		_spec.SetField(weeklyreport.FieldNeedsWork, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(weeklyreport.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Insights(); ok {
		_spec.SetField(weeklyreport.FieldInsights, field.TypeJSON, value)
	}
	if _u.mutation.InsightsCleared() {
		_spec.ClearField(weeklyreport.FieldInsights, field.TypeJSON)
	}
	if value, ok := _u.mutation.Suggestions(); ok {
		_spec.SetField(weeklyreport.FieldSuggestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSuggestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, weeklyreport.FieldSuggestions, value)
		})
	}
	if _u.mutation.SuggestionsCleared() {
		_spec.ClearField(weeklyreport.FieldSuggestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.RecommendedGames(); ok {
		_spec.SetField(weeklyreport.FieldRecommendedGames, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecommendedGames(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, weeklyreport.FieldRecommendedGames, value)
		})
	}
	if _u.mutation.RecommendedGamesCleared() {
		_spec.ClearField(weeklyreport.FieldRecommendedGames, field.TypeJSON)
	}
	if _u.mutation.ChildCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{weeklyreport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WeeklyReportUpdateOne is the builder for updating a single WeeklyReport entity.
type WeeklyReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WeeklyReportMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WeeklyReportUpdateOne) SetUpdatedAt(v time.Time) *WeeklyReportUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetChildID sets the "child_id" field.
func (_u *WeeklyReportUpdateOne) SetChildID(v uuid.UUID) *WeeklyReportUpdateOne {
	_u.mutation.SetChildID(v)
	return _u
}

// SetNillableChildID sets the "child_id" field if the given value is not nil.
func (_u *WeeklyReportUpdateOne) SetNillableChildID(v *uuid.UUID) *WeeklyReportUpdateOne {
	if v != nil {
		_u.SetChildID(*v)
	}
	return _u
}

// SetWeekStart sets the "week_start" field.
func (_u *WeeklyReportUpdateOne) SetWeekStart(v time.Time) *WeeklyReportUpdateOne {
	_u.mutation.SetWeekStart(v)
	return _u
}

// SetNillableWeekStart sets the "week_start" field if the given value is not nil.
func (_u *WeeklyReportUpdateOne) SetNillableWeekStart(v *time.Time) *WeeklyReportUpdateOne {
	if v != nil {
		_u.SetWeekStart(*v)
	}
	return _u
}

// SetWeekEnd sets the "week_end" field.
func (_u *WeeklyReportUpdateOne) SetWeekEnd(v time.Time) *WeeklyReportUpdateOne {
	_u.mutation.SetWeekEnd(v)
	return _u
}

// SetNillableWeekEnd sets the "week_end" field if the given value is not nil.
func (_u *WeeklyReportUpdateOne) SetNillableWeekEnd(v *time.Time) *WeeklyReportUpdateOne {
	if v != nil {
		_u.SetWeekEnd(*v)
	}
	return _u
}

// SetTasksCompleted sets the "tasks_completed" field.
func (_u *WeeklyReportUpdateOne) SetTasksCompleted(v int) *WeeklyReportUpdateOne {
	_u.mutation.ResetTasksCompleted()
	_u.mutation.SetTasksCompleted(v)
	return _u
}

// SetNillableTasksCompleted sets the "tasks_completed" field if the given value is not nil.
func (_u *WeeklyReportUpdateOne) SetNillableTasksCompleted(v *int) *WeeklyReportUpdateOne {
	if v != nil {
		_u.SetTasksCompleted(*v)
	}
	return _u
}

// AddTasksCompleted adds value to the "tasks_completed" field.
func (_u *WeeklyReportUpdateOne) AddTasksCompleted(v int) *WeeklyReportUpdateOne {
	_u.mutation.AddTasksCompleted(v)
	return _u
}

// SetAverageScore sets the "average_score" field.
func (_u *WeeklyReportUpdateOne) SetAverageScore(v float64) *WeeklyReportUpdateOne {
	_u.mutation.ResetAverageScore()
	_u.mutation.SetAverageScore(v)
	return _u
}

// SetNillableAverageScore sets the "average_score" field if the given value is not nil.
func (_u *WeeklyReportUpdateOne) SetNillableAverageScore(v *float64) *WeeklyReportUpdateOne {
	if v != nil {
		_u.SetAverageScore(*v)
	}
	return _u
}

// AddAverageScore adds value to the "average_score" field.
func (_u *WeeklyReportUpdateOne) AddAverageScore(v float64) *WeeklyReportUpdateOne {
	_u.mutation.AddAverageScore(v)
	return _u
}

// SetMostImproved sets the "most_improved" field.
func (_u *WeeklyReportUpdateOne) SetMostImproved(v string) *WeeklyReportUpdateOne {
	_u.mutation.SetMostImproved(v)
	return _u
}

// SetNillableMostImproved sets the "most_improved" field if the given value is not nil.
func (_u *WeeklyReportUpdateOne) SetNillableMostImproved(v *string) *WeeklyReportUpdateOne {
	if v != nil {
		_u.SetMostImproved(*v)
	}
	return _u
}

// SetNeedsWork sets the "needs_work" field.
func (_u *WeeklyReportUpdateOne) SetNeedsWork(v string) *WeeklyReportUpdateOne {
	_u.mutation.SetNeedsWork(v)
	return _u
}

// SetNillableNeedsWork sets the "needs_work" field if the given value is not nil.
func (_u *WeeklyReportUpdateOne) SetNillableNeedsWork(v *string) *WeeklyReportUpdateOne {
	if v != nil {
		_u.SetNeedsWork(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *WeeklyReportUpdateOne) SetSummary(v string) *WeeklyReportUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *WeeklyReportUpdateOne) SetNillableSummary(v *string) *WeeklyReportUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetInsights sets the "insights" field.
func (_u *WeeklyReportUpdateOne) SetInsights(v map[string]string) *WeeklyReportUpdateOne {
	_u.mutation.SetInsights(v)
	return _u
}

// ClearInsights clears the value of the "insights" field.
func (_u *WeeklyReportUpdateOne) ClearInsights() *WeeklyReportUpdateOne {
	_u.mutation.ClearInsights()
	return _u
}

// SetSuggestions sets the "suggestions" field.
func (_u *WeeklyReportUpdateOne) SetSuggestions(v []string) *WeeklyReportUpdateOne {
	_u.mutation.SetSuggestions(v)
	return _u
}

// AppendSuggestions appends value to the "suggestions" field.
func (_u *WeeklyReportUpdateOne) AppendSuggestions(v []string) *WeeklyReportUpdateOne {
	_u.mutation.AppendSuggestions(v)
	return _u
}

// ClearSuggestions clears the value of the "suggestions" field.
func (_u *WeeklyReportUpdateOne) ClearSuggestions() *WeeklyReportUpdateOne {
	_u.mutation.ClearSuggestions()
	return _u
}

// SetRecommendedGames sets the "recommended_games" field.
func (_u *WeeklyReportUpdateOne) SetRecommendedGames(v []string) *WeeklyReportUpdateOne {
	_u.mutation.SetRecommendedGames(v)
	return _u
}

// AppendRecommendedGames appends value to the "recommended_games" field.
func (_u *WeeklyReportUpdateOne) AppendRecommendedGames(v []string) *WeeklyReportUpdateOne {
	_u.mutation.AppendRecommendedGames(v)
	return _u
}

// ClearRecommendedGames clears the value of the "recommended_games" field.
func (_u *WeeklyReportUpdateOne) ClearRecommendedGames() *WeeklyReportUpdateOne {
	_u.mutation.ClearRecommendedGames()
	return _u
}

// SetChild sets the "child" edge to the Child entity.
func (_u *WeeklyReportUpdateOne) SetChild(v *Child) *WeeklyReportUpdateOne {
	return _u.SetChildID(v.ID)
}

// Mutation returns the WeeklyReportMutation object of the builder.
func (_u *WeeklyReportUpdateOne) Mutation() *WeeklyReportMutation {
	return _u.mutation
}

// ClearChild clears the "child" edge to the Child entity.
func (_u *WeeklyReportUpdateOne) ClearChild() *WeeklyReportUpdateOne {
	_u.mutation.ClearChild()
	return _u
}

// Where appends a list predicates to the WeeklyReportUpdate builder.
func (_u *WeeklyReportUpdateOne) Where(ps ...predicate.WeeklyReport) *WeeklyReportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WeeklyReportUpdateOne) Select(field string, fields ...string) *WeeklyReportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WeeklyReport entity.
func (_u *WeeklyReportUpdateOne) Save(ctx context.Context) (*WeeklyReport, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WeeklyReportUpdateOne) SaveX(ctx context.Context) *WeeklyReport {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WeeklyReportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WeeklyReportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WeeklyReportUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := weeklyreport.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WeeklyReportUpdateOne) check() error {
	if _u.mutation.ChildCleared() && len(_u.mutation.ChildIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WeeklyReport.child"`)
	}
	return nil
}

func (_u *WeeklyReportUpdateOne) sqlSave(ctx context.Context) (_node *WeeklyReport, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(weeklyreport.Table, weeklyreport.Columns, sqlgraph.NewFieldSpec(weeklyreport.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WeeklyReport.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, weeklyreport.FieldID)
		for _, f := range fields {
			if !weeklyreport.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != weeklyreport.FieldID {
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
		_spec.SetField(weeklyreport.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.WeekStart(); ok {
		_spec.SetField(weeklyreport.FieldWeekStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.WeekEnd(); ok {
		_spec.SetField(weeklyreport.FieldWeekEnd, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TasksCompleted(); ok {
		_spec.SetField(weeklyreport.FieldTasksCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTasksCompleted(); ok {
		_spec.AddField(weeklyreport.FieldTasksCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AverageScore(); ok {
		_spec.SetField(weeklyreport.FieldAverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageScore(); ok {
		_spec.AddField(weeklyreport.FieldAverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MostImproved(); ok {
		_spec.SetField(weeklyreport.FieldMostImproved, field.TypeString, value)
	}
	if value, ok := _u.mutation.NeedsWork(); ok {
		_spec.SetField(weeklyreport.FieldNeedsWork, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(weeklyreport.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Insights(); ok {
		_spec.SetField(weeklyreport.FieldInsights, field.TypeJSON, value)
	}
	if _u.mutation.InsightsCleared() {
		_spec.ClearField(weeklyreport.FieldInsights, field.TypeJSON)
	}
	if value, ok := _u.mutation.Suggestions(); ok {
		_spec.SetField(weeklyreport.FieldSuggestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSuggestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, weeklyreport.FieldSuggestions, value)
		})
	}
	if _u.mutation.SuggestionsCleared() {
		_spec.ClearField(weeklyreport.FieldSuggestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.RecommendedGames(); ok {
		_spec.SetField(weeklyreport.FieldRecommendedGames, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecommendedGames(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, weeklyreport.FieldRecommendedGames, value)
		})
	}
	if _u.mutation.RecommendedGamesCleared() {
		_spec.ClearField(weeklyreport.FieldRecommendedGames, field.TypeJSON)
	}
	if _u.mutation.ChildCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &WeeklyReport{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{weeklyreport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
