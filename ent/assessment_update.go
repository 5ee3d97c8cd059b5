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
	"github.com/abhisek/budai/ent/assessment"
	"github.com/abhisek/budai/ent/child"
	"github.com/abhisek/budai/ent/predicate"
	"github.com/google/uuid"
)

// AssessmentUpdate is the builder for updating Assessment entities.
type AssessmentUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentMutation
}

// Where appends a list predicates to the AssessmentUpdate builder.
func (_u *AssessmentUpdate) Where(ps ...predicate.Assessment) *AssessmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AssessmentUpdate) SetUpdatedAt(v time.Time) *AssessmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetExpressionScore sets the "expression_score" field.
func (_u *AssessmentUpdate) SetExpressionScore(v float64) *AssessmentUpdate {
	_u.mutation.ResetExpressionScore()
	_u.mutation.SetExpressionScore(v)
	return _u
}

// SetNillableExpressionScore sets the "expression_score" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableExpressionScore(v *float64) *AssessmentUpdate {
	if v != nil {
		_u.SetExpressionScore(*v)
	}
	return _u
}

// AddExpressionScore adds value to the "expression_score" field.
func (_u *AssessmentUpdate) AddExpressionScore(v float64) *AssessmentUpdate {
	_u.mutation.AddExpressionScore(v)
	return _u
}

// SetLogicScore sets the "logic_score" field.
func (_u *AssessmentUpdate) SetLogicScore(v float64) *AssessmentUpdate {
	_u.mutation.ResetLogicScore()
	_u.mutation.SetLogicScore(v)
	return _u
}

// SetNillableLogicScore sets the "logic_score" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableLogicScore(v *float64) *AssessmentUpdate {
	if v != nil {
		_u.SetLogicScore(*v)
	}
	return _u
}

// AddLogicScore adds value to the "logic_score" field.
func (_u *AssessmentUpdate) AddLogicScore(v float64) *AssessmentUpdate {
	_u.mutation.AddLogicScore(v)
	return _u
}

// SetExplorationScore sets the "exploration_score" field.
func (_u *AssessmentUpdate) SetExplorationScore(v float64) *AssessmentUpdate {
	_u.mutation.ResetExplorationScore()
	_u.mutation.SetExplorationScore(v)
	return _u
}

// SetNillableExplorationScore sets the "exploration_score" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableExplorationScore(v *float64) *AssessmentUpdate {
	if v != nil {
		_u.SetExplorationScore(*v)
	}
	return _u
}

// AddExplorationScore adds value to the "exploration_score" field.
func (_u *AssessmentUpdate) AddExplorationScore(v float64) *AssessmentUpdate {
	_u.mutation.AddExplorationScore(v)
	return _u
}

// SetCreativityScore sets the "creativity_score" field.
func (_u *AssessmentUpdate) SetCreativityScore(v float64) *AssessmentUpdate {
	_u.mutation.ResetCreativityScore()
	_u.mutation.SetCreativityScore(v)
	return _u
}

// SetNillableCreativityScore sets the "creativity_score" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableCreativityScore(v *float64) *AssessmentUpdate {
	if v != nil {
		_u.SetCreativityScore(*v)
	}
	return _u
}

// AddCreativityScore adds value to the "creativity_score" field.
func (_u *AssessmentUpdate) AddCreativityScore(v float64) *AssessmentUpdate {
	_u.mutation.AddCreativityScore(v)
	return _u
}

// SetHabitScore sets the "habit_score" field.
func (_u *AssessmentUpdate) SetHabitScore(v float64) *AssessmentUpdate {
	_u.mutation.ResetHabitScore()
	_u.mutation.SetHabitScore(v)
	return _u
}

// SetNillableHabitScore sets the "habit_score" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableHabitScore(v *float64) *AssessmentUpdate {
	if v != nil {
		_u.SetHabitScore(*v)
	}
	return _u
}

// AddHabitScore adds value to the "habit_score" field.
func (_u *AssessmentUpdate) AddHabitScore(v float64) *AssessmentUpdate {
	_u.mutation.AddHabitScore(v)
	return _u
}

// SetChildID sets the "child_id" field.
func (_u *AssessmentUpdate) SetChildID(v uuid.UUID) *AssessmentUpdate {
	_u.mutation.SetChildID(v)
	return _u
}

// SetNillableChildID sets the "child_id" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableChildID(v *uuid.UUID) *AssessmentUpdate {
	if v != nil {
		_u.SetChildID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *AssessmentUpdate) SetKind(v assessment.Kind) *AssessmentUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableKind(v *assessment.Kind) *AssessmentUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetResponses sets the "responses" field.
func (_u *AssessmentUpdate) SetResponses(v []string) *AssessmentUpdate {
	_u.mutation.SetResponses(v)
	return _u
}

// AppendResponses appends value to the "responses" field.
func (_u *AssessmentUpdate) AppendResponses(v []string) *AssessmentUpdate {
	_u.mutation.AppendResponses(v)
	return _u
}

// SetAnalysis sets the "analysis" field.
func (_u *AssessmentUpdate) SetAnalysis(v string) *AssessmentUpdate {
	_u.mutation.SetAnalysis(v)
	return _u
}

// SetNillableAnalysis sets the "analysis" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableAnalysis(v *string) *AssessmentUpdate {
	if v != nil {
		_u.SetAnalysis(*v)
	}
	return _u
}

// SetSuggestions sets the "suggestions" field.
func (_u *AssessmentUpdate) SetSuggestions(v []string) *AssessmentUpdate {
	_u.mutation.SetSuggestions(v)
	return _u
}

// AppendSuggestions appends value to the "suggestions" field.
func (_u *AssessmentUpdate) AppendSuggestions(v []string) *AssessmentUpdate {
	_u.mutation.AppendSuggestions(v)
	return _u
}

// ClearSuggestions clears the value of the "suggestions" field.
func (_u *AssessmentUpdate) ClearSuggestions() *AssessmentUpdate {
	_u.mutation.ClearSuggestions()
	return _u
}

// SetChild sets the "child" edge to the Child entity.
func (_u *AssessmentUpdate) SetChild(v *Child) *AssessmentUpdate {
	return _u.SetChildID(v.ID)
}

// Mutation returns the AssessmentMutation object of the builder.
func (_u *AssessmentUpdate) Mutation() *AssessmentMutation {
	return _u.mutation
}

// ClearChild clears the "child" edge to the Child entity.
func (_u *AssessmentUpdate) ClearChild() *AssessmentUpdate {
	_u.mutation.ClearChild()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AssessmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := assessment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := assessment.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Assessment.kind": %w`, err)}
		}
	}
	if _u.mutation.ChildCleared() && len(_u.mutation.ChildIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Assessment.child"`)
	}
	return nil
}

func (_u *AssessmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessment.Table, assessment.Columns, sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(assessment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpressionScore(); ok {
		_spec.SetField(assessment.FieldExpressionScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExpressionScore(); ok {
		_spec.AddField(assessment.FieldExpressionScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LogicScore(); ok {
		_spec.SetField(assessment.FieldLogicScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLogicScore(); ok {
		_spec.AddField(assessment.FieldLogicScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExplorationScore(); ok {
		_spec.SetField(assessment.FieldExplorationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExplorationScore(); ok {
		_spec.AddField(assessment.FieldExplorationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreativityScore(); ok {
		_spec.SetField(assessment.FieldCreativityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCreativityScore(); ok {
		_spec.AddField(assessment.FieldCreativityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.HabitScore(); ok {
		_spec.SetField(assessment.FieldHabitScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHabitScore(); ok {
		_spec.AddField(assessment.FieldHabitScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(assessment.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Responses(); ok {
		_spec.SetField(assessment.FieldResponses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResponses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assessment.FieldResponses, value)
		})
	}
	if value, ok := _u.mutation.Analysis(); ok {
		_spec.SetField(assessment.FieldAnalysis, field.TypeString, value)
	}
	if value, ok := _u.mutation.Suggestions(); ok {
		_spec.SetField(assessment.FieldSuggestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSuggestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assessment.FieldSuggestions, value)
		})
	}
	if _u.mutation.SuggestionsCleared() {
		_spec.ClearField(assessment.FieldSuggestions, field.TypeJSON)
	}
	if _u.mutation.ChildCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assessment.ChildTable,
			Columns: []string{assessment.ChildColumn},
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
			Table:   assessment.ChildTable,
			Columns: []string{assessment.ChildColumn},
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
			err = &NotFoundError{assessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentUpdateOne is the builder for updating a single Assessment entity.
type AssessmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AssessmentUpdateOne) SetUpdatedAt(v time.Time) *AssessmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetExpressionScore sets the "expression_score" field.
func (_u *AssessmentUpdateOne) SetExpressionScore(v float64) *AssessmentUpdateOne {
	_u.mutation.ResetExpressionScore()
	_u.mutation.SetExpressionScore(v)
	return _u
}

// SetNillableExpressionScore sets the "expression_score" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableExpressionScore(v *float64) *AssessmentUpdateOne {
	if v != nil {
		_u.SetExpressionScore(*v)
	}
	return _u
}

// AddExpressionScore adds value to the "expression_score" field.
func (_u *AssessmentUpdateOne) AddExpressionScore(v float64) *AssessmentUpdateOne {
	_u.mutation.AddExpressionScore(v)
	return _u
}

// SetLogicScore sets the "logic_score" field.
func (_u *AssessmentUpdateOne) SetLogicScore(v float64) *AssessmentUpdateOne {
	_u.mutation.ResetLogicScore()
	_u.mutation.SetLogicScore(v)
	return _u
}

// SetNillableLogicScore sets the "logic_score" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableLogicScore(v *float64) *AssessmentUpdateOne {
	if v != nil {
		_u.SetLogicScore(*v)
	}
	return _u
}

// AddLogicScore adds value to the "logic_score" field.
func (_u *AssessmentUpdateOne) AddLogicScore(v float64) *AssessmentUpdateOne {
	_u.mutation.AddLogicScore(v)
	return _u
}

// SetExplorationScore sets the "exploration_score" field.
func (_u *AssessmentUpdateOne) SetExplorationScore(v float64) *AssessmentUpdateOne {
	_u.mutation.ResetExplorationScore()
	_u.mutation.SetExplorationScore(v)
	return _u
}

// SetNillableExplorationScore sets the "exploration_score" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableExplorationScore(v *float64) *AssessmentUpdateOne {
	if v != nil {
		_u.SetExplorationScore(*v)
	}
	return _u
}

// AddExplorationScore adds value to the "exploration_score" field.
func (_u *AssessmentUpdateOne) AddExplorationScore(v float64) *AssessmentUpdateOne {
	_u.mutation.AddExplorationScore(v)
	return _u
}

// SetCreativityScore sets the "creativity_score" field.
func (_u *AssessmentUpdateOne) SetCreativityScore(v float64) *AssessmentUpdateOne {
	_u.mutation.ResetCreativityScore()
	_u.mutation.SetCreativityScore(v)
	return _u
}

// SetNillableCreativityScore sets the "creativity_score" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableCreativityScore(v *float64) *AssessmentUpdateOne {
	if v != nil {
		_u.SetCreativityScore(*v)
	}
	return _u
}

// AddCreativityScore adds value to the "creativity_score" field.
func (_u *AssessmentUpdateOne) AddCreativityScore(v float64) *AssessmentUpdateOne {
	_u.mutation.AddCreativityScore(v)
	return _u
}

// SetHabitScore sets the "habit_score" field.
func (_u *AssessmentUpdateOne) SetHabitScore(v float64) *AssessmentUpdateOne {
	_u.mutation.ResetHabitScore()
	_u.mutation.SetHabitScore(v)
	return _u
}

// SetNillableHabitScore sets the "habit_score" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableHabitScore(v *float64) *AssessmentUpdateOne {
	if v != nil {
		_u.SetHabitScore(*v)
	}
	return _u
}

// AddHabitScore adds value to the "habit_score" field.
func (_u *AssessmentUpdateOne) AddHabitScore(v float64) *AssessmentUpdateOne {
	_u.mutation.AddHabitScore(v)
	return _u
}

// SetChildID sets the "child_id" field.
func (_u *AssessmentUpdateOne) SetChildID(v uuid.UUID) *AssessmentUpdateOne {
	_u.mutation.SetChildID(v)
	return _u
}

// SetNillableChildID sets the "child_id" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableChildID(v *uuid.UUID) *AssessmentUpdateOne {
	if v != nil {
		_u.SetChildID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *AssessmentUpdateOne) SetKind(v assessment.Kind) *AssessmentUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableKind(v *assessment.Kind) *AssessmentUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetResponses sets the "responses" field.
func (_u *AssessmentUpdateOne) SetResponses(v []string) *AssessmentUpdateOne {
	_u.mutation.SetResponses(v)
	return _u
}

// AppendResponses appends value to the "responses" field.
func (_u *AssessmentUpdateOne) AppendResponses(v []string) *AssessmentUpdateOne {
	_u.mutation.AppendResponses(v)
	return _u
}

// SetAnalysis sets the "analysis" field.
func (_u *AssessmentUpdateOne) SetAnalysis(v string) *AssessmentUpdateOne {
	_u.mutation.SetAnalysis(v)
	return _u
}

// SetNillableAnalysis sets the "analysis" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableAnalysis(v *string) *AssessmentUpdateOne {
	if v != nil {
		_u.SetAnalysis(*v)
	}
	return _u
}

// SetSuggestions sets the "suggestions" field.
func (_u *AssessmentUpdateOne) SetSuggestions(v []string) *AssessmentUpdateOne {
	_u.mutation.SetSuggestions(v)
	return _u
}

// AppendSuggestions appends value to the "suggestions" field.
func (_u *AssessmentUpdateOne) AppendSuggestions(v []string) *AssessmentUpdateOne {
	_u.mutation.AppendSuggestions(v)
	return _u
}

// ClearSuggestions clears the value of the "suggestions" field.
func (_u *AssessmentUpdateOne) ClearSuggestions() *AssessmentUpdateOne {
	_u.mutation.ClearSuggestions()
	return _u
}

// SetChild sets the "child" edge to the Child entity.
func (_u *AssessmentUpdateOne) SetChild(v *Child) *AssessmentUpdateOne {
	return _u.SetChildID(v.ID)
}

// Mutation returns the AssessmentMutation object of the builder.
func (_u *AssessmentUpdateOne) Mutation() *AssessmentMutation {
	return _u.mutation
}

// ClearChild clears the "child" edge to the Child entity.
func (_u *AssessmentUpdateOne) ClearChild() *AssessmentUpdateOne {
	_u.mutation.ClearChild()
	return _u
}

// Where appends a list predicates to the AssessmentUpdate builder.
func (_u *AssessmentUpdateOne) Where(ps ...predicate.Assessment) *AssessmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentUpdateOne) Select(field string, fields ...string) *AssessmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Assessment entity.
func (_u *AssessmentUpdateOne) Save(ctx context.Context) (*Assessment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentUpdateOne) SaveX(ctx context.Context) *Assessment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AssessmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := assessment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := assessment.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Assessment.kind": %w`, err)}
		}
	}
	if _u.mutation.ChildCleared() && len(_u.mutation.ChildIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Assessment.child"`)
	}
	return nil
}

func (_u *AssessmentUpdateOne) sqlSave(ctx context.Context) (_node *Assessment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessment.Table, assessment.Columns, sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Assessment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessment.FieldID)
		for _, f := range fields {
			if !assessment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessment.FieldID {
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
		_spec.SetField(assessment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpressionScore(); ok {
		_spec.SetField(assessment.FieldExpressionScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExpressionScore(); ok {
		_spec.AddField(assessment.FieldExpressionScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LogicScore(); ok {
		_spec.SetField(assessment.FieldLogicScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLogicScore(); ok {
		_spec.AddField(assessment.FieldLogicScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExplorationScore(); ok {
		_spec.SetField(assessment.FieldExplorationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExplorationScore(); ok {
		_spec.AddField(assessment.FieldExplorationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreativityScore(); ok {
		_spec.SetField(assessment.FieldCreativityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCreativityScore(); ok {
		_spec.AddField(assessment.FieldCreativityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.HabitScore(); ok {
		_spec.SetField(assessment.FieldHabitScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHabitScore(); ok {
		_spec.AddField(assessment.FieldHabitScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(assessment.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Responses(); ok {
		_spec.SetField(assessment.FieldResponses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResponses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assessment.FieldResponses, value)
		})
	}
	if value, ok := _u.mutation.Analysis(); ok {
		_spec.SetField(assessment.FieldAnalysis, field.TypeString, value)
	}
	if value, ok := _u.mutation.Suggestions(); ok {
		_spec.SetField(assessment.FieldSuggestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSuggestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assessment.FieldSuggestions, value)
		})
	}
	if _u.mutation.SuggestionsCleared() {
		_spec.ClearField(assessment.FieldSuggestions, field.TypeJSON)
	}
	if _u.mutation.ChildCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assessment.ChildTable,
			Columns: []string{assessment.ChildColumn},
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
			Table:   assessment.ChildTable,
			Columns: []string{assessment.ChildColumn},
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
	_node = &Assessment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
