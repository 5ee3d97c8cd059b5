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
	"github.com/abhisek/budai/ent/cocreationcontribution"
	"github.com/abhisek/budai/ent/cocreationtheme"
	"github.com/abhisek/budai/ent/predicate"
	"github.com/google/uuid"
)

// CoCreationThemeUpdate is the builder for updating CoCreationTheme entities.
type CoCreationThemeUpdate struct {
	config
	hooks    []Hook
	mutation *CoCreationThemeMutation
}

// Where appends a list predicates to the CoCreationThemeUpdate builder.
func (_u *CoCreationThemeUpdate) Where(ps ...predicate.CoCreationTheme) *CoCreationThemeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CoCreationThemeUpdate) SetUpdatedAt(v time.Time) *CoCreationThemeUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *CoCreationThemeUpdate) SetTitle(v string) *CoCreationThemeUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CoCreationThemeUpdate) SetNillableTitle(v *string) *CoCreationThemeUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CoCreationThemeUpdate) SetDescription(v string) *CoCreationThemeUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CoCreationThemeUpdate) SetNillableDescription(v *string) *CoCreationThemeUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *CoCreationThemeUpdate) SetPrompt(v string) *CoCreationThemeUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *CoCreationThemeUpdate) SetNillablePrompt(v *string) *CoCreationThemeUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *CoCreationThemeUpdate) SetStartDate(v time.Time) *CoCreationThemeUpdate {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *CoCreationThemeUpdate) SetNillableStartDate(v *time.Time) *CoCreationThemeUpdate {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *CoCreationThemeUpdate) SetEndDate(v time.Time) *CoCreationThemeUpdate {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *CoCreationThemeUpdate) SetNillableEndDate(v *time.Time) *CoCreationThemeUpdate {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// AddContributionIDs adds the "contributions" edge to the CoCreationContribution entity by IDs.
func (_u *CoCreationThemeUpdate) AddContributionIDs(ids ...uuid.UUID) *CoCreationThemeUpdate {
	_u.mutation.AddContributionIDs(ids...)
	return _u
}

// AddContributions adds the "contributions" edges to the CoCreationContribution entity.
func (_u *CoCreationThemeUpdate) AddContributions(v ...*CoCreationContribution) *CoCreationThemeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddContributionIDs(ids...)
}

// Mutation returns the CoCreationThemeMutation object of the builder.
func (_u *CoCreationThemeUpdate) Mutation() *CoCreationThemeMutation {
	return _u.mutation
}

// ClearContributions clears all "contributions" edges to the CoCreationContribution entity.
func (_u *CoCreationThemeUpdate) ClearContributions() *CoCreationThemeUpdate {
	_u.mutation.ClearContributions()
	return _u
}

// RemoveContributionIDs removes the "contributions" edge to CoCreationContribution entities by IDs.
func (_u *CoCreationThemeUpdate) RemoveContributionIDs(ids ...uuid.UUID) *CoCreationThemeUpdate {
	_u.mutation.RemoveContributionIDs(ids...)
	return _u
}

// RemoveContributions removes "contributions" edges to CoCreationContribution entities.
func (_u *CoCreationThemeUpdate) RemoveContributions(v ...*CoCreationContribution) *CoCreationThemeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveContributionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CoCreationThemeUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CoCreationThemeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CoCreationThemeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CoCreationThemeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CoCreationThemeUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := cocreationtheme.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CoCreationThemeUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := cocreationtheme.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "CoCreationTheme.title": %w`, err)}
		}
	}
	return nil
}

func (_u *CoCreationThemeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cocreationtheme.Table, cocreationtheme.Columns, sqlgraph.NewFieldSpec(cocreationtheme.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(cocreationtheme.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(cocreationtheme.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(cocreationtheme.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(cocreationtheme.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(cocreationtheme.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(cocreationtheme.FieldEndDate, field.TypeTime, value)
	}
	if _u.mutation.ContributionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cocreationtheme.ContributionsTable,
			Columns: []string{cocreationtheme.ContributionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cocreationcontribution.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedContributionsIDs(); len(nodes) > 0 && !_u.mutation.ContributionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cocreationtheme.ContributionsTable,
			Columns: []string{cocreationtheme.ContributionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cocreationcontribution.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContributionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cocreationtheme.ContributionsTable,
			Columns: []string{cocreationtheme.ContributionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cocreationcontribution.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cocreationtheme.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CoCreationThemeUpdateOne is the builder for updating a single CoCreationTheme entity.
type CoCreationThemeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CoCreationThemeMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CoCreationThemeUpdateOne) SetUpdatedAt(v time.Time) *CoCreationThemeUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *CoCreationThemeUpdateOne) SetTitle(v string) *CoCreationThemeUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CoCreationThemeUpdateOne) SetNillableTitle(v *string) *CoCreationThemeUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CoCreationThemeUpdateOne) SetDescription(v string) *CoCreationThemeUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CoCreationThemeUpdateOne) SetNillableDescription(v *string) *CoCreationThemeUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *CoCreationThemeUpdateOne) SetPrompt(v string) *CoCreationThemeUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *CoCreationThemeUpdateOne) SetNillablePrompt(v *string) *CoCreationThemeUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *CoCreationThemeUpdateOne) SetStartDate(v time.Time) *CoCreationThemeUpdateOne {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *CoCreationThemeUpdateOne) SetNillableStartDate(v *time.Time) *CoCreationThemeUpdateOne {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *CoCreationThemeUpdateOne) SetEndDate(v time.Time) *CoCreationThemeUpdateOne {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *CoCreationThemeUpdateOne) SetNillableEndDate(v *time.Time) *CoCreationThemeUpdateOne {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// AddContributionIDs adds the "contributions" edge to the CoCreationContribution entity by IDs.
func (_u *CoCreationThemeUpdateOne) AddContributionIDs(ids ...uuid.UUID) *CoCreationThemeUpdateOne {
	_u.mutation.AddContributionIDs(ids...)
	return _u
}

// AddContributions adds the "contributions" edges to the CoCreationContribution entity.
func (_u *CoCreationThemeUpdateOne) AddContributions(v ...*CoCreationContribution) *CoCreationThemeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddContributionIDs(ids...)
}

// Mutation returns the CoCreationThemeMutation object of the builder.
func (_u *CoCreationThemeUpdateOne) Mutation() *CoCreationThemeMutation {
	return _u.mutation
}

// ClearContributions clears all "contributions" edges to the CoCreationContribution entity.
func (_u *CoCreationThemeUpdateOne) ClearContributions() *CoCreationThemeUpdateOne {
	_u.mutation.ClearContributions()
	return _u
}

// RemoveContributionIDs removes the "contributions" edge to CoCreationContribution entities by IDs.
func (_u *CoCreationThemeUpdateOne) RemoveContributionIDs(ids ...uuid.UUID) *CoCreationThemeUpdateOne {
	_u.mutation.RemoveContributionIDs(ids...)
	return _u
}

// RemoveContributions removes "contributions" edges to CoCreationContribution entities.
func (_u *CoCreationThemeUpdateOne) RemoveContributions(v ...*CoCreationContribution) *CoCreationThemeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveContributionIDs(ids...)
}

// Where appends a list predicates to the CoCreationThemeUpdate builder.
func (_u *CoCreationThemeUpdateOne) Where(ps ...predicate.CoCreationTheme) *CoCreationThemeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CoCreationThemeUpdateOne) Select(field string, fields ...string) *CoCreationThemeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CoCreationTheme entity.
func (_u *CoCreationThemeUpdateOne) Save(ctx context.Context) (*CoCreationTheme, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CoCreationThemeUpdateOne) SaveX(ctx context.Context) *CoCreationTheme {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CoCreationThemeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CoCreationThemeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CoCreationThemeUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := cocreationtheme.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CoCreationThemeUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := cocreationtheme.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "CoCreationTheme.title": %w`, err)}
		}
	}
	return nil
}

func (_u *CoCreationThemeUpdateOne) sqlSave(ctx context.Context) (_node *CoCreationTheme, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cocreationtheme.Table, cocreationtheme.Columns, sqlgraph.NewFieldSpec(cocreationtheme.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CoCreationTheme.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cocreationtheme.FieldID)
		for _, f := range fields {
			if !cocreationtheme.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cocreationtheme.FieldID {
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
		_spec.SetField(cocreationtheme.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(cocreationtheme.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(cocreationtheme.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(cocreationtheme.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(cocreationtheme.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(cocreationtheme.FieldEndDate, field.TypeTime, value)
	}
	if _u.mutation.ContributionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cocreationtheme.ContributionsTable,
			Columns: []string{cocreationtheme.ContributionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cocreationcontribution.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedContributionsIDs(); len(nodes) > 0 && !_u.mutation.ContributionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cocreationtheme.ContributionsTable,
			Columns: []string{cocreationtheme.ContributionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cocreationcontribution.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContributionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cocreationtheme.ContributionsTable,
			Columns: []string{cocreationtheme.ContributionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cocreationcontribution.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CoCreationTheme{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cocreationtheme.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
