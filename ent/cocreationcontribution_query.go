// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/budai/ent/child"
	"github.com/abhisek/budai/ent/cocreationcontribution"
	"github.com/abhisek/budai/ent/cocreationtheme"
	"github.com/abhisek/budai/ent/predicate"
	"github.com/google/uuid"
)

// CoCreationContributionQuery is the builder for querying CoCreationContribution entities.
type CoCreationContributionQuery struct {
	config
	ctx        *QueryContext
	order      []cocreationcontribution.OrderOption
	inters     []Interceptor
	predicates []predicate.CoCreationContribution
	withChild  *ChildQuery
	withTheme  *CoCreationThemeQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CoCreationContributionQuery builder.
func (_q *CoCreationContributionQuery) Where(ps ...predicate.CoCreationContribution) *CoCreationContributionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *CoCreationContributionQuery) Limit(limit int) *CoCreationContributionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *CoCreationContributionQuery) Offset(offset int) *CoCreationContributionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *CoCreationContributionQuery) Unique(unique bool) *CoCreationContributionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *CoCreationContributionQuery) Order(o ...cocreationcontribution.OrderOption) *CoCreationContributionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryChild chains the current query on the "child" edge.
func (_q *CoCreationContributionQuery) QueryChild() *ChildQuery {
	query := (&ChildClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(cocreationcontribution.Table, cocreationcontribution.FieldID, selector),
			sqlgraph.To(child.Table, child.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, cocreationcontribution.ChildTable, cocreationcontribution.ChildColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTheme chains the current query on the "theme" edge.
func (_q *CoCreationContributionQuery) QueryTheme() *CoCreationThemeQuery {
	query := (&CoCreationThemeClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(cocreationcontribution.Table, cocreationcontribution.FieldID, selector),
			sqlgraph.To(cocreationtheme.Table, cocreationtheme.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, cocreationcontribution.ThemeTable, cocreationcontribution.ThemeColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first CoCreationContribution entity from the query.
// Returns a *NotFoundError when no CoCreationContribution was found.
func (_q *CoCreationContributionQuery) First(ctx context.Context) (*CoCreationContribution, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{cocreationcontribution.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *CoCreationContributionQuery) FirstX(ctx context.Context) *CoCreationContribution {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CoCreationContribution ID from the query.
// Returns a *NotFoundError when no CoCreationContribution ID was found.
func (_q *CoCreationContributionQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{cocreationcontribution.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *CoCreationContributionQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CoCreationContribution entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CoCreationContribution entity is found.
// Returns a *NotFoundError when no CoCreationContribution entities are found.
func (_q *CoCreationContributionQuery) Only(ctx context.Context) (*CoCreationContribution, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{cocreationcontribution.Label}
	default:
		return nil, &NotSingularError{cocreationcontribution.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *CoCreationContributionQuery) OnlyX(ctx context.Context) *CoCreationContribution {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CoCreationContribution ID in the query.
// Returns a *NotSingularError when more than one CoCreationContribution ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *CoCreationContributionQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{cocreationcontribution.Label}
	default:
		err = &NotSingularError{cocreationcontribution.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *CoCreationContributionQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CoCreationContributions.
func (_q *CoCreationContributionQuery) All(ctx context.Context) ([]*CoCreationContribution, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CoCreationContribution, *CoCreationContributionQuery]()
	return withInterceptors[[]*CoCreationContribution](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *CoCreationContributionQuery) AllX(ctx context.Context) []*CoCreationContribution {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CoCreationContribution IDs.
func (_q *CoCreationContributionQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(cocreationcontribution.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *CoCreationContributionQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *CoCreationContributionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*CoCreationContributionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *CoCreationContributionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *CoCreationContributionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *CoCreationContributionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CoCreationContributionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *CoCreationContributionQuery) Clone() *CoCreationContributionQuery {
	if _q == nil {
		return nil
	}
	return &CoCreationContributionQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]cocreationcontribution.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.CoCreationContribution{}, _q.predicates...),
		withChild:  _q.withChild.Clone(),
		withTheme:  _q.withTheme.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithChild tells the query-builder to eager-load the nodes that are connected to
// the "child" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CoCreationContributionQuery) WithChild(opts ...func(*ChildQuery)) *CoCreationContributionQuery {
	query := (&ChildClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withChild = query
	return _q
}

// WithTheme tells the query-builder to eager-load the nodes that are connected to
// the "theme" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CoCreationContributionQuery) WithTheme(opts ...func(*CoCreationThemeQuery)) *CoCreationContributionQuery {
	query := (&CoCreationThemeClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTheme = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.CoCreationContribution.Query().
//		GroupBy(cocreationcontribution.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *CoCreationContributionQuery) GroupBy(field string, fields ...string) *CoCreationContributionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CoCreationContributionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = cocreationcontribution.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.CoCreationContribution.Query().
//		Select(cocreationcontribution.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *CoCreationContributionQuery) Select(fields ...string) *CoCreationContributionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &CoCreationContributionSelect{CoCreationContributionQuery: _q}
	sbuild.label = cocreationcontribution.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CoCreationContributionSelect configured with the given aggregations.
func (_q *CoCreationContributionQuery) Aggregate(fns ...AggregateFunc) *CoCreationContributionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *CoCreationContributionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !cocreationcontribution.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *CoCreationContributionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CoCreationContribution, error) {
	var (
		nodes       = []*CoCreationContribution{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withChild != nil,
			_q.withTheme != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CoCreationContribution).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CoCreationContribution{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withChild; query != nil {
		if err := _q.loadChild(ctx, query, nodes, nil,
			func(n *CoCreationContribution, e *Child) { n.Edges.Child = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTheme; query != nil {
		if err := _q.loadTheme(ctx, query, nodes, nil,
			func(n *CoCreationContribution, e *CoCreationTheme) { n.Edges.Theme = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *CoCreationContributionQuery) loadChild(ctx context.Context, query *ChildQuery, nodes []*CoCreationContribution, init func(*CoCreationContribution), assign func(*CoCreationContribution, *Child)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*CoCreationContribution)
	for i := range nodes {
		fk := nodes[i].ChildID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(child.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "child_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *CoCreationContributionQuery) loadTheme(ctx context.Context, query *CoCreationThemeQuery, nodes []*CoCreationContribution, init func(*CoCreationContribution), assign func(*CoCreationContribution, *CoCreationTheme)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*CoCreationContribution)
	for i := range nodes {
		fk := nodes[i].ThemeID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(cocreationtheme.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "theme_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *CoCreationContributionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *CoCreationContributionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(cocreationcontribution.Table, cocreationcontribution.Columns, sqlgraph.NewFieldSpec(cocreationcontribution.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cocreationcontribution.FieldID)
		for i := range fields {
			if fields[i] != cocreationcontribution.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withChild != nil {
			_spec.Node.AddColumnOnce(cocreationcontribution.FieldChildID)
		}
		if _q.withTheme != nil {
			_spec.Node.AddColumnOnce(cocreationcontribution.FieldThemeID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *CoCreationContributionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(cocreationcontribution.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = cocreationcontribution.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// CoCreationContributionGroupBy is the group-by builder for CoCreationContribution entities.
type CoCreationContributionGroupBy struct {
	selector
	build *CoCreationContributionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *CoCreationContributionGroupBy) Aggregate(fns ...AggregateFunc) *CoCreationContributionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *CoCreationContributionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CoCreationContributionQuery, *CoCreationContributionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *CoCreationContributionGroupBy) sqlScan(ctx context.Context, root *CoCreationContributionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// CoCreationContributionSelect is the builder for selecting fields of CoCreationContribution entities.
type CoCreationContributionSelect struct {
	*CoCreationContributionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *CoCreationContributionSelect) Aggregate(fns ...AggregateFunc) *CoCreationContributionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *CoCreationContributionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CoCreationContributionQuery, *CoCreationContributionSelect](ctx, _s.CoCreationContributionQuery, _s, _s.inters, v)
}

func (_s *CoCreationContributionSelect) sqlScan(ctx context.Context, root *CoCreationContributionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
