// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/budai/ent/cocreationcontribution"
	"github.com/abhisek/budai/ent/cocreationtheme"
	"github.com/abhisek/budai/ent/predicate"
	"github.com/google/uuid"
)

// CoCreationThemeQuery is the builder for querying CoCreationTheme entities.
type CoCreationThemeQuery struct {
	config
	ctx               *QueryContext
	order             []cocreationtheme.OrderOption
	inters            []Interceptor
	predicates        []predicate.CoCreationTheme
	withContributions *CoCreationContributionQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CoCreationThemeQuery builder.
func (_q *CoCreationThemeQuery) Where(ps ...predicate.CoCreationTheme) *CoCreationThemeQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *CoCreationThemeQuery) Limit(limit int) *CoCreationThemeQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *CoCreationThemeQuery) Offset(offset int) *CoCreationThemeQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *CoCreationThemeQuery) Unique(unique bool) *CoCreationThemeQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *CoCreationThemeQuery) Order(o ...cocreationtheme.OrderOption) *CoCreationThemeQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryContributions chains the current query on the "contributions" edge.
func (_q *CoCreationThemeQuery) QueryContributions() *CoCreationContributionQuery {
	query := (&CoCreationContributionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(cocreationtheme.Table, cocreationtheme.FieldID, selector),
			sqlgraph.To(cocreationcontribution.Table, cocreationcontribution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, cocreationtheme.ContributionsTable, cocreationtheme.ContributionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first CoCreationTheme entity from the query.
// Returns a *NotFoundError when no CoCreationTheme was found.
func (_q *CoCreationThemeQuery) First(ctx context.Context) (*CoCreationTheme, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{cocreationtheme.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *CoCreationThemeQuery) FirstX(ctx context.Context) *CoCreationTheme {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CoCreationTheme ID from the query.
// Returns a *NotFoundError when no CoCreationTheme ID was found.
func (_q *CoCreationThemeQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{cocreationtheme.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *CoCreationThemeQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CoCreationTheme entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CoCreationTheme entity is found.
// Returns a *NotFoundError when no CoCreationTheme entities are found.
func (_q *CoCreationThemeQuery) Only(ctx context.Context) (*CoCreationTheme, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{cocreationtheme.Label}
	default:
		return nil, &NotSingularError{cocreationtheme.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *CoCreationThemeQuery) OnlyX(ctx context.Context) *CoCreationTheme {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CoCreationTheme ID in the query.
// Returns a *NotSingularError when more than one CoCreationTheme ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *CoCreationThemeQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{cocreationtheme.Label}
	default:
		err = &NotSingularError{cocreationtheme.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *CoCreationThemeQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CoCreationThemes.
func (_q *CoCreationThemeQuery) All(ctx context.Context) ([]*CoCreationTheme, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CoCreationTheme, *CoCreationThemeQuery]()
	return withInterceptors[[]*CoCreationTheme](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *CoCreationThemeQuery) AllX(ctx context.Context) []*CoCreationTheme {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CoCreationTheme IDs.
func (_q *CoCreationThemeQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(cocreationtheme.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *CoCreationThemeQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *CoCreationThemeQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*CoCreationThemeQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *CoCreationThemeQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *CoCreationThemeQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *CoCreationThemeQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CoCreationThemeQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *CoCreationThemeQuery) Clone() *CoCreationThemeQuery {
	if _q == nil {
		return nil
	}
	return &CoCreationThemeQuery{
		config:            _q.config,
		ctx:               _q.ctx.Clone(),
		order:             append([]cocreationtheme.OrderOption{}, _q.order...),
		inters:            append([]Interceptor{}, _q.inters...),
		predicates:        append([]predicate.CoCreationTheme{}, _q.predicates...),
		withContributions: _q.withContributions.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithContributions tells the query-builder to eager-load the nodes that are connected to
// the "contributions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CoCreationThemeQuery) WithContributions(opts ...func(*CoCreationContributionQuery)) *CoCreationThemeQuery {
	query := (&CoCreationContributionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withContributions = query
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
//	client.CoCreationTheme.Query().
//		GroupBy(cocreationtheme.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *CoCreationThemeQuery) GroupBy(field string, fields ...string) *CoCreationThemeGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CoCreationThemeGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = cocreationtheme.Label
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
//	client.CoCreationTheme.Query().
//		Select(cocreationtheme.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *CoCreationThemeQuery) Select(fields ...string) *CoCreationThemeSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &CoCreationThemeSelect{CoCreationThemeQuery: _q}
	sbuild.label = cocreationtheme.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CoCreationThemeSelect configured with the given aggregations.
func (_q *CoCreationThemeQuery) Aggregate(fns ...AggregateFunc) *CoCreationThemeSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *CoCreationThemeQuery) prepareQuery(ctx context.Context) error {
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
		if !cocreationtheme.ValidColumn(f) {
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

func (_q *CoCreationThemeQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CoCreationTheme, error) {
	var (
		nodes       = []*CoCreationTheme{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withContributions != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CoCreationTheme).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CoCreationTheme{config: _q.config}
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
	if query := _q.withContributions; query != nil {
		if err := _q.loadContributions(ctx, query, nodes,
			func(n *CoCreationTheme) { n.Edges.Contributions = []*CoCreationContribution{} },
			func(n *CoCreationTheme, e *CoCreationContribution) {
				n.Edges.Contributions = append(n.Edges.Contributions, e)
			}); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *CoCreationThemeQuery) loadContributions(ctx context.Context, query *CoCreationContributionQuery, nodes []*CoCreationTheme, init func(*CoCreationTheme), assign func(*CoCreationTheme, *CoCreationContribution)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*CoCreationTheme)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(cocreationcontribution.FieldThemeID)
	}
	query.Where(predicate.CoCreationContribution(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(cocreationtheme.ContributionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ThemeID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "theme_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *CoCreationThemeQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *CoCreationThemeQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(cocreationtheme.Table, cocreationtheme.Columns, sqlgraph.NewFieldSpec(cocreationtheme.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cocreationtheme.FieldID)
		for i := range fields {
			if fields[i] != cocreationtheme.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *CoCreationThemeQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(cocreationtheme.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = cocreationtheme.Columns
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

// CoCreationThemeGroupBy is the group-by builder for CoCreationTheme entities.
type CoCreationThemeGroupBy struct {
	selector
	build *CoCreationThemeQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *CoCreationThemeGroupBy) Aggregate(fns ...AggregateFunc) *CoCreationThemeGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *CoCreationThemeGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CoCreationThemeQuery, *CoCreationThemeGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *CoCreationThemeGroupBy) sqlScan(ctx context.Context, root *CoCreationThemeQuery, v any) error {
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

// CoCreationThemeSelect is the builder for selecting fields of CoCreationTheme entities.
type CoCreationThemeSelect struct {
	*CoCreationThemeQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *CoCreationThemeSelect) Aggregate(fns ...AggregateFunc) *CoCreationThemeSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *CoCreationThemeSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CoCreationThemeQuery, *CoCreationThemeSelect](ctx, _s.CoCreationThemeQuery, _s, _s.inters, v)
}

func (_s *CoCreationThemeSelect) sqlScan(ctx context.Context, root *CoCreationThemeQuery, v any) error {
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
