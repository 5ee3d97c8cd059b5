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
	"github.com/abhisek/budai/ent/assessment"
	"github.com/abhisek/budai/ent/badgeaward"
	"github.com/abhisek/budai/ent/child"
	"github.com/abhisek/budai/ent/coachsession"
	"github.com/abhisek/budai/ent/cocreationcontribution"
	"github.com/abhisek/budai/ent/growthrecord"
	"github.com/abhisek/budai/ent/predicate"
	"github.com/abhisek/budai/ent/taskrecord"
	"github.com/abhisek/budai/ent/user"
	"github.com/abhisek/budai/ent/weeklyreport"
	"github.com/abhisek/budai/ent/work"
	"github.com/google/uuid"
)

// ChildQuery is the builder for querying Child entities.
type ChildQuery struct {
	config
	ctx               *QueryContext
	order             []child.OrderOption
	inters            []Interceptor
	predicates        []predicate.Child
	withParent        *UserQuery
	withAssessments   *AssessmentQuery
	withTaskRecords   *TaskRecordQuery
	withBadgeAwards   *BadgeAwardQuery
	withContributions *CoCreationContributionQuery
	withWeeklyReports *WeeklyReportQuery
	withGrowthRecords *GrowthRecordQuery
	withWorks         *WorkQuery
	withCoachSessions *CoachSessionQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ChildQuery builder.
func (_q *ChildQuery) Where(ps ...predicate.Child) *ChildQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ChildQuery) Limit(limit int) *ChildQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ChildQuery) Offset(offset int) *ChildQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ChildQuery) Unique(unique bool) *ChildQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ChildQuery) Order(o ...child.OrderOption) *ChildQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryParent chains the current query on the "parent" edge.
func (_q *ChildQuery) QueryParent() *UserQuery {
	query := (&UserClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(child.Table, child.FieldID, selector),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, child.ParentTable, child.ParentColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAssessments chains the current query on the "assessments" edge.
func (_q *ChildQuery) QueryAssessments() *AssessmentQuery {
	query := (&AssessmentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(child.Table, child.FieldID, selector),
			sqlgraph.To(assessment.Table, assessment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, child.AssessmentsTable, child.AssessmentsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTaskRecords chains the current query on the "task_records" edge.
func (_q *ChildQuery) QueryTaskRecords() *TaskRecordQuery {
	query := (&TaskRecordClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(child.Table, child.FieldID, selector),
			sqlgraph.To(taskrecord.Table, taskrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, child.TaskRecordsTable, child.TaskRecordsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryBadgeAwards chains the current query on the "badge_awards" edge.
func (_q *ChildQuery) QueryBadgeAwards() *BadgeAwardQuery {
	query := (&BadgeAwardClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(child.Table, child.FieldID, selector),
			sqlgraph.To(badgeaward.Table, badgeaward.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, child.BadgeAwardsTable, child.BadgeAwardsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryContributions chains the current query on the "contributions" edge.
func (_q *ChildQuery) QueryContributions() *CoCreationContributionQuery {
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
			sqlgraph.From(child.Table, child.FieldID, selector),
			sqlgraph.To(cocreationcontribution.Table, cocreationcontribution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, child.ContributionsTable, child.ContributionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryWeeklyReports chains the current query on the "weekly_reports" edge.
func (_q *ChildQuery) QueryWeeklyReports() *WeeklyReportQuery {
	query := (&WeeklyReportClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(child.Table, child.FieldID, selector),
			sqlgraph.To(weeklyreport.Table, weeklyreport.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, child.WeeklyReportsTable, child.WeeklyReportsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryGrowthRecords chains the current query on the "growth_records" edge.
func (_q *ChildQuery) QueryGrowthRecords() *GrowthRecordQuery {
	query := (&GrowthRecordClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(child.Table, child.FieldID, selector),
			sqlgraph.To(growthrecord.Table, growthrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, child.GrowthRecordsTable, child.GrowthRecordsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryWorks chains the current query on the "works" edge.
func (_q *ChildQuery) QueryWorks() *WorkQuery {
	query := (&WorkClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(child.Table, child.FieldID, selector),
			sqlgraph.To(work.Table, work.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, child.WorksTable, child.WorksColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCoachSessions chains the current query on the "coach_sessions" edge.
func (_q *ChildQuery) QueryCoachSessions() *CoachSessionQuery {
	query := (&CoachSessionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(child.Table, child.FieldID, selector),
			sqlgraph.To(coachsession.Table, coachsession.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, child.CoachSessionsTable, child.CoachSessionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Child entity from the query.
// Returns a *NotFoundError when no Child was found.
func (_q *ChildQuery) First(ctx context.Context) (*Child, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{child.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ChildQuery) FirstX(ctx context.Context) *Child {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Child ID from the query.
// Returns a *NotFoundError when no Child ID was found.
func (_q *ChildQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{child.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ChildQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Child entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Child entity is found.
// Returns a *NotFoundError when no Child entities are found.
func (_q *ChildQuery) Only(ctx context.Context) (*Child, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{child.Label}
	default:
		return nil, &NotSingularError{child.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ChildQuery) OnlyX(ctx context.Context) *Child {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Child ID in the query.
// Returns a *NotSingularError when more than one Child ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ChildQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{child.Label}
	default:
		err = &NotSingularError{child.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ChildQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Childs.
func (_q *ChildQuery) All(ctx context.Context) ([]*Child, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Child, *ChildQuery]()
	return withInterceptors[[]*Child](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ChildQuery) AllX(ctx context.Context) []*Child {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Child IDs.
func (_q *ChildQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(child.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ChildQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ChildQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ChildQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ChildQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ChildQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ChildQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ChildQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ChildQuery) Clone() *ChildQuery {
	if _q == nil {
		return nil
	}
	return &ChildQuery{
		config:            _q.config,
		ctx:               _q.ctx.Clone(),
		order:             append([]child.OrderOption{}, _q.order...),
		inters:            append([]Interceptor{}, _q.inters...),
		predicates:        append([]predicate.Child{}, _q.predicates...),
		withParent:        _q.withParent.Clone(),
		withAssessments:   _q.withAssessments.Clone(),
		withTaskRecords:   _q.withTaskRecords.Clone(),
		withBadgeAwards:   _q.withBadgeAwards.Clone(),
		withContributions: _q.withContributions.Clone(),
		withWeeklyReports: _q.withWeeklyReports.Clone(),
		withGrowthRecords: _q.withGrowthRecords.Clone(),
		withWorks:         _q.withWorks.Clone(),
		withCoachSessions: _q.withCoachSessions.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithParent tells the query-builder to eager-load the nodes that are connected to
// the "parent" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ChildQuery) WithParent(opts ...func(*UserQuery)) *ChildQuery {
	query := (&UserClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withParent = query
	return _q
}

// WithAssessments tells the query-builder to eager-load the nodes that are connected to
// the "assessments" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ChildQuery) WithAssessments(opts ...func(*AssessmentQuery)) *ChildQuery {
	query := (&AssessmentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAssessments = query
	return _q
}

// WithTaskRecords tells the query-builder to eager-load the nodes that are connected to
// the "task_records" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ChildQuery) WithTaskRecords(opts ...func(*TaskRecordQuery)) *ChildQuery {
	query := (&TaskRecordClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTaskRecords = query
	return _q
}

// WithBadgeAwards tells the query-builder to eager-load the nodes that are connected to
// the "badge_awards" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ChildQuery) WithBadgeAwards(opts ...func(*BadgeAwardQuery)) *ChildQuery {
	query := (&BadgeAwardClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withBadgeAwards = query
	return _q
}

// WithContributions tells the query-builder to eager-load the nodes that are connected to
// the "contributions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ChildQuery) WithContributions(opts ...func(*CoCreationContributionQuery)) *ChildQuery {
	query := (&CoCreationContributionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withContributions = query
	return _q
}

// WithWeeklyReports tells the query-builder to eager-load the nodes that are connected to
// the "weekly_reports" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ChildQuery) WithWeeklyReports(opts ...func(*WeeklyReportQuery)) *ChildQuery {
	query := (&WeeklyReportClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withWeeklyReports = query
	return _q
}

// WithGrowthRecords tells the query-builder to eager-load the nodes that are connected to
// the "growth_records" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ChildQuery) WithGrowthRecords(opts ...func(*GrowthRecordQuery)) *ChildQuery {
	query := (&GrowthRecordClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withGrowthRecords = query
	return _q
}

// WithWorks tells the query-builder to eager-load the nodes that are connected to
// the "works" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ChildQuery) WithWorks(opts ...func(*WorkQuery)) *ChildQuery {
	query := (&WorkClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withWorks = query
	return _q
}

// WithCoachSessions tells the query-builder to eager-load the nodes that are connected to
// the "coach_sessions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ChildQuery) WithCoachSessions(opts ...func(*CoachSessionQuery)) *ChildQuery {
	query := (&CoachSessionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCoachSessions = query
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
//	client.Child.Query().
//		GroupBy(child.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ChildQuery) GroupBy(field string, fields ...string) *ChildGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ChildGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = child.Label
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
//	client.Child.Query().
//		Select(child.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *ChildQuery) Select(fields ...string) *ChildSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ChildSelect{ChildQuery: _q}
	sbuild.label = child.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ChildSelect configured with the given aggregations.
func (_q *ChildQuery) Aggregate(fns ...AggregateFunc) *ChildSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ChildQuery) prepareQuery(ctx context.Context) error {
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
		if !child.ValidColumn(f) {
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

func (_q *ChildQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Child, error) {
	var (
		nodes       = []*Child{}
		_spec       = _q.querySpec()
		loadedTypes = [9]bool{
			_q.withParent != nil,
			_q.withAssessments != nil,
			_q.withTaskRecords != nil,
			_q.withBadgeAwards != nil,
			_q.withContributions != nil,
			_q.withWeeklyReports != nil,
			_q.withGrowthRecords != nil,
			_q.withWorks != nil,
			_q.withCoachSessions != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Child).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Child{config: _q.config}
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
	if query := _q.withParent; query != nil {
		if err := _q.loadParent(ctx, query, nodes, nil,
			func(n *Child, e *User) { n.Edges.Parent = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAssessments; query != nil {
		if err := _q.loadAssessments(ctx, query, nodes,
			func(n *Child) { n.Edges.Assessments = []*Assessment{} },
			func(n *Child, e *Assessment) { n.Edges.Assessments = append(n.Edges.Assessments, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTaskRecords; query != nil {
		if err := _q.loadTaskRecords(ctx, query, nodes,
			func(n *Child) { n.Edges.TaskRecords = []*TaskRecord{} },
			func(n *Child, e *TaskRecord) { n.Edges.TaskRecords = append(n.Edges.TaskRecords, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withBadgeAwards; query != nil {
		if err := _q.loadBadgeAwards(ctx, query, nodes,
			func(n *Child) { n.Edges.BadgeAwards = []*BadgeAward{} },
			func(n *Child, e *BadgeAward) { n.Edges.BadgeAwards = append(n.Edges.BadgeAwards, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withContributions; query != nil {
		if err := _q.loadContributions(ctx, query, nodes,
			func(n *Child) { n.Edges.Contributions = []*CoCreationContribution{} },
			func(n *Child, e *CoCreationContribution) { n.Edges.Contributions = append(n.Edges.Contributions, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withWeeklyReports; query != nil {
		if err := _q.loadWeeklyReports(ctx, query, nodes,
			func(n *Child) { n.Edges.WeeklyReports = []*WeeklyReport{} },
			func(n *Child, e *WeeklyReport) { n.Edges.WeeklyReports = append(n.Edges.WeeklyReports, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withGrowthRecords; query != nil {
		if err := _q.loadGrowthRecords(ctx, query, nodes,
			func(n *Child) { n.Edges.GrowthRecords = []*GrowthRecord{} },
			func(n *Child, e *GrowthRecord) { n.Edges.GrowthRecords = append(n.Edges.GrowthRecords, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withWorks; query != nil {
		if err := _q.loadWorks(ctx, query, nodes,
			func(n *Child) { n.Edges.Works = []*Work{} },
			func(n *Child, e *Work) { n.Edges.Works = append(n.Edges.Works, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withCoachSessions; query != nil {
		if err := _q.loadCoachSessions(ctx, query, nodes,
			func(n *Child) { n.Edges.CoachSessions = []*CoachSession{} },
			func(n *Child, e *CoachSession) { n.Edges.CoachSessions = append(n.Edges.CoachSessions, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ChildQuery) loadParent(ctx context.Context, query *UserQuery, nodes []*Child, init func(*Child), assign func(*Child, *User)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Child)
	for i := range nodes {
		fk := nodes[i].UserID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(user.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "user_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ChildQuery) loadAssessments(ctx context.Context, query *AssessmentQuery, nodes []*Child, init func(*Child), assign func(*Child, *Assessment)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Child)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(assessment.FieldChildID)
	}
	query.Where(predicate.Assessment(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(child.AssessmentsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ChildID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "child_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ChildQuery) loadTaskRecords(ctx context.Context, query *TaskRecordQuery, nodes []*Child, init func(*Child), assign func(*Child, *TaskRecord)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Child)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(taskrecord.FieldChildID)
	}
	query.Where(predicate.TaskRecord(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(child.TaskRecordsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ChildID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "child_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ChildQuery) loadBadgeAwards(ctx context.Context, query *BadgeAwardQuery, nodes []*Child, init func(*Child), assign func(*Child, *BadgeAward)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Child)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(badgeaward.FieldChildID)
	}
	query.Where(predicate.BadgeAward(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(child.BadgeAwardsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ChildID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "child_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ChildQuery) loadContributions(ctx context.Context, query *CoCreationContributionQuery, nodes []*Child, init func(*Child), assign func(*Child, *CoCreationContribution)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Child)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(cocreationcontribution.FieldChildID)
	}
	query.Where(predicate.CoCreationContribution(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(child.ContributionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ChildID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "child_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ChildQuery) loadWeeklyReports(ctx context.Context, query *WeeklyReportQuery, nodes []*Child, init func(*Child), assign func(*Child, *WeeklyReport)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Child)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(weeklyreport.FieldChildID)
	}
	query.Where(predicate.WeeklyReport(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(child.WeeklyReportsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ChildID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "child_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ChildQuery) loadGrowthRecords(ctx context.Context, query *GrowthRecordQuery, nodes []*Child, init func(*Child), assign func(*Child, *GrowthRecord)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Child)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(growthrecord.FieldChildID)
	}
	query.Where(predicate.GrowthRecord(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(child.GrowthRecordsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ChildID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "child_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ChildQuery) loadWorks(ctx context.Context, query *WorkQuery, nodes []*Child, init func(*Child), assign func(*Child, *Work)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Child)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(work.FieldChildID)
	}
	query.Where(predicate.Work(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(child.WorksColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ChildID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "child_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ChildQuery) loadCoachSessions(ctx context.Context, query *CoachSessionQuery, nodes []*Child, init func(*Child), assign func(*Child, *CoachSession)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Child)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(coachsession.FieldChildID)
	}
	query.Where(predicate.CoachSession(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(child.CoachSessionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ChildID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "child_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ChildQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ChildQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(child.Table, child.Columns, sqlgraph.NewFieldSpec(child.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, child.FieldID)
		for i := range fields {
			if fields[i] != child.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withParent != nil {
			_spec.Node.AddColumnOnce(child.FieldUserID)
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

func (_q *ChildQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(child.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = child.Columns
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

// ChildGroupBy is the group-by builder for Child entities.
type ChildGroupBy struct {
	selector
	build *ChildQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ChildGroupBy) Aggregate(fns ...AggregateFunc) *ChildGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ChildGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ChildQuery, *ChildGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ChildGroupBy) sqlScan(ctx context.Context, root *ChildQuery, v any) error {
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

// ChildSelect is the builder for selecting fields of Child entities.
type ChildSelect struct {
	*ChildQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ChildSelect) Aggregate(fns ...AggregateFunc) *ChildSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ChildSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ChildQuery, *ChildSelect](ctx, _s.ChildQuery, _s, _s.inters, v)
}

func (_s *ChildSelect) sqlScan(ctx context.Context, root *ChildQuery, v any) error {
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
