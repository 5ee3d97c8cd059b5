// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/budai/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/budai/ent/assessment"
	"github.com/abhisek/budai/ent/badge"
	"github.com/abhisek/budai/ent/badgeaward"
	"github.com/abhisek/budai/ent/child"
	"github.com/abhisek/budai/ent/coachsession"
	"github.com/abhisek/budai/ent/cocreationcontribution"
	"github.com/abhisek/budai/ent/cocreationtheme"
	"github.com/abhisek/budai/ent/growthrecord"
	"github.com/abhisek/budai/ent/llmrequestevent"
	"github.com/abhisek/budai/ent/task"
	"github.com/abhisek/budai/ent/taskrecord"
	"github.com/abhisek/budai/ent/user"
	"github.com/abhisek/budai/ent/weeklyreport"
	"github.com/abhisek/budai/ent/work"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Assessment is the client for interacting with the Assessment builders.
	Assessment *AssessmentClient
	// Badge is the client for interacting with the Badge builders.
	Badge *BadgeClient
	// BadgeAward is the client for interacting with the BadgeAward builders.
	BadgeAward *BadgeAwardClient
	// Child is the client for interacting with the Child builders.
	Child *ChildClient
	// CoCreationContribution is the client for interacting with the CoCreationContribution builders.
	CoCreationContribution *CoCreationContributionClient
	// CoCreationTheme is the client for interacting with the CoCreationTheme builders.
	CoCreationTheme *CoCreationThemeClient
	// CoachSession is the client for interacting with the CoachSession builders.
	CoachSession *CoachSessionClient
	// GrowthRecord is the client for interacting with the GrowthRecord builders.
	GrowthRecord *GrowthRecordClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
	// TaskRecord is the client for interacting with the TaskRecord builders.
	TaskRecord *TaskRecordClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// WeeklyReport is the client for interacting with the WeeklyReport builders.
	WeeklyReport *WeeklyReportClient
	// Work is the client for interacting with the Work builders.
	Work *WorkClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Assessment = NewAssessmentClient(c.config)
	c.Badge = NewBadgeClient(c.config)
	c.BadgeAward = NewBadgeAwardClient(c.config)
	c.Child = NewChildClient(c.config)
	c.CoCreationContribution = NewCoCreationContributionClient(c.config)
	c.CoCreationTheme = NewCoCreationThemeClient(c.config)
	c.CoachSession = NewCoachSessionClient(c.config)
	c.GrowthRecord = NewGrowthRecordClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.Task = NewTaskClient(c.config)
	c.TaskRecord = NewTaskRecordClient(c.config)
	c.User = NewUserClient(c.config)
	c.WeeklyReport = NewWeeklyReportClient(c.config)
	c.Work = NewWorkClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                    ctx,
		config:                 cfg,
		Assessment:             NewAssessmentClient(cfg),
		Badge:                  NewBadgeClient(cfg),
		BadgeAward:             NewBadgeAwardClient(cfg),
		Child:                  NewChildClient(cfg),
		CoCreationContribution: NewCoCreationContributionClient(cfg),
		CoCreationTheme:        NewCoCreationThemeClient(cfg),
		CoachSession:           NewCoachSessionClient(cfg),
		GrowthRecord:           NewGrowthRecordClient(cfg),
		LLMRequestEvent:        NewLLMRequestEventClient(cfg),
		Task:                   NewTaskClient(cfg),
		TaskRecord:             NewTaskRecordClient(cfg),
		User:                   NewUserClient(cfg),
		WeeklyReport:           NewWeeklyReportClient(cfg),
		Work:                   NewWorkClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                    ctx,
		config:                 cfg,
		Assessment:             NewAssessmentClient(cfg),
		Badge:                  NewBadgeClient(cfg),
		BadgeAward:             NewBadgeAwardClient(cfg),
		Child:                  NewChildClient(cfg),
		CoCreationContribution: NewCoCreationContributionClient(cfg),
		CoCreationTheme:        NewCoCreationThemeClient(cfg),
		CoachSession:           NewCoachSessionClient(cfg),
		GrowthRecord:           NewGrowthRecordClient(cfg),
		LLMRequestEvent:        NewLLMRequestEventClient(cfg),
		Task:                   NewTaskClient(cfg),
		TaskRecord:             NewTaskRecordClient(cfg),
		User:                   NewUserClient(cfg),
		WeeklyReport:           NewWeeklyReportClient(cfg),
		Work:                   NewWorkClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Assessment.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Assessment, c.Badge, c.BadgeAward, c.Child, c.CoCreationContribution,
		c.CoCreationTheme, c.CoachSession, c.GrowthRecord, c.LLMRequestEvent, c.Task,
		c.TaskRecord, c.User, c.WeeklyReport, c.Work,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Assessment, c.Badge, c.BadgeAward, c.Child, c.CoCreationContribution,
		c.CoCreationTheme, c.CoachSession, c.GrowthRecord, c.LLMRequestEvent, c.Task,
		c.TaskRecord, c.User, c.WeeklyReport, c.Work,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AssessmentMutation:
		return c.Assessment.mutate(ctx, m)
	case *BadgeMutation:
		return c.Badge.mutate(ctx, m)
	case *BadgeAwardMutation:
		return c.BadgeAward.mutate(ctx, m)
	case *ChildMutation:
		return c.Child.mutate(ctx, m)
	case *CoCreationContributionMutation:
		return c.CoCreationContribution.mutate(ctx, m)
	case *CoCreationThemeMutation:
		return c.CoCreationTheme.mutate(ctx, m)
	case *CoachSessionMutation:
		return c.CoachSession.mutate(ctx, m)
	case *GrowthRecordMutation:
		return c.GrowthRecord.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	case *TaskRecordMutation:
		return c.TaskRecord.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *WeeklyReportMutation:
		return c.WeeklyReport.mutate(ctx, m)
	case *WorkMutation:
		return c.Work.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AssessmentClient is a client for the Assessment schema.
type AssessmentClient struct {
	config
}

// NewAssessmentClient returns a client for the Assessment from the given config.
func NewAssessmentClient(c config) *AssessmentClient {
	return &AssessmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `assessment.Hooks(f(g(h())))`.
func (c *AssessmentClient) Use(hooks ...Hook) {
	c.hooks.Assessment = append(c.hooks.Assessment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `assessment.Intercept(f(g(h())))`.
func (c *AssessmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Assessment = append(c.inters.Assessment, interceptors...)
}

// Create returns a builder for creating a Assessment entity.
func (c *AssessmentClient) Create() *AssessmentCreate {
	mutation := newAssessmentMutation(c.config, OpCreate)
	return &AssessmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Assessment entities.
func (c *AssessmentClient) CreateBulk(builders ...*AssessmentCreate) *AssessmentCreateBulk {
	return &AssessmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AssessmentClient) MapCreateBulk(slice any, setFunc func(*AssessmentCreate, int)) *AssessmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AssessmentCreateBulk{err: fmt.Errorf("calling to AssessmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AssessmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AssessmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Assessment.
func (c *AssessmentClient) Update() *AssessmentUpdate {
	mutation := newAssessmentMutation(c.config, OpUpdate)
	return &AssessmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AssessmentClient) UpdateOne(_m *Assessment) *AssessmentUpdateOne {
	mutation := newAssessmentMutation(c.config, OpUpdateOne, withAssessment(_m))
	return &AssessmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AssessmentClient) UpdateOneID(id uuid.UUID) *AssessmentUpdateOne {
	mutation := newAssessmentMutation(c.config, OpUpdateOne, withAssessmentID(id))
	return &AssessmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Assessment.
func (c *AssessmentClient) Delete() *AssessmentDelete {
	mutation := newAssessmentMutation(c.config, OpDelete)
	return &AssessmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AssessmentClient) DeleteOne(_m *Assessment) *AssessmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AssessmentClient) DeleteOneID(id uuid.UUID) *AssessmentDeleteOne {
	builder := c.Delete().Where(assessment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AssessmentDeleteOne{builder}
}

// Query returns a query builder for Assessment.
func (c *AssessmentClient) Query() *AssessmentQuery {
	return &AssessmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAssessment},
		inters: c.Interceptors(),
	}
}

// Get returns a Assessment entity by its id.
func (c *AssessmentClient) Get(ctx context.Context, id uuid.UUID) (*Assessment, error) {
	return c.Query().Where(assessment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AssessmentClient) GetX(ctx context.Context, id uuid.UUID) *Assessment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryChild queries the child edge of a Assessment.
func (c *AssessmentClient) QueryChild(_m *Assessment) *ChildQuery {
	query := (&ChildClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(assessment.Table, assessment.FieldID, id),
			sqlgraph.To(child.Table, child.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, assessment.ChildTable, assessment.ChildColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AssessmentClient) Hooks() []Hook {
	return c.hooks.Assessment
}

// Interceptors returns the client interceptors.
func (c *AssessmentClient) Interceptors() []Interceptor {
	return c.inters.Assessment
}

func (c *AssessmentClient) mutate(ctx context.Context, m *AssessmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AssessmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AssessmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AssessmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AssessmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Assessment mutation op: %q", m.Op())
	}
}

// BadgeClient is a client for the Badge schema.
type BadgeClient struct {
	config
}

// NewBadgeClient returns a client for the Badge from the given config.
func NewBadgeClient(c config) *BadgeClient {
	return &BadgeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `badge.Hooks(f(g(h())))`.
func (c *BadgeClient) Use(hooks ...Hook) {
	c.hooks.Badge = append(c.hooks.Badge, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `badge.Intercept(f(g(h())))`.
func (c *BadgeClient) Intercept(interceptors ...Interceptor) {
	c.inters.Badge = append(c.inters.Badge, interceptors...)
}

// Create returns a builder for creating a Badge entity.
func (c *BadgeClient) Create() *BadgeCreate {
	mutation := newBadgeMutation(c.config, OpCreate)
	return &BadgeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Badge entities.
func (c *BadgeClient) CreateBulk(builders ...*BadgeCreate) *BadgeCreateBulk {
	return &BadgeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BadgeClient) MapCreateBulk(slice any, setFunc func(*BadgeCreate, int)) *BadgeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BadgeCreateBulk{err: fmt.Errorf("calling to BadgeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BadgeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BadgeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Badge.
func (c *BadgeClient) Update() *BadgeUpdate {
	mutation := newBadgeMutation(c.config, OpUpdate)
	return &BadgeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BadgeClient) UpdateOne(_m *Badge) *BadgeUpdateOne {
	mutation := newBadgeMutation(c.config, OpUpdateOne, withBadge(_m))
	return &BadgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BadgeClient) UpdateOneID(id uuid.UUID) *BadgeUpdateOne {
	mutation := newBadgeMutation(c.config, OpUpdateOne, withBadgeID(id))
	return &BadgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Badge.
func (c *BadgeClient) Delete() *BadgeDelete {
	mutation := newBadgeMutation(c.config, OpDelete)
	return &BadgeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BadgeClient) DeleteOne(_m *Badge) *BadgeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BadgeClient) DeleteOneID(id uuid.UUID) *BadgeDeleteOne {
	builder := c.Delete().Where(badge.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BadgeDeleteOne{builder}
}

// Query returns a query builder for Badge.
func (c *BadgeClient) Query() *BadgeQuery {
	return &BadgeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBadge},
		inters: c.Interceptors(),
	}
}

// Get returns a Badge entity by its id.
func (c *BadgeClient) Get(ctx context.Context, id uuid.UUID) (*Badge, error) {
	return c.Query().Where(badge.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BadgeClient) GetX(ctx context.Context, id uuid.UUID) *Badge {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAwards queries the awards edge of a Badge.
func (c *BadgeClient) QueryAwards(_m *Badge) *BadgeAwardQuery {
	query := (&BadgeAwardClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(badge.Table, badge.FieldID, id),
			sqlgraph.To(badgeaward.Table, badgeaward.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, badge.AwardsTable, badge.AwardsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BadgeClient) Hooks() []Hook {
	return c.hooks.Badge
}

// Interceptors returns the client interceptors.
func (c *BadgeClient) Interceptors() []Interceptor {
	return c.inters.Badge
}

func (c *BadgeClient) mutate(ctx context.Context, m *BadgeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BadgeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BadgeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BadgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BadgeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Badge mutation op: %q", m.Op())
	}
}

// BadgeAwardClient is a client for the BadgeAward schema.
type BadgeAwardClient struct {
	config
}

// NewBadgeAwardClient returns a client for the BadgeAward from the given config.
func NewBadgeAwardClient(c config) *BadgeAwardClient {
	return &BadgeAwardClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `badgeaward.Hooks(f(g(h())))`.
func (c *BadgeAwardClient) Use(hooks ...Hook) {
	c.hooks.BadgeAward = append(c.hooks.BadgeAward, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `badgeaward.Intercept(f(g(h())))`.
func (c *BadgeAwardClient) Intercept(interceptors ...Interceptor) {
	c.inters.BadgeAward = append(c.inters.BadgeAward, interceptors...)
}

// Create returns a builder for creating a BadgeAward entity.
func (c *BadgeAwardClient) Create() *BadgeAwardCreate {
	mutation := newBadgeAwardMutation(c.config, OpCreate)
	return &BadgeAwardCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BadgeAward entities.
func (c *BadgeAwardClient) CreateBulk(builders ...*BadgeAwardCreate) *BadgeAwardCreateBulk {
	return &BadgeAwardCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BadgeAwardClient) MapCreateBulk(slice any, setFunc func(*BadgeAwardCreate, int)) *BadgeAwardCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BadgeAwardCreateBulk{err: fmt.Errorf("calling to BadgeAwardClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BadgeAwardCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BadgeAwardCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BadgeAward.
func (c *BadgeAwardClient) Update() *BadgeAwardUpdate {
	mutation := newBadgeAwardMutation(c.config, OpUpdate)
	return &BadgeAwardUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BadgeAwardClient) UpdateOne(_m *BadgeAward) *BadgeAwardUpdateOne {
	mutation := newBadgeAwardMutation(c.config, OpUpdateOne, withBadgeAward(_m))
	return &BadgeAwardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BadgeAwardClient) UpdateOneID(id uuid.UUID) *BadgeAwardUpdateOne {
	mutation := newBadgeAwardMutation(c.config, OpUpdateOne, withBadgeAwardID(id))
	return &BadgeAwardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BadgeAward.
func (c *BadgeAwardClient) Delete() *BadgeAwardDelete {
	mutation := newBadgeAwardMutation(c.config, OpDelete)
	return &BadgeAwardDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BadgeAwardClient) DeleteOne(_m *BadgeAward) *BadgeAwardDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BadgeAwardClient) DeleteOneID(id uuid.UUID) *BadgeAwardDeleteOne {
	builder := c.Delete().Where(badgeaward.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BadgeAwardDeleteOne{builder}
}

// Query returns a query builder for BadgeAward.
func (c *BadgeAwardClient) Query() *BadgeAwardQuery {
	return &BadgeAwardQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBadgeAward},
		inters: c.Interceptors(),
	}
}

// Get returns a BadgeAward entity by its id.
func (c *BadgeAwardClient) Get(ctx context.Context, id uuid.UUID) (*BadgeAward, error) {
	return c.Query().Where(badgeaward.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BadgeAwardClient) GetX(ctx context.Context, id uuid.UUID) *BadgeAward {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryChild queries the child edge of a BadgeAward.
func (c *BadgeAwardClient) QueryChild(_m *BadgeAward) *ChildQuery {
	query := (&ChildClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(badgeaward.Table, badgeaward.FieldID, id),
			sqlgraph.To(child.Table, child.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, badgeaward.ChildTable, badgeaward.ChildColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBadge queries the badge edge of a BadgeAward.
func (c *BadgeAwardClient) QueryBadge(_m *BadgeAward) *BadgeQuery {
	query := (&BadgeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(badgeaward.Table, badgeaward.FieldID, id),
			sqlgraph.To(badge.Table, badge.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, badgeaward.BadgeTable, badgeaward.BadgeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BadgeAwardClient) Hooks() []Hook {
	return c.hooks.BadgeAward
}

// Interceptors returns the client interceptors.
func (c *BadgeAwardClient) Interceptors() []Interceptor {
	return c.inters.BadgeAward
}

func (c *BadgeAwardClient) mutate(ctx context.Context, m *BadgeAwardMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BadgeAwardCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BadgeAwardUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BadgeAwardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BadgeAwardDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BadgeAward mutation op: %q", m.Op())
	}
}

// ChildClient is a client for the Child schema.
type ChildClient struct {
	config
}

// NewChildClient returns a client for the Child from the given config.
func NewChildClient(c config) *ChildClient {
	return &ChildClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `child.Hooks(f(g(h())))`.
func (c *ChildClient) Use(hooks ...Hook) {
	c.hooks.Child = append(c.hooks.Child, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `child.Intercept(f(g(h())))`.
func (c *ChildClient) Intercept(interceptors ...Interceptor) {
	c.inters.Child = append(c.inters.Child, interceptors...)
}

// Create returns a builder for creating a Child entity.
func (c *ChildClient) Create() *ChildCreate {
	mutation := newChildMutation(c.config, OpCreate)
	return &ChildCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Child entities.
func (c *ChildClient) CreateBulk(builders ...*ChildCreate) *ChildCreateBulk {
	return &ChildCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChildClient) MapCreateBulk(slice any, setFunc func(*ChildCreate, int)) *ChildCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChildCreateBulk{err: fmt.Errorf("calling to ChildClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChildCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChildCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Child.
func (c *ChildClient) Update() *ChildUpdate {
	mutation := newChildMutation(c.config, OpUpdate)
	return &ChildUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChildClient) UpdateOne(_m *Child) *ChildUpdateOne {
	mutation := newChildMutation(c.config, OpUpdateOne, withChild(_m))
	return &ChildUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChildClient) UpdateOneID(id uuid.UUID) *ChildUpdateOne {
	mutation := newChildMutation(c.config, OpUpdateOne, withChildID(id))
	return &ChildUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Child.
func (c *ChildClient) Delete() *ChildDelete {
	mutation := newChildMutation(c.config, OpDelete)
	return &ChildDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChildClient) DeleteOne(_m *Child) *ChildDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChildClient) DeleteOneID(id uuid.UUID) *ChildDeleteOne {
	builder := c.Delete().Where(child.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChildDeleteOne{builder}
}

// Query returns a query builder for Child.
func (c *ChildClient) Query() *ChildQuery {
	return &ChildQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChild},
		inters: c.Interceptors(),
	}
}

// Get returns a Child entity by its id.
func (c *ChildClient) Get(ctx context.Context, id uuid.UUID) (*Child, error) {
	return c.Query().Where(child.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChildClient) GetX(ctx context.Context, id uuid.UUID) *Child {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryParent queries the parent edge of a Child.
func (c *ChildClient) QueryParent(_m *Child) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(child.Table, child.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, child.ParentTable, child.ParentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAssessments queries the assessments edge of a Child.
func (c *ChildClient) QueryAssessments(_m *Child) *AssessmentQuery {
	query := (&AssessmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(child.Table, child.FieldID, id),
			sqlgraph.To(assessment.Table, assessment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, child.AssessmentsTable, child.AssessmentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTaskRecords queries the task_records edge of a Child.
func (c *ChildClient) QueryTaskRecords(_m *Child) *TaskRecordQuery {
	query := (&TaskRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(child.Table, child.FieldID, id),
			sqlgraph.To(taskrecord.Table, taskrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, child.TaskRecordsTable, child.TaskRecordsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBadgeAwards queries the badge_awards edge of a Child.
func (c *ChildClient) QueryBadgeAwards(_m *Child) *BadgeAwardQuery {
	query := (&BadgeAwardClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(child.Table, child.FieldID, id),
			sqlgraph.To(badgeaward.Table, badgeaward.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, child.BadgeAwardsTable, child.BadgeAwardsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryContributions queries the contributions edge of a Child.
func (c *ChildClient) QueryContributions(_m *Child) *CoCreationContributionQuery {
	query := (&CoCreationContributionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(child.Table, child.FieldID, id),
			sqlgraph.To(cocreationcontribution.Table, cocreationcontribution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, child.ContributionsTable, child.ContributionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryWeeklyReports queries the weekly_reports edge of a Child.
func (c *ChildClient) QueryWeeklyReports(_m *Child) *WeeklyReportQuery {
	query := (&WeeklyReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(child.Table, child.FieldID, id),
			sqlgraph.To(weeklyreport.Table, weeklyreport.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, child.WeeklyReportsTable, child.WeeklyReportsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryGrowthRecords queries the growth_records edge of a Child.
func (c *ChildClient) QueryGrowthRecords(_m *Child) *GrowthRecordQuery {
	query := (&GrowthRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(child.Table, child.FieldID, id),
			sqlgraph.To(growthrecord.Table, growthrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, child.GrowthRecordsTable, child.GrowthRecordsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryWorks queries the works edge of a Child.
func (c *ChildClient) QueryWorks(_m *Child) *WorkQuery {
	query := (&WorkClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(child.Table, child.FieldID, id),
			sqlgraph.To(work.Table, work.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, child.WorksTable, child.WorksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCoachSessions queries the coach_sessions edge of a Child.
func (c *ChildClient) QueryCoachSessions(_m *Child) *CoachSessionQuery {
	query := (&CoachSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(child.Table, child.FieldID, id),
			sqlgraph.To(coachsession.Table, coachsession.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, child.CoachSessionsTable, child.CoachSessionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ChildClient) Hooks() []Hook {
	return c.hooks.Child
}

// Interceptors returns the client interceptors.
func (c *ChildClient) Interceptors() []Interceptor {
	return c.inters.Child
}

func (c *ChildClient) mutate(ctx context.Context, m *ChildMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChildCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChildUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChildUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChildDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Child mutation op: %q", m.Op())
	}
}

// CoCreationContributionClient is a client for the CoCreationContribution schema.
type CoCreationContributionClient struct {
	config
}

// NewCoCreationContributionClient returns a client for the CoCreationContribution from the given config.
func NewCoCreationContributionClient(c config) *CoCreationContributionClient {
	return &CoCreationContributionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `cocreationcontribution.Hooks(f(g(h())))`.
func (c *CoCreationContributionClient) Use(hooks ...Hook) {
	c.hooks.CoCreationContribution = append(c.hooks.CoCreationContribution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `cocreationcontribution.Intercept(f(g(h())))`.
func (c *CoCreationContributionClient) Intercept(interceptors ...Interceptor) {
	c.inters.CoCreationContribution = append(c.inters.CoCreationContribution, interceptors...)
}

// Create returns a builder for creating a CoCreationContribution entity.
func (c *CoCreationContributionClient) Create() *CoCreationContributionCreate {
	mutation := newCoCreationContributionMutation(c.config, OpCreate)
	return &CoCreationContributionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CoCreationContribution entities.
func (c *CoCreationContributionClient) CreateBulk(builders ...*CoCreationContributionCreate) *CoCreationContributionCreateBulk {
	return &CoCreationContributionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CoCreationContributionClient) MapCreateBulk(slice any, setFunc func(*CoCreationContributionCreate, int)) *CoCreationContributionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CoCreationContributionCreateBulk{err: fmt.Errorf("calling to CoCreationContributionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CoCreationContributionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CoCreationContributionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CoCreationContribution.
func (c *CoCreationContributionClient) Update() *CoCreationContributionUpdate {
	mutation := newCoCreationContributionMutation(c.config, OpUpdate)
	return &CoCreationContributionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CoCreationContributionClient) UpdateOne(_m *CoCreationContribution) *CoCreationContributionUpdateOne {
	mutation := newCoCreationContributionMutation(c.config, OpUpdateOne, withCoCreationContribution(_m))
	return &CoCreationContributionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CoCreationContributionClient) UpdateOneID(id uuid.UUID) *CoCreationContributionUpdateOne {
	mutation := newCoCreationContributionMutation(c.config, OpUpdateOne, withCoCreationContributionID(id))
	return &CoCreationContributionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CoCreationContribution.
func (c *CoCreationContributionClient) Delete() *CoCreationContributionDelete {
	mutation := newCoCreationContributionMutation(c.config, OpDelete)
	return &CoCreationContributionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CoCreationContributionClient) DeleteOne(_m *CoCreationContribution) *CoCreationContributionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CoCreationContributionClient) DeleteOneID(id uuid.UUID) *CoCreationContributionDeleteOne {
	builder := c.Delete().Where(cocreationcontribution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CoCreationContributionDeleteOne{builder}
}

// Query returns a query builder for CoCreationContribution.
func (c *CoCreationContributionClient) Query() *CoCreationContributionQuery {
	return &CoCreationContributionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCoCreationContribution},
		inters: c.Interceptors(),
	}
}

// Get returns a CoCreationContribution entity by its id.
func (c *CoCreationContributionClient) Get(ctx context.Context, id uuid.UUID) (*CoCreationContribution, error) {
	return c.Query().Where(cocreationcontribution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CoCreationContributionClient) GetX(ctx context.Context, id uuid.UUID) *CoCreationContribution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryChild queries the child edge of a CoCreationContribution.
func (c *CoCreationContributionClient) QueryChild(_m *CoCreationContribution) *ChildQuery {
	query := (&ChildClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(cocreationcontribution.Table, cocreationcontribution.FieldID, id),
			sqlgraph.To(child.Table, child.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, cocreationcontribution.ChildTable, cocreationcontribution.ChildColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTheme queries the theme edge of a CoCreationContribution.
func (c *CoCreationContributionClient) QueryTheme(_m *CoCreationContribution) *CoCreationThemeQuery {
	query := (&CoCreationThemeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(cocreationcontribution.Table, cocreationcontribution.FieldID, id),
			sqlgraph.To(cocreationtheme.Table, cocreationtheme.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, cocreationcontribution.ThemeTable, cocreationcontribution.ThemeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CoCreationContributionClient) Hooks() []Hook {
	return c.hooks.CoCreationContribution
}

// Interceptors returns the client interceptors.
func (c *CoCreationContributionClient) Interceptors() []Interceptor {
	return c.inters.CoCreationContribution
}

func (c *CoCreationContributionClient) mutate(ctx context.Context, m *CoCreationContributionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CoCreationContributionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CoCreationContributionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CoCreationContributionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CoCreationContributionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CoCreationContribution mutation op: %q", m.Op())
	}
}

// CoCreationThemeClient is a client for the CoCreationTheme schema.
type CoCreationThemeClient struct {
	config
}

// NewCoCreationThemeClient returns a client for the CoCreationTheme from the given config.
func NewCoCreationThemeClient(c config) *CoCreationThemeClient {
	return &CoCreationThemeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `cocreationtheme.Hooks(f(g(h())))`.
func (c *CoCreationThemeClient) Use(hooks ...Hook) {
	c.hooks.CoCreationTheme = append(c.hooks.CoCreationTheme, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `cocreationtheme.Intercept(f(g(h())))`.
func (c *CoCreationThemeClient) Intercept(interceptors ...Interceptor) {
	c.inters.CoCreationTheme = append(c.inters.CoCreationTheme, interceptors...)
}

// Create returns a builder for creating a CoCreationTheme entity.
func (c *CoCreationThemeClient) Create() *CoCreationThemeCreate {
	mutation := newCoCreationThemeMutation(c.config, OpCreate)
	return &CoCreationThemeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CoCreationTheme entities.
func (c *CoCreationThemeClient) CreateBulk(builders ...*CoCreationThemeCreate) *CoCreationThemeCreateBulk {
	return &CoCreationThemeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CoCreationThemeClient) MapCreateBulk(slice any, setFunc func(*CoCreationThemeCreate, int)) *CoCreationThemeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CoCreationThemeCreateBulk{err: fmt.Errorf("calling to CoCreationThemeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CoCreationThemeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CoCreationThemeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CoCreationTheme.
func (c *CoCreationThemeClient) Update() *CoCreationThemeUpdate {
	mutation := newCoCreationThemeMutation(c.config, OpUpdate)
	return &CoCreationThemeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CoCreationThemeClient) UpdateOne(_m *CoCreationTheme) *CoCreationThemeUpdateOne {
	mutation := newCoCreationThemeMutation(c.config, OpUpdateOne, withCoCreationTheme(_m))
	return &CoCreationThemeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CoCreationThemeClient) UpdateOneID(id uuid.UUID) *CoCreationThemeUpdateOne {
	mutation := newCoCreationThemeMutation(c.config, OpUpdateOne, withCoCreationThemeID(id))
	return &CoCreationThemeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CoCreationTheme.
func (c *CoCreationThemeClient) Delete() *CoCreationThemeDelete {
	mutation := newCoCreationThemeMutation(c.config, OpDelete)
	return &CoCreationThemeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CoCreationThemeClient) DeleteOne(_m *CoCreationTheme) *CoCreationThemeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CoCreationThemeClient) DeleteOneID(id uuid.UUID) *CoCreationThemeDeleteOne {
	builder := c.Delete().Where(cocreationtheme.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CoCreationThemeDeleteOne{builder}
}

// Query returns a query builder for CoCreationTheme.
func (c *CoCreationThemeClient) Query() *CoCreationThemeQuery {
	return &CoCreationThemeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCoCreationTheme},
		inters: c.Interceptors(),
	}
}

// Get returns a CoCreationTheme entity by its id.
func (c *CoCreationThemeClient) Get(ctx context.Context, id uuid.UUID) (*CoCreationTheme, error) {
	return c.Query().Where(cocreationtheme.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CoCreationThemeClient) GetX(ctx context.Context, id uuid.UUID) *CoCreationTheme {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryContributions queries the contributions edge of a CoCreationTheme.
func (c *CoCreationThemeClient) QueryContributions(_m *CoCreationTheme) *CoCreationContributionQuery {
	query := (&CoCreationContributionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(cocreationtheme.Table, cocreationtheme.FieldID, id),
			sqlgraph.To(cocreationcontribution.Table, cocreationcontribution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, cocreationtheme.ContributionsTable, cocreationtheme.ContributionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CoCreationThemeClient) Hooks() []Hook {
	return c.hooks.CoCreationTheme
}

// Interceptors returns the client interceptors.
func (c *CoCreationThemeClient) Interceptors() []Interceptor {
	return c.inters.CoCreationTheme
}

func (c *CoCreationThemeClient) mutate(ctx context.Context, m *CoCreationThemeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CoCreationThemeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CoCreationThemeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CoCreationThemeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CoCreationThemeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CoCreationTheme mutation op: %q", m.Op())
	}
}

// CoachSessionClient is a client for the CoachSession schema.
type CoachSessionClient struct {
	config
}

// NewCoachSessionClient returns a client for the CoachSession from the given config.
func NewCoachSessionClient(c config) *CoachSessionClient {
	return &CoachSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `coachsession.Hooks(f(g(h())))`.
func (c *CoachSessionClient) Use(hooks ...Hook) {
	c.hooks.CoachSession = append(c.hooks.CoachSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `coachsession.Intercept(f(g(h())))`.
func (c *CoachSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.CoachSession = append(c.inters.CoachSession, interceptors...)
}

// Create returns a builder for creating a CoachSession entity.
func (c *CoachSessionClient) Create() *CoachSessionCreate {
	mutation := newCoachSessionMutation(c.config, OpCreate)
	return &CoachSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CoachSession entities.
func (c *CoachSessionClient) CreateBulk(builders ...*CoachSessionCreate) *CoachSessionCreateBulk {
	return &CoachSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CoachSessionClient) MapCreateBulk(slice any, setFunc func(*CoachSessionCreate, int)) *CoachSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CoachSessionCreateBulk{err: fmt.Errorf("calling to CoachSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CoachSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CoachSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CoachSession.
func (c *CoachSessionClient) Update() *CoachSessionUpdate {
	mutation := newCoachSessionMutation(c.config, OpUpdate)
	return &CoachSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CoachSessionClient) UpdateOne(_m *CoachSession) *CoachSessionUpdateOne {
	mutation := newCoachSessionMutation(c.config, OpUpdateOne, withCoachSession(_m))
	return &CoachSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CoachSessionClient) UpdateOneID(id uuid.UUID) *CoachSessionUpdateOne {
	mutation := newCoachSessionMutation(c.config, OpUpdateOne, withCoachSessionID(id))
	return &CoachSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CoachSession.
func (c *CoachSessionClient) Delete() *CoachSessionDelete {
	mutation := newCoachSessionMutation(c.config, OpDelete)
	return &CoachSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CoachSessionClient) DeleteOne(_m *CoachSession) *CoachSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CoachSessionClient) DeleteOneID(id uuid.UUID) *CoachSessionDeleteOne {
	builder := c.Delete().Where(coachsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CoachSessionDeleteOne{builder}
}

// Query returns a query builder for CoachSession.
func (c *CoachSessionClient) Query() *CoachSessionQuery {
	return &CoachSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCoachSession},
		inters: c.Interceptors(),
	}
}

// Get returns a CoachSession entity by its id.
func (c *CoachSessionClient) Get(ctx context.Context, id uuid.UUID) (*CoachSession, error) {
	return c.Query().Where(coachsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CoachSessionClient) GetX(ctx context.Context, id uuid.UUID) *CoachSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryChild queries the child edge of a CoachSession.
func (c *CoachSessionClient) QueryChild(_m *CoachSession) *ChildQuery {
	query := (&ChildClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(coachsession.Table, coachsession.FieldID, id),
			sqlgraph.To(child.Table, child.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, coachsession.ChildTable, coachsession.ChildColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CoachSessionClient) Hooks() []Hook {
	return c.hooks.CoachSession
}

// Interceptors returns the client interceptors.
func (c *CoachSessionClient) Interceptors() []Interceptor {
	return c.inters.CoachSession
}

func (c *CoachSessionClient) mutate(ctx context.Context, m *CoachSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CoachSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CoachSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CoachSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CoachSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CoachSession mutation op: %q", m.Op())
	}
}

// GrowthRecordClient is a client for the GrowthRecord schema.
type GrowthRecordClient struct {
	config
}

// NewGrowthRecordClient returns a client for the GrowthRecord from the given config.
func NewGrowthRecordClient(c config) *GrowthRecordClient {
	return &GrowthRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `growthrecord.Hooks(f(g(h())))`.
func (c *GrowthRecordClient) Use(hooks ...Hook) {
	c.hooks.GrowthRecord = append(c.hooks.GrowthRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `growthrecord.Intercept(f(g(h())))`.
func (c *GrowthRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.GrowthRecord = append(c.inters.GrowthRecord, interceptors...)
}

// Create returns a builder for creating a GrowthRecord entity.
func (c *GrowthRecordClient) Create() *GrowthRecordCreate {
	mutation := newGrowthRecordMutation(c.config, OpCreate)
	return &GrowthRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GrowthRecord entities.
func (c *GrowthRecordClient) CreateBulk(builders ...*GrowthRecordCreate) *GrowthRecordCreateBulk {
	return &GrowthRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GrowthRecordClient) MapCreateBulk(slice any, setFunc func(*GrowthRecordCreate, int)) *GrowthRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GrowthRecordCreateBulk{err: fmt.Errorf("calling to GrowthRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GrowthRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GrowthRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GrowthRecord.
func (c *GrowthRecordClient) Update() *GrowthRecordUpdate {
	mutation := newGrowthRecordMutation(c.config, OpUpdate)
	return &GrowthRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GrowthRecordClient) UpdateOne(_m *GrowthRecord) *GrowthRecordUpdateOne {
	mutation := newGrowthRecordMutation(c.config, OpUpdateOne, withGrowthRecord(_m))
	return &GrowthRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GrowthRecordClient) UpdateOneID(id uuid.UUID) *GrowthRecordUpdateOne {
	mutation := newGrowthRecordMutation(c.config, OpUpdateOne, withGrowthRecordID(id))
	return &GrowthRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GrowthRecord.
func (c *GrowthRecordClient) Delete() *GrowthRecordDelete {
	mutation := newGrowthRecordMutation(c.config, OpDelete)
	return &GrowthRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GrowthRecordClient) DeleteOne(_m *GrowthRecord) *GrowthRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GrowthRecordClient) DeleteOneID(id uuid.UUID) *GrowthRecordDeleteOne {
	builder := c.Delete().Where(growthrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GrowthRecordDeleteOne{builder}
}

// Query returns a query builder for GrowthRecord.
func (c *GrowthRecordClient) Query() *GrowthRecordQuery {
	return &GrowthRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGrowthRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a GrowthRecord entity by its id.
func (c *GrowthRecordClient) Get(ctx context.Context, id uuid.UUID) (*GrowthRecord, error) {
	return c.Query().Where(growthrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GrowthRecordClient) GetX(ctx context.Context, id uuid.UUID) *GrowthRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryChild queries the child edge of a GrowthRecord.
func (c *GrowthRecordClient) QueryChild(_m *GrowthRecord) *ChildQuery {
	query := (&ChildClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(growthrecord.Table, growthrecord.FieldID, id),
			sqlgraph.To(child.Table, child.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, growthrecord.ChildTable, growthrecord.ChildColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *GrowthRecordClient) Hooks() []Hook {
	return c.hooks.GrowthRecord
}

// Interceptors returns the client interceptors.
func (c *GrowthRecordClient) Interceptors() []Interceptor {
	return c.inters.GrowthRecord
}

func (c *GrowthRecordClient) mutate(ctx context.Context, m *GrowthRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GrowthRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GrowthRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GrowthRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GrowthRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GrowthRecord mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(_m *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(_m))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id uuid.UUID) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(_m *Task) *TaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id uuid.UUID) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id uuid.UUID) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id uuid.UUID) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRecords queries the records edge of a Task.
func (c *TaskClient) QueryRecords(_m *Task) *TaskRecordQuery {
	query := (&TaskRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(taskrecord.Table, taskrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.RecordsTable, task.RecordsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Task mutation op: %q", m.Op())
	}
}

// TaskRecordClient is a client for the TaskRecord schema.
type TaskRecordClient struct {
	config
}

// NewTaskRecordClient returns a client for the TaskRecord from the given config.
func NewTaskRecordClient(c config) *TaskRecordClient {
	return &TaskRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `taskrecord.Hooks(f(g(h())))`.
func (c *TaskRecordClient) Use(hooks ...Hook) {
	c.hooks.TaskRecord = append(c.hooks.TaskRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `taskrecord.Intercept(f(g(h())))`.
func (c *TaskRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaskRecord = append(c.inters.TaskRecord, interceptors...)
}

// Create returns a builder for creating a TaskRecord entity.
func (c *TaskRecordClient) Create() *TaskRecordCreate {
	mutation := newTaskRecordMutation(c.config, OpCreate)
	return &TaskRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaskRecord entities.
func (c *TaskRecordClient) CreateBulk(builders ...*TaskRecordCreate) *TaskRecordCreateBulk {
	return &TaskRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskRecordClient) MapCreateBulk(slice any, setFunc func(*TaskRecordCreate, int)) *TaskRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskRecordCreateBulk{err: fmt.Errorf("calling to TaskRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaskRecord.
func (c *TaskRecordClient) Update() *TaskRecordUpdate {
	mutation := newTaskRecordMutation(c.config, OpUpdate)
	return &TaskRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskRecordClient) UpdateOne(_m *TaskRecord) *TaskRecordUpdateOne {
	mutation := newTaskRecordMutation(c.config, OpUpdateOne, withTaskRecord(_m))
	return &TaskRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskRecordClient) UpdateOneID(id uuid.UUID) *TaskRecordUpdateOne {
	mutation := newTaskRecordMutation(c.config, OpUpdateOne, withTaskRecordID(id))
	return &TaskRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaskRecord.
func (c *TaskRecordClient) Delete() *TaskRecordDelete {
	mutation := newTaskRecordMutation(c.config, OpDelete)
	return &TaskRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskRecordClient) DeleteOne(_m *TaskRecord) *TaskRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskRecordClient) DeleteOneID(id uuid.UUID) *TaskRecordDeleteOne {
	builder := c.Delete().Where(taskrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskRecordDeleteOne{builder}
}

// Query returns a query builder for TaskRecord.
func (c *TaskRecordClient) Query() *TaskRecordQuery {
	return &TaskRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaskRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a TaskRecord entity by its id.
func (c *TaskRecordClient) Get(ctx context.Context, id uuid.UUID) (*TaskRecord, error) {
	return c.Query().Where(taskrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskRecordClient) GetX(ctx context.Context, id uuid.UUID) *TaskRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryChild queries the child edge of a TaskRecord.
func (c *TaskRecordClient) QueryChild(_m *TaskRecord) *ChildQuery {
	query := (&ChildClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(taskrecord.Table, taskrecord.FieldID, id),
			sqlgraph.To(child.Table, child.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, taskrecord.ChildTable, taskrecord.ChildColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTask queries the task edge of a TaskRecord.
func (c *TaskRecordClient) QueryTask(_m *TaskRecord) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(taskrecord.Table, taskrecord.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, taskrecord.TaskTable, taskrecord.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskRecordClient) Hooks() []Hook {
	return c.hooks.TaskRecord
}

// Interceptors returns the client interceptors.
func (c *TaskRecordClient) Interceptors() []Interceptor {
	return c.inters.TaskRecord
}

func (c *TaskRecordClient) mutate(ctx context.Context, m *TaskRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaskRecord mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id uuid.UUID) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id uuid.UUID) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id uuid.UUID) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryChildren queries the children edge of a User.
func (c *UserClient) QueryChildren(_m *User) *ChildQuery {
	query := (&ChildClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(child.Table, child.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.ChildrenTable, user.ChildrenColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// WeeklyReportClient is a client for the WeeklyReport schema.
type WeeklyReportClient struct {
	config
}

// NewWeeklyReportClient returns a client for the WeeklyReport from the given config.
func NewWeeklyReportClient(c config) *WeeklyReportClient {
	return &WeeklyReportClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `weeklyreport.Hooks(f(g(h())))`.
func (c *WeeklyReportClient) Use(hooks ...Hook) {
	c.hooks.WeeklyReport = append(c.hooks.WeeklyReport, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `weeklyreport.Intercept(f(g(h())))`.
func (c *WeeklyReportClient) Intercept(interceptors ...Interceptor) {
	c.inters.WeeklyReport = append(c.inters.WeeklyReport, interceptors...)
}

// Create returns a builder for creating a WeeklyReport entity.
func (c *WeeklyReportClient) Create() *WeeklyReportCreate {
	mutation := newWeeklyReportMutation(c.config, OpCreate)
	return &WeeklyReportCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WeeklyReport entities.
func (c *WeeklyReportClient) CreateBulk(builders ...*WeeklyReportCreate) *WeeklyReportCreateBulk {
	return &WeeklyReportCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WeeklyReportClient) MapCreateBulk(slice any, setFunc func(*WeeklyReportCreate, int)) *WeeklyReportCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WeeklyReportCreateBulk{err: fmt.Errorf("calling to WeeklyReportClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WeeklyReportCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WeeklyReportCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WeeklyReport.
func (c *WeeklyReportClient) Update() *WeeklyReportUpdate {
	mutation := newWeeklyReportMutation(c.config, OpUpdate)
	return &WeeklyReportUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WeeklyReportClient) UpdateOne(_m *WeeklyReport) *WeeklyReportUpdateOne {
	mutation := newWeeklyReportMutation(c.config, OpUpdateOne, withWeeklyReport(_m))
	return &WeeklyReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WeeklyReportClient) UpdateOneID(id uuid.UUID) *WeeklyReportUpdateOne {
	mutation := newWeeklyReportMutation(c.config, OpUpdateOne, withWeeklyReportID(id))
	return &WeeklyReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WeeklyReport.
func (c *WeeklyReportClient) Delete() *WeeklyReportDelete {
	mutation := newWeeklyReportMutation(c.config, OpDelete)
	return &WeeklyReportDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WeeklyReportClient) DeleteOne(_m *WeeklyReport) *WeeklyReportDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WeeklyReportClient) DeleteOneID(id uuid.UUID) *WeeklyReportDeleteOne {
	builder := c.Delete().Where(weeklyreport.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WeeklyReportDeleteOne{builder}
}

// Query returns a query builder for WeeklyReport.
func (c *WeeklyReportClient) Query() *WeeklyReportQuery {
	return &WeeklyReportQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWeeklyReport},
		inters: c.Interceptors(),
	}
}

// Get returns a WeeklyReport entity by its id.
func (c *WeeklyReportClient) Get(ctx context.Context, id uuid.UUID) (*WeeklyReport, error) {
	return c.Query().Where(weeklyreport.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WeeklyReportClient) GetX(ctx context.Context, id uuid.UUID) *WeeklyReport {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryChild queries the child edge of a WeeklyReport.
func (c *WeeklyReportClient) QueryChild(_m *WeeklyReport) *ChildQuery {
	query := (&ChildClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(weeklyreport.Table, weeklyreport.FieldID, id),
			sqlgraph.To(child.Table, child.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, weeklyreport.ChildTable, weeklyreport.ChildColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WeeklyReportClient) Hooks() []Hook {
	return c.hooks.WeeklyReport
}

// Interceptors returns the client interceptors.
func (c *WeeklyReportClient) Interceptors() []Interceptor {
	return c.inters.WeeklyReport
}

func (c *WeeklyReportClient) mutate(ctx context.Context, m *WeeklyReportMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WeeklyReportCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WeeklyReportUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WeeklyReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WeeklyReportDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WeeklyReport mutation op: %q", m.Op())
	}
}

// WorkClient is a client for the Work schema.
type WorkClient struct {
	config
}

// NewWorkClient returns a client for the Work from the given config.
func NewWorkClient(c config) *WorkClient {
	return &WorkClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `work.Hooks(f(g(h())))`.
func (c *WorkClient) Use(hooks ...Hook) {
	c.hooks.Work = append(c.hooks.Work, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `work.Intercept(f(g(h())))`.
func (c *WorkClient) Intercept(interceptors ...Interceptor) {
	c.inters.Work = append(c.inters.Work, interceptors...)
}

// Create returns a builder for creating a Work entity.
func (c *WorkClient) Create() *WorkCreate {
	mutation := newWorkMutation(c.config, OpCreate)
	return &WorkCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Work entities.
func (c *WorkClient) CreateBulk(builders ...*WorkCreate) *WorkCreateBulk {
	return &WorkCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkClient) MapCreateBulk(slice any, setFunc func(*WorkCreate, int)) *WorkCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkCreateBulk{err: fmt.Errorf("calling to WorkClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Work.
func (c *WorkClient) Update() *WorkUpdate {
	mutation := newWorkMutation(c.config, OpUpdate)
	return &WorkUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkClient) UpdateOne(_m *Work) *WorkUpdateOne {
	mutation := newWorkMutation(c.config, OpUpdateOne, withWork(_m))
	return &WorkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkClient) UpdateOneID(id uuid.UUID) *WorkUpdateOne {
	mutation := newWorkMutation(c.config, OpUpdateOne, withWorkID(id))
	return &WorkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Work.
func (c *WorkClient) Delete() *WorkDelete {
	mutation := newWorkMutation(c.config, OpDelete)
	return &WorkDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkClient) DeleteOne(_m *Work) *WorkDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkClient) DeleteOneID(id uuid.UUID) *WorkDeleteOne {
	builder := c.Delete().Where(work.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkDeleteOne{builder}
}

// Query returns a query builder for Work.
func (c *WorkClient) Query() *WorkQuery {
	return &WorkQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWork},
		inters: c.Interceptors(),
	}
}

// Get returns a Work entity by its id.
func (c *WorkClient) Get(ctx context.Context, id uuid.UUID) (*Work, error) {
	return c.Query().Where(work.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkClient) GetX(ctx context.Context, id uuid.UUID) *Work {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryChild queries the child edge of a Work.
func (c *WorkClient) QueryChild(_m *Work) *ChildQuery {
	query := (&ChildClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(work.Table, work.FieldID, id),
			sqlgraph.To(child.Table, child.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, work.ChildTable, work.ChildColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkClient) Hooks() []Hook {
	return c.hooks.Work
}

// Interceptors returns the client interceptors.
func (c *WorkClient) Interceptors() []Interceptor {
	return c.inters.Work
}

func (c *WorkClient) mutate(ctx context.Context, m *WorkMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Work mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Assessment, Badge, BadgeAward, Child, CoCreationContribution, CoCreationTheme,
		CoachSession, GrowthRecord, LLMRequestEvent, Task, TaskRecord, User,
		WeeklyReport, Work []ent.Hook
	}
	inters struct {
		Assessment, Badge, BadgeAward, Child, CoCreationContribution, CoCreationTheme,
		CoachSession, GrowthRecord, LLMRequestEvent, Task, TaskRecord, User,
		WeeklyReport, Work []ent.Interceptor
	}
)
