// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/medignis/docflow/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/medignis/docflow/gen/ent/documentclass"
	"github.com/medignis/docflow/gen/ent/job"
	"github.com/medignis/docflow/gen/ent/joblease"
	"github.com/medignis/docflow/gen/ent/pipelinestep"
	"github.com/medignis/docflow/gen/ent/stepexecution"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// DocumentClass is the client for interacting with the DocumentClass builders.
	DocumentClass *DocumentClassClient
	// Job is the client for interacting with the Job builders.
	Job *JobClient
	// JobLease is the client for interacting with the JobLease builders.
	JobLease *JobLeaseClient
	// PipelineStep is the client for interacting with the PipelineStep builders.
	PipelineStep *PipelineStepClient
	// StepExecution is the client for interacting with the StepExecution builders.
	StepExecution *StepExecutionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.DocumentClass = NewDocumentClassClient(c.config)
	c.Job = NewJobClient(c.config)
	c.JobLease = NewJobLeaseClient(c.config)
	c.PipelineStep = NewPipelineStepClient(c.config)
	c.StepExecution = NewStepExecutionClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		DocumentClass: NewDocumentClassClient(cfg),
		Job:           NewJobClient(cfg),
		JobLease:      NewJobLeaseClient(cfg),
		PipelineStep:  NewPipelineStepClient(cfg),
		StepExecution: NewStepExecutionClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		DocumentClass: NewDocumentClassClient(cfg),
		Job:           NewJobClient(cfg),
		JobLease:      NewJobLeaseClient(cfg),
		PipelineStep:  NewPipelineStepClient(cfg),
		StepExecution: NewStepExecutionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		DocumentClass.
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
	c.DocumentClass.Use(hooks...)
	c.Job.Use(hooks...)
	c.JobLease.Use(hooks...)
	c.PipelineStep.Use(hooks...)
	c.StepExecution.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.DocumentClass.Intercept(interceptors...)
	c.Job.Intercept(interceptors...)
	c.JobLease.Intercept(interceptors...)
	c.PipelineStep.Intercept(interceptors...)
	c.StepExecution.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DocumentClassMutation:
		return c.DocumentClass.mutate(ctx, m)
	case *JobMutation:
		return c.Job.mutate(ctx, m)
	case *JobLeaseMutation:
		return c.JobLease.mutate(ctx, m)
	case *PipelineStepMutation:
		return c.PipelineStep.mutate(ctx, m)
	case *StepExecutionMutation:
		return c.StepExecution.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DocumentClassClient is a client for the DocumentClass schema.
type DocumentClassClient struct {
	config
}

// NewDocumentClassClient returns a client for the DocumentClass from the given config.
func NewDocumentClassClient(c config) *DocumentClassClient {
	return &DocumentClassClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `documentclass.Hooks(f(g(h())))`.
func (c *DocumentClassClient) Use(hooks ...Hook) {
	c.hooks.DocumentClass = append(c.hooks.DocumentClass, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `documentclass.Intercept(f(g(h())))`.
func (c *DocumentClassClient) Intercept(interceptors ...Interceptor) {
	c.inters.DocumentClass = append(c.inters.DocumentClass, interceptors...)
}

// Create returns a builder for creating a DocumentClass entity.
func (c *DocumentClassClient) Create() *DocumentClassCreate {
	mutation := newDocumentClassMutation(c.config, OpCreate)
	return &DocumentClassCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DocumentClass entities.
func (c *DocumentClassClient) CreateBulk(builders ...*DocumentClassCreate) *DocumentClassCreateBulk {
	return &DocumentClassCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentClassClient) MapCreateBulk(slice any, setFunc func(*DocumentClassCreate, int)) *DocumentClassCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentClassCreateBulk{err: fmt.Errorf("calling to DocumentClassClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentClassCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentClassCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DocumentClass.
func (c *DocumentClassClient) Update() *DocumentClassUpdate {
	mutation := newDocumentClassMutation(c.config, OpUpdate)
	return &DocumentClassUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentClassClient) UpdateOne(_m *DocumentClass) *DocumentClassUpdateOne {
	mutation := newDocumentClassMutation(c.config, OpUpdateOne, withDocumentClass(_m))
	return &DocumentClassUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentClassClient) UpdateOneID(id uuid.UUID) *DocumentClassUpdateOne {
	mutation := newDocumentClassMutation(c.config, OpUpdateOne, withDocumentClassID(id))
	return &DocumentClassUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DocumentClass.
func (c *DocumentClassClient) Delete() *DocumentClassDelete {
	mutation := newDocumentClassMutation(c.config, OpDelete)
	return &DocumentClassDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentClassClient) DeleteOne(_m *DocumentClass) *DocumentClassDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentClassClient) DeleteOneID(id uuid.UUID) *DocumentClassDeleteOne {
	builder := c.Delete().Where(documentclass.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentClassDeleteOne{builder}
}

// Query returns a query builder for DocumentClass.
func (c *DocumentClassClient) Query() *DocumentClassQuery {
	return &DocumentClassQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocumentClass},
		inters: c.Interceptors(),
	}
}

// Get returns a DocumentClass entity by its id.
func (c *DocumentClassClient) Get(ctx context.Context, id uuid.UUID) (*DocumentClass, error) {
	return c.Query().Where(documentclass.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentClassClient) GetX(ctx context.Context, id uuid.UUID) *DocumentClass {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySteps queries the steps edge of a DocumentClass.
func (c *DocumentClassClient) QuerySteps(_m *DocumentClass) *PipelineStepQuery {
	query := (&PipelineStepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(documentclass.Table, documentclass.FieldID, id),
			sqlgraph.To(pipelinestep.Table, pipelinestep.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, documentclass.StepsTable, documentclass.StepsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a DocumentClass.
func (c *DocumentClassClient) QueryJobs(_m *DocumentClass) *JobQuery {
	query := (&JobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(documentclass.Table, documentclass.FieldID, id),
			sqlgraph.To(job.Table, job.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, documentclass.JobsTable, documentclass.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentClassClient) Hooks() []Hook {
	return c.hooks.DocumentClass
}

// Interceptors returns the client interceptors.
func (c *DocumentClassClient) Interceptors() []Interceptor {
	return c.inters.DocumentClass
}

func (c *DocumentClassClient) mutate(ctx context.Context, m *DocumentClassMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentClassCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentClassUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentClassUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentClassDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DocumentClass mutation op: %q", m.Op())
	}
}

// JobClient is a client for the Job schema.
type JobClient struct {
	config
}

// NewJobClient returns a client for the Job from the given config.
func NewJobClient(c config) *JobClient {
	return &JobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `job.Hooks(f(g(h())))`.
func (c *JobClient) Use(hooks ...Hook) {
	c.hooks.Job = append(c.hooks.Job, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `job.Intercept(f(g(h())))`.
func (c *JobClient) Intercept(interceptors ...Interceptor) {
	c.inters.Job = append(c.inters.Job, interceptors...)
}

// Create returns a builder for creating a Job entity.
func (c *JobClient) Create() *JobCreate {
	mutation := newJobMutation(c.config, OpCreate)
	return &JobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Job entities.
func (c *JobClient) CreateBulk(builders ...*JobCreate) *JobCreateBulk {
	return &JobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobClient) MapCreateBulk(slice any, setFunc func(*JobCreate, int)) *JobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobCreateBulk{err: fmt.Errorf("calling to JobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Job.
func (c *JobClient) Update() *JobUpdate {
	mutation := newJobMutation(c.config, OpUpdate)
	return &JobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobClient) UpdateOne(_m *Job) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJob(_m))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobClient) UpdateOneID(id uuid.UUID) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJobID(id))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Job.
func (c *JobClient) Delete() *JobDelete {
	mutation := newJobMutation(c.config, OpDelete)
	return &JobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobClient) DeleteOne(_m *Job) *JobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobClient) DeleteOneID(id uuid.UUID) *JobDeleteOne {
	builder := c.Delete().Where(job.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobDeleteOne{builder}
}

// Query returns a query builder for Job.
func (c *JobClient) Query() *JobQuery {
	return &JobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJob},
		inters: c.Interceptors(),
	}
}

// Get returns a Job entity by its id.
func (c *JobClient) Get(ctx context.Context, id uuid.UUID) (*Job, error) {
	return c.Query().Where(job.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobClient) GetX(ctx context.Context, id uuid.UUID) *Job {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocumentClass queries the document_class edge of a Job.
func (c *JobClient) QueryDocumentClass(_m *Job) *DocumentClassQuery {
	query := (&DocumentClassClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(job.Table, job.FieldID, id),
			sqlgraph.To(documentclass.Table, documentclass.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, job.DocumentClassTable, job.DocumentClassColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryExecutions queries the executions edge of a Job.
func (c *JobClient) QueryExecutions(_m *Job) *StepExecutionQuery {
	query := (&StepExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(job.Table, job.FieldID, id),
			sqlgraph.To(stepexecution.Table, stepexecution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, job.ExecutionsTable, job.ExecutionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *JobClient) Hooks() []Hook {
	return c.hooks.Job
}

// Interceptors returns the client interceptors.
func (c *JobClient) Interceptors() []Interceptor {
	return c.inters.Job
}

func (c *JobClient) mutate(ctx context.Context, m *JobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Job mutation op: %q", m.Op())
	}
}

// JobLeaseClient is a client for the JobLease schema.
type JobLeaseClient struct {
	config
}

// NewJobLeaseClient returns a client for the JobLease from the given config.
func NewJobLeaseClient(c config) *JobLeaseClient {
	return &JobLeaseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `joblease.Hooks(f(g(h())))`.
func (c *JobLeaseClient) Use(hooks ...Hook) {
	c.hooks.JobLease = append(c.hooks.JobLease, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `joblease.Intercept(f(g(h())))`.
func (c *JobLeaseClient) Intercept(interceptors ...Interceptor) {
	c.inters.JobLease = append(c.inters.JobLease, interceptors...)
}

// Create returns a builder for creating a JobLease entity.
func (c *JobLeaseClient) Create() *JobLeaseCreate {
	mutation := newJobLeaseMutation(c.config, OpCreate)
	return &JobLeaseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of JobLease entities.
func (c *JobLeaseClient) CreateBulk(builders ...*JobLeaseCreate) *JobLeaseCreateBulk {
	return &JobLeaseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobLeaseClient) MapCreateBulk(slice any, setFunc func(*JobLeaseCreate, int)) *JobLeaseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobLeaseCreateBulk{err: fmt.Errorf("calling to JobLeaseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobLeaseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobLeaseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for JobLease.
func (c *JobLeaseClient) Update() *JobLeaseUpdate {
	mutation := newJobLeaseMutation(c.config, OpUpdate)
	return &JobLeaseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobLeaseClient) UpdateOne(_m *JobLease) *JobLeaseUpdateOne {
	mutation := newJobLeaseMutation(c.config, OpUpdateOne, withJobLease(_m))
	return &JobLeaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobLeaseClient) UpdateOneID(id uuid.UUID) *JobLeaseUpdateOne {
	mutation := newJobLeaseMutation(c.config, OpUpdateOne, withJobLeaseID(id))
	return &JobLeaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for JobLease.
func (c *JobLeaseClient) Delete() *JobLeaseDelete {
	mutation := newJobLeaseMutation(c.config, OpDelete)
	return &JobLeaseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobLeaseClient) DeleteOne(_m *JobLease) *JobLeaseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobLeaseClient) DeleteOneID(id uuid.UUID) *JobLeaseDeleteOne {
	builder := c.Delete().Where(joblease.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobLeaseDeleteOne{builder}
}

// Query returns a query builder for JobLease.
func (c *JobLeaseClient) Query() *JobLeaseQuery {
	return &JobLeaseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJobLease},
		inters: c.Interceptors(),
	}
}

// Get returns a JobLease entity by its id.
func (c *JobLeaseClient) Get(ctx context.Context, id uuid.UUID) (*JobLease, error) {
	return c.Query().Where(joblease.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobLeaseClient) GetX(ctx context.Context, id uuid.UUID) *JobLease {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *JobLeaseClient) Hooks() []Hook {
	return c.hooks.JobLease
}

// Interceptors returns the client interceptors.
func (c *JobLeaseClient) Interceptors() []Interceptor {
	return c.inters.JobLease
}

func (c *JobLeaseClient) mutate(ctx context.Context, m *JobLeaseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobLeaseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobLeaseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobLeaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobLeaseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown JobLease mutation op: %q", m.Op())
	}
}

// PipelineStepClient is a client for the PipelineStep schema.
type PipelineStepClient struct {
	config
}

// NewPipelineStepClient returns a client for the PipelineStep from the given config.
func NewPipelineStepClient(c config) *PipelineStepClient {
	return &PipelineStepClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pipelinestep.Hooks(f(g(h())))`.
func (c *PipelineStepClient) Use(hooks ...Hook) {
	c.hooks.PipelineStep = append(c.hooks.PipelineStep, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pipelinestep.Intercept(f(g(h())))`.
func (c *PipelineStepClient) Intercept(interceptors ...Interceptor) {
	c.inters.PipelineStep = append(c.inters.PipelineStep, interceptors...)
}

// Create returns a builder for creating a PipelineStep entity.
func (c *PipelineStepClient) Create() *PipelineStepCreate {
	mutation := newPipelineStepMutation(c.config, OpCreate)
	return &PipelineStepCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PipelineStep entities.
func (c *PipelineStepClient) CreateBulk(builders ...*PipelineStepCreate) *PipelineStepCreateBulk {
	return &PipelineStepCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PipelineStepClient) MapCreateBulk(slice any, setFunc func(*PipelineStepCreate, int)) *PipelineStepCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PipelineStepCreateBulk{err: fmt.Errorf("calling to PipelineStepClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PipelineStepCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PipelineStepCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PipelineStep.
func (c *PipelineStepClient) Update() *PipelineStepUpdate {
	mutation := newPipelineStepMutation(c.config, OpUpdate)
	return &PipelineStepUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PipelineStepClient) UpdateOne(_m *PipelineStep) *PipelineStepUpdateOne {
	mutation := newPipelineStepMutation(c.config, OpUpdateOne, withPipelineStep(_m))
	return &PipelineStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PipelineStepClient) UpdateOneID(id uuid.UUID) *PipelineStepUpdateOne {
	mutation := newPipelineStepMutation(c.config, OpUpdateOne, withPipelineStepID(id))
	return &PipelineStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PipelineStep.
func (c *PipelineStepClient) Delete() *PipelineStepDelete {
	mutation := newPipelineStepMutation(c.config, OpDelete)
	return &PipelineStepDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PipelineStepClient) DeleteOne(_m *PipelineStep) *PipelineStepDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PipelineStepClient) DeleteOneID(id uuid.UUID) *PipelineStepDeleteOne {
	builder := c.Delete().Where(pipelinestep.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PipelineStepDeleteOne{builder}
}

// Query returns a query builder for PipelineStep.
func (c *PipelineStepClient) Query() *PipelineStepQuery {
	return &PipelineStepQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePipelineStep},
		inters: c.Interceptors(),
	}
}

// Get returns a PipelineStep entity by its id.
func (c *PipelineStepClient) Get(ctx context.Context, id uuid.UUID) (*PipelineStep, error) {
	return c.Query().Where(pipelinestep.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PipelineStepClient) GetX(ctx context.Context, id uuid.UUID) *PipelineStep {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocumentClass queries the document_class edge of a PipelineStep.
func (c *PipelineStepClient) QueryDocumentClass(_m *PipelineStep) *DocumentClassQuery {
	query := (&DocumentClassClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pipelinestep.Table, pipelinestep.FieldID, id),
			sqlgraph.To(documentclass.Table, documentclass.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, pipelinestep.DocumentClassTable, pipelinestep.DocumentClassColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryExecutions queries the executions edge of a PipelineStep.
func (c *PipelineStepClient) QueryExecutions(_m *PipelineStep) *StepExecutionQuery {
	query := (&StepExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pipelinestep.Table, pipelinestep.FieldID, id),
			sqlgraph.To(stepexecution.Table, stepexecution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, pipelinestep.ExecutionsTable, pipelinestep.ExecutionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PipelineStepClient) Hooks() []Hook {
	return c.hooks.PipelineStep
}

// Interceptors returns the client interceptors.
func (c *PipelineStepClient) Interceptors() []Interceptor {
	return c.inters.PipelineStep
}

func (c *PipelineStepClient) mutate(ctx context.Context, m *PipelineStepMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PipelineStepCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PipelineStepUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PipelineStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PipelineStepDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PipelineStep mutation op: %q", m.Op())
	}
}

// StepExecutionClient is a client for the StepExecution schema.
type StepExecutionClient struct {
	config
}

// NewStepExecutionClient returns a client for the StepExecution from the given config.
func NewStepExecutionClient(c config) *StepExecutionClient {
	return &StepExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stepexecution.Hooks(f(g(h())))`.
func (c *StepExecutionClient) Use(hooks ...Hook) {
	c.hooks.StepExecution = append(c.hooks.StepExecution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stepexecution.Intercept(f(g(h())))`.
func (c *StepExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.StepExecution = append(c.inters.StepExecution, interceptors...)
}

// Create returns a builder for creating a StepExecution entity.
func (c *StepExecutionClient) Create() *StepExecutionCreate {
	mutation := newStepExecutionMutation(c.config, OpCreate)
	return &StepExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StepExecution entities.
func (c *StepExecutionClient) CreateBulk(builders ...*StepExecutionCreate) *StepExecutionCreateBulk {
	return &StepExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StepExecutionClient) MapCreateBulk(slice any, setFunc func(*StepExecutionCreate, int)) *StepExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StepExecutionCreateBulk{err: fmt.Errorf("calling to StepExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StepExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StepExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StepExecution.
func (c *StepExecutionClient) Update() *StepExecutionUpdate {
	mutation := newStepExecutionMutation(c.config, OpUpdate)
	return &StepExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StepExecutionClient) UpdateOne(_m *StepExecution) *StepExecutionUpdateOne {
	mutation := newStepExecutionMutation(c.config, OpUpdateOne, withStepExecution(_m))
	return &StepExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StepExecutionClient) UpdateOneID(id uuid.UUID) *StepExecutionUpdateOne {
	mutation := newStepExecutionMutation(c.config, OpUpdateOne, withStepExecutionID(id))
	return &StepExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StepExecution.
func (c *StepExecutionClient) Delete() *StepExecutionDelete {
	mutation := newStepExecutionMutation(c.config, OpDelete)
	return &StepExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StepExecutionClient) DeleteOne(_m *StepExecution) *StepExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StepExecutionClient) DeleteOneID(id uuid.UUID) *StepExecutionDeleteOne {
	builder := c.Delete().Where(stepexecution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StepExecutionDeleteOne{builder}
}

// Query returns a query builder for StepExecution.
func (c *StepExecutionClient) Query() *StepExecutionQuery {
	return &StepExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStepExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a StepExecution entity by its id.
func (c *StepExecutionClient) Get(ctx context.Context, id uuid.UUID) (*StepExecution, error) {
	return c.Query().Where(stepexecution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StepExecutionClient) GetX(ctx context.Context, id uuid.UUID) *StepExecution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a StepExecution.
func (c *StepExecutionClient) QueryJob(_m *StepExecution) *JobQuery {
	query := (&JobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stepexecution.Table, stepexecution.FieldID, id),
			sqlgraph.To(job.Table, job.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, stepexecution.JobTable, stepexecution.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStep queries the step edge of a StepExecution.
func (c *StepExecutionClient) QueryStep(_m *StepExecution) *PipelineStepQuery {
	query := (&PipelineStepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stepexecution.Table, stepexecution.FieldID, id),
			sqlgraph.To(pipelinestep.Table, pipelinestep.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, stepexecution.StepTable, stepexecution.StepColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StepExecutionClient) Hooks() []Hook {
	return c.hooks.StepExecution
}

// Interceptors returns the client interceptors.
func (c *StepExecutionClient) Interceptors() []Interceptor {
	return c.inters.StepExecution
}

func (c *StepExecutionClient) mutate(ctx context.Context, m *StepExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StepExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StepExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StepExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StepExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StepExecution mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		DocumentClass, Job, JobLease, PipelineStep, StepExecution []ent.Hook
	}
	inters struct {
		DocumentClass, Job, JobLease, PipelineStep, StepExecution []ent.Interceptor
	}
)
