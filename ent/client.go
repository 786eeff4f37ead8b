// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/probeworks/diligent/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/probeworks/diligent/ent/citation"
	"github.com/probeworks/diligent/ent/collectorjob"
	"github.com/probeworks/diligent/ent/event"
	"github.com/probeworks/diligent/ent/evidence"
	"github.com/probeworks/diligent/ent/evidencecollection"
	"github.com/probeworks/diligent/ent/report"
	"github.com/probeworks/diligent/ent/reportsection"
	"github.com/probeworks/diligent/ent/scanrequest"
	"github.com/probeworks/diligent/ent/stageresult"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Citation is the client for interacting with the Citation builders.
	Citation *CitationClient
	// CollectorJob is the client for interacting with the CollectorJob builders.
	CollectorJob *CollectorJobClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// Evidence is the client for interacting with the Evidence builders.
	Evidence *EvidenceClient
	// EvidenceCollection is the client for interacting with the EvidenceCollection builders.
	EvidenceCollection *EvidenceCollectionClient
	// Report is the client for interacting with the Report builders.
	Report *ReportClient
	// ReportSection is the client for interacting with the ReportSection builders.
	ReportSection *ReportSectionClient
	// ScanRequest is the client for interacting with the ScanRequest builders.
	ScanRequest *ScanRequestClient
	// StageResult is the client for interacting with the StageResult builders.
	StageResult *StageResultClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Citation = NewCitationClient(c.config)
	c.CollectorJob = NewCollectorJobClient(c.config)
	c.Event = NewEventClient(c.config)
	c.Evidence = NewEvidenceClient(c.config)
	c.EvidenceCollection = NewEvidenceCollectionClient(c.config)
	c.Report = NewReportClient(c.config)
	c.ReportSection = NewReportSectionClient(c.config)
	c.ScanRequest = NewScanRequestClient(c.config)
	c.StageResult = NewStageResultClient(c.config)
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
		ctx:                ctx,
		config:             cfg,
		Citation:           NewCitationClient(cfg),
		CollectorJob:       NewCollectorJobClient(cfg),
		Event:              NewEventClient(cfg),
		Evidence:           NewEvidenceClient(cfg),
		EvidenceCollection: NewEvidenceCollectionClient(cfg),
		Report:             NewReportClient(cfg),
		ReportSection:      NewReportSectionClient(cfg),
		ScanRequest:        NewScanRequestClient(cfg),
		StageResult:        NewStageResultClient(cfg),
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
		ctx:                ctx,
		config:             cfg,
		Citation:           NewCitationClient(cfg),
		CollectorJob:       NewCollectorJobClient(cfg),
		Event:              NewEventClient(cfg),
		Evidence:           NewEvidenceClient(cfg),
		EvidenceCollection: NewEvidenceCollectionClient(cfg),
		Report:             NewReportClient(cfg),
		ReportSection:      NewReportSectionClient(cfg),
		ScanRequest:        NewScanRequestClient(cfg),
		StageResult:        NewStageResultClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Citation.
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
		c.Citation, c.CollectorJob, c.Event, c.Evidence, c.EvidenceCollection, c.Report,
		c.ReportSection, c.ScanRequest, c.StageResult,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Citation, c.CollectorJob, c.Event, c.Evidence, c.EvidenceCollection, c.Report,
		c.ReportSection, c.ScanRequest, c.StageResult,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CitationMutation:
		return c.Citation.mutate(ctx, m)
	case *CollectorJobMutation:
		return c.CollectorJob.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *EvidenceMutation:
		return c.Evidence.mutate(ctx, m)
	case *EvidenceCollectionMutation:
		return c.EvidenceCollection.mutate(ctx, m)
	case *ReportMutation:
		return c.Report.mutate(ctx, m)
	case *ReportSectionMutation:
		return c.ReportSection.mutate(ctx, m)
	case *ScanRequestMutation:
		return c.ScanRequest.mutate(ctx, m)
	case *StageResultMutation:
		return c.StageResult.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CitationClient is a client for the Citation schema.
type CitationClient struct {
	config
}

// NewCitationClient returns a client for the Citation from the given config.
func NewCitationClient(c config) *CitationClient {
	return &CitationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `citation.Hooks(f(g(h())))`.
func (c *CitationClient) Use(hooks ...Hook) {
	c.hooks.Citation = append(c.hooks.Citation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `citation.Intercept(f(g(h())))`.
func (c *CitationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Citation = append(c.inters.Citation, interceptors...)
}

// Create returns a builder for creating a Citation entity.
func (c *CitationClient) Create() *CitationCreate {
	mutation := newCitationMutation(c.config, OpCreate)
	return &CitationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Citation entities.
func (c *CitationClient) CreateBulk(builders ...*CitationCreate) *CitationCreateBulk {
	return &CitationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CitationClient) MapCreateBulk(slice any, setFunc func(*CitationCreate, int)) *CitationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CitationCreateBulk{err: fmt.Errorf("calling to CitationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CitationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CitationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Citation.
func (c *CitationClient) Update() *CitationUpdate {
	mutation := newCitationMutation(c.config, OpUpdate)
	return &CitationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CitationClient) UpdateOne(_m *Citation) *CitationUpdateOne {
	mutation := newCitationMutation(c.config, OpUpdateOne, withCitation(_m))
	return &CitationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CitationClient) UpdateOneID(id string) *CitationUpdateOne {
	mutation := newCitationMutation(c.config, OpUpdateOne, withCitationID(id))
	return &CitationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Citation.
func (c *CitationClient) Delete() *CitationDelete {
	mutation := newCitationMutation(c.config, OpDelete)
	return &CitationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CitationClient) DeleteOne(_m *Citation) *CitationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CitationClient) DeleteOneID(id string) *CitationDeleteOne {
	builder := c.Delete().Where(citation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CitationDeleteOne{builder}
}

// Query returns a query builder for Citation.
func (c *CitationClient) Query() *CitationQuery {
	return &CitationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCitation},
		inters: c.Interceptors(),
	}
}

// Get returns a Citation entity by its id.
func (c *CitationClient) Get(ctx context.Context, id string) (*Citation, error) {
	return c.Query().Where(citation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CitationClient) GetX(ctx context.Context, id string) *Citation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryReport queries the report edge of a Citation.
func (c *CitationClient) QueryReport(_m *Citation) *ReportQuery {
	query := (&ReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(citation.Table, citation.FieldID, id),
			sqlgraph.To(report.Table, report.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, citation.ReportTable, citation.ReportColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySection queries the section edge of a Citation.
func (c *CitationClient) QuerySection(_m *Citation) *ReportSectionQuery {
	query := (&ReportSectionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(citation.Table, citation.FieldID, id),
			sqlgraph.To(reportsection.Table, reportsection.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, citation.SectionTable, citation.SectionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvidence queries the evidence edge of a Citation.
func (c *CitationClient) QueryEvidence(_m *Citation) *EvidenceQuery {
	query := (&EvidenceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(citation.Table, citation.FieldID, id),
			sqlgraph.To(evidence.Table, evidence.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, citation.EvidenceTable, citation.EvidenceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CitationClient) Hooks() []Hook {
	return c.hooks.Citation
}

// Interceptors returns the client interceptors.
func (c *CitationClient) Interceptors() []Interceptor {
	return c.inters.Citation
}

func (c *CitationClient) mutate(ctx context.Context, m *CitationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CitationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CitationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CitationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CitationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Citation mutation op: %q", m.Op())
	}
}

// CollectorJobClient is a client for the CollectorJob schema.
type CollectorJobClient struct {
	config
}

// NewCollectorJobClient returns a client for the CollectorJob from the given config.
func NewCollectorJobClient(c config) *CollectorJobClient {
	return &CollectorJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `collectorjob.Hooks(f(g(h())))`.
func (c *CollectorJobClient) Use(hooks ...Hook) {
	c.hooks.CollectorJob = append(c.hooks.CollectorJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `collectorjob.Intercept(f(g(h())))`.
func (c *CollectorJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.CollectorJob = append(c.inters.CollectorJob, interceptors...)
}

// Create returns a builder for creating a CollectorJob entity.
func (c *CollectorJobClient) Create() *CollectorJobCreate {
	mutation := newCollectorJobMutation(c.config, OpCreate)
	return &CollectorJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CollectorJob entities.
func (c *CollectorJobClient) CreateBulk(builders ...*CollectorJobCreate) *CollectorJobCreateBulk {
	return &CollectorJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CollectorJobClient) MapCreateBulk(slice any, setFunc func(*CollectorJobCreate, int)) *CollectorJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CollectorJobCreateBulk{err: fmt.Errorf("calling to CollectorJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CollectorJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CollectorJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CollectorJob.
func (c *CollectorJobClient) Update() *CollectorJobUpdate {
	mutation := newCollectorJobMutation(c.config, OpUpdate)
	return &CollectorJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CollectorJobClient) UpdateOne(_m *CollectorJob) *CollectorJobUpdateOne {
	mutation := newCollectorJobMutation(c.config, OpUpdateOne, withCollectorJob(_m))
	return &CollectorJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CollectorJobClient) UpdateOneID(id string) *CollectorJobUpdateOne {
	mutation := newCollectorJobMutation(c.config, OpUpdateOne, withCollectorJobID(id))
	return &CollectorJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CollectorJob.
func (c *CollectorJobClient) Delete() *CollectorJobDelete {
	mutation := newCollectorJobMutation(c.config, OpDelete)
	return &CollectorJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CollectorJobClient) DeleteOne(_m *CollectorJob) *CollectorJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CollectorJobClient) DeleteOneID(id string) *CollectorJobDeleteOne {
	builder := c.Delete().Where(collectorjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CollectorJobDeleteOne{builder}
}

// Query returns a query builder for CollectorJob.
func (c *CollectorJobClient) Query() *CollectorJobQuery {
	return &CollectorJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCollectorJob},
		inters: c.Interceptors(),
	}
}

// Get returns a CollectorJob entity by its id.
func (c *CollectorJobClient) Get(ctx context.Context, id string) (*CollectorJob, error) {
	return c.Query().Where(collectorjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CollectorJobClient) GetX(ctx context.Context, id string) *CollectorJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryScan queries the scan edge of a CollectorJob.
func (c *CollectorJobClient) QueryScan(_m *CollectorJob) *ScanRequestQuery {
	query := (&ScanRequestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(collectorjob.Table, collectorjob.FieldID, id),
			sqlgraph.To(scanrequest.Table, scanrequest.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, collectorjob.ScanTable, collectorjob.ScanColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CollectorJobClient) Hooks() []Hook {
	return c.hooks.CollectorJob
}

// Interceptors returns the client interceptors.
func (c *CollectorJobClient) Interceptors() []Interceptor {
	return c.inters.CollectorJob
}

func (c *CollectorJobClient) mutate(ctx context.Context, m *CollectorJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CollectorJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CollectorJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CollectorJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CollectorJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CollectorJob mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int64) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int64) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int64) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int64) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryScan queries the scan edge of a Event.
func (c *EventClient) QueryScan(_m *Event) *ScanRequestQuery {
	query := (&ScanRequestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(event.Table, event.FieldID, id),
			sqlgraph.To(scanrequest.Table, scanrequest.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, event.ScanTable, event.ScanColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// EvidenceClient is a client for the Evidence schema.
type EvidenceClient struct {
	config
}

// NewEvidenceClient returns a client for the Evidence from the given config.
func NewEvidenceClient(c config) *EvidenceClient {
	return &EvidenceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `evidence.Hooks(f(g(h())))`.
func (c *EvidenceClient) Use(hooks ...Hook) {
	c.hooks.Evidence = append(c.hooks.Evidence, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `evidence.Intercept(f(g(h())))`.
func (c *EvidenceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Evidence = append(c.inters.Evidence, interceptors...)
}

// Create returns a builder for creating a Evidence entity.
func (c *EvidenceClient) Create() *EvidenceCreate {
	mutation := newEvidenceMutation(c.config, OpCreate)
	return &EvidenceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Evidence entities.
func (c *EvidenceClient) CreateBulk(builders ...*EvidenceCreate) *EvidenceCreateBulk {
	return &EvidenceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EvidenceClient) MapCreateBulk(slice any, setFunc func(*EvidenceCreate, int)) *EvidenceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EvidenceCreateBulk{err: fmt.Errorf("calling to EvidenceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EvidenceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EvidenceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Evidence.
func (c *EvidenceClient) Update() *EvidenceUpdate {
	mutation := newEvidenceMutation(c.config, OpUpdate)
	return &EvidenceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EvidenceClient) UpdateOne(_m *Evidence) *EvidenceUpdateOne {
	mutation := newEvidenceMutation(c.config, OpUpdateOne, withEvidence(_m))
	return &EvidenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EvidenceClient) UpdateOneID(id string) *EvidenceUpdateOne {
	mutation := newEvidenceMutation(c.config, OpUpdateOne, withEvidenceID(id))
	return &EvidenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Evidence.
func (c *EvidenceClient) Delete() *EvidenceDelete {
	mutation := newEvidenceMutation(c.config, OpDelete)
	return &EvidenceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EvidenceClient) DeleteOne(_m *Evidence) *EvidenceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EvidenceClient) DeleteOneID(id string) *EvidenceDeleteOne {
	builder := c.Delete().Where(evidence.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EvidenceDeleteOne{builder}
}

// Query returns a query builder for Evidence.
func (c *EvidenceClient) Query() *EvidenceQuery {
	return &EvidenceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvidence},
		inters: c.Interceptors(),
	}
}

// Get returns a Evidence entity by its id.
func (c *EvidenceClient) Get(ctx context.Context, id string) (*Evidence, error) {
	return c.Query().Where(evidence.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EvidenceClient) GetX(ctx context.Context, id string) *Evidence {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryScan queries the scan edge of a Evidence.
func (c *EvidenceClient) QueryScan(_m *Evidence) *ScanRequestQuery {
	query := (&ScanRequestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(evidence.Table, evidence.FieldID, id),
			sqlgraph.To(scanrequest.Table, scanrequest.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, evidence.ScanTable, evidence.ScanColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCollection queries the collection edge of a Evidence.
func (c *EvidenceClient) QueryCollection(_m *Evidence) *EvidenceCollectionQuery {
	query := (&EvidenceCollectionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(evidence.Table, evidence.FieldID, id),
			sqlgraph.To(evidencecollection.Table, evidencecollection.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, evidence.CollectionTable, evidence.CollectionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCitations queries the citations edge of a Evidence.
func (c *EvidenceClient) QueryCitations(_m *Evidence) *CitationQuery {
	query := (&CitationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(evidence.Table, evidence.FieldID, id),
			sqlgraph.To(citation.Table, citation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, evidence.CitationsTable, evidence.CitationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EvidenceClient) Hooks() []Hook {
	return c.hooks.Evidence
}

// Interceptors returns the client interceptors.
func (c *EvidenceClient) Interceptors() []Interceptor {
	return c.inters.Evidence
}

func (c *EvidenceClient) mutate(ctx context.Context, m *EvidenceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EvidenceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EvidenceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EvidenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EvidenceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Evidence mutation op: %q", m.Op())
	}
}

// EvidenceCollectionClient is a client for the EvidenceCollection schema.
type EvidenceCollectionClient struct {
	config
}

// NewEvidenceCollectionClient returns a client for the EvidenceCollection from the given config.
func NewEvidenceCollectionClient(c config) *EvidenceCollectionClient {
	return &EvidenceCollectionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `evidencecollection.Hooks(f(g(h())))`.
func (c *EvidenceCollectionClient) Use(hooks ...Hook) {
	c.hooks.EvidenceCollection = append(c.hooks.EvidenceCollection, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `evidencecollection.Intercept(f(g(h())))`.
func (c *EvidenceCollectionClient) Intercept(interceptors ...Interceptor) {
	c.inters.EvidenceCollection = append(c.inters.EvidenceCollection, interceptors...)
}

// Create returns a builder for creating a EvidenceCollection entity.
func (c *EvidenceCollectionClient) Create() *EvidenceCollectionCreate {
	mutation := newEvidenceCollectionMutation(c.config, OpCreate)
	return &EvidenceCollectionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EvidenceCollection entities.
func (c *EvidenceCollectionClient) CreateBulk(builders ...*EvidenceCollectionCreate) *EvidenceCollectionCreateBulk {
	return &EvidenceCollectionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EvidenceCollectionClient) MapCreateBulk(slice any, setFunc func(*EvidenceCollectionCreate, int)) *EvidenceCollectionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EvidenceCollectionCreateBulk{err: fmt.Errorf("calling to EvidenceCollectionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EvidenceCollectionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EvidenceCollectionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EvidenceCollection.
func (c *EvidenceCollectionClient) Update() *EvidenceCollectionUpdate {
	mutation := newEvidenceCollectionMutation(c.config, OpUpdate)
	return &EvidenceCollectionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EvidenceCollectionClient) UpdateOne(_m *EvidenceCollection) *EvidenceCollectionUpdateOne {
	mutation := newEvidenceCollectionMutation(c.config, OpUpdateOne, withEvidenceCollection(_m))
	return &EvidenceCollectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EvidenceCollectionClient) UpdateOneID(id string) *EvidenceCollectionUpdateOne {
	mutation := newEvidenceCollectionMutation(c.config, OpUpdateOne, withEvidenceCollectionID(id))
	return &EvidenceCollectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EvidenceCollection.
func (c *EvidenceCollectionClient) Delete() *EvidenceCollectionDelete {
	mutation := newEvidenceCollectionMutation(c.config, OpDelete)
	return &EvidenceCollectionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EvidenceCollectionClient) DeleteOne(_m *EvidenceCollection) *EvidenceCollectionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EvidenceCollectionClient) DeleteOneID(id string) *EvidenceCollectionDeleteOne {
	builder := c.Delete().Where(evidencecollection.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EvidenceCollectionDeleteOne{builder}
}

// Query returns a query builder for EvidenceCollection.
func (c *EvidenceCollectionClient) Query() *EvidenceCollectionQuery {
	return &EvidenceCollectionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvidenceCollection},
		inters: c.Interceptors(),
	}
}

// Get returns a EvidenceCollection entity by its id.
func (c *EvidenceCollectionClient) Get(ctx context.Context, id string) (*EvidenceCollection, error) {
	return c.Query().Where(evidencecollection.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EvidenceCollectionClient) GetX(ctx context.Context, id string) *EvidenceCollection {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryScan queries the scan edge of a EvidenceCollection.
func (c *EvidenceCollectionClient) QueryScan(_m *EvidenceCollection) *ScanRequestQuery {
	query := (&ScanRequestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(evidencecollection.Table, evidencecollection.FieldID, id),
			sqlgraph.To(scanrequest.Table, scanrequest.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, evidencecollection.ScanTable, evidencecollection.ScanColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryItems queries the items edge of a EvidenceCollection.
func (c *EvidenceCollectionClient) QueryItems(_m *EvidenceCollection) *EvidenceQuery {
	query := (&EvidenceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(evidencecollection.Table, evidencecollection.FieldID, id),
			sqlgraph.To(evidence.Table, evidence.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, evidencecollection.ItemsTable, evidencecollection.ItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EvidenceCollectionClient) Hooks() []Hook {
	return c.hooks.EvidenceCollection
}

// Interceptors returns the client interceptors.
func (c *EvidenceCollectionClient) Interceptors() []Interceptor {
	return c.inters.EvidenceCollection
}

func (c *EvidenceCollectionClient) mutate(ctx context.Context, m *EvidenceCollectionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EvidenceCollectionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EvidenceCollectionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EvidenceCollectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EvidenceCollectionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EvidenceCollection mutation op: %q", m.Op())
	}
}

// ReportClient is a client for the Report schema.
type ReportClient struct {
	config
}

// NewReportClient returns a client for the Report from the given config.
func NewReportClient(c config) *ReportClient {
	return &ReportClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `report.Hooks(f(g(h())))`.
func (c *ReportClient) Use(hooks ...Hook) {
	c.hooks.Report = append(c.hooks.Report, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `report.Intercept(f(g(h())))`.
func (c *ReportClient) Intercept(interceptors ...Interceptor) {
	c.inters.Report = append(c.inters.Report, interceptors...)
}

// Create returns a builder for creating a Report entity.
func (c *ReportClient) Create() *ReportCreate {
	mutation := newReportMutation(c.config, OpCreate)
	return &ReportCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Report entities.
func (c *ReportClient) CreateBulk(builders ...*ReportCreate) *ReportCreateBulk {
	return &ReportCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReportClient) MapCreateBulk(slice any, setFunc func(*ReportCreate, int)) *ReportCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReportCreateBulk{err: fmt.Errorf("calling to ReportClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReportCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReportCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Report.
func (c *ReportClient) Update() *ReportUpdate {
	mutation := newReportMutation(c.config, OpUpdate)
	return &ReportUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReportClient) UpdateOne(_m *Report) *ReportUpdateOne {
	mutation := newReportMutation(c.config, OpUpdateOne, withReport(_m))
	return &ReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReportClient) UpdateOneID(id string) *ReportUpdateOne {
	mutation := newReportMutation(c.config, OpUpdateOne, withReportID(id))
	return &ReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Report.
func (c *ReportClient) Delete() *ReportDelete {
	mutation := newReportMutation(c.config, OpDelete)
	return &ReportDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReportClient) DeleteOne(_m *Report) *ReportDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReportClient) DeleteOneID(id string) *ReportDeleteOne {
	builder := c.Delete().Where(report.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReportDeleteOne{builder}
}

// Query returns a query builder for Report.
func (c *ReportClient) Query() *ReportQuery {
	return &ReportQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReport},
		inters: c.Interceptors(),
	}
}

// Get returns a Report entity by its id.
func (c *ReportClient) Get(ctx context.Context, id string) (*Report, error) {
	return c.Query().Where(report.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReportClient) GetX(ctx context.Context, id string) *Report {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryScan queries the scan edge of a Report.
func (c *ReportClient) QueryScan(_m *Report) *ScanRequestQuery {
	query := (&ScanRequestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(report.Table, report.FieldID, id),
			sqlgraph.To(scanrequest.Table, scanrequest.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, report.ScanTable, report.ScanColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySections queries the sections edge of a Report.
func (c *ReportClient) QuerySections(_m *Report) *ReportSectionQuery {
	query := (&ReportSectionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(report.Table, report.FieldID, id),
			sqlgraph.To(reportsection.Table, reportsection.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, report.SectionsTable, report.SectionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCitations queries the citations edge of a Report.
func (c *ReportClient) QueryCitations(_m *Report) *CitationQuery {
	query := (&CitationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(report.Table, report.FieldID, id),
			sqlgraph.To(citation.Table, citation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, report.CitationsTable, report.CitationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ReportClient) Hooks() []Hook {
	return c.hooks.Report
}

// Interceptors returns the client interceptors.
func (c *ReportClient) Interceptors() []Interceptor {
	return c.inters.Report
}

func (c *ReportClient) mutate(ctx context.Context, m *ReportMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReportCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReportUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReportDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Report mutation op: %q", m.Op())
	}
}

// ReportSectionClient is a client for the ReportSection schema.
type ReportSectionClient struct {
	config
}

// NewReportSectionClient returns a client for the ReportSection from the given config.
func NewReportSectionClient(c config) *ReportSectionClient {
	return &ReportSectionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reportsection.Hooks(f(g(h())))`.
func (c *ReportSectionClient) Use(hooks ...Hook) {
	c.hooks.ReportSection = append(c.hooks.ReportSection, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reportsection.Intercept(f(g(h())))`.
func (c *ReportSectionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReportSection = append(c.inters.ReportSection, interceptors...)
}

// Create returns a builder for creating a ReportSection entity.
func (c *ReportSectionClient) Create() *ReportSectionCreate {
	mutation := newReportSectionMutation(c.config, OpCreate)
	return &ReportSectionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReportSection entities.
func (c *ReportSectionClient) CreateBulk(builders ...*ReportSectionCreate) *ReportSectionCreateBulk {
	return &ReportSectionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReportSectionClient) MapCreateBulk(slice any, setFunc func(*ReportSectionCreate, int)) *ReportSectionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReportSectionCreateBulk{err: fmt.Errorf("calling to ReportSectionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReportSectionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReportSectionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReportSection.
func (c *ReportSectionClient) Update() *ReportSectionUpdate {
	mutation := newReportSectionMutation(c.config, OpUpdate)
	return &ReportSectionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReportSectionClient) UpdateOne(_m *ReportSection) *ReportSectionUpdateOne {
	mutation := newReportSectionMutation(c.config, OpUpdateOne, withReportSection(_m))
	return &ReportSectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReportSectionClient) UpdateOneID(id string) *ReportSectionUpdateOne {
	mutation := newReportSectionMutation(c.config, OpUpdateOne, withReportSectionID(id))
	return &ReportSectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReportSection.
func (c *ReportSectionClient) Delete() *ReportSectionDelete {
	mutation := newReportSectionMutation(c.config, OpDelete)
	return &ReportSectionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReportSectionClient) DeleteOne(_m *ReportSection) *ReportSectionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReportSectionClient) DeleteOneID(id string) *ReportSectionDeleteOne {
	builder := c.Delete().Where(reportsection.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReportSectionDeleteOne{builder}
}

// Query returns a query builder for ReportSection.
func (c *ReportSectionClient) Query() *ReportSectionQuery {
	return &ReportSectionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReportSection},
		inters: c.Interceptors(),
	}
}

// Get returns a ReportSection entity by its id.
func (c *ReportSectionClient) Get(ctx context.Context, id string) (*ReportSection, error) {
	return c.Query().Where(reportsection.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReportSectionClient) GetX(ctx context.Context, id string) *ReportSection {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryReport queries the report edge of a ReportSection.
func (c *ReportSectionClient) QueryReport(_m *ReportSection) *ReportQuery {
	query := (&ReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(reportsection.Table, reportsection.FieldID, id),
			sqlgraph.To(report.Table, report.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, reportsection.ReportTable, reportsection.ReportColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCitations queries the citations edge of a ReportSection.
func (c *ReportSectionClient) QueryCitations(_m *ReportSection) *CitationQuery {
	query := (&CitationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(reportsection.Table, reportsection.FieldID, id),
			sqlgraph.To(citation.Table, citation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, reportsection.CitationsTable, reportsection.CitationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ReportSectionClient) Hooks() []Hook {
	return c.hooks.ReportSection
}

// Interceptors returns the client interceptors.
func (c *ReportSectionClient) Interceptors() []Interceptor {
	return c.inters.ReportSection
}

func (c *ReportSectionClient) mutate(ctx context.Context, m *ReportSectionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReportSectionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReportSectionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReportSectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReportSectionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReportSection mutation op: %q", m.Op())
	}
}

// ScanRequestClient is a client for the ScanRequest schema.
type ScanRequestClient struct {
	config
}

// NewScanRequestClient returns a client for the ScanRequest from the given config.
func NewScanRequestClient(c config) *ScanRequestClient {
	return &ScanRequestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scanrequest.Hooks(f(g(h())))`.
func (c *ScanRequestClient) Use(hooks ...Hook) {
	c.hooks.ScanRequest = append(c.hooks.ScanRequest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scanrequest.Intercept(f(g(h())))`.
func (c *ScanRequestClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScanRequest = append(c.inters.ScanRequest, interceptors...)
}

// Create returns a builder for creating a ScanRequest entity.
func (c *ScanRequestClient) Create() *ScanRequestCreate {
	mutation := newScanRequestMutation(c.config, OpCreate)
	return &ScanRequestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScanRequest entities.
func (c *ScanRequestClient) CreateBulk(builders ...*ScanRequestCreate) *ScanRequestCreateBulk {
	return &ScanRequestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScanRequestClient) MapCreateBulk(slice any, setFunc func(*ScanRequestCreate, int)) *ScanRequestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScanRequestCreateBulk{err: fmt.Errorf("calling to ScanRequestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScanRequestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScanRequestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScanRequest.
func (c *ScanRequestClient) Update() *ScanRequestUpdate {
	mutation := newScanRequestMutation(c.config, OpUpdate)
	return &ScanRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScanRequestClient) UpdateOne(_m *ScanRequest) *ScanRequestUpdateOne {
	mutation := newScanRequestMutation(c.config, OpUpdateOne, withScanRequest(_m))
	return &ScanRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScanRequestClient) UpdateOneID(id string) *ScanRequestUpdateOne {
	mutation := newScanRequestMutation(c.config, OpUpdateOne, withScanRequestID(id))
	return &ScanRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScanRequest.
func (c *ScanRequestClient) Delete() *ScanRequestDelete {
	mutation := newScanRequestMutation(c.config, OpDelete)
	return &ScanRequestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScanRequestClient) DeleteOne(_m *ScanRequest) *ScanRequestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScanRequestClient) DeleteOneID(id string) *ScanRequestDeleteOne {
	builder := c.Delete().Where(scanrequest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScanRequestDeleteOne{builder}
}

// Query returns a query builder for ScanRequest.
func (c *ScanRequestClient) Query() *ScanRequestQuery {
	return &ScanRequestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScanRequest},
		inters: c.Interceptors(),
	}
}

// Get returns a ScanRequest entity by its id.
func (c *ScanRequestClient) Get(ctx context.Context, id string) (*ScanRequest, error) {
	return c.Query().Where(scanrequest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScanRequestClient) GetX(ctx context.Context, id string) *ScanRequest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJobs queries the jobs edge of a ScanRequest.
func (c *ScanRequestClient) QueryJobs(_m *ScanRequest) *CollectorJobQuery {
	query := (&CollectorJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(scanrequest.Table, scanrequest.FieldID, id),
			sqlgraph.To(collectorjob.Table, collectorjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, scanrequest.JobsTable, scanrequest.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvidenceCollection queries the evidence_collection edge of a ScanRequest.
func (c *ScanRequestClient) QueryEvidenceCollection(_m *ScanRequest) *EvidenceCollectionQuery {
	query := (&EvidenceCollectionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(scanrequest.Table, scanrequest.FieldID, id),
			sqlgraph.To(evidencecollection.Table, evidencecollection.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, scanrequest.EvidenceCollectionTable, scanrequest.EvidenceCollectionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvidence queries the evidence edge of a ScanRequest.
func (c *ScanRequestClient) QueryEvidence(_m *ScanRequest) *EvidenceQuery {
	query := (&EvidenceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(scanrequest.Table, scanrequest.FieldID, id),
			sqlgraph.To(evidence.Table, evidence.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, scanrequest.EvidenceTable, scanrequest.EvidenceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStageResults queries the stage_results edge of a ScanRequest.
func (c *ScanRequestClient) QueryStageResults(_m *ScanRequest) *StageResultQuery {
	query := (&StageResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(scanrequest.Table, scanrequest.FieldID, id),
			sqlgraph.To(stageresult.Table, stageresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, scanrequest.StageResultsTable, scanrequest.StageResultsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReports queries the reports edge of a ScanRequest.
func (c *ScanRequestClient) QueryReports(_m *ScanRequest) *ReportQuery {
	query := (&ReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(scanrequest.Table, scanrequest.FieldID, id),
			sqlgraph.To(report.Table, report.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, scanrequest.ReportsTable, scanrequest.ReportsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a ScanRequest.
func (c *ScanRequestClient) QueryEvents(_m *ScanRequest) *EventQuery {
	query := (&EventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(scanrequest.Table, scanrequest.FieldID, id),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, scanrequest.EventsTable, scanrequest.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ScanRequestClient) Hooks() []Hook {
	return c.hooks.ScanRequest
}

// Interceptors returns the client interceptors.
func (c *ScanRequestClient) Interceptors() []Interceptor {
	return c.inters.ScanRequest
}

func (c *ScanRequestClient) mutate(ctx context.Context, m *ScanRequestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScanRequestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScanRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScanRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScanRequestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScanRequest mutation op: %q", m.Op())
	}
}

// StageResultClient is a client for the StageResult schema.
type StageResultClient struct {
	config
}

// NewStageResultClient returns a client for the StageResult from the given config.
func NewStageResultClient(c config) *StageResultClient {
	return &StageResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stageresult.Hooks(f(g(h())))`.
func (c *StageResultClient) Use(hooks ...Hook) {
	c.hooks.StageResult = append(c.hooks.StageResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stageresult.Intercept(f(g(h())))`.
func (c *StageResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.StageResult = append(c.inters.StageResult, interceptors...)
}

// Create returns a builder for creating a StageResult entity.
func (c *StageResultClient) Create() *StageResultCreate {
	mutation := newStageResultMutation(c.config, OpCreate)
	return &StageResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StageResult entities.
func (c *StageResultClient) CreateBulk(builders ...*StageResultCreate) *StageResultCreateBulk {
	return &StageResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StageResultClient) MapCreateBulk(slice any, setFunc func(*StageResultCreate, int)) *StageResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StageResultCreateBulk{err: fmt.Errorf("calling to StageResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StageResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StageResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StageResult.
func (c *StageResultClient) Update() *StageResultUpdate {
	mutation := newStageResultMutation(c.config, OpUpdate)
	return &StageResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StageResultClient) UpdateOne(_m *StageResult) *StageResultUpdateOne {
	mutation := newStageResultMutation(c.config, OpUpdateOne, withStageResult(_m))
	return &StageResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StageResultClient) UpdateOneID(id string) *StageResultUpdateOne {
	mutation := newStageResultMutation(c.config, OpUpdateOne, withStageResultID(id))
	return &StageResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StageResult.
func (c *StageResultClient) Delete() *StageResultDelete {
	mutation := newStageResultMutation(c.config, OpDelete)
	return &StageResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StageResultClient) DeleteOne(_m *StageResult) *StageResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StageResultClient) DeleteOneID(id string) *StageResultDeleteOne {
	builder := c.Delete().Where(stageresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StageResultDeleteOne{builder}
}

// Query returns a query builder for StageResult.
func (c *StageResultClient) Query() *StageResultQuery {
	return &StageResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStageResult},
		inters: c.Interceptors(),
	}
}

// Get returns a StageResult entity by its id.
func (c *StageResultClient) Get(ctx context.Context, id string) (*StageResult, error) {
	return c.Query().Where(stageresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StageResultClient) GetX(ctx context.Context, id string) *StageResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryScan queries the scan edge of a StageResult.
func (c *StageResultClient) QueryScan(_m *StageResult) *ScanRequestQuery {
	query := (&ScanRequestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stageresult.Table, stageresult.FieldID, id),
			sqlgraph.To(scanrequest.Table, scanrequest.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, stageresult.ScanTable, stageresult.ScanColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StageResultClient) Hooks() []Hook {
	return c.hooks.StageResult
}

// Interceptors returns the client interceptors.
func (c *StageResultClient) Interceptors() []Interceptor {
	return c.inters.StageResult
}

func (c *StageResultClient) mutate(ctx context.Context, m *StageResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StageResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StageResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StageResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StageResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StageResult mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Citation, CollectorJob, Event, Evidence, EvidenceCollection, Report,
		ReportSection, ScanRequest, StageResult []ent.Hook
	}
	inters struct {
		Citation, CollectorJob, Event, Evidence, EvidenceCollection, Report,
		ReportSection, ScanRequest, StageResult []ent.Interceptor
	}
)
