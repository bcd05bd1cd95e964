// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent/quote"
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent/renderjob"
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent/tenantcredential"
	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent/tenantrenderconfig"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Quote is the client for interacting with the Quote builders.
	Quote *QuoteClient
	// RenderJob is the client for interacting with the RenderJob builders.
	RenderJob *RenderJobClient
	// TenantCredential is the client for interacting with the TenantCredential builders.
	TenantCredential *TenantCredentialClient
	// TenantRenderConfig is the client for interacting with the TenantRenderConfig builders.
	TenantRenderConfig *TenantRenderConfigClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Quote = NewQuoteClient(c.config)
	c.RenderJob = NewRenderJobClient(c.config)
	c.TenantCredential = NewTenantCredentialClient(c.config)
	c.TenantRenderConfig = NewTenantRenderConfigClient(c.config)
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
		Quote:              NewQuoteClient(cfg),
		RenderJob:          NewRenderJobClient(cfg),
		TenantCredential:   NewTenantCredentialClient(cfg),
		TenantRenderConfig: NewTenantRenderConfigClient(cfg),
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
		Quote:              NewQuoteClient(cfg),
		RenderJob:          NewRenderJobClient(cfg),
		TenantCredential:   NewTenantCredentialClient(cfg),
		TenantRenderConfig: NewTenantRenderConfigClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Quote.
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
	c.Quote.Use(hooks...)
	c.RenderJob.Use(hooks...)
	c.TenantCredential.Use(hooks...)
	c.TenantRenderConfig.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Quote.Intercept(interceptors...)
	c.RenderJob.Intercept(interceptors...)
	c.TenantCredential.Intercept(interceptors...)
	c.TenantRenderConfig.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *QuoteMutation:
		return c.Quote.mutate(ctx, m)
	case *RenderJobMutation:
		return c.RenderJob.mutate(ctx, m)
	case *TenantCredentialMutation:
		return c.TenantCredential.mutate(ctx, m)
	case *TenantRenderConfigMutation:
		return c.TenantRenderConfig.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// QuoteClient is a client for the Quote schema.
type QuoteClient struct {
	config
}

// NewQuoteClient returns a client for the Quote from the given config.
func NewQuoteClient(c config) *QuoteClient {
	return &QuoteClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quote.Hooks(f(g(h())))`.
func (c *QuoteClient) Use(hooks ...Hook) {
	c.hooks.Quote = append(c.hooks.Quote, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quote.Intercept(f(g(h())))`.
func (c *QuoteClient) Intercept(interceptors ...Interceptor) {
	c.inters.Quote = append(c.inters.Quote, interceptors...)
}

// Create returns a builder for creating a Quote entity.
func (c *QuoteClient) Create() *QuoteCreate {
	mutation := newQuoteMutation(c.config, OpCreate)
	return &QuoteCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Quote entities.
func (c *QuoteClient) CreateBulk(builders ...*QuoteCreate) *QuoteCreateBulk {
	return &QuoteCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuoteClient) MapCreateBulk(slice any, setFunc func(*QuoteCreate, int)) *QuoteCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuoteCreateBulk{err: fmt.Errorf("calling to QuoteClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuoteCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuoteCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Quote.
func (c *QuoteClient) Update() *QuoteUpdate {
	mutation := newQuoteMutation(c.config, OpUpdate)
	return &QuoteUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuoteClient) UpdateOne(_m *Quote) *QuoteUpdateOne {
	mutation := newQuoteMutation(c.config, OpUpdateOne, withQuote(_m))
	return &QuoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuoteClient) UpdateOneID(id uuid.UUID) *QuoteUpdateOne {
	mutation := newQuoteMutation(c.config, OpUpdateOne, withQuoteID(id))
	return &QuoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Quote.
func (c *QuoteClient) Delete() *QuoteDelete {
	mutation := newQuoteMutation(c.config, OpDelete)
	return &QuoteDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuoteClient) DeleteOne(_m *Quote) *QuoteDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuoteClient) DeleteOneID(id uuid.UUID) *QuoteDeleteOne {
	builder := c.Delete().Where(quote.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuoteDeleteOne{builder}
}

// Query returns a query builder for Quote.
func (c *QuoteClient) Query() *QuoteQuery {
	return &QuoteQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuote},
		inters: c.Interceptors(),
	}
}

// Get returns a Quote entity by its id.
func (c *QuoteClient) Get(ctx context.Context, id uuid.UUID) (*Quote, error) {
	return c.Query().Where(quote.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuoteClient) GetX(ctx context.Context, id uuid.UUID) *Quote {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRenderJobs queries the render_jobs edge of a Quote.
func (c *QuoteClient) QueryRenderJobs(_m *Quote) *RenderJobQuery {
	query := (&RenderJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(quote.Table, quote.FieldID, id),
			sqlgraph.To(renderjob.Table, renderjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, quote.RenderJobsTable, quote.RenderJobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *QuoteClient) Hooks() []Hook {
	return c.hooks.Quote
}

// Interceptors returns the client interceptors.
func (c *QuoteClient) Interceptors() []Interceptor {
	return c.inters.Quote
}

func (c *QuoteClient) mutate(ctx context.Context, m *QuoteMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuoteCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuoteUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuoteDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Quote mutation op: %q", m.Op())
	}
}

// RenderJobClient is a client for the RenderJob schema.
type RenderJobClient struct {
	config
}

// NewRenderJobClient returns a client for the RenderJob from the given config.
func NewRenderJobClient(c config) *RenderJobClient {
	return &RenderJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `renderjob.Hooks(f(g(h())))`.
func (c *RenderJobClient) Use(hooks ...Hook) {
	c.hooks.RenderJob = append(c.hooks.RenderJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `renderjob.Intercept(f(g(h())))`.
func (c *RenderJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.RenderJob = append(c.inters.RenderJob, interceptors...)
}

// Create returns a builder for creating a RenderJob entity.
func (c *RenderJobClient) Create() *RenderJobCreate {
	mutation := newRenderJobMutation(c.config, OpCreate)
	return &RenderJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RenderJob entities.
func (c *RenderJobClient) CreateBulk(builders ...*RenderJobCreate) *RenderJobCreateBulk {
	return &RenderJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RenderJobClient) MapCreateBulk(slice any, setFunc func(*RenderJobCreate, int)) *RenderJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RenderJobCreateBulk{err: fmt.Errorf("calling to RenderJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RenderJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RenderJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RenderJob.
func (c *RenderJobClient) Update() *RenderJobUpdate {
	mutation := newRenderJobMutation(c.config, OpUpdate)
	return &RenderJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RenderJobClient) UpdateOne(_m *RenderJob) *RenderJobUpdateOne {
	mutation := newRenderJobMutation(c.config, OpUpdateOne, withRenderJob(_m))
	return &RenderJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RenderJobClient) UpdateOneID(id uuid.UUID) *RenderJobUpdateOne {
	mutation := newRenderJobMutation(c.config, OpUpdateOne, withRenderJobID(id))
	return &RenderJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RenderJob.
func (c *RenderJobClient) Delete() *RenderJobDelete {
	mutation := newRenderJobMutation(c.config, OpDelete)
	return &RenderJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RenderJobClient) DeleteOne(_m *RenderJob) *RenderJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RenderJobClient) DeleteOneID(id uuid.UUID) *RenderJobDeleteOne {
	builder := c.Delete().Where(renderjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RenderJobDeleteOne{builder}
}

// Query returns a query builder for RenderJob.
func (c *RenderJobClient) Query() *RenderJobQuery {
	return &RenderJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRenderJob},
		inters: c.Interceptors(),
	}
}

// Get returns a RenderJob entity by its id.
func (c *RenderJobClient) Get(ctx context.Context, id uuid.UUID) (*RenderJob, error) {
	return c.Query().Where(renderjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RenderJobClient) GetX(ctx context.Context, id uuid.UUID) *RenderJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryQuote queries the quote edge of a RenderJob.
func (c *RenderJobClient) QueryQuote(_m *RenderJob) *QuoteQuery {
	query := (&QuoteClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(renderjob.Table, renderjob.FieldID, id),
			sqlgraph.To(quote.Table, quote.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, renderjob.QuoteTable, renderjob.QuoteColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RenderJobClient) Hooks() []Hook {
	return c.hooks.RenderJob
}

// Interceptors returns the client interceptors.
func (c *RenderJobClient) Interceptors() []Interceptor {
	return c.inters.RenderJob
}

func (c *RenderJobClient) mutate(ctx context.Context, m *RenderJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RenderJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RenderJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RenderJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RenderJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RenderJob mutation op: %q", m.Op())
	}
}

// TenantCredentialClient is a client for the TenantCredential schema.
type TenantCredentialClient struct {
	config
}

// NewTenantCredentialClient returns a client for the TenantCredential from the given config.
func NewTenantCredentialClient(c config) *TenantCredentialClient {
	return &TenantCredentialClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tenantcredential.Hooks(f(g(h())))`.
func (c *TenantCredentialClient) Use(hooks ...Hook) {
	c.hooks.TenantCredential = append(c.hooks.TenantCredential, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tenantcredential.Intercept(f(g(h())))`.
func (c *TenantCredentialClient) Intercept(interceptors ...Interceptor) {
	c.inters.TenantCredential = append(c.inters.TenantCredential, interceptors...)
}

// Create returns a builder for creating a TenantCredential entity.
func (c *TenantCredentialClient) Create() *TenantCredentialCreate {
	mutation := newTenantCredentialMutation(c.config, OpCreate)
	return &TenantCredentialCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TenantCredential entities.
func (c *TenantCredentialClient) CreateBulk(builders ...*TenantCredentialCreate) *TenantCredentialCreateBulk {
	return &TenantCredentialCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TenantCredentialClient) MapCreateBulk(slice any, setFunc func(*TenantCredentialCreate, int)) *TenantCredentialCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TenantCredentialCreateBulk{err: fmt.Errorf("calling to TenantCredentialClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TenantCredentialCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TenantCredentialCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TenantCredential.
func (c *TenantCredentialClient) Update() *TenantCredentialUpdate {
	mutation := newTenantCredentialMutation(c.config, OpUpdate)
	return &TenantCredentialUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TenantCredentialClient) UpdateOne(_m *TenantCredential) *TenantCredentialUpdateOne {
	mutation := newTenantCredentialMutation(c.config, OpUpdateOne, withTenantCredential(_m))
	return &TenantCredentialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TenantCredentialClient) UpdateOneID(id uuid.UUID) *TenantCredentialUpdateOne {
	mutation := newTenantCredentialMutation(c.config, OpUpdateOne, withTenantCredentialID(id))
	return &TenantCredentialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TenantCredential.
func (c *TenantCredentialClient) Delete() *TenantCredentialDelete {
	mutation := newTenantCredentialMutation(c.config, OpDelete)
	return &TenantCredentialDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TenantCredentialClient) DeleteOne(_m *TenantCredential) *TenantCredentialDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TenantCredentialClient) DeleteOneID(id uuid.UUID) *TenantCredentialDeleteOne {
	builder := c.Delete().Where(tenantcredential.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TenantCredentialDeleteOne{builder}
}

// Query returns a query builder for TenantCredential.
func (c *TenantCredentialClient) Query() *TenantCredentialQuery {
	return &TenantCredentialQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTenantCredential},
		inters: c.Interceptors(),
	}
}

// Get returns a TenantCredential entity by its id.
func (c *TenantCredentialClient) Get(ctx context.Context, id uuid.UUID) (*TenantCredential, error) {
	return c.Query().Where(tenantcredential.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TenantCredentialClient) GetX(ctx context.Context, id uuid.UUID) *TenantCredential {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TenantCredentialClient) Hooks() []Hook {
	return c.hooks.TenantCredential
}

// Interceptors returns the client interceptors.
func (c *TenantCredentialClient) Interceptors() []Interceptor {
	return c.inters.TenantCredential
}

func (c *TenantCredentialClient) mutate(ctx context.Context, m *TenantCredentialMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TenantCredentialCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TenantCredentialUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TenantCredentialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TenantCredentialDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TenantCredential mutation op: %q", m.Op())
	}
}

// TenantRenderConfigClient is a client for the TenantRenderConfig schema.
type TenantRenderConfigClient struct {
	config
}

// NewTenantRenderConfigClient returns a client for the TenantRenderConfig from the given config.
func NewTenantRenderConfigClient(c config) *TenantRenderConfigClient {
	return &TenantRenderConfigClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tenantrenderconfig.Hooks(f(g(h())))`.
func (c *TenantRenderConfigClient) Use(hooks ...Hook) {
	c.hooks.TenantRenderConfig = append(c.hooks.TenantRenderConfig, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tenantrenderconfig.Intercept(f(g(h())))`.
func (c *TenantRenderConfigClient) Intercept(interceptors ...Interceptor) {
	c.inters.TenantRenderConfig = append(c.inters.TenantRenderConfig, interceptors...)
}

// Create returns a builder for creating a TenantRenderConfig entity.
func (c *TenantRenderConfigClient) Create() *TenantRenderConfigCreate {
	mutation := newTenantRenderConfigMutation(c.config, OpCreate)
	return &TenantRenderConfigCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TenantRenderConfig entities.
func (c *TenantRenderConfigClient) CreateBulk(builders ...*TenantRenderConfigCreate) *TenantRenderConfigCreateBulk {
	return &TenantRenderConfigCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TenantRenderConfigClient) MapCreateBulk(slice any, setFunc func(*TenantRenderConfigCreate, int)) *TenantRenderConfigCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TenantRenderConfigCreateBulk{err: fmt.Errorf("calling to TenantRenderConfigClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TenantRenderConfigCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TenantRenderConfigCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TenantRenderConfig.
func (c *TenantRenderConfigClient) Update() *TenantRenderConfigUpdate {
	mutation := newTenantRenderConfigMutation(c.config, OpUpdate)
	return &TenantRenderConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TenantRenderConfigClient) UpdateOne(_m *TenantRenderConfig) *TenantRenderConfigUpdateOne {
	mutation := newTenantRenderConfigMutation(c.config, OpUpdateOne, withTenantRenderConfig(_m))
	return &TenantRenderConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TenantRenderConfigClient) UpdateOneID(id uuid.UUID) *TenantRenderConfigUpdateOne {
	mutation := newTenantRenderConfigMutation(c.config, OpUpdateOne, withTenantRenderConfigID(id))
	return &TenantRenderConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TenantRenderConfig.
func (c *TenantRenderConfigClient) Delete() *TenantRenderConfigDelete {
	mutation := newTenantRenderConfigMutation(c.config, OpDelete)
	return &TenantRenderConfigDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TenantRenderConfigClient) DeleteOne(_m *TenantRenderConfig) *TenantRenderConfigDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TenantRenderConfigClient) DeleteOneID(id uuid.UUID) *TenantRenderConfigDeleteOne {
	builder := c.Delete().Where(tenantrenderconfig.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TenantRenderConfigDeleteOne{builder}
}

// Query returns a query builder for TenantRenderConfig.
func (c *TenantRenderConfigClient) Query() *TenantRenderConfigQuery {
	return &TenantRenderConfigQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTenantRenderConfig},
		inters: c.Interceptors(),
	}
}

// Get returns a TenantRenderConfig entity by its id.
func (c *TenantRenderConfigClient) Get(ctx context.Context, id uuid.UUID) (*TenantRenderConfig, error) {
	return c.Query().Where(tenantrenderconfig.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TenantRenderConfigClient) GetX(ctx context.Context, id uuid.UUID) *TenantRenderConfig {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TenantRenderConfigClient) Hooks() []Hook {
	return c.hooks.TenantRenderConfig
}

// Interceptors returns the client interceptors.
func (c *TenantRenderConfigClient) Interceptors() []Interceptor {
	return c.inters.TenantRenderConfig
}

func (c *TenantRenderConfigClient) mutate(ctx context.Context, m *TenantRenderConfigMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TenantRenderConfigCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TenantRenderConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TenantRenderConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TenantRenderConfigDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TenantRenderConfig mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Quote, RenderJob, TenantCredential, TenantRenderConfig []ent.Hook
	}
	inters struct {
		Quote, RenderJob, TenantCredential, TenantRenderConfig []ent.Interceptor
	}
)
