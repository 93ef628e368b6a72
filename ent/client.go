// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/relayforge/relayforge/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/relayforge/relayforge/ent/alertlog"
	"github.com/relayforge/relayforge/ent/circuitstate"
	"github.com/relayforge/relayforge/ent/deliveryattempt"
	"github.com/relayforge/relayforge/ent/dlqentry"
	"github.com/relayforge/relayforge/ent/eventaudit"
	"github.com/relayforge/relayforge/ent/executionlog"
	"github.com/relayforge/relayforge/ent/processedevent"
	"github.com/relayforge/relayforge/ent/scheduledentry"
	"github.com/relayforge/relayforge/ent/sourcecheckpoint"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AlertLog is the client for interacting with the AlertLog builders.
	AlertLog *AlertLogClient
	// CircuitState is the client for interacting with the CircuitState builders.
	CircuitState *CircuitStateClient
	// DLQEntry is the client for interacting with the DLQEntry builders.
	DLQEntry *DLQEntryClient
	// DeliveryAttempt is the client for interacting with the DeliveryAttempt builders.
	DeliveryAttempt *DeliveryAttemptClient
	// EventAudit is the client for interacting with the EventAudit builders.
	EventAudit *EventAuditClient
	// ExecutionLog is the client for interacting with the ExecutionLog builders.
	ExecutionLog *ExecutionLogClient
	// ProcessedEvent is the client for interacting with the ProcessedEvent builders.
	ProcessedEvent *ProcessedEventClient
	// ScheduledEntry is the client for interacting with the ScheduledEntry builders.
	ScheduledEntry *ScheduledEntryClient
	// SourceCheckpoint is the client for interacting with the SourceCheckpoint builders.
	SourceCheckpoint *SourceCheckpointClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AlertLog = NewAlertLogClient(c.config)
	c.CircuitState = NewCircuitStateClient(c.config)
	c.DLQEntry = NewDLQEntryClient(c.config)
	c.DeliveryAttempt = NewDeliveryAttemptClient(c.config)
	c.EventAudit = NewEventAuditClient(c.config)
	c.ExecutionLog = NewExecutionLogClient(c.config)
	c.ProcessedEvent = NewProcessedEventClient(c.config)
	c.ScheduledEntry = NewScheduledEntryClient(c.config)
	c.SourceCheckpoint = NewSourceCheckpointClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		AlertLog:         NewAlertLogClient(cfg),
		CircuitState:     NewCircuitStateClient(cfg),
		DLQEntry:         NewDLQEntryClient(cfg),
		DeliveryAttempt:  NewDeliveryAttemptClient(cfg),
		EventAudit:       NewEventAuditClient(cfg),
		ExecutionLog:     NewExecutionLogClient(cfg),
		ProcessedEvent:   NewProcessedEventClient(cfg),
		ScheduledEntry:   NewScheduledEntryClient(cfg),
		SourceCheckpoint: NewSourceCheckpointClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		AlertLog:         NewAlertLogClient(cfg),
		CircuitState:     NewCircuitStateClient(cfg),
		DLQEntry:         NewDLQEntryClient(cfg),
		DeliveryAttempt:  NewDeliveryAttemptClient(cfg),
		EventAudit:       NewEventAuditClient(cfg),
		ExecutionLog:     NewExecutionLogClient(cfg),
		ProcessedEvent:   NewProcessedEventClient(cfg),
		ScheduledEntry:   NewScheduledEntryClient(cfg),
		SourceCheckpoint: NewSourceCheckpointClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AlertLog.
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
		c.AlertLog, c.CircuitState, c.DLQEntry, c.DeliveryAttempt, c.EventAudit,
		c.ExecutionLog, c.ProcessedEvent, c.ScheduledEntry, c.SourceCheckpoint,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AlertLog, c.CircuitState, c.DLQEntry, c.DeliveryAttempt, c.EventAudit,
		c.ExecutionLog, c.ProcessedEvent, c.ScheduledEntry, c.SourceCheckpoint,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AlertLogMutation:
		return c.AlertLog.mutate(ctx, m)
	case *CircuitStateMutation:
		return c.CircuitState.mutate(ctx, m)
	case *DLQEntryMutation:
		return c.DLQEntry.mutate(ctx, m)
	case *DeliveryAttemptMutation:
		return c.DeliveryAttempt.mutate(ctx, m)
	case *EventAuditMutation:
		return c.EventAudit.mutate(ctx, m)
	case *ExecutionLogMutation:
		return c.ExecutionLog.mutate(ctx, m)
	case *ProcessedEventMutation:
		return c.ProcessedEvent.mutate(ctx, m)
	case *ScheduledEntryMutation:
		return c.ScheduledEntry.mutate(ctx, m)
	case *SourceCheckpointMutation:
		return c.SourceCheckpoint.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AlertLogClient is a client for the AlertLog schema.
type AlertLogClient struct {
	config
}

// NewAlertLogClient returns a client for the AlertLog from the given config.
func NewAlertLogClient(c config) *AlertLogClient {
	return &AlertLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `alertlog.Hooks(f(g(h())))`.
func (c *AlertLogClient) Use(hooks ...Hook) {
	c.hooks.AlertLog = append(c.hooks.AlertLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `alertlog.Intercept(f(g(h())))`.
func (c *AlertLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.AlertLog = append(c.inters.AlertLog, interceptors...)
}

// Create returns a builder for creating a AlertLog entity.
func (c *AlertLogClient) Create() *AlertLogCreate {
	mutation := newAlertLogMutation(c.config, OpCreate)
	return &AlertLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AlertLog entities.
func (c *AlertLogClient) CreateBulk(builders ...*AlertLogCreate) *AlertLogCreateBulk {
	return &AlertLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AlertLogClient) MapCreateBulk(slice any, setFunc func(*AlertLogCreate, int)) *AlertLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AlertLogCreateBulk{err: fmt.Errorf("calling to AlertLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AlertLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AlertLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AlertLog.
func (c *AlertLogClient) Update() *AlertLogUpdate {
	mutation := newAlertLogMutation(c.config, OpUpdate)
	return &AlertLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AlertLogClient) UpdateOne(_m *AlertLog) *AlertLogUpdateOne {
	mutation := newAlertLogMutation(c.config, OpUpdateOne, withAlertLog(_m))
	return &AlertLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AlertLogClient) UpdateOneID(id string) *AlertLogUpdateOne {
	mutation := newAlertLogMutation(c.config, OpUpdateOne, withAlertLogID(id))
	return &AlertLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AlertLog.
func (c *AlertLogClient) Delete() *AlertLogDelete {
	mutation := newAlertLogMutation(c.config, OpDelete)
	return &AlertLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AlertLogClient) DeleteOne(_m *AlertLog) *AlertLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AlertLogClient) DeleteOneID(id string) *AlertLogDeleteOne {
	builder := c.Delete().Where(alertlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AlertLogDeleteOne{builder}
}

// Query returns a query builder for AlertLog.
func (c *AlertLogClient) Query() *AlertLogQuery {
	return &AlertLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAlertLog},
		inters: c.Interceptors(),
	}
}

// Get returns a AlertLog entity by its id.
func (c *AlertLogClient) Get(ctx context.Context, id string) (*AlertLog, error) {
	return c.Query().Where(alertlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AlertLogClient) GetX(ctx context.Context, id string) *AlertLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AlertLogClient) Hooks() []Hook {
	return c.hooks.AlertLog
}

// Interceptors returns the client interceptors.
func (c *AlertLogClient) Interceptors() []Interceptor {
	return c.inters.AlertLog
}

func (c *AlertLogClient) mutate(ctx context.Context, m *AlertLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AlertLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AlertLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AlertLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AlertLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AlertLog mutation op: %q", m.Op())
	}
}

// CircuitStateClient is a client for the CircuitState schema.
type CircuitStateClient struct {
	config
}

// NewCircuitStateClient returns a client for the CircuitState from the given config.
func NewCircuitStateClient(c config) *CircuitStateClient {
	return &CircuitStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `circuitstate.Hooks(f(g(h())))`.
func (c *CircuitStateClient) Use(hooks ...Hook) {
	c.hooks.CircuitState = append(c.hooks.CircuitState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `circuitstate.Intercept(f(g(h())))`.
func (c *CircuitStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.CircuitState = append(c.inters.CircuitState, interceptors...)
}

// Create returns a builder for creating a CircuitState entity.
func (c *CircuitStateClient) Create() *CircuitStateCreate {
	mutation := newCircuitStateMutation(c.config, OpCreate)
	return &CircuitStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CircuitState entities.
func (c *CircuitStateClient) CreateBulk(builders ...*CircuitStateCreate) *CircuitStateCreateBulk {
	return &CircuitStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CircuitStateClient) MapCreateBulk(slice any, setFunc func(*CircuitStateCreate, int)) *CircuitStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CircuitStateCreateBulk{err: fmt.Errorf("calling to CircuitStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CircuitStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CircuitStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CircuitState.
func (c *CircuitStateClient) Update() *CircuitStateUpdate {
	mutation := newCircuitStateMutation(c.config, OpUpdate)
	return &CircuitStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CircuitStateClient) UpdateOne(_m *CircuitState) *CircuitStateUpdateOne {
	mutation := newCircuitStateMutation(c.config, OpUpdateOne, withCircuitState(_m))
	return &CircuitStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CircuitStateClient) UpdateOneID(id string) *CircuitStateUpdateOne {
	mutation := newCircuitStateMutation(c.config, OpUpdateOne, withCircuitStateID(id))
	return &CircuitStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CircuitState.
func (c *CircuitStateClient) Delete() *CircuitStateDelete {
	mutation := newCircuitStateMutation(c.config, OpDelete)
	return &CircuitStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CircuitStateClient) DeleteOne(_m *CircuitState) *CircuitStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CircuitStateClient) DeleteOneID(id string) *CircuitStateDeleteOne {
	builder := c.Delete().Where(circuitstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CircuitStateDeleteOne{builder}
}

// Query returns a query builder for CircuitState.
func (c *CircuitStateClient) Query() *CircuitStateQuery {
	return &CircuitStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCircuitState},
		inters: c.Interceptors(),
	}
}

// Get returns a CircuitState entity by its id.
func (c *CircuitStateClient) Get(ctx context.Context, id string) (*CircuitState, error) {
	return c.Query().Where(circuitstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CircuitStateClient) GetX(ctx context.Context, id string) *CircuitState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CircuitStateClient) Hooks() []Hook {
	return c.hooks.CircuitState
}

// Interceptors returns the client interceptors.
func (c *CircuitStateClient) Interceptors() []Interceptor {
	return c.inters.CircuitState
}

func (c *CircuitStateClient) mutate(ctx context.Context, m *CircuitStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CircuitStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CircuitStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CircuitStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CircuitStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CircuitState mutation op: %q", m.Op())
	}
}

// DLQEntryClient is a client for the DLQEntry schema.
type DLQEntryClient struct {
	config
}

// NewDLQEntryClient returns a client for the DLQEntry from the given config.
func NewDLQEntryClient(c config) *DLQEntryClient {
	return &DLQEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dlqentry.Hooks(f(g(h())))`.
func (c *DLQEntryClient) Use(hooks ...Hook) {
	c.hooks.DLQEntry = append(c.hooks.DLQEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dlqentry.Intercept(f(g(h())))`.
func (c *DLQEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.DLQEntry = append(c.inters.DLQEntry, interceptors...)
}

// Create returns a builder for creating a DLQEntry entity.
func (c *DLQEntryClient) Create() *DLQEntryCreate {
	mutation := newDLQEntryMutation(c.config, OpCreate)
	return &DLQEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DLQEntry entities.
func (c *DLQEntryClient) CreateBulk(builders ...*DLQEntryCreate) *DLQEntryCreateBulk {
	return &DLQEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DLQEntryClient) MapCreateBulk(slice any, setFunc func(*DLQEntryCreate, int)) *DLQEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DLQEntryCreateBulk{err: fmt.Errorf("calling to DLQEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DLQEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DLQEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DLQEntry.
func (c *DLQEntryClient) Update() *DLQEntryUpdate {
	mutation := newDLQEntryMutation(c.config, OpUpdate)
	return &DLQEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DLQEntryClient) UpdateOne(_m *DLQEntry) *DLQEntryUpdateOne {
	mutation := newDLQEntryMutation(c.config, OpUpdateOne, withDLQEntry(_m))
	return &DLQEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DLQEntryClient) UpdateOneID(id string) *DLQEntryUpdateOne {
	mutation := newDLQEntryMutation(c.config, OpUpdateOne, withDLQEntryID(id))
	return &DLQEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DLQEntry.
func (c *DLQEntryClient) Delete() *DLQEntryDelete {
	mutation := newDLQEntryMutation(c.config, OpDelete)
	return &DLQEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DLQEntryClient) DeleteOne(_m *DLQEntry) *DLQEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DLQEntryClient) DeleteOneID(id string) *DLQEntryDeleteOne {
	builder := c.Delete().Where(dlqentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DLQEntryDeleteOne{builder}
}

// Query returns a query builder for DLQEntry.
func (c *DLQEntryClient) Query() *DLQEntryQuery {
	return &DLQEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDLQEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a DLQEntry entity by its id.
func (c *DLQEntryClient) Get(ctx context.Context, id string) (*DLQEntry, error) {
	return c.Query().Where(dlqentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DLQEntryClient) GetX(ctx context.Context, id string) *DLQEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DLQEntryClient) Hooks() []Hook {
	return c.hooks.DLQEntry
}

// Interceptors returns the client interceptors.
func (c *DLQEntryClient) Interceptors() []Interceptor {
	return c.inters.DLQEntry
}

func (c *DLQEntryClient) mutate(ctx context.Context, m *DLQEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DLQEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DLQEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DLQEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DLQEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DLQEntry mutation op: %q", m.Op())
	}
}

// DeliveryAttemptClient is a client for the DeliveryAttempt schema.
type DeliveryAttemptClient struct {
	config
}

// NewDeliveryAttemptClient returns a client for the DeliveryAttempt from the given config.
func NewDeliveryAttemptClient(c config) *DeliveryAttemptClient {
	return &DeliveryAttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `deliveryattempt.Hooks(f(g(h())))`.
func (c *DeliveryAttemptClient) Use(hooks ...Hook) {
	c.hooks.DeliveryAttempt = append(c.hooks.DeliveryAttempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `deliveryattempt.Intercept(f(g(h())))`.
func (c *DeliveryAttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.DeliveryAttempt = append(c.inters.DeliveryAttempt, interceptors...)
}

// Create returns a builder for creating a DeliveryAttempt entity.
func (c *DeliveryAttemptClient) Create() *DeliveryAttemptCreate {
	mutation := newDeliveryAttemptMutation(c.config, OpCreate)
	return &DeliveryAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DeliveryAttempt entities.
func (c *DeliveryAttemptClient) CreateBulk(builders ...*DeliveryAttemptCreate) *DeliveryAttemptCreateBulk {
	return &DeliveryAttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DeliveryAttemptClient) MapCreateBulk(slice any, setFunc func(*DeliveryAttemptCreate, int)) *DeliveryAttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DeliveryAttemptCreateBulk{err: fmt.Errorf("calling to DeliveryAttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DeliveryAttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DeliveryAttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DeliveryAttempt.
func (c *DeliveryAttemptClient) Update() *DeliveryAttemptUpdate {
	mutation := newDeliveryAttemptMutation(c.config, OpUpdate)
	return &DeliveryAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DeliveryAttemptClient) UpdateOne(_m *DeliveryAttempt) *DeliveryAttemptUpdateOne {
	mutation := newDeliveryAttemptMutation(c.config, OpUpdateOne, withDeliveryAttempt(_m))
	return &DeliveryAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DeliveryAttemptClient) UpdateOneID(id string) *DeliveryAttemptUpdateOne {
	mutation := newDeliveryAttemptMutation(c.config, OpUpdateOne, withDeliveryAttemptID(id))
	return &DeliveryAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DeliveryAttempt.
func (c *DeliveryAttemptClient) Delete() *DeliveryAttemptDelete {
	mutation := newDeliveryAttemptMutation(c.config, OpDelete)
	return &DeliveryAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DeliveryAttemptClient) DeleteOne(_m *DeliveryAttempt) *DeliveryAttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DeliveryAttemptClient) DeleteOneID(id string) *DeliveryAttemptDeleteOne {
	builder := c.Delete().Where(deliveryattempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DeliveryAttemptDeleteOne{builder}
}

// Query returns a query builder for DeliveryAttempt.
func (c *DeliveryAttemptClient) Query() *DeliveryAttemptQuery {
	return &DeliveryAttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDeliveryAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a DeliveryAttempt entity by its id.
func (c *DeliveryAttemptClient) Get(ctx context.Context, id string) (*DeliveryAttempt, error) {
	return c.Query().Where(deliveryattempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DeliveryAttemptClient) GetX(ctx context.Context, id string) *DeliveryAttempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExecutionLog queries the execution_log edge of a DeliveryAttempt.
func (c *DeliveryAttemptClient) QueryExecutionLog(_m *DeliveryAttempt) *ExecutionLogQuery {
	query := (&ExecutionLogClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(deliveryattempt.Table, deliveryattempt.FieldID, id),
			sqlgraph.To(executionlog.Table, executionlog.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, deliveryattempt.ExecutionLogTable, deliveryattempt.ExecutionLogColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DeliveryAttemptClient) Hooks() []Hook {
	return c.hooks.DeliveryAttempt
}

// Interceptors returns the client interceptors.
func (c *DeliveryAttemptClient) Interceptors() []Interceptor {
	return c.inters.DeliveryAttempt
}

func (c *DeliveryAttemptClient) mutate(ctx context.Context, m *DeliveryAttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DeliveryAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DeliveryAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DeliveryAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DeliveryAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DeliveryAttempt mutation op: %q", m.Op())
	}
}

// EventAuditClient is a client for the EventAudit schema.
type EventAuditClient struct {
	config
}

// NewEventAuditClient returns a client for the EventAudit from the given config.
func NewEventAuditClient(c config) *EventAuditClient {
	return &EventAuditClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `eventaudit.Hooks(f(g(h())))`.
func (c *EventAuditClient) Use(hooks ...Hook) {
	c.hooks.EventAudit = append(c.hooks.EventAudit, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `eventaudit.Intercept(f(g(h())))`.
func (c *EventAuditClient) Intercept(interceptors ...Interceptor) {
	c.inters.EventAudit = append(c.inters.EventAudit, interceptors...)
}

// Create returns a builder for creating a EventAudit entity.
func (c *EventAuditClient) Create() *EventAuditCreate {
	mutation := newEventAuditMutation(c.config, OpCreate)
	return &EventAuditCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EventAudit entities.
func (c *EventAuditClient) CreateBulk(builders ...*EventAuditCreate) *EventAuditCreateBulk {
	return &EventAuditCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventAuditClient) MapCreateBulk(slice any, setFunc func(*EventAuditCreate, int)) *EventAuditCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventAuditCreateBulk{err: fmt.Errorf("calling to EventAuditClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventAuditCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventAuditCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EventAudit.
func (c *EventAuditClient) Update() *EventAuditUpdate {
	mutation := newEventAuditMutation(c.config, OpUpdate)
	return &EventAuditUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventAuditClient) UpdateOne(_m *EventAudit) *EventAuditUpdateOne {
	mutation := newEventAuditMutation(c.config, OpUpdateOne, withEventAudit(_m))
	return &EventAuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventAuditClient) UpdateOneID(id string) *EventAuditUpdateOne {
	mutation := newEventAuditMutation(c.config, OpUpdateOne, withEventAuditID(id))
	return &EventAuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EventAudit.
func (c *EventAuditClient) Delete() *EventAuditDelete {
	mutation := newEventAuditMutation(c.config, OpDelete)
	return &EventAuditDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventAuditClient) DeleteOne(_m *EventAudit) *EventAuditDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventAuditClient) DeleteOneID(id string) *EventAuditDeleteOne {
	builder := c.Delete().Where(eventaudit.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventAuditDeleteOne{builder}
}

// Query returns a query builder for EventAudit.
func (c *EventAuditClient) Query() *EventAuditQuery {
	return &EventAuditQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEventAudit},
		inters: c.Interceptors(),
	}
}

// Get returns a EventAudit entity by its id.
func (c *EventAuditClient) Get(ctx context.Context, id string) (*EventAudit, error) {
	return c.Query().Where(eventaudit.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventAuditClient) GetX(ctx context.Context, id string) *EventAudit {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventAuditClient) Hooks() []Hook {
	return c.hooks.EventAudit
}

// Interceptors returns the client interceptors.
func (c *EventAuditClient) Interceptors() []Interceptor {
	return c.inters.EventAudit
}

func (c *EventAuditClient) mutate(ctx context.Context, m *EventAuditMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventAuditCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventAuditUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventAuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventAuditDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EventAudit mutation op: %q", m.Op())
	}
}

// ExecutionLogClient is a client for the ExecutionLog schema.
type ExecutionLogClient struct {
	config
}

// NewExecutionLogClient returns a client for the ExecutionLog from the given config.
func NewExecutionLogClient(c config) *ExecutionLogClient {
	return &ExecutionLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `executionlog.Hooks(f(g(h())))`.
func (c *ExecutionLogClient) Use(hooks ...Hook) {
	c.hooks.ExecutionLog = append(c.hooks.ExecutionLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `executionlog.Intercept(f(g(h())))`.
func (c *ExecutionLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExecutionLog = append(c.inters.ExecutionLog, interceptors...)
}

// Create returns a builder for creating a ExecutionLog entity.
func (c *ExecutionLogClient) Create() *ExecutionLogCreate {
	mutation := newExecutionLogMutation(c.config, OpCreate)
	return &ExecutionLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExecutionLog entities.
func (c *ExecutionLogClient) CreateBulk(builders ...*ExecutionLogCreate) *ExecutionLogCreateBulk {
	return &ExecutionLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExecutionLogClient) MapCreateBulk(slice any, setFunc func(*ExecutionLogCreate, int)) *ExecutionLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExecutionLogCreateBulk{err: fmt.Errorf("calling to ExecutionLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExecutionLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExecutionLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExecutionLog.
func (c *ExecutionLogClient) Update() *ExecutionLogUpdate {
	mutation := newExecutionLogMutation(c.config, OpUpdate)
	return &ExecutionLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExecutionLogClient) UpdateOne(_m *ExecutionLog) *ExecutionLogUpdateOne {
	mutation := newExecutionLogMutation(c.config, OpUpdateOne, withExecutionLog(_m))
	return &ExecutionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExecutionLogClient) UpdateOneID(id string) *ExecutionLogUpdateOne {
	mutation := newExecutionLogMutation(c.config, OpUpdateOne, withExecutionLogID(id))
	return &ExecutionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExecutionLog.
func (c *ExecutionLogClient) Delete() *ExecutionLogDelete {
	mutation := newExecutionLogMutation(c.config, OpDelete)
	return &ExecutionLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExecutionLogClient) DeleteOne(_m *ExecutionLog) *ExecutionLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExecutionLogClient) DeleteOneID(id string) *ExecutionLogDeleteOne {
	builder := c.Delete().Where(executionlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExecutionLogDeleteOne{builder}
}

// Query returns a query builder for ExecutionLog.
func (c *ExecutionLogClient) Query() *ExecutionLogQuery {
	return &ExecutionLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExecutionLog},
		inters: c.Interceptors(),
	}
}

// Get returns a ExecutionLog entity by its id.
func (c *ExecutionLogClient) Get(ctx context.Context, id string) (*ExecutionLog, error) {
	return c.Query().Where(executionlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExecutionLogClient) GetX(ctx context.Context, id string) *ExecutionLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDeliveryAttempts queries the delivery_attempts edge of a ExecutionLog.
func (c *ExecutionLogClient) QueryDeliveryAttempts(_m *ExecutionLog) *DeliveryAttemptQuery {
	query := (&DeliveryAttemptClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(executionlog.Table, executionlog.FieldID, id),
			sqlgraph.To(deliveryattempt.Table, deliveryattempt.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, executionlog.DeliveryAttemptsTable, executionlog.DeliveryAttemptsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExecutionLogClient) Hooks() []Hook {
	return c.hooks.ExecutionLog
}

// Interceptors returns the client interceptors.
func (c *ExecutionLogClient) Interceptors() []Interceptor {
	return c.inters.ExecutionLog
}

func (c *ExecutionLogClient) mutate(ctx context.Context, m *ExecutionLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExecutionLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExecutionLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExecutionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExecutionLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExecutionLog mutation op: %q", m.Op())
	}
}

// ProcessedEventClient is a client for the ProcessedEvent schema.
type ProcessedEventClient struct {
	config
}

// NewProcessedEventClient returns a client for the ProcessedEvent from the given config.
func NewProcessedEventClient(c config) *ProcessedEventClient {
	return &ProcessedEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `processedevent.Hooks(f(g(h())))`.
func (c *ProcessedEventClient) Use(hooks ...Hook) {
	c.hooks.ProcessedEvent = append(c.hooks.ProcessedEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `processedevent.Intercept(f(g(h())))`.
func (c *ProcessedEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProcessedEvent = append(c.inters.ProcessedEvent, interceptors...)
}

// Create returns a builder for creating a ProcessedEvent entity.
func (c *ProcessedEventClient) Create() *ProcessedEventCreate {
	mutation := newProcessedEventMutation(c.config, OpCreate)
	return &ProcessedEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProcessedEvent entities.
func (c *ProcessedEventClient) CreateBulk(builders ...*ProcessedEventCreate) *ProcessedEventCreateBulk {
	return &ProcessedEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProcessedEventClient) MapCreateBulk(slice any, setFunc func(*ProcessedEventCreate, int)) *ProcessedEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProcessedEventCreateBulk{err: fmt.Errorf("calling to ProcessedEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProcessedEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProcessedEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProcessedEvent.
func (c *ProcessedEventClient) Update() *ProcessedEventUpdate {
	mutation := newProcessedEventMutation(c.config, OpUpdate)
	return &ProcessedEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProcessedEventClient) UpdateOne(_m *ProcessedEvent) *ProcessedEventUpdateOne {
	mutation := newProcessedEventMutation(c.config, OpUpdateOne, withProcessedEvent(_m))
	return &ProcessedEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProcessedEventClient) UpdateOneID(id string) *ProcessedEventUpdateOne {
	mutation := newProcessedEventMutation(c.config, OpUpdateOne, withProcessedEventID(id))
	return &ProcessedEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProcessedEvent.
func (c *ProcessedEventClient) Delete() *ProcessedEventDelete {
	mutation := newProcessedEventMutation(c.config, OpDelete)
	return &ProcessedEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProcessedEventClient) DeleteOne(_m *ProcessedEvent) *ProcessedEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProcessedEventClient) DeleteOneID(id string) *ProcessedEventDeleteOne {
	builder := c.Delete().Where(processedevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProcessedEventDeleteOne{builder}
}

// Query returns a query builder for ProcessedEvent.
func (c *ProcessedEventClient) Query() *ProcessedEventQuery {
	return &ProcessedEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProcessedEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ProcessedEvent entity by its id.
func (c *ProcessedEventClient) Get(ctx context.Context, id string) (*ProcessedEvent, error) {
	return c.Query().Where(processedevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProcessedEventClient) GetX(ctx context.Context, id string) *ProcessedEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProcessedEventClient) Hooks() []Hook {
	return c.hooks.ProcessedEvent
}

// Interceptors returns the client interceptors.
func (c *ProcessedEventClient) Interceptors() []Interceptor {
	return c.inters.ProcessedEvent
}

func (c *ProcessedEventClient) mutate(ctx context.Context, m *ProcessedEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProcessedEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProcessedEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProcessedEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProcessedEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProcessedEvent mutation op: %q", m.Op())
	}
}

// ScheduledEntryClient is a client for the ScheduledEntry schema.
type ScheduledEntryClient struct {
	config
}

// NewScheduledEntryClient returns a client for the ScheduledEntry from the given config.
func NewScheduledEntryClient(c config) *ScheduledEntryClient {
	return &ScheduledEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scheduledentry.Hooks(f(g(h())))`.
func (c *ScheduledEntryClient) Use(hooks ...Hook) {
	c.hooks.ScheduledEntry = append(c.hooks.ScheduledEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scheduledentry.Intercept(f(g(h())))`.
func (c *ScheduledEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScheduledEntry = append(c.inters.ScheduledEntry, interceptors...)
}

// Create returns a builder for creating a ScheduledEntry entity.
func (c *ScheduledEntryClient) Create() *ScheduledEntryCreate {
	mutation := newScheduledEntryMutation(c.config, OpCreate)
	return &ScheduledEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScheduledEntry entities.
func (c *ScheduledEntryClient) CreateBulk(builders ...*ScheduledEntryCreate) *ScheduledEntryCreateBulk {
	return &ScheduledEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScheduledEntryClient) MapCreateBulk(slice any, setFunc func(*ScheduledEntryCreate, int)) *ScheduledEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScheduledEntryCreateBulk{err: fmt.Errorf("calling to ScheduledEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScheduledEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScheduledEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScheduledEntry.
func (c *ScheduledEntryClient) Update() *ScheduledEntryUpdate {
	mutation := newScheduledEntryMutation(c.config, OpUpdate)
	return &ScheduledEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScheduledEntryClient) UpdateOne(_m *ScheduledEntry) *ScheduledEntryUpdateOne {
	mutation := newScheduledEntryMutation(c.config, OpUpdateOne, withScheduledEntry(_m))
	return &ScheduledEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScheduledEntryClient) UpdateOneID(id string) *ScheduledEntryUpdateOne {
	mutation := newScheduledEntryMutation(c.config, OpUpdateOne, withScheduledEntryID(id))
	return &ScheduledEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScheduledEntry.
func (c *ScheduledEntryClient) Delete() *ScheduledEntryDelete {
	mutation := newScheduledEntryMutation(c.config, OpDelete)
	return &ScheduledEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScheduledEntryClient) DeleteOne(_m *ScheduledEntry) *ScheduledEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScheduledEntryClient) DeleteOneID(id string) *ScheduledEntryDeleteOne {
	builder := c.Delete().Where(scheduledentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScheduledEntryDeleteOne{builder}
}

// Query returns a query builder for ScheduledEntry.
func (c *ScheduledEntryClient) Query() *ScheduledEntryQuery {
	return &ScheduledEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScheduledEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a ScheduledEntry entity by its id.
func (c *ScheduledEntryClient) Get(ctx context.Context, id string) (*ScheduledEntry, error) {
	return c.Query().Where(scheduledentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScheduledEntryClient) GetX(ctx context.Context, id string) *ScheduledEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ScheduledEntryClient) Hooks() []Hook {
	return c.hooks.ScheduledEntry
}

// Interceptors returns the client interceptors.
func (c *ScheduledEntryClient) Interceptors() []Interceptor {
	return c.inters.ScheduledEntry
}

func (c *ScheduledEntryClient) mutate(ctx context.Context, m *ScheduledEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScheduledEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScheduledEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScheduledEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScheduledEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScheduledEntry mutation op: %q", m.Op())
	}
}

// SourceCheckpointClient is a client for the SourceCheckpoint schema.
type SourceCheckpointClient struct {
	config
}

// NewSourceCheckpointClient returns a client for the SourceCheckpoint from the given config.
func NewSourceCheckpointClient(c config) *SourceCheckpointClient {
	return &SourceCheckpointClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sourcecheckpoint.Hooks(f(g(h())))`.
func (c *SourceCheckpointClient) Use(hooks ...Hook) {
	c.hooks.SourceCheckpoint = append(c.hooks.SourceCheckpoint, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sourcecheckpoint.Intercept(f(g(h())))`.
func (c *SourceCheckpointClient) Intercept(interceptors ...Interceptor) {
	c.inters.SourceCheckpoint = append(c.inters.SourceCheckpoint, interceptors...)
}

// Create returns a builder for creating a SourceCheckpoint entity.
func (c *SourceCheckpointClient) Create() *SourceCheckpointCreate {
	mutation := newSourceCheckpointMutation(c.config, OpCreate)
	return &SourceCheckpointCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SourceCheckpoint entities.
func (c *SourceCheckpointClient) CreateBulk(builders ...*SourceCheckpointCreate) *SourceCheckpointCreateBulk {
	return &SourceCheckpointCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SourceCheckpointClient) MapCreateBulk(slice any, setFunc func(*SourceCheckpointCreate, int)) *SourceCheckpointCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SourceCheckpointCreateBulk{err: fmt.Errorf("calling to SourceCheckpointClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SourceCheckpointCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SourceCheckpointCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SourceCheckpoint.
func (c *SourceCheckpointClient) Update() *SourceCheckpointUpdate {
	mutation := newSourceCheckpointMutation(c.config, OpUpdate)
	return &SourceCheckpointUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SourceCheckpointClient) UpdateOne(_m *SourceCheckpoint) *SourceCheckpointUpdateOne {
	mutation := newSourceCheckpointMutation(c.config, OpUpdateOne, withSourceCheckpoint(_m))
	return &SourceCheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SourceCheckpointClient) UpdateOneID(id string) *SourceCheckpointUpdateOne {
	mutation := newSourceCheckpointMutation(c.config, OpUpdateOne, withSourceCheckpointID(id))
	return &SourceCheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SourceCheckpoint.
func (c *SourceCheckpointClient) Delete() *SourceCheckpointDelete {
	mutation := newSourceCheckpointMutation(c.config, OpDelete)
	return &SourceCheckpointDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SourceCheckpointClient) DeleteOne(_m *SourceCheckpoint) *SourceCheckpointDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SourceCheckpointClient) DeleteOneID(id string) *SourceCheckpointDeleteOne {
	builder := c.Delete().Where(sourcecheckpoint.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SourceCheckpointDeleteOne{builder}
}

// Query returns a query builder for SourceCheckpoint.
func (c *SourceCheckpointClient) Query() *SourceCheckpointQuery {
	return &SourceCheckpointQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSourceCheckpoint},
		inters: c.Interceptors(),
	}
}

// Get returns a SourceCheckpoint entity by its id.
func (c *SourceCheckpointClient) Get(ctx context.Context, id string) (*SourceCheckpoint, error) {
	return c.Query().Where(sourcecheckpoint.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SourceCheckpointClient) GetX(ctx context.Context, id string) *SourceCheckpoint {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SourceCheckpointClient) Hooks() []Hook {
	return c.hooks.SourceCheckpoint
}

// Interceptors returns the client interceptors.
func (c *SourceCheckpointClient) Interceptors() []Interceptor {
	return c.inters.SourceCheckpoint
}

func (c *SourceCheckpointClient) mutate(ctx context.Context, m *SourceCheckpointMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SourceCheckpointCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SourceCheckpointUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SourceCheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SourceCheckpointDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SourceCheckpoint mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AlertLog, CircuitState, DLQEntry, DeliveryAttempt, EventAudit, ExecutionLog,
		ProcessedEvent, ScheduledEntry, SourceCheckpoint []ent.Hook
	}
	inters struct {
		AlertLog, CircuitState, DLQEntry, DeliveryAttempt, EventAudit, ExecutionLog,
		ProcessedEvent, ScheduledEntry, SourceCheckpoint []ent.Interceptor
	}
)
