// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/acarerdinc/relevia/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/acarerdinc/relevia/ent/answerevent"
	"github.com/acarerdinc/relevia/ent/concepthistory"
	"github.com/acarerdinc/relevia/ent/expansionattempt"
	"github.com/acarerdinc/relevia/ent/interestrecord"
	"github.com/acarerdinc/relevia/ent/llmrequestevent"
	"github.com/acarerdinc/relevia/ent/masteryevent"
	"github.com/acarerdinc/relevia/ent/progressrecord"
	"github.com/acarerdinc/relevia/ent/questionrecord"
	"github.com/acarerdinc/relevia/ent/topic"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AnswerEvent is the client for interacting with the AnswerEvent builders.
	AnswerEvent *AnswerEventClient
	// ConceptHistory is the client for interacting with the ConceptHistory builders.
	ConceptHistory *ConceptHistoryClient
	// ExpansionAttempt is the client for interacting with the ExpansionAttempt builders.
	ExpansionAttempt *ExpansionAttemptClient
	// InterestRecord is the client for interacting with the InterestRecord builders.
	InterestRecord *InterestRecordClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// MasteryEvent is the client for interacting with the MasteryEvent builders.
	MasteryEvent *MasteryEventClient
	// ProgressRecord is the client for interacting with the ProgressRecord builders.
	ProgressRecord *ProgressRecordClient
	// QuestionRecord is the client for interacting with the QuestionRecord builders.
	QuestionRecord *QuestionRecordClient
	// Topic is the client for interacting with the Topic builders.
	Topic *TopicClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AnswerEvent = NewAnswerEventClient(c.config)
	c.ConceptHistory = NewConceptHistoryClient(c.config)
	c.ExpansionAttempt = NewExpansionAttemptClient(c.config)
	c.InterestRecord = NewInterestRecordClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.MasteryEvent = NewMasteryEventClient(c.config)
	c.ProgressRecord = NewProgressRecordClient(c.config)
	c.QuestionRecord = NewQuestionRecordClient(c.config)
	c.Topic = NewTopicClient(c.config)
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
		AnswerEvent:      NewAnswerEventClient(cfg),
		ConceptHistory:   NewConceptHistoryClient(cfg),
		ExpansionAttempt: NewExpansionAttemptClient(cfg),
		InterestRecord:   NewInterestRecordClient(cfg),
		LLMRequestEvent:  NewLLMRequestEventClient(cfg),
		MasteryEvent:     NewMasteryEventClient(cfg),
		ProgressRecord:   NewProgressRecordClient(cfg),
		QuestionRecord:   NewQuestionRecordClient(cfg),
		Topic:            NewTopicClient(cfg),
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
		AnswerEvent:      NewAnswerEventClient(cfg),
		ConceptHistory:   NewConceptHistoryClient(cfg),
		ExpansionAttempt: NewExpansionAttemptClient(cfg),
		InterestRecord:   NewInterestRecordClient(cfg),
		LLMRequestEvent:  NewLLMRequestEventClient(cfg),
		MasteryEvent:     NewMasteryEventClient(cfg),
		ProgressRecord:   NewProgressRecordClient(cfg),
		QuestionRecord:   NewQuestionRecordClient(cfg),
		Topic:            NewTopicClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AnswerEvent.
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
		c.AnswerEvent, c.ConceptHistory, c.ExpansionAttempt, c.InterestRecord,
		c.LLMRequestEvent, c.MasteryEvent, c.ProgressRecord, c.QuestionRecord, c.Topic,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AnswerEvent, c.ConceptHistory, c.ExpansionAttempt, c.InterestRecord,
		c.LLMRequestEvent, c.MasteryEvent, c.ProgressRecord, c.QuestionRecord, c.Topic,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnswerEventMutation:
		return c.AnswerEvent.mutate(ctx, m)
	case *ConceptHistoryMutation:
		return c.ConceptHistory.mutate(ctx, m)
	case *ExpansionAttemptMutation:
		return c.ExpansionAttempt.mutate(ctx, m)
	case *InterestRecordMutation:
		return c.InterestRecord.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *MasteryEventMutation:
		return c.MasteryEvent.mutate(ctx, m)
	case *ProgressRecordMutation:
		return c.ProgressRecord.mutate(ctx, m)
	case *QuestionRecordMutation:
		return c.QuestionRecord.mutate(ctx, m)
	case *TopicMutation:
		return c.Topic.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnswerEventClient is a client for the AnswerEvent schema.
type AnswerEventClient struct {
	config
}

// NewAnswerEventClient returns a client for the AnswerEvent from the given config.
func NewAnswerEventClient(c config) *AnswerEventClient {
	return &AnswerEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `answerevent.Hooks(f(g(h())))`.
func (c *AnswerEventClient) Use(hooks ...Hook) {
	c.hooks.AnswerEvent = append(c.hooks.AnswerEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `answerevent.Intercept(f(g(h())))`.
func (c *AnswerEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnswerEvent = append(c.inters.AnswerEvent, interceptors...)
}

// Create returns a builder for creating a AnswerEvent entity.
func (c *AnswerEventClient) Create() *AnswerEventCreate {
	mutation := newAnswerEventMutation(c.config, OpCreate)
	return &AnswerEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnswerEvent entities.
func (c *AnswerEventClient) CreateBulk(builders ...*AnswerEventCreate) *AnswerEventCreateBulk {
	return &AnswerEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnswerEventClient) MapCreateBulk(slice any, setFunc func(*AnswerEventCreate, int)) *AnswerEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnswerEventCreateBulk{err: fmt.Errorf("calling to AnswerEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnswerEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnswerEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnswerEvent.
func (c *AnswerEventClient) Update() *AnswerEventUpdate {
	mutation := newAnswerEventMutation(c.config, OpUpdate)
	return &AnswerEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnswerEventClient) UpdateOne(_m *AnswerEvent) *AnswerEventUpdateOne {
	mutation := newAnswerEventMutation(c.config, OpUpdateOne, withAnswerEvent(_m))
	return &AnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnswerEventClient) UpdateOneID(id int) *AnswerEventUpdateOne {
	mutation := newAnswerEventMutation(c.config, OpUpdateOne, withAnswerEventID(id))
	return &AnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnswerEvent.
func (c *AnswerEventClient) Delete() *AnswerEventDelete {
	mutation := newAnswerEventMutation(c.config, OpDelete)
	return &AnswerEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnswerEventClient) DeleteOne(_m *AnswerEvent) *AnswerEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnswerEventClient) DeleteOneID(id int) *AnswerEventDeleteOne {
	builder := c.Delete().Where(answerevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnswerEventDeleteOne{builder}
}

// Query returns a query builder for AnswerEvent.
func (c *AnswerEventClient) Query() *AnswerEventQuery {
	return &AnswerEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnswerEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AnswerEvent entity by its id.
func (c *AnswerEventClient) Get(ctx context.Context, id int) (*AnswerEvent, error) {
	return c.Query().Where(answerevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnswerEventClient) GetX(ctx context.Context, id int) *AnswerEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AnswerEventClient) Hooks() []Hook {
	return c.hooks.AnswerEvent
}

// Interceptors returns the client interceptors.
func (c *AnswerEventClient) Interceptors() []Interceptor {
	return c.inters.AnswerEvent
}

func (c *AnswerEventClient) mutate(ctx context.Context, m *AnswerEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnswerEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnswerEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnswerEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnswerEvent mutation op: %q", m.Op())
	}
}

// ConceptHistoryClient is a client for the ConceptHistory schema.
type ConceptHistoryClient struct {
	config
}

// NewConceptHistoryClient returns a client for the ConceptHistory from the given config.
func NewConceptHistoryClient(c config) *ConceptHistoryClient {
	return &ConceptHistoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `concepthistory.Hooks(f(g(h())))`.
func (c *ConceptHistoryClient) Use(hooks ...Hook) {
	c.hooks.ConceptHistory = append(c.hooks.ConceptHistory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `concepthistory.Intercept(f(g(h())))`.
func (c *ConceptHistoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConceptHistory = append(c.inters.ConceptHistory, interceptors...)
}

// Create returns a builder for creating a ConceptHistory entity.
func (c *ConceptHistoryClient) Create() *ConceptHistoryCreate {
	mutation := newConceptHistoryMutation(c.config, OpCreate)
	return &ConceptHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConceptHistory entities.
func (c *ConceptHistoryClient) CreateBulk(builders ...*ConceptHistoryCreate) *ConceptHistoryCreateBulk {
	return &ConceptHistoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConceptHistoryClient) MapCreateBulk(slice any, setFunc func(*ConceptHistoryCreate, int)) *ConceptHistoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConceptHistoryCreateBulk{err: fmt.Errorf("calling to ConceptHistoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConceptHistoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConceptHistoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConceptHistory.
func (c *ConceptHistoryClient) Update() *ConceptHistoryUpdate {
	mutation := newConceptHistoryMutation(c.config, OpUpdate)
	return &ConceptHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConceptHistoryClient) UpdateOne(_m *ConceptHistory) *ConceptHistoryUpdateOne {
	mutation := newConceptHistoryMutation(c.config, OpUpdateOne, withConceptHistory(_m))
	return &ConceptHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConceptHistoryClient) UpdateOneID(id int) *ConceptHistoryUpdateOne {
	mutation := newConceptHistoryMutation(c.config, OpUpdateOne, withConceptHistoryID(id))
	return &ConceptHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConceptHistory.
func (c *ConceptHistoryClient) Delete() *ConceptHistoryDelete {
	mutation := newConceptHistoryMutation(c.config, OpDelete)
	return &ConceptHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConceptHistoryClient) DeleteOne(_m *ConceptHistory) *ConceptHistoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConceptHistoryClient) DeleteOneID(id int) *ConceptHistoryDeleteOne {
	builder := c.Delete().Where(concepthistory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConceptHistoryDeleteOne{builder}
}

// Query returns a query builder for ConceptHistory.
func (c *ConceptHistoryClient) Query() *ConceptHistoryQuery {
	return &ConceptHistoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConceptHistory},
		inters: c.Interceptors(),
	}
}

// Get returns a ConceptHistory entity by its id.
func (c *ConceptHistoryClient) Get(ctx context.Context, id int) (*ConceptHistory, error) {
	return c.Query().Where(concepthistory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConceptHistoryClient) GetX(ctx context.Context, id int) *ConceptHistory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ConceptHistoryClient) Hooks() []Hook {
	return c.hooks.ConceptHistory
}

// Interceptors returns the client interceptors.
func (c *ConceptHistoryClient) Interceptors() []Interceptor {
	return c.inters.ConceptHistory
}

func (c *ConceptHistoryClient) mutate(ctx context.Context, m *ConceptHistoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConceptHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConceptHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConceptHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConceptHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConceptHistory mutation op: %q", m.Op())
	}
}

// ExpansionAttemptClient is a client for the ExpansionAttempt schema.
type ExpansionAttemptClient struct {
	config
}

// NewExpansionAttemptClient returns a client for the ExpansionAttempt from the given config.
func NewExpansionAttemptClient(c config) *ExpansionAttemptClient {
	return &ExpansionAttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `expansionattempt.Hooks(f(g(h())))`.
func (c *ExpansionAttemptClient) Use(hooks ...Hook) {
	c.hooks.ExpansionAttempt = append(c.hooks.ExpansionAttempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `expansionattempt.Intercept(f(g(h())))`.
func (c *ExpansionAttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExpansionAttempt = append(c.inters.ExpansionAttempt, interceptors...)
}

// Create returns a builder for creating a ExpansionAttempt entity.
func (c *ExpansionAttemptClient) Create() *ExpansionAttemptCreate {
	mutation := newExpansionAttemptMutation(c.config, OpCreate)
	return &ExpansionAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExpansionAttempt entities.
func (c *ExpansionAttemptClient) CreateBulk(builders ...*ExpansionAttemptCreate) *ExpansionAttemptCreateBulk {
	return &ExpansionAttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExpansionAttemptClient) MapCreateBulk(slice any, setFunc func(*ExpansionAttemptCreate, int)) *ExpansionAttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExpansionAttemptCreateBulk{err: fmt.Errorf("calling to ExpansionAttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExpansionAttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExpansionAttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExpansionAttempt.
func (c *ExpansionAttemptClient) Update() *ExpansionAttemptUpdate {
	mutation := newExpansionAttemptMutation(c.config, OpUpdate)
	return &ExpansionAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExpansionAttemptClient) UpdateOne(_m *ExpansionAttempt) *ExpansionAttemptUpdateOne {
	mutation := newExpansionAttemptMutation(c.config, OpUpdateOne, withExpansionAttempt(_m))
	return &ExpansionAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExpansionAttemptClient) UpdateOneID(id int) *ExpansionAttemptUpdateOne {
	mutation := newExpansionAttemptMutation(c.config, OpUpdateOne, withExpansionAttemptID(id))
	return &ExpansionAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExpansionAttempt.
func (c *ExpansionAttemptClient) Delete() *ExpansionAttemptDelete {
	mutation := newExpansionAttemptMutation(c.config, OpDelete)
	return &ExpansionAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExpansionAttemptClient) DeleteOne(_m *ExpansionAttempt) *ExpansionAttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExpansionAttemptClient) DeleteOneID(id int) *ExpansionAttemptDeleteOne {
	builder := c.Delete().Where(expansionattempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExpansionAttemptDeleteOne{builder}
}

// Query returns a query builder for ExpansionAttempt.
func (c *ExpansionAttemptClient) Query() *ExpansionAttemptQuery {
	return &ExpansionAttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExpansionAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a ExpansionAttempt entity by its id.
func (c *ExpansionAttemptClient) Get(ctx context.Context, id int) (*ExpansionAttempt, error) {
	return c.Query().Where(expansionattempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExpansionAttemptClient) GetX(ctx context.Context, id int) *ExpansionAttempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExpansionAttemptClient) Hooks() []Hook {
	return c.hooks.ExpansionAttempt
}

// Interceptors returns the client interceptors.
func (c *ExpansionAttemptClient) Interceptors() []Interceptor {
	return c.inters.ExpansionAttempt
}

func (c *ExpansionAttemptClient) mutate(ctx context.Context, m *ExpansionAttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExpansionAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExpansionAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExpansionAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExpansionAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExpansionAttempt mutation op: %q", m.Op())
	}
}

// InterestRecordClient is a client for the InterestRecord schema.
type InterestRecordClient struct {
	config
}

// NewInterestRecordClient returns a client for the InterestRecord from the given config.
func NewInterestRecordClient(c config) *InterestRecordClient {
	return &InterestRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `interestrecord.Hooks(f(g(h())))`.
func (c *InterestRecordClient) Use(hooks ...Hook) {
	c.hooks.InterestRecord = append(c.hooks.InterestRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `interestrecord.Intercept(f(g(h())))`.
func (c *InterestRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.InterestRecord = append(c.inters.InterestRecord, interceptors...)
}

// Create returns a builder for creating a InterestRecord entity.
func (c *InterestRecordClient) Create() *InterestRecordCreate {
	mutation := newInterestRecordMutation(c.config, OpCreate)
	return &InterestRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InterestRecord entities.
func (c *InterestRecordClient) CreateBulk(builders ...*InterestRecordCreate) *InterestRecordCreateBulk {
	return &InterestRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InterestRecordClient) MapCreateBulk(slice any, setFunc func(*InterestRecordCreate, int)) *InterestRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InterestRecordCreateBulk{err: fmt.Errorf("calling to InterestRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InterestRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InterestRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InterestRecord.
func (c *InterestRecordClient) Update() *InterestRecordUpdate {
	mutation := newInterestRecordMutation(c.config, OpUpdate)
	return &InterestRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InterestRecordClient) UpdateOne(_m *InterestRecord) *InterestRecordUpdateOne {
	mutation := newInterestRecordMutation(c.config, OpUpdateOne, withInterestRecord(_m))
	return &InterestRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InterestRecordClient) UpdateOneID(id int) *InterestRecordUpdateOne {
	mutation := newInterestRecordMutation(c.config, OpUpdateOne, withInterestRecordID(id))
	return &InterestRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InterestRecord.
func (c *InterestRecordClient) Delete() *InterestRecordDelete {
	mutation := newInterestRecordMutation(c.config, OpDelete)
	return &InterestRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InterestRecordClient) DeleteOne(_m *InterestRecord) *InterestRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InterestRecordClient) DeleteOneID(id int) *InterestRecordDeleteOne {
	builder := c.Delete().Where(interestrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InterestRecordDeleteOne{builder}
}

// Query returns a query builder for InterestRecord.
func (c *InterestRecordClient) Query() *InterestRecordQuery {
	return &InterestRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInterestRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a InterestRecord entity by its id.
func (c *InterestRecordClient) Get(ctx context.Context, id int) (*InterestRecord, error) {
	return c.Query().Where(interestrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InterestRecordClient) GetX(ctx context.Context, id int) *InterestRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InterestRecordClient) Hooks() []Hook {
	return c.hooks.InterestRecord
}

// Interceptors returns the client interceptors.
func (c *InterestRecordClient) Interceptors() []Interceptor {
	return c.inters.InterestRecord
}

func (c *InterestRecordClient) mutate(ctx context.Context, m *InterestRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InterestRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InterestRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InterestRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InterestRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InterestRecord mutation op: %q", m.Op())
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

// MasteryEventClient is a client for the MasteryEvent schema.
type MasteryEventClient struct {
	config
}

// NewMasteryEventClient returns a client for the MasteryEvent from the given config.
func NewMasteryEventClient(c config) *MasteryEventClient {
	return &MasteryEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `masteryevent.Hooks(f(g(h())))`.
func (c *MasteryEventClient) Use(hooks ...Hook) {
	c.hooks.MasteryEvent = append(c.hooks.MasteryEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `masteryevent.Intercept(f(g(h())))`.
func (c *MasteryEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.MasteryEvent = append(c.inters.MasteryEvent, interceptors...)
}

// Create returns a builder for creating a MasteryEvent entity.
func (c *MasteryEventClient) Create() *MasteryEventCreate {
	mutation := newMasteryEventMutation(c.config, OpCreate)
	return &MasteryEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MasteryEvent entities.
func (c *MasteryEventClient) CreateBulk(builders ...*MasteryEventCreate) *MasteryEventCreateBulk {
	return &MasteryEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MasteryEventClient) MapCreateBulk(slice any, setFunc func(*MasteryEventCreate, int)) *MasteryEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MasteryEventCreateBulk{err: fmt.Errorf("calling to MasteryEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MasteryEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MasteryEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MasteryEvent.
func (c *MasteryEventClient) Update() *MasteryEventUpdate {
	mutation := newMasteryEventMutation(c.config, OpUpdate)
	return &MasteryEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MasteryEventClient) UpdateOne(_m *MasteryEvent) *MasteryEventUpdateOne {
	mutation := newMasteryEventMutation(c.config, OpUpdateOne, withMasteryEvent(_m))
	return &MasteryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MasteryEventClient) UpdateOneID(id int) *MasteryEventUpdateOne {
	mutation := newMasteryEventMutation(c.config, OpUpdateOne, withMasteryEventID(id))
	return &MasteryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MasteryEvent.
func (c *MasteryEventClient) Delete() *MasteryEventDelete {
	mutation := newMasteryEventMutation(c.config, OpDelete)
	return &MasteryEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MasteryEventClient) DeleteOne(_m *MasteryEvent) *MasteryEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MasteryEventClient) DeleteOneID(id int) *MasteryEventDeleteOne {
	builder := c.Delete().Where(masteryevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MasteryEventDeleteOne{builder}
}

// Query returns a query builder for MasteryEvent.
func (c *MasteryEventClient) Query() *MasteryEventQuery {
	return &MasteryEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMasteryEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a MasteryEvent entity by its id.
func (c *MasteryEventClient) Get(ctx context.Context, id int) (*MasteryEvent, error) {
	return c.Query().Where(masteryevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MasteryEventClient) GetX(ctx context.Context, id int) *MasteryEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MasteryEventClient) Hooks() []Hook {
	return c.hooks.MasteryEvent
}

// Interceptors returns the client interceptors.
func (c *MasteryEventClient) Interceptors() []Interceptor {
	return c.inters.MasteryEvent
}

func (c *MasteryEventClient) mutate(ctx context.Context, m *MasteryEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MasteryEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MasteryEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MasteryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MasteryEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MasteryEvent mutation op: %q", m.Op())
	}
}

// ProgressRecordClient is a client for the ProgressRecord schema.
type ProgressRecordClient struct {
	config
}

// NewProgressRecordClient returns a client for the ProgressRecord from the given config.
func NewProgressRecordClient(c config) *ProgressRecordClient {
	return &ProgressRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `progressrecord.Hooks(f(g(h())))`.
func (c *ProgressRecordClient) Use(hooks ...Hook) {
	c.hooks.ProgressRecord = append(c.hooks.ProgressRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `progressrecord.Intercept(f(g(h())))`.
func (c *ProgressRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProgressRecord = append(c.inters.ProgressRecord, interceptors...)
}

// Create returns a builder for creating a ProgressRecord entity.
func (c *ProgressRecordClient) Create() *ProgressRecordCreate {
	mutation := newProgressRecordMutation(c.config, OpCreate)
	return &ProgressRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProgressRecord entities.
func (c *ProgressRecordClient) CreateBulk(builders ...*ProgressRecordCreate) *ProgressRecordCreateBulk {
	return &ProgressRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProgressRecordClient) MapCreateBulk(slice any, setFunc func(*ProgressRecordCreate, int)) *ProgressRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProgressRecordCreateBulk{err: fmt.Errorf("calling to ProgressRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProgressRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProgressRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProgressRecord.
func (c *ProgressRecordClient) Update() *ProgressRecordUpdate {
	mutation := newProgressRecordMutation(c.config, OpUpdate)
	return &ProgressRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProgressRecordClient) UpdateOne(_m *ProgressRecord) *ProgressRecordUpdateOne {
	mutation := newProgressRecordMutation(c.config, OpUpdateOne, withProgressRecord(_m))
	return &ProgressRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProgressRecordClient) UpdateOneID(id int) *ProgressRecordUpdateOne {
	mutation := newProgressRecordMutation(c.config, OpUpdateOne, withProgressRecordID(id))
	return &ProgressRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProgressRecord.
func (c *ProgressRecordClient) Delete() *ProgressRecordDelete {
	mutation := newProgressRecordMutation(c.config, OpDelete)
	return &ProgressRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProgressRecordClient) DeleteOne(_m *ProgressRecord) *ProgressRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProgressRecordClient) DeleteOneID(id int) *ProgressRecordDeleteOne {
	builder := c.Delete().Where(progressrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProgressRecordDeleteOne{builder}
}

// Query returns a query builder for ProgressRecord.
func (c *ProgressRecordClient) Query() *ProgressRecordQuery {
	return &ProgressRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProgressRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a ProgressRecord entity by its id.
func (c *ProgressRecordClient) Get(ctx context.Context, id int) (*ProgressRecord, error) {
	return c.Query().Where(progressrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProgressRecordClient) GetX(ctx context.Context, id int) *ProgressRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProgressRecordClient) Hooks() []Hook {
	return c.hooks.ProgressRecord
}

// Interceptors returns the client interceptors.
func (c *ProgressRecordClient) Interceptors() []Interceptor {
	return c.inters.ProgressRecord
}

func (c *ProgressRecordClient) mutate(ctx context.Context, m *ProgressRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProgressRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProgressRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProgressRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProgressRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProgressRecord mutation op: %q", m.Op())
	}
}

// QuestionRecordClient is a client for the QuestionRecord schema.
type QuestionRecordClient struct {
	config
}

// NewQuestionRecordClient returns a client for the QuestionRecord from the given config.
func NewQuestionRecordClient(c config) *QuestionRecordClient {
	return &QuestionRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `questionrecord.Hooks(f(g(h())))`.
func (c *QuestionRecordClient) Use(hooks ...Hook) {
	c.hooks.QuestionRecord = append(c.hooks.QuestionRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `questionrecord.Intercept(f(g(h())))`.
func (c *QuestionRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuestionRecord = append(c.inters.QuestionRecord, interceptors...)
}

// Create returns a builder for creating a QuestionRecord entity.
func (c *QuestionRecordClient) Create() *QuestionRecordCreate {
	mutation := newQuestionRecordMutation(c.config, OpCreate)
	return &QuestionRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuestionRecord entities.
func (c *QuestionRecordClient) CreateBulk(builders ...*QuestionRecordCreate) *QuestionRecordCreateBulk {
	return &QuestionRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionRecordClient) MapCreateBulk(slice any, setFunc func(*QuestionRecordCreate, int)) *QuestionRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionRecordCreateBulk{err: fmt.Errorf("calling to QuestionRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuestionRecord.
func (c *QuestionRecordClient) Update() *QuestionRecordUpdate {
	mutation := newQuestionRecordMutation(c.config, OpUpdate)
	return &QuestionRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionRecordClient) UpdateOne(_m *QuestionRecord) *QuestionRecordUpdateOne {
	mutation := newQuestionRecordMutation(c.config, OpUpdateOne, withQuestionRecord(_m))
	return &QuestionRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionRecordClient) UpdateOneID(id int) *QuestionRecordUpdateOne {
	mutation := newQuestionRecordMutation(c.config, OpUpdateOne, withQuestionRecordID(id))
	return &QuestionRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuestionRecord.
func (c *QuestionRecordClient) Delete() *QuestionRecordDelete {
	mutation := newQuestionRecordMutation(c.config, OpDelete)
	return &QuestionRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionRecordClient) DeleteOne(_m *QuestionRecord) *QuestionRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionRecordClient) DeleteOneID(id int) *QuestionRecordDeleteOne {
	builder := c.Delete().Where(questionrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionRecordDeleteOne{builder}
}

// Query returns a query builder for QuestionRecord.
func (c *QuestionRecordClient) Query() *QuestionRecordQuery {
	return &QuestionRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestionRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a QuestionRecord entity by its id.
func (c *QuestionRecordClient) Get(ctx context.Context, id int) (*QuestionRecord, error) {
	return c.Query().Where(questionrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionRecordClient) GetX(ctx context.Context, id int) *QuestionRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuestionRecordClient) Hooks() []Hook {
	return c.hooks.QuestionRecord
}

// Interceptors returns the client interceptors.
func (c *QuestionRecordClient) Interceptors() []Interceptor {
	return c.inters.QuestionRecord
}

func (c *QuestionRecordClient) mutate(ctx context.Context, m *QuestionRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuestionRecord mutation op: %q", m.Op())
	}
}

// TopicClient is a client for the Topic schema.
type TopicClient struct {
	config
}

// NewTopicClient returns a client for the Topic from the given config.
func NewTopicClient(c config) *TopicClient {
	return &TopicClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `topic.Hooks(f(g(h())))`.
func (c *TopicClient) Use(hooks ...Hook) {
	c.hooks.Topic = append(c.hooks.Topic, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `topic.Intercept(f(g(h())))`.
func (c *TopicClient) Intercept(interceptors ...Interceptor) {
	c.inters.Topic = append(c.inters.Topic, interceptors...)
}

// Create returns a builder for creating a Topic entity.
func (c *TopicClient) Create() *TopicCreate {
	mutation := newTopicMutation(c.config, OpCreate)
	return &TopicCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Topic entities.
func (c *TopicClient) CreateBulk(builders ...*TopicCreate) *TopicCreateBulk {
	return &TopicCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TopicClient) MapCreateBulk(slice any, setFunc func(*TopicCreate, int)) *TopicCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TopicCreateBulk{err: fmt.Errorf("calling to TopicClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TopicCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TopicCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Topic.
func (c *TopicClient) Update() *TopicUpdate {
	mutation := newTopicMutation(c.config, OpUpdate)
	return &TopicUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TopicClient) UpdateOne(_m *Topic) *TopicUpdateOne {
	mutation := newTopicMutation(c.config, OpUpdateOne, withTopic(_m))
	return &TopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TopicClient) UpdateOneID(id int) *TopicUpdateOne {
	mutation := newTopicMutation(c.config, OpUpdateOne, withTopicID(id))
	return &TopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Topic.
func (c *TopicClient) Delete() *TopicDelete {
	mutation := newTopicMutation(c.config, OpDelete)
	return &TopicDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TopicClient) DeleteOne(_m *Topic) *TopicDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TopicClient) DeleteOneID(id int) *TopicDeleteOne {
	builder := c.Delete().Where(topic.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TopicDeleteOne{builder}
}

// Query returns a query builder for Topic.
func (c *TopicClient) Query() *TopicQuery {
	return &TopicQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTopic},
		inters: c.Interceptors(),
	}
}

// Get returns a Topic entity by its id.
func (c *TopicClient) Get(ctx context.Context, id int) (*Topic, error) {
	return c.Query().Where(topic.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TopicClient) GetX(ctx context.Context, id int) *Topic {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TopicClient) Hooks() []Hook {
	return c.hooks.Topic
}

// Interceptors returns the client interceptors.
func (c *TopicClient) Interceptors() []Interceptor {
	return c.inters.Topic
}

func (c *TopicClient) mutate(ctx context.Context, m *TopicMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TopicCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TopicUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TopicDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Topic mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AnswerEvent, ConceptHistory, ExpansionAttempt, InterestRecord, LLMRequestEvent,
		MasteryEvent, ProgressRecord, QuestionRecord, Topic []ent.Hook
	}
	inters struct {
		AnswerEvent, ConceptHistory, ExpansionAttempt, InterestRecord, LLMRequestEvent,
		MasteryEvent, ProgressRecord, QuestionRecord, Topic []ent.Interceptor
	}
)
