// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/reflowhq/reflow/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/reflowhq/reflow/ent/conceptprogress"
	"github.com/reflowhq/reflow/ent/concepttopic"
	"github.com/reflowhq/reflow/ent/curriculum"
	"github.com/reflowhq/reflow/ent/knowledgenode"
	"github.com/reflowhq/reflow/ent/llmrequestevent"
	"github.com/reflowhq/reflow/ent/steprecord"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ConceptProgress is the client for interacting with the ConceptProgress builders.
	ConceptProgress *ConceptProgressClient
	// ConceptTopic is the client for interacting with the ConceptTopic builders.
	ConceptTopic *ConceptTopicClient
	// Curriculum is the client for interacting with the Curriculum builders.
	Curriculum *CurriculumClient
	// KnowledgeNode is the client for interacting with the KnowledgeNode builders.
	KnowledgeNode *KnowledgeNodeClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// StepRecord is the client for interacting with the StepRecord builders.
	StepRecord *StepRecordClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ConceptProgress = NewConceptProgressClient(c.config)
	c.ConceptTopic = NewConceptTopicClient(c.config)
	c.Curriculum = NewCurriculumClient(c.config)
	c.KnowledgeNode = NewKnowledgeNodeClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.StepRecord = NewStepRecordClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		ConceptProgress: NewConceptProgressClient(cfg),
		ConceptTopic:    NewConceptTopicClient(cfg),
		Curriculum:      NewCurriculumClient(cfg),
		KnowledgeNode:   NewKnowledgeNodeClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		StepRecord:      NewStepRecordClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		ConceptProgress: NewConceptProgressClient(cfg),
		ConceptTopic:    NewConceptTopicClient(cfg),
		Curriculum:      NewCurriculumClient(cfg),
		KnowledgeNode:   NewKnowledgeNodeClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		StepRecord:      NewStepRecordClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ConceptProgress.
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
		c.ConceptProgress, c.ConceptTopic, c.Curriculum, c.KnowledgeNode,
		c.LLMRequestEvent, c.StepRecord,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ConceptProgress, c.ConceptTopic, c.Curriculum, c.KnowledgeNode,
		c.LLMRequestEvent, c.StepRecord,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ConceptProgressMutation:
		return c.ConceptProgress.mutate(ctx, m)
	case *ConceptTopicMutation:
		return c.ConceptTopic.mutate(ctx, m)
	case *CurriculumMutation:
		return c.Curriculum.mutate(ctx, m)
	case *KnowledgeNodeMutation:
		return c.KnowledgeNode.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *StepRecordMutation:
		return c.StepRecord.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ConceptProgressClient is a client for the ConceptProgress schema.
type ConceptProgressClient struct {
	config
}

// NewConceptProgressClient returns a client for the ConceptProgress from the given config.
func NewConceptProgressClient(c config) *ConceptProgressClient {
	return &ConceptProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conceptprogress.Hooks(f(g(h())))`.
func (c *ConceptProgressClient) Use(hooks ...Hook) {
	c.hooks.ConceptProgress = append(c.hooks.ConceptProgress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conceptprogress.Intercept(f(g(h())))`.
func (c *ConceptProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConceptProgress = append(c.inters.ConceptProgress, interceptors...)
}

// Create returns a builder for creating a ConceptProgress entity.
func (c *ConceptProgressClient) Create() *ConceptProgressCreate {
	mutation := newConceptProgressMutation(c.config, OpCreate)
	return &ConceptProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConceptProgress entities.
func (c *ConceptProgressClient) CreateBulk(builders ...*ConceptProgressCreate) *ConceptProgressCreateBulk {
	return &ConceptProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConceptProgressClient) MapCreateBulk(slice any, setFunc func(*ConceptProgressCreate, int)) *ConceptProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConceptProgressCreateBulk{err: fmt.Errorf("calling to ConceptProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConceptProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConceptProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConceptProgress.
func (c *ConceptProgressClient) Update() *ConceptProgressUpdate {
	mutation := newConceptProgressMutation(c.config, OpUpdate)
	return &ConceptProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConceptProgressClient) UpdateOne(_m *ConceptProgress) *ConceptProgressUpdateOne {
	mutation := newConceptProgressMutation(c.config, OpUpdateOne, withConceptProgress(_m))
	return &ConceptProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConceptProgressClient) UpdateOneID(id string) *ConceptProgressUpdateOne {
	mutation := newConceptProgressMutation(c.config, OpUpdateOne, withConceptProgressID(id))
	return &ConceptProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConceptProgress.
func (c *ConceptProgressClient) Delete() *ConceptProgressDelete {
	mutation := newConceptProgressMutation(c.config, OpDelete)
	return &ConceptProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConceptProgressClient) DeleteOne(_m *ConceptProgress) *ConceptProgressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConceptProgressClient) DeleteOneID(id string) *ConceptProgressDeleteOne {
	builder := c.Delete().Where(conceptprogress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConceptProgressDeleteOne{builder}
}

// Query returns a query builder for ConceptProgress.
func (c *ConceptProgressClient) Query() *ConceptProgressQuery {
	return &ConceptProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConceptProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a ConceptProgress entity by its id.
func (c *ConceptProgressClient) Get(ctx context.Context, id string) (*ConceptProgress, error) {
	return c.Query().Where(conceptprogress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConceptProgressClient) GetX(ctx context.Context, id string) *ConceptProgress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ConceptProgressClient) Hooks() []Hook {
	return c.hooks.ConceptProgress
}

// Interceptors returns the client interceptors.
func (c *ConceptProgressClient) Interceptors() []Interceptor {
	return c.inters.ConceptProgress
}

func (c *ConceptProgressClient) mutate(ctx context.Context, m *ConceptProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConceptProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConceptProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConceptProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConceptProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConceptProgress mutation op: %q", m.Op())
	}
}

// ConceptTopicClient is a client for the ConceptTopic schema.
type ConceptTopicClient struct {
	config
}

// NewConceptTopicClient returns a client for the ConceptTopic from the given config.
func NewConceptTopicClient(c config) *ConceptTopicClient {
	return &ConceptTopicClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `concepttopic.Hooks(f(g(h())))`.
func (c *ConceptTopicClient) Use(hooks ...Hook) {
	c.hooks.ConceptTopic = append(c.hooks.ConceptTopic, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `concepttopic.Intercept(f(g(h())))`.
func (c *ConceptTopicClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConceptTopic = append(c.inters.ConceptTopic, interceptors...)
}

// Create returns a builder for creating a ConceptTopic entity.
func (c *ConceptTopicClient) Create() *ConceptTopicCreate {
	mutation := newConceptTopicMutation(c.config, OpCreate)
	return &ConceptTopicCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConceptTopic entities.
func (c *ConceptTopicClient) CreateBulk(builders ...*ConceptTopicCreate) *ConceptTopicCreateBulk {
	return &ConceptTopicCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConceptTopicClient) MapCreateBulk(slice any, setFunc func(*ConceptTopicCreate, int)) *ConceptTopicCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConceptTopicCreateBulk{err: fmt.Errorf("calling to ConceptTopicClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConceptTopicCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConceptTopicCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConceptTopic.
func (c *ConceptTopicClient) Update() *ConceptTopicUpdate {
	mutation := newConceptTopicMutation(c.config, OpUpdate)
	return &ConceptTopicUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConceptTopicClient) UpdateOne(_m *ConceptTopic) *ConceptTopicUpdateOne {
	mutation := newConceptTopicMutation(c.config, OpUpdateOne, withConceptTopic(_m))
	return &ConceptTopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConceptTopicClient) UpdateOneID(id string) *ConceptTopicUpdateOne {
	mutation := newConceptTopicMutation(c.config, OpUpdateOne, withConceptTopicID(id))
	return &ConceptTopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConceptTopic.
func (c *ConceptTopicClient) Delete() *ConceptTopicDelete {
	mutation := newConceptTopicMutation(c.config, OpDelete)
	return &ConceptTopicDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConceptTopicClient) DeleteOne(_m *ConceptTopic) *ConceptTopicDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConceptTopicClient) DeleteOneID(id string) *ConceptTopicDeleteOne {
	builder := c.Delete().Where(concepttopic.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConceptTopicDeleteOne{builder}
}

// Query returns a query builder for ConceptTopic.
func (c *ConceptTopicClient) Query() *ConceptTopicQuery {
	return &ConceptTopicQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConceptTopic},
		inters: c.Interceptors(),
	}
}

// Get returns a ConceptTopic entity by its id.
func (c *ConceptTopicClient) Get(ctx context.Context, id string) (*ConceptTopic, error) {
	return c.Query().Where(concepttopic.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConceptTopicClient) GetX(ctx context.Context, id string) *ConceptTopic {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ConceptTopicClient) Hooks() []Hook {
	return c.hooks.ConceptTopic
}

// Interceptors returns the client interceptors.
func (c *ConceptTopicClient) Interceptors() []Interceptor {
	return c.inters.ConceptTopic
}

func (c *ConceptTopicClient) mutate(ctx context.Context, m *ConceptTopicMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConceptTopicCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConceptTopicUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConceptTopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConceptTopicDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConceptTopic mutation op: %q", m.Op())
	}
}

// CurriculumClient is a client for the Curriculum schema.
type CurriculumClient struct {
	config
}

// NewCurriculumClient returns a client for the Curriculum from the given config.
func NewCurriculumClient(c config) *CurriculumClient {
	return &CurriculumClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `curriculum.Hooks(f(g(h())))`.
func (c *CurriculumClient) Use(hooks ...Hook) {
	c.hooks.Curriculum = append(c.hooks.Curriculum, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `curriculum.Intercept(f(g(h())))`.
func (c *CurriculumClient) Intercept(interceptors ...Interceptor) {
	c.inters.Curriculum = append(c.inters.Curriculum, interceptors...)
}

// Create returns a builder for creating a Curriculum entity.
func (c *CurriculumClient) Create() *CurriculumCreate {
	mutation := newCurriculumMutation(c.config, OpCreate)
	return &CurriculumCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Curriculum entities.
func (c *CurriculumClient) CreateBulk(builders ...*CurriculumCreate) *CurriculumCreateBulk {
	return &CurriculumCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CurriculumClient) MapCreateBulk(slice any, setFunc func(*CurriculumCreate, int)) *CurriculumCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CurriculumCreateBulk{err: fmt.Errorf("calling to CurriculumClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CurriculumCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CurriculumCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Curriculum.
func (c *CurriculumClient) Update() *CurriculumUpdate {
	mutation := newCurriculumMutation(c.config, OpUpdate)
	return &CurriculumUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CurriculumClient) UpdateOne(_m *Curriculum) *CurriculumUpdateOne {
	mutation := newCurriculumMutation(c.config, OpUpdateOne, withCurriculum(_m))
	return &CurriculumUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CurriculumClient) UpdateOneID(id string) *CurriculumUpdateOne {
	mutation := newCurriculumMutation(c.config, OpUpdateOne, withCurriculumID(id))
	return &CurriculumUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Curriculum.
func (c *CurriculumClient) Delete() *CurriculumDelete {
	mutation := newCurriculumMutation(c.config, OpDelete)
	return &CurriculumDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CurriculumClient) DeleteOne(_m *Curriculum) *CurriculumDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CurriculumClient) DeleteOneID(id string) *CurriculumDeleteOne {
	builder := c.Delete().Where(curriculum.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CurriculumDeleteOne{builder}
}

// Query returns a query builder for Curriculum.
func (c *CurriculumClient) Query() *CurriculumQuery {
	return &CurriculumQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCurriculum},
		inters: c.Interceptors(),
	}
}

// Get returns a Curriculum entity by its id.
func (c *CurriculumClient) Get(ctx context.Context, id string) (*Curriculum, error) {
	return c.Query().Where(curriculum.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CurriculumClient) GetX(ctx context.Context, id string) *Curriculum {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CurriculumClient) Hooks() []Hook {
	return c.hooks.Curriculum
}

// Interceptors returns the client interceptors.
func (c *CurriculumClient) Interceptors() []Interceptor {
	return c.inters.Curriculum
}

func (c *CurriculumClient) mutate(ctx context.Context, m *CurriculumMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CurriculumCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CurriculumUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CurriculumUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CurriculumDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Curriculum mutation op: %q", m.Op())
	}
}

// KnowledgeNodeClient is a client for the KnowledgeNode schema.
type KnowledgeNodeClient struct {
	config
}

// NewKnowledgeNodeClient returns a client for the KnowledgeNode from the given config.
func NewKnowledgeNodeClient(c config) *KnowledgeNodeClient {
	return &KnowledgeNodeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `knowledgenode.Hooks(f(g(h())))`.
func (c *KnowledgeNodeClient) Use(hooks ...Hook) {
	c.hooks.KnowledgeNode = append(c.hooks.KnowledgeNode, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `knowledgenode.Intercept(f(g(h())))`.
func (c *KnowledgeNodeClient) Intercept(interceptors ...Interceptor) {
	c.inters.KnowledgeNode = append(c.inters.KnowledgeNode, interceptors...)
}

// Create returns a builder for creating a KnowledgeNode entity.
func (c *KnowledgeNodeClient) Create() *KnowledgeNodeCreate {
	mutation := newKnowledgeNodeMutation(c.config, OpCreate)
	return &KnowledgeNodeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of KnowledgeNode entities.
func (c *KnowledgeNodeClient) CreateBulk(builders ...*KnowledgeNodeCreate) *KnowledgeNodeCreateBulk {
	return &KnowledgeNodeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *KnowledgeNodeClient) MapCreateBulk(slice any, setFunc func(*KnowledgeNodeCreate, int)) *KnowledgeNodeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &KnowledgeNodeCreateBulk{err: fmt.Errorf("calling to KnowledgeNodeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*KnowledgeNodeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &KnowledgeNodeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for KnowledgeNode.
func (c *KnowledgeNodeClient) Update() *KnowledgeNodeUpdate {
	mutation := newKnowledgeNodeMutation(c.config, OpUpdate)
	return &KnowledgeNodeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *KnowledgeNodeClient) UpdateOne(_m *KnowledgeNode) *KnowledgeNodeUpdateOne {
	mutation := newKnowledgeNodeMutation(c.config, OpUpdateOne, withKnowledgeNode(_m))
	return &KnowledgeNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *KnowledgeNodeClient) UpdateOneID(id string) *KnowledgeNodeUpdateOne {
	mutation := newKnowledgeNodeMutation(c.config, OpUpdateOne, withKnowledgeNodeID(id))
	return &KnowledgeNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for KnowledgeNode.
func (c *KnowledgeNodeClient) Delete() *KnowledgeNodeDelete {
	mutation := newKnowledgeNodeMutation(c.config, OpDelete)
	return &KnowledgeNodeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *KnowledgeNodeClient) DeleteOne(_m *KnowledgeNode) *KnowledgeNodeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *KnowledgeNodeClient) DeleteOneID(id string) *KnowledgeNodeDeleteOne {
	builder := c.Delete().Where(knowledgenode.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &KnowledgeNodeDeleteOne{builder}
}

// Query returns a query builder for KnowledgeNode.
func (c *KnowledgeNodeClient) Query() *KnowledgeNodeQuery {
	return &KnowledgeNodeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeKnowledgeNode},
		inters: c.Interceptors(),
	}
}

// Get returns a KnowledgeNode entity by its id.
func (c *KnowledgeNodeClient) Get(ctx context.Context, id string) (*KnowledgeNode, error) {
	return c.Query().Where(knowledgenode.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *KnowledgeNodeClient) GetX(ctx context.Context, id string) *KnowledgeNode {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *KnowledgeNodeClient) Hooks() []Hook {
	return c.hooks.KnowledgeNode
}

// Interceptors returns the client interceptors.
func (c *KnowledgeNodeClient) Interceptors() []Interceptor {
	return c.inters.KnowledgeNode
}

func (c *KnowledgeNodeClient) mutate(ctx context.Context, m *KnowledgeNodeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&KnowledgeNodeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&KnowledgeNodeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&KnowledgeNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&KnowledgeNodeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown KnowledgeNode mutation op: %q", m.Op())
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

// StepRecordClient is a client for the StepRecord schema.
type StepRecordClient struct {
	config
}

// NewStepRecordClient returns a client for the StepRecord from the given config.
func NewStepRecordClient(c config) *StepRecordClient {
	return &StepRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `steprecord.Hooks(f(g(h())))`.
func (c *StepRecordClient) Use(hooks ...Hook) {
	c.hooks.StepRecord = append(c.hooks.StepRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `steprecord.Intercept(f(g(h())))`.
func (c *StepRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.StepRecord = append(c.inters.StepRecord, interceptors...)
}

// Create returns a builder for creating a StepRecord entity.
func (c *StepRecordClient) Create() *StepRecordCreate {
	mutation := newStepRecordMutation(c.config, OpCreate)
	return &StepRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StepRecord entities.
func (c *StepRecordClient) CreateBulk(builders ...*StepRecordCreate) *StepRecordCreateBulk {
	return &StepRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StepRecordClient) MapCreateBulk(slice any, setFunc func(*StepRecordCreate, int)) *StepRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StepRecordCreateBulk{err: fmt.Errorf("calling to StepRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StepRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StepRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StepRecord.
func (c *StepRecordClient) Update() *StepRecordUpdate {
	mutation := newStepRecordMutation(c.config, OpUpdate)
	return &StepRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StepRecordClient) UpdateOne(_m *StepRecord) *StepRecordUpdateOne {
	mutation := newStepRecordMutation(c.config, OpUpdateOne, withStepRecord(_m))
	return &StepRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StepRecordClient) UpdateOneID(id string) *StepRecordUpdateOne {
	mutation := newStepRecordMutation(c.config, OpUpdateOne, withStepRecordID(id))
	return &StepRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StepRecord.
func (c *StepRecordClient) Delete() *StepRecordDelete {
	mutation := newStepRecordMutation(c.config, OpDelete)
	return &StepRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StepRecordClient) DeleteOne(_m *StepRecord) *StepRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StepRecordClient) DeleteOneID(id string) *StepRecordDeleteOne {
	builder := c.Delete().Where(steprecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StepRecordDeleteOne{builder}
}

// Query returns a query builder for StepRecord.
func (c *StepRecordClient) Query() *StepRecordQuery {
	return &StepRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStepRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a StepRecord entity by its id.
func (c *StepRecordClient) Get(ctx context.Context, id string) (*StepRecord, error) {
	return c.Query().Where(steprecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StepRecordClient) GetX(ctx context.Context, id string) *StepRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StepRecordClient) Hooks() []Hook {
	return c.hooks.StepRecord
}

// Interceptors returns the client interceptors.
func (c *StepRecordClient) Interceptors() []Interceptor {
	return c.inters.StepRecord
}

func (c *StepRecordClient) mutate(ctx context.Context, m *StepRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StepRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StepRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StepRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StepRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StepRecord mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ConceptProgress, ConceptTopic, Curriculum, KnowledgeNode, LLMRequestEvent,
		StepRecord []ent.Hook
	}
	inters struct {
		ConceptProgress, ConceptTopic, Curriculum, KnowledgeNode, LLMRequestEvent,
		StepRecord []ent.Interceptor
	}
)
