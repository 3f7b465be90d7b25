// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/labdex/labdex/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/labdex/labdex/ent/analyte"
	"github.com/labdex/labdex/ent/analytealias"
	"github.com/labdex/labdex/ent/chatsession"
	"github.com/labdex/labdex/ent/gmailprovenance"
	"github.com/labdex/labdex/ent/identity"
	"github.com/labdex/labdex/ent/labresult"
	"github.com/labdex/labdex/ent/matchreview"
	"github.com/labdex/labdex/ent/patient"
	"github.com/labdex/labdex/ent/patientreport"
	"github.com/labdex/labdex/ent/pendinganalyte"
	"github.com/labdex/labdex/ent/session"
	"github.com/labdex/labdex/ent/sqlgenerationlog"
	"github.com/labdex/labdex/ent/unitalias"
	"github.com/labdex/labdex/ent/unitreview"
	"github.com/labdex/labdex/ent/user"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Analyte is the client for interacting with the Analyte builders.
	Analyte *AnalyteClient
	// AnalyteAlias is the client for interacting with the AnalyteAlias builders.
	AnalyteAlias *AnalyteAliasClient
	// ChatSession is the client for interacting with the ChatSession builders.
	ChatSession *ChatSessionClient
	// GmailProvenance is the client for interacting with the GmailProvenance builders.
	GmailProvenance *GmailProvenanceClient
	// Identity is the client for interacting with the Identity builders.
	Identity *IdentityClient
	// LabResult is the client for interacting with the LabResult builders.
	LabResult *LabResultClient
	// MatchReview is the client for interacting with the MatchReview builders.
	MatchReview *MatchReviewClient
	// Patient is the client for interacting with the Patient builders.
	Patient *PatientClient
	// PatientReport is the client for interacting with the PatientReport builders.
	PatientReport *PatientReportClient
	// PendingAnalyte is the client for interacting with the PendingAnalyte builders.
	PendingAnalyte *PendingAnalyteClient
	// SQLGenerationLog is the client for interacting with the SQLGenerationLog builders.
	SQLGenerationLog *SQLGenerationLogClient
	// Session is the client for interacting with the Session builders.
	Session *SessionClient
	// UnitAlias is the client for interacting with the UnitAlias builders.
	UnitAlias *UnitAliasClient
	// UnitReview is the client for interacting with the UnitReview builders.
	UnitReview *UnitReviewClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Analyte = NewAnalyteClient(c.config)
	c.AnalyteAlias = NewAnalyteAliasClient(c.config)
	c.ChatSession = NewChatSessionClient(c.config)
	c.GmailProvenance = NewGmailProvenanceClient(c.config)
	c.Identity = NewIdentityClient(c.config)
	c.LabResult = NewLabResultClient(c.config)
	c.MatchReview = NewMatchReviewClient(c.config)
	c.Patient = NewPatientClient(c.config)
	c.PatientReport = NewPatientReportClient(c.config)
	c.PendingAnalyte = NewPendingAnalyteClient(c.config)
	c.SQLGenerationLog = NewSQLGenerationLogClient(c.config)
	c.Session = NewSessionClient(c.config)
	c.UnitAlias = NewUnitAliasClient(c.config)
	c.UnitReview = NewUnitReviewClient(c.config)
	c.User = NewUserClient(c.config)
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
		Analyte:          NewAnalyteClient(cfg),
		AnalyteAlias:     NewAnalyteAliasClient(cfg),
		ChatSession:      NewChatSessionClient(cfg),
		GmailProvenance:  NewGmailProvenanceClient(cfg),
		Identity:         NewIdentityClient(cfg),
		LabResult:        NewLabResultClient(cfg),
		MatchReview:      NewMatchReviewClient(cfg),
		Patient:          NewPatientClient(cfg),
		PatientReport:    NewPatientReportClient(cfg),
		PendingAnalyte:   NewPendingAnalyteClient(cfg),
		SQLGenerationLog: NewSQLGenerationLogClient(cfg),
		Session:          NewSessionClient(cfg),
		UnitAlias:        NewUnitAliasClient(cfg),
		UnitReview:       NewUnitReviewClient(cfg),
		User:             NewUserClient(cfg),
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
		Analyte:          NewAnalyteClient(cfg),
		AnalyteAlias:     NewAnalyteAliasClient(cfg),
		ChatSession:      NewChatSessionClient(cfg),
		GmailProvenance:  NewGmailProvenanceClient(cfg),
		Identity:         NewIdentityClient(cfg),
		LabResult:        NewLabResultClient(cfg),
		MatchReview:      NewMatchReviewClient(cfg),
		Patient:          NewPatientClient(cfg),
		PatientReport:    NewPatientReportClient(cfg),
		PendingAnalyte:   NewPendingAnalyteClient(cfg),
		SQLGenerationLog: NewSQLGenerationLogClient(cfg),
		Session:          NewSessionClient(cfg),
		UnitAlias:        NewUnitAliasClient(cfg),
		UnitReview:       NewUnitReviewClient(cfg),
		User:             NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Analyte.
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
		c.Analyte, c.AnalyteAlias, c.ChatSession, c.GmailProvenance, c.Identity,
		c.LabResult, c.MatchReview, c.Patient, c.PatientReport, c.PendingAnalyte,
		c.SQLGenerationLog, c.Session, c.UnitAlias, c.UnitReview, c.User,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Analyte, c.AnalyteAlias, c.ChatSession, c.GmailProvenance, c.Identity,
		c.LabResult, c.MatchReview, c.Patient, c.PatientReport, c.PendingAnalyte,
		c.SQLGenerationLog, c.Session, c.UnitAlias, c.UnitReview, c.User,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnalyteMutation:
		return c.Analyte.mutate(ctx, m)
	case *AnalyteAliasMutation:
		return c.AnalyteAlias.mutate(ctx, m)
	case *ChatSessionMutation:
		return c.ChatSession.mutate(ctx, m)
	case *GmailProvenanceMutation:
		return c.GmailProvenance.mutate(ctx, m)
	case *IdentityMutation:
		return c.Identity.mutate(ctx, m)
	case *LabResultMutation:
		return c.LabResult.mutate(ctx, m)
	case *MatchReviewMutation:
		return c.MatchReview.mutate(ctx, m)
	case *PatientMutation:
		return c.Patient.mutate(ctx, m)
	case *PatientReportMutation:
		return c.PatientReport.mutate(ctx, m)
	case *PendingAnalyteMutation:
		return c.PendingAnalyte.mutate(ctx, m)
	case *SQLGenerationLogMutation:
		return c.SQLGenerationLog.mutate(ctx, m)
	case *SessionMutation:
		return c.Session.mutate(ctx, m)
	case *UnitAliasMutation:
		return c.UnitAlias.mutate(ctx, m)
	case *UnitReviewMutation:
		return c.UnitReview.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnalyteClient is a client for the Analyte schema.
type AnalyteClient struct {
	config
}

// NewAnalyteClient returns a client for the Analyte from the given config.
func NewAnalyteClient(c config) *AnalyteClient {
	return &AnalyteClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `analyte.Hooks(f(g(h())))`.
func (c *AnalyteClient) Use(hooks ...Hook) {
	c.hooks.Analyte = append(c.hooks.Analyte, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `analyte.Intercept(f(g(h())))`.
func (c *AnalyteClient) Intercept(interceptors ...Interceptor) {
	c.inters.Analyte = append(c.inters.Analyte, interceptors...)
}

// Create returns a builder for creating a Analyte entity.
func (c *AnalyteClient) Create() *AnalyteCreate {
	mutation := newAnalyteMutation(c.config, OpCreate)
	return &AnalyteCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Analyte entities.
func (c *AnalyteClient) CreateBulk(builders ...*AnalyteCreate) *AnalyteCreateBulk {
	return &AnalyteCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnalyteClient) MapCreateBulk(slice any, setFunc func(*AnalyteCreate, int)) *AnalyteCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnalyteCreateBulk{err: fmt.Errorf("calling to AnalyteClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnalyteCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnalyteCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Analyte.
func (c *AnalyteClient) Update() *AnalyteUpdate {
	mutation := newAnalyteMutation(c.config, OpUpdate)
	return &AnalyteUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnalyteClient) UpdateOne(_m *Analyte) *AnalyteUpdateOne {
	mutation := newAnalyteMutation(c.config, OpUpdateOne, withAnalyte(_m))
	return &AnalyteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnalyteClient) UpdateOneID(id string) *AnalyteUpdateOne {
	mutation := newAnalyteMutation(c.config, OpUpdateOne, withAnalyteID(id))
	return &AnalyteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Analyte.
func (c *AnalyteClient) Delete() *AnalyteDelete {
	mutation := newAnalyteMutation(c.config, OpDelete)
	return &AnalyteDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnalyteClient) DeleteOne(_m *Analyte) *AnalyteDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnalyteClient) DeleteOneID(id string) *AnalyteDeleteOne {
	builder := c.Delete().Where(analyte.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnalyteDeleteOne{builder}
}

// Query returns a query builder for Analyte.
func (c *AnalyteClient) Query() *AnalyteQuery {
	return &AnalyteQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnalyte},
		inters: c.Interceptors(),
	}
}

// Get returns a Analyte entity by its id.
func (c *AnalyteClient) Get(ctx context.Context, id string) (*Analyte, error) {
	return c.Query().Where(analyte.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnalyteClient) GetX(ctx context.Context, id string) *Analyte {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAliases queries the aliases edge of a Analyte.
func (c *AnalyteClient) QueryAliases(_m *Analyte) *AnalyteAliasQuery {
	query := (&AnalyteAliasClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(analyte.Table, analyte.FieldID, id),
			sqlgraph.To(analytealias.Table, analytealias.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, analyte.AliasesTable, analyte.AliasesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryResults queries the results edge of a Analyte.
func (c *AnalyteClient) QueryResults(_m *Analyte) *LabResultQuery {
	query := (&LabResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(analyte.Table, analyte.FieldID, id),
			sqlgraph.To(labresult.Table, labresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, analyte.ResultsTable, analyte.ResultsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AnalyteClient) Hooks() []Hook {
	return c.hooks.Analyte
}

// Interceptors returns the client interceptors.
func (c *AnalyteClient) Interceptors() []Interceptor {
	return c.inters.Analyte
}

func (c *AnalyteClient) mutate(ctx context.Context, m *AnalyteMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnalyteCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnalyteUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnalyteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnalyteDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Analyte mutation op: %q", m.Op())
	}
}

// AnalyteAliasClient is a client for the AnalyteAlias schema.
type AnalyteAliasClient struct {
	config
}

// NewAnalyteAliasClient returns a client for the AnalyteAlias from the given config.
func NewAnalyteAliasClient(c config) *AnalyteAliasClient {
	return &AnalyteAliasClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `analytealias.Hooks(f(g(h())))`.
func (c *AnalyteAliasClient) Use(hooks ...Hook) {
	c.hooks.AnalyteAlias = append(c.hooks.AnalyteAlias, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `analytealias.Intercept(f(g(h())))`.
func (c *AnalyteAliasClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnalyteAlias = append(c.inters.AnalyteAlias, interceptors...)
}

// Create returns a builder for creating a AnalyteAlias entity.
func (c *AnalyteAliasClient) Create() *AnalyteAliasCreate {
	mutation := newAnalyteAliasMutation(c.config, OpCreate)
	return &AnalyteAliasCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnalyteAlias entities.
func (c *AnalyteAliasClient) CreateBulk(builders ...*AnalyteAliasCreate) *AnalyteAliasCreateBulk {
	return &AnalyteAliasCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnalyteAliasClient) MapCreateBulk(slice any, setFunc func(*AnalyteAliasCreate, int)) *AnalyteAliasCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnalyteAliasCreateBulk{err: fmt.Errorf("calling to AnalyteAliasClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnalyteAliasCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnalyteAliasCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnalyteAlias.
func (c *AnalyteAliasClient) Update() *AnalyteAliasUpdate {
	mutation := newAnalyteAliasMutation(c.config, OpUpdate)
	return &AnalyteAliasUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnalyteAliasClient) UpdateOne(_m *AnalyteAlias) *AnalyteAliasUpdateOne {
	mutation := newAnalyteAliasMutation(c.config, OpUpdateOne, withAnalyteAlias(_m))
	return &AnalyteAliasUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnalyteAliasClient) UpdateOneID(id string) *AnalyteAliasUpdateOne {
	mutation := newAnalyteAliasMutation(c.config, OpUpdateOne, withAnalyteAliasID(id))
	return &AnalyteAliasUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnalyteAlias.
func (c *AnalyteAliasClient) Delete() *AnalyteAliasDelete {
	mutation := newAnalyteAliasMutation(c.config, OpDelete)
	return &AnalyteAliasDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnalyteAliasClient) DeleteOne(_m *AnalyteAlias) *AnalyteAliasDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnalyteAliasClient) DeleteOneID(id string) *AnalyteAliasDeleteOne {
	builder := c.Delete().Where(analytealias.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnalyteAliasDeleteOne{builder}
}

// Query returns a query builder for AnalyteAlias.
func (c *AnalyteAliasClient) Query() *AnalyteAliasQuery {
	return &AnalyteAliasQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnalyteAlias},
		inters: c.Interceptors(),
	}
}

// Get returns a AnalyteAlias entity by its id.
func (c *AnalyteAliasClient) Get(ctx context.Context, id string) (*AnalyteAlias, error) {
	return c.Query().Where(analytealias.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnalyteAliasClient) GetX(ctx context.Context, id string) *AnalyteAlias {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAnalyte queries the analyte edge of a AnalyteAlias.
func (c *AnalyteAliasClient) QueryAnalyte(_m *AnalyteAlias) *AnalyteQuery {
	query := (&AnalyteClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(analytealias.Table, analytealias.FieldID, id),
			sqlgraph.To(analyte.Table, analyte.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, analytealias.AnalyteTable, analytealias.AnalyteColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AnalyteAliasClient) Hooks() []Hook {
	return c.hooks.AnalyteAlias
}

// Interceptors returns the client interceptors.
func (c *AnalyteAliasClient) Interceptors() []Interceptor {
	return c.inters.AnalyteAlias
}

func (c *AnalyteAliasClient) mutate(ctx context.Context, m *AnalyteAliasMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnalyteAliasCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnalyteAliasUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnalyteAliasUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnalyteAliasDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnalyteAlias mutation op: %q", m.Op())
	}
}

// ChatSessionClient is a client for the ChatSession schema.
type ChatSessionClient struct {
	config
}

// NewChatSessionClient returns a client for the ChatSession from the given config.
func NewChatSessionClient(c config) *ChatSessionClient {
	return &ChatSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chatsession.Hooks(f(g(h())))`.
func (c *ChatSessionClient) Use(hooks ...Hook) {
	c.hooks.ChatSession = append(c.hooks.ChatSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chatsession.Intercept(f(g(h())))`.
func (c *ChatSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChatSession = append(c.inters.ChatSession, interceptors...)
}

// Create returns a builder for creating a ChatSession entity.
func (c *ChatSessionClient) Create() *ChatSessionCreate {
	mutation := newChatSessionMutation(c.config, OpCreate)
	return &ChatSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChatSession entities.
func (c *ChatSessionClient) CreateBulk(builders ...*ChatSessionCreate) *ChatSessionCreateBulk {
	return &ChatSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChatSessionClient) MapCreateBulk(slice any, setFunc func(*ChatSessionCreate, int)) *ChatSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChatSessionCreateBulk{err: fmt.Errorf("calling to ChatSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChatSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChatSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChatSession.
func (c *ChatSessionClient) Update() *ChatSessionUpdate {
	mutation := newChatSessionMutation(c.config, OpUpdate)
	return &ChatSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChatSessionClient) UpdateOne(_m *ChatSession) *ChatSessionUpdateOne {
	mutation := newChatSessionMutation(c.config, OpUpdateOne, withChatSession(_m))
	return &ChatSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChatSessionClient) UpdateOneID(id string) *ChatSessionUpdateOne {
	mutation := newChatSessionMutation(c.config, OpUpdateOne, withChatSessionID(id))
	return &ChatSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChatSession.
func (c *ChatSessionClient) Delete() *ChatSessionDelete {
	mutation := newChatSessionMutation(c.config, OpDelete)
	return &ChatSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChatSessionClient) DeleteOne(_m *ChatSession) *ChatSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChatSessionClient) DeleteOneID(id string) *ChatSessionDeleteOne {
	builder := c.Delete().Where(chatsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChatSessionDeleteOne{builder}
}

// Query returns a query builder for ChatSession.
func (c *ChatSessionClient) Query() *ChatSessionQuery {
	return &ChatSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChatSession},
		inters: c.Interceptors(),
	}
}

// Get returns a ChatSession entity by its id.
func (c *ChatSessionClient) Get(ctx context.Context, id string) (*ChatSession, error) {
	return c.Query().Where(chatsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChatSessionClient) GetX(ctx context.Context, id string) *ChatSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ChatSessionClient) Hooks() []Hook {
	return c.hooks.ChatSession
}

// Interceptors returns the client interceptors.
func (c *ChatSessionClient) Interceptors() []Interceptor {
	return c.inters.ChatSession
}

func (c *ChatSessionClient) mutate(ctx context.Context, m *ChatSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChatSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChatSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChatSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChatSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChatSession mutation op: %q", m.Op())
	}
}

// GmailProvenanceClient is a client for the GmailProvenance schema.
type GmailProvenanceClient struct {
	config
}

// NewGmailProvenanceClient returns a client for the GmailProvenance from the given config.
func NewGmailProvenanceClient(c config) *GmailProvenanceClient {
	return &GmailProvenanceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `gmailprovenance.Hooks(f(g(h())))`.
func (c *GmailProvenanceClient) Use(hooks ...Hook) {
	c.hooks.GmailProvenance = append(c.hooks.GmailProvenance, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `gmailprovenance.Intercept(f(g(h())))`.
func (c *GmailProvenanceClient) Intercept(interceptors ...Interceptor) {
	c.inters.GmailProvenance = append(c.inters.GmailProvenance, interceptors...)
}

// Create returns a builder for creating a GmailProvenance entity.
func (c *GmailProvenanceClient) Create() *GmailProvenanceCreate {
	mutation := newGmailProvenanceMutation(c.config, OpCreate)
	return &GmailProvenanceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GmailProvenance entities.
func (c *GmailProvenanceClient) CreateBulk(builders ...*GmailProvenanceCreate) *GmailProvenanceCreateBulk {
	return &GmailProvenanceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GmailProvenanceClient) MapCreateBulk(slice any, setFunc func(*GmailProvenanceCreate, int)) *GmailProvenanceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GmailProvenanceCreateBulk{err: fmt.Errorf("calling to GmailProvenanceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GmailProvenanceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GmailProvenanceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GmailProvenance.
func (c *GmailProvenanceClient) Update() *GmailProvenanceUpdate {
	mutation := newGmailProvenanceMutation(c.config, OpUpdate)
	return &GmailProvenanceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GmailProvenanceClient) UpdateOne(_m *GmailProvenance) *GmailProvenanceUpdateOne {
	mutation := newGmailProvenanceMutation(c.config, OpUpdateOne, withGmailProvenance(_m))
	return &GmailProvenanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GmailProvenanceClient) UpdateOneID(id string) *GmailProvenanceUpdateOne {
	mutation := newGmailProvenanceMutation(c.config, OpUpdateOne, withGmailProvenanceID(id))
	return &GmailProvenanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GmailProvenance.
func (c *GmailProvenanceClient) Delete() *GmailProvenanceDelete {
	mutation := newGmailProvenanceMutation(c.config, OpDelete)
	return &GmailProvenanceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GmailProvenanceClient) DeleteOne(_m *GmailProvenance) *GmailProvenanceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GmailProvenanceClient) DeleteOneID(id string) *GmailProvenanceDeleteOne {
	builder := c.Delete().Where(gmailprovenance.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GmailProvenanceDeleteOne{builder}
}

// Query returns a query builder for GmailProvenance.
func (c *GmailProvenanceClient) Query() *GmailProvenanceQuery {
	return &GmailProvenanceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGmailProvenance},
		inters: c.Interceptors(),
	}
}

// Get returns a GmailProvenance entity by its id.
func (c *GmailProvenanceClient) Get(ctx context.Context, id string) (*GmailProvenance, error) {
	return c.Query().Where(gmailprovenance.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GmailProvenanceClient) GetX(ctx context.Context, id string) *GmailProvenance {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GmailProvenanceClient) Hooks() []Hook {
	return c.hooks.GmailProvenance
}

// Interceptors returns the client interceptors.
func (c *GmailProvenanceClient) Interceptors() []Interceptor {
	return c.inters.GmailProvenance
}

func (c *GmailProvenanceClient) mutate(ctx context.Context, m *GmailProvenanceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GmailProvenanceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GmailProvenanceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GmailProvenanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GmailProvenanceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GmailProvenance mutation op: %q", m.Op())
	}
}

// IdentityClient is a client for the Identity schema.
type IdentityClient struct {
	config
}

// NewIdentityClient returns a client for the Identity from the given config.
func NewIdentityClient(c config) *IdentityClient {
	return &IdentityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `identity.Hooks(f(g(h())))`.
func (c *IdentityClient) Use(hooks ...Hook) {
	c.hooks.Identity = append(c.hooks.Identity, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `identity.Intercept(f(g(h())))`.
func (c *IdentityClient) Intercept(interceptors ...Interceptor) {
	c.inters.Identity = append(c.inters.Identity, interceptors...)
}

// Create returns a builder for creating a Identity entity.
func (c *IdentityClient) Create() *IdentityCreate {
	mutation := newIdentityMutation(c.config, OpCreate)
	return &IdentityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Identity entities.
func (c *IdentityClient) CreateBulk(builders ...*IdentityCreate) *IdentityCreateBulk {
	return &IdentityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IdentityClient) MapCreateBulk(slice any, setFunc func(*IdentityCreate, int)) *IdentityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IdentityCreateBulk{err: fmt.Errorf("calling to IdentityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IdentityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IdentityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Identity.
func (c *IdentityClient) Update() *IdentityUpdate {
	mutation := newIdentityMutation(c.config, OpUpdate)
	return &IdentityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IdentityClient) UpdateOne(_m *Identity) *IdentityUpdateOne {
	mutation := newIdentityMutation(c.config, OpUpdateOne, withIdentity(_m))
	return &IdentityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IdentityClient) UpdateOneID(id string) *IdentityUpdateOne {
	mutation := newIdentityMutation(c.config, OpUpdateOne, withIdentityID(id))
	return &IdentityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Identity.
func (c *IdentityClient) Delete() *IdentityDelete {
	mutation := newIdentityMutation(c.config, OpDelete)
	return &IdentityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IdentityClient) DeleteOne(_m *Identity) *IdentityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IdentityClient) DeleteOneID(id string) *IdentityDeleteOne {
	builder := c.Delete().Where(identity.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IdentityDeleteOne{builder}
}

// Query returns a query builder for Identity.
func (c *IdentityClient) Query() *IdentityQuery {
	return &IdentityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIdentity},
		inters: c.Interceptors(),
	}
}

// Get returns a Identity entity by its id.
func (c *IdentityClient) Get(ctx context.Context, id string) (*Identity, error) {
	return c.Query().Where(identity.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IdentityClient) GetX(ctx context.Context, id string) *Identity {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a Identity.
func (c *IdentityClient) QueryUser(_m *Identity) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(identity.Table, identity.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, identity.UserTable, identity.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *IdentityClient) Hooks() []Hook {
	return c.hooks.Identity
}

// Interceptors returns the client interceptors.
func (c *IdentityClient) Interceptors() []Interceptor {
	return c.inters.Identity
}

func (c *IdentityClient) mutate(ctx context.Context, m *IdentityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IdentityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IdentityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IdentityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IdentityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Identity mutation op: %q", m.Op())
	}
}

// LabResultClient is a client for the LabResult schema.
type LabResultClient struct {
	config
}

// NewLabResultClient returns a client for the LabResult from the given config.
func NewLabResultClient(c config) *LabResultClient {
	return &LabResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `labresult.Hooks(f(g(h())))`.
func (c *LabResultClient) Use(hooks ...Hook) {
	c.hooks.LabResult = append(c.hooks.LabResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `labresult.Intercept(f(g(h())))`.
func (c *LabResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.LabResult = append(c.inters.LabResult, interceptors...)
}

// Create returns a builder for creating a LabResult entity.
func (c *LabResultClient) Create() *LabResultCreate {
	mutation := newLabResultMutation(c.config, OpCreate)
	return &LabResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LabResult entities.
func (c *LabResultClient) CreateBulk(builders ...*LabResultCreate) *LabResultCreateBulk {
	return &LabResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LabResultClient) MapCreateBulk(slice any, setFunc func(*LabResultCreate, int)) *LabResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LabResultCreateBulk{err: fmt.Errorf("calling to LabResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LabResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LabResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LabResult.
func (c *LabResultClient) Update() *LabResultUpdate {
	mutation := newLabResultMutation(c.config, OpUpdate)
	return &LabResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LabResultClient) UpdateOne(_m *LabResult) *LabResultUpdateOne {
	mutation := newLabResultMutation(c.config, OpUpdateOne, withLabResult(_m))
	return &LabResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LabResultClient) UpdateOneID(id string) *LabResultUpdateOne {
	mutation := newLabResultMutation(c.config, OpUpdateOne, withLabResultID(id))
	return &LabResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LabResult.
func (c *LabResultClient) Delete() *LabResultDelete {
	mutation := newLabResultMutation(c.config, OpDelete)
	return &LabResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LabResultClient) DeleteOne(_m *LabResult) *LabResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LabResultClient) DeleteOneID(id string) *LabResultDeleteOne {
	builder := c.Delete().Where(labresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LabResultDeleteOne{builder}
}

// Query returns a query builder for LabResult.
func (c *LabResultClient) Query() *LabResultQuery {
	return &LabResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLabResult},
		inters: c.Interceptors(),
	}
}

// Get returns a LabResult entity by its id.
func (c *LabResultClient) Get(ctx context.Context, id string) (*LabResult, error) {
	return c.Query().Where(labresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LabResultClient) GetX(ctx context.Context, id string) *LabResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryReport queries the report edge of a LabResult.
func (c *LabResultClient) QueryReport(_m *LabResult) *PatientReportQuery {
	query := (&PatientReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(labresult.Table, labresult.FieldID, id),
			sqlgraph.To(patientreport.Table, patientreport.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, labresult.ReportTable, labresult.ReportColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAnalyte queries the analyte edge of a LabResult.
func (c *LabResultClient) QueryAnalyte(_m *LabResult) *AnalyteQuery {
	query := (&AnalyteClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(labresult.Table, labresult.FieldID, id),
			sqlgraph.To(analyte.Table, analyte.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, labresult.AnalyteTable, labresult.AnalyteColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LabResultClient) Hooks() []Hook {
	return c.hooks.LabResult
}

// Interceptors returns the client interceptors.
func (c *LabResultClient) Interceptors() []Interceptor {
	return c.inters.LabResult
}

func (c *LabResultClient) mutate(ctx context.Context, m *LabResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LabResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LabResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LabResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LabResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LabResult mutation op: %q", m.Op())
	}
}

// MatchReviewClient is a client for the MatchReview schema.
type MatchReviewClient struct {
	config
}

// NewMatchReviewClient returns a client for the MatchReview from the given config.
func NewMatchReviewClient(c config) *MatchReviewClient {
	return &MatchReviewClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `matchreview.Hooks(f(g(h())))`.
func (c *MatchReviewClient) Use(hooks ...Hook) {
	c.hooks.MatchReview = append(c.hooks.MatchReview, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `matchreview.Intercept(f(g(h())))`.
func (c *MatchReviewClient) Intercept(interceptors ...Interceptor) {
	c.inters.MatchReview = append(c.inters.MatchReview, interceptors...)
}

// Create returns a builder for creating a MatchReview entity.
func (c *MatchReviewClient) Create() *MatchReviewCreate {
	mutation := newMatchReviewMutation(c.config, OpCreate)
	return &MatchReviewCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MatchReview entities.
func (c *MatchReviewClient) CreateBulk(builders ...*MatchReviewCreate) *MatchReviewCreateBulk {
	return &MatchReviewCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MatchReviewClient) MapCreateBulk(slice any, setFunc func(*MatchReviewCreate, int)) *MatchReviewCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MatchReviewCreateBulk{err: fmt.Errorf("calling to MatchReviewClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MatchReviewCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MatchReviewCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MatchReview.
func (c *MatchReviewClient) Update() *MatchReviewUpdate {
	mutation := newMatchReviewMutation(c.config, OpUpdate)
	return &MatchReviewUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MatchReviewClient) UpdateOne(_m *MatchReview) *MatchReviewUpdateOne {
	mutation := newMatchReviewMutation(c.config, OpUpdateOne, withMatchReview(_m))
	return &MatchReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MatchReviewClient) UpdateOneID(id string) *MatchReviewUpdateOne {
	mutation := newMatchReviewMutation(c.config, OpUpdateOne, withMatchReviewID(id))
	return &MatchReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MatchReview.
func (c *MatchReviewClient) Delete() *MatchReviewDelete {
	mutation := newMatchReviewMutation(c.config, OpDelete)
	return &MatchReviewDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MatchReviewClient) DeleteOne(_m *MatchReview) *MatchReviewDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MatchReviewClient) DeleteOneID(id string) *MatchReviewDeleteOne {
	builder := c.Delete().Where(matchreview.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MatchReviewDeleteOne{builder}
}

// Query returns a query builder for MatchReview.
func (c *MatchReviewClient) Query() *MatchReviewQuery {
	return &MatchReviewQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMatchReview},
		inters: c.Interceptors(),
	}
}

// Get returns a MatchReview entity by its id.
func (c *MatchReviewClient) Get(ctx context.Context, id string) (*MatchReview, error) {
	return c.Query().Where(matchreview.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MatchReviewClient) GetX(ctx context.Context, id string) *MatchReview {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MatchReviewClient) Hooks() []Hook {
	return c.hooks.MatchReview
}

// Interceptors returns the client interceptors.
func (c *MatchReviewClient) Interceptors() []Interceptor {
	return c.inters.MatchReview
}

func (c *MatchReviewClient) mutate(ctx context.Context, m *MatchReviewMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MatchReviewCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MatchReviewUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MatchReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MatchReviewDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MatchReview mutation op: %q", m.Op())
	}
}

// PatientClient is a client for the Patient schema.
type PatientClient struct {
	config
}

// NewPatientClient returns a client for the Patient from the given config.
func NewPatientClient(c config) *PatientClient {
	return &PatientClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `patient.Hooks(f(g(h())))`.
func (c *PatientClient) Use(hooks ...Hook) {
	c.hooks.Patient = append(c.hooks.Patient, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `patient.Intercept(f(g(h())))`.
func (c *PatientClient) Intercept(interceptors ...Interceptor) {
	c.inters.Patient = append(c.inters.Patient, interceptors...)
}

// Create returns a builder for creating a Patient entity.
func (c *PatientClient) Create() *PatientCreate {
	mutation := newPatientMutation(c.config, OpCreate)
	return &PatientCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Patient entities.
func (c *PatientClient) CreateBulk(builders ...*PatientCreate) *PatientCreateBulk {
	return &PatientCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PatientClient) MapCreateBulk(slice any, setFunc func(*PatientCreate, int)) *PatientCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PatientCreateBulk{err: fmt.Errorf("calling to PatientClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PatientCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PatientCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Patient.
func (c *PatientClient) Update() *PatientUpdate {
	mutation := newPatientMutation(c.config, OpUpdate)
	return &PatientUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PatientClient) UpdateOne(_m *Patient) *PatientUpdateOne {
	mutation := newPatientMutation(c.config, OpUpdateOne, withPatient(_m))
	return &PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PatientClient) UpdateOneID(id string) *PatientUpdateOne {
	mutation := newPatientMutation(c.config, OpUpdateOne, withPatientID(id))
	return &PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Patient.
func (c *PatientClient) Delete() *PatientDelete {
	mutation := newPatientMutation(c.config, OpDelete)
	return &PatientDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PatientClient) DeleteOne(_m *Patient) *PatientDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PatientClient) DeleteOneID(id string) *PatientDeleteOne {
	builder := c.Delete().Where(patient.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PatientDeleteOne{builder}
}

// Query returns a query builder for Patient.
func (c *PatientClient) Query() *PatientQuery {
	return &PatientQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePatient},
		inters: c.Interceptors(),
	}
}

// Get returns a Patient entity by its id.
func (c *PatientClient) Get(ctx context.Context, id string) (*Patient, error) {
	return c.Query().Where(patient.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PatientClient) GetX(ctx context.Context, id string) *Patient {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a Patient.
func (c *PatientClient) QueryUser(_m *Patient) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, patient.UserTable, patient.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReports queries the reports edge of a Patient.
func (c *PatientClient) QueryReports(_m *Patient) *PatientReportQuery {
	query := (&PatientReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(patientreport.Table, patientreport.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, patient.ReportsTable, patient.ReportsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PatientClient) Hooks() []Hook {
	return c.hooks.Patient
}

// Interceptors returns the client interceptors.
func (c *PatientClient) Interceptors() []Interceptor {
	return c.inters.Patient
}

func (c *PatientClient) mutate(ctx context.Context, m *PatientMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PatientCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PatientUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PatientDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Patient mutation op: %q", m.Op())
	}
}

// PatientReportClient is a client for the PatientReport schema.
type PatientReportClient struct {
	config
}

// NewPatientReportClient returns a client for the PatientReport from the given config.
func NewPatientReportClient(c config) *PatientReportClient {
	return &PatientReportClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `patientreport.Hooks(f(g(h())))`.
func (c *PatientReportClient) Use(hooks ...Hook) {
	c.hooks.PatientReport = append(c.hooks.PatientReport, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `patientreport.Intercept(f(g(h())))`.
func (c *PatientReportClient) Intercept(interceptors ...Interceptor) {
	c.inters.PatientReport = append(c.inters.PatientReport, interceptors...)
}

// Create returns a builder for creating a PatientReport entity.
func (c *PatientReportClient) Create() *PatientReportCreate {
	mutation := newPatientReportMutation(c.config, OpCreate)
	return &PatientReportCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PatientReport entities.
func (c *PatientReportClient) CreateBulk(builders ...*PatientReportCreate) *PatientReportCreateBulk {
	return &PatientReportCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PatientReportClient) MapCreateBulk(slice any, setFunc func(*PatientReportCreate, int)) *PatientReportCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PatientReportCreateBulk{err: fmt.Errorf("calling to PatientReportClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PatientReportCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PatientReportCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PatientReport.
func (c *PatientReportClient) Update() *PatientReportUpdate {
	mutation := newPatientReportMutation(c.config, OpUpdate)
	return &PatientReportUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PatientReportClient) UpdateOne(_m *PatientReport) *PatientReportUpdateOne {
	mutation := newPatientReportMutation(c.config, OpUpdateOne, withPatientReport(_m))
	return &PatientReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PatientReportClient) UpdateOneID(id string) *PatientReportUpdateOne {
	mutation := newPatientReportMutation(c.config, OpUpdateOne, withPatientReportID(id))
	return &PatientReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PatientReport.
func (c *PatientReportClient) Delete() *PatientReportDelete {
	mutation := newPatientReportMutation(c.config, OpDelete)
	return &PatientReportDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PatientReportClient) DeleteOne(_m *PatientReport) *PatientReportDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PatientReportClient) DeleteOneID(id string) *PatientReportDeleteOne {
	builder := c.Delete().Where(patientreport.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PatientReportDeleteOne{builder}
}

// Query returns a query builder for PatientReport.
func (c *PatientReportClient) Query() *PatientReportQuery {
	return &PatientReportQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePatientReport},
		inters: c.Interceptors(),
	}
}

// Get returns a PatientReport entity by its id.
func (c *PatientReportClient) Get(ctx context.Context, id string) (*PatientReport, error) {
	return c.Query().Where(patientreport.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PatientReportClient) GetX(ctx context.Context, id string) *PatientReport {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPatient queries the patient edge of a PatientReport.
func (c *PatientReportClient) QueryPatient(_m *PatientReport) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patientreport.Table, patientreport.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, patientreport.PatientTable, patientreport.PatientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryResults queries the results edge of a PatientReport.
func (c *PatientReportClient) QueryResults(_m *PatientReport) *LabResultQuery {
	query := (&LabResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patientreport.Table, patientreport.FieldID, id),
			sqlgraph.To(labresult.Table, labresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, patientreport.ResultsTable, patientreport.ResultsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PatientReportClient) Hooks() []Hook {
	return c.hooks.PatientReport
}

// Interceptors returns the client interceptors.
func (c *PatientReportClient) Interceptors() []Interceptor {
	return c.inters.PatientReport
}

func (c *PatientReportClient) mutate(ctx context.Context, m *PatientReportMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PatientReportCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PatientReportUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PatientReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PatientReportDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PatientReport mutation op: %q", m.Op())
	}
}

// PendingAnalyteClient is a client for the PendingAnalyte schema.
type PendingAnalyteClient struct {
	config
}

// NewPendingAnalyteClient returns a client for the PendingAnalyte from the given config.
func NewPendingAnalyteClient(c config) *PendingAnalyteClient {
	return &PendingAnalyteClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pendinganalyte.Hooks(f(g(h())))`.
func (c *PendingAnalyteClient) Use(hooks ...Hook) {
	c.hooks.PendingAnalyte = append(c.hooks.PendingAnalyte, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pendinganalyte.Intercept(f(g(h())))`.
func (c *PendingAnalyteClient) Intercept(interceptors ...Interceptor) {
	c.inters.PendingAnalyte = append(c.inters.PendingAnalyte, interceptors...)
}

// Create returns a builder for creating a PendingAnalyte entity.
func (c *PendingAnalyteClient) Create() *PendingAnalyteCreate {
	mutation := newPendingAnalyteMutation(c.config, OpCreate)
	return &PendingAnalyteCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PendingAnalyte entities.
func (c *PendingAnalyteClient) CreateBulk(builders ...*PendingAnalyteCreate) *PendingAnalyteCreateBulk {
	return &PendingAnalyteCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PendingAnalyteClient) MapCreateBulk(slice any, setFunc func(*PendingAnalyteCreate, int)) *PendingAnalyteCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PendingAnalyteCreateBulk{err: fmt.Errorf("calling to PendingAnalyteClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PendingAnalyteCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PendingAnalyteCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PendingAnalyte.
func (c *PendingAnalyteClient) Update() *PendingAnalyteUpdate {
	mutation := newPendingAnalyteMutation(c.config, OpUpdate)
	return &PendingAnalyteUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PendingAnalyteClient) UpdateOne(_m *PendingAnalyte) *PendingAnalyteUpdateOne {
	mutation := newPendingAnalyteMutation(c.config, OpUpdateOne, withPendingAnalyte(_m))
	return &PendingAnalyteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PendingAnalyteClient) UpdateOneID(id string) *PendingAnalyteUpdateOne {
	mutation := newPendingAnalyteMutation(c.config, OpUpdateOne, withPendingAnalyteID(id))
	return &PendingAnalyteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PendingAnalyte.
func (c *PendingAnalyteClient) Delete() *PendingAnalyteDelete {
	mutation := newPendingAnalyteMutation(c.config, OpDelete)
	return &PendingAnalyteDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PendingAnalyteClient) DeleteOne(_m *PendingAnalyte) *PendingAnalyteDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PendingAnalyteClient) DeleteOneID(id string) *PendingAnalyteDeleteOne {
	builder := c.Delete().Where(pendinganalyte.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PendingAnalyteDeleteOne{builder}
}

// Query returns a query builder for PendingAnalyte.
func (c *PendingAnalyteClient) Query() *PendingAnalyteQuery {
	return &PendingAnalyteQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePendingAnalyte},
		inters: c.Interceptors(),
	}
}

// Get returns a PendingAnalyte entity by its id.
func (c *PendingAnalyteClient) Get(ctx context.Context, id string) (*PendingAnalyte, error) {
	return c.Query().Where(pendinganalyte.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PendingAnalyteClient) GetX(ctx context.Context, id string) *PendingAnalyte {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PendingAnalyteClient) Hooks() []Hook {
	return c.hooks.PendingAnalyte
}

// Interceptors returns the client interceptors.
func (c *PendingAnalyteClient) Interceptors() []Interceptor {
	return c.inters.PendingAnalyte
}

func (c *PendingAnalyteClient) mutate(ctx context.Context, m *PendingAnalyteMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PendingAnalyteCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PendingAnalyteUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PendingAnalyteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PendingAnalyteDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PendingAnalyte mutation op: %q", m.Op())
	}
}

// SQLGenerationLogClient is a client for the SQLGenerationLog schema.
type SQLGenerationLogClient struct {
	config
}

// NewSQLGenerationLogClient returns a client for the SQLGenerationLog from the given config.
func NewSQLGenerationLogClient(c config) *SQLGenerationLogClient {
	return &SQLGenerationLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sqlgenerationlog.Hooks(f(g(h())))`.
func (c *SQLGenerationLogClient) Use(hooks ...Hook) {
	c.hooks.SQLGenerationLog = append(c.hooks.SQLGenerationLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sqlgenerationlog.Intercept(f(g(h())))`.
func (c *SQLGenerationLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.SQLGenerationLog = append(c.inters.SQLGenerationLog, interceptors...)
}

// Create returns a builder for creating a SQLGenerationLog entity.
func (c *SQLGenerationLogClient) Create() *SQLGenerationLogCreate {
	mutation := newSQLGenerationLogMutation(c.config, OpCreate)
	return &SQLGenerationLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SQLGenerationLog entities.
func (c *SQLGenerationLogClient) CreateBulk(builders ...*SQLGenerationLogCreate) *SQLGenerationLogCreateBulk {
	return &SQLGenerationLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SQLGenerationLogClient) MapCreateBulk(slice any, setFunc func(*SQLGenerationLogCreate, int)) *SQLGenerationLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SQLGenerationLogCreateBulk{err: fmt.Errorf("calling to SQLGenerationLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SQLGenerationLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SQLGenerationLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SQLGenerationLog.
func (c *SQLGenerationLogClient) Update() *SQLGenerationLogUpdate {
	mutation := newSQLGenerationLogMutation(c.config, OpUpdate)
	return &SQLGenerationLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SQLGenerationLogClient) UpdateOne(_m *SQLGenerationLog) *SQLGenerationLogUpdateOne {
	mutation := newSQLGenerationLogMutation(c.config, OpUpdateOne, withSQLGenerationLog(_m))
	return &SQLGenerationLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SQLGenerationLogClient) UpdateOneID(id string) *SQLGenerationLogUpdateOne {
	mutation := newSQLGenerationLogMutation(c.config, OpUpdateOne, withSQLGenerationLogID(id))
	return &SQLGenerationLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SQLGenerationLog.
func (c *SQLGenerationLogClient) Delete() *SQLGenerationLogDelete {
	mutation := newSQLGenerationLogMutation(c.config, OpDelete)
	return &SQLGenerationLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SQLGenerationLogClient) DeleteOne(_m *SQLGenerationLog) *SQLGenerationLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SQLGenerationLogClient) DeleteOneID(id string) *SQLGenerationLogDeleteOne {
	builder := c.Delete().Where(sqlgenerationlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SQLGenerationLogDeleteOne{builder}
}

// Query returns a query builder for SQLGenerationLog.
func (c *SQLGenerationLogClient) Query() *SQLGenerationLogQuery {
	return &SQLGenerationLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSQLGenerationLog},
		inters: c.Interceptors(),
	}
}

// Get returns a SQLGenerationLog entity by its id.
func (c *SQLGenerationLogClient) Get(ctx context.Context, id string) (*SQLGenerationLog, error) {
	return c.Query().Where(sqlgenerationlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SQLGenerationLogClient) GetX(ctx context.Context, id string) *SQLGenerationLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SQLGenerationLogClient) Hooks() []Hook {
	return c.hooks.SQLGenerationLog
}

// Interceptors returns the client interceptors.
func (c *SQLGenerationLogClient) Interceptors() []Interceptor {
	return c.inters.SQLGenerationLog
}

func (c *SQLGenerationLogClient) mutate(ctx context.Context, m *SQLGenerationLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SQLGenerationLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SQLGenerationLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SQLGenerationLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SQLGenerationLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SQLGenerationLog mutation op: %q", m.Op())
	}
}

// SessionClient is a client for the Session schema.
type SessionClient struct {
	config
}

// NewSessionClient returns a client for the Session from the given config.
func NewSessionClient(c config) *SessionClient {
	return &SessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `session.Hooks(f(g(h())))`.
func (c *SessionClient) Use(hooks ...Hook) {
	c.hooks.Session = append(c.hooks.Session, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `session.Intercept(f(g(h())))`.
func (c *SessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Session = append(c.inters.Session, interceptors...)
}

// Create returns a builder for creating a Session entity.
func (c *SessionClient) Create() *SessionCreate {
	mutation := newSessionMutation(c.config, OpCreate)
	return &SessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Session entities.
func (c *SessionClient) CreateBulk(builders ...*SessionCreate) *SessionCreateBulk {
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionClient) MapCreateBulk(slice any, setFunc func(*SessionCreate, int)) *SessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionCreateBulk{err: fmt.Errorf("calling to SessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Session.
func (c *SessionClient) Update() *SessionUpdate {
	mutation := newSessionMutation(c.config, OpUpdate)
	return &SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionClient) UpdateOne(_m *Session) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSession(_m))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionClient) UpdateOneID(id string) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSessionID(id))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Session.
func (c *SessionClient) Delete() *SessionDelete {
	mutation := newSessionMutation(c.config, OpDelete)
	return &SessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionClient) DeleteOne(_m *Session) *SessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionClient) DeleteOneID(id string) *SessionDeleteOne {
	builder := c.Delete().Where(session.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionDeleteOne{builder}
}

// Query returns a query builder for Session.
func (c *SessionClient) Query() *SessionQuery {
	return &SessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSession},
		inters: c.Interceptors(),
	}
}

// Get returns a Session entity by its id.
func (c *SessionClient) Get(ctx context.Context, id string) (*Session, error) {
	return c.Query().Where(session.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionClient) GetX(ctx context.Context, id string) *Session {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a Session.
func (c *SessionClient) QueryUser(_m *Session) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(session.Table, session.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, session.UserTable, session.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SessionClient) Hooks() []Hook {
	return c.hooks.Session
}

// Interceptors returns the client interceptors.
func (c *SessionClient) Interceptors() []Interceptor {
	return c.inters.Session
}

func (c *SessionClient) mutate(ctx context.Context, m *SessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Session mutation op: %q", m.Op())
	}
}

// UnitAliasClient is a client for the UnitAlias schema.
type UnitAliasClient struct {
	config
}

// NewUnitAliasClient returns a client for the UnitAlias from the given config.
func NewUnitAliasClient(c config) *UnitAliasClient {
	return &UnitAliasClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `unitalias.Hooks(f(g(h())))`.
func (c *UnitAliasClient) Use(hooks ...Hook) {
	c.hooks.UnitAlias = append(c.hooks.UnitAlias, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `unitalias.Intercept(f(g(h())))`.
func (c *UnitAliasClient) Intercept(interceptors ...Interceptor) {
	c.inters.UnitAlias = append(c.inters.UnitAlias, interceptors...)
}

// Create returns a builder for creating a UnitAlias entity.
func (c *UnitAliasClient) Create() *UnitAliasCreate {
	mutation := newUnitAliasMutation(c.config, OpCreate)
	return &UnitAliasCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UnitAlias entities.
func (c *UnitAliasClient) CreateBulk(builders ...*UnitAliasCreate) *UnitAliasCreateBulk {
	return &UnitAliasCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UnitAliasClient) MapCreateBulk(slice any, setFunc func(*UnitAliasCreate, int)) *UnitAliasCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UnitAliasCreateBulk{err: fmt.Errorf("calling to UnitAliasClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UnitAliasCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UnitAliasCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UnitAlias.
func (c *UnitAliasClient) Update() *UnitAliasUpdate {
	mutation := newUnitAliasMutation(c.config, OpUpdate)
	return &UnitAliasUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UnitAliasClient) UpdateOne(_m *UnitAlias) *UnitAliasUpdateOne {
	mutation := newUnitAliasMutation(c.config, OpUpdateOne, withUnitAlias(_m))
	return &UnitAliasUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UnitAliasClient) UpdateOneID(id string) *UnitAliasUpdateOne {
	mutation := newUnitAliasMutation(c.config, OpUpdateOne, withUnitAliasID(id))
	return &UnitAliasUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UnitAlias.
func (c *UnitAliasClient) Delete() *UnitAliasDelete {
	mutation := newUnitAliasMutation(c.config, OpDelete)
	return &UnitAliasDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UnitAliasClient) DeleteOne(_m *UnitAlias) *UnitAliasDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UnitAliasClient) DeleteOneID(id string) *UnitAliasDeleteOne {
	builder := c.Delete().Where(unitalias.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UnitAliasDeleteOne{builder}
}

// Query returns a query builder for UnitAlias.
func (c *UnitAliasClient) Query() *UnitAliasQuery {
	return &UnitAliasQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUnitAlias},
		inters: c.Interceptors(),
	}
}

// Get returns a UnitAlias entity by its id.
func (c *UnitAliasClient) Get(ctx context.Context, id string) (*UnitAlias, error) {
	return c.Query().Where(unitalias.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UnitAliasClient) GetX(ctx context.Context, id string) *UnitAlias {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UnitAliasClient) Hooks() []Hook {
	return c.hooks.UnitAlias
}

// Interceptors returns the client interceptors.
func (c *UnitAliasClient) Interceptors() []Interceptor {
	return c.inters.UnitAlias
}

func (c *UnitAliasClient) mutate(ctx context.Context, m *UnitAliasMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UnitAliasCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UnitAliasUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UnitAliasUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UnitAliasDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UnitAlias mutation op: %q", m.Op())
	}
}

// UnitReviewClient is a client for the UnitReview schema.
type UnitReviewClient struct {
	config
}

// NewUnitReviewClient returns a client for the UnitReview from the given config.
func NewUnitReviewClient(c config) *UnitReviewClient {
	return &UnitReviewClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `unitreview.Hooks(f(g(h())))`.
func (c *UnitReviewClient) Use(hooks ...Hook) {
	c.hooks.UnitReview = append(c.hooks.UnitReview, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `unitreview.Intercept(f(g(h())))`.
func (c *UnitReviewClient) Intercept(interceptors ...Interceptor) {
	c.inters.UnitReview = append(c.inters.UnitReview, interceptors...)
}

// Create returns a builder for creating a UnitReview entity.
func (c *UnitReviewClient) Create() *UnitReviewCreate {
	mutation := newUnitReviewMutation(c.config, OpCreate)
	return &UnitReviewCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UnitReview entities.
func (c *UnitReviewClient) CreateBulk(builders ...*UnitReviewCreate) *UnitReviewCreateBulk {
	return &UnitReviewCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UnitReviewClient) MapCreateBulk(slice any, setFunc func(*UnitReviewCreate, int)) *UnitReviewCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UnitReviewCreateBulk{err: fmt.Errorf("calling to UnitReviewClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UnitReviewCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UnitReviewCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UnitReview.
func (c *UnitReviewClient) Update() *UnitReviewUpdate {
	mutation := newUnitReviewMutation(c.config, OpUpdate)
	return &UnitReviewUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UnitReviewClient) UpdateOne(_m *UnitReview) *UnitReviewUpdateOne {
	mutation := newUnitReviewMutation(c.config, OpUpdateOne, withUnitReview(_m))
	return &UnitReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UnitReviewClient) UpdateOneID(id string) *UnitReviewUpdateOne {
	mutation := newUnitReviewMutation(c.config, OpUpdateOne, withUnitReviewID(id))
	return &UnitReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UnitReview.
func (c *UnitReviewClient) Delete() *UnitReviewDelete {
	mutation := newUnitReviewMutation(c.config, OpDelete)
	return &UnitReviewDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UnitReviewClient) DeleteOne(_m *UnitReview) *UnitReviewDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UnitReviewClient) DeleteOneID(id string) *UnitReviewDeleteOne {
	builder := c.Delete().Where(unitreview.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UnitReviewDeleteOne{builder}
}

// Query returns a query builder for UnitReview.
func (c *UnitReviewClient) Query() *UnitReviewQuery {
	return &UnitReviewQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUnitReview},
		inters: c.Interceptors(),
	}
}

// Get returns a UnitReview entity by its id.
func (c *UnitReviewClient) Get(ctx context.Context, id string) (*UnitReview, error) {
	return c.Query().Where(unitreview.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UnitReviewClient) GetX(ctx context.Context, id string) *UnitReview {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UnitReviewClient) Hooks() []Hook {
	return c.hooks.UnitReview
}

// Interceptors returns the client interceptors.
func (c *UnitReviewClient) Interceptors() []Interceptor {
	return c.inters.UnitReview
}

func (c *UnitReviewClient) mutate(ctx context.Context, m *UnitReviewMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UnitReviewCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UnitReviewUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UnitReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UnitReviewDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UnitReview mutation op: %q", m.Op())
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
func (c *UserClient) UpdateOneID(id string) *UserUpdateOne {
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
func (c *UserClient) DeleteOneID(id string) *UserDeleteOne {
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
func (c *UserClient) Get(ctx context.Context, id string) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id string) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryIdentities queries the identities edge of a User.
func (c *UserClient) QueryIdentities(_m *User) *IdentityQuery {
	query := (&IdentityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(identity.Table, identity.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.IdentitiesTable, user.IdentitiesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySessions queries the sessions edge of a User.
func (c *UserClient) QuerySessions(_m *User) *SessionQuery {
	query := (&SessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(session.Table, session.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.SessionsTable, user.SessionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPatients queries the patients edge of a User.
func (c *UserClient) QueryPatients(_m *User) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.PatientsTable, user.PatientsColumn),
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

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Analyte, AnalyteAlias, ChatSession, GmailProvenance, Identity, LabResult,
		MatchReview, Patient, PatientReport, PendingAnalyte, SQLGenerationLog, Session,
		UnitAlias, UnitReview, User []ent.Hook
	}
	inters struct {
		Analyte, AnalyteAlias, ChatSession, GmailProvenance, Identity, LabResult,
		MatchReview, Patient, PatientReport, PendingAnalyte, SQLGenerationLog, Session,
		UnitAlias, UnitReview, User []ent.Interceptor
	}
)
