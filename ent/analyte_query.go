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
	"github.com/labdex/labdex/ent/analyte"
	"github.com/labdex/labdex/ent/analytealias"
	"github.com/labdex/labdex/ent/labresult"
	"github.com/labdex/labdex/ent/predicate"
)

// AnalyteQuery is the builder for querying Analyte entities.
type AnalyteQuery struct {
	config
	ctx         *QueryContext
	order       []analyte.OrderOption
	inters      []Interceptor
	predicates  []predicate.Analyte
	withAliases *AnalyteAliasQuery
	withResults *LabResultQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AnalyteQuery builder.
func (_q *AnalyteQuery) Where(ps ...predicate.Analyte) *AnalyteQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *AnalyteQuery) Limit(limit int) *AnalyteQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *AnalyteQuery) Offset(offset int) *AnalyteQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *AnalyteQuery) Unique(unique bool) *AnalyteQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *AnalyteQuery) Order(o ...analyte.OrderOption) *AnalyteQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryAliases chains the current query on the "aliases" edge.
func (_q *AnalyteQuery) QueryAliases() *AnalyteAliasQuery {
	query := (&AnalyteAliasClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(analyte.Table, analyte.FieldID, selector),
			sqlgraph.To(analytealias.Table, analytealias.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, analyte.AliasesTable, analyte.AliasesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryResults chains the current query on the "results" edge.
func (_q *AnalyteQuery) QueryResults() *LabResultQuery {
	query := (&LabResultClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(analyte.Table, analyte.FieldID, selector),
			sqlgraph.To(labresult.Table, labresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, analyte.ResultsTable, analyte.ResultsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Analyte entity from the query.
// Returns a *NotFoundError when no Analyte was found.
func (_q *AnalyteQuery) First(ctx context.Context) (*Analyte, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{analyte.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *AnalyteQuery) FirstX(ctx context.Context) *Analyte {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Analyte ID from the query.
// Returns a *NotFoundError when no Analyte ID was found.
func (_q *AnalyteQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{analyte.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *AnalyteQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Analyte entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Analyte entity is found.
// Returns a *NotFoundError when no Analyte entities are found.
func (_q *AnalyteQuery) Only(ctx context.Context) (*Analyte, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{analyte.Label}
	default:
		return nil, &NotSingularError{analyte.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *AnalyteQuery) OnlyX(ctx context.Context) *Analyte {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Analyte ID in the query.
// Returns a *NotSingularError when more than one Analyte ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *AnalyteQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{analyte.Label}
	default:
		err = &NotSingularError{analyte.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *AnalyteQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Analytes.
func (_q *AnalyteQuery) All(ctx context.Context) ([]*Analyte, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Analyte, *AnalyteQuery]()
	return withInterceptors[[]*Analyte](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *AnalyteQuery) AllX(ctx context.Context) []*Analyte {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Analyte IDs.
func (_q *AnalyteQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(analyte.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *AnalyteQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *AnalyteQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*AnalyteQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *AnalyteQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *AnalyteQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *AnalyteQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AnalyteQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *AnalyteQuery) Clone() *AnalyteQuery {
	if _q == nil {
		return nil
	}
	return &AnalyteQuery{
		config:      _q.config,
		ctx:         _q.ctx.Clone(),
		order:       append([]analyte.OrderOption{}, _q.order...),
		inters:      append([]Interceptor{}, _q.inters...),
		predicates:  append([]predicate.Analyte{}, _q.predicates...),
		withAliases: _q.withAliases.Clone(),
		withResults: _q.withResults.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithAliases tells the query-builder to eager-load the nodes that are connected to
// the "aliases" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AnalyteQuery) WithAliases(opts ...func(*AnalyteAliasQuery)) *AnalyteQuery {
	query := (&AnalyteAliasClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAliases = query
	return _q
}

// WithResults tells the query-builder to eager-load the nodes that are connected to
// the "results" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AnalyteQuery) WithResults(opts ...func(*LabResultQuery)) *AnalyteQuery {
	query := (&LabResultClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withResults = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Code string `json:"code,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Analyte.Query().
//		GroupBy(analyte.FieldCode).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *AnalyteQuery) GroupBy(field string, fields ...string) *AnalyteGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AnalyteGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = analyte.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Code string `json:"code,omitempty"`
//	}
//
//	client.Analyte.Query().
//		Select(analyte.FieldCode).
//		Scan(ctx, &v)
func (_q *AnalyteQuery) Select(fields ...string) *AnalyteSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &AnalyteSelect{AnalyteQuery: _q}
	sbuild.label = analyte.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AnalyteSelect configured with the given aggregations.
func (_q *AnalyteQuery) Aggregate(fns ...AggregateFunc) *AnalyteSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *AnalyteQuery) prepareQuery(ctx context.Context) error {
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
		if !analyte.ValidColumn(f) {
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

func (_q *AnalyteQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Analyte, error) {
	var (
		nodes       = []*Analyte{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withAliases != nil,
			_q.withResults != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Analyte).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Analyte{config: _q.config}
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
	if query := _q.withAliases; query != nil {
		if err := _q.loadAliases(ctx, query, nodes,
			func(n *Analyte) { n.Edges.Aliases = []*AnalyteAlias{} },
			func(n *Analyte, e *AnalyteAlias) { n.Edges.Aliases = append(n.Edges.Aliases, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withResults; query != nil {
		if err := _q.loadResults(ctx, query, nodes,
			func(n *Analyte) { n.Edges.Results = []*LabResult{} },
			func(n *Analyte, e *LabResult) { n.Edges.Results = append(n.Edges.Results, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *AnalyteQuery) loadAliases(ctx context.Context, query *AnalyteAliasQuery, nodes []*Analyte, init func(*Analyte), assign func(*Analyte, *AnalyteAlias)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Analyte)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(analytealias.FieldAnalyteID)
	}
	query.Where(predicate.AnalyteAlias(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(analyte.AliasesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AnalyteID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "analyte_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AnalyteQuery) loadResults(ctx context.Context, query *LabResultQuery, nodes []*Analyte, init func(*Analyte), assign func(*Analyte, *LabResult)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Analyte)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(labresult.FieldAnalyteID)
	}
	query.Where(predicate.LabResult(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(analyte.ResultsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AnalyteID
		if fk == nil {
			return fmt.Errorf(`foreign-key "analyte_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "analyte_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *AnalyteQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *AnalyteQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(analyte.Table, analyte.Columns, sqlgraph.NewFieldSpec(analyte.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analyte.FieldID)
		for i := range fields {
			if fields[i] != analyte.FieldID {
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

func (_q *AnalyteQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(analyte.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = analyte.Columns
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

// AnalyteGroupBy is the group-by builder for Analyte entities.
type AnalyteGroupBy struct {
	selector
	build *AnalyteQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *AnalyteGroupBy) Aggregate(fns ...AggregateFunc) *AnalyteGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *AnalyteGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AnalyteQuery, *AnalyteGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *AnalyteGroupBy) sqlScan(ctx context.Context, root *AnalyteQuery, v any) error {
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

// AnalyteSelect is the builder for selecting fields of Analyte entities.
type AnalyteSelect struct {
	*AnalyteQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *AnalyteSelect) Aggregate(fns ...AggregateFunc) *AnalyteSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *AnalyteSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AnalyteQuery, *AnalyteSelect](ctx, _s.AnalyteQuery, _s, _s.inters, v)
}

func (_s *AnalyteSelect) sqlScan(ctx context.Context, root *AnalyteQuery, v any) error {
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
