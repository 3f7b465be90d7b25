// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/labdex/labdex/ent/analyte"
	"github.com/labdex/labdex/ent/labresult"
	"github.com/labdex/labdex/ent/patientreport"
	"github.com/labdex/labdex/ent/predicate"
)

// LabResultQuery is the builder for querying LabResult entities.
type LabResultQuery struct {
	config
	ctx         *QueryContext
	order       []labresult.OrderOption
	inters      []Interceptor
	predicates  []predicate.LabResult
	withReport  *PatientReportQuery
	withAnalyte *AnalyteQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the LabResultQuery builder.
func (_q *LabResultQuery) Where(ps ...predicate.LabResult) *LabResultQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *LabResultQuery) Limit(limit int) *LabResultQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *LabResultQuery) Offset(offset int) *LabResultQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *LabResultQuery) Unique(unique bool) *LabResultQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *LabResultQuery) Order(o ...labresult.OrderOption) *LabResultQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryReport chains the current query on the "report" edge.
func (_q *LabResultQuery) QueryReport() *PatientReportQuery {
	query := (&PatientReportClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(labresult.Table, labresult.FieldID, selector),
			sqlgraph.To(patientreport.Table, patientreport.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, labresult.ReportTable, labresult.ReportColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAnalyte chains the current query on the "analyte" edge.
func (_q *LabResultQuery) QueryAnalyte() *AnalyteQuery {
	query := (&AnalyteClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(labresult.Table, labresult.FieldID, selector),
			sqlgraph.To(analyte.Table, analyte.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, labresult.AnalyteTable, labresult.AnalyteColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first LabResult entity from the query.
// Returns a *NotFoundError when no LabResult was found.
func (_q *LabResultQuery) First(ctx context.Context) (*LabResult, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{labresult.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *LabResultQuery) FirstX(ctx context.Context) *LabResult {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first LabResult ID from the query.
// Returns a *NotFoundError when no LabResult ID was found.
func (_q *LabResultQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{labresult.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *LabResultQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single LabResult entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one LabResult entity is found.
// Returns a *NotFoundError when no LabResult entities are found.
func (_q *LabResultQuery) Only(ctx context.Context) (*LabResult, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{labresult.Label}
	default:
		return nil, &NotSingularError{labresult.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *LabResultQuery) OnlyX(ctx context.Context) *LabResult {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only LabResult ID in the query.
// Returns a *NotSingularError when more than one LabResult ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *LabResultQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{labresult.Label}
	default:
		err = &NotSingularError{labresult.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *LabResultQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of LabResults.
func (_q *LabResultQuery) All(ctx context.Context) ([]*LabResult, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*LabResult, *LabResultQuery]()
	return withInterceptors[[]*LabResult](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *LabResultQuery) AllX(ctx context.Context) []*LabResult {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of LabResult IDs.
func (_q *LabResultQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(labresult.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *LabResultQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *LabResultQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*LabResultQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *LabResultQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *LabResultQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *LabResultQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the LabResultQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *LabResultQuery) Clone() *LabResultQuery {
	if _q == nil {
		return nil
	}
	return &LabResultQuery{
		config:      _q.config,
		ctx:         _q.ctx.Clone(),
		order:       append([]labresult.OrderOption{}, _q.order...),
		inters:      append([]Interceptor{}, _q.inters...),
		predicates:  append([]predicate.LabResult{}, _q.predicates...),
		withReport:  _q.withReport.Clone(),
		withAnalyte: _q.withAnalyte.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithReport tells the query-builder to eager-load the nodes that are connected to
// the "report" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LabResultQuery) WithReport(opts ...func(*PatientReportQuery)) *LabResultQuery {
	query := (&PatientReportClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withReport = query
	return _q
}

// WithAnalyte tells the query-builder to eager-load the nodes that are connected to
// the "analyte" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LabResultQuery) WithAnalyte(opts ...func(*AnalyteQuery)) *LabResultQuery {
	query := (&AnalyteClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAnalyte = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ReportID string `json:"report_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.LabResult.Query().
//		GroupBy(labresult.FieldReportID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *LabResultQuery) GroupBy(field string, fields ...string) *LabResultGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &LabResultGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = labresult.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ReportID string `json:"report_id,omitempty"`
//	}
//
//	client.LabResult.Query().
//		Select(labresult.FieldReportID).
//		Scan(ctx, &v)
func (_q *LabResultQuery) Select(fields ...string) *LabResultSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &LabResultSelect{LabResultQuery: _q}
	sbuild.label = labresult.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a LabResultSelect configured with the given aggregations.
func (_q *LabResultQuery) Aggregate(fns ...AggregateFunc) *LabResultSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *LabResultQuery) prepareQuery(ctx context.Context) error {
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
		if !labresult.ValidColumn(f) {
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

func (_q *LabResultQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*LabResult, error) {
	var (
		nodes       = []*LabResult{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withReport != nil,
			_q.withAnalyte != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*LabResult).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &LabResult{config: _q.config}
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
	if query := _q.withReport; query != nil {
		if err := _q.loadReport(ctx, query, nodes, nil,
			func(n *LabResult, e *PatientReport) { n.Edges.Report = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAnalyte; query != nil {
		if err := _q.loadAnalyte(ctx, query, nodes, nil,
			func(n *LabResult, e *Analyte) { n.Edges.Analyte = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *LabResultQuery) loadReport(ctx context.Context, query *PatientReportQuery, nodes []*LabResult, init func(*LabResult), assign func(*LabResult, *PatientReport)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*LabResult)
	for i := range nodes {
		fk := nodes[i].ReportID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(patientreport.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "report_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *LabResultQuery) loadAnalyte(ctx context.Context, query *AnalyteQuery, nodes []*LabResult, init func(*LabResult), assign func(*LabResult, *Analyte)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*LabResult)
	for i := range nodes {
		if nodes[i].AnalyteID == nil {
			continue
		}
		fk := *nodes[i].AnalyteID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(analyte.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "analyte_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *LabResultQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *LabResultQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(labresult.Table, labresult.Columns, sqlgraph.NewFieldSpec(labresult.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, labresult.FieldID)
		for i := range fields {
			if fields[i] != labresult.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withReport != nil {
			_spec.Node.AddColumnOnce(labresult.FieldReportID)
		}
		if _q.withAnalyte != nil {
			_spec.Node.AddColumnOnce(labresult.FieldAnalyteID)
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

func (_q *LabResultQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(labresult.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = labresult.Columns
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

// LabResultGroupBy is the group-by builder for LabResult entities.
type LabResultGroupBy struct {
	selector
	build *LabResultQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *LabResultGroupBy) Aggregate(fns ...AggregateFunc) *LabResultGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *LabResultGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LabResultQuery, *LabResultGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *LabResultGroupBy) sqlScan(ctx context.Context, root *LabResultQuery, v any) error {
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

// LabResultSelect is the builder for selecting fields of LabResult entities.
type LabResultSelect struct {
	*LabResultQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *LabResultSelect) Aggregate(fns ...AggregateFunc) *LabResultSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *LabResultSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LabResultQuery, *LabResultSelect](ctx, _s.LabResultQuery, _s, _s.inters, v)
}

func (_s *LabResultSelect) sqlScan(ctx context.Context, root *LabResultQuery, v any) error {
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
