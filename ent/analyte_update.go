// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/labdex/labdex/ent/analyte"
	"github.com/labdex/labdex/ent/analytealias"
	"github.com/labdex/labdex/ent/labresult"
	"github.com/labdex/labdex/ent/predicate"
)

// AnalyteUpdate is the builder for updating Analyte entities.
type AnalyteUpdate struct {
	config
	hooks    []Hook
	mutation *AnalyteMutation
}

// Where appends a list predicates to the AnalyteUpdate builder.
func (_u *AnalyteUpdate) Where(ps ...predicate.Analyte) *AnalyteUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCode sets the "code" field.
func (_u *AnalyteUpdate) SetCode(v string) *AnalyteUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *AnalyteUpdate) SetNillableCode(v *string) *AnalyteUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *AnalyteUpdate) SetName(v string) *AnalyteUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AnalyteUpdate) SetNillableName(v *string) *AnalyteUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCanonicalUnit sets the "canonical_unit" field.
func (_u *AnalyteUpdate) SetCanonicalUnit(v string) *AnalyteUpdate {
	_u.mutation.SetCanonicalUnit(v)
	return _u
}

// SetNillableCanonicalUnit sets the "canonical_unit" field if the given value is not nil.
func (_u *AnalyteUpdate) SetNillableCanonicalUnit(v *string) *AnalyteUpdate {
	if v != nil {
		_u.SetCanonicalUnit(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *AnalyteUpdate) SetCategory(v string) *AnalyteUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *AnalyteUpdate) SetNillableCategory(v *string) *AnalyteUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *AnalyteUpdate) ClearCategory() *AnalyteUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// AddAliasIDs adds the "aliases" edge to the AnalyteAlias entity by IDs.
func (_u *AnalyteUpdate) AddAliasIDs(ids ...string) *AnalyteUpdate {
	_u.mutation.AddAliasIDs(ids...)
	return _u
}

// AddAliases adds the "aliases" edges to the AnalyteAlias entity.
func (_u *AnalyteUpdate) AddAliases(v ...*AnalyteAlias) *AnalyteUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAliasIDs(ids...)
}

// AddResultIDs adds the "results" edge to the LabResult entity by IDs.
func (_u *AnalyteUpdate) AddResultIDs(ids ...string) *AnalyteUpdate {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the LabResult entity.
func (_u *AnalyteUpdate) AddResults(v ...*LabResult) *AnalyteUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// Mutation returns the AnalyteMutation object of the builder.
func (_u *AnalyteUpdate) Mutation() *AnalyteMutation {
	return _u.mutation
}

// ClearAliases clears all "aliases" edges to the AnalyteAlias entity.
func (_u *AnalyteUpdate) ClearAliases() *AnalyteUpdate {
	_u.mutation.ClearAliases()
	return _u
}

// RemoveAliasIDs removes the "aliases" edge to AnalyteAlias entities by IDs.
func (_u *AnalyteUpdate) RemoveAliasIDs(ids ...string) *AnalyteUpdate {
	_u.mutation.RemoveAliasIDs(ids...)
	return _u
}

// RemoveAliases removes "aliases" edges to AnalyteAlias entities.
func (_u *AnalyteUpdate) RemoveAliases(v ...*AnalyteAlias) *AnalyteUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAliasIDs(ids...)
}

// ClearResults clears all "results" edges to the LabResult entity.
func (_u *AnalyteUpdate) ClearResults() *AnalyteUpdate {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to LabResult entities by IDs.
func (_u *AnalyteUpdate) RemoveResultIDs(ids ...string) *AnalyteUpdate {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to LabResult entities.
func (_u *AnalyteUpdate) RemoveResults(v ...*LabResult) *AnalyteUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalyteUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalyteUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalyteUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalyteUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AnalyteUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(analyte.Table, analyte.Columns, sqlgraph.NewFieldSpec(analyte.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(analyte.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(analyte.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CanonicalUnit(); ok {
		_spec.SetField(analyte.FieldCanonicalUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(analyte.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(analyte.FieldCategory, field.TypeString)
	}
	if _u.mutation.AliasesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analyte.AliasesTable,
			Columns: []string{analyte.AliasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analytealias.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAliasesIDs(); len(nodes) > 0 && !_u.mutation.AliasesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analyte.AliasesTable,
			Columns: []string{analyte.AliasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analytealias.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AliasesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analyte.AliasesTable,
			Columns: []string{analyte.AliasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analytealias.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analyte.ResultsTable,
			Columns: []string{analyte.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(labresult.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResultsIDs(); len(nodes) > 0 && !_u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analyte.ResultsTable,
			Columns: []string{analyte.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(labresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analyte.ResultsTable,
			Columns: []string{analyte.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(labresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analyte.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalyteUpdateOne is the builder for updating a single Analyte entity.
type AnalyteUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalyteMutation
}

// SetCode sets the "code" field.
func (_u *AnalyteUpdateOne) SetCode(v string) *AnalyteUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *AnalyteUpdateOne) SetNillableCode(v *string) *AnalyteUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *AnalyteUpdateOne) SetName(v string) *AnalyteUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AnalyteUpdateOne) SetNillableName(v *string) *AnalyteUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCanonicalUnit sets the "canonical_unit" field.
func (_u *AnalyteUpdateOne) SetCanonicalUnit(v string) *AnalyteUpdateOne {
	_u.mutation.SetCanonicalUnit(v)
	return _u
}

// SetNillableCanonicalUnit sets the "canonical_unit" field if the given value is not nil.
func (_u *AnalyteUpdateOne) SetNillableCanonicalUnit(v *string) *AnalyteUpdateOne {
	if v != nil {
		_u.SetCanonicalUnit(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *AnalyteUpdateOne) SetCategory(v string) *AnalyteUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *AnalyteUpdateOne) SetNillableCategory(v *string) *AnalyteUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *AnalyteUpdateOne) ClearCategory() *AnalyteUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// AddAliasIDs adds the "aliases" edge to the AnalyteAlias entity by IDs.
func (_u *AnalyteUpdateOne) AddAliasIDs(ids ...string) *AnalyteUpdateOne {
	_u.mutation.AddAliasIDs(ids...)
	return _u
}

// AddAliases adds the "aliases" edges to the AnalyteAlias entity.
func (_u *AnalyteUpdateOne) AddAliases(v ...*AnalyteAlias) *AnalyteUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAliasIDs(ids...)
}

// AddResultIDs adds the "results" edge to the LabResult entity by IDs.
func (_u *AnalyteUpdateOne) AddResultIDs(ids ...string) *AnalyteUpdateOne {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the LabResult entity.
func (_u *AnalyteUpdateOne) AddResults(v ...*LabResult) *AnalyteUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// Mutation returns the AnalyteMutation object of the builder.
func (_u *AnalyteUpdateOne) Mutation() *AnalyteMutation {
	return _u.mutation
}

// ClearAliases clears all "aliases" edges to the AnalyteAlias entity.
func (_u *AnalyteUpdateOne) ClearAliases() *AnalyteUpdateOne {
	_u.mutation.ClearAliases()
	return _u
}

// RemoveAliasIDs removes the "aliases" edge to AnalyteAlias entities by IDs.
func (_u *AnalyteUpdateOne) RemoveAliasIDs(ids ...string) *AnalyteUpdateOne {
	_u.mutation.RemoveAliasIDs(ids...)
	return _u
}

// RemoveAliases removes "aliases" edges to AnalyteAlias entities.
func (_u *AnalyteUpdateOne) RemoveAliases(v ...*AnalyteAlias) *AnalyteUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAliasIDs(ids...)
}

// ClearResults clears all "results" edges to the LabResult entity.
func (_u *AnalyteUpdateOne) ClearResults() *AnalyteUpdateOne {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to LabResult entities by IDs.
func (_u *AnalyteUpdateOne) RemoveResultIDs(ids ...string) *AnalyteUpdateOne {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to LabResult entities.
func (_u *AnalyteUpdateOne) RemoveResults(v ...*LabResult) *AnalyteUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// Where appends a list predicates to the AnalyteUpdate builder.
func (_u *AnalyteUpdateOne) Where(ps ...predicate.Analyte) *AnalyteUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalyteUpdateOne) Select(field string, fields ...string) *AnalyteUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Analyte entity.
func (_u *AnalyteUpdateOne) Save(ctx context.Context) (*Analyte, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalyteUpdateOne) SaveX(ctx context.Context) *Analyte {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalyteUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalyteUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AnalyteUpdateOne) sqlSave(ctx context.Context) (_node *Analyte, err error) {
	_spec := sqlgraph.NewUpdateSpec(analyte.Table, analyte.Columns, sqlgraph.NewFieldSpec(analyte.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Analyte.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analyte.FieldID)
		for _, f := range fields {
			if !analyte.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analyte.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(analyte.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(analyte.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CanonicalUnit(); ok {
		_spec.SetField(analyte.FieldCanonicalUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(analyte.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(analyte.FieldCategory, field.TypeString)
	}
	if _u.mutation.AliasesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analyte.AliasesTable,
			Columns: []string{analyte.AliasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analytealias.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAliasesIDs(); len(nodes) > 0 && !_u.mutation.AliasesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analyte.AliasesTable,
			Columns: []string{analyte.AliasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analytealias.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AliasesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analyte.AliasesTable,
			Columns: []string{analyte.AliasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analytealias.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analyte.ResultsTable,
			Columns: []string{analyte.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(labresult.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResultsIDs(); len(nodes) > 0 && !_u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analyte.ResultsTable,
			Columns: []string{analyte.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(labresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analyte.ResultsTable,
			Columns: []string{analyte.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(labresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Analyte{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analyte.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
