// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/labdex/labdex/ent/analyte"
	"github.com/labdex/labdex/ent/analytealias"
	"github.com/labdex/labdex/ent/labresult"
)

// AnalyteCreate is the builder for creating a Analyte entity.
type AnalyteCreate struct {
	config
	mutation *AnalyteMutation
	hooks    []Hook
}

// SetCode sets the "code" field.
func (_c *AnalyteCreate) SetCode(v string) *AnalyteCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetName sets the "name" field.
func (_c *AnalyteCreate) SetName(v string) *AnalyteCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCanonicalUnit sets the "canonical_unit" field.
func (_c *AnalyteCreate) SetCanonicalUnit(v string) *AnalyteCreate {
	_c.mutation.SetCanonicalUnit(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *AnalyteCreate) SetCategory(v string) *AnalyteCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *AnalyteCreate) SetNillableCategory(v *string) *AnalyteCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnalyteCreate) SetCreatedAt(v time.Time) *AnalyteCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnalyteCreate) SetNillableCreatedAt(v *time.Time) *AnalyteCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnalyteCreate) SetID(v string) *AnalyteCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddAliasIDs adds the "aliases" edge to the AnalyteAlias entity by IDs.
func (_c *AnalyteCreate) AddAliasIDs(ids ...string) *AnalyteCreate {
	_c.mutation.AddAliasIDs(ids...)
	return _c
}

// AddAliases adds the "aliases" edges to the AnalyteAlias entity.
func (_c *AnalyteCreate) AddAliases(v ...*AnalyteAlias) *AnalyteCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAliasIDs(ids...)
}

// AddResultIDs adds the "results" edge to the LabResult entity by IDs.
func (_c *AnalyteCreate) AddResultIDs(ids ...string) *AnalyteCreate {
	_c.mutation.AddResultIDs(ids...)
	return _c
}

// AddResults adds the "results" edges to the LabResult entity.
func (_c *AnalyteCreate) AddResults(v ...*LabResult) *AnalyteCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddResultIDs(ids...)
}

// Mutation returns the AnalyteMutation object of the builder.
func (_c *AnalyteCreate) Mutation() *AnalyteMutation {
	return _c.mutation
}

// Save creates the Analyte in the database.
func (_c *AnalyteCreate) Save(ctx context.Context) (*Analyte, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalyteCreate) SaveX(ctx context.Context) *Analyte {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalyteCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalyteCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalyteCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := analyte.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalyteCreate) check() error {
	if _, ok := _c.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`ent: missing required field "Analyte.code"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Analyte.name"`)}
	}
	if _, ok := _c.mutation.CanonicalUnit(); !ok {
		return &ValidationError{Name: "canonical_unit", err: errors.New(`ent: missing required field "Analyte.canonical_unit"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Analyte.created_at"`)}
	}
	return nil
}

func (_c *AnalyteCreate) sqlSave(ctx context.Context) (*Analyte, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Analyte.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnalyteCreate) createSpec() (*Analyte, *sqlgraph.CreateSpec) {
	var (
		_node = &Analyte{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analyte.Table, sqlgraph.NewFieldSpec(analyte.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(analyte.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(analyte.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.CanonicalUnit(); ok {
		_spec.SetField(analyte.FieldCanonicalUnit, field.TypeString, value)
		_node.CanonicalUnit = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(analyte.FieldCategory, field.TypeString, value)
		_node.Category = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(analyte.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AliasesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AnalyteCreateBulk is the builder for creating many Analyte entities in bulk.
type AnalyteCreateBulk struct {
	config
	err      error
	builders []*AnalyteCreate
}

// Save creates the Analyte entities in the database.
func (_c *AnalyteCreateBulk) Save(ctx context.Context) ([]*Analyte, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Analyte, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalyteMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AnalyteCreateBulk) SaveX(ctx context.Context) []*Analyte {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalyteCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalyteCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
