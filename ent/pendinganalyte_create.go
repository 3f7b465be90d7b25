// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/labdex/labdex/ent/pendinganalyte"
)

// PendingAnalyteCreate is the builder for creating a PendingAnalyte entity.
type PendingAnalyteCreate struct {
	config
	mutation *PendingAnalyteMutation
	hooks    []Hook
}

// SetProposedCode sets the "proposed_code" field.
func (_c *PendingAnalyteCreate) SetProposedCode(v string) *PendingAnalyteCreate {
	_c.mutation.SetProposedCode(v)
	return _c
}

// SetProposedName sets the "proposed_name" field.
func (_c *PendingAnalyteCreate) SetProposedName(v string) *PendingAnalyteCreate {
	_c.mutation.SetProposedName(v)
	return _c
}

// SetUnit sets the "unit" field.
func (_c *PendingAnalyteCreate) SetUnit(v string) *PendingAnalyteCreate {
	_c.mutation.SetUnit(v)
	return _c
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_c *PendingAnalyteCreate) SetNillableUnit(v *string) *PendingAnalyteCreate {
	if v != nil {
		_c.SetUnit(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *PendingAnalyteCreate) SetCategory(v string) *PendingAnalyteCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *PendingAnalyteCreate) SetNillableCategory(v *string) *PendingAnalyteCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *PendingAnalyteCreate) SetConfidence(v float64) *PendingAnalyteCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetEvidence sets the "evidence" field.
func (_c *PendingAnalyteCreate) SetEvidence(v map[string]interface{}) *PendingAnalyteCreate {
	_c.mutation.SetEvidence(v)
	return _c
}

// SetParameterVariations sets the "parameter_variations" field.
func (_c *PendingAnalyteCreate) SetParameterVariations(v []string) *PendingAnalyteCreate {
	_c.mutation.SetParameterVariations(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PendingAnalyteCreate) SetStatus(v pendinganalyte.Status) *PendingAnalyteCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PendingAnalyteCreate) SetNillableStatus(v *pendinganalyte.Status) *PendingAnalyteCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PendingAnalyteCreate) SetCreatedAt(v time.Time) *PendingAnalyteCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PendingAnalyteCreate) SetNillableCreatedAt(v *time.Time) *PendingAnalyteCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PendingAnalyteCreate) SetUpdatedAt(v time.Time) *PendingAnalyteCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PendingAnalyteCreate) SetNillableUpdatedAt(v *time.Time) *PendingAnalyteCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PendingAnalyteCreate) SetID(v string) *PendingAnalyteCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PendingAnalyteMutation object of the builder.
func (_c *PendingAnalyteCreate) Mutation() *PendingAnalyteMutation {
	return _c.mutation
}

// Save creates the PendingAnalyte in the database.
func (_c *PendingAnalyteCreate) Save(ctx context.Context) (*PendingAnalyte, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PendingAnalyteCreate) SaveX(ctx context.Context) *PendingAnalyte {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PendingAnalyteCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PendingAnalyteCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PendingAnalyteCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := pendinganalyte.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pendinganalyte.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := pendinganalyte.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PendingAnalyteCreate) check() error {
	if _, ok := _c.mutation.ProposedCode(); !ok {
		return &ValidationError{Name: "proposed_code", err: errors.New(`ent: missing required field "PendingAnalyte.proposed_code"`)}
	}
	if _, ok := _c.mutation.ProposedName(); !ok {
		return &ValidationError{Name: "proposed_name", err: errors.New(`ent: missing required field "PendingAnalyte.proposed_name"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "PendingAnalyte.confidence"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PendingAnalyte.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := pendinganalyte.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PendingAnalyte.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PendingAnalyte.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PendingAnalyte.updated_at"`)}
	}
	return nil
}

func (_c *PendingAnalyteCreate) sqlSave(ctx context.Context) (*PendingAnalyte, error) {
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
			return nil, fmt.Errorf("unexpected PendingAnalyte.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PendingAnalyteCreate) createSpec() (*PendingAnalyte, *sqlgraph.CreateSpec) {
	var (
		_node = &PendingAnalyte{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pendinganalyte.Table, sqlgraph.NewFieldSpec(pendinganalyte.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ProposedCode(); ok {
		_spec.SetField(pendinganalyte.FieldProposedCode, field.TypeString, value)
		_node.ProposedCode = value
	}
	if value, ok := _c.mutation.ProposedName(); ok {
		_spec.SetField(pendinganalyte.FieldProposedName, field.TypeString, value)
		_node.ProposedName = value
	}
	if value, ok := _c.mutation.Unit(); ok {
		_spec.SetField(pendinganalyte.FieldUnit, field.TypeString, value)
		_node.Unit = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(pendinganalyte.FieldCategory, field.TypeString, value)
		_node.Category = &value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(pendinganalyte.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Evidence(); ok {
		_spec.SetField(pendinganalyte.FieldEvidence, field.TypeJSON, value)
		_node.Evidence = value
	}
	if value, ok := _c.mutation.ParameterVariations(); ok {
		_spec.SetField(pendinganalyte.FieldParameterVariations, field.TypeJSON, value)
		_node.ParameterVariations = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pendinganalyte.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pendinganalyte.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(pendinganalyte.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// PendingAnalyteCreateBulk is the builder for creating many PendingAnalyte entities in bulk.
type PendingAnalyteCreateBulk struct {
	config
	err      error
	builders []*PendingAnalyteCreate
}

// Save creates the PendingAnalyte entities in the database.
func (_c *PendingAnalyteCreateBulk) Save(ctx context.Context) ([]*PendingAnalyte, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PendingAnalyte, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PendingAnalyteMutation)
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
func (_c *PendingAnalyteCreateBulk) SaveX(ctx context.Context) []*PendingAnalyte {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PendingAnalyteCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PendingAnalyteCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
