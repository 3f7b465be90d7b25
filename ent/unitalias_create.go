// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/labdex/labdex/ent/unitalias"
)

// UnitAliasCreate is the builder for creating a UnitAlias entity.
type UnitAliasCreate struct {
	config
	mutation *UnitAliasMutation
	hooks    []Hook
}

// SetCanonical sets the "canonical" field.
func (_c *UnitAliasCreate) SetCanonical(v string) *UnitAliasCreate {
	_c.mutation.SetCanonical(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *UnitAliasCreate) SetSource(v string) *UnitAliasCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *UnitAliasCreate) SetNillableSource(v *string) *UnitAliasCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetLearnCount sets the "learn_count" field.
func (_c *UnitAliasCreate) SetLearnCount(v int) *UnitAliasCreate {
	_c.mutation.SetLearnCount(v)
	return _c
}

// SetNillableLearnCount sets the "learn_count" field if the given value is not nil.
func (_c *UnitAliasCreate) SetNillableLearnCount(v *int) *UnitAliasCreate {
	if v != nil {
		_c.SetLearnCount(*v)
	}
	return _c
}

// SetLastUsedAt sets the "last_used_at" field.
func (_c *UnitAliasCreate) SetLastUsedAt(v time.Time) *UnitAliasCreate {
	_c.mutation.SetLastUsedAt(v)
	return _c
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_c *UnitAliasCreate) SetNillableLastUsedAt(v *time.Time) *UnitAliasCreate {
	if v != nil {
		_c.SetLastUsedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UnitAliasCreate) SetCreatedAt(v time.Time) *UnitAliasCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UnitAliasCreate) SetNillableCreatedAt(v *time.Time) *UnitAliasCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UnitAliasCreate) SetID(v string) *UnitAliasCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the UnitAliasMutation object of the builder.
func (_c *UnitAliasCreate) Mutation() *UnitAliasMutation {
	return _c.mutation
}

// Save creates the UnitAlias in the database.
func (_c *UnitAliasCreate) Save(ctx context.Context) (*UnitAlias, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UnitAliasCreate) SaveX(ctx context.Context) *UnitAlias {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UnitAliasCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UnitAliasCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UnitAliasCreate) defaults() {
	if _, ok := _c.mutation.Source(); !ok {
		v := unitalias.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.LearnCount(); !ok {
		v := unitalias.DefaultLearnCount
		_c.mutation.SetLearnCount(v)
	}
	if _, ok := _c.mutation.LastUsedAt(); !ok {
		v := unitalias.DefaultLastUsedAt()
		_c.mutation.SetLastUsedAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := unitalias.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UnitAliasCreate) check() error {
	if _, ok := _c.mutation.Canonical(); !ok {
		return &ValidationError{Name: "canonical", err: errors.New(`ent: missing required field "UnitAlias.canonical"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "UnitAlias.source"`)}
	}
	if _, ok := _c.mutation.LearnCount(); !ok {
		return &ValidationError{Name: "learn_count", err: errors.New(`ent: missing required field "UnitAlias.learn_count"`)}
	}
	if _, ok := _c.mutation.LastUsedAt(); !ok {
		return &ValidationError{Name: "last_used_at", err: errors.New(`ent: missing required field "UnitAlias.last_used_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UnitAlias.created_at"`)}
	}
	return nil
}

func (_c *UnitAliasCreate) sqlSave(ctx context.Context) (*UnitAlias, error) {
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
			return nil, fmt.Errorf("unexpected UnitAlias.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UnitAliasCreate) createSpec() (*UnitAlias, *sqlgraph.CreateSpec) {
	var (
		_node = &UnitAlias{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(unitalias.Table, sqlgraph.NewFieldSpec(unitalias.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Canonical(); ok {
		_spec.SetField(unitalias.FieldCanonical, field.TypeString, value)
		_node.Canonical = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(unitalias.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.LearnCount(); ok {
		_spec.SetField(unitalias.FieldLearnCount, field.TypeInt, value)
		_node.LearnCount = value
	}
	if value, ok := _c.mutation.LastUsedAt(); ok {
		_spec.SetField(unitalias.FieldLastUsedAt, field.TypeTime, value)
		_node.LastUsedAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(unitalias.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// UnitAliasCreateBulk is the builder for creating many UnitAlias entities in bulk.
type UnitAliasCreateBulk struct {
	config
	err      error
	builders []*UnitAliasCreate
}

// Save creates the UnitAlias entities in the database.
func (_c *UnitAliasCreateBulk) Save(ctx context.Context) ([]*UnitAlias, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UnitAlias, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UnitAliasMutation)
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
func (_c *UnitAliasCreateBulk) SaveX(ctx context.Context) []*UnitAlias {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UnitAliasCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UnitAliasCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
