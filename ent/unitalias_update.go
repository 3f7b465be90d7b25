// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/labdex/labdex/ent/predicate"
	"github.com/labdex/labdex/ent/unitalias"
)

// UnitAliasUpdate is the builder for updating UnitAlias entities.
type UnitAliasUpdate struct {
	config
	hooks    []Hook
	mutation *UnitAliasMutation
}

// Where appends a list predicates to the UnitAliasUpdate builder.
func (_u *UnitAliasUpdate) Where(ps ...predicate.UnitAlias) *UnitAliasUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCanonical sets the "canonical" field.
func (_u *UnitAliasUpdate) SetCanonical(v string) *UnitAliasUpdate {
	_u.mutation.SetCanonical(v)
	return _u
}

// SetNillableCanonical sets the "canonical" field if the given value is not nil.
func (_u *UnitAliasUpdate) SetNillableCanonical(v *string) *UnitAliasUpdate {
	if v != nil {
		_u.SetCanonical(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *UnitAliasUpdate) SetSource(v string) *UnitAliasUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *UnitAliasUpdate) SetNillableSource(v *string) *UnitAliasUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetLearnCount sets the "learn_count" field.
func (_u *UnitAliasUpdate) SetLearnCount(v int) *UnitAliasUpdate {
	_u.mutation.ResetLearnCount()
	_u.mutation.SetLearnCount(v)
	return _u
}

// SetNillableLearnCount sets the "learn_count" field if the given value is not nil.
func (_u *UnitAliasUpdate) SetNillableLearnCount(v *int) *UnitAliasUpdate {
	if v != nil {
		_u.SetLearnCount(*v)
	}
	return _u
}

// AddLearnCount adds value to the "learn_count" field.
func (_u *UnitAliasUpdate) AddLearnCount(v int) *UnitAliasUpdate {
	_u.mutation.AddLearnCount(v)
	return _u
}

// SetLastUsedAt sets the "last_used_at" field.
func (_u *UnitAliasUpdate) SetLastUsedAt(v time.Time) *UnitAliasUpdate {
	_u.mutation.SetLastUsedAt(v)
	return _u
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_u *UnitAliasUpdate) SetNillableLastUsedAt(v *time.Time) *UnitAliasUpdate {
	if v != nil {
		_u.SetLastUsedAt(*v)
	}
	return _u
}

// Mutation returns the UnitAliasMutation object of the builder.
func (_u *UnitAliasUpdate) Mutation() *UnitAliasMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UnitAliasUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UnitAliasUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UnitAliasUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UnitAliasUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UnitAliasUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(unitalias.Table, unitalias.Columns, sqlgraph.NewFieldSpec(unitalias.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Canonical(); ok {
		_spec.SetField(unitalias.FieldCanonical, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(unitalias.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnCount(); ok {
		_spec.SetField(unitalias.FieldLearnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLearnCount(); ok {
		_spec.AddField(unitalias.FieldLearnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastUsedAt(); ok {
		_spec.SetField(unitalias.FieldLastUsedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unitalias.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UnitAliasUpdateOne is the builder for updating a single UnitAlias entity.
type UnitAliasUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UnitAliasMutation
}

// SetCanonical sets the "canonical" field.
func (_u *UnitAliasUpdateOne) SetCanonical(v string) *UnitAliasUpdateOne {
	_u.mutation.SetCanonical(v)
	return _u
}

// SetNillableCanonical sets the "canonical" field if the given value is not nil.
func (_u *UnitAliasUpdateOne) SetNillableCanonical(v *string) *UnitAliasUpdateOne {
	if v != nil {
		_u.SetCanonical(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *UnitAliasUpdateOne) SetSource(v string) *UnitAliasUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *UnitAliasUpdateOne) SetNillableSource(v *string) *UnitAliasUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetLearnCount sets the "learn_count" field.
func (_u *UnitAliasUpdateOne) SetLearnCount(v int) *UnitAliasUpdateOne {
	_u.mutation.ResetLearnCount()
	_u.mutation.SetLearnCount(v)
	return _u
}

// SetNillableLearnCount sets the "learn_count" field if the given value is not nil.
func (_u *UnitAliasUpdateOne) SetNillableLearnCount(v *int) *UnitAliasUpdateOne {
	if v != nil {
		_u.SetLearnCount(*v)
	}
	return _u
}

// AddLearnCount adds value to the "learn_count" field.
func (_u *UnitAliasUpdateOne) AddLearnCount(v int) *UnitAliasUpdateOne {
	_u.mutation.AddLearnCount(v)
	return _u
}

// SetLastUsedAt sets the "last_used_at" field.
func (_u *UnitAliasUpdateOne) SetLastUsedAt(v time.Time) *UnitAliasUpdateOne {
	_u.mutation.SetLastUsedAt(v)
	return _u
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_u *UnitAliasUpdateOne) SetNillableLastUsedAt(v *time.Time) *UnitAliasUpdateOne {
	if v != nil {
		_u.SetLastUsedAt(*v)
	}
	return _u
}

// Mutation returns the UnitAliasMutation object of the builder.
func (_u *UnitAliasUpdateOne) Mutation() *UnitAliasMutation {
	return _u.mutation
}

// Where appends a list predicates to the UnitAliasUpdate builder.
func (_u *UnitAliasUpdateOne) Where(ps ...predicate.UnitAlias) *UnitAliasUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UnitAliasUpdateOne) Select(field string, fields ...string) *UnitAliasUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UnitAlias entity.
func (_u *UnitAliasUpdateOne) Save(ctx context.Context) (*UnitAlias, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UnitAliasUpdateOne) SaveX(ctx context.Context) *UnitAlias {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UnitAliasUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UnitAliasUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UnitAliasUpdateOne) sqlSave(ctx context.Context) (_node *UnitAlias, err error) {
	_spec := sqlgraph.NewUpdateSpec(unitalias.Table, unitalias.Columns, sqlgraph.NewFieldSpec(unitalias.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UnitAlias.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, unitalias.FieldID)
		for _, f := range fields {
			if !unitalias.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != unitalias.FieldID {
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
	if value, ok := _u.mutation.Canonical(); ok {
		_spec.SetField(unitalias.FieldCanonical, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(unitalias.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnCount(); ok {
		_spec.SetField(unitalias.FieldLearnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLearnCount(); ok {
		_spec.AddField(unitalias.FieldLearnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastUsedAt(); ok {
		_spec.SetField(unitalias.FieldLastUsedAt, field.TypeTime, value)
	}
	_node = &UnitAlias{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unitalias.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
