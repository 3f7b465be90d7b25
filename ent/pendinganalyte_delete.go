// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/labdex/labdex/ent/pendinganalyte"
	"github.com/labdex/labdex/ent/predicate"
)

// PendingAnalyteDelete is the builder for deleting a PendingAnalyte entity.
type PendingAnalyteDelete struct {
	config
	hooks    []Hook
	mutation *PendingAnalyteMutation
}

// Where appends a list predicates to the PendingAnalyteDelete builder.
func (_d *PendingAnalyteDelete) Where(ps ...predicate.PendingAnalyte) *PendingAnalyteDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PendingAnalyteDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PendingAnalyteDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PendingAnalyteDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(pendinganalyte.Table, sqlgraph.NewFieldSpec(pendinganalyte.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// PendingAnalyteDeleteOne is the builder for deleting a single PendingAnalyte entity.
type PendingAnalyteDeleteOne struct {
	_d *PendingAnalyteDelete
}

// Where appends a list predicates to the PendingAnalyteDelete builder.
func (_d *PendingAnalyteDeleteOne) Where(ps ...predicate.PendingAnalyte) *PendingAnalyteDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PendingAnalyteDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{pendinganalyte.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PendingAnalyteDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
