// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/labdex/labdex/ent/predicate"
	"github.com/labdex/labdex/ent/sqlgenerationlog"
)

// SQLGenerationLogDelete is the builder for deleting a SQLGenerationLog entity.
type SQLGenerationLogDelete struct {
	config
	hooks    []Hook
	mutation *SQLGenerationLogMutation
}

// Where appends a list predicates to the SQLGenerationLogDelete builder.
func (_d *SQLGenerationLogDelete) Where(ps ...predicate.SQLGenerationLog) *SQLGenerationLogDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SQLGenerationLogDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SQLGenerationLogDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SQLGenerationLogDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(sqlgenerationlog.Table, sqlgraph.NewFieldSpec(sqlgenerationlog.FieldID, field.TypeString))
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

// SQLGenerationLogDeleteOne is the builder for deleting a single SQLGenerationLog entity.
type SQLGenerationLogDeleteOne struct {
	_d *SQLGenerationLogDelete
}

// Where appends a list predicates to the SQLGenerationLogDelete builder.
func (_d *SQLGenerationLogDeleteOne) Where(ps ...predicate.SQLGenerationLog) *SQLGenerationLogDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SQLGenerationLogDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{sqlgenerationlog.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SQLGenerationLogDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
