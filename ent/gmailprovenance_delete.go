// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/labdex/labdex/ent/gmailprovenance"
	"github.com/labdex/labdex/ent/predicate"
)

// GmailProvenanceDelete is the builder for deleting a GmailProvenance entity.
type GmailProvenanceDelete struct {
	config
	hooks    []Hook
	mutation *GmailProvenanceMutation
}

// Where appends a list predicates to the GmailProvenanceDelete builder.
func (_d *GmailProvenanceDelete) Where(ps ...predicate.GmailProvenance) *GmailProvenanceDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *GmailProvenanceDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GmailProvenanceDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *GmailProvenanceDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(gmailprovenance.Table, sqlgraph.NewFieldSpec(gmailprovenance.FieldID, field.TypeString))
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

// GmailProvenanceDeleteOne is the builder for deleting a single GmailProvenance entity.
type GmailProvenanceDeleteOne struct {
	_d *GmailProvenanceDelete
}

// Where appends a list predicates to the GmailProvenanceDelete builder.
func (_d *GmailProvenanceDeleteOne) Where(ps ...predicate.GmailProvenance) *GmailProvenanceDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *GmailProvenanceDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{gmailprovenance.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GmailProvenanceDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
