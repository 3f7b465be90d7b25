// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/labdex/labdex/ent/matchreview"
)

// MatchReviewCreate is the builder for creating a MatchReview entity.
type MatchReviewCreate struct {
	config
	mutation *MatchReviewMutation
	hooks    []Hook
}

// SetResultID sets the "result_id" field.
func (_c *MatchReviewCreate) SetResultID(v string) *MatchReviewCreate {
	_c.mutation.SetResultID(v)
	return _c
}

// SetCandidates sets the "candidates" field.
func (_c *MatchReviewCreate) SetCandidates(v []map[string]interface{}) *MatchReviewCreate {
	_c.mutation.SetCandidates(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *MatchReviewCreate) SetSource(v string) *MatchReviewCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *MatchReviewCreate) SetNillableSource(v *string) *MatchReviewCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetPendingCode sets the "pending_code" field.
func (_c *MatchReviewCreate) SetPendingCode(v string) *MatchReviewCreate {
	_c.mutation.SetPendingCode(v)
	return _c
}

// SetNillablePendingCode sets the "pending_code" field if the given value is not nil.
func (_c *MatchReviewCreate) SetNillablePendingCode(v *string) *MatchReviewCreate {
	if v != nil {
		_c.SetPendingCode(*v)
	}
	return _c
}

// SetLlmComment sets the "llm_comment" field.
func (_c *MatchReviewCreate) SetLlmComment(v string) *MatchReviewCreate {
	_c.mutation.SetLlmComment(v)
	return _c
}

// SetNillableLlmComment sets the "llm_comment" field if the given value is not nil.
func (_c *MatchReviewCreate) SetNillableLlmComment(v *string) *MatchReviewCreate {
	if v != nil {
		_c.SetLlmComment(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *MatchReviewCreate) SetStatus(v matchreview.Status) *MatchReviewCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *MatchReviewCreate) SetNillableStatus(v *matchreview.Status) *MatchReviewCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetResolvedVia sets the "resolved_via" field.
func (_c *MatchReviewCreate) SetResolvedVia(v string) *MatchReviewCreate {
	_c.mutation.SetResolvedVia(v)
	return _c
}

// SetNillableResolvedVia sets the "resolved_via" field if the given value is not nil.
func (_c *MatchReviewCreate) SetNillableResolvedVia(v *string) *MatchReviewCreate {
	if v != nil {
		_c.SetResolvedVia(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MatchReviewCreate) SetCreatedAt(v time.Time) *MatchReviewCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MatchReviewCreate) SetNillableCreatedAt(v *time.Time) *MatchReviewCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *MatchReviewCreate) SetResolvedAt(v time.Time) *MatchReviewCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *MatchReviewCreate) SetNillableResolvedAt(v *time.Time) *MatchReviewCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MatchReviewCreate) SetID(v string) *MatchReviewCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the MatchReviewMutation object of the builder.
func (_c *MatchReviewCreate) Mutation() *MatchReviewMutation {
	return _c.mutation
}

// Save creates the MatchReview in the database.
func (_c *MatchReviewCreate) Save(ctx context.Context) (*MatchReview, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MatchReviewCreate) SaveX(ctx context.Context) *MatchReview {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MatchReviewCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MatchReviewCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MatchReviewCreate) defaults() {
	if _, ok := _c.mutation.Source(); !ok {
		v := matchreview.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := matchreview.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := matchreview.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MatchReviewCreate) check() error {
	if _, ok := _c.mutation.ResultID(); !ok {
		return &ValidationError{Name: "result_id", err: errors.New(`ent: missing required field "MatchReview.result_id"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "MatchReview.source"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "MatchReview.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := matchreview.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MatchReview.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MatchReview.created_at"`)}
	}
	return nil
}

func (_c *MatchReviewCreate) sqlSave(ctx context.Context) (*MatchReview, error) {
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
			return nil, fmt.Errorf("unexpected MatchReview.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MatchReviewCreate) createSpec() (*MatchReview, *sqlgraph.CreateSpec) {
	var (
		_node = &MatchReview{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(matchreview.Table, sqlgraph.NewFieldSpec(matchreview.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ResultID(); ok {
		_spec.SetField(matchreview.FieldResultID, field.TypeString, value)
		_node.ResultID = value
	}
	if value, ok := _c.mutation.Candidates(); ok {
		_spec.SetField(matchreview.FieldCandidates, field.TypeJSON, value)
		_node.Candidates = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(matchreview.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.PendingCode(); ok {
		_spec.SetField(matchreview.FieldPendingCode, field.TypeString, value)
		_node.PendingCode = &value
	}
	if value, ok := _c.mutation.LlmComment(); ok {
		_spec.SetField(matchreview.FieldLlmComment, field.TypeString, value)
		_node.LlmComment = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(matchreview.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ResolvedVia(); ok {
		_spec.SetField(matchreview.FieldResolvedVia, field.TypeString, value)
		_node.ResolvedVia = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(matchreview.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(matchreview.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	return _node, _spec
}

// MatchReviewCreateBulk is the builder for creating many MatchReview entities in bulk.
type MatchReviewCreateBulk struct {
	config
	err      error
	builders []*MatchReviewCreate
}

// Save creates the MatchReview entities in the database.
func (_c *MatchReviewCreateBulk) Save(ctx context.Context) ([]*MatchReview, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MatchReview, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MatchReviewMutation)
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
func (_c *MatchReviewCreateBulk) SaveX(ctx context.Context) []*MatchReview {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MatchReviewCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MatchReviewCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
