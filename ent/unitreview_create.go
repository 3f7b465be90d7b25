// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/labdex/labdex/ent/unitreview"
)

// UnitReviewCreate is the builder for creating a UnitReview entity.
type UnitReviewCreate struct {
	config
	mutation *UnitReviewMutation
	hooks    []Hook
}

// SetResultID sets the "result_id" field.
func (_c *UnitReviewCreate) SetResultID(v string) *UnitReviewCreate {
	_c.mutation.SetResultID(v)
	return _c
}

// SetRawUnit sets the "raw_unit" field.
func (_c *UnitReviewCreate) SetRawUnit(v string) *UnitReviewCreate {
	_c.mutation.SetRawUnit(v)
	return _c
}

// SetNormalizedInput sets the "normalized_input" field.
func (_c *UnitReviewCreate) SetNormalizedInput(v string) *UnitReviewCreate {
	_c.mutation.SetNormalizedInput(v)
	return _c
}

// SetLlmSuggestion sets the "llm_suggestion" field.
func (_c *UnitReviewCreate) SetLlmSuggestion(v string) *UnitReviewCreate {
	_c.mutation.SetLlmSuggestion(v)
	return _c
}

// SetNillableLlmSuggestion sets the "llm_suggestion" field if the given value is not nil.
func (_c *UnitReviewCreate) SetNillableLlmSuggestion(v *string) *UnitReviewCreate {
	if v != nil {
		_c.SetLlmSuggestion(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *UnitReviewCreate) SetConfidence(v string) *UnitReviewCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *UnitReviewCreate) SetNillableConfidence(v *string) *UnitReviewCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetIssueType sets the "issue_type" field.
func (_c *UnitReviewCreate) SetIssueType(v string) *UnitReviewCreate {
	_c.mutation.SetIssueType(v)
	return _c
}

// SetIssueDetails sets the "issue_details" field.
func (_c *UnitReviewCreate) SetIssueDetails(v map[string]interface{}) *UnitReviewCreate {
	_c.mutation.SetIssueDetails(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *UnitReviewCreate) SetStatus(v unitreview.Status) *UnitReviewCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *UnitReviewCreate) SetNillableStatus(v *unitreview.Status) *UnitReviewCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UnitReviewCreate) SetCreatedAt(v time.Time) *UnitReviewCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UnitReviewCreate) SetNillableCreatedAt(v *time.Time) *UnitReviewCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UnitReviewCreate) SetID(v string) *UnitReviewCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the UnitReviewMutation object of the builder.
func (_c *UnitReviewCreate) Mutation() *UnitReviewMutation {
	return _c.mutation
}

// Save creates the UnitReview in the database.
func (_c *UnitReviewCreate) Save(ctx context.Context) (*UnitReview, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UnitReviewCreate) SaveX(ctx context.Context) *UnitReview {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UnitReviewCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UnitReviewCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UnitReviewCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := unitreview.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := unitreview.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UnitReviewCreate) check() error {
	if _, ok := _c.mutation.ResultID(); !ok {
		return &ValidationError{Name: "result_id", err: errors.New(`ent: missing required field "UnitReview.result_id"`)}
	}
	if _, ok := _c.mutation.RawUnit(); !ok {
		return &ValidationError{Name: "raw_unit", err: errors.New(`ent: missing required field "UnitReview.raw_unit"`)}
	}
	if _, ok := _c.mutation.NormalizedInput(); !ok {
		return &ValidationError{Name: "normalized_input", err: errors.New(`ent: missing required field "UnitReview.normalized_input"`)}
	}
	if _, ok := _c.mutation.IssueType(); !ok {
		return &ValidationError{Name: "issue_type", err: errors.New(`ent: missing required field "UnitReview.issue_type"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "UnitReview.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := unitreview.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UnitReview.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UnitReview.created_at"`)}
	}
	return nil
}

func (_c *UnitReviewCreate) sqlSave(ctx context.Context) (*UnitReview, error) {
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
			return nil, fmt.Errorf("unexpected UnitReview.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UnitReviewCreate) createSpec() (*UnitReview, *sqlgraph.CreateSpec) {
	var (
		_node = &UnitReview{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(unitreview.Table, sqlgraph.NewFieldSpec(unitreview.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ResultID(); ok {
		_spec.SetField(unitreview.FieldResultID, field.TypeString, value)
		_node.ResultID = value
	}
	if value, ok := _c.mutation.RawUnit(); ok {
		_spec.SetField(unitreview.FieldRawUnit, field.TypeString, value)
		_node.RawUnit = value
	}
	if value, ok := _c.mutation.NormalizedInput(); ok {
		_spec.SetField(unitreview.FieldNormalizedInput, field.TypeString, value)
		_node.NormalizedInput = value
	}
	if value, ok := _c.mutation.LlmSuggestion(); ok {
		_spec.SetField(unitreview.FieldLlmSuggestion, field.TypeString, value)
		_node.LlmSuggestion = &value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(unitreview.FieldConfidence, field.TypeString, value)
		_node.Confidence = &value
	}
	if value, ok := _c.mutation.IssueType(); ok {
		_spec.SetField(unitreview.FieldIssueType, field.TypeString, value)
		_node.IssueType = value
	}
	if value, ok := _c.mutation.IssueDetails(); ok {
		_spec.SetField(unitreview.FieldIssueDetails, field.TypeJSON, value)
		_node.IssueDetails = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(unitreview.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(unitreview.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// UnitReviewCreateBulk is the builder for creating many UnitReview entities in bulk.
type UnitReviewCreateBulk struct {
	config
	err      error
	builders []*UnitReviewCreate
}

// Save creates the UnitReview entities in the database.
func (_c *UnitReviewCreateBulk) Save(ctx context.Context) ([]*UnitReview, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UnitReview, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UnitReviewMutation)
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
func (_c *UnitReviewCreateBulk) SaveX(ctx context.Context) []*UnitReview {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UnitReviewCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UnitReviewCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
