// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/labdex/labdex/ent/predicate"
	"github.com/labdex/labdex/ent/unitreview"
)

// UnitReviewUpdate is the builder for updating UnitReview entities.
type UnitReviewUpdate struct {
	config
	hooks    []Hook
	mutation *UnitReviewMutation
}

// Where appends a list predicates to the UnitReviewUpdate builder.
func (_u *UnitReviewUpdate) Where(ps ...predicate.UnitReview) *UnitReviewUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetResultID sets the "result_id" field.
func (_u *UnitReviewUpdate) SetResultID(v string) *UnitReviewUpdate {
	_u.mutation.SetResultID(v)
	return _u
}

// SetNillableResultID sets the "result_id" field if the given value is not nil.
func (_u *UnitReviewUpdate) SetNillableResultID(v *string) *UnitReviewUpdate {
	if v != nil {
		_u.SetResultID(*v)
	}
	return _u
}

// SetRawUnit sets the "raw_unit" field.
func (_u *UnitReviewUpdate) SetRawUnit(v string) *UnitReviewUpdate {
	_u.mutation.SetRawUnit(v)
	return _u
}

// SetNillableRawUnit sets the "raw_unit" field if the given value is not nil.
func (_u *UnitReviewUpdate) SetNillableRawUnit(v *string) *UnitReviewUpdate {
	if v != nil {
		_u.SetRawUnit(*v)
	}
	return _u
}

// SetNormalizedInput sets the "normalized_input" field.
func (_u *UnitReviewUpdate) SetNormalizedInput(v string) *UnitReviewUpdate {
	_u.mutation.SetNormalizedInput(v)
	return _u
}

// SetNillableNormalizedInput sets the "normalized_input" field if the given value is not nil.
func (_u *UnitReviewUpdate) SetNillableNormalizedInput(v *string) *UnitReviewUpdate {
	if v != nil {
		_u.SetNormalizedInput(*v)
	}
	return _u
}

// SetLlmSuggestion sets the "llm_suggestion" field.
func (_u *UnitReviewUpdate) SetLlmSuggestion(v string) *UnitReviewUpdate {
	_u.mutation.SetLlmSuggestion(v)
	return _u
}

// SetNillableLlmSuggestion sets the "llm_suggestion" field if the given value is not nil.
func (_u *UnitReviewUpdate) SetNillableLlmSuggestion(v *string) *UnitReviewUpdate {
	if v != nil {
		_u.SetLlmSuggestion(*v)
	}
	return _u
}

// ClearLlmSuggestion clears the value of the "llm_suggestion" field.
func (_u *UnitReviewUpdate) ClearLlmSuggestion() *UnitReviewUpdate {
	_u.mutation.ClearLlmSuggestion()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *UnitReviewUpdate) SetConfidence(v string) *UnitReviewUpdate {
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *UnitReviewUpdate) SetNillableConfidence(v *string) *UnitReviewUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *UnitReviewUpdate) ClearConfidence() *UnitReviewUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetIssueType sets the "issue_type" field.
func (_u *UnitReviewUpdate) SetIssueType(v string) *UnitReviewUpdate {
	_u.mutation.SetIssueType(v)
	return _u
}

// SetNillableIssueType sets the "issue_type" field if the given value is not nil.
func (_u *UnitReviewUpdate) SetNillableIssueType(v *string) *UnitReviewUpdate {
	if v != nil {
		_u.SetIssueType(*v)
	}
	return _u
}

// SetIssueDetails sets the "issue_details" field.
func (_u *UnitReviewUpdate) SetIssueDetails(v map[string]interface{}) *UnitReviewUpdate {
	_u.mutation.SetIssueDetails(v)
	return _u
}

// ClearIssueDetails clears the value of the "issue_details" field.
func (_u *UnitReviewUpdate) ClearIssueDetails() *UnitReviewUpdate {
	_u.mutation.ClearIssueDetails()
	return _u
}

// SetStatus sets the "status" field.
func (_u *UnitReviewUpdate) SetStatus(v unitreview.Status) *UnitReviewUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UnitReviewUpdate) SetNillableStatus(v *unitreview.Status) *UnitReviewUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the UnitReviewMutation object of the builder.
func (_u *UnitReviewUpdate) Mutation() *UnitReviewMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UnitReviewUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UnitReviewUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UnitReviewUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UnitReviewUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UnitReviewUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := unitreview.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UnitReview.status": %w`, err)}
		}
	}
	return nil
}

func (_u *UnitReviewUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(unitreview.Table, unitreview.Columns, sqlgraph.NewFieldSpec(unitreview.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ResultID(); ok {
		_spec.SetField(unitreview.FieldResultID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawUnit(); ok {
		_spec.SetField(unitreview.FieldRawUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedInput(); ok {
		_spec.SetField(unitreview.FieldNormalizedInput, field.TypeString, value)
	}
	if value, ok := _u.mutation.LlmSuggestion(); ok {
		_spec.SetField(unitreview.FieldLlmSuggestion, field.TypeString, value)
	}
	if _u.mutation.LlmSuggestionCleared() {
		_spec.ClearField(unitreview.FieldLlmSuggestion, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(unitreview.FieldConfidence, field.TypeString, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(unitreview.FieldConfidence, field.TypeString)
	}
	if value, ok := _u.mutation.IssueType(); ok {
		_spec.SetField(unitreview.FieldIssueType, field.TypeString, value)
	}
	if value, ok := _u.mutation.IssueDetails(); ok {
		_spec.SetField(unitreview.FieldIssueDetails, field.TypeJSON, value)
	}
	if _u.mutation.IssueDetailsCleared() {
		_spec.ClearField(unitreview.FieldIssueDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(unitreview.FieldStatus, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unitreview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UnitReviewUpdateOne is the builder for updating a single UnitReview entity.
type UnitReviewUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UnitReviewMutation
}

// SetResultID sets the "result_id" field.
func (_u *UnitReviewUpdateOne) SetResultID(v string) *UnitReviewUpdateOne {
	_u.mutation.SetResultID(v)
	return _u
}

// SetNillableResultID sets the "result_id" field if the given value is not nil.
func (_u *UnitReviewUpdateOne) SetNillableResultID(v *string) *UnitReviewUpdateOne {
	if v != nil {
		_u.SetResultID(*v)
	}
	return _u
}

// SetRawUnit sets the "raw_unit" field.
func (_u *UnitReviewUpdateOne) SetRawUnit(v string) *UnitReviewUpdateOne {
	_u.mutation.SetRawUnit(v)
	return _u
}

// SetNillableRawUnit sets the "raw_unit" field if the given value is not nil.
func (_u *UnitReviewUpdateOne) SetNillableRawUnit(v *string) *UnitReviewUpdateOne {
	if v != nil {
		_u.SetRawUnit(*v)
	}
	return _u
}

// SetNormalizedInput sets the "normalized_input" field.
func (_u *UnitReviewUpdateOne) SetNormalizedInput(v string) *UnitReviewUpdateOne {
	_u.mutation.SetNormalizedInput(v)
	return _u
}

// SetNillableNormalizedInput sets the "normalized_input" field if the given value is not nil.
func (_u *UnitReviewUpdateOne) SetNillableNormalizedInput(v *string) *UnitReviewUpdateOne {
	if v != nil {
		_u.SetNormalizedInput(*v)
	}
	return _u
}

// SetLlmSuggestion sets the "llm_suggestion" field.
func (_u *UnitReviewUpdateOne) SetLlmSuggestion(v string) *UnitReviewUpdateOne {
	_u.mutation.SetLlmSuggestion(v)
	return _u
}

// SetNillableLlmSuggestion sets the "llm_suggestion" field if the given value is not nil.
func (_u *UnitReviewUpdateOne) SetNillableLlmSuggestion(v *string) *UnitReviewUpdateOne {
	if v != nil {
		_u.SetLlmSuggestion(*v)
	}
	return _u
}

// ClearLlmSuggestion clears the value of the "llm_suggestion" field.
func (_u *UnitReviewUpdateOne) ClearLlmSuggestion() *UnitReviewUpdateOne {
	_u.mutation.ClearLlmSuggestion()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *UnitReviewUpdateOne) SetConfidence(v string) *UnitReviewUpdateOne {
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *UnitReviewUpdateOne) SetNillableConfidence(v *string) *UnitReviewUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *UnitReviewUpdateOne) ClearConfidence() *UnitReviewUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetIssueType sets the "issue_type" field.
func (_u *UnitReviewUpdateOne) SetIssueType(v string) *UnitReviewUpdateOne {
	_u.mutation.SetIssueType(v)
	return _u
}

// SetNillableIssueType sets the "issue_type" field if the given value is not nil.
func (_u *UnitReviewUpdateOne) SetNillableIssueType(v *string) *UnitReviewUpdateOne {
	if v != nil {
		_u.SetIssueType(*v)
	}
	return _u
}

// SetIssueDetails sets the "issue_details" field.
func (_u *UnitReviewUpdateOne) SetIssueDetails(v map[string]interface{}) *UnitReviewUpdateOne {
	_u.mutation.SetIssueDetails(v)
	return _u
}

// ClearIssueDetails clears the value of the "issue_details" field.
func (_u *UnitReviewUpdateOne) ClearIssueDetails() *UnitReviewUpdateOne {
	_u.mutation.ClearIssueDetails()
	return _u
}

// SetStatus sets the "status" field.
func (_u *UnitReviewUpdateOne) SetStatus(v unitreview.Status) *UnitReviewUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UnitReviewUpdateOne) SetNillableStatus(v *unitreview.Status) *UnitReviewUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the UnitReviewMutation object of the builder.
func (_u *UnitReviewUpdateOne) Mutation() *UnitReviewMutation {
	return _u.mutation
}

// Where appends a list predicates to the UnitReviewUpdate builder.
func (_u *UnitReviewUpdateOne) Where(ps ...predicate.UnitReview) *UnitReviewUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UnitReviewUpdateOne) Select(field string, fields ...string) *UnitReviewUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UnitReview entity.
func (_u *UnitReviewUpdateOne) Save(ctx context.Context) (*UnitReview, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UnitReviewUpdateOne) SaveX(ctx context.Context) *UnitReview {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UnitReviewUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UnitReviewUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UnitReviewUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := unitreview.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UnitReview.status": %w`, err)}
		}
	}
	return nil
}

func (_u *UnitReviewUpdateOne) sqlSave(ctx context.Context) (_node *UnitReview, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(unitreview.Table, unitreview.Columns, sqlgraph.NewFieldSpec(unitreview.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UnitReview.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, unitreview.FieldID)
		for _, f := range fields {
			if !unitreview.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != unitreview.FieldID {
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
	if value, ok := _u.mutation.ResultID(); ok {
		_spec.SetField(unitreview.FieldResultID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawUnit(); ok {
		_spec.SetField(unitreview.FieldRawUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedInput(); ok {
		_spec.SetField(unitreview.FieldNormalizedInput, field.TypeString, value)
	}
	if value, ok := _u.mutation.LlmSuggestion(); ok {
		_spec.SetField(unitreview.FieldLlmSuggestion, field.TypeString, value)
	}
	if _u.mutation.LlmSuggestionCleared() {
		_spec.ClearField(unitreview.FieldLlmSuggestion, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(unitreview.FieldConfidence, field.TypeString, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(unitreview.FieldConfidence, field.TypeString)
	}
	if value, ok := _u.mutation.IssueType(); ok {
		_spec.SetField(unitreview.FieldIssueType, field.TypeString, value)
	}
	if value, ok := _u.mutation.IssueDetails(); ok {
		_spec.SetField(unitreview.FieldIssueDetails, field.TypeJSON, value)
	}
	if _u.mutation.IssueDetailsCleared() {
		_spec.ClearField(unitreview.FieldIssueDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(unitreview.FieldStatus, field.TypeEnum, value)
	}
	_node = &UnitReview{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unitreview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
