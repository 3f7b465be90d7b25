// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/labdex/labdex/ent/pendinganalyte"
	"github.com/labdex/labdex/ent/predicate"
)

// PendingAnalyteUpdate is the builder for updating PendingAnalyte entities.
type PendingAnalyteUpdate struct {
	config
	hooks    []Hook
	mutation *PendingAnalyteMutation
}

// Where appends a list predicates to the PendingAnalyteUpdate builder.
func (_u *PendingAnalyteUpdate) Where(ps ...predicate.PendingAnalyte) *PendingAnalyteUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProposedCode sets the "proposed_code" field.
func (_u *PendingAnalyteUpdate) SetProposedCode(v string) *PendingAnalyteUpdate {
	_u.mutation.SetProposedCode(v)
	return _u
}

// SetNillableProposedCode sets the "proposed_code" field if the given value is not nil.
func (_u *PendingAnalyteUpdate) SetNillableProposedCode(v *string) *PendingAnalyteUpdate {
	if v != nil {
		_u.SetProposedCode(*v)
	}
	return _u
}

// SetProposedName sets the "proposed_name" field.
func (_u *PendingAnalyteUpdate) SetProposedName(v string) *PendingAnalyteUpdate {
	_u.mutation.SetProposedName(v)
	return _u
}

// SetNillableProposedName sets the "proposed_name" field if the given value is not nil.
func (_u *PendingAnalyteUpdate) SetNillableProposedName(v *string) *PendingAnalyteUpdate {
	if v != nil {
		_u.SetProposedName(*v)
	}
	return _u
}

// SetUnit sets the "unit" field.
func (_u *PendingAnalyteUpdate) SetUnit(v string) *PendingAnalyteUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *PendingAnalyteUpdate) SetNillableUnit(v *string) *PendingAnalyteUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *PendingAnalyteUpdate) ClearUnit() *PendingAnalyteUpdate {
	_u.mutation.ClearUnit()
	return _u
}

// SetCategory sets the "category" field.
func (_u *PendingAnalyteUpdate) SetCategory(v string) *PendingAnalyteUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *PendingAnalyteUpdate) SetNillableCategory(v *string) *PendingAnalyteUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *PendingAnalyteUpdate) ClearCategory() *PendingAnalyteUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *PendingAnalyteUpdate) SetConfidence(v float64) *PendingAnalyteUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *PendingAnalyteUpdate) SetNillableConfidence(v *float64) *PendingAnalyteUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *PendingAnalyteUpdate) AddConfidence(v float64) *PendingAnalyteUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *PendingAnalyteUpdate) SetEvidence(v map[string]interface{}) *PendingAnalyteUpdate {
	_u.mutation.SetEvidence(v)
	return _u
}

// ClearEvidence clears the value of the "evidence" field.
func (_u *PendingAnalyteUpdate) ClearEvidence() *PendingAnalyteUpdate {
	_u.mutation.ClearEvidence()
	return _u
}

// SetParameterVariations sets the "parameter_variations" field.
func (_u *PendingAnalyteUpdate) SetParameterVariations(v []string) *PendingAnalyteUpdate {
	_u.mutation.SetParameterVariations(v)
	return _u
}

// AppendParameterVariations appends value to the "parameter_variations" field.
func (_u *PendingAnalyteUpdate) AppendParameterVariations(v []string) *PendingAnalyteUpdate {
	_u.mutation.AppendParameterVariations(v)
	return _u
}

// ClearParameterVariations clears the value of the "parameter_variations" field.
func (_u *PendingAnalyteUpdate) ClearParameterVariations() *PendingAnalyteUpdate {
	_u.mutation.ClearParameterVariations()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PendingAnalyteUpdate) SetStatus(v pendinganalyte.Status) *PendingAnalyteUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PendingAnalyteUpdate) SetNillableStatus(v *pendinganalyte.Status) *PendingAnalyteUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PendingAnalyteUpdate) SetUpdatedAt(v time.Time) *PendingAnalyteUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PendingAnalyteMutation object of the builder.
func (_u *PendingAnalyteUpdate) Mutation() *PendingAnalyteMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PendingAnalyteUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PendingAnalyteUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PendingAnalyteUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PendingAnalyteUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PendingAnalyteUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pendinganalyte.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PendingAnalyteUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pendinganalyte.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PendingAnalyte.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PendingAnalyteUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pendinganalyte.Table, pendinganalyte.Columns, sqlgraph.NewFieldSpec(pendinganalyte.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProposedCode(); ok {
		_spec.SetField(pendinganalyte.FieldProposedCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProposedName(); ok {
		_spec.SetField(pendinganalyte.FieldProposedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(pendinganalyte.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(pendinganalyte.FieldUnit, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(pendinganalyte.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(pendinganalyte.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(pendinganalyte.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(pendinganalyte.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(pendinganalyte.FieldEvidence, field.TypeJSON, value)
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(pendinganalyte.FieldEvidence, field.TypeJSON)
	}
	if value, ok := _u.mutation.ParameterVariations(); ok {
		_spec.SetField(pendinganalyte.FieldParameterVariations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParameterVariations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pendinganalyte.FieldParameterVariations, value)
		})
	}
	if _u.mutation.ParameterVariationsCleared() {
		_spec.ClearField(pendinganalyte.FieldParameterVariations, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pendinganalyte.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pendinganalyte.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pendinganalyte.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PendingAnalyteUpdateOne is the builder for updating a single PendingAnalyte entity.
type PendingAnalyteUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PendingAnalyteMutation
}

// SetProposedCode sets the "proposed_code" field.
func (_u *PendingAnalyteUpdateOne) SetProposedCode(v string) *PendingAnalyteUpdateOne {
	_u.mutation.SetProposedCode(v)
	return _u
}

// SetNillableProposedCode sets the "proposed_code" field if the given value is not nil.
func (_u *PendingAnalyteUpdateOne) SetNillableProposedCode(v *string) *PendingAnalyteUpdateOne {
	if v != nil {
		_u.SetProposedCode(*v)
	}
	return _u
}

// SetProposedName sets the "proposed_name" field.
func (_u *PendingAnalyteUpdateOne) SetProposedName(v string) *PendingAnalyteUpdateOne {
	_u.mutation.SetProposedName(v)
	return _u
}

// SetNillableProposedName sets the "proposed_name" field if the given value is not nil.
func (_u *PendingAnalyteUpdateOne) SetNillableProposedName(v *string) *PendingAnalyteUpdateOne {
	if v != nil {
		_u.SetProposedName(*v)
	}
	return _u
}

// SetUnit sets the "unit" field.
func (_u *PendingAnalyteUpdateOne) SetUnit(v string) *PendingAnalyteUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *PendingAnalyteUpdateOne) SetNillableUnit(v *string) *PendingAnalyteUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *PendingAnalyteUpdateOne) ClearUnit() *PendingAnalyteUpdateOne {
	_u.mutation.ClearUnit()
	return _u
}

// SetCategory sets the "category" field.
func (_u *PendingAnalyteUpdateOne) SetCategory(v string) *PendingAnalyteUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *PendingAnalyteUpdateOne) SetNillableCategory(v *string) *PendingAnalyteUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *PendingAnalyteUpdateOne) ClearCategory() *PendingAnalyteUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *PendingAnalyteUpdateOne) SetConfidence(v float64) *PendingAnalyteUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *PendingAnalyteUpdateOne) SetNillableConfidence(v *float64) *PendingAnalyteUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *PendingAnalyteUpdateOne) AddConfidence(v float64) *PendingAnalyteUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *PendingAnalyteUpdateOne) SetEvidence(v map[string]interface{}) *PendingAnalyteUpdateOne {
	_u.mutation.SetEvidence(v)
	return _u
}

// ClearEvidence clears the value of the "evidence" field.
func (_u *PendingAnalyteUpdateOne) ClearEvidence() *PendingAnalyteUpdateOne {
	_u.mutation.ClearEvidence()
	return _u
}

// SetParameterVariations sets the "parameter_variations" field.
func (_u *PendingAnalyteUpdateOne) SetParameterVariations(v []string) *PendingAnalyteUpdateOne {
	_u.mutation.SetParameterVariations(v)
	return _u
}

// AppendParameterVariations appends value to the "parameter_variations" field.
func (_u *PendingAnalyteUpdateOne) AppendParameterVariations(v []string) *PendingAnalyteUpdateOne {
	_u.mutation.AppendParameterVariations(v)
	return _u
}

// ClearParameterVariations clears the value of the "parameter_variations" field.
func (_u *PendingAnalyteUpdateOne) ClearParameterVariations() *PendingAnalyteUpdateOne {
	_u.mutation.ClearParameterVariations()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PendingAnalyteUpdateOne) SetStatus(v pendinganalyte.Status) *PendingAnalyteUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PendingAnalyteUpdateOne) SetNillableStatus(v *pendinganalyte.Status) *PendingAnalyteUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PendingAnalyteUpdateOne) SetUpdatedAt(v time.Time) *PendingAnalyteUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PendingAnalyteMutation object of the builder.
func (_u *PendingAnalyteUpdateOne) Mutation() *PendingAnalyteMutation {
	return _u.mutation
}

// Where appends a list predicates to the PendingAnalyteUpdate builder.
func (_u *PendingAnalyteUpdateOne) Where(ps ...predicate.PendingAnalyte) *PendingAnalyteUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PendingAnalyteUpdateOne) Select(field string, fields ...string) *PendingAnalyteUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PendingAnalyte entity.
func (_u *PendingAnalyteUpdateOne) Save(ctx context.Context) (*PendingAnalyte, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PendingAnalyteUpdateOne) SaveX(ctx context.Context) *PendingAnalyte {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PendingAnalyteUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PendingAnalyteUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PendingAnalyteUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pendinganalyte.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PendingAnalyteUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pendinganalyte.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PendingAnalyte.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PendingAnalyteUpdateOne) sqlSave(ctx context.Context) (_node *PendingAnalyte, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pendinganalyte.Table, pendinganalyte.Columns, sqlgraph.NewFieldSpec(pendinganalyte.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PendingAnalyte.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pendinganalyte.FieldID)
		for _, f := range fields {
			if !pendinganalyte.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pendinganalyte.FieldID {
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
	if value, ok := _u.mutation.ProposedCode(); ok {
		_spec.SetField(pendinganalyte.FieldProposedCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProposedName(); ok {
		_spec.SetField(pendinganalyte.FieldProposedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(pendinganalyte.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(pendinganalyte.FieldUnit, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(pendinganalyte.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(pendinganalyte.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(pendinganalyte.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(pendinganalyte.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(pendinganalyte.FieldEvidence, field.TypeJSON, value)
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(pendinganalyte.FieldEvidence, field.TypeJSON)
	}
	if value, ok := _u.mutation.ParameterVariations(); ok {
		_spec.SetField(pendinganalyte.FieldParameterVariations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParameterVariations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pendinganalyte.FieldParameterVariations, value)
		})
	}
	if _u.mutation.ParameterVariationsCleared() {
		_spec.ClearField(pendinganalyte.FieldParameterVariations, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pendinganalyte.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pendinganalyte.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &PendingAnalyte{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pendinganalyte.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
