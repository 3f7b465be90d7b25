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
	"github.com/labdex/labdex/ent/analyte"
	"github.com/labdex/labdex/ent/labresult"
	"github.com/labdex/labdex/ent/patientreport"
	"github.com/labdex/labdex/ent/predicate"
)

// LabResultUpdate is the builder for updating LabResult entities.
type LabResultUpdate struct {
	config
	hooks    []Hook
	mutation *LabResultMutation
}

// Where appends a list predicates to the LabResultUpdate builder.
func (_u *LabResultUpdate) Where(ps ...predicate.LabResult) *LabResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReportID sets the "report_id" field.
func (_u *LabResultUpdate) SetReportID(v string) *LabResultUpdate {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableReportID(v *string) *LabResultUpdate {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *LabResultUpdate) SetUserID(v string) *LabResultUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableUserID(v *string) *LabResultUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *LabResultUpdate) ClearUserID() *LabResultUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetPosition sets the "position" field.
func (_u *LabResultUpdate) SetPosition(v int) *LabResultUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillablePosition(v *int) *LabResultUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *LabResultUpdate) AddPosition(v int) *LabResultUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetParameterName sets the "parameter_name" field.
func (_u *LabResultUpdate) SetParameterName(v string) *LabResultUpdate {
	_u.mutation.SetParameterName(v)
	return _u
}

// SetNillableParameterName sets the "parameter_name" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableParameterName(v *string) *LabResultUpdate {
	if v != nil {
		_u.SetParameterName(*v)
	}
	return _u
}

// SetResultText sets the "result_text" field.
func (_u *LabResultUpdate) SetResultText(v string) *LabResultUpdate {
	_u.mutation.SetResultText(v)
	return _u
}

// SetNillableResultText sets the "result_text" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableResultText(v *string) *LabResultUpdate {
	if v != nil {
		_u.SetResultText(*v)
	}
	return _u
}

// SetNumericResult sets the "numeric_result" field.
func (_u *LabResultUpdate) SetNumericResult(v float64) *LabResultUpdate {
	_u.mutation.ResetNumericResult()
	_u.mutation.SetNumericResult(v)
	return _u
}

// SetNillableNumericResult sets the "numeric_result" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableNumericResult(v *float64) *LabResultUpdate {
	if v != nil {
		_u.SetNumericResult(*v)
	}
	return _u
}

// AddNumericResult adds value to the "numeric_result" field.
func (_u *LabResultUpdate) AddNumericResult(v float64) *LabResultUpdate {
	_u.mutation.AddNumericResult(v)
	return _u
}

// ClearNumericResult clears the value of the "numeric_result" field.
func (_u *LabResultUpdate) ClearNumericResult() *LabResultUpdate {
	_u.mutation.ClearNumericResult()
	return _u
}

// SetUnitRaw sets the "unit_raw" field.
func (_u *LabResultUpdate) SetUnitRaw(v string) *LabResultUpdate {
	_u.mutation.SetUnitRaw(v)
	return _u
}

// SetNillableUnitRaw sets the "unit_raw" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableUnitRaw(v *string) *LabResultUpdate {
	if v != nil {
		_u.SetUnitRaw(*v)
	}
	return _u
}

// SetUnitCanonical sets the "unit_canonical" field.
func (_u *LabResultUpdate) SetUnitCanonical(v string) *LabResultUpdate {
	_u.mutation.SetUnitCanonical(v)
	return _u
}

// SetNillableUnitCanonical sets the "unit_canonical" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableUnitCanonical(v *string) *LabResultUpdate {
	if v != nil {
		_u.SetUnitCanonical(*v)
	}
	return _u
}

// ClearUnitCanonical clears the value of the "unit_canonical" field.
func (_u *LabResultUpdate) ClearUnitCanonical() *LabResultUpdate {
	_u.mutation.ClearUnitCanonical()
	return _u
}

// SetRefLower sets the "ref_lower" field.
func (_u *LabResultUpdate) SetRefLower(v float64) *LabResultUpdate {
	_u.mutation.ResetRefLower()
	_u.mutation.SetRefLower(v)
	return _u
}

// SetNillableRefLower sets the "ref_lower" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableRefLower(v *float64) *LabResultUpdate {
	if v != nil {
		_u.SetRefLower(*v)
	}
	return _u
}

// AddRefLower adds value to the "ref_lower" field.
func (_u *LabResultUpdate) AddRefLower(v float64) *LabResultUpdate {
	_u.mutation.AddRefLower(v)
	return _u
}

// ClearRefLower clears the value of the "ref_lower" field.
func (_u *LabResultUpdate) ClearRefLower() *LabResultUpdate {
	_u.mutation.ClearRefLower()
	return _u
}

// SetRefLowerOperator sets the "ref_lower_operator" field.
func (_u *LabResultUpdate) SetRefLowerOperator(v string) *LabResultUpdate {
	_u.mutation.SetRefLowerOperator(v)
	return _u
}

// SetNillableRefLowerOperator sets the "ref_lower_operator" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableRefLowerOperator(v *string) *LabResultUpdate {
	if v != nil {
		_u.SetRefLowerOperator(*v)
	}
	return _u
}

// ClearRefLowerOperator clears the value of the "ref_lower_operator" field.
func (_u *LabResultUpdate) ClearRefLowerOperator() *LabResultUpdate {
	_u.mutation.ClearRefLowerOperator()
	return _u
}

// SetRefUpper sets the "ref_upper" field.
func (_u *LabResultUpdate) SetRefUpper(v float64) *LabResultUpdate {
	_u.mutation.ResetRefUpper()
	_u.mutation.SetRefUpper(v)
	return _u
}

// SetNillableRefUpper sets the "ref_upper" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableRefUpper(v *float64) *LabResultUpdate {
	if v != nil {
		_u.SetRefUpper(*v)
	}
	return _u
}

// AddRefUpper adds value to the "ref_upper" field.
func (_u *LabResultUpdate) AddRefUpper(v float64) *LabResultUpdate {
	_u.mutation.AddRefUpper(v)
	return _u
}

// ClearRefUpper clears the value of the "ref_upper" field.
func (_u *LabResultUpdate) ClearRefUpper() *LabResultUpdate {
	_u.mutation.ClearRefUpper()
	return _u
}

// SetRefUpperOperator sets the "ref_upper_operator" field.
func (_u *LabResultUpdate) SetRefUpperOperator(v string) *LabResultUpdate {
	_u.mutation.SetRefUpperOperator(v)
	return _u
}

// SetNillableRefUpperOperator sets the "ref_upper_operator" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableRefUpperOperator(v *string) *LabResultUpdate {
	if v != nil {
		_u.SetRefUpperOperator(*v)
	}
	return _u
}

// ClearRefUpperOperator clears the value of the "ref_upper_operator" field.
func (_u *LabResultUpdate) ClearRefUpperOperator() *LabResultUpdate {
	_u.mutation.ClearRefUpperOperator()
	return _u
}

// SetRefText sets the "ref_text" field.
func (_u *LabResultUpdate) SetRefText(v string) *LabResultUpdate {
	_u.mutation.SetRefText(v)
	return _u
}

// SetNillableRefText sets the "ref_text" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableRefText(v *string) *LabResultUpdate {
	if v != nil {
		_u.SetRefText(*v)
	}
	return _u
}

// ClearRefText clears the value of the "ref_text" field.
func (_u *LabResultUpdate) ClearRefText() *LabResultUpdate {
	_u.mutation.ClearRefText()
	return _u
}

// SetRefFullText sets the "ref_full_text" field.
func (_u *LabResultUpdate) SetRefFullText(v string) *LabResultUpdate {
	_u.mutation.SetRefFullText(v)
	return _u
}

// SetNillableRefFullText sets the "ref_full_text" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableRefFullText(v *string) *LabResultUpdate {
	if v != nil {
		_u.SetRefFullText(*v)
	}
	return _u
}

// ClearRefFullText clears the value of the "ref_full_text" field.
func (_u *LabResultUpdate) ClearRefFullText() *LabResultUpdate {
	_u.mutation.ClearRefFullText()
	return _u
}

// SetOutOfRange sets the "out_of_range" field.
func (_u *LabResultUpdate) SetOutOfRange(v bool) *LabResultUpdate {
	_u.mutation.SetOutOfRange(v)
	return _u
}

// SetNillableOutOfRange sets the "out_of_range" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableOutOfRange(v *bool) *LabResultUpdate {
	if v != nil {
		_u.SetOutOfRange(*v)
	}
	return _u
}

// SetSpecimenType sets the "specimen_type" field.
func (_u *LabResultUpdate) SetSpecimenType(v string) *LabResultUpdate {
	_u.mutation.SetSpecimenType(v)
	return _u
}

// SetNillableSpecimenType sets the "specimen_type" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableSpecimenType(v *string) *LabResultUpdate {
	if v != nil {
		_u.SetSpecimenType(*v)
	}
	return _u
}

// ClearSpecimenType clears the value of the "specimen_type" field.
func (_u *LabResultUpdate) ClearSpecimenType() *LabResultUpdate {
	_u.mutation.ClearSpecimenType()
	return _u
}

// SetAnalyteID sets the "analyte_id" field.
func (_u *LabResultUpdate) SetAnalyteID(v string) *LabResultUpdate {
	_u.mutation.SetAnalyteID(v)
	return _u
}

// SetNillableAnalyteID sets the "analyte_id" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableAnalyteID(v *string) *LabResultUpdate {
	if v != nil {
		_u.SetAnalyteID(*v)
	}
	return _u
}

// ClearAnalyteID clears the value of the "analyte_id" field.
func (_u *LabResultUpdate) ClearAnalyteID() *LabResultUpdate {
	_u.mutation.ClearAnalyteID()
	return _u
}

// SetMappingConfidence sets the "mapping_confidence" field.
func (_u *LabResultUpdate) SetMappingConfidence(v float64) *LabResultUpdate {
	_u.mutation.ResetMappingConfidence()
	_u.mutation.SetMappingConfidence(v)
	return _u
}

// SetNillableMappingConfidence sets the "mapping_confidence" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableMappingConfidence(v *float64) *LabResultUpdate {
	if v != nil {
		_u.SetMappingConfidence(*v)
	}
	return _u
}

// AddMappingConfidence adds value to the "mapping_confidence" field.
func (_u *LabResultUpdate) AddMappingConfidence(v float64) *LabResultUpdate {
	_u.mutation.AddMappingConfidence(v)
	return _u
}

// ClearMappingConfidence clears the value of the "mapping_confidence" field.
func (_u *LabResultUpdate) ClearMappingConfidence() *LabResultUpdate {
	_u.mutation.ClearMappingConfidence()
	return _u
}

// SetMappingSource sets the "mapping_source" field.
func (_u *LabResultUpdate) SetMappingSource(v string) *LabResultUpdate {
	_u.mutation.SetMappingSource(v)
	return _u
}

// SetNillableMappingSource sets the "mapping_source" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableMappingSource(v *string) *LabResultUpdate {
	if v != nil {
		_u.SetMappingSource(*v)
	}
	return _u
}

// ClearMappingSource clears the value of the "mapping_source" field.
func (_u *LabResultUpdate) ClearMappingSource() *LabResultUpdate {
	_u.mutation.ClearMappingSource()
	return _u
}

// SetMappedAt sets the "mapped_at" field.
func (_u *LabResultUpdate) SetMappedAt(v time.Time) *LabResultUpdate {
	_u.mutation.SetMappedAt(v)
	return _u
}

// SetNillableMappedAt sets the "mapped_at" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableMappedAt(v *time.Time) *LabResultUpdate {
	if v != nil {
		_u.SetMappedAt(*v)
	}
	return _u
}

// ClearMappedAt clears the value of the "mapped_at" field.
func (_u *LabResultUpdate) ClearMappedAt() *LabResultUpdate {
	_u.mutation.ClearMappedAt()
	return _u
}

// SetReport sets the "report" edge to the PatientReport entity.
func (_u *LabResultUpdate) SetReport(v *PatientReport) *LabResultUpdate {
	return _u.SetReportID(v.ID)
}

// SetAnalyte sets the "analyte" edge to the Analyte entity.
func (_u *LabResultUpdate) SetAnalyte(v *Analyte) *LabResultUpdate {
	return _u.SetAnalyteID(v.ID)
}

// Mutation returns the LabResultMutation object of the builder.
func (_u *LabResultUpdate) Mutation() *LabResultMutation {
	return _u.mutation
}

// ClearReport clears the "report" edge to the PatientReport entity.
func (_u *LabResultUpdate) ClearReport() *LabResultUpdate {
	_u.mutation.ClearReport()
	return _u
}

// ClearAnalyte clears the "analyte" edge to the Analyte entity.
func (_u *LabResultUpdate) ClearAnalyte() *LabResultUpdate {
	_u.mutation.ClearAnalyte()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LabResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LabResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LabResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LabResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LabResultUpdate) check() error {
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LabResult.report"`)
	}
	return nil
}

func (_u *LabResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(labresult.Table, labresult.Columns, sqlgraph.NewFieldSpec(labresult.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(labresult.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(labresult.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(labresult.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(labresult.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ParameterName(); ok {
		_spec.SetField(labresult.FieldParameterName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResultText(); ok {
		_spec.SetField(labresult.FieldResultText, field.TypeString, value)
	}
	if value, ok := _u.mutation.NumericResult(); ok {
		_spec.SetField(labresult.FieldNumericResult, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNumericResult(); ok {
		_spec.AddField(labresult.FieldNumericResult, field.TypeFloat64, value)
	}
	if _u.mutation.NumericResultCleared() {
		_spec.ClearField(labresult.FieldNumericResult, field.TypeFloat64)
	}
	if value, ok := _u.mutation.UnitRaw(); ok {
		_spec.SetField(labresult.FieldUnitRaw, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitCanonical(); ok {
		_spec.SetField(labresult.FieldUnitCanonical, field.TypeString, value)
	}
	if _u.mutation.UnitCanonicalCleared() {
		_spec.ClearField(labresult.FieldUnitCanonical, field.TypeString)
	}
	if value, ok := _u.mutation.RefLower(); ok {
		_spec.SetField(labresult.FieldRefLower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRefLower(); ok {
		_spec.AddField(labresult.FieldRefLower, field.TypeFloat64, value)
	}
	if _u.mutation.RefLowerCleared() {
		_spec.ClearField(labresult.FieldRefLower, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RefLowerOperator(); ok {
		_spec.SetField(labresult.FieldRefLowerOperator, field.TypeString, value)
	}
	if _u.mutation.RefLowerOperatorCleared() {
		_spec.ClearField(labresult.FieldRefLowerOperator, field.TypeString)
	}
	if value, ok := _u.mutation.RefUpper(); ok {
		_spec.SetField(labresult.FieldRefUpper, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRefUpper(); ok {
		_spec.AddField(labresult.FieldRefUpper, field.TypeFloat64, value)
	}
	if _u.mutation.RefUpperCleared() {
		_spec.ClearField(labresult.FieldRefUpper, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RefUpperOperator(); ok {
		_spec.SetField(labresult.FieldRefUpperOperator, field.TypeString, value)
	}
	if _u.mutation.RefUpperOperatorCleared() {
		_spec.ClearField(labresult.FieldRefUpperOperator, field.TypeString)
	}
	if value, ok := _u.mutation.RefText(); ok {
		_spec.SetField(labresult.FieldRefText, field.TypeString, value)
	}
	if _u.mutation.RefTextCleared() {
		_spec.ClearField(labresult.FieldRefText, field.TypeString)
	}
	if value, ok := _u.mutation.RefFullText(); ok {
		_spec.SetField(labresult.FieldRefFullText, field.TypeString, value)
	}
	if _u.mutation.RefFullTextCleared() {
		_spec.ClearField(labresult.FieldRefFullText, field.TypeString)
	}
	if value, ok := _u.mutation.OutOfRange(); ok {
		_spec.SetField(labresult.FieldOutOfRange, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SpecimenType(); ok {
		_spec.SetField(labresult.FieldSpecimenType, field.TypeString, value)
	}
	if _u.mutation.SpecimenTypeCleared() {
		_spec.ClearField(labresult.FieldSpecimenType, field.TypeString)
	}
	if value, ok := _u.mutation.MappingConfidence(); ok {
		_spec.SetField(labresult.FieldMappingConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMappingConfidence(); ok {
		_spec.AddField(labresult.FieldMappingConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.MappingConfidenceCleared() {
		_spec.ClearField(labresult.FieldMappingConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MappingSource(); ok {
		_spec.SetField(labresult.FieldMappingSource, field.TypeString, value)
	}
	if _u.mutation.MappingSourceCleared() {
		_spec.ClearField(labresult.FieldMappingSource, field.TypeString)
	}
	if value, ok := _u.mutation.MappedAt(); ok {
		_spec.SetField(labresult.FieldMappedAt, field.TypeTime, value)
	}
	if _u.mutation.MappedAtCleared() {
		_spec.ClearField(labresult.FieldMappedAt, field.TypeTime)
	}
	if _u.mutation.ReportCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   labresult.ReportTable,
			Columns: []string{labresult.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patientreport.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   labresult.ReportTable,
			Columns: []string{labresult.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patientreport.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnalyteCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   labresult.AnalyteTable,
			Columns: []string{labresult.AnalyteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analyte.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalyteIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   labresult.AnalyteTable,
			Columns: []string{labresult.AnalyteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analyte.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{labresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LabResultUpdateOne is the builder for updating a single LabResult entity.
type LabResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LabResultMutation
}

// SetReportID sets the "report_id" field.
func (_u *LabResultUpdateOne) SetReportID(v string) *LabResultUpdateOne {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableReportID(v *string) *LabResultUpdateOne {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *LabResultUpdateOne) SetUserID(v string) *LabResultUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableUserID(v *string) *LabResultUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *LabResultUpdateOne) ClearUserID() *LabResultUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetPosition sets the "position" field.
func (_u *LabResultUpdateOne) SetPosition(v int) *LabResultUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillablePosition(v *int) *LabResultUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *LabResultUpdateOne) AddPosition(v int) *LabResultUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetParameterName sets the "parameter_name" field.
func (_u *LabResultUpdateOne) SetParameterName(v string) *LabResultUpdateOne {
	_u.mutation.SetParameterName(v)
	return _u
}

// SetNillableParameterName sets the "parameter_name" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableParameterName(v *string) *LabResultUpdateOne {
	if v != nil {
		_u.SetParameterName(*v)
	}
	return _u
}

// SetResultText sets the "result_text" field.
func (_u *LabResultUpdateOne) SetResultText(v string) *LabResultUpdateOne {
	_u.mutation.SetResultText(v)
	return _u
}

// SetNillableResultText sets the "result_text" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableResultText(v *string) *LabResultUpdateOne {
	if v != nil {
		_u.SetResultText(*v)
	}
	return _u
}

// SetNumericResult sets the "numeric_result" field.
func (_u *LabResultUpdateOne) SetNumericResult(v float64) *LabResultUpdateOne {
	_u.mutation.ResetNumericResult()
	_u.mutation.SetNumericResult(v)
	return _u
}

// SetNillableNumericResult sets the "numeric_result" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableNumericResult(v *float64) *LabResultUpdateOne {
	if v != nil {
		_u.SetNumericResult(*v)
	}
	return _u
}

// AddNumericResult adds value to the "numeric_result" field.
func (_u *LabResultUpdateOne) AddNumericResult(v float64) *LabResultUpdateOne {
	_u.mutation.AddNumericResult(v)
	return _u
}

// ClearNumericResult clears the value of the "numeric_result" field.
func (_u *LabResultUpdateOne) ClearNumericResult() *LabResultUpdateOne {
	_u.mutation.ClearNumericResult()
	return _u
}

// SetUnitRaw sets the "unit_raw" field.
func (_u *LabResultUpdateOne) SetUnitRaw(v string) *LabResultUpdateOne {
	_u.mutation.SetUnitRaw(v)
	return _u
}

// SetNillableUnitRaw sets the "unit_raw" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableUnitRaw(v *string) *LabResultUpdateOne {
	if v != nil {
		_u.SetUnitRaw(*v)
	}
	return _u
}

// SetUnitCanonical sets the "unit_canonical" field.
func (_u *LabResultUpdateOne) SetUnitCanonical(v string) *LabResultUpdateOne {
	_u.mutation.SetUnitCanonical(v)
	return _u
}

// SetNillableUnitCanonical sets the "unit_canonical" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableUnitCanonical(v *string) *LabResultUpdateOne {
	if v != nil {
		_u.SetUnitCanonical(*v)
	}
	return _u
}

// ClearUnitCanonical clears the value of the "unit_canonical" field.
func (_u *LabResultUpdateOne) ClearUnitCanonical() *LabResultUpdateOne {
	_u.mutation.ClearUnitCanonical()
	return _u
}

// SetRefLower sets the "ref_lower" field.
func (_u *LabResultUpdateOne) SetRefLower(v float64) *LabResultUpdateOne {
	_u.mutation.ResetRefLower()
	_u.mutation.SetRefLower(v)
	return _u
}

// SetNillableRefLower sets the "ref_lower" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableRefLower(v *float64) *LabResultUpdateOne {
	if v != nil {
		_u.SetRefLower(*v)
	}
	return _u
}

// AddRefLower adds value to the "ref_lower" field.
func (_u *LabResultUpdateOne) AddRefLower(v float64) *LabResultUpdateOne {
	_u.mutation.AddRefLower(v)
	return _u
}

// ClearRefLower clears the value of the "ref_lower" field.
func (_u *LabResultUpdateOne) ClearRefLower() *LabResultUpdateOne {
	_u.mutation.ClearRefLower()
	return _u
}

// SetRefLowerOperator sets the "ref_lower_operator" field.
func (_u *LabResultUpdateOne) SetRefLowerOperator(v string) *LabResultUpdateOne {
	_u.mutation.SetRefLowerOperator(v)
	return _u
}

// SetNillableRefLowerOperator sets the "ref_lower_operator" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableRefLowerOperator(v *string) *LabResultUpdateOne {
	if v != nil {
		_u.SetRefLowerOperator(*v)
	}
	return _u
}

// ClearRefLowerOperator clears the value of the "ref_lower_operator" field.
func (_u *LabResultUpdateOne) ClearRefLowerOperator() *LabResultUpdateOne {
	_u.mutation.ClearRefLowerOperator()
	return _u
}

// SetRefUpper sets the "ref_upper" field.
func (_u *LabResultUpdateOne) SetRefUpper(v float64) *LabResultUpdateOne {
	_u.mutation.ResetRefUpper()
	_u.mutation.SetRefUpper(v)
	return _u
}

// SetNillableRefUpper sets the "ref_upper" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableRefUpper(v *float64) *LabResultUpdateOne {
	if v != nil {
		_u.SetRefUpper(*v)
	}
	return _u
}

// AddRefUpper adds value to the "ref_upper" field.
func (_u *LabResultUpdateOne) AddRefUpper(v float64) *LabResultUpdateOne {
	_u.mutation.AddRefUpper(v)
	return _u
}

// ClearRefUpper clears the value of the "ref_upper" field.
func (_u *LabResultUpdateOne) ClearRefUpper() *LabResultUpdateOne {
	_u.mutation.ClearRefUpper()
	return _u
}

// SetRefUpperOperator sets the "ref_upper_operator" field.
func (_u *LabResultUpdateOne) SetRefUpperOperator(v string) *LabResultUpdateOne {
	_u.mutation.SetRefUpperOperator(v)
	return _u
}

// SetNillableRefUpperOperator sets the "ref_upper_operator" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableRefUpperOperator(v *string) *LabResultUpdateOne {
	if v != nil {
		_u.SetRefUpperOperator(*v)
	}
	return _u
}

// ClearRefUpperOperator clears the value of the "ref_upper_operator" field.
func (_u *LabResultUpdateOne) ClearRefUpperOperator() *LabResultUpdateOne {
	_u.mutation.ClearRefUpperOperator()
	return _u
}

// SetRefText sets the "ref_text" field.
func (_u *LabResultUpdateOne) SetRefText(v string) *LabResultUpdateOne {
	_u.mutation.SetRefText(v)
	return _u
}

// SetNillableRefText sets the "ref_text" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableRefText(v *string) *LabResultUpdateOne {
	if v != nil {
		_u.SetRefText(*v)
	}
	return _u
}

// ClearRefText clears the value of the "ref_text" field.
func (_u *LabResultUpdateOne) ClearRefText() *LabResultUpdateOne {
	_u.mutation.ClearRefText()
	return _u
}

// SetRefFullText sets the "ref_full_text" field.
func (_u *LabResultUpdateOne) SetRefFullText(v string) *LabResultUpdateOne {
	_u.mutation.SetRefFullText(v)
	return _u
}

// SetNillableRefFullText sets the "ref_full_text" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableRefFullText(v *string) *LabResultUpdateOne {
	if v != nil {
		_u.SetRefFullText(*v)
	}
	return _u
}

// ClearRefFullText clears the value of the "ref_full_text" field.
func (_u *LabResultUpdateOne) ClearRefFullText() *LabResultUpdateOne {
	_u.mutation.ClearRefFullText()
	return _u
}

// SetOutOfRange sets the "out_of_range" field.
func (_u *LabResultUpdateOne) SetOutOfRange(v bool) *LabResultUpdateOne {
	_u.mutation.SetOutOfRange(v)
	return _u
}

// SetNillableOutOfRange sets the "out_of_range" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableOutOfRange(v *bool) *LabResultUpdateOne {
	if v != nil {
		_u.SetOutOfRange(*v)
	}
	return _u
}

// SetSpecimenType sets the "specimen_type" field.
func (_u *LabResultUpdateOne) SetSpecimenType(v string) *LabResultUpdateOne {
	_u.mutation.SetSpecimenType(v)
	return _u
}

// SetNillableSpecimenType sets the "specimen_type" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableSpecimenType(v *string) *LabResultUpdateOne {
	if v != nil {
		_u.SetSpecimenType(*v)
	}
	return _u
}

// ClearSpecimenType clears the value of the "specimen_type" field.
func (_u *LabResultUpdateOne) ClearSpecimenType() *LabResultUpdateOne {
	_u.mutation.ClearSpecimenType()
	return _u
}

// SetAnalyteID sets the "analyte_id" field.
func (_u *LabResultUpdateOne) SetAnalyteID(v string) *LabResultUpdateOne {
	_u.mutation.SetAnalyteID(v)
	return _u
}

// SetNillableAnalyteID sets the "analyte_id" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableAnalyteID(v *string) *LabResultUpdateOne {
	if v != nil {
		_u.SetAnalyteID(*v)
	}
	return _u
}

// ClearAnalyteID clears the value of the "analyte_id" field.
func (_u *LabResultUpdateOne) ClearAnalyteID() *LabResultUpdateOne {
	_u.mutation.ClearAnalyteID()
	return _u
}

// SetMappingConfidence sets the "mapping_confidence" field.
func (_u *LabResultUpdateOne) SetMappingConfidence(v float64) *LabResultUpdateOne {
	_u.mutation.ResetMappingConfidence()
	_u.mutation.SetMappingConfidence(v)
	return _u
}

// SetNillableMappingConfidence sets the "mapping_confidence" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableMappingConfidence(v *float64) *LabResultUpdateOne {
	if v != nil {
		_u.SetMappingConfidence(*v)
	}
	return _u
}

// AddMappingConfidence adds value to the "mapping_confidence" field.
func (_u *LabResultUpdateOne) AddMappingConfidence(v float64) *LabResultUpdateOne {
	_u.mutation.AddMappingConfidence(v)
	return _u
}

// ClearMappingConfidence clears the value of the "mapping_confidence" field.
func (_u *LabResultUpdateOne) ClearMappingConfidence() *LabResultUpdateOne {
	_u.mutation.ClearMappingConfidence()
	return _u
}

// SetMappingSource sets the "mapping_source" field.
func (_u *LabResultUpdateOne) SetMappingSource(v string) *LabResultUpdateOne {
	_u.mutation.SetMappingSource(v)
	return _u
}

// SetNillableMappingSource sets the "mapping_source" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableMappingSource(v *string) *LabResultUpdateOne {
	if v != nil {
		_u.SetMappingSource(*v)
	}
	return _u
}

// ClearMappingSource clears the value of the "mapping_source" field.
func (_u *LabResultUpdateOne) ClearMappingSource() *LabResultUpdateOne {
	_u.mutation.ClearMappingSource()
	return _u
}

// SetMappedAt sets the "mapped_at" field.
func (_u *LabResultUpdateOne) SetMappedAt(v time.Time) *LabResultUpdateOne {
	_u.mutation.SetMappedAt(v)
	return _u
}

// SetNillableMappedAt sets the "mapped_at" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableMappedAt(v *time.Time) *LabResultUpdateOne {
	if v != nil {
		_u.SetMappedAt(*v)
	}
	return _u
}

// ClearMappedAt clears the value of the "mapped_at" field.
func (_u *LabResultUpdateOne) ClearMappedAt() *LabResultUpdateOne {
	_u.mutation.ClearMappedAt()
	return _u
}

// SetReport sets the "report" edge to the PatientReport entity.
func (_u *LabResultUpdateOne) SetReport(v *PatientReport) *LabResultUpdateOne {
	return _u.SetReportID(v.ID)
}

// SetAnalyte sets the "analyte" edge to the Analyte entity.
func (_u *LabResultUpdateOne) SetAnalyte(v *Analyte) *LabResultUpdateOne {
	return _u.SetAnalyteID(v.ID)
}

// Mutation returns the LabResultMutation object of the builder.
func (_u *LabResultUpdateOne) Mutation() *LabResultMutation {
	return _u.mutation
}

// ClearReport clears the "report" edge to the PatientReport entity.
func (_u *LabResultUpdateOne) ClearReport() *LabResultUpdateOne {
	_u.mutation.ClearReport()
	return _u
}

// ClearAnalyte clears the "analyte" edge to the Analyte entity.
func (_u *LabResultUpdateOne) ClearAnalyte() *LabResultUpdateOne {
	_u.mutation.ClearAnalyte()
	return _u
}

// Where appends a list predicates to the LabResultUpdate builder.
func (_u *LabResultUpdateOne) Where(ps ...predicate.LabResult) *LabResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LabResultUpdateOne) Select(field string, fields ...string) *LabResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LabResult entity.
func (_u *LabResultUpdateOne) Save(ctx context.Context) (*LabResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LabResultUpdateOne) SaveX(ctx context.Context) *LabResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LabResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LabResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LabResultUpdateOne) check() error {
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LabResult.report"`)
	}
	return nil
}

func (_u *LabResultUpdateOne) sqlSave(ctx context.Context) (_node *LabResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(labresult.Table, labresult.Columns, sqlgraph.NewFieldSpec(labresult.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LabResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, labresult.FieldID)
		for _, f := range fields {
			if !labresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != labresult.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(labresult.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(labresult.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(labresult.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(labresult.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ParameterName(); ok {
		_spec.SetField(labresult.FieldParameterName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResultText(); ok {
		_spec.SetField(labresult.FieldResultText, field.TypeString, value)
	}
	if value, ok := _u.mutation.NumericResult(); ok {
		_spec.SetField(labresult.FieldNumericResult, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNumericResult(); ok {
		_spec.AddField(labresult.FieldNumericResult, field.TypeFloat64, value)
	}
	if _u.mutation.NumericResultCleared() {
		_spec.ClearField(labresult.FieldNumericResult, field.TypeFloat64)
	}
	if value, ok := _u.mutation.UnitRaw(); ok {
		_spec.SetField(labresult.FieldUnitRaw, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitCanonical(); ok {
		_spec.SetField(labresult.FieldUnitCanonical, field.TypeString, value)
	}
	if _u.mutation.UnitCanonicalCleared() {
		_spec.ClearField(labresult.FieldUnitCanonical, field.TypeString)
	}
	if value, ok := _u.mutation.RefLower(); ok {
		_spec.SetField(labresult.FieldRefLower, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRefLower(); ok {
		_spec.AddField(labresult.FieldRefLower, field.TypeFloat64, value)
	}
	if _u.mutation.RefLowerCleared() {
		_spec.ClearField(labresult.FieldRefLower, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RefLowerOperator(); ok {
		_spec.SetField(labresult.FieldRefLowerOperator, field.TypeString, value)
	}
	if _u.mutation.RefLowerOperatorCleared() {
		_spec.ClearField(labresult.FieldRefLowerOperator, field.TypeString)
	}
	if value, ok := _u.mutation.RefUpper(); ok {
		_spec.SetField(labresult.FieldRefUpper, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRefUpper(); ok {
		_spec.AddField(labresult.FieldRefUpper, field.TypeFloat64, value)
	}
	if _u.mutation.RefUpperCleared() {
		_spec.ClearField(labresult.FieldRefUpper, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RefUpperOperator(); ok {
		_spec.SetField(labresult.FieldRefUpperOperator, field.TypeString, value)
	}
	if _u.mutation.RefUpperOperatorCleared() {
		_spec.ClearField(labresult.FieldRefUpperOperator, field.TypeString)
	}
	if value, ok := _u.mutation.RefText(); ok {
		_spec.SetField(labresult.FieldRefText, field.TypeString, value)
	}
	if _u.mutation.RefTextCleared() {
		_spec.ClearField(labresult.FieldRefText, field.TypeString)
	}
	if value, ok := _u.mutation.RefFullText(); ok {
		_spec.SetField(labresult.FieldRefFullText, field.TypeString, value)
	}
	if _u.mutation.RefFullTextCleared() {
		_spec.ClearField(labresult.FieldRefFullText, field.TypeString)
	}
	if value, ok := _u.mutation.OutOfRange(); ok {
		_spec.SetField(labresult.FieldOutOfRange, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SpecimenType(); ok {
		_spec.SetField(labresult.FieldSpecimenType, field.TypeString, value)
	}
	if _u.mutation.SpecimenTypeCleared() {
		_spec.ClearField(labresult.FieldSpecimenType, field.TypeString)
	}
	if value, ok := _u.mutation.MappingConfidence(); ok {
		_spec.SetField(labresult.FieldMappingConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMappingConfidence(); ok {
		_spec.AddField(labresult.FieldMappingConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.MappingConfidenceCleared() {
		_spec.ClearField(labresult.FieldMappingConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MappingSource(); ok {
		_spec.SetField(labresult.FieldMappingSource, field.TypeString, value)
	}
	if _u.mutation.MappingSourceCleared() {
		_spec.ClearField(labresult.FieldMappingSource, field.TypeString)
	}
	if value, ok := _u.mutation.MappedAt(); ok {
		_spec.SetField(labresult.FieldMappedAt, field.TypeTime, value)
	}
	if _u.mutation.MappedAtCleared() {
		_spec.ClearField(labresult.FieldMappedAt, field.TypeTime)
	}
	if _u.mutation.ReportCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   labresult.ReportTable,
			Columns: []string{labresult.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patientreport.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   labresult.ReportTable,
			Columns: []string{labresult.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patientreport.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnalyteCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   labresult.AnalyteTable,
			Columns: []string{labresult.AnalyteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analyte.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalyteIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   labresult.AnalyteTable,
			Columns: []string{labresult.AnalyteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analyte.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &LabResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{labresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
