// Code generated by ent, DO NOT EDIT.

package labresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/labdex/labdex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContainsFold(FieldID, id))
}

// ReportID applies equality check predicate on the "report_id" field. It's identical to ReportIDEQ.
func ReportID(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldReportID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldUserID, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldPosition, v))
}

// ParameterName applies equality check predicate on the "parameter_name" field. It's identical to ParameterNameEQ.
func ParameterName(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldParameterName, v))
}

// ResultText applies equality check predicate on the "result_text" field. It's identical to ResultTextEQ.
func ResultText(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldResultText, v))
}

// NumericResult applies equality check predicate on the "numeric_result" field. It's identical to NumericResultEQ.
func NumericResult(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldNumericResult, v))
}

// UnitRaw applies equality check predicate on the "unit_raw" field. It's identical to UnitRawEQ.
func UnitRaw(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldUnitRaw, v))
}

// UnitCanonical applies equality check predicate on the "unit_canonical" field. It's identical to UnitCanonicalEQ.
func UnitCanonical(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldUnitCanonical, v))
}

// RefLower applies equality check predicate on the "ref_lower" field. It's identical to RefLowerEQ.
func RefLower(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldRefLower, v))
}

// RefLowerOperator applies equality check predicate on the "ref_lower_operator" field. It's identical to RefLowerOperatorEQ.
func RefLowerOperator(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldRefLowerOperator, v))
}

// RefUpper applies equality check predicate on the "ref_upper" field. It's identical to RefUpperEQ.
func RefUpper(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldRefUpper, v))
}

// RefUpperOperator applies equality check predicate on the "ref_upper_operator" field. It's identical to RefUpperOperatorEQ.
func RefUpperOperator(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldRefUpperOperator, v))
}

// RefText applies equality check predicate on the "ref_text" field. It's identical to RefTextEQ.
func RefText(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldRefText, v))
}

// RefFullText applies equality check predicate on the "ref_full_text" field. It's identical to RefFullTextEQ.
func RefFullText(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldRefFullText, v))
}

// OutOfRange applies equality check predicate on the "out_of_range" field. It's identical to OutOfRangeEQ.
func OutOfRange(v bool) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldOutOfRange, v))
}

// SpecimenType applies equality check predicate on the "specimen_type" field. It's identical to SpecimenTypeEQ.
func SpecimenType(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldSpecimenType, v))
}

// AnalyteID applies equality check predicate on the "analyte_id" field. It's identical to AnalyteIDEQ.
func AnalyteID(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldAnalyteID, v))
}

// MappingConfidence applies equality check predicate on the "mapping_confidence" field. It's identical to MappingConfidenceEQ.
func MappingConfidence(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldMappingConfidence, v))
}

// MappingSource applies equality check predicate on the "mapping_source" field. It's identical to MappingSourceEQ.
func MappingSource(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldMappingSource, v))
}

// MappedAt applies equality check predicate on the "mapped_at" field. It's identical to MappedAtEQ.
func MappedAt(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldMappedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldCreatedAt, v))
}

// ReportIDEQ applies the EQ predicate on the "report_id" field.
func ReportIDEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldReportID, v))
}

// ReportIDNEQ applies the NEQ predicate on the "report_id" field.
func ReportIDNEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldReportID, v))
}

// ReportIDIn applies the In predicate on the "report_id" field.
func ReportIDIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldReportID, vs...))
}

// ReportIDNotIn applies the NotIn predicate on the "report_id" field.
func ReportIDNotIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldReportID, vs...))
}

// ReportIDGT applies the GT predicate on the "report_id" field.
func ReportIDGT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldReportID, v))
}

// ReportIDGTE applies the GTE predicate on the "report_id" field.
func ReportIDGTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldReportID, v))
}

// ReportIDLT applies the LT predicate on the "report_id" field.
func ReportIDLT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldReportID, v))
}

// ReportIDLTE applies the LTE predicate on the "report_id" field.
func ReportIDLTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldReportID, v))
}

// ReportIDContains applies the Contains predicate on the "report_id" field.
func ReportIDContains(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContains(FieldReportID, v))
}

// ReportIDHasPrefix applies the HasPrefix predicate on the "report_id" field.
func ReportIDHasPrefix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasPrefix(FieldReportID, v))
}

// ReportIDHasSuffix applies the HasSuffix predicate on the "report_id" field.
func ReportIDHasSuffix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasSuffix(FieldReportID, v))
}

// ReportIDEqualFold applies the EqualFold predicate on the "report_id" field.
func ReportIDEqualFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEqualFold(FieldReportID, v))
}

// ReportIDContainsFold applies the ContainsFold predicate on the "report_id" field.
func ReportIDContainsFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContainsFold(FieldReportID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContainsFold(FieldUserID, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldPosition, v))
}

// ParameterNameEQ applies the EQ predicate on the "parameter_name" field.
func ParameterNameEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldParameterName, v))
}

// ParameterNameNEQ applies the NEQ predicate on the "parameter_name" field.
func ParameterNameNEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldParameterName, v))
}

// ParameterNameIn applies the In predicate on the "parameter_name" field.
func ParameterNameIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldParameterName, vs...))
}

// ParameterNameNotIn applies the NotIn predicate on the "parameter_name" field.
func ParameterNameNotIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldParameterName, vs...))
}

// ParameterNameGT applies the GT predicate on the "parameter_name" field.
func ParameterNameGT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldParameterName, v))
}

// ParameterNameGTE applies the GTE predicate on the "parameter_name" field.
func ParameterNameGTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldParameterName, v))
}

// ParameterNameLT applies the LT predicate on the "parameter_name" field.
func ParameterNameLT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldParameterName, v))
}

// ParameterNameLTE applies the LTE predicate on the "parameter_name" field.
func ParameterNameLTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldParameterName, v))
}

// ParameterNameContains applies the Contains predicate on the "parameter_name" field.
func ParameterNameContains(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContains(FieldParameterName, v))
}

// ParameterNameHasPrefix applies the HasPrefix predicate on the "parameter_name" field.
func ParameterNameHasPrefix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasPrefix(FieldParameterName, v))
}

// ParameterNameHasSuffix applies the HasSuffix predicate on the "parameter_name" field.
func ParameterNameHasSuffix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasSuffix(FieldParameterName, v))
}

// ParameterNameEqualFold applies the EqualFold predicate on the "parameter_name" field.
func ParameterNameEqualFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEqualFold(FieldParameterName, v))
}

// ParameterNameContainsFold applies the ContainsFold predicate on the "parameter_name" field.
func ParameterNameContainsFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContainsFold(FieldParameterName, v))
}

// ResultTextEQ applies the EQ predicate on the "result_text" field.
func ResultTextEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldResultText, v))
}

// ResultTextNEQ applies the NEQ predicate on the "result_text" field.
func ResultTextNEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldResultText, v))
}

// ResultTextIn applies the In predicate on the "result_text" field.
func ResultTextIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldResultText, vs...))
}

// ResultTextNotIn applies the NotIn predicate on the "result_text" field.
func ResultTextNotIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldResultText, vs...))
}

// ResultTextGT applies the GT predicate on the "result_text" field.
func ResultTextGT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldResultText, v))
}

// ResultTextGTE applies the GTE predicate on the "result_text" field.
func ResultTextGTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldResultText, v))
}

// ResultTextLT applies the LT predicate on the "result_text" field.
func ResultTextLT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldResultText, v))
}

// ResultTextLTE applies the LTE predicate on the "result_text" field.
func ResultTextLTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldResultText, v))
}

// ResultTextContains applies the Contains predicate on the "result_text" field.
func ResultTextContains(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContains(FieldResultText, v))
}

// ResultTextHasPrefix applies the HasPrefix predicate on the "result_text" field.
func ResultTextHasPrefix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasPrefix(FieldResultText, v))
}

// ResultTextHasSuffix applies the HasSuffix predicate on the "result_text" field.
func ResultTextHasSuffix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasSuffix(FieldResultText, v))
}

// ResultTextEqualFold applies the EqualFold predicate on the "result_text" field.
func ResultTextEqualFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEqualFold(FieldResultText, v))
}

// ResultTextContainsFold applies the ContainsFold predicate on the "result_text" field.
func ResultTextContainsFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContainsFold(FieldResultText, v))
}

// NumericResultEQ applies the EQ predicate on the "numeric_result" field.
func NumericResultEQ(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldNumericResult, v))
}

// NumericResultNEQ applies the NEQ predicate on the "numeric_result" field.
func NumericResultNEQ(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldNumericResult, v))
}

// NumericResultIn applies the In predicate on the "numeric_result" field.
func NumericResultIn(vs ...float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldNumericResult, vs...))
}

// NumericResultNotIn applies the NotIn predicate on the "numeric_result" field.
func NumericResultNotIn(vs ...float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldNumericResult, vs...))
}

// NumericResultGT applies the GT predicate on the "numeric_result" field.
func NumericResultGT(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldNumericResult, v))
}

// NumericResultGTE applies the GTE predicate on the "numeric_result" field.
func NumericResultGTE(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldNumericResult, v))
}

// NumericResultLT applies the LT predicate on the "numeric_result" field.
func NumericResultLT(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldNumericResult, v))
}

// NumericResultLTE applies the LTE predicate on the "numeric_result" field.
func NumericResultLTE(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldNumericResult, v))
}

// NumericResultIsNil applies the IsNil predicate on the "numeric_result" field.
func NumericResultIsNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldIsNull(FieldNumericResult))
}

// NumericResultNotNil applies the NotNil predicate on the "numeric_result" field.
func NumericResultNotNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldNotNull(FieldNumericResult))
}

// UnitRawEQ applies the EQ predicate on the "unit_raw" field.
func UnitRawEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldUnitRaw, v))
}

// UnitRawNEQ applies the NEQ predicate on the "unit_raw" field.
func UnitRawNEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldUnitRaw, v))
}

// UnitRawIn applies the In predicate on the "unit_raw" field.
func UnitRawIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldUnitRaw, vs...))
}

// UnitRawNotIn applies the NotIn predicate on the "unit_raw" field.
func UnitRawNotIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldUnitRaw, vs...))
}

// UnitRawGT applies the GT predicate on the "unit_raw" field.
func UnitRawGT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldUnitRaw, v))
}

// UnitRawGTE applies the GTE predicate on the "unit_raw" field.
func UnitRawGTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldUnitRaw, v))
}

// UnitRawLT applies the LT predicate on the "unit_raw" field.
func UnitRawLT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldUnitRaw, v))
}

// UnitRawLTE applies the LTE predicate on the "unit_raw" field.
func UnitRawLTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldUnitRaw, v))
}

// UnitRawContains applies the Contains predicate on the "unit_raw" field.
func UnitRawContains(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContains(FieldUnitRaw, v))
}

// UnitRawHasPrefix applies the HasPrefix predicate on the "unit_raw" field.
func UnitRawHasPrefix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasPrefix(FieldUnitRaw, v))
}

// UnitRawHasSuffix applies the HasSuffix predicate on the "unit_raw" field.
func UnitRawHasSuffix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasSuffix(FieldUnitRaw, v))
}

// UnitRawEqualFold applies the EqualFold predicate on the "unit_raw" field.
func UnitRawEqualFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEqualFold(FieldUnitRaw, v))
}

// UnitRawContainsFold applies the ContainsFold predicate on the "unit_raw" field.
func UnitRawContainsFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContainsFold(FieldUnitRaw, v))
}

// UnitCanonicalEQ applies the EQ predicate on the "unit_canonical" field.
func UnitCanonicalEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldUnitCanonical, v))
}

// UnitCanonicalNEQ applies the NEQ predicate on the "unit_canonical" field.
func UnitCanonicalNEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldUnitCanonical, v))
}

// UnitCanonicalIn applies the In predicate on the "unit_canonical" field.
func UnitCanonicalIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldUnitCanonical, vs...))
}

// UnitCanonicalNotIn applies the NotIn predicate on the "unit_canonical" field.
func UnitCanonicalNotIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldUnitCanonical, vs...))
}

// UnitCanonicalGT applies the GT predicate on the "unit_canonical" field.
func UnitCanonicalGT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldUnitCanonical, v))
}

// UnitCanonicalGTE applies the GTE predicate on the "unit_canonical" field.
func UnitCanonicalGTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldUnitCanonical, v))
}

// UnitCanonicalLT applies the LT predicate on the "unit_canonical" field.
func UnitCanonicalLT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldUnitCanonical, v))
}

// UnitCanonicalLTE applies the LTE predicate on the "unit_canonical" field.
func UnitCanonicalLTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldUnitCanonical, v))
}

// UnitCanonicalContains applies the Contains predicate on the "unit_canonical" field.
func UnitCanonicalContains(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContains(FieldUnitCanonical, v))
}

// UnitCanonicalHasPrefix applies the HasPrefix predicate on the "unit_canonical" field.
func UnitCanonicalHasPrefix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasPrefix(FieldUnitCanonical, v))
}

// UnitCanonicalHasSuffix applies the HasSuffix predicate on the "unit_canonical" field.
func UnitCanonicalHasSuffix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasSuffix(FieldUnitCanonical, v))
}

// UnitCanonicalIsNil applies the IsNil predicate on the "unit_canonical" field.
func UnitCanonicalIsNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldIsNull(FieldUnitCanonical))
}

// UnitCanonicalNotNil applies the NotNil predicate on the "unit_canonical" field.
func UnitCanonicalNotNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldNotNull(FieldUnitCanonical))
}

// UnitCanonicalEqualFold applies the EqualFold predicate on the "unit_canonical" field.
func UnitCanonicalEqualFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEqualFold(FieldUnitCanonical, v))
}

// UnitCanonicalContainsFold applies the ContainsFold predicate on the "unit_canonical" field.
func UnitCanonicalContainsFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContainsFold(FieldUnitCanonical, v))
}

// RefLowerEQ applies the EQ predicate on the "ref_lower" field.
func RefLowerEQ(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldRefLower, v))
}

// RefLowerNEQ applies the NEQ predicate on the "ref_lower" field.
func RefLowerNEQ(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldRefLower, v))
}

// RefLowerIn applies the In predicate on the "ref_lower" field.
func RefLowerIn(vs ...float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldRefLower, vs...))
}

// RefLowerNotIn applies the NotIn predicate on the "ref_lower" field.
func RefLowerNotIn(vs ...float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldRefLower, vs...))
}

// RefLowerGT applies the GT predicate on the "ref_lower" field.
func RefLowerGT(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldRefLower, v))
}

// RefLowerGTE applies the GTE predicate on the "ref_lower" field.
func RefLowerGTE(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldRefLower, v))
}

// RefLowerLT applies the LT predicate on the "ref_lower" field.
func RefLowerLT(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldRefLower, v))
}

// RefLowerLTE applies the LTE predicate on the "ref_lower" field.
func RefLowerLTE(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldRefLower, v))
}

// RefLowerIsNil applies the IsNil predicate on the "ref_lower" field.
func RefLowerIsNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldIsNull(FieldRefLower))
}

// RefLowerNotNil applies the NotNil predicate on the "ref_lower" field.
func RefLowerNotNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldNotNull(FieldRefLower))
}

// RefLowerOperatorEQ applies the EQ predicate on the "ref_lower_operator" field.
func RefLowerOperatorEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldRefLowerOperator, v))
}

// RefLowerOperatorNEQ applies the NEQ predicate on the "ref_lower_operator" field.
func RefLowerOperatorNEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldRefLowerOperator, v))
}

// RefLowerOperatorIn applies the In predicate on the "ref_lower_operator" field.
func RefLowerOperatorIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldRefLowerOperator, vs...))
}

// RefLowerOperatorNotIn applies the NotIn predicate on the "ref_lower_operator" field.
func RefLowerOperatorNotIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldRefLowerOperator, vs...))
}

// RefLowerOperatorGT applies the GT predicate on the "ref_lower_operator" field.
func RefLowerOperatorGT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldRefLowerOperator, v))
}

// RefLowerOperatorGTE applies the GTE predicate on the "ref_lower_operator" field.
func RefLowerOperatorGTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldRefLowerOperator, v))
}

// RefLowerOperatorLT applies the LT predicate on the "ref_lower_operator" field.
func RefLowerOperatorLT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldRefLowerOperator, v))
}

// RefLowerOperatorLTE applies the LTE predicate on the "ref_lower_operator" field.
func RefLowerOperatorLTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldRefLowerOperator, v))
}

// RefLowerOperatorContains applies the Contains predicate on the "ref_lower_operator" field.
func RefLowerOperatorContains(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContains(FieldRefLowerOperator, v))
}

// RefLowerOperatorHasPrefix applies the HasPrefix predicate on the "ref_lower_operator" field.
func RefLowerOperatorHasPrefix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasPrefix(FieldRefLowerOperator, v))
}

// RefLowerOperatorHasSuffix applies the HasSuffix predicate on the "ref_lower_operator" field.
func RefLowerOperatorHasSuffix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasSuffix(FieldRefLowerOperator, v))
}

// RefLowerOperatorIsNil applies the IsNil predicate on the "ref_lower_operator" field.
func RefLowerOperatorIsNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldIsNull(FieldRefLowerOperator))
}

// RefLowerOperatorNotNil applies the NotNil predicate on the "ref_lower_operator" field.
func RefLowerOperatorNotNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldNotNull(FieldRefLowerOperator))
}

// RefLowerOperatorEqualFold applies the EqualFold predicate on the "ref_lower_operator" field.
func RefLowerOperatorEqualFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEqualFold(FieldRefLowerOperator, v))
}

// RefLowerOperatorContainsFold applies the ContainsFold predicate on the "ref_lower_operator" field.
func RefLowerOperatorContainsFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContainsFold(FieldRefLowerOperator, v))
}

// RefUpperEQ applies the EQ predicate on the "ref_upper" field.
func RefUpperEQ(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldRefUpper, v))
}

// RefUpperNEQ applies the NEQ predicate on the "ref_upper" field.
func RefUpperNEQ(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldRefUpper, v))
}

// RefUpperIn applies the In predicate on the "ref_upper" field.
func RefUpperIn(vs ...float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldRefUpper, vs...))
}

// RefUpperNotIn applies the NotIn predicate on the "ref_upper" field.
func RefUpperNotIn(vs ...float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldRefUpper, vs...))
}

// RefUpperGT applies the GT predicate on the "ref_upper" field.
func RefUpperGT(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldRefUpper, v))
}

// RefUpperGTE applies the GTE predicate on the "ref_upper" field.
func RefUpperGTE(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldRefUpper, v))
}

// RefUpperLT applies the LT predicate on the "ref_upper" field.
func RefUpperLT(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldRefUpper, v))
}

// RefUpperLTE applies the LTE predicate on the "ref_upper" field.
func RefUpperLTE(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldRefUpper, v))
}

// RefUpperIsNil applies the IsNil predicate on the "ref_upper" field.
func RefUpperIsNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldIsNull(FieldRefUpper))
}

// RefUpperNotNil applies the NotNil predicate on the "ref_upper" field.
func RefUpperNotNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldNotNull(FieldRefUpper))
}

// RefUpperOperatorEQ applies the EQ predicate on the "ref_upper_operator" field.
func RefUpperOperatorEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldRefUpperOperator, v))
}

// RefUpperOperatorNEQ applies the NEQ predicate on the "ref_upper_operator" field.
func RefUpperOperatorNEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldRefUpperOperator, v))
}

// RefUpperOperatorIn applies the In predicate on the "ref_upper_operator" field.
func RefUpperOperatorIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldRefUpperOperator, vs...))
}

// RefUpperOperatorNotIn applies the NotIn predicate on the "ref_upper_operator" field.
func RefUpperOperatorNotIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldRefUpperOperator, vs...))
}

// RefUpperOperatorGT applies the GT predicate on the "ref_upper_operator" field.
func RefUpperOperatorGT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldRefUpperOperator, v))
}

// RefUpperOperatorGTE applies the GTE predicate on the "ref_upper_operator" field.
func RefUpperOperatorGTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldRefUpperOperator, v))
}

// RefUpperOperatorLT applies the LT predicate on the "ref_upper_operator" field.
func RefUpperOperatorLT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldRefUpperOperator, v))
}

// RefUpperOperatorLTE applies the LTE predicate on the "ref_upper_operator" field.
func RefUpperOperatorLTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldRefUpperOperator, v))
}

// RefUpperOperatorContains applies the Contains predicate on the "ref_upper_operator" field.
func RefUpperOperatorContains(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContains(FieldRefUpperOperator, v))
}

// RefUpperOperatorHasPrefix applies the HasPrefix predicate on the "ref_upper_operator" field.
func RefUpperOperatorHasPrefix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasPrefix(FieldRefUpperOperator, v))
}

// RefUpperOperatorHasSuffix applies the HasSuffix predicate on the "ref_upper_operator" field.
func RefUpperOperatorHasSuffix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasSuffix(FieldRefUpperOperator, v))
}

// RefUpperOperatorIsNil applies the IsNil predicate on the "ref_upper_operator" field.
func RefUpperOperatorIsNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldIsNull(FieldRefUpperOperator))
}

// RefUpperOperatorNotNil applies the NotNil predicate on the "ref_upper_operator" field.
func RefUpperOperatorNotNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldNotNull(FieldRefUpperOperator))
}

// RefUpperOperatorEqualFold applies the EqualFold predicate on the "ref_upper_operator" field.
func RefUpperOperatorEqualFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEqualFold(FieldRefUpperOperator, v))
}

// RefUpperOperatorContainsFold applies the ContainsFold predicate on the "ref_upper_operator" field.
func RefUpperOperatorContainsFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContainsFold(FieldRefUpperOperator, v))
}

// RefTextEQ applies the EQ predicate on the "ref_text" field.
func RefTextEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldRefText, v))
}

// RefTextNEQ applies the NEQ predicate on the "ref_text" field.
func RefTextNEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldRefText, v))
}

// RefTextIn applies the In predicate on the "ref_text" field.
func RefTextIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldRefText, vs...))
}

// RefTextNotIn applies the NotIn predicate on the "ref_text" field.
func RefTextNotIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldRefText, vs...))
}

// RefTextGT applies the GT predicate on the "ref_text" field.
func RefTextGT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldRefText, v))
}

// RefTextGTE applies the GTE predicate on the "ref_text" field.
func RefTextGTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldRefText, v))
}

// RefTextLT applies the LT predicate on the "ref_text" field.
func RefTextLT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldRefText, v))
}

// RefTextLTE applies the LTE predicate on the "ref_text" field.
func RefTextLTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldRefText, v))
}

// RefTextContains applies the Contains predicate on the "ref_text" field.
func RefTextContains(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContains(FieldRefText, v))
}

// RefTextHasPrefix applies the HasPrefix predicate on the "ref_text" field.
func RefTextHasPrefix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasPrefix(FieldRefText, v))
}

// RefTextHasSuffix applies the HasSuffix predicate on the "ref_text" field.
func RefTextHasSuffix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasSuffix(FieldRefText, v))
}

// RefTextIsNil applies the IsNil predicate on the "ref_text" field.
func RefTextIsNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldIsNull(FieldRefText))
}

// RefTextNotNil applies the NotNil predicate on the "ref_text" field.
func RefTextNotNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldNotNull(FieldRefText))
}

// RefTextEqualFold applies the EqualFold predicate on the "ref_text" field.
func RefTextEqualFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEqualFold(FieldRefText, v))
}

// RefTextContainsFold applies the ContainsFold predicate on the "ref_text" field.
func RefTextContainsFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContainsFold(FieldRefText, v))
}

// RefFullTextEQ applies the EQ predicate on the "ref_full_text" field.
func RefFullTextEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldRefFullText, v))
}

// RefFullTextNEQ applies the NEQ predicate on the "ref_full_text" field.
func RefFullTextNEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldRefFullText, v))
}

// RefFullTextIn applies the In predicate on the "ref_full_text" field.
func RefFullTextIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldRefFullText, vs...))
}

// RefFullTextNotIn applies the NotIn predicate on the "ref_full_text" field.
func RefFullTextNotIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldRefFullText, vs...))
}

// RefFullTextGT applies the GT predicate on the "ref_full_text" field.
func RefFullTextGT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldRefFullText, v))
}

// RefFullTextGTE applies the GTE predicate on the "ref_full_text" field.
func RefFullTextGTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldRefFullText, v))
}

// RefFullTextLT applies the LT predicate on the "ref_full_text" field.
func RefFullTextLT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldRefFullText, v))
}

// RefFullTextLTE applies the LTE predicate on the "ref_full_text" field.
func RefFullTextLTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldRefFullText, v))
}

// RefFullTextContains applies the Contains predicate on the "ref_full_text" field.
func RefFullTextContains(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContains(FieldRefFullText, v))
}

// RefFullTextHasPrefix applies the HasPrefix predicate on the "ref_full_text" field.
func RefFullTextHasPrefix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasPrefix(FieldRefFullText, v))
}

// RefFullTextHasSuffix applies the HasSuffix predicate on the "ref_full_text" field.
func RefFullTextHasSuffix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasSuffix(FieldRefFullText, v))
}

// RefFullTextIsNil applies the IsNil predicate on the "ref_full_text" field.
func RefFullTextIsNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldIsNull(FieldRefFullText))
}

// RefFullTextNotNil applies the NotNil predicate on the "ref_full_text" field.
func RefFullTextNotNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldNotNull(FieldRefFullText))
}

// RefFullTextEqualFold applies the EqualFold predicate on the "ref_full_text" field.
func RefFullTextEqualFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEqualFold(FieldRefFullText, v))
}

// RefFullTextContainsFold applies the ContainsFold predicate on the "ref_full_text" field.
func RefFullTextContainsFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContainsFold(FieldRefFullText, v))
}

// OutOfRangeEQ applies the EQ predicate on the "out_of_range" field.
func OutOfRangeEQ(v bool) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldOutOfRange, v))
}

// OutOfRangeNEQ applies the NEQ predicate on the "out_of_range" field.
func OutOfRangeNEQ(v bool) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldOutOfRange, v))
}

// SpecimenTypeEQ applies the EQ predicate on the "specimen_type" field.
func SpecimenTypeEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldSpecimenType, v))
}

// SpecimenTypeNEQ applies the NEQ predicate on the "specimen_type" field.
func SpecimenTypeNEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldSpecimenType, v))
}

// SpecimenTypeIn applies the In predicate on the "specimen_type" field.
func SpecimenTypeIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldSpecimenType, vs...))
}

// SpecimenTypeNotIn applies the NotIn predicate on the "specimen_type" field.
func SpecimenTypeNotIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldSpecimenType, vs...))
}

// SpecimenTypeGT applies the GT predicate on the "specimen_type" field.
func SpecimenTypeGT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldSpecimenType, v))
}

// SpecimenTypeGTE applies the GTE predicate on the "specimen_type" field.
func SpecimenTypeGTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldSpecimenType, v))
}

// SpecimenTypeLT applies the LT predicate on the "specimen_type" field.
func SpecimenTypeLT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldSpecimenType, v))
}

// SpecimenTypeLTE applies the LTE predicate on the "specimen_type" field.
func SpecimenTypeLTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldSpecimenType, v))
}

// SpecimenTypeContains applies the Contains predicate on the "specimen_type" field.
func SpecimenTypeContains(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContains(FieldSpecimenType, v))
}

// SpecimenTypeHasPrefix applies the HasPrefix predicate on the "specimen_type" field.
func SpecimenTypeHasPrefix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasPrefix(FieldSpecimenType, v))
}

// SpecimenTypeHasSuffix applies the HasSuffix predicate on the "specimen_type" field.
func SpecimenTypeHasSuffix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasSuffix(FieldSpecimenType, v))
}

// SpecimenTypeIsNil applies the IsNil predicate on the "specimen_type" field.
func SpecimenTypeIsNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldIsNull(FieldSpecimenType))
}

// SpecimenTypeNotNil applies the NotNil predicate on the "specimen_type" field.
func SpecimenTypeNotNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldNotNull(FieldSpecimenType))
}

// SpecimenTypeEqualFold applies the EqualFold predicate on the "specimen_type" field.
func SpecimenTypeEqualFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEqualFold(FieldSpecimenType, v))
}

// SpecimenTypeContainsFold applies the ContainsFold predicate on the "specimen_type" field.
func SpecimenTypeContainsFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContainsFold(FieldSpecimenType, v))
}

// AnalyteIDEQ applies the EQ predicate on the "analyte_id" field.
func AnalyteIDEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldAnalyteID, v))
}

// AnalyteIDNEQ applies the NEQ predicate on the "analyte_id" field.
func AnalyteIDNEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldAnalyteID, v))
}

// AnalyteIDIn applies the In predicate on the "analyte_id" field.
func AnalyteIDIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldAnalyteID, vs...))
}

// AnalyteIDNotIn applies the NotIn predicate on the "analyte_id" field.
func AnalyteIDNotIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldAnalyteID, vs...))
}

// AnalyteIDGT applies the GT predicate on the "analyte_id" field.
func AnalyteIDGT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldAnalyteID, v))
}

// AnalyteIDGTE applies the GTE predicate on the "analyte_id" field.
func AnalyteIDGTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldAnalyteID, v))
}

// AnalyteIDLT applies the LT predicate on the "analyte_id" field.
func AnalyteIDLT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldAnalyteID, v))
}

// AnalyteIDLTE applies the LTE predicate on the "analyte_id" field.
func AnalyteIDLTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldAnalyteID, v))
}

// AnalyteIDContains applies the Contains predicate on the "analyte_id" field.
func AnalyteIDContains(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContains(FieldAnalyteID, v))
}

// AnalyteIDHasPrefix applies the HasPrefix predicate on the "analyte_id" field.
func AnalyteIDHasPrefix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasPrefix(FieldAnalyteID, v))
}

// AnalyteIDHasSuffix applies the HasSuffix predicate on the "analyte_id" field.
func AnalyteIDHasSuffix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasSuffix(FieldAnalyteID, v))
}

// AnalyteIDIsNil applies the IsNil predicate on the "analyte_id" field.
func AnalyteIDIsNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldIsNull(FieldAnalyteID))
}

// AnalyteIDNotNil applies the NotNil predicate on the "analyte_id" field.
func AnalyteIDNotNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldNotNull(FieldAnalyteID))
}

// AnalyteIDEqualFold applies the EqualFold predicate on the "analyte_id" field.
func AnalyteIDEqualFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEqualFold(FieldAnalyteID, v))
}

// AnalyteIDContainsFold applies the ContainsFold predicate on the "analyte_id" field.
func AnalyteIDContainsFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContainsFold(FieldAnalyteID, v))
}

// MappingConfidenceEQ applies the EQ predicate on the "mapping_confidence" field.
func MappingConfidenceEQ(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldMappingConfidence, v))
}

// MappingConfidenceNEQ applies the NEQ predicate on the "mapping_confidence" field.
func MappingConfidenceNEQ(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldMappingConfidence, v))
}

// MappingConfidenceIn applies the In predicate on the "mapping_confidence" field.
func MappingConfidenceIn(vs ...float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldMappingConfidence, vs...))
}

// MappingConfidenceNotIn applies the NotIn predicate on the "mapping_confidence" field.
func MappingConfidenceNotIn(vs ...float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldMappingConfidence, vs...))
}

// MappingConfidenceGT applies the GT predicate on the "mapping_confidence" field.
func MappingConfidenceGT(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldMappingConfidence, v))
}

// MappingConfidenceGTE applies the GTE predicate on the "mapping_confidence" field.
func MappingConfidenceGTE(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldMappingConfidence, v))
}

// MappingConfidenceLT applies the LT predicate on the "mapping_confidence" field.
func MappingConfidenceLT(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldMappingConfidence, v))
}

// MappingConfidenceLTE applies the LTE predicate on the "mapping_confidence" field.
func MappingConfidenceLTE(v float64) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldMappingConfidence, v))
}

// MappingConfidenceIsNil applies the IsNil predicate on the "mapping_confidence" field.
func MappingConfidenceIsNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldIsNull(FieldMappingConfidence))
}

// MappingConfidenceNotNil applies the NotNil predicate on the "mapping_confidence" field.
func MappingConfidenceNotNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldNotNull(FieldMappingConfidence))
}

// MappingSourceEQ applies the EQ predicate on the "mapping_source" field.
func MappingSourceEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldMappingSource, v))
}

// MappingSourceNEQ applies the NEQ predicate on the "mapping_source" field.
func MappingSourceNEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldMappingSource, v))
}

// MappingSourceIn applies the In predicate on the "mapping_source" field.
func MappingSourceIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldMappingSource, vs...))
}

// MappingSourceNotIn applies the NotIn predicate on the "mapping_source" field.
func MappingSourceNotIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldMappingSource, vs...))
}

// MappingSourceGT applies the GT predicate on the "mapping_source" field.
func MappingSourceGT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldMappingSource, v))
}

// MappingSourceGTE applies the GTE predicate on the "mapping_source" field.
func MappingSourceGTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldMappingSource, v))
}

// MappingSourceLT applies the LT predicate on the "mapping_source" field.
func MappingSourceLT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldMappingSource, v))
}

// MappingSourceLTE applies the LTE predicate on the "mapping_source" field.
func MappingSourceLTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldMappingSource, v))
}

// MappingSourceContains applies the Contains predicate on the "mapping_source" field.
func MappingSourceContains(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContains(FieldMappingSource, v))
}

// MappingSourceHasPrefix applies the HasPrefix predicate on the "mapping_source" field.
func MappingSourceHasPrefix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasPrefix(FieldMappingSource, v))
}

// MappingSourceHasSuffix applies the HasSuffix predicate on the "mapping_source" field.
func MappingSourceHasSuffix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasSuffix(FieldMappingSource, v))
}

// MappingSourceIsNil applies the IsNil predicate on the "mapping_source" field.
func MappingSourceIsNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldIsNull(FieldMappingSource))
}

// MappingSourceNotNil applies the NotNil predicate on the "mapping_source" field.
func MappingSourceNotNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldNotNull(FieldMappingSource))
}

// MappingSourceEqualFold applies the EqualFold predicate on the "mapping_source" field.
func MappingSourceEqualFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEqualFold(FieldMappingSource, v))
}

// MappingSourceContainsFold applies the ContainsFold predicate on the "mapping_source" field.
func MappingSourceContainsFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContainsFold(FieldMappingSource, v))
}

// MappedAtEQ applies the EQ predicate on the "mapped_at" field.
func MappedAtEQ(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldMappedAt, v))
}

// MappedAtNEQ applies the NEQ predicate on the "mapped_at" field.
func MappedAtNEQ(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldMappedAt, v))
}

// MappedAtIn applies the In predicate on the "mapped_at" field.
func MappedAtIn(vs ...time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldMappedAt, vs...))
}

// MappedAtNotIn applies the NotIn predicate on the "mapped_at" field.
func MappedAtNotIn(vs ...time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldMappedAt, vs...))
}

// MappedAtGT applies the GT predicate on the "mapped_at" field.
func MappedAtGT(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldMappedAt, v))
}

// MappedAtGTE applies the GTE predicate on the "mapped_at" field.
func MappedAtGTE(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldMappedAt, v))
}

// MappedAtLT applies the LT predicate on the "mapped_at" field.
func MappedAtLT(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldMappedAt, v))
}

// MappedAtLTE applies the LTE predicate on the "mapped_at" field.
func MappedAtLTE(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldMappedAt, v))
}

// MappedAtIsNil applies the IsNil predicate on the "mapped_at" field.
func MappedAtIsNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldIsNull(FieldMappedAt))
}

// MappedAtNotNil applies the NotNil predicate on the "mapped_at" field.
func MappedAtNotNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldNotNull(FieldMappedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldCreatedAt, v))
}

// HasReport applies the HasEdge predicate on the "report" edge.
func HasReport() predicate.LabResult {
	return predicate.LabResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ReportTable, ReportColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReportWith applies the HasEdge predicate on the "report" edge with a given conditions (other predicates).
func HasReportWith(preds ...predicate.PatientReport) predicate.LabResult {
	return predicate.LabResult(func(s *sql.Selector) {
		step := newReportStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAnalyte applies the HasEdge predicate on the "analyte" edge.
func HasAnalyte() predicate.LabResult {
	return predicate.LabResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AnalyteTable, AnalyteColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnalyteWith applies the HasEdge predicate on the "analyte" edge with a given conditions (other predicates).
func HasAnalyteWith(preds ...predicate.Analyte) predicate.LabResult {
	return predicate.LabResult(func(s *sql.Selector) {
		step := newAnalyteStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LabResult) predicate.LabResult {
	return predicate.LabResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LabResult) predicate.LabResult {
	return predicate.LabResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LabResult) predicate.LabResult {
	return predicate.LabResult(sql.NotPredicates(p))
}
