// Code generated by ent, DO NOT EDIT.

package unitreview

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/labdex/labdex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldContainsFold(FieldID, id))
}

// ResultID applies equality check predicate on the "result_id" field. It's identical to ResultIDEQ.
func ResultID(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldEQ(FieldResultID, v))
}

// RawUnit applies equality check predicate on the "raw_unit" field. It's identical to RawUnitEQ.
func RawUnit(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldEQ(FieldRawUnit, v))
}

// NormalizedInput applies equality check predicate on the "normalized_input" field. It's identical to NormalizedInputEQ.
func NormalizedInput(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldEQ(FieldNormalizedInput, v))
}

// LlmSuggestion applies equality check predicate on the "llm_suggestion" field. It's identical to LlmSuggestionEQ.
func LlmSuggestion(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldEQ(FieldLlmSuggestion, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldEQ(FieldConfidence, v))
}

// IssueType applies equality check predicate on the "issue_type" field. It's identical to IssueTypeEQ.
func IssueType(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldEQ(FieldIssueType, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldEQ(FieldCreatedAt, v))
}

// ResultIDEQ applies the EQ predicate on the "result_id" field.
func ResultIDEQ(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldEQ(FieldResultID, v))
}

// ResultIDNEQ applies the NEQ predicate on the "result_id" field.
func ResultIDNEQ(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldNEQ(FieldResultID, v))
}

// ResultIDIn applies the In predicate on the "result_id" field.
func ResultIDIn(vs ...string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldIn(FieldResultID, vs...))
}

// ResultIDNotIn applies the NotIn predicate on the "result_id" field.
func ResultIDNotIn(vs ...string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldNotIn(FieldResultID, vs...))
}

// ResultIDGT applies the GT predicate on the "result_id" field.
func ResultIDGT(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldGT(FieldResultID, v))
}

// ResultIDGTE applies the GTE predicate on the "result_id" field.
func ResultIDGTE(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldGTE(FieldResultID, v))
}

// ResultIDLT applies the LT predicate on the "result_id" field.
func ResultIDLT(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldLT(FieldResultID, v))
}

// ResultIDLTE applies the LTE predicate on the "result_id" field.
func ResultIDLTE(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldLTE(FieldResultID, v))
}

// ResultIDContains applies the Contains predicate on the "result_id" field.
func ResultIDContains(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldContains(FieldResultID, v))
}

// ResultIDHasPrefix applies the HasPrefix predicate on the "result_id" field.
func ResultIDHasPrefix(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldHasPrefix(FieldResultID, v))
}

// ResultIDHasSuffix applies the HasSuffix predicate on the "result_id" field.
func ResultIDHasSuffix(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldHasSuffix(FieldResultID, v))
}

// ResultIDEqualFold applies the EqualFold predicate on the "result_id" field.
func ResultIDEqualFold(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldEqualFold(FieldResultID, v))
}

// ResultIDContainsFold applies the ContainsFold predicate on the "result_id" field.
func ResultIDContainsFold(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldContainsFold(FieldResultID, v))
}

// RawUnitEQ applies the EQ predicate on the "raw_unit" field.
func RawUnitEQ(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldEQ(FieldRawUnit, v))
}

// RawUnitNEQ applies the NEQ predicate on the "raw_unit" field.
func RawUnitNEQ(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldNEQ(FieldRawUnit, v))
}

// RawUnitIn applies the In predicate on the "raw_unit" field.
func RawUnitIn(vs ...string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldIn(FieldRawUnit, vs...))
}

// RawUnitNotIn applies the NotIn predicate on the "raw_unit" field.
func RawUnitNotIn(vs ...string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldNotIn(FieldRawUnit, vs...))
}

// RawUnitGT applies the GT predicate on the "raw_unit" field.
func RawUnitGT(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldGT(FieldRawUnit, v))
}

// RawUnitGTE applies the GTE predicate on the "raw_unit" field.
func RawUnitGTE(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldGTE(FieldRawUnit, v))
}

// RawUnitLT applies the LT predicate on the "raw_unit" field.
func RawUnitLT(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldLT(FieldRawUnit, v))
}

// RawUnitLTE applies the LTE predicate on the "raw_unit" field.
func RawUnitLTE(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldLTE(FieldRawUnit, v))
}

// RawUnitContains applies the Contains predicate on the "raw_unit" field.
func RawUnitContains(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldContains(FieldRawUnit, v))
}

// RawUnitHasPrefix applies the HasPrefix predicate on the "raw_unit" field.
func RawUnitHasPrefix(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldHasPrefix(FieldRawUnit, v))
}

// RawUnitHasSuffix applies the HasSuffix predicate on the "raw_unit" field.
func RawUnitHasSuffix(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldHasSuffix(FieldRawUnit, v))
}

// RawUnitEqualFold applies the EqualFold predicate on the "raw_unit" field.
func RawUnitEqualFold(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldEqualFold(FieldRawUnit, v))
}

// RawUnitContainsFold applies the ContainsFold predicate on the "raw_unit" field.
func RawUnitContainsFold(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldContainsFold(FieldRawUnit, v))
}

// NormalizedInputEQ applies the EQ predicate on the "normalized_input" field.
func NormalizedInputEQ(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldEQ(FieldNormalizedInput, v))
}

// NormalizedInputNEQ applies the NEQ predicate on the "normalized_input" field.
func NormalizedInputNEQ(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldNEQ(FieldNormalizedInput, v))
}

// NormalizedInputIn applies the In predicate on the "normalized_input" field.
func NormalizedInputIn(vs ...string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldIn(FieldNormalizedInput, vs...))
}

// NormalizedInputNotIn applies the NotIn predicate on the "normalized_input" field.
func NormalizedInputNotIn(vs ...string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldNotIn(FieldNormalizedInput, vs...))
}

// NormalizedInputGT applies the GT predicate on the "normalized_input" field.
func NormalizedInputGT(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldGT(FieldNormalizedInput, v))
}

// NormalizedInputGTE applies the GTE predicate on the "normalized_input" field.
func NormalizedInputGTE(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldGTE(FieldNormalizedInput, v))
}

// NormalizedInputLT applies the LT predicate on the "normalized_input" field.
func NormalizedInputLT(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldLT(FieldNormalizedInput, v))
}

// NormalizedInputLTE applies the LTE predicate on the "normalized_input" field.
func NormalizedInputLTE(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldLTE(FieldNormalizedInput, v))
}

// NormalizedInputContains applies the Contains predicate on the "normalized_input" field.
func NormalizedInputContains(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldContains(FieldNormalizedInput, v))
}

// NormalizedInputHasPrefix applies the HasPrefix predicate on the "normalized_input" field.
func NormalizedInputHasPrefix(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldHasPrefix(FieldNormalizedInput, v))
}

// NormalizedInputHasSuffix applies the HasSuffix predicate on the "normalized_input" field.
func NormalizedInputHasSuffix(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldHasSuffix(FieldNormalizedInput, v))
}

// NormalizedInputEqualFold applies the EqualFold predicate on the "normalized_input" field.
func NormalizedInputEqualFold(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldEqualFold(FieldNormalizedInput, v))
}

// NormalizedInputContainsFold applies the ContainsFold predicate on the "normalized_input" field.
func NormalizedInputContainsFold(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldContainsFold(FieldNormalizedInput, v))
}

// LlmSuggestionEQ applies the EQ predicate on the "llm_suggestion" field.
func LlmSuggestionEQ(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldEQ(FieldLlmSuggestion, v))
}

// LlmSuggestionNEQ applies the NEQ predicate on the "llm_suggestion" field.
func LlmSuggestionNEQ(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldNEQ(FieldLlmSuggestion, v))
}

// LlmSuggestionIn applies the In predicate on the "llm_suggestion" field.
func LlmSuggestionIn(vs ...string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldIn(FieldLlmSuggestion, vs...))
}

// LlmSuggestionNotIn applies the NotIn predicate on the "llm_suggestion" field.
func LlmSuggestionNotIn(vs ...string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldNotIn(FieldLlmSuggestion, vs...))
}

// LlmSuggestionGT applies the GT predicate on the "llm_suggestion" field.
func LlmSuggestionGT(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldGT(FieldLlmSuggestion, v))
}

// LlmSuggestionGTE applies the GTE predicate on the "llm_suggestion" field.
func LlmSuggestionGTE(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldGTE(FieldLlmSuggestion, v))
}

// LlmSuggestionLT applies the LT predicate on the "llm_suggestion" field.
func LlmSuggestionLT(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldLT(FieldLlmSuggestion, v))
}

// LlmSuggestionLTE applies the LTE predicate on the "llm_suggestion" field.
func LlmSuggestionLTE(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldLTE(FieldLlmSuggestion, v))
}

// LlmSuggestionContains applies the Contains predicate on the "llm_suggestion" field.
func LlmSuggestionContains(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldContains(FieldLlmSuggestion, v))
}

// LlmSuggestionHasPrefix applies the HasPrefix predicate on the "llm_suggestion" field.
func LlmSuggestionHasPrefix(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldHasPrefix(FieldLlmSuggestion, v))
}

// LlmSuggestionHasSuffix applies the HasSuffix predicate on the "llm_suggestion" field.
func LlmSuggestionHasSuffix(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldHasSuffix(FieldLlmSuggestion, v))
}

// LlmSuggestionIsNil applies the IsNil predicate on the "llm_suggestion" field.
func LlmSuggestionIsNil() predicate.UnitReview {
	return predicate.UnitReview(sql.FieldIsNull(FieldLlmSuggestion))
}

// LlmSuggestionNotNil applies the NotNil predicate on the "llm_suggestion" field.
func LlmSuggestionNotNil() predicate.UnitReview {
	return predicate.UnitReview(sql.FieldNotNull(FieldLlmSuggestion))
}

// LlmSuggestionEqualFold applies the EqualFold predicate on the "llm_suggestion" field.
func LlmSuggestionEqualFold(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldEqualFold(FieldLlmSuggestion, v))
}

// LlmSuggestionContainsFold applies the ContainsFold predicate on the "llm_suggestion" field.
func LlmSuggestionContainsFold(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldContainsFold(FieldLlmSuggestion, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceContains applies the Contains predicate on the "confidence" field.
func ConfidenceContains(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldContains(FieldConfidence, v))
}

// ConfidenceHasPrefix applies the HasPrefix predicate on the "confidence" field.
func ConfidenceHasPrefix(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldHasPrefix(FieldConfidence, v))
}

// ConfidenceHasSuffix applies the HasSuffix predicate on the "confidence" field.
func ConfidenceHasSuffix(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldHasSuffix(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.UnitReview {
	return predicate.UnitReview(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.UnitReview {
	return predicate.UnitReview(sql.FieldNotNull(FieldConfidence))
}

// ConfidenceEqualFold applies the EqualFold predicate on the "confidence" field.
func ConfidenceEqualFold(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldEqualFold(FieldConfidence, v))
}

// ConfidenceContainsFold applies the ContainsFold predicate on the "confidence" field.
func ConfidenceContainsFold(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldContainsFold(FieldConfidence, v))
}

// IssueTypeEQ applies the EQ predicate on the "issue_type" field.
func IssueTypeEQ(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldEQ(FieldIssueType, v))
}

// IssueTypeNEQ applies the NEQ predicate on the "issue_type" field.
func IssueTypeNEQ(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldNEQ(FieldIssueType, v))
}

// IssueTypeIn applies the In predicate on the "issue_type" field.
func IssueTypeIn(vs ...string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldIn(FieldIssueType, vs...))
}

// IssueTypeNotIn applies the NotIn predicate on the "issue_type" field.
func IssueTypeNotIn(vs ...string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldNotIn(FieldIssueType, vs...))
}

// IssueTypeGT applies the GT predicate on the "issue_type" field.
func IssueTypeGT(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldGT(FieldIssueType, v))
}

// IssueTypeGTE applies the GTE predicate on the "issue_type" field.
func IssueTypeGTE(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldGTE(FieldIssueType, v))
}

// IssueTypeLT applies the LT predicate on the "issue_type" field.
func IssueTypeLT(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldLT(FieldIssueType, v))
}

// IssueTypeLTE applies the LTE predicate on the "issue_type" field.
func IssueTypeLTE(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldLTE(FieldIssueType, v))
}

// IssueTypeContains applies the Contains predicate on the "issue_type" field.
func IssueTypeContains(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldContains(FieldIssueType, v))
}

// IssueTypeHasPrefix applies the HasPrefix predicate on the "issue_type" field.
func IssueTypeHasPrefix(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldHasPrefix(FieldIssueType, v))
}

// IssueTypeHasSuffix applies the HasSuffix predicate on the "issue_type" field.
func IssueTypeHasSuffix(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldHasSuffix(FieldIssueType, v))
}

// IssueTypeEqualFold applies the EqualFold predicate on the "issue_type" field.
func IssueTypeEqualFold(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldEqualFold(FieldIssueType, v))
}

// IssueTypeContainsFold applies the ContainsFold predicate on the "issue_type" field.
func IssueTypeContainsFold(v string) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldContainsFold(FieldIssueType, v))
}

// IssueDetailsIsNil applies the IsNil predicate on the "issue_details" field.
func IssueDetailsIsNil() predicate.UnitReview {
	return predicate.UnitReview(sql.FieldIsNull(FieldIssueDetails))
}

// IssueDetailsNotNil applies the NotNil predicate on the "issue_details" field.
func IssueDetailsNotNil() predicate.UnitReview {
	return predicate.UnitReview(sql.FieldNotNull(FieldIssueDetails))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UnitReview {
	return predicate.UnitReview(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UnitReview) predicate.UnitReview {
	return predicate.UnitReview(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UnitReview) predicate.UnitReview {
	return predicate.UnitReview(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UnitReview) predicate.UnitReview {
	return predicate.UnitReview(sql.NotPredicates(p))
}
