// Code generated by ent, DO NOT EDIT.

package matchreview

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/labdex/labdex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldContainsFold(FieldID, id))
}

// ResultID applies equality check predicate on the "result_id" field. It's identical to ResultIDEQ.
func ResultID(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldEQ(FieldResultID, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldEQ(FieldSource, v))
}

// PendingCode applies equality check predicate on the "pending_code" field. It's identical to PendingCodeEQ.
func PendingCode(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldEQ(FieldPendingCode, v))
}

// LlmComment applies equality check predicate on the "llm_comment" field. It's identical to LlmCommentEQ.
func LlmComment(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldEQ(FieldLlmComment, v))
}

// ResolvedVia applies equality check predicate on the "resolved_via" field. It's identical to ResolvedViaEQ.
func ResolvedVia(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldEQ(FieldResolvedVia, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldEQ(FieldCreatedAt, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldEQ(FieldResolvedAt, v))
}

// ResultIDEQ applies the EQ predicate on the "result_id" field.
func ResultIDEQ(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldEQ(FieldResultID, v))
}

// ResultIDNEQ applies the NEQ predicate on the "result_id" field.
func ResultIDNEQ(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldNEQ(FieldResultID, v))
}

// ResultIDIn applies the In predicate on the "result_id" field.
func ResultIDIn(vs ...string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldIn(FieldResultID, vs...))
}

// ResultIDNotIn applies the NotIn predicate on the "result_id" field.
func ResultIDNotIn(vs ...string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldNotIn(FieldResultID, vs...))
}

// ResultIDGT applies the GT predicate on the "result_id" field.
func ResultIDGT(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldGT(FieldResultID, v))
}

// ResultIDGTE applies the GTE predicate on the "result_id" field.
func ResultIDGTE(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldGTE(FieldResultID, v))
}

// ResultIDLT applies the LT predicate on the "result_id" field.
func ResultIDLT(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldLT(FieldResultID, v))
}

// ResultIDLTE applies the LTE predicate on the "result_id" field.
func ResultIDLTE(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldLTE(FieldResultID, v))
}

// ResultIDContains applies the Contains predicate on the "result_id" field.
func ResultIDContains(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldContains(FieldResultID, v))
}

// ResultIDHasPrefix applies the HasPrefix predicate on the "result_id" field.
func ResultIDHasPrefix(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldHasPrefix(FieldResultID, v))
}

// ResultIDHasSuffix applies the HasSuffix predicate on the "result_id" field.
func ResultIDHasSuffix(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldHasSuffix(FieldResultID, v))
}

// ResultIDEqualFold applies the EqualFold predicate on the "result_id" field.
func ResultIDEqualFold(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldEqualFold(FieldResultID, v))
}

// ResultIDContainsFold applies the ContainsFold predicate on the "result_id" field.
func ResultIDContainsFold(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldContainsFold(FieldResultID, v))
}

// CandidatesIsNil applies the IsNil predicate on the "candidates" field.
func CandidatesIsNil() predicate.MatchReview {
	return predicate.MatchReview(sql.FieldIsNull(FieldCandidates))
}

// CandidatesNotNil applies the NotNil predicate on the "candidates" field.
func CandidatesNotNil() predicate.MatchReview {
	return predicate.MatchReview(sql.FieldNotNull(FieldCandidates))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldContainsFold(FieldSource, v))
}

// PendingCodeEQ applies the EQ predicate on the "pending_code" field.
func PendingCodeEQ(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldEQ(FieldPendingCode, v))
}

// PendingCodeNEQ applies the NEQ predicate on the "pending_code" field.
func PendingCodeNEQ(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldNEQ(FieldPendingCode, v))
}

// PendingCodeIn applies the In predicate on the "pending_code" field.
func PendingCodeIn(vs ...string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldIn(FieldPendingCode, vs...))
}

// PendingCodeNotIn applies the NotIn predicate on the "pending_code" field.
func PendingCodeNotIn(vs ...string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldNotIn(FieldPendingCode, vs...))
}

// PendingCodeGT applies the GT predicate on the "pending_code" field.
func PendingCodeGT(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldGT(FieldPendingCode, v))
}

// PendingCodeGTE applies the GTE predicate on the "pending_code" field.
func PendingCodeGTE(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldGTE(FieldPendingCode, v))
}

// PendingCodeLT applies the LT predicate on the "pending_code" field.
func PendingCodeLT(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldLT(FieldPendingCode, v))
}

// PendingCodeLTE applies the LTE predicate on the "pending_code" field.
func PendingCodeLTE(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldLTE(FieldPendingCode, v))
}

// PendingCodeContains applies the Contains predicate on the "pending_code" field.
func PendingCodeContains(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldContains(FieldPendingCode, v))
}

// PendingCodeHasPrefix applies the HasPrefix predicate on the "pending_code" field.
func PendingCodeHasPrefix(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldHasPrefix(FieldPendingCode, v))
}

// PendingCodeHasSuffix applies the HasSuffix predicate on the "pending_code" field.
func PendingCodeHasSuffix(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldHasSuffix(FieldPendingCode, v))
}

// PendingCodeIsNil applies the IsNil predicate on the "pending_code" field.
func PendingCodeIsNil() predicate.MatchReview {
	return predicate.MatchReview(sql.FieldIsNull(FieldPendingCode))
}

// PendingCodeNotNil applies the NotNil predicate on the "pending_code" field.
func PendingCodeNotNil() predicate.MatchReview {
	return predicate.MatchReview(sql.FieldNotNull(FieldPendingCode))
}

// PendingCodeEqualFold applies the EqualFold predicate on the "pending_code" field.
func PendingCodeEqualFold(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldEqualFold(FieldPendingCode, v))
}

// PendingCodeContainsFold applies the ContainsFold predicate on the "pending_code" field.
func PendingCodeContainsFold(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldContainsFold(FieldPendingCode, v))
}

// LlmCommentEQ applies the EQ predicate on the "llm_comment" field.
func LlmCommentEQ(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldEQ(FieldLlmComment, v))
}

// LlmCommentNEQ applies the NEQ predicate on the "llm_comment" field.
func LlmCommentNEQ(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldNEQ(FieldLlmComment, v))
}

// LlmCommentIn applies the In predicate on the "llm_comment" field.
func LlmCommentIn(vs ...string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldIn(FieldLlmComment, vs...))
}

// LlmCommentNotIn applies the NotIn predicate on the "llm_comment" field.
func LlmCommentNotIn(vs ...string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldNotIn(FieldLlmComment, vs...))
}

// LlmCommentGT applies the GT predicate on the "llm_comment" field.
func LlmCommentGT(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldGT(FieldLlmComment, v))
}

// LlmCommentGTE applies the GTE predicate on the "llm_comment" field.
func LlmCommentGTE(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldGTE(FieldLlmComment, v))
}

// LlmCommentLT applies the LT predicate on the "llm_comment" field.
func LlmCommentLT(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldLT(FieldLlmComment, v))
}

// LlmCommentLTE applies the LTE predicate on the "llm_comment" field.
func LlmCommentLTE(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldLTE(FieldLlmComment, v))
}

// LlmCommentContains applies the Contains predicate on the "llm_comment" field.
func LlmCommentContains(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldContains(FieldLlmComment, v))
}

// LlmCommentHasPrefix applies the HasPrefix predicate on the "llm_comment" field.
func LlmCommentHasPrefix(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldHasPrefix(FieldLlmComment, v))
}

// LlmCommentHasSuffix applies the HasSuffix predicate on the "llm_comment" field.
func LlmCommentHasSuffix(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldHasSuffix(FieldLlmComment, v))
}

// LlmCommentIsNil applies the IsNil predicate on the "llm_comment" field.
func LlmCommentIsNil() predicate.MatchReview {
	return predicate.MatchReview(sql.FieldIsNull(FieldLlmComment))
}

// LlmCommentNotNil applies the NotNil predicate on the "llm_comment" field.
func LlmCommentNotNil() predicate.MatchReview {
	return predicate.MatchReview(sql.FieldNotNull(FieldLlmComment))
}

// LlmCommentEqualFold applies the EqualFold predicate on the "llm_comment" field.
func LlmCommentEqualFold(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldEqualFold(FieldLlmComment, v))
}

// LlmCommentContainsFold applies the ContainsFold predicate on the "llm_comment" field.
func LlmCommentContainsFold(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldContainsFold(FieldLlmComment, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldNotIn(FieldStatus, vs...))
}

// ResolvedViaEQ applies the EQ predicate on the "resolved_via" field.
func ResolvedViaEQ(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldEQ(FieldResolvedVia, v))
}

// ResolvedViaNEQ applies the NEQ predicate on the "resolved_via" field.
func ResolvedViaNEQ(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldNEQ(FieldResolvedVia, v))
}

// ResolvedViaIn applies the In predicate on the "resolved_via" field.
func ResolvedViaIn(vs ...string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldIn(FieldResolvedVia, vs...))
}

// ResolvedViaNotIn applies the NotIn predicate on the "resolved_via" field.
func ResolvedViaNotIn(vs ...string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldNotIn(FieldResolvedVia, vs...))
}

// ResolvedViaGT applies the GT predicate on the "resolved_via" field.
func ResolvedViaGT(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldGT(FieldResolvedVia, v))
}

// ResolvedViaGTE applies the GTE predicate on the "resolved_via" field.
func ResolvedViaGTE(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldGTE(FieldResolvedVia, v))
}

// ResolvedViaLT applies the LT predicate on the "resolved_via" field.
func ResolvedViaLT(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldLT(FieldResolvedVia, v))
}

// ResolvedViaLTE applies the LTE predicate on the "resolved_via" field.
func ResolvedViaLTE(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldLTE(FieldResolvedVia, v))
}

// ResolvedViaContains applies the Contains predicate on the "resolved_via" field.
func ResolvedViaContains(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldContains(FieldResolvedVia, v))
}

// ResolvedViaHasPrefix applies the HasPrefix predicate on the "resolved_via" field.
func ResolvedViaHasPrefix(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldHasPrefix(FieldResolvedVia, v))
}

// ResolvedViaHasSuffix applies the HasSuffix predicate on the "resolved_via" field.
func ResolvedViaHasSuffix(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldHasSuffix(FieldResolvedVia, v))
}

// ResolvedViaIsNil applies the IsNil predicate on the "resolved_via" field.
func ResolvedViaIsNil() predicate.MatchReview {
	return predicate.MatchReview(sql.FieldIsNull(FieldResolvedVia))
}

// ResolvedViaNotNil applies the NotNil predicate on the "resolved_via" field.
func ResolvedViaNotNil() predicate.MatchReview {
	return predicate.MatchReview(sql.FieldNotNull(FieldResolvedVia))
}

// ResolvedViaEqualFold applies the EqualFold predicate on the "resolved_via" field.
func ResolvedViaEqualFold(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldEqualFold(FieldResolvedVia, v))
}

// ResolvedViaContainsFold applies the ContainsFold predicate on the "resolved_via" field.
func ResolvedViaContainsFold(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldContainsFold(FieldResolvedVia, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldLTE(FieldCreatedAt, v))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.MatchReview {
	return predicate.MatchReview(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.MatchReview {
	return predicate.MatchReview(sql.FieldNotNull(FieldResolvedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MatchReview) predicate.MatchReview {
	return predicate.MatchReview(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MatchReview) predicate.MatchReview {
	return predicate.MatchReview(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MatchReview) predicate.MatchReview {
	return predicate.MatchReview(sql.NotPredicates(p))
}
