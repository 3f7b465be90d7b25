// Code generated by ent, DO NOT EDIT.

package pendinganalyte

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/labdex/labdex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldContainsFold(FieldID, id))
}

// ProposedCode applies equality check predicate on the "proposed_code" field. It's identical to ProposedCodeEQ.
func ProposedCode(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldEQ(FieldProposedCode, v))
}

// ProposedName applies equality check predicate on the "proposed_name" field. It's identical to ProposedNameEQ.
func ProposedName(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldEQ(FieldProposedName, v))
}

// Unit applies equality check predicate on the "unit" field. It's identical to UnitEQ.
func Unit(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldEQ(FieldUnit, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldEQ(FieldCategory, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldEQ(FieldConfidence, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProposedCodeEQ applies the EQ predicate on the "proposed_code" field.
func ProposedCodeEQ(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldEQ(FieldProposedCode, v))
}

// ProposedCodeNEQ applies the NEQ predicate on the "proposed_code" field.
func ProposedCodeNEQ(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldNEQ(FieldProposedCode, v))
}

// ProposedCodeIn applies the In predicate on the "proposed_code" field.
func ProposedCodeIn(vs ...string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldIn(FieldProposedCode, vs...))
}

// ProposedCodeNotIn applies the NotIn predicate on the "proposed_code" field.
func ProposedCodeNotIn(vs ...string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldNotIn(FieldProposedCode, vs...))
}

// ProposedCodeGT applies the GT predicate on the "proposed_code" field.
func ProposedCodeGT(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldGT(FieldProposedCode, v))
}

// ProposedCodeGTE applies the GTE predicate on the "proposed_code" field.
func ProposedCodeGTE(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldGTE(FieldProposedCode, v))
}

// ProposedCodeLT applies the LT predicate on the "proposed_code" field.
func ProposedCodeLT(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldLT(FieldProposedCode, v))
}

// ProposedCodeLTE applies the LTE predicate on the "proposed_code" field.
func ProposedCodeLTE(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldLTE(FieldProposedCode, v))
}

// ProposedCodeContains applies the Contains predicate on the "proposed_code" field.
func ProposedCodeContains(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldContains(FieldProposedCode, v))
}

// ProposedCodeHasPrefix applies the HasPrefix predicate on the "proposed_code" field.
func ProposedCodeHasPrefix(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldHasPrefix(FieldProposedCode, v))
}

// ProposedCodeHasSuffix applies the HasSuffix predicate on the "proposed_code" field.
func ProposedCodeHasSuffix(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldHasSuffix(FieldProposedCode, v))
}

// ProposedCodeEqualFold applies the EqualFold predicate on the "proposed_code" field.
func ProposedCodeEqualFold(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldEqualFold(FieldProposedCode, v))
}

// ProposedCodeContainsFold applies the ContainsFold predicate on the "proposed_code" field.
func ProposedCodeContainsFold(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldContainsFold(FieldProposedCode, v))
}

// ProposedNameEQ applies the EQ predicate on the "proposed_name" field.
func ProposedNameEQ(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldEQ(FieldProposedName, v))
}

// ProposedNameNEQ applies the NEQ predicate on the "proposed_name" field.
func ProposedNameNEQ(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldNEQ(FieldProposedName, v))
}

// ProposedNameIn applies the In predicate on the "proposed_name" field.
func ProposedNameIn(vs ...string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldIn(FieldProposedName, vs...))
}

// ProposedNameNotIn applies the NotIn predicate on the "proposed_name" field.
func ProposedNameNotIn(vs ...string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldNotIn(FieldProposedName, vs...))
}

// ProposedNameGT applies the GT predicate on the "proposed_name" field.
func ProposedNameGT(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldGT(FieldProposedName, v))
}

// ProposedNameGTE applies the GTE predicate on the "proposed_name" field.
func ProposedNameGTE(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldGTE(FieldProposedName, v))
}

// ProposedNameLT applies the LT predicate on the "proposed_name" field.
func ProposedNameLT(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldLT(FieldProposedName, v))
}

// ProposedNameLTE applies the LTE predicate on the "proposed_name" field.
func ProposedNameLTE(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldLTE(FieldProposedName, v))
}

// ProposedNameContains applies the Contains predicate on the "proposed_name" field.
func ProposedNameContains(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldContains(FieldProposedName, v))
}

// ProposedNameHasPrefix applies the HasPrefix predicate on the "proposed_name" field.
func ProposedNameHasPrefix(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldHasPrefix(FieldProposedName, v))
}

// ProposedNameHasSuffix applies the HasSuffix predicate on the "proposed_name" field.
func ProposedNameHasSuffix(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldHasSuffix(FieldProposedName, v))
}

// ProposedNameEqualFold applies the EqualFold predicate on the "proposed_name" field.
func ProposedNameEqualFold(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldEqualFold(FieldProposedName, v))
}

// ProposedNameContainsFold applies the ContainsFold predicate on the "proposed_name" field.
func ProposedNameContainsFold(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldContainsFold(FieldProposedName, v))
}

// UnitEQ applies the EQ predicate on the "unit" field.
func UnitEQ(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldEQ(FieldUnit, v))
}

// UnitNEQ applies the NEQ predicate on the "unit" field.
func UnitNEQ(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldNEQ(FieldUnit, v))
}

// UnitIn applies the In predicate on the "unit" field.
func UnitIn(vs ...string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldIn(FieldUnit, vs...))
}

// UnitNotIn applies the NotIn predicate on the "unit" field.
func UnitNotIn(vs ...string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldNotIn(FieldUnit, vs...))
}

// UnitGT applies the GT predicate on the "unit" field.
func UnitGT(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldGT(FieldUnit, v))
}

// UnitGTE applies the GTE predicate on the "unit" field.
func UnitGTE(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldGTE(FieldUnit, v))
}

// UnitLT applies the LT predicate on the "unit" field.
func UnitLT(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldLT(FieldUnit, v))
}

// UnitLTE applies the LTE predicate on the "unit" field.
func UnitLTE(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldLTE(FieldUnit, v))
}

// UnitContains applies the Contains predicate on the "unit" field.
func UnitContains(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldContains(FieldUnit, v))
}

// UnitHasPrefix applies the HasPrefix predicate on the "unit" field.
func UnitHasPrefix(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldHasPrefix(FieldUnit, v))
}

// UnitHasSuffix applies the HasSuffix predicate on the "unit" field.
func UnitHasSuffix(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldHasSuffix(FieldUnit, v))
}

// UnitIsNil applies the IsNil predicate on the "unit" field.
func UnitIsNil() predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldIsNull(FieldUnit))
}

// UnitNotNil applies the NotNil predicate on the "unit" field.
func UnitNotNil() predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldNotNull(FieldUnit))
}

// UnitEqualFold applies the EqualFold predicate on the "unit" field.
func UnitEqualFold(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldEqualFold(FieldUnit, v))
}

// UnitContainsFold applies the ContainsFold predicate on the "unit" field.
func UnitContainsFold(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldContainsFold(FieldUnit, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldContainsFold(FieldCategory, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldLTE(FieldConfidence, v))
}

// EvidenceIsNil applies the IsNil predicate on the "evidence" field.
func EvidenceIsNil() predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldIsNull(FieldEvidence))
}

// EvidenceNotNil applies the NotNil predicate on the "evidence" field.
func EvidenceNotNil() predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldNotNull(FieldEvidence))
}

// ParameterVariationsIsNil applies the IsNil predicate on the "parameter_variations" field.
func ParameterVariationsIsNil() predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldIsNull(FieldParameterVariations))
}

// ParameterVariationsNotNil applies the NotNil predicate on the "parameter_variations" field.
func ParameterVariationsNotNil() predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldNotNull(FieldParameterVariations))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PendingAnalyte) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PendingAnalyte) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PendingAnalyte) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.NotPredicates(p))
}
