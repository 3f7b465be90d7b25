// Code generated by ent, DO NOT EDIT.

package unitalias

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/labdex/labdex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldContainsFold(FieldID, id))
}

// Canonical applies equality check predicate on the "canonical" field. It's identical to CanonicalEQ.
func Canonical(v string) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldEQ(FieldCanonical, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldEQ(FieldSource, v))
}

// LearnCount applies equality check predicate on the "learn_count" field. It's identical to LearnCountEQ.
func LearnCount(v int) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldEQ(FieldLearnCount, v))
}

// LastUsedAt applies equality check predicate on the "last_used_at" field. It's identical to LastUsedAtEQ.
func LastUsedAt(v time.Time) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldEQ(FieldLastUsedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldEQ(FieldCreatedAt, v))
}

// CanonicalEQ applies the EQ predicate on the "canonical" field.
func CanonicalEQ(v string) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldEQ(FieldCanonical, v))
}

// CanonicalNEQ applies the NEQ predicate on the "canonical" field.
func CanonicalNEQ(v string) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldNEQ(FieldCanonical, v))
}

// CanonicalIn applies the In predicate on the "canonical" field.
func CanonicalIn(vs ...string) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldIn(FieldCanonical, vs...))
}

// CanonicalNotIn applies the NotIn predicate on the "canonical" field.
func CanonicalNotIn(vs ...string) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldNotIn(FieldCanonical, vs...))
}

// CanonicalGT applies the GT predicate on the "canonical" field.
func CanonicalGT(v string) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldGT(FieldCanonical, v))
}

// CanonicalGTE applies the GTE predicate on the "canonical" field.
func CanonicalGTE(v string) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldGTE(FieldCanonical, v))
}

// CanonicalLT applies the LT predicate on the "canonical" field.
func CanonicalLT(v string) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldLT(FieldCanonical, v))
}

// CanonicalLTE applies the LTE predicate on the "canonical" field.
func CanonicalLTE(v string) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldLTE(FieldCanonical, v))
}

// CanonicalContains applies the Contains predicate on the "canonical" field.
func CanonicalContains(v string) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldContains(FieldCanonical, v))
}

// CanonicalHasPrefix applies the HasPrefix predicate on the "canonical" field.
func CanonicalHasPrefix(v string) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldHasPrefix(FieldCanonical, v))
}

// CanonicalHasSuffix applies the HasSuffix predicate on the "canonical" field.
func CanonicalHasSuffix(v string) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldHasSuffix(FieldCanonical, v))
}

// CanonicalEqualFold applies the EqualFold predicate on the "canonical" field.
func CanonicalEqualFold(v string) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldEqualFold(FieldCanonical, v))
}

// CanonicalContainsFold applies the ContainsFold predicate on the "canonical" field.
func CanonicalContainsFold(v string) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldContainsFold(FieldCanonical, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldContainsFold(FieldSource, v))
}

// LearnCountEQ applies the EQ predicate on the "learn_count" field.
func LearnCountEQ(v int) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldEQ(FieldLearnCount, v))
}

// LearnCountNEQ applies the NEQ predicate on the "learn_count" field.
func LearnCountNEQ(v int) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldNEQ(FieldLearnCount, v))
}

// LearnCountIn applies the In predicate on the "learn_count" field.
func LearnCountIn(vs ...int) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldIn(FieldLearnCount, vs...))
}

// LearnCountNotIn applies the NotIn predicate on the "learn_count" field.
func LearnCountNotIn(vs ...int) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldNotIn(FieldLearnCount, vs...))
}

// LearnCountGT applies the GT predicate on the "learn_count" field.
func LearnCountGT(v int) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldGT(FieldLearnCount, v))
}

// LearnCountGTE applies the GTE predicate on the "learn_count" field.
func LearnCountGTE(v int) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldGTE(FieldLearnCount, v))
}

// LearnCountLT applies the LT predicate on the "learn_count" field.
func LearnCountLT(v int) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldLT(FieldLearnCount, v))
}

// LearnCountLTE applies the LTE predicate on the "learn_count" field.
func LearnCountLTE(v int) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldLTE(FieldLearnCount, v))
}

// LastUsedAtEQ applies the EQ predicate on the "last_used_at" field.
func LastUsedAtEQ(v time.Time) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldEQ(FieldLastUsedAt, v))
}

// LastUsedAtNEQ applies the NEQ predicate on the "last_used_at" field.
func LastUsedAtNEQ(v time.Time) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldNEQ(FieldLastUsedAt, v))
}

// LastUsedAtIn applies the In predicate on the "last_used_at" field.
func LastUsedAtIn(vs ...time.Time) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldIn(FieldLastUsedAt, vs...))
}

// LastUsedAtNotIn applies the NotIn predicate on the "last_used_at" field.
func LastUsedAtNotIn(vs ...time.Time) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldNotIn(FieldLastUsedAt, vs...))
}

// LastUsedAtGT applies the GT predicate on the "last_used_at" field.
func LastUsedAtGT(v time.Time) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldGT(FieldLastUsedAt, v))
}

// LastUsedAtGTE applies the GTE predicate on the "last_used_at" field.
func LastUsedAtGTE(v time.Time) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldGTE(FieldLastUsedAt, v))
}

// LastUsedAtLT applies the LT predicate on the "last_used_at" field.
func LastUsedAtLT(v time.Time) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldLT(FieldLastUsedAt, v))
}

// LastUsedAtLTE applies the LTE predicate on the "last_used_at" field.
func LastUsedAtLTE(v time.Time) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldLTE(FieldLastUsedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UnitAlias {
	return predicate.UnitAlias(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UnitAlias) predicate.UnitAlias {
	return predicate.UnitAlias(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UnitAlias) predicate.UnitAlias {
	return predicate.UnitAlias(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UnitAlias) predicate.UnitAlias {
	return predicate.UnitAlias(sql.NotPredicates(p))
}
