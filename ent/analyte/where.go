// Code generated by ent, DO NOT EDIT.

package analyte

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/labdex/labdex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Analyte {
	return predicate.Analyte(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Analyte {
	return predicate.Analyte(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Analyte {
	return predicate.Analyte(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Analyte {
	return predicate.Analyte(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Analyte {
	return predicate.Analyte(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Analyte {
	return predicate.Analyte(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Analyte {
	return predicate.Analyte(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Analyte {
	return predicate.Analyte(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Analyte {
	return predicate.Analyte(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Analyte {
	return predicate.Analyte(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Analyte {
	return predicate.Analyte(sql.FieldContainsFold(FieldID, id))
}

// Code applies equality check predicate on the "code" field. It's identical to CodeEQ.
func Code(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldEQ(FieldCode, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldEQ(FieldName, v))
}

// CanonicalUnit applies equality check predicate on the "canonical_unit" field. It's identical to CanonicalUnitEQ.
func CanonicalUnit(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldEQ(FieldCanonicalUnit, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldEQ(FieldCategory, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Analyte {
	return predicate.Analyte(sql.FieldEQ(FieldCreatedAt, v))
}

// CodeEQ applies the EQ predicate on the "code" field.
func CodeEQ(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldEQ(FieldCode, v))
}

// CodeNEQ applies the NEQ predicate on the "code" field.
func CodeNEQ(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldNEQ(FieldCode, v))
}

// CodeIn applies the In predicate on the "code" field.
func CodeIn(vs ...string) predicate.Analyte {
	return predicate.Analyte(sql.FieldIn(FieldCode, vs...))
}

// CodeNotIn applies the NotIn predicate on the "code" field.
func CodeNotIn(vs ...string) predicate.Analyte {
	return predicate.Analyte(sql.FieldNotIn(FieldCode, vs...))
}

// CodeGT applies the GT predicate on the "code" field.
func CodeGT(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldGT(FieldCode, v))
}

// CodeGTE applies the GTE predicate on the "code" field.
func CodeGTE(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldGTE(FieldCode, v))
}

// CodeLT applies the LT predicate on the "code" field.
func CodeLT(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldLT(FieldCode, v))
}

// CodeLTE applies the LTE predicate on the "code" field.
func CodeLTE(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldLTE(FieldCode, v))
}

// CodeContains applies the Contains predicate on the "code" field.
func CodeContains(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldContains(FieldCode, v))
}

// CodeHasPrefix applies the HasPrefix predicate on the "code" field.
func CodeHasPrefix(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldHasPrefix(FieldCode, v))
}

// CodeHasSuffix applies the HasSuffix predicate on the "code" field.
func CodeHasSuffix(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldHasSuffix(FieldCode, v))
}

// CodeEqualFold applies the EqualFold predicate on the "code" field.
func CodeEqualFold(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldEqualFold(FieldCode, v))
}

// CodeContainsFold applies the ContainsFold predicate on the "code" field.
func CodeContainsFold(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldContainsFold(FieldCode, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Analyte {
	return predicate.Analyte(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Analyte {
	return predicate.Analyte(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldContainsFold(FieldName, v))
}

// CanonicalUnitEQ applies the EQ predicate on the "canonical_unit" field.
func CanonicalUnitEQ(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldEQ(FieldCanonicalUnit, v))
}

// CanonicalUnitNEQ applies the NEQ predicate on the "canonical_unit" field.
func CanonicalUnitNEQ(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldNEQ(FieldCanonicalUnit, v))
}

// CanonicalUnitIn applies the In predicate on the "canonical_unit" field.
func CanonicalUnitIn(vs ...string) predicate.Analyte {
	return predicate.Analyte(sql.FieldIn(FieldCanonicalUnit, vs...))
}

// CanonicalUnitNotIn applies the NotIn predicate on the "canonical_unit" field.
func CanonicalUnitNotIn(vs ...string) predicate.Analyte {
	return predicate.Analyte(sql.FieldNotIn(FieldCanonicalUnit, vs...))
}

// CanonicalUnitGT applies the GT predicate on the "canonical_unit" field.
func CanonicalUnitGT(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldGT(FieldCanonicalUnit, v))
}

// CanonicalUnitGTE applies the GTE predicate on the "canonical_unit" field.
func CanonicalUnitGTE(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldGTE(FieldCanonicalUnit, v))
}

// CanonicalUnitLT applies the LT predicate on the "canonical_unit" field.
func CanonicalUnitLT(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldLT(FieldCanonicalUnit, v))
}

// CanonicalUnitLTE applies the LTE predicate on the "canonical_unit" field.
func CanonicalUnitLTE(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldLTE(FieldCanonicalUnit, v))
}

// CanonicalUnitContains applies the Contains predicate on the "canonical_unit" field.
func CanonicalUnitContains(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldContains(FieldCanonicalUnit, v))
}

// CanonicalUnitHasPrefix applies the HasPrefix predicate on the "canonical_unit" field.
func CanonicalUnitHasPrefix(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldHasPrefix(FieldCanonicalUnit, v))
}

// CanonicalUnitHasSuffix applies the HasSuffix predicate on the "canonical_unit" field.
func CanonicalUnitHasSuffix(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldHasSuffix(FieldCanonicalUnit, v))
}

// CanonicalUnitEqualFold applies the EqualFold predicate on the "canonical_unit" field.
func CanonicalUnitEqualFold(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldEqualFold(FieldCanonicalUnit, v))
}

// CanonicalUnitContainsFold applies the ContainsFold predicate on the "canonical_unit" field.
func CanonicalUnitContainsFold(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldContainsFold(FieldCanonicalUnit, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Analyte {
	return predicate.Analyte(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Analyte {
	return predicate.Analyte(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.Analyte {
	return predicate.Analyte(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.Analyte {
	return predicate.Analyte(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Analyte {
	return predicate.Analyte(sql.FieldContainsFold(FieldCategory, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Analyte {
	return predicate.Analyte(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Analyte {
	return predicate.Analyte(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Analyte {
	return predicate.Analyte(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Analyte {
	return predicate.Analyte(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Analyte {
	return predicate.Analyte(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Analyte {
	return predicate.Analyte(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Analyte {
	return predicate.Analyte(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Analyte {
	return predicate.Analyte(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAliases applies the HasEdge predicate on the "aliases" edge.
func HasAliases() predicate.Analyte {
	return predicate.Analyte(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AliasesTable, AliasesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAliasesWith applies the HasEdge predicate on the "aliases" edge with a given conditions (other predicates).
func HasAliasesWith(preds ...predicate.AnalyteAlias) predicate.Analyte {
	return predicate.Analyte(func(s *sql.Selector) {
		step := newAliasesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasResults applies the HasEdge predicate on the "results" edge.
func HasResults() predicate.Analyte {
	return predicate.Analyte(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ResultsTable, ResultsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResultsWith applies the HasEdge predicate on the "results" edge with a given conditions (other predicates).
func HasResultsWith(preds ...predicate.LabResult) predicate.Analyte {
	return predicate.Analyte(func(s *sql.Selector) {
		step := newResultsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Analyte) predicate.Analyte {
	return predicate.Analyte(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Analyte) predicate.Analyte {
	return predicate.Analyte(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Analyte) predicate.Analyte {
	return predicate.Analyte(sql.NotPredicates(p))
}
