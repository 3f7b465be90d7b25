// Code generated by ent, DO NOT EDIT.

package analytealias

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/labdex/labdex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldContainsFold(FieldID, id))
}

// AnalyteID applies equality check predicate on the "analyte_id" field. It's identical to AnalyteIDEQ.
func AnalyteID(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldEQ(FieldAnalyteID, v))
}

// Alias applies equality check predicate on the "alias" field. It's identical to AliasEQ.
func Alias(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldEQ(FieldAlias, v))
}

// Display applies equality check predicate on the "display" field. It's identical to DisplayEQ.
func Display(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldEQ(FieldDisplay, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldEQ(FieldLanguage, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldEQ(FieldConfidence, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldEQ(FieldSource, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldEQ(FieldCreatedAt, v))
}

// AnalyteIDEQ applies the EQ predicate on the "analyte_id" field.
func AnalyteIDEQ(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldEQ(FieldAnalyteID, v))
}

// AnalyteIDNEQ applies the NEQ predicate on the "analyte_id" field.
func AnalyteIDNEQ(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldNEQ(FieldAnalyteID, v))
}

// AnalyteIDIn applies the In predicate on the "analyte_id" field.
func AnalyteIDIn(vs ...string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldIn(FieldAnalyteID, vs...))
}

// AnalyteIDNotIn applies the NotIn predicate on the "analyte_id" field.
func AnalyteIDNotIn(vs ...string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldNotIn(FieldAnalyteID, vs...))
}

// AnalyteIDGT applies the GT predicate on the "analyte_id" field.
func AnalyteIDGT(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldGT(FieldAnalyteID, v))
}

// AnalyteIDGTE applies the GTE predicate on the "analyte_id" field.
func AnalyteIDGTE(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldGTE(FieldAnalyteID, v))
}

// AnalyteIDLT applies the LT predicate on the "analyte_id" field.
func AnalyteIDLT(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldLT(FieldAnalyteID, v))
}

// AnalyteIDLTE applies the LTE predicate on the "analyte_id" field.
func AnalyteIDLTE(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldLTE(FieldAnalyteID, v))
}

// AnalyteIDContains applies the Contains predicate on the "analyte_id" field.
func AnalyteIDContains(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldContains(FieldAnalyteID, v))
}

// AnalyteIDHasPrefix applies the HasPrefix predicate on the "analyte_id" field.
func AnalyteIDHasPrefix(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldHasPrefix(FieldAnalyteID, v))
}

// AnalyteIDHasSuffix applies the HasSuffix predicate on the "analyte_id" field.
func AnalyteIDHasSuffix(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldHasSuffix(FieldAnalyteID, v))
}

// AnalyteIDEqualFold applies the EqualFold predicate on the "analyte_id" field.
func AnalyteIDEqualFold(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldEqualFold(FieldAnalyteID, v))
}

// AnalyteIDContainsFold applies the ContainsFold predicate on the "analyte_id" field.
func AnalyteIDContainsFold(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldContainsFold(FieldAnalyteID, v))
}

// AliasEQ applies the EQ predicate on the "alias" field.
func AliasEQ(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldEQ(FieldAlias, v))
}

// AliasNEQ applies the NEQ predicate on the "alias" field.
func AliasNEQ(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldNEQ(FieldAlias, v))
}

// AliasIn applies the In predicate on the "alias" field.
func AliasIn(vs ...string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldIn(FieldAlias, vs...))
}

// AliasNotIn applies the NotIn predicate on the "alias" field.
func AliasNotIn(vs ...string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldNotIn(FieldAlias, vs...))
}

// AliasGT applies the GT predicate on the "alias" field.
func AliasGT(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldGT(FieldAlias, v))
}

// AliasGTE applies the GTE predicate on the "alias" field.
func AliasGTE(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldGTE(FieldAlias, v))
}

// AliasLT applies the LT predicate on the "alias" field.
func AliasLT(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldLT(FieldAlias, v))
}

// AliasLTE applies the LTE predicate on the "alias" field.
func AliasLTE(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldLTE(FieldAlias, v))
}

// AliasContains applies the Contains predicate on the "alias" field.
func AliasContains(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldContains(FieldAlias, v))
}

// AliasHasPrefix applies the HasPrefix predicate on the "alias" field.
func AliasHasPrefix(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldHasPrefix(FieldAlias, v))
}

// AliasHasSuffix applies the HasSuffix predicate on the "alias" field.
func AliasHasSuffix(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldHasSuffix(FieldAlias, v))
}

// AliasEqualFold applies the EqualFold predicate on the "alias" field.
func AliasEqualFold(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldEqualFold(FieldAlias, v))
}

// AliasContainsFold applies the ContainsFold predicate on the "alias" field.
func AliasContainsFold(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldContainsFold(FieldAlias, v))
}

// DisplayEQ applies the EQ predicate on the "display" field.
func DisplayEQ(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldEQ(FieldDisplay, v))
}

// DisplayNEQ applies the NEQ predicate on the "display" field.
func DisplayNEQ(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldNEQ(FieldDisplay, v))
}

// DisplayIn applies the In predicate on the "display" field.
func DisplayIn(vs ...string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldIn(FieldDisplay, vs...))
}

// DisplayNotIn applies the NotIn predicate on the "display" field.
func DisplayNotIn(vs ...string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldNotIn(FieldDisplay, vs...))
}

// DisplayGT applies the GT predicate on the "display" field.
func DisplayGT(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldGT(FieldDisplay, v))
}

// DisplayGTE applies the GTE predicate on the "display" field.
func DisplayGTE(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldGTE(FieldDisplay, v))
}

// DisplayLT applies the LT predicate on the "display" field.
func DisplayLT(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldLT(FieldDisplay, v))
}

// DisplayLTE applies the LTE predicate on the "display" field.
func DisplayLTE(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldLTE(FieldDisplay, v))
}

// DisplayContains applies the Contains predicate on the "display" field.
func DisplayContains(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldContains(FieldDisplay, v))
}

// DisplayHasPrefix applies the HasPrefix predicate on the "display" field.
func DisplayHasPrefix(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldHasPrefix(FieldDisplay, v))
}

// DisplayHasSuffix applies the HasSuffix predicate on the "display" field.
func DisplayHasSuffix(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldHasSuffix(FieldDisplay, v))
}

// DisplayEqualFold applies the EqualFold predicate on the "display" field.
func DisplayEqualFold(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldEqualFold(FieldDisplay, v))
}

// DisplayContainsFold applies the ContainsFold predicate on the "display" field.
func DisplayContainsFold(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldContainsFold(FieldDisplay, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldContainsFold(FieldLanguage, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldLTE(FieldConfidence, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldContainsFold(FieldSource, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAnalyte applies the HasEdge predicate on the "analyte" edge.
func HasAnalyte() predicate.AnalyteAlias {
	return predicate.AnalyteAlias(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AnalyteTable, AnalyteColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnalyteWith applies the HasEdge predicate on the "analyte" edge with a given conditions (other predicates).
func HasAnalyteWith(preds ...predicate.Analyte) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(func(s *sql.Selector) {
		step := newAnalyteStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnalyteAlias) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnalyteAlias) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnalyteAlias) predicate.AnalyteAlias {
	return predicate.AnalyteAlias(sql.NotPredicates(p))
}
