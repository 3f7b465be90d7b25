package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnalyteAlias is a textual variant, in any language or script, that refers
// to an analyte. Append-only: rows gain no updates after insert.
type AnalyteAlias struct {
	ent.Schema
}

// Fields of the AnalyteAlias.
func (AnalyteAlias) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("analyte_id"),
		field.String("alias").
			Comment("Normalized form used for lookup"),
		field.String("display").
			Comment("Original human-readable form"),
		field.String("language").
			Default("und"),
		field.Float("confidence").
			Default(1.0),
		field.String("source").
			Comment("seed, evidence_auto, manual_disambiguation, llm_semantic_match"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AnalyteAlias.
func (AnalyteAlias) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("analyte", Analyte.Type).
			Ref("aliases").
			Field("analyte_id").
			Unique().
			Required(),
	}
}

// Indexes of the AnalyteAlias.
func (AnalyteAlias) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("analyte_id", "alias").
			Unique(),
		// alias additionally carries a trigram GIN index (migrations).
		index.Fields("alias"),
	}
}
