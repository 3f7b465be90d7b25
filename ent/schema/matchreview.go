package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MatchReview holds an ambiguous or low-confidence analyte mapping awaiting
// human review. One pending review per lab result. A pending review blocks
// no further writes; approving the referenced pending analyte transitions it
// to resolved.
type MatchReview struct {
	ent.Schema
}

// Fields of the MatchReview.
func (MatchReview) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("result_id").
			Unique(),
		field.JSON("candidates", []map[string]interface{}{}).
			Optional().
			Comment("Hydrated candidate list: code, name, similarity, origin"),
		field.String("source").
			Default("fuzzy").
			Comment("fuzzy, conflict_fuzzy_llm, pending_analyte, abstain"),
		field.String("pending_code").
			Optional().
			Nillable().
			Comment("Set when the review waits on a pending analyte approval"),
		field.Text("llm_comment").
			Optional(),
		field.Enum("status").
			Values("pending", "resolved", "skipped").
			Default("pending"),
		field.String("resolved_via").
			Optional().
			Nillable().
			Comment("alias_backfill, match_review_link, manual"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("resolved_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the MatchReview.
func (MatchReview) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("pending_code"),
	}
}
