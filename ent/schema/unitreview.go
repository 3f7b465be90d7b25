package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UnitReview queues a raw unit the normalizer could not confidently resolve:
// alias conflicts, UCUM validation failures, sanitization rejections, and
// low-confidence LLM suggestions. Only one pending row per raw unit.
type UnitReview struct {
	ent.Schema
}

// Fields of the UnitReview.
func (UnitReview) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("result_id").
			Unique(),
		field.String("raw_unit"),
		field.String("normalized_input"),
		field.String("llm_suggestion").
			Optional().
			Nillable(),
		field.String("confidence").
			Optional().
			Nillable().
			Comment("low, medium, high"),
		field.String("issue_type").
			Comment("alias_conflict, low_confidence, ucum_invalid, sanitization_rejected"),
		field.JSON("issue_details", map[string]interface{}{}).
			Optional(),
		field.Enum("status").
			Values("pending", "resolved", "dismissed").
			Default("pending"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the UnitReview.
func (UnitReview) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("raw_unit"),
	}
}
