package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PendingAnalyte is a proposed analyte emitted by the LLM mapper when no
// existing analyte matches. Keyed by proposed_code; repeated proposals merge
// their evidence and append to parameter_variations. An admin either
// approves (promoting it into analytes) or discards it.
type PendingAnalyte struct {
	ent.Schema
}

// Fields of the PendingAnalyte.
func (PendingAnalyte) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("proposed_code").
			Unique(),
		field.String("proposed_name"),
		field.String("unit").
			Optional(),
		field.String("category").
			Optional().
			Nillable(),
		field.Float("confidence"),
		field.JSON("evidence", map[string]interface{}{}).
			Optional().
			Comment("report ids, occurrence_count, LLM comments"),
		field.JSON("parameter_variations", []string{}).
			Optional().
			Comment("Distinct raw labels that produced this proposal"),
		field.Enum("status").
			Values("pending", "approved", "discarded").
			Default("pending"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the PendingAnalyte.
func (PendingAnalyte) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}
