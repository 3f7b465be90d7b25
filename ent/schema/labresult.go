package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LabResult is a single measurement row extracted from a report. Created by
// the report processor from sanitized vision output, then annotated by the
// unit normalizer (unit_canonical) and the analyte mapper (analyte_id,
// mapping_*). analyte_id stays NULL until mapping resolves.
type LabResult struct {
	ent.Schema
}

// Fields of the LabResult.
func (LabResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("report_id"),
		field.String("user_id").
			Optional().
			Nillable(),
		field.Int("position").
			Comment("Monotonic order of the row within its report"),
		field.String("parameter_name").
			Comment("Raw label as printed on the report"),
		field.String("result_text"),
		field.Float("numeric_result").
			Optional().
			Nillable(),
		field.String("unit_raw"),
		field.String("unit_canonical").
			Optional().
			Nillable().
			Comment("UCUM form set by the unit normalizer"),
		field.Float("ref_lower").
			Optional().
			Nillable(),
		field.String("ref_lower_operator").
			Optional().
			Nillable(),
		field.Float("ref_upper").
			Optional().
			Nillable(),
		field.String("ref_upper_operator").
			Optional().
			Nillable(),
		field.String("ref_text").
			Optional().
			Nillable(),
		field.String("ref_full_text").
			Optional().
			Nillable(),
		field.Bool("out_of_range").
			Default(false),
		field.String("specimen_type").
			Optional().
			Nillable(),
		field.String("analyte_id").
			Optional().
			Nillable(),
		field.Float("mapping_confidence").
			Optional().
			Nillable(),
		field.String("mapping_source").
			Optional().
			Nillable().
			Comment("How analyte_id was set: auto_exact, auto_fuzzy, auto_fuzzy_llm_confirmed, auto_llm, manual_approved, manual_review"),
		field.Time("mapped_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the LabResult.
func (LabResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("report", PatientReport.Type).
			Ref("results").
			Field("report_id").
			Unique().
			Required(),
		edge.From("analyte", Analyte.Type).
			Ref("results").
			Field("analyte_id").
			Unique(),
	}
}

// Indexes of the LabResult.
func (LabResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("report_id", "position").
			Unique(),
		index.Fields("user_id"),
		index.Fields("analyte_id"),
		// parameter_name additionally carries a trigram GIN index,
		// created in migrations (ent cannot express it).
		index.Fields("parameter_name"),
	}
}
