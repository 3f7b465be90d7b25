package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PatientReport is one ingested lab report document. Identified by
// (patient_id, checksum): re-ingesting the same bytes for the same patient
// updates the existing row in place and replaces its lab results.
type PatientReport struct {
	ent.Schema
}

// Fields of the PatientReport.
func (PatientReport) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("patient_id"),
		field.String("user_id").
			Optional().
			Nillable(),
		field.String("source_filename"),
		field.String("mime_type"),
		field.String("checksum").
			Comment("SHA-256 of the raw payload, hex encoded"),
		field.String("parser_version"),
		field.Enum("status").
			Values("received", "processed", "failed").
			Default("received"),
		field.Time("recognized_at").
			Optional().
			Nillable().
			Comment("When vision extraction completed"),
		field.Time("processed_at").
			Optional().
			Nillable().
			Comment("When unit/analyte mapping completed"),
		field.Time("test_date").
			Optional().
			Nillable(),
		field.String("patient_name").
			Optional().
			Nillable().
			Comment("Snapshot from the document, not the Patient row"),
		field.String("patient_gender").
			Optional().
			Nillable(),
		field.Time("patient_dob").
			Optional().
			Nillable(),
		field.Int("patient_age").
			Optional().
			Nillable(),
		field.Text("raw_model_output").
			Optional().
			Comment("Opaque vision-model JSON; never consumed downstream"),
		field.JSON("missing_data", []string{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the PatientReport.
func (PatientReport) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("reports").
			Field("patient_id").
			Unique().
			Required(),
		edge.To("results", LabResult.Type),
	}
}

// Indexes of the PatientReport.
func (PatientReport) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "checksum").
			Unique(),
		index.Fields("user_id"),
		index.Fields("status"),
	}
}
