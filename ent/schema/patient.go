package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Patient is a person whose lab reports are tracked. Tenant-scoped: RLS
// filters rows by user_id. user_id is nullable only during the auth
// migration window; new writes always set it.
type Patient struct {
	ent.Schema
}

// Fields of the Patient.
func (Patient) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("user_id").
			Optional().
			Nillable().
			Comment("Nullable only during the auth migration window"),
		field.String("display_name"),
		field.String("name_normalized").
			Comment("Lowercased, diacritic-folded form for matching"),
		field.Time("date_of_birth").
			Optional().
			Nillable(),
		field.String("gender").
			Optional().
			Nillable(),
		field.Time("last_report_at").
			Optional().
			Nillable().
			Comment("Instant of the most recently seen report"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Patient.
func (Patient) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("patients").
			Field("user_id").
			Unique(),
		edge.To("reports", PatientReport.Type),
	}
}

// Indexes of the Patient.
func (Patient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("name_normalized"),
	}
}
