package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Analyte is a canonical laboratory measurand identified by a stable code.
// Shared catalog (not tenant-scoped). Rows are promoted from pending
// analytes on admin approval and never deleted during normal operation.
type Analyte struct {
	ent.Schema
}

// Fields of the Analyte.
func (Analyte) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("code").
			Unique().
			Comment("Stable uppercase code, e.g. HDL"),
		field.String("name"),
		field.String("canonical_unit"),
		field.String("category").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Analyte.
func (Analyte) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("aliases", AnalyteAlias.Type),
		edge.To("results", LabResult.Type),
	}
}

// Indexes of the Analyte.
func (Analyte) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("code"),
	}
}
