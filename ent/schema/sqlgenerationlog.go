package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SQLGenerationLog is the audit trail of the agentic SQL loop. One row per
// terminal loop outcome, successful or not. The app role cannot read this
// table back (RLS policy USING (false)).
type SQLGenerationLog struct {
	ent.Schema
}

// Annotations of the SQLGenerationLog.
func (SQLGenerationLog) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "sql_generation_logs"},
	}
}

// Fields of the SQLGenerationLog.
func (SQLGenerationLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("status").
			Comment("success, validation_failed, no_final_query, timeout, error"),
		field.String("user_hash").
			Comment("SHA-256 of the user id; raw ids stay out of the audit trail"),
		field.Text("prompt"),
		field.Text("generated_sql").
			Optional(),
		field.String("sql_hash").
			Optional().
			Comment("SHA-256 of the final SQL"),
		field.Int("iterations").
			Default(0),
		field.Int("duration_ms").
			Default(0),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.String("session_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the SQLGenerationLog.
func (SQLGenerationLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("session_id"),
	}
}
