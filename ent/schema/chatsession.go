package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatSession is a thread of conversational SQL queries. Tenant-scoped.
// The transcript carries the model-facing conversation so follow-up turns
// keep context; selected_patient_id scopes plot/table queries when the user
// has more than one patient.
type ChatSession struct {
	ent.Schema
}

// Fields of the ChatSession.
func (ChatSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("user_id"),
		field.String("selected_patient_id").
			Optional().
			Nillable(),
		field.Int("turn_count").
			Default(0),
		field.JSON("transcript", []map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ChatSession.
func (ChatSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
