package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Identity links a User to an external auth provider. A user may own
// several identities (e.g. google + github) but a provider subject maps to
// exactly one user.
type Identity struct {
	ent.Schema
}

// Fields of the Identity.
func (Identity) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("user_id"),
		field.String("provider").
			Comment("Provider name (e.g. 'google')"),
		field.String("subject").
			Comment("Provider-specific subject identifier"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Identity.
func (Identity) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("identities").
			Field("user_id").
			Unique().
			Required(),
	}
}

// Indexes of the Identity.
func (Identity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider", "subject").
			Unique(),
		index.Fields("user_id"),
	}
}
