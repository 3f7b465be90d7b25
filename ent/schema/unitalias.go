package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// UnitAlias maps a normalized raw unit string to its canonical UCUM form.
// The alias itself is the primary key: one canonical per alias, forever.
// learn_count increments only when a later observation agrees with the
// stored canonical; disagreement is queued as a unit review instead.
type UnitAlias struct {
	ent.Schema
}

// Fields of the UnitAlias.
func (UnitAlias) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("alias").
			Unique().
			Immutable().
			Comment("Normalized alias text (NFKC, lowercase, collapsed whitespace)"),
		field.String("canonical").
			Comment("UCUM code"),
		field.String("source").
			Default("seed").
			Comment("seed or llm"),
		field.Int("learn_count").
			Default(1),
		field.Time("last_used_at").
			Default(time.Now),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
