package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GmailProvenance links a Gmail attachment to the report it produced.
// Unique on (message_id, attachment_id); the attachment checksum is indexed
// so byte-identical attachments under different messages dedup too.
type GmailProvenance struct {
	ent.Schema
}

// Annotations of the GmailProvenance.
func (GmailProvenance) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "gmail_report_provenance"},
	}
}

// Fields of the GmailProvenance.
func (GmailProvenance) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("report_id"),
		field.String("user_id").
			Optional().
			Nillable(),
		field.String("message_id"),
		field.String("attachment_id"),
		field.String("sender_email"),
		field.String("sender_name").
			Optional(),
		field.String("subject").
			Optional(),
		field.Time("email_date").
			Optional().
			Nillable(),
		field.String("attachment_sha256"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the GmailProvenance.
func (GmailProvenance) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("message_id", "attachment_id").
			Unique(),
		index.Fields("attachment_sha256"),
		index.Fields("report_id"),
	}
}
