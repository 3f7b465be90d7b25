// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/labdex/labdex/ent/gmailprovenance"
)

// GmailProvenance is the model entity for the GmailProvenance schema.
type GmailProvenance struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ReportID holds the value of the "report_id" field.
	ReportID string `json:"report_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID *string `json:"user_id,omitempty"`
	// MessageID holds the value of the "message_id" field.
	MessageID string `json:"message_id,omitempty"`
	// AttachmentID holds the value of the "attachment_id" field.
	AttachmentID string `json:"attachment_id,omitempty"`
	// SenderEmail holds the value of the "sender_email" field.
	SenderEmail string `json:"sender_email,omitempty"`
	// SenderName holds the value of the "sender_name" field.
	SenderName string `json:"sender_name,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// EmailDate holds the value of the "email_date" field.
	EmailDate *time.Time `json:"email_date,omitempty"`
	// AttachmentSha256 holds the value of the "attachment_sha256" field.
	AttachmentSha256 string `json:"attachment_sha256,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GmailProvenance) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case gmailprovenance.FieldID, gmailprovenance.FieldReportID, gmailprovenance.FieldUserID, gmailprovenance.FieldMessageID, gmailprovenance.FieldAttachmentID, gmailprovenance.FieldSenderEmail, gmailprovenance.FieldSenderName, gmailprovenance.FieldSubject, gmailprovenance.FieldAttachmentSha256:
			values[i] = new(sql.NullString)
		case gmailprovenance.FieldEmailDate, gmailprovenance.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GmailProvenance fields.
func (_m *GmailProvenance) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case gmailprovenance.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case gmailprovenance.FieldReportID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field report_id", values[i])
			} else if value.Valid {
				_m.ReportID = value.String
			}
		case gmailprovenance.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = new(string)
				*_m.UserID = value.String
			}
		case gmailprovenance.FieldMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message_id", values[i])
			} else if value.Valid {
				_m.MessageID = value.String
			}
		case gmailprovenance.FieldAttachmentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field attachment_id", values[i])
			} else if value.Valid {
				_m.AttachmentID = value.String
			}
		case gmailprovenance.FieldSenderEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sender_email", values[i])
			} else if value.Valid {
				_m.SenderEmail = value.String
			}
		case gmailprovenance.FieldSenderName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sender_name", values[i])
			} else if value.Valid {
				_m.SenderName = value.String
			}
		case gmailprovenance.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case gmailprovenance.FieldEmailDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field email_date", values[i])
			} else if value.Valid {
				_m.EmailDate = new(time.Time)
				*_m.EmailDate = value.Time
			}
		case gmailprovenance.FieldAttachmentSha256:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field attachment_sha256", values[i])
			} else if value.Valid {
				_m.AttachmentSha256 = value.String
			}
		case gmailprovenance.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GmailProvenance.
// This includes values selected through modifiers, order, etc.
func (_m *GmailProvenance) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GmailProvenance.
// Note that you need to call GmailProvenance.Unwrap() before calling this method if this GmailProvenance
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GmailProvenance) Update() *GmailProvenanceUpdateOne {
	return NewGmailProvenanceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GmailProvenance entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GmailProvenance) Unwrap() *GmailProvenance {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GmailProvenance is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GmailProvenance) String() string {
	var builder strings.Builder
	builder.WriteString("GmailProvenance(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("report_id=")
	builder.WriteString(_m.ReportID)
	builder.WriteString(", ")
	if v := _m.UserID; v != nil {
		builder.WriteString("user_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("message_id=")
	builder.WriteString(_m.MessageID)
	builder.WriteString(", ")
	builder.WriteString("attachment_id=")
	builder.WriteString(_m.AttachmentID)
	builder.WriteString(", ")
	builder.WriteString("sender_email=")
	builder.WriteString(_m.SenderEmail)
	builder.WriteString(", ")
	builder.WriteString("sender_name=")
	builder.WriteString(_m.SenderName)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	if v := _m.EmailDate; v != nil {
		builder.WriteString("email_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("attachment_sha256=")
	builder.WriteString(_m.AttachmentSha256)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GmailProvenances is a parsable slice of GmailProvenance.
type GmailProvenances []*GmailProvenance
