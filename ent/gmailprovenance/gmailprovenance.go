// Code generated by ent, DO NOT EDIT.

package gmailprovenance

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the gmailprovenance type in the database.
	Label = "gmail_provenance"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldReportID holds the string denoting the report_id field in the database.
	FieldReportID = "report_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldMessageID holds the string denoting the message_id field in the database.
	FieldMessageID = "message_id"
	// FieldAttachmentID holds the string denoting the attachment_id field in the database.
	FieldAttachmentID = "attachment_id"
	// FieldSenderEmail holds the string denoting the sender_email field in the database.
	FieldSenderEmail = "sender_email"
	// FieldSenderName holds the string denoting the sender_name field in the database.
	FieldSenderName = "sender_name"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldEmailDate holds the string denoting the email_date field in the database.
	FieldEmailDate = "email_date"
	// FieldAttachmentSha256 holds the string denoting the attachment_sha256 field in the database.
	FieldAttachmentSha256 = "attachment_sha256"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the gmailprovenance in the database.
	Table = "gmail_report_provenance"
)

// Columns holds all SQL columns for gmailprovenance fields.
var Columns = []string{
	FieldID,
	FieldReportID,
	FieldUserID,
	FieldMessageID,
	FieldAttachmentID,
	FieldSenderEmail,
	FieldSenderName,
	FieldSubject,
	FieldEmailDate,
	FieldAttachmentSha256,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the GmailProvenance queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByReportID orders the results by the report_id field.
func ByReportID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByMessageID orders the results by the message_id field.
func ByMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageID, opts...).ToFunc()
}

// ByAttachmentID orders the results by the attachment_id field.
func ByAttachmentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttachmentID, opts...).ToFunc()
}

// BySenderEmail orders the results by the sender_email field.
func BySenderEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSenderEmail, opts...).ToFunc()
}

// BySenderName orders the results by the sender_name field.
func BySenderName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSenderName, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByEmailDate orders the results by the email_date field.
func ByEmailDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailDate, opts...).ToFunc()
}

// ByAttachmentSha256 orders the results by the attachment_sha256 field.
func ByAttachmentSha256(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttachmentSha256, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
