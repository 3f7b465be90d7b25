// Code generated by ent, DO NOT EDIT.

package matchreview

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the matchreview type in the database.
	Label = "match_review"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldResultID holds the string denoting the result_id field in the database.
	FieldResultID = "result_id"
	// FieldCandidates holds the string denoting the candidates field in the database.
	FieldCandidates = "candidates"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldPendingCode holds the string denoting the pending_code field in the database.
	FieldPendingCode = "pending_code"
	// FieldLlmComment holds the string denoting the llm_comment field in the database.
	FieldLlmComment = "llm_comment"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldResolvedVia holds the string denoting the resolved_via field in the database.
	FieldResolvedVia = "resolved_via"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldResolvedAt holds the string denoting the resolved_at field in the database.
	FieldResolvedAt = "resolved_at"
	// Table holds the table name of the matchreview in the database.
	Table = "match_reviews"
)

// Columns holds all SQL columns for matchreview fields.
var Columns = []string{
	FieldID,
	FieldResultID,
	FieldCandidates,
	FieldSource,
	FieldPendingCode,
	FieldLlmComment,
	FieldStatus,
	FieldResolvedVia,
	FieldCreatedAt,
	FieldResolvedAt,
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
	// DefaultSource holds the default value on creation for the "source" field.
	DefaultSource string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending  Status = "pending"
	StatusResolved Status = "resolved"
	StatusSkipped  Status = "skipped"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusResolved, StatusSkipped:
		return nil
	default:
		return fmt.Errorf("matchreview: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the MatchReview queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByResultID orders the results by the result_id field.
func ByResultID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResultID, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByPendingCode orders the results by the pending_code field.
func ByPendingCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPendingCode, opts...).ToFunc()
}

// ByLlmComment orders the results by the llm_comment field.
func ByLlmComment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLlmComment, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByResolvedVia orders the results by the resolved_via field.
func ByResolvedVia(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedVia, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByResolvedAt orders the results by the resolved_at field.
func ByResolvedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedAt, opts...).ToFunc()
}
