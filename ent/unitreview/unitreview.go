// Code generated by ent, DO NOT EDIT.

package unitreview

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the unitreview type in the database.
	Label = "unit_review"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldResultID holds the string denoting the result_id field in the database.
	FieldResultID = "result_id"
	// FieldRawUnit holds the string denoting the raw_unit field in the database.
	FieldRawUnit = "raw_unit"
	// FieldNormalizedInput holds the string denoting the normalized_input field in the database.
	FieldNormalizedInput = "normalized_input"
	// FieldLlmSuggestion holds the string denoting the llm_suggestion field in the database.
	FieldLlmSuggestion = "llm_suggestion"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldIssueType holds the string denoting the issue_type field in the database.
	FieldIssueType = "issue_type"
	// FieldIssueDetails holds the string denoting the issue_details field in the database.
	FieldIssueDetails = "issue_details"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the unitreview in the database.
	Table = "unit_reviews"
)

// Columns holds all SQL columns for unitreview fields.
var Columns = []string{
	FieldID,
	FieldResultID,
	FieldRawUnit,
	FieldNormalizedInput,
	FieldLlmSuggestion,
	FieldConfidence,
	FieldIssueType,
	FieldIssueDetails,
	FieldStatus,
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

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusResolved  Status = "resolved"
	StatusDismissed Status = "dismissed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusResolved, StatusDismissed:
		return nil
	default:
		return fmt.Errorf("unitreview: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the UnitReview queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByResultID orders the results by the result_id field.
func ByResultID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResultID, opts...).ToFunc()
}

// ByRawUnit orders the results by the raw_unit field.
func ByRawUnit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawUnit, opts...).ToFunc()
}

// ByNormalizedInput orders the results by the normalized_input field.
func ByNormalizedInput(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNormalizedInput, opts...).ToFunc()
}

// ByLlmSuggestion orders the results by the llm_suggestion field.
func ByLlmSuggestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLlmSuggestion, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByIssueType orders the results by the issue_type field.
func ByIssueType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssueType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
