// Code generated by ent, DO NOT EDIT.

package pendinganalyte

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the pendinganalyte type in the database.
	Label = "pending_analyte"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProposedCode holds the string denoting the proposed_code field in the database.
	FieldProposedCode = "proposed_code"
	// FieldProposedName holds the string denoting the proposed_name field in the database.
	FieldProposedName = "proposed_name"
	// FieldUnit holds the string denoting the unit field in the database.
	FieldUnit = "unit"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldEvidence holds the string denoting the evidence field in the database.
	FieldEvidence = "evidence"
	// FieldParameterVariations holds the string denoting the parameter_variations field in the database.
	FieldParameterVariations = "parameter_variations"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the pendinganalyte in the database.
	Table = "pending_analytes"
)

// Columns holds all SQL columns for pendinganalyte fields.
var Columns = []string{
	FieldID,
	FieldProposedCode,
	FieldProposedName,
	FieldUnit,
	FieldCategory,
	FieldConfidence,
	FieldEvidence,
	FieldParameterVariations,
	FieldStatus,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusDiscarded Status = "discarded"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusApproved, StatusDiscarded:
		return nil
	default:
		return fmt.Errorf("pendinganalyte: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the PendingAnalyte queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProposedCode orders the results by the proposed_code field.
func ByProposedCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProposedCode, opts...).ToFunc()
}

// ByProposedName orders the results by the proposed_name field.
func ByProposedName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProposedName, opts...).ToFunc()
}

// ByUnit orders the results by the unit field.
func ByUnit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnit, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
