// Code generated by ent, DO NOT EDIT.

package unitalias

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the unitalias type in the database.
	Label = "unit_alias"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "alias"
	// FieldCanonical holds the string denoting the canonical field in the database.
	FieldCanonical = "canonical"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldLearnCount holds the string denoting the learn_count field in the database.
	FieldLearnCount = "learn_count"
	// FieldLastUsedAt holds the string denoting the last_used_at field in the database.
	FieldLastUsedAt = "last_used_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the unitalias in the database.
	Table = "unit_alias"
)

// Columns holds all SQL columns for unitalias fields.
var Columns = []string{
	FieldID,
	FieldCanonical,
	FieldSource,
	FieldLearnCount,
	FieldLastUsedAt,
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
	// DefaultSource holds the default value on creation for the "source" field.
	DefaultSource string
	// DefaultLearnCount holds the default value on creation for the "learn_count" field.
	DefaultLearnCount int
	// DefaultLastUsedAt holds the default value on creation for the "last_used_at" field.
	DefaultLastUsedAt func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the UnitAlias queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCanonical orders the results by the canonical field.
func ByCanonical(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanonical, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByLearnCount orders the results by the learn_count field.
func ByLearnCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnCount, opts...).ToFunc()
}

// ByLastUsedAt orders the results by the last_used_at field.
func ByLastUsedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUsedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
