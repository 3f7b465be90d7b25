// Code generated by ent, DO NOT EDIT.

package sqlgenerationlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sqlgenerationlog type in the database.
	Label = "sql_generation_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldUserHash holds the string denoting the user_hash field in the database.
	FieldUserHash = "user_hash"
	// FieldPrompt holds the string denoting the prompt field in the database.
	FieldPrompt = "prompt"
	// FieldGeneratedSQL holds the string denoting the generated_sql field in the database.
	FieldGeneratedSQL = "generated_sql"
	// FieldSQLHash holds the string denoting the sql_hash field in the database.
	FieldSQLHash = "sql_hash"
	// FieldIterations holds the string denoting the iterations field in the database.
	FieldIterations = "iterations"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the sqlgenerationlog in the database.
	Table = "sql_generation_logs"
)

// Columns holds all SQL columns for sqlgenerationlog fields.
var Columns = []string{
	FieldID,
	FieldStatus,
	FieldUserHash,
	FieldPrompt,
	FieldGeneratedSQL,
	FieldSQLHash,
	FieldIterations,
	FieldDurationMs,
	FieldMetadata,
	FieldSessionID,
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
	// DefaultIterations holds the default value on creation for the "iterations" field.
	DefaultIterations int
	// DefaultDurationMs holds the default value on creation for the "duration_ms" field.
	DefaultDurationMs int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the SQLGenerationLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByUserHash orders the results by the user_hash field.
func ByUserHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserHash, opts...).ToFunc()
}

// ByPrompt orders the results by the prompt field.
func ByPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrompt, opts...).ToFunc()
}

// ByGeneratedSQL orders the results by the generated_sql field.
func ByGeneratedSQL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeneratedSQL, opts...).ToFunc()
}

// BySQLHash orders the results by the sql_hash field.
func BySQLHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSQLHash, opts...).ToFunc()
}

// ByIterations orders the results by the iterations field.
func ByIterations(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIterations, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
