// Code generated by ent, DO NOT EDIT.

package analytealias

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the analytealias type in the database.
	Label = "analyte_alias"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAnalyteID holds the string denoting the analyte_id field in the database.
	FieldAnalyteID = "analyte_id"
	// FieldAlias holds the string denoting the alias field in the database.
	FieldAlias = "alias"
	// FieldDisplay holds the string denoting the display field in the database.
	FieldDisplay = "display"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeAnalyte holds the string denoting the analyte edge name in mutations.
	EdgeAnalyte = "analyte"
	// Table holds the table name of the analytealias in the database.
	Table = "analyte_alias"
	// AnalyteTable is the table that holds the analyte relation/edge.
	AnalyteTable = "analyte_alias"
	// AnalyteInverseTable is the table name for the Analyte entity.
	// It exists in this package in order to avoid circular dependency with the "analyte" package.
	AnalyteInverseTable = "analytes"
	// AnalyteColumn is the table column denoting the analyte relation/edge.
	AnalyteColumn = "analyte_id"
)

// Columns holds all SQL columns for analytealias fields.
var Columns = []string{
	FieldID,
	FieldAnalyteID,
	FieldAlias,
	FieldDisplay,
	FieldLanguage,
	FieldConfidence,
	FieldSource,
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
	// DefaultLanguage holds the default value on creation for the "language" field.
	DefaultLanguage string
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the AnalyteAlias queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAnalyteID orders the results by the analyte_id field.
func ByAnalyteID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalyteID, opts...).ToFunc()
}

// ByAlias orders the results by the alias field.
func ByAlias(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlias, opts...).ToFunc()
}

// ByDisplay orders the results by the display field.
func ByDisplay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplay, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByAnalyteField orders the results by analyte field.
func ByAnalyteField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAnalyteStep(), sql.OrderByField(field, opts...))
	}
}
func newAnalyteStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnalyteInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AnalyteTable, AnalyteColumn),
	)
}
