// Code generated by ent, DO NOT EDIT.

package labresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the labresult type in the database.
	Label = "lab_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldReportID holds the string denoting the report_id field in the database.
	FieldReportID = "report_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldParameterName holds the string denoting the parameter_name field in the database.
	FieldParameterName = "parameter_name"
	// FieldResultText holds the string denoting the result_text field in the database.
	FieldResultText = "result_text"
	// FieldNumericResult holds the string denoting the numeric_result field in the database.
	FieldNumericResult = "numeric_result"
	// FieldUnitRaw holds the string denoting the unit_raw field in the database.
	FieldUnitRaw = "unit_raw"
	// FieldUnitCanonical holds the string denoting the unit_canonical field in the database.
	FieldUnitCanonical = "unit_canonical"
	// FieldRefLower holds the string denoting the ref_lower field in the database.
	FieldRefLower = "ref_lower"
	// FieldRefLowerOperator holds the string denoting the ref_lower_operator field in the database.
	FieldRefLowerOperator = "ref_lower_operator"
	// FieldRefUpper holds the string denoting the ref_upper field in the database.
	FieldRefUpper = "ref_upper"
	// FieldRefUpperOperator holds the string denoting the ref_upper_operator field in the database.
	FieldRefUpperOperator = "ref_upper_operator"
	// FieldRefText holds the string denoting the ref_text field in the database.
	FieldRefText = "ref_text"
	// FieldRefFullText holds the string denoting the ref_full_text field in the database.
	FieldRefFullText = "ref_full_text"
	// FieldOutOfRange holds the string denoting the out_of_range field in the database.
	FieldOutOfRange = "out_of_range"
	// FieldSpecimenType holds the string denoting the specimen_type field in the database.
	FieldSpecimenType = "specimen_type"
	// FieldAnalyteID holds the string denoting the analyte_id field in the database.
	FieldAnalyteID = "analyte_id"
	// FieldMappingConfidence holds the string denoting the mapping_confidence field in the database.
	FieldMappingConfidence = "mapping_confidence"
	// FieldMappingSource holds the string denoting the mapping_source field in the database.
	FieldMappingSource = "mapping_source"
	// FieldMappedAt holds the string denoting the mapped_at field in the database.
	FieldMappedAt = "mapped_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeReport holds the string denoting the report edge name in mutations.
	EdgeReport = "report"
	// EdgeAnalyte holds the string denoting the analyte edge name in mutations.
	EdgeAnalyte = "analyte"
	// Table holds the table name of the labresult in the database.
	Table = "lab_results"
	// ReportTable is the table that holds the report relation/edge.
	ReportTable = "lab_results"
	// ReportInverseTable is the table name for the PatientReport entity.
	// It exists in this package in order to avoid circular dependency with the "patientreport" package.
	ReportInverseTable = "patient_reports"
	// ReportColumn is the table column denoting the report relation/edge.
	ReportColumn = "report_id"
	// AnalyteTable is the table that holds the analyte relation/edge.
	AnalyteTable = "lab_results"
	// AnalyteInverseTable is the table name for the Analyte entity.
	// It exists in this package in order to avoid circular dependency with the "analyte" package.
	AnalyteInverseTable = "analytes"
	// AnalyteColumn is the table column denoting the analyte relation/edge.
	AnalyteColumn = "analyte_id"
)

// Columns holds all SQL columns for labresult fields.
var Columns = []string{
	FieldID,
	FieldReportID,
	FieldUserID,
	FieldPosition,
	FieldParameterName,
	FieldResultText,
	FieldNumericResult,
	FieldUnitRaw,
	FieldUnitCanonical,
	FieldRefLower,
	FieldRefLowerOperator,
	FieldRefUpper,
	FieldRefUpperOperator,
	FieldRefText,
	FieldRefFullText,
	FieldOutOfRange,
	FieldSpecimenType,
	FieldAnalyteID,
	FieldMappingConfidence,
	FieldMappingSource,
	FieldMappedAt,
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
	// DefaultOutOfRange holds the default value on creation for the "out_of_range" field.
	DefaultOutOfRange bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the LabResult queries.
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

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByParameterName orders the results by the parameter_name field.
func ByParameterName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParameterName, opts...).ToFunc()
}

// ByResultText orders the results by the result_text field.
func ByResultText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResultText, opts...).ToFunc()
}

// ByNumericResult orders the results by the numeric_result field.
func ByNumericResult(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumericResult, opts...).ToFunc()
}

// ByUnitRaw orders the results by the unit_raw field.
func ByUnitRaw(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitRaw, opts...).ToFunc()
}

// ByUnitCanonical orders the results by the unit_canonical field.
func ByUnitCanonical(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitCanonical, opts...).ToFunc()
}

// ByRefLower orders the results by the ref_lower field.
func ByRefLower(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRefLower, opts...).ToFunc()
}

// ByRefLowerOperator orders the results by the ref_lower_operator field.
func ByRefLowerOperator(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRefLowerOperator, opts...).ToFunc()
}

// ByRefUpper orders the results by the ref_upper field.
func ByRefUpper(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRefUpper, opts...).ToFunc()
}

// ByRefUpperOperator orders the results by the ref_upper_operator field.
func ByRefUpperOperator(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRefUpperOperator, opts...).ToFunc()
}

// ByRefText orders the results by the ref_text field.
func ByRefText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRefText, opts...).ToFunc()
}

// ByRefFullText orders the results by the ref_full_text field.
func ByRefFullText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRefFullText, opts...).ToFunc()
}

// ByOutOfRange orders the results by the out_of_range field.
func ByOutOfRange(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutOfRange, opts...).ToFunc()
}

// BySpecimenType orders the results by the specimen_type field.
func BySpecimenType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpecimenType, opts...).ToFunc()
}

// ByAnalyteID orders the results by the analyte_id field.
func ByAnalyteID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalyteID, opts...).ToFunc()
}

// ByMappingConfidence orders the results by the mapping_confidence field.
func ByMappingConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMappingConfidence, opts...).ToFunc()
}

// ByMappingSource orders the results by the mapping_source field.
func ByMappingSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMappingSource, opts...).ToFunc()
}

// ByMappedAt orders the results by the mapped_at field.
func ByMappedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMappedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByReportField orders the results by report field.
func ByReportField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReportStep(), sql.OrderByField(field, opts...))
	}
}

// ByAnalyteField orders the results by analyte field.
func ByAnalyteField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAnalyteStep(), sql.OrderByField(field, opts...))
	}
}
func newReportStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReportInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ReportTable, ReportColumn),
	)
}
func newAnalyteStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnalyteInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AnalyteTable, AnalyteColumn),
	)
}
