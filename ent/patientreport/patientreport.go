// Code generated by ent, DO NOT EDIT.

package patientreport

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the patientreport type in the database.
	Label = "patient_report"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSourceFilename holds the string denoting the source_filename field in the database.
	FieldSourceFilename = "source_filename"
	// FieldMimeType holds the string denoting the mime_type field in the database.
	FieldMimeType = "mime_type"
	// FieldChecksum holds the string denoting the checksum field in the database.
	FieldChecksum = "checksum"
	// FieldParserVersion holds the string denoting the parser_version field in the database.
	FieldParserVersion = "parser_version"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldRecognizedAt holds the string denoting the recognized_at field in the database.
	FieldRecognizedAt = "recognized_at"
	// FieldProcessedAt holds the string denoting the processed_at field in the database.
	FieldProcessedAt = "processed_at"
	// FieldTestDate holds the string denoting the test_date field in the database.
	FieldTestDate = "test_date"
	// FieldPatientName holds the string denoting the patient_name field in the database.
	FieldPatientName = "patient_name"
	// FieldPatientGender holds the string denoting the patient_gender field in the database.
	FieldPatientGender = "patient_gender"
	// FieldPatientDob holds the string denoting the patient_dob field in the database.
	FieldPatientDob = "patient_dob"
	// FieldPatientAge holds the string denoting the patient_age field in the database.
	FieldPatientAge = "patient_age"
	// FieldRawModelOutput holds the string denoting the raw_model_output field in the database.
	FieldRawModelOutput = "raw_model_output"
	// FieldMissingData holds the string denoting the missing_data field in the database.
	FieldMissingData = "missing_data"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgePatient holds the string denoting the patient edge name in mutations.
	EdgePatient = "patient"
	// EdgeResults holds the string denoting the results edge name in mutations.
	EdgeResults = "results"
	// Table holds the table name of the patientreport in the database.
	Table = "patient_reports"
	// PatientTable is the table that holds the patient relation/edge.
	PatientTable = "patient_reports"
	// PatientInverseTable is the table name for the Patient entity.
	// It exists in this package in order to avoid circular dependency with the "patient" package.
	PatientInverseTable = "patients"
	// PatientColumn is the table column denoting the patient relation/edge.
	PatientColumn = "patient_id"
	// ResultsTable is the table that holds the results relation/edge.
	ResultsTable = "lab_results"
	// ResultsInverseTable is the table name for the LabResult entity.
	// It exists in this package in order to avoid circular dependency with the "labresult" package.
	ResultsInverseTable = "lab_results"
	// ResultsColumn is the table column denoting the results relation/edge.
	ResultsColumn = "report_id"
)

// Columns holds all SQL columns for patientreport fields.
var Columns = []string{
	FieldID,
	FieldPatientID,
	FieldUserID,
	FieldSourceFilename,
	FieldMimeType,
	FieldChecksum,
	FieldParserVersion,
	FieldStatus,
	FieldRecognizedAt,
	FieldProcessedAt,
	FieldTestDate,
	FieldPatientName,
	FieldPatientGender,
	FieldPatientDob,
	FieldPatientAge,
	FieldRawModelOutput,
	FieldMissingData,
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

// StatusReceived is the default value of the Status enum.
const DefaultStatus = StatusReceived

// Status values.
const (
	StatusReceived  Status = "received"
	StatusProcessed Status = "processed"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusReceived, StatusProcessed, StatusFailed:
		return nil
	default:
		return fmt.Errorf("patientreport: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the PatientReport queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPatientID orders the results by the patient_id field.
func ByPatientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySourceFilename orders the results by the source_filename field.
func BySourceFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceFilename, opts...).ToFunc()
}

// ByMimeType orders the results by the mime_type field.
func ByMimeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMimeType, opts...).ToFunc()
}

// ByChecksum orders the results by the checksum field.
func ByChecksum(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChecksum, opts...).ToFunc()
}

// ByParserVersion orders the results by the parser_version field.
func ByParserVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParserVersion, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByRecognizedAt orders the results by the recognized_at field.
func ByRecognizedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecognizedAt, opts...).ToFunc()
}

// ByProcessedAt orders the results by the processed_at field.
func ByProcessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedAt, opts...).ToFunc()
}

// ByTestDate orders the results by the test_date field.
func ByTestDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestDate, opts...).ToFunc()
}

// ByPatientName orders the results by the patient_name field.
func ByPatientName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientName, opts...).ToFunc()
}

// ByPatientGender orders the results by the patient_gender field.
func ByPatientGender(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientGender, opts...).ToFunc()
}

// ByPatientDob orders the results by the patient_dob field.
func ByPatientDob(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientDob, opts...).ToFunc()
}

// ByPatientAge orders the results by the patient_age field.
func ByPatientAge(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientAge, opts...).ToFunc()
}

// ByRawModelOutput orders the results by the raw_model_output field.
func ByRawModelOutput(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawModelOutput, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByPatientField orders the results by patient field.
func ByPatientField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPatientStep(), sql.OrderByField(field, opts...))
	}
}

// ByResultsCount orders the results by results count.
func ByResultsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newResultsStep(), opts...)
	}
}

// ByResults orders the results by results terms.
func ByResults(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newResultsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newPatientStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PatientInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
	)
}
func newResultsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ResultsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ResultsTable, ResultsColumn),
	)
}
