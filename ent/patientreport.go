// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/labdex/labdex/ent/patient"
	"github.com/labdex/labdex/ent/patientreport"
)

// PatientReport is the model entity for the PatientReport schema.
type PatientReport struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// PatientID holds the value of the "patient_id" field.
	PatientID string `json:"patient_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID *string `json:"user_id,omitempty"`
	// SourceFilename holds the value of the "source_filename" field.
	SourceFilename string `json:"source_filename,omitempty"`
	// MimeType holds the value of the "mime_type" field.
	MimeType string `json:"mime_type,omitempty"`
	// SHA-256 of the raw payload, hex encoded
	Checksum string `json:"checksum,omitempty"`
	// ParserVersion holds the value of the "parser_version" field.
	ParserVersion string `json:"parser_version,omitempty"`
	// Status holds the value of the "status" field.
	Status patientreport.Status `json:"status,omitempty"`
	// When vision extraction completed
	RecognizedAt *time.Time `json:"recognized_at,omitempty"`
	// When unit/analyte mapping completed
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	// TestDate holds the value of the "test_date" field.
	TestDate *time.Time `json:"test_date,omitempty"`
	// Snapshot from the document, not the Patient row
	PatientName *string `json:"patient_name,omitempty"`
	// PatientGender holds the value of the "patient_gender" field.
	PatientGender *string `json:"patient_gender,omitempty"`
	// PatientDob holds the value of the "patient_dob" field.
	PatientDob *time.Time `json:"patient_dob,omitempty"`
	// PatientAge holds the value of the "patient_age" field.
	PatientAge *int `json:"patient_age,omitempty"`
	// Opaque vision-model JSON; never consumed downstream
	RawModelOutput string `json:"raw_model_output,omitempty"`
	// MissingData holds the value of the "missing_data" field.
	MissingData []string `json:"missing_data,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PatientReportQuery when eager-loading is set.
	Edges        PatientReportEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PatientReportEdges holds the relations/edges for other nodes in the graph.
type PatientReportEdges struct {
	// Patient holds the value of the patient edge.
	Patient *Patient `json:"patient,omitempty"`
	// Results holds the value of the results edge.
	Results []*LabResult `json:"results,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PatientOrErr returns the Patient value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PatientReportEdges) PatientOrErr() (*Patient, error) {
	if e.Patient != nil {
		return e.Patient, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: patient.Label}
	}
	return nil, &NotLoadedError{edge: "patient"}
}

// ResultsOrErr returns the Results value or an error if the edge
// was not loaded in eager-loading.
func (e PatientReportEdges) ResultsOrErr() ([]*LabResult, error) {
	if e.loadedTypes[1] {
		return e.Results, nil
	}
	return nil, &NotLoadedError{edge: "results"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PatientReport) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case patientreport.FieldMissingData:
			values[i] = new([]byte)
		case patientreport.FieldPatientAge:
			values[i] = new(sql.NullInt64)
		case patientreport.FieldID, patientreport.FieldPatientID, patientreport.FieldUserID, patientreport.FieldSourceFilename, patientreport.FieldMimeType, patientreport.FieldChecksum, patientreport.FieldParserVersion, patientreport.FieldStatus, patientreport.FieldPatientName, patientreport.FieldPatientGender, patientreport.FieldRawModelOutput:
			values[i] = new(sql.NullString)
		case patientreport.FieldRecognizedAt, patientreport.FieldProcessedAt, patientreport.FieldTestDate, patientreport.FieldPatientDob, patientreport.FieldCreatedAt, patientreport.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PatientReport fields.
func (_m *PatientReport) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case patientreport.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case patientreport.FieldPatientID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value.Valid {
				_m.PatientID = value.String
			}
		case patientreport.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = new(string)
				*_m.UserID = value.String
			}
		case patientreport.FieldSourceFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_filename", values[i])
			} else if value.Valid {
				_m.SourceFilename = value.String
			}
		case patientreport.FieldMimeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mime_type", values[i])
			} else if value.Valid {
				_m.MimeType = value.String
			}
		case patientreport.FieldChecksum:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field checksum", values[i])
			} else if value.Valid {
				_m.Checksum = value.String
			}
		case patientreport.FieldParserVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parser_version", values[i])
			} else if value.Valid {
				_m.ParserVersion = value.String
			}
		case patientreport.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = patientreport.Status(value.String)
			}
		case patientreport.FieldRecognizedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field recognized_at", values[i])
			} else if value.Valid {
				_m.RecognizedAt = new(time.Time)
				*_m.RecognizedAt = value.Time
			}
		case patientreport.FieldProcessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field processed_at", values[i])
			} else if value.Valid {
				_m.ProcessedAt = new(time.Time)
				*_m.ProcessedAt = value.Time
			}
		case patientreport.FieldTestDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field test_date", values[i])
			} else if value.Valid {
				_m.TestDate = new(time.Time)
				*_m.TestDate = value.Time
			}
		case patientreport.FieldPatientName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_name", values[i])
			} else if value.Valid {
				_m.PatientName = new(string)
				*_m.PatientName = value.String
			}
		case patientreport.FieldPatientGender:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_gender", values[i])
			} else if value.Valid {
				_m.PatientGender = new(string)
				*_m.PatientGender = value.String
			}
		case patientreport.FieldPatientDob:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field patient_dob", values[i])
			} else if value.Valid {
				_m.PatientDob = new(time.Time)
				*_m.PatientDob = value.Time
			}
		case patientreport.FieldPatientAge:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field patient_age", values[i])
			} else if value.Valid {
				_m.PatientAge = new(int)
				*_m.PatientAge = int(value.Int64)
			}
		case patientreport.FieldRawModelOutput:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_model_output", values[i])
			} else if value.Valid {
				_m.RawModelOutput = value.String
			}
		case patientreport.FieldMissingData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field missing_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MissingData); err != nil {
					return fmt.Errorf("unmarshal field missing_data: %w", err)
				}
			}
		case patientreport.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case patientreport.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PatientReport.
// This includes values selected through modifiers, order, etc.
func (_m *PatientReport) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPatient queries the "patient" edge of the PatientReport entity.
func (_m *PatientReport) QueryPatient() *PatientQuery {
	return NewPatientReportClient(_m.config).QueryPatient(_m)
}

// QueryResults queries the "results" edge of the PatientReport entity.
func (_m *PatientReport) QueryResults() *LabResultQuery {
	return NewPatientReportClient(_m.config).QueryResults(_m)
}

// Update returns a builder for updating this PatientReport.
// Note that you need to call PatientReport.Unwrap() before calling this method if this PatientReport
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PatientReport) Update() *PatientReportUpdateOne {
	return NewPatientReportClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PatientReport entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PatientReport) Unwrap() *PatientReport {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PatientReport is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PatientReport) String() string {
	var builder strings.Builder
	builder.WriteString("PatientReport(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("patient_id=")
	builder.WriteString(_m.PatientID)
	builder.WriteString(", ")
	if v := _m.UserID; v != nil {
		builder.WriteString("user_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("source_filename=")
	builder.WriteString(_m.SourceFilename)
	builder.WriteString(", ")
	builder.WriteString("mime_type=")
	builder.WriteString(_m.MimeType)
	builder.WriteString(", ")
	builder.WriteString("checksum=")
	builder.WriteString(_m.Checksum)
	builder.WriteString(", ")
	builder.WriteString("parser_version=")
	builder.WriteString(_m.ParserVersion)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.RecognizedAt; v != nil {
		builder.WriteString("recognized_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ProcessedAt; v != nil {
		builder.WriteString("processed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.TestDate; v != nil {
		builder.WriteString("test_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PatientName; v != nil {
		builder.WriteString("patient_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PatientGender; v != nil {
		builder.WriteString("patient_gender=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PatientDob; v != nil {
		builder.WriteString("patient_dob=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PatientAge; v != nil {
		builder.WriteString("patient_age=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("raw_model_output=")
	builder.WriteString(_m.RawModelOutput)
	builder.WriteString(", ")
	builder.WriteString("missing_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.MissingData))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PatientReports is a parsable slice of PatientReport.
type PatientReports []*PatientReport
