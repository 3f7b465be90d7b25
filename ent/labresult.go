// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/labdex/labdex/ent/analyte"
	"github.com/labdex/labdex/ent/labresult"
	"github.com/labdex/labdex/ent/patientreport"
)

// LabResult is the model entity for the LabResult schema.
type LabResult struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ReportID holds the value of the "report_id" field.
	ReportID string `json:"report_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID *string `json:"user_id,omitempty"`
	// Monotonic order of the row within its report
	Position int `json:"position,omitempty"`
	// Raw label as printed on the report
	ParameterName string `json:"parameter_name,omitempty"`
	// ResultText holds the value of the "result_text" field.
	ResultText string `json:"result_text,omitempty"`
	// NumericResult holds the value of the "numeric_result" field.
	NumericResult *float64 `json:"numeric_result,omitempty"`
	// UnitRaw holds the value of the "unit_raw" field.
	UnitRaw string `json:"unit_raw,omitempty"`
	// UCUM form set by the unit normalizer
	UnitCanonical *string `json:"unit_canonical,omitempty"`
	// RefLower holds the value of the "ref_lower" field.
	RefLower *float64 `json:"ref_lower,omitempty"`
	// RefLowerOperator holds the value of the "ref_lower_operator" field.
	RefLowerOperator *string `json:"ref_lower_operator,omitempty"`
	// RefUpper holds the value of the "ref_upper" field.
	RefUpper *float64 `json:"ref_upper,omitempty"`
	// RefUpperOperator holds the value of the "ref_upper_operator" field.
	RefUpperOperator *string `json:"ref_upper_operator,omitempty"`
	// RefText holds the value of the "ref_text" field.
	RefText *string `json:"ref_text,omitempty"`
	// RefFullText holds the value of the "ref_full_text" field.
	RefFullText *string `json:"ref_full_text,omitempty"`
	// OutOfRange holds the value of the "out_of_range" field.
	OutOfRange bool `json:"out_of_range,omitempty"`
	// SpecimenType holds the value of the "specimen_type" field.
	SpecimenType *string `json:"specimen_type,omitempty"`
	// AnalyteID holds the value of the "analyte_id" field.
	AnalyteID *string `json:"analyte_id,omitempty"`
	// MappingConfidence holds the value of the "mapping_confidence" field.
	MappingConfidence *float64 `json:"mapping_confidence,omitempty"`
	// How analyte_id was set: auto_exact, auto_fuzzy, auto_fuzzy_llm_confirmed, auto_llm, manual_approved, manual_review
	MappingSource *string `json:"mapping_source,omitempty"`
	// MappedAt holds the value of the "mapped_at" field.
	MappedAt *time.Time `json:"mapped_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LabResultQuery when eager-loading is set.
	Edges        LabResultEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LabResultEdges holds the relations/edges for other nodes in the graph.
type LabResultEdges struct {
	// Report holds the value of the report edge.
	Report *PatientReport `json:"report,omitempty"`
	// Analyte holds the value of the analyte edge.
	Analyte *Analyte `json:"analyte,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ReportOrErr returns the Report value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LabResultEdges) ReportOrErr() (*PatientReport, error) {
	if e.Report != nil {
		return e.Report, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: patientreport.Label}
	}
	return nil, &NotLoadedError{edge: "report"}
}

// AnalyteOrErr returns the Analyte value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LabResultEdges) AnalyteOrErr() (*Analyte, error) {
	if e.Analyte != nil {
		return e.Analyte, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: analyte.Label}
	}
	return nil, &NotLoadedError{edge: "analyte"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LabResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case labresult.FieldOutOfRange:
			values[i] = new(sql.NullBool)
		case labresult.FieldNumericResult, labresult.FieldRefLower, labresult.FieldRefUpper, labresult.FieldMappingConfidence:
			values[i] = new(sql.NullFloat64)
		case labresult.FieldPosition:
			values[i] = new(sql.NullInt64)
		case labresult.FieldID, labresult.FieldReportID, labresult.FieldUserID, labresult.FieldParameterName, labresult.FieldResultText, labresult.FieldUnitRaw, labresult.FieldUnitCanonical, labresult.FieldRefLowerOperator, labresult.FieldRefUpperOperator, labresult.FieldRefText, labresult.FieldRefFullText, labresult.FieldSpecimenType, labresult.FieldAnalyteID, labresult.FieldMappingSource:
			values[i] = new(sql.NullString)
		case labresult.FieldMappedAt, labresult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LabResult fields.
func (_m *LabResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case labresult.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case labresult.FieldReportID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field report_id", values[i])
			} else if value.Valid {
				_m.ReportID = value.String
			}
		case labresult.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = new(string)
				*_m.UserID = value.String
			}
		case labresult.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case labresult.FieldParameterName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parameter_name", values[i])
			} else if value.Valid {
				_m.ParameterName = value.String
			}
		case labresult.FieldResultText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result_text", values[i])
			} else if value.Valid {
				_m.ResultText = value.String
			}
		case labresult.FieldNumericResult:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field numeric_result", values[i])
			} else if value.Valid {
				_m.NumericResult = new(float64)
				*_m.NumericResult = value.Float64
			}
		case labresult.FieldUnitRaw:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit_raw", values[i])
			} else if value.Valid {
				_m.UnitRaw = value.String
			}
		case labresult.FieldUnitCanonical:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit_canonical", values[i])
			} else if value.Valid {
				_m.UnitCanonical = new(string)
				*_m.UnitCanonical = value.String
			}
		case labresult.FieldRefLower:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ref_lower", values[i])
			} else if value.Valid {
				_m.RefLower = new(float64)
				*_m.RefLower = value.Float64
			}
		case labresult.FieldRefLowerOperator:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ref_lower_operator", values[i])
			} else if value.Valid {
				_m.RefLowerOperator = new(string)
				*_m.RefLowerOperator = value.String
			}
		case labresult.FieldRefUpper:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ref_upper", values[i])
			} else if value.Valid {
				_m.RefUpper = new(float64)
				*_m.RefUpper = value.Float64
			}
		case labresult.FieldRefUpperOperator:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ref_upper_operator", values[i])
			} else if value.Valid {
				_m.RefUpperOperator = new(string)
				*_m.RefUpperOperator = value.String
			}
		case labresult.FieldRefText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ref_text", values[i])
			} else if value.Valid {
				_m.RefText = new(string)
				*_m.RefText = value.String
			}
		case labresult.FieldRefFullText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ref_full_text", values[i])
			} else if value.Valid {
				_m.RefFullText = new(string)
				*_m.RefFullText = value.String
			}
		case labresult.FieldOutOfRange:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field out_of_range", values[i])
			} else if value.Valid {
				_m.OutOfRange = value.Bool
			}
		case labresult.FieldSpecimenType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field specimen_type", values[i])
			} else if value.Valid {
				_m.SpecimenType = new(string)
				*_m.SpecimenType = value.String
			}
		case labresult.FieldAnalyteID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field analyte_id", values[i])
			} else if value.Valid {
				_m.AnalyteID = new(string)
				*_m.AnalyteID = value.String
			}
		case labresult.FieldMappingConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mapping_confidence", values[i])
			} else if value.Valid {
				_m.MappingConfidence = new(float64)
				*_m.MappingConfidence = value.Float64
			}
		case labresult.FieldMappingSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mapping_source", values[i])
			} else if value.Valid {
				_m.MappingSource = new(string)
				*_m.MappingSource = value.String
			}
		case labresult.FieldMappedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field mapped_at", values[i])
			} else if value.Valid {
				_m.MappedAt = new(time.Time)
				*_m.MappedAt = value.Time
			}
		case labresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LabResult.
// This includes values selected through modifiers, order, etc.
func (_m *LabResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryReport queries the "report" edge of the LabResult entity.
func (_m *LabResult) QueryReport() *PatientReportQuery {
	return NewLabResultClient(_m.config).QueryReport(_m)
}

// QueryAnalyte queries the "analyte" edge of the LabResult entity.
func (_m *LabResult) QueryAnalyte() *AnalyteQuery {
	return NewLabResultClient(_m.config).QueryAnalyte(_m)
}

// Update returns a builder for updating this LabResult.
// Note that you need to call LabResult.Unwrap() before calling this method if this LabResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LabResult) Update() *LabResultUpdateOne {
	return NewLabResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LabResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LabResult) Unwrap() *LabResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LabResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LabResult) String() string {
	var builder strings.Builder
	builder.WriteString("LabResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("report_id=")
	builder.WriteString(_m.ReportID)
	builder.WriteString(", ")
	if v := _m.UserID; v != nil {
		builder.WriteString("user_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("parameter_name=")
	builder.WriteString(_m.ParameterName)
	builder.WriteString(", ")
	builder.WriteString("result_text=")
	builder.WriteString(_m.ResultText)
	builder.WriteString(", ")
	if v := _m.NumericResult; v != nil {
		builder.WriteString("numeric_result=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("unit_raw=")
	builder.WriteString(_m.UnitRaw)
	builder.WriteString(", ")
	if v := _m.UnitCanonical; v != nil {
		builder.WriteString("unit_canonical=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RefLower; v != nil {
		builder.WriteString("ref_lower=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.RefLowerOperator; v != nil {
		builder.WriteString("ref_lower_operator=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RefUpper; v != nil {
		builder.WriteString("ref_upper=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.RefUpperOperator; v != nil {
		builder.WriteString("ref_upper_operator=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RefText; v != nil {
		builder.WriteString("ref_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RefFullText; v != nil {
		builder.WriteString("ref_full_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("out_of_range=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutOfRange))
	builder.WriteString(", ")
	if v := _m.SpecimenType; v != nil {
		builder.WriteString("specimen_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AnalyteID; v != nil {
		builder.WriteString("analyte_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MappingConfidence; v != nil {
		builder.WriteString("mapping_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.MappingSource; v != nil {
		builder.WriteString("mapping_source=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MappedAt; v != nil {
		builder.WriteString("mapped_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LabResults is a parsable slice of LabResult.
type LabResults []*LabResult
