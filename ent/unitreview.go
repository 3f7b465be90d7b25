// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/labdex/labdex/ent/unitreview"
)

// UnitReview is the model entity for the UnitReview schema.
type UnitReview struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ResultID holds the value of the "result_id" field.
	ResultID string `json:"result_id,omitempty"`
	// RawUnit holds the value of the "raw_unit" field.
	RawUnit string `json:"raw_unit,omitempty"`
	// NormalizedInput holds the value of the "normalized_input" field.
	NormalizedInput string `json:"normalized_input,omitempty"`
	// LlmSuggestion holds the value of the "llm_suggestion" field.
	LlmSuggestion *string `json:"llm_suggestion,omitempty"`
	// low, medium, high
	Confidence *string `json:"confidence,omitempty"`
	// alias_conflict, low_confidence, ucum_invalid, sanitization_rejected
	IssueType string `json:"issue_type,omitempty"`
	// IssueDetails holds the value of the "issue_details" field.
	IssueDetails map[string]interface{} `json:"issue_details,omitempty"`
	// Status holds the value of the "status" field.
	Status unitreview.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UnitReview) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case unitreview.FieldIssueDetails:
			values[i] = new([]byte)
		case unitreview.FieldID, unitreview.FieldResultID, unitreview.FieldRawUnit, unitreview.FieldNormalizedInput, unitreview.FieldLlmSuggestion, unitreview.FieldConfidence, unitreview.FieldIssueType, unitreview.FieldStatus:
			values[i] = new(sql.NullString)
		case unitreview.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UnitReview fields.
func (_m *UnitReview) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case unitreview.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case unitreview.FieldResultID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result_id", values[i])
			} else if value.Valid {
				_m.ResultID = value.String
			}
		case unitreview.FieldRawUnit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_unit", values[i])
			} else if value.Valid {
				_m.RawUnit = value.String
			}
		case unitreview.FieldNormalizedInput:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field normalized_input", values[i])
			} else if value.Valid {
				_m.NormalizedInput = value.String
			}
		case unitreview.FieldLlmSuggestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field llm_suggestion", values[i])
			} else if value.Valid {
				_m.LlmSuggestion = new(string)
				*_m.LlmSuggestion = value.String
			}
		case unitreview.FieldConfidence:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = new(string)
				*_m.Confidence = value.String
			}
		case unitreview.FieldIssueType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field issue_type", values[i])
			} else if value.Valid {
				_m.IssueType = value.String
			}
		case unitreview.FieldIssueDetails:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field issue_details", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.IssueDetails); err != nil {
					return fmt.Errorf("unmarshal field issue_details: %w", err)
				}
			}
		case unitreview.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = unitreview.Status(value.String)
			}
		case unitreview.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the UnitReview.
// This includes values selected through modifiers, order, etc.
func (_m *UnitReview) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UnitReview.
// Note that you need to call UnitReview.Unwrap() before calling this method if this UnitReview
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UnitReview) Update() *UnitReviewUpdateOne {
	return NewUnitReviewClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UnitReview entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UnitReview) Unwrap() *UnitReview {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UnitReview is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UnitReview) String() string {
	var builder strings.Builder
	builder.WriteString("UnitReview(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("result_id=")
	builder.WriteString(_m.ResultID)
	builder.WriteString(", ")
	builder.WriteString("raw_unit=")
	builder.WriteString(_m.RawUnit)
	builder.WriteString(", ")
	builder.WriteString("normalized_input=")
	builder.WriteString(_m.NormalizedInput)
	builder.WriteString(", ")
	if v := _m.LlmSuggestion; v != nil {
		builder.WriteString("llm_suggestion=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Confidence; v != nil {
		builder.WriteString("confidence=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("issue_type=")
	builder.WriteString(_m.IssueType)
	builder.WriteString(", ")
	builder.WriteString("issue_details=")
	builder.WriteString(fmt.Sprintf("%v", _m.IssueDetails))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UnitReviews is a parsable slice of UnitReview.
type UnitReviews []*UnitReview
