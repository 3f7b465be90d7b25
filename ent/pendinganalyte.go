// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/labdex/labdex/ent/pendinganalyte"
)

// PendingAnalyte is the model entity for the PendingAnalyte schema.
type PendingAnalyte struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProposedCode holds the value of the "proposed_code" field.
	ProposedCode string `json:"proposed_code,omitempty"`
	// ProposedName holds the value of the "proposed_name" field.
	ProposedName string `json:"proposed_name,omitempty"`
	// Unit holds the value of the "unit" field.
	Unit string `json:"unit,omitempty"`
	// Category holds the value of the "category" field.
	Category *string `json:"category,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// report ids, occurrence_count, LLM comments
	Evidence map[string]interface{} `json:"evidence,omitempty"`
	// Distinct raw labels that produced this proposal
	ParameterVariations []string `json:"parameter_variations,omitempty"`
	// Status holds the value of the "status" field.
	Status pendinganalyte.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PendingAnalyte) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pendinganalyte.FieldEvidence, pendinganalyte.FieldParameterVariations:
			values[i] = new([]byte)
		case pendinganalyte.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case pendinganalyte.FieldID, pendinganalyte.FieldProposedCode, pendinganalyte.FieldProposedName, pendinganalyte.FieldUnit, pendinganalyte.FieldCategory, pendinganalyte.FieldStatus:
			values[i] = new(sql.NullString)
		case pendinganalyte.FieldCreatedAt, pendinganalyte.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PendingAnalyte fields.
func (_m *PendingAnalyte) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pendinganalyte.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case pendinganalyte.FieldProposedCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field proposed_code", values[i])
			} else if value.Valid {
				_m.ProposedCode = value.String
			}
		case pendinganalyte.FieldProposedName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field proposed_name", values[i])
			} else if value.Valid {
				_m.ProposedName = value.String
			}
		case pendinganalyte.FieldUnit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit", values[i])
			} else if value.Valid {
				_m.Unit = value.String
			}
		case pendinganalyte.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = new(string)
				*_m.Category = value.String
			}
		case pendinganalyte.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case pendinganalyte.FieldEvidence:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field evidence", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Evidence); err != nil {
					return fmt.Errorf("unmarshal field evidence: %w", err)
				}
			}
		case pendinganalyte.FieldParameterVariations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field parameter_variations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ParameterVariations); err != nil {
					return fmt.Errorf("unmarshal field parameter_variations: %w", err)
				}
			}
		case pendinganalyte.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = pendinganalyte.Status(value.String)
			}
		case pendinganalyte.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case pendinganalyte.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the PendingAnalyte.
// This includes values selected through modifiers, order, etc.
func (_m *PendingAnalyte) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PendingAnalyte.
// Note that you need to call PendingAnalyte.Unwrap() before calling this method if this PendingAnalyte
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PendingAnalyte) Update() *PendingAnalyteUpdateOne {
	return NewPendingAnalyteClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PendingAnalyte entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PendingAnalyte) Unwrap() *PendingAnalyte {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PendingAnalyte is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PendingAnalyte) String() string {
	var builder strings.Builder
	builder.WriteString("PendingAnalyte(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("proposed_code=")
	builder.WriteString(_m.ProposedCode)
	builder.WriteString(", ")
	builder.WriteString("proposed_name=")
	builder.WriteString(_m.ProposedName)
	builder.WriteString(", ")
	builder.WriteString("unit=")
	builder.WriteString(_m.Unit)
	builder.WriteString(", ")
	if v := _m.Category; v != nil {
		builder.WriteString("category=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("evidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Evidence))
	builder.WriteString(", ")
	builder.WriteString("parameter_variations=")
	builder.WriteString(fmt.Sprintf("%v", _m.ParameterVariations))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PendingAnalytes is a parsable slice of PendingAnalyte.
type PendingAnalytes []*PendingAnalyte
