// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/labdex/labdex/ent/analyte"
)

// Analyte is the model entity for the Analyte schema.
type Analyte struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Stable uppercase code, e.g. HDL
	Code string `json:"code,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// CanonicalUnit holds the value of the "canonical_unit" field.
	CanonicalUnit string `json:"canonical_unit,omitempty"`
	// Category holds the value of the "category" field.
	Category *string `json:"category,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AnalyteQuery when eager-loading is set.
	Edges        AnalyteEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AnalyteEdges holds the relations/edges for other nodes in the graph.
type AnalyteEdges struct {
	// Aliases holds the value of the aliases edge.
	Aliases []*AnalyteAlias `json:"aliases,omitempty"`
	// Results holds the value of the results edge.
	Results []*LabResult `json:"results,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// AliasesOrErr returns the Aliases value or an error if the edge
// was not loaded in eager-loading.
func (e AnalyteEdges) AliasesOrErr() ([]*AnalyteAlias, error) {
	if e.loadedTypes[0] {
		return e.Aliases, nil
	}
	return nil, &NotLoadedError{edge: "aliases"}
}

// ResultsOrErr returns the Results value or an error if the edge
// was not loaded in eager-loading.
func (e AnalyteEdges) ResultsOrErr() ([]*LabResult, error) {
	if e.loadedTypes[1] {
		return e.Results, nil
	}
	return nil, &NotLoadedError{edge: "results"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Analyte) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case analyte.FieldID, analyte.FieldCode, analyte.FieldName, analyte.FieldCanonicalUnit, analyte.FieldCategory:
			values[i] = new(sql.NullString)
		case analyte.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Analyte fields.
func (_m *Analyte) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case analyte.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case analyte.FieldCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field code", values[i])
			} else if value.Valid {
				_m.Code = value.String
			}
		case analyte.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case analyte.FieldCanonicalUnit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field canonical_unit", values[i])
			} else if value.Valid {
				_m.CanonicalUnit = value.String
			}
		case analyte.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = new(string)
				*_m.Category = value.String
			}
		case analyte.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Analyte.
// This includes values selected through modifiers, order, etc.
func (_m *Analyte) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAliases queries the "aliases" edge of the Analyte entity.
func (_m *Analyte) QueryAliases() *AnalyteAliasQuery {
	return NewAnalyteClient(_m.config).QueryAliases(_m)
}

// QueryResults queries the "results" edge of the Analyte entity.
func (_m *Analyte) QueryResults() *LabResultQuery {
	return NewAnalyteClient(_m.config).QueryResults(_m)
}

// Update returns a builder for updating this Analyte.
// Note that you need to call Analyte.Unwrap() before calling this method if this Analyte
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Analyte) Update() *AnalyteUpdateOne {
	return NewAnalyteClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Analyte entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Analyte) Unwrap() *Analyte {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Analyte is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Analyte) String() string {
	var builder strings.Builder
	builder.WriteString("Analyte(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("code=")
	builder.WriteString(_m.Code)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("canonical_unit=")
	builder.WriteString(_m.CanonicalUnit)
	builder.WriteString(", ")
	if v := _m.Category; v != nil {
		builder.WriteString("category=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Analytes is a parsable slice of Analyte.
type Analytes []*Analyte
