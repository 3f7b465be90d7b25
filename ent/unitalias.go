// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/labdex/labdex/ent/unitalias"
)

// UnitAlias is the model entity for the UnitAlias schema.
type UnitAlias struct {
	config `json:"-"`
	// ID of the ent.
	// Normalized alias text (NFKC, lowercase, collapsed whitespace)
	ID string `json:"id,omitempty"`
	// UCUM code
	Canonical string `json:"canonical,omitempty"`
	// seed or llm
	Source string `json:"source,omitempty"`
	// LearnCount holds the value of the "learn_count" field.
	LearnCount int `json:"learn_count,omitempty"`
	// LastUsedAt holds the value of the "last_used_at" field.
	LastUsedAt time.Time `json:"last_used_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UnitAlias) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case unitalias.FieldLearnCount:
			values[i] = new(sql.NullInt64)
		case unitalias.FieldID, unitalias.FieldCanonical, unitalias.FieldSource:
			values[i] = new(sql.NullString)
		case unitalias.FieldLastUsedAt, unitalias.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UnitAlias fields.
func (_m *UnitAlias) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case unitalias.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case unitalias.FieldCanonical:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field canonical", values[i])
			} else if value.Valid {
				_m.Canonical = value.String
			}
		case unitalias.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case unitalias.FieldLearnCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field learn_count", values[i])
			} else if value.Valid {
				_m.LearnCount = int(value.Int64)
			}
		case unitalias.FieldLastUsedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_used_at", values[i])
			} else if value.Valid {
				_m.LastUsedAt = value.Time
			}
		case unitalias.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the UnitAlias.
// This includes values selected through modifiers, order, etc.
func (_m *UnitAlias) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UnitAlias.
// Note that you need to call UnitAlias.Unwrap() before calling this method if this UnitAlias
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UnitAlias) Update() *UnitAliasUpdateOne {
	return NewUnitAliasClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UnitAlias entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UnitAlias) Unwrap() *UnitAlias {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UnitAlias is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UnitAlias) String() string {
	var builder strings.Builder
	builder.WriteString("UnitAlias(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("canonical=")
	builder.WriteString(_m.Canonical)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("learn_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.LearnCount))
	builder.WriteString(", ")
	builder.WriteString("last_used_at=")
	builder.WriteString(_m.LastUsedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UnitAliasSlice is a parsable slice of UnitAlias.
type UnitAliasSlice []*UnitAlias
