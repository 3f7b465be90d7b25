// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/labdex/labdex/ent/sqlgenerationlog"
)

// SQLGenerationLog is the model entity for the SQLGenerationLog schema.
type SQLGenerationLog struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// success, validation_failed, no_final_query, timeout, error
	Status string `json:"status,omitempty"`
	// SHA-256 of the user id; raw ids stay out of the audit trail
	UserHash string `json:"user_hash,omitempty"`
	// Prompt holds the value of the "prompt" field.
	Prompt string `json:"prompt,omitempty"`
	// GeneratedSQL holds the value of the "generated_sql" field.
	GeneratedSQL string `json:"generated_sql,omitempty"`
	// SHA-256 of the final SQL
	SQLHash string `json:"sql_hash,omitempty"`
	// Iterations holds the value of the "iterations" field.
	Iterations int `json:"iterations,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs int `json:"duration_ms,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID *string `json:"session_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SQLGenerationLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sqlgenerationlog.FieldMetadata:
			values[i] = new([]byte)
		case sqlgenerationlog.FieldIterations, sqlgenerationlog.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case sqlgenerationlog.FieldID, sqlgenerationlog.FieldStatus, sqlgenerationlog.FieldUserHash, sqlgenerationlog.FieldPrompt, sqlgenerationlog.FieldGeneratedSQL, sqlgenerationlog.FieldSQLHash, sqlgenerationlog.FieldSessionID:
			values[i] = new(sql.NullString)
		case sqlgenerationlog.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SQLGenerationLog fields.
func (_m *SQLGenerationLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sqlgenerationlog.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case sqlgenerationlog.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case sqlgenerationlog.FieldUserHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_hash", values[i])
			} else if value.Valid {
				_m.UserHash = value.String
			}
		case sqlgenerationlog.FieldPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[i])
			} else if value.Valid {
				_m.Prompt = value.String
			}
		case sqlgenerationlog.FieldGeneratedSQL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field generated_sql", values[i])
			} else if value.Valid {
				_m.GeneratedSQL = value.String
			}
		case sqlgenerationlog.FieldSQLHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sql_hash", values[i])
			} else if value.Valid {
				_m.SQLHash = value.String
			}
		case sqlgenerationlog.FieldIterations:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field iterations", values[i])
			} else if value.Valid {
				_m.Iterations = int(value.Int64)
			}
		case sqlgenerationlog.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = int(value.Int64)
			}
		case sqlgenerationlog.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case sqlgenerationlog.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = new(string)
				*_m.SessionID = value.String
			}
		case sqlgenerationlog.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SQLGenerationLog.
// This includes values selected through modifiers, order, etc.
func (_m *SQLGenerationLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SQLGenerationLog.
// Note that you need to call SQLGenerationLog.Unwrap() before calling this method if this SQLGenerationLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SQLGenerationLog) Update() *SQLGenerationLogUpdateOne {
	return NewSQLGenerationLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SQLGenerationLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SQLGenerationLog) Unwrap() *SQLGenerationLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SQLGenerationLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SQLGenerationLog) String() string {
	var builder strings.Builder
	builder.WriteString("SQLGenerationLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("user_hash=")
	builder.WriteString(_m.UserHash)
	builder.WriteString(", ")
	builder.WriteString("prompt=")
	builder.WriteString(_m.Prompt)
	builder.WriteString(", ")
	builder.WriteString("generated_sql=")
	builder.WriteString(_m.GeneratedSQL)
	builder.WriteString(", ")
	builder.WriteString("sql_hash=")
	builder.WriteString(_m.SQLHash)
	builder.WriteString(", ")
	builder.WriteString("iterations=")
	builder.WriteString(fmt.Sprintf("%v", _m.Iterations))
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMs))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	if v := _m.SessionID; v != nil {
		builder.WriteString("session_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SQLGenerationLogs is a parsable slice of SQLGenerationLog.
type SQLGenerationLogs []*SQLGenerationLog
