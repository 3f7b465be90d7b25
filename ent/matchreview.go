// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/labdex/labdex/ent/matchreview"
)

// MatchReview is the model entity for the MatchReview schema.
type MatchReview struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ResultID holds the value of the "result_id" field.
	ResultID string `json:"result_id,omitempty"`
	// Hydrated candidate list: code, name, similarity, origin
	Candidates []map[string]interface{} `json:"candidates,omitempty"`
	// fuzzy, conflict_fuzzy_llm, pending_analyte, abstain
	Source string `json:"source,omitempty"`
	// Set when the review waits on a pending analyte approval
	PendingCode *string `json:"pending_code,omitempty"`
	// LlmComment holds the value of the "llm_comment" field.
	LlmComment string `json:"llm_comment,omitempty"`
	// Status holds the value of the "status" field.
	Status matchreview.Status `json:"status,omitempty"`
	// alias_backfill, match_review_link, manual
	ResolvedVia *string `json:"resolved_via,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ResolvedAt holds the value of the "resolved_at" field.
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MatchReview) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case matchreview.FieldCandidates:
			values[i] = new([]byte)
		case matchreview.FieldID, matchreview.FieldResultID, matchreview.FieldSource, matchreview.FieldPendingCode, matchreview.FieldLlmComment, matchreview.FieldStatus, matchreview.FieldResolvedVia:
			values[i] = new(sql.NullString)
		case matchreview.FieldCreatedAt, matchreview.FieldResolvedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MatchReview fields.
func (_m *MatchReview) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case matchreview.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case matchreview.FieldResultID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result_id", values[i])
			} else if value.Valid {
				_m.ResultID = value.String
			}
		case matchreview.FieldCandidates:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field candidates", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Candidates); err != nil {
					return fmt.Errorf("unmarshal field candidates: %w", err)
				}
			}
		case matchreview.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case matchreview.FieldPendingCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pending_code", values[i])
			} else if value.Valid {
				_m.PendingCode = new(string)
				*_m.PendingCode = value.String
			}
		case matchreview.FieldLlmComment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field llm_comment", values[i])
			} else if value.Valid {
				_m.LlmComment = value.String
			}
		case matchreview.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = matchreview.Status(value.String)
			}
		case matchreview.FieldResolvedVia:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_via", values[i])
			} else if value.Valid {
				_m.ResolvedVia = new(string)
				*_m.ResolvedVia = value.String
			}
		case matchreview.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case matchreview.FieldResolvedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_at", values[i])
			} else if value.Valid {
				_m.ResolvedAt = new(time.Time)
				*_m.ResolvedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MatchReview.
// This includes values selected through modifiers, order, etc.
func (_m *MatchReview) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MatchReview.
// Note that you need to call MatchReview.Unwrap() before calling this method if this MatchReview
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MatchReview) Update() *MatchReviewUpdateOne {
	return NewMatchReviewClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MatchReview entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MatchReview) Unwrap() *MatchReview {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MatchReview is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MatchReview) String() string {
	var builder strings.Builder
	builder.WriteString("MatchReview(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("result_id=")
	builder.WriteString(_m.ResultID)
	builder.WriteString(", ")
	builder.WriteString("candidates=")
	builder.WriteString(fmt.Sprintf("%v", _m.Candidates))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	if v := _m.PendingCode; v != nil {
		builder.WriteString("pending_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("llm_comment=")
	builder.WriteString(_m.LlmComment)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ResolvedVia; v != nil {
		builder.WriteString("resolved_via=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ResolvedAt; v != nil {
		builder.WriteString("resolved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// MatchReviews is a parsable slice of MatchReview.
type MatchReviews []*MatchReview
