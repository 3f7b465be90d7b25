// Code generated by ent, DO NOT EDIT.

package sqlgenerationlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/labdex/labdex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldContainsFold(FieldID, id))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldEQ(FieldStatus, v))
}

// UserHash applies equality check predicate on the "user_hash" field. It's identical to UserHashEQ.
func UserHash(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldEQ(FieldUserHash, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldEQ(FieldPrompt, v))
}

// GeneratedSQL applies equality check predicate on the "generated_sql" field. It's identical to GeneratedSQLEQ.
func GeneratedSQL(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldEQ(FieldGeneratedSQL, v))
}

// SQLHash applies equality check predicate on the "sql_hash" field. It's identical to SQLHashEQ.
func SQLHash(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldEQ(FieldSQLHash, v))
}

// Iterations applies equality check predicate on the "iterations" field. It's identical to IterationsEQ.
func Iterations(v int) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldEQ(FieldIterations, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldEQ(FieldDurationMs, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldEQ(FieldSessionID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldEQ(FieldCreatedAt, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldContainsFold(FieldStatus, v))
}

// UserHashEQ applies the EQ predicate on the "user_hash" field.
func UserHashEQ(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldEQ(FieldUserHash, v))
}

// UserHashNEQ applies the NEQ predicate on the "user_hash" field.
func UserHashNEQ(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldNEQ(FieldUserHash, v))
}

// UserHashIn applies the In predicate on the "user_hash" field.
func UserHashIn(vs ...string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldIn(FieldUserHash, vs...))
}

// UserHashNotIn applies the NotIn predicate on the "user_hash" field.
func UserHashNotIn(vs ...string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldNotIn(FieldUserHash, vs...))
}

// UserHashGT applies the GT predicate on the "user_hash" field.
func UserHashGT(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldGT(FieldUserHash, v))
}

// UserHashGTE applies the GTE predicate on the "user_hash" field.
func UserHashGTE(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldGTE(FieldUserHash, v))
}

// UserHashLT applies the LT predicate on the "user_hash" field.
func UserHashLT(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldLT(FieldUserHash, v))
}

// UserHashLTE applies the LTE predicate on the "user_hash" field.
func UserHashLTE(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldLTE(FieldUserHash, v))
}

// UserHashContains applies the Contains predicate on the "user_hash" field.
func UserHashContains(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldContains(FieldUserHash, v))
}

// UserHashHasPrefix applies the HasPrefix predicate on the "user_hash" field.
func UserHashHasPrefix(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldHasPrefix(FieldUserHash, v))
}

// UserHashHasSuffix applies the HasSuffix predicate on the "user_hash" field.
func UserHashHasSuffix(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldHasSuffix(FieldUserHash, v))
}

// UserHashEqualFold applies the EqualFold predicate on the "user_hash" field.
func UserHashEqualFold(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldEqualFold(FieldUserHash, v))
}

// UserHashContainsFold applies the ContainsFold predicate on the "user_hash" field.
func UserHashContainsFold(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldContainsFold(FieldUserHash, v))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldContainsFold(FieldPrompt, v))
}

// GeneratedSQLEQ applies the EQ predicate on the "generated_sql" field.
func GeneratedSQLEQ(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldEQ(FieldGeneratedSQL, v))
}

// GeneratedSQLNEQ applies the NEQ predicate on the "generated_sql" field.
func GeneratedSQLNEQ(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldNEQ(FieldGeneratedSQL, v))
}

// GeneratedSQLIn applies the In predicate on the "generated_sql" field.
func GeneratedSQLIn(vs ...string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldIn(FieldGeneratedSQL, vs...))
}

// GeneratedSQLNotIn applies the NotIn predicate on the "generated_sql" field.
func GeneratedSQLNotIn(vs ...string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldNotIn(FieldGeneratedSQL, vs...))
}

// GeneratedSQLGT applies the GT predicate on the "generated_sql" field.
func GeneratedSQLGT(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldGT(FieldGeneratedSQL, v))
}

// GeneratedSQLGTE applies the GTE predicate on the "generated_sql" field.
func GeneratedSQLGTE(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldGTE(FieldGeneratedSQL, v))
}

// GeneratedSQLLT applies the LT predicate on the "generated_sql" field.
func GeneratedSQLLT(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldLT(FieldGeneratedSQL, v))
}

// GeneratedSQLLTE applies the LTE predicate on the "generated_sql" field.
func GeneratedSQLLTE(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldLTE(FieldGeneratedSQL, v))
}

// GeneratedSQLContains applies the Contains predicate on the "generated_sql" field.
func GeneratedSQLContains(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldContains(FieldGeneratedSQL, v))
}

// GeneratedSQLHasPrefix applies the HasPrefix predicate on the "generated_sql" field.
func GeneratedSQLHasPrefix(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldHasPrefix(FieldGeneratedSQL, v))
}

// GeneratedSQLHasSuffix applies the HasSuffix predicate on the "generated_sql" field.
func GeneratedSQLHasSuffix(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldHasSuffix(FieldGeneratedSQL, v))
}

// GeneratedSQLIsNil applies the IsNil predicate on the "generated_sql" field.
func GeneratedSQLIsNil() predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldIsNull(FieldGeneratedSQL))
}

// GeneratedSQLNotNil applies the NotNil predicate on the "generated_sql" field.
func GeneratedSQLNotNil() predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldNotNull(FieldGeneratedSQL))
}

// GeneratedSQLEqualFold applies the EqualFold predicate on the "generated_sql" field.
func GeneratedSQLEqualFold(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldEqualFold(FieldGeneratedSQL, v))
}

// GeneratedSQLContainsFold applies the ContainsFold predicate on the "generated_sql" field.
func GeneratedSQLContainsFold(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldContainsFold(FieldGeneratedSQL, v))
}

// SQLHashEQ applies the EQ predicate on the "sql_hash" field.
func SQLHashEQ(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldEQ(FieldSQLHash, v))
}

// SQLHashNEQ applies the NEQ predicate on the "sql_hash" field.
func SQLHashNEQ(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldNEQ(FieldSQLHash, v))
}

// SQLHashIn applies the In predicate on the "sql_hash" field.
func SQLHashIn(vs ...string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldIn(FieldSQLHash, vs...))
}

// SQLHashNotIn applies the NotIn predicate on the "sql_hash" field.
func SQLHashNotIn(vs ...string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldNotIn(FieldSQLHash, vs...))
}

// SQLHashGT applies the GT predicate on the "sql_hash" field.
func SQLHashGT(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldGT(FieldSQLHash, v))
}

// SQLHashGTE applies the GTE predicate on the "sql_hash" field.
func SQLHashGTE(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldGTE(FieldSQLHash, v))
}

// SQLHashLT applies the LT predicate on the "sql_hash" field.
func SQLHashLT(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldLT(FieldSQLHash, v))
}

// SQLHashLTE applies the LTE predicate on the "sql_hash" field.
func SQLHashLTE(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldLTE(FieldSQLHash, v))
}

// SQLHashContains applies the Contains predicate on the "sql_hash" field.
func SQLHashContains(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldContains(FieldSQLHash, v))
}

// SQLHashHasPrefix applies the HasPrefix predicate on the "sql_hash" field.
func SQLHashHasPrefix(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldHasPrefix(FieldSQLHash, v))
}

// SQLHashHasSuffix applies the HasSuffix predicate on the "sql_hash" field.
func SQLHashHasSuffix(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldHasSuffix(FieldSQLHash, v))
}

// SQLHashIsNil applies the IsNil predicate on the "sql_hash" field.
func SQLHashIsNil() predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldIsNull(FieldSQLHash))
}

// SQLHashNotNil applies the NotNil predicate on the "sql_hash" field.
func SQLHashNotNil() predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldNotNull(FieldSQLHash))
}

// SQLHashEqualFold applies the EqualFold predicate on the "sql_hash" field.
func SQLHashEqualFold(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldEqualFold(FieldSQLHash, v))
}

// SQLHashContainsFold applies the ContainsFold predicate on the "sql_hash" field.
func SQLHashContainsFold(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldContainsFold(FieldSQLHash, v))
}

// IterationsEQ applies the EQ predicate on the "iterations" field.
func IterationsEQ(v int) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldEQ(FieldIterations, v))
}

// IterationsNEQ applies the NEQ predicate on the "iterations" field.
func IterationsNEQ(v int) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldNEQ(FieldIterations, v))
}

// IterationsIn applies the In predicate on the "iterations" field.
func IterationsIn(vs ...int) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldIn(FieldIterations, vs...))
}

// IterationsNotIn applies the NotIn predicate on the "iterations" field.
func IterationsNotIn(vs ...int) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldNotIn(FieldIterations, vs...))
}

// IterationsGT applies the GT predicate on the "iterations" field.
func IterationsGT(v int) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldGT(FieldIterations, v))
}

// IterationsGTE applies the GTE predicate on the "iterations" field.
func IterationsGTE(v int) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldGTE(FieldIterations, v))
}

// IterationsLT applies the LT predicate on the "iterations" field.
func IterationsLT(v int) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldLT(FieldIterations, v))
}

// IterationsLTE applies the LTE predicate on the "iterations" field.
func IterationsLTE(v int) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldLTE(FieldIterations, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldLTE(FieldDurationMs, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldNotNull(FieldMetadata))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldContainsFold(FieldSessionID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SQLGenerationLog) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SQLGenerationLog) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SQLGenerationLog) predicate.SQLGenerationLog {
	return predicate.SQLGenerationLog(sql.NotPredicates(p))
}
