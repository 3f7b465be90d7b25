// Code generated by ent, DO NOT EDIT.

package patientreport

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/labdex/labdex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldContainsFold(FieldID, id))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEQ(FieldPatientID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEQ(FieldUserID, v))
}

// SourceFilename applies equality check predicate on the "source_filename" field. It's identical to SourceFilenameEQ.
func SourceFilename(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEQ(FieldSourceFilename, v))
}

// MimeType applies equality check predicate on the "mime_type" field. It's identical to MimeTypeEQ.
func MimeType(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEQ(FieldMimeType, v))
}

// Checksum applies equality check predicate on the "checksum" field. It's identical to ChecksumEQ.
func Checksum(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEQ(FieldChecksum, v))
}

// ParserVersion applies equality check predicate on the "parser_version" field. It's identical to ParserVersionEQ.
func ParserVersion(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEQ(FieldParserVersion, v))
}

// RecognizedAt applies equality check predicate on the "recognized_at" field. It's identical to RecognizedAtEQ.
func RecognizedAt(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEQ(FieldRecognizedAt, v))
}

// ProcessedAt applies equality check predicate on the "processed_at" field. It's identical to ProcessedAtEQ.
func ProcessedAt(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEQ(FieldProcessedAt, v))
}

// TestDate applies equality check predicate on the "test_date" field. It's identical to TestDateEQ.
func TestDate(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEQ(FieldTestDate, v))
}

// PatientName applies equality check predicate on the "patient_name" field. It's identical to PatientNameEQ.
func PatientName(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEQ(FieldPatientName, v))
}

// PatientGender applies equality check predicate on the "patient_gender" field. It's identical to PatientGenderEQ.
func PatientGender(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEQ(FieldPatientGender, v))
}

// PatientDob applies equality check predicate on the "patient_dob" field. It's identical to PatientDobEQ.
func PatientDob(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEQ(FieldPatientDob, v))
}

// PatientAge applies equality check predicate on the "patient_age" field. It's identical to PatientAgeEQ.
func PatientAge(v int) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEQ(FieldPatientAge, v))
}

// RawModelOutput applies equality check predicate on the "raw_model_output" field. It's identical to RawModelOutputEQ.
func RawModelOutput(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEQ(FieldRawModelOutput, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEQ(FieldUpdatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldLTE(FieldPatientID, v))
}

// PatientIDContains applies the Contains predicate on the "patient_id" field.
func PatientIDContains(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldContains(FieldPatientID, v))
}

// PatientIDHasPrefix applies the HasPrefix predicate on the "patient_id" field.
func PatientIDHasPrefix(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldHasPrefix(FieldPatientID, v))
}

// PatientIDHasSuffix applies the HasSuffix predicate on the "patient_id" field.
func PatientIDHasSuffix(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldHasSuffix(FieldPatientID, v))
}

// PatientIDEqualFold applies the EqualFold predicate on the "patient_id" field.
func PatientIDEqualFold(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEqualFold(FieldPatientID, v))
}

// PatientIDContainsFold applies the ContainsFold predicate on the "patient_id" field.
func PatientIDContainsFold(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldContainsFold(FieldPatientID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.PatientReport {
	return predicate.PatientReport(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldContainsFold(FieldUserID, v))
}

// SourceFilenameEQ applies the EQ predicate on the "source_filename" field.
func SourceFilenameEQ(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEQ(FieldSourceFilename, v))
}

// SourceFilenameNEQ applies the NEQ predicate on the "source_filename" field.
func SourceFilenameNEQ(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNEQ(FieldSourceFilename, v))
}

// SourceFilenameIn applies the In predicate on the "source_filename" field.
func SourceFilenameIn(vs ...string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldIn(FieldSourceFilename, vs...))
}

// SourceFilenameNotIn applies the NotIn predicate on the "source_filename" field.
func SourceFilenameNotIn(vs ...string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNotIn(FieldSourceFilename, vs...))
}

// SourceFilenameGT applies the GT predicate on the "source_filename" field.
func SourceFilenameGT(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldGT(FieldSourceFilename, v))
}

// SourceFilenameGTE applies the GTE predicate on the "source_filename" field.
func SourceFilenameGTE(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldGTE(FieldSourceFilename, v))
}

// SourceFilenameLT applies the LT predicate on the "source_filename" field.
func SourceFilenameLT(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldLT(FieldSourceFilename, v))
}

// SourceFilenameLTE applies the LTE predicate on the "source_filename" field.
func SourceFilenameLTE(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldLTE(FieldSourceFilename, v))
}

// SourceFilenameContains applies the Contains predicate on the "source_filename" field.
func SourceFilenameContains(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldContains(FieldSourceFilename, v))
}

// SourceFilenameHasPrefix applies the HasPrefix predicate on the "source_filename" field.
func SourceFilenameHasPrefix(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldHasPrefix(FieldSourceFilename, v))
}

// SourceFilenameHasSuffix applies the HasSuffix predicate on the "source_filename" field.
func SourceFilenameHasSuffix(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldHasSuffix(FieldSourceFilename, v))
}

// SourceFilenameEqualFold applies the EqualFold predicate on the "source_filename" field.
func SourceFilenameEqualFold(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEqualFold(FieldSourceFilename, v))
}

// SourceFilenameContainsFold applies the ContainsFold predicate on the "source_filename" field.
func SourceFilenameContainsFold(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldContainsFold(FieldSourceFilename, v))
}

// MimeTypeEQ applies the EQ predicate on the "mime_type" field.
func MimeTypeEQ(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEQ(FieldMimeType, v))
}

// MimeTypeNEQ applies the NEQ predicate on the "mime_type" field.
func MimeTypeNEQ(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNEQ(FieldMimeType, v))
}

// MimeTypeIn applies the In predicate on the "mime_type" field.
func MimeTypeIn(vs ...string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldIn(FieldMimeType, vs...))
}

// MimeTypeNotIn applies the NotIn predicate on the "mime_type" field.
func MimeTypeNotIn(vs ...string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNotIn(FieldMimeType, vs...))
}

// MimeTypeGT applies the GT predicate on the "mime_type" field.
func MimeTypeGT(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldGT(FieldMimeType, v))
}

// MimeTypeGTE applies the GTE predicate on the "mime_type" field.
func MimeTypeGTE(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldGTE(FieldMimeType, v))
}

// MimeTypeLT applies the LT predicate on the "mime_type" field.
func MimeTypeLT(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldLT(FieldMimeType, v))
}

// MimeTypeLTE applies the LTE predicate on the "mime_type" field.
func MimeTypeLTE(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldLTE(FieldMimeType, v))
}

// MimeTypeContains applies the Contains predicate on the "mime_type" field.
func MimeTypeContains(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldContains(FieldMimeType, v))
}

// MimeTypeHasPrefix applies the HasPrefix predicate on the "mime_type" field.
func MimeTypeHasPrefix(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldHasPrefix(FieldMimeType, v))
}

// MimeTypeHasSuffix applies the HasSuffix predicate on the "mime_type" field.
func MimeTypeHasSuffix(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldHasSuffix(FieldMimeType, v))
}

// MimeTypeEqualFold applies the EqualFold predicate on the "mime_type" field.
func MimeTypeEqualFold(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEqualFold(FieldMimeType, v))
}

// MimeTypeContainsFold applies the ContainsFold predicate on the "mime_type" field.
func MimeTypeContainsFold(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldContainsFold(FieldMimeType, v))
}

// ChecksumEQ applies the EQ predicate on the "checksum" field.
func ChecksumEQ(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEQ(FieldChecksum, v))
}

// ChecksumNEQ applies the NEQ predicate on the "checksum" field.
func ChecksumNEQ(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNEQ(FieldChecksum, v))
}

// ChecksumIn applies the In predicate on the "checksum" field.
func ChecksumIn(vs ...string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldIn(FieldChecksum, vs...))
}

// ChecksumNotIn applies the NotIn predicate on the "checksum" field.
func ChecksumNotIn(vs ...string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNotIn(FieldChecksum, vs...))
}

// ChecksumGT applies the GT predicate on the "checksum" field.
func ChecksumGT(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldGT(FieldChecksum, v))
}

// ChecksumGTE applies the GTE predicate on the "checksum" field.
func ChecksumGTE(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldGTE(FieldChecksum, v))
}

// ChecksumLT applies the LT predicate on the "checksum" field.
func ChecksumLT(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldLT(FieldChecksum, v))
}

// ChecksumLTE applies the LTE predicate on the "checksum" field.
func ChecksumLTE(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldLTE(FieldChecksum, v))
}

// ChecksumContains applies the Contains predicate on the "checksum" field.
func ChecksumContains(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldContains(FieldChecksum, v))
}

// ChecksumHasPrefix applies the HasPrefix predicate on the "checksum" field.
func ChecksumHasPrefix(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldHasPrefix(FieldChecksum, v))
}

// ChecksumHasSuffix applies the HasSuffix predicate on the "checksum" field.
func ChecksumHasSuffix(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldHasSuffix(FieldChecksum, v))
}

// ChecksumEqualFold applies the EqualFold predicate on the "checksum" field.
func ChecksumEqualFold(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEqualFold(FieldChecksum, v))
}

// ChecksumContainsFold applies the ContainsFold predicate on the "checksum" field.
func ChecksumContainsFold(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldContainsFold(FieldChecksum, v))
}

// ParserVersionEQ applies the EQ predicate on the "parser_version" field.
func ParserVersionEQ(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEQ(FieldParserVersion, v))
}

// ParserVersionNEQ applies the NEQ predicate on the "parser_version" field.
func ParserVersionNEQ(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNEQ(FieldParserVersion, v))
}

// ParserVersionIn applies the In predicate on the "parser_version" field.
func ParserVersionIn(vs ...string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldIn(FieldParserVersion, vs...))
}

// ParserVersionNotIn applies the NotIn predicate on the "parser_version" field.
func ParserVersionNotIn(vs ...string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNotIn(FieldParserVersion, vs...))
}

// ParserVersionGT applies the GT predicate on the "parser_version" field.
func ParserVersionGT(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldGT(FieldParserVersion, v))
}

// ParserVersionGTE applies the GTE predicate on the "parser_version" field.
func ParserVersionGTE(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldGTE(FieldParserVersion, v))
}

// ParserVersionLT applies the LT predicate on the "parser_version" field.
func ParserVersionLT(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldLT(FieldParserVersion, v))
}

// ParserVersionLTE applies the LTE predicate on the "parser_version" field.
func ParserVersionLTE(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldLTE(FieldParserVersion, v))
}

// ParserVersionContains applies the Contains predicate on the "parser_version" field.
func ParserVersionContains(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldContains(FieldParserVersion, v))
}

// ParserVersionHasPrefix applies the HasPrefix predicate on the "parser_version" field.
func ParserVersionHasPrefix(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldHasPrefix(FieldParserVersion, v))
}

// ParserVersionHasSuffix applies the HasSuffix predicate on the "parser_version" field.
func ParserVersionHasSuffix(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldHasSuffix(FieldParserVersion, v))
}

// ParserVersionEqualFold applies the EqualFold predicate on the "parser_version" field.
func ParserVersionEqualFold(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEqualFold(FieldParserVersion, v))
}

// ParserVersionContainsFold applies the ContainsFold predicate on the "parser_version" field.
func ParserVersionContainsFold(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldContainsFold(FieldParserVersion, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNotIn(FieldStatus, vs...))
}

// RecognizedAtEQ applies the EQ predicate on the "recognized_at" field.
func RecognizedAtEQ(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEQ(FieldRecognizedAt, v))
}

// RecognizedAtNEQ applies the NEQ predicate on the "recognized_at" field.
func RecognizedAtNEQ(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNEQ(FieldRecognizedAt, v))
}

// RecognizedAtIn applies the In predicate on the "recognized_at" field.
func RecognizedAtIn(vs ...time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldIn(FieldRecognizedAt, vs...))
}

// RecognizedAtNotIn applies the NotIn predicate on the "recognized_at" field.
func RecognizedAtNotIn(vs ...time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNotIn(FieldRecognizedAt, vs...))
}

// RecognizedAtGT applies the GT predicate on the "recognized_at" field.
func RecognizedAtGT(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldGT(FieldRecognizedAt, v))
}

// RecognizedAtGTE applies the GTE predicate on the "recognized_at" field.
func RecognizedAtGTE(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldGTE(FieldRecognizedAt, v))
}

// RecognizedAtLT applies the LT predicate on the "recognized_at" field.
func RecognizedAtLT(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldLT(FieldRecognizedAt, v))
}

// RecognizedAtLTE applies the LTE predicate on the "recognized_at" field.
func RecognizedAtLTE(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldLTE(FieldRecognizedAt, v))
}

// RecognizedAtIsNil applies the IsNil predicate on the "recognized_at" field.
func RecognizedAtIsNil() predicate.PatientReport {
	return predicate.PatientReport(sql.FieldIsNull(FieldRecognizedAt))
}

// RecognizedAtNotNil applies the NotNil predicate on the "recognized_at" field.
func RecognizedAtNotNil() predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNotNull(FieldRecognizedAt))
}

// ProcessedAtEQ applies the EQ predicate on the "processed_at" field.
func ProcessedAtEQ(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEQ(FieldProcessedAt, v))
}

// ProcessedAtNEQ applies the NEQ predicate on the "processed_at" field.
func ProcessedAtNEQ(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNEQ(FieldProcessedAt, v))
}

// ProcessedAtIn applies the In predicate on the "processed_at" field.
func ProcessedAtIn(vs ...time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldIn(FieldProcessedAt, vs...))
}

// ProcessedAtNotIn applies the NotIn predicate on the "processed_at" field.
func ProcessedAtNotIn(vs ...time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNotIn(FieldProcessedAt, vs...))
}

// ProcessedAtGT applies the GT predicate on the "processed_at" field.
func ProcessedAtGT(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldGT(FieldProcessedAt, v))
}

// ProcessedAtGTE applies the GTE predicate on the "processed_at" field.
func ProcessedAtGTE(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldGTE(FieldProcessedAt, v))
}

// ProcessedAtLT applies the LT predicate on the "processed_at" field.
func ProcessedAtLT(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldLT(FieldProcessedAt, v))
}

// ProcessedAtLTE applies the LTE predicate on the "processed_at" field.
func ProcessedAtLTE(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldLTE(FieldProcessedAt, v))
}

// ProcessedAtIsNil applies the IsNil predicate on the "processed_at" field.
func ProcessedAtIsNil() predicate.PatientReport {
	return predicate.PatientReport(sql.FieldIsNull(FieldProcessedAt))
}

// ProcessedAtNotNil applies the NotNil predicate on the "processed_at" field.
func ProcessedAtNotNil() predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNotNull(FieldProcessedAt))
}

// TestDateEQ applies the EQ predicate on the "test_date" field.
func TestDateEQ(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEQ(FieldTestDate, v))
}

// TestDateNEQ applies the NEQ predicate on the "test_date" field.
func TestDateNEQ(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNEQ(FieldTestDate, v))
}

// TestDateIn applies the In predicate on the "test_date" field.
func TestDateIn(vs ...time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldIn(FieldTestDate, vs...))
}

// TestDateNotIn applies the NotIn predicate on the "test_date" field.
func TestDateNotIn(vs ...time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNotIn(FieldTestDate, vs...))
}

// TestDateGT applies the GT predicate on the "test_date" field.
func TestDateGT(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldGT(FieldTestDate, v))
}

// TestDateGTE applies the GTE predicate on the "test_date" field.
func TestDateGTE(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldGTE(FieldTestDate, v))
}

// TestDateLT applies the LT predicate on the "test_date" field.
func TestDateLT(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldLT(FieldTestDate, v))
}

// TestDateLTE applies the LTE predicate on the "test_date" field.
func TestDateLTE(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldLTE(FieldTestDate, v))
}

// TestDateIsNil applies the IsNil predicate on the "test_date" field.
func TestDateIsNil() predicate.PatientReport {
	return predicate.PatientReport(sql.FieldIsNull(FieldTestDate))
}

// TestDateNotNil applies the NotNil predicate on the "test_date" field.
func TestDateNotNil() predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNotNull(FieldTestDate))
}

// PatientNameEQ applies the EQ predicate on the "patient_name" field.
func PatientNameEQ(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEQ(FieldPatientName, v))
}

// PatientNameNEQ applies the NEQ predicate on the "patient_name" field.
func PatientNameNEQ(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNEQ(FieldPatientName, v))
}

// PatientNameIn applies the In predicate on the "patient_name" field.
func PatientNameIn(vs ...string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldIn(FieldPatientName, vs...))
}

// PatientNameNotIn applies the NotIn predicate on the "patient_name" field.
func PatientNameNotIn(vs ...string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNotIn(FieldPatientName, vs...))
}

// PatientNameGT applies the GT predicate on the "patient_name" field.
func PatientNameGT(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldGT(FieldPatientName, v))
}

// PatientNameGTE applies the GTE predicate on the "patient_name" field.
func PatientNameGTE(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldGTE(FieldPatientName, v))
}

// PatientNameLT applies the LT predicate on the "patient_name" field.
func PatientNameLT(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldLT(FieldPatientName, v))
}

// PatientNameLTE applies the LTE predicate on the "patient_name" field.
func PatientNameLTE(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldLTE(FieldPatientName, v))
}

// PatientNameContains applies the Contains predicate on the "patient_name" field.
func PatientNameContains(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldContains(FieldPatientName, v))
}

// PatientNameHasPrefix applies the HasPrefix predicate on the "patient_name" field.
func PatientNameHasPrefix(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldHasPrefix(FieldPatientName, v))
}

// PatientNameHasSuffix applies the HasSuffix predicate on the "patient_name" field.
func PatientNameHasSuffix(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldHasSuffix(FieldPatientName, v))
}

// PatientNameIsNil applies the IsNil predicate on the "patient_name" field.
func PatientNameIsNil() predicate.PatientReport {
	return predicate.PatientReport(sql.FieldIsNull(FieldPatientName))
}

// PatientNameNotNil applies the NotNil predicate on the "patient_name" field.
func PatientNameNotNil() predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNotNull(FieldPatientName))
}

// PatientNameEqualFold applies the EqualFold predicate on the "patient_name" field.
func PatientNameEqualFold(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEqualFold(FieldPatientName, v))
}

// PatientNameContainsFold applies the ContainsFold predicate on the "patient_name" field.
func PatientNameContainsFold(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldContainsFold(FieldPatientName, v))
}

// PatientGenderEQ applies the EQ predicate on the "patient_gender" field.
func PatientGenderEQ(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEQ(FieldPatientGender, v))
}

// PatientGenderNEQ applies the NEQ predicate on the "patient_gender" field.
func PatientGenderNEQ(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNEQ(FieldPatientGender, v))
}

// PatientGenderIn applies the In predicate on the "patient_gender" field.
func PatientGenderIn(vs ...string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldIn(FieldPatientGender, vs...))
}

// PatientGenderNotIn applies the NotIn predicate on the "patient_gender" field.
func PatientGenderNotIn(vs ...string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNotIn(FieldPatientGender, vs...))
}

// PatientGenderGT applies the GT predicate on the "patient_gender" field.
func PatientGenderGT(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldGT(FieldPatientGender, v))
}

// PatientGenderGTE applies the GTE predicate on the "patient_gender" field.
func PatientGenderGTE(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldGTE(FieldPatientGender, v))
}

// PatientGenderLT applies the LT predicate on the "patient_gender" field.
func PatientGenderLT(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldLT(FieldPatientGender, v))
}

// PatientGenderLTE applies the LTE predicate on the "patient_gender" field.
func PatientGenderLTE(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldLTE(FieldPatientGender, v))
}

// PatientGenderContains applies the Contains predicate on the "patient_gender" field.
func PatientGenderContains(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldContains(FieldPatientGender, v))
}

// PatientGenderHasPrefix applies the HasPrefix predicate on the "patient_gender" field.
func PatientGenderHasPrefix(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldHasPrefix(FieldPatientGender, v))
}

// PatientGenderHasSuffix applies the HasSuffix predicate on the "patient_gender" field.
func PatientGenderHasSuffix(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldHasSuffix(FieldPatientGender, v))
}

// PatientGenderIsNil applies the IsNil predicate on the "patient_gender" field.
func PatientGenderIsNil() predicate.PatientReport {
	return predicate.PatientReport(sql.FieldIsNull(FieldPatientGender))
}

// PatientGenderNotNil applies the NotNil predicate on the "patient_gender" field.
func PatientGenderNotNil() predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNotNull(FieldPatientGender))
}

// PatientGenderEqualFold applies the EqualFold predicate on the "patient_gender" field.
func PatientGenderEqualFold(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEqualFold(FieldPatientGender, v))
}

// PatientGenderContainsFold applies the ContainsFold predicate on the "patient_gender" field.
func PatientGenderContainsFold(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldContainsFold(FieldPatientGender, v))
}

// PatientDobEQ applies the EQ predicate on the "patient_dob" field.
func PatientDobEQ(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEQ(FieldPatientDob, v))
}

// PatientDobNEQ applies the NEQ predicate on the "patient_dob" field.
func PatientDobNEQ(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNEQ(FieldPatientDob, v))
}

// PatientDobIn applies the In predicate on the "patient_dob" field.
func PatientDobIn(vs ...time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldIn(FieldPatientDob, vs...))
}

// PatientDobNotIn applies the NotIn predicate on the "patient_dob" field.
func PatientDobNotIn(vs ...time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNotIn(FieldPatientDob, vs...))
}

// PatientDobGT applies the GT predicate on the "patient_dob" field.
func PatientDobGT(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldGT(FieldPatientDob, v))
}

// PatientDobGTE applies the GTE predicate on the "patient_dob" field.
func PatientDobGTE(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldGTE(FieldPatientDob, v))
}

// PatientDobLT applies the LT predicate on the "patient_dob" field.
func PatientDobLT(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldLT(FieldPatientDob, v))
}

// PatientDobLTE applies the LTE predicate on the "patient_dob" field.
func PatientDobLTE(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldLTE(FieldPatientDob, v))
}

// PatientDobIsNil applies the IsNil predicate on the "patient_dob" field.
func PatientDobIsNil() predicate.PatientReport {
	return predicate.PatientReport(sql.FieldIsNull(FieldPatientDob))
}

// PatientDobNotNil applies the NotNil predicate on the "patient_dob" field.
func PatientDobNotNil() predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNotNull(FieldPatientDob))
}

// PatientAgeEQ applies the EQ predicate on the "patient_age" field.
func PatientAgeEQ(v int) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEQ(FieldPatientAge, v))
}

// PatientAgeNEQ applies the NEQ predicate on the "patient_age" field.
func PatientAgeNEQ(v int) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNEQ(FieldPatientAge, v))
}

// PatientAgeIn applies the In predicate on the "patient_age" field.
func PatientAgeIn(vs ...int) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldIn(FieldPatientAge, vs...))
}

// PatientAgeNotIn applies the NotIn predicate on the "patient_age" field.
func PatientAgeNotIn(vs ...int) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNotIn(FieldPatientAge, vs...))
}

// PatientAgeGT applies the GT predicate on the "patient_age" field.
func PatientAgeGT(v int) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldGT(FieldPatientAge, v))
}

// PatientAgeGTE applies the GTE predicate on the "patient_age" field.
func PatientAgeGTE(v int) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldGTE(FieldPatientAge, v))
}

// PatientAgeLT applies the LT predicate on the "patient_age" field.
func PatientAgeLT(v int) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldLT(FieldPatientAge, v))
}

// PatientAgeLTE applies the LTE predicate on the "patient_age" field.
func PatientAgeLTE(v int) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldLTE(FieldPatientAge, v))
}

// PatientAgeIsNil applies the IsNil predicate on the "patient_age" field.
func PatientAgeIsNil() predicate.PatientReport {
	return predicate.PatientReport(sql.FieldIsNull(FieldPatientAge))
}

// PatientAgeNotNil applies the NotNil predicate on the "patient_age" field.
func PatientAgeNotNil() predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNotNull(FieldPatientAge))
}

// RawModelOutputEQ applies the EQ predicate on the "raw_model_output" field.
func RawModelOutputEQ(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEQ(FieldRawModelOutput, v))
}

// RawModelOutputNEQ applies the NEQ predicate on the "raw_model_output" field.
func RawModelOutputNEQ(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNEQ(FieldRawModelOutput, v))
}

// RawModelOutputIn applies the In predicate on the "raw_model_output" field.
func RawModelOutputIn(vs ...string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldIn(FieldRawModelOutput, vs...))
}

// RawModelOutputNotIn applies the NotIn predicate on the "raw_model_output" field.
func RawModelOutputNotIn(vs ...string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNotIn(FieldRawModelOutput, vs...))
}

// RawModelOutputGT applies the GT predicate on the "raw_model_output" field.
func RawModelOutputGT(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldGT(FieldRawModelOutput, v))
}

// RawModelOutputGTE applies the GTE predicate on the "raw_model_output" field.
func RawModelOutputGTE(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldGTE(FieldRawModelOutput, v))
}

// RawModelOutputLT applies the LT predicate on the "raw_model_output" field.
func RawModelOutputLT(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldLT(FieldRawModelOutput, v))
}

// RawModelOutputLTE applies the LTE predicate on the "raw_model_output" field.
func RawModelOutputLTE(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldLTE(FieldRawModelOutput, v))
}

// RawModelOutputContains applies the Contains predicate on the "raw_model_output" field.
func RawModelOutputContains(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldContains(FieldRawModelOutput, v))
}

// RawModelOutputHasPrefix applies the HasPrefix predicate on the "raw_model_output" field.
func RawModelOutputHasPrefix(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldHasPrefix(FieldRawModelOutput, v))
}

// RawModelOutputHasSuffix applies the HasSuffix predicate on the "raw_model_output" field.
func RawModelOutputHasSuffix(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldHasSuffix(FieldRawModelOutput, v))
}

// RawModelOutputIsNil applies the IsNil predicate on the "raw_model_output" field.
func RawModelOutputIsNil() predicate.PatientReport {
	return predicate.PatientReport(sql.FieldIsNull(FieldRawModelOutput))
}

// RawModelOutputNotNil applies the NotNil predicate on the "raw_model_output" field.
func RawModelOutputNotNil() predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNotNull(FieldRawModelOutput))
}

// RawModelOutputEqualFold applies the EqualFold predicate on the "raw_model_output" field.
func RawModelOutputEqualFold(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEqualFold(FieldRawModelOutput, v))
}

// RawModelOutputContainsFold applies the ContainsFold predicate on the "raw_model_output" field.
func RawModelOutputContainsFold(v string) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldContainsFold(FieldRawModelOutput, v))
}

// MissingDataIsNil applies the IsNil predicate on the "missing_data" field.
func MissingDataIsNil() predicate.PatientReport {
	return predicate.PatientReport(sql.FieldIsNull(FieldMissingData))
}

// MissingDataNotNil applies the NotNil predicate on the "missing_data" field.
func MissingDataNotNil() predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNotNull(FieldMissingData))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PatientReport {
	return predicate.PatientReport(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasPatient applies the HasEdge predicate on the "patient" edge.
func HasPatient() predicate.PatientReport {
	return predicate.PatientReport(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatientWith applies the HasEdge predicate on the "patient" edge with a given conditions (other predicates).
func HasPatientWith(preds ...predicate.Patient) predicate.PatientReport {
	return predicate.PatientReport(func(s *sql.Selector) {
		step := newPatientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasResults applies the HasEdge predicate on the "results" edge.
func HasResults() predicate.PatientReport {
	return predicate.PatientReport(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ResultsTable, ResultsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResultsWith applies the HasEdge predicate on the "results" edge with a given conditions (other predicates).
func HasResultsWith(preds ...predicate.LabResult) predicate.PatientReport {
	return predicate.PatientReport(func(s *sql.Selector) {
		step := newResultsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PatientReport) predicate.PatientReport {
	return predicate.PatientReport(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PatientReport) predicate.PatientReport {
	return predicate.PatientReport(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PatientReport) predicate.PatientReport {
	return predicate.PatientReport(sql.NotPredicates(p))
}
