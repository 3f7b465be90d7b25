// Code generated by ent, DO NOT EDIT.

package gmailprovenance

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/labdex/labdex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldContainsFold(FieldID, id))
}

// ReportID applies equality check predicate on the "report_id" field. It's identical to ReportIDEQ.
func ReportID(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldEQ(FieldReportID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldEQ(FieldUserID, v))
}

// MessageID applies equality check predicate on the "message_id" field. It's identical to MessageIDEQ.
func MessageID(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldEQ(FieldMessageID, v))
}

// AttachmentID applies equality check predicate on the "attachment_id" field. It's identical to AttachmentIDEQ.
func AttachmentID(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldEQ(FieldAttachmentID, v))
}

// SenderEmail applies equality check predicate on the "sender_email" field. It's identical to SenderEmailEQ.
func SenderEmail(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldEQ(FieldSenderEmail, v))
}

// SenderName applies equality check predicate on the "sender_name" field. It's identical to SenderNameEQ.
func SenderName(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldEQ(FieldSenderName, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldEQ(FieldSubject, v))
}

// EmailDate applies equality check predicate on the "email_date" field. It's identical to EmailDateEQ.
func EmailDate(v time.Time) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldEQ(FieldEmailDate, v))
}

// AttachmentSha256 applies equality check predicate on the "attachment_sha256" field. It's identical to AttachmentSha256EQ.
func AttachmentSha256(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldEQ(FieldAttachmentSha256, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldEQ(FieldCreatedAt, v))
}

// ReportIDEQ applies the EQ predicate on the "report_id" field.
func ReportIDEQ(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldEQ(FieldReportID, v))
}

// ReportIDNEQ applies the NEQ predicate on the "report_id" field.
func ReportIDNEQ(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldNEQ(FieldReportID, v))
}

// ReportIDIn applies the In predicate on the "report_id" field.
func ReportIDIn(vs ...string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldIn(FieldReportID, vs...))
}

// ReportIDNotIn applies the NotIn predicate on the "report_id" field.
func ReportIDNotIn(vs ...string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldNotIn(FieldReportID, vs...))
}

// ReportIDGT applies the GT predicate on the "report_id" field.
func ReportIDGT(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldGT(FieldReportID, v))
}

// ReportIDGTE applies the GTE predicate on the "report_id" field.
func ReportIDGTE(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldGTE(FieldReportID, v))
}

// ReportIDLT applies the LT predicate on the "report_id" field.
func ReportIDLT(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldLT(FieldReportID, v))
}

// ReportIDLTE applies the LTE predicate on the "report_id" field.
func ReportIDLTE(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldLTE(FieldReportID, v))
}

// ReportIDContains applies the Contains predicate on the "report_id" field.
func ReportIDContains(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldContains(FieldReportID, v))
}

// ReportIDHasPrefix applies the HasPrefix predicate on the "report_id" field.
func ReportIDHasPrefix(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldHasPrefix(FieldReportID, v))
}

// ReportIDHasSuffix applies the HasSuffix predicate on the "report_id" field.
func ReportIDHasSuffix(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldHasSuffix(FieldReportID, v))
}

// ReportIDEqualFold applies the EqualFold predicate on the "report_id" field.
func ReportIDEqualFold(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldEqualFold(FieldReportID, v))
}

// ReportIDContainsFold applies the ContainsFold predicate on the "report_id" field.
func ReportIDContainsFold(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldContainsFold(FieldReportID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldContainsFold(FieldUserID, v))
}

// MessageIDEQ applies the EQ predicate on the "message_id" field.
func MessageIDEQ(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldEQ(FieldMessageID, v))
}

// MessageIDNEQ applies the NEQ predicate on the "message_id" field.
func MessageIDNEQ(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldNEQ(FieldMessageID, v))
}

// MessageIDIn applies the In predicate on the "message_id" field.
func MessageIDIn(vs ...string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldIn(FieldMessageID, vs...))
}

// MessageIDNotIn applies the NotIn predicate on the "message_id" field.
func MessageIDNotIn(vs ...string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldNotIn(FieldMessageID, vs...))
}

// MessageIDGT applies the GT predicate on the "message_id" field.
func MessageIDGT(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldGT(FieldMessageID, v))
}

// MessageIDGTE applies the GTE predicate on the "message_id" field.
func MessageIDGTE(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldGTE(FieldMessageID, v))
}

// MessageIDLT applies the LT predicate on the "message_id" field.
func MessageIDLT(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldLT(FieldMessageID, v))
}

// MessageIDLTE applies the LTE predicate on the "message_id" field.
func MessageIDLTE(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldLTE(FieldMessageID, v))
}

// MessageIDContains applies the Contains predicate on the "message_id" field.
func MessageIDContains(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldContains(FieldMessageID, v))
}

// MessageIDHasPrefix applies the HasPrefix predicate on the "message_id" field.
func MessageIDHasPrefix(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldHasPrefix(FieldMessageID, v))
}

// MessageIDHasSuffix applies the HasSuffix predicate on the "message_id" field.
func MessageIDHasSuffix(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldHasSuffix(FieldMessageID, v))
}

// MessageIDEqualFold applies the EqualFold predicate on the "message_id" field.
func MessageIDEqualFold(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldEqualFold(FieldMessageID, v))
}

// MessageIDContainsFold applies the ContainsFold predicate on the "message_id" field.
func MessageIDContainsFold(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldContainsFold(FieldMessageID, v))
}

// AttachmentIDEQ applies the EQ predicate on the "attachment_id" field.
func AttachmentIDEQ(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldEQ(FieldAttachmentID, v))
}

// AttachmentIDNEQ applies the NEQ predicate on the "attachment_id" field.
func AttachmentIDNEQ(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldNEQ(FieldAttachmentID, v))
}

// AttachmentIDIn applies the In predicate on the "attachment_id" field.
func AttachmentIDIn(vs ...string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldIn(FieldAttachmentID, vs...))
}

// AttachmentIDNotIn applies the NotIn predicate on the "attachment_id" field.
func AttachmentIDNotIn(vs ...string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldNotIn(FieldAttachmentID, vs...))
}

// AttachmentIDGT applies the GT predicate on the "attachment_id" field.
func AttachmentIDGT(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldGT(FieldAttachmentID, v))
}

// AttachmentIDGTE applies the GTE predicate on the "attachment_id" field.
func AttachmentIDGTE(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldGTE(FieldAttachmentID, v))
}

// AttachmentIDLT applies the LT predicate on the "attachment_id" field.
func AttachmentIDLT(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldLT(FieldAttachmentID, v))
}

// AttachmentIDLTE applies the LTE predicate on the "attachment_id" field.
func AttachmentIDLTE(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldLTE(FieldAttachmentID, v))
}

// AttachmentIDContains applies the Contains predicate on the "attachment_id" field.
func AttachmentIDContains(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldContains(FieldAttachmentID, v))
}

// AttachmentIDHasPrefix applies the HasPrefix predicate on the "attachment_id" field.
func AttachmentIDHasPrefix(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldHasPrefix(FieldAttachmentID, v))
}

// AttachmentIDHasSuffix applies the HasSuffix predicate on the "attachment_id" field.
func AttachmentIDHasSuffix(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldHasSuffix(FieldAttachmentID, v))
}

// AttachmentIDEqualFold applies the EqualFold predicate on the "attachment_id" field.
func AttachmentIDEqualFold(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldEqualFold(FieldAttachmentID, v))
}

// AttachmentIDContainsFold applies the ContainsFold predicate on the "attachment_id" field.
func AttachmentIDContainsFold(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldContainsFold(FieldAttachmentID, v))
}

// SenderEmailEQ applies the EQ predicate on the "sender_email" field.
func SenderEmailEQ(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldEQ(FieldSenderEmail, v))
}

// SenderEmailNEQ applies the NEQ predicate on the "sender_email" field.
func SenderEmailNEQ(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldNEQ(FieldSenderEmail, v))
}

// SenderEmailIn applies the In predicate on the "sender_email" field.
func SenderEmailIn(vs ...string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldIn(FieldSenderEmail, vs...))
}

// SenderEmailNotIn applies the NotIn predicate on the "sender_email" field.
func SenderEmailNotIn(vs ...string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldNotIn(FieldSenderEmail, vs...))
}

// SenderEmailGT applies the GT predicate on the "sender_email" field.
func SenderEmailGT(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldGT(FieldSenderEmail, v))
}

// SenderEmailGTE applies the GTE predicate on the "sender_email" field.
func SenderEmailGTE(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldGTE(FieldSenderEmail, v))
}

// SenderEmailLT applies the LT predicate on the "sender_email" field.
func SenderEmailLT(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldLT(FieldSenderEmail, v))
}

// SenderEmailLTE applies the LTE predicate on the "sender_email" field.
func SenderEmailLTE(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldLTE(FieldSenderEmail, v))
}

// SenderEmailContains applies the Contains predicate on the "sender_email" field.
func SenderEmailContains(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldContains(FieldSenderEmail, v))
}

// SenderEmailHasPrefix applies the HasPrefix predicate on the "sender_email" field.
func SenderEmailHasPrefix(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldHasPrefix(FieldSenderEmail, v))
}

// SenderEmailHasSuffix applies the HasSuffix predicate on the "sender_email" field.
func SenderEmailHasSuffix(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldHasSuffix(FieldSenderEmail, v))
}

// SenderEmailEqualFold applies the EqualFold predicate on the "sender_email" field.
func SenderEmailEqualFold(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldEqualFold(FieldSenderEmail, v))
}

// SenderEmailContainsFold applies the ContainsFold predicate on the "sender_email" field.
func SenderEmailContainsFold(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldContainsFold(FieldSenderEmail, v))
}

// SenderNameEQ applies the EQ predicate on the "sender_name" field.
func SenderNameEQ(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldEQ(FieldSenderName, v))
}

// SenderNameNEQ applies the NEQ predicate on the "sender_name" field.
func SenderNameNEQ(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldNEQ(FieldSenderName, v))
}

// SenderNameIn applies the In predicate on the "sender_name" field.
func SenderNameIn(vs ...string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldIn(FieldSenderName, vs...))
}

// SenderNameNotIn applies the NotIn predicate on the "sender_name" field.
func SenderNameNotIn(vs ...string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldNotIn(FieldSenderName, vs...))
}

// SenderNameGT applies the GT predicate on the "sender_name" field.
func SenderNameGT(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldGT(FieldSenderName, v))
}

// SenderNameGTE applies the GTE predicate on the "sender_name" field.
func SenderNameGTE(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldGTE(FieldSenderName, v))
}

// SenderNameLT applies the LT predicate on the "sender_name" field.
func SenderNameLT(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldLT(FieldSenderName, v))
}

// SenderNameLTE applies the LTE predicate on the "sender_name" field.
func SenderNameLTE(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldLTE(FieldSenderName, v))
}

// SenderNameContains applies the Contains predicate on the "sender_name" field.
func SenderNameContains(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldContains(FieldSenderName, v))
}

// SenderNameHasPrefix applies the HasPrefix predicate on the "sender_name" field.
func SenderNameHasPrefix(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldHasPrefix(FieldSenderName, v))
}

// SenderNameHasSuffix applies the HasSuffix predicate on the "sender_name" field.
func SenderNameHasSuffix(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldHasSuffix(FieldSenderName, v))
}

// SenderNameIsNil applies the IsNil predicate on the "sender_name" field.
func SenderNameIsNil() predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldIsNull(FieldSenderName))
}

// SenderNameNotNil applies the NotNil predicate on the "sender_name" field.
func SenderNameNotNil() predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldNotNull(FieldSenderName))
}

// SenderNameEqualFold applies the EqualFold predicate on the "sender_name" field.
func SenderNameEqualFold(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldEqualFold(FieldSenderName, v))
}

// SenderNameContainsFold applies the ContainsFold predicate on the "sender_name" field.
func SenderNameContainsFold(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldContainsFold(FieldSenderName, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectIsNil applies the IsNil predicate on the "subject" field.
func SubjectIsNil() predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldIsNull(FieldSubject))
}

// SubjectNotNil applies the NotNil predicate on the "subject" field.
func SubjectNotNil() predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldNotNull(FieldSubject))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldContainsFold(FieldSubject, v))
}

// EmailDateEQ applies the EQ predicate on the "email_date" field.
func EmailDateEQ(v time.Time) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldEQ(FieldEmailDate, v))
}

// EmailDateNEQ applies the NEQ predicate on the "email_date" field.
func EmailDateNEQ(v time.Time) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldNEQ(FieldEmailDate, v))
}

// EmailDateIn applies the In predicate on the "email_date" field.
func EmailDateIn(vs ...time.Time) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldIn(FieldEmailDate, vs...))
}

// EmailDateNotIn applies the NotIn predicate on the "email_date" field.
func EmailDateNotIn(vs ...time.Time) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldNotIn(FieldEmailDate, vs...))
}

// EmailDateGT applies the GT predicate on the "email_date" field.
func EmailDateGT(v time.Time) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldGT(FieldEmailDate, v))
}

// EmailDateGTE applies the GTE predicate on the "email_date" field.
func EmailDateGTE(v time.Time) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldGTE(FieldEmailDate, v))
}

// EmailDateLT applies the LT predicate on the "email_date" field.
func EmailDateLT(v time.Time) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldLT(FieldEmailDate, v))
}

// EmailDateLTE applies the LTE predicate on the "email_date" field.
func EmailDateLTE(v time.Time) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldLTE(FieldEmailDate, v))
}

// EmailDateIsNil applies the IsNil predicate on the "email_date" field.
func EmailDateIsNil() predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldIsNull(FieldEmailDate))
}

// EmailDateNotNil applies the NotNil predicate on the "email_date" field.
func EmailDateNotNil() predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldNotNull(FieldEmailDate))
}

// AttachmentSha256EQ applies the EQ predicate on the "attachment_sha256" field.
func AttachmentSha256EQ(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldEQ(FieldAttachmentSha256, v))
}

// AttachmentSha256NEQ applies the NEQ predicate on the "attachment_sha256" field.
func AttachmentSha256NEQ(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldNEQ(FieldAttachmentSha256, v))
}

// AttachmentSha256In applies the In predicate on the "attachment_sha256" field.
func AttachmentSha256In(vs ...string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldIn(FieldAttachmentSha256, vs...))
}

// AttachmentSha256NotIn applies the NotIn predicate on the "attachment_sha256" field.
func AttachmentSha256NotIn(vs ...string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldNotIn(FieldAttachmentSha256, vs...))
}

// AttachmentSha256GT applies the GT predicate on the "attachment_sha256" field.
func AttachmentSha256GT(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldGT(FieldAttachmentSha256, v))
}

// AttachmentSha256GTE applies the GTE predicate on the "attachment_sha256" field.
func AttachmentSha256GTE(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldGTE(FieldAttachmentSha256, v))
}

// AttachmentSha256LT applies the LT predicate on the "attachment_sha256" field.
func AttachmentSha256LT(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldLT(FieldAttachmentSha256, v))
}

// AttachmentSha256LTE applies the LTE predicate on the "attachment_sha256" field.
func AttachmentSha256LTE(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldLTE(FieldAttachmentSha256, v))
}

// AttachmentSha256Contains applies the Contains predicate on the "attachment_sha256" field.
func AttachmentSha256Contains(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldContains(FieldAttachmentSha256, v))
}

// AttachmentSha256HasPrefix applies the HasPrefix predicate on the "attachment_sha256" field.
func AttachmentSha256HasPrefix(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldHasPrefix(FieldAttachmentSha256, v))
}

// AttachmentSha256HasSuffix applies the HasSuffix predicate on the "attachment_sha256" field.
func AttachmentSha256HasSuffix(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldHasSuffix(FieldAttachmentSha256, v))
}

// AttachmentSha256EqualFold applies the EqualFold predicate on the "attachment_sha256" field.
func AttachmentSha256EqualFold(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldEqualFold(FieldAttachmentSha256, v))
}

// AttachmentSha256ContainsFold applies the ContainsFold predicate on the "attachment_sha256" field.
func AttachmentSha256ContainsFold(v string) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldContainsFold(FieldAttachmentSha256, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GmailProvenance) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GmailProvenance) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GmailProvenance) predicate.GmailProvenance {
	return predicate.GmailProvenance(sql.NotPredicates(p))
}
