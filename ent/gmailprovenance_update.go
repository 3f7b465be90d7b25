// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/labdex/labdex/ent/gmailprovenance"
	"github.com/labdex/labdex/ent/predicate"
)

// GmailProvenanceUpdate is the builder for updating GmailProvenance entities.
type GmailProvenanceUpdate struct {
	config
	hooks    []Hook
	mutation *GmailProvenanceMutation
}

// Where appends a list predicates to the GmailProvenanceUpdate builder.
func (_u *GmailProvenanceUpdate) Where(ps ...predicate.GmailProvenance) *GmailProvenanceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReportID sets the "report_id" field.
func (_u *GmailProvenanceUpdate) SetReportID(v string) *GmailProvenanceUpdate {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *GmailProvenanceUpdate) SetNillableReportID(v *string) *GmailProvenanceUpdate {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *GmailProvenanceUpdate) SetUserID(v string) *GmailProvenanceUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *GmailProvenanceUpdate) SetNillableUserID(v *string) *GmailProvenanceUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *GmailProvenanceUpdate) ClearUserID() *GmailProvenanceUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *GmailProvenanceUpdate) SetMessageID(v string) *GmailProvenanceUpdate {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *GmailProvenanceUpdate) SetNillableMessageID(v *string) *GmailProvenanceUpdate {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// SetAttachmentID sets the "attachment_id" field.
func (_u *GmailProvenanceUpdate) SetAttachmentID(v string) *GmailProvenanceUpdate {
	_u.mutation.SetAttachmentID(v)
	return _u
}

// SetNillableAttachmentID sets the "attachment_id" field if the given value is not nil.
func (_u *GmailProvenanceUpdate) SetNillableAttachmentID(v *string) *GmailProvenanceUpdate {
	if v != nil {
		_u.SetAttachmentID(*v)
	}
	return _u
}

// SetSenderEmail sets the "sender_email" field.
func (_u *GmailProvenanceUpdate) SetSenderEmail(v string) *GmailProvenanceUpdate {
	_u.mutation.SetSenderEmail(v)
	return _u
}

// SetNillableSenderEmail sets the "sender_email" field if the given value is not nil.
func (_u *GmailProvenanceUpdate) SetNillableSenderEmail(v *string) *GmailProvenanceUpdate {
	if v != nil {
		_u.SetSenderEmail(*v)
	}
	return _u
}

// SetSenderName sets the "sender_name" field.
func (_u *GmailProvenanceUpdate) SetSenderName(v string) *GmailProvenanceUpdate {
	_u.mutation.SetSenderName(v)
	return _u
}

// SetNillableSenderName sets the "sender_name" field if the given value is not nil.
func (_u *GmailProvenanceUpdate) SetNillableSenderName(v *string) *GmailProvenanceUpdate {
	if v != nil {
		_u.SetSenderName(*v)
	}
	return _u
}

// ClearSenderName clears the value of the "sender_name" field.
func (_u *GmailProvenanceUpdate) ClearSenderName() *GmailProvenanceUpdate {
	_u.mutation.ClearSenderName()
	return _u
}

// SetSubject sets the "subject" field.
func (_u *GmailProvenanceUpdate) SetSubject(v string) *GmailProvenanceUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *GmailProvenanceUpdate) SetNillableSubject(v *string) *GmailProvenanceUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *GmailProvenanceUpdate) ClearSubject() *GmailProvenanceUpdate {
	_u.mutation.ClearSubject()
	return _u
}

// SetEmailDate sets the "email_date" field.
func (_u *GmailProvenanceUpdate) SetEmailDate(v time.Time) *GmailProvenanceUpdate {
	_u.mutation.SetEmailDate(v)
	return _u
}

// SetNillableEmailDate sets the "email_date" field if the given value is not nil.
func (_u *GmailProvenanceUpdate) SetNillableEmailDate(v *time.Time) *GmailProvenanceUpdate {
	if v != nil {
		_u.SetEmailDate(*v)
	}
	return _u
}

// ClearEmailDate clears the value of the "email_date" field.
func (_u *GmailProvenanceUpdate) ClearEmailDate() *GmailProvenanceUpdate {
	_u.mutation.ClearEmailDate()
	return _u
}

// SetAttachmentSha256 sets the "attachment_sha256" field.
func (_u *GmailProvenanceUpdate) SetAttachmentSha256(v string) *GmailProvenanceUpdate {
	_u.mutation.SetAttachmentSha256(v)
	return _u
}

// SetNillableAttachmentSha256 sets the "attachment_sha256" field if the given value is not nil.
func (_u *GmailProvenanceUpdate) SetNillableAttachmentSha256(v *string) *GmailProvenanceUpdate {
	if v != nil {
		_u.SetAttachmentSha256(*v)
	}
	return _u
}

// Mutation returns the GmailProvenanceMutation object of the builder.
func (_u *GmailProvenanceUpdate) Mutation() *GmailProvenanceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GmailProvenanceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GmailProvenanceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GmailProvenanceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GmailProvenanceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *GmailProvenanceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(gmailprovenance.Table, gmailprovenance.Columns, sqlgraph.NewFieldSpec(gmailprovenance.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ReportID(); ok {
		_spec.SetField(gmailprovenance.FieldReportID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(gmailprovenance.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(gmailprovenance.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(gmailprovenance.FieldMessageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttachmentID(); ok {
		_spec.SetField(gmailprovenance.FieldAttachmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SenderEmail(); ok {
		_spec.SetField(gmailprovenance.FieldSenderEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.SenderName(); ok {
		_spec.SetField(gmailprovenance.FieldSenderName, field.TypeString, value)
	}
	if _u.mutation.SenderNameCleared() {
		_spec.ClearField(gmailprovenance.FieldSenderName, field.TypeString)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(gmailprovenance.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(gmailprovenance.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.EmailDate(); ok {
		_spec.SetField(gmailprovenance.FieldEmailDate, field.TypeTime, value)
	}
	if _u.mutation.EmailDateCleared() {
		_spec.ClearField(gmailprovenance.FieldEmailDate, field.TypeTime)
	}
	if value, ok := _u.mutation.AttachmentSha256(); ok {
		_spec.SetField(gmailprovenance.FieldAttachmentSha256, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gmailprovenance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GmailProvenanceUpdateOne is the builder for updating a single GmailProvenance entity.
type GmailProvenanceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GmailProvenanceMutation
}

// SetReportID sets the "report_id" field.
func (_u *GmailProvenanceUpdateOne) SetReportID(v string) *GmailProvenanceUpdateOne {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *GmailProvenanceUpdateOne) SetNillableReportID(v *string) *GmailProvenanceUpdateOne {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *GmailProvenanceUpdateOne) SetUserID(v string) *GmailProvenanceUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *GmailProvenanceUpdateOne) SetNillableUserID(v *string) *GmailProvenanceUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *GmailProvenanceUpdateOne) ClearUserID() *GmailProvenanceUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *GmailProvenanceUpdateOne) SetMessageID(v string) *GmailProvenanceUpdateOne {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *GmailProvenanceUpdateOne) SetNillableMessageID(v *string) *GmailProvenanceUpdateOne {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// SetAttachmentID sets the "attachment_id" field.
func (_u *GmailProvenanceUpdateOne) SetAttachmentID(v string) *GmailProvenanceUpdateOne {
	_u.mutation.SetAttachmentID(v)
	return _u
}

// SetNillableAttachmentID sets the "attachment_id" field if the given value is not nil.
func (_u *GmailProvenanceUpdateOne) SetNillableAttachmentID(v *string) *GmailProvenanceUpdateOne {
	if v != nil {
		_u.SetAttachmentID(*v)
	}
	return _u
}

// SetSenderEmail sets the "sender_email" field.
func (_u *GmailProvenanceUpdateOne) SetSenderEmail(v string) *GmailProvenanceUpdateOne {
	_u.mutation.SetSenderEmail(v)
	return _u
}

// SetNillableSenderEmail sets the "sender_email" field if the given value is not nil.
func (_u *GmailProvenanceUpdateOne) SetNillableSenderEmail(v *string) *GmailProvenanceUpdateOne {
	if v != nil {
		_u.SetSenderEmail(*v)
	}
	return _u
}

// SetSenderName sets the "sender_name" field.
func (_u *GmailProvenanceUpdateOne) SetSenderName(v string) *GmailProvenanceUpdateOne {
	_u.mutation.SetSenderName(v)
	return _u
}

// SetNillableSenderName sets the "sender_name" field if the given value is not nil.
func (_u *GmailProvenanceUpdateOne) SetNillableSenderName(v *string) *GmailProvenanceUpdateOne {
	if v != nil {
		_u.SetSenderName(*v)
	}
	return _u
}

// ClearSenderName clears the value of the "sender_name" field.
func (_u *GmailProvenanceUpdateOne) ClearSenderName() *GmailProvenanceUpdateOne {
	_u.mutation.ClearSenderName()
	return _u
}

// SetSubject sets the "subject" field.
func (_u *GmailProvenanceUpdateOne) SetSubject(v string) *GmailProvenanceUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *GmailProvenanceUpdateOne) SetNillableSubject(v *string) *GmailProvenanceUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *GmailProvenanceUpdateOne) ClearSubject() *GmailProvenanceUpdateOne {
	_u.mutation.ClearSubject()
	return _u
}

// SetEmailDate sets the "email_date" field.
func (_u *GmailProvenanceUpdateOne) SetEmailDate(v time.Time) *GmailProvenanceUpdateOne {
	_u.mutation.SetEmailDate(v)
	return _u
}

// SetNillableEmailDate sets the "email_date" field if the given value is not nil.
func (_u *GmailProvenanceUpdateOne) SetNillableEmailDate(v *time.Time) *GmailProvenanceUpdateOne {
	if v != nil {
		_u.SetEmailDate(*v)
	}
	return _u
}

// ClearEmailDate clears the value of the "email_date" field.
func (_u *GmailProvenanceUpdateOne) ClearEmailDate() *GmailProvenanceUpdateOne {
	_u.mutation.ClearEmailDate()
	return _u
}

// SetAttachmentSha256 sets the "attachment_sha256" field.
func (_u *GmailProvenanceUpdateOne) SetAttachmentSha256(v string) *GmailProvenanceUpdateOne {
	_u.mutation.SetAttachmentSha256(v)
	return _u
}

// SetNillableAttachmentSha256 sets the "attachment_sha256" field if the given value is not nil.
func (_u *GmailProvenanceUpdateOne) SetNillableAttachmentSha256(v *string) *GmailProvenanceUpdateOne {
	if v != nil {
		_u.SetAttachmentSha256(*v)
	}
	return _u
}

// Mutation returns the GmailProvenanceMutation object of the builder.
func (_u *GmailProvenanceUpdateOne) Mutation() *GmailProvenanceMutation {
	return _u.mutation
}

// Where appends a list predicates to the GmailProvenanceUpdate builder.
func (_u *GmailProvenanceUpdateOne) Where(ps ...predicate.GmailProvenance) *GmailProvenanceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GmailProvenanceUpdateOne) Select(field string, fields ...string) *GmailProvenanceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GmailProvenance entity.
func (_u *GmailProvenanceUpdateOne) Save(ctx context.Context) (*GmailProvenance, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GmailProvenanceUpdateOne) SaveX(ctx context.Context) *GmailProvenance {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GmailProvenanceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GmailProvenanceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *GmailProvenanceUpdateOne) sqlSave(ctx context.Context) (_node *GmailProvenance, err error) {
	_spec := sqlgraph.NewUpdateSpec(gmailprovenance.Table, gmailprovenance.Columns, sqlgraph.NewFieldSpec(gmailprovenance.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GmailProvenance.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gmailprovenance.FieldID)
		for _, f := range fields {
			if !gmailprovenance.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gmailprovenance.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ReportID(); ok {
		_spec.SetField(gmailprovenance.FieldReportID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(gmailprovenance.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(gmailprovenance.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(gmailprovenance.FieldMessageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttachmentID(); ok {
		_spec.SetField(gmailprovenance.FieldAttachmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SenderEmail(); ok {
		_spec.SetField(gmailprovenance.FieldSenderEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.SenderName(); ok {
		_spec.SetField(gmailprovenance.FieldSenderName, field.TypeString, value)
	}
	if _u.mutation.SenderNameCleared() {
		_spec.ClearField(gmailprovenance.FieldSenderName, field.TypeString)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(gmailprovenance.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(gmailprovenance.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.EmailDate(); ok {
		_spec.SetField(gmailprovenance.FieldEmailDate, field.TypeTime, value)
	}
	if _u.mutation.EmailDateCleared() {
		_spec.ClearField(gmailprovenance.FieldEmailDate, field.TypeTime)
	}
	if value, ok := _u.mutation.AttachmentSha256(); ok {
		_spec.SetField(gmailprovenance.FieldAttachmentSha256, field.TypeString, value)
	}
	_node = &GmailProvenance{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gmailprovenance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
