// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/labdex/labdex/ent/gmailprovenance"
)

// GmailProvenanceCreate is the builder for creating a GmailProvenance entity.
type GmailProvenanceCreate struct {
	config
	mutation *GmailProvenanceMutation
	hooks    []Hook
}

// SetReportID sets the "report_id" field.
func (_c *GmailProvenanceCreate) SetReportID(v string) *GmailProvenanceCreate {
	_c.mutation.SetReportID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *GmailProvenanceCreate) SetUserID(v string) *GmailProvenanceCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *GmailProvenanceCreate) SetNillableUserID(v *string) *GmailProvenanceCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetMessageID sets the "message_id" field.
func (_c *GmailProvenanceCreate) SetMessageID(v string) *GmailProvenanceCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetAttachmentID sets the "attachment_id" field.
func (_c *GmailProvenanceCreate) SetAttachmentID(v string) *GmailProvenanceCreate {
	_c.mutation.SetAttachmentID(v)
	return _c
}

// SetSenderEmail sets the "sender_email" field.
func (_c *GmailProvenanceCreate) SetSenderEmail(v string) *GmailProvenanceCreate {
	_c.mutation.SetSenderEmail(v)
	return _c
}

// SetSenderName sets the "sender_name" field.
func (_c *GmailProvenanceCreate) SetSenderName(v string) *GmailProvenanceCreate {
	_c.mutation.SetSenderName(v)
	return _c
}

// SetNillableSenderName sets the "sender_name" field if the given value is not nil.
func (_c *GmailProvenanceCreate) SetNillableSenderName(v *string) *GmailProvenanceCreate {
	if v != nil {
		_c.SetSenderName(*v)
	}
	return _c
}

// SetSubject sets the "subject" field.
func (_c *GmailProvenanceCreate) SetSubject(v string) *GmailProvenanceCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *GmailProvenanceCreate) SetNillableSubject(v *string) *GmailProvenanceCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetEmailDate sets the "email_date" field.
func (_c *GmailProvenanceCreate) SetEmailDate(v time.Time) *GmailProvenanceCreate {
	_c.mutation.SetEmailDate(v)
	return _c
}

// SetNillableEmailDate sets the "email_date" field if the given value is not nil.
func (_c *GmailProvenanceCreate) SetNillableEmailDate(v *time.Time) *GmailProvenanceCreate {
	if v != nil {
		_c.SetEmailDate(*v)
	}
	return _c
}

// SetAttachmentSha256 sets the "attachment_sha256" field.
func (_c *GmailProvenanceCreate) SetAttachmentSha256(v string) *GmailProvenanceCreate {
	_c.mutation.SetAttachmentSha256(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GmailProvenanceCreate) SetCreatedAt(v time.Time) *GmailProvenanceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GmailProvenanceCreate) SetNillableCreatedAt(v *time.Time) *GmailProvenanceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GmailProvenanceCreate) SetID(v string) *GmailProvenanceCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the GmailProvenanceMutation object of the builder.
func (_c *GmailProvenanceCreate) Mutation() *GmailProvenanceMutation {
	return _c.mutation
}

// Save creates the GmailProvenance in the database.
func (_c *GmailProvenanceCreate) Save(ctx context.Context) (*GmailProvenance, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GmailProvenanceCreate) SaveX(ctx context.Context) *GmailProvenance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GmailProvenanceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GmailProvenanceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GmailProvenanceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := gmailprovenance.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GmailProvenanceCreate) check() error {
	if _, ok := _c.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report_id", err: errors.New(`ent: missing required field "GmailProvenance.report_id"`)}
	}
	if _, ok := _c.mutation.MessageID(); !ok {
		return &ValidationError{Name: "message_id", err: errors.New(`ent: missing required field "GmailProvenance.message_id"`)}
	}
	if _, ok := _c.mutation.AttachmentID(); !ok {
		return &ValidationError{Name: "attachment_id", err: errors.New(`ent: missing required field "GmailProvenance.attachment_id"`)}
	}
	if _, ok := _c.mutation.SenderEmail(); !ok {
		return &ValidationError{Name: "sender_email", err: errors.New(`ent: missing required field "GmailProvenance.sender_email"`)}
	}
	if _, ok := _c.mutation.AttachmentSha256(); !ok {
		return &ValidationError{Name: "attachment_sha256", err: errors.New(`ent: missing required field "GmailProvenance.attachment_sha256"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GmailProvenance.created_at"`)}
	}
	return nil
}

func (_c *GmailProvenanceCreate) sqlSave(ctx context.Context) (*GmailProvenance, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected GmailProvenance.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GmailProvenanceCreate) createSpec() (*GmailProvenance, *sqlgraph.CreateSpec) {
	var (
		_node = &GmailProvenance{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gmailprovenance.Table, sqlgraph.NewFieldSpec(gmailprovenance.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ReportID(); ok {
		_spec.SetField(gmailprovenance.FieldReportID, field.TypeString, value)
		_node.ReportID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(gmailprovenance.FieldUserID, field.TypeString, value)
		_node.UserID = &value
	}
	if value, ok := _c.mutation.MessageID(); ok {
		_spec.SetField(gmailprovenance.FieldMessageID, field.TypeString, value)
		_node.MessageID = value
	}
	if value, ok := _c.mutation.AttachmentID(); ok {
		_spec.SetField(gmailprovenance.FieldAttachmentID, field.TypeString, value)
		_node.AttachmentID = value
	}
	if value, ok := _c.mutation.SenderEmail(); ok {
		_spec.SetField(gmailprovenance.FieldSenderEmail, field.TypeString, value)
		_node.SenderEmail = value
	}
	if value, ok := _c.mutation.SenderName(); ok {
		_spec.SetField(gmailprovenance.FieldSenderName, field.TypeString, value)
		_node.SenderName = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(gmailprovenance.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.EmailDate(); ok {
		_spec.SetField(gmailprovenance.FieldEmailDate, field.TypeTime, value)
		_node.EmailDate = &value
	}
	if value, ok := _c.mutation.AttachmentSha256(); ok {
		_spec.SetField(gmailprovenance.FieldAttachmentSha256, field.TypeString, value)
		_node.AttachmentSha256 = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(gmailprovenance.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// GmailProvenanceCreateBulk is the builder for creating many GmailProvenance entities in bulk.
type GmailProvenanceCreateBulk struct {
	config
	err      error
	builders []*GmailProvenanceCreate
}

// Save creates the GmailProvenance entities in the database.
func (_c *GmailProvenanceCreateBulk) Save(ctx context.Context) ([]*GmailProvenance, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GmailProvenance, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GmailProvenanceMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *GmailProvenanceCreateBulk) SaveX(ctx context.Context) []*GmailProvenance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GmailProvenanceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GmailProvenanceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
