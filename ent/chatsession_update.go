// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/labdex/labdex/ent/chatsession"
	"github.com/labdex/labdex/ent/predicate"
)

// ChatSessionUpdate is the builder for updating ChatSession entities.
type ChatSessionUpdate struct {
	config
	hooks    []Hook
	mutation *ChatSessionMutation
}

// Where appends a list predicates to the ChatSessionUpdate builder.
func (_u *ChatSessionUpdate) Where(ps ...predicate.ChatSession) *ChatSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ChatSessionUpdate) SetUserID(v string) *ChatSessionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableUserID(v *string) *ChatSessionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSelectedPatientID sets the "selected_patient_id" field.
func (_u *ChatSessionUpdate) SetSelectedPatientID(v string) *ChatSessionUpdate {
	_u.mutation.SetSelectedPatientID(v)
	return _u
}

// SetNillableSelectedPatientID sets the "selected_patient_id" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableSelectedPatientID(v *string) *ChatSessionUpdate {
	if v != nil {
		_u.SetSelectedPatientID(*v)
	}
	return _u
}

// ClearSelectedPatientID clears the value of the "selected_patient_id" field.
func (_u *ChatSessionUpdate) ClearSelectedPatientID() *ChatSessionUpdate {
	_u.mutation.ClearSelectedPatientID()
	return _u
}

// SetTurnCount sets the "turn_count" field.
func (_u *ChatSessionUpdate) SetTurnCount(v int) *ChatSessionUpdate {
	_u.mutation.ResetTurnCount()
	_u.mutation.SetTurnCount(v)
	return _u
}

// SetNillableTurnCount sets the "turn_count" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableTurnCount(v *int) *ChatSessionUpdate {
	if v != nil {
		_u.SetTurnCount(*v)
	}
	return _u
}

// AddTurnCount adds value to the "turn_count" field.
func (_u *ChatSessionUpdate) AddTurnCount(v int) *ChatSessionUpdate {
	_u.mutation.AddTurnCount(v)
	return _u
}

// SetTranscript sets the "transcript" field.
func (_u *ChatSessionUpdate) SetTranscript(v []map[string]interface{}) *ChatSessionUpdate {
	_u.mutation.SetTranscript(v)
	return _u
}

// AppendTranscript appends value to the "transcript" field.
func (_u *ChatSessionUpdate) AppendTranscript(v []map[string]interface{}) *ChatSessionUpdate {
	_u.mutation.AppendTranscript(v)
	return _u
}

// ClearTranscript clears the value of the "transcript" field.
func (_u *ChatSessionUpdate) ClearTranscript() *ChatSessionUpdate {
	_u.mutation.ClearTranscript()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChatSessionUpdate) SetUpdatedAt(v time.Time) *ChatSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ChatSessionMutation object of the builder.
func (_u *ChatSessionUpdate) Mutation() *ChatSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChatSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChatSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChatSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chatsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ChatSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(chatsession.Table, chatsession.Columns, sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(chatsession.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SelectedPatientID(); ok {
		_spec.SetField(chatsession.FieldSelectedPatientID, field.TypeString, value)
	}
	if _u.mutation.SelectedPatientIDCleared() {
		_spec.ClearField(chatsession.FieldSelectedPatientID, field.TypeString)
	}
	if value, ok := _u.mutation.TurnCount(); ok {
		_spec.SetField(chatsession.FieldTurnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurnCount(); ok {
		_spec.AddField(chatsession.FieldTurnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Transcript(); ok {
		_spec.SetField(chatsession.FieldTranscript, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTranscript(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chatsession.FieldTranscript, value)
		})
	}
	if _u.mutation.TranscriptCleared() {
		_spec.ClearField(chatsession.FieldTranscript, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chatsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChatSessionUpdateOne is the builder for updating a single ChatSession entity.
type ChatSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChatSessionMutation
}

// SetUserID sets the "user_id" field.
func (_u *ChatSessionUpdateOne) SetUserID(v string) *ChatSessionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableUserID(v *string) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSelectedPatientID sets the "selected_patient_id" field.
func (_u *ChatSessionUpdateOne) SetSelectedPatientID(v string) *ChatSessionUpdateOne {
	_u.mutation.SetSelectedPatientID(v)
	return _u
}

// SetNillableSelectedPatientID sets the "selected_patient_id" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableSelectedPatientID(v *string) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetSelectedPatientID(*v)
	}
	return _u
}

// ClearSelectedPatientID clears the value of the "selected_patient_id" field.
func (_u *ChatSessionUpdateOne) ClearSelectedPatientID() *ChatSessionUpdateOne {
	_u.mutation.ClearSelectedPatientID()
	return _u
}

// SetTurnCount sets the "turn_count" field.
func (_u *ChatSessionUpdateOne) SetTurnCount(v int) *ChatSessionUpdateOne {
	_u.mutation.ResetTurnCount()
	_u.mutation.SetTurnCount(v)
	return _u
}

// SetNillableTurnCount sets the "turn_count" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableTurnCount(v *int) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetTurnCount(*v)
	}
	return _u
}

// AddTurnCount adds value to the "turn_count" field.
func (_u *ChatSessionUpdateOne) AddTurnCount(v int) *ChatSessionUpdateOne {
	_u.mutation.AddTurnCount(v)
	return _u
}

// SetTranscript sets the "transcript" field.
func (_u *ChatSessionUpdateOne) SetTranscript(v []map[string]interface{}) *ChatSessionUpdateOne {
	_u.mutation.SetTranscript(v)
	return _u
}

// AppendTranscript appends value to the "transcript" field.
func (_u *ChatSessionUpdateOne) AppendTranscript(v []map[string]interface{}) *ChatSessionUpdateOne {
	_u.mutation.AppendTranscript(v)
	return _u
}

// ClearTranscript clears the value of the "transcript" field.
func (_u *ChatSessionUpdateOne) ClearTranscript() *ChatSessionUpdateOne {
	_u.mutation.ClearTranscript()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChatSessionUpdateOne) SetUpdatedAt(v time.Time) *ChatSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ChatSessionMutation object of the builder.
func (_u *ChatSessionUpdateOne) Mutation() *ChatSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChatSessionUpdate builder.
func (_u *ChatSessionUpdateOne) Where(ps ...predicate.ChatSession) *ChatSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChatSessionUpdateOne) Select(field string, fields ...string) *ChatSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChatSession entity.
func (_u *ChatSessionUpdateOne) Save(ctx context.Context) (*ChatSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatSessionUpdateOne) SaveX(ctx context.Context) *ChatSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChatSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChatSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chatsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ChatSessionUpdateOne) sqlSave(ctx context.Context) (_node *ChatSession, err error) {
	_spec := sqlgraph.NewUpdateSpec(chatsession.Table, chatsession.Columns, sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChatSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chatsession.FieldID)
		for _, f := range fields {
			if !chatsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chatsession.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(chatsession.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SelectedPatientID(); ok {
		_spec.SetField(chatsession.FieldSelectedPatientID, field.TypeString, value)
	}
	if _u.mutation.SelectedPatientIDCleared() {
		_spec.ClearField(chatsession.FieldSelectedPatientID, field.TypeString)
	}
	if value, ok := _u.mutation.TurnCount(); ok {
		_spec.SetField(chatsession.FieldTurnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurnCount(); ok {
		_spec.AddField(chatsession.FieldTurnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Transcript(); ok {
		_spec.SetField(chatsession.FieldTranscript, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTranscript(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chatsession.FieldTranscript, value)
		})
	}
	if _u.mutation.TranscriptCleared() {
		_spec.ClearField(chatsession.FieldTranscript, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chatsession.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ChatSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
