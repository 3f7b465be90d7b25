// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/labdex/labdex/ent/predicate"
	"github.com/labdex/labdex/ent/sqlgenerationlog"
)

// SQLGenerationLogUpdate is the builder for updating SQLGenerationLog entities.
type SQLGenerationLogUpdate struct {
	config
	hooks    []Hook
	mutation *SQLGenerationLogMutation
}

// Where appends a list predicates to the SQLGenerationLogUpdate builder.
func (_u *SQLGenerationLogUpdate) Where(ps ...predicate.SQLGenerationLog) *SQLGenerationLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SQLGenerationLogUpdate) SetStatus(v string) *SQLGenerationLogUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SQLGenerationLogUpdate) SetNillableStatus(v *string) *SQLGenerationLogUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUserHash sets the "user_hash" field.
func (_u *SQLGenerationLogUpdate) SetUserHash(v string) *SQLGenerationLogUpdate {
	_u.mutation.SetUserHash(v)
	return _u
}

// SetNillableUserHash sets the "user_hash" field if the given value is not nil.
func (_u *SQLGenerationLogUpdate) SetNillableUserHash(v *string) *SQLGenerationLogUpdate {
	if v != nil {
		_u.SetUserHash(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *SQLGenerationLogUpdate) SetPrompt(v string) *SQLGenerationLogUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *SQLGenerationLogUpdate) SetNillablePrompt(v *string) *SQLGenerationLogUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetGeneratedSQL sets the "generated_sql" field.
func (_u *SQLGenerationLogUpdate) SetGeneratedSQL(v string) *SQLGenerationLogUpdate {
	_u.mutation.SetGeneratedSQL(v)
	return _u
}

// SetNillableGeneratedSQL sets the "generated_sql" field if the given value is not nil.
func (_u *SQLGenerationLogUpdate) SetNillableGeneratedSQL(v *string) *SQLGenerationLogUpdate {
	if v != nil {
		_u.SetGeneratedSQL(*v)
	}
	return _u
}

// ClearGeneratedSQL clears the value of the "generated_sql" field.
func (_u *SQLGenerationLogUpdate) ClearGeneratedSQL() *SQLGenerationLogUpdate {
	_u.mutation.ClearGeneratedSQL()
	return _u
}

// SetSQLHash sets the "sql_hash" field.
func (_u *SQLGenerationLogUpdate) SetSQLHash(v string) *SQLGenerationLogUpdate {
	_u.mutation.SetSQLHash(v)
	return _u
}

// SetNillableSQLHash sets the "sql_hash" field if the given value is not nil.
func (_u *SQLGenerationLogUpdate) SetNillableSQLHash(v *string) *SQLGenerationLogUpdate {
	if v != nil {
		_u.SetSQLHash(*v)
	}
	return _u
}

// ClearSQLHash clears the value of the "sql_hash" field.
func (_u *SQLGenerationLogUpdate) ClearSQLHash() *SQLGenerationLogUpdate {
	_u.mutation.ClearSQLHash()
	return _u
}

// SetIterations sets the "iterations" field.
func (_u *SQLGenerationLogUpdate) SetIterations(v int) *SQLGenerationLogUpdate {
	_u.mutation.ResetIterations()
	_u.mutation.SetIterations(v)
	return _u
}

// SetNillableIterations sets the "iterations" field if the given value is not nil.
func (_u *SQLGenerationLogUpdate) SetNillableIterations(v *int) *SQLGenerationLogUpdate {
	if v != nil {
		_u.SetIterations(*v)
	}
	return _u
}

// AddIterations adds value to the "iterations" field.
func (_u *SQLGenerationLogUpdate) AddIterations(v int) *SQLGenerationLogUpdate {
	_u.mutation.AddIterations(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *SQLGenerationLogUpdate) SetDurationMs(v int) *SQLGenerationLogUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *SQLGenerationLogUpdate) SetNillableDurationMs(v *int) *SQLGenerationLogUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *SQLGenerationLogUpdate) AddDurationMs(v int) *SQLGenerationLogUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *SQLGenerationLogUpdate) SetMetadata(v map[string]interface{}) *SQLGenerationLogUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *SQLGenerationLogUpdate) ClearMetadata() *SQLGenerationLogUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SQLGenerationLogUpdate) SetSessionID(v string) *SQLGenerationLogUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SQLGenerationLogUpdate) SetNillableSessionID(v *string) *SQLGenerationLogUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *SQLGenerationLogUpdate) ClearSessionID() *SQLGenerationLogUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the SQLGenerationLogMutation object of the builder.
func (_u *SQLGenerationLogUpdate) Mutation() *SQLGenerationLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SQLGenerationLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SQLGenerationLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SQLGenerationLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SQLGenerationLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SQLGenerationLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(sqlgenerationlog.Table, sqlgenerationlog.Columns, sqlgraph.NewFieldSpec(sqlgenerationlog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sqlgenerationlog.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserHash(); ok {
		_spec.SetField(sqlgenerationlog.FieldUserHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(sqlgenerationlog.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.GeneratedSQL(); ok {
		_spec.SetField(sqlgenerationlog.FieldGeneratedSQL, field.TypeString, value)
	}
	if _u.mutation.GeneratedSQLCleared() {
		_spec.ClearField(sqlgenerationlog.FieldGeneratedSQL, field.TypeString)
	}
	if value, ok := _u.mutation.SQLHash(); ok {
		_spec.SetField(sqlgenerationlog.FieldSQLHash, field.TypeString, value)
	}
	if _u.mutation.SQLHashCleared() {
		_spec.ClearField(sqlgenerationlog.FieldSQLHash, field.TypeString)
	}
	if value, ok := _u.mutation.Iterations(); ok {
		_spec.SetField(sqlgenerationlog.FieldIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIterations(); ok {
		_spec.AddField(sqlgenerationlog.FieldIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(sqlgenerationlog.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(sqlgenerationlog.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(sqlgenerationlog.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(sqlgenerationlog.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sqlgenerationlog.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(sqlgenerationlog.FieldSessionID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sqlgenerationlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SQLGenerationLogUpdateOne is the builder for updating a single SQLGenerationLog entity.
type SQLGenerationLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SQLGenerationLogMutation
}

// SetStatus sets the "status" field.
func (_u *SQLGenerationLogUpdateOne) SetStatus(v string) *SQLGenerationLogUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SQLGenerationLogUpdateOne) SetNillableStatus(v *string) *SQLGenerationLogUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUserHash sets the "user_hash" field.
func (_u *SQLGenerationLogUpdateOne) SetUserHash(v string) *SQLGenerationLogUpdateOne {
	_u.mutation.SetUserHash(v)
	return _u
}

// SetNillableUserHash sets the "user_hash" field if the given value is not nil.
func (_u *SQLGenerationLogUpdateOne) SetNillableUserHash(v *string) *SQLGenerationLogUpdateOne {
	if v != nil {
		_u.SetUserHash(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *SQLGenerationLogUpdateOne) SetPrompt(v string) *SQLGenerationLogUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *SQLGenerationLogUpdateOne) SetNillablePrompt(v *string) *SQLGenerationLogUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetGeneratedSQL sets the "generated_sql" field.
func (_u *SQLGenerationLogUpdateOne) SetGeneratedSQL(v string) *SQLGenerationLogUpdateOne {
	_u.mutation.SetGeneratedSQL(v)
	return _u
}

// SetNillableGeneratedSQL sets the "generated_sql" field if the given value is not nil.
func (_u *SQLGenerationLogUpdateOne) SetNillableGeneratedSQL(v *string) *SQLGenerationLogUpdateOne {
	if v != nil {
		_u.SetGeneratedSQL(*v)
	}
	return _u
}

// ClearGeneratedSQL clears the value of the "generated_sql" field.
func (_u *SQLGenerationLogUpdateOne) ClearGeneratedSQL() *SQLGenerationLogUpdateOne {
	_u.mutation.ClearGeneratedSQL()
	return _u
}

// SetSQLHash sets the "sql_hash" field.
func (_u *SQLGenerationLogUpdateOne) SetSQLHash(v string) *SQLGenerationLogUpdateOne {
	_u.mutation.SetSQLHash(v)
	return _u
}

// SetNillableSQLHash sets the "sql_hash" field if the given value is not nil.
func (_u *SQLGenerationLogUpdateOne) SetNillableSQLHash(v *string) *SQLGenerationLogUpdateOne {
	if v != nil {
		_u.SetSQLHash(*v)
	}
	return _u
}

// ClearSQLHash clears the value of the "sql_hash" field.
func (_u *SQLGenerationLogUpdateOne) ClearSQLHash() *SQLGenerationLogUpdateOne {
	_u.mutation.ClearSQLHash()
	return _u
}

// SetIterations sets the "iterations" field.
func (_u *SQLGenerationLogUpdateOne) SetIterations(v int) *SQLGenerationLogUpdateOne {
	_u.mutation.ResetIterations()
	_u.mutation.SetIterations(v)
	return _u
}

// SetNillableIterations sets the "iterations" field if the given value is not nil.
func (_u *SQLGenerationLogUpdateOne) SetNillableIterations(v *int) *SQLGenerationLogUpdateOne {
	if v != nil {
		_u.SetIterations(*v)
	}
	return _u
}

// AddIterations adds value to the "iterations" field.
func (_u *SQLGenerationLogUpdateOne) AddIterations(v int) *SQLGenerationLogUpdateOne {
	_u.mutation.AddIterations(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *SQLGenerationLogUpdateOne) SetDurationMs(v int) *SQLGenerationLogUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *SQLGenerationLogUpdateOne) SetNillableDurationMs(v *int) *SQLGenerationLogUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *SQLGenerationLogUpdateOne) AddDurationMs(v int) *SQLGenerationLogUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *SQLGenerationLogUpdateOne) SetMetadata(v map[string]interface{}) *SQLGenerationLogUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *SQLGenerationLogUpdateOne) ClearMetadata() *SQLGenerationLogUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SQLGenerationLogUpdateOne) SetSessionID(v string) *SQLGenerationLogUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SQLGenerationLogUpdateOne) SetNillableSessionID(v *string) *SQLGenerationLogUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *SQLGenerationLogUpdateOne) ClearSessionID() *SQLGenerationLogUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the SQLGenerationLogMutation object of the builder.
func (_u *SQLGenerationLogUpdateOne) Mutation() *SQLGenerationLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the SQLGenerationLogUpdate builder.
func (_u *SQLGenerationLogUpdateOne) Where(ps ...predicate.SQLGenerationLog) *SQLGenerationLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SQLGenerationLogUpdateOne) Select(field string, fields ...string) *SQLGenerationLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SQLGenerationLog entity.
func (_u *SQLGenerationLogUpdateOne) Save(ctx context.Context) (*SQLGenerationLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SQLGenerationLogUpdateOne) SaveX(ctx context.Context) *SQLGenerationLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SQLGenerationLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SQLGenerationLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SQLGenerationLogUpdateOne) sqlSave(ctx context.Context) (_node *SQLGenerationLog, err error) {
	_spec := sqlgraph.NewUpdateSpec(sqlgenerationlog.Table, sqlgenerationlog.Columns, sqlgraph.NewFieldSpec(sqlgenerationlog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SQLGenerationLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sqlgenerationlog.FieldID)
		for _, f := range fields {
			if !sqlgenerationlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sqlgenerationlog.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sqlgenerationlog.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserHash(); ok {
		_spec.SetField(sqlgenerationlog.FieldUserHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(sqlgenerationlog.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.GeneratedSQL(); ok {
		_spec.SetField(sqlgenerationlog.FieldGeneratedSQL, field.TypeString, value)
	}
	if _u.mutation.GeneratedSQLCleared() {
		_spec.ClearField(sqlgenerationlog.FieldGeneratedSQL, field.TypeString)
	}
	if value, ok := _u.mutation.SQLHash(); ok {
		_spec.SetField(sqlgenerationlog.FieldSQLHash, field.TypeString, value)
	}
	if _u.mutation.SQLHashCleared() {
		_spec.ClearField(sqlgenerationlog.FieldSQLHash, field.TypeString)
	}
	if value, ok := _u.mutation.Iterations(); ok {
		_spec.SetField(sqlgenerationlog.FieldIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIterations(); ok {
		_spec.AddField(sqlgenerationlog.FieldIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(sqlgenerationlog.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(sqlgenerationlog.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(sqlgenerationlog.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(sqlgenerationlog.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sqlgenerationlog.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(sqlgenerationlog.FieldSessionID, field.TypeString)
	}
	_node = &SQLGenerationLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sqlgenerationlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
