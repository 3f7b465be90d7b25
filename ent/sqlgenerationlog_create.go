// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/labdex/labdex/ent/sqlgenerationlog"
)

// SQLGenerationLogCreate is the builder for creating a SQLGenerationLog entity.
type SQLGenerationLogCreate struct {
	config
	mutation *SQLGenerationLogMutation
	hooks    []Hook
}

// SetStatus sets the "status" field.
func (_c *SQLGenerationLogCreate) SetStatus(v string) *SQLGenerationLogCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetUserHash sets the "user_hash" field.
func (_c *SQLGenerationLogCreate) SetUserHash(v string) *SQLGenerationLogCreate {
	_c.mutation.SetUserHash(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *SQLGenerationLogCreate) SetPrompt(v string) *SQLGenerationLogCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetGeneratedSQL sets the "generated_sql" field.
func (_c *SQLGenerationLogCreate) SetGeneratedSQL(v string) *SQLGenerationLogCreate {
	_c.mutation.SetGeneratedSQL(v)
	return _c
}

// SetNillableGeneratedSQL sets the "generated_sql" field if the given value is not nil.
func (_c *SQLGenerationLogCreate) SetNillableGeneratedSQL(v *string) *SQLGenerationLogCreate {
	if v != nil {
		_c.SetGeneratedSQL(*v)
	}
	return _c
}

// SetSQLHash sets the "sql_hash" field.
func (_c *SQLGenerationLogCreate) SetSQLHash(v string) *SQLGenerationLogCreate {
	_c.mutation.SetSQLHash(v)
	return _c
}

// SetNillableSQLHash sets the "sql_hash" field if the given value is not nil.
func (_c *SQLGenerationLogCreate) SetNillableSQLHash(v *string) *SQLGenerationLogCreate {
	if v != nil {
		_c.SetSQLHash(*v)
	}
	return _c
}

// SetIterations sets the "iterations" field.
func (_c *SQLGenerationLogCreate) SetIterations(v int) *SQLGenerationLogCreate {
	_c.mutation.SetIterations(v)
	return _c
}

// SetNillableIterations sets the "iterations" field if the given value is not nil.
func (_c *SQLGenerationLogCreate) SetNillableIterations(v *int) *SQLGenerationLogCreate {
	if v != nil {
		_c.SetIterations(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *SQLGenerationLogCreate) SetDurationMs(v int) *SQLGenerationLogCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *SQLGenerationLogCreate) SetNillableDurationMs(v *int) *SQLGenerationLogCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *SQLGenerationLogCreate) SetMetadata(v map[string]interface{}) *SQLGenerationLogCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *SQLGenerationLogCreate) SetSessionID(v string) *SQLGenerationLogCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *SQLGenerationLogCreate) SetNillableSessionID(v *string) *SQLGenerationLogCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SQLGenerationLogCreate) SetCreatedAt(v time.Time) *SQLGenerationLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SQLGenerationLogCreate) SetNillableCreatedAt(v *time.Time) *SQLGenerationLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SQLGenerationLogCreate) SetID(v string) *SQLGenerationLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SQLGenerationLogMutation object of the builder.
func (_c *SQLGenerationLogCreate) Mutation() *SQLGenerationLogMutation {
	return _c.mutation
}

// Save creates the SQLGenerationLog in the database.
func (_c *SQLGenerationLogCreate) Save(ctx context.Context) (*SQLGenerationLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SQLGenerationLogCreate) SaveX(ctx context.Context) *SQLGenerationLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SQLGenerationLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SQLGenerationLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SQLGenerationLogCreate) defaults() {
	if _, ok := _c.mutation.Iterations(); !ok {
		v := sqlgenerationlog.DefaultIterations
		_c.mutation.SetIterations(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := sqlgenerationlog.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sqlgenerationlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SQLGenerationLogCreate) check() error {
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SQLGenerationLog.status"`)}
	}
	if _, ok := _c.mutation.UserHash(); !ok {
		return &ValidationError{Name: "user_hash", err: errors.New(`ent: missing required field "SQLGenerationLog.user_hash"`)}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "SQLGenerationLog.prompt"`)}
	}
	if _, ok := _c.mutation.Iterations(); !ok {
		return &ValidationError{Name: "iterations", err: errors.New(`ent: missing required field "SQLGenerationLog.iterations"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "SQLGenerationLog.duration_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SQLGenerationLog.created_at"`)}
	}
	return nil
}

func (_c *SQLGenerationLogCreate) sqlSave(ctx context.Context) (*SQLGenerationLog, error) {
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
			return nil, fmt.Errorf("unexpected SQLGenerationLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SQLGenerationLogCreate) createSpec() (*SQLGenerationLog, *sqlgraph.CreateSpec) {
	var (
		_node = &SQLGenerationLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sqlgenerationlog.Table, sqlgraph.NewFieldSpec(sqlgenerationlog.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(sqlgenerationlog.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.UserHash(); ok {
		_spec.SetField(sqlgenerationlog.FieldUserHash, field.TypeString, value)
		_node.UserHash = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(sqlgenerationlog.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.GeneratedSQL(); ok {
		_spec.SetField(sqlgenerationlog.FieldGeneratedSQL, field.TypeString, value)
		_node.GeneratedSQL = value
	}
	if value, ok := _c.mutation.SQLHash(); ok {
		_spec.SetField(sqlgenerationlog.FieldSQLHash, field.TypeString, value)
		_node.SQLHash = value
	}
	if value, ok := _c.mutation.Iterations(); ok {
		_spec.SetField(sqlgenerationlog.FieldIterations, field.TypeInt, value)
		_node.Iterations = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(sqlgenerationlog.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(sqlgenerationlog.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(sqlgenerationlog.FieldSessionID, field.TypeString, value)
		_node.SessionID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sqlgenerationlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// SQLGenerationLogCreateBulk is the builder for creating many SQLGenerationLog entities in bulk.
type SQLGenerationLogCreateBulk struct {
	config
	err      error
	builders []*SQLGenerationLogCreate
}

// Save creates the SQLGenerationLog entities in the database.
func (_c *SQLGenerationLogCreateBulk) Save(ctx context.Context) ([]*SQLGenerationLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SQLGenerationLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SQLGenerationLogMutation)
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
func (_c *SQLGenerationLogCreateBulk) SaveX(ctx context.Context) []*SQLGenerationLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SQLGenerationLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SQLGenerationLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
