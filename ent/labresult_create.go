// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/labdex/labdex/ent/analyte"
	"github.com/labdex/labdex/ent/labresult"
	"github.com/labdex/labdex/ent/patientreport"
)

// LabResultCreate is the builder for creating a LabResult entity.
type LabResultCreate struct {
	config
	mutation *LabResultMutation
	hooks    []Hook
}

// SetReportID sets the "report_id" field.
func (_c *LabResultCreate) SetReportID(v string) *LabResultCreate {
	_c.mutation.SetReportID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *LabResultCreate) SetUserID(v string) *LabResultCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableUserID(v *string) *LabResultCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetPosition sets the "position" field.
func (_c *LabResultCreate) SetPosition(v int) *LabResultCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetParameterName sets the "parameter_name" field.
func (_c *LabResultCreate) SetParameterName(v string) *LabResultCreate {
	_c.mutation.SetParameterName(v)
	return _c
}

// SetResultText sets the "result_text" field.
func (_c *LabResultCreate) SetResultText(v string) *LabResultCreate {
	_c.mutation.SetResultText(v)
	return _c
}

// SetNumericResult sets the "numeric_result" field.
func (_c *LabResultCreate) SetNumericResult(v float64) *LabResultCreate {
	_c.mutation.SetNumericResult(v)
	return _c
}

// SetNillableNumericResult sets the "numeric_result" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableNumericResult(v *float64) *LabResultCreate {
	if v != nil {
		_c.SetNumericResult(*v)
	}
	return _c
}

// SetUnitRaw sets the "unit_raw" field.
func (_c *LabResultCreate) SetUnitRaw(v string) *LabResultCreate {
	_c.mutation.SetUnitRaw(v)
	return _c
}

// SetUnitCanonical sets the "unit_canonical" field.
func (_c *LabResultCreate) SetUnitCanonical(v string) *LabResultCreate {
	_c.mutation.SetUnitCanonical(v)
	return _c
}

// SetNillableUnitCanonical sets the "unit_canonical" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableUnitCanonical(v *string) *LabResultCreate {
	if v != nil {
		_c.SetUnitCanonical(*v)
	}
	return _c
}

// SetRefLower sets the "ref_lower" field.
func (_c *LabResultCreate) SetRefLower(v float64) *LabResultCreate {
	_c.mutation.SetRefLower(v)
	return _c
}

// SetNillableRefLower sets the "ref_lower" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableRefLower(v *float64) *LabResultCreate {
	if v != nil {
		_c.SetRefLower(*v)
	}
	return _c
}

// SetRefLowerOperator sets the "ref_lower_operator" field.
func (_c *LabResultCreate) SetRefLowerOperator(v string) *LabResultCreate {
	_c.mutation.SetRefLowerOperator(v)
	return _c
}

// SetNillableRefLowerOperator sets the "ref_lower_operator" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableRefLowerOperator(v *string) *LabResultCreate {
	if v != nil {
		_c.SetRefLowerOperator(*v)
	}
	return _c
}

// SetRefUpper sets the "ref_upper" field.
func (_c *LabResultCreate) SetRefUpper(v float64) *LabResultCreate {
	_c.mutation.SetRefUpper(v)
	return _c
}

// SetNillableRefUpper sets the "ref_upper" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableRefUpper(v *float64) *LabResultCreate {
	if v != nil {
		_c.SetRefUpper(*v)
	}
	return _c
}

// SetRefUpperOperator sets the "ref_upper_operator" field.
func (_c *LabResultCreate) SetRefUpperOperator(v string) *LabResultCreate {
	_c.mutation.SetRefUpperOperator(v)
	return _c
}

// SetNillableRefUpperOperator sets the "ref_upper_operator" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableRefUpperOperator(v *string) *LabResultCreate {
	if v != nil {
		_c.SetRefUpperOperator(*v)
	}
	return _c
}

// SetRefText sets the "ref_text" field.
func (_c *LabResultCreate) SetRefText(v string) *LabResultCreate {
	_c.mutation.SetRefText(v)
	return _c
}

// SetNillableRefText sets the "ref_text" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableRefText(v *string) *LabResultCreate {
	if v != nil {
		_c.SetRefText(*v)
	}
	return _c
}

// SetRefFullText sets the "ref_full_text" field.
func (_c *LabResultCreate) SetRefFullText(v string) *LabResultCreate {
	_c.mutation.SetRefFullText(v)
	return _c
}

// SetNillableRefFullText sets the "ref_full_text" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableRefFullText(v *string) *LabResultCreate {
	if v != nil {
		_c.SetRefFullText(*v)
	}
	return _c
}

// SetOutOfRange sets the "out_of_range" field.
func (_c *LabResultCreate) SetOutOfRange(v bool) *LabResultCreate {
	_c.mutation.SetOutOfRange(v)
	return _c
}

// SetNillableOutOfRange sets the "out_of_range" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableOutOfRange(v *bool) *LabResultCreate {
	if v != nil {
		_c.SetOutOfRange(*v)
	}
	return _c
}

// SetSpecimenType sets the "specimen_type" field.
func (_c *LabResultCreate) SetSpecimenType(v string) *LabResultCreate {
	_c.mutation.SetSpecimenType(v)
	return _c
}

// SetNillableSpecimenType sets the "specimen_type" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableSpecimenType(v *string) *LabResultCreate {
	if v != nil {
		_c.SetSpecimenType(*v)
	}
	return _c
}

// SetAnalyteID sets the "analyte_id" field.
func (_c *LabResultCreate) SetAnalyteID(v string) *LabResultCreate {
	_c.mutation.SetAnalyteID(v)
	return _c
}

// SetNillableAnalyteID sets the "analyte_id" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableAnalyteID(v *string) *LabResultCreate {
	if v != nil {
		_c.SetAnalyteID(*v)
	}
	return _c
}

// SetMappingConfidence sets the "mapping_confidence" field.
func (_c *LabResultCreate) SetMappingConfidence(v float64) *LabResultCreate {
	_c.mutation.SetMappingConfidence(v)
	return _c
}

// SetNillableMappingConfidence sets the "mapping_confidence" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableMappingConfidence(v *float64) *LabResultCreate {
	if v != nil {
		_c.SetMappingConfidence(*v)
	}
	return _c
}

// SetMappingSource sets the "mapping_source" field.
func (_c *LabResultCreate) SetMappingSource(v string) *LabResultCreate {
	_c.mutation.SetMappingSource(v)
	return _c
}

// SetNillableMappingSource sets the "mapping_source" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableMappingSource(v *string) *LabResultCreate {
	if v != nil {
		_c.SetMappingSource(*v)
	}
	return _c
}

// SetMappedAt sets the "mapped_at" field.
func (_c *LabResultCreate) SetMappedAt(v time.Time) *LabResultCreate {
	_c.mutation.SetMappedAt(v)
	return _c
}

// SetNillableMappedAt sets the "mapped_at" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableMappedAt(v *time.Time) *LabResultCreate {
	if v != nil {
		_c.SetMappedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LabResultCreate) SetCreatedAt(v time.Time) *LabResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableCreatedAt(v *time.Time) *LabResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LabResultCreate) SetID(v string) *LabResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetReport sets the "report" edge to the PatientReport entity.
func (_c *LabResultCreate) SetReport(v *PatientReport) *LabResultCreate {
	return _c.SetReportID(v.ID)
}

// SetAnalyte sets the "analyte" edge to the Analyte entity.
func (_c *LabResultCreate) SetAnalyte(v *Analyte) *LabResultCreate {
	return _c.SetAnalyteID(v.ID)
}

// Mutation returns the LabResultMutation object of the builder.
func (_c *LabResultCreate) Mutation() *LabResultMutation {
	return _c.mutation
}

// Save creates the LabResult in the database.
func (_c *LabResultCreate) Save(ctx context.Context) (*LabResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LabResultCreate) SaveX(ctx context.Context) *LabResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LabResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LabResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LabResultCreate) defaults() {
	if _, ok := _c.mutation.OutOfRange(); !ok {
		v := labresult.DefaultOutOfRange
		_c.mutation.SetOutOfRange(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := labresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LabResultCreate) check() error {
	if _, ok := _c.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report_id", err: errors.New(`ent: missing required field "LabResult.report_id"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "LabResult.position"`)}
	}
	if _, ok := _c.mutation.ParameterName(); !ok {
		return &ValidationError{Name: "parameter_name", err: errors.New(`ent: missing required field "LabResult.parameter_name"`)}
	}
	if _, ok := _c.mutation.ResultText(); !ok {
		return &ValidationError{Name: "result_text", err: errors.New(`ent: missing required field "LabResult.result_text"`)}
	}
	if _, ok := _c.mutation.UnitRaw(); !ok {
		return &ValidationError{Name: "unit_raw", err: errors.New(`ent: missing required field "LabResult.unit_raw"`)}
	}
	if _, ok := _c.mutation.OutOfRange(); !ok {
		return &ValidationError{Name: "out_of_range", err: errors.New(`ent: missing required field "LabResult.out_of_range"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LabResult.created_at"`)}
	}
	if len(_c.mutation.ReportIDs()) == 0 {
		return &ValidationError{Name: "report", err: errors.New(`ent: missing required edge "LabResult.report"`)}
	}
	return nil
}

func (_c *LabResultCreate) sqlSave(ctx context.Context) (*LabResult, error) {
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
			return nil, fmt.Errorf("unexpected LabResult.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LabResultCreate) createSpec() (*LabResult, *sqlgraph.CreateSpec) {
	var (
		_node = &LabResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(labresult.Table, sqlgraph.NewFieldSpec(labresult.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(labresult.FieldUserID, field.TypeString, value)
		_node.UserID = &value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(labresult.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.ParameterName(); ok {
		_spec.SetField(labresult.FieldParameterName, field.TypeString, value)
		_node.ParameterName = value
	}
	if value, ok := _c.mutation.ResultText(); ok {
		_spec.SetField(labresult.FieldResultText, field.TypeString, value)
		_node.ResultText = value
	}
	if value, ok := _c.mutation.NumericResult(); ok {
		_spec.SetField(labresult.FieldNumericResult, field.TypeFloat64, value)
		_node.NumericResult = &value
	}
	if value, ok := _c.mutation.UnitRaw(); ok {
		_spec.SetField(labresult.FieldUnitRaw, field.TypeString, value)
		_node.UnitRaw = value
	}
	if value, ok := _c.mutation.UnitCanonical(); ok {
		_spec.SetField(labresult.FieldUnitCanonical, field.TypeString, value)
		_node.UnitCanonical = &value
	}
	if value, ok := _c.mutation.RefLower(); ok {
		_spec.SetField(labresult.FieldRefLower, field.TypeFloat64, value)
		_node.RefLower = &value
	}
	if value, ok := _c.mutation.RefLowerOperator(); ok {
		_spec.SetField(labresult.FieldRefLowerOperator, field.TypeString, value)
		_node.RefLowerOperator = &value
	}
	if value, ok := _c.mutation.RefUpper(); ok {
		_spec.SetField(labresult.FieldRefUpper, field.TypeFloat64, value)
		_node.RefUpper = &value
	}
	if value, ok := _c.mutation.RefUpperOperator(); ok {
		_spec.SetField(labresult.FieldRefUpperOperator, field.TypeString, value)
		_node.RefUpperOperator = &value
	}
	if value, ok := _c.mutation.RefText(); ok {
		_spec.SetField(labresult.FieldRefText, field.TypeString, value)
		_node.RefText = &value
	}
	if value, ok := _c.mutation.RefFullText(); ok {
		_spec.SetField(labresult.FieldRefFullText, field.TypeString, value)
		_node.RefFullText = &value
	}
	if value, ok := _c.mutation.OutOfRange(); ok {
		_spec.SetField(labresult.FieldOutOfRange, field.TypeBool, value)
		_node.OutOfRange = value
	}
	if value, ok := _c.mutation.SpecimenType(); ok {
		_spec.SetField(labresult.FieldSpecimenType, field.TypeString, value)
		_node.SpecimenType = &value
	}
	if value, ok := _c.mutation.MappingConfidence(); ok {
		_spec.SetField(labresult.FieldMappingConfidence, field.TypeFloat64, value)
		_node.MappingConfidence = &value
	}
	if value, ok := _c.mutation.MappingSource(); ok {
		_spec.SetField(labresult.FieldMappingSource, field.TypeString, value)
		_node.MappingSource = &value
	}
	if value, ok := _c.mutation.MappedAt(); ok {
		_spec.SetField(labresult.FieldMappedAt, field.TypeTime, value)
		_node.MappedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(labresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   labresult.ReportTable,
			Columns: []string{labresult.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patientreport.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ReportID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AnalyteIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   labresult.AnalyteTable,
			Columns: []string{labresult.AnalyteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analyte.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AnalyteID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LabResultCreateBulk is the builder for creating many LabResult entities in bulk.
type LabResultCreateBulk struct {
	config
	err      error
	builders []*LabResultCreate
}

// Save creates the LabResult entities in the database.
func (_c *LabResultCreateBulk) Save(ctx context.Context) ([]*LabResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LabResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LabResultMutation)
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
func (_c *LabResultCreateBulk) SaveX(ctx context.Context) []*LabResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LabResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LabResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
