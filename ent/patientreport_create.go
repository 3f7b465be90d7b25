// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/labdex/labdex/ent/labresult"
	"github.com/labdex/labdex/ent/patient"
	"github.com/labdex/labdex/ent/patientreport"
)

// PatientReportCreate is the builder for creating a PatientReport entity.
type PatientReportCreate struct {
	config
	mutation *PatientReportMutation
	hooks    []Hook
}

// SetPatientID sets the "patient_id" field.
func (_c *PatientReportCreate) SetPatientID(v string) *PatientReportCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *PatientReportCreate) SetUserID(v string) *PatientReportCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *PatientReportCreate) SetNillableUserID(v *string) *PatientReportCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetSourceFilename sets the "source_filename" field.
func (_c *PatientReportCreate) SetSourceFilename(v string) *PatientReportCreate {
	_c.mutation.SetSourceFilename(v)
	return _c
}

// SetMimeType sets the "mime_type" field.
func (_c *PatientReportCreate) SetMimeType(v string) *PatientReportCreate {
	_c.mutation.SetMimeType(v)
	return _c
}

// SetChecksum sets the "checksum" field.
func (_c *PatientReportCreate) SetChecksum(v string) *PatientReportCreate {
	_c.mutation.SetChecksum(v)
	return _c
}

// SetParserVersion sets the "parser_version" field.
func (_c *PatientReportCreate) SetParserVersion(v string) *PatientReportCreate {
	_c.mutation.SetParserVersion(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PatientReportCreate) SetStatus(v patientreport.Status) *PatientReportCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PatientReportCreate) SetNillableStatus(v *patientreport.Status) *PatientReportCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRecognizedAt sets the "recognized_at" field.
func (_c *PatientReportCreate) SetRecognizedAt(v time.Time) *PatientReportCreate {
	_c.mutation.SetRecognizedAt(v)
	return _c
}

// SetNillableRecognizedAt sets the "recognized_at" field if the given value is not nil.
func (_c *PatientReportCreate) SetNillableRecognizedAt(v *time.Time) *PatientReportCreate {
	if v != nil {
		_c.SetRecognizedAt(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *PatientReportCreate) SetProcessedAt(v time.Time) *PatientReportCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *PatientReportCreate) SetNillableProcessedAt(v *time.Time) *PatientReportCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetTestDate sets the "test_date" field.
func (_c *PatientReportCreate) SetTestDate(v time.Time) *PatientReportCreate {
	_c.mutation.SetTestDate(v)
	return _c
}

// SetNillableTestDate sets the "test_date" field if the given value is not nil.
func (_c *PatientReportCreate) SetNillableTestDate(v *time.Time) *PatientReportCreate {
	if v != nil {
		_c.SetTestDate(*v)
	}
	return _c
}

// SetPatientName sets the "patient_name" field.
func (_c *PatientReportCreate) SetPatientName(v string) *PatientReportCreate {
	_c.mutation.SetPatientName(v)
	return _c
}

// SetNillablePatientName sets the "patient_name" field if the given value is not nil.
func (_c *PatientReportCreate) SetNillablePatientName(v *string) *PatientReportCreate {
	if v != nil {
		_c.SetPatientName(*v)
	}
	return _c
}

// SetPatientGender sets the "patient_gender" field.
func (_c *PatientReportCreate) SetPatientGender(v string) *PatientReportCreate {
	_c.mutation.SetPatientGender(v)
	return _c
}

// SetNillablePatientGender sets the "patient_gender" field if the given value is not nil.
func (_c *PatientReportCreate) SetNillablePatientGender(v *string) *PatientReportCreate {
	if v != nil {
		_c.SetPatientGender(*v)
	}
	return _c
}

// SetPatientDob sets the "patient_dob" field.
func (_c *PatientReportCreate) SetPatientDob(v time.Time) *PatientReportCreate {
	_c.mutation.SetPatientDob(v)
	return _c
}

// SetNillablePatientDob sets the "patient_dob" field if the given value is not nil.
func (_c *PatientReportCreate) SetNillablePatientDob(v *time.Time) *PatientReportCreate {
	if v != nil {
		_c.SetPatientDob(*v)
	}
	return _c
}

// SetPatientAge sets the "patient_age" field.
func (_c *PatientReportCreate) SetPatientAge(v int) *PatientReportCreate {
	_c.mutation.SetPatientAge(v)
	return _c
}

// SetNillablePatientAge sets the "patient_age" field if the given value is not nil.
func (_c *PatientReportCreate) SetNillablePatientAge(v *int) *PatientReportCreate {
	if v != nil {
		_c.SetPatientAge(*v)
	}
	return _c
}

// SetRawModelOutput sets the "raw_model_output" field.
func (_c *PatientReportCreate) SetRawModelOutput(v string) *PatientReportCreate {
	_c.mutation.SetRawModelOutput(v)
	return _c
}

// SetNillableRawModelOutput sets the "raw_model_output" field if the given value is not nil.
func (_c *PatientReportCreate) SetNillableRawModelOutput(v *string) *PatientReportCreate {
	if v != nil {
		_c.SetRawModelOutput(*v)
	}
	return _c
}

// SetMissingData sets the "missing_data" field.
func (_c *PatientReportCreate) SetMissingData(v []string) *PatientReportCreate {
	_c.mutation.SetMissingData(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PatientReportCreate) SetCreatedAt(v time.Time) *PatientReportCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PatientReportCreate) SetNillableCreatedAt(v *time.Time) *PatientReportCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PatientReportCreate) SetUpdatedAt(v time.Time) *PatientReportCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PatientReportCreate) SetNillableUpdatedAt(v *time.Time) *PatientReportCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PatientReportCreate) SetID(v string) *PatientReportCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *PatientReportCreate) SetPatient(v *Patient) *PatientReportCreate {
	return _c.SetPatientID(v.ID)
}

// AddResultIDs adds the "results" edge to the LabResult entity by IDs.
func (_c *PatientReportCreate) AddResultIDs(ids ...string) *PatientReportCreate {
	_c.mutation.AddResultIDs(ids...)
	return _c
}

// AddResults adds the "results" edges to the LabResult entity.
func (_c *PatientReportCreate) AddResults(v ...*LabResult) *PatientReportCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddResultIDs(ids...)
}

// Mutation returns the PatientReportMutation object of the builder.
func (_c *PatientReportCreate) Mutation() *PatientReportMutation {
	return _c.mutation
}

// Save creates the PatientReport in the database.
func (_c *PatientReportCreate) Save(ctx context.Context) (*PatientReport, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PatientReportCreate) SaveX(ctx context.Context) *PatientReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientReportCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientReportCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PatientReportCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := patientreport.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := patientreport.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := patientreport.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PatientReportCreate) check() error {
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`ent: missing required field "PatientReport.patient_id"`)}
	}
	if _, ok := _c.mutation.SourceFilename(); !ok {
		return &ValidationError{Name: "source_filename", err: errors.New(`ent: missing required field "PatientReport.source_filename"`)}
	}
	if _, ok := _c.mutation.MimeType(); !ok {
		return &ValidationError{Name: "mime_type", err: errors.New(`ent: missing required field "PatientReport.mime_type"`)}
	}
	if _, ok := _c.mutation.Checksum(); !ok {
		return &ValidationError{Name: "checksum", err: errors.New(`ent: missing required field "PatientReport.checksum"`)}
	}
	if _, ok := _c.mutation.ParserVersion(); !ok {
		return &ValidationError{Name: "parser_version", err: errors.New(`ent: missing required field "PatientReport.parser_version"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PatientReport.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := patientreport.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PatientReport.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PatientReport.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PatientReport.updated_at"`)}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`ent: missing required edge "PatientReport.patient"`)}
	}
	return nil
}

func (_c *PatientReportCreate) sqlSave(ctx context.Context) (*PatientReport, error) {
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
			return nil, fmt.Errorf("unexpected PatientReport.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PatientReportCreate) createSpec() (*PatientReport, *sqlgraph.CreateSpec) {
	var (
		_node = &PatientReport{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(patientreport.Table, sqlgraph.NewFieldSpec(patientreport.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(patientreport.FieldUserID, field.TypeString, value)
		_node.UserID = &value
	}
	if value, ok := _c.mutation.SourceFilename(); ok {
		_spec.SetField(patientreport.FieldSourceFilename, field.TypeString, value)
		_node.SourceFilename = value
	}
	if value, ok := _c.mutation.MimeType(); ok {
		_spec.SetField(patientreport.FieldMimeType, field.TypeString, value)
		_node.MimeType = value
	}
	if value, ok := _c.mutation.Checksum(); ok {
		_spec.SetField(patientreport.FieldChecksum, field.TypeString, value)
		_node.Checksum = value
	}
	if value, ok := _c.mutation.ParserVersion(); ok {
		_spec.SetField(patientreport.FieldParserVersion, field.TypeString, value)
		_node.ParserVersion = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(patientreport.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RecognizedAt(); ok {
		_spec.SetField(patientreport.FieldRecognizedAt, field.TypeTime, value)
		_node.RecognizedAt = &value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(patientreport.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = &value
	}
	if value, ok := _c.mutation.TestDate(); ok {
		_spec.SetField(patientreport.FieldTestDate, field.TypeTime, value)
		_node.TestDate = &value
	}
	if value, ok := _c.mutation.PatientName(); ok {
		_spec.SetField(patientreport.FieldPatientName, field.TypeString, value)
		_node.PatientName = &value
	}
	if value, ok := _c.mutation.PatientGender(); ok {
		_spec.SetField(patientreport.FieldPatientGender, field.TypeString, value)
		_node.PatientGender = &value
	}
	if value, ok := _c.mutation.PatientDob(); ok {
		_spec.SetField(patientreport.FieldPatientDob, field.TypeTime, value)
		_node.PatientDob = &value
	}
	if value, ok := _c.mutation.PatientAge(); ok {
		_spec.SetField(patientreport.FieldPatientAge, field.TypeInt, value)
		_node.PatientAge = &value
	}
	if value, ok := _c.mutation.RawModelOutput(); ok {
		_spec.SetField(patientreport.FieldRawModelOutput, field.TypeString, value)
		_node.RawModelOutput = value
	}
	if value, ok := _c.mutation.MissingData(); ok {
		_spec.SetField(patientreport.FieldMissingData, field.TypeJSON, value)
		_node.MissingData = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(patientreport.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(patientreport.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patientreport.PatientTable,
			Columns: []string{patientreport.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PatientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patientreport.ResultsTable,
			Columns: []string{patientreport.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(labresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PatientReportCreateBulk is the builder for creating many PatientReport entities in bulk.
type PatientReportCreateBulk struct {
	config
	err      error
	builders []*PatientReportCreate
}

// Save creates the PatientReport entities in the database.
func (_c *PatientReportCreateBulk) Save(ctx context.Context) ([]*PatientReport, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PatientReport, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PatientReportMutation)
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
func (_c *PatientReportCreateBulk) SaveX(ctx context.Context) []*PatientReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientReportCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientReportCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
