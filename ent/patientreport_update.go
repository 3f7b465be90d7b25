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
	"github.com/labdex/labdex/ent/labresult"
	"github.com/labdex/labdex/ent/patient"
	"github.com/labdex/labdex/ent/patientreport"
	"github.com/labdex/labdex/ent/predicate"
)

// PatientReportUpdate is the builder for updating PatientReport entities.
type PatientReportUpdate struct {
	config
	hooks    []Hook
	mutation *PatientReportMutation
}

// Where appends a list predicates to the PatientReportUpdate builder.
func (_u *PatientReportUpdate) Where(ps ...predicate.PatientReport) *PatientReportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *PatientReportUpdate) SetPatientID(v string) *PatientReportUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PatientReportUpdate) SetNillablePatientID(v *string) *PatientReportUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PatientReportUpdate) SetUserID(v string) *PatientReportUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PatientReportUpdate) SetNillableUserID(v *string) *PatientReportUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *PatientReportUpdate) ClearUserID() *PatientReportUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetSourceFilename sets the "source_filename" field.
func (_u *PatientReportUpdate) SetSourceFilename(v string) *PatientReportUpdate {
	_u.mutation.SetSourceFilename(v)
	return _u
}

// SetNillableSourceFilename sets the "source_filename" field if the given value is not nil.
func (_u *PatientReportUpdate) SetNillableSourceFilename(v *string) *PatientReportUpdate {
	if v != nil {
		_u.SetSourceFilename(*v)
	}
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *PatientReportUpdate) SetMimeType(v string) *PatientReportUpdate {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *PatientReportUpdate) SetNillableMimeType(v *string) *PatientReportUpdate {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetChecksum sets the "checksum" field.
func (_u *PatientReportUpdate) SetChecksum(v string) *PatientReportUpdate {
	_u.mutation.SetChecksum(v)
	return _u
}

// SetNillableChecksum sets the "checksum" field if the given value is not nil.
func (_u *PatientReportUpdate) SetNillableChecksum(v *string) *PatientReportUpdate {
	if v != nil {
		_u.SetChecksum(*v)
	}
	return _u
}

// SetParserVersion sets the "parser_version" field.
func (_u *PatientReportUpdate) SetParserVersion(v string) *PatientReportUpdate {
	_u.mutation.SetParserVersion(v)
	return _u
}

// SetNillableParserVersion sets the "parser_version" field if the given value is not nil.
func (_u *PatientReportUpdate) SetNillableParserVersion(v *string) *PatientReportUpdate {
	if v != nil {
		_u.SetParserVersion(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PatientReportUpdate) SetStatus(v patientreport.Status) *PatientReportUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PatientReportUpdate) SetNillableStatus(v *patientreport.Status) *PatientReportUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRecognizedAt sets the "recognized_at" field.
func (_u *PatientReportUpdate) SetRecognizedAt(v time.Time) *PatientReportUpdate {
	_u.mutation.SetRecognizedAt(v)
	return _u
}

// SetNillableRecognizedAt sets the "recognized_at" field if the given value is not nil.
func (_u *PatientReportUpdate) SetNillableRecognizedAt(v *time.Time) *PatientReportUpdate {
	if v != nil {
		_u.SetRecognizedAt(*v)
	}
	return _u
}

// ClearRecognizedAt clears the value of the "recognized_at" field.
func (_u *PatientReportUpdate) ClearRecognizedAt() *PatientReportUpdate {
	_u.mutation.ClearRecognizedAt()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *PatientReportUpdate) SetProcessedAt(v time.Time) *PatientReportUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *PatientReportUpdate) SetNillableProcessedAt(v *time.Time) *PatientReportUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *PatientReportUpdate) ClearProcessedAt() *PatientReportUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetTestDate sets the "test_date" field.
func (_u *PatientReportUpdate) SetTestDate(v time.Time) *PatientReportUpdate {
	_u.mutation.SetTestDate(v)
	return _u
}

// SetNillableTestDate sets the "test_date" field if the given value is not nil.
func (_u *PatientReportUpdate) SetNillableTestDate(v *time.Time) *PatientReportUpdate {
	if v != nil {
		_u.SetTestDate(*v)
	}
	return _u
}

// ClearTestDate clears the value of the "test_date" field.
func (_u *PatientReportUpdate) ClearTestDate() *PatientReportUpdate {
	_u.mutation.ClearTestDate()
	return _u
}

// SetPatientName sets the "patient_name" field.
func (_u *PatientReportUpdate) SetPatientName(v string) *PatientReportUpdate {
	_u.mutation.SetPatientName(v)
	return _u
}

// SetNillablePatientName sets the "patient_name" field if the given value is not nil.
func (_u *PatientReportUpdate) SetNillablePatientName(v *string) *PatientReportUpdate {
	if v != nil {
		_u.SetPatientName(*v)
	}
	return _u
}

// ClearPatientName clears the value of the "patient_name" field.
func (_u *PatientReportUpdate) ClearPatientName() *PatientReportUpdate {
	_u.mutation.ClearPatientName()
	return _u
}

// SetPatientGender sets the "patient_gender" field.
func (_u *PatientReportUpdate) SetPatientGender(v string) *PatientReportUpdate {
	_u.mutation.SetPatientGender(v)
	return _u
}

// SetNillablePatientGender sets the "patient_gender" field if the given value is not nil.
func (_u *PatientReportUpdate) SetNillablePatientGender(v *string) *PatientReportUpdate {
	if v != nil {
		_u.SetPatientGender(*v)
	}
	return _u
}

// ClearPatientGender clears the value of the "patient_gender" field.
func (_u *PatientReportUpdate) ClearPatientGender() *PatientReportUpdate {
	_u.mutation.ClearPatientGender()
	return _u
}

// SetPatientDob sets the "patient_dob" field.
func (_u *PatientReportUpdate) SetPatientDob(v time.Time) *PatientReportUpdate {
	_u.mutation.SetPatientDob(v)
	return _u
}

// SetNillablePatientDob sets the "patient_dob" field if the given value is not nil.
func (_u *PatientReportUpdate) SetNillablePatientDob(v *time.Time) *PatientReportUpdate {
	if v != nil {
		_u.SetPatientDob(*v)
	}
	return _u
}

// ClearPatientDob clears the value of the "patient_dob" field.
func (_u *PatientReportUpdate) ClearPatientDob() *PatientReportUpdate {
	_u.mutation.ClearPatientDob()
	return _u
}

// SetPatientAge sets the "patient_age" field.
func (_u *PatientReportUpdate) SetPatientAge(v int) *PatientReportUpdate {
	_u.mutation.ResetPatientAge()
	_u.mutation.SetPatientAge(v)
	return _u
}

// SetNillablePatientAge sets the "patient_age" field if the given value is not nil.
func (_u *PatientReportUpdate) SetNillablePatientAge(v *int) *PatientReportUpdate {
	if v != nil {
		_u.SetPatientAge(*v)
	}
	return _u
}

// AddPatientAge adds value to the "patient_age" field.
func (_u *PatientReportUpdate) AddPatientAge(v int) *PatientReportUpdate {
	_u.mutation.AddPatientAge(v)
	return _u
}

// ClearPatientAge clears the value of the "patient_age" field.
func (_u *PatientReportUpdate) ClearPatientAge() *PatientReportUpdate {
	_u.mutation.ClearPatientAge()
	return _u
}

// SetRawModelOutput sets the "raw_model_output" field.
func (_u *PatientReportUpdate) SetRawModelOutput(v string) *PatientReportUpdate {
	_u.mutation.SetRawModelOutput(v)
	return _u
}

// SetNillableRawModelOutput sets the "raw_model_output" field if the given value is not nil.
func (_u *PatientReportUpdate) SetNillableRawModelOutput(v *string) *PatientReportUpdate {
	if v != nil {
		_u.SetRawModelOutput(*v)
	}
	return _u
}

// ClearRawModelOutput clears the value of the "raw_model_output" field.
func (_u *PatientReportUpdate) ClearRawModelOutput() *PatientReportUpdate {
	_u.mutation.ClearRawModelOutput()
	return _u
}

// SetMissingData sets the "missing_data" field.
func (_u *PatientReportUpdate) SetMissingData(v []string) *PatientReportUpdate {
	_u.mutation.SetMissingData(v)
	return _u
}

// AppendMissingData appends value to the "missing_data" field.
func (_u *PatientReportUpdate) AppendMissingData(v []string) *PatientReportUpdate {
	_u.mutation.AppendMissingData(v)
	return _u
}

// ClearMissingData clears the value of the "missing_data" field.
func (_u *PatientReportUpdate) ClearMissingData() *PatientReportUpdate {
	_u.mutation.ClearMissingData()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientReportUpdate) SetUpdatedAt(v time.Time) *PatientReportUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *PatientReportUpdate) SetPatient(v *Patient) *PatientReportUpdate {
	return _u.SetPatientID(v.ID)
}

// AddResultIDs adds the "results" edge to the LabResult entity by IDs.
func (_u *PatientReportUpdate) AddResultIDs(ids ...string) *PatientReportUpdate {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the LabResult entity.
func (_u *PatientReportUpdate) AddResults(v ...*LabResult) *PatientReportUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// Mutation returns the PatientReportMutation object of the builder.
func (_u *PatientReportUpdate) Mutation() *PatientReportMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *PatientReportUpdate) ClearPatient() *PatientReportUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// ClearResults clears all "results" edges to the LabResult entity.
func (_u *PatientReportUpdate) ClearResults() *PatientReportUpdate {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to LabResult entities by IDs.
func (_u *PatientReportUpdate) RemoveResultIDs(ids ...string) *PatientReportUpdate {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to LabResult entities.
func (_u *PatientReportUpdate) RemoveResults(v ...*LabResult) *PatientReportUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PatientReportUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientReportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PatientReportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientReportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientReportUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patientreport.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientReportUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := patientreport.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PatientReport.status": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PatientReport.patient"`)
	}
	return nil
}

func (_u *PatientReportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patientreport.Table, patientreport.Columns, sqlgraph.NewFieldSpec(patientreport.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(patientreport.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(patientreport.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.SourceFilename(); ok {
		_spec.SetField(patientreport.FieldSourceFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(patientreport.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Checksum(); ok {
		_spec.SetField(patientreport.FieldChecksum, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParserVersion(); ok {
		_spec.SetField(patientreport.FieldParserVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(patientreport.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RecognizedAt(); ok {
		_spec.SetField(patientreport.FieldRecognizedAt, field.TypeTime, value)
	}
	if _u.mutation.RecognizedAtCleared() {
		_spec.ClearField(patientreport.FieldRecognizedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(patientreport.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(patientreport.FieldProcessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TestDate(); ok {
		_spec.SetField(patientreport.FieldTestDate, field.TypeTime, value)
	}
	if _u.mutation.TestDateCleared() {
		_spec.ClearField(patientreport.FieldTestDate, field.TypeTime)
	}
	if value, ok := _u.mutation.PatientName(); ok {
		_spec.SetField(patientreport.FieldPatientName, field.TypeString, value)
	}
	if _u.mutation.PatientNameCleared() {
		_spec.ClearField(patientreport.FieldPatientName, field.TypeString)
	}
	if value, ok := _u.mutation.PatientGender(); ok {
		_spec.SetField(patientreport.FieldPatientGender, field.TypeString, value)
	}
	if _u.mutation.PatientGenderCleared() {
		_spec.ClearField(patientreport.FieldPatientGender, field.TypeString)
	}
	if value, ok := _u.mutation.PatientDob(); ok {
		_spec.SetField(patientreport.FieldPatientDob, field.TypeTime, value)
	}
	if _u.mutation.PatientDobCleared() {
		_spec.ClearField(patientreport.FieldPatientDob, field.TypeTime)
	}
	if value, ok := _u.mutation.PatientAge(); ok {
		_spec.SetField(patientreport.FieldPatientAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPatientAge(); ok {
		_spec.AddField(patientreport.FieldPatientAge, field.TypeInt, value)
	}
	if _u.mutation.PatientAgeCleared() {
		_spec.ClearField(patientreport.FieldPatientAge, field.TypeInt)
	}
	if value, ok := _u.mutation.RawModelOutput(); ok {
		_spec.SetField(patientreport.FieldRawModelOutput, field.TypeString, value)
	}
	if _u.mutation.RawModelOutputCleared() {
		_spec.ClearField(patientreport.FieldRawModelOutput, field.TypeString)
	}
	if value, ok := _u.mutation.MissingData(); ok {
		_spec.SetField(patientreport.FieldMissingData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMissingData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, patientreport.FieldMissingData, value)
		})
	}
	if _u.mutation.MissingDataCleared() {
		_spec.ClearField(patientreport.FieldMissingData, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(patientreport.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PatientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResultsIDs(); len(nodes) > 0 && !_u.mutation.ResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patientreport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PatientReportUpdateOne is the builder for updating a single PatientReport entity.
type PatientReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PatientReportMutation
}

// SetPatientID sets the "patient_id" field.
func (_u *PatientReportUpdateOne) SetPatientID(v string) *PatientReportUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PatientReportUpdateOne) SetNillablePatientID(v *string) *PatientReportUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PatientReportUpdateOne) SetUserID(v string) *PatientReportUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PatientReportUpdateOne) SetNillableUserID(v *string) *PatientReportUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *PatientReportUpdateOne) ClearUserID() *PatientReportUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetSourceFilename sets the "source_filename" field.
func (_u *PatientReportUpdateOne) SetSourceFilename(v string) *PatientReportUpdateOne {
	_u.mutation.SetSourceFilename(v)
	return _u
}

// SetNillableSourceFilename sets the "source_filename" field if the given value is not nil.
func (_u *PatientReportUpdateOne) SetNillableSourceFilename(v *string) *PatientReportUpdateOne {
	if v != nil {
		_u.SetSourceFilename(*v)
	}
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *PatientReportUpdateOne) SetMimeType(v string) *PatientReportUpdateOne {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *PatientReportUpdateOne) SetNillableMimeType(v *string) *PatientReportUpdateOne {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetChecksum sets the "checksum" field.
func (_u *PatientReportUpdateOne) SetChecksum(v string) *PatientReportUpdateOne {
	_u.mutation.SetChecksum(v)
	return _u
}

// SetNillableChecksum sets the "checksum" field if the given value is not nil.
func (_u *PatientReportUpdateOne) SetNillableChecksum(v *string) *PatientReportUpdateOne {
	if v != nil {
		_u.SetChecksum(*v)
	}
	return _u
}

// SetParserVersion sets the "parser_version" field.
func (_u *PatientReportUpdateOne) SetParserVersion(v string) *PatientReportUpdateOne {
	_u.mutation.SetParserVersion(v)
	return _u
}

// SetNillableParserVersion sets the "parser_version" field if the given value is not nil.
func (_u *PatientReportUpdateOne) SetNillableParserVersion(v *string) *PatientReportUpdateOne {
	if v != nil {
		_u.SetParserVersion(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PatientReportUpdateOne) SetStatus(v patientreport.Status) *PatientReportUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PatientReportUpdateOne) SetNillableStatus(v *patientreport.Status) *PatientReportUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRecognizedAt sets the "recognized_at" field.
func (_u *PatientReportUpdateOne) SetRecognizedAt(v time.Time) *PatientReportUpdateOne {
	_u.mutation.SetRecognizedAt(v)
	return _u
}

// SetNillableRecognizedAt sets the "recognized_at" field if the given value is not nil.
func (_u *PatientReportUpdateOne) SetNillableRecognizedAt(v *time.Time) *PatientReportUpdateOne {
	if v != nil {
		_u.SetRecognizedAt(*v)
	}
	return _u
}

// ClearRecognizedAt clears the value of the "recognized_at" field.
func (_u *PatientReportUpdateOne) ClearRecognizedAt() *PatientReportUpdateOne {
	_u.mutation.ClearRecognizedAt()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *PatientReportUpdateOne) SetProcessedAt(v time.Time) *PatientReportUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *PatientReportUpdateOne) SetNillableProcessedAt(v *time.Time) *PatientReportUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *PatientReportUpdateOne) ClearProcessedAt() *PatientReportUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetTestDate sets the "test_date" field.
func (_u *PatientReportUpdateOne) SetTestDate(v time.Time) *PatientReportUpdateOne {
	_u.mutation.SetTestDate(v)
	return _u
}

// SetNillableTestDate sets the "test_date" field if the given value is not nil.
func (_u *PatientReportUpdateOne) SetNillableTestDate(v *time.Time) *PatientReportUpdateOne {
	if v != nil {
		_u.SetTestDate(*v)
	}
	return _u
}

// ClearTestDate clears the value of the "test_date" field.
func (_u *PatientReportUpdateOne) ClearTestDate() *PatientReportUpdateOne {
	_u.mutation.ClearTestDate()
	return _u
}

// SetPatientName sets the "patient_name" field.
func (_u *PatientReportUpdateOne) SetPatientName(v string) *PatientReportUpdateOne {
	_u.mutation.SetPatientName(v)
	return _u
}

// SetNillablePatientName sets the "patient_name" field if the given value is not nil.
func (_u *PatientReportUpdateOne) SetNillablePatientName(v *string) *PatientReportUpdateOne {
	if v != nil {
		_u.SetPatientName(*v)
	}
	return _u
}

// ClearPatientName clears the value of the "patient_name" field.
func (_u *PatientReportUpdateOne) ClearPatientName() *PatientReportUpdateOne {
	_u.mutation.ClearPatientName()
	return _u
}

// SetPatientGender sets the "patient_gender" field.
func (_u *PatientReportUpdateOne) SetPatientGender(v string) *PatientReportUpdateOne {
	_u.mutation.SetPatientGender(v)
	return _u
}

// SetNillablePatientGender sets the "patient_gender" field if the given value is not nil.
func (_u *PatientReportUpdateOne) SetNillablePatientGender(v *string) *PatientReportUpdateOne {
	if v != nil {
		_u.SetPatientGender(*v)
	}
	return _u
}

// ClearPatientGender clears the value of the "patient_gender" field.
func (_u *PatientReportUpdateOne) ClearPatientGender() *PatientReportUpdateOne {
	_u.mutation.ClearPatientGender()
	return _u
}

// SetPatientDob sets the "patient_dob" field.
func (_u *PatientReportUpdateOne) SetPatientDob(v time.Time) *PatientReportUpdateOne {
	_u.mutation.SetPatientDob(v)
	return _u
}

// SetNillablePatientDob sets the "patient_dob" field if the given value is not nil.
func (_u *PatientReportUpdateOne) SetNillablePatientDob(v *time.Time) *PatientReportUpdateOne {
	if v != nil {
		_u.SetPatientDob(*v)
	}
	return _u
}

// ClearPatientDob clears the value of the "patient_dob" field.
func (_u *PatientReportUpdateOne) ClearPatientDob() *PatientReportUpdateOne {
	_u.mutation.ClearPatientDob()
	return _u
}

// SetPatientAge sets the "patient_age" field.
func (_u *PatientReportUpdateOne) SetPatientAge(v int) *PatientReportUpdateOne {
	_u.mutation.ResetPatientAge()
	_u.mutation.SetPatientAge(v)
	return _u
}

// SetNillablePatientAge sets the "patient_age" field if the given value is not nil.
func (_u *PatientReportUpdateOne) SetNillablePatientAge(v *int) *PatientReportUpdateOne {
	if v != nil {
		_u.SetPatientAge(*v)
	}
	return _u
}

// AddPatientAge adds value to the "patient_age" field.
func (_u *PatientReportUpdateOne) AddPatientAge(v int) *PatientReportUpdateOne {
	_u.mutation.AddPatientAge(v)
	return _u
}

// ClearPatientAge clears the value of the "patient_age" field.
func (_u *PatientReportUpdateOne) ClearPatientAge() *PatientReportUpdateOne {
	_u.mutation.ClearPatientAge()
	return _u
}

// SetRawModelOutput sets the "raw_model_output" field.
func (_u *PatientReportUpdateOne) SetRawModelOutput(v string) *PatientReportUpdateOne {
	_u.mutation.SetRawModelOutput(v)
	return _u
}

// SetNillableRawModelOutput sets the "raw_model_output" field if the given value is not nil.
func (_u *PatientReportUpdateOne) SetNillableRawModelOutput(v *string) *PatientReportUpdateOne {
	if v != nil {
		_u.SetRawModelOutput(*v)
	}
	return _u
}

// ClearRawModelOutput clears the value of the "raw_model_output" field.
func (_u *PatientReportUpdateOne) ClearRawModelOutput() *PatientReportUpdateOne {
	_u.mutation.ClearRawModelOutput()
	return _u
}

// SetMissingData sets the "missing_data" field.
func (_u *PatientReportUpdateOne) SetMissingData(v []string) *PatientReportUpdateOne {
	_u.mutation.SetMissingData(v)
	return _u
}

// AppendMissingData appends value to the "missing_data" field.
func (_u *PatientReportUpdateOne) AppendMissingData(v []string) *PatientReportUpdateOne {
	_u.mutation.AppendMissingData(v)
	return _u
}

// ClearMissingData clears the value of the "missing_data" field.
func (_u *PatientReportUpdateOne) ClearMissingData() *PatientReportUpdateOne {
	_u.mutation.ClearMissingData()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientReportUpdateOne) SetUpdatedAt(v time.Time) *PatientReportUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *PatientReportUpdateOne) SetPatient(v *Patient) *PatientReportUpdateOne {
	return _u.SetPatientID(v.ID)
}

// AddResultIDs adds the "results" edge to the LabResult entity by IDs.
func (_u *PatientReportUpdateOne) AddResultIDs(ids ...string) *PatientReportUpdateOne {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the LabResult entity.
func (_u *PatientReportUpdateOne) AddResults(v ...*LabResult) *PatientReportUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// Mutation returns the PatientReportMutation object of the builder.
func (_u *PatientReportUpdateOne) Mutation() *PatientReportMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *PatientReportUpdateOne) ClearPatient() *PatientReportUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// ClearResults clears all "results" edges to the LabResult entity.
func (_u *PatientReportUpdateOne) ClearResults() *PatientReportUpdateOne {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to LabResult entities by IDs.
func (_u *PatientReportUpdateOne) RemoveResultIDs(ids ...string) *PatientReportUpdateOne {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to LabResult entities.
func (_u *PatientReportUpdateOne) RemoveResults(v ...*LabResult) *PatientReportUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// Where appends a list predicates to the PatientReportUpdate builder.
func (_u *PatientReportUpdateOne) Where(ps ...predicate.PatientReport) *PatientReportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PatientReportUpdateOne) Select(field string, fields ...string) *PatientReportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PatientReport entity.
func (_u *PatientReportUpdateOne) Save(ctx context.Context) (*PatientReport, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientReportUpdateOne) SaveX(ctx context.Context) *PatientReport {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PatientReportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientReportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientReportUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patientreport.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientReportUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := patientreport.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PatientReport.status": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PatientReport.patient"`)
	}
	return nil
}

func (_u *PatientReportUpdateOne) sqlSave(ctx context.Context) (_node *PatientReport, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patientreport.Table, patientreport.Columns, sqlgraph.NewFieldSpec(patientreport.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PatientReport.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, patientreport.FieldID)
		for _, f := range fields {
			if !patientreport.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != patientreport.FieldID {
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
		_spec.SetField(patientreport.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(patientreport.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.SourceFilename(); ok {
		_spec.SetField(patientreport.FieldSourceFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(patientreport.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Checksum(); ok {
		_spec.SetField(patientreport.FieldChecksum, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParserVersion(); ok {
		_spec.SetField(patientreport.FieldParserVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(patientreport.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RecognizedAt(); ok {
		_spec.SetField(patientreport.FieldRecognizedAt, field.TypeTime, value)
	}
	if _u.mutation.RecognizedAtCleared() {
		_spec.ClearField(patientreport.FieldRecognizedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(patientreport.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(patientreport.FieldProcessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TestDate(); ok {
		_spec.SetField(patientreport.FieldTestDate, field.TypeTime, value)
	}
	if _u.mutation.TestDateCleared() {
		_spec.ClearField(patientreport.FieldTestDate, field.TypeTime)
	}
	if value, ok := _u.mutation.PatientName(); ok {
		_spec.SetField(patientreport.FieldPatientName, field.TypeString, value)
	}
	if _u.mutation.PatientNameCleared() {
		_spec.ClearField(patientreport.FieldPatientName, field.TypeString)
	}
	if value, ok := _u.mutation.PatientGender(); ok {
		_spec.SetField(patientreport.FieldPatientGender, field.TypeString, value)
	}
	if _u.mutation.PatientGenderCleared() {
		_spec.ClearField(patientreport.FieldPatientGender, field.TypeString)
	}
	if value, ok := _u.mutation.PatientDob(); ok {
		_spec.SetField(patientreport.FieldPatientDob, field.TypeTime, value)
	}
	if _u.mutation.PatientDobCleared() {
		_spec.ClearField(patientreport.FieldPatientDob, field.TypeTime)
	}
	if value, ok := _u.mutation.PatientAge(); ok {
		_spec.SetField(patientreport.FieldPatientAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPatientAge(); ok {
		_spec.AddField(patientreport.FieldPatientAge, field.TypeInt, value)
	}
	if _u.mutation.PatientAgeCleared() {
		_spec.ClearField(patientreport.FieldPatientAge, field.TypeInt)
	}
	if value, ok := _u.mutation.RawModelOutput(); ok {
		_spec.SetField(patientreport.FieldRawModelOutput, field.TypeString, value)
	}
	if _u.mutation.RawModelOutputCleared() {
		_spec.ClearField(patientreport.FieldRawModelOutput, field.TypeString)
	}
	if value, ok := _u.mutation.MissingData(); ok {
		_spec.SetField(patientreport.FieldMissingData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMissingData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, patientreport.FieldMissingData, value)
		})
	}
	if _u.mutation.MissingDataCleared() {
		_spec.ClearField(patientreport.FieldMissingData, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(patientreport.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PatientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResultsIDs(); len(nodes) > 0 && !_u.mutation.ResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PatientReport{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patientreport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
