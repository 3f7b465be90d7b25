// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/labdex/labdex/ent/analyte"
	"github.com/labdex/labdex/ent/analytealias"
	"github.com/labdex/labdex/ent/chatsession"
	"github.com/labdex/labdex/ent/gmailprovenance"
	"github.com/labdex/labdex/ent/identity"
	"github.com/labdex/labdex/ent/labresult"
	"github.com/labdex/labdex/ent/matchreview"
	"github.com/labdex/labdex/ent/patient"
	"github.com/labdex/labdex/ent/patientreport"
	"github.com/labdex/labdex/ent/pendinganalyte"
	"github.com/labdex/labdex/ent/predicate"
	"github.com/labdex/labdex/ent/session"
	"github.com/labdex/labdex/ent/sqlgenerationlog"
	"github.com/labdex/labdex/ent/unitalias"
	"github.com/labdex/labdex/ent/unitreview"
	"github.com/labdex/labdex/ent/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnalyte          = "Analyte"
	TypeAnalyteAlias     = "AnalyteAlias"
	TypeChatSession      = "ChatSession"
	TypeGmailProvenance  = "GmailProvenance"
	TypeIdentity         = "Identity"
	TypeLabResult        = "LabResult"
	TypeMatchReview      = "MatchReview"
	TypePatient          = "Patient"
	TypePatientReport    = "PatientReport"
	TypePendingAnalyte   = "PendingAnalyte"
	TypeSQLGenerationLog = "SQLGenerationLog"
	TypeSession          = "Session"
	TypeUnitAlias        = "UnitAlias"
	TypeUnitReview       = "UnitReview"
	TypeUser             = "User"
)

// AnalyteMutation represents an operation that mutates the Analyte nodes in the graph.
type AnalyteMutation struct {
	config
	op             Op
	typ            string
	id             *string
	code           *string
	name           *string
	canonical_unit *string
	category       *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	aliases        map[string]struct{}
	removedaliases map[string]struct{}
	clearedaliases bool
	results        map[string]struct{}
	removedresults map[string]struct{}
	clearedresults bool
	done           bool
	oldValue       func(context.Context) (*Analyte, error)
	predicates     []predicate.Analyte
}

var _ ent.Mutation = (*AnalyteMutation)(nil)

// analyteOption allows management of the mutation configuration using functional options.
type analyteOption func(*AnalyteMutation)

// newAnalyteMutation creates new mutation for the Analyte entity.
func newAnalyteMutation(c config, op Op, opts ...analyteOption) *AnalyteMutation {
	m := &AnalyteMutation{
		config:        c,
		op:            op,
		typ:           TypeAnalyte,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnalyteID sets the ID field of the mutation.
func withAnalyteID(id string) analyteOption {
	return func(m *AnalyteMutation) {
		var (
			err   error
			once  sync.Once
			value *Analyte
		)
		m.oldValue = func(ctx context.Context) (*Analyte, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Analyte.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnalyte sets the old Analyte of the mutation.
func withAnalyte(node *Analyte) analyteOption {
	return func(m *AnalyteMutation) {
		m.oldValue = func(context.Context) (*Analyte, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnalyteMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnalyteMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Analyte entities.
func (m *AnalyteMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnalyteMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnalyteMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Analyte.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCode sets the "code" field.
func (m *AnalyteMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *AnalyteMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the Analyte entity.
// If the Analyte object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyteMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ResetCode resets all changes to the "code" field.
func (m *AnalyteMutation) ResetCode() {
	m.code = nil
}

// SetName sets the "name" field.
func (m *AnalyteMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AnalyteMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Analyte entity.
// If the Analyte object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyteMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AnalyteMutation) ResetName() {
	m.name = nil
}

// SetCanonicalUnit sets the "canonical_unit" field.
func (m *AnalyteMutation) SetCanonicalUnit(s string) {
	m.canonical_unit = &s
}

// CanonicalUnit returns the value of the "canonical_unit" field in the mutation.
func (m *AnalyteMutation) CanonicalUnit() (r string, exists bool) {
	v := m.canonical_unit
	if v == nil {
		return
	}
	return *v, true
}

// OldCanonicalUnit returns the old "canonical_unit" field's value of the Analyte entity.
// If the Analyte object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyteMutation) OldCanonicalUnit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanonicalUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanonicalUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanonicalUnit: %w", err)
	}
	return oldValue.CanonicalUnit, nil
}

// ResetCanonicalUnit resets all changes to the "canonical_unit" field.
func (m *AnalyteMutation) ResetCanonicalUnit() {
	m.canonical_unit = nil
}

// SetCategory sets the "category" field.
func (m *AnalyteMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *AnalyteMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Analyte entity.
// If the Analyte object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyteMutation) OldCategory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *AnalyteMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[analyte.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *AnalyteMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[analyte.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *AnalyteMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, analyte.FieldCategory)
}

// SetCreatedAt sets the "created_at" field.
func (m *AnalyteMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnalyteMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Analyte entity.
// If the Analyte object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyteMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnalyteMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddAliasIDs adds the "aliases" edge to the AnalyteAlias entity by ids.
func (m *AnalyteMutation) AddAliasIDs(ids ...string) {
	if m.aliases == nil {
		m.aliases = make(map[string]struct{})
	}
	for i := range ids {
		m.aliases[ids[i]] = struct{}{}
	}
}

// ClearAliases clears the "aliases" edge to the AnalyteAlias entity.
func (m *AnalyteMutation) ClearAliases() {
	m.clearedaliases = true
}

// AliasesCleared reports if the "aliases" edge to the AnalyteAlias entity was cleared.
func (m *AnalyteMutation) AliasesCleared() bool {
	return m.clearedaliases
}

// RemoveAliasIDs removes the "aliases" edge to the AnalyteAlias entity by IDs.
func (m *AnalyteMutation) RemoveAliasIDs(ids ...string) {
	if m.removedaliases == nil {
		m.removedaliases = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.aliases, ids[i])
		m.removedaliases[ids[i]] = struct{}{}
	}
}

// RemovedAliases returns the removed IDs of the "aliases" edge to the AnalyteAlias entity.
func (m *AnalyteMutation) RemovedAliasesIDs() (ids []string) {
	for id := range m.removedaliases {
		ids = append(ids, id)
	}
	return
}

// AliasesIDs returns the "aliases" edge IDs in the mutation.
func (m *AnalyteMutation) AliasesIDs() (ids []string) {
	for id := range m.aliases {
		ids = append(ids, id)
	}
	return
}

// ResetAliases resets all changes to the "aliases" edge.
func (m *AnalyteMutation) ResetAliases() {
	m.aliases = nil
	m.clearedaliases = false
	m.removedaliases = nil
}

// AddResultIDs adds the "results" edge to the LabResult entity by ids.
func (m *AnalyteMutation) AddResultIDs(ids ...string) {
	if m.results == nil {
		m.results = make(map[string]struct{})
	}
	for i := range ids {
		m.results[ids[i]] = struct{}{}
	}
}

// ClearResults clears the "results" edge to the LabResult entity.
func (m *AnalyteMutation) ClearResults() {
	m.clearedresults = true
}

// ResultsCleared reports if the "results" edge to the LabResult entity was cleared.
func (m *AnalyteMutation) ResultsCleared() bool {
	return m.clearedresults
}

// RemoveResultIDs removes the "results" edge to the LabResult entity by IDs.
func (m *AnalyteMutation) RemoveResultIDs(ids ...string) {
	if m.removedresults == nil {
		m.removedresults = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.results, ids[i])
		m.removedresults[ids[i]] = struct{}{}
	}
}

// RemovedResults returns the removed IDs of the "results" edge to the LabResult entity.
func (m *AnalyteMutation) RemovedResultsIDs() (ids []string) {
	for id := range m.removedresults {
		ids = append(ids, id)
	}
	return
}

// ResultsIDs returns the "results" edge IDs in the mutation.
func (m *AnalyteMutation) ResultsIDs() (ids []string) {
	for id := range m.results {
		ids = append(ids, id)
	}
	return
}

// ResetResults resets all changes to the "results" edge.
func (m *AnalyteMutation) ResetResults() {
	m.results = nil
	m.clearedresults = false
	m.removedresults = nil
}

// Where appends a list predicates to the AnalyteMutation builder.
func (m *AnalyteMutation) Where(ps ...predicate.Analyte) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnalyteMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnalyteMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Analyte, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnalyteMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnalyteMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Analyte).
func (m *AnalyteMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnalyteMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.code != nil {
		fields = append(fields, analyte.FieldCode)
	}
	if m.name != nil {
		fields = append(fields, analyte.FieldName)
	}
	if m.canonical_unit != nil {
		fields = append(fields, analyte.FieldCanonicalUnit)
	}
	if m.category != nil {
		fields = append(fields, analyte.FieldCategory)
	}
	if m.created_at != nil {
		fields = append(fields, analyte.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnalyteMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case analyte.FieldCode:
		return m.Code()
	case analyte.FieldName:
		return m.Name()
	case analyte.FieldCanonicalUnit:
		return m.CanonicalUnit()
	case analyte.FieldCategory:
		return m.Category()
	case analyte.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnalyteMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case analyte.FieldCode:
		return m.OldCode(ctx)
	case analyte.FieldName:
		return m.OldName(ctx)
	case analyte.FieldCanonicalUnit:
		return m.OldCanonicalUnit(ctx)
	case analyte.FieldCategory:
		return m.OldCategory(ctx)
	case analyte.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Analyte field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalyteMutation) SetField(name string, value ent.Value) error {
	switch name {
	case analyte.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case analyte.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case analyte.FieldCanonicalUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanonicalUnit(v)
		return nil
	case analyte.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case analyte.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Analyte field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnalyteMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnalyteMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalyteMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Analyte numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnalyteMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(analyte.FieldCategory) {
		fields = append(fields, analyte.FieldCategory)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnalyteMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnalyteMutation) ClearField(name string) error {
	switch name {
	case analyte.FieldCategory:
		m.ClearCategory()
		return nil
	}
	return fmt.Errorf("unknown Analyte nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnalyteMutation) ResetField(name string) error {
	switch name {
	case analyte.FieldCode:
		m.ResetCode()
		return nil
	case analyte.FieldName:
		m.ResetName()
		return nil
	case analyte.FieldCanonicalUnit:
		m.ResetCanonicalUnit()
		return nil
	case analyte.FieldCategory:
		m.ResetCategory()
		return nil
	case analyte.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Analyte field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnalyteMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.aliases != nil {
		edges = append(edges, analyte.EdgeAliases)
	}
	if m.results != nil {
		edges = append(edges, analyte.EdgeResults)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnalyteMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case analyte.EdgeAliases:
		ids := make([]ent.Value, 0, len(m.aliases))
		for id := range m.aliases {
			ids = append(ids, id)
		}
		return ids
	case analyte.EdgeResults:
		ids := make([]ent.Value, 0, len(m.results))
		for id := range m.results {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnalyteMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedaliases != nil {
		edges = append(edges, analyte.EdgeAliases)
	}
	if m.removedresults != nil {
		edges = append(edges, analyte.EdgeResults)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnalyteMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case analyte.EdgeAliases:
		ids := make([]ent.Value, 0, len(m.removedaliases))
		for id := range m.removedaliases {
			ids = append(ids, id)
		}
		return ids
	case analyte.EdgeResults:
		ids := make([]ent.Value, 0, len(m.removedresults))
		for id := range m.removedresults {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnalyteMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedaliases {
		edges = append(edges, analyte.EdgeAliases)
	}
	if m.clearedresults {
		edges = append(edges, analyte.EdgeResults)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnalyteMutation) EdgeCleared(name string) bool {
	switch name {
	case analyte.EdgeAliases:
		return m.clearedaliases
	case analyte.EdgeResults:
		return m.clearedresults
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnalyteMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Analyte unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnalyteMutation) ResetEdge(name string) error {
	switch name {
	case analyte.EdgeAliases:
		m.ResetAliases()
		return nil
	case analyte.EdgeResults:
		m.ResetResults()
		return nil
	}
	return fmt.Errorf("unknown Analyte edge %s", name)
}

// AnalyteAliasMutation represents an operation that mutates the AnalyteAlias nodes in the graph.
type AnalyteAliasMutation struct {
	config
	op             Op
	typ            string
	id             *string
	alias          *string
	display        *string
	language       *string
	confidence     *float64
	addconfidence  *float64
	source         *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	analyte        *string
	clearedanalyte bool
	done           bool
	oldValue       func(context.Context) (*AnalyteAlias, error)
	predicates     []predicate.AnalyteAlias
}

var _ ent.Mutation = (*AnalyteAliasMutation)(nil)

// analytealiasOption allows management of the mutation configuration using functional options.
type analytealiasOption func(*AnalyteAliasMutation)

// newAnalyteAliasMutation creates new mutation for the AnalyteAlias entity.
func newAnalyteAliasMutation(c config, op Op, opts ...analytealiasOption) *AnalyteAliasMutation {
	m := &AnalyteAliasMutation{
		config:        c,
		op:            op,
		typ:           TypeAnalyteAlias,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnalyteAliasID sets the ID field of the mutation.
func withAnalyteAliasID(id string) analytealiasOption {
	return func(m *AnalyteAliasMutation) {
		var (
			err   error
			once  sync.Once
			value *AnalyteAlias
		)
		m.oldValue = func(ctx context.Context) (*AnalyteAlias, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnalyteAlias.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnalyteAlias sets the old AnalyteAlias of the mutation.
func withAnalyteAlias(node *AnalyteAlias) analytealiasOption {
	return func(m *AnalyteAliasMutation) {
		m.oldValue = func(context.Context) (*AnalyteAlias, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnalyteAliasMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnalyteAliasMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AnalyteAlias entities.
func (m *AnalyteAliasMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnalyteAliasMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnalyteAliasMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnalyteAlias.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAnalyteID sets the "analyte_id" field.
func (m *AnalyteAliasMutation) SetAnalyteID(s string) {
	m.analyte = &s
}

// AnalyteID returns the value of the "analyte_id" field in the mutation.
func (m *AnalyteAliasMutation) AnalyteID() (r string, exists bool) {
	v := m.analyte
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalyteID returns the old "analyte_id" field's value of the AnalyteAlias entity.
// If the AnalyteAlias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyteAliasMutation) OldAnalyteID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalyteID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalyteID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalyteID: %w", err)
	}
	return oldValue.AnalyteID, nil
}

// ResetAnalyteID resets all changes to the "analyte_id" field.
func (m *AnalyteAliasMutation) ResetAnalyteID() {
	m.analyte = nil
}

// SetAlias sets the "alias" field.
func (m *AnalyteAliasMutation) SetAlias(s string) {
	m.alias = &s
}

// Alias returns the value of the "alias" field in the mutation.
func (m *AnalyteAliasMutation) Alias() (r string, exists bool) {
	v := m.alias
	if v == nil {
		return
	}
	return *v, true
}

// OldAlias returns the old "alias" field's value of the AnalyteAlias entity.
// If the AnalyteAlias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyteAliasMutation) OldAlias(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlias is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlias requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlias: %w", err)
	}
	return oldValue.Alias, nil
}

// ResetAlias resets all changes to the "alias" field.
func (m *AnalyteAliasMutation) ResetAlias() {
	m.alias = nil
}

// SetDisplay sets the "display" field.
func (m *AnalyteAliasMutation) SetDisplay(s string) {
	m.display = &s
}

// Display returns the value of the "display" field in the mutation.
func (m *AnalyteAliasMutation) Display() (r string, exists bool) {
	v := m.display
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplay returns the old "display" field's value of the AnalyteAlias entity.
// If the AnalyteAlias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyteAliasMutation) OldDisplay(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplay: %w", err)
	}
	return oldValue.Display, nil
}

// ResetDisplay resets all changes to the "display" field.
func (m *AnalyteAliasMutation) ResetDisplay() {
	m.display = nil
}

// SetLanguage sets the "language" field.
func (m *AnalyteAliasMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *AnalyteAliasMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the AnalyteAlias entity.
// If the AnalyteAlias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyteAliasMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ResetLanguage resets all changes to the "language" field.
func (m *AnalyteAliasMutation) ResetLanguage() {
	m.language = nil
}

// SetConfidence sets the "confidence" field.
func (m *AnalyteAliasMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *AnalyteAliasMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the AnalyteAlias entity.
// If the AnalyteAlias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyteAliasMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *AnalyteAliasMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *AnalyteAliasMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *AnalyteAliasMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetSource sets the "source" field.
func (m *AnalyteAliasMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *AnalyteAliasMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the AnalyteAlias entity.
// If the AnalyteAlias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyteAliasMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *AnalyteAliasMutation) ResetSource() {
	m.source = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AnalyteAliasMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnalyteAliasMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AnalyteAlias entity.
// If the AnalyteAlias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyteAliasMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnalyteAliasMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearAnalyte clears the "analyte" edge to the Analyte entity.
func (m *AnalyteAliasMutation) ClearAnalyte() {
	m.clearedanalyte = true
	m.clearedFields[analytealias.FieldAnalyteID] = struct{}{}
}

// AnalyteCleared reports if the "analyte" edge to the Analyte entity was cleared.
func (m *AnalyteAliasMutation) AnalyteCleared() bool {
	return m.clearedanalyte
}

// AnalyteIDs returns the "analyte" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AnalyteID instead. It exists only for internal usage by the builders.
func (m *AnalyteAliasMutation) AnalyteIDs() (ids []string) {
	if id := m.analyte; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAnalyte resets all changes to the "analyte" edge.
func (m *AnalyteAliasMutation) ResetAnalyte() {
	m.analyte = nil
	m.clearedanalyte = false
}

// Where appends a list predicates to the AnalyteAliasMutation builder.
func (m *AnalyteAliasMutation) Where(ps ...predicate.AnalyteAlias) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnalyteAliasMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnalyteAliasMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnalyteAlias, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnalyteAliasMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnalyteAliasMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnalyteAlias).
func (m *AnalyteAliasMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnalyteAliasMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.analyte != nil {
		fields = append(fields, analytealias.FieldAnalyteID)
	}
	if m.alias != nil {
		fields = append(fields, analytealias.FieldAlias)
	}
	if m.display != nil {
		fields = append(fields, analytealias.FieldDisplay)
	}
	if m.language != nil {
		fields = append(fields, analytealias.FieldLanguage)
	}
	if m.confidence != nil {
		fields = append(fields, analytealias.FieldConfidence)
	}
	if m.source != nil {
		fields = append(fields, analytealias.FieldSource)
	}
	if m.created_at != nil {
		fields = append(fields, analytealias.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnalyteAliasMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case analytealias.FieldAnalyteID:
		return m.AnalyteID()
	case analytealias.FieldAlias:
		return m.Alias()
	case analytealias.FieldDisplay:
		return m.Display()
	case analytealias.FieldLanguage:
		return m.Language()
	case analytealias.FieldConfidence:
		return m.Confidence()
	case analytealias.FieldSource:
		return m.Source()
	case analytealias.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnalyteAliasMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case analytealias.FieldAnalyteID:
		return m.OldAnalyteID(ctx)
	case analytealias.FieldAlias:
		return m.OldAlias(ctx)
	case analytealias.FieldDisplay:
		return m.OldDisplay(ctx)
	case analytealias.FieldLanguage:
		return m.OldLanguage(ctx)
	case analytealias.FieldConfidence:
		return m.OldConfidence(ctx)
	case analytealias.FieldSource:
		return m.OldSource(ctx)
	case analytealias.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AnalyteAlias field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalyteAliasMutation) SetField(name string, value ent.Value) error {
	switch name {
	case analytealias.FieldAnalyteID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalyteID(v)
		return nil
	case analytealias.FieldAlias:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlias(v)
		return nil
	case analytealias.FieldDisplay:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplay(v)
		return nil
	case analytealias.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case analytealias.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case analytealias.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case analytealias.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AnalyteAlias field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnalyteAliasMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, analytealias.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnalyteAliasMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case analytealias.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalyteAliasMutation) AddField(name string, value ent.Value) error {
	switch name {
	case analytealias.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown AnalyteAlias numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnalyteAliasMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnalyteAliasMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnalyteAliasMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AnalyteAlias nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnalyteAliasMutation) ResetField(name string) error {
	switch name {
	case analytealias.FieldAnalyteID:
		m.ResetAnalyteID()
		return nil
	case analytealias.FieldAlias:
		m.ResetAlias()
		return nil
	case analytealias.FieldDisplay:
		m.ResetDisplay()
		return nil
	case analytealias.FieldLanguage:
		m.ResetLanguage()
		return nil
	case analytealias.FieldConfidence:
		m.ResetConfidence()
		return nil
	case analytealias.FieldSource:
		m.ResetSource()
		return nil
	case analytealias.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AnalyteAlias field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnalyteAliasMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.analyte != nil {
		edges = append(edges, analytealias.EdgeAnalyte)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnalyteAliasMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case analytealias.EdgeAnalyte:
		if id := m.analyte; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnalyteAliasMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnalyteAliasMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnalyteAliasMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedanalyte {
		edges = append(edges, analytealias.EdgeAnalyte)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnalyteAliasMutation) EdgeCleared(name string) bool {
	switch name {
	case analytealias.EdgeAnalyte:
		return m.clearedanalyte
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnalyteAliasMutation) ClearEdge(name string) error {
	switch name {
	case analytealias.EdgeAnalyte:
		m.ClearAnalyte()
		return nil
	}
	return fmt.Errorf("unknown AnalyteAlias unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnalyteAliasMutation) ResetEdge(name string) error {
	switch name {
	case analytealias.EdgeAnalyte:
		m.ResetAnalyte()
		return nil
	}
	return fmt.Errorf("unknown AnalyteAlias edge %s", name)
}

// ChatSessionMutation represents an operation that mutates the ChatSession nodes in the graph.
type ChatSessionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	user_id             *string
	selected_patient_id *string
	turn_count          *int
	addturn_count       *int
	transcript          *[]map[string]interface{}
	appendtranscript    []map[string]interface{}
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*ChatSession, error)
	predicates          []predicate.ChatSession
}

var _ ent.Mutation = (*ChatSessionMutation)(nil)

// chatsessionOption allows management of the mutation configuration using functional options.
type chatsessionOption func(*ChatSessionMutation)

// newChatSessionMutation creates new mutation for the ChatSession entity.
func newChatSessionMutation(c config, op Op, opts ...chatsessionOption) *ChatSessionMutation {
	m := &ChatSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeChatSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatSessionID sets the ID field of the mutation.
func withChatSessionID(id string) chatsessionOption {
	return func(m *ChatSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatSession
		)
		m.oldValue = func(ctx context.Context) (*ChatSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatSession sets the old ChatSession of the mutation.
func withChatSession(node *ChatSession) chatsessionOption {
	return func(m *ChatSessionMutation) {
		m.oldValue = func(context.Context) (*ChatSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChatSession entities.
func (m *ChatSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ChatSessionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ChatSessionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ChatSessionMutation) ResetUserID() {
	m.user_id = nil
}

// SetSelectedPatientID sets the "selected_patient_id" field.
func (m *ChatSessionMutation) SetSelectedPatientID(s string) {
	m.selected_patient_id = &s
}

// SelectedPatientID returns the value of the "selected_patient_id" field in the mutation.
func (m *ChatSessionMutation) SelectedPatientID() (r string, exists bool) {
	v := m.selected_patient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSelectedPatientID returns the old "selected_patient_id" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldSelectedPatientID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSelectedPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSelectedPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSelectedPatientID: %w", err)
	}
	return oldValue.SelectedPatientID, nil
}

// ClearSelectedPatientID clears the value of the "selected_patient_id" field.
func (m *ChatSessionMutation) ClearSelectedPatientID() {
	m.selected_patient_id = nil
	m.clearedFields[chatsession.FieldSelectedPatientID] = struct{}{}
}

// SelectedPatientIDCleared returns if the "selected_patient_id" field was cleared in this mutation.
func (m *ChatSessionMutation) SelectedPatientIDCleared() bool {
	_, ok := m.clearedFields[chatsession.FieldSelectedPatientID]
	return ok
}

// ResetSelectedPatientID resets all changes to the "selected_patient_id" field.
func (m *ChatSessionMutation) ResetSelectedPatientID() {
	m.selected_patient_id = nil
	delete(m.clearedFields, chatsession.FieldSelectedPatientID)
}

// SetTurnCount sets the "turn_count" field.
func (m *ChatSessionMutation) SetTurnCount(i int) {
	m.turn_count = &i
	m.addturn_count = nil
}

// TurnCount returns the value of the "turn_count" field in the mutation.
func (m *ChatSessionMutation) TurnCount() (r int, exists bool) {
	v := m.turn_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTurnCount returns the old "turn_count" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldTurnCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTurnCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTurnCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTurnCount: %w", err)
	}
	return oldValue.TurnCount, nil
}

// AddTurnCount adds i to the "turn_count" field.
func (m *ChatSessionMutation) AddTurnCount(i int) {
	if m.addturn_count != nil {
		*m.addturn_count += i
	} else {
		m.addturn_count = &i
	}
}

// AddedTurnCount returns the value that was added to the "turn_count" field in this mutation.
func (m *ChatSessionMutation) AddedTurnCount() (r int, exists bool) {
	v := m.addturn_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTurnCount resets all changes to the "turn_count" field.
func (m *ChatSessionMutation) ResetTurnCount() {
	m.turn_count = nil
	m.addturn_count = nil
}

// SetTranscript sets the "transcript" field.
func (m *ChatSessionMutation) SetTranscript(value []map[string]interface{}) {
	m.transcript = &value
	m.appendtranscript = nil
}

// Transcript returns the value of the "transcript" field in the mutation.
func (m *ChatSessionMutation) Transcript() (r []map[string]interface{}, exists bool) {
	v := m.transcript
	if v == nil {
		return
	}
	return *v, true
}

// OldTranscript returns the old "transcript" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldTranscript(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranscript is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranscript requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranscript: %w", err)
	}
	return oldValue.Transcript, nil
}

// AppendTranscript adds value to the "transcript" field.
func (m *ChatSessionMutation) AppendTranscript(value []map[string]interface{}) {
	m.appendtranscript = append(m.appendtranscript, value...)
}

// AppendedTranscript returns the list of values that were appended to the "transcript" field in this mutation.
func (m *ChatSessionMutation) AppendedTranscript() ([]map[string]interface{}, bool) {
	if len(m.appendtranscript) == 0 {
		return nil, false
	}
	return m.appendtranscript, true
}

// ClearTranscript clears the value of the "transcript" field.
func (m *ChatSessionMutation) ClearTranscript() {
	m.transcript = nil
	m.appendtranscript = nil
	m.clearedFields[chatsession.FieldTranscript] = struct{}{}
}

// TranscriptCleared returns if the "transcript" field was cleared in this mutation.
func (m *ChatSessionMutation) TranscriptCleared() bool {
	_, ok := m.clearedFields[chatsession.FieldTranscript]
	return ok
}

// ResetTranscript resets all changes to the "transcript" field.
func (m *ChatSessionMutation) ResetTranscript() {
	m.transcript = nil
	m.appendtranscript = nil
	delete(m.clearedFields, chatsession.FieldTranscript)
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ChatSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ChatSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ChatSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ChatSessionMutation builder.
func (m *ChatSessionMutation) Where(ps ...predicate.ChatSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatSession).
func (m *ChatSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatSessionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.user_id != nil {
		fields = append(fields, chatsession.FieldUserID)
	}
	if m.selected_patient_id != nil {
		fields = append(fields, chatsession.FieldSelectedPatientID)
	}
	if m.turn_count != nil {
		fields = append(fields, chatsession.FieldTurnCount)
	}
	if m.transcript != nil {
		fields = append(fields, chatsession.FieldTranscript)
	}
	if m.created_at != nil {
		fields = append(fields, chatsession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, chatsession.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatsession.FieldUserID:
		return m.UserID()
	case chatsession.FieldSelectedPatientID:
		return m.SelectedPatientID()
	case chatsession.FieldTurnCount:
		return m.TurnCount()
	case chatsession.FieldTranscript:
		return m.Transcript()
	case chatsession.FieldCreatedAt:
		return m.CreatedAt()
	case chatsession.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatsession.FieldUserID:
		return m.OldUserID(ctx)
	case chatsession.FieldSelectedPatientID:
		return m.OldSelectedPatientID(ctx)
	case chatsession.FieldTurnCount:
		return m.OldTurnCount(ctx)
	case chatsession.FieldTranscript:
		return m.OldTranscript(ctx)
	case chatsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case chatsession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChatSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatsession.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case chatsession.FieldSelectedPatientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSelectedPatientID(v)
		return nil
	case chatsession.FieldTurnCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTurnCount(v)
		return nil
	case chatsession.FieldTranscript:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranscript(v)
		return nil
	case chatsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case chatsession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChatSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatSessionMutation) AddedFields() []string {
	var fields []string
	if m.addturn_count != nil {
		fields = append(fields, chatsession.FieldTurnCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case chatsession.FieldTurnCount:
		return m.AddedTurnCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case chatsession.FieldTurnCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTurnCount(v)
		return nil
	}
	return fmt.Errorf("unknown ChatSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chatsession.FieldSelectedPatientID) {
		fields = append(fields, chatsession.FieldSelectedPatientID)
	}
	if m.FieldCleared(chatsession.FieldTranscript) {
		fields = append(fields, chatsession.FieldTranscript)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatSessionMutation) ClearField(name string) error {
	switch name {
	case chatsession.FieldSelectedPatientID:
		m.ClearSelectedPatientID()
		return nil
	case chatsession.FieldTranscript:
		m.ClearTranscript()
		return nil
	}
	return fmt.Errorf("unknown ChatSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatSessionMutation) ResetField(name string) error {
	switch name {
	case chatsession.FieldUserID:
		m.ResetUserID()
		return nil
	case chatsession.FieldSelectedPatientID:
		m.ResetSelectedPatientID()
		return nil
	case chatsession.FieldTurnCount:
		m.ResetTurnCount()
		return nil
	case chatsession.FieldTranscript:
		m.ResetTranscript()
		return nil
	case chatsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case chatsession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChatSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ChatSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ChatSession edge %s", name)
}

// GmailProvenanceMutation represents an operation that mutates the GmailProvenance nodes in the graph.
type GmailProvenanceMutation struct {
	config
	op                Op
	typ               string
	id                *string
	report_id         *string
	user_id           *string
	message_id        *string
	attachment_id     *string
	sender_email      *string
	sender_name       *string
	subject           *string
	email_date        *time.Time
	attachment_sha256 *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*GmailProvenance, error)
	predicates        []predicate.GmailProvenance
}

var _ ent.Mutation = (*GmailProvenanceMutation)(nil)

// gmailprovenanceOption allows management of the mutation configuration using functional options.
type gmailprovenanceOption func(*GmailProvenanceMutation)

// newGmailProvenanceMutation creates new mutation for the GmailProvenance entity.
func newGmailProvenanceMutation(c config, op Op, opts ...gmailprovenanceOption) *GmailProvenanceMutation {
	m := &GmailProvenanceMutation{
		config:        c,
		op:            op,
		typ:           TypeGmailProvenance,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGmailProvenanceID sets the ID field of the mutation.
func withGmailProvenanceID(id string) gmailprovenanceOption {
	return func(m *GmailProvenanceMutation) {
		var (
			err   error
			once  sync.Once
			value *GmailProvenance
		)
		m.oldValue = func(ctx context.Context) (*GmailProvenance, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GmailProvenance.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGmailProvenance sets the old GmailProvenance of the mutation.
func withGmailProvenance(node *GmailProvenance) gmailprovenanceOption {
	return func(m *GmailProvenanceMutation) {
		m.oldValue = func(context.Context) (*GmailProvenance, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GmailProvenanceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GmailProvenanceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GmailProvenance entities.
func (m *GmailProvenanceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GmailProvenanceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GmailProvenanceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GmailProvenance.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReportID sets the "report_id" field.
func (m *GmailProvenanceMutation) SetReportID(s string) {
	m.report_id = &s
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *GmailProvenanceMutation) ReportID() (r string, exists bool) {
	v := m.report_id
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the GmailProvenance entity.
// If the GmailProvenance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GmailProvenanceMutation) OldReportID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// ResetReportID resets all changes to the "report_id" field.
func (m *GmailProvenanceMutation) ResetReportID() {
	m.report_id = nil
}

// SetUserID sets the "user_id" field.
func (m *GmailProvenanceMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *GmailProvenanceMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the GmailProvenance entity.
// If the GmailProvenance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GmailProvenanceMutation) OldUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *GmailProvenanceMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[gmailprovenance.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *GmailProvenanceMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[gmailprovenance.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *GmailProvenanceMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, gmailprovenance.FieldUserID)
}

// SetMessageID sets the "message_id" field.
func (m *GmailProvenanceMutation) SetMessageID(s string) {
	m.message_id = &s
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *GmailProvenanceMutation) MessageID() (r string, exists bool) {
	v := m.message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the GmailProvenance entity.
// If the GmailProvenance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GmailProvenanceMutation) OldMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *GmailProvenanceMutation) ResetMessageID() {
	m.message_id = nil
}

// SetAttachmentID sets the "attachment_id" field.
func (m *GmailProvenanceMutation) SetAttachmentID(s string) {
	m.attachment_id = &s
}

// AttachmentID returns the value of the "attachment_id" field in the mutation.
func (m *GmailProvenanceMutation) AttachmentID() (r string, exists bool) {
	v := m.attachment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAttachmentID returns the old "attachment_id" field's value of the GmailProvenance entity.
// If the GmailProvenance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GmailProvenanceMutation) OldAttachmentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttachmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttachmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttachmentID: %w", err)
	}
	return oldValue.AttachmentID, nil
}

// ResetAttachmentID resets all changes to the "attachment_id" field.
func (m *GmailProvenanceMutation) ResetAttachmentID() {
	m.attachment_id = nil
}

// SetSenderEmail sets the "sender_email" field.
func (m *GmailProvenanceMutation) SetSenderEmail(s string) {
	m.sender_email = &s
}

// SenderEmail returns the value of the "sender_email" field in the mutation.
func (m *GmailProvenanceMutation) SenderEmail() (r string, exists bool) {
	v := m.sender_email
	if v == nil {
		return
	}
	return *v, true
}

// OldSenderEmail returns the old "sender_email" field's value of the GmailProvenance entity.
// If the GmailProvenance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GmailProvenanceMutation) OldSenderEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSenderEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSenderEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSenderEmail: %w", err)
	}
	return oldValue.SenderEmail, nil
}

// ResetSenderEmail resets all changes to the "sender_email" field.
func (m *GmailProvenanceMutation) ResetSenderEmail() {
	m.sender_email = nil
}

// SetSenderName sets the "sender_name" field.
func (m *GmailProvenanceMutation) SetSenderName(s string) {
	m.sender_name = &s
}

// SenderName returns the value of the "sender_name" field in the mutation.
func (m *GmailProvenanceMutation) SenderName() (r string, exists bool) {
	v := m.sender_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSenderName returns the old "sender_name" field's value of the GmailProvenance entity.
// If the GmailProvenance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GmailProvenanceMutation) OldSenderName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSenderName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSenderName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSenderName: %w", err)
	}
	return oldValue.SenderName, nil
}

// ClearSenderName clears the value of the "sender_name" field.
func (m *GmailProvenanceMutation) ClearSenderName() {
	m.sender_name = nil
	m.clearedFields[gmailprovenance.FieldSenderName] = struct{}{}
}

// SenderNameCleared returns if the "sender_name" field was cleared in this mutation.
func (m *GmailProvenanceMutation) SenderNameCleared() bool {
	_, ok := m.clearedFields[gmailprovenance.FieldSenderName]
	return ok
}

// ResetSenderName resets all changes to the "sender_name" field.
func (m *GmailProvenanceMutation) ResetSenderName() {
	m.sender_name = nil
	delete(m.clearedFields, gmailprovenance.FieldSenderName)
}

// SetSubject sets the "subject" field.
func (m *GmailProvenanceMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *GmailProvenanceMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the GmailProvenance entity.
// If the GmailProvenance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GmailProvenanceMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ClearSubject clears the value of the "subject" field.
func (m *GmailProvenanceMutation) ClearSubject() {
	m.subject = nil
	m.clearedFields[gmailprovenance.FieldSubject] = struct{}{}
}

// SubjectCleared returns if the "subject" field was cleared in this mutation.
func (m *GmailProvenanceMutation) SubjectCleared() bool {
	_, ok := m.clearedFields[gmailprovenance.FieldSubject]
	return ok
}

// ResetSubject resets all changes to the "subject" field.
func (m *GmailProvenanceMutation) ResetSubject() {
	m.subject = nil
	delete(m.clearedFields, gmailprovenance.FieldSubject)
}

// SetEmailDate sets the "email_date" field.
func (m *GmailProvenanceMutation) SetEmailDate(t time.Time) {
	m.email_date = &t
}

// EmailDate returns the value of the "email_date" field in the mutation.
func (m *GmailProvenanceMutation) EmailDate() (r time.Time, exists bool) {
	v := m.email_date
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailDate returns the old "email_date" field's value of the GmailProvenance entity.
// If the GmailProvenance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GmailProvenanceMutation) OldEmailDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailDate: %w", err)
	}
	return oldValue.EmailDate, nil
}

// ClearEmailDate clears the value of the "email_date" field.
func (m *GmailProvenanceMutation) ClearEmailDate() {
	m.email_date = nil
	m.clearedFields[gmailprovenance.FieldEmailDate] = struct{}{}
}

// EmailDateCleared returns if the "email_date" field was cleared in this mutation.
func (m *GmailProvenanceMutation) EmailDateCleared() bool {
	_, ok := m.clearedFields[gmailprovenance.FieldEmailDate]
	return ok
}

// ResetEmailDate resets all changes to the "email_date" field.
func (m *GmailProvenanceMutation) ResetEmailDate() {
	m.email_date = nil
	delete(m.clearedFields, gmailprovenance.FieldEmailDate)
}

// SetAttachmentSha256 sets the "attachment_sha256" field.
func (m *GmailProvenanceMutation) SetAttachmentSha256(s string) {
	m.attachment_sha256 = &s
}

// AttachmentSha256 returns the value of the "attachment_sha256" field in the mutation.
func (m *GmailProvenanceMutation) AttachmentSha256() (r string, exists bool) {
	v := m.attachment_sha256
	if v == nil {
		return
	}
	return *v, true
}

// OldAttachmentSha256 returns the old "attachment_sha256" field's value of the GmailProvenance entity.
// If the GmailProvenance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GmailProvenanceMutation) OldAttachmentSha256(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttachmentSha256 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttachmentSha256 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttachmentSha256: %w", err)
	}
	return oldValue.AttachmentSha256, nil
}

// ResetAttachmentSha256 resets all changes to the "attachment_sha256" field.
func (m *GmailProvenanceMutation) ResetAttachmentSha256() {
	m.attachment_sha256 = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *GmailProvenanceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GmailProvenanceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GmailProvenance entity.
// If the GmailProvenance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GmailProvenanceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GmailProvenanceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the GmailProvenanceMutation builder.
func (m *GmailProvenanceMutation) Where(ps ...predicate.GmailProvenance) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GmailProvenanceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GmailProvenanceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GmailProvenance, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GmailProvenanceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GmailProvenanceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GmailProvenance).
func (m *GmailProvenanceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GmailProvenanceMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.report_id != nil {
		fields = append(fields, gmailprovenance.FieldReportID)
	}
	if m.user_id != nil {
		fields = append(fields, gmailprovenance.FieldUserID)
	}
	if m.message_id != nil {
		fields = append(fields, gmailprovenance.FieldMessageID)
	}
	if m.attachment_id != nil {
		fields = append(fields, gmailprovenance.FieldAttachmentID)
	}
	if m.sender_email != nil {
		fields = append(fields, gmailprovenance.FieldSenderEmail)
	}
	if m.sender_name != nil {
		fields = append(fields, gmailprovenance.FieldSenderName)
	}
	if m.subject != nil {
		fields = append(fields, gmailprovenance.FieldSubject)
	}
	if m.email_date != nil {
		fields = append(fields, gmailprovenance.FieldEmailDate)
	}
	if m.attachment_sha256 != nil {
		fields = append(fields, gmailprovenance.FieldAttachmentSha256)
	}
	if m.created_at != nil {
		fields = append(fields, gmailprovenance.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GmailProvenanceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case gmailprovenance.FieldReportID:
		return m.ReportID()
	case gmailprovenance.FieldUserID:
		return m.UserID()
	case gmailprovenance.FieldMessageID:
		return m.MessageID()
	case gmailprovenance.FieldAttachmentID:
		return m.AttachmentID()
	case gmailprovenance.FieldSenderEmail:
		return m.SenderEmail()
	case gmailprovenance.FieldSenderName:
		return m.SenderName()
	case gmailprovenance.FieldSubject:
		return m.Subject()
	case gmailprovenance.FieldEmailDate:
		return m.EmailDate()
	case gmailprovenance.FieldAttachmentSha256:
		return m.AttachmentSha256()
	case gmailprovenance.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GmailProvenanceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case gmailprovenance.FieldReportID:
		return m.OldReportID(ctx)
	case gmailprovenance.FieldUserID:
		return m.OldUserID(ctx)
	case gmailprovenance.FieldMessageID:
		return m.OldMessageID(ctx)
	case gmailprovenance.FieldAttachmentID:
		return m.OldAttachmentID(ctx)
	case gmailprovenance.FieldSenderEmail:
		return m.OldSenderEmail(ctx)
	case gmailprovenance.FieldSenderName:
		return m.OldSenderName(ctx)
	case gmailprovenance.FieldSubject:
		return m.OldSubject(ctx)
	case gmailprovenance.FieldEmailDate:
		return m.OldEmailDate(ctx)
	case gmailprovenance.FieldAttachmentSha256:
		return m.OldAttachmentSha256(ctx)
	case gmailprovenance.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GmailProvenance field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GmailProvenanceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case gmailprovenance.FieldReportID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case gmailprovenance.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case gmailprovenance.FieldMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case gmailprovenance.FieldAttachmentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttachmentID(v)
		return nil
	case gmailprovenance.FieldSenderEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSenderEmail(v)
		return nil
	case gmailprovenance.FieldSenderName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSenderName(v)
		return nil
	case gmailprovenance.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case gmailprovenance.FieldEmailDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailDate(v)
		return nil
	case gmailprovenance.FieldAttachmentSha256:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttachmentSha256(v)
		return nil
	case gmailprovenance.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GmailProvenance field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GmailProvenanceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GmailProvenanceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GmailProvenanceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown GmailProvenance numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GmailProvenanceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(gmailprovenance.FieldUserID) {
		fields = append(fields, gmailprovenance.FieldUserID)
	}
	if m.FieldCleared(gmailprovenance.FieldSenderName) {
		fields = append(fields, gmailprovenance.FieldSenderName)
	}
	if m.FieldCleared(gmailprovenance.FieldSubject) {
		fields = append(fields, gmailprovenance.FieldSubject)
	}
	if m.FieldCleared(gmailprovenance.FieldEmailDate) {
		fields = append(fields, gmailprovenance.FieldEmailDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GmailProvenanceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GmailProvenanceMutation) ClearField(name string) error {
	switch name {
	case gmailprovenance.FieldUserID:
		m.ClearUserID()
		return nil
	case gmailprovenance.FieldSenderName:
		m.ClearSenderName()
		return nil
	case gmailprovenance.FieldSubject:
		m.ClearSubject()
		return nil
	case gmailprovenance.FieldEmailDate:
		m.ClearEmailDate()
		return nil
	}
	return fmt.Errorf("unknown GmailProvenance nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GmailProvenanceMutation) ResetField(name string) error {
	switch name {
	case gmailprovenance.FieldReportID:
		m.ResetReportID()
		return nil
	case gmailprovenance.FieldUserID:
		m.ResetUserID()
		return nil
	case gmailprovenance.FieldMessageID:
		m.ResetMessageID()
		return nil
	case gmailprovenance.FieldAttachmentID:
		m.ResetAttachmentID()
		return nil
	case gmailprovenance.FieldSenderEmail:
		m.ResetSenderEmail()
		return nil
	case gmailprovenance.FieldSenderName:
		m.ResetSenderName()
		return nil
	case gmailprovenance.FieldSubject:
		m.ResetSubject()
		return nil
	case gmailprovenance.FieldEmailDate:
		m.ResetEmailDate()
		return nil
	case gmailprovenance.FieldAttachmentSha256:
		m.ResetAttachmentSha256()
		return nil
	case gmailprovenance.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown GmailProvenance field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GmailProvenanceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GmailProvenanceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GmailProvenanceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GmailProvenanceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GmailProvenanceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GmailProvenanceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GmailProvenanceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GmailProvenance unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GmailProvenanceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GmailProvenance edge %s", name)
}

// IdentityMutation represents an operation that mutates the Identity nodes in the graph.
type IdentityMutation struct {
	config
	op            Op
	typ           string
	id            *string
	provider      *string
	subject       *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	user          *string
	cleareduser   bool
	done          bool
	oldValue      func(context.Context) (*Identity, error)
	predicates    []predicate.Identity
}

var _ ent.Mutation = (*IdentityMutation)(nil)

// identityOption allows management of the mutation configuration using functional options.
type identityOption func(*IdentityMutation)

// newIdentityMutation creates new mutation for the Identity entity.
func newIdentityMutation(c config, op Op, opts ...identityOption) *IdentityMutation {
	m := &IdentityMutation{
		config:        c,
		op:            op,
		typ:           TypeIdentity,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIdentityID sets the ID field of the mutation.
func withIdentityID(id string) identityOption {
	return func(m *IdentityMutation) {
		var (
			err   error
			once  sync.Once
			value *Identity
		)
		m.oldValue = func(ctx context.Context) (*Identity, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Identity.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIdentity sets the old Identity of the mutation.
func withIdentity(node *Identity) identityOption {
	return func(m *IdentityMutation) {
		m.oldValue = func(context.Context) (*Identity, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IdentityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IdentityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Identity entities.
func (m *IdentityMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IdentityMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IdentityMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Identity.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *IdentityMutation) SetUserID(s string) {
	m.user = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *IdentityMutation) UserID() (r string, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Identity entity.
// If the Identity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdentityMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *IdentityMutation) ResetUserID() {
	m.user = nil
}

// SetProvider sets the "provider" field.
func (m *IdentityMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *IdentityMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the Identity entity.
// If the Identity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdentityMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *IdentityMutation) ResetProvider() {
	m.provider = nil
}

// SetSubject sets the "subject" field.
func (m *IdentityMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *IdentityMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the Identity entity.
// If the Identity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdentityMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *IdentityMutation) ResetSubject() {
	m.subject = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *IdentityMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IdentityMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Identity entity.
// If the Identity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IdentityMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IdentityMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *IdentityMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[identity.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *IdentityMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *IdentityMutation) UserIDs() (ids []string) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *IdentityMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the IdentityMutation builder.
func (m *IdentityMutation) Where(ps ...predicate.Identity) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IdentityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IdentityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Identity, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IdentityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IdentityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Identity).
func (m *IdentityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IdentityMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.user != nil {
		fields = append(fields, identity.FieldUserID)
	}
	if m.provider != nil {
		fields = append(fields, identity.FieldProvider)
	}
	if m.subject != nil {
		fields = append(fields, identity.FieldSubject)
	}
	if m.created_at != nil {
		fields = append(fields, identity.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IdentityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case identity.FieldUserID:
		return m.UserID()
	case identity.FieldProvider:
		return m.Provider()
	case identity.FieldSubject:
		return m.Subject()
	case identity.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IdentityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case identity.FieldUserID:
		return m.OldUserID(ctx)
	case identity.FieldProvider:
		return m.OldProvider(ctx)
	case identity.FieldSubject:
		return m.OldSubject(ctx)
	case identity.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Identity field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IdentityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case identity.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case identity.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case identity.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case identity.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Identity field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IdentityMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IdentityMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IdentityMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Identity numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IdentityMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IdentityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IdentityMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Identity nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IdentityMutation) ResetField(name string) error {
	switch name {
	case identity.FieldUserID:
		m.ResetUserID()
		return nil
	case identity.FieldProvider:
		m.ResetProvider()
		return nil
	case identity.FieldSubject:
		m.ResetSubject()
		return nil
	case identity.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Identity field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IdentityMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, identity.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IdentityMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case identity.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IdentityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IdentityMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IdentityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, identity.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IdentityMutation) EdgeCleared(name string) bool {
	switch name {
	case identity.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IdentityMutation) ClearEdge(name string) error {
	switch name {
	case identity.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Identity unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IdentityMutation) ResetEdge(name string) error {
	switch name {
	case identity.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown Identity edge %s", name)
}

// LabResultMutation represents an operation that mutates the LabResult nodes in the graph.
type LabResultMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	user_id               *string
	position              *int
	addposition           *int
	parameter_name        *string
	result_text           *string
	numeric_result        *float64
	addnumeric_result     *float64
	unit_raw              *string
	unit_canonical        *string
	ref_lower             *float64
	addref_lower          *float64
	ref_lower_operator    *string
	ref_upper             *float64
	addref_upper          *float64
	ref_upper_operator    *string
	ref_text              *string
	ref_full_text         *string
	out_of_range          *bool
	specimen_type         *string
	mapping_confidence    *float64
	addmapping_confidence *float64
	mapping_source        *string
	mapped_at             *time.Time
	created_at            *time.Time
	clearedFields         map[string]struct{}
	report                *string
	clearedreport         bool
	analyte               *string
	clearedanalyte        bool
	done                  bool
	oldValue              func(context.Context) (*LabResult, error)
	predicates            []predicate.LabResult
}

var _ ent.Mutation = (*LabResultMutation)(nil)

// labresultOption allows management of the mutation configuration using functional options.
type labresultOption func(*LabResultMutation)

// newLabResultMutation creates new mutation for the LabResult entity.
func newLabResultMutation(c config, op Op, opts ...labresultOption) *LabResultMutation {
	m := &LabResultMutation{
		config:        c,
		op:            op,
		typ:           TypeLabResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLabResultID sets the ID field of the mutation.
func withLabResultID(id string) labresultOption {
	return func(m *LabResultMutation) {
		var (
			err   error
			once  sync.Once
			value *LabResult
		)
		m.oldValue = func(ctx context.Context) (*LabResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LabResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLabResult sets the old LabResult of the mutation.
func withLabResult(node *LabResult) labresultOption {
	return func(m *LabResultMutation) {
		m.oldValue = func(context.Context) (*LabResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LabResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LabResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LabResult entities.
func (m *LabResultMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LabResultMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LabResultMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LabResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReportID sets the "report_id" field.
func (m *LabResultMutation) SetReportID(s string) {
	m.report = &s
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *LabResultMutation) ReportID() (r string, exists bool) {
	v := m.report
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldReportID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// ResetReportID resets all changes to the "report_id" field.
func (m *LabResultMutation) ResetReportID() {
	m.report = nil
}

// SetUserID sets the "user_id" field.
func (m *LabResultMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *LabResultMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *LabResultMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[labresult.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *LabResultMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[labresult.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *LabResultMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, labresult.FieldUserID)
}

// SetPosition sets the "position" field.
func (m *LabResultMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *LabResultMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *LabResultMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *LabResultMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *LabResultMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetParameterName sets the "parameter_name" field.
func (m *LabResultMutation) SetParameterName(s string) {
	m.parameter_name = &s
}

// ParameterName returns the value of the "parameter_name" field in the mutation.
func (m *LabResultMutation) ParameterName() (r string, exists bool) {
	v := m.parameter_name
	if v == nil {
		return
	}
	return *v, true
}

// OldParameterName returns the old "parameter_name" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldParameterName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParameterName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParameterName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParameterName: %w", err)
	}
	return oldValue.ParameterName, nil
}

// ResetParameterName resets all changes to the "parameter_name" field.
func (m *LabResultMutation) ResetParameterName() {
	m.parameter_name = nil
}

// SetResultText sets the "result_text" field.
func (m *LabResultMutation) SetResultText(s string) {
	m.result_text = &s
}

// ResultText returns the value of the "result_text" field in the mutation.
func (m *LabResultMutation) ResultText() (r string, exists bool) {
	v := m.result_text
	if v == nil {
		return
	}
	return *v, true
}

// OldResultText returns the old "result_text" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldResultText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultText: %w", err)
	}
	return oldValue.ResultText, nil
}

// ResetResultText resets all changes to the "result_text" field.
func (m *LabResultMutation) ResetResultText() {
	m.result_text = nil
}

// SetNumericResult sets the "numeric_result" field.
func (m *LabResultMutation) SetNumericResult(f float64) {
	m.numeric_result = &f
	m.addnumeric_result = nil
}

// NumericResult returns the value of the "numeric_result" field in the mutation.
func (m *LabResultMutation) NumericResult() (r float64, exists bool) {
	v := m.numeric_result
	if v == nil {
		return
	}
	return *v, true
}

// OldNumericResult returns the old "numeric_result" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldNumericResult(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumericResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumericResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumericResult: %w", err)
	}
	return oldValue.NumericResult, nil
}

// AddNumericResult adds f to the "numeric_result" field.
func (m *LabResultMutation) AddNumericResult(f float64) {
	if m.addnumeric_result != nil {
		*m.addnumeric_result += f
	} else {
		m.addnumeric_result = &f
	}
}

// AddedNumericResult returns the value that was added to the "numeric_result" field in this mutation.
func (m *LabResultMutation) AddedNumericResult() (r float64, exists bool) {
	v := m.addnumeric_result
	if v == nil {
		return
	}
	return *v, true
}

// ClearNumericResult clears the value of the "numeric_result" field.
func (m *LabResultMutation) ClearNumericResult() {
	m.numeric_result = nil
	m.addnumeric_result = nil
	m.clearedFields[labresult.FieldNumericResult] = struct{}{}
}

// NumericResultCleared returns if the "numeric_result" field was cleared in this mutation.
func (m *LabResultMutation) NumericResultCleared() bool {
	_, ok := m.clearedFields[labresult.FieldNumericResult]
	return ok
}

// ResetNumericResult resets all changes to the "numeric_result" field.
func (m *LabResultMutation) ResetNumericResult() {
	m.numeric_result = nil
	m.addnumeric_result = nil
	delete(m.clearedFields, labresult.FieldNumericResult)
}

// SetUnitRaw sets the "unit_raw" field.
func (m *LabResultMutation) SetUnitRaw(s string) {
	m.unit_raw = &s
}

// UnitRaw returns the value of the "unit_raw" field in the mutation.
func (m *LabResultMutation) UnitRaw() (r string, exists bool) {
	v := m.unit_raw
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitRaw returns the old "unit_raw" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldUnitRaw(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitRaw is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitRaw requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitRaw: %w", err)
	}
	return oldValue.UnitRaw, nil
}

// ResetUnitRaw resets all changes to the "unit_raw" field.
func (m *LabResultMutation) ResetUnitRaw() {
	m.unit_raw = nil
}

// SetUnitCanonical sets the "unit_canonical" field.
func (m *LabResultMutation) SetUnitCanonical(s string) {
	m.unit_canonical = &s
}

// UnitCanonical returns the value of the "unit_canonical" field in the mutation.
func (m *LabResultMutation) UnitCanonical() (r string, exists bool) {
	v := m.unit_canonical
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitCanonical returns the old "unit_canonical" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldUnitCanonical(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitCanonical is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitCanonical requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitCanonical: %w", err)
	}
	return oldValue.UnitCanonical, nil
}

// ClearUnitCanonical clears the value of the "unit_canonical" field.
func (m *LabResultMutation) ClearUnitCanonical() {
	m.unit_canonical = nil
	m.clearedFields[labresult.FieldUnitCanonical] = struct{}{}
}

// UnitCanonicalCleared returns if the "unit_canonical" field was cleared in this mutation.
func (m *LabResultMutation) UnitCanonicalCleared() bool {
	_, ok := m.clearedFields[labresult.FieldUnitCanonical]
	return ok
}

// ResetUnitCanonical resets all changes to the "unit_canonical" field.
func (m *LabResultMutation) ResetUnitCanonical() {
	m.unit_canonical = nil
	delete(m.clearedFields, labresult.FieldUnitCanonical)
}

// SetRefLower sets the "ref_lower" field.
func (m *LabResultMutation) SetRefLower(f float64) {
	m.ref_lower = &f
	m.addref_lower = nil
}

// RefLower returns the value of the "ref_lower" field in the mutation.
func (m *LabResultMutation) RefLower() (r float64, exists bool) {
	v := m.ref_lower
	if v == nil {
		return
	}
	return *v, true
}

// OldRefLower returns the old "ref_lower" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldRefLower(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefLower is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefLower requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefLower: %w", err)
	}
	return oldValue.RefLower, nil
}

// AddRefLower adds f to the "ref_lower" field.
func (m *LabResultMutation) AddRefLower(f float64) {
	if m.addref_lower != nil {
		*m.addref_lower += f
	} else {
		m.addref_lower = &f
	}
}

// AddedRefLower returns the value that was added to the "ref_lower" field in this mutation.
func (m *LabResultMutation) AddedRefLower() (r float64, exists bool) {
	v := m.addref_lower
	if v == nil {
		return
	}
	return *v, true
}

// ClearRefLower clears the value of the "ref_lower" field.
func (m *LabResultMutation) ClearRefLower() {
	m.ref_lower = nil
	m.addref_lower = nil
	m.clearedFields[labresult.FieldRefLower] = struct{}{}
}

// RefLowerCleared returns if the "ref_lower" field was cleared in this mutation.
func (m *LabResultMutation) RefLowerCleared() bool {
	_, ok := m.clearedFields[labresult.FieldRefLower]
	return ok
}

// ResetRefLower resets all changes to the "ref_lower" field.
func (m *LabResultMutation) ResetRefLower() {
	m.ref_lower = nil
	m.addref_lower = nil
	delete(m.clearedFields, labresult.FieldRefLower)
}

// SetRefLowerOperator sets the "ref_lower_operator" field.
func (m *LabResultMutation) SetRefLowerOperator(s string) {
	m.ref_lower_operator = &s
}

// RefLowerOperator returns the value of the "ref_lower_operator" field in the mutation.
func (m *LabResultMutation) RefLowerOperator() (r string, exists bool) {
	v := m.ref_lower_operator
	if v == nil {
		return
	}
	return *v, true
}

// OldRefLowerOperator returns the old "ref_lower_operator" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldRefLowerOperator(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefLowerOperator is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefLowerOperator requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefLowerOperator: %w", err)
	}
	return oldValue.RefLowerOperator, nil
}

// ClearRefLowerOperator clears the value of the "ref_lower_operator" field.
func (m *LabResultMutation) ClearRefLowerOperator() {
	m.ref_lower_operator = nil
	m.clearedFields[labresult.FieldRefLowerOperator] = struct{}{}
}

// RefLowerOperatorCleared returns if the "ref_lower_operator" field was cleared in this mutation.
func (m *LabResultMutation) RefLowerOperatorCleared() bool {
	_, ok := m.clearedFields[labresult.FieldRefLowerOperator]
	return ok
}

// ResetRefLowerOperator resets all changes to the "ref_lower_operator" field.
func (m *LabResultMutation) ResetRefLowerOperator() {
	m.ref_lower_operator = nil
	delete(m.clearedFields, labresult.FieldRefLowerOperator)
}

// SetRefUpper sets the "ref_upper" field.
func (m *LabResultMutation) SetRefUpper(f float64) {
	m.ref_upper = &f
	m.addref_upper = nil
}

// RefUpper returns the value of the "ref_upper" field in the mutation.
func (m *LabResultMutation) RefUpper() (r float64, exists bool) {
	v := m.ref_upper
	if v == nil {
		return
	}
	return *v, true
}

// OldRefUpper returns the old "ref_upper" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldRefUpper(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefUpper is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefUpper requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefUpper: %w", err)
	}
	return oldValue.RefUpper, nil
}

// AddRefUpper adds f to the "ref_upper" field.
func (m *LabResultMutation) AddRefUpper(f float64) {
	if m.addref_upper != nil {
		*m.addref_upper += f
	} else {
		m.addref_upper = &f
	}
}

// AddedRefUpper returns the value that was added to the "ref_upper" field in this mutation.
func (m *LabResultMutation) AddedRefUpper() (r float64, exists bool) {
	v := m.addref_upper
	if v == nil {
		return
	}
	return *v, true
}

// ClearRefUpper clears the value of the "ref_upper" field.
func (m *LabResultMutation) ClearRefUpper() {
	m.ref_upper = nil
	m.addref_upper = nil
	m.clearedFields[labresult.FieldRefUpper] = struct{}{}
}

// RefUpperCleared returns if the "ref_upper" field was cleared in this mutation.
func (m *LabResultMutation) RefUpperCleared() bool {
	_, ok := m.clearedFields[labresult.FieldRefUpper]
	return ok
}

// ResetRefUpper resets all changes to the "ref_upper" field.
func (m *LabResultMutation) ResetRefUpper() {
	m.ref_upper = nil
	m.addref_upper = nil
	delete(m.clearedFields, labresult.FieldRefUpper)
}

// SetRefUpperOperator sets the "ref_upper_operator" field.
func (m *LabResultMutation) SetRefUpperOperator(s string) {
	m.ref_upper_operator = &s
}

// RefUpperOperator returns the value of the "ref_upper_operator" field in the mutation.
func (m *LabResultMutation) RefUpperOperator() (r string, exists bool) {
	v := m.ref_upper_operator
	if v == nil {
		return
	}
	return *v, true
}

// OldRefUpperOperator returns the old "ref_upper_operator" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldRefUpperOperator(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefUpperOperator is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefUpperOperator requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefUpperOperator: %w", err)
	}
	return oldValue.RefUpperOperator, nil
}

// ClearRefUpperOperator clears the value of the "ref_upper_operator" field.
func (m *LabResultMutation) ClearRefUpperOperator() {
	m.ref_upper_operator = nil
	m.clearedFields[labresult.FieldRefUpperOperator] = struct{}{}
}

// RefUpperOperatorCleared returns if the "ref_upper_operator" field was cleared in this mutation.
func (m *LabResultMutation) RefUpperOperatorCleared() bool {
	_, ok := m.clearedFields[labresult.FieldRefUpperOperator]
	return ok
}

// ResetRefUpperOperator resets all changes to the "ref_upper_operator" field.
func (m *LabResultMutation) ResetRefUpperOperator() {
	m.ref_upper_operator = nil
	delete(m.clearedFields, labresult.FieldRefUpperOperator)
}

// SetRefText sets the "ref_text" field.
func (m *LabResultMutation) SetRefText(s string) {
	m.ref_text = &s
}

// RefText returns the value of the "ref_text" field in the mutation.
func (m *LabResultMutation) RefText() (r string, exists bool) {
	v := m.ref_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRefText returns the old "ref_text" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldRefText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefText: %w", err)
	}
	return oldValue.RefText, nil
}

// ClearRefText clears the value of the "ref_text" field.
func (m *LabResultMutation) ClearRefText() {
	m.ref_text = nil
	m.clearedFields[labresult.FieldRefText] = struct{}{}
}

// RefTextCleared returns if the "ref_text" field was cleared in this mutation.
func (m *LabResultMutation) RefTextCleared() bool {
	_, ok := m.clearedFields[labresult.FieldRefText]
	return ok
}

// ResetRefText resets all changes to the "ref_text" field.
func (m *LabResultMutation) ResetRefText() {
	m.ref_text = nil
	delete(m.clearedFields, labresult.FieldRefText)
}

// SetRefFullText sets the "ref_full_text" field.
func (m *LabResultMutation) SetRefFullText(s string) {
	m.ref_full_text = &s
}

// RefFullText returns the value of the "ref_full_text" field in the mutation.
func (m *LabResultMutation) RefFullText() (r string, exists bool) {
	v := m.ref_full_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRefFullText returns the old "ref_full_text" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldRefFullText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefFullText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefFullText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefFullText: %w", err)
	}
	return oldValue.RefFullText, nil
}

// ClearRefFullText clears the value of the "ref_full_text" field.
func (m *LabResultMutation) ClearRefFullText() {
	m.ref_full_text = nil
	m.clearedFields[labresult.FieldRefFullText] = struct{}{}
}

// RefFullTextCleared returns if the "ref_full_text" field was cleared in this mutation.
func (m *LabResultMutation) RefFullTextCleared() bool {
	_, ok := m.clearedFields[labresult.FieldRefFullText]
	return ok
}

// ResetRefFullText resets all changes to the "ref_full_text" field.
func (m *LabResultMutation) ResetRefFullText() {
	m.ref_full_text = nil
	delete(m.clearedFields, labresult.FieldRefFullText)
}

// SetOutOfRange sets the "out_of_range" field.
func (m *LabResultMutation) SetOutOfRange(b bool) {
	m.out_of_range = &b
}

// OutOfRange returns the value of the "out_of_range" field in the mutation.
func (m *LabResultMutation) OutOfRange() (r bool, exists bool) {
	v := m.out_of_range
	if v == nil {
		return
	}
	return *v, true
}

// OldOutOfRange returns the old "out_of_range" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldOutOfRange(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutOfRange is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutOfRange requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutOfRange: %w", err)
	}
	return oldValue.OutOfRange, nil
}

// ResetOutOfRange resets all changes to the "out_of_range" field.
func (m *LabResultMutation) ResetOutOfRange() {
	m.out_of_range = nil
}

// SetSpecimenType sets the "specimen_type" field.
func (m *LabResultMutation) SetSpecimenType(s string) {
	m.specimen_type = &s
}

// SpecimenType returns the value of the "specimen_type" field in the mutation.
func (m *LabResultMutation) SpecimenType() (r string, exists bool) {
	v := m.specimen_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecimenType returns the old "specimen_type" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldSpecimenType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecimenType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecimenType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecimenType: %w", err)
	}
	return oldValue.SpecimenType, nil
}

// ClearSpecimenType clears the value of the "specimen_type" field.
func (m *LabResultMutation) ClearSpecimenType() {
	m.specimen_type = nil
	m.clearedFields[labresult.FieldSpecimenType] = struct{}{}
}

// SpecimenTypeCleared returns if the "specimen_type" field was cleared in this mutation.
func (m *LabResultMutation) SpecimenTypeCleared() bool {
	_, ok := m.clearedFields[labresult.FieldSpecimenType]
	return ok
}

// ResetSpecimenType resets all changes to the "specimen_type" field.
func (m *LabResultMutation) ResetSpecimenType() {
	m.specimen_type = nil
	delete(m.clearedFields, labresult.FieldSpecimenType)
}

// SetAnalyteID sets the "analyte_id" field.
func (m *LabResultMutation) SetAnalyteID(s string) {
	m.analyte = &s
}

// AnalyteID returns the value of the "analyte_id" field in the mutation.
func (m *LabResultMutation) AnalyteID() (r string, exists bool) {
	v := m.analyte
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalyteID returns the old "analyte_id" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldAnalyteID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalyteID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalyteID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalyteID: %w", err)
	}
	return oldValue.AnalyteID, nil
}

// ClearAnalyteID clears the value of the "analyte_id" field.
func (m *LabResultMutation) ClearAnalyteID() {
	m.analyte = nil
	m.clearedFields[labresult.FieldAnalyteID] = struct{}{}
}

// AnalyteIDCleared returns if the "analyte_id" field was cleared in this mutation.
func (m *LabResultMutation) AnalyteIDCleared() bool {
	_, ok := m.clearedFields[labresult.FieldAnalyteID]
	return ok
}

// ResetAnalyteID resets all changes to the "analyte_id" field.
func (m *LabResultMutation) ResetAnalyteID() {
	m.analyte = nil
	delete(m.clearedFields, labresult.FieldAnalyteID)
}

// SetMappingConfidence sets the "mapping_confidence" field.
func (m *LabResultMutation) SetMappingConfidence(f float64) {
	m.mapping_confidence = &f
	m.addmapping_confidence = nil
}

// MappingConfidence returns the value of the "mapping_confidence" field in the mutation.
func (m *LabResultMutation) MappingConfidence() (r float64, exists bool) {
	v := m.mapping_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldMappingConfidence returns the old "mapping_confidence" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldMappingConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMappingConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMappingConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMappingConfidence: %w", err)
	}
	return oldValue.MappingConfidence, nil
}

// AddMappingConfidence adds f to the "mapping_confidence" field.
func (m *LabResultMutation) AddMappingConfidence(f float64) {
	if m.addmapping_confidence != nil {
		*m.addmapping_confidence += f
	} else {
		m.addmapping_confidence = &f
	}
}

// AddedMappingConfidence returns the value that was added to the "mapping_confidence" field in this mutation.
func (m *LabResultMutation) AddedMappingConfidence() (r float64, exists bool) {
	v := m.addmapping_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearMappingConfidence clears the value of the "mapping_confidence" field.
func (m *LabResultMutation) ClearMappingConfidence() {
	m.mapping_confidence = nil
	m.addmapping_confidence = nil
	m.clearedFields[labresult.FieldMappingConfidence] = struct{}{}
}

// MappingConfidenceCleared returns if the "mapping_confidence" field was cleared in this mutation.
func (m *LabResultMutation) MappingConfidenceCleared() bool {
	_, ok := m.clearedFields[labresult.FieldMappingConfidence]
	return ok
}

// ResetMappingConfidence resets all changes to the "mapping_confidence" field.
func (m *LabResultMutation) ResetMappingConfidence() {
	m.mapping_confidence = nil
	m.addmapping_confidence = nil
	delete(m.clearedFields, labresult.FieldMappingConfidence)
}

// SetMappingSource sets the "mapping_source" field.
func (m *LabResultMutation) SetMappingSource(s string) {
	m.mapping_source = &s
}

// MappingSource returns the value of the "mapping_source" field in the mutation.
func (m *LabResultMutation) MappingSource() (r string, exists bool) {
	v := m.mapping_source
	if v == nil {
		return
	}
	return *v, true
}

// OldMappingSource returns the old "mapping_source" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldMappingSource(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMappingSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMappingSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMappingSource: %w", err)
	}
	return oldValue.MappingSource, nil
}

// ClearMappingSource clears the value of the "mapping_source" field.
func (m *LabResultMutation) ClearMappingSource() {
	m.mapping_source = nil
	m.clearedFields[labresult.FieldMappingSource] = struct{}{}
}

// MappingSourceCleared returns if the "mapping_source" field was cleared in this mutation.
func (m *LabResultMutation) MappingSourceCleared() bool {
	_, ok := m.clearedFields[labresult.FieldMappingSource]
	return ok
}

// ResetMappingSource resets all changes to the "mapping_source" field.
func (m *LabResultMutation) ResetMappingSource() {
	m.mapping_source = nil
	delete(m.clearedFields, labresult.FieldMappingSource)
}

// SetMappedAt sets the "mapped_at" field.
func (m *LabResultMutation) SetMappedAt(t time.Time) {
	m.mapped_at = &t
}

// MappedAt returns the value of the "mapped_at" field in the mutation.
func (m *LabResultMutation) MappedAt() (r time.Time, exists bool) {
	v := m.mapped_at
	if v == nil {
		return
	}
	return *v, true
}

// OldMappedAt returns the old "mapped_at" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldMappedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMappedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMappedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMappedAt: %w", err)
	}
	return oldValue.MappedAt, nil
}

// ClearMappedAt clears the value of the "mapped_at" field.
func (m *LabResultMutation) ClearMappedAt() {
	m.mapped_at = nil
	m.clearedFields[labresult.FieldMappedAt] = struct{}{}
}

// MappedAtCleared returns if the "mapped_at" field was cleared in this mutation.
func (m *LabResultMutation) MappedAtCleared() bool {
	_, ok := m.clearedFields[labresult.FieldMappedAt]
	return ok
}

// ResetMappedAt resets all changes to the "mapped_at" field.
func (m *LabResultMutation) ResetMappedAt() {
	m.mapped_at = nil
	delete(m.clearedFields, labresult.FieldMappedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *LabResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LabResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LabResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearReport clears the "report" edge to the PatientReport entity.
func (m *LabResultMutation) ClearReport() {
	m.clearedreport = true
	m.clearedFields[labresult.FieldReportID] = struct{}{}
}

// ReportCleared reports if the "report" edge to the PatientReport entity was cleared.
func (m *LabResultMutation) ReportCleared() bool {
	return m.clearedreport
}

// ReportIDs returns the "report" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReportID instead. It exists only for internal usage by the builders.
func (m *LabResultMutation) ReportIDs() (ids []string) {
	if id := m.report; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReport resets all changes to the "report" edge.
func (m *LabResultMutation) ResetReport() {
	m.report = nil
	m.clearedreport = false
}

// ClearAnalyte clears the "analyte" edge to the Analyte entity.
func (m *LabResultMutation) ClearAnalyte() {
	m.clearedanalyte = true
	m.clearedFields[labresult.FieldAnalyteID] = struct{}{}
}

// AnalyteCleared reports if the "analyte" edge to the Analyte entity was cleared.
func (m *LabResultMutation) AnalyteCleared() bool {
	return m.AnalyteIDCleared() || m.clearedanalyte
}

// AnalyteIDs returns the "analyte" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AnalyteID instead. It exists only for internal usage by the builders.
func (m *LabResultMutation) AnalyteIDs() (ids []string) {
	if id := m.analyte; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAnalyte resets all changes to the "analyte" edge.
func (m *LabResultMutation) ResetAnalyte() {
	m.analyte = nil
	m.clearedanalyte = false
}

// Where appends a list predicates to the LabResultMutation builder.
func (m *LabResultMutation) Where(ps ...predicate.LabResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LabResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LabResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LabResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LabResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LabResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LabResult).
func (m *LabResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LabResultMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.report != nil {
		fields = append(fields, labresult.FieldReportID)
	}
	if m.user_id != nil {
		fields = append(fields, labresult.FieldUserID)
	}
	if m.position != nil {
		fields = append(fields, labresult.FieldPosition)
	}
	if m.parameter_name != nil {
		fields = append(fields, labresult.FieldParameterName)
	}
	if m.result_text != nil {
		fields = append(fields, labresult.FieldResultText)
	}
	if m.numeric_result != nil {
		fields = append(fields, labresult.FieldNumericResult)
	}
	if m.unit_raw != nil {
		fields = append(fields, labresult.FieldUnitRaw)
	}
	if m.unit_canonical != nil {
		fields = append(fields, labresult.FieldUnitCanonical)
	}
	if m.ref_lower != nil {
		fields = append(fields, labresult.FieldRefLower)
	}
	if m.ref_lower_operator != nil {
		fields = append(fields, labresult.FieldRefLowerOperator)
	}
	if m.ref_upper != nil {
		fields = append(fields, labresult.FieldRefUpper)
	}
	if m.ref_upper_operator != nil {
		fields = append(fields, labresult.FieldRefUpperOperator)
	}
	if m.ref_text != nil {
		fields = append(fields, labresult.FieldRefText)
	}
	if m.ref_full_text != nil {
		fields = append(fields, labresult.FieldRefFullText)
	}
	if m.out_of_range != nil {
		fields = append(fields, labresult.FieldOutOfRange)
	}
	if m.specimen_type != nil {
		fields = append(fields, labresult.FieldSpecimenType)
	}
	if m.analyte != nil {
		fields = append(fields, labresult.FieldAnalyteID)
	}
	if m.mapping_confidence != nil {
		fields = append(fields, labresult.FieldMappingConfidence)
	}
	if m.mapping_source != nil {
		fields = append(fields, labresult.FieldMappingSource)
	}
	if m.mapped_at != nil {
		fields = append(fields, labresult.FieldMappedAt)
	}
	if m.created_at != nil {
		fields = append(fields, labresult.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LabResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case labresult.FieldReportID:
		return m.ReportID()
	case labresult.FieldUserID:
		return m.UserID()
	case labresult.FieldPosition:
		return m.Position()
	case labresult.FieldParameterName:
		return m.ParameterName()
	case labresult.FieldResultText:
		return m.ResultText()
	case labresult.FieldNumericResult:
		return m.NumericResult()
	case labresult.FieldUnitRaw:
		return m.UnitRaw()
	case labresult.FieldUnitCanonical:
		return m.UnitCanonical()
	case labresult.FieldRefLower:
		return m.RefLower()
	case labresult.FieldRefLowerOperator:
		return m.RefLowerOperator()
	case labresult.FieldRefUpper:
		return m.RefUpper()
	case labresult.FieldRefUpperOperator:
		return m.RefUpperOperator()
	case labresult.FieldRefText:
		return m.RefText()
	case labresult.FieldRefFullText:
		return m.RefFullText()
	case labresult.FieldOutOfRange:
		return m.OutOfRange()
	case labresult.FieldSpecimenType:
		return m.SpecimenType()
	case labresult.FieldAnalyteID:
		return m.AnalyteID()
	case labresult.FieldMappingConfidence:
		return m.MappingConfidence()
	case labresult.FieldMappingSource:
		return m.MappingSource()
	case labresult.FieldMappedAt:
		return m.MappedAt()
	case labresult.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LabResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case labresult.FieldReportID:
		return m.OldReportID(ctx)
	case labresult.FieldUserID:
		return m.OldUserID(ctx)
	case labresult.FieldPosition:
		return m.OldPosition(ctx)
	case labresult.FieldParameterName:
		return m.OldParameterName(ctx)
	case labresult.FieldResultText:
		return m.OldResultText(ctx)
	case labresult.FieldNumericResult:
		return m.OldNumericResult(ctx)
	case labresult.FieldUnitRaw:
		return m.OldUnitRaw(ctx)
	case labresult.FieldUnitCanonical:
		return m.OldUnitCanonical(ctx)
	case labresult.FieldRefLower:
		return m.OldRefLower(ctx)
	case labresult.FieldRefLowerOperator:
		return m.OldRefLowerOperator(ctx)
	case labresult.FieldRefUpper:
		return m.OldRefUpper(ctx)
	case labresult.FieldRefUpperOperator:
		return m.OldRefUpperOperator(ctx)
	case labresult.FieldRefText:
		return m.OldRefText(ctx)
	case labresult.FieldRefFullText:
		return m.OldRefFullText(ctx)
	case labresult.FieldOutOfRange:
		return m.OldOutOfRange(ctx)
	case labresult.FieldSpecimenType:
		return m.OldSpecimenType(ctx)
	case labresult.FieldAnalyteID:
		return m.OldAnalyteID(ctx)
	case labresult.FieldMappingConfidence:
		return m.OldMappingConfidence(ctx)
	case labresult.FieldMappingSource:
		return m.OldMappingSource(ctx)
	case labresult.FieldMappedAt:
		return m.OldMappedAt(ctx)
	case labresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LabResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LabResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case labresult.FieldReportID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case labresult.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case labresult.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case labresult.FieldParameterName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParameterName(v)
		return nil
	case labresult.FieldResultText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultText(v)
		return nil
	case labresult.FieldNumericResult:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumericResult(v)
		return nil
	case labresult.FieldUnitRaw:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitRaw(v)
		return nil
	case labresult.FieldUnitCanonical:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitCanonical(v)
		return nil
	case labresult.FieldRefLower:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefLower(v)
		return nil
	case labresult.FieldRefLowerOperator:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefLowerOperator(v)
		return nil
	case labresult.FieldRefUpper:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefUpper(v)
		return nil
	case labresult.FieldRefUpperOperator:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefUpperOperator(v)
		return nil
	case labresult.FieldRefText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefText(v)
		return nil
	case labresult.FieldRefFullText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefFullText(v)
		return nil
	case labresult.FieldOutOfRange:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutOfRange(v)
		return nil
	case labresult.FieldSpecimenType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecimenType(v)
		return nil
	case labresult.FieldAnalyteID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalyteID(v)
		return nil
	case labresult.FieldMappingConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMappingConfidence(v)
		return nil
	case labresult.FieldMappingSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMappingSource(v)
		return nil
	case labresult.FieldMappedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMappedAt(v)
		return nil
	case labresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LabResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LabResultMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, labresult.FieldPosition)
	}
	if m.addnumeric_result != nil {
		fields = append(fields, labresult.FieldNumericResult)
	}
	if m.addref_lower != nil {
		fields = append(fields, labresult.FieldRefLower)
	}
	if m.addref_upper != nil {
		fields = append(fields, labresult.FieldRefUpper)
	}
	if m.addmapping_confidence != nil {
		fields = append(fields, labresult.FieldMappingConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LabResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case labresult.FieldPosition:
		return m.AddedPosition()
	case labresult.FieldNumericResult:
		return m.AddedNumericResult()
	case labresult.FieldRefLower:
		return m.AddedRefLower()
	case labresult.FieldRefUpper:
		return m.AddedRefUpper()
	case labresult.FieldMappingConfidence:
		return m.AddedMappingConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LabResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case labresult.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	case labresult.FieldNumericResult:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNumericResult(v)
		return nil
	case labresult.FieldRefLower:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRefLower(v)
		return nil
	case labresult.FieldRefUpper:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRefUpper(v)
		return nil
	case labresult.FieldMappingConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMappingConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown LabResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LabResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(labresult.FieldUserID) {
		fields = append(fields, labresult.FieldUserID)
	}
	if m.FieldCleared(labresult.FieldNumericResult) {
		fields = append(fields, labresult.FieldNumericResult)
	}
	if m.FieldCleared(labresult.FieldUnitCanonical) {
		fields = append(fields, labresult.FieldUnitCanonical)
	}
	if m.FieldCleared(labresult.FieldRefLower) {
		fields = append(fields, labresult.FieldRefLower)
	}
	if m.FieldCleared(labresult.FieldRefLowerOperator) {
		fields = append(fields, labresult.FieldRefLowerOperator)
	}
	if m.FieldCleared(labresult.FieldRefUpper) {
		fields = append(fields, labresult.FieldRefUpper)
	}
	if m.FieldCleared(labresult.FieldRefUpperOperator) {
		fields = append(fields, labresult.FieldRefUpperOperator)
	}
	if m.FieldCleared(labresult.FieldRefText) {
		fields = append(fields, labresult.FieldRefText)
	}
	if m.FieldCleared(labresult.FieldRefFullText) {
		fields = append(fields, labresult.FieldRefFullText)
	}
	if m.FieldCleared(labresult.FieldSpecimenType) {
		fields = append(fields, labresult.FieldSpecimenType)
	}
	if m.FieldCleared(labresult.FieldAnalyteID) {
		fields = append(fields, labresult.FieldAnalyteID)
	}
	if m.FieldCleared(labresult.FieldMappingConfidence) {
		fields = append(fields, labresult.FieldMappingConfidence)
	}
	if m.FieldCleared(labresult.FieldMappingSource) {
		fields = append(fields, labresult.FieldMappingSource)
	}
	if m.FieldCleared(labresult.FieldMappedAt) {
		fields = append(fields, labresult.FieldMappedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LabResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LabResultMutation) ClearField(name string) error {
	switch name {
	case labresult.FieldUserID:
		m.ClearUserID()
		return nil
	case labresult.FieldNumericResult:
		m.ClearNumericResult()
		return nil
	case labresult.FieldUnitCanonical:
		m.ClearUnitCanonical()
		return nil
	case labresult.FieldRefLower:
		m.ClearRefLower()
		return nil
	case labresult.FieldRefLowerOperator:
		m.ClearRefLowerOperator()
		return nil
	case labresult.FieldRefUpper:
		m.ClearRefUpper()
		return nil
	case labresult.FieldRefUpperOperator:
		m.ClearRefUpperOperator()
		return nil
	case labresult.FieldRefText:
		m.ClearRefText()
		return nil
	case labresult.FieldRefFullText:
		m.ClearRefFullText()
		return nil
	case labresult.FieldSpecimenType:
		m.ClearSpecimenType()
		return nil
	case labresult.FieldAnalyteID:
		m.ClearAnalyteID()
		return nil
	case labresult.FieldMappingConfidence:
		m.ClearMappingConfidence()
		return nil
	case labresult.FieldMappingSource:
		m.ClearMappingSource()
		return nil
	case labresult.FieldMappedAt:
		m.ClearMappedAt()
		return nil
	}
	return fmt.Errorf("unknown LabResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LabResultMutation) ResetField(name string) error {
	switch name {
	case labresult.FieldReportID:
		m.ResetReportID()
		return nil
	case labresult.FieldUserID:
		m.ResetUserID()
		return nil
	case labresult.FieldPosition:
		m.ResetPosition()
		return nil
	case labresult.FieldParameterName:
		m.ResetParameterName()
		return nil
	case labresult.FieldResultText:
		m.ResetResultText()
		return nil
	case labresult.FieldNumericResult:
		m.ResetNumericResult()
		return nil
	case labresult.FieldUnitRaw:
		m.ResetUnitRaw()
		return nil
	case labresult.FieldUnitCanonical:
		m.ResetUnitCanonical()
		return nil
	case labresult.FieldRefLower:
		m.ResetRefLower()
		return nil
	case labresult.FieldRefLowerOperator:
		m.ResetRefLowerOperator()
		return nil
	case labresult.FieldRefUpper:
		m.ResetRefUpper()
		return nil
	case labresult.FieldRefUpperOperator:
		m.ResetRefUpperOperator()
		return nil
	case labresult.FieldRefText:
		m.ResetRefText()
		return nil
	case labresult.FieldRefFullText:
		m.ResetRefFullText()
		return nil
	case labresult.FieldOutOfRange:
		m.ResetOutOfRange()
		return nil
	case labresult.FieldSpecimenType:
		m.ResetSpecimenType()
		return nil
	case labresult.FieldAnalyteID:
		m.ResetAnalyteID()
		return nil
	case labresult.FieldMappingConfidence:
		m.ResetMappingConfidence()
		return nil
	case labresult.FieldMappingSource:
		m.ResetMappingSource()
		return nil
	case labresult.FieldMappedAt:
		m.ResetMappedAt()
		return nil
	case labresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LabResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LabResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.report != nil {
		edges = append(edges, labresult.EdgeReport)
	}
	if m.analyte != nil {
		edges = append(edges, labresult.EdgeAnalyte)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LabResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case labresult.EdgeReport:
		if id := m.report; id != nil {
			return []ent.Value{*id}
		}
	case labresult.EdgeAnalyte:
		if id := m.analyte; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LabResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LabResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LabResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedreport {
		edges = append(edges, labresult.EdgeReport)
	}
	if m.clearedanalyte {
		edges = append(edges, labresult.EdgeAnalyte)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LabResultMutation) EdgeCleared(name string) bool {
	switch name {
	case labresult.EdgeReport:
		return m.clearedreport
	case labresult.EdgeAnalyte:
		return m.clearedanalyte
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LabResultMutation) ClearEdge(name string) error {
	switch name {
	case labresult.EdgeReport:
		m.ClearReport()
		return nil
	case labresult.EdgeAnalyte:
		m.ClearAnalyte()
		return nil
	}
	return fmt.Errorf("unknown LabResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LabResultMutation) ResetEdge(name string) error {
	switch name {
	case labresult.EdgeReport:
		m.ResetReport()
		return nil
	case labresult.EdgeAnalyte:
		m.ResetAnalyte()
		return nil
	}
	return fmt.Errorf("unknown LabResult edge %s", name)
}

// MatchReviewMutation represents an operation that mutates the MatchReview nodes in the graph.
type MatchReviewMutation struct {
	config
	op               Op
	typ              string
	id               *string
	result_id        *string
	candidates       *[]map[string]interface{}
	appendcandidates []map[string]interface{}
	source           *string
	pending_code     *string
	llm_comment      *string
	status           *matchreview.Status
	resolved_via     *string
	created_at       *time.Time
	resolved_at      *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*MatchReview, error)
	predicates       []predicate.MatchReview
}

var _ ent.Mutation = (*MatchReviewMutation)(nil)

// matchreviewOption allows management of the mutation configuration using functional options.
type matchreviewOption func(*MatchReviewMutation)

// newMatchReviewMutation creates new mutation for the MatchReview entity.
func newMatchReviewMutation(c config, op Op, opts ...matchreviewOption) *MatchReviewMutation {
	m := &MatchReviewMutation{
		config:        c,
		op:            op,
		typ:           TypeMatchReview,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMatchReviewID sets the ID field of the mutation.
func withMatchReviewID(id string) matchreviewOption {
	return func(m *MatchReviewMutation) {
		var (
			err   error
			once  sync.Once
			value *MatchReview
		)
		m.oldValue = func(ctx context.Context) (*MatchReview, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MatchReview.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMatchReview sets the old MatchReview of the mutation.
func withMatchReview(node *MatchReview) matchreviewOption {
	return func(m *MatchReviewMutation) {
		m.oldValue = func(context.Context) (*MatchReview, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MatchReviewMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MatchReviewMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MatchReview entities.
func (m *MatchReviewMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MatchReviewMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MatchReviewMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MatchReview.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetResultID sets the "result_id" field.
func (m *MatchReviewMutation) SetResultID(s string) {
	m.result_id = &s
}

// ResultID returns the value of the "result_id" field in the mutation.
func (m *MatchReviewMutation) ResultID() (r string, exists bool) {
	v := m.result_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResultID returns the old "result_id" field's value of the MatchReview entity.
// If the MatchReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchReviewMutation) OldResultID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultID: %w", err)
	}
	return oldValue.ResultID, nil
}

// ResetResultID resets all changes to the "result_id" field.
func (m *MatchReviewMutation) ResetResultID() {
	m.result_id = nil
}

// SetCandidates sets the "candidates" field.
func (m *MatchReviewMutation) SetCandidates(value []map[string]interface{}) {
	m.candidates = &value
	m.appendcandidates = nil
}

// Candidates returns the value of the "candidates" field in the mutation.
func (m *MatchReviewMutation) Candidates() (r []map[string]interface{}, exists bool) {
	v := m.candidates
	if v == nil {
		return
	}
	return *v, true
}

// OldCandidates returns the old "candidates" field's value of the MatchReview entity.
// If the MatchReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchReviewMutation) OldCandidates(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCandidates is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCandidates requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCandidates: %w", err)
	}
	return oldValue.Candidates, nil
}

// AppendCandidates adds value to the "candidates" field.
func (m *MatchReviewMutation) AppendCandidates(value []map[string]interface{}) {
	m.appendcandidates = append(m.appendcandidates, value...)
}

// AppendedCandidates returns the list of values that were appended to the "candidates" field in this mutation.
func (m *MatchReviewMutation) AppendedCandidates() ([]map[string]interface{}, bool) {
	if len(m.appendcandidates) == 0 {
		return nil, false
	}
	return m.appendcandidates, true
}

// ClearCandidates clears the value of the "candidates" field.
func (m *MatchReviewMutation) ClearCandidates() {
	m.candidates = nil
	m.appendcandidates = nil
	m.clearedFields[matchreview.FieldCandidates] = struct{}{}
}

// CandidatesCleared returns if the "candidates" field was cleared in this mutation.
func (m *MatchReviewMutation) CandidatesCleared() bool {
	_, ok := m.clearedFields[matchreview.FieldCandidates]
	return ok
}

// ResetCandidates resets all changes to the "candidates" field.
func (m *MatchReviewMutation) ResetCandidates() {
	m.candidates = nil
	m.appendcandidates = nil
	delete(m.clearedFields, matchreview.FieldCandidates)
}

// SetSource sets the "source" field.
func (m *MatchReviewMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *MatchReviewMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the MatchReview entity.
// If the MatchReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchReviewMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *MatchReviewMutation) ResetSource() {
	m.source = nil
}

// SetPendingCode sets the "pending_code" field.
func (m *MatchReviewMutation) SetPendingCode(s string) {
	m.pending_code = &s
}

// PendingCode returns the value of the "pending_code" field in the mutation.
func (m *MatchReviewMutation) PendingCode() (r string, exists bool) {
	v := m.pending_code
	if v == nil {
		return
	}
	return *v, true
}

// OldPendingCode returns the old "pending_code" field's value of the MatchReview entity.
// If the MatchReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchReviewMutation) OldPendingCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPendingCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPendingCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPendingCode: %w", err)
	}
	return oldValue.PendingCode, nil
}

// ClearPendingCode clears the value of the "pending_code" field.
func (m *MatchReviewMutation) ClearPendingCode() {
	m.pending_code = nil
	m.clearedFields[matchreview.FieldPendingCode] = struct{}{}
}

// PendingCodeCleared returns if the "pending_code" field was cleared in this mutation.
func (m *MatchReviewMutation) PendingCodeCleared() bool {
	_, ok := m.clearedFields[matchreview.FieldPendingCode]
	return ok
}

// ResetPendingCode resets all changes to the "pending_code" field.
func (m *MatchReviewMutation) ResetPendingCode() {
	m.pending_code = nil
	delete(m.clearedFields, matchreview.FieldPendingCode)
}

// SetLlmComment sets the "llm_comment" field.
func (m *MatchReviewMutation) SetLlmComment(s string) {
	m.llm_comment = &s
}

// LlmComment returns the value of the "llm_comment" field in the mutation.
func (m *MatchReviewMutation) LlmComment() (r string, exists bool) {
	v := m.llm_comment
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmComment returns the old "llm_comment" field's value of the MatchReview entity.
// If the MatchReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchReviewMutation) OldLlmComment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmComment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmComment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmComment: %w", err)
	}
	return oldValue.LlmComment, nil
}

// ClearLlmComment clears the value of the "llm_comment" field.
func (m *MatchReviewMutation) ClearLlmComment() {
	m.llm_comment = nil
	m.clearedFields[matchreview.FieldLlmComment] = struct{}{}
}

// LlmCommentCleared returns if the "llm_comment" field was cleared in this mutation.
func (m *MatchReviewMutation) LlmCommentCleared() bool {
	_, ok := m.clearedFields[matchreview.FieldLlmComment]
	return ok
}

// ResetLlmComment resets all changes to the "llm_comment" field.
func (m *MatchReviewMutation) ResetLlmComment() {
	m.llm_comment = nil
	delete(m.clearedFields, matchreview.FieldLlmComment)
}

// SetStatus sets the "status" field.
func (m *MatchReviewMutation) SetStatus(value matchreview.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *MatchReviewMutation) Status() (r matchreview.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the MatchReview entity.
// If the MatchReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchReviewMutation) OldStatus(ctx context.Context) (v matchreview.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *MatchReviewMutation) ResetStatus() {
	m.status = nil
}

// SetResolvedVia sets the "resolved_via" field.
func (m *MatchReviewMutation) SetResolvedVia(s string) {
	m.resolved_via = &s
}

// ResolvedVia returns the value of the "resolved_via" field in the mutation.
func (m *MatchReviewMutation) ResolvedVia() (r string, exists bool) {
	v := m.resolved_via
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedVia returns the old "resolved_via" field's value of the MatchReview entity.
// If the MatchReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchReviewMutation) OldResolvedVia(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedVia is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedVia requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedVia: %w", err)
	}
	return oldValue.ResolvedVia, nil
}

// ClearResolvedVia clears the value of the "resolved_via" field.
func (m *MatchReviewMutation) ClearResolvedVia() {
	m.resolved_via = nil
	m.clearedFields[matchreview.FieldResolvedVia] = struct{}{}
}

// ResolvedViaCleared returns if the "resolved_via" field was cleared in this mutation.
func (m *MatchReviewMutation) ResolvedViaCleared() bool {
	_, ok := m.clearedFields[matchreview.FieldResolvedVia]
	return ok
}

// ResetResolvedVia resets all changes to the "resolved_via" field.
func (m *MatchReviewMutation) ResetResolvedVia() {
	m.resolved_via = nil
	delete(m.clearedFields, matchreview.FieldResolvedVia)
}

// SetCreatedAt sets the "created_at" field.
func (m *MatchReviewMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MatchReviewMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MatchReview entity.
// If the MatchReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchReviewMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MatchReviewMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetResolvedAt sets the "resolved_at" field.
func (m *MatchReviewMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *MatchReviewMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the MatchReview entity.
// If the MatchReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchReviewMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *MatchReviewMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[matchreview.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *MatchReviewMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[matchreview.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *MatchReviewMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, matchreview.FieldResolvedAt)
}

// Where appends a list predicates to the MatchReviewMutation builder.
func (m *MatchReviewMutation) Where(ps ...predicate.MatchReview) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MatchReviewMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MatchReviewMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MatchReview, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MatchReviewMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MatchReviewMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MatchReview).
func (m *MatchReviewMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MatchReviewMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.result_id != nil {
		fields = append(fields, matchreview.FieldResultID)
	}
	if m.candidates != nil {
		fields = append(fields, matchreview.FieldCandidates)
	}
	if m.source != nil {
		fields = append(fields, matchreview.FieldSource)
	}
	if m.pending_code != nil {
		fields = append(fields, matchreview.FieldPendingCode)
	}
	if m.llm_comment != nil {
		fields = append(fields, matchreview.FieldLlmComment)
	}
	if m.status != nil {
		fields = append(fields, matchreview.FieldStatus)
	}
	if m.resolved_via != nil {
		fields = append(fields, matchreview.FieldResolvedVia)
	}
	if m.created_at != nil {
		fields = append(fields, matchreview.FieldCreatedAt)
	}
	if m.resolved_at != nil {
		fields = append(fields, matchreview.FieldResolvedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MatchReviewMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case matchreview.FieldResultID:
		return m.ResultID()
	case matchreview.FieldCandidates:
		return m.Candidates()
	case matchreview.FieldSource:
		return m.Source()
	case matchreview.FieldPendingCode:
		return m.PendingCode()
	case matchreview.FieldLlmComment:
		return m.LlmComment()
	case matchreview.FieldStatus:
		return m.Status()
	case matchreview.FieldResolvedVia:
		return m.ResolvedVia()
	case matchreview.FieldCreatedAt:
		return m.CreatedAt()
	case matchreview.FieldResolvedAt:
		return m.ResolvedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MatchReviewMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case matchreview.FieldResultID:
		return m.OldResultID(ctx)
	case matchreview.FieldCandidates:
		return m.OldCandidates(ctx)
	case matchreview.FieldSource:
		return m.OldSource(ctx)
	case matchreview.FieldPendingCode:
		return m.OldPendingCode(ctx)
	case matchreview.FieldLlmComment:
		return m.OldLlmComment(ctx)
	case matchreview.FieldStatus:
		return m.OldStatus(ctx)
	case matchreview.FieldResolvedVia:
		return m.OldResolvedVia(ctx)
	case matchreview.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case matchreview.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MatchReview field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MatchReviewMutation) SetField(name string, value ent.Value) error {
	switch name {
	case matchreview.FieldResultID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultID(v)
		return nil
	case matchreview.FieldCandidates:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCandidates(v)
		return nil
	case matchreview.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case matchreview.FieldPendingCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPendingCode(v)
		return nil
	case matchreview.FieldLlmComment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmComment(v)
		return nil
	case matchreview.FieldStatus:
		v, ok := value.(matchreview.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case matchreview.FieldResolvedVia:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedVia(v)
		return nil
	case matchreview.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case matchreview.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MatchReview field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MatchReviewMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MatchReviewMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MatchReviewMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MatchReview numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MatchReviewMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(matchreview.FieldCandidates) {
		fields = append(fields, matchreview.FieldCandidates)
	}
	if m.FieldCleared(matchreview.FieldPendingCode) {
		fields = append(fields, matchreview.FieldPendingCode)
	}
	if m.FieldCleared(matchreview.FieldLlmComment) {
		fields = append(fields, matchreview.FieldLlmComment)
	}
	if m.FieldCleared(matchreview.FieldResolvedVia) {
		fields = append(fields, matchreview.FieldResolvedVia)
	}
	if m.FieldCleared(matchreview.FieldResolvedAt) {
		fields = append(fields, matchreview.FieldResolvedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MatchReviewMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MatchReviewMutation) ClearField(name string) error {
	switch name {
	case matchreview.FieldCandidates:
		m.ClearCandidates()
		return nil
	case matchreview.FieldPendingCode:
		m.ClearPendingCode()
		return nil
	case matchreview.FieldLlmComment:
		m.ClearLlmComment()
		return nil
	case matchreview.FieldResolvedVia:
		m.ClearResolvedVia()
		return nil
	case matchreview.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown MatchReview nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MatchReviewMutation) ResetField(name string) error {
	switch name {
	case matchreview.FieldResultID:
		m.ResetResultID()
		return nil
	case matchreview.FieldCandidates:
		m.ResetCandidates()
		return nil
	case matchreview.FieldSource:
		m.ResetSource()
		return nil
	case matchreview.FieldPendingCode:
		m.ResetPendingCode()
		return nil
	case matchreview.FieldLlmComment:
		m.ResetLlmComment()
		return nil
	case matchreview.FieldStatus:
		m.ResetStatus()
		return nil
	case matchreview.FieldResolvedVia:
		m.ResetResolvedVia()
		return nil
	case matchreview.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case matchreview.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown MatchReview field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MatchReviewMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MatchReviewMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MatchReviewMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MatchReviewMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MatchReviewMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MatchReviewMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MatchReviewMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MatchReview unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MatchReviewMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MatchReview edge %s", name)
}

// PatientMutation represents an operation that mutates the Patient nodes in the graph.
type PatientMutation struct {
	config
	op              Op
	typ             string
	id              *string
	display_name    *string
	name_normalized *string
	date_of_birth   *time.Time
	gender          *string
	last_report_at  *time.Time
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	user            *string
	cleareduser     bool
	reports         map[string]struct{}
	removedreports  map[string]struct{}
	clearedreports  bool
	done            bool
	oldValue        func(context.Context) (*Patient, error)
	predicates      []predicate.Patient
}

var _ ent.Mutation = (*PatientMutation)(nil)

// patientOption allows management of the mutation configuration using functional options.
type patientOption func(*PatientMutation)

// newPatientMutation creates new mutation for the Patient entity.
func newPatientMutation(c config, op Op, opts ...patientOption) *PatientMutation {
	m := &PatientMutation{
		config:        c,
		op:            op,
		typ:           TypePatient,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPatientID sets the ID field of the mutation.
func withPatientID(id string) patientOption {
	return func(m *PatientMutation) {
		var (
			err   error
			once  sync.Once
			value *Patient
		)
		m.oldValue = func(ctx context.Context) (*Patient, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Patient.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPatient sets the old Patient of the mutation.
func withPatient(node *Patient) patientOption {
	return func(m *PatientMutation) {
		m.oldValue = func(context.Context) (*Patient, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PatientMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PatientMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Patient entities.
func (m *PatientMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PatientMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PatientMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Patient.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *PatientMutation) SetUserID(s string) {
	m.user = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PatientMutation) UserID() (r string, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *PatientMutation) ClearUserID() {
	m.user = nil
	m.clearedFields[patient.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *PatientMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[patient.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PatientMutation) ResetUserID() {
	m.user = nil
	delete(m.clearedFields, patient.FieldUserID)
}

// SetDisplayName sets the "display_name" field.
func (m *PatientMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *PatientMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *PatientMutation) ResetDisplayName() {
	m.display_name = nil
}

// SetNameNormalized sets the "name_normalized" field.
func (m *PatientMutation) SetNameNormalized(s string) {
	m.name_normalized = &s
}

// NameNormalized returns the value of the "name_normalized" field in the mutation.
func (m *PatientMutation) NameNormalized() (r string, exists bool) {
	v := m.name_normalized
	if v == nil {
		return
	}
	return *v, true
}

// OldNameNormalized returns the old "name_normalized" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldNameNormalized(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNameNormalized is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNameNormalized requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNameNormalized: %w", err)
	}
	return oldValue.NameNormalized, nil
}

// ResetNameNormalized resets all changes to the "name_normalized" field.
func (m *PatientMutation) ResetNameNormalized() {
	m.name_normalized = nil
}

// SetDateOfBirth sets the "date_of_birth" field.
func (m *PatientMutation) SetDateOfBirth(t time.Time) {
	m.date_of_birth = &t
}

// DateOfBirth returns the value of the "date_of_birth" field in the mutation.
func (m *PatientMutation) DateOfBirth() (r time.Time, exists bool) {
	v := m.date_of_birth
	if v == nil {
		return
	}
	return *v, true
}

// OldDateOfBirth returns the old "date_of_birth" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldDateOfBirth(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateOfBirth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateOfBirth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateOfBirth: %w", err)
	}
	return oldValue.DateOfBirth, nil
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (m *PatientMutation) ClearDateOfBirth() {
	m.date_of_birth = nil
	m.clearedFields[patient.FieldDateOfBirth] = struct{}{}
}

// DateOfBirthCleared returns if the "date_of_birth" field was cleared in this mutation.
func (m *PatientMutation) DateOfBirthCleared() bool {
	_, ok := m.clearedFields[patient.FieldDateOfBirth]
	return ok
}

// ResetDateOfBirth resets all changes to the "date_of_birth" field.
func (m *PatientMutation) ResetDateOfBirth() {
	m.date_of_birth = nil
	delete(m.clearedFields, patient.FieldDateOfBirth)
}

// SetGender sets the "gender" field.
func (m *PatientMutation) SetGender(s string) {
	m.gender = &s
}

// Gender returns the value of the "gender" field in the mutation.
func (m *PatientMutation) Gender() (r string, exists bool) {
	v := m.gender
	if v == nil {
		return
	}
	return *v, true
}

// OldGender returns the old "gender" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldGender(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGender is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGender requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGender: %w", err)
	}
	return oldValue.Gender, nil
}

// ClearGender clears the value of the "gender" field.
func (m *PatientMutation) ClearGender() {
	m.gender = nil
	m.clearedFields[patient.FieldGender] = struct{}{}
}

// GenderCleared returns if the "gender" field was cleared in this mutation.
func (m *PatientMutation) GenderCleared() bool {
	_, ok := m.clearedFields[patient.FieldGender]
	return ok
}

// ResetGender resets all changes to the "gender" field.
func (m *PatientMutation) ResetGender() {
	m.gender = nil
	delete(m.clearedFields, patient.FieldGender)
}

// SetLastReportAt sets the "last_report_at" field.
func (m *PatientMutation) SetLastReportAt(t time.Time) {
	m.last_report_at = &t
}

// LastReportAt returns the value of the "last_report_at" field in the mutation.
func (m *PatientMutation) LastReportAt() (r time.Time, exists bool) {
	v := m.last_report_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastReportAt returns the old "last_report_at" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldLastReportAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastReportAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastReportAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastReportAt: %w", err)
	}
	return oldValue.LastReportAt, nil
}

// ClearLastReportAt clears the value of the "last_report_at" field.
func (m *PatientMutation) ClearLastReportAt() {
	m.last_report_at = nil
	m.clearedFields[patient.FieldLastReportAt] = struct{}{}
}

// LastReportAtCleared returns if the "last_report_at" field was cleared in this mutation.
func (m *PatientMutation) LastReportAtCleared() bool {
	_, ok := m.clearedFields[patient.FieldLastReportAt]
	return ok
}

// ResetLastReportAt resets all changes to the "last_report_at" field.
func (m *PatientMutation) ResetLastReportAt() {
	m.last_report_at = nil
	delete(m.clearedFields, patient.FieldLastReportAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *PatientMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PatientMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PatientMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PatientMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PatientMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PatientMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *PatientMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[patient.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *PatientMutation) UserCleared() bool {
	return m.UserIDCleared() || m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *PatientMutation) UserIDs() (ids []string) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *PatientMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// AddReportIDs adds the "reports" edge to the PatientReport entity by ids.
func (m *PatientMutation) AddReportIDs(ids ...string) {
	if m.reports == nil {
		m.reports = make(map[string]struct{})
	}
	for i := range ids {
		m.reports[ids[i]] = struct{}{}
	}
}

// ClearReports clears the "reports" edge to the PatientReport entity.
func (m *PatientMutation) ClearReports() {
	m.clearedreports = true
}

// ReportsCleared reports if the "reports" edge to the PatientReport entity was cleared.
func (m *PatientMutation) ReportsCleared() bool {
	return m.clearedreports
}

// RemoveReportIDs removes the "reports" edge to the PatientReport entity by IDs.
func (m *PatientMutation) RemoveReportIDs(ids ...string) {
	if m.removedreports == nil {
		m.removedreports = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.reports, ids[i])
		m.removedreports[ids[i]] = struct{}{}
	}
}

// RemovedReports returns the removed IDs of the "reports" edge to the PatientReport entity.
func (m *PatientMutation) RemovedReportsIDs() (ids []string) {
	for id := range m.removedreports {
		ids = append(ids, id)
	}
	return
}

// ReportsIDs returns the "reports" edge IDs in the mutation.
func (m *PatientMutation) ReportsIDs() (ids []string) {
	for id := range m.reports {
		ids = append(ids, id)
	}
	return
}

// ResetReports resets all changes to the "reports" edge.
func (m *PatientMutation) ResetReports() {
	m.reports = nil
	m.clearedreports = false
	m.removedreports = nil
}

// Where appends a list predicates to the PatientMutation builder.
func (m *PatientMutation) Where(ps ...predicate.Patient) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PatientMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PatientMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Patient, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PatientMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PatientMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Patient).
func (m *PatientMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PatientMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user != nil {
		fields = append(fields, patient.FieldUserID)
	}
	if m.display_name != nil {
		fields = append(fields, patient.FieldDisplayName)
	}
	if m.name_normalized != nil {
		fields = append(fields, patient.FieldNameNormalized)
	}
	if m.date_of_birth != nil {
		fields = append(fields, patient.FieldDateOfBirth)
	}
	if m.gender != nil {
		fields = append(fields, patient.FieldGender)
	}
	if m.last_report_at != nil {
		fields = append(fields, patient.FieldLastReportAt)
	}
	if m.created_at != nil {
		fields = append(fields, patient.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, patient.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PatientMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case patient.FieldUserID:
		return m.UserID()
	case patient.FieldDisplayName:
		return m.DisplayName()
	case patient.FieldNameNormalized:
		return m.NameNormalized()
	case patient.FieldDateOfBirth:
		return m.DateOfBirth()
	case patient.FieldGender:
		return m.Gender()
	case patient.FieldLastReportAt:
		return m.LastReportAt()
	case patient.FieldCreatedAt:
		return m.CreatedAt()
	case patient.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PatientMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case patient.FieldUserID:
		return m.OldUserID(ctx)
	case patient.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case patient.FieldNameNormalized:
		return m.OldNameNormalized(ctx)
	case patient.FieldDateOfBirth:
		return m.OldDateOfBirth(ctx)
	case patient.FieldGender:
		return m.OldGender(ctx)
	case patient.FieldLastReportAt:
		return m.OldLastReportAt(ctx)
	case patient.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case patient.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Patient field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientMutation) SetField(name string, value ent.Value) error {
	switch name {
	case patient.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case patient.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case patient.FieldNameNormalized:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNameNormalized(v)
		return nil
	case patient.FieldDateOfBirth:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateOfBirth(v)
		return nil
	case patient.FieldGender:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGender(v)
		return nil
	case patient.FieldLastReportAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastReportAt(v)
		return nil
	case patient.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case patient.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Patient field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PatientMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PatientMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Patient numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PatientMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(patient.FieldUserID) {
		fields = append(fields, patient.FieldUserID)
	}
	if m.FieldCleared(patient.FieldDateOfBirth) {
		fields = append(fields, patient.FieldDateOfBirth)
	}
	if m.FieldCleared(patient.FieldGender) {
		fields = append(fields, patient.FieldGender)
	}
	if m.FieldCleared(patient.FieldLastReportAt) {
		fields = append(fields, patient.FieldLastReportAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PatientMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PatientMutation) ClearField(name string) error {
	switch name {
	case patient.FieldUserID:
		m.ClearUserID()
		return nil
	case patient.FieldDateOfBirth:
		m.ClearDateOfBirth()
		return nil
	case patient.FieldGender:
		m.ClearGender()
		return nil
	case patient.FieldLastReportAt:
		m.ClearLastReportAt()
		return nil
	}
	return fmt.Errorf("unknown Patient nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PatientMutation) ResetField(name string) error {
	switch name {
	case patient.FieldUserID:
		m.ResetUserID()
		return nil
	case patient.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case patient.FieldNameNormalized:
		m.ResetNameNormalized()
		return nil
	case patient.FieldDateOfBirth:
		m.ResetDateOfBirth()
		return nil
	case patient.FieldGender:
		m.ResetGender()
		return nil
	case patient.FieldLastReportAt:
		m.ResetLastReportAt()
		return nil
	case patient.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case patient.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Patient field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PatientMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.user != nil {
		edges = append(edges, patient.EdgeUser)
	}
	if m.reports != nil {
		edges = append(edges, patient.EdgeReports)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PatientMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case patient.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case patient.EdgeReports:
		ids := make([]ent.Value, 0, len(m.reports))
		for id := range m.reports {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PatientMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedreports != nil {
		edges = append(edges, patient.EdgeReports)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PatientMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case patient.EdgeReports:
		ids := make([]ent.Value, 0, len(m.removedreports))
		for id := range m.removedreports {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PatientMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareduser {
		edges = append(edges, patient.EdgeUser)
	}
	if m.clearedreports {
		edges = append(edges, patient.EdgeReports)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PatientMutation) EdgeCleared(name string) bool {
	switch name {
	case patient.EdgeUser:
		return m.cleareduser
	case patient.EdgeReports:
		return m.clearedreports
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PatientMutation) ClearEdge(name string) error {
	switch name {
	case patient.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Patient unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PatientMutation) ResetEdge(name string) error {
	switch name {
	case patient.EdgeUser:
		m.ResetUser()
		return nil
	case patient.EdgeReports:
		m.ResetReports()
		return nil
	}
	return fmt.Errorf("unknown Patient edge %s", name)
}

// PatientReportMutation represents an operation that mutates the PatientReport nodes in the graph.
type PatientReportMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	user_id            *string
	source_filename    *string
	mime_type          *string
	checksum           *string
	parser_version     *string
	status             *patientreport.Status
	recognized_at      *time.Time
	processed_at       *time.Time
	test_date          *time.Time
	patient_name       *string
	patient_gender     *string
	patient_dob        *time.Time
	patient_age        *int
	addpatient_age     *int
	raw_model_output   *string
	missing_data       *[]string
	appendmissing_data []string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	patient            *string
	clearedpatient     bool
	results            map[string]struct{}
	removedresults     map[string]struct{}
	clearedresults     bool
	done               bool
	oldValue           func(context.Context) (*PatientReport, error)
	predicates         []predicate.PatientReport
}

var _ ent.Mutation = (*PatientReportMutation)(nil)

// patientreportOption allows management of the mutation configuration using functional options.
type patientreportOption func(*PatientReportMutation)

// newPatientReportMutation creates new mutation for the PatientReport entity.
func newPatientReportMutation(c config, op Op, opts ...patientreportOption) *PatientReportMutation {
	m := &PatientReportMutation{
		config:        c,
		op:            op,
		typ:           TypePatientReport,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPatientReportID sets the ID field of the mutation.
func withPatientReportID(id string) patientreportOption {
	return func(m *PatientReportMutation) {
		var (
			err   error
			once  sync.Once
			value *PatientReport
		)
		m.oldValue = func(ctx context.Context) (*PatientReport, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PatientReport.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPatientReport sets the old PatientReport of the mutation.
func withPatientReport(node *PatientReport) patientreportOption {
	return func(m *PatientReportMutation) {
		m.oldValue = func(context.Context) (*PatientReport, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PatientReportMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PatientReportMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PatientReport entities.
func (m *PatientReportMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PatientReportMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PatientReportMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PatientReport.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPatientID sets the "patient_id" field.
func (m *PatientReportMutation) SetPatientID(s string) {
	m.patient = &s
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *PatientReportMutation) PatientID() (r string, exists bool) {
	v := m.patient
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the PatientReport entity.
// If the PatientReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientReportMutation) OldPatientID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *PatientReportMutation) ResetPatientID() {
	m.patient = nil
}

// SetUserID sets the "user_id" field.
func (m *PatientReportMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PatientReportMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the PatientReport entity.
// If the PatientReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientReportMutation) OldUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *PatientReportMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[patientreport.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *PatientReportMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[patientreport.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PatientReportMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, patientreport.FieldUserID)
}

// SetSourceFilename sets the "source_filename" field.
func (m *PatientReportMutation) SetSourceFilename(s string) {
	m.source_filename = &s
}

// SourceFilename returns the value of the "source_filename" field in the mutation.
func (m *PatientReportMutation) SourceFilename() (r string, exists bool) {
	v := m.source_filename
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceFilename returns the old "source_filename" field's value of the PatientReport entity.
// If the PatientReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientReportMutation) OldSourceFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceFilename: %w", err)
	}
	return oldValue.SourceFilename, nil
}

// ResetSourceFilename resets all changes to the "source_filename" field.
func (m *PatientReportMutation) ResetSourceFilename() {
	m.source_filename = nil
}

// SetMimeType sets the "mime_type" field.
func (m *PatientReportMutation) SetMimeType(s string) {
	m.mime_type = &s
}

// MimeType returns the value of the "mime_type" field in the mutation.
func (m *PatientReportMutation) MimeType() (r string, exists bool) {
	v := m.mime_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMimeType returns the old "mime_type" field's value of the PatientReport entity.
// If the PatientReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientReportMutation) OldMimeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimeType: %w", err)
	}
	return oldValue.MimeType, nil
}

// ResetMimeType resets all changes to the "mime_type" field.
func (m *PatientReportMutation) ResetMimeType() {
	m.mime_type = nil
}

// SetChecksum sets the "checksum" field.
func (m *PatientReportMutation) SetChecksum(s string) {
	m.checksum = &s
}

// Checksum returns the value of the "checksum" field in the mutation.
func (m *PatientReportMutation) Checksum() (r string, exists bool) {
	v := m.checksum
	if v == nil {
		return
	}
	return *v, true
}

// OldChecksum returns the old "checksum" field's value of the PatientReport entity.
// If the PatientReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientReportMutation) OldChecksum(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChecksum is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChecksum requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChecksum: %w", err)
	}
	return oldValue.Checksum, nil
}

// ResetChecksum resets all changes to the "checksum" field.
func (m *PatientReportMutation) ResetChecksum() {
	m.checksum = nil
}

// SetParserVersion sets the "parser_version" field.
func (m *PatientReportMutation) SetParserVersion(s string) {
	m.parser_version = &s
}

// ParserVersion returns the value of the "parser_version" field in the mutation.
func (m *PatientReportMutation) ParserVersion() (r string, exists bool) {
	v := m.parser_version
	if v == nil {
		return
	}
	return *v, true
}

// OldParserVersion returns the old "parser_version" field's value of the PatientReport entity.
// If the PatientReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientReportMutation) OldParserVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParserVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParserVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParserVersion: %w", err)
	}
	return oldValue.ParserVersion, nil
}

// ResetParserVersion resets all changes to the "parser_version" field.
func (m *PatientReportMutation) ResetParserVersion() {
	m.parser_version = nil
}

// SetStatus sets the "status" field.
func (m *PatientReportMutation) SetStatus(pa patientreport.Status) {
	m.status = &pa
}

// Status returns the value of the "status" field in the mutation.
func (m *PatientReportMutation) Status() (r patientreport.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PatientReport entity.
// If the PatientReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientReportMutation) OldStatus(ctx context.Context) (v patientreport.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PatientReportMutation) ResetStatus() {
	m.status = nil
}

// SetRecognizedAt sets the "recognized_at" field.
func (m *PatientReportMutation) SetRecognizedAt(t time.Time) {
	m.recognized_at = &t
}

// RecognizedAt returns the value of the "recognized_at" field in the mutation.
func (m *PatientReportMutation) RecognizedAt() (r time.Time, exists bool) {
	v := m.recognized_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRecognizedAt returns the old "recognized_at" field's value of the PatientReport entity.
// If the PatientReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientReportMutation) OldRecognizedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecognizedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecognizedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecognizedAt: %w", err)
	}
	return oldValue.RecognizedAt, nil
}

// ClearRecognizedAt clears the value of the "recognized_at" field.
func (m *PatientReportMutation) ClearRecognizedAt() {
	m.recognized_at = nil
	m.clearedFields[patientreport.FieldRecognizedAt] = struct{}{}
}

// RecognizedAtCleared returns if the "recognized_at" field was cleared in this mutation.
func (m *PatientReportMutation) RecognizedAtCleared() bool {
	_, ok := m.clearedFields[patientreport.FieldRecognizedAt]
	return ok
}

// ResetRecognizedAt resets all changes to the "recognized_at" field.
func (m *PatientReportMutation) ResetRecognizedAt() {
	m.recognized_at = nil
	delete(m.clearedFields, patientreport.FieldRecognizedAt)
}

// SetProcessedAt sets the "processed_at" field.
func (m *PatientReportMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *PatientReportMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the PatientReport entity.
// If the PatientReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientReportMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *PatientReportMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[patientreport.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *PatientReportMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[patientreport.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *PatientReportMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, patientreport.FieldProcessedAt)
}

// SetTestDate sets the "test_date" field.
func (m *PatientReportMutation) SetTestDate(t time.Time) {
	m.test_date = &t
}

// TestDate returns the value of the "test_date" field in the mutation.
func (m *PatientReportMutation) TestDate() (r time.Time, exists bool) {
	v := m.test_date
	if v == nil {
		return
	}
	return *v, true
}

// OldTestDate returns the old "test_date" field's value of the PatientReport entity.
// If the PatientReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientReportMutation) OldTestDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestDate: %w", err)
	}
	return oldValue.TestDate, nil
}

// ClearTestDate clears the value of the "test_date" field.
func (m *PatientReportMutation) ClearTestDate() {
	m.test_date = nil
	m.clearedFields[patientreport.FieldTestDate] = struct{}{}
}

// TestDateCleared returns if the "test_date" field was cleared in this mutation.
func (m *PatientReportMutation) TestDateCleared() bool {
	_, ok := m.clearedFields[patientreport.FieldTestDate]
	return ok
}

// ResetTestDate resets all changes to the "test_date" field.
func (m *PatientReportMutation) ResetTestDate() {
	m.test_date = nil
	delete(m.clearedFields, patientreport.FieldTestDate)
}

// SetPatientName sets the "patient_name" field.
func (m *PatientReportMutation) SetPatientName(s string) {
	m.patient_name = &s
}

// PatientName returns the value of the "patient_name" field in the mutation.
func (m *PatientReportMutation) PatientName() (r string, exists bool) {
	v := m.patient_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientName returns the old "patient_name" field's value of the PatientReport entity.
// If the PatientReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientReportMutation) OldPatientName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientName: %w", err)
	}
	return oldValue.PatientName, nil
}

// ClearPatientName clears the value of the "patient_name" field.
func (m *PatientReportMutation) ClearPatientName() {
	m.patient_name = nil
	m.clearedFields[patientreport.FieldPatientName] = struct{}{}
}

// PatientNameCleared returns if the "patient_name" field was cleared in this mutation.
func (m *PatientReportMutation) PatientNameCleared() bool {
	_, ok := m.clearedFields[patientreport.FieldPatientName]
	return ok
}

// ResetPatientName resets all changes to the "patient_name" field.
func (m *PatientReportMutation) ResetPatientName() {
	m.patient_name = nil
	delete(m.clearedFields, patientreport.FieldPatientName)
}

// SetPatientGender sets the "patient_gender" field.
func (m *PatientReportMutation) SetPatientGender(s string) {
	m.patient_gender = &s
}

// PatientGender returns the value of the "patient_gender" field in the mutation.
func (m *PatientReportMutation) PatientGender() (r string, exists bool) {
	v := m.patient_gender
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientGender returns the old "patient_gender" field's value of the PatientReport entity.
// If the PatientReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientReportMutation) OldPatientGender(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientGender is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientGender requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientGender: %w", err)
	}
	return oldValue.PatientGender, nil
}

// ClearPatientGender clears the value of the "patient_gender" field.
func (m *PatientReportMutation) ClearPatientGender() {
	m.patient_gender = nil
	m.clearedFields[patientreport.FieldPatientGender] = struct{}{}
}

// PatientGenderCleared returns if the "patient_gender" field was cleared in this mutation.
func (m *PatientReportMutation) PatientGenderCleared() bool {
	_, ok := m.clearedFields[patientreport.FieldPatientGender]
	return ok
}

// ResetPatientGender resets all changes to the "patient_gender" field.
func (m *PatientReportMutation) ResetPatientGender() {
	m.patient_gender = nil
	delete(m.clearedFields, patientreport.FieldPatientGender)
}

// SetPatientDob sets the "patient_dob" field.
func (m *PatientReportMutation) SetPatientDob(t time.Time) {
	m.patient_dob = &t
}

// PatientDob returns the value of the "patient_dob" field in the mutation.
func (m *PatientReportMutation) PatientDob() (r time.Time, exists bool) {
	v := m.patient_dob
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientDob returns the old "patient_dob" field's value of the PatientReport entity.
// If the PatientReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientReportMutation) OldPatientDob(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientDob is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientDob requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientDob: %w", err)
	}
	return oldValue.PatientDob, nil
}

// ClearPatientDob clears the value of the "patient_dob" field.
func (m *PatientReportMutation) ClearPatientDob() {
	m.patient_dob = nil
	m.clearedFields[patientreport.FieldPatientDob] = struct{}{}
}

// PatientDobCleared returns if the "patient_dob" field was cleared in this mutation.
func (m *PatientReportMutation) PatientDobCleared() bool {
	_, ok := m.clearedFields[patientreport.FieldPatientDob]
	return ok
}

// ResetPatientDob resets all changes to the "patient_dob" field.
func (m *PatientReportMutation) ResetPatientDob() {
	m.patient_dob = nil
	delete(m.clearedFields, patientreport.FieldPatientDob)
}

// SetPatientAge sets the "patient_age" field.
func (m *PatientReportMutation) SetPatientAge(i int) {
	m.patient_age = &i
	m.addpatient_age = nil
}

// PatientAge returns the value of the "patient_age" field in the mutation.
func (m *PatientReportMutation) PatientAge() (r int, exists bool) {
	v := m.patient_age
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientAge returns the old "patient_age" field's value of the PatientReport entity.
// If the PatientReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientReportMutation) OldPatientAge(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientAge is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientAge requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientAge: %w", err)
	}
	return oldValue.PatientAge, nil
}

// AddPatientAge adds i to the "patient_age" field.
func (m *PatientReportMutation) AddPatientAge(i int) {
	if m.addpatient_age != nil {
		*m.addpatient_age += i
	} else {
		m.addpatient_age = &i
	}
}

// AddedPatientAge returns the value that was added to the "patient_age" field in this mutation.
func (m *PatientReportMutation) AddedPatientAge() (r int, exists bool) {
	v := m.addpatient_age
	if v == nil {
		return
	}
	return *v, true
}

// ClearPatientAge clears the value of the "patient_age" field.
func (m *PatientReportMutation) ClearPatientAge() {
	m.patient_age = nil
	m.addpatient_age = nil
	m.clearedFields[patientreport.FieldPatientAge] = struct{}{}
}

// PatientAgeCleared returns if the "patient_age" field was cleared in this mutation.
func (m *PatientReportMutation) PatientAgeCleared() bool {
	_, ok := m.clearedFields[patientreport.FieldPatientAge]
	return ok
}

// ResetPatientAge resets all changes to the "patient_age" field.
func (m *PatientReportMutation) ResetPatientAge() {
	m.patient_age = nil
	m.addpatient_age = nil
	delete(m.clearedFields, patientreport.FieldPatientAge)
}

// SetRawModelOutput sets the "raw_model_output" field.
func (m *PatientReportMutation) SetRawModelOutput(s string) {
	m.raw_model_output = &s
}

// RawModelOutput returns the value of the "raw_model_output" field in the mutation.
func (m *PatientReportMutation) RawModelOutput() (r string, exists bool) {
	v := m.raw_model_output
	if v == nil {
		return
	}
	return *v, true
}

// OldRawModelOutput returns the old "raw_model_output" field's value of the PatientReport entity.
// If the PatientReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientReportMutation) OldRawModelOutput(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawModelOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawModelOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawModelOutput: %w", err)
	}
	return oldValue.RawModelOutput, nil
}

// ClearRawModelOutput clears the value of the "raw_model_output" field.
func (m *PatientReportMutation) ClearRawModelOutput() {
	m.raw_model_output = nil
	m.clearedFields[patientreport.FieldRawModelOutput] = struct{}{}
}

// RawModelOutputCleared returns if the "raw_model_output" field was cleared in this mutation.
func (m *PatientReportMutation) RawModelOutputCleared() bool {
	_, ok := m.clearedFields[patientreport.FieldRawModelOutput]
	return ok
}

// ResetRawModelOutput resets all changes to the "raw_model_output" field.
func (m *PatientReportMutation) ResetRawModelOutput() {
	m.raw_model_output = nil
	delete(m.clearedFields, patientreport.FieldRawModelOutput)
}

// SetMissingData sets the "missing_data" field.
func (m *PatientReportMutation) SetMissingData(s []string) {
	m.missing_data = &s
	m.appendmissing_data = nil
}

// MissingData returns the value of the "missing_data" field in the mutation.
func (m *PatientReportMutation) MissingData() (r []string, exists bool) {
	v := m.missing_data
	if v == nil {
		return
	}
	return *v, true
}

// OldMissingData returns the old "missing_data" field's value of the PatientReport entity.
// If the PatientReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientReportMutation) OldMissingData(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMissingData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMissingData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMissingData: %w", err)
	}
	return oldValue.MissingData, nil
}

// AppendMissingData adds s to the "missing_data" field.
func (m *PatientReportMutation) AppendMissingData(s []string) {
	m.appendmissing_data = append(m.appendmissing_data, s...)
}

// AppendedMissingData returns the list of values that were appended to the "missing_data" field in this mutation.
func (m *PatientReportMutation) AppendedMissingData() ([]string, bool) {
	if len(m.appendmissing_data) == 0 {
		return nil, false
	}
	return m.appendmissing_data, true
}

// ClearMissingData clears the value of the "missing_data" field.
func (m *PatientReportMutation) ClearMissingData() {
	m.missing_data = nil
	m.appendmissing_data = nil
	m.clearedFields[patientreport.FieldMissingData] = struct{}{}
}

// MissingDataCleared returns if the "missing_data" field was cleared in this mutation.
func (m *PatientReportMutation) MissingDataCleared() bool {
	_, ok := m.clearedFields[patientreport.FieldMissingData]
	return ok
}

// ResetMissingData resets all changes to the "missing_data" field.
func (m *PatientReportMutation) ResetMissingData() {
	m.missing_data = nil
	m.appendmissing_data = nil
	delete(m.clearedFields, patientreport.FieldMissingData)
}

// SetCreatedAt sets the "created_at" field.
func (m *PatientReportMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PatientReportMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PatientReport entity.
// If the PatientReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientReportMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PatientReportMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PatientReportMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PatientReportMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PatientReport entity.
// If the PatientReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientReportMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PatientReportMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (m *PatientReportMutation) ClearPatient() {
	m.clearedpatient = true
	m.clearedFields[patientreport.FieldPatientID] = struct{}{}
}

// PatientCleared reports if the "patient" edge to the Patient entity was cleared.
func (m *PatientReportMutation) PatientCleared() bool {
	return m.clearedpatient
}

// PatientIDs returns the "patient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatientID instead. It exists only for internal usage by the builders.
func (m *PatientReportMutation) PatientIDs() (ids []string) {
	if id := m.patient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPatient resets all changes to the "patient" edge.
func (m *PatientReportMutation) ResetPatient() {
	m.patient = nil
	m.clearedpatient = false
}

// AddResultIDs adds the "results" edge to the LabResult entity by ids.
func (m *PatientReportMutation) AddResultIDs(ids ...string) {
	if m.results == nil {
		m.results = make(map[string]struct{})
	}
	for i := range ids {
		m.results[ids[i]] = struct{}{}
	}
}

// ClearResults clears the "results" edge to the LabResult entity.
func (m *PatientReportMutation) ClearResults() {
	m.clearedresults = true
}

// ResultsCleared reports if the "results" edge to the LabResult entity was cleared.
func (m *PatientReportMutation) ResultsCleared() bool {
	return m.clearedresults
}

// RemoveResultIDs removes the "results" edge to the LabResult entity by IDs.
func (m *PatientReportMutation) RemoveResultIDs(ids ...string) {
	if m.removedresults == nil {
		m.removedresults = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.results, ids[i])
		m.removedresults[ids[i]] = struct{}{}
	}
}

// RemovedResults returns the removed IDs of the "results" edge to the LabResult entity.
func (m *PatientReportMutation) RemovedResultsIDs() (ids []string) {
	for id := range m.removedresults {
		ids = append(ids, id)
	}
	return
}

// ResultsIDs returns the "results" edge IDs in the mutation.
func (m *PatientReportMutation) ResultsIDs() (ids []string) {
	for id := range m.results {
		ids = append(ids, id)
	}
	return
}

// ResetResults resets all changes to the "results" edge.
func (m *PatientReportMutation) ResetResults() {
	m.results = nil
	m.clearedresults = false
	m.removedresults = nil
}

// Where appends a list predicates to the PatientReportMutation builder.
func (m *PatientReportMutation) Where(ps ...predicate.PatientReport) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PatientReportMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PatientReportMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PatientReport, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PatientReportMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PatientReportMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PatientReport).
func (m *PatientReportMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PatientReportMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.patient != nil {
		fields = append(fields, patientreport.FieldPatientID)
	}
	if m.user_id != nil {
		fields = append(fields, patientreport.FieldUserID)
	}
	if m.source_filename != nil {
		fields = append(fields, patientreport.FieldSourceFilename)
	}
	if m.mime_type != nil {
		fields = append(fields, patientreport.FieldMimeType)
	}
	if m.checksum != nil {
		fields = append(fields, patientreport.FieldChecksum)
	}
	if m.parser_version != nil {
		fields = append(fields, patientreport.FieldParserVersion)
	}
	if m.status != nil {
		fields = append(fields, patientreport.FieldStatus)
	}
	if m.recognized_at != nil {
		fields = append(fields, patientreport.FieldRecognizedAt)
	}
	if m.processed_at != nil {
		fields = append(fields, patientreport.FieldProcessedAt)
	}
	if m.test_date != nil {
		fields = append(fields, patientreport.FieldTestDate)
	}
	if m.patient_name != nil {
		fields = append(fields, patientreport.FieldPatientName)
	}
	if m.patient_gender != nil {
		fields = append(fields, patientreport.FieldPatientGender)
	}
	if m.patient_dob != nil {
		fields = append(fields, patientreport.FieldPatientDob)
	}
	if m.patient_age != nil {
		fields = append(fields, patientreport.FieldPatientAge)
	}
	if m.raw_model_output != nil {
		fields = append(fields, patientreport.FieldRawModelOutput)
	}
	if m.missing_data != nil {
		fields = append(fields, patientreport.FieldMissingData)
	}
	if m.created_at != nil {
		fields = append(fields, patientreport.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, patientreport.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PatientReportMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case patientreport.FieldPatientID:
		return m.PatientID()
	case patientreport.FieldUserID:
		return m.UserID()
	case patientreport.FieldSourceFilename:
		return m.SourceFilename()
	case patientreport.FieldMimeType:
		return m.MimeType()
	case patientreport.FieldChecksum:
		return m.Checksum()
	case patientreport.FieldParserVersion:
		return m.ParserVersion()
	case patientreport.FieldStatus:
		return m.Status()
	case patientreport.FieldRecognizedAt:
		return m.RecognizedAt()
	case patientreport.FieldProcessedAt:
		return m.ProcessedAt()
	case patientreport.FieldTestDate:
		return m.TestDate()
	case patientreport.FieldPatientName:
		return m.PatientName()
	case patientreport.FieldPatientGender:
		return m.PatientGender()
	case patientreport.FieldPatientDob:
		return m.PatientDob()
	case patientreport.FieldPatientAge:
		return m.PatientAge()
	case patientreport.FieldRawModelOutput:
		return m.RawModelOutput()
	case patientreport.FieldMissingData:
		return m.MissingData()
	case patientreport.FieldCreatedAt:
		return m.CreatedAt()
	case patientreport.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PatientReportMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case patientreport.FieldPatientID:
		return m.OldPatientID(ctx)
	case patientreport.FieldUserID:
		return m.OldUserID(ctx)
	case patientreport.FieldSourceFilename:
		return m.OldSourceFilename(ctx)
	case patientreport.FieldMimeType:
		return m.OldMimeType(ctx)
	case patientreport.FieldChecksum:
		return m.OldChecksum(ctx)
	case patientreport.FieldParserVersion:
		return m.OldParserVersion(ctx)
	case patientreport.FieldStatus:
		return m.OldStatus(ctx)
	case patientreport.FieldRecognizedAt:
		return m.OldRecognizedAt(ctx)
	case patientreport.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	case patientreport.FieldTestDate:
		return m.OldTestDate(ctx)
	case patientreport.FieldPatientName:
		return m.OldPatientName(ctx)
	case patientreport.FieldPatientGender:
		return m.OldPatientGender(ctx)
	case patientreport.FieldPatientDob:
		return m.OldPatientDob(ctx)
	case patientreport.FieldPatientAge:
		return m.OldPatientAge(ctx)
	case patientreport.FieldRawModelOutput:
		return m.OldRawModelOutput(ctx)
	case patientreport.FieldMissingData:
		return m.OldMissingData(ctx)
	case patientreport.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case patientreport.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PatientReport field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientReportMutation) SetField(name string, value ent.Value) error {
	switch name {
	case patientreport.FieldPatientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case patientreport.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case patientreport.FieldSourceFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceFilename(v)
		return nil
	case patientreport.FieldMimeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimeType(v)
		return nil
	case patientreport.FieldChecksum:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChecksum(v)
		return nil
	case patientreport.FieldParserVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParserVersion(v)
		return nil
	case patientreport.FieldStatus:
		v, ok := value.(patientreport.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case patientreport.FieldRecognizedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecognizedAt(v)
		return nil
	case patientreport.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	case patientreport.FieldTestDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestDate(v)
		return nil
	case patientreport.FieldPatientName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientName(v)
		return nil
	case patientreport.FieldPatientGender:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientGender(v)
		return nil
	case patientreport.FieldPatientDob:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientDob(v)
		return nil
	case patientreport.FieldPatientAge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientAge(v)
		return nil
	case patientreport.FieldRawModelOutput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawModelOutput(v)
		return nil
	case patientreport.FieldMissingData:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMissingData(v)
		return nil
	case patientreport.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case patientreport.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PatientReport field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PatientReportMutation) AddedFields() []string {
	var fields []string
	if m.addpatient_age != nil {
		fields = append(fields, patientreport.FieldPatientAge)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PatientReportMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case patientreport.FieldPatientAge:
		return m.AddedPatientAge()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientReportMutation) AddField(name string, value ent.Value) error {
	switch name {
	case patientreport.FieldPatientAge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPatientAge(v)
		return nil
	}
	return fmt.Errorf("unknown PatientReport numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PatientReportMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(patientreport.FieldUserID) {
		fields = append(fields, patientreport.FieldUserID)
	}
	if m.FieldCleared(patientreport.FieldRecognizedAt) {
		fields = append(fields, patientreport.FieldRecognizedAt)
	}
	if m.FieldCleared(patientreport.FieldProcessedAt) {
		fields = append(fields, patientreport.FieldProcessedAt)
	}
	if m.FieldCleared(patientreport.FieldTestDate) {
		fields = append(fields, patientreport.FieldTestDate)
	}
	if m.FieldCleared(patientreport.FieldPatientName) {
		fields = append(fields, patientreport.FieldPatientName)
	}
	if m.FieldCleared(patientreport.FieldPatientGender) {
		fields = append(fields, patientreport.FieldPatientGender)
	}
	if m.FieldCleared(patientreport.FieldPatientDob) {
		fields = append(fields, patientreport.FieldPatientDob)
	}
	if m.FieldCleared(patientreport.FieldPatientAge) {
		fields = append(fields, patientreport.FieldPatientAge)
	}
	if m.FieldCleared(patientreport.FieldRawModelOutput) {
		fields = append(fields, patientreport.FieldRawModelOutput)
	}
	if m.FieldCleared(patientreport.FieldMissingData) {
		fields = append(fields, patientreport.FieldMissingData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PatientReportMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PatientReportMutation) ClearField(name string) error {
	switch name {
	case patientreport.FieldUserID:
		m.ClearUserID()
		return nil
	case patientreport.FieldRecognizedAt:
		m.ClearRecognizedAt()
		return nil
	case patientreport.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	case patientreport.FieldTestDate:
		m.ClearTestDate()
		return nil
	case patientreport.FieldPatientName:
		m.ClearPatientName()
		return nil
	case patientreport.FieldPatientGender:
		m.ClearPatientGender()
		return nil
	case patientreport.FieldPatientDob:
		m.ClearPatientDob()
		return nil
	case patientreport.FieldPatientAge:
		m.ClearPatientAge()
		return nil
	case patientreport.FieldRawModelOutput:
		m.ClearRawModelOutput()
		return nil
	case patientreport.FieldMissingData:
		m.ClearMissingData()
		return nil
	}
	return fmt.Errorf("unknown PatientReport nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PatientReportMutation) ResetField(name string) error {
	switch name {
	case patientreport.FieldPatientID:
		m.ResetPatientID()
		return nil
	case patientreport.FieldUserID:
		m.ResetUserID()
		return nil
	case patientreport.FieldSourceFilename:
		m.ResetSourceFilename()
		return nil
	case patientreport.FieldMimeType:
		m.ResetMimeType()
		return nil
	case patientreport.FieldChecksum:
		m.ResetChecksum()
		return nil
	case patientreport.FieldParserVersion:
		m.ResetParserVersion()
		return nil
	case patientreport.FieldStatus:
		m.ResetStatus()
		return nil
	case patientreport.FieldRecognizedAt:
		m.ResetRecognizedAt()
		return nil
	case patientreport.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	case patientreport.FieldTestDate:
		m.ResetTestDate()
		return nil
	case patientreport.FieldPatientName:
		m.ResetPatientName()
		return nil
	case patientreport.FieldPatientGender:
		m.ResetPatientGender()
		return nil
	case patientreport.FieldPatientDob:
		m.ResetPatientDob()
		return nil
	case patientreport.FieldPatientAge:
		m.ResetPatientAge()
		return nil
	case patientreport.FieldRawModelOutput:
		m.ResetRawModelOutput()
		return nil
	case patientreport.FieldMissingData:
		m.ResetMissingData()
		return nil
	case patientreport.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case patientreport.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PatientReport field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PatientReportMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.patient != nil {
		edges = append(edges, patientreport.EdgePatient)
	}
	if m.results != nil {
		edges = append(edges, patientreport.EdgeResults)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PatientReportMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case patientreport.EdgePatient:
		if id := m.patient; id != nil {
			return []ent.Value{*id}
		}
	case patientreport.EdgeResults:
		ids := make([]ent.Value, 0, len(m.results))
		for id := range m.results {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PatientReportMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedresults != nil {
		edges = append(edges, patientreport.EdgeResults)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PatientReportMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case patientreport.EdgeResults:
		ids := make([]ent.Value, 0, len(m.removedresults))
		for id := range m.removedresults {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PatientReportMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedpatient {
		edges = append(edges, patientreport.EdgePatient)
	}
	if m.clearedresults {
		edges = append(edges, patientreport.EdgeResults)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PatientReportMutation) EdgeCleared(name string) bool {
	switch name {
	case patientreport.EdgePatient:
		return m.clearedpatient
	case patientreport.EdgeResults:
		return m.clearedresults
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PatientReportMutation) ClearEdge(name string) error {
	switch name {
	case patientreport.EdgePatient:
		m.ClearPatient()
		return nil
	}
	return fmt.Errorf("unknown PatientReport unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PatientReportMutation) ResetEdge(name string) error {
	switch name {
	case patientreport.EdgePatient:
		m.ResetPatient()
		return nil
	case patientreport.EdgeResults:
		m.ResetResults()
		return nil
	}
	return fmt.Errorf("unknown PatientReport edge %s", name)
}

// PendingAnalyteMutation represents an operation that mutates the PendingAnalyte nodes in the graph.
type PendingAnalyteMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	proposed_code              *string
	proposed_name              *string
	unit                       *string
	category                   *string
	confidence                 *float64
	addconfidence              *float64
	evidence                   *map[string]interface{}
	parameter_variations       *[]string
	appendparameter_variations []string
	status                     *pendinganalyte.Status
	created_at                 *time.Time
	updated_at                 *time.Time
	clearedFields              map[string]struct{}
	done                       bool
	oldValue                   func(context.Context) (*PendingAnalyte, error)
	predicates                 []predicate.PendingAnalyte
}

var _ ent.Mutation = (*PendingAnalyteMutation)(nil)

// pendinganalyteOption allows management of the mutation configuration using functional options.
type pendinganalyteOption func(*PendingAnalyteMutation)

// newPendingAnalyteMutation creates new mutation for the PendingAnalyte entity.
func newPendingAnalyteMutation(c config, op Op, opts ...pendinganalyteOption) *PendingAnalyteMutation {
	m := &PendingAnalyteMutation{
		config:        c,
		op:            op,
		typ:           TypePendingAnalyte,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPendingAnalyteID sets the ID field of the mutation.
func withPendingAnalyteID(id string) pendinganalyteOption {
	return func(m *PendingAnalyteMutation) {
		var (
			err   error
			once  sync.Once
			value *PendingAnalyte
		)
		m.oldValue = func(ctx context.Context) (*PendingAnalyte, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PendingAnalyte.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPendingAnalyte sets the old PendingAnalyte of the mutation.
func withPendingAnalyte(node *PendingAnalyte) pendinganalyteOption {
	return func(m *PendingAnalyteMutation) {
		m.oldValue = func(context.Context) (*PendingAnalyte, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PendingAnalyteMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PendingAnalyteMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PendingAnalyte entities.
func (m *PendingAnalyteMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PendingAnalyteMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PendingAnalyteMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PendingAnalyte.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProposedCode sets the "proposed_code" field.
func (m *PendingAnalyteMutation) SetProposedCode(s string) {
	m.proposed_code = &s
}

// ProposedCode returns the value of the "proposed_code" field in the mutation.
func (m *PendingAnalyteMutation) ProposedCode() (r string, exists bool) {
	v := m.proposed_code
	if v == nil {
		return
	}
	return *v, true
}

// OldProposedCode returns the old "proposed_code" field's value of the PendingAnalyte entity.
// If the PendingAnalyte object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingAnalyteMutation) OldProposedCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProposedCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProposedCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProposedCode: %w", err)
	}
	return oldValue.ProposedCode, nil
}

// ResetProposedCode resets all changes to the "proposed_code" field.
func (m *PendingAnalyteMutation) ResetProposedCode() {
	m.proposed_code = nil
}

// SetProposedName sets the "proposed_name" field.
func (m *PendingAnalyteMutation) SetProposedName(s string) {
	m.proposed_name = &s
}

// ProposedName returns the value of the "proposed_name" field in the mutation.
func (m *PendingAnalyteMutation) ProposedName() (r string, exists bool) {
	v := m.proposed_name
	if v == nil {
		return
	}
	return *v, true
}

// OldProposedName returns the old "proposed_name" field's value of the PendingAnalyte entity.
// If the PendingAnalyte object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingAnalyteMutation) OldProposedName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProposedName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProposedName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProposedName: %w", err)
	}
	return oldValue.ProposedName, nil
}

// ResetProposedName resets all changes to the "proposed_name" field.
func (m *PendingAnalyteMutation) ResetProposedName() {
	m.proposed_name = nil
}

// SetUnit sets the "unit" field.
func (m *PendingAnalyteMutation) SetUnit(s string) {
	m.unit = &s
}

// Unit returns the value of the "unit" field in the mutation.
func (m *PendingAnalyteMutation) Unit() (r string, exists bool) {
	v := m.unit
	if v == nil {
		return
	}
	return *v, true
}

// OldUnit returns the old "unit" field's value of the PendingAnalyte entity.
// If the PendingAnalyte object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingAnalyteMutation) OldUnit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnit: %w", err)
	}
	return oldValue.Unit, nil
}

// ClearUnit clears the value of the "unit" field.
func (m *PendingAnalyteMutation) ClearUnit() {
	m.unit = nil
	m.clearedFields[pendinganalyte.FieldUnit] = struct{}{}
}

// UnitCleared returns if the "unit" field was cleared in this mutation.
func (m *PendingAnalyteMutation) UnitCleared() bool {
	_, ok := m.clearedFields[pendinganalyte.FieldUnit]
	return ok
}

// ResetUnit resets all changes to the "unit" field.
func (m *PendingAnalyteMutation) ResetUnit() {
	m.unit = nil
	delete(m.clearedFields, pendinganalyte.FieldUnit)
}

// SetCategory sets the "category" field.
func (m *PendingAnalyteMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *PendingAnalyteMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the PendingAnalyte entity.
// If the PendingAnalyte object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingAnalyteMutation) OldCategory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *PendingAnalyteMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[pendinganalyte.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *PendingAnalyteMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[pendinganalyte.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *PendingAnalyteMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, pendinganalyte.FieldCategory)
}

// SetConfidence sets the "confidence" field.
func (m *PendingAnalyteMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *PendingAnalyteMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the PendingAnalyte entity.
// If the PendingAnalyte object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingAnalyteMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *PendingAnalyteMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *PendingAnalyteMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *PendingAnalyteMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetEvidence sets the "evidence" field.
func (m *PendingAnalyteMutation) SetEvidence(value map[string]interface{}) {
	m.evidence = &value
}

// Evidence returns the value of the "evidence" field in the mutation.
func (m *PendingAnalyteMutation) Evidence() (r map[string]interface{}, exists bool) {
	v := m.evidence
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidence returns the old "evidence" field's value of the PendingAnalyte entity.
// If the PendingAnalyte object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingAnalyteMutation) OldEvidence(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidence: %w", err)
	}
	return oldValue.Evidence, nil
}

// ClearEvidence clears the value of the "evidence" field.
func (m *PendingAnalyteMutation) ClearEvidence() {
	m.evidence = nil
	m.clearedFields[pendinganalyte.FieldEvidence] = struct{}{}
}

// EvidenceCleared returns if the "evidence" field was cleared in this mutation.
func (m *PendingAnalyteMutation) EvidenceCleared() bool {
	_, ok := m.clearedFields[pendinganalyte.FieldEvidence]
	return ok
}

// ResetEvidence resets all changes to the "evidence" field.
func (m *PendingAnalyteMutation) ResetEvidence() {
	m.evidence = nil
	delete(m.clearedFields, pendinganalyte.FieldEvidence)
}

// SetParameterVariations sets the "parameter_variations" field.
func (m *PendingAnalyteMutation) SetParameterVariations(s []string) {
	m.parameter_variations = &s
	m.appendparameter_variations = nil
}

// ParameterVariations returns the value of the "parameter_variations" field in the mutation.
func (m *PendingAnalyteMutation) ParameterVariations() (r []string, exists bool) {
	v := m.parameter_variations
	if v == nil {
		return
	}
	return *v, true
}

// OldParameterVariations returns the old "parameter_variations" field's value of the PendingAnalyte entity.
// If the PendingAnalyte object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingAnalyteMutation) OldParameterVariations(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParameterVariations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParameterVariations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParameterVariations: %w", err)
	}
	return oldValue.ParameterVariations, nil
}

// AppendParameterVariations adds s to the "parameter_variations" field.
func (m *PendingAnalyteMutation) AppendParameterVariations(s []string) {
	m.appendparameter_variations = append(m.appendparameter_variations, s...)
}

// AppendedParameterVariations returns the list of values that were appended to the "parameter_variations" field in this mutation.
func (m *PendingAnalyteMutation) AppendedParameterVariations() ([]string, bool) {
	if len(m.appendparameter_variations) == 0 {
		return nil, false
	}
	return m.appendparameter_variations, true
}

// ClearParameterVariations clears the value of the "parameter_variations" field.
func (m *PendingAnalyteMutation) ClearParameterVariations() {
	m.parameter_variations = nil
	m.appendparameter_variations = nil
	m.clearedFields[pendinganalyte.FieldParameterVariations] = struct{}{}
}

// ParameterVariationsCleared returns if the "parameter_variations" field was cleared in this mutation.
func (m *PendingAnalyteMutation) ParameterVariationsCleared() bool {
	_, ok := m.clearedFields[pendinganalyte.FieldParameterVariations]
	return ok
}

// ResetParameterVariations resets all changes to the "parameter_variations" field.
func (m *PendingAnalyteMutation) ResetParameterVariations() {
	m.parameter_variations = nil
	m.appendparameter_variations = nil
	delete(m.clearedFields, pendinganalyte.FieldParameterVariations)
}

// SetStatus sets the "status" field.
func (m *PendingAnalyteMutation) SetStatus(pe pendinganalyte.Status) {
	m.status = &pe
}

// Status returns the value of the "status" field in the mutation.
func (m *PendingAnalyteMutation) Status() (r pendinganalyte.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PendingAnalyte entity.
// If the PendingAnalyte object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingAnalyteMutation) OldStatus(ctx context.Context) (v pendinganalyte.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PendingAnalyteMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PendingAnalyteMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PendingAnalyteMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PendingAnalyte entity.
// If the PendingAnalyte object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingAnalyteMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PendingAnalyteMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PendingAnalyteMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PendingAnalyteMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PendingAnalyte entity.
// If the PendingAnalyte object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingAnalyteMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PendingAnalyteMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the PendingAnalyteMutation builder.
func (m *PendingAnalyteMutation) Where(ps ...predicate.PendingAnalyte) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PendingAnalyteMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PendingAnalyteMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PendingAnalyte, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PendingAnalyteMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PendingAnalyteMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PendingAnalyte).
func (m *PendingAnalyteMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PendingAnalyteMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.proposed_code != nil {
		fields = append(fields, pendinganalyte.FieldProposedCode)
	}
	if m.proposed_name != nil {
		fields = append(fields, pendinganalyte.FieldProposedName)
	}
	if m.unit != nil {
		fields = append(fields, pendinganalyte.FieldUnit)
	}
	if m.category != nil {
		fields = append(fields, pendinganalyte.FieldCategory)
	}
	if m.confidence != nil {
		fields = append(fields, pendinganalyte.FieldConfidence)
	}
	if m.evidence != nil {
		fields = append(fields, pendinganalyte.FieldEvidence)
	}
	if m.parameter_variations != nil {
		fields = append(fields, pendinganalyte.FieldParameterVariations)
	}
	if m.status != nil {
		fields = append(fields, pendinganalyte.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, pendinganalyte.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, pendinganalyte.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PendingAnalyteMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pendinganalyte.FieldProposedCode:
		return m.ProposedCode()
	case pendinganalyte.FieldProposedName:
		return m.ProposedName()
	case pendinganalyte.FieldUnit:
		return m.Unit()
	case pendinganalyte.FieldCategory:
		return m.Category()
	case pendinganalyte.FieldConfidence:
		return m.Confidence()
	case pendinganalyte.FieldEvidence:
		return m.Evidence()
	case pendinganalyte.FieldParameterVariations:
		return m.ParameterVariations()
	case pendinganalyte.FieldStatus:
		return m.Status()
	case pendinganalyte.FieldCreatedAt:
		return m.CreatedAt()
	case pendinganalyte.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PendingAnalyteMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pendinganalyte.FieldProposedCode:
		return m.OldProposedCode(ctx)
	case pendinganalyte.FieldProposedName:
		return m.OldProposedName(ctx)
	case pendinganalyte.FieldUnit:
		return m.OldUnit(ctx)
	case pendinganalyte.FieldCategory:
		return m.OldCategory(ctx)
	case pendinganalyte.FieldConfidence:
		return m.OldConfidence(ctx)
	case pendinganalyte.FieldEvidence:
		return m.OldEvidence(ctx)
	case pendinganalyte.FieldParameterVariations:
		return m.OldParameterVariations(ctx)
	case pendinganalyte.FieldStatus:
		return m.OldStatus(ctx)
	case pendinganalyte.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pendinganalyte.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PendingAnalyte field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PendingAnalyteMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pendinganalyte.FieldProposedCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProposedCode(v)
		return nil
	case pendinganalyte.FieldProposedName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProposedName(v)
		return nil
	case pendinganalyte.FieldUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnit(v)
		return nil
	case pendinganalyte.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case pendinganalyte.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case pendinganalyte.FieldEvidence:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidence(v)
		return nil
	case pendinganalyte.FieldParameterVariations:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParameterVariations(v)
		return nil
	case pendinganalyte.FieldStatus:
		v, ok := value.(pendinganalyte.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pendinganalyte.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pendinganalyte.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PendingAnalyte field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PendingAnalyteMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, pendinganalyte.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PendingAnalyteMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pendinganalyte.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PendingAnalyteMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pendinganalyte.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown PendingAnalyte numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PendingAnalyteMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pendinganalyte.FieldUnit) {
		fields = append(fields, pendinganalyte.FieldUnit)
	}
	if m.FieldCleared(pendinganalyte.FieldCategory) {
		fields = append(fields, pendinganalyte.FieldCategory)
	}
	if m.FieldCleared(pendinganalyte.FieldEvidence) {
		fields = append(fields, pendinganalyte.FieldEvidence)
	}
	if m.FieldCleared(pendinganalyte.FieldParameterVariations) {
		fields = append(fields, pendinganalyte.FieldParameterVariations)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PendingAnalyteMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PendingAnalyteMutation) ClearField(name string) error {
	switch name {
	case pendinganalyte.FieldUnit:
		m.ClearUnit()
		return nil
	case pendinganalyte.FieldCategory:
		m.ClearCategory()
		return nil
	case pendinganalyte.FieldEvidence:
		m.ClearEvidence()
		return nil
	case pendinganalyte.FieldParameterVariations:
		m.ClearParameterVariations()
		return nil
	}
	return fmt.Errorf("unknown PendingAnalyte nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PendingAnalyteMutation) ResetField(name string) error {
	switch name {
	case pendinganalyte.FieldProposedCode:
		m.ResetProposedCode()
		return nil
	case pendinganalyte.FieldProposedName:
		m.ResetProposedName()
		return nil
	case pendinganalyte.FieldUnit:
		m.ResetUnit()
		return nil
	case pendinganalyte.FieldCategory:
		m.ResetCategory()
		return nil
	case pendinganalyte.FieldConfidence:
		m.ResetConfidence()
		return nil
	case pendinganalyte.FieldEvidence:
		m.ResetEvidence()
		return nil
	case pendinganalyte.FieldParameterVariations:
		m.ResetParameterVariations()
		return nil
	case pendinganalyte.FieldStatus:
		m.ResetStatus()
		return nil
	case pendinganalyte.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pendinganalyte.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PendingAnalyte field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PendingAnalyteMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PendingAnalyteMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PendingAnalyteMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PendingAnalyteMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PendingAnalyteMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PendingAnalyteMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PendingAnalyteMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PendingAnalyte unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PendingAnalyteMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PendingAnalyte edge %s", name)
}

// SQLGenerationLogMutation represents an operation that mutates the SQLGenerationLog nodes in the graph.
type SQLGenerationLogMutation struct {
	config
	op             Op
	typ            string
	id             *string
	status         *string
	user_hash      *string
	prompt         *string
	generated_sql  *string
	sql_hash       *string
	iterations     *int
	additerations  *int
	duration_ms    *int
	addduration_ms *int
	metadata       *map[string]interface{}
	session_id     *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*SQLGenerationLog, error)
	predicates     []predicate.SQLGenerationLog
}

var _ ent.Mutation = (*SQLGenerationLogMutation)(nil)

// sqlgenerationlogOption allows management of the mutation configuration using functional options.
type sqlgenerationlogOption func(*SQLGenerationLogMutation)

// newSQLGenerationLogMutation creates new mutation for the SQLGenerationLog entity.
func newSQLGenerationLogMutation(c config, op Op, opts ...sqlgenerationlogOption) *SQLGenerationLogMutation {
	m := &SQLGenerationLogMutation{
		config:        c,
		op:            op,
		typ:           TypeSQLGenerationLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSQLGenerationLogID sets the ID field of the mutation.
func withSQLGenerationLogID(id string) sqlgenerationlogOption {
	return func(m *SQLGenerationLogMutation) {
		var (
			err   error
			once  sync.Once
			value *SQLGenerationLog
		)
		m.oldValue = func(ctx context.Context) (*SQLGenerationLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SQLGenerationLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSQLGenerationLog sets the old SQLGenerationLog of the mutation.
func withSQLGenerationLog(node *SQLGenerationLog) sqlgenerationlogOption {
	return func(m *SQLGenerationLogMutation) {
		m.oldValue = func(context.Context) (*SQLGenerationLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SQLGenerationLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SQLGenerationLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SQLGenerationLog entities.
func (m *SQLGenerationLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SQLGenerationLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SQLGenerationLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SQLGenerationLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStatus sets the "status" field.
func (m *SQLGenerationLogMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SQLGenerationLogMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SQLGenerationLog entity.
// If the SQLGenerationLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SQLGenerationLogMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SQLGenerationLogMutation) ResetStatus() {
	m.status = nil
}

// SetUserHash sets the "user_hash" field.
func (m *SQLGenerationLogMutation) SetUserHash(s string) {
	m.user_hash = &s
}

// UserHash returns the value of the "user_hash" field in the mutation.
func (m *SQLGenerationLogMutation) UserHash() (r string, exists bool) {
	v := m.user_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldUserHash returns the old "user_hash" field's value of the SQLGenerationLog entity.
// If the SQLGenerationLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SQLGenerationLogMutation) OldUserHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserHash: %w", err)
	}
	return oldValue.UserHash, nil
}

// ResetUserHash resets all changes to the "user_hash" field.
func (m *SQLGenerationLogMutation) ResetUserHash() {
	m.user_hash = nil
}

// SetPrompt sets the "prompt" field.
func (m *SQLGenerationLogMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *SQLGenerationLogMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the SQLGenerationLog entity.
// If the SQLGenerationLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SQLGenerationLogMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *SQLGenerationLogMutation) ResetPrompt() {
	m.prompt = nil
}

// SetGeneratedSQL sets the "generated_sql" field.
func (m *SQLGenerationLogMutation) SetGeneratedSQL(s string) {
	m.generated_sql = &s
}

// GeneratedSQL returns the value of the "generated_sql" field in the mutation.
func (m *SQLGenerationLogMutation) GeneratedSQL() (r string, exists bool) {
	v := m.generated_sql
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneratedSQL returns the old "generated_sql" field's value of the SQLGenerationLog entity.
// If the SQLGenerationLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SQLGenerationLogMutation) OldGeneratedSQL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneratedSQL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneratedSQL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneratedSQL: %w", err)
	}
	return oldValue.GeneratedSQL, nil
}

// ClearGeneratedSQL clears the value of the "generated_sql" field.
func (m *SQLGenerationLogMutation) ClearGeneratedSQL() {
	m.generated_sql = nil
	m.clearedFields[sqlgenerationlog.FieldGeneratedSQL] = struct{}{}
}

// GeneratedSQLCleared returns if the "generated_sql" field was cleared in this mutation.
func (m *SQLGenerationLogMutation) GeneratedSQLCleared() bool {
	_, ok := m.clearedFields[sqlgenerationlog.FieldGeneratedSQL]
	return ok
}

// ResetGeneratedSQL resets all changes to the "generated_sql" field.
func (m *SQLGenerationLogMutation) ResetGeneratedSQL() {
	m.generated_sql = nil
	delete(m.clearedFields, sqlgenerationlog.FieldGeneratedSQL)
}

// SetSQLHash sets the "sql_hash" field.
func (m *SQLGenerationLogMutation) SetSQLHash(s string) {
	m.sql_hash = &s
}

// SQLHash returns the value of the "sql_hash" field in the mutation.
func (m *SQLGenerationLogMutation) SQLHash() (r string, exists bool) {
	v := m.sql_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldSQLHash returns the old "sql_hash" field's value of the SQLGenerationLog entity.
// If the SQLGenerationLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SQLGenerationLogMutation) OldSQLHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSQLHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSQLHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSQLHash: %w", err)
	}
	return oldValue.SQLHash, nil
}

// ClearSQLHash clears the value of the "sql_hash" field.
func (m *SQLGenerationLogMutation) ClearSQLHash() {
	m.sql_hash = nil
	m.clearedFields[sqlgenerationlog.FieldSQLHash] = struct{}{}
}

// SQLHashCleared returns if the "sql_hash" field was cleared in this mutation.
func (m *SQLGenerationLogMutation) SQLHashCleared() bool {
	_, ok := m.clearedFields[sqlgenerationlog.FieldSQLHash]
	return ok
}

// ResetSQLHash resets all changes to the "sql_hash" field.
func (m *SQLGenerationLogMutation) ResetSQLHash() {
	m.sql_hash = nil
	delete(m.clearedFields, sqlgenerationlog.FieldSQLHash)
}

// SetIterations sets the "iterations" field.
func (m *SQLGenerationLogMutation) SetIterations(i int) {
	m.iterations = &i
	m.additerations = nil
}

// Iterations returns the value of the "iterations" field in the mutation.
func (m *SQLGenerationLogMutation) Iterations() (r int, exists bool) {
	v := m.iterations
	if v == nil {
		return
	}
	return *v, true
}

// OldIterations returns the old "iterations" field's value of the SQLGenerationLog entity.
// If the SQLGenerationLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SQLGenerationLogMutation) OldIterations(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIterations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIterations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIterations: %w", err)
	}
	return oldValue.Iterations, nil
}

// AddIterations adds i to the "iterations" field.
func (m *SQLGenerationLogMutation) AddIterations(i int) {
	if m.additerations != nil {
		*m.additerations += i
	} else {
		m.additerations = &i
	}
}

// AddedIterations returns the value that was added to the "iterations" field in this mutation.
func (m *SQLGenerationLogMutation) AddedIterations() (r int, exists bool) {
	v := m.additerations
	if v == nil {
		return
	}
	return *v, true
}

// ResetIterations resets all changes to the "iterations" field.
func (m *SQLGenerationLogMutation) ResetIterations() {
	m.iterations = nil
	m.additerations = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *SQLGenerationLogMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *SQLGenerationLogMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the SQLGenerationLog entity.
// If the SQLGenerationLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SQLGenerationLogMutation) OldDurationMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *SQLGenerationLogMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *SQLGenerationLogMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *SQLGenerationLogMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetMetadata sets the "metadata" field.
func (m *SQLGenerationLogMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *SQLGenerationLogMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the SQLGenerationLog entity.
// If the SQLGenerationLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SQLGenerationLogMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *SQLGenerationLogMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[sqlgenerationlog.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *SQLGenerationLogMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[sqlgenerationlog.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *SQLGenerationLogMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, sqlgenerationlog.FieldMetadata)
}

// SetSessionID sets the "session_id" field.
func (m *SQLGenerationLogMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SQLGenerationLogMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SQLGenerationLog entity.
// If the SQLGenerationLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SQLGenerationLogMutation) OldSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *SQLGenerationLogMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[sqlgenerationlog.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *SQLGenerationLogMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[sqlgenerationlog.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SQLGenerationLogMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, sqlgenerationlog.FieldSessionID)
}

// SetCreatedAt sets the "created_at" field.
func (m *SQLGenerationLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SQLGenerationLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SQLGenerationLog entity.
// If the SQLGenerationLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SQLGenerationLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SQLGenerationLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the SQLGenerationLogMutation builder.
func (m *SQLGenerationLogMutation) Where(ps ...predicate.SQLGenerationLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SQLGenerationLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SQLGenerationLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SQLGenerationLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SQLGenerationLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SQLGenerationLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SQLGenerationLog).
func (m *SQLGenerationLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SQLGenerationLogMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.status != nil {
		fields = append(fields, sqlgenerationlog.FieldStatus)
	}
	if m.user_hash != nil {
		fields = append(fields, sqlgenerationlog.FieldUserHash)
	}
	if m.prompt != nil {
		fields = append(fields, sqlgenerationlog.FieldPrompt)
	}
	if m.generated_sql != nil {
		fields = append(fields, sqlgenerationlog.FieldGeneratedSQL)
	}
	if m.sql_hash != nil {
		fields = append(fields, sqlgenerationlog.FieldSQLHash)
	}
	if m.iterations != nil {
		fields = append(fields, sqlgenerationlog.FieldIterations)
	}
	if m.duration_ms != nil {
		fields = append(fields, sqlgenerationlog.FieldDurationMs)
	}
	if m.metadata != nil {
		fields = append(fields, sqlgenerationlog.FieldMetadata)
	}
	if m.session_id != nil {
		fields = append(fields, sqlgenerationlog.FieldSessionID)
	}
	if m.created_at != nil {
		fields = append(fields, sqlgenerationlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SQLGenerationLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sqlgenerationlog.FieldStatus:
		return m.Status()
	case sqlgenerationlog.FieldUserHash:
		return m.UserHash()
	case sqlgenerationlog.FieldPrompt:
		return m.Prompt()
	case sqlgenerationlog.FieldGeneratedSQL:
		return m.GeneratedSQL()
	case sqlgenerationlog.FieldSQLHash:
		return m.SQLHash()
	case sqlgenerationlog.FieldIterations:
		return m.Iterations()
	case sqlgenerationlog.FieldDurationMs:
		return m.DurationMs()
	case sqlgenerationlog.FieldMetadata:
		return m.Metadata()
	case sqlgenerationlog.FieldSessionID:
		return m.SessionID()
	case sqlgenerationlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SQLGenerationLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sqlgenerationlog.FieldStatus:
		return m.OldStatus(ctx)
	case sqlgenerationlog.FieldUserHash:
		return m.OldUserHash(ctx)
	case sqlgenerationlog.FieldPrompt:
		return m.OldPrompt(ctx)
	case sqlgenerationlog.FieldGeneratedSQL:
		return m.OldGeneratedSQL(ctx)
	case sqlgenerationlog.FieldSQLHash:
		return m.OldSQLHash(ctx)
	case sqlgenerationlog.FieldIterations:
		return m.OldIterations(ctx)
	case sqlgenerationlog.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case sqlgenerationlog.FieldMetadata:
		return m.OldMetadata(ctx)
	case sqlgenerationlog.FieldSessionID:
		return m.OldSessionID(ctx)
	case sqlgenerationlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SQLGenerationLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SQLGenerationLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sqlgenerationlog.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case sqlgenerationlog.FieldUserHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserHash(v)
		return nil
	case sqlgenerationlog.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case sqlgenerationlog.FieldGeneratedSQL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneratedSQL(v)
		return nil
	case sqlgenerationlog.FieldSQLHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSQLHash(v)
		return nil
	case sqlgenerationlog.FieldIterations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIterations(v)
		return nil
	case sqlgenerationlog.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case sqlgenerationlog.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case sqlgenerationlog.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sqlgenerationlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SQLGenerationLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SQLGenerationLogMutation) AddedFields() []string {
	var fields []string
	if m.additerations != nil {
		fields = append(fields, sqlgenerationlog.FieldIterations)
	}
	if m.addduration_ms != nil {
		fields = append(fields, sqlgenerationlog.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SQLGenerationLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sqlgenerationlog.FieldIterations:
		return m.AddedIterations()
	case sqlgenerationlog.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SQLGenerationLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sqlgenerationlog.FieldIterations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIterations(v)
		return nil
	case sqlgenerationlog.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown SQLGenerationLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SQLGenerationLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sqlgenerationlog.FieldGeneratedSQL) {
		fields = append(fields, sqlgenerationlog.FieldGeneratedSQL)
	}
	if m.FieldCleared(sqlgenerationlog.FieldSQLHash) {
		fields = append(fields, sqlgenerationlog.FieldSQLHash)
	}
	if m.FieldCleared(sqlgenerationlog.FieldMetadata) {
		fields = append(fields, sqlgenerationlog.FieldMetadata)
	}
	if m.FieldCleared(sqlgenerationlog.FieldSessionID) {
		fields = append(fields, sqlgenerationlog.FieldSessionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SQLGenerationLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SQLGenerationLogMutation) ClearField(name string) error {
	switch name {
	case sqlgenerationlog.FieldGeneratedSQL:
		m.ClearGeneratedSQL()
		return nil
	case sqlgenerationlog.FieldSQLHash:
		m.ClearSQLHash()
		return nil
	case sqlgenerationlog.FieldMetadata:
		m.ClearMetadata()
		return nil
	case sqlgenerationlog.FieldSessionID:
		m.ClearSessionID()
		return nil
	}
	return fmt.Errorf("unknown SQLGenerationLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SQLGenerationLogMutation) ResetField(name string) error {
	switch name {
	case sqlgenerationlog.FieldStatus:
		m.ResetStatus()
		return nil
	case sqlgenerationlog.FieldUserHash:
		m.ResetUserHash()
		return nil
	case sqlgenerationlog.FieldPrompt:
		m.ResetPrompt()
		return nil
	case sqlgenerationlog.FieldGeneratedSQL:
		m.ResetGeneratedSQL()
		return nil
	case sqlgenerationlog.FieldSQLHash:
		m.ResetSQLHash()
		return nil
	case sqlgenerationlog.FieldIterations:
		m.ResetIterations()
		return nil
	case sqlgenerationlog.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case sqlgenerationlog.FieldMetadata:
		m.ResetMetadata()
		return nil
	case sqlgenerationlog.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sqlgenerationlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SQLGenerationLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SQLGenerationLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SQLGenerationLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SQLGenerationLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SQLGenerationLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SQLGenerationLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SQLGenerationLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SQLGenerationLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SQLGenerationLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SQLGenerationLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SQLGenerationLog edge %s", name)
}

// SessionMutation represents an operation that mutates the Session nodes in the graph.
type SessionMutation struct {
	config
	op            Op
	typ           string
	id            *string
	expires_at    *time.Time
	revoked_at    *time.Time
	created_at    *time.Time
	clearedFields map[string]struct{}
	user          *string
	cleareduser   bool
	done          bool
	oldValue      func(context.Context) (*Session, error)
	predicates    []predicate.Session
}

var _ ent.Mutation = (*SessionMutation)(nil)

// sessionOption allows management of the mutation configuration using functional options.
type sessionOption func(*SessionMutation)

// newSessionMutation creates new mutation for the Session entity.
func newSessionMutation(c config, op Op, opts ...sessionOption) *SessionMutation {
	m := &SessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionID sets the ID field of the mutation.
func withSessionID(id string) sessionOption {
	return func(m *SessionMutation) {
		var (
			err   error
			once  sync.Once
			value *Session
		)
		m.oldValue = func(ctx context.Context) (*Session, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Session.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSession sets the old Session of the mutation.
func withSession(node *Session) sessionOption {
	return func(m *SessionMutation) {
		m.oldValue = func(context.Context) (*Session, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Session entities.
func (m *SessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Session.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *SessionMutation) SetUserID(s string) {
	m.user = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SessionMutation) UserID() (r string, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SessionMutation) ResetUserID() {
	m.user = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *SessionMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *SessionMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *SessionMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetRevokedAt sets the "revoked_at" field.
func (m *SessionMutation) SetRevokedAt(t time.Time) {
	m.revoked_at = &t
}

// RevokedAt returns the value of the "revoked_at" field in the mutation.
func (m *SessionMutation) RevokedAt() (r time.Time, exists bool) {
	v := m.revoked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRevokedAt returns the old "revoked_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldRevokedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevokedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevokedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevokedAt: %w", err)
	}
	return oldValue.RevokedAt, nil
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (m *SessionMutation) ClearRevokedAt() {
	m.revoked_at = nil
	m.clearedFields[session.FieldRevokedAt] = struct{}{}
}

// RevokedAtCleared returns if the "revoked_at" field was cleared in this mutation.
func (m *SessionMutation) RevokedAtCleared() bool {
	_, ok := m.clearedFields[session.FieldRevokedAt]
	return ok
}

// ResetRevokedAt resets all changes to the "revoked_at" field.
func (m *SessionMutation) ResetRevokedAt() {
	m.revoked_at = nil
	delete(m.clearedFields, session.FieldRevokedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *SessionMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[session.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *SessionMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *SessionMutation) UserIDs() (ids []string) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *SessionMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the SessionMutation builder.
func (m *SessionMutation) Where(ps ...predicate.Session) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Session, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Session).
func (m *SessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.user != nil {
		fields = append(fields, session.FieldUserID)
	}
	if m.expires_at != nil {
		fields = append(fields, session.FieldExpiresAt)
	}
	if m.revoked_at != nil {
		fields = append(fields, session.FieldRevokedAt)
	}
	if m.created_at != nil {
		fields = append(fields, session.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case session.FieldUserID:
		return m.UserID()
	case session.FieldExpiresAt:
		return m.ExpiresAt()
	case session.FieldRevokedAt:
		return m.RevokedAt()
	case session.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case session.FieldUserID:
		return m.OldUserID(ctx)
	case session.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case session.FieldRevokedAt:
		return m.OldRevokedAt(ctx)
	case session.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Session field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case session.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case session.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case session.FieldRevokedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevokedAt(v)
		return nil
	case session.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Session numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(session.FieldRevokedAt) {
		fields = append(fields, session.FieldRevokedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMutation) ClearField(name string) error {
	switch name {
	case session.FieldRevokedAt:
		m.ClearRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown Session nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMutation) ResetField(name string) error {
	switch name {
	case session.FieldUserID:
		m.ResetUserID()
		return nil
	case session.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case session.FieldRevokedAt:
		m.ResetRevokedAt()
		return nil
	case session.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, session.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case session.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, session.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMutation) EdgeCleared(name string) bool {
	switch name {
	case session.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMutation) ClearEdge(name string) error {
	switch name {
	case session.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Session unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMutation) ResetEdge(name string) error {
	switch name {
	case session.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown Session edge %s", name)
}

// UnitAliasMutation represents an operation that mutates the UnitAlias nodes in the graph.
type UnitAliasMutation struct {
	config
	op             Op
	typ            string
	id             *string
	canonical      *string
	source         *string
	learn_count    *int
	addlearn_count *int
	last_used_at   *time.Time
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*UnitAlias, error)
	predicates     []predicate.UnitAlias
}

var _ ent.Mutation = (*UnitAliasMutation)(nil)

// unitaliasOption allows management of the mutation configuration using functional options.
type unitaliasOption func(*UnitAliasMutation)

// newUnitAliasMutation creates new mutation for the UnitAlias entity.
func newUnitAliasMutation(c config, op Op, opts ...unitaliasOption) *UnitAliasMutation {
	m := &UnitAliasMutation{
		config:        c,
		op:            op,
		typ:           TypeUnitAlias,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUnitAliasID sets the ID field of the mutation.
func withUnitAliasID(id string) unitaliasOption {
	return func(m *UnitAliasMutation) {
		var (
			err   error
			once  sync.Once
			value *UnitAlias
		)
		m.oldValue = func(ctx context.Context) (*UnitAlias, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UnitAlias.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUnitAlias sets the old UnitAlias of the mutation.
func withUnitAlias(node *UnitAlias) unitaliasOption {
	return func(m *UnitAliasMutation) {
		m.oldValue = func(context.Context) (*UnitAlias, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UnitAliasMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UnitAliasMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UnitAlias entities.
func (m *UnitAliasMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UnitAliasMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UnitAliasMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UnitAlias.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCanonical sets the "canonical" field.
func (m *UnitAliasMutation) SetCanonical(s string) {
	m.canonical = &s
}

// Canonical returns the value of the "canonical" field in the mutation.
func (m *UnitAliasMutation) Canonical() (r string, exists bool) {
	v := m.canonical
	if v == nil {
		return
	}
	return *v, true
}

// OldCanonical returns the old "canonical" field's value of the UnitAlias entity.
// If the UnitAlias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitAliasMutation) OldCanonical(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanonical is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanonical requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanonical: %w", err)
	}
	return oldValue.Canonical, nil
}

// ResetCanonical resets all changes to the "canonical" field.
func (m *UnitAliasMutation) ResetCanonical() {
	m.canonical = nil
}

// SetSource sets the "source" field.
func (m *UnitAliasMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *UnitAliasMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the UnitAlias entity.
// If the UnitAlias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitAliasMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *UnitAliasMutation) ResetSource() {
	m.source = nil
}

// SetLearnCount sets the "learn_count" field.
func (m *UnitAliasMutation) SetLearnCount(i int) {
	m.learn_count = &i
	m.addlearn_count = nil
}

// LearnCount returns the value of the "learn_count" field in the mutation.
func (m *UnitAliasMutation) LearnCount() (r int, exists bool) {
	v := m.learn_count
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnCount returns the old "learn_count" field's value of the UnitAlias entity.
// If the UnitAlias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitAliasMutation) OldLearnCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnCount: %w", err)
	}
	return oldValue.LearnCount, nil
}

// AddLearnCount adds i to the "learn_count" field.
func (m *UnitAliasMutation) AddLearnCount(i int) {
	if m.addlearn_count != nil {
		*m.addlearn_count += i
	} else {
		m.addlearn_count = &i
	}
}

// AddedLearnCount returns the value that was added to the "learn_count" field in this mutation.
func (m *UnitAliasMutation) AddedLearnCount() (r int, exists bool) {
	v := m.addlearn_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetLearnCount resets all changes to the "learn_count" field.
func (m *UnitAliasMutation) ResetLearnCount() {
	m.learn_count = nil
	m.addlearn_count = nil
}

// SetLastUsedAt sets the "last_used_at" field.
func (m *UnitAliasMutation) SetLastUsedAt(t time.Time) {
	m.last_used_at = &t
}

// LastUsedAt returns the value of the "last_used_at" field in the mutation.
func (m *UnitAliasMutation) LastUsedAt() (r time.Time, exists bool) {
	v := m.last_used_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUsedAt returns the old "last_used_at" field's value of the UnitAlias entity.
// If the UnitAlias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitAliasMutation) OldLastUsedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUsedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUsedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUsedAt: %w", err)
	}
	return oldValue.LastUsedAt, nil
}

// ResetLastUsedAt resets all changes to the "last_used_at" field.
func (m *UnitAliasMutation) ResetLastUsedAt() {
	m.last_used_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UnitAliasMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UnitAliasMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UnitAlias entity.
// If the UnitAlias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitAliasMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UnitAliasMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the UnitAliasMutation builder.
func (m *UnitAliasMutation) Where(ps ...predicate.UnitAlias) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UnitAliasMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UnitAliasMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UnitAlias, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UnitAliasMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UnitAliasMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UnitAlias).
func (m *UnitAliasMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UnitAliasMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.canonical != nil {
		fields = append(fields, unitalias.FieldCanonical)
	}
	if m.source != nil {
		fields = append(fields, unitalias.FieldSource)
	}
	if m.learn_count != nil {
		fields = append(fields, unitalias.FieldLearnCount)
	}
	if m.last_used_at != nil {
		fields = append(fields, unitalias.FieldLastUsedAt)
	}
	if m.created_at != nil {
		fields = append(fields, unitalias.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UnitAliasMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case unitalias.FieldCanonical:
		return m.Canonical()
	case unitalias.FieldSource:
		return m.Source()
	case unitalias.FieldLearnCount:
		return m.LearnCount()
	case unitalias.FieldLastUsedAt:
		return m.LastUsedAt()
	case unitalias.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UnitAliasMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case unitalias.FieldCanonical:
		return m.OldCanonical(ctx)
	case unitalias.FieldSource:
		return m.OldSource(ctx)
	case unitalias.FieldLearnCount:
		return m.OldLearnCount(ctx)
	case unitalias.FieldLastUsedAt:
		return m.OldLastUsedAt(ctx)
	case unitalias.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UnitAlias field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UnitAliasMutation) SetField(name string, value ent.Value) error {
	switch name {
	case unitalias.FieldCanonical:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanonical(v)
		return nil
	case unitalias.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case unitalias.FieldLearnCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnCount(v)
		return nil
	case unitalias.FieldLastUsedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUsedAt(v)
		return nil
	case unitalias.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UnitAlias field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UnitAliasMutation) AddedFields() []string {
	var fields []string
	if m.addlearn_count != nil {
		fields = append(fields, unitalias.FieldLearnCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UnitAliasMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case unitalias.FieldLearnCount:
		return m.AddedLearnCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UnitAliasMutation) AddField(name string, value ent.Value) error {
	switch name {
	case unitalias.FieldLearnCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLearnCount(v)
		return nil
	}
	return fmt.Errorf("unknown UnitAlias numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UnitAliasMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UnitAliasMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UnitAliasMutation) ClearField(name string) error {
	return fmt.Errorf("unknown UnitAlias nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UnitAliasMutation) ResetField(name string) error {
	switch name {
	case unitalias.FieldCanonical:
		m.ResetCanonical()
		return nil
	case unitalias.FieldSource:
		m.ResetSource()
		return nil
	case unitalias.FieldLearnCount:
		m.ResetLearnCount()
		return nil
	case unitalias.FieldLastUsedAt:
		m.ResetLastUsedAt()
		return nil
	case unitalias.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown UnitAlias field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UnitAliasMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UnitAliasMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UnitAliasMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UnitAliasMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UnitAliasMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UnitAliasMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UnitAliasMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UnitAlias unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UnitAliasMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UnitAlias edge %s", name)
}

// UnitReviewMutation represents an operation that mutates the UnitReview nodes in the graph.
type UnitReviewMutation struct {
	config
	op               Op
	typ              string
	id               *string
	result_id        *string
	raw_unit         *string
	normalized_input *string
	llm_suggestion   *string
	confidence       *string
	issue_type       *string
	issue_details    *map[string]interface{}
	status           *unitreview.Status
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*UnitReview, error)
	predicates       []predicate.UnitReview
}

var _ ent.Mutation = (*UnitReviewMutation)(nil)

// unitreviewOption allows management of the mutation configuration using functional options.
type unitreviewOption func(*UnitReviewMutation)

// newUnitReviewMutation creates new mutation for the UnitReview entity.
func newUnitReviewMutation(c config, op Op, opts ...unitreviewOption) *UnitReviewMutation {
	m := &UnitReviewMutation{
		config:        c,
		op:            op,
		typ:           TypeUnitReview,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUnitReviewID sets the ID field of the mutation.
func withUnitReviewID(id string) unitreviewOption {
	return func(m *UnitReviewMutation) {
		var (
			err   error
			once  sync.Once
			value *UnitReview
		)
		m.oldValue = func(ctx context.Context) (*UnitReview, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UnitReview.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUnitReview sets the old UnitReview of the mutation.
func withUnitReview(node *UnitReview) unitreviewOption {
	return func(m *UnitReviewMutation) {
		m.oldValue = func(context.Context) (*UnitReview, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UnitReviewMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UnitReviewMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UnitReview entities.
func (m *UnitReviewMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UnitReviewMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UnitReviewMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UnitReview.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetResultID sets the "result_id" field.
func (m *UnitReviewMutation) SetResultID(s string) {
	m.result_id = &s
}

// ResultID returns the value of the "result_id" field in the mutation.
func (m *UnitReviewMutation) ResultID() (r string, exists bool) {
	v := m.result_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResultID returns the old "result_id" field's value of the UnitReview entity.
// If the UnitReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitReviewMutation) OldResultID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultID: %w", err)
	}
	return oldValue.ResultID, nil
}

// ResetResultID resets all changes to the "result_id" field.
func (m *UnitReviewMutation) ResetResultID() {
	m.result_id = nil
}

// SetRawUnit sets the "raw_unit" field.
func (m *UnitReviewMutation) SetRawUnit(s string) {
	m.raw_unit = &s
}

// RawUnit returns the value of the "raw_unit" field in the mutation.
func (m *UnitReviewMutation) RawUnit() (r string, exists bool) {
	v := m.raw_unit
	if v == nil {
		return
	}
	return *v, true
}

// OldRawUnit returns the old "raw_unit" field's value of the UnitReview entity.
// If the UnitReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitReviewMutation) OldRawUnit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawUnit: %w", err)
	}
	return oldValue.RawUnit, nil
}

// ResetRawUnit resets all changes to the "raw_unit" field.
func (m *UnitReviewMutation) ResetRawUnit() {
	m.raw_unit = nil
}

// SetNormalizedInput sets the "normalized_input" field.
func (m *UnitReviewMutation) SetNormalizedInput(s string) {
	m.normalized_input = &s
}

// NormalizedInput returns the value of the "normalized_input" field in the mutation.
func (m *UnitReviewMutation) NormalizedInput() (r string, exists bool) {
	v := m.normalized_input
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalizedInput returns the old "normalized_input" field's value of the UnitReview entity.
// If the UnitReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitReviewMutation) OldNormalizedInput(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalizedInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalizedInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalizedInput: %w", err)
	}
	return oldValue.NormalizedInput, nil
}

// ResetNormalizedInput resets all changes to the "normalized_input" field.
func (m *UnitReviewMutation) ResetNormalizedInput() {
	m.normalized_input = nil
}

// SetLlmSuggestion sets the "llm_suggestion" field.
func (m *UnitReviewMutation) SetLlmSuggestion(s string) {
	m.llm_suggestion = &s
}

// LlmSuggestion returns the value of the "llm_suggestion" field in the mutation.
func (m *UnitReviewMutation) LlmSuggestion() (r string, exists bool) {
	v := m.llm_suggestion
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmSuggestion returns the old "llm_suggestion" field's value of the UnitReview entity.
// If the UnitReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitReviewMutation) OldLlmSuggestion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmSuggestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmSuggestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmSuggestion: %w", err)
	}
	return oldValue.LlmSuggestion, nil
}

// ClearLlmSuggestion clears the value of the "llm_suggestion" field.
func (m *UnitReviewMutation) ClearLlmSuggestion() {
	m.llm_suggestion = nil
	m.clearedFields[unitreview.FieldLlmSuggestion] = struct{}{}
}

// LlmSuggestionCleared returns if the "llm_suggestion" field was cleared in this mutation.
func (m *UnitReviewMutation) LlmSuggestionCleared() bool {
	_, ok := m.clearedFields[unitreview.FieldLlmSuggestion]
	return ok
}

// ResetLlmSuggestion resets all changes to the "llm_suggestion" field.
func (m *UnitReviewMutation) ResetLlmSuggestion() {
	m.llm_suggestion = nil
	delete(m.clearedFields, unitreview.FieldLlmSuggestion)
}

// SetConfidence sets the "confidence" field.
func (m *UnitReviewMutation) SetConfidence(s string) {
	m.confidence = &s
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *UnitReviewMutation) Confidence() (r string, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the UnitReview entity.
// If the UnitReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitReviewMutation) OldConfidence(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// ClearConfidence clears the value of the "confidence" field.
func (m *UnitReviewMutation) ClearConfidence() {
	m.confidence = nil
	m.clearedFields[unitreview.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *UnitReviewMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[unitreview.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *UnitReviewMutation) ResetConfidence() {
	m.confidence = nil
	delete(m.clearedFields, unitreview.FieldConfidence)
}

// SetIssueType sets the "issue_type" field.
func (m *UnitReviewMutation) SetIssueType(s string) {
	m.issue_type = &s
}

// IssueType returns the value of the "issue_type" field in the mutation.
func (m *UnitReviewMutation) IssueType() (r string, exists bool) {
	v := m.issue_type
	if v == nil {
		return
	}
	return *v, true
}

// OldIssueType returns the old "issue_type" field's value of the UnitReview entity.
// If the UnitReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitReviewMutation) OldIssueType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssueType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssueType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssueType: %w", err)
	}
	return oldValue.IssueType, nil
}

// ResetIssueType resets all changes to the "issue_type" field.
func (m *UnitReviewMutation) ResetIssueType() {
	m.issue_type = nil
}

// SetIssueDetails sets the "issue_details" field.
func (m *UnitReviewMutation) SetIssueDetails(value map[string]interface{}) {
	m.issue_details = &value
}

// IssueDetails returns the value of the "issue_details" field in the mutation.
func (m *UnitReviewMutation) IssueDetails() (r map[string]interface{}, exists bool) {
	v := m.issue_details
	if v == nil {
		return
	}
	return *v, true
}

// OldIssueDetails returns the old "issue_details" field's value of the UnitReview entity.
// If the UnitReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitReviewMutation) OldIssueDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssueDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssueDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssueDetails: %w", err)
	}
	return oldValue.IssueDetails, nil
}

// ClearIssueDetails clears the value of the "issue_details" field.
func (m *UnitReviewMutation) ClearIssueDetails() {
	m.issue_details = nil
	m.clearedFields[unitreview.FieldIssueDetails] = struct{}{}
}

// IssueDetailsCleared returns if the "issue_details" field was cleared in this mutation.
func (m *UnitReviewMutation) IssueDetailsCleared() bool {
	_, ok := m.clearedFields[unitreview.FieldIssueDetails]
	return ok
}

// ResetIssueDetails resets all changes to the "issue_details" field.
func (m *UnitReviewMutation) ResetIssueDetails() {
	m.issue_details = nil
	delete(m.clearedFields, unitreview.FieldIssueDetails)
}

// SetStatus sets the "status" field.
func (m *UnitReviewMutation) SetStatus(u unitreview.Status) {
	m.status = &u
}

// Status returns the value of the "status" field in the mutation.
func (m *UnitReviewMutation) Status() (r unitreview.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the UnitReview entity.
// If the UnitReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitReviewMutation) OldStatus(ctx context.Context) (v unitreview.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *UnitReviewMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UnitReviewMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UnitReviewMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UnitReview entity.
// If the UnitReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitReviewMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UnitReviewMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the UnitReviewMutation builder.
func (m *UnitReviewMutation) Where(ps ...predicate.UnitReview) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UnitReviewMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UnitReviewMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UnitReview, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UnitReviewMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UnitReviewMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UnitReview).
func (m *UnitReviewMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UnitReviewMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.result_id != nil {
		fields = append(fields, unitreview.FieldResultID)
	}
	if m.raw_unit != nil {
		fields = append(fields, unitreview.FieldRawUnit)
	}
	if m.normalized_input != nil {
		fields = append(fields, unitreview.FieldNormalizedInput)
	}
	if m.llm_suggestion != nil {
		fields = append(fields, unitreview.FieldLlmSuggestion)
	}
	if m.confidence != nil {
		fields = append(fields, unitreview.FieldConfidence)
	}
	if m.issue_type != nil {
		fields = append(fields, unitreview.FieldIssueType)
	}
	if m.issue_details != nil {
		fields = append(fields, unitreview.FieldIssueDetails)
	}
	if m.status != nil {
		fields = append(fields, unitreview.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, unitreview.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UnitReviewMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case unitreview.FieldResultID:
		return m.ResultID()
	case unitreview.FieldRawUnit:
		return m.RawUnit()
	case unitreview.FieldNormalizedInput:
		return m.NormalizedInput()
	case unitreview.FieldLlmSuggestion:
		return m.LlmSuggestion()
	case unitreview.FieldConfidence:
		return m.Confidence()
	case unitreview.FieldIssueType:
		return m.IssueType()
	case unitreview.FieldIssueDetails:
		return m.IssueDetails()
	case unitreview.FieldStatus:
		return m.Status()
	case unitreview.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UnitReviewMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case unitreview.FieldResultID:
		return m.OldResultID(ctx)
	case unitreview.FieldRawUnit:
		return m.OldRawUnit(ctx)
	case unitreview.FieldNormalizedInput:
		return m.OldNormalizedInput(ctx)
	case unitreview.FieldLlmSuggestion:
		return m.OldLlmSuggestion(ctx)
	case unitreview.FieldConfidence:
		return m.OldConfidence(ctx)
	case unitreview.FieldIssueType:
		return m.OldIssueType(ctx)
	case unitreview.FieldIssueDetails:
		return m.OldIssueDetails(ctx)
	case unitreview.FieldStatus:
		return m.OldStatus(ctx)
	case unitreview.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UnitReview field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UnitReviewMutation) SetField(name string, value ent.Value) error {
	switch name {
	case unitreview.FieldResultID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultID(v)
		return nil
	case unitreview.FieldRawUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawUnit(v)
		return nil
	case unitreview.FieldNormalizedInput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalizedInput(v)
		return nil
	case unitreview.FieldLlmSuggestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmSuggestion(v)
		return nil
	case unitreview.FieldConfidence:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case unitreview.FieldIssueType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssueType(v)
		return nil
	case unitreview.FieldIssueDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssueDetails(v)
		return nil
	case unitreview.FieldStatus:
		v, ok := value.(unitreview.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case unitreview.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UnitReview field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UnitReviewMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UnitReviewMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UnitReviewMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UnitReview numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UnitReviewMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(unitreview.FieldLlmSuggestion) {
		fields = append(fields, unitreview.FieldLlmSuggestion)
	}
	if m.FieldCleared(unitreview.FieldConfidence) {
		fields = append(fields, unitreview.FieldConfidence)
	}
	if m.FieldCleared(unitreview.FieldIssueDetails) {
		fields = append(fields, unitreview.FieldIssueDetails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UnitReviewMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UnitReviewMutation) ClearField(name string) error {
	switch name {
	case unitreview.FieldLlmSuggestion:
		m.ClearLlmSuggestion()
		return nil
	case unitreview.FieldConfidence:
		m.ClearConfidence()
		return nil
	case unitreview.FieldIssueDetails:
		m.ClearIssueDetails()
		return nil
	}
	return fmt.Errorf("unknown UnitReview nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UnitReviewMutation) ResetField(name string) error {
	switch name {
	case unitreview.FieldResultID:
		m.ResetResultID()
		return nil
	case unitreview.FieldRawUnit:
		m.ResetRawUnit()
		return nil
	case unitreview.FieldNormalizedInput:
		m.ResetNormalizedInput()
		return nil
	case unitreview.FieldLlmSuggestion:
		m.ResetLlmSuggestion()
		return nil
	case unitreview.FieldConfidence:
		m.ResetConfidence()
		return nil
	case unitreview.FieldIssueType:
		m.ResetIssueType()
		return nil
	case unitreview.FieldIssueDetails:
		m.ResetIssueDetails()
		return nil
	case unitreview.FieldStatus:
		m.ResetStatus()
		return nil
	case unitreview.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown UnitReview field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UnitReviewMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UnitReviewMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UnitReviewMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UnitReviewMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UnitReviewMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UnitReviewMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UnitReviewMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UnitReview unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UnitReviewMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UnitReview edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                Op
	typ               string
	id                *string
	display_name      *string
	email             *string
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	identities        map[string]struct{}
	removedidentities map[string]struct{}
	clearedidentities bool
	sessions          map[string]struct{}
	removedsessions   map[string]struct{}
	clearedsessions   bool
	patients          map[string]struct{}
	removedpatients   map[string]struct{}
	clearedpatients   bool
	done              bool
	oldValue          func(context.Context) (*User, error)
	predicates        []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id string) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDisplayName sets the "display_name" field.
func (m *UserMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *UserMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *UserMutation) ResetDisplayName() {
	m.display_name = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddIdentityIDs adds the "identities" edge to the Identity entity by ids.
func (m *UserMutation) AddIdentityIDs(ids ...string) {
	if m.identities == nil {
		m.identities = make(map[string]struct{})
	}
	for i := range ids {
		m.identities[ids[i]] = struct{}{}
	}
}

// ClearIdentities clears the "identities" edge to the Identity entity.
func (m *UserMutation) ClearIdentities() {
	m.clearedidentities = true
}

// IdentitiesCleared reports if the "identities" edge to the Identity entity was cleared.
func (m *UserMutation) IdentitiesCleared() bool {
	return m.clearedidentities
}

// RemoveIdentityIDs removes the "identities" edge to the Identity entity by IDs.
func (m *UserMutation) RemoveIdentityIDs(ids ...string) {
	if m.removedidentities == nil {
		m.removedidentities = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.identities, ids[i])
		m.removedidentities[ids[i]] = struct{}{}
	}
}

// RemovedIdentities returns the removed IDs of the "identities" edge to the Identity entity.
func (m *UserMutation) RemovedIdentitiesIDs() (ids []string) {
	for id := range m.removedidentities {
		ids = append(ids, id)
	}
	return
}

// IdentitiesIDs returns the "identities" edge IDs in the mutation.
func (m *UserMutation) IdentitiesIDs() (ids []string) {
	for id := range m.identities {
		ids = append(ids, id)
	}
	return
}

// ResetIdentities resets all changes to the "identities" edge.
func (m *UserMutation) ResetIdentities() {
	m.identities = nil
	m.clearedidentities = false
	m.removedidentities = nil
}

// AddSessionIDs adds the "sessions" edge to the Session entity by ids.
func (m *UserMutation) AddSessionIDs(ids ...string) {
	if m.sessions == nil {
		m.sessions = make(map[string]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the Session entity.
func (m *UserMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the Session entity was cleared.
func (m *UserMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the Session entity by IDs.
func (m *UserMutation) RemoveSessionIDs(ids ...string) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the Session entity.
func (m *UserMutation) RemovedSessionsIDs() (ids []string) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *UserMutation) SessionsIDs() (ids []string) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *UserMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// AddPatientIDs adds the "patients" edge to the Patient entity by ids.
func (m *UserMutation) AddPatientIDs(ids ...string) {
	if m.patients == nil {
		m.patients = make(map[string]struct{})
	}
	for i := range ids {
		m.patients[ids[i]] = struct{}{}
	}
}

// ClearPatients clears the "patients" edge to the Patient entity.
func (m *UserMutation) ClearPatients() {
	m.clearedpatients = true
}

// PatientsCleared reports if the "patients" edge to the Patient entity was cleared.
func (m *UserMutation) PatientsCleared() bool {
	return m.clearedpatients
}

// RemovePatientIDs removes the "patients" edge to the Patient entity by IDs.
func (m *UserMutation) RemovePatientIDs(ids ...string) {
	if m.removedpatients == nil {
		m.removedpatients = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.patients, ids[i])
		m.removedpatients[ids[i]] = struct{}{}
	}
}

// RemovedPatients returns the removed IDs of the "patients" edge to the Patient entity.
func (m *UserMutation) RemovedPatientsIDs() (ids []string) {
	for id := range m.removedpatients {
		ids = append(ids, id)
	}
	return
}

// PatientsIDs returns the "patients" edge IDs in the mutation.
func (m *UserMutation) PatientsIDs() (ids []string) {
	for id := range m.patients {
		ids = append(ids, id)
	}
	return
}

// ResetPatients resets all changes to the "patients" edge.
func (m *UserMutation) ResetPatients() {
	m.patients = nil
	m.clearedpatients = false
	m.removedpatients = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.display_name != nil {
		fields = append(fields, user.FieldDisplayName)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldDisplayName:
		return m.DisplayName()
	case user.FieldEmail:
		return m.Email()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.identities != nil {
		edges = append(edges, user.EdgeIdentities)
	}
	if m.sessions != nil {
		edges = append(edges, user.EdgeSessions)
	}
	if m.patients != nil {
		edges = append(edges, user.EdgePatients)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeIdentities:
		ids := make([]ent.Value, 0, len(m.identities))
		for id := range m.identities {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	case user.EdgePatients:
		ids := make([]ent.Value, 0, len(m.patients))
		for id := range m.patients {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedidentities != nil {
		edges = append(edges, user.EdgeIdentities)
	}
	if m.removedsessions != nil {
		edges = append(edges, user.EdgeSessions)
	}
	if m.removedpatients != nil {
		edges = append(edges, user.EdgePatients)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeIdentities:
		ids := make([]ent.Value, 0, len(m.removedidentities))
		for id := range m.removedidentities {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	case user.EdgePatients:
		ids := make([]ent.Value, 0, len(m.removedpatients))
		for id := range m.removedpatients {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedidentities {
		edges = append(edges, user.EdgeIdentities)
	}
	if m.clearedsessions {
		edges = append(edges, user.EdgeSessions)
	}
	if m.clearedpatients {
		edges = append(edges, user.EdgePatients)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeIdentities:
		return m.clearedidentities
	case user.EdgeSessions:
		return m.clearedsessions
	case user.EdgePatients:
		return m.clearedpatients
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeIdentities:
		m.ResetIdentities()
		return nil
	case user.EdgeSessions:
		m.ResetSessions()
		return nil
	case user.EdgePatients:
		m.ResetPatients()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
