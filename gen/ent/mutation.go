// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/medignis/docflow/gen/ent/documentclass"
	"github.com/medignis/docflow/gen/ent/job"
	"github.com/medignis/docflow/gen/ent/joblease"
	"github.com/medignis/docflow/gen/ent/pipelinestep"
	"github.com/medignis/docflow/gen/ent/predicate"
	"github.com/medignis/docflow/gen/ent/stepexecution"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDocumentClass = "DocumentClass"
	TypeJob           = "Job"
	TypeJobLease      = "JobLease"
	TypePipelineStep  = "PipelineStep"
	TypeStepExecution = "StepExecution"
)

// DocumentClassMutation represents an operation that mutates the DocumentClass nodes in the graph.
type DocumentClassMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	name          *string
	description   *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	steps         map[uuid.UUID]struct{}
	removedsteps  map[uuid.UUID]struct{}
	clearedsteps  bool
	jobs          map[uuid.UUID]struct{}
	removedjobs   map[uuid.UUID]struct{}
	clearedjobs   bool
	done          bool
	oldValue      func(context.Context) (*DocumentClass, error)
	predicates    []predicate.DocumentClass
}

var _ ent.Mutation = (*DocumentClassMutation)(nil)

// documentclassOption allows management of the mutation configuration using functional options.
type documentclassOption func(*DocumentClassMutation)

// newDocumentClassMutation creates new mutation for the DocumentClass entity.
func newDocumentClassMutation(c config, op Op, opts ...documentclassOption) *DocumentClassMutation {
	m := &DocumentClassMutation{
		config:        c,
		op:            op,
		typ:           TypeDocumentClass,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentClassID sets the ID field of the mutation.
func withDocumentClassID(id uuid.UUID) documentclassOption {
	return func(m *DocumentClassMutation) {
		var (
			err   error
			once  sync.Once
			value *DocumentClass
		)
		m.oldValue = func(ctx context.Context) (*DocumentClass, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DocumentClass.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocumentClass sets the old DocumentClass of the mutation.
func withDocumentClass(node *DocumentClass) documentclassOption {
	return func(m *DocumentClassMutation) {
		m.oldValue = func(context.Context) (*DocumentClass, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentClassMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentClassMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DocumentClass entities.
func (m *DocumentClassMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentClassMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentClassMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DocumentClass.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *DocumentClassMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DocumentClassMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the DocumentClass entity.
// If the DocumentClass object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentClassMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *DocumentClassMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *DocumentClassMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *DocumentClassMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the DocumentClass entity.
// If the DocumentClass object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentClassMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *DocumentClassMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[documentclass.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *DocumentClassMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[documentclass.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *DocumentClassMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, documentclass.FieldDescription)
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentClassMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentClassMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DocumentClass entity.
// If the DocumentClass object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentClassMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *DocumentClassMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddStepIDs adds the "steps" edge to the PipelineStep entity by ids.
func (m *DocumentClassMutation) AddStepIDs(ids ...uuid.UUID) {
	if m.steps == nil {
		m.steps = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the PipelineStep entity.
func (m *DocumentClassMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the PipelineStep entity was cleared.
func (m *DocumentClassMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the PipelineStep entity by IDs.
func (m *DocumentClassMutation) RemoveStepIDs(ids ...uuid.UUID) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the PipelineStep entity.
func (m *DocumentClassMutation) RemovedStepsIDs() (ids []uuid.UUID) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *DocumentClassMutation) StepsIDs() (ids []uuid.UUID) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *DocumentClassMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// AddJobIDs adds the "jobs" edge to the Job entity by ids.
func (m *DocumentClassMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the Job entity.
func (m *DocumentClassMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the Job entity was cleared.
func (m *DocumentClassMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the Job entity by IDs.
func (m *DocumentClassMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the Job entity.
func (m *DocumentClassMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *DocumentClassMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *DocumentClassMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the DocumentClassMutation builder.
func (m *DocumentClassMutation) Where(ps ...predicate.DocumentClass) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentClassMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentClassMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DocumentClass, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentClassMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentClassMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DocumentClass).
func (m *DocumentClassMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentClassMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, documentclass.FieldName)
	}
	if m.description != nil {
		fields = append(fields, documentclass.FieldDescription)
	}
	if m.created_at != nil {
		fields = append(fields, documentclass.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentClassMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case documentclass.FieldName:
		return m.Name()
	case documentclass.FieldDescription:
		return m.Description()
	case documentclass.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentClassMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case documentclass.FieldName:
		return m.OldName(ctx)
	case documentclass.FieldDescription:
		return m.OldDescription(ctx)
	case documentclass.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DocumentClass field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentClassMutation) SetField(name string, value ent.Value) error {
	switch name {
	case documentclass.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case documentclass.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case documentclass.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentClass field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentClassMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentClassMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentClassMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DocumentClass numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentClassMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(documentclass.FieldDescription) {
		fields = append(fields, documentclass.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentClassMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentClassMutation) ClearField(name string) error {
	switch name {
	case documentclass.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown DocumentClass nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentClassMutation) ResetField(name string) error {
	switch name {
	case documentclass.FieldName:
		m.ResetName()
		return nil
	case documentclass.FieldDescription:
		m.ResetDescription()
		return nil
	case documentclass.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown DocumentClass field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentClassMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.steps != nil {
		edges = append(edges, documentclass.EdgeSteps)
	}
	if m.jobs != nil {
		edges = append(edges, documentclass.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentClassMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case documentclass.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	case documentclass.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentClassMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsteps != nil {
		edges = append(edges, documentclass.EdgeSteps)
	}
	if m.removedjobs != nil {
		edges = append(edges, documentclass.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentClassMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case documentclass.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	case documentclass.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentClassMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsteps {
		edges = append(edges, documentclass.EdgeSteps)
	}
	if m.clearedjobs {
		edges = append(edges, documentclass.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentClassMutation) EdgeCleared(name string) bool {
	switch name {
	case documentclass.EdgeSteps:
		return m.clearedsteps
	case documentclass.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentClassMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown DocumentClass unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentClassMutation) ResetEdge(name string) error {
	switch name {
	case documentclass.EdgeSteps:
		m.ResetSteps()
		return nil
	case documentclass.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown DocumentClass edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	filename              *string
	content_type          *string
	file_size             *int
	addfile_size          *int
	artifact              *[]byte
	status                *string
	result                *json.RawMessage
	appendresult          json.RawMessage
	aux_text              *string
	consent               *string
	cancel_requested      *bool
	error_message         *string
	created_at            *time.Time
	started_at            *time.Time
	finished_at           *time.Time
	clearedFields         map[string]struct{}
	document_class        *uuid.UUID
	cleareddocument_class bool
	executions            map[uuid.UUID]struct{}
	removedexecutions     map[uuid.UUID]struct{}
	clearedexecutions     bool
	done                  bool
	oldValue              func(context.Context) (*Job, error)
	predicates            []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id uuid.UUID) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentClassID sets the "document_class_id" field.
func (m *JobMutation) SetDocumentClassID(u uuid.UUID) {
	m.document_class = &u
}

// DocumentClassID returns the value of the "document_class_id" field in the mutation.
func (m *JobMutation) DocumentClassID() (r uuid.UUID, exists bool) {
	v := m.document_class
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentClassID returns the old "document_class_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldDocumentClassID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentClassID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentClassID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentClassID: %w", err)
	}
	return oldValue.DocumentClassID, nil
}

// ClearDocumentClassID clears the value of the "document_class_id" field.
func (m *JobMutation) ClearDocumentClassID() {
	m.document_class = nil
	m.clearedFields[job.FieldDocumentClassID] = struct{}{}
}

// DocumentClassIDCleared returns if the "document_class_id" field was cleared in this mutation.
func (m *JobMutation) DocumentClassIDCleared() bool {
	_, ok := m.clearedFields[job.FieldDocumentClassID]
	return ok
}

// ResetDocumentClassID resets all changes to the "document_class_id" field.
func (m *JobMutation) ResetDocumentClassID() {
	m.document_class = nil
	delete(m.clearedFields, job.FieldDocumentClassID)
}

// SetFilename sets the "filename" field.
func (m *JobMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *JobMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *JobMutation) ResetFilename() {
	m.filename = nil
}

// SetContentType sets the "content_type" field.
func (m *JobMutation) SetContentType(s string) {
	m.content_type = &s
}

// ContentType returns the value of the "content_type" field in the mutation.
func (m *JobMutation) ContentType() (r string, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentType returns the old "content_type" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldContentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentType: %w", err)
	}
	return oldValue.ContentType, nil
}

// ResetContentType resets all changes to the "content_type" field.
func (m *JobMutation) ResetContentType() {
	m.content_type = nil
}

// SetFileSize sets the "file_size" field.
func (m *JobMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *JobMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *JobMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *JobMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *JobMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetArtifact sets the "artifact" field.
func (m *JobMutation) SetArtifact(b []byte) {
	m.artifact = &b
}

// Artifact returns the value of the "artifact" field in the mutation.
func (m *JobMutation) Artifact() (r []byte, exists bool) {
	v := m.artifact
	if v == nil {
		return
	}
	return *v, true
}

// OldArtifact returns the old "artifact" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldArtifact(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArtifact is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArtifact requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArtifact: %w", err)
	}
	return oldValue.Artifact, nil
}

// ResetArtifact resets all changes to the "artifact" field.
func (m *JobMutation) ResetArtifact() {
	m.artifact = nil
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetResult sets the "result" field.
func (m *JobMutation) SetResult(jm json.RawMessage) {
	m.result = &jm
	m.appendresult = nil
}

// Result returns the value of the "result" field in the mutation.
func (m *JobMutation) Result() (r json.RawMessage, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldResult(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// AppendResult adds jm to the "result" field.
func (m *JobMutation) AppendResult(jm json.RawMessage) {
	m.appendresult = append(m.appendresult, jm...)
}

// AppendedResult returns the list of values that were appended to the "result" field in this mutation.
func (m *JobMutation) AppendedResult() (json.RawMessage, bool) {
	if len(m.appendresult) == 0 {
		return nil, false
	}
	return m.appendresult, true
}

// ClearResult clears the value of the "result" field.
func (m *JobMutation) ClearResult() {
	m.result = nil
	m.appendresult = nil
	m.clearedFields[job.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *JobMutation) ResultCleared() bool {
	_, ok := m.clearedFields[job.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *JobMutation) ResetResult() {
	m.result = nil
	m.appendresult = nil
	delete(m.clearedFields, job.FieldResult)
}

// SetAuxText sets the "aux_text" field.
func (m *JobMutation) SetAuxText(s string) {
	m.aux_text = &s
}

// AuxText returns the value of the "aux_text" field in the mutation.
func (m *JobMutation) AuxText() (r string, exists bool) {
	v := m.aux_text
	if v == nil {
		return
	}
	return *v, true
}

// OldAuxText returns the old "aux_text" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldAuxText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuxText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuxText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuxText: %w", err)
	}
	return oldValue.AuxText, nil
}

// ClearAuxText clears the value of the "aux_text" field.
func (m *JobMutation) ClearAuxText() {
	m.aux_text = nil
	m.clearedFields[job.FieldAuxText] = struct{}{}
}

// AuxTextCleared returns if the "aux_text" field was cleared in this mutation.
func (m *JobMutation) AuxTextCleared() bool {
	_, ok := m.clearedFields[job.FieldAuxText]
	return ok
}

// ResetAuxText resets all changes to the "aux_text" field.
func (m *JobMutation) ResetAuxText() {
	m.aux_text = nil
	delete(m.clearedFields, job.FieldAuxText)
}

// SetConsent sets the "consent" field.
func (m *JobMutation) SetConsent(s string) {
	m.consent = &s
}

// Consent returns the value of the "consent" field in the mutation.
func (m *JobMutation) Consent() (r string, exists bool) {
	v := m.consent
	if v == nil {
		return
	}
	return *v, true
}

// OldConsent returns the old "consent" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldConsent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsent: %w", err)
	}
	return oldValue.Consent, nil
}

// ResetConsent resets all changes to the "consent" field.
func (m *JobMutation) ResetConsent() {
	m.consent = nil
}

// SetCancelRequested sets the "cancel_requested" field.
func (m *JobMutation) SetCancelRequested(b bool) {
	m.cancel_requested = &b
}

// CancelRequested returns the value of the "cancel_requested" field in the mutation.
func (m *JobMutation) CancelRequested() (r bool, exists bool) {
	v := m.cancel_requested
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelRequested returns the old "cancel_requested" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCancelRequested(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelRequested is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelRequested requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelRequested: %w", err)
	}
	return oldValue.CancelRequested, nil
}

// ResetCancelRequested resets all changes to the "cancel_requested" field.
func (m *JobMutation) ResetCancelRequested() {
	m.cancel_requested = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *JobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *JobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *JobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[job.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *JobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[job.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *JobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, job.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *JobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *JobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *JobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[job.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *JobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *JobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, job.FieldStartedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *JobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *JobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *JobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[job.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *JobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *JobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, job.FieldFinishedAt)
}

// ClearDocumentClass clears the "document_class" edge to the DocumentClass entity.
func (m *JobMutation) ClearDocumentClass() {
	m.cleareddocument_class = true
	m.clearedFields[job.FieldDocumentClassID] = struct{}{}
}

// DocumentClassCleared reports if the "document_class" edge to the DocumentClass entity was cleared.
func (m *JobMutation) DocumentClassCleared() bool {
	return m.DocumentClassIDCleared() || m.cleareddocument_class
}

// DocumentClassIDs returns the "document_class" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentClassID instead. It exists only for internal usage by the builders.
func (m *JobMutation) DocumentClassIDs() (ids []uuid.UUID) {
	if id := m.document_class; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocumentClass resets all changes to the "document_class" edge.
func (m *JobMutation) ResetDocumentClass() {
	m.document_class = nil
	m.cleareddocument_class = false
}

// AddExecutionIDs adds the "executions" edge to the StepExecution entity by ids.
func (m *JobMutation) AddExecutionIDs(ids ...uuid.UUID) {
	if m.executions == nil {
		m.executions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.executions[ids[i]] = struct{}{}
	}
}

// ClearExecutions clears the "executions" edge to the StepExecution entity.
func (m *JobMutation) ClearExecutions() {
	m.clearedexecutions = true
}

// ExecutionsCleared reports if the "executions" edge to the StepExecution entity was cleared.
func (m *JobMutation) ExecutionsCleared() bool {
	return m.clearedexecutions
}

// RemoveExecutionIDs removes the "executions" edge to the StepExecution entity by IDs.
func (m *JobMutation) RemoveExecutionIDs(ids ...uuid.UUID) {
	if m.removedexecutions == nil {
		m.removedexecutions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.executions, ids[i])
		m.removedexecutions[ids[i]] = struct{}{}
	}
}

// RemovedExecutions returns the removed IDs of the "executions" edge to the StepExecution entity.
func (m *JobMutation) RemovedExecutionsIDs() (ids []uuid.UUID) {
	for id := range m.removedexecutions {
		ids = append(ids, id)
	}
	return
}

// ExecutionsIDs returns the "executions" edge IDs in the mutation.
func (m *JobMutation) ExecutionsIDs() (ids []uuid.UUID) {
	for id := range m.executions {
		ids = append(ids, id)
	}
	return
}

// ResetExecutions resets all changes to the "executions" edge.
func (m *JobMutation) ResetExecutions() {
	m.executions = nil
	m.clearedexecutions = false
	m.removedexecutions = nil
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.document_class != nil {
		fields = append(fields, job.FieldDocumentClassID)
	}
	if m.filename != nil {
		fields = append(fields, job.FieldFilename)
	}
	if m.content_type != nil {
		fields = append(fields, job.FieldContentType)
	}
	if m.file_size != nil {
		fields = append(fields, job.FieldFileSize)
	}
	if m.artifact != nil {
		fields = append(fields, job.FieldArtifact)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.result != nil {
		fields = append(fields, job.FieldResult)
	}
	if m.aux_text != nil {
		fields = append(fields, job.FieldAuxText)
	}
	if m.consent != nil {
		fields = append(fields, job.FieldConsent)
	}
	if m.cancel_requested != nil {
		fields = append(fields, job.FieldCancelRequested)
	}
	if m.error_message != nil {
		fields = append(fields, job.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, job.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldDocumentClassID:
		return m.DocumentClassID()
	case job.FieldFilename:
		return m.Filename()
	case job.FieldContentType:
		return m.ContentType()
	case job.FieldFileSize:
		return m.FileSize()
	case job.FieldArtifact:
		return m.Artifact()
	case job.FieldStatus:
		return m.Status()
	case job.FieldResult:
		return m.Result()
	case job.FieldAuxText:
		return m.AuxText()
	case job.FieldConsent:
		return m.Consent()
	case job.FieldCancelRequested:
		return m.CancelRequested()
	case job.FieldErrorMessage:
		return m.ErrorMessage()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldStartedAt:
		return m.StartedAt()
	case job.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldDocumentClassID:
		return m.OldDocumentClassID(ctx)
	case job.FieldFilename:
		return m.OldFilename(ctx)
	case job.FieldContentType:
		return m.OldContentType(ctx)
	case job.FieldFileSize:
		return m.OldFileSize(ctx)
	case job.FieldArtifact:
		return m.OldArtifact(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldResult:
		return m.OldResult(ctx)
	case job.FieldAuxText:
		return m.OldAuxText(ctx)
	case job.FieldConsent:
		return m.OldConsent(ctx)
	case job.FieldCancelRequested:
		return m.OldCancelRequested(ctx)
	case job.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case job.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldDocumentClassID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentClassID(v)
		return nil
	case job.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case job.FieldContentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentType(v)
		return nil
	case job.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case job.FieldArtifact:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArtifact(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldResult:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case job.FieldAuxText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuxText(v)
		return nil
	case job.FieldConsent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsent(v)
		return nil
	case job.FieldCancelRequested:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelRequested(v)
		return nil
	case job.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case job.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, job.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case job.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case job.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldDocumentClassID) {
		fields = append(fields, job.FieldDocumentClassID)
	}
	if m.FieldCleared(job.FieldResult) {
		fields = append(fields, job.FieldResult)
	}
	if m.FieldCleared(job.FieldAuxText) {
		fields = append(fields, job.FieldAuxText)
	}
	if m.FieldCleared(job.FieldErrorMessage) {
		fields = append(fields, job.FieldErrorMessage)
	}
	if m.FieldCleared(job.FieldStartedAt) {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.FieldCleared(job.FieldFinishedAt) {
		fields = append(fields, job.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldDocumentClassID:
		m.ClearDocumentClassID()
		return nil
	case job.FieldResult:
		m.ClearResult()
		return nil
	case job.FieldAuxText:
		m.ClearAuxText()
		return nil
	case job.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case job.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case job.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldDocumentClassID:
		m.ResetDocumentClassID()
		return nil
	case job.FieldFilename:
		m.ResetFilename()
		return nil
	case job.FieldContentType:
		m.ResetContentType()
		return nil
	case job.FieldFileSize:
		m.ResetFileSize()
		return nil
	case job.FieldArtifact:
		m.ResetArtifact()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldResult:
		m.ResetResult()
		return nil
	case job.FieldAuxText:
		m.ResetAuxText()
		return nil
	case job.FieldConsent:
		m.ResetConsent()
		return nil
	case job.FieldCancelRequested:
		m.ResetCancelRequested()
		return nil
	case job.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case job.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.document_class != nil {
		edges = append(edges, job.EdgeDocumentClass)
	}
	if m.executions != nil {
		edges = append(edges, job.EdgeExecutions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeDocumentClass:
		if id := m.document_class; id != nil {
			return []ent.Value{*id}
		}
	case job.EdgeExecutions:
		ids := make([]ent.Value, 0, len(m.executions))
		for id := range m.executions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedexecutions != nil {
		edges = append(edges, job.EdgeExecutions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeExecutions:
		ids := make([]ent.Value, 0, len(m.removedexecutions))
		for id := range m.removedexecutions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddocument_class {
		edges = append(edges, job.EdgeDocumentClass)
	}
	if m.clearedexecutions {
		edges = append(edges, job.EdgeExecutions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	switch name {
	case job.EdgeDocumentClass:
		return m.cleareddocument_class
	case job.EdgeExecutions:
		return m.clearedexecutions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	switch name {
	case job.EdgeDocumentClass:
		m.ClearDocumentClass()
		return nil
	}
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	switch name {
	case job.EdgeDocumentClass:
		m.ResetDocumentClass()
		return nil
	case job.EdgeExecutions:
		m.ResetExecutions()
		return nil
	}
	return fmt.Errorf("unknown Job edge %s", name)
}

// JobLeaseMutation represents an operation that mutates the JobLease nodes in the graph.
type JobLeaseMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	job_id        *uuid.UUID
	holder        *string
	acquired_at   *time.Time
	expires_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*JobLease, error)
	predicates    []predicate.JobLease
}

var _ ent.Mutation = (*JobLeaseMutation)(nil)

// jobleaseOption allows management of the mutation configuration using functional options.
type jobleaseOption func(*JobLeaseMutation)

// newJobLeaseMutation creates new mutation for the JobLease entity.
func newJobLeaseMutation(c config, op Op, opts ...jobleaseOption) *JobLeaseMutation {
	m := &JobLeaseMutation{
		config:        c,
		op:            op,
		typ:           TypeJobLease,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobLeaseID sets the ID field of the mutation.
func withJobLeaseID(id uuid.UUID) jobleaseOption {
	return func(m *JobLeaseMutation) {
		var (
			err   error
			once  sync.Once
			value *JobLease
		)
		m.oldValue = func(ctx context.Context) (*JobLease, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().JobLease.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJobLease sets the old JobLease of the mutation.
func withJobLease(node *JobLease) jobleaseOption {
	return func(m *JobLeaseMutation) {
		m.oldValue = func(context.Context) (*JobLease, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobLeaseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobLeaseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of JobLease entities.
func (m *JobLeaseMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobLeaseMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobLeaseMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().JobLease.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *JobLeaseMutation) SetJobID(u uuid.UUID) {
	m.job_id = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *JobLeaseMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the JobLease entity.
// If the JobLease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobLeaseMutation) OldJobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *JobLeaseMutation) ResetJobID() {
	m.job_id = nil
}

// SetHolder sets the "holder" field.
func (m *JobLeaseMutation) SetHolder(s string) {
	m.holder = &s
}

// Holder returns the value of the "holder" field in the mutation.
func (m *JobLeaseMutation) Holder() (r string, exists bool) {
	v := m.holder
	if v == nil {
		return
	}
	return *v, true
}

// OldHolder returns the old "holder" field's value of the JobLease entity.
// If the JobLease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobLeaseMutation) OldHolder(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHolder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHolder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHolder: %w", err)
	}
	return oldValue.Holder, nil
}

// ResetHolder resets all changes to the "holder" field.
func (m *JobLeaseMutation) ResetHolder() {
	m.holder = nil
}

// SetAcquiredAt sets the "acquired_at" field.
func (m *JobLeaseMutation) SetAcquiredAt(t time.Time) {
	m.acquired_at = &t
}

// AcquiredAt returns the value of the "acquired_at" field in the mutation.
func (m *JobLeaseMutation) AcquiredAt() (r time.Time, exists bool) {
	v := m.acquired_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAcquiredAt returns the old "acquired_at" field's value of the JobLease entity.
// If the JobLease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobLeaseMutation) OldAcquiredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcquiredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcquiredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcquiredAt: %w", err)
	}
	return oldValue.AcquiredAt, nil
}

// ResetAcquiredAt resets all changes to the "acquired_at" field.
func (m *JobLeaseMutation) ResetAcquiredAt() {
	m.acquired_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *JobLeaseMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *JobLeaseMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the JobLease entity.
// If the JobLease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobLeaseMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
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
func (m *JobLeaseMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// Where appends a list predicates to the JobLeaseMutation builder.
func (m *JobLeaseMutation) Where(ps ...predicate.JobLease) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobLeaseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobLeaseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.JobLease, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobLeaseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobLeaseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (JobLease).
func (m *JobLeaseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobLeaseMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.job_id != nil {
		fields = append(fields, joblease.FieldJobID)
	}
	if m.holder != nil {
		fields = append(fields, joblease.FieldHolder)
	}
	if m.acquired_at != nil {
		fields = append(fields, joblease.FieldAcquiredAt)
	}
	if m.expires_at != nil {
		fields = append(fields, joblease.FieldExpiresAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobLeaseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case joblease.FieldJobID:
		return m.JobID()
	case joblease.FieldHolder:
		return m.Holder()
	case joblease.FieldAcquiredAt:
		return m.AcquiredAt()
	case joblease.FieldExpiresAt:
		return m.ExpiresAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobLeaseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case joblease.FieldJobID:
		return m.OldJobID(ctx)
	case joblease.FieldHolder:
		return m.OldHolder(ctx)
	case joblease.FieldAcquiredAt:
		return m.OldAcquiredAt(ctx)
	case joblease.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	}
	return nil, fmt.Errorf("unknown JobLease field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobLeaseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case joblease.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case joblease.FieldHolder:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHolder(v)
		return nil
	case joblease.FieldAcquiredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcquiredAt(v)
		return nil
	case joblease.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	}
	return fmt.Errorf("unknown JobLease field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobLeaseMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobLeaseMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobLeaseMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown JobLease numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobLeaseMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobLeaseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobLeaseMutation) ClearField(name string) error {
	return fmt.Errorf("unknown JobLease nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobLeaseMutation) ResetField(name string) error {
	switch name {
	case joblease.FieldJobID:
		m.ResetJobID()
		return nil
	case joblease.FieldHolder:
		m.ResetHolder()
		return nil
	case joblease.FieldAcquiredAt:
		m.ResetAcquiredAt()
		return nil
	case joblease.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown JobLease field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobLeaseMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobLeaseMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobLeaseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobLeaseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobLeaseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobLeaseMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobLeaseMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown JobLease unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobLeaseMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown JobLease edge %s", name)
}

// PipelineStepMutation represents an operation that mutates the PipelineStep nodes in the graph.
type PipelineStepMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	name                  *string
	prompt                *string
	step_order            *int
	addstep_order         *int
	enabled               *bool
	is_branching          *bool
	branching_field       *string
	post_branching        *bool
	branch_labels         *[]string
	appendbranch_labels   []string
	stop_conditions       *json.RawMessage
	appendstop_conditions json.RawMessage
	output_schema         *json.RawMessage
	appendoutput_schema   json.RawMessage
	model_name            *string
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	document_class        *uuid.UUID
	cleareddocument_class bool
	executions            map[uuid.UUID]struct{}
	removedexecutions     map[uuid.UUID]struct{}
	clearedexecutions     bool
	done                  bool
	oldValue              func(context.Context) (*PipelineStep, error)
	predicates            []predicate.PipelineStep
}

var _ ent.Mutation = (*PipelineStepMutation)(nil)

// pipelinestepOption allows management of the mutation configuration using functional options.
type pipelinestepOption func(*PipelineStepMutation)

// newPipelineStepMutation creates new mutation for the PipelineStep entity.
func newPipelineStepMutation(c config, op Op, opts ...pipelinestepOption) *PipelineStepMutation {
	m := &PipelineStepMutation{
		config:        c,
		op:            op,
		typ:           TypePipelineStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineStepID sets the ID field of the mutation.
func withPipelineStepID(id uuid.UUID) pipelinestepOption {
	return func(m *PipelineStepMutation) {
		var (
			err   error
			once  sync.Once
			value *PipelineStep
		)
		m.oldValue = func(ctx context.Context) (*PipelineStep, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PipelineStep.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipelineStep sets the old PipelineStep of the mutation.
func withPipelineStep(node *PipelineStep) pipelinestepOption {
	return func(m *PipelineStepMutation) {
		m.oldValue = func(context.Context) (*PipelineStep, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineStepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineStepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PipelineStep entities.
func (m *PipelineStepMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineStepMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineStepMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PipelineStep.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentClassID sets the "document_class_id" field.
func (m *PipelineStepMutation) SetDocumentClassID(u uuid.UUID) {
	m.document_class = &u
}

// DocumentClassID returns the value of the "document_class_id" field in the mutation.
func (m *PipelineStepMutation) DocumentClassID() (r uuid.UUID, exists bool) {
	v := m.document_class
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentClassID returns the old "document_class_id" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldDocumentClassID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentClassID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentClassID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentClassID: %w", err)
	}
	return oldValue.DocumentClassID, nil
}

// ClearDocumentClassID clears the value of the "document_class_id" field.
func (m *PipelineStepMutation) ClearDocumentClassID() {
	m.document_class = nil
	m.clearedFields[pipelinestep.FieldDocumentClassID] = struct{}{}
}

// DocumentClassIDCleared returns if the "document_class_id" field was cleared in this mutation.
func (m *PipelineStepMutation) DocumentClassIDCleared() bool {
	_, ok := m.clearedFields[pipelinestep.FieldDocumentClassID]
	return ok
}

// ResetDocumentClassID resets all changes to the "document_class_id" field.
func (m *PipelineStepMutation) ResetDocumentClassID() {
	m.document_class = nil
	delete(m.clearedFields, pipelinestep.FieldDocumentClassID)
}

// SetName sets the "name" field.
func (m *PipelineStepMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PipelineStepMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *PipelineStepMutation) ResetName() {
	m.name = nil
}

// SetPrompt sets the "prompt" field.
func (m *PipelineStepMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *PipelineStepMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldPrompt(ctx context.Context) (v string, err error) {
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
func (m *PipelineStepMutation) ResetPrompt() {
	m.prompt = nil
}

// SetStepOrder sets the "step_order" field.
func (m *PipelineStepMutation) SetStepOrder(i int) {
	m.step_order = &i
	m.addstep_order = nil
}

// StepOrder returns the value of the "step_order" field in the mutation.
func (m *PipelineStepMutation) StepOrder() (r int, exists bool) {
	v := m.step_order
	if v == nil {
		return
	}
	return *v, true
}

// OldStepOrder returns the old "step_order" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldStepOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepOrder: %w", err)
	}
	return oldValue.StepOrder, nil
}

// AddStepOrder adds i to the "step_order" field.
func (m *PipelineStepMutation) AddStepOrder(i int) {
	if m.addstep_order != nil {
		*m.addstep_order += i
	} else {
		m.addstep_order = &i
	}
}

// AddedStepOrder returns the value that was added to the "step_order" field in this mutation.
func (m *PipelineStepMutation) AddedStepOrder() (r int, exists bool) {
	v := m.addstep_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepOrder resets all changes to the "step_order" field.
func (m *PipelineStepMutation) ResetStepOrder() {
	m.step_order = nil
	m.addstep_order = nil
}

// SetEnabled sets the "enabled" field.
func (m *PipelineStepMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *PipelineStepMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *PipelineStepMutation) ResetEnabled() {
	m.enabled = nil
}

// SetIsBranching sets the "is_branching" field.
func (m *PipelineStepMutation) SetIsBranching(b bool) {
	m.is_branching = &b
}

// IsBranching returns the value of the "is_branching" field in the mutation.
func (m *PipelineStepMutation) IsBranching() (r bool, exists bool) {
	v := m.is_branching
	if v == nil {
		return
	}
	return *v, true
}

// OldIsBranching returns the old "is_branching" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldIsBranching(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsBranching is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsBranching requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsBranching: %w", err)
	}
	return oldValue.IsBranching, nil
}

// ResetIsBranching resets all changes to the "is_branching" field.
func (m *PipelineStepMutation) ResetIsBranching() {
	m.is_branching = nil
}

// SetBranchingField sets the "branching_field" field.
func (m *PipelineStepMutation) SetBranchingField(s string) {
	m.branching_field = &s
}

// BranchingField returns the value of the "branching_field" field in the mutation.
func (m *PipelineStepMutation) BranchingField() (r string, exists bool) {
	v := m.branching_field
	if v == nil {
		return
	}
	return *v, true
}

// OldBranchingField returns the old "branching_field" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldBranchingField(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranchingField is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranchingField requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranchingField: %w", err)
	}
	return oldValue.BranchingField, nil
}

// ClearBranchingField clears the value of the "branching_field" field.
func (m *PipelineStepMutation) ClearBranchingField() {
	m.branching_field = nil
	m.clearedFields[pipelinestep.FieldBranchingField] = struct{}{}
}

// BranchingFieldCleared returns if the "branching_field" field was cleared in this mutation.
func (m *PipelineStepMutation) BranchingFieldCleared() bool {
	_, ok := m.clearedFields[pipelinestep.FieldBranchingField]
	return ok
}

// ResetBranchingField resets all changes to the "branching_field" field.
func (m *PipelineStepMutation) ResetBranchingField() {
	m.branching_field = nil
	delete(m.clearedFields, pipelinestep.FieldBranchingField)
}

// SetPostBranching sets the "post_branching" field.
func (m *PipelineStepMutation) SetPostBranching(b bool) {
	m.post_branching = &b
}

// PostBranching returns the value of the "post_branching" field in the mutation.
func (m *PipelineStepMutation) PostBranching() (r bool, exists bool) {
	v := m.post_branching
	if v == nil {
		return
	}
	return *v, true
}

// OldPostBranching returns the old "post_branching" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldPostBranching(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostBranching is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostBranching requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostBranching: %w", err)
	}
	return oldValue.PostBranching, nil
}

// ResetPostBranching resets all changes to the "post_branching" field.
func (m *PipelineStepMutation) ResetPostBranching() {
	m.post_branching = nil
}

// SetBranchLabels sets the "branch_labels" field.
func (m *PipelineStepMutation) SetBranchLabels(s []string) {
	m.branch_labels = &s
	m.appendbranch_labels = nil
}

// BranchLabels returns the value of the "branch_labels" field in the mutation.
func (m *PipelineStepMutation) BranchLabels() (r []string, exists bool) {
	v := m.branch_labels
	if v == nil {
		return
	}
	return *v, true
}

// OldBranchLabels returns the old "branch_labels" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldBranchLabels(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranchLabels is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranchLabels requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranchLabels: %w", err)
	}
	return oldValue.BranchLabels, nil
}

// AppendBranchLabels adds s to the "branch_labels" field.
func (m *PipelineStepMutation) AppendBranchLabels(s []string) {
	m.appendbranch_labels = append(m.appendbranch_labels, s...)
}

// AppendedBranchLabels returns the list of values that were appended to the "branch_labels" field in this mutation.
func (m *PipelineStepMutation) AppendedBranchLabels() ([]string, bool) {
	if len(m.appendbranch_labels) == 0 {
		return nil, false
	}
	return m.appendbranch_labels, true
}

// ClearBranchLabels clears the value of the "branch_labels" field.
func (m *PipelineStepMutation) ClearBranchLabels() {
	m.branch_labels = nil
	m.appendbranch_labels = nil
	m.clearedFields[pipelinestep.FieldBranchLabels] = struct{}{}
}

// BranchLabelsCleared returns if the "branch_labels" field was cleared in this mutation.
func (m *PipelineStepMutation) BranchLabelsCleared() bool {
	_, ok := m.clearedFields[pipelinestep.FieldBranchLabels]
	return ok
}

// ResetBranchLabels resets all changes to the "branch_labels" field.
func (m *PipelineStepMutation) ResetBranchLabels() {
	m.branch_labels = nil
	m.appendbranch_labels = nil
	delete(m.clearedFields, pipelinestep.FieldBranchLabels)
}

// SetStopConditions sets the "stop_conditions" field.
func (m *PipelineStepMutation) SetStopConditions(jm json.RawMessage) {
	m.stop_conditions = &jm
	m.appendstop_conditions = nil
}

// StopConditions returns the value of the "stop_conditions" field in the mutation.
func (m *PipelineStepMutation) StopConditions() (r json.RawMessage, exists bool) {
	v := m.stop_conditions
	if v == nil {
		return
	}
	return *v, true
}

// OldStopConditions returns the old "stop_conditions" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldStopConditions(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStopConditions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStopConditions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStopConditions: %w", err)
	}
	return oldValue.StopConditions, nil
}

// AppendStopConditions adds jm to the "stop_conditions" field.
func (m *PipelineStepMutation) AppendStopConditions(jm json.RawMessage) {
	m.appendstop_conditions = append(m.appendstop_conditions, jm...)
}

// AppendedStopConditions returns the list of values that were appended to the "stop_conditions" field in this mutation.
func (m *PipelineStepMutation) AppendedStopConditions() (json.RawMessage, bool) {
	if len(m.appendstop_conditions) == 0 {
		return nil, false
	}
	return m.appendstop_conditions, true
}

// ClearStopConditions clears the value of the "stop_conditions" field.
func (m *PipelineStepMutation) ClearStopConditions() {
	m.stop_conditions = nil
	m.appendstop_conditions = nil
	m.clearedFields[pipelinestep.FieldStopConditions] = struct{}{}
}

// StopConditionsCleared returns if the "stop_conditions" field was cleared in this mutation.
func (m *PipelineStepMutation) StopConditionsCleared() bool {
	_, ok := m.clearedFields[pipelinestep.FieldStopConditions]
	return ok
}

// ResetStopConditions resets all changes to the "stop_conditions" field.
func (m *PipelineStepMutation) ResetStopConditions() {
	m.stop_conditions = nil
	m.appendstop_conditions = nil
	delete(m.clearedFields, pipelinestep.FieldStopConditions)
}

// SetOutputSchema sets the "output_schema" field.
func (m *PipelineStepMutation) SetOutputSchema(jm json.RawMessage) {
	m.output_schema = &jm
	m.appendoutput_schema = nil
}

// OutputSchema returns the value of the "output_schema" field in the mutation.
func (m *PipelineStepMutation) OutputSchema() (r json.RawMessage, exists bool) {
	v := m.output_schema
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputSchema returns the old "output_schema" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldOutputSchema(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputSchema is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputSchema requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputSchema: %w", err)
	}
	return oldValue.OutputSchema, nil
}

// AppendOutputSchema adds jm to the "output_schema" field.
func (m *PipelineStepMutation) AppendOutputSchema(jm json.RawMessage) {
	m.appendoutput_schema = append(m.appendoutput_schema, jm...)
}

// AppendedOutputSchema returns the list of values that were appended to the "output_schema" field in this mutation.
func (m *PipelineStepMutation) AppendedOutputSchema() (json.RawMessage, bool) {
	if len(m.appendoutput_schema) == 0 {
		return nil, false
	}
	return m.appendoutput_schema, true
}

// ClearOutputSchema clears the value of the "output_schema" field.
func (m *PipelineStepMutation) ClearOutputSchema() {
	m.output_schema = nil
	m.appendoutput_schema = nil
	m.clearedFields[pipelinestep.FieldOutputSchema] = struct{}{}
}

// OutputSchemaCleared returns if the "output_schema" field was cleared in this mutation.
func (m *PipelineStepMutation) OutputSchemaCleared() bool {
	_, ok := m.clearedFields[pipelinestep.FieldOutputSchema]
	return ok
}

// ResetOutputSchema resets all changes to the "output_schema" field.
func (m *PipelineStepMutation) ResetOutputSchema() {
	m.output_schema = nil
	m.appendoutput_schema = nil
	delete(m.clearedFields, pipelinestep.FieldOutputSchema)
}

// SetModelName sets the "model_name" field.
func (m *PipelineStepMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *PipelineStepMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldModelName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ClearModelName clears the value of the "model_name" field.
func (m *PipelineStepMutation) ClearModelName() {
	m.model_name = nil
	m.clearedFields[pipelinestep.FieldModelName] = struct{}{}
}

// ModelNameCleared returns if the "model_name" field was cleared in this mutation.
func (m *PipelineStepMutation) ModelNameCleared() bool {
	_, ok := m.clearedFields[pipelinestep.FieldModelName]
	return ok
}

// ResetModelName resets all changes to the "model_name" field.
func (m *PipelineStepMutation) ResetModelName() {
	m.model_name = nil
	delete(m.clearedFields, pipelinestep.FieldModelName)
}

// SetCreatedAt sets the "created_at" field.
func (m *PipelineStepMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PipelineStepMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *PipelineStepMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PipelineStepMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PipelineStepMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PipelineStep entity.
// If the PipelineStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStepMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *PipelineStepMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearDocumentClass clears the "document_class" edge to the DocumentClass entity.
func (m *PipelineStepMutation) ClearDocumentClass() {
	m.cleareddocument_class = true
	m.clearedFields[pipelinestep.FieldDocumentClassID] = struct{}{}
}

// DocumentClassCleared reports if the "document_class" edge to the DocumentClass entity was cleared.
func (m *PipelineStepMutation) DocumentClassCleared() bool {
	return m.DocumentClassIDCleared() || m.cleareddocument_class
}

// DocumentClassIDs returns the "document_class" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentClassID instead. It exists only for internal usage by the builders.
func (m *PipelineStepMutation) DocumentClassIDs() (ids []uuid.UUID) {
	if id := m.document_class; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocumentClass resets all changes to the "document_class" edge.
func (m *PipelineStepMutation) ResetDocumentClass() {
	m.document_class = nil
	m.cleareddocument_class = false
}

// AddExecutionIDs adds the "executions" edge to the StepExecution entity by ids.
func (m *PipelineStepMutation) AddExecutionIDs(ids ...uuid.UUID) {
	if m.executions == nil {
		m.executions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.executions[ids[i]] = struct{}{}
	}
}

// ClearExecutions clears the "executions" edge to the StepExecution entity.
func (m *PipelineStepMutation) ClearExecutions() {
	m.clearedexecutions = true
}

// ExecutionsCleared reports if the "executions" edge to the StepExecution entity was cleared.
func (m *PipelineStepMutation) ExecutionsCleared() bool {
	return m.clearedexecutions
}

// RemoveExecutionIDs removes the "executions" edge to the StepExecution entity by IDs.
func (m *PipelineStepMutation) RemoveExecutionIDs(ids ...uuid.UUID) {
	if m.removedexecutions == nil {
		m.removedexecutions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.executions, ids[i])
		m.removedexecutions[ids[i]] = struct{}{}
	}
}

// RemovedExecutions returns the removed IDs of the "executions" edge to the StepExecution entity.
func (m *PipelineStepMutation) RemovedExecutionsIDs() (ids []uuid.UUID) {
	for id := range m.removedexecutions {
		ids = append(ids, id)
	}
	return
}

// ExecutionsIDs returns the "executions" edge IDs in the mutation.
func (m *PipelineStepMutation) ExecutionsIDs() (ids []uuid.UUID) {
	for id := range m.executions {
		ids = append(ids, id)
	}
	return
}

// ResetExecutions resets all changes to the "executions" edge.
func (m *PipelineStepMutation) ResetExecutions() {
	m.executions = nil
	m.clearedexecutions = false
	m.removedexecutions = nil
}

// Where appends a list predicates to the PipelineStepMutation builder.
func (m *PipelineStepMutation) Where(ps ...predicate.PipelineStep) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineStepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineStepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PipelineStep, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineStepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineStepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PipelineStep).
func (m *PipelineStepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineStepMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.document_class != nil {
		fields = append(fields, pipelinestep.FieldDocumentClassID)
	}
	if m.name != nil {
		fields = append(fields, pipelinestep.FieldName)
	}
	if m.prompt != nil {
		fields = append(fields, pipelinestep.FieldPrompt)
	}
	if m.step_order != nil {
		fields = append(fields, pipelinestep.FieldStepOrder)
	}
	if m.enabled != nil {
		fields = append(fields, pipelinestep.FieldEnabled)
	}
	if m.is_branching != nil {
		fields = append(fields, pipelinestep.FieldIsBranching)
	}
	if m.branching_field != nil {
		fields = append(fields, pipelinestep.FieldBranchingField)
	}
	if m.post_branching != nil {
		fields = append(fields, pipelinestep.FieldPostBranching)
	}
	if m.branch_labels != nil {
		fields = append(fields, pipelinestep.FieldBranchLabels)
	}
	if m.stop_conditions != nil {
		fields = append(fields, pipelinestep.FieldStopConditions)
	}
	if m.output_schema != nil {
		fields = append(fields, pipelinestep.FieldOutputSchema)
	}
	if m.model_name != nil {
		fields = append(fields, pipelinestep.FieldModelName)
	}
	if m.created_at != nil {
		fields = append(fields, pipelinestep.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, pipelinestep.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineStepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipelinestep.FieldDocumentClassID:
		return m.DocumentClassID()
	case pipelinestep.FieldName:
		return m.Name()
	case pipelinestep.FieldPrompt:
		return m.Prompt()
	case pipelinestep.FieldStepOrder:
		return m.StepOrder()
	case pipelinestep.FieldEnabled:
		return m.Enabled()
	case pipelinestep.FieldIsBranching:
		return m.IsBranching()
	case pipelinestep.FieldBranchingField:
		return m.BranchingField()
	case pipelinestep.FieldPostBranching:
		return m.PostBranching()
	case pipelinestep.FieldBranchLabels:
		return m.BranchLabels()
	case pipelinestep.FieldStopConditions:
		return m.StopConditions()
	case pipelinestep.FieldOutputSchema:
		return m.OutputSchema()
	case pipelinestep.FieldModelName:
		return m.ModelName()
	case pipelinestep.FieldCreatedAt:
		return m.CreatedAt()
	case pipelinestep.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineStepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipelinestep.FieldDocumentClassID:
		return m.OldDocumentClassID(ctx)
	case pipelinestep.FieldName:
		return m.OldName(ctx)
	case pipelinestep.FieldPrompt:
		return m.OldPrompt(ctx)
	case pipelinestep.FieldStepOrder:
		return m.OldStepOrder(ctx)
	case pipelinestep.FieldEnabled:
		return m.OldEnabled(ctx)
	case pipelinestep.FieldIsBranching:
		return m.OldIsBranching(ctx)
	case pipelinestep.FieldBranchingField:
		return m.OldBranchingField(ctx)
	case pipelinestep.FieldPostBranching:
		return m.OldPostBranching(ctx)
	case pipelinestep.FieldBranchLabels:
		return m.OldBranchLabels(ctx)
	case pipelinestep.FieldStopConditions:
		return m.OldStopConditions(ctx)
	case pipelinestep.FieldOutputSchema:
		return m.OldOutputSchema(ctx)
	case pipelinestep.FieldModelName:
		return m.OldModelName(ctx)
	case pipelinestep.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pipelinestep.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PipelineStep field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineStepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipelinestep.FieldDocumentClassID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentClassID(v)
		return nil
	case pipelinestep.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case pipelinestep.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case pipelinestep.FieldStepOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepOrder(v)
		return nil
	case pipelinestep.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case pipelinestep.FieldIsBranching:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsBranching(v)
		return nil
	case pipelinestep.FieldBranchingField:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranchingField(v)
		return nil
	case pipelinestep.FieldPostBranching:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostBranching(v)
		return nil
	case pipelinestep.FieldBranchLabels:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranchLabels(v)
		return nil
	case pipelinestep.FieldStopConditions:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStopConditions(v)
		return nil
	case pipelinestep.FieldOutputSchema:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputSchema(v)
		return nil
	case pipelinestep.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case pipelinestep.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pipelinestep.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineStep field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineStepMutation) AddedFields() []string {
	var fields []string
	if m.addstep_order != nil {
		fields = append(fields, pipelinestep.FieldStepOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineStepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pipelinestep.FieldStepOrder:
		return m.AddedStepOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineStepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pipelinestep.FieldStepOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepOrder(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineStep numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineStepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pipelinestep.FieldDocumentClassID) {
		fields = append(fields, pipelinestep.FieldDocumentClassID)
	}
	if m.FieldCleared(pipelinestep.FieldBranchingField) {
		fields = append(fields, pipelinestep.FieldBranchingField)
	}
	if m.FieldCleared(pipelinestep.FieldBranchLabels) {
		fields = append(fields, pipelinestep.FieldBranchLabels)
	}
	if m.FieldCleared(pipelinestep.FieldStopConditions) {
		fields = append(fields, pipelinestep.FieldStopConditions)
	}
	if m.FieldCleared(pipelinestep.FieldOutputSchema) {
		fields = append(fields, pipelinestep.FieldOutputSchema)
	}
	if m.FieldCleared(pipelinestep.FieldModelName) {
		fields = append(fields, pipelinestep.FieldModelName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineStepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineStepMutation) ClearField(name string) error {
	switch name {
	case pipelinestep.FieldDocumentClassID:
		m.ClearDocumentClassID()
		return nil
	case pipelinestep.FieldBranchingField:
		m.ClearBranchingField()
		return nil
	case pipelinestep.FieldBranchLabels:
		m.ClearBranchLabels()
		return nil
	case pipelinestep.FieldStopConditions:
		m.ClearStopConditions()
		return nil
	case pipelinestep.FieldOutputSchema:
		m.ClearOutputSchema()
		return nil
	case pipelinestep.FieldModelName:
		m.ClearModelName()
		return nil
	}
	return fmt.Errorf("unknown PipelineStep nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineStepMutation) ResetField(name string) error {
	switch name {
	case pipelinestep.FieldDocumentClassID:
		m.ResetDocumentClassID()
		return nil
	case pipelinestep.FieldName:
		m.ResetName()
		return nil
	case pipelinestep.FieldPrompt:
		m.ResetPrompt()
		return nil
	case pipelinestep.FieldStepOrder:
		m.ResetStepOrder()
		return nil
	case pipelinestep.FieldEnabled:
		m.ResetEnabled()
		return nil
	case pipelinestep.FieldIsBranching:
		m.ResetIsBranching()
		return nil
	case pipelinestep.FieldBranchingField:
		m.ResetBranchingField()
		return nil
	case pipelinestep.FieldPostBranching:
		m.ResetPostBranching()
		return nil
	case pipelinestep.FieldBranchLabels:
		m.ResetBranchLabels()
		return nil
	case pipelinestep.FieldStopConditions:
		m.ResetStopConditions()
		return nil
	case pipelinestep.FieldOutputSchema:
		m.ResetOutputSchema()
		return nil
	case pipelinestep.FieldModelName:
		m.ResetModelName()
		return nil
	case pipelinestep.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pipelinestep.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PipelineStep field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineStepMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.document_class != nil {
		edges = append(edges, pipelinestep.EdgeDocumentClass)
	}
	if m.executions != nil {
		edges = append(edges, pipelinestep.EdgeExecutions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineStepMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pipelinestep.EdgeDocumentClass:
		if id := m.document_class; id != nil {
			return []ent.Value{*id}
		}
	case pipelinestep.EdgeExecutions:
		ids := make([]ent.Value, 0, len(m.executions))
		for id := range m.executions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineStepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedexecutions != nil {
		edges = append(edges, pipelinestep.EdgeExecutions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineStepMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case pipelinestep.EdgeExecutions:
		ids := make([]ent.Value, 0, len(m.removedexecutions))
		for id := range m.removedexecutions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineStepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddocument_class {
		edges = append(edges, pipelinestep.EdgeDocumentClass)
	}
	if m.clearedexecutions {
		edges = append(edges, pipelinestep.EdgeExecutions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineStepMutation) EdgeCleared(name string) bool {
	switch name {
	case pipelinestep.EdgeDocumentClass:
		return m.cleareddocument_class
	case pipelinestep.EdgeExecutions:
		return m.clearedexecutions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineStepMutation) ClearEdge(name string) error {
	switch name {
	case pipelinestep.EdgeDocumentClass:
		m.ClearDocumentClass()
		return nil
	}
	return fmt.Errorf("unknown PipelineStep unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineStepMutation) ResetEdge(name string) error {
	switch name {
	case pipelinestep.EdgeDocumentClass:
		m.ResetDocumentClass()
		return nil
	case pipelinestep.EdgeExecutions:
		m.ResetExecutions()
		return nil
	}
	return fmt.Errorf("unknown PipelineStep edge %s", name)
}

// StepExecutionMutation represents an operation that mutates the StepExecution nodes in the graph.
type StepExecutionMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	position       *int
	addposition    *int
	step_name      *string
	output_summary *string
	metadata       *json.RawMessage
	appendmetadata json.RawMessage
	started_at     *time.Time
	finished_at    *time.Time
	clearedFields  map[string]struct{}
	job            *uuid.UUID
	clearedjob     bool
	step           *uuid.UUID
	clearedstep    bool
	done           bool
	oldValue       func(context.Context) (*StepExecution, error)
	predicates     []predicate.StepExecution
}

var _ ent.Mutation = (*StepExecutionMutation)(nil)

// stepexecutionOption allows management of the mutation configuration using functional options.
type stepexecutionOption func(*StepExecutionMutation)

// newStepExecutionMutation creates new mutation for the StepExecution entity.
func newStepExecutionMutation(c config, op Op, opts ...stepexecutionOption) *StepExecutionMutation {
	m := &StepExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeStepExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStepExecutionID sets the ID field of the mutation.
func withStepExecutionID(id uuid.UUID) stepexecutionOption {
	return func(m *StepExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *StepExecution
		)
		m.oldValue = func(ctx context.Context) (*StepExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StepExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStepExecution sets the old StepExecution of the mutation.
func withStepExecution(node *StepExecution) stepexecutionOption {
	return func(m *StepExecutionMutation) {
		m.oldValue = func(context.Context) (*StepExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StepExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StepExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StepExecution entities.
func (m *StepExecutionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StepExecutionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StepExecutionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StepExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *StepExecutionMutation) SetJobID(u uuid.UUID) {
	m.job = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *StepExecutionMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the StepExecution entity.
// If the StepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepExecutionMutation) OldJobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *StepExecutionMutation) ResetJobID() {
	m.job = nil
}

// SetStepID sets the "step_id" field.
func (m *StepExecutionMutation) SetStepID(u uuid.UUID) {
	m.step = &u
}

// StepID returns the value of the "step_id" field in the mutation.
func (m *StepExecutionMutation) StepID() (r uuid.UUID, exists bool) {
	v := m.step
	if v == nil {
		return
	}
	return *v, true
}

// OldStepID returns the old "step_id" field's value of the StepExecution entity.
// If the StepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepExecutionMutation) OldStepID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepID: %w", err)
	}
	return oldValue.StepID, nil
}

// ResetStepID resets all changes to the "step_id" field.
func (m *StepExecutionMutation) ResetStepID() {
	m.step = nil
}

// SetPosition sets the "position" field.
func (m *StepExecutionMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *StepExecutionMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the StepExecution entity.
// If the StepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepExecutionMutation) OldPosition(ctx context.Context) (v int, err error) {
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
func (m *StepExecutionMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *StepExecutionMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *StepExecutionMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetStepName sets the "step_name" field.
func (m *StepExecutionMutation) SetStepName(s string) {
	m.step_name = &s
}

// StepName returns the value of the "step_name" field in the mutation.
func (m *StepExecutionMutation) StepName() (r string, exists bool) {
	v := m.step_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStepName returns the old "step_name" field's value of the StepExecution entity.
// If the StepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepExecutionMutation) OldStepName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepName: %w", err)
	}
	return oldValue.StepName, nil
}

// ResetStepName resets all changes to the "step_name" field.
func (m *StepExecutionMutation) ResetStepName() {
	m.step_name = nil
}

// SetOutputSummary sets the "output_summary" field.
func (m *StepExecutionMutation) SetOutputSummary(s string) {
	m.output_summary = &s
}

// OutputSummary returns the value of the "output_summary" field in the mutation.
func (m *StepExecutionMutation) OutputSummary() (r string, exists bool) {
	v := m.output_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputSummary returns the old "output_summary" field's value of the StepExecution entity.
// If the StepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepExecutionMutation) OldOutputSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputSummary: %w", err)
	}
	return oldValue.OutputSummary, nil
}

// ClearOutputSummary clears the value of the "output_summary" field.
func (m *StepExecutionMutation) ClearOutputSummary() {
	m.output_summary = nil
	m.clearedFields[stepexecution.FieldOutputSummary] = struct{}{}
}

// OutputSummaryCleared returns if the "output_summary" field was cleared in this mutation.
func (m *StepExecutionMutation) OutputSummaryCleared() bool {
	_, ok := m.clearedFields[stepexecution.FieldOutputSummary]
	return ok
}

// ResetOutputSummary resets all changes to the "output_summary" field.
func (m *StepExecutionMutation) ResetOutputSummary() {
	m.output_summary = nil
	delete(m.clearedFields, stepexecution.FieldOutputSummary)
}

// SetMetadata sets the "metadata" field.
func (m *StepExecutionMutation) SetMetadata(jm json.RawMessage) {
	m.metadata = &jm
	m.appendmetadata = nil
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *StepExecutionMutation) Metadata() (r json.RawMessage, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the StepExecution entity.
// If the StepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepExecutionMutation) OldMetadata(ctx context.Context) (v json.RawMessage, err error) {
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

// AppendMetadata adds jm to the "metadata" field.
func (m *StepExecutionMutation) AppendMetadata(jm json.RawMessage) {
	m.appendmetadata = append(m.appendmetadata, jm...)
}

// AppendedMetadata returns the list of values that were appended to the "metadata" field in this mutation.
func (m *StepExecutionMutation) AppendedMetadata() (json.RawMessage, bool) {
	if len(m.appendmetadata) == 0 {
		return nil, false
	}
	return m.appendmetadata, true
}

// ClearMetadata clears the value of the "metadata" field.
func (m *StepExecutionMutation) ClearMetadata() {
	m.metadata = nil
	m.appendmetadata = nil
	m.clearedFields[stepexecution.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *StepExecutionMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[stepexecution.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *StepExecutionMutation) ResetMetadata() {
	m.metadata = nil
	m.appendmetadata = nil
	delete(m.clearedFields, stepexecution.FieldMetadata)
}

// SetStartedAt sets the "started_at" field.
func (m *StepExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *StepExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the StepExecution entity.
// If the StepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepExecutionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *StepExecutionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *StepExecutionMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *StepExecutionMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the StepExecution entity.
// If the StepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepExecutionMutation) OldFinishedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *StepExecutionMutation) ResetFinishedAt() {
	m.finished_at = nil
}

// ClearJob clears the "job" edge to the Job entity.
func (m *StepExecutionMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[stepexecution.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *StepExecutionMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *StepExecutionMutation) JobIDs() (ids []uuid.UUID) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *StepExecutionMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// ClearStep clears the "step" edge to the PipelineStep entity.
func (m *StepExecutionMutation) ClearStep() {
	m.clearedstep = true
	m.clearedFields[stepexecution.FieldStepID] = struct{}{}
}

// StepCleared reports if the "step" edge to the PipelineStep entity was cleared.
func (m *StepExecutionMutation) StepCleared() bool {
	return m.clearedstep
}

// StepIDs returns the "step" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StepID instead. It exists only for internal usage by the builders.
func (m *StepExecutionMutation) StepIDs() (ids []uuid.UUID) {
	if id := m.step; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStep resets all changes to the "step" edge.
func (m *StepExecutionMutation) ResetStep() {
	m.step = nil
	m.clearedstep = false
}

// Where appends a list predicates to the StepExecutionMutation builder.
func (m *StepExecutionMutation) Where(ps ...predicate.StepExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StepExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StepExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StepExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StepExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StepExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StepExecution).
func (m *StepExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StepExecutionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.job != nil {
		fields = append(fields, stepexecution.FieldJobID)
	}
	if m.step != nil {
		fields = append(fields, stepexecution.FieldStepID)
	}
	if m.position != nil {
		fields = append(fields, stepexecution.FieldPosition)
	}
	if m.step_name != nil {
		fields = append(fields, stepexecution.FieldStepName)
	}
	if m.output_summary != nil {
		fields = append(fields, stepexecution.FieldOutputSummary)
	}
	if m.metadata != nil {
		fields = append(fields, stepexecution.FieldMetadata)
	}
	if m.started_at != nil {
		fields = append(fields, stepexecution.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, stepexecution.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StepExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stepexecution.FieldJobID:
		return m.JobID()
	case stepexecution.FieldStepID:
		return m.StepID()
	case stepexecution.FieldPosition:
		return m.Position()
	case stepexecution.FieldStepName:
		return m.StepName()
	case stepexecution.FieldOutputSummary:
		return m.OutputSummary()
	case stepexecution.FieldMetadata:
		return m.Metadata()
	case stepexecution.FieldStartedAt:
		return m.StartedAt()
	case stepexecution.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StepExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stepexecution.FieldJobID:
		return m.OldJobID(ctx)
	case stepexecution.FieldStepID:
		return m.OldStepID(ctx)
	case stepexecution.FieldPosition:
		return m.OldPosition(ctx)
	case stepexecution.FieldStepName:
		return m.OldStepName(ctx)
	case stepexecution.FieldOutputSummary:
		return m.OldOutputSummary(ctx)
	case stepexecution.FieldMetadata:
		return m.OldMetadata(ctx)
	case stepexecution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case stepexecution.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StepExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stepexecution.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case stepexecution.FieldStepID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepID(v)
		return nil
	case stepexecution.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case stepexecution.FieldStepName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepName(v)
		return nil
	case stepexecution.FieldOutputSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputSummary(v)
		return nil
	case stepexecution.FieldMetadata:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case stepexecution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case stepexecution.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StepExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StepExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, stepexecution.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StepExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case stepexecution.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case stepexecution.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown StepExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StepExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stepexecution.FieldOutputSummary) {
		fields = append(fields, stepexecution.FieldOutputSummary)
	}
	if m.FieldCleared(stepexecution.FieldMetadata) {
		fields = append(fields, stepexecution.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StepExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StepExecutionMutation) ClearField(name string) error {
	switch name {
	case stepexecution.FieldOutputSummary:
		m.ClearOutputSummary()
		return nil
	case stepexecution.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown StepExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StepExecutionMutation) ResetField(name string) error {
	switch name {
	case stepexecution.FieldJobID:
		m.ResetJobID()
		return nil
	case stepexecution.FieldStepID:
		m.ResetStepID()
		return nil
	case stepexecution.FieldPosition:
		m.ResetPosition()
		return nil
	case stepexecution.FieldStepName:
		m.ResetStepName()
		return nil
	case stepexecution.FieldOutputSummary:
		m.ResetOutputSummary()
		return nil
	case stepexecution.FieldMetadata:
		m.ResetMetadata()
		return nil
	case stepexecution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case stepexecution.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown StepExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StepExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.job != nil {
		edges = append(edges, stepexecution.EdgeJob)
	}
	if m.step != nil {
		edges = append(edges, stepexecution.EdgeStep)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StepExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case stepexecution.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	case stepexecution.EdgeStep:
		if id := m.step; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StepExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StepExecutionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StepExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedjob {
		edges = append(edges, stepexecution.EdgeJob)
	}
	if m.clearedstep {
		edges = append(edges, stepexecution.EdgeStep)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StepExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case stepexecution.EdgeJob:
		return m.clearedjob
	case stepexecution.EdgeStep:
		return m.clearedstep
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StepExecutionMutation) ClearEdge(name string) error {
	switch name {
	case stepexecution.EdgeJob:
		m.ClearJob()
		return nil
	case stepexecution.EdgeStep:
		m.ClearStep()
		return nil
	}
	return fmt.Errorf("unknown StepExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StepExecutionMutation) ResetEdge(name string) error {
	switch name {
	case stepexecution.EdgeJob:
		m.ResetJob()
		return nil
	case stepexecution.EdgeStep:
		m.ResetStep()
		return nil
	}
	return fmt.Errorf("unknown StepExecution edge %s", name)
}
