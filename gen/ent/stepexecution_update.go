// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/medignis/docflow/gen/ent/job"
	"github.com/medignis/docflow/gen/ent/pipelinestep"
	"github.com/medignis/docflow/gen/ent/predicate"
	"github.com/medignis/docflow/gen/ent/stepexecution"
)

// StepExecutionUpdate is the builder for updating StepExecution entities.
type StepExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *StepExecutionMutation
}

// Where appends a list predicates to the StepExecutionUpdate builder.
func (_u *StepExecutionUpdate) Where(ps ...predicate.StepExecution) *StepExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *StepExecutionUpdate) SetJobID(v uuid.UUID) *StepExecutionUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *StepExecutionUpdate) SetNillableJobID(v *uuid.UUID) *StepExecutionUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetStepID sets the "step_id" field.
func (_u *StepExecutionUpdate) SetStepID(v uuid.UUID) *StepExecutionUpdate {
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *StepExecutionUpdate) SetNillableStepID(v *uuid.UUID) *StepExecutionUpdate {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *StepExecutionUpdate) SetPosition(v int) *StepExecutionUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *StepExecutionUpdate) SetNillablePosition(v *int) *StepExecutionUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *StepExecutionUpdate) AddPosition(v int) *StepExecutionUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetStepName sets the "step_name" field.
func (_u *StepExecutionUpdate) SetStepName(v string) *StepExecutionUpdate {
	_u.mutation.SetStepName(v)
	return _u
}

// SetNillableStepName sets the "step_name" field if the given value is not nil.
func (_u *StepExecutionUpdate) SetNillableStepName(v *string) *StepExecutionUpdate {
	if v != nil {
		_u.SetStepName(*v)
	}
	return _u
}

// SetOutputSummary sets the "output_summary" field.
func (_u *StepExecutionUpdate) SetOutputSummary(v string) *StepExecutionUpdate {
	_u.mutation.SetOutputSummary(v)
	return _u
}

// SetNillableOutputSummary sets the "output_summary" field if the given value is not nil.
func (_u *StepExecutionUpdate) SetNillableOutputSummary(v *string) *StepExecutionUpdate {
	if v != nil {
		_u.SetOutputSummary(*v)
	}
	return _u
}

// ClearOutputSummary clears the value of the "output_summary" field.
func (_u *StepExecutionUpdate) ClearOutputSummary() *StepExecutionUpdate {
	_u.mutation.ClearOutputSummary()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *StepExecutionUpdate) SetMetadata(v json.RawMessage) *StepExecutionUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// AppendMetadata appends value to the "metadata" field.
func (_u *StepExecutionUpdate) AppendMetadata(v json.RawMessage) *StepExecutionUpdate {
	_u.mutation.AppendMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *StepExecutionUpdate) ClearMetadata() *StepExecutionUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetJob sets the "job" edge to the Job entity.
func (_u *StepExecutionUpdate) SetJob(v *Job) *StepExecutionUpdate {
	return _u.SetJobID(v.ID)
}

// SetStep sets the "step" edge to the PipelineStep entity.
func (_u *StepExecutionUpdate) SetStep(v *PipelineStep) *StepExecutionUpdate {
	return _u.SetStepID(v.ID)
}

// Mutation returns the StepExecutionMutation object of the builder.
func (_u *StepExecutionUpdate) Mutation() *StepExecutionMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the Job entity.
func (_u *StepExecutionUpdate) ClearJob() *StepExecutionUpdate {
	_u.mutation.ClearJob()
	return _u
}

// ClearStep clears the "step" edge to the PipelineStep entity.
func (_u *StepExecutionUpdate) ClearStep() *StepExecutionUpdate {
	_u.mutation.ClearStep()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StepExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StepExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepExecutionUpdate) check() error {
	if v, ok := _u.mutation.Position(); ok {
		if err := stepexecution.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "StepExecution.position": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StepName(); ok {
		if err := stepexecution.StepNameValidator(v); err != nil {
			return &ValidationError{Name: "step_name", err: fmt.Errorf(`ent: validator failed for field "StepExecution.step_name": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StepExecution.job"`)
	}
	if _u.mutation.StepCleared() && len(_u.mutation.StepIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StepExecution.step"`)
	}
	return nil
}

func (_u *StepExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stepexecution.Table, stepexecution.Columns, sqlgraph.NewFieldSpec(stepexecution.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(stepexecution.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(stepexecution.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StepName(); ok {
		_spec.SetField(stepexecution.FieldStepName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OutputSummary(); ok {
		_spec.SetField(stepexecution.FieldOutputSummary, field.TypeString, value)
	}
	if _u.mutation.OutputSummaryCleared() {
		_spec.ClearField(stepexecution.FieldOutputSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(stepexecution.FieldMetadata, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMetadata(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stepexecution.FieldMetadata, value)
		})
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(stepexecution.FieldMetadata, field.TypeJSON)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stepexecution.JobTable,
			Columns: []string{stepexecution.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stepexecution.JobTable,
			Columns: []string{stepexecution.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StepCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stepexecution.StepTable,
			Columns: []string{stepexecution.StepColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelinestep.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stepexecution.StepTable,
			Columns: []string{stepexecution.StepColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelinestep.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stepexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StepExecutionUpdateOne is the builder for updating a single StepExecution entity.
type StepExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StepExecutionMutation
}

// SetJobID sets the "job_id" field.
func (_u *StepExecutionUpdateOne) SetJobID(v uuid.UUID) *StepExecutionUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *StepExecutionUpdateOne) SetNillableJobID(v *uuid.UUID) *StepExecutionUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetStepID sets the "step_id" field.
func (_u *StepExecutionUpdateOne) SetStepID(v uuid.UUID) *StepExecutionUpdateOne {
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *StepExecutionUpdateOne) SetNillableStepID(v *uuid.UUID) *StepExecutionUpdateOne {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *StepExecutionUpdateOne) SetPosition(v int) *StepExecutionUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *StepExecutionUpdateOne) SetNillablePosition(v *int) *StepExecutionUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *StepExecutionUpdateOne) AddPosition(v int) *StepExecutionUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetStepName sets the "step_name" field.
func (_u *StepExecutionUpdateOne) SetStepName(v string) *StepExecutionUpdateOne {
	_u.mutation.SetStepName(v)
	return _u
}

// SetNillableStepName sets the "step_name" field if the given value is not nil.
func (_u *StepExecutionUpdateOne) SetNillableStepName(v *string) *StepExecutionUpdateOne {
	if v != nil {
		_u.SetStepName(*v)
	}
	return _u
}

// SetOutputSummary sets the "output_summary" field.
func (_u *StepExecutionUpdateOne) SetOutputSummary(v string) *StepExecutionUpdateOne {
	_u.mutation.SetOutputSummary(v)
	return _u
}

// SetNillableOutputSummary sets the "output_summary" field if the given value is not nil.
func (_u *StepExecutionUpdateOne) SetNillableOutputSummary(v *string) *StepExecutionUpdateOne {
	if v != nil {
		_u.SetOutputSummary(*v)
	}
	return _u
}

// ClearOutputSummary clears the value of the "output_summary" field.
func (_u *StepExecutionUpdateOne) ClearOutputSummary() *StepExecutionUpdateOne {
	_u.mutation.ClearOutputSummary()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *StepExecutionUpdateOne) SetMetadata(v json.RawMessage) *StepExecutionUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// AppendMetadata appends value to the "metadata" field.
func (_u *StepExecutionUpdateOne) AppendMetadata(v json.RawMessage) *StepExecutionUpdateOne {
	_u.mutation.AppendMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *StepExecutionUpdateOne) ClearMetadata() *StepExecutionUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetJob sets the "job" edge to the Job entity.
func (_u *StepExecutionUpdateOne) SetJob(v *Job) *StepExecutionUpdateOne {
	return _u.SetJobID(v.ID)
}

// SetStep sets the "step" edge to the PipelineStep entity.
func (_u *StepExecutionUpdateOne) SetStep(v *PipelineStep) *StepExecutionUpdateOne {
	return _u.SetStepID(v.ID)
}

// Mutation returns the StepExecutionMutation object of the builder.
func (_u *StepExecutionUpdateOne) Mutation() *StepExecutionMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the Job entity.
func (_u *StepExecutionUpdateOne) ClearJob() *StepExecutionUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// ClearStep clears the "step" edge to the PipelineStep entity.
func (_u *StepExecutionUpdateOne) ClearStep() *StepExecutionUpdateOne {
	_u.mutation.ClearStep()
	return _u
}

// Where appends a list predicates to the StepExecutionUpdate builder.
func (_u *StepExecutionUpdateOne) Where(ps ...predicate.StepExecution) *StepExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StepExecutionUpdateOne) Select(field string, fields ...string) *StepExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StepExecution entity.
func (_u *StepExecutionUpdateOne) Save(ctx context.Context) (*StepExecution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepExecutionUpdateOne) SaveX(ctx context.Context) *StepExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StepExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.Position(); ok {
		if err := stepexecution.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "StepExecution.position": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StepName(); ok {
		if err := stepexecution.StepNameValidator(v); err != nil {
			return &ValidationError{Name: "step_name", err: fmt.Errorf(`ent: validator failed for field "StepExecution.step_name": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StepExecution.job"`)
	}
	if _u.mutation.StepCleared() && len(_u.mutation.StepIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StepExecution.step"`)
	}
	return nil
}

func (_u *StepExecutionUpdateOne) sqlSave(ctx context.Context) (_node *StepExecution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stepexecution.Table, stepexecution.Columns, sqlgraph.NewFieldSpec(stepexecution.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StepExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stepexecution.FieldID)
		for _, f := range fields {
			if !stepexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stepexecution.FieldID {
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
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(stepexecution.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(stepexecution.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StepName(); ok {
		_spec.SetField(stepexecution.FieldStepName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OutputSummary(); ok {
		_spec.SetField(stepexecution.FieldOutputSummary, field.TypeString, value)
	}
	if _u.mutation.OutputSummaryCleared() {
		_spec.ClearField(stepexecution.FieldOutputSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(stepexecution.FieldMetadata, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMetadata(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stepexecution.FieldMetadata, value)
		})
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(stepexecution.FieldMetadata, field.TypeJSON)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stepexecution.JobTable,
			Columns: []string{stepexecution.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stepexecution.JobTable,
			Columns: []string{stepexecution.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StepCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stepexecution.StepTable,
			Columns: []string{stepexecution.StepColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelinestep.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stepexecution.StepTable,
			Columns: []string{stepexecution.StepColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelinestep.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &StepExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stepexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
