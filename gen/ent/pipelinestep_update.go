// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/medignis/docflow/gen/ent/documentclass"
	"github.com/medignis/docflow/gen/ent/pipelinestep"
	"github.com/medignis/docflow/gen/ent/predicate"
	"github.com/medignis/docflow/gen/ent/stepexecution"
)

// PipelineStepUpdate is the builder for updating PipelineStep entities.
type PipelineStepUpdate struct {
	config
	hooks    []Hook
	mutation *PipelineStepMutation
}

// Where appends a list predicates to the PipelineStepUpdate builder.
func (_u *PipelineStepUpdate) Where(ps ...predicate.PipelineStep) *PipelineStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentClassID sets the "document_class_id" field.
func (_u *PipelineStepUpdate) SetDocumentClassID(v uuid.UUID) *PipelineStepUpdate {
	_u.mutation.SetDocumentClassID(v)
	return _u
}

// SetNillableDocumentClassID sets the "document_class_id" field if the given value is not nil.
func (_u *PipelineStepUpdate) SetNillableDocumentClassID(v *uuid.UUID) *PipelineStepUpdate {
	if v != nil {
		_u.SetDocumentClassID(*v)
	}
	return _u
}

// ClearDocumentClassID clears the value of the "document_class_id" field.
func (_u *PipelineStepUpdate) ClearDocumentClassID() *PipelineStepUpdate {
	_u.mutation.ClearDocumentClassID()
	return _u
}

// SetName sets the "name" field.
func (_u *PipelineStepUpdate) SetName(v string) *PipelineStepUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PipelineStepUpdate) SetNillableName(v *string) *PipelineStepUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *PipelineStepUpdate) SetPrompt(v string) *PipelineStepUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *PipelineStepUpdate) SetNillablePrompt(v *string) *PipelineStepUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetStepOrder sets the "step_order" field.
func (_u *PipelineStepUpdate) SetStepOrder(v int) *PipelineStepUpdate {
	_u.mutation.ResetStepOrder()
	_u.mutation.SetStepOrder(v)
	return _u
}

// SetNillableStepOrder sets the "step_order" field if the given value is not nil.
func (_u *PipelineStepUpdate) SetNillableStepOrder(v *int) *PipelineStepUpdate {
	if v != nil {
		_u.SetStepOrder(*v)
	}
	return _u
}

// AddStepOrder adds value to the "step_order" field.
func (_u *PipelineStepUpdate) AddStepOrder(v int) *PipelineStepUpdate {
	_u.mutation.AddStepOrder(v)
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *PipelineStepUpdate) SetEnabled(v bool) *PipelineStepUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *PipelineStepUpdate) SetNillableEnabled(v *bool) *PipelineStepUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetIsBranching sets the "is_branching" field.
func (_u *PipelineStepUpdate) SetIsBranching(v bool) *PipelineStepUpdate {
	_u.mutation.SetIsBranching(v)
	return _u
}

// SetNillableIsBranching sets the "is_branching" field if the given value is not nil.
func (_u *PipelineStepUpdate) SetNillableIsBranching(v *bool) *PipelineStepUpdate {
	if v != nil {
		_u.SetIsBranching(*v)
	}
	return _u
}

// SetBranchingField sets the "branching_field" field.
func (_u *PipelineStepUpdate) SetBranchingField(v string) *PipelineStepUpdate {
	_u.mutation.SetBranchingField(v)
	return _u
}

// SetNillableBranchingField sets the "branching_field" field if the given value is not nil.
func (_u *PipelineStepUpdate) SetNillableBranchingField(v *string) *PipelineStepUpdate {
	if v != nil {
		_u.SetBranchingField(*v)
	}
	return _u
}

// ClearBranchingField clears the value of the "branching_field" field.
func (_u *PipelineStepUpdate) ClearBranchingField() *PipelineStepUpdate {
	_u.mutation.ClearBranchingField()
	return _u
}

// SetPostBranching sets the "post_branching" field.
func (_u *PipelineStepUpdate) SetPostBranching(v bool) *PipelineStepUpdate {
	_u.mutation.SetPostBranching(v)
	return _u
}

// SetNillablePostBranching sets the "post_branching" field if the given value is not nil.
func (_u *PipelineStepUpdate) SetNillablePostBranching(v *bool) *PipelineStepUpdate {
	if v != nil {
		_u.SetPostBranching(*v)
	}
	return _u
}

// SetBranchLabels sets the "branch_labels" field.
func (_u *PipelineStepUpdate) SetBranchLabels(v []string) *PipelineStepUpdate {
	_u.mutation.SetBranchLabels(v)
	return _u
}

// AppendBranchLabels appends value to the "branch_labels" field.
func (_u *PipelineStepUpdate) AppendBranchLabels(v []string) *PipelineStepUpdate {
	_u.mutation.AppendBranchLabels(v)
	return _u
}

// ClearBranchLabels clears the value of the "branch_labels" field.
func (_u *PipelineStepUpdate) ClearBranchLabels() *PipelineStepUpdate {
	_u.mutation.ClearBranchLabels()
	return _u
}

// SetStopConditions sets the "stop_conditions" field.
func (_u *PipelineStepUpdate) SetStopConditions(v json.RawMessage) *PipelineStepUpdate {
	_u.mutation.SetStopConditions(v)
	return _u
}

// AppendStopConditions appends value to the "stop_conditions" field.
func (_u *PipelineStepUpdate) AppendStopConditions(v json.RawMessage) *PipelineStepUpdate {
	_u.mutation.AppendStopConditions(v)
	return _u
}

// ClearStopConditions clears the value of the "stop_conditions" field.
func (_u *PipelineStepUpdate) ClearStopConditions() *PipelineStepUpdate {
	_u.mutation.ClearStopConditions()
	return _u
}

// SetOutputSchema sets the "output_schema" field.
func (_u *PipelineStepUpdate) SetOutputSchema(v json.RawMessage) *PipelineStepUpdate {
	_u.mutation.SetOutputSchema(v)
	return _u
}

// AppendOutputSchema appends value to the "output_schema" field.
func (_u *PipelineStepUpdate) AppendOutputSchema(v json.RawMessage) *PipelineStepUpdate {
	_u.mutation.AppendOutputSchema(v)
	return _u
}

// ClearOutputSchema clears the value of the "output_schema" field.
func (_u *PipelineStepUpdate) ClearOutputSchema() *PipelineStepUpdate {
	_u.mutation.ClearOutputSchema()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *PipelineStepUpdate) SetModelName(v string) *PipelineStepUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *PipelineStepUpdate) SetNillableModelName(v *string) *PipelineStepUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *PipelineStepUpdate) ClearModelName() *PipelineStepUpdate {
	_u.mutation.ClearModelName()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PipelineStepUpdate) SetUpdatedAt(v time.Time) *PipelineStepUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocumentClass sets the "document_class" edge to the DocumentClass entity.
func (_u *PipelineStepUpdate) SetDocumentClass(v *DocumentClass) *PipelineStepUpdate {
	return _u.SetDocumentClassID(v.ID)
}

// AddExecutionIDs adds the "executions" edge to the StepExecution entity by IDs.
func (_u *PipelineStepUpdate) AddExecutionIDs(ids ...uuid.UUID) *PipelineStepUpdate {
	_u.mutation.AddExecutionIDs(ids...)
	return _u
}

// AddExecutions adds the "executions" edges to the StepExecution entity.
func (_u *PipelineStepUpdate) AddExecutions(v ...*StepExecution) *PipelineStepUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionIDs(ids...)
}

// Mutation returns the PipelineStepMutation object of the builder.
func (_u *PipelineStepUpdate) Mutation() *PipelineStepMutation {
	return _u.mutation
}

// ClearDocumentClass clears the "document_class" edge to the DocumentClass entity.
func (_u *PipelineStepUpdate) ClearDocumentClass() *PipelineStepUpdate {
	_u.mutation.ClearDocumentClass()
	return _u
}

// ClearExecutions clears all "executions" edges to the StepExecution entity.
func (_u *PipelineStepUpdate) ClearExecutions() *PipelineStepUpdate {
	_u.mutation.ClearExecutions()
	return _u
}

// RemoveExecutionIDs removes the "executions" edge to StepExecution entities by IDs.
func (_u *PipelineStepUpdate) RemoveExecutionIDs(ids ...uuid.UUID) *PipelineStepUpdate {
	_u.mutation.RemoveExecutionIDs(ids...)
	return _u
}

// RemoveExecutions removes "executions" edges to StepExecution entities.
func (_u *PipelineStepUpdate) RemoveExecutions(v ...*StepExecution) *PipelineStepUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PipelineStepUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PipelineStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PipelineStepUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pipelinestep.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineStepUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := pipelinestep.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "PipelineStep.name": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinestep.Table, pipelinestep.Columns, sqlgraph.NewFieldSpec(pipelinestep.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(pipelinestep.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(pipelinestep.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepOrder(); ok {
		_spec.SetField(pipelinestep.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepOrder(); ok {
		_spec.AddField(pipelinestep.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(pipelinestep.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsBranching(); ok {
		_spec.SetField(pipelinestep.FieldIsBranching, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BranchingField(); ok {
		_spec.SetField(pipelinestep.FieldBranchingField, field.TypeString, value)
	}
	if _u.mutation.BranchingFieldCleared() {
		_spec.ClearField(pipelinestep.FieldBranchingField, field.TypeString)
	}
	if value, ok := _u.mutation.PostBranching(); ok {
		_spec.SetField(pipelinestep.FieldPostBranching, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BranchLabels(); ok {
		_spec.SetField(pipelinestep.FieldBranchLabels, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBranchLabels(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinestep.FieldBranchLabels, value)
		})
	}
	if _u.mutation.BranchLabelsCleared() {
		_spec.ClearField(pipelinestep.FieldBranchLabels, field.TypeJSON)
	}
	if value, ok := _u.mutation.StopConditions(); ok {
		_spec.SetField(pipelinestep.FieldStopConditions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStopConditions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinestep.FieldStopConditions, value)
		})
	}
	if _u.mutation.StopConditionsCleared() {
		_spec.ClearField(pipelinestep.FieldStopConditions, field.TypeJSON)
	}
	if value, ok := _u.mutation.OutputSchema(); ok {
		_spec.SetField(pipelinestep.FieldOutputSchema, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOutputSchema(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinestep.FieldOutputSchema, value)
		})
	}
	if _u.mutation.OutputSchemaCleared() {
		_spec.ClearField(pipelinestep.FieldOutputSchema, field.TypeJSON)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(pipelinestep.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(pipelinestep.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pipelinestep.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentClassCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pipelinestep.DocumentClassTable,
			Columns: []string{pipelinestep.DocumentClassColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentclass.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentClassIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pipelinestep.DocumentClassTable,
			Columns: []string{pipelinestep.DocumentClassColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentclass.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinestep.ExecutionsTable,
			Columns: []string{pipelinestep.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepexecution.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExecutionsIDs(); len(nodes) > 0 && !_u.mutation.ExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinestep.ExecutionsTable,
			Columns: []string{pipelinestep.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepexecution.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinestep.ExecutionsTable,
			Columns: []string{pipelinestep.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepexecution.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinestep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PipelineStepUpdateOne is the builder for updating a single PipelineStep entity.
type PipelineStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PipelineStepMutation
}

// SetDocumentClassID sets the "document_class_id" field.
func (_u *PipelineStepUpdateOne) SetDocumentClassID(v uuid.UUID) *PipelineStepUpdateOne {
	_u.mutation.SetDocumentClassID(v)
	return _u
}

// SetNillableDocumentClassID sets the "document_class_id" field if the given value is not nil.
func (_u *PipelineStepUpdateOne) SetNillableDocumentClassID(v *uuid.UUID) *PipelineStepUpdateOne {
	if v != nil {
		_u.SetDocumentClassID(*v)
	}
	return _u
}

// ClearDocumentClassID clears the value of the "document_class_id" field.
func (_u *PipelineStepUpdateOne) ClearDocumentClassID() *PipelineStepUpdateOne {
	_u.mutation.ClearDocumentClassID()
	return _u
}

// SetName sets the "name" field.
func (_u *PipelineStepUpdateOne) SetName(v string) *PipelineStepUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PipelineStepUpdateOne) SetNillableName(v *string) *PipelineStepUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *PipelineStepUpdateOne) SetPrompt(v string) *PipelineStepUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *PipelineStepUpdateOne) SetNillablePrompt(v *string) *PipelineStepUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetStepOrder sets the "step_order" field.
func (_u *PipelineStepUpdateOne) SetStepOrder(v int) *PipelineStepUpdateOne {
	_u.mutation.ResetStepOrder()
	_u.mutation.SetStepOrder(v)
	return _u
}

// SetNillableStepOrder sets the "step_order" field if the given value is not nil.
func (_u *PipelineStepUpdateOne) SetNillableStepOrder(v *int) *PipelineStepUpdateOne {
	if v != nil {
		_u.SetStepOrder(*v)
	}
	return _u
}

// AddStepOrder adds value to the "step_order" field.
func (_u *PipelineStepUpdateOne) AddStepOrder(v int) *PipelineStepUpdateOne {
	_u.mutation.AddStepOrder(v)
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *PipelineStepUpdateOne) SetEnabled(v bool) *PipelineStepUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *PipelineStepUpdateOne) SetNillableEnabled(v *bool) *PipelineStepUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetIsBranching sets the "is_branching" field.
func (_u *PipelineStepUpdateOne) SetIsBranching(v bool) *PipelineStepUpdateOne {
	_u.mutation.SetIsBranching(v)
	return _u
}

// SetNillableIsBranching sets the "is_branching" field if the given value is not nil.
func (_u *PipelineStepUpdateOne) SetNillableIsBranching(v *bool) *PipelineStepUpdateOne {
	if v != nil {
		_u.SetIsBranching(*v)
	}
	return _u
}

// SetBranchingField sets the "branching_field" field.
func (_u *PipelineStepUpdateOne) SetBranchingField(v string) *PipelineStepUpdateOne {
	_u.mutation.SetBranchingField(v)
	return _u
}

// SetNillableBranchingField sets the "branching_field" field if the given value is not nil.
func (_u *PipelineStepUpdateOne) SetNillableBranchingField(v *string) *PipelineStepUpdateOne {
	if v != nil {
		_u.SetBranchingField(*v)
	}
	return _u
}

// ClearBranchingField clears the value of the "branching_field" field.
func (_u *PipelineStepUpdateOne) ClearBranchingField() *PipelineStepUpdateOne {
	_u.mutation.ClearBranchingField()
	return _u
}

// SetPostBranching sets the "post_branching" field.
func (_u *PipelineStepUpdateOne) SetPostBranching(v bool) *PipelineStepUpdateOne {
	_u.mutation.SetPostBranching(v)
	return _u
}

// SetNillablePostBranching sets the "post_branching" field if the given value is not nil.
func (_u *PipelineStepUpdateOne) SetNillablePostBranching(v *bool) *PipelineStepUpdateOne {
	if v != nil {
		_u.SetPostBranching(*v)
	}
	return _u
}

// SetBranchLabels sets the "branch_labels" field.
func (_u *PipelineStepUpdateOne) SetBranchLabels(v []string) *PipelineStepUpdateOne {
	_u.mutation.SetBranchLabels(v)
	return _u
}

// AppendBranchLabels appends value to the "branch_labels" field.
func (_u *PipelineStepUpdateOne) AppendBranchLabels(v []string) *PipelineStepUpdateOne {
	_u.mutation.AppendBranchLabels(v)
	return _u
}

// ClearBranchLabels clears the value of the "branch_labels" field.
func (_u *PipelineStepUpdateOne) ClearBranchLabels() *PipelineStepUpdateOne {
	_u.mutation.ClearBranchLabels()
	return _u
}

// SetStopConditions sets the "stop_conditions" field.
func (_u *PipelineStepUpdateOne) SetStopConditions(v json.RawMessage) *PipelineStepUpdateOne {
	_u.mutation.SetStopConditions(v)
	return _u
}

// AppendStopConditions appends value to the "stop_conditions" field.
func (_u *PipelineStepUpdateOne) AppendStopConditions(v json.RawMessage) *PipelineStepUpdateOne {
	_u.mutation.AppendStopConditions(v)
	return _u
}

// ClearStopConditions clears the value of the "stop_conditions" field.
func (_u *PipelineStepUpdateOne) ClearStopConditions() *PipelineStepUpdateOne {
	_u.mutation.ClearStopConditions()
	return _u
}

// SetOutputSchema sets the "output_schema" field.
func (_u *PipelineStepUpdateOne) SetOutputSchema(v json.RawMessage) *PipelineStepUpdateOne {
	_u.mutation.SetOutputSchema(v)
	return _u
}

// AppendOutputSchema appends value to the "output_schema" field.
func (_u *PipelineStepUpdateOne) AppendOutputSchema(v json.RawMessage) *PipelineStepUpdateOne {
	_u.mutation.AppendOutputSchema(v)
	return _u
}

// ClearOutputSchema clears the value of the "output_schema" field.
func (_u *PipelineStepUpdateOne) ClearOutputSchema() *PipelineStepUpdateOne {
	_u.mutation.ClearOutputSchema()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *PipelineStepUpdateOne) SetModelName(v string) *PipelineStepUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *PipelineStepUpdateOne) SetNillableModelName(v *string) *PipelineStepUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *PipelineStepUpdateOne) ClearModelName() *PipelineStepUpdateOne {
	_u.mutation.ClearModelName()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PipelineStepUpdateOne) SetUpdatedAt(v time.Time) *PipelineStepUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocumentClass sets the "document_class" edge to the DocumentClass entity.
func (_u *PipelineStepUpdateOne) SetDocumentClass(v *DocumentClass) *PipelineStepUpdateOne {
	return _u.SetDocumentClassID(v.ID)
}

// AddExecutionIDs adds the "executions" edge to the StepExecution entity by IDs.
func (_u *PipelineStepUpdateOne) AddExecutionIDs(ids ...uuid.UUID) *PipelineStepUpdateOne {
	_u.mutation.AddExecutionIDs(ids...)
	return _u
}

// AddExecutions adds the "executions" edges to the StepExecution entity.
func (_u *PipelineStepUpdateOne) AddExecutions(v ...*StepExecution) *PipelineStepUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionIDs(ids...)
}

// Mutation returns the PipelineStepMutation object of the builder.
func (_u *PipelineStepUpdateOne) Mutation() *PipelineStepMutation {
	return _u.mutation
}

// ClearDocumentClass clears the "document_class" edge to the DocumentClass entity.
func (_u *PipelineStepUpdateOne) ClearDocumentClass() *PipelineStepUpdateOne {
	_u.mutation.ClearDocumentClass()
	return _u
}

// ClearExecutions clears all "executions" edges to the StepExecution entity.
func (_u *PipelineStepUpdateOne) ClearExecutions() *PipelineStepUpdateOne {
	_u.mutation.ClearExecutions()
	return _u
}

// RemoveExecutionIDs removes the "executions" edge to StepExecution entities by IDs.
func (_u *PipelineStepUpdateOne) RemoveExecutionIDs(ids ...uuid.UUID) *PipelineStepUpdateOne {
	_u.mutation.RemoveExecutionIDs(ids...)
	return _u
}

// RemoveExecutions removes "executions" edges to StepExecution entities.
func (_u *PipelineStepUpdateOne) RemoveExecutions(v ...*StepExecution) *PipelineStepUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionIDs(ids...)
}

// Where appends a list predicates to the PipelineStepUpdate builder.
func (_u *PipelineStepUpdateOne) Where(ps ...predicate.PipelineStep) *PipelineStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PipelineStepUpdateOne) Select(field string, fields ...string) *PipelineStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PipelineStep entity.
func (_u *PipelineStepUpdateOne) Save(ctx context.Context) (*PipelineStep, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineStepUpdateOne) SaveX(ctx context.Context) *PipelineStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PipelineStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PipelineStepUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pipelinestep.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineStepUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := pipelinestep.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "PipelineStep.name": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineStepUpdateOne) sqlSave(ctx context.Context) (_node *PipelineStep, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinestep.Table, pipelinestep.Columns, sqlgraph.NewFieldSpec(pipelinestep.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PipelineStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pipelinestep.FieldID)
		for _, f := range fields {
			if !pipelinestep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pipelinestep.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(pipelinestep.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(pipelinestep.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepOrder(); ok {
		_spec.SetField(pipelinestep.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepOrder(); ok {
		_spec.AddField(pipelinestep.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(pipelinestep.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsBranching(); ok {
		_spec.SetField(pipelinestep.FieldIsBranching, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BranchingField(); ok {
		_spec.SetField(pipelinestep.FieldBranchingField, field.TypeString, value)
	}
	if _u.mutation.BranchingFieldCleared() {
		_spec.ClearField(pipelinestep.FieldBranchingField, field.TypeString)
	}
	if value, ok := _u.mutation.PostBranching(); ok {
		_spec.SetField(pipelinestep.FieldPostBranching, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BranchLabels(); ok {
		_spec.SetField(pipelinestep.FieldBranchLabels, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBranchLabels(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinestep.FieldBranchLabels, value)
		})
	}
	if _u.mutation.BranchLabelsCleared() {
		_spec.ClearField(pipelinestep.FieldBranchLabels, field.TypeJSON)
	}
	if value, ok := _u.mutation.StopConditions(); ok {
		_spec.SetField(pipelinestep.FieldStopConditions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStopConditions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinestep.FieldStopConditions, value)
		})
	}
	if _u.mutation.StopConditionsCleared() {
		_spec.ClearField(pipelinestep.FieldStopConditions, field.TypeJSON)
	}
	if value, ok := _u.mutation.OutputSchema(); ok {
		_spec.SetField(pipelinestep.FieldOutputSchema, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOutputSchema(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinestep.FieldOutputSchema, value)
		})
	}
	if _u.mutation.OutputSchemaCleared() {
		_spec.ClearField(pipelinestep.FieldOutputSchema, field.TypeJSON)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(pipelinestep.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(pipelinestep.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pipelinestep.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentClassCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pipelinestep.DocumentClassTable,
			Columns: []string{pipelinestep.DocumentClassColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentclass.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentClassIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pipelinestep.DocumentClassTable,
			Columns: []string{pipelinestep.DocumentClassColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentclass.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinestep.ExecutionsTable,
			Columns: []string{pipelinestep.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepexecution.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExecutionsIDs(); len(nodes) > 0 && !_u.mutation.ExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinestep.ExecutionsTable,
			Columns: []string{pipelinestep.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepexecution.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinestep.ExecutionsTable,
			Columns: []string{pipelinestep.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepexecution.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PipelineStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinestep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
