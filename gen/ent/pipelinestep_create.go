// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/medignis/docflow/gen/ent/documentclass"
	"github.com/medignis/docflow/gen/ent/pipelinestep"
	"github.com/medignis/docflow/gen/ent/stepexecution"
)

// PipelineStepCreate is the builder for creating a PipelineStep entity.
type PipelineStepCreate struct {
	config
	mutation *PipelineStepMutation
	hooks    []Hook
}

// SetDocumentClassID sets the "document_class_id" field.
func (_c *PipelineStepCreate) SetDocumentClassID(v uuid.UUID) *PipelineStepCreate {
	_c.mutation.SetDocumentClassID(v)
	return _c
}

// SetNillableDocumentClassID sets the "document_class_id" field if the given value is not nil.
func (_c *PipelineStepCreate) SetNillableDocumentClassID(v *uuid.UUID) *PipelineStepCreate {
	if v != nil {
		_c.SetDocumentClassID(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *PipelineStepCreate) SetName(v string) *PipelineStepCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *PipelineStepCreate) SetPrompt(v string) *PipelineStepCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetStepOrder sets the "step_order" field.
func (_c *PipelineStepCreate) SetStepOrder(v int) *PipelineStepCreate {
	_c.mutation.SetStepOrder(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *PipelineStepCreate) SetEnabled(v bool) *PipelineStepCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *PipelineStepCreate) SetNillableEnabled(v *bool) *PipelineStepCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetIsBranching sets the "is_branching" field.
func (_c *PipelineStepCreate) SetIsBranching(v bool) *PipelineStepCreate {
	_c.mutation.SetIsBranching(v)
	return _c
}

// SetNillableIsBranching sets the "is_branching" field if the given value is not nil.
func (_c *PipelineStepCreate) SetNillableIsBranching(v *bool) *PipelineStepCreate {
	if v != nil {
		_c.SetIsBranching(*v)
	}
	return _c
}

// SetBranchingField sets the "branching_field" field.
func (_c *PipelineStepCreate) SetBranchingField(v string) *PipelineStepCreate {
	_c.mutation.SetBranchingField(v)
	return _c
}

// SetNillableBranchingField sets the "branching_field" field if the given value is not nil.
func (_c *PipelineStepCreate) SetNillableBranchingField(v *string) *PipelineStepCreate {
	if v != nil {
		_c.SetBranchingField(*v)
	}
	return _c
}

// SetPostBranching sets the "post_branching" field.
func (_c *PipelineStepCreate) SetPostBranching(v bool) *PipelineStepCreate {
	_c.mutation.SetPostBranching(v)
	return _c
}

// SetNillablePostBranching sets the "post_branching" field if the given value is not nil.
func (_c *PipelineStepCreate) SetNillablePostBranching(v *bool) *PipelineStepCreate {
	if v != nil {
		_c.SetPostBranching(*v)
	}
	return _c
}

// SetBranchLabels sets the "branch_labels" field.
func (_c *PipelineStepCreate) SetBranchLabels(v []string) *PipelineStepCreate {
	_c.mutation.SetBranchLabels(v)
	return _c
}

// SetStopConditions sets the "stop_conditions" field.
func (_c *PipelineStepCreate) SetStopConditions(v json.RawMessage) *PipelineStepCreate {
	_c.mutation.SetStopConditions(v)
	return _c
}

// SetOutputSchema sets the "output_schema" field.
func (_c *PipelineStepCreate) SetOutputSchema(v json.RawMessage) *PipelineStepCreate {
	_c.mutation.SetOutputSchema(v)
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *PipelineStepCreate) SetModelName(v string) *PipelineStepCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_c *PipelineStepCreate) SetNillableModelName(v *string) *PipelineStepCreate {
	if v != nil {
		_c.SetModelName(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PipelineStepCreate) SetCreatedAt(v time.Time) *PipelineStepCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PipelineStepCreate) SetNillableCreatedAt(v *time.Time) *PipelineStepCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PipelineStepCreate) SetUpdatedAt(v time.Time) *PipelineStepCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PipelineStepCreate) SetNillableUpdatedAt(v *time.Time) *PipelineStepCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PipelineStepCreate) SetID(v uuid.UUID) *PipelineStepCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PipelineStepCreate) SetNillableID(v *uuid.UUID) *PipelineStepCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocumentClass sets the "document_class" edge to the DocumentClass entity.
func (_c *PipelineStepCreate) SetDocumentClass(v *DocumentClass) *PipelineStepCreate {
	return _c.SetDocumentClassID(v.ID)
}

// AddExecutionIDs adds the "executions" edge to the StepExecution entity by IDs.
func (_c *PipelineStepCreate) AddExecutionIDs(ids ...uuid.UUID) *PipelineStepCreate {
	_c.mutation.AddExecutionIDs(ids...)
	return _c
}

// AddExecutions adds the "executions" edges to the StepExecution entity.
func (_c *PipelineStepCreate) AddExecutions(v ...*StepExecution) *PipelineStepCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddExecutionIDs(ids...)
}

// Mutation returns the PipelineStepMutation object of the builder.
func (_c *PipelineStepCreate) Mutation() *PipelineStepMutation {
	return _c.mutation
}

// Save creates the PipelineStep in the database.
func (_c *PipelineStepCreate) Save(ctx context.Context) (*PipelineStep, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PipelineStepCreate) SaveX(ctx context.Context) *PipelineStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PipelineStepCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := pipelinestep.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.IsBranching(); !ok {
		v := pipelinestep.DefaultIsBranching
		_c.mutation.SetIsBranching(v)
	}
	if _, ok := _c.mutation.PostBranching(); !ok {
		v := pipelinestep.DefaultPostBranching
		_c.mutation.SetPostBranching(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pipelinestep.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := pipelinestep.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := pipelinestep.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PipelineStepCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "PipelineStep.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := pipelinestep.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "PipelineStep.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "PipelineStep.prompt"`)}
	}
	if _, ok := _c.mutation.StepOrder(); !ok {
		return &ValidationError{Name: "step_order", err: errors.New(`ent: missing required field "PipelineStep.step_order"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "PipelineStep.enabled"`)}
	}
	if _, ok := _c.mutation.IsBranching(); !ok {
		return &ValidationError{Name: "is_branching", err: errors.New(`ent: missing required field "PipelineStep.is_branching"`)}
	}
	if _, ok := _c.mutation.PostBranching(); !ok {
		return &ValidationError{Name: "post_branching", err: errors.New(`ent: missing required field "PipelineStep.post_branching"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PipelineStep.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PipelineStep.updated_at"`)}
	}
	return nil
}

func (_c *PipelineStepCreate) sqlSave(ctx context.Context) (*PipelineStep, error) {
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
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PipelineStepCreate) createSpec() (*PipelineStep, *sqlgraph.CreateSpec) {
	var (
		_node = &PipelineStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pipelinestep.Table, sqlgraph.NewFieldSpec(pipelinestep.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(pipelinestep.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(pipelinestep.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.StepOrder(); ok {
		_spec.SetField(pipelinestep.FieldStepOrder, field.TypeInt, value)
		_node.StepOrder = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(pipelinestep.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.IsBranching(); ok {
		_spec.SetField(pipelinestep.FieldIsBranching, field.TypeBool, value)
		_node.IsBranching = value
	}
	if value, ok := _c.mutation.BranchingField(); ok {
		_spec.SetField(pipelinestep.FieldBranchingField, field.TypeString, value)
		_node.BranchingField = value
	}
	if value, ok := _c.mutation.PostBranching(); ok {
		_spec.SetField(pipelinestep.FieldPostBranching, field.TypeBool, value)
		_node.PostBranching = value
	}
	if value, ok := _c.mutation.BranchLabels(); ok {
		_spec.SetField(pipelinestep.FieldBranchLabels, field.TypeJSON, value)
		_node.BranchLabels = value
	}
	if value, ok := _c.mutation.StopConditions(); ok {
		_spec.SetField(pipelinestep.FieldStopConditions, field.TypeJSON, value)
		_node.StopConditions = value
	}
	if value, ok := _c.mutation.OutputSchema(); ok {
		_spec.SetField(pipelinestep.FieldOutputSchema, field.TypeJSON, value)
		_node.OutputSchema = value
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(pipelinestep.FieldModelName, field.TypeString, value)
		_node.ModelName = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pipelinestep.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(pipelinestep.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.DocumentClassIDs(); len(nodes) > 0 {
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
		_node.DocumentClassID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PipelineStepCreateBulk is the builder for creating many PipelineStep entities in bulk.
type PipelineStepCreateBulk struct {
	config
	err      error
	builders []*PipelineStepCreate
}

// Save creates the PipelineStep entities in the database.
func (_c *PipelineStepCreateBulk) Save(ctx context.Context) ([]*PipelineStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PipelineStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PipelineStepMutation)
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
func (_c *PipelineStepCreateBulk) SaveX(ctx context.Context) []*PipelineStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
