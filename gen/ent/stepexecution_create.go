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
	"github.com/medignis/docflow/gen/ent/job"
	"github.com/medignis/docflow/gen/ent/pipelinestep"
	"github.com/medignis/docflow/gen/ent/stepexecution"
)

// StepExecutionCreate is the builder for creating a StepExecution entity.
type StepExecutionCreate struct {
	config
	mutation *StepExecutionMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *StepExecutionCreate) SetJobID(v uuid.UUID) *StepExecutionCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetStepID sets the "step_id" field.
func (_c *StepExecutionCreate) SetStepID(v uuid.UUID) *StepExecutionCreate {
	_c.mutation.SetStepID(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *StepExecutionCreate) SetPosition(v int) *StepExecutionCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetStepName sets the "step_name" field.
func (_c *StepExecutionCreate) SetStepName(v string) *StepExecutionCreate {
	_c.mutation.SetStepName(v)
	return _c
}

// SetOutputSummary sets the "output_summary" field.
func (_c *StepExecutionCreate) SetOutputSummary(v string) *StepExecutionCreate {
	_c.mutation.SetOutputSummary(v)
	return _c
}

// SetNillableOutputSummary sets the "output_summary" field if the given value is not nil.
func (_c *StepExecutionCreate) SetNillableOutputSummary(v *string) *StepExecutionCreate {
	if v != nil {
		_c.SetOutputSummary(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *StepExecutionCreate) SetMetadata(v json.RawMessage) *StepExecutionCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *StepExecutionCreate) SetStartedAt(v time.Time) *StepExecutionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *StepExecutionCreate) SetNillableStartedAt(v *time.Time) *StepExecutionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *StepExecutionCreate) SetFinishedAt(v time.Time) *StepExecutionCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *StepExecutionCreate) SetNillableFinishedAt(v *time.Time) *StepExecutionCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StepExecutionCreate) SetID(v uuid.UUID) *StepExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *StepExecutionCreate) SetNillableID(v *uuid.UUID) *StepExecutionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the Job entity.
func (_c *StepExecutionCreate) SetJob(v *Job) *StepExecutionCreate {
	return _c.SetJobID(v.ID)
}

// SetStep sets the "step" edge to the PipelineStep entity.
func (_c *StepExecutionCreate) SetStep(v *PipelineStep) *StepExecutionCreate {
	return _c.SetStepID(v.ID)
}

// Mutation returns the StepExecutionMutation object of the builder.
func (_c *StepExecutionCreate) Mutation() *StepExecutionMutation {
	return _c.mutation
}

// Save creates the StepExecution in the database.
func (_c *StepExecutionCreate) Save(ctx context.Context) (*StepExecution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StepExecutionCreate) SaveX(ctx context.Context) *StepExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StepExecutionCreate) defaults() {
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := stepexecution.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.FinishedAt(); !ok {
		v := stepexecution.DefaultFinishedAt()
		_c.mutation.SetFinishedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := stepexecution.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StepExecutionCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "StepExecution.job_id"`)}
	}
	if _, ok := _c.mutation.StepID(); !ok {
		return &ValidationError{Name: "step_id", err: errors.New(`ent: missing required field "StepExecution.step_id"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "StepExecution.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := stepexecution.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "StepExecution.position": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StepName(); !ok {
		return &ValidationError{Name: "step_name", err: errors.New(`ent: missing required field "StepExecution.step_name"`)}
	}
	if v, ok := _c.mutation.StepName(); ok {
		if err := stepexecution.StepNameValidator(v); err != nil {
			return &ValidationError{Name: "step_name", err: fmt.Errorf(`ent: validator failed for field "StepExecution.step_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "StepExecution.started_at"`)}
	}
	if _, ok := _c.mutation.FinishedAt(); !ok {
		return &ValidationError{Name: "finished_at", err: errors.New(`ent: missing required field "StepExecution.finished_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "StepExecution.job"`)}
	}
	if len(_c.mutation.StepIDs()) == 0 {
		return &ValidationError{Name: "step", err: errors.New(`ent: missing required edge "StepExecution.step"`)}
	}
	return nil
}

func (_c *StepExecutionCreate) sqlSave(ctx context.Context) (*StepExecution, error) {
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

func (_c *StepExecutionCreate) createSpec() (*StepExecution, *sqlgraph.CreateSpec) {
	var (
		_node = &StepExecution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stepexecution.Table, sqlgraph.NewFieldSpec(stepexecution.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(stepexecution.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.StepName(); ok {
		_spec.SetField(stepexecution.FieldStepName, field.TypeString, value)
		_node.StepName = value
	}
	if value, ok := _c.mutation.OutputSummary(); ok {
		_spec.SetField(stepexecution.FieldOutputSummary, field.TypeString, value)
		_node.OutputSummary = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(stepexecution.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(stepexecution.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(stepexecution.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
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
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StepIDs(); len(nodes) > 0 {
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
		_node.StepID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// StepExecutionCreateBulk is the builder for creating many StepExecution entities in bulk.
type StepExecutionCreateBulk struct {
	config
	err      error
	builders []*StepExecutionCreate
}

// Save creates the StepExecution entities in the database.
func (_c *StepExecutionCreateBulk) Save(ctx context.Context) ([]*StepExecution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StepExecution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StepExecutionMutation)
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
func (_c *StepExecutionCreateBulk) SaveX(ctx context.Context) []*StepExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
