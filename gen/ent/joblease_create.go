// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/medignis/docflow/gen/ent/joblease"
)

// JobLeaseCreate is the builder for creating a JobLease entity.
type JobLeaseCreate struct {
	config
	mutation *JobLeaseMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *JobLeaseCreate) SetJobID(v uuid.UUID) *JobLeaseCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetHolder sets the "holder" field.
func (_c *JobLeaseCreate) SetHolder(v string) *JobLeaseCreate {
	_c.mutation.SetHolder(v)
	return _c
}

// SetAcquiredAt sets the "acquired_at" field.
func (_c *JobLeaseCreate) SetAcquiredAt(v time.Time) *JobLeaseCreate {
	_c.mutation.SetAcquiredAt(v)
	return _c
}

// SetNillableAcquiredAt sets the "acquired_at" field if the given value is not nil.
func (_c *JobLeaseCreate) SetNillableAcquiredAt(v *time.Time) *JobLeaseCreate {
	if v != nil {
		_c.SetAcquiredAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *JobLeaseCreate) SetExpiresAt(v time.Time) *JobLeaseCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *JobLeaseCreate) SetID(v uuid.UUID) *JobLeaseCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *JobLeaseCreate) SetNillableID(v *uuid.UUID) *JobLeaseCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the JobLeaseMutation object of the builder.
func (_c *JobLeaseCreate) Mutation() *JobLeaseMutation {
	return _c.mutation
}

// Save creates the JobLease in the database.
func (_c *JobLeaseCreate) Save(ctx context.Context) (*JobLease, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobLeaseCreate) SaveX(ctx context.Context) *JobLease {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobLeaseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobLeaseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobLeaseCreate) defaults() {
	if _, ok := _c.mutation.AcquiredAt(); !ok {
		v := joblease.DefaultAcquiredAt()
		_c.mutation.SetAcquiredAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := joblease.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobLeaseCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "JobLease.job_id"`)}
	}
	if _, ok := _c.mutation.Holder(); !ok {
		return &ValidationError{Name: "holder", err: errors.New(`ent: missing required field "JobLease.holder"`)}
	}
	if v, ok := _c.mutation.Holder(); ok {
		if err := joblease.HolderValidator(v); err != nil {
			return &ValidationError{Name: "holder", err: fmt.Errorf(`ent: validator failed for field "JobLease.holder": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AcquiredAt(); !ok {
		return &ValidationError{Name: "acquired_at", err: errors.New(`ent: missing required field "JobLease.acquired_at"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "JobLease.expires_at"`)}
	}
	return nil
}

func (_c *JobLeaseCreate) sqlSave(ctx context.Context) (*JobLease, error) {
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

func (_c *JobLeaseCreate) createSpec() (*JobLease, *sqlgraph.CreateSpec) {
	var (
		_node = &JobLease{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(joblease.Table, sqlgraph.NewFieldSpec(joblease.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.JobID(); ok {
		_spec.SetField(joblease.FieldJobID, field.TypeUUID, value)
		_node.JobID = value
	}
	if value, ok := _c.mutation.Holder(); ok {
		_spec.SetField(joblease.FieldHolder, field.TypeString, value)
		_node.Holder = value
	}
	if value, ok := _c.mutation.AcquiredAt(); ok {
		_spec.SetField(joblease.FieldAcquiredAt, field.TypeTime, value)
		_node.AcquiredAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(joblease.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	return _node, _spec
}

// JobLeaseCreateBulk is the builder for creating many JobLease entities in bulk.
type JobLeaseCreateBulk struct {
	config
	err      error
	builders []*JobLeaseCreate
}

// Save creates the JobLease entities in the database.
func (_c *JobLeaseCreateBulk) Save(ctx context.Context) ([]*JobLease, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*JobLease, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobLeaseMutation)
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
func (_c *JobLeaseCreateBulk) SaveX(ctx context.Context) []*JobLease {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobLeaseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobLeaseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
