// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/medignis/docflow/gen/ent/joblease"
	"github.com/medignis/docflow/gen/ent/predicate"
)

// JobLeaseUpdate is the builder for updating JobLease entities.
type JobLeaseUpdate struct {
	config
	hooks    []Hook
	mutation *JobLeaseMutation
}

// Where appends a list predicates to the JobLeaseUpdate builder.
func (_u *JobLeaseUpdate) Where(ps ...predicate.JobLease) *JobLeaseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *JobLeaseUpdate) SetJobID(v uuid.UUID) *JobLeaseUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *JobLeaseUpdate) SetNillableJobID(v *uuid.UUID) *JobLeaseUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetHolder sets the "holder" field.
func (_u *JobLeaseUpdate) SetHolder(v string) *JobLeaseUpdate {
	_u.mutation.SetHolder(v)
	return _u
}

// SetNillableHolder sets the "holder" field if the given value is not nil.
func (_u *JobLeaseUpdate) SetNillableHolder(v *string) *JobLeaseUpdate {
	if v != nil {
		_u.SetHolder(*v)
	}
	return _u
}

// SetAcquiredAt sets the "acquired_at" field.
func (_u *JobLeaseUpdate) SetAcquiredAt(v time.Time) *JobLeaseUpdate {
	_u.mutation.SetAcquiredAt(v)
	return _u
}

// SetNillableAcquiredAt sets the "acquired_at" field if the given value is not nil.
func (_u *JobLeaseUpdate) SetNillableAcquiredAt(v *time.Time) *JobLeaseUpdate {
	if v != nil {
		_u.SetAcquiredAt(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *JobLeaseUpdate) SetExpiresAt(v time.Time) *JobLeaseUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *JobLeaseUpdate) SetNillableExpiresAt(v *time.Time) *JobLeaseUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the JobLeaseMutation object of the builder.
func (_u *JobLeaseUpdate) Mutation() *JobLeaseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobLeaseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobLeaseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobLeaseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobLeaseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobLeaseUpdate) check() error {
	if v, ok := _u.mutation.Holder(); ok {
		if err := joblease.HolderValidator(v); err != nil {
			return &ValidationError{Name: "holder", err: fmt.Errorf(`ent: validator failed for field "JobLease.holder": %w`, err)}
		}
	}
	return nil
}

func (_u *JobLeaseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(joblease.Table, joblease.Columns, sqlgraph.NewFieldSpec(joblease.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(joblease.FieldJobID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Holder(); ok {
		_spec.SetField(joblease.FieldHolder, field.TypeString, value)
	}
	if value, ok := _u.mutation.AcquiredAt(); ok {
		_spec.SetField(joblease.FieldAcquiredAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(joblease.FieldExpiresAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{joblease.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobLeaseUpdateOne is the builder for updating a single JobLease entity.
type JobLeaseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobLeaseMutation
}

// SetJobID sets the "job_id" field.
func (_u *JobLeaseUpdateOne) SetJobID(v uuid.UUID) *JobLeaseUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *JobLeaseUpdateOne) SetNillableJobID(v *uuid.UUID) *JobLeaseUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetHolder sets the "holder" field.
func (_u *JobLeaseUpdateOne) SetHolder(v string) *JobLeaseUpdateOne {
	_u.mutation.SetHolder(v)
	return _u
}

// SetNillableHolder sets the "holder" field if the given value is not nil.
func (_u *JobLeaseUpdateOne) SetNillableHolder(v *string) *JobLeaseUpdateOne {
	if v != nil {
		_u.SetHolder(*v)
	}
	return _u
}

// SetAcquiredAt sets the "acquired_at" field.
func (_u *JobLeaseUpdateOne) SetAcquiredAt(v time.Time) *JobLeaseUpdateOne {
	_u.mutation.SetAcquiredAt(v)
	return _u
}

// SetNillableAcquiredAt sets the "acquired_at" field if the given value is not nil.
func (_u *JobLeaseUpdateOne) SetNillableAcquiredAt(v *time.Time) *JobLeaseUpdateOne {
	if v != nil {
		_u.SetAcquiredAt(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *JobLeaseUpdateOne) SetExpiresAt(v time.Time) *JobLeaseUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *JobLeaseUpdateOne) SetNillableExpiresAt(v *time.Time) *JobLeaseUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the JobLeaseMutation object of the builder.
func (_u *JobLeaseUpdateOne) Mutation() *JobLeaseMutation {
	return _u.mutation
}

// Where appends a list predicates to the JobLeaseUpdate builder.
func (_u *JobLeaseUpdateOne) Where(ps ...predicate.JobLease) *JobLeaseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobLeaseUpdateOne) Select(field string, fields ...string) *JobLeaseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated JobLease entity.
func (_u *JobLeaseUpdateOne) Save(ctx context.Context) (*JobLease, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobLeaseUpdateOne) SaveX(ctx context.Context) *JobLease {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobLeaseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobLeaseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobLeaseUpdateOne) check() error {
	if v, ok := _u.mutation.Holder(); ok {
		if err := joblease.HolderValidator(v); err != nil {
			return &ValidationError{Name: "holder", err: fmt.Errorf(`ent: validator failed for field "JobLease.holder": %w`, err)}
		}
	}
	return nil
}

func (_u *JobLeaseUpdateOne) sqlSave(ctx context.Context) (_node *JobLease, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(joblease.Table, joblease.Columns, sqlgraph.NewFieldSpec(joblease.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "JobLease.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, joblease.FieldID)
		for _, f := range fields {
			if !joblease.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != joblease.FieldID {
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
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(joblease.FieldJobID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Holder(); ok {
		_spec.SetField(joblease.FieldHolder, field.TypeString, value)
	}
	if value, ok := _u.mutation.AcquiredAt(); ok {
		_spec.SetField(joblease.FieldAcquiredAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(joblease.FieldExpiresAt, field.TypeTime, value)
	}
	_node = &JobLease{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{joblease.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
