// Code generated by ent, DO NOT EDIT.

package joblease

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/medignis/docflow/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.JobLease {
	return predicate.JobLease(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.JobLease {
	return predicate.JobLease(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.JobLease {
	return predicate.JobLease(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.JobLease {
	return predicate.JobLease(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.JobLease {
	return predicate.JobLease(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.JobLease {
	return predicate.JobLease(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.JobLease {
	return predicate.JobLease(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.JobLease {
	return predicate.JobLease(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.JobLease {
	return predicate.JobLease(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.JobLease {
	return predicate.JobLease(sql.FieldEQ(FieldJobID, v))
}

// Holder applies equality check predicate on the "holder" field. It's identical to HolderEQ.
func Holder(v string) predicate.JobLease {
	return predicate.JobLease(sql.FieldEQ(FieldHolder, v))
}

// AcquiredAt applies equality check predicate on the "acquired_at" field. It's identical to AcquiredAtEQ.
func AcquiredAt(v time.Time) predicate.JobLease {
	return predicate.JobLease(sql.FieldEQ(FieldAcquiredAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.JobLease {
	return predicate.JobLease(sql.FieldEQ(FieldExpiresAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.JobLease {
	return predicate.JobLease(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.JobLease {
	return predicate.JobLease(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.JobLease {
	return predicate.JobLease(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.JobLease {
	return predicate.JobLease(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v uuid.UUID) predicate.JobLease {
	return predicate.JobLease(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v uuid.UUID) predicate.JobLease {
	return predicate.JobLease(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v uuid.UUID) predicate.JobLease {
	return predicate.JobLease(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v uuid.UUID) predicate.JobLease {
	return predicate.JobLease(sql.FieldLTE(FieldJobID, v))
}

// HolderEQ applies the EQ predicate on the "holder" field.
func HolderEQ(v string) predicate.JobLease {
	return predicate.JobLease(sql.FieldEQ(FieldHolder, v))
}

// HolderNEQ applies the NEQ predicate on the "holder" field.
func HolderNEQ(v string) predicate.JobLease {
	return predicate.JobLease(sql.FieldNEQ(FieldHolder, v))
}

// HolderIn applies the In predicate on the "holder" field.
func HolderIn(vs ...string) predicate.JobLease {
	return predicate.JobLease(sql.FieldIn(FieldHolder, vs...))
}

// HolderNotIn applies the NotIn predicate on the "holder" field.
func HolderNotIn(vs ...string) predicate.JobLease {
	return predicate.JobLease(sql.FieldNotIn(FieldHolder, vs...))
}

// HolderGT applies the GT predicate on the "holder" field.
func HolderGT(v string) predicate.JobLease {
	return predicate.JobLease(sql.FieldGT(FieldHolder, v))
}

// HolderGTE applies the GTE predicate on the "holder" field.
func HolderGTE(v string) predicate.JobLease {
	return predicate.JobLease(sql.FieldGTE(FieldHolder, v))
}

// HolderLT applies the LT predicate on the "holder" field.
func HolderLT(v string) predicate.JobLease {
	return predicate.JobLease(sql.FieldLT(FieldHolder, v))
}

// HolderLTE applies the LTE predicate on the "holder" field.
func HolderLTE(v string) predicate.JobLease {
	return predicate.JobLease(sql.FieldLTE(FieldHolder, v))
}

// HolderContains applies the Contains predicate on the "holder" field.
func HolderContains(v string) predicate.JobLease {
	return predicate.JobLease(sql.FieldContains(FieldHolder, v))
}

// HolderHasPrefix applies the HasPrefix predicate on the "holder" field.
func HolderHasPrefix(v string) predicate.JobLease {
	return predicate.JobLease(sql.FieldHasPrefix(FieldHolder, v))
}

// HolderHasSuffix applies the HasSuffix predicate on the "holder" field.
func HolderHasSuffix(v string) predicate.JobLease {
	return predicate.JobLease(sql.FieldHasSuffix(FieldHolder, v))
}

// HolderEqualFold applies the EqualFold predicate on the "holder" field.
func HolderEqualFold(v string) predicate.JobLease {
	return predicate.JobLease(sql.FieldEqualFold(FieldHolder, v))
}

// HolderContainsFold applies the ContainsFold predicate on the "holder" field.
func HolderContainsFold(v string) predicate.JobLease {
	return predicate.JobLease(sql.FieldContainsFold(FieldHolder, v))
}

// AcquiredAtEQ applies the EQ predicate on the "acquired_at" field.
func AcquiredAtEQ(v time.Time) predicate.JobLease {
	return predicate.JobLease(sql.FieldEQ(FieldAcquiredAt, v))
}

// AcquiredAtNEQ applies the NEQ predicate on the "acquired_at" field.
func AcquiredAtNEQ(v time.Time) predicate.JobLease {
	return predicate.JobLease(sql.FieldNEQ(FieldAcquiredAt, v))
}

// AcquiredAtIn applies the In predicate on the "acquired_at" field.
func AcquiredAtIn(vs ...time.Time) predicate.JobLease {
	return predicate.JobLease(sql.FieldIn(FieldAcquiredAt, vs...))
}

// AcquiredAtNotIn applies the NotIn predicate on the "acquired_at" field.
func AcquiredAtNotIn(vs ...time.Time) predicate.JobLease {
	return predicate.JobLease(sql.FieldNotIn(FieldAcquiredAt, vs...))
}

// AcquiredAtGT applies the GT predicate on the "acquired_at" field.
func AcquiredAtGT(v time.Time) predicate.JobLease {
	return predicate.JobLease(sql.FieldGT(FieldAcquiredAt, v))
}

// AcquiredAtGTE applies the GTE predicate on the "acquired_at" field.
func AcquiredAtGTE(v time.Time) predicate.JobLease {
	return predicate.JobLease(sql.FieldGTE(FieldAcquiredAt, v))
}

// AcquiredAtLT applies the LT predicate on the "acquired_at" field.
func AcquiredAtLT(v time.Time) predicate.JobLease {
	return predicate.JobLease(sql.FieldLT(FieldAcquiredAt, v))
}

// AcquiredAtLTE applies the LTE predicate on the "acquired_at" field.
func AcquiredAtLTE(v time.Time) predicate.JobLease {
	return predicate.JobLease(sql.FieldLTE(FieldAcquiredAt, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.JobLease {
	return predicate.JobLease(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.JobLease {
	return predicate.JobLease(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.JobLease {
	return predicate.JobLease(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.JobLease {
	return predicate.JobLease(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.JobLease {
	return predicate.JobLease(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.JobLease {
	return predicate.JobLease(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.JobLease {
	return predicate.JobLease(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.JobLease {
	return predicate.JobLease(sql.FieldLTE(FieldExpiresAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.JobLease) predicate.JobLease {
	return predicate.JobLease(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.JobLease) predicate.JobLease {
	return predicate.JobLease(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.JobLease) predicate.JobLease {
	return predicate.JobLease(sql.NotPredicates(p))
}
