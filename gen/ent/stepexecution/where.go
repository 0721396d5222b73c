// Code generated by ent, DO NOT EDIT.

package stepexecution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/medignis/docflow/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldJobID, v))
}

// StepID applies equality check predicate on the "step_id" field. It's identical to StepIDEQ.
func StepID(v uuid.UUID) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldStepID, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldPosition, v))
}

// StepName applies equality check predicate on the "step_name" field. It's identical to StepNameEQ.
func StepName(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldStepName, v))
}

// OutputSummary applies equality check predicate on the "output_summary" field. It's identical to OutputSummaryEQ.
func OutputSummary(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldOutputSummary, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldFinishedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotIn(FieldJobID, vs...))
}

// StepIDEQ applies the EQ predicate on the "step_id" field.
func StepIDEQ(v uuid.UUID) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldStepID, v))
}

// StepIDNEQ applies the NEQ predicate on the "step_id" field.
func StepIDNEQ(v uuid.UUID) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNEQ(FieldStepID, v))
}

// StepIDIn applies the In predicate on the "step_id" field.
func StepIDIn(vs ...uuid.UUID) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIn(FieldStepID, vs...))
}

// StepIDNotIn applies the NotIn predicate on the "step_id" field.
func StepIDNotIn(vs ...uuid.UUID) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotIn(FieldStepID, vs...))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLTE(FieldPosition, v))
}

// StepNameEQ applies the EQ predicate on the "step_name" field.
func StepNameEQ(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldStepName, v))
}

// StepNameNEQ applies the NEQ predicate on the "step_name" field.
func StepNameNEQ(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNEQ(FieldStepName, v))
}

// StepNameIn applies the In predicate on the "step_name" field.
func StepNameIn(vs ...string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIn(FieldStepName, vs...))
}

// StepNameNotIn applies the NotIn predicate on the "step_name" field.
func StepNameNotIn(vs ...string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotIn(FieldStepName, vs...))
}

// StepNameGT applies the GT predicate on the "step_name" field.
func StepNameGT(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGT(FieldStepName, v))
}

// StepNameGTE applies the GTE predicate on the "step_name" field.
func StepNameGTE(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGTE(FieldStepName, v))
}

// StepNameLT applies the LT predicate on the "step_name" field.
func StepNameLT(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLT(FieldStepName, v))
}

// StepNameLTE applies the LTE predicate on the "step_name" field.
func StepNameLTE(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLTE(FieldStepName, v))
}

// StepNameContains applies the Contains predicate on the "step_name" field.
func StepNameContains(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldContains(FieldStepName, v))
}

// StepNameHasPrefix applies the HasPrefix predicate on the "step_name" field.
func StepNameHasPrefix(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldHasPrefix(FieldStepName, v))
}

// StepNameHasSuffix applies the HasSuffix predicate on the "step_name" field.
func StepNameHasSuffix(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldHasSuffix(FieldStepName, v))
}

// StepNameEqualFold applies the EqualFold predicate on the "step_name" field.
func StepNameEqualFold(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEqualFold(FieldStepName, v))
}

// StepNameContainsFold applies the ContainsFold predicate on the "step_name" field.
func StepNameContainsFold(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldContainsFold(FieldStepName, v))
}

// OutputSummaryEQ applies the EQ predicate on the "output_summary" field.
func OutputSummaryEQ(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldOutputSummary, v))
}

// OutputSummaryNEQ applies the NEQ predicate on the "output_summary" field.
func OutputSummaryNEQ(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNEQ(FieldOutputSummary, v))
}

// OutputSummaryIn applies the In predicate on the "output_summary" field.
func OutputSummaryIn(vs ...string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIn(FieldOutputSummary, vs...))
}

// OutputSummaryNotIn applies the NotIn predicate on the "output_summary" field.
func OutputSummaryNotIn(vs ...string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotIn(FieldOutputSummary, vs...))
}

// OutputSummaryGT applies the GT predicate on the "output_summary" field.
func OutputSummaryGT(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGT(FieldOutputSummary, v))
}

// OutputSummaryGTE applies the GTE predicate on the "output_summary" field.
func OutputSummaryGTE(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGTE(FieldOutputSummary, v))
}

// OutputSummaryLT applies the LT predicate on the "output_summary" field.
func OutputSummaryLT(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLT(FieldOutputSummary, v))
}

// OutputSummaryLTE applies the LTE predicate on the "output_summary" field.
func OutputSummaryLTE(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLTE(FieldOutputSummary, v))
}

// OutputSummaryContains applies the Contains predicate on the "output_summary" field.
func OutputSummaryContains(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldContains(FieldOutputSummary, v))
}

// OutputSummaryHasPrefix applies the HasPrefix predicate on the "output_summary" field.
func OutputSummaryHasPrefix(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldHasPrefix(FieldOutputSummary, v))
}

// OutputSummaryHasSuffix applies the HasSuffix predicate on the "output_summary" field.
func OutputSummaryHasSuffix(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldHasSuffix(FieldOutputSummary, v))
}

// OutputSummaryIsNil applies the IsNil predicate on the "output_summary" field.
func OutputSummaryIsNil() predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIsNull(FieldOutputSummary))
}

// OutputSummaryNotNil applies the NotNil predicate on the "output_summary" field.
func OutputSummaryNotNil() predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotNull(FieldOutputSummary))
}

// OutputSummaryEqualFold applies the EqualFold predicate on the "output_summary" field.
func OutputSummaryEqualFold(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEqualFold(FieldOutputSummary, v))
}

// OutputSummaryContainsFold applies the ContainsFold predicate on the "output_summary" field.
func OutputSummaryContainsFold(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldContainsFold(FieldOutputSummary, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotNull(FieldMetadata))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLTE(FieldFinishedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.StepExecution {
	return predicate.StepExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.Job) predicate.StepExecution {
	return predicate.StepExecution(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStep applies the HasEdge predicate on the "step" edge.
func HasStep() predicate.StepExecution {
	return predicate.StepExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StepTable, StepColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepWith applies the HasEdge predicate on the "step" edge with a given conditions (other predicates).
func HasStepWith(preds ...predicate.PipelineStep) predicate.StepExecution {
	return predicate.StepExecution(func(s *sql.Selector) {
		step := newStepStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StepExecution) predicate.StepExecution {
	return predicate.StepExecution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StepExecution) predicate.StepExecution {
	return predicate.StepExecution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StepExecution) predicate.StepExecution {
	return predicate.StepExecution(sql.NotPredicates(p))
}
