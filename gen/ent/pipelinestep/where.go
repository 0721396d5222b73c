// Code generated by ent, DO NOT EDIT.

package pipelinestep

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/medignis/docflow/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLTE(FieldID, id))
}

// DocumentClassID applies equality check predicate on the "document_class_id" field. It's identical to DocumentClassIDEQ.
func DocumentClassID(v uuid.UUID) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldDocumentClassID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldName, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldPrompt, v))
}

// StepOrder applies equality check predicate on the "step_order" field. It's identical to StepOrderEQ.
func StepOrder(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldStepOrder, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldEnabled, v))
}

// IsBranching applies equality check predicate on the "is_branching" field. It's identical to IsBranchingEQ.
func IsBranching(v bool) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldIsBranching, v))
}

// BranchingField applies equality check predicate on the "branching_field" field. It's identical to BranchingFieldEQ.
func BranchingField(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldBranchingField, v))
}

// PostBranching applies equality check predicate on the "post_branching" field. It's identical to PostBranchingEQ.
func PostBranching(v bool) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldPostBranching, v))
}

// ModelName applies equality check predicate on the "model_name" field. It's identical to ModelNameEQ.
func ModelName(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldModelName, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldUpdatedAt, v))
}

// DocumentClassIDEQ applies the EQ predicate on the "document_class_id" field.
func DocumentClassIDEQ(v uuid.UUID) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldDocumentClassID, v))
}

// DocumentClassIDNEQ applies the NEQ predicate on the "document_class_id" field.
func DocumentClassIDNEQ(v uuid.UUID) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldDocumentClassID, v))
}

// DocumentClassIDIn applies the In predicate on the "document_class_id" field.
func DocumentClassIDIn(vs ...uuid.UUID) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIn(FieldDocumentClassID, vs...))
}

// DocumentClassIDNotIn applies the NotIn predicate on the "document_class_id" field.
func DocumentClassIDNotIn(vs ...uuid.UUID) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotIn(FieldDocumentClassID, vs...))
}

// DocumentClassIDIsNil applies the IsNil predicate on the "document_class_id" field.
func DocumentClassIDIsNil() predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIsNull(FieldDocumentClassID))
}

// DocumentClassIDNotNil applies the NotNil predicate on the "document_class_id" field.
func DocumentClassIDNotNil() predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotNull(FieldDocumentClassID))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldContainsFold(FieldName, v))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldContainsFold(FieldPrompt, v))
}

// StepOrderEQ applies the EQ predicate on the "step_order" field.
func StepOrderEQ(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldStepOrder, v))
}

// StepOrderNEQ applies the NEQ predicate on the "step_order" field.
func StepOrderNEQ(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldStepOrder, v))
}

// StepOrderIn applies the In predicate on the "step_order" field.
func StepOrderIn(vs ...int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIn(FieldStepOrder, vs...))
}

// StepOrderNotIn applies the NotIn predicate on the "step_order" field.
func StepOrderNotIn(vs ...int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotIn(FieldStepOrder, vs...))
}

// StepOrderGT applies the GT predicate on the "step_order" field.
func StepOrderGT(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGT(FieldStepOrder, v))
}

// StepOrderGTE applies the GTE predicate on the "step_order" field.
func StepOrderGTE(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGTE(FieldStepOrder, v))
}

// StepOrderLT applies the LT predicate on the "step_order" field.
func StepOrderLT(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLT(FieldStepOrder, v))
}

// StepOrderLTE applies the LTE predicate on the "step_order" field.
func StepOrderLTE(v int) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLTE(FieldStepOrder, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldEnabled, v))
}

// IsBranchingEQ applies the EQ predicate on the "is_branching" field.
func IsBranchingEQ(v bool) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldIsBranching, v))
}

// IsBranchingNEQ applies the NEQ predicate on the "is_branching" field.
func IsBranchingNEQ(v bool) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldIsBranching, v))
}

// BranchingFieldEQ applies the EQ predicate on the "branching_field" field.
func BranchingFieldEQ(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldBranchingField, v))
}

// BranchingFieldNEQ applies the NEQ predicate on the "branching_field" field.
func BranchingFieldNEQ(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldBranchingField, v))
}

// BranchingFieldIn applies the In predicate on the "branching_field" field.
func BranchingFieldIn(vs ...string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIn(FieldBranchingField, vs...))
}

// BranchingFieldNotIn applies the NotIn predicate on the "branching_field" field.
func BranchingFieldNotIn(vs ...string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotIn(FieldBranchingField, vs...))
}

// BranchingFieldGT applies the GT predicate on the "branching_field" field.
func BranchingFieldGT(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGT(FieldBranchingField, v))
}

// BranchingFieldGTE applies the GTE predicate on the "branching_field" field.
func BranchingFieldGTE(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGTE(FieldBranchingField, v))
}

// BranchingFieldLT applies the LT predicate on the "branching_field" field.
func BranchingFieldLT(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLT(FieldBranchingField, v))
}

// BranchingFieldLTE applies the LTE predicate on the "branching_field" field.
func BranchingFieldLTE(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLTE(FieldBranchingField, v))
}

// BranchingFieldContains applies the Contains predicate on the "branching_field" field.
func BranchingFieldContains(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldContains(FieldBranchingField, v))
}

// BranchingFieldHasPrefix applies the HasPrefix predicate on the "branching_field" field.
func BranchingFieldHasPrefix(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldHasPrefix(FieldBranchingField, v))
}

// BranchingFieldHasSuffix applies the HasSuffix predicate on the "branching_field" field.
func BranchingFieldHasSuffix(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldHasSuffix(FieldBranchingField, v))
}

// BranchingFieldIsNil applies the IsNil predicate on the "branching_field" field.
func BranchingFieldIsNil() predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIsNull(FieldBranchingField))
}

// BranchingFieldNotNil applies the NotNil predicate on the "branching_field" field.
func BranchingFieldNotNil() predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotNull(FieldBranchingField))
}

// BranchingFieldEqualFold applies the EqualFold predicate on the "branching_field" field.
func BranchingFieldEqualFold(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEqualFold(FieldBranchingField, v))
}

// BranchingFieldContainsFold applies the ContainsFold predicate on the "branching_field" field.
func BranchingFieldContainsFold(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldContainsFold(FieldBranchingField, v))
}

// PostBranchingEQ applies the EQ predicate on the "post_branching" field.
func PostBranchingEQ(v bool) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldPostBranching, v))
}

// PostBranchingNEQ applies the NEQ predicate on the "post_branching" field.
func PostBranchingNEQ(v bool) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldPostBranching, v))
}

// BranchLabelsIsNil applies the IsNil predicate on the "branch_labels" field.
func BranchLabelsIsNil() predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIsNull(FieldBranchLabels))
}

// BranchLabelsNotNil applies the NotNil predicate on the "branch_labels" field.
func BranchLabelsNotNil() predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotNull(FieldBranchLabels))
}

// StopConditionsIsNil applies the IsNil predicate on the "stop_conditions" field.
func StopConditionsIsNil() predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIsNull(FieldStopConditions))
}

// StopConditionsNotNil applies the NotNil predicate on the "stop_conditions" field.
func StopConditionsNotNil() predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotNull(FieldStopConditions))
}

// OutputSchemaIsNil applies the IsNil predicate on the "output_schema" field.
func OutputSchemaIsNil() predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIsNull(FieldOutputSchema))
}

// OutputSchemaNotNil applies the NotNil predicate on the "output_schema" field.
func OutputSchemaNotNil() predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotNull(FieldOutputSchema))
}

// ModelNameEQ applies the EQ predicate on the "model_name" field.
func ModelNameEQ(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldModelName, v))
}

// ModelNameNEQ applies the NEQ predicate on the "model_name" field.
func ModelNameNEQ(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldModelName, v))
}

// ModelNameIn applies the In predicate on the "model_name" field.
func ModelNameIn(vs ...string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIn(FieldModelName, vs...))
}

// ModelNameNotIn applies the NotIn predicate on the "model_name" field.
func ModelNameNotIn(vs ...string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotIn(FieldModelName, vs...))
}

// ModelNameGT applies the GT predicate on the "model_name" field.
func ModelNameGT(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGT(FieldModelName, v))
}

// ModelNameGTE applies the GTE predicate on the "model_name" field.
func ModelNameGTE(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGTE(FieldModelName, v))
}

// ModelNameLT applies the LT predicate on the "model_name" field.
func ModelNameLT(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLT(FieldModelName, v))
}

// ModelNameLTE applies the LTE predicate on the "model_name" field.
func ModelNameLTE(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLTE(FieldModelName, v))
}

// ModelNameContains applies the Contains predicate on the "model_name" field.
func ModelNameContains(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldContains(FieldModelName, v))
}

// ModelNameHasPrefix applies the HasPrefix predicate on the "model_name" field.
func ModelNameHasPrefix(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldHasPrefix(FieldModelName, v))
}

// ModelNameHasSuffix applies the HasSuffix predicate on the "model_name" field.
func ModelNameHasSuffix(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldHasSuffix(FieldModelName, v))
}

// ModelNameIsNil applies the IsNil predicate on the "model_name" field.
func ModelNameIsNil() predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIsNull(FieldModelName))
}

// ModelNameNotNil applies the NotNil predicate on the "model_name" field.
func ModelNameNotNil() predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotNull(FieldModelName))
}

// ModelNameEqualFold applies the EqualFold predicate on the "model_name" field.
func ModelNameEqualFold(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEqualFold(FieldModelName, v))
}

// ModelNameContainsFold applies the ContainsFold predicate on the "model_name" field.
func ModelNameContainsFold(v string) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldContainsFold(FieldModelName, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PipelineStep {
	return predicate.PipelineStep(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasDocumentClass applies the HasEdge predicate on the "document_class" edge.
func HasDocumentClass() predicate.PipelineStep {
	return predicate.PipelineStep(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentClassTable, DocumentClassColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentClassWith applies the HasEdge predicate on the "document_class" edge with a given conditions (other predicates).
func HasDocumentClassWith(preds ...predicate.DocumentClass) predicate.PipelineStep {
	return predicate.PipelineStep(func(s *sql.Selector) {
		step := newDocumentClassStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasExecutions applies the HasEdge predicate on the "executions" edge.
func HasExecutions() predicate.PipelineStep {
	return predicate.PipelineStep(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ExecutionsTable, ExecutionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExecutionsWith applies the HasEdge predicate on the "executions" edge with a given conditions (other predicates).
func HasExecutionsWith(preds ...predicate.StepExecution) predicate.PipelineStep {
	return predicate.PipelineStep(func(s *sql.Selector) {
		step := newExecutionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PipelineStep) predicate.PipelineStep {
	return predicate.PipelineStep(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PipelineStep) predicate.PipelineStep {
	return predicate.PipelineStep(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PipelineStep) predicate.PipelineStep {
	return predicate.PipelineStep(sql.NotPredicates(p))
}
