// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/medignis/docflow/db/ent/schema"
	"github.com/medignis/docflow/gen/ent/documentclass"
	"github.com/medignis/docflow/gen/ent/job"
	"github.com/medignis/docflow/gen/ent/joblease"
	"github.com/medignis/docflow/gen/ent/pipelinestep"
	"github.com/medignis/docflow/gen/ent/stepexecution"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentclassFields := schema.DocumentClass{}.Fields()
	_ = documentclassFields
	// documentclassDescName is the schema descriptor for name field.
	documentclassDescName := documentclassFields[1].Descriptor()
	// documentclass.NameValidator is a validator for the "name" field. It is called by the builders before save.
	documentclass.NameValidator = documentclassDescName.Validators[0].(func(string) error)
	// documentclassDescCreatedAt is the schema descriptor for created_at field.
	documentclassDescCreatedAt := documentclassFields[3].Descriptor()
	// documentclass.DefaultCreatedAt holds the default value on creation for the created_at field.
	documentclass.DefaultCreatedAt = documentclassDescCreatedAt.Default.(func() time.Time)
	// documentclassDescID is the schema descriptor for id field.
	documentclassDescID := documentclassFields[0].Descriptor()
	// documentclass.DefaultID holds the default value on creation for the id field.
	documentclass.DefaultID = documentclassDescID.Default.(func() uuid.UUID)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescFilename is the schema descriptor for filename field.
	jobDescFilename := jobFields[2].Descriptor()
	// job.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	job.FilenameValidator = jobDescFilename.Validators[0].(func(string) error)
	// jobDescContentType is the schema descriptor for content_type field.
	jobDescContentType := jobFields[3].Descriptor()
	// job.ContentTypeValidator is a validator for the "content_type" field. It is called by the builders before save.
	job.ContentTypeValidator = jobDescContentType.Validators[0].(func(string) error)
	// jobDescFileSize is the schema descriptor for file_size field.
	jobDescFileSize := jobFields[4].Descriptor()
	// job.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	job.FileSizeValidator = jobDescFileSize.Validators[0].(func(int) error)
	// jobDescStatus is the schema descriptor for status field.
	jobDescStatus := jobFields[6].Descriptor()
	// job.DefaultStatus holds the default value on creation for the status field.
	job.DefaultStatus = jobDescStatus.Default.(string)
	// job.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	job.StatusValidator = jobDescStatus.Validators[0].(func(string) error)
	// jobDescConsent is the schema descriptor for consent field.
	jobDescConsent := jobFields[9].Descriptor()
	// job.DefaultConsent holds the default value on creation for the consent field.
	job.DefaultConsent = jobDescConsent.Default.(string)
	// job.ConsentValidator is a validator for the "consent" field. It is called by the builders before save.
	job.ConsentValidator = jobDescConsent.Validators[0].(func(string) error)
	// jobDescCancelRequested is the schema descriptor for cancel_requested field.
	jobDescCancelRequested := jobFields[10].Descriptor()
	// job.DefaultCancelRequested holds the default value on creation for the cancel_requested field.
	job.DefaultCancelRequested = jobDescCancelRequested.Default.(bool)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[12].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescID is the schema descriptor for id field.
	jobDescID := jobFields[0].Descriptor()
	// job.DefaultID holds the default value on creation for the id field.
	job.DefaultID = jobDescID.Default.(func() uuid.UUID)
	jobleaseFields := schema.JobLease{}.Fields()
	_ = jobleaseFields
	// jobleaseDescHolder is the schema descriptor for holder field.
	jobleaseDescHolder := jobleaseFields[2].Descriptor()
	// joblease.HolderValidator is a validator for the "holder" field. It is called by the builders before save.
	joblease.HolderValidator = jobleaseDescHolder.Validators[0].(func(string) error)
	// jobleaseDescAcquiredAt is the schema descriptor for acquired_at field.
	jobleaseDescAcquiredAt := jobleaseFields[3].Descriptor()
	// joblease.DefaultAcquiredAt holds the default value on creation for the acquired_at field.
	joblease.DefaultAcquiredAt = jobleaseDescAcquiredAt.Default.(func() time.Time)
	// jobleaseDescID is the schema descriptor for id field.
	jobleaseDescID := jobleaseFields[0].Descriptor()
	// joblease.DefaultID holds the default value on creation for the id field.
	joblease.DefaultID = jobleaseDescID.Default.(func() uuid.UUID)
	pipelinestepFields := schema.PipelineStep{}.Fields()
	_ = pipelinestepFields
	// pipelinestepDescName is the schema descriptor for name field.
	pipelinestepDescName := pipelinestepFields[2].Descriptor()
	// pipelinestep.NameValidator is a validator for the "name" field. It is called by the builders before save.
	pipelinestep.NameValidator = pipelinestepDescName.Validators[0].(func(string) error)
	// pipelinestepDescEnabled is the schema descriptor for enabled field.
	pipelinestepDescEnabled := pipelinestepFields[5].Descriptor()
	// pipelinestep.DefaultEnabled holds the default value on creation for the enabled field.
	pipelinestep.DefaultEnabled = pipelinestepDescEnabled.Default.(bool)
	// pipelinestepDescIsBranching is the schema descriptor for is_branching field.
	pipelinestepDescIsBranching := pipelinestepFields[6].Descriptor()
	// pipelinestep.DefaultIsBranching holds the default value on creation for the is_branching field.
	pipelinestep.DefaultIsBranching = pipelinestepDescIsBranching.Default.(bool)
	// pipelinestepDescPostBranching is the schema descriptor for post_branching field.
	pipelinestepDescPostBranching := pipelinestepFields[8].Descriptor()
	// pipelinestep.DefaultPostBranching holds the default value on creation for the post_branching field.
	pipelinestep.DefaultPostBranching = pipelinestepDescPostBranching.Default.(bool)
	// pipelinestepDescCreatedAt is the schema descriptor for created_at field.
	pipelinestepDescCreatedAt := pipelinestepFields[13].Descriptor()
	// pipelinestep.DefaultCreatedAt holds the default value on creation for the created_at field.
	pipelinestep.DefaultCreatedAt = pipelinestepDescCreatedAt.Default.(func() time.Time)
	// pipelinestepDescUpdatedAt is the schema descriptor for updated_at field.
	pipelinestepDescUpdatedAt := pipelinestepFields[14].Descriptor()
	// pipelinestep.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	pipelinestep.DefaultUpdatedAt = pipelinestepDescUpdatedAt.Default.(func() time.Time)
	// pipelinestep.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	pipelinestep.UpdateDefaultUpdatedAt = pipelinestepDescUpdatedAt.UpdateDefault.(func() time.Time)
	// pipelinestepDescID is the schema descriptor for id field.
	pipelinestepDescID := pipelinestepFields[0].Descriptor()
	// pipelinestep.DefaultID holds the default value on creation for the id field.
	pipelinestep.DefaultID = pipelinestepDescID.Default.(func() uuid.UUID)
	stepexecutionFields := schema.StepExecution{}.Fields()
	_ = stepexecutionFields
	// stepexecutionDescPosition is the schema descriptor for position field.
	stepexecutionDescPosition := stepexecutionFields[3].Descriptor()
	// stepexecution.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	stepexecution.PositionValidator = stepexecutionDescPosition.Validators[0].(func(int) error)
	// stepexecutionDescStepName is the schema descriptor for step_name field.
	stepexecutionDescStepName := stepexecutionFields[4].Descriptor()
	// stepexecution.StepNameValidator is a validator for the "step_name" field. It is called by the builders before save.
	stepexecution.StepNameValidator = stepexecutionDescStepName.Validators[0].(func(string) error)
	// stepexecutionDescStartedAt is the schema descriptor for started_at field.
	stepexecutionDescStartedAt := stepexecutionFields[7].Descriptor()
	// stepexecution.DefaultStartedAt holds the default value on creation for the started_at field.
	stepexecution.DefaultStartedAt = stepexecutionDescStartedAt.Default.(func() time.Time)
	// stepexecutionDescFinishedAt is the schema descriptor for finished_at field.
	stepexecutionDescFinishedAt := stepexecutionFields[8].Descriptor()
	// stepexecution.DefaultFinishedAt holds the default value on creation for the finished_at field.
	stepexecution.DefaultFinishedAt = stepexecutionDescFinishedAt.Default.(func() time.Time)
	// stepexecutionDescID is the schema descriptor for id field.
	stepexecutionDescID := stepexecutionFields[0].Descriptor()
	// stepexecution.DefaultID holds the default value on creation for the id field.
	stepexecution.DefaultID = stepexecutionDescID.Default.(func() uuid.UUID)
}
