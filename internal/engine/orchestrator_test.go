package engine

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medignis/docflow/constants"
	"github.com/medignis/docflow/internal/common"
	"github.com/medignis/docflow/internal/entity"
	"github.com/medignis/docflow/internal/repository"
)

type testEnv struct {
	steps      *fakeStepRepo
	classes    *fakeClassRepo
	jobs       *fakeJobRepo
	execs      *fakeExecRepo
	leases     *fakeLeaseRepo
	capability *scriptedCapability
	orch       *Orchestrator
}

func newTestEnv(steps []entity.PipelineStep, classes []entity.DocumentClass) *testEnv {
	env := &testEnv{
		steps:      &fakeStepRepo{steps: steps},
		classes:    &fakeClassRepo{classes: classes},
		jobs:       newFakeJobRepo(),
		execs:      &fakeExecRepo{},
		leases:     newFakeLeaseRepo(),
		capability: newScriptedCapability(),
	}
	env.orch = NewOrchestrator(
		nil,
		WalkConfig{LeaseTTL: time.Minute, Holder: "test-walker"},
		NewCatalog(env.steps, nil),
		NewResolver(env.classes, nil),
		env.jobs,
		env.execs,
		env.leases,
		env.capability,
		NewConsentRetention(env.jobs, nil),
	)
	return env
}

func (env *testEnv) newJob(t *testing.T, consent constants.Consent) *entity.Job {
	t.Helper()
	job, err := env.jobs.Create(context.Background(), repository.CreateJobParams{
		Filename:    "scan.pdf",
		ContentType: "application/pdf",
		Artifact:    []byte("%PDF-1.4"),
		Consent:     consent,
	})
	require.NoError(t, err)
	return job
}

func (env *testEnv) jobStatus(t *testing.T, id uuid.UUID) string {
	t.Helper()
	job, err := env.jobs.GetByID(context.Background(), id)
	require.NoError(t, err)
	return job.Status
}

func TestRun_ClassBranchSelectsScopedSteps(t *testing.T) {
	labID := uuid.New()
	classify := universalStep("classify", 1, false)
	classify.IsBranching = true
	classify.BranchingField = "doc_class"
	extract := scopedStep("extract_values", 2, labID)

	env := newTestEnv(
		[]entity.PipelineStep{classify, extract},
		[]entity.DocumentClass{{ID: labID, Name: "LAB"}},
	)
	env.capability.outputs["classify"] = StepOutput{Fields: map[string]any{"doc_class": "LAB"}}
	env.capability.outputs["extract_values"] = StepOutput{Fields: map[string]any{"values": "ok"}}

	job := env.newJob(t, constants.ConsentUnknown)
	require.NoError(t, env.orch.Run(context.Background(), job.ID))

	assert.Equal(t, string(constants.JobStatusCompleted), env.jobStatus(t, job.ID))
	assert.Equal(t, []string{"classify", "extract_values"}, env.capability.invoked)

	updated, err := env.jobs.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.DocumentClassID)
	assert.Equal(t, labID, *updated.DocumentClassID)

	rows, err := env.execs.ListByJob(context.Background(), job.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	meta, err := DecodeMetadata(rows[0].Metadata)
	require.NoError(t, err)
	require.NotNil(t, meta.Branch)
	assert.Equal(t, string(BranchDocumentClass), meta.Branch.Kind)
	assert.Equal(t, "LAB", meta.Branch.Label)
}

func TestRun_BranchRewindNeverRunsEarlierScopedSteps(t *testing.T) {
	labID := uuid.New()
	classify := universalStep("classify", 2, false)
	classify.IsBranching = true
	classify.BranchingField = "doc_class"
	tooEarly := scopedStep("too_early", 1, labID)
	atBranch := scopedStep("at_branch_order", 2, labID)
	after := scopedStep("after", 3, labID)

	env := newTestEnv(
		[]entity.PipelineStep{classify, tooEarly, atBranch, after},
		[]entity.DocumentClass{{ID: labID, Name: "LAB"}},
	)
	env.capability.outputs["classify"] = StepOutput{Fields: map[string]any{"doc_class": "LAB"}}

	job := env.newJob(t, constants.ConsentUnknown)
	require.NoError(t, env.orch.Run(context.Background(), job.ID))

	assert.Equal(t, string(constants.JobStatusCompleted), env.jobStatus(t, job.ID))
	assert.Equal(t, []string{"classify", "after"}, env.capability.invoked,
		"no step with order <= branch order from the new scope may run")
}

func TestRun_ResumptionPreservesBranchRewind(t *testing.T) {
	labID := uuid.New()
	classify := universalStep("classify", 2, false)
	classify.IsBranching = true
	classify.BranchingField = "doc_class"
	tooEarly := scopedStep("too_early", 1, labID)
	after := scopedStep("after", 3, labID)

	env := newTestEnv(
		[]entity.PipelineStep{classify, tooEarly, after},
		[]entity.DocumentClass{{ID: labID, Name: "LAB"}},
	)

	// simulate a prior walk that classified the job, recorded the branching
	// step, and then lost its lease
	job := env.newJob(t, constants.ConsentUnknown)
	require.NoError(t, env.jobs.MarkRunning(context.Background(), job.ID))
	require.NoError(t, env.jobs.SetDocumentClass(context.Background(), job.ID, labID))
	meta := ExecutionMetadata{Branch: &BranchMetadata{
		Kind:    string(BranchDocumentClass),
		Field:   "doc_class",
		Label:   "LAB",
		ClassID: &labID,
	}}
	raw, err := meta.Encode()
	require.NoError(t, err)
	_, err = env.execs.Record(context.Background(), repository.RecordExecutionParams{
		JobID:    job.ID,
		StepID:   classify.ID,
		Position: 0,
		StepName: classify.Name,
		Metadata: raw,
	})
	require.NoError(t, err)

	require.NoError(t, env.orch.Run(context.Background(), job.ID))

	assert.Equal(t, string(constants.JobStatusCompleted), env.jobStatus(t, job.ID))
	assert.Equal(t, []string{"after"}, env.capability.invoked,
		"a resumed walk must honor the rewind cut of the recorded branch")
}

func TestRun_StopConditionHaltsWalk(t *testing.T) {
	validate := universalStep("validate", 1, false)
	validate.StopConditions = []entity.StopCondition{
		{Field: "category", Operator: "eq", Value: "NICHT_MEDIZINISCH"},
	}
	translate := universalStep("translate", 2, false)

	env := newTestEnv([]entity.PipelineStep{validate, translate}, nil)
	env.capability.outputs["validate"] = StepOutput{Fields: map[string]any{"category": "NICHT_MEDIZINISCH"}}

	job := env.newJob(t, constants.ConsentUnknown)
	require.NoError(t, env.orch.Run(context.Background(), job.ID))

	assert.Equal(t, string(constants.JobStatusStopped), env.jobStatus(t, job.ID))
	assert.Equal(t, []string{"validate"}, env.capability.invoked)

	rows, err := env.execs.ListByJob(context.Background(), job.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	meta, err := DecodeMetadata(rows[0].Metadata)
	require.NoError(t, err)
	require.NotNil(t, meta.Stop)
	assert.Equal(t, "category", meta.Stop.Field)
}

func TestRun_StopFirstMatchRecorded(t *testing.T) {
	validate := universalStep("validate", 1, false)
	validate.StopConditions = []entity.StopCondition{
		{Field: "category", Operator: "eq", Value: "SPAM"},
		{Field: "category", Operator: "contains", Value: "SPA"},
	}
	env := newTestEnv([]entity.PipelineStep{validate}, nil)
	env.capability.outputs["validate"] = StepOutput{Fields: map[string]any{"category": "SPAM"}}

	job := env.newJob(t, constants.ConsentUnknown)
	require.NoError(t, env.orch.Run(context.Background(), job.ID))

	rows, err := env.execs.ListByJob(context.Background(), job.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	meta, err := DecodeMetadata(rows[0].Metadata)
	require.NoError(t, err)
	require.NotNil(t, meta.Stop)
	assert.Equal(t, "eq", meta.Stop.Operator)
}

func TestRun_FallbackRecordedOnFirstExecution(t *testing.T) {
	translate := universalStep("translate", 1, true)
	summarize := universalStep("summarize", 2, true)

	env := newTestEnv([]entity.PipelineStep{translate, summarize}, nil)
	job := env.newJob(t, constants.ConsentUnknown)
	require.NoError(t, env.orch.Run(context.Background(), job.ID))

	assert.Equal(t, string(constants.JobStatusCompleted), env.jobStatus(t, job.ID))
	rows, err := env.execs.ListByJob(context.Background(), job.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	first, err := DecodeMetadata(rows[0].Metadata)
	require.NoError(t, err)
	assert.True(t, first.FallbackUsed, "first row must record the degraded catalog mode")
	second, err := DecodeMetadata(rows[1].Metadata)
	require.NoError(t, err)
	assert.False(t, second.FallbackUsed)
}

func TestRun_CapabilityFailureIsTerminal(t *testing.T) {
	s1 := universalStep("ocr", 1, false)
	s2 := universalStep("pii", 2, false)
	s3 := universalStep("translate", 3, false)
	s4 := universalStep("summarize", 4, false)

	env := newTestEnv([]entity.PipelineStep{s1, s2, s3, s4}, nil)
	env.capability.errs["translate"] = &common.CapabilityError{Kind: "timeout", Message: "backend timed out"}

	job := env.newJob(t, constants.ConsentUnknown)
	err := env.orch.Run(context.Background(), job.ID)
	require.Error(t, err)

	assert.Equal(t, string(constants.JobStatusFailed), env.jobStatus(t, job.ID))
	assert.Equal(t, []string{"ocr", "pii", "translate"}, env.capability.invoked,
		"no step after the failed one may run")

	rows, lerr := env.execs.ListByJob(context.Background(), job.ID)
	require.NoError(t, lerr)
	require.Len(t, rows, 3)
	meta, merr := DecodeMetadata(rows[2].Metadata)
	require.NoError(t, merr)
	require.NotNil(t, meta.Failure)
	assert.Equal(t, "timeout", meta.Failure.Kind)
}

func TestRun_OutputSchemaViolationFailsStep(t *testing.T) {
	step := universalStep("extract", 1, false)
	step.OutputSchema = json.RawMessage(`{
		"type": "object",
		"required": ["category"],
		"properties": {"category": {"type": "string"}}
	}`)

	env := newTestEnv([]entity.PipelineStep{step}, nil)
	env.capability.outputs["extract"] = StepOutput{Fields: map[string]any{"other": 1}}

	job := env.newJob(t, constants.ConsentUnknown)
	err := env.orch.Run(context.Background(), job.ID)
	require.Error(t, err)

	assert.Equal(t, string(constants.JobStatusFailed), env.jobStatus(t, job.ID))
	rows, lerr := env.execs.ListByJob(context.Background(), job.ID)
	require.NoError(t, lerr)
	require.Len(t, rows, 1)
	meta, merr := DecodeMetadata(rows[0].Metadata)
	require.NoError(t, merr)
	require.NotNil(t, meta.Failure)
	assert.Equal(t, "schema", meta.Failure.Kind)
}

func TestRun_ResumptionSkipsRecordedSteps(t *testing.T) {
	s1 := universalStep("ocr", 1, false)
	s2 := universalStep("translate", 2, false)

	env := newTestEnv([]entity.PipelineStep{s1, s2}, nil)
	job := env.newJob(t, constants.ConsentUnknown)

	// simulate a prior walk that recorded step 1 and then lost its lease
	require.NoError(t, env.jobs.MarkRunning(context.Background(), job.ID))
	_, err := env.execs.Record(context.Background(), repository.RecordExecutionParams{
		JobID:    job.ID,
		StepID:   s1.ID,
		Position: 0,
		StepName: s1.Name,
	})
	require.NoError(t, err)

	require.NoError(t, env.orch.Run(context.Background(), job.ID))

	assert.Equal(t, string(constants.JobStatusCompleted), env.jobStatus(t, job.ID))
	assert.Equal(t, []string{"translate"}, env.capability.invoked,
		"already-recorded step ids must not be re-invoked")

	rows, err := env.execs.ListByJob(context.Background(), job.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[1].Position)
}

func TestRun_CancellationStopsBetweenSteps(t *testing.T) {
	s1 := universalStep("ocr", 1, false)
	s2 := universalStep("translate", 2, false)

	env := newTestEnv([]entity.PipelineStep{s1, s2}, nil)
	job := env.newJob(t, constants.ConsentUnknown)
	require.NoError(t, env.jobs.RequestCancel(context.Background(), job.ID))

	require.NoError(t, env.orch.Run(context.Background(), job.ID))

	assert.Equal(t, string(constants.JobStatusStopped), env.jobStatus(t, job.ID))
	assert.Equal(t, []string{"ocr"}, env.capability.invoked,
		"cancellation is honored after the current step commits, before the next")

	updated, err := env.jobs.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.ErrorMessage)
	assert.Contains(t, *updated.ErrorMessage, "cancellation")
}

func TestRun_StaleLeaseAbandonsWithoutTerminalWrite(t *testing.T) {
	s1 := universalStep("ocr", 1, false)
	s2 := universalStep("translate", 2, false)

	env := newTestEnv([]entity.PipelineStep{s1, s2}, nil)
	env.leases.renewFailAfter = 1

	job := env.newJob(t, constants.ConsentUnknown)
	err := env.orch.Run(context.Background(), job.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrStaleLease)

	assert.Equal(t, string(constants.JobStatusRunning), env.jobStatus(t, job.ID),
		"a walk that lost its lease must not write job state")
	assert.Equal(t, []string{"ocr"}, env.capability.invoked)
}

func TestRun_TerminalJobIsNoOp(t *testing.T) {
	s1 := universalStep("ocr", 1, false)
	env := newTestEnv([]entity.PipelineStep{s1}, nil)

	job := env.newJob(t, constants.ConsentUnknown)
	require.NoError(t, env.orch.Run(context.Background(), job.ID))
	require.NoError(t, env.orch.Run(context.Background(), job.ID))

	assert.Equal(t, []string{"ocr"}, env.capability.invoked, "re-running a terminal job must not invoke anything")
	rows, err := env.execs.ListByJob(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestRun_BooleanBranchNeverAssignsClass(t *testing.T) {
	check := universalStep("medical_check", 1, false)
	check.IsBranching = true
	check.BranchingField = "is_medical"
	next := universalStep("translate", 2, false)

	env := newTestEnv([]entity.PipelineStep{check, next}, nil)
	env.capability.outputs["medical_check"] = StepOutput{Fields: map[string]any{"is_medical": "ja"}}

	job := env.newJob(t, constants.ConsentUnknown)
	require.NoError(t, env.orch.Run(context.Background(), job.ID))

	updated, err := env.jobs.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Nil(t, updated.DocumentClassID, "only class-valued branches may classify the job")
	assert.Equal(t, string(constants.JobStatusCompleted), updated.Status)
	assert.Equal(t, []string{"medical_check", "translate"}, env.capability.invoked)
}

func TestRun_ResultMergesAcrossSteps(t *testing.T) {
	s1 := universalStep("ocr", 1, false)
	s2 := universalStep("translate", 2, false)

	env := newTestEnv([]entity.PipelineStep{s1, s2}, nil)
	env.capability.outputs["ocr"] = StepOutput{Fields: map[string]any{"text": "raw", "pages": float64(2)}}
	env.capability.outputs["translate"] = StepOutput{Fields: map[string]any{"text": "translated"}}

	job := env.newJob(t, constants.ConsentUnknown)
	require.NoError(t, env.orch.Run(context.Background(), job.ID))

	updated, err := env.jobs.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	var result map[string]any
	require.NoError(t, json.Unmarshal(updated.Result, &result))
	assert.Equal(t, "translated", result["text"], "later steps overwrite equal keys")
	assert.Equal(t, float64(2), result["pages"])
}

func TestRun_RetentionPurgesAuxTextWithoutConsent(t *testing.T) {
	s1 := universalStep("guidelines", 1, false)
	env := newTestEnv([]entity.PipelineStep{s1}, nil)
	env.capability.outputs["guidelines"] = StepOutput{
		Fields:  map[string]any{"ok": true},
		AuxText: "cached guideline text",
	}

	job := env.newJob(t, constants.ConsentDeclined)
	require.NoError(t, env.orch.Run(context.Background(), job.ID))

	updated, err := env.jobs.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Nil(t, updated.AuxText)
}

func TestRun_RetentionKeepsAuxTextWithConsent(t *testing.T) {
	s1 := universalStep("guidelines", 1, false)
	env := newTestEnv([]entity.PipelineStep{s1}, nil)
	env.capability.outputs["guidelines"] = StepOutput{
		Fields:  map[string]any{"ok": true},
		AuxText: "cached guideline text",
	}

	job := env.newJob(t, constants.ConsentGranted)
	require.NoError(t, env.orch.Run(context.Background(), job.ID))

	updated, err := env.jobs.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.AuxText)
	assert.Equal(t, "cached guideline text", *updated.AuxText)
}

func TestRun_LeaseHeldByOtherWalker(t *testing.T) {
	s1 := universalStep("ocr", 1, false)
	env := newTestEnv([]entity.PipelineStep{s1}, nil)

	job := env.newJob(t, constants.ConsentUnknown)
	_, err := env.leases.Acquire(context.Background(), job.ID, "other-walker", time.Minute)
	require.NoError(t, err)

	err = env.orch.Run(context.Background(), job.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrLeaseHeld)
	assert.Empty(t, env.capability.invoked)
}

func TestRun_BranchDistributionAggregates(t *testing.T) {
	labID := uuid.New()
	classify := universalStep("classify", 1, false)
	classify.IsBranching = true
	classify.BranchingField = "doc_class"

	env := newTestEnv(
		[]entity.PipelineStep{classify},
		[]entity.DocumentClass{{ID: labID, Name: "LAB"}},
	)

	for i, out := range []string{"LAB", "LAB", "unknown"} {
		env.capability.outputs["classify"] = StepOutput{Fields: map[string]any{"doc_class": out}}
		job := env.newJob(t, constants.ConsentUnknown)
		require.NoError(t, env.orch.Run(context.Background(), job.ID), "job %d", i)
	}

	dist, err := env.execs.BranchDistribution(context.Background(), classify.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, dist["document_class:LAB"])
	assert.Equal(t, 1, dist["generic:unknown"])
}
