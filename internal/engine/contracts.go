package engine

import (
	"context"

	"github.com/google/uuid"

	"github.com/medignis/docflow/constants"
	"github.com/medignis/docflow/internal/entity"
)

// JobContext is the accumulated state handed to a step capability. Fields is
// the merged output of all previously executed steps.
type JobContext struct {
	JobID       uuid.UUID
	Filename    string
	ContentType string
	Artifact    []byte
	Fields      map[string]any
	AuxText     string
}

// StepOutput is what a capability returns on success.
type StepOutput struct {
	Fields     map[string]any
	AuxText    string // optional cached reference text, consent-gated
	TokensUsed int
}

// StepCapability performs a step's actual work. The engine does not know or
// care whether this is an LLM call, an OCR call, or a PII-removal call.
// Failures should be *common.CapabilityError so the failure kind lands in the
// audit metadata.
type StepCapability interface {
	Invoke(ctx context.Context, step entity.PipelineStep, jobCtx JobContext) (StepOutput, error)
}

// RetentionHook is called exactly once when a job reaches a terminal state,
// so consent-gated side artifacts can be preserved or purged.
type RetentionHook interface {
	OnTerminal(ctx context.Context, job *entity.Job, status constants.JobStatus) error
}
