package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/medignis/docflow/constants"
	"github.com/medignis/docflow/internal/common"
	"github.com/medignis/docflow/internal/entity"
	"github.com/medignis/docflow/internal/repository"
)

// WalkConfig holds the orchestrator's timing knobs.
type WalkConfig struct {
	LeaseTTL time.Duration // renewed before each step; expiry mid-walk aborts
	Holder   string        // lease holder identity, defaults to a random id
}

// Orchestrator walks the applicable step sequence for one job at a time:
// invoke, merge, audit, branch, stop. A walk never re-enters Running and
// always leaves the job in exactly one terminal state unless its lease is
// lost first.
type Orchestrator struct {
	Logger     *slog.Logger
	Cfg        WalkConfig
	Catalog    *Catalog
	Resolver   *Resolver
	Jobs       repository.JobRepository
	Executions repository.StepExecutionRepository
	Leases     repository.JobLeaseRepository
	Capability StepCapability
	Retention  RetentionHook

	now func() time.Time
}

func NewOrchestrator(
	logger *slog.Logger,
	cfg WalkConfig,
	catalog *Catalog,
	resolver *Resolver,
	jobs repository.JobRepository,
	executions repository.StepExecutionRepository,
	leases repository.JobLeaseRepository,
	capability StepCapability,
	retention RetentionHook,
) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.LeaseTTL <= 0 {
		cfg.LeaseTTL = 2 * time.Minute
	}
	if cfg.Holder == "" {
		cfg.Holder = "walker-" + uuid.New().String()
	}
	return &Orchestrator{
		Logger:     logger,
		Cfg:        cfg,
		Catalog:    catalog,
		Resolver:   resolver,
		Jobs:       jobs,
		Executions: executions,
		Leases:     leases,
		Capability: capability,
		Retention:  retention,
		now:        time.Now,
	}
}

// Run executes the walk for jobID. Re-running a job with partial execution
// history resumes after the already-recorded steps; re-running a terminal
// job is a no-op.
func (o *Orchestrator) Run(ctx context.Context, jobID uuid.UUID) error {
	job, err := o.Jobs.GetByID(ctx, jobID)
	if err != nil {
		return fmt.Errorf("load job: %w", err)
	}
	if constants.JobStatus(job.Status).IsTerminal() {
		o.Logger.Info("walk.skip.terminal", "job_id", jobID, "status", job.Status)
		return nil
	}

	if _, err := o.Leases.Acquire(ctx, jobID, o.Cfg.Holder, o.Cfg.LeaseTTL); err != nil {
		return fmt.Errorf("acquire lease for job %s: %w", jobID, err)
	}
	defer func() {
		if err := o.Leases.Release(context.WithoutCancel(ctx), jobID, o.Cfg.Holder); err != nil {
			o.Logger.Error("walk.lease.release_failed", "job_id", jobID, "error", err)
		}
	}()

	if constants.JobStatus(job.Status) == constants.JobStatusUploaded {
		if err := o.Jobs.MarkRunning(ctx, jobID); err != nil {
			return fmt.Errorf("mark running: %w", err)
		}
	} else {
		o.Logger.Info("walk.resume", "job_id", jobID)
	}

	// Resumption state: already-recorded step ids are never re-invoked.
	history, err := o.Executions.ListByJob(ctx, jobID)
	if err != nil {
		return fmt.Errorf("load execution history: %w", err)
	}
	executed := make(map[uuid.UUID]bool, len(history))
	for _, row := range history {
		executed[row.StepID] = true
	}
	position := len(history)

	merged := map[string]any{}
	if len(job.Result) > 0 {
		if err := json.Unmarshal(job.Result, &merged); err != nil {
			o.Logger.Warn("walk.result.decode_failed", "job_id", jobID, "error", err)
			merged = map[string]any{}
		}
	}

	classID := job.DocumentClassID
	steps, fallbackUsed, err := o.Catalog.Load(ctx, classID)
	if err != nil {
		return o.failJob(ctx, job, position, "catalog", err)
	}
	// A resumed walk must re-apply the rewind cut of the recorded class
	// branch, or class-scoped steps at or before the branching step's order
	// would sneak back in.
	if classID != nil {
		if cut, ok := o.resumeBranchCut(ctx, history); ok {
			steps = Tail(steps, cut)
		}
	}

	artifact, err := o.Jobs.GetArtifact(ctx, jobID)
	if err != nil {
		return fmt.Errorf("load artifact: %w", err)
	}
	auxText := ""
	if job.AuxText != nil {
		auxText = *job.AuxText
	}

	i := 0
	for i < len(steps) {
		step := steps[i]
		i++
		if executed[step.ID] {
			continue
		}

		if err := o.Leases.Renew(ctx, jobID, o.Cfg.Holder, o.Cfg.LeaseTTL); err != nil {
			// Another holder may already be walking this job; abandon
			// without touching job state.
			o.Logger.Error("walk.lease.lost", "job_id", jobID, "step", step.Name, "error", err)
			return fmt.Errorf("job %s at step %q: %w", jobID, step.Name, common.ErrStaleLease)
		}

		startedAt := o.now()
		out, err := o.Capability.Invoke(ctx, step, JobContext{
			JobID:       jobID,
			Filename:    job.Filename,
			ContentType: job.ContentType,
			Artifact:    artifact,
			Fields:      merged,
			AuxText:     auxText,
		})
		if err != nil {
			return o.failStep(ctx, job, step, position, startedAt, fallbackUsed && position == 0, err)
		}
		if len(step.OutputSchema) > 0 {
			if verr := ValidateOutput(step.OutputSchema, out.Fields); verr != nil {
				cerr := &common.CapabilityError{Kind: "schema", Message: verr.Error(), Cause: verr}
				return o.failStep(ctx, job, step, position, startedAt, fallbackUsed && position == 0, cerr)
			}
		}

		// Merge output into the accumulated result; later steps overwrite
		// equal keys.
		for k, v := range out.Fields {
			merged[k] = v
		}
		resultRaw, err := json.Marshal(merged)
		if err != nil {
			return fmt.Errorf("encode merged result: %w", err)
		}
		if err := o.Jobs.SetResult(ctx, jobID, resultRaw); err != nil {
			return fmt.Errorf("persist result: %w", err)
		}
		if out.AuxText != "" {
			auxText = out.AuxText
			if err := o.Jobs.SetAuxText(ctx, jobID, out.AuxText); err != nil {
				return fmt.Errorf("persist aux text: %w", err)
			}
		}

		meta := ExecutionMetadata{
			FallbackUsed: fallbackUsed && position == 0,
			TokensUsed:   out.TokensUsed,
		}

		// Branch resolution happens immediately after the step's own
		// execution, before the row is written and before any reload.
		var branch *BranchOutcome
		if step.IsBranching {
			outcome, err := o.Resolver.Resolve(ctx, step, out.Fields)
			if err != nil {
				cerr := &common.CapabilityError{Kind: "branch", Message: err.Error(), Cause: err}
				return o.failStep(ctx, job, step, position, startedAt, meta.FallbackUsed, cerr)
			}
			branch = &outcome
			meta.Branch = &BranchMetadata{
				Kind:  string(outcome.Kind),
				Field: outcome.Field,
				Label: outcome.Label,
			}
			if outcome.Class != nil {
				meta.Branch.ClassID = &outcome.Class.ID
			}
		}

		stop := ShouldStop(step, out.Fields)
		if stop.Stop {
			meta.Stop = &StopMetadata{
				Field:    stop.Condition.Field,
				Operator: stop.Condition.Operator,
				Value:    stop.Condition.Value,
				Reason:   stop.Reason,
			}
		}

		if err := o.record(ctx, jobID, step, position, startedAt, summarize(out.Fields), meta); err != nil {
			return err
		}
		executed[step.ID] = true
		position++

		o.Logger.Info("walk.step.ok",
			"job_id", jobID, "step", step.Name, "order", step.Order,
			"position", position-1, "branching", step.IsBranching,
			"tokens", out.TokensUsed,
		)

		// Cancellation is only honored between steps, right after the row
		// for the finished step is committed.
		cancelled, err := o.Jobs.IsCancelRequested(ctx, jobID)
		if err != nil {
			return fmt.Errorf("read cancel flag: %w", err)
		}
		if cancelled {
			o.Logger.Info("walk.cancelled", "job_id", jobID, "after_step", step.Name)
			return o.finish(ctx, job, constants.JobStatusStopped, "cancellation requested")
		}

		if branch != nil && branch.Kind == BranchDocumentClass {
			if err := o.Jobs.SetDocumentClass(ctx, jobID, branch.Class.ID); err != nil {
				return fmt.Errorf("assign document class: %w", err)
			}
			classID = &branch.Class.ID
			o.Logger.Info("walk.branch.assigned",
				"job_id", jobID, "class", branch.Class.Name, "after_order", step.Order)

			reloaded, _, err := o.Catalog.Load(ctx, classID)
			if err != nil {
				return o.failJob(ctx, job, position, "catalog", err)
			}
			// Rewind rule: the new scope only affects the remainder of the
			// walk; nothing at or before the branching step's order runs.
			steps = Tail(reloaded, step.Order)
			i = 0
		}

		if stop.Stop {
			o.Logger.Info("walk.stopped", "job_id", jobID, "reason", stop.Reason)
			return o.finish(ctx, job, constants.JobStatusStopped, "")
		}
	}

	return o.finish(ctx, job, constants.JobStatusCompleted, "")
}

func (o *Orchestrator) record(ctx context.Context, jobID uuid.UUID, step entity.PipelineStep, position int, startedAt time.Time, summary string, meta ExecutionMetadata) error {
	raw, err := meta.Encode()
	if err != nil {
		return err
	}
	_, err = o.Executions.Record(ctx, repository.RecordExecutionParams{
		JobID:         jobID,
		StepID:        step.ID,
		Position:      position,
		StepName:      step.Name,
		OutputSummary: summary,
		Metadata:      raw,
		StartedAt:     startedAt,
		FinishedAt:    o.now(),
	})
	if err != nil {
		return fmt.Errorf("record execution: %w", err)
	}
	return nil
}

// failStep writes the failure audit row for the step, then fails the job.
// There is no automatic retry at this layer.
func (o *Orchestrator) failStep(ctx context.Context, job *entity.Job, step entity.PipelineStep, position int, startedAt time.Time, fallbackUsed bool, cause error) error {
	kind, message := "backend", cause.Error()
	var cerr *common.CapabilityError
	if errors.As(cause, &cerr) {
		kind, message = cerr.Kind, cerr.Message
	} else if errors.Is(cause, context.DeadlineExceeded) {
		kind = "timeout"
	}

	meta := ExecutionMetadata{
		FallbackUsed: fallbackUsed,
		Failure:      &FailureMetadata{Kind: kind, Message: message},
	}
	if err := o.record(ctx, job.ID, step, position, startedAt, "", meta); err != nil {
		o.Logger.Error("walk.failure.record_failed", "job_id", job.ID, "error", err)
	}
	o.Logger.Error("walk.step.failed",
		"job_id", job.ID, "step", step.Name, "order", step.Order,
		"kind", kind, "error", message,
	)
	if err := o.finish(ctx, job, constants.JobStatusFailed, message); err != nil {
		return err
	}
	return cause
}

// resumeBranchCut recovers the order cut of the last recorded class branch
// so a resumed walk sees the same tail the original walk did. Returns false
// when no class branch has been recorded yet.
func (o *Orchestrator) resumeBranchCut(ctx context.Context, history []entity.StepExecution) (int, bool) {
	for idx := len(history) - 1; idx >= 0; idx-- {
		row := history[idx]
		meta, err := DecodeMetadata(row.Metadata)
		if err != nil {
			o.Logger.Warn("walk.resume.metadata_decode_failed",
				"job_id", row.JobID, "position", row.Position, "error", err)
			continue
		}
		if meta.Branch == nil || meta.Branch.Kind != string(BranchDocumentClass) {
			continue
		}
		step, err := o.Catalog.Steps.GetByID(ctx, row.StepID)
		if err != nil {
			o.Logger.Warn("walk.resume.branch_step_missing",
				"job_id", row.JobID, "step_id", row.StepID, "error", err)
			return 0, false
		}
		return step.Order, true
	}
	return 0, false
}

// failJob fails the job without a step row, for errors that precede any
// step invocation (catalog integrity, reload failures).
func (o *Orchestrator) failJob(ctx context.Context, job *entity.Job, position int, code string, cause error) error {
	o.Logger.Error("walk.failed", "job_id", job.ID, "code", code, "position", position, "error", cause)
	if err := o.finish(ctx, job, constants.JobStatusFailed, cause.Error()); err != nil {
		return err
	}
	return cause
}

func (o *Orchestrator) finish(ctx context.Context, job *entity.Job, status constants.JobStatus, reason string) error {
	if err := o.Jobs.Finish(ctx, job.ID, status, reason); err != nil {
		return fmt.Errorf("finish job: %w", err)
	}
	if o.Retention != nil {
		// re-read so the hook sees the walk's aux text, not the snapshot
		fresh, err := o.Jobs.GetByID(ctx, job.ID)
		if err != nil {
			return fmt.Errorf("reload job for retention: %w", err)
		}
		if err := o.Retention.OnTerminal(ctx, fresh, status); err != nil {
			o.Logger.Error("walk.retention_failed", "job_id", job.ID, "error", err)
		}
	}
	return nil
}

// summarize renders a short, loggable digest of a step output.
func summarize(fields map[string]any) string {
	raw, err := json.Marshal(fields)
	if err != nil {
		return ""
	}
	const max = 500
	s := string(raw)
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
