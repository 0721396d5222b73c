package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/medignis/docflow/gen/ent"
	"github.com/medignis/docflow/gen/ent/stepexecution"
	"github.com/medignis/docflow/internal/entity"
)

// RecordExecutionParams carries one finished step invocation into the audit log.
type RecordExecutionParams struct {
	JobID         uuid.UUID
	StepID        uuid.UUID
	Position      int
	StepName      string
	OutputSummary string
	Metadata      json.RawMessage
	StartedAt     time.Time
	FinishedAt    time.Time
}

// StepExecutionRepository is append-only: there is no update or delete path.
type StepExecutionRepository interface {
	Record(ctx context.Context, params RecordExecutionParams) (*entity.StepExecution, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]entity.StepExecution, error)
	// BranchDistribution counts recorded branch labels for one step across
	// all jobs, for operational analysis of routing behavior.
	BranchDistribution(ctx context.Context, stepID uuid.UUID) (map[string]int, error)
}

type stepExecutionRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewStepExecutionRepository(entc *ent.Client, log *slog.Logger) StepExecutionRepository {
	return &stepExecutionRepo{ent: entc, log: log}
}

func (r *stepExecutionRepo) Record(ctx context.Context, params RecordExecutionParams) (*entity.StepExecution, error) {
	create := r.ent.StepExecution.
		Create().
		SetJobID(params.JobID).
		SetStepID(params.StepID).
		SetPosition(params.Position).
		SetStepName(params.StepName).
		SetOutputSummary(params.OutputSummary)
	if len(params.Metadata) > 0 {
		create.SetMetadata(params.Metadata)
	}
	if !params.StartedAt.IsZero() {
		create.SetStartedAt(params.StartedAt)
	}
	if !params.FinishedAt.IsZero() {
		create.SetFinishedAt(params.FinishedAt)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.log.Error("step_execution record failed",
			"job_id", params.JobID, "step_id", params.StepID, "err", err)
		return nil, err
	}
	r.log.Info("step_execution recorded",
		"job_id", params.JobID, "step_id", params.StepID,
		"position", params.Position, "step", params.StepName,
	)
	return toStepExecution(row), nil
}

func (r *stepExecutionRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]entity.StepExecution, error) {
	rows, err := r.ent.StepExecution.
		Query().
		Where(stepexecution.JobIDEQ(jobID)).
		Order(ent.Asc(stepexecution.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.StepExecution, 0, len(rows))
	for _, row := range rows {
		out = append(out, *toStepExecution(row))
	}
	return out, nil
}

func (r *stepExecutionRepo) BranchDistribution(ctx context.Context, stepID uuid.UUID) (map[string]int, error) {
	rows, err := r.ent.StepExecution.
		Query().
		Where(stepexecution.StepIDEQ(stepID)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	dist := make(map[string]int)
	for _, row := range rows {
		if len(row.Metadata) == 0 {
			continue
		}
		var meta struct {
			Branch *struct {
				Kind  string `json:"kind"`
				Label string `json:"label"`
			} `json:"branch"`
		}
		if err := json.Unmarshal(row.Metadata, &meta); err != nil || meta.Branch == nil {
			continue
		}
		dist[meta.Branch.Kind+":"+meta.Branch.Label]++
	}
	return dist, nil
}

func toStepExecution(row *ent.StepExecution) *entity.StepExecution {
	return &entity.StepExecution{
		ID:            row.ID,
		JobID:         row.JobID,
		StepID:        row.StepID,
		Position:      row.Position,
		StepName:      row.StepName,
		OutputSummary: row.OutputSummary,
		Metadata:      row.Metadata,
		StartedAt:     row.StartedAt,
		FinishedAt:    row.FinishedAt,
	}
}
