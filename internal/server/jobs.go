package server

import (
	"context"
	"errors"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/medignis/docflow/constants"
	v1 "github.com/medignis/docflow/gen/docflow/v1"
	"github.com/medignis/docflow/internal/async"
	"github.com/medignis/docflow/internal/common"
	"github.com/medignis/docflow/internal/entity"
	"github.com/medignis/docflow/internal/repository"
)

type JobService struct {
	v1.UnimplementedJobServiceServer
	jobs       repository.JobRepository
	executions repository.StepExecutionRepository
	classes    repository.DocumentClassRepository
	queue      async.Queue
	logger     *slog.Logger
}

func NewJobService(
	jobs repository.JobRepository,
	executions repository.StepExecutionRepository,
	classes repository.DocumentClassRepository,
	queue async.Queue,
	logger *slog.Logger,
) *JobService {
	if logger == nil {
		logger = slog.Default()
	}
	return &JobService{
		jobs:       jobs,
		executions: executions,
		classes:    classes,
		queue:      queue,
		logger:     logger,
	}
}

// SubmitJob stores the artifact and schedules the walk. The response returns
// before the walk runs; poll GetJob for progress.
func (s *JobService) SubmitJob(ctx context.Context, req *v1.SubmitJobRequest) (*v1.SubmitJobResponse, error) {
	filename := strings.TrimSpace(req.GetFilename())
	if filename == "" {
		return nil, common.InvalidArgumentError("filename is required")
	}
	if len(req.GetArtifact()) == 0 {
		return nil, common.InvalidArgumentError("artifact is required")
	}

	consent := constants.Consent(strings.ToUpper(strings.TrimSpace(req.GetConsent())))
	switch consent {
	case "", constants.ConsentUnknown, constants.ConsentGranted, constants.ConsentDeclined:
	default:
		return nil, common.InvalidArgumentErrorf("unknown consent value %q", req.GetConsent())
	}

	job, err := s.jobs.Create(ctx, repository.CreateJobParams{
		Filename:    filename,
		ContentType: req.GetContentType(),
		Artifact:    req.GetArtifact(),
		Consent:     consent,
	})
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			return nil, common.InvalidArgumentError(err.Error())
		}
		s.logger.Error("job.submit.failed", "filename", filename, "error", err)
		return nil, common.InternalError("submit job failed")
	}

	if err := s.queue.Enqueue(ctx, async.Task{JobID: job.ID, SubmittedAt: time.Now()}); err != nil {
		s.logger.Error("job.submit.enqueue_failed", "job_id", job.ID, "error", err)
		return nil, common.InternalError("schedule job failed")
	}

	s.logger.Info("job.submitted", "job_id", job.ID, "filename", filename, "bytes", len(req.GetArtifact()))
	return &v1.SubmitJobResponse{JobId: job.ID.String(), Status: job.Status}, nil
}

func (s *JobService) GetJob(ctx context.Context, req *v1.GetJobRequest) (*v1.GetJobResponse, error) {
	jobID, err := parseID(req.GetJobId(), "job_id")
	if err != nil {
		return nil, err
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("job not found")
		}
		s.logger.Error("job.get.failed", "job_id", jobID, "error", err)
		return nil, common.InternalError("get job failed")
	}

	return &v1.GetJobResponse{Job: s.toProtoJob(ctx, job)}, nil
}

// CancelJob flips the cancel flag; a running walk honors it after its current
// step commits. Cancelling a terminal job fails.
func (s *JobService) CancelJob(ctx context.Context, req *v1.CancelJobRequest) (*v1.CancelJobResponse, error) {
	jobID, err := parseID(req.GetJobId(), "job_id")
	if err != nil {
		return nil, err
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("job not found")
		}
		return nil, common.InternalError("cancel job failed")
	}
	if constants.JobStatus(job.Status).IsTerminal() {
		return nil, common.FailedPreconditionError("job already finished")
	}

	if err := s.jobs.RequestCancel(ctx, jobID); err != nil {
		s.logger.Error("job.cancel.failed", "job_id", jobID, "error", err)
		return nil, common.InternalError("cancel job failed")
	}

	s.logger.Info("job.cancel.requested", "job_id", jobID)
	return &v1.CancelJobResponse{JobId: jobID.String(), Status: job.Status}, nil
}

func (s *JobService) ListJobExecutions(ctx context.Context, req *v1.ListJobExecutionsRequest) (*v1.ListJobExecutionsResponse, error) {
	jobID, err := parseID(req.GetJobId(), "job_id")
	if err != nil {
		return nil, err
	}

	rows, err := s.executions.ListByJob(ctx, jobID)
	if err != nil {
		s.logger.Error("job.executions.failed", "job_id", jobID, "error", err)
		return nil, common.InternalError("list executions failed")
	}

	out := make([]*v1.StepExecution, 0, len(rows))
	for _, r := range rows {
		out = append(out, &v1.StepExecution{
			Id:            r.ID.String(),
			JobId:         r.JobID.String(),
			StepId:        r.StepID.String(),
			Position:      int32(r.Position),
			StepName:      r.StepName,
			OutputSummary: r.OutputSummary,
			MetadataJson:  string(r.Metadata),
			StartedAt:     r.StartedAt.UTC().Format(time.RFC3339Nano),
			FinishedAt:    r.FinishedAt.UTC().Format(time.RFC3339Nano),
		})
	}
	return &v1.ListJobExecutionsResponse{Executions: out}, nil
}

func (s *JobService) toProtoJob(ctx context.Context, job *entity.Job) *v1.Job {
	out := &v1.Job{
		Id:              job.ID.String(),
		Filename:        job.Filename,
		ContentType:     job.ContentType,
		FileSize:        int64(job.FileSize),
		Status:          job.Status,
		Consent:         job.Consent,
		CancelRequested: job.CancelRequested,
		ResultJson:      string(job.Result),
		CreatedAt:       job.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if job.ErrorMessage != nil {
		out.ErrorMessage = *job.ErrorMessage
	}
	if job.StartedAt != nil {
		out.StartedAt = job.StartedAt.UTC().Format(time.RFC3339Nano)
	}
	if job.FinishedAt != nil {
		out.FinishedAt = job.FinishedAt.UTC().Format(time.RFC3339Nano)
	}
	if job.DocumentClassID != nil {
		if class, err := s.classes.GetByID(ctx, *job.DocumentClassID); err == nil {
			out.DocumentClass = class.Name
		}
	}
	return out
}

func parseID(raw, field string) (uuid.UUID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return uuid.Nil, common.InvalidArgumentError(field + " is required")
	}
	id, err := uuid.Parse(trimmed)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentError(field + " must be a UUID")
	}
	return id, nil
}
