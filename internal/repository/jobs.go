package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/medignis/docflow/constants"
	"github.com/medignis/docflow/gen/ent"
	"github.com/medignis/docflow/internal/common"
	"github.com/medignis/docflow/internal/entity"
)

// CreateJobParams carries an uploaded artifact into a new job row.
type CreateJobParams struct {
	Filename    string
	ContentType string
	Artifact    []byte
	Consent     constants.Consent
}

type JobRepository interface {
	Create(ctx context.Context, params CreateJobParams) (*entity.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Job, error)
	GetArtifact(ctx context.Context, id uuid.UUID) ([]byte, error)
	MarkRunning(ctx context.Context, id uuid.UUID) error
	SetDocumentClass(ctx context.Context, id, classID uuid.UUID) error
	SetResult(ctx context.Context, id uuid.UUID, result json.RawMessage) error
	SetAuxText(ctx context.Context, id uuid.UUID, text string) error
	ClearAuxText(ctx context.Context, id uuid.UUID) error
	RequestCancel(ctx context.Context, id uuid.UUID) error
	IsCancelRequested(ctx context.Context, id uuid.UUID) (bool, error)
	Finish(ctx context.Context, id uuid.UUID, status constants.JobStatus, errorMessage string) error
}

type jobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewJobRepository(entc *ent.Client, log *slog.Logger) JobRepository {
	return &jobRepo{ent: entc, log: log}
}

func (r *jobRepo) Create(ctx context.Context, params CreateJobParams) (*entity.Job, error) {
	if constants.MapContentType(params.ContentType) == "" {
		return nil, common.WrapError(common.ErrInvalidInput, "unsupported content type "+params.ContentType)
	}
	consent := params.Consent
	if consent == "" {
		consent = constants.ConsentUnknown
	}
	row, err := r.ent.Job.
		Create().
		SetFilename(params.Filename).
		SetContentType(params.ContentType).
		SetFileSize(len(params.Artifact)).
		SetArtifact(params.Artifact).
		SetStatus(string(constants.JobStatusUploaded)).
		SetConsent(string(consent)).
		Save(ctx)
	if err != nil {
		r.log.Error("job create failed", "filename", params.Filename, "err", err)
		return nil, err
	}
	r.log.Info("job created", "job_id", row.ID, "filename", params.Filename, "size", len(params.Artifact))
	return toJob(row), nil
}

func (r *jobRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	row, err := r.ent.Job.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toJob(row), nil
}

func (r *jobRepo) GetArtifact(ctx context.Context, id uuid.UUID) ([]byte, error) {
	row, err := r.ent.Job.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return row.Artifact, nil
}

func (r *jobRepo) MarkRunning(ctx context.Context, id uuid.UUID) error {
	_, err := r.ent.Job.
		UpdateOneID(id).
		SetStatus(string(constants.JobStatusRunning)).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("job mark running failed", "job_id", id, "err", err)
		return err
	}
	r.log.Info("job running", "job_id", id)
	return nil
}

func (r *jobRepo) SetDocumentClass(ctx context.Context, id, classID uuid.UUID) error {
	_, err := r.ent.Job.
		UpdateOneID(id).
		SetDocumentClassID(classID).
		Save(ctx)
	if err != nil {
		r.log.Error("job classify failed", "job_id", id, "class_id", classID, "err", err)
		return err
	}
	r.log.Info("job classified", "job_id", id, "class_id", classID)
	return nil
}

func (r *jobRepo) SetResult(ctx context.Context, id uuid.UUID, result json.RawMessage) error {
	_, err := r.ent.Job.
		UpdateOneID(id).
		SetResult(result).
		Save(ctx)
	if err != nil {
		r.log.Error("job result update failed", "job_id", id, "err", err)
		return err
	}
	return nil
}

func (r *jobRepo) SetAuxText(ctx context.Context, id uuid.UUID, text string) error {
	_, err := r.ent.Job.
		UpdateOneID(id).
		SetAuxText(text).
		Save(ctx)
	if err != nil {
		r.log.Error("job aux text update failed", "job_id", id, "err", err)
		return err
	}
	return nil
}

func (r *jobRepo) ClearAuxText(ctx context.Context, id uuid.UUID) error {
	_, err := r.ent.Job.
		UpdateOneID(id).
		ClearAuxText().
		Save(ctx)
	if err != nil {
		r.log.Error("job aux text clear failed", "job_id", id, "err", err)
		return err
	}
	r.log.Info("job aux text cleared", "job_id", id)
	return nil
}

func (r *jobRepo) RequestCancel(ctx context.Context, id uuid.UUID) error {
	_, err := r.ent.Job.
		UpdateOneID(id).
		SetCancelRequested(true).
		Save(ctx)
	if err != nil {
		r.log.Error("job cancel request failed", "job_id", id, "err", err)
		return err
	}
	r.log.Info("job cancel requested", "job_id", id)
	return nil
}

func (r *jobRepo) IsCancelRequested(ctx context.Context, id uuid.UUID) (bool, error) {
	row, err := r.ent.Job.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, common.ErrNotFound
		}
		return false, err
	}
	return row.CancelRequested, nil
}

func (r *jobRepo) Finish(ctx context.Context, id uuid.UUID, status constants.JobStatus, errorMessage string) error {
	if !status.IsTerminal() {
		return common.WrapError(common.ErrInvalidInput, "finish requires a terminal status")
	}
	update := r.ent.Job.
		UpdateOneID(id).
		SetStatus(string(status)).
		SetFinishedAt(time.Now())
	if errorMessage != "" {
		update.SetErrorMessage(errorMessage)
	}
	if _, err := update.Save(ctx); err != nil {
		r.log.Error("job finish failed", "job_id", id, "status", status, "err", err)
		return err
	}
	if status == constants.JobStatusFailed {
		r.log.Warn("job finished", "job_id", id, "status", status, "error", errorMessage)
	} else {
		r.log.Info("job finished", "job_id", id, "status", status)
	}
	return nil
}

func toJob(row *ent.Job) *entity.Job {
	job := &entity.Job{
		ID:              row.ID,
		Filename:        row.Filename,
		ContentType:     row.ContentType,
		FileSize:        row.FileSize,
		Status:          row.Status,
		Result:          row.Result,
		AuxText:         row.AuxText,
		Consent:         row.Consent,
		CancelRequested: row.CancelRequested,
		ErrorMessage:    row.ErrorMessage,
		CreatedAt:       row.CreatedAt,
		StartedAt:       row.StartedAt,
		FinishedAt:      row.FinishedAt,
	}
	if row.DocumentClassID != nil {
		id := *row.DocumentClassID
		job.DocumentClassID = &id
	}
	return job
}
