package engine

import (
	"context"
	"log/slog"

	"github.com/medignis/docflow/constants"
	"github.com/medignis/docflow/internal/entity"
	"github.com/medignis/docflow/internal/repository"
)

// ConsentRetention purges a job's cached auxiliary text at terminal state
// unless consent was explicitly granted. Declined and ignored consent are
// treated the same: the cache goes.
type ConsentRetention struct {
	Jobs   repository.JobRepository
	Logger *slog.Logger
}

func NewConsentRetention(jobs repository.JobRepository, logger *slog.Logger) *ConsentRetention {
	if logger == nil {
		logger = slog.Default()
	}
	return &ConsentRetention{Jobs: jobs, Logger: logger}
}

func (r *ConsentRetention) OnTerminal(ctx context.Context, job *entity.Job, status constants.JobStatus) error {
	if job.AuxText == nil {
		return nil
	}
	if constants.Consent(job.Consent) == constants.ConsentGranted {
		r.Logger.Info("retention.aux_text.kept", "job_id", job.ID, "status", status)
		return nil
	}
	if err := r.Jobs.ClearAuxText(ctx, job.ID); err != nil {
		return err
	}
	r.Logger.Info("retention.aux_text.purged", "job_id", job.ID, "status", status, "consent", job.Consent)
	return nil
}
