package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/medignis/docflow/gen/ent"
	"github.com/medignis/docflow/gen/ent/joblease"
	"github.com/medignis/docflow/internal/common"
	"github.com/medignis/docflow/internal/entity"
)

// JobLeaseRepository guarantees at most one active walk per job id. Acquire
// takes over an expired lease; Renew fails with ErrStaleLease once another
// holder has taken over or the TTL lapsed.
type JobLeaseRepository interface {
	Acquire(ctx context.Context, jobID uuid.UUID, holder string, ttl time.Duration) (*entity.JobLease, error)
	Renew(ctx context.Context, jobID uuid.UUID, holder string, ttl time.Duration) error
	Release(ctx context.Context, jobID uuid.UUID, holder string) error
}

type jobLeaseRepo struct {
	ent *ent.Client
	log *slog.Logger
	now func() time.Time
}

func NewJobLeaseRepository(entc *ent.Client, log *slog.Logger) JobLeaseRepository {
	return &jobLeaseRepo{ent: entc, log: log, now: time.Now}
}

func (r *jobLeaseRepo) Acquire(ctx context.Context, jobID uuid.UUID, holder string, ttl time.Duration) (*entity.JobLease, error) {
	now := r.now()
	existing, err := r.ent.JobLease.
		Query().
		Where(joblease.JobIDEQ(jobID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, err
	}

	if existing == nil {
		row, err := r.ent.JobLease.
			Create().
			SetJobID(jobID).
			SetHolder(holder).
			SetAcquiredAt(now).
			SetExpiresAt(now.Add(ttl)).
			Save(ctx)
		if err != nil {
			// unique job_id index: a concurrent walker won the row
			if ent.IsConstraintError(err) {
				return nil, common.ErrLeaseHeld
			}
			return nil, err
		}
		r.log.Info("job lease acquired", "job_id", jobID, "holder", holder)
		return toJobLease(row), nil
	}

	if existing.ExpiresAt.After(now) && existing.Holder != holder {
		return nil, common.ErrLeaseHeld
	}

	// Conditional takeover: the expiry predicate makes concurrent takeovers
	// race-safe, only one update matches.
	n, err := r.ent.JobLease.
		Update().
		Where(
			joblease.JobIDEQ(jobID),
			joblease.Or(
				joblease.ExpiresAtLTE(now),
				joblease.HolderEQ(holder),
			),
		).
		SetHolder(holder).
		SetAcquiredAt(now).
		SetExpiresAt(now.Add(ttl)).
		Save(ctx)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, common.ErrLeaseHeld
	}
	r.log.Warn("job lease taken over", "job_id", jobID, "holder", holder, "previous_holder", existing.Holder)
	return &entity.JobLease{
		JobID:      jobID,
		Holder:     holder,
		AcquiredAt: now,
		ExpiresAt:  now.Add(ttl),
	}, nil
}

func (r *jobLeaseRepo) Renew(ctx context.Context, jobID uuid.UUID, holder string, ttl time.Duration) error {
	now := r.now()
	n, err := r.ent.JobLease.
		Update().
		Where(
			joblease.JobIDEQ(jobID),
			joblease.HolderEQ(holder),
			joblease.ExpiresAtGT(now),
		).
		SetExpiresAt(now.Add(ttl)).
		Save(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		r.log.Warn("job lease renew rejected", "job_id", jobID, "holder", holder)
		return common.ErrStaleLease
	}
	return nil
}

func (r *jobLeaseRepo) Release(ctx context.Context, jobID uuid.UUID, holder string) error {
	n, err := r.ent.JobLease.
		Delete().
		Where(
			joblease.JobIDEQ(jobID),
			joblease.HolderEQ(holder),
		).
		Exec(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		// lease already taken over; nothing to release
		r.log.Warn("job lease release found no row", "job_id", jobID, "holder", holder)
		return nil
	}
	r.log.Info("job lease released", "job_id", jobID, "holder", holder)
	return nil
}

func toJobLease(row *ent.JobLease) *entity.JobLease {
	return &entity.JobLease{
		JobID:      row.JobID,
		Holder:     row.Holder,
		AcquiredAt: row.AcquiredAt,
		ExpiresAt:  row.ExpiresAt,
	}
}
