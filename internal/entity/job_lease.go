package entity

import (
	"time"

	"github.com/google/uuid"
)

// JobLease records the current walk holder for a job.
type JobLease struct {
	JobID      uuid.UUID `json:"job_id"`
	Holder     string    `json:"holder"`
	AcquiredAt time.Time `json:"acquired_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}
