package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// StepExecution represents one audit row for data transfer between layers.
// Rows are never mutated after creation.
type StepExecution struct {
	ID            uuid.UUID       `json:"id"`
	JobID         uuid.UUID       `json:"job_id"`
	StepID        uuid.UUID       `json:"step_id"`
	Position      int             `json:"position"`
	StepName      string          `json:"step_name"`
	OutputSummary string          `json:"output_summary,omitempty"`
	Metadata      json.RawMessage `json:"metadata,omitempty"`
	StartedAt     time.Time       `json:"started_at"`
	FinishedAt    time.Time       `json:"finished_at"`
}
