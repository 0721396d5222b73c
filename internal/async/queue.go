package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Task is the smallest useful unit of walk scheduling. Extend as needed later
// (priority, trace, retry, etc).
type Task struct {
	JobID       uuid.UUID
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, task Task) error
	Shutdown(ctx context.Context)
}
