package async

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWalker struct {
	mu   sync.Mutex
	seen []uuid.UUID
	slow time.Duration
}

func (w *recordingWalker) Run(_ context.Context, jobID uuid.UUID) error {
	if w.slow > 0 {
		time.Sleep(w.slow)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.seen = append(w.seen, jobID)
	return nil
}

func (w *recordingWalker) count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.seen)
}

func TestWalkerQueue_ProcessesAllTasks(t *testing.T) {
	walker := &recordingWalker{}
	q := NewWalkerQueue(walker, nil, WithWorkers(2), WithQueueSize(16))

	ids := make([]uuid.UUID, 10)
	for i := range ids {
		ids[i] = uuid.New()
		require.NoError(t, q.Enqueue(context.Background(), Task{JobID: ids[i], SubmittedAt: time.Now()}))
	}

	q.Shutdown(context.Background())
	assert.Equal(t, len(ids), walker.count())
}

func TestWalkerQueue_ShutdownDrains(t *testing.T) {
	walker := &recordingWalker{slow: 10 * time.Millisecond}
	q := NewWalkerQueue(walker, nil, WithWorkers(1), WithQueueSize(8))

	for i := 0; i < 5; i++ {
		require.NoError(t, q.Enqueue(context.Background(), Task{JobID: uuid.New()}))
	}

	q.Shutdown(context.Background())
	assert.Equal(t, 5, walker.count(), "shutdown must drain queued tasks")
}

func TestWalkerQueue_EnqueueAfterShutdownIsNoOp(t *testing.T) {
	walker := &recordingWalker{}
	q := NewWalkerQueue(walker, nil, WithWorkers(1))
	q.Shutdown(context.Background())

	require.NoError(t, q.Enqueue(context.Background(), Task{JobID: uuid.New()}))
	assert.Zero(t, walker.count())
}

func TestWalkerQueue_DoubleShutdownIsSafe(t *testing.T) {
	q := NewWalkerQueue(&recordingWalker{}, nil, WithWorkers(1))
	q.Shutdown(context.Background())
	q.Shutdown(context.Background())
}
