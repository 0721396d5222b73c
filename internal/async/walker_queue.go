package async

import (
	"context"
	"sync"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/medignis/docflow/internal/engine"
)

// Walker runs one job's step walk to a terminal state or abandonment.
// Satisfied by *engine.Orchestrator.
type Walker interface {
	Run(ctx context.Context, jobID uuid.UUID) error
}

// WalkerQueue fans submitted jobs out to a fixed pool of walk workers. Each
// walk gets its own timeout; a walk cut off mid-way leaves a resumable job
// behind, so the timeout bounds latency rather than correctness.
type WalkerQueue struct {
	walker  Walker
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Task
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*WalkerQueue)

func WithWorkers(n int) Option {
	return func(q *WalkerQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *WalkerQueue) {
		if n > 0 {
			q.ch = make(chan Task, n)
		}
	}
}
func WithWalkTimeout(d time.Duration) Option {
	return func(q *WalkerQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewWalkerQueue(walker Walker, logger *slog.Logger, opts ...Option) *WalkerQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &WalkerQueue{
		walker:  walker,
		logger:  logger,
		workers: 4,
		timeout: 10 * time.Minute,
		ch:      make(chan Task, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *WalkerQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("walk worker started", "worker_id", workerID)

				for task := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					err := q.walker.Run(ctx, task.JobID)
					cancel()

					if err != nil {
						q.logger.Error("walk failed", "worker_id", workerID, "job_id", task.JobID, "error", err)
					} else {
						q.logger.Info("walk finished", "worker_id", workerID, "job_id", task.JobID,
							"queued_ms", time.Since(task.SubmittedAt).Milliseconds())
					}
				}

				q.logger.Info("walk worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *WalkerQueue) Enqueue(_ context.Context, task Task) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "job_id", task.JobID)
		return nil
	}
	select {
	case q.ch <- task:
		q.logger.Info("queued job for walking", "job_id", task.JobID)
	default:
		q.logger.Warn("queue full, applying backpressure", "job_id", task.JobID)
		q.ch <- task
	}
	return nil
}

func (q *WalkerQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}

var _ Walker = (*engine.Orchestrator)(nil)
