package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "khitma/internal/delivery/context"
	"khitma/internal/domain/lifecycle"
	"khitma/internal/domain/service"
	"khitma/internal/errors"
)

// ErrQueueClosed is returned by Enqueue after Close.
var ErrQueueClosed = errors.New("push queue closed")

// Deliverer delivers one push job.
type Deliverer interface {
	Deliver(ctx context.Context, job *service.PushJob) (*service.PushBatchResult, error)
}

// inlineQueue delivers jobs in this process, one goroutine per job.
type inlineQueue struct {
	deliverer Deliverer
	logger    *slog.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	inflight  sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewInlineQueue creates a PushQueue that calls deliverer directly.
func NewInlineQueue(deliverer Deliverer, logger *slog.Logger) service.PushQueue {
	ctx, cancel := context.WithCancel(context.Background())

	return &inlineQueue{
		deliverer: deliverer,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
	}
}

func (q *inlineQueue) Enqueue(ctx context.Context, job *service.PushJob) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return ErrQueueClosed
	}

	jobCtx := q.ctx
	if logger := deliverycontext.GetLogger(ctx); logger != nil {
		jobCtx = deliverycontext.WithLogger(jobCtx, logger)
	}

	q.inflight.Add(1)
	go func() {
		defer q.inflight.Done()

		if _, err := q.deliverer.Deliver(jobCtx, job); err != nil {
			q.logger.Warn("[InlinePush] Delivery failed",
				slog.String("job_id", job.JobID),
				slog.String("notification_id", job.NotificationID),
				slog.Any("error", err),
			)
		}
	}()

	return nil
}

// Close stops accepting jobs and drains the in-flight ones. Jobs still waiting
// for their DeliverAfter when the drain times out are cancelled.
func (q *inlineQueue) Close() error {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(lifecycle.DefaultTimeout):
		q.logger.Warn("[InlinePush] Drain timed out, cancelling pending deliveries")
		q.cancel()
		<-done
	}
	q.cancel()

	return nil
}
