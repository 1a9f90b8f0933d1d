package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	deliverycontext "khitma/internal/delivery/context"
	"khitma/internal/domain/lifecycle"
	"khitma/internal/domain/service"

	"github.com/pkg/errors"
)

const localSubscription = "projects/local/subscriptions/push-delivery"

// localHTTPQueue POSTs each job to the push worker in the Pub/Sub push format,
// standing in for a push subscription during development.
type localHTTPQueue struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
	inflight   sync.WaitGroup
}

// NewLocalHTTPQueue creates a PushQueue that posts to endpoint.
func NewLocalHTTPQueue(endpoint string, logger *slog.Logger) service.PushQueue {
	return &localHTTPQueue{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 2 * time.Minute,
		},
		logger: logger,
	}
}

// Enqueue hands the job to the worker without waiting for its DeliverAfter;
// the worker does the waiting.
func (q *localHTTPQueue) Enqueue(ctx context.Context, job *service.PushJob) error {
	envelope, err := NewPushEnvelope(job, localSubscription, time.Now())
	if err != nil {
		return err
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(context.WithoutCancel(ctx), http.MethodPost, q.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if job.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, job.RequestID)
	}

	// The worker holds the request until delivery, so the post runs in the background.
	q.inflight.Add(1)
	go func() {
		defer q.inflight.Done()
		q.post(req, job)
	}()

	return nil
}

func (q *localHTTPQueue) post(req *http.Request, job *service.PushJob) {
	resp, err := q.httpClient.Do(req)
	if err != nil {
		q.logger.Warn("[LocalPubSub] Failed to post push job",
			slog.String("job_id", job.JobID),
			slog.Any("error", err),
		)

		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		q.logger.Warn("[LocalPubSub] Worker rejected push job",
			slog.String("job_id", job.JobID),
			slog.Int("status", resp.StatusCode),
		)

		return
	}

	q.logger.Debug("[LocalPubSub] Push job delivered to worker", slog.String("job_id", job.JobID))
}

// Close waits a bounded time for in-flight posts.
func (q *localHTTPQueue) Close() error {
	done := make(chan struct{})
	go func() {
		q.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(lifecycle.DefaultTimeout):
		q.logger.Warn("[LocalPubSub] Closing with push jobs still in flight")
	}

	return nil
}
