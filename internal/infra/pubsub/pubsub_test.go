package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"khitma/config"
	"khitma/internal/domain/constants"
	"khitma/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testJob() *service.PushJob {
	return &service.PushJob{
		RequestID:        "req-1",
		JobID:            "job-1",
		NotificationID:   "0190a5b2-7c1e-7000-8000-000000000001",
		UserID:           "0190a5b2-7c1e-7000-8000-000000000002",
		NotificationType: "motivational",
		Tokens:           []string{"token-a"},
		Title:            "Motivational verse today",
		Data:             map[string]any{"type": "motivational_verse"},
		DeliverAfter:     time.Date(2024, 3, 10, 9, 0, 30, 0, time.UTC),
	}
}

func TestPushEnvelope_RoundTrip(t *testing.T) {
	job := testJob()

	envelope, err := NewPushEnvelope(job, localSubscription, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "job-1", envelope.Message.MessageID)
	assert.Equal(t, "req-1", envelope.Message.Attributes["request_id"])

	decoded, err := envelope.DecodeJob()
	require.NoError(t, err)
	assert.Equal(t, job.Tokens, decoded.Tokens)
	assert.True(t, job.DeliverAfter.Equal(decoded.DeliverAfter))
	assert.Equal(t, "motivational_verse", decoded.Data["type"])
}

func TestPushEnvelope_DecodeJob_Malformed(t *testing.T) {
	envelope := &PushEnvelope{}
	envelope.Message.Data = "not base64!"

	_, err := envelope.DecodeJob()

	assert.ErrorContains(t, err, "failed to decode message data")
}

type recordingDeliverer struct {
	mu   sync.Mutex
	jobs []*service.PushJob
}

func (d *recordingDeliverer) Deliver(_ context.Context, job *service.PushJob) (*service.PushBatchResult, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.jobs = append(d.jobs, job)

	return &service.PushBatchResult{SuccessCount: len(job.Tokens)}, nil
}

func TestInlineQueue_DeliversAndDrains(t *testing.T) {
	deliverer := &recordingDeliverer{}
	queue := NewInlineQueue(deliverer, discardLogger())

	require.NoError(t, queue.Enqueue(context.Background(), testJob()))
	require.NoError(t, queue.Close())

	assert.Len(t, deliverer.jobs, 1)
	assert.ErrorIs(t, queue.Enqueue(context.Background(), testJob()), ErrQueueClosed)
}

func TestLocalHTTPQueue_PostsEnvelope(t *testing.T) {
	received := make(chan *PushEnvelope, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var envelope PushEnvelope
		if err := json.NewDecoder(r.Body).Decode(&envelope); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		assert.Equal(t, "req-1", r.Header.Get("X-Request-Id"))
		received <- &envelope
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	queue := NewLocalHTTPQueue(server.URL, discardLogger())
	require.NoError(t, queue.Enqueue(context.Background(), testJob()))
	require.NoError(t, queue.Close())

	select {
	case envelope := <-received:
		job, err := envelope.DecodeJob()
		require.NoError(t, err)
		assert.Equal(t, "job-1", job.JobID)
	default:
		t.Fatal("worker did not receive the job")
	}
}

func TestNewPushQueue(t *testing.T) {
	newParams := func(t *testing.T, cfg *config.PubSubConfig, deliverer Deliverer) QueueParams {
		return QueueParams{
			Lc:        fxtest.NewLifecycle(t),
			Ctx:       context.Background(),
			Config:    &config.Config{PubSub: cfg},
			Logger:    discardLogger(),
			Deliverer: deliverer,
		}
	}

	t.Run("disabled", func(t *testing.T) {
		queue, err := NewPushQueue(newParams(t, nil, nil))
		require.NoError(t, err)
		assert.IsType(t, &noopQueue{}, queue)
	})

	t.Run("inline", func(t *testing.T) {
		queue, err := NewPushQueue(newParams(t, &config.PubSubConfig{Provider: constants.PubSubProviderInline}, &recordingDeliverer{}))
		require.NoError(t, err)
		assert.IsType(t, &inlineQueue{}, queue)
	})

	t.Run("inline without deliverer", func(t *testing.T) {
		_, err := NewPushQueue(newParams(t, &config.PubSubConfig{Provider: constants.PubSubProviderInline}, nil))
		assert.Error(t, err)
	})

	t.Run("local without endpoint", func(t *testing.T) {
		_, err := NewPushQueue(newParams(t, &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, nil))
		assert.ErrorContains(t, err, "local endpoint is required")
	})

	t.Run("google without topic", func(t *testing.T) {
		_, err := NewPushQueue(newParams(t, &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, nil))
		assert.ErrorContains(t, err, "topic ID is required")
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := NewPushQueue(newParams(t, &config.PubSubConfig{Provider: "kafka"}, nil))
		assert.ErrorContains(t, err, "unknown pubsub provider")
	})
}
