package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"khitma/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubQueue publishes push jobs to a Google Cloud Pub/Sub topic.
// The topic's push subscription points at the push worker.
type googlePubSubQueue struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubQueue creates a PushQueue backed by an existing topic.
func NewGooglePubSubQueue(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.PushQueue, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	logger.Info("Google Pub/Sub push queue initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubQueue{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger,
	}, nil
}

// Enqueue publishes the job and waits for the server to acknowledge it.
func (q *googlePubSubQueue) Enqueue(ctx context.Context, job *service.PushJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		return errors.WithStack(err)
	}

	result := q.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: jobAttributes(job),
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	q.logger.Debug("[GooglePubSub] Push job published",
		slog.String("job_id", job.JobID),
		slog.String("notification_id", job.NotificationID),
		slog.Int("tokens", len(job.Tokens)),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending publishes and releases the client.
func (q *googlePubSubQueue) Close() error {
	if q.publisher != nil {
		q.publisher.Stop()
	}
	if q.client != nil {
		return errors.WithStack(q.client.Close())
	}

	return nil
}
