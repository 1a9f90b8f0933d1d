// Package pubsub implements the push queue: Google Pub/Sub, a local HTTP
// stand-in for Pub/Sub push subscriptions, and in-process delivery.
package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"khitma/internal/domain/service"
	"khitma/internal/errors"
)

// PushEnvelope is the body Pub/Sub POSTs to a push subscription endpoint.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// jobAttributes are copied onto every message for filtering and tracing.
func jobAttributes(job *service.PushJob) map[string]string {
	attributes := map[string]string{
		"job_id":            job.JobID,
		"notification_id":   job.NotificationID,
		"notification_type": job.NotificationType,
	}
	if job.RequestID != "" {
		attributes["request_id"] = job.RequestID
	}

	return attributes
}

// NewPushEnvelope wraps job the way a Pub/Sub push subscription would.
func NewPushEnvelope(job *service.PushJob, subscription string, now time.Time) (*PushEnvelope, error) {
	data, err := json.Marshal(job)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	envelope := &PushEnvelope{Subscription: subscription}
	envelope.Message.Data = base64.StdEncoding.EncodeToString(data)
	envelope.Message.Attributes = jobAttributes(job)
	envelope.Message.MessageID = job.JobID
	envelope.Message.PublishTime = now.UTC().Format(time.RFC3339)

	return envelope, nil
}

// DecodeJob extracts the push job carried by the envelope.
func (e *PushEnvelope) DecodeJob() (*service.PushJob, error) {
	data, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode message data")
	}

	var job service.PushJob
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal push job")
	}
	if job.RequestID == "" {
		job.RequestID = e.Message.Attributes["request_id"]
	}

	return &job, nil
}
