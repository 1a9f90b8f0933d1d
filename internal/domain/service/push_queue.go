package service

import (
	"context"
	"time"
)

// PushJob is a delayed push delivery handed to the push worker.
type PushJob struct {
	RequestID        string         `json:"request_id,omitempty"` // For distributed tracing
	JobID            string         `json:"job_id"`
	NotificationID   string         `json:"notification_id"`
	UserID           string         `json:"user_id"`
	NotificationType string         `json:"notification_type"`
	Tokens           []string       `json:"tokens"`
	Title            string         `json:"title"`
	Body             string         `json:"body"`
	Data             map[string]any `json:"data,omitempty"`
	DeliverAfter     time.Time      `json:"deliver_after"`
}

// PushQueue hands push jobs to the asynchronous delivery path.
type PushQueue interface {
	// Enqueue schedules the job for delivery no earlier than job.DeliverAfter.
	Enqueue(ctx context.Context, job *PushJob) error

	// Close releases any resources held by the queue
	Close() error
}
