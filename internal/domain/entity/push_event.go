package entity

import (
	"time"

	"github.com/google/uuid"
)

// Push event kinds.
const (
	PushEventSent     = "sent_v1"
	PushEventError    = "error"
	PushEventReceived = "received"
	PushEventOpened   = "opened"
)

// PushEvent is a row of the push delivery and tracking log.
type PushEvent struct {
	ID               uuid.UUID      `json:"id"`
	UserID           *uuid.UUID     `json:"user_id"`
	NotificationID   *uuid.UUID     `json:"notification_id"`
	DeviceToken      string         `json:"device_token"`
	NotificationType string         `json:"notification_type"`
	Event            string         `json:"event"`
	Payload          map[string]any `json:"payload"`
	ErrorMessage     string         `json:"error_message"`
	CreatedAt        time.Time      `json:"created_at"`
}
