package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType is stored on inbox entries.
type NotificationType string

const (
	NotificationTypeMotivational       NotificationType = "motivational"
	NotificationTypeIndividualReminder NotificationType = "individual_reminder"
	NotificationTypeGroup              NotificationType = "group"
)

// NotificationCategory selects the preference flag that gates a notification.
type NotificationCategory string

const (
	CategoryGroup            NotificationCategory = "group"
	CategoryMotivational     NotificationCategory = "motivational"
	CategoryPersonalReminder NotificationCategory = "personal_reminder"
)

// AppNotification is an in-app inbox entry. It is the authoritative delivery record;
// push delivery is best effort on top of it.
type AppNotification struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"user_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	Data      map[string]any   `json:"data"`
	ReadAt    *time.Time       `json:"read_at"`
	CreatedAt time.Time        `json:"created_at"`

	// DispatchDate is the user's local date a scheduled notification belongs to.
	// At most one notification of a type exists per user and dispatch date.
	DispatchDate *time.Time `json:"dispatch_date,omitempty"`
}

// NotificationContent is what the composer produces and the dispatcher delivers.
type NotificationContent struct {
	Type     NotificationType
	Category NotificationCategory
	Title    string
	Body     string
	Data     map[string]any // stored on the inbox entry
	PushData map[string]any // sent with the push message
}
