package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationPreference holds a user's notification opt-outs.
// A user without a stored preference allows everything.
type NotificationPreference struct {
	UserID                         uuid.UUID `json:"user_id"`
	AllowGroupNotifications        bool      `json:"allow_group_notifications"`
	AllowMotivationalNotifications bool      `json:"allow_motivational_notifications"`
	AllowPersonalReminders         bool      `json:"allow_personal_reminders"`
	PreferredPersonalReminderHour  *string   `json:"preferred_personal_reminder_hour"`
	CreatedAt                      time.Time `json:"created_at"`
	UpdatedAt                      time.Time `json:"updated_at"`
}

// DefaultNotificationPreference returns the all-allowed preference for a user.
func DefaultNotificationPreference(userID uuid.UUID) *NotificationPreference {
	return &NotificationPreference{
		UserID:                         userID,
		AllowGroupNotifications:        true,
		AllowMotivationalNotifications: true,
		AllowPersonalReminders:         true,
	}
}

// Allows reports whether notifications of the category may be delivered.
// Unknown categories are allowed.
func (p *NotificationPreference) Allows(category NotificationCategory) bool {
	if p == nil {
		return true
	}

	switch category {
	case CategoryGroup:
		return p.AllowGroupNotifications
	case CategoryMotivational:
		return p.AllowMotivationalNotifications
	case CategoryPersonalReminder:
		return p.AllowPersonalReminders
	default:
		return true
	}
}
