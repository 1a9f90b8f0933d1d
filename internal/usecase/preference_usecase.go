package usecase

import (
	"context"

	"khitma/internal/domain/entity"

	"github.com/google/uuid"
)

// PreferenceUpdate is a partial preference change; nil fields are left untouched.
type PreferenceUpdate struct {
	AllowGroupNotifications        *bool
	AllowMotivationalNotifications *bool
	AllowPersonalReminders         *bool
	PreferredPersonalReminderHour  *string
}

// PreferenceUsecase manages notification preferences.
type PreferenceUsecase interface {
	GetPreference(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreference, error)
	UpdatePreference(ctx context.Context, userID uuid.UUID, update *PreferenceUpdate) (*entity.NotificationPreference, error)
}
