package repository

import (
	"context"

	"khitma/internal/domain/entity"
	"khitma/internal/errors"

	"github.com/google/uuid"
)

// ErrPreferenceNotFound is returned when a user never stored preferences.
var ErrPreferenceNotFound = errors.New("notification preference not found")

// PreferenceRepository persists notification preferences.
type PreferenceRepository interface {
	// FindPreference returns the stored preference of a user.
	FindPreference(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreference, error)

	// FirstOrCreatePreference returns the stored preference, creating the all-allowed default when absent.
	FirstOrCreatePreference(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreference, error)

	// SavePreference writes every field of the preference.
	SavePreference(ctx context.Context, preference *entity.NotificationPreference) error
}
