package impl

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"khitma/internal/domain/entity"
	domainerrors "khitma/internal/domain/errors"
	"khitma/internal/domain/repository"
	"khitma/internal/errors"
	"khitma/internal/usecase"

	"github.com/google/uuid"
)

var reminderHourPattern = regexp.MustCompile(`^(?:[01]?\d|2[0-3])$`)

type preferenceService struct {
	preferenceRepo repository.PreferenceRepository
}

// NewPreferenceService creates the notification preference service.
func NewPreferenceService(preferenceRepo repository.PreferenceRepository) usecase.PreferenceUsecase {
	return &preferenceService{preferenceRepo: preferenceRepo}
}

// GetPreference returns the stored preference, creating the defaults on first read.
func (s *preferenceService) GetPreference(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreference, error) {
	pref, err := s.preferenceRepo.FirstOrCreatePreference(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load preference")
	}

	return pref, nil
}

// UpdatePreference applies the non-nil fields. An empty reminder hour clears it.
func (s *preferenceService) UpdatePreference(ctx context.Context, userID uuid.UUID, update *usecase.PreferenceUpdate) (*entity.NotificationPreference, error) {
	hour, err := normalizeReminderHour(update.PreferredPersonalReminderHour)
	if err != nil {
		return nil, err
	}

	pref, err := s.preferenceRepo.FirstOrCreatePreference(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load preference")
	}

	if update.AllowGroupNotifications != nil {
		pref.AllowGroupNotifications = *update.AllowGroupNotifications
	}
	if update.AllowMotivationalNotifications != nil {
		pref.AllowMotivationalNotifications = *update.AllowMotivationalNotifications
	}
	if update.AllowPersonalReminders != nil {
		pref.AllowPersonalReminders = *update.AllowPersonalReminders
	}
	if update.PreferredPersonalReminderHour != nil {
		pref.PreferredPersonalReminderHour = hour
	}
	pref.UpdatedAt = time.Now()

	if err := s.preferenceRepo.SavePreference(ctx, pref); err != nil {
		return nil, errors.Wrap(err, "failed to save preference")
	}

	return pref, nil
}

// normalizeReminderHour validates an hour 0..23 and stores it as two digits.
func normalizeReminderHour(raw *string) (*string, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	if !reminderHourPattern.MatchString(*raw) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("preferred_personal_reminder_hour must be 0-23")
	}

	hour, _ := strconv.Atoi(*raw)
	normalized := fmt.Sprintf("%02d", hour)

	return &normalized, nil
}
