package impl

import (
	"context"
	"time"

	"khitma/internal/domain/entity"
	domainerrors "khitma/internal/domain/errors"
	"khitma/internal/domain/repository"
	"khitma/internal/domain/schedule"
	"khitma/internal/errors"
	"khitma/internal/usecase"

	"github.com/google/uuid"
)

const (
	maxLocaleLength   = 10
	maxTimezoneLength = 64
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

// RegisterDevice upserts by device token; a token registered by another user moves to this one.
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, info *usecase.DeviceInfo) (*entity.DeviceRegistration, error) {
	if err := validateDeviceInfo(info); err != nil {
		return nil, err
	}

	now := time.Now()
	device := &entity.DeviceRegistration{
		ID:          uuid.Must(uuid.NewV7()),
		UserID:      userID,
		DeviceToken: info.DeviceToken,
		Platform:    info.Platform,
		Locale:      info.Locale,
		Timezone:    info.Timezone,
		LastSeenAt:  &now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.deviceRepo.UpsertDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to upsert device")
	}

	return device, nil
}

func validateDeviceInfo(info *usecase.DeviceInfo) error {
	switch {
	case info.DeviceToken == "":
		return domainerrors.ErrValidationFailed.WithDetails("device_token is required")
	case info.Platform != entity.PlatformAndroid && info.Platform != entity.PlatformIOS && info.Platform != entity.PlatformWeb:
		return domainerrors.ErrValidationFailed.WithDetails("platform must be android, ios or web")
	case len(info.Locale) > maxLocaleLength:
		return domainerrors.ErrValidationFailed.WithDetails("locale is too long")
	case len(info.Timezone) > maxTimezoneLength:
		return domainerrors.ErrValidationFailed.WithDetails("timezone is too long")
	}

	if info.Timezone != "" {
		if _, err := schedule.LoadLocation(info.Timezone); err != nil {
			return usecase.ErrInvalidTimezone.WithDetails(info.Timezone)
		}
	}

	return nil
}

// GetUserDevices retrieves all devices of a user
func (s *deviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceRegistration, error) {
	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	return devices, nil
}

// UnregisterDevice deletes one of the user's tokens
func (s *deviceService) UnregisterDevice(ctx context.Context, userID uuid.UUID, token string) error {
	if err := s.deviceRepo.DeleteUserDevice(ctx, userID, token); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return errors.Wrap(err, "failed to delete device")
	}

	return nil
}
