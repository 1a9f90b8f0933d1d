package usecase

import (
	"context"

	"khitma/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	DeviceToken string
	Platform    string
	Locale      string
	Timezone    string
}

// DeviceUsecase defines the device registry use cases
type DeviceUsecase interface {
	// RegisterDevice creates or refreshes the registration of a device token for the user
	RegisterDevice(ctx context.Context, userID uuid.UUID, info *DeviceInfo) (*entity.DeviceRegistration, error)

	// GetUserDevices lists the user's registrations, newest first
	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceRegistration, error)

	// UnregisterDevice removes one of the user's tokens
	UnregisterDevice(ctx context.Context, userID uuid.UUID, token string) error
}
