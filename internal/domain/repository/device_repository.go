// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"khitma/internal/domain/entity"
	"khitma/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device token is not registered.
	ErrDeviceNotFound = errors.New("device not found")
)

// DeviceRepository defines the device registry operations.
type DeviceRepository interface {
	// UpsertDevice creates or updates the registration identified by its device token.
	// An existing token is moved to device.UserID.
	UpsertDevice(ctx context.Context, device *entity.DeviceRegistration) error

	// DeleteUserDevice removes a token owned by the user.
	DeleteUserDevice(ctx context.Context, userID uuid.UUID, token string) error

	// DeleteDevicesByTokens removes the given tokens regardless of owner and returns the number removed.
	DeleteDevicesByTokens(ctx context.Context, tokens []string) (int64, error)

	// FindDevicesByUser retrieves all registrations of a user, newest first.
	FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceRegistration, error)

	// FindDevicesByUsers retrieves all registrations of the given users.
	FindDevicesByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.DeviceRegistration, error)

	// ListTimezones returns the distinct non-empty timezones of all registered devices.
	ListTimezones(ctx context.Context) ([]string, error)

	// FindUserIDsByTimezone returns the distinct users owning at least one token in the timezone.
	FindUserIDsByTimezone(ctx context.Context, timezone string) ([]uuid.UUID, error)
}
