package repository

import (
	"context"
	"time"

	"khitma/internal/domain/entity"
	"khitma/internal/errors"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification does not exist or belongs to another user.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the in-app inbox operations.
type NotificationRepository interface {
	// CreateNotification persists a new inbox entry.
	CreateNotification(ctx context.Context, notification *entity.AppNotification) error

	// CreateDailyNotification persists a scheduled inbox entry unless the user already has one
	// of the same type for notification.DispatchDate. created is false when one exists.
	CreateDailyNotification(ctx context.Context, notification *entity.AppNotification) (created bool, err error)

	// FindNotificationsByUser returns the newest inbox entries of a user.
	FindNotificationsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.AppNotification, error)

	// SetReadAt sets or, with a nil readAt, clears the read marker of a user's notification.
	SetReadAt(ctx context.Context, userID, id uuid.UUID, readAt *time.Time) (*entity.AppNotification, error)

	// DeleteNotification removes a user's notification.
	DeleteNotification(ctx context.Context, userID, id uuid.UUID) error
}
