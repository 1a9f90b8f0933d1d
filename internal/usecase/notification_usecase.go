package usecase

import (
	"context"
	"time"

	"khitma/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationComposer builds localized notification content.
type NotificationComposer interface {
	ResolveLanguage(devices []*entity.DeviceRegistration) entity.Language
	ComposeVerse(verse *entity.Verse, lang entity.Language) *entity.NotificationContent
	ComposeEveningReminder(username string, lang entity.Language) *entity.NotificationContent
}

// DispatchRequest is one notification for one user.
type DispatchRequest struct {
	UserID  uuid.UUID
	Content *entity.NotificationContent
	Tokens  []string

	// Upper bound of the random push delay; values under one second mean one second.
	MaxDelay time.Duration

	// LocalDate, when set, limits the user to one notification of Content.Type for that local date.
	LocalDate time.Time
}

// DispatchResult reports what Dispatch did.
type DispatchResult struct {
	Skipped      bool // the user's preference disables the category
	Duplicate    bool // the user already has this notification for LocalDate
	Notification *entity.AppNotification
	PushQueued   bool
	PushError    error
}

// NotificationDispatcher stores an inbox entry and schedules its push.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, req *DispatchRequest) (*DispatchResult, error)
}

// InboxUsecase serves the in-app notification inbox.
type InboxUsecase interface {
	ListNotifications(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.AppNotification, error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID, read bool) (*entity.AppNotification, error)
	DeleteNotification(ctx context.Context, userID, notificationID uuid.UUID) error
}
