package impl

import (
	"context"
	"time"

	"khitma/internal/domain/entity"
	domainerrors "khitma/internal/domain/errors"
	"khitma/internal/domain/repository"
	"khitma/internal/errors"
	"khitma/internal/usecase"

	"github.com/google/uuid"
)

// MaxInboxPageSize caps how many inbox entries are returned at once.
const MaxInboxPageSize = 100

type inboxService struct {
	notificationRepo repository.NotificationRepository
}

// NewInboxService creates the inbox service.
func NewInboxService(notificationRepo repository.NotificationRepository) usecase.InboxUsecase {
	return &inboxService{notificationRepo: notificationRepo}
}

func (s *inboxService) ListNotifications(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.AppNotification, error) {
	if limit <= 0 || limit > MaxInboxPageSize {
		limit = MaxInboxPageSize
	}

	notifications, err := s.notificationRepo.FindNotificationsByUser(ctx, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

func (s *inboxService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID, read bool) (*entity.AppNotification, error) {
	var readAt *time.Time
	if read {
		now := time.Now()
		readAt = &now
	}

	notification, err := s.notificationRepo.SetReadAt(ctx, userID, notificationID, readAt)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, domainerrors.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to update notification")
	}

	return notification, nil
}

func (s *inboxService) DeleteNotification(ctx context.Context, userID, notificationID uuid.UUID) error {
	if err := s.notificationRepo.DeleteNotification(ctx, userID, notificationID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to delete notification")
	}

	return nil
}
