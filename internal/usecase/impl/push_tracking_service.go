package impl

import (
	"context"
	"time"

	"khitma/internal/domain/entity"
	"khitma/internal/domain/repository"
	"khitma/internal/errors"
	"khitma/internal/usecase"

	"github.com/google/uuid"
)

type pushTrackingService struct {
	pushEventRepo repository.PushEventRepository
}

// NewPushTrackingService creates the client push tracking service.
func NewPushTrackingService(pushEventRepo repository.PushEventRepository) usecase.PushTrackingUsecase {
	return &pushTrackingService{pushEventRepo: pushEventRepo}
}

func (s *pushTrackingService) RecordReceived(ctx context.Context, event *usecase.PushTrackingEvent) (*entity.PushEvent, error) {
	return s.record(ctx, entity.PushEventReceived, event)
}

func (s *pushTrackingService) RecordOpened(ctx context.Context, event *usecase.PushTrackingEvent) (*entity.PushEvent, error) {
	return s.record(ctx, entity.PushEventOpened, event)
}

func (s *pushTrackingService) record(ctx context.Context, kind string, event *usecase.PushTrackingEvent) (*entity.PushEvent, error) {
	userID := event.UserID
	pushEvent := &entity.PushEvent{
		ID:               uuid.Must(uuid.NewV7()),
		UserID:           &userID,
		NotificationID:   notificationIDFromData(event.Data),
		DeviceToken:      event.DeviceToken,
		NotificationType: event.NotificationType,
		Event:            kind,
		Payload: map[string]any{
			"title": event.Title,
			"body":  event.Body,
			"data":  event.Data,
		},
		CreatedAt: time.Now(),
	}

	if err := s.pushEventRepo.CreatePushEvent(ctx, pushEvent); err != nil {
		return nil, errors.Wrapf(err, "failed to record %s event", kind)
	}

	return pushEvent, nil
}

// notificationIDFromData links the event to its inbox entry when the push carried one.
func notificationIDFromData(data map[string]any) *uuid.UUID {
	raw, ok := data["notification_id"].(string)
	if !ok {
		return nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}

	return &id
}
