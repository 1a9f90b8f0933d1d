package usecase

import (
	"context"

	"khitma/internal/domain/entity"
	"khitma/internal/domain/service"

	"github.com/google/uuid"
)

// PushDeliveryUsecase delivers queued push jobs.
type PushDeliveryUsecase interface {
	Deliver(ctx context.Context, job *service.PushJob) (*service.PushBatchResult, error)
}

// PushTrackingEvent is a client report about a received or opened push.
type PushTrackingEvent struct {
	UserID           uuid.UUID
	DeviceToken      string
	NotificationType string
	Title            string
	Body             string
	Data             map[string]any
}

// PushTrackingUsecase records client push receipts and opens.
type PushTrackingUsecase interface {
	RecordReceived(ctx context.Context, event *PushTrackingEvent) (*entity.PushEvent, error)
	RecordOpened(ctx context.Context, event *PushTrackingEvent) (*entity.PushEvent, error)
}
