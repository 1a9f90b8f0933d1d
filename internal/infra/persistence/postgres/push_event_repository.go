package postgres

import (
	"context"

	"khitma/internal/domain/entity"
	domainerrors "khitma/internal/domain/errors"
	"khitma/internal/domain/repository"
	"khitma/internal/infra/persistence/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const pushEventBatchSize = 100

type pushEventRepository struct {
	db *gorm.DB
}

// NewPushEventRepository is the constructor for pushEventRepository.
func NewPushEventRepository(db *gorm.DB) repository.PushEventRepository {
	return &pushEventRepository{db: db}
}

// CreatePushEvent persists a single event.
func (repo *pushEventRepository) CreatePushEvent(ctx context.Context, event *entity.PushEvent) error {
	eventM := fromPushEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create push event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt

	return nil
}

// BatchCreatePushEvents persists events in batches.
func (repo *pushEventRepository) BatchCreatePushEvents(ctx context.Context, events []*entity.PushEvent) error {
	if len(events) == 0 {
		return nil
	}

	eventModels := make([]*model.PushEventModel, 0, len(events))
	for _, event := range events {
		eventModels = append(eventModels, fromPushEventDomain(event))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(eventModels, pushEventBatchSize).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to batch create push events")
	}

	return nil
}

func fromPushEventDomain(data *entity.PushEvent) *model.PushEventModel {
	if data == nil {
		return nil
	}

	return &model.PushEventModel{
		ID:               data.ID,
		UserID:           data.UserID,
		NotificationID:   data.NotificationID,
		DeviceToken:      data.DeviceToken,
		NotificationType: data.NotificationType,
		Event:            data.Event,
		Payload:          datatypes.JSONMap(data.Payload),
		ErrorMessage:     data.ErrorMessage,
		CreatedAt:        data.CreatedAt,
	}
}
