package postgres

import (
	"context"
	"time"

	"khitma/internal/domain/entity"
	domainerrors "khitma/internal/domain/errors"
	"khitma/internal/domain/repository"
	"khitma/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

// CreateNotification persists a new inbox entry.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.AppNotification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// CreateDailyNotification inserts with ON CONFLICT DO NOTHING on
// (user_id, type, dispatch_date); a concurrent or repeated run gets created=false.
func (repo *notificationRepository) CreateDailyNotification(ctx context.Context, notification *entity.AppNotification) (bool, error) {
	if notification.DispatchDate == nil {
		return false, domainerrors.ErrValidationFailed.WrapMessage("dispatch date is required")
	}

	notificationM := fromNotificationDomain(notification)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "type"}, {Name: "dispatch_date"}},
			DoNothing: true,
		}).
		Create(notificationM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return false, nil
		}
		if isForeignKeyConstraintViolation(result.Error) {
			return false, domainerrors.ErrValidationFailed.WrapMessage("unknown user")
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create daily notification")
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return true, nil
}

// FindNotificationsByUser returns the newest inbox entries of a user.
func (repo *notificationRepository) FindNotificationsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.AppNotification, error) {
	var notificationModels []*model.AppNotificationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notificationModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find notifications by user")
	}

	notifications := make([]*entity.AppNotification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// SetReadAt updates the read marker and returns the updated row.
func (repo *notificationRepository) SetReadAt(ctx context.Context, userID, id uuid.UUID, readAt *time.Time) (*entity.AppNotification, error) {
	var notificationM model.AppNotificationModel

	result := repo.db.WithContext(ctx).
		Model(&notificationM).
		Clauses(clause.Returning{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read_at", readAt)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update notification read state")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrNotificationNotFound
	}

	return toNotificationDomain(&notificationM), nil
}

// DeleteNotification removes a user's notification.
func (repo *notificationRepository) DeleteNotification(ctx context.Context, userID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.AppNotificationModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete notification")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toNotificationDomain(data *model.AppNotificationModel) *entity.AppNotification {
	if data == nil {
		return nil
	}

	return &entity.AppNotification{
		ID:           data.ID,
		UserID:       data.UserID,
		Type:         entity.NotificationType(data.Type),
		Title:        data.Title,
		Body:         data.Body,
		Data:         map[string]any(data.Data),
		ReadAt:       data.ReadAt,
		CreatedAt:    data.CreatedAt,
		DispatchDate: localDatePtr(data.DispatchDate),
	}
}

func fromNotificationDomain(data *entity.AppNotification) *model.AppNotificationModel {
	if data == nil {
		return nil
	}

	return &model.AppNotificationModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Type:         string(data.Type),
		Title:        data.Title,
		Body:         data.Body,
		Data:         datatypes.JSONMap(data.Data),
		ReadAt:       data.ReadAt,
		CreatedAt:    data.CreatedAt,
		DispatchDate: localDatePtr(data.DispatchDate),
	}
}

func localDatePtr(date *time.Time) *time.Time {
	if date == nil {
		return nil
	}
	local := toLocalDate(*date)

	return &local
}
