package postgres

import (
	"context"
	"time"

	"khitma/internal/domain/entity"
	domainerrors "khitma/internal/domain/errors"
	"khitma/internal/domain/repository"
	"khitma/internal/errors"
	"khitma/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var preferenceConflict = []clause.Column{{Name: "user_id"}}

type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository is the constructor for preferenceRepository.
func NewPreferenceRepository(db *gorm.DB) repository.PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (repo *preferenceRepository) FindPreference(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreference, error) {
	var preferenceM model.NotificationPreferenceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&preferenceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPreferenceNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find notification preference")
	}

	return toPreferenceDomain(&preferenceM), nil
}

// FirstOrCreatePreference inserts the default row if missing, then reads whichever row won.
func (repo *preferenceRepository) FirstOrCreatePreference(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreference, error) {
	defaults := fromPreferenceDomain(entity.DefaultNotificationPreference(userID))

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: preferenceConflict, DoNothing: true}).
		Create(defaults).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create notification preference")
	}

	return repo.FindPreference(ctx, userID)
}

// SavePreference writes every field, including false flags.
func (repo *preferenceRepository) SavePreference(ctx context.Context, preference *entity.NotificationPreference) error {
	preferenceM := fromPreferenceDomain(preference)
	preferenceM.UpdatedAt = time.Now().UTC()

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: preferenceConflict,
				DoUpdates: clause.AssignmentColumns([]string{
					"allow_group_notifications",
					"allow_motivational_notifications",
					"allow_personal_reminders",
					"preferred_personal_reminder_hour",
					"updated_at",
				}),
			},
			clause.Returning{},
		).
		Create(preferenceM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save notification preference")
	}

	*preference = *toPreferenceDomain(preferenceM)

	return nil
}

func toPreferenceDomain(data *model.NotificationPreferenceModel) *entity.NotificationPreference {
	if data == nil {
		return nil
	}

	return &entity.NotificationPreference{
		UserID:                         data.UserID,
		AllowGroupNotifications:        data.AllowGroupNotifications,
		AllowMotivationalNotifications: data.AllowMotivationalNotifications,
		AllowPersonalReminders:         data.AllowPersonalReminders,
		PreferredPersonalReminderHour:  data.PreferredPersonalReminderHour,
		CreatedAt:                      data.CreatedAt,
		UpdatedAt:                      data.UpdatedAt,
	}
}

func fromPreferenceDomain(data *entity.NotificationPreference) *model.NotificationPreferenceModel {
	if data == nil {
		return nil
	}

	return &model.NotificationPreferenceModel{
		UserID:                         data.UserID,
		AllowGroupNotifications:        data.AllowGroupNotifications,
		AllowMotivationalNotifications: data.AllowMotivationalNotifications,
		AllowPersonalReminders:         data.AllowPersonalReminders,
		PreferredPersonalReminderHour:  data.PreferredPersonalReminderHour,
		CreatedAt:                      data.CreatedAt,
		UpdatedAt:                      data.UpdatedAt,
	}
}
