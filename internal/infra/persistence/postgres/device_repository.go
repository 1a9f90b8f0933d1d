// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"khitma/internal/domain/entity"
	domainerrors "khitma/internal/domain/errors"
	"khitma/internal/domain/repository"
	"khitma/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// UpsertDevice inserts the registration or, when the token is known, moves it to
// the caller and refreshes its metadata.
func (repo *deviceRepository) UpsertDevice(ctx context.Context, device *entity.DeviceRegistration) error {
	now := time.Now().UTC()
	deviceM := fromDeviceDomain(device)
	deviceM.UpdatedAt = now
	if deviceM.LastSeenAt == nil {
		deviceM.LastSeenAt = &now
	}

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "device_token"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"user_id", "platform", "locale", "timezone", "last_seen_at", "updated_at",
				}),
			},
			clause.Returning{},
		).
		Create(deviceM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert device")
	}

	*device = *toDeviceDomain(deviceM)

	return nil
}

// DeleteUserDevice removes a token owned by the user.
func (repo *deviceRepository) DeleteUserDevice(ctx context.Context, userID uuid.UUID, token string) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND device_token = ?", userID, token).
		Delete(&model.DeviceRegistrationModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeleteDevicesByTokens removes tokens the push providers reported as unusable.
func (repo *deviceRepository) DeleteDevicesByTokens(ctx context.Context, tokens []string) (int64, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Where("device_token IN ?", tokens).
		Delete(&model.DeviceRegistrationModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete devices by tokens")
	}

	return result.RowsAffected, nil
}

// FindDevicesByUser retrieves all registrations of a user, newest first.
func (repo *deviceRepository) FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceRegistration, error) {
	var deviceModels []*model.DeviceRegistrationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find devices by user")
	}

	return toDeviceDomains(deviceModels), nil
}

// FindDevicesByUsers retrieves the registrations of many users in one query.
func (repo *deviceRepository) FindDevicesByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.DeviceRegistration, error) {
	if len(userIDs) == 0 {
		return []*entity.DeviceRegistration{}, nil
	}

	var deviceModels []*model.DeviceRegistrationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find devices by users")
	}

	return toDeviceDomains(deviceModels), nil
}

// ListTimezones returns the distinct non-empty timezones of all registered devices.
func (repo *deviceRepository) ListTimezones(ctx context.Context) ([]string, error) {
	var timezones []string

	if err := repo.db.WithContext(ctx).
		Model(&model.DeviceRegistrationModel{}).
		Where("timezone IS NOT NULL AND timezone <> ''").
		Distinct().
		Order("timezone").
		Pluck("timezone", &timezones).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list device timezones")
	}

	return timezones, nil
}

// FindUserIDsByTimezone returns the distinct users with a token in the timezone.
func (repo *deviceRepository) FindUserIDsByTimezone(ctx context.Context, timezone string) ([]uuid.UUID, error) {
	var userIDs []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.DeviceRegistrationModel{}).
		Where("timezone = ?", timezone).
		Distinct().
		Pluck("user_id", &userIDs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find users by timezone")
	}

	return userIDs, nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM DeviceRegistrationModel to a domain DeviceRegistration entity.
func toDeviceDomain(data *model.DeviceRegistrationModel) *entity.DeviceRegistration {
	if data == nil {
		return nil
	}

	return &entity.DeviceRegistration{
		ID:          data.ID,
		UserID:      data.UserID,
		DeviceToken: data.DeviceToken,
		Platform:    data.Platform,
		Locale:      data.Locale,
		Timezone:    data.Timezone,
		LastSeenAt:  data.LastSeenAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toDeviceDomains(models []*model.DeviceRegistrationModel) []*entity.DeviceRegistration {
	devices := make([]*entity.DeviceRegistration, 0, len(models))
	for _, deviceM := range models {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices
}

// fromDeviceDomain converts a domain DeviceRegistration entity to a GORM DeviceRegistrationModel.
func fromDeviceDomain(data *entity.DeviceRegistration) *model.DeviceRegistrationModel {
	if data == nil {
		return nil
	}

	return &model.DeviceRegistrationModel{
		ID:          data.ID,
		UserID:      data.UserID,
		DeviceToken: data.DeviceToken,
		Platform:    data.Platform,
		Locale:      data.Locale,
		Timezone:    data.Timezone,
		LastSeenAt:  data.LastSeenAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
