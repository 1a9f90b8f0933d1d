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

var dailyActivityConflict = []clause.Column{{Name: "user_id"}, {Name: "activity_date"}}

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

func (repo *activityRepository) FindActivity(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.DailyActivity, error) {
	var activityM model.DailyActivityModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND activity_date = ?", userID, dateParam(date)).
		First(&activityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrActivityNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find daily activity")
	}

	return toActivityDomain(&activityM), nil
}

func (repo *activityRepository) FindActivitiesByUsers(ctx context.Context, userIDs []uuid.UUID, date time.Time) ([]*entity.DailyActivity, error) {
	if len(userIDs) == 0 {
		return []*entity.DailyActivity{}, nil
	}

	var activityModels []*model.DailyActivityModel

	if err := repo.db.WithContext(ctx).
		Where("user_id IN ? AND activity_date = ?", userIDs, dateParam(date)).
		Find(&activityModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find daily activities")
	}

	activities := make([]*entity.DailyActivity, 0, len(activityModels))
	for _, activityM := range activityModels {
		activities = append(activities, toActivityDomain(activityM))
	}

	return activities, nil
}

// RecordOpen upserts the day's row. first_opened_at keeps the earliest stored value.
func (repo *activityRepository) RecordOpen(ctx context.Context, userID uuid.UUID, date, openedAt time.Time) (*entity.DailyActivity, error) {
	openedAt = openedAt.UTC()
	activityM := &model.DailyActivityModel{
		UserID:        userID,
		ActivityDate:  toLocalDate(date),
		Opened:        true,
		FirstOpenedAt: &openedAt,
	}

	return repo.upsert(ctx, activityM, clause.Assignments(map[string]any{
		"opened":          true,
		"first_opened_at": gorm.Expr("COALESCE(daily_activities.first_opened_at, EXCLUDED.first_opened_at)"),
		"updated_at":      gorm.Expr("EXCLUDED.updated_at"),
	}), "failed to record app open")
}

func (repo *activityRepository) RecordReading(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.DailyActivity, error) {
	activityM := &model.DailyActivityModel{
		UserID:       userID,
		ActivityDate: toLocalDate(date),
		Reading:      true,
	}

	return repo.upsert(ctx, activityM, clause.Assignments(map[string]any{
		"reading":    true,
		"updated_at": gorm.Expr("EXCLUDED.updated_at"),
	}), "failed to record reading")
}

func (repo *activityRepository) upsert(ctx context.Context, activityM *model.DailyActivityModel, updates clause.Set, details string) (*entity.DailyActivity, error) {
	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{Columns: dailyActivityConflict, DoUpdates: updates},
			clause.Returning{},
		).
		Create(activityM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, details)
	}

	return toActivityDomain(activityM), nil
}

func (repo *activityRepository) FindReadingDates(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error) {
	var dates []time.Time

	if err := repo.db.WithContext(ctx).
		Model(&model.DailyActivityModel{}).
		Where("user_id = ? AND reading = ? AND activity_date >= ?", userID, true, dateParam(since)).
		Order("activity_date DESC").
		Pluck("activity_date", &dates).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find reading dates")
	}

	return toLocalDates(dates), nil
}

func toActivityDomain(data *model.DailyActivityModel) *entity.DailyActivity {
	if data == nil {
		return nil
	}

	return &entity.DailyActivity{
		ID:            data.ID,
		UserID:        data.UserID,
		ActivityDate:  toLocalDate(data.ActivityDate),
		Opened:        data.Opened,
		Reading:       data.Reading,
		FirstOpenedAt: data.FirstOpenedAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toLocalDates(dates []time.Time) []time.Time {
	out := make([]time.Time, 0, len(dates))
	for _, date := range dates {
		out = append(out, toLocalDate(date))
	}

	return out
}
