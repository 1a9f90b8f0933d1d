package postgres

import (
	"context"
	"time"

	domainerrors "khitma/internal/domain/errors"
	"khitma/internal/domain/repository"
	"khitma/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const progressJoin = "JOIN personal_khitma_progress ON personal_khitma_progress.id = personal_khitma_daily_progress.khitma_id"

type practiceProgressRepository struct {
	db *gorm.DB
}

// NewPracticeProgressRepository is the constructor for practiceProgressRepository.
func NewPracticeProgressRepository(db *gorm.DB) repository.PracticeProgressRepository {
	return &practiceProgressRepository{db: db}
}

func (repo *practiceProgressRepository) FindUsersWithProgressOn(ctx context.Context, userIDs []uuid.UUID, date time.Time) ([]uuid.UUID, error) {
	if len(userIDs) == 0 {
		return []uuid.UUID{}, nil
	}

	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.PersonalKhitmaDailyModel{}).
		Joins(progressJoin).
		Where("personal_khitma_progress.user_id IN ? AND personal_khitma_daily_progress.reading_date = ?", userIDs, dateParam(date)).
		Distinct().
		Pluck("personal_khitma_progress.user_id", &ids).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find users with personal progress")
	}

	return ids, nil
}

func (repo *practiceProgressRepository) FindProgressDates(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error) {
	var dates []time.Time

	if err := repo.db.WithContext(ctx).
		Model(&model.PersonalKhitmaDailyModel{}).
		Joins(progressJoin).
		Where("personal_khitma_progress.user_id = ? AND personal_khitma_daily_progress.reading_date >= ?", userID, dateParam(since)).
		Distinct().
		Pluck("personal_khitma_daily_progress.reading_date", &dates).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find personal progress dates")
	}

	return toLocalDates(dates), nil
}
