package postgres

import (
	"context"

	"khitma/internal/domain/entity"
	domainerrors "khitma/internal/domain/errors"
	"khitma/internal/domain/repository"
	"khitma/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type jobLockRepository struct {
	db *gorm.DB
}

// NewJobLockRepository is the constructor for jobLockRepository.
func NewJobLockRepository(db *gorm.DB) repository.JobLockRepository {
	return &jobLockRepository{db: db}
}

// Acquire inserts the lease or takes over an expired one in a single statement.
// The conditional DO UPDATE touches no row while another owner's lease is live.
func (repo *jobLockRepository) Acquire(ctx context.Context, lease *entity.JobLease) (bool, error) {
	lockM := &model.JobLockModel{
		JobName:    lease.JobName,
		Owner:      lease.Owner,
		AcquiredAt: lease.AcquiredAt.UTC(),
		ExpiresAt:  lease.ExpiresAt.UTC(),
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "job_name"}},
			DoUpdates: clause.AssignmentColumns([]string{"owner", "acquired_at", "expires_at"}),
			Where: clause.Where{Exprs: []clause.Expression{
				clause.Expr{SQL: "job_locks.expires_at < EXCLUDED.acquired_at"},
			}},
		}).
		Create(lockM)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to acquire job lease")
	}

	return result.RowsAffected == 1, nil
}

// Release drops the lease if it is still owned by owner.
func (repo *jobLockRepository) Release(ctx context.Context, jobName, owner string) error {
	if err := repo.db.WithContext(ctx).
		Where("job_name = ? AND owner = ?", jobName, owner).
		Delete(&model.JobLockModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to release job lease")
	}

	return nil
}
