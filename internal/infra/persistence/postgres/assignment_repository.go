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

type assignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository is the constructor for assignmentRepository.
func NewAssignmentRepository(db *gorm.DB) repository.AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (repo *assignmentRepository) FindAssignment(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.VerseAssignment, error) {
	var assignmentM model.VerseAssignmentModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND shown_date = ?", userID, dateParam(date)).
		First(&assignmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAssignmentNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find verse assignment")
	}

	return toAssignmentDomain(&assignmentM), nil
}

func (repo *assignmentRepository) FindSeenVerseIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.VerseAssignmentModel{}).
		Where("user_id = ?", userID).
		Distinct().
		Pluck("verse_id", &ids).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find seen verses")
	}

	return ids, nil
}

func (repo *assignmentRepository) DeleteAssignmentsByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.VerseAssignmentModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to reset verse assignments")
	}

	return result.RowsAffected, nil
}

// CreateAssignment relies on uniq_verse_assignment_user_date: a concurrent writer
// that lost the race gets created=false instead of an error.
func (repo *assignmentRepository) CreateAssignment(ctx context.Context, assignment *entity.VerseAssignment) (bool, error) {
	assignmentM := fromAssignmentDomain(assignment)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "shown_date"}},
			DoNothing: true,
		}).
		Create(assignmentM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return false, nil
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create verse assignment")
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	assignment.ID = assignmentM.ID
	assignment.CreatedAt = assignmentM.CreatedAt

	return true, nil
}

func toAssignmentDomain(data *model.VerseAssignmentModel) *entity.VerseAssignment {
	if data == nil {
		return nil
	}

	return &entity.VerseAssignment{
		ID:        data.ID,
		UserID:    data.UserID,
		VerseID:   data.VerseID,
		ShownDate: toLocalDate(data.ShownDate),
		CreatedAt: data.CreatedAt,
	}
}

func fromAssignmentDomain(data *entity.VerseAssignment) *model.VerseAssignmentModel {
	if data == nil {
		return nil
	}

	return &model.VerseAssignmentModel{
		ID:        data.ID,
		UserID:    data.UserID,
		VerseID:   data.VerseID,
		ShownDate: toLocalDate(data.ShownDate),
		CreatedAt: data.CreatedAt,
	}
}
