package postgres

import (
	"context"

	"khitma/internal/domain/entity"
	domainerrors "khitma/internal/domain/errors"
	"khitma/internal/domain/repository"
	"khitma/internal/errors"
	"khitma/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const verseUpsertBatchSize = 200

type verseRepository struct {
	db *gorm.DB
}

// NewVerseRepository is the constructor for verseRepository.
func NewVerseRepository(db *gorm.DB) repository.VerseRepository {
	return &verseRepository{db: db}
}

func (repo *verseRepository) FindActiveVerseIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.VerseModel{}).
		Where("is_active = ?", true).
		Order("surah_number, ayah_number").
		Pluck("id", &ids).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find active verses")
	}

	return ids, nil
}

func (repo *verseRepository) FindVerseByID(ctx context.Context, id uuid.UUID) (*entity.Verse, error) {
	var verseM model.VerseModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&verseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVerseNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find verse")
	}

	return toVerseDomain(&verseM), nil
}

// UpsertVerses writes the catalog keyed by (surah_number, ayah_number). IDs of
// existing rows are kept so past assignments stay valid.
func (repo *verseRepository) UpsertVerses(ctx context.Context, verses []*entity.Verse) (int64, error) {
	if len(verses) == 0 {
		return 0, nil
	}

	verseModels := make([]*model.VerseModel, 0, len(verses))
	for _, verse := range verses {
		verseModels = append(verseModels, fromVerseDomain(verse))
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "surah_number"}, {Name: "ayah_number"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"surah_name", "surah_name_ar", "arabic_text", "translation", "is_active", "updated_at",
			}),
		}).
		CreateInBatches(verseModels, verseUpsertBatchSize)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to upsert verses")
	}

	return result.RowsAffected, nil
}

func toVerseDomain(data *model.VerseModel) *entity.Verse {
	if data == nil {
		return nil
	}

	return &entity.Verse{
		ID:          data.ID,
		SurahName:   data.SurahName,
		SurahNameAr: data.SurahNameAr,
		SurahNumber: data.SurahNumber,
		AyahNumber:  data.AyahNumber,
		ArabicText:  data.ArabicText,
		Translation: data.Translation,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromVerseDomain(data *entity.Verse) *model.VerseModel {
	if data == nil {
		return nil
	}

	return &model.VerseModel{
		ID:          data.ID,
		SurahName:   data.SurahName,
		SurahNameAr: data.SurahNameAr,
		SurahNumber: data.SurahNumber,
		AyahNumber:  data.AyahNumber,
		ArabicText:  data.ArabicText,
		Translation: data.Translation,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
