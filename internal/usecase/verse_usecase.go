package usecase

import (
	"context"
	"time"

	"khitma/internal/domain/entity"

	"github.com/google/uuid"
)

// VerseUsecase assigns and reads the daily motivational verse.
type VerseUsecase interface {
	// AssignIfMissing returns the user's assignment for localDate, creating one when absent.
	AssignIfMissing(ctx context.Context, userID uuid.UUID, localDate time.Time) (*entity.VerseAssignment, error)

	// AssignedVerse returns the verse pre-assigned for localDate without assigning.
	AssignedVerse(ctx context.Context, userID uuid.UUID, localDate time.Time) (*entity.Verse, error)

	// TodayVerse assigns if needed and returns the verse for localDate.
	TodayVerse(ctx context.Context, userID uuid.UUID, localDate time.Time) (*entity.Verse, error)
}
