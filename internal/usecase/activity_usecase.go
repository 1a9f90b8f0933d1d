package usecase

import (
	"context"
	"time"

	"khitma/internal/domain/entity"

	"github.com/google/uuid"
)

// ActivityUsecase records app usage and derives the reading streak.
type ActivityUsecase interface {
	// Ping records that the app was opened on the user's local date.
	Ping(ctx context.Context, userID uuid.UUID, timezone string) (*entity.DailyActivity, error)

	// MarkReading records that the user read on their local date.
	MarkReading(ctx context.Context, userID uuid.UUID, timezone string) (*entity.DailyActivity, error)

	// Streak returns the user's consecutive reading days.
	Streak(ctx context.Context, userID uuid.UUID, timezone string) (*entity.Streak, error)

	// LocalToday resolves the user's timezone and returns the local time and date.
	LocalToday(ctx context.Context, userID uuid.UUID, timezone string) (localNow, localDate time.Time, err error)
}
