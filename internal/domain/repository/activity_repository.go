package repository

import (
	"context"
	"time"

	"khitma/internal/domain/entity"
	"khitma/internal/errors"

	"github.com/google/uuid"
)

// ErrActivityNotFound is returned when a user has no activity row for a date.
var ErrActivityNotFound = errors.New("daily activity not found")

// ActivityRepository persists per-day app activity.
type ActivityRepository interface {
	// FindActivity returns the activity of a user on a local date.
	FindActivity(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.DailyActivity, error)

	// FindActivitiesByUsers returns the activities of the given users on a local date.
	FindActivitiesByUsers(ctx context.Context, userIDs []uuid.UUID, date time.Time) ([]*entity.DailyActivity, error)

	// RecordOpen marks the date as opened. The first call of the day stores openedAt as
	// first_opened_at; later calls leave it unchanged.
	RecordOpen(ctx context.Context, userID uuid.UUID, date, openedAt time.Time) (*entity.DailyActivity, error)

	// RecordReading marks the date as read.
	RecordReading(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.DailyActivity, error)

	// FindReadingDates returns the dates on or after since with reading=true.
	FindReadingDates(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error)
}
