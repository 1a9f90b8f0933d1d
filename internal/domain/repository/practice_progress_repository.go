package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PracticeProgressRepository reads the personal khitma progress log.
type PracticeProgressRepository interface {
	// FindUsersWithProgressOn returns the users among userIDs with a progress row on the date.
	FindUsersWithProgressOn(ctx context.Context, userIDs []uuid.UUID, date time.Time) ([]uuid.UUID, error)

	// FindProgressDates returns the distinct progress dates of a user on or after since.
	FindProgressDates(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error)
}
