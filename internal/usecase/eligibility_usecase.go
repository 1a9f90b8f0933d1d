package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EligibilityUsecase selects the users of a timezone that should receive a notification.
type EligibilityUsecase interface {
	// NineAmEligible returns users who have not opened the app before local 09:00 today.
	NineAmEligible(ctx context.Context, timezone string, localNow time.Time) ([]uuid.UUID, error)

	// EveningReminderEligible returns users who have neither read nor logged khitma progress today.
	EveningReminderEligible(ctx context.Context, timezone string, localNow time.Time) ([]uuid.UUID, error)
}
