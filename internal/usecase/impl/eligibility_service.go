package impl

import (
	"context"
	"time"

	"khitma/internal/domain/entity"
	"khitma/internal/domain/repository"
	"khitma/internal/domain/schedule"
	"khitma/internal/errors"
	"khitma/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const nineAmHour = 9

type eligibilityService struct {
	deviceRepo   repository.DeviceRepository
	activityRepo repository.ActivityRepository
	progressRepo repository.PracticeProgressRepository
}

// EligibilityServiceParams holds dependencies for EligibilityService, injected by Fx.
type EligibilityServiceParams struct {
	fx.In

	DeviceRepo   repository.DeviceRepository
	ActivityRepo repository.ActivityRepository
	ProgressRepo repository.PracticeProgressRepository
}

// NewEligibilityService creates the eligibility filter.
func NewEligibilityService(params EligibilityServiceParams) usecase.EligibilityUsecase {
	return &eligibilityService{
		deviceRepo:   params.DeviceRepo,
		activityRepo: params.ActivityRepo,
		progressRepo: params.ProgressRepo,
	}
}

// IsNineAmEligible reports whether a user should get the morning verse: no activity
// today, no recorded first open, or a first open at or after local 09:00.
func IsNineAmEligible(activity *entity.DailyActivity, nineAM time.Time) bool {
	if activity == nil || activity.FirstOpenedAt == nil {
		return true
	}

	return !activity.FirstOpenedAt.Before(nineAM)
}

// IsEveningReminderEligible reports whether a user should get the evening reminder.
func IsEveningReminderEligible(activity *entity.DailyActivity, hasProgress bool) bool {
	if hasProgress {
		return false
	}

	return activity == nil || !activity.Reading
}

func (s *eligibilityService) NineAmEligible(ctx context.Context, timezone string, localNow time.Time) ([]uuid.UUID, error) {
	userIDs, activities, err := s.loadActivities(ctx, timezone, localNow)
	if err != nil || len(userIDs) == 0 {
		return nil, err
	}

	nineAM := schedule.LocalInstant(localNow, nineAmHour)
	eligible := make([]uuid.UUID, 0, len(userIDs))
	for _, userID := range userIDs {
		if IsNineAmEligible(activities[userID], nineAM) {
			eligible = append(eligible, userID)
		}
	}

	return eligible, nil
}

func (s *eligibilityService) EveningReminderEligible(ctx context.Context, timezone string, localNow time.Time) ([]uuid.UUID, error) {
	userIDs, activities, err := s.loadActivities(ctx, timezone, localNow)
	if err != nil || len(userIDs) == 0 {
		return nil, err
	}

	withProgress, err := s.progressRepo.FindUsersWithProgressOn(ctx, userIDs, schedule.LocalDate(localNow))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find khitma progress")
	}
	progressSet := make(map[uuid.UUID]struct{}, len(withProgress))
	for _, id := range withProgress {
		progressSet[id] = struct{}{}
	}

	eligible := make([]uuid.UUID, 0, len(userIDs))
	for _, userID := range userIDs {
		_, hasProgress := progressSet[userID]
		if IsEveningReminderEligible(activities[userID], hasProgress) {
			eligible = append(eligible, userID)
		}
	}

	return eligible, nil
}

// loadActivities fetches the timezone's users and their activity for the local date in two queries.
func (s *eligibilityService) loadActivities(
	ctx context.Context,
	timezone string,
	localNow time.Time,
) ([]uuid.UUID, map[uuid.UUID]*entity.DailyActivity, error) {
	userIDs, err := s.deviceRepo.FindUserIDsByTimezone(ctx, timezone)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to find users by timezone")
	}
	if len(userIDs) == 0 {
		return nil, nil, nil
	}

	rows, err := s.activityRepo.FindActivitiesByUsers(ctx, userIDs, schedule.LocalDate(localNow))
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to find activities")
	}

	activities := make(map[uuid.UUID]*entity.DailyActivity, len(rows))
	for _, row := range rows {
		activities[row.UserID] = row
	}

	return userIDs, activities, nil
}
