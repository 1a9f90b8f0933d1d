package impl

import (
	"context"
	"log/slog"
	"time"

	"khitma/config"
	deliverycontext "khitma/internal/delivery/context"
	"khitma/internal/domain/entity"
	"khitma/internal/domain/repository"
	"khitma/internal/domain/schedule"
	"khitma/internal/errors"
	"khitma/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type activityService struct {
	activityRepo    repository.ActivityRepository
	progressRepo    repository.PracticeProgressRepository
	userRepo        repository.UserRepository
	deviceRepo      repository.DeviceRepository
	defaultTimezone string
	logger          *slog.Logger
	now             func() time.Time
}

// ActivityServiceParams holds dependencies for ActivityService, injected by Fx.
type ActivityServiceParams struct {
	fx.In

	Config       *config.Config
	ActivityRepo repository.ActivityRepository
	ProgressRepo repository.PracticeProgressRepository
	UserRepo     repository.UserRepository
	DeviceRepo   repository.DeviceRepository
	Logger       *slog.Logger
}

// NewActivityService creates the activity service.
func NewActivityService(params ActivityServiceParams) usecase.ActivityUsecase {
	return &activityService{
		activityRepo:    params.ActivityRepo,
		progressRepo:    params.ProgressRepo,
		userRepo:        params.UserRepo,
		deviceRepo:      params.DeviceRepo,
		defaultTimezone: params.Config.Scheduler.DefaultTimezone,
		logger:          params.Logger,
		now:             time.Now,
	}
}

func (s *activityService) Ping(ctx context.Context, userID uuid.UUID, timezone string) (*entity.DailyActivity, error) {
	localNow, date, err := s.LocalToday(ctx, userID, timezone)
	if err != nil {
		return nil, err
	}

	activity, err := s.activityRepo.RecordOpen(ctx, userID, date, localNow.UTC())
	if err != nil {
		return nil, errors.Wrap(err, "failed to record open")
	}

	return activity, nil
}

func (s *activityService) MarkReading(ctx context.Context, userID uuid.UUID, timezone string) (*entity.DailyActivity, error) {
	_, date, err := s.LocalToday(ctx, userID, timezone)
	if err != nil {
		return nil, err
	}

	activity, err := s.activityRepo.RecordReading(ctx, userID, date)
	if err != nil {
		return nil, errors.Wrap(err, "failed to record reading")
	}

	return activity, nil
}

// Streak merges reading days from app activity and personal khitma progress.
func (s *activityService) Streak(ctx context.Context, userID uuid.UUID, timezone string) (*entity.Streak, error) {
	_, today, err := s.LocalToday(ctx, userID, timezone)
	if err != nil {
		return nil, err
	}

	var since time.Time
	readingDates, err := s.activityRepo.FindReadingDates(ctx, userID, since)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find reading dates")
	}

	progressDates, err := s.progressRepo.FindProgressDates(ctx, userID, since)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find progress dates")
	}

	openedToday := false
	activity, err := s.activityRepo.FindActivity(ctx, userID, today)
	switch {
	case err == nil:
		openedToday = activity.Opened
	case !errors.Is(err, repository.ErrActivityNotFound):
		return nil, errors.Wrap(err, "failed to find today's activity")
	}

	streak := entity.ComputeStreak(today, append(readingDates, progressDates...), openedToday)

	return &streak, nil
}

// LocalToday resolves the timezone in order: explicit value, the user's stored
// timezone, the newest device's timezone, then the default.
func (s *activityService) LocalToday(ctx context.Context, userID uuid.UUID, timezone string) (time.Time, time.Time, error) {
	loc, err := s.resolveLocation(ctx, userID, timezone)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	localNow := s.now().In(loc)

	return localNow, schedule.LocalDate(localNow), nil
}

func (s *activityService) resolveLocation(ctx context.Context, userID uuid.UUID, explicit string) (*time.Location, error) {
	if explicit != "" {
		loc, err := schedule.LoadLocation(explicit)
		if err != nil {
			return nil, usecase.ErrInvalidTimezone.WithDetails(explicit)
		}

		return loc, nil
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user")
	}
	if user != nil && user.Timezone != "" {
		if loc, err := schedule.LoadLocation(user.Timezone); err == nil {
			return loc, nil
		}
	}

	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices")
	}
	if tz := entity.MostRecentTimezone(devices); tz != "" {
		if loc, err := schedule.LoadLocation(tz); err == nil {
			return loc, nil
		}
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Device reported an invalid timezone",
			slog.String("user_id", userID.String()),
			slog.String("timezone", tz),
		)
	}

	loc, err := schedule.LoadLocation(s.defaultTimezone)
	if err != nil {
		return time.UTC, nil
	}

	return loc, nil
}
