package impl

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"khitma/config"
	deliverycontext "khitma/internal/delivery/context"
	"khitma/internal/domain/entity"
	"khitma/internal/domain/lifecycle"
	"khitma/internal/domain/repository"
	"khitma/internal/domain/schedule"
	"khitma/internal/errors"
	"khitma/internal/usecase"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

type schedulerService struct {
	cfg         *config.SchedulerConfig
	lockRepo    repository.JobLockRepository
	deviceRepo  repository.DeviceRepository
	userRepo    repository.UserRepository
	verses      usecase.VerseUsecase
	eligibility usecase.EligibilityUsecase
	composer    usecase.NotificationComposer
	dispatcher  usecase.NotificationDispatcher
	logger      *slog.Logger
	now         func() time.Time
}

// SchedulerServiceParams holds dependencies for SchedulerService, injected by Fx.
type SchedulerServiceParams struct {
	fx.In

	Config      *config.Config
	LockRepo    repository.JobLockRepository
	DeviceRepo  repository.DeviceRepository
	UserRepo    repository.UserRepository
	Verses      usecase.VerseUsecase
	Eligibility usecase.EligibilityUsecase
	Composer    usecase.NotificationComposer
	Dispatcher  usecase.NotificationDispatcher
	Logger      *slog.Logger
}

// NewSchedulerService creates the timezone scheduler.
func NewSchedulerService(params SchedulerServiceParams) usecase.SchedulerUsecase {
	return &schedulerService{
		cfg:         params.Config.Scheduler,
		lockRepo:    params.LockRepo,
		deviceRepo:  params.DeviceRepo,
		userRepo:    params.UserRepo,
		verses:      params.Verses,
		eligibility: params.Eligibility,
		composer:    params.Composer,
		dispatcher:  params.Dispatcher,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// userOutcome is the per-user result of an action.
type userOutcome int

const (
	outcomeProcessed userOutcome = iota
	outcomeSkipped
)

// timezoneBatch is what a timezone's users need, loaded once per timezone.
type timezoneBatch struct {
	local   time.Time
	date    time.Time
	devices map[uuid.UUID][]*entity.DeviceRegistration
	users   map[uuid.UUID]*entity.User
}

// RunJob runs one job over every timezone whose local clock is at the job's hour.
// Runs of the same job never overlap: a held lease makes this run a no-op.
func (s *schedulerService) RunJob(ctx context.Context, jobName string, opts usecase.RunOptions) (*entity.RunReport, error) {
	job, err := schedule.JobByName(jobName)
	if err != nil {
		return nil, err
	}

	startedAt := s.now()
	now := opts.Now
	if now.IsZero() {
		now = startedAt
	}

	report := &entity.RunReport{
		RunID:     ulid.Make().String(),
		Job:       job.Name,
		DryRun:    opts.DryRun,
		StartedAt: startedAt,
	}

	logger := s.logger.With(slog.String("run_id", report.RunID), slog.String("job", job.Name))
	ctx = deliverycontext.WithLogger(ctx, logger)

	if !opts.DryRun {
		release, acquired, err := s.acquire(ctx, job.Name, report.RunID, startedAt)
		if err != nil {
			return nil, err
		}
		if !acquired {
			logger.Debug("[Scheduler] Previous run still holds the lease, skipping")
			report.Skipped = true
			report.FinishedAt = s.now()

			return report, nil
		}
		defer release()
	}

	timezones, err := s.timezones(ctx, opts.Timezones)
	if err != nil {
		return nil, err
	}

	report.Timezones = make([]*entity.TimezoneReport, len(timezones))

	var group errgroup.Group
	group.SetLimit(max(1, s.cfg.TimezoneConcurrency))
	for i, tz := range timezones {
		group.Go(func() error {
			report.Timezones[i] = s.processTimezone(ctx, job, tz, now, opts)

			return nil
		})
	}
	_ = group.Wait()

	report.FinishedAt = s.now()
	processed, skipped, failed := report.Totals()
	logger.Info("[Scheduler] Run finished",
		slog.Int("timezones", len(timezones)),
		slog.Int("processed", processed),
		slog.Int("skipped", skipped),
		slog.Int("failed", failed),
		slog.Duration("elapsed", report.FinishedAt.Sub(startedAt)),
	)

	return report, nil
}

func (s *schedulerService) acquire(ctx context.Context, jobName, owner string, now time.Time) (func(), bool, error) {
	lease := &entity.JobLease{
		JobName:    jobName,
		Owner:      owner,
		AcquiredAt: now,
		ExpiresAt:  now.Add(s.cfg.LockTTL),
	}

	acquired, err := s.lockRepo.Acquire(ctx, lease)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to acquire job lease")
	}
	if !acquired {
		return nil, false, nil
	}

	release := func() {
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
		defer cancel()

		if err := s.lockRepo.Release(releaseCtx, jobName, owner); err != nil {
			s.log(ctx).Warn("[Scheduler] Failed to release job lease, it expires on its own",
				slog.Any("error", err),
			)
		}
	}

	return release, true, nil
}

func (s *schedulerService) timezones(ctx context.Context, requested []string) ([]string, error) {
	if len(requested) > 0 {
		return requested, nil
	}

	timezones, err := s.deviceRepo.ListTimezones(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list timezones")
	}
	if len(timezones) == 0 {
		return []string{s.cfg.DefaultTimezone}, nil
	}

	return timezones, nil
}

func (s *schedulerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// processTimezone never returns an error: every failure is confined to its timezone or user.
func (s *schedulerService) processTimezone(
	ctx context.Context,
	job schedule.Job,
	timezone string,
	now time.Time,
	opts usecase.RunOptions,
) *entity.TimezoneReport {
	report := &entity.TimezoneReport{Timezone: timezone}
	logger := s.log(ctx).With(slog.String("timezone", timezone))

	local, err := schedule.LocalNow(timezone, now)
	if err != nil {
		logger.Warn("[Scheduler] Skipping invalid timezone", slog.Any("error", err))
		report.Status = entity.TimezoneInvalid
		report.Error = err.Error()

		return report
	}
	report.LocalTime = local

	if !opts.IgnoreWindow && !schedule.WithinWindowAt(local, job.TargetHour, s.cfg.Tolerance) {
		report.Status = entity.TimezoneSkipped

		return report
	}

	batch, userIDs, err := s.loadBatch(ctx, job.Action, timezone, local)
	if err != nil {
		logger.Error("[Scheduler] Failed to load users", slog.Any("error", err))
		report.Status = entity.TimezoneFailed
		report.Error = err.Error()

		return report
	}

	report.Status = entity.TimezoneProcessed
	report.Users = len(userIDs)
	logger.Info("[Scheduler] Timezone in window",
		slog.String("local_time", local.Format(time.DateTime)),
		slog.Int("users", len(userIDs)),
	)

	if opts.DryRun || len(userIDs) == 0 {
		return report
	}

	var processed, skipped, failed atomic.Int64
	var group errgroup.Group
	group.SetLimit(max(1, s.cfg.UserConcurrency))
	for _, userID := range userIDs {
		group.Go(func() error {
			outcome, err := s.runUser(ctx, job.Action, userID, batch)
			switch {
			case err != nil:
				failed.Add(1)
				logger.Warn("[Scheduler] User failed",
					slog.String("user_id", userID.String()),
					slog.Any("error", err),
				)
			case outcome == outcomeSkipped:
				skipped.Add(1)
			default:
				processed.Add(1)
			}

			return nil
		})
	}
	_ = group.Wait()

	report.Processed = int(processed.Load())
	report.Skipped = int(skipped.Load())
	report.Failed = int(failed.Load())

	return report
}

func (s *schedulerService) loadBatch(
	ctx context.Context,
	action schedule.Action,
	timezone string,
	local time.Time,
) (*timezoneBatch, []uuid.UUID, error) {
	batch := &timezoneBatch{local: local, date: schedule.LocalDate(local)}

	var (
		userIDs []uuid.UUID
		err     error
	)
	switch action {
	case schedule.ActionAssign:
		userIDs, err = s.deviceRepo.FindUserIDsByTimezone(ctx, timezone)
	case schedule.ActionNotify:
		userIDs, err = s.eligibility.NineAmEligible(ctx, timezone, local)
	case schedule.ActionRemind:
		userIDs, err = s.eligibility.EveningReminderEligible(ctx, timezone, local)
	default:
		return nil, nil, errors.Wrapf(schedule.ErrUnknownJob, "action %q", action)
	}
	if err != nil || len(userIDs) == 0 || action == schedule.ActionAssign {
		return batch, userIDs, err
	}

	devices, err := s.deviceRepo.FindDevicesByUsers(ctx, userIDs)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to find devices")
	}
	batch.devices = make(map[uuid.UUID][]*entity.DeviceRegistration, len(userIDs))
	for _, device := range devices {
		batch.devices[device.UserID] = append(batch.devices[device.UserID], device)
	}

	if action == schedule.ActionRemind {
		users, err := s.userRepo.FindUsersByIDs(ctx, userIDs)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to find users")
		}
		batch.users = make(map[uuid.UUID]*entity.User, len(users))
		for _, user := range users {
			batch.users[user.ID] = user
		}
	}

	return batch, userIDs, nil
}

func (s *schedulerService) runUser(ctx context.Context, action schedule.Action, userID uuid.UUID, batch *timezoneBatch) (userOutcome, error) {
	switch action {
	case schedule.ActionAssign:
		if _, err := s.verses.AssignIfMissing(ctx, userID, batch.date); err != nil {
			return outcomeSkipped, err
		}

		return outcomeProcessed, nil
	case schedule.ActionNotify:
		return s.notifyUser(ctx, userID, batch)
	case schedule.ActionRemind:
		return s.remindUser(ctx, userID, batch)
	default:
		return outcomeSkipped, errors.Wrapf(schedule.ErrUnknownJob, "action %q", action)
	}
}

// notifyUser sends the verse assigned at midnight; users without one are skipped.
func (s *schedulerService) notifyUser(ctx context.Context, userID uuid.UUID, batch *timezoneBatch) (userOutcome, error) {
	verse, err := s.verses.AssignedVerse(ctx, userID, batch.date)
	if err != nil {
		if errors.Is(err, usecase.ErrNoVerseAssigned) {
			s.log(ctx).Debug("[Scheduler] No verse assigned, skipping", slog.String("user_id", userID.String()))

			return outcomeSkipped, nil
		}

		return outcomeSkipped, err
	}

	devices := batch.devices[userID]
	tokens := entity.Tokens(devices)
	if len(tokens) == 0 {
		return outcomeSkipped, nil
	}

	content := s.composer.ComposeVerse(verse, s.composer.ResolveLanguage(devices))

	return s.dispatch(ctx, userID, content, tokens, s.cfg.VerseMaxPushDelay, batch.date)
}

func (s *schedulerService) remindUser(ctx context.Context, userID uuid.UUID, batch *timezoneBatch) (userOutcome, error) {
	user, ok := batch.users[userID]
	if !ok {
		s.log(ctx).Warn("[Scheduler] User not in directory, skipping", slog.String("user_id", userID.String()))

		return outcomeSkipped, nil
	}

	devices := batch.devices[userID]
	tokens := entity.Tokens(devices)
	if len(tokens) == 0 {
		return outcomeSkipped, nil
	}

	content := s.composer.ComposeEveningReminder(user.Username, s.composer.ResolveLanguage(devices))

	return s.dispatch(ctx, userID, content, tokens, s.cfg.ReminderMaxPushDelay, batch.date)
}

func (s *schedulerService) dispatch(
	ctx context.Context,
	userID uuid.UUID,
	content *entity.NotificationContent,
	tokens []string,
	maxDelay time.Duration,
	localDate time.Time,
) (userOutcome, error) {
	result, err := s.dispatcher.Dispatch(ctx, &usecase.DispatchRequest{
		UserID:    userID,
		Content:   content,
		Tokens:    tokens,
		MaxDelay:  maxDelay,
		LocalDate: localDate,
	})
	if err != nil {
		return outcomeSkipped, err
	}
	if result.Skipped || result.Duplicate {
		return outcomeSkipped, nil
	}

	return outcomeProcessed, nil
}
