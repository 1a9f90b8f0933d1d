package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"khitma/internal/domain/entity"
	"khitma/internal/domain/repository"
	"khitma/internal/domain/schedule"
	"khitma/internal/domain/service"
	"khitma/internal/errors"
	mockRepo "khitma/internal/mocks/repository"
	mockSvc "khitma/internal/mocks/service"
	mockUC "khitma/internal/mocks/usecase"
	"khitma/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type schedulerServiceFixtures struct {
	service     usecase.SchedulerUsecase
	lockRepo    *mockRepo.MockJobLockRepository
	deviceRepo  *mockRepo.MockDeviceRepository
	userRepo    *mockRepo.MockUserRepository
	verses      *mockUC.MockVerseUsecase
	eligibility *mockUC.MockEligibilityUsecase
	dispatcher  *mockUC.MockNotificationDispatcher
}

func createTestSchedulerService(t *testing.T) schedulerServiceFixtures {
	lockRepo := mockRepo.NewMockJobLockRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	verses := mockUC.NewMockVerseUsecase(t)
	eligibility := mockUC.NewMockEligibilityUsecase(t)
	dispatcher := mockUC.NewMockNotificationDispatcher(t)

	service := NewSchedulerService(SchedulerServiceParams{
		Config:      newTestConfig(),
		LockRepo:    lockRepo,
		DeviceRepo:  deviceRepo,
		UserRepo:    userRepo,
		Verses:      verses,
		Eligibility: eligibility,
		Composer:    NewNotificationComposer(),
		Dispatcher:  dispatcher,
		Logger:      newDiscardLogger(),
	})

	return schedulerServiceFixtures{
		service:     service,
		lockRepo:    lockRepo,
		deviceRepo:  deviceRepo,
		userRepo:    userRepo,
		verses:      verses,
		eligibility: eligibility,
		dispatcher:  dispatcher,
	}
}

func (f schedulerServiceFixtures) expectLease(jobName string) {
	f.lockRepo.EXPECT().
		Acquire(mock.Anything, mock.MatchedBy(func(lease *entity.JobLease) bool {
			return lease.JobName == jobName &&
				lease.Owner != "" &&
				lease.ExpiresAt.Sub(lease.AcquiredAt) == 10*time.Minute
		})).
		Return(true, nil)
	f.lockRepo.EXPECT().Release(mock.Anything, jobName, mock.Anything).Return(nil)
}

func timezoneReport(t *testing.T, report *entity.RunReport, timezone string) *entity.TimezoneReport {
	t.Helper()
	for _, tz := range report.Timezones {
		if tz.Timezone == timezone {
			return tz
		}
	}
	require.Failf(t, "timezone missing from report", "%s", timezone)

	return nil
}

func TestSchedulerService_RunJob_LeaseHeld(t *testing.T) {
	fx := createTestSchedulerService(t)

	fx.lockRepo.EXPECT().Acquire(mock.Anything, mock.AnythingOfType("*entity.JobLease")).Return(false, nil)

	report, err := fx.service.RunJob(context.Background(), schedule.JobMidnightVerseAssignment, usecase.RunOptions{})

	require.NoError(t, err)
	assert.True(t, report.Skipped)
	assert.Empty(t, report.Timezones)
}

func TestSchedulerService_RunJob_LeaseError(t *testing.T) {
	fx := createTestSchedulerService(t)

	fx.lockRepo.EXPECT().
		Acquire(mock.Anything, mock.AnythingOfType("*entity.JobLease")).
		Return(false, errors.New("database error"))

	report, err := fx.service.RunJob(context.Background(), schedule.JobMidnightVerseAssignment, usecase.RunOptions{})

	assert.Nil(t, report)
	assert.ErrorContains(t, err, "failed to acquire job lease")
}

func TestSchedulerService_RunJob_UnknownJob(t *testing.T) {
	fx := createTestSchedulerService(t)

	report, err := fx.service.RunJob(context.Background(), "weekly-digest", usecase.RunOptions{})

	assert.Nil(t, report)
	assert.ErrorIs(t, err, schedule.ErrUnknownJob)
}

func TestSchedulerService_RunJob_MidnightAssignment(t *testing.T) {
	fx := createTestSchedulerService(t)
	fx.expectLease(schedule.JobMidnightVerseAssignment)

	// 00:02 in Riyadh, 02:32 in Kolkata.
	now := time.Date(2024, 3, 9, 21, 2, 0, 0, time.UTC)
	ok, failing := uuid.New(), uuid.New()

	fx.deviceRepo.EXPECT().ListTimezones(mock.Anything).Return([]string{"Asia/Riyadh", "Mars/Olympus", "Asia/Kolkata"}, nil)
	fx.deviceRepo.EXPECT().FindUserIDsByTimezone(mock.Anything, "Asia/Riyadh").Return([]uuid.UUID{ok, failing}, nil)
	fx.verses.EXPECT().AssignIfMissing(mock.Anything, ok, utcDate(2024, 3, 10)).Return(&entity.VerseAssignment{}, nil)
	fx.verses.EXPECT().AssignIfMissing(mock.Anything, failing, utcDate(2024, 3, 10)).Return(nil, errors.New("database error"))

	report, err := fx.service.RunJob(context.Background(), schedule.JobMidnightVerseAssignment, usecase.RunOptions{Now: now})

	require.NoError(t, err)
	assert.False(t, report.Skipped)
	assert.NotEmpty(t, report.RunID)
	require.Len(t, report.Timezones, 3)

	riyadh := timezoneReport(t, report, "Asia/Riyadh")
	assert.Equal(t, entity.TimezoneProcessed, riyadh.Status)
	assert.Equal(t, 2, riyadh.Users)
	assert.Equal(t, 1, riyadh.Processed)
	assert.Equal(t, 1, riyadh.Failed)

	assert.Equal(t, entity.TimezoneInvalid, timezoneReport(t, report, "Mars/Olympus").Status)
	assert.Equal(t, entity.TimezoneSkipped, timezoneReport(t, report, "Asia/Kolkata").Status)

	processed, skipped, failed := report.Totals()
	assert.Equal(t, 1, processed)
	assert.Equal(t, 0, skipped)
	assert.Equal(t, 1, failed)
}

func TestSchedulerService_RunJob_NoTimezonesFallsBackToDefault(t *testing.T) {
	fx := createTestSchedulerService(t)
	fx.expectLease(schedule.JobMidnightVerseAssignment)

	fx.deviceRepo.EXPECT().ListTimezones(mock.Anything).Return(nil, nil)

	report, err := fx.service.RunJob(context.Background(), schedule.JobMidnightVerseAssignment, usecase.RunOptions{
		Now: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.Len(t, report.Timezones, 1)
	assert.Equal(t, "UTC", report.Timezones[0].Timezone)
	assert.Equal(t, entity.TimezoneSkipped, report.Timezones[0].Status)
}

func TestSchedulerService_RunJob_NineAmNotifications(t *testing.T) {
	fx := createTestSchedulerService(t)
	fx.expectLease(schedule.JobNineAmNotifications)

	now := time.Date(2024, 3, 10, 9, 3, 0, 0, time.UTC)
	date := utcDate(2024, 3, 10)
	notified, unassigned, deviceless := uuid.New(), uuid.New(), uuid.New()
	users := []uuid.UUID{notified, unassigned, deviceless}
	verse := testVerse()

	fx.eligibility.EXPECT().NineAmEligible(mock.Anything, "UTC", mock.AnythingOfType("time.Time")).Return(users, nil)
	fx.deviceRepo.EXPECT().FindDevicesByUsers(mock.Anything, users).Return([]*entity.DeviceRegistration{
		{UserID: notified, DeviceToken: "token-1", Locale: "ar"},
		{UserID: unassigned, DeviceToken: "token-2", Locale: "en"},
	}, nil)
	fx.verses.EXPECT().AssignedVerse(mock.Anything, notified, date).Return(verse, nil)
	fx.verses.EXPECT().AssignedVerse(mock.Anything, unassigned, date).Return(nil, usecase.ErrNoVerseAssigned)
	fx.verses.EXPECT().AssignedVerse(mock.Anything, deviceless, date).Return(verse, nil)
	fx.dispatcher.EXPECT().
		Dispatch(mock.Anything, mock.MatchedBy(func(req *usecase.DispatchRequest) bool {
			return req.UserID == notified &&
				req.LocalDate.Equal(date) &&
				req.Content.Title == "آية تحفيزية اليوم" &&
				len(req.Tokens) == 1 && req.Tokens[0] == "token-1" &&
				req.MaxDelay == 30*time.Second
		})).
		Return(&usecase.DispatchResult{PushQueued: true}, nil)

	report, err := fx.service.RunJob(context.Background(), schedule.JobNineAmNotifications, usecase.RunOptions{
		Now:       now,
		Timezones: []string{"UTC"},
	})

	require.NoError(t, err)
	require.Len(t, report.Timezones, 1)
	tz := report.Timezones[0]
	assert.Equal(t, entity.TimezoneProcessed, tz.Status)
	assert.Equal(t, 1, tz.Processed)
	assert.Equal(t, 2, tz.Skipped)
	assert.Equal(t, 0, tz.Failed)
}

func TestSchedulerService_RunJob_EveningReminders(t *testing.T) {
	fx := createTestSchedulerService(t)
	fx.expectLease(schedule.JobEveningReminders)

	// 18:00 in Karachi.
	now := time.Date(2024, 3, 10, 13, 0, 0, 0, time.UTC)
	reminded, optedOut, unknown := uuid.New(), uuid.New(), uuid.New()
	users := []uuid.UUID{reminded, optedOut, unknown}

	fx.eligibility.EXPECT().EveningReminderEligible(mock.Anything, "Asia/Karachi", mock.AnythingOfType("time.Time")).Return(users, nil)
	fx.deviceRepo.EXPECT().FindDevicesByUsers(mock.Anything, users).Return([]*entity.DeviceRegistration{
		{UserID: reminded, DeviceToken: "token-1", Locale: "en"},
		{UserID: optedOut, DeviceToken: "token-2", Locale: "en"},
		{UserID: unknown, DeviceToken: "token-3", Locale: "en"},
	}, nil)
	fx.userRepo.EXPECT().FindUsersByIDs(mock.Anything, users).Return([]*entity.User{
		{ID: reminded, Username: "Omar Khalid"},
		{ID: optedOut, Username: "Sara"},
	}, nil)
	fx.dispatcher.EXPECT().
		Dispatch(mock.Anything, mock.MatchedBy(func(req *usecase.DispatchRequest) bool {
			return req.UserID == reminded
		})).
		RunAndReturn(func(_ context.Context, req *usecase.DispatchRequest) (*usecase.DispatchResult, error) {
			assert.Contains(t, req.Content.Body, "Omar!")
			assert.Equal(t, 10*time.Second, req.MaxDelay)

			return &usecase.DispatchResult{PushQueued: true}, nil
		})
	fx.dispatcher.EXPECT().
		Dispatch(mock.Anything, mock.MatchedBy(func(req *usecase.DispatchRequest) bool {
			return req.UserID == optedOut
		})).
		Return(&usecase.DispatchResult{Skipped: true}, nil)

	report, err := fx.service.RunJob(context.Background(), schedule.JobEveningReminders, usecase.RunOptions{
		Now:       now,
		Timezones: []string{"Asia/Karachi"},
	})

	require.NoError(t, err)
	tz := report.Timezones[0]
	assert.Equal(t, entity.TimezoneProcessed, tz.Status)
	assert.Equal(t, 1, tz.Processed)
	assert.Equal(t, 2, tz.Skipped)
}

func TestSchedulerService_RunJob_LoadFailureIsolatedToTimezone(t *testing.T) {
	fx := createTestSchedulerService(t)
	fx.expectLease(schedule.JobNineAmNotifications)

	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	fx.eligibility.EXPECT().NineAmEligible(mock.Anything, "UTC", mock.AnythingOfType("time.Time")).Return(nil, errors.New("database error"))
	fx.eligibility.EXPECT().NineAmEligible(mock.Anything, "Europe/London", mock.AnythingOfType("time.Time")).Return(nil, nil)

	report, err := fx.service.RunJob(context.Background(), schedule.JobNineAmNotifications, usecase.RunOptions{
		Now:       now,
		Timezones: []string{"UTC", "Europe/London"},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.TimezoneFailed, timezoneReport(t, report, "UTC").Status)
	assert.Equal(t, entity.TimezoneProcessed, timezoneReport(t, report, "Europe/London").Status)
}

func TestSchedulerService_RunJob_DryRun(t *testing.T) {
	fx := createTestSchedulerService(t)

	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	fx.deviceRepo.EXPECT().FindUserIDsByTimezone(mock.Anything, "UTC").Return([]uuid.UUID{uuid.New(), uuid.New()}, nil)

	report, err := fx.service.RunJob(context.Background(), schedule.JobMidnightVerseAssignment, usecase.RunOptions{
		Now:       now,
		Timezones: []string{"UTC"},
		DryRun:    true,
	})

	require.NoError(t, err)
	assert.True(t, report.DryRun)
	assert.Equal(t, 2, report.Timezones[0].Users)
	assert.Equal(t, 0, report.Timezones[0].Processed)
}

func TestSchedulerService_RunJob_IgnoreWindow(t *testing.T) {
	fx := createTestSchedulerService(t)
	fx.expectLease(schedule.JobMidnightVerseAssignment)

	now := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	userID := uuid.New()
	fx.deviceRepo.EXPECT().FindUserIDsByTimezone(mock.Anything, "UTC").Return([]uuid.UUID{userID}, nil)
	fx.verses.EXPECT().AssignIfMissing(mock.Anything, userID, utcDate(2024, 3, 10)).Return(&entity.VerseAssignment{}, nil)

	report, err := fx.service.RunJob(context.Background(), schedule.JobMidnightVerseAssignment, usecase.RunOptions{
		Now:          now,
		Timezones:    []string{"UTC"},
		IgnoreWindow: true,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, report.Timezones[0].Processed)
}

func TestSchedulerService_RunJob_OncePerLocalDayAcrossTicks(t *testing.T) {
	lockRepo := mockRepo.NewMockJobLockRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	verses := mockUC.NewMockVerseUsecase(t)
	eligibility := mockUC.NewMockEligibilityUsecase(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	preferenceRepo := mockRepo.NewMockPreferenceRepository(t)
	pushQueue := mockSvc.NewMockPushQueue(t)

	scheduler := NewSchedulerService(SchedulerServiceParams{
		Config:      newTestConfig(),
		LockRepo:    lockRepo,
		DeviceRepo:  deviceRepo,
		UserRepo:    userRepo,
		Verses:      verses,
		Eligibility: eligibility,
		Composer:    NewNotificationComposer(),
		Dispatcher: NewNotificationDispatcher(NotificationDispatcherParams{
			NotificationRepo: notificationRepo,
			PreferenceRepo:   preferenceRepo,
			PushQueue:        pushQueue,
			Logger:           newDiscardLogger(),
		}),
		Logger: newDiscardLogger(),
	})

	userID := uuid.New()
	users := []uuid.UUID{userID}
	date := utcDate(2024, 3, 10)

	lockRepo.EXPECT().Acquire(mock.Anything, mock.AnythingOfType("*entity.JobLease")).Return(true, nil)
	lockRepo.EXPECT().Release(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	eligibility.EXPECT().NineAmEligible(mock.Anything, "UTC", mock.AnythingOfType("time.Time")).Return(users, nil)
	eligibility.EXPECT().EveningReminderEligible(mock.Anything, "UTC", mock.AnythingOfType("time.Time")).Return(users, nil)
	deviceRepo.EXPECT().FindDevicesByUsers(mock.Anything, users).Return([]*entity.DeviceRegistration{
		{UserID: userID, DeviceToken: "token-1", Locale: "en"},
	}, nil)
	userRepo.EXPECT().FindUsersByIDs(mock.Anything, users).Return([]*entity.User{{ID: userID, Username: "Omar"}}, nil)
	verses.EXPECT().AssignedVerse(mock.Anything, userID, date).Return(testVerse(), nil)
	preferenceRepo.EXPECT().FindPreference(mock.Anything, userID).Return(nil, repository.ErrPreferenceNotFound)

	// The unique (user_id, type, dispatch_date) index, kept in memory.
	var mu sync.Mutex
	stored := map[string]bool{}
	notificationRepo.EXPECT().
		CreateDailyNotification(mock.Anything, mock.AnythingOfType("*entity.AppNotification")).
		RunAndReturn(func(_ context.Context, n *entity.AppNotification) (bool, error) {
			mu.Lock()
			defer mu.Unlock()
			key := n.UserID.String() + "|" + string(n.Type) + "|" + n.DispatchDate.Format(time.DateOnly)
			if stored[key] {
				return false, nil
			}
			stored[key] = true

			return true, nil
		})

	var pushed []string
	pushQueue.EXPECT().
		Enqueue(mock.Anything, mock.AnythingOfType("*service.PushJob")).
		RunAndReturn(func(_ context.Context, job *service.PushJob) error {
			mu.Lock()
			defer mu.Unlock()
			pushed = append(pushed, job.NotificationType)

			return nil
		})

	ticks := []struct {
		job  string
		hour int
	}{
		{job: schedule.JobNineAmNotifications, hour: 9},
		{job: schedule.JobEveningReminders, hour: 18},
	}
	for _, tick := range ticks {
		target := time.Date(2024, 3, 10, tick.hour, 0, 1, 0, time.UTC)
		for i, now := range []time.Time{target.Add(-5 * time.Minute), target, target.Add(5 * time.Minute)} {
			report, err := scheduler.RunJob(context.Background(), tick.job, usecase.RunOptions{
				Now:       now,
				Timezones: []string{"UTC"},
			})
			require.NoError(t, err)

			tz := timezoneReport(t, report, "UTC")
			require.Equal(t, entity.TimezoneProcessed, tz.Status, "%s at %s", tick.job, now.Format(time.TimeOnly))
			if i == 0 {
				assert.Equal(t, 1, tz.Processed)
			} else {
				assert.Equal(t, 0, tz.Processed)
				assert.Equal(t, 1, tz.Skipped)
			}
		}
	}

	assert.Equal(t, []string{
		string(entity.NotificationTypeMotivational),
		string(entity.NotificationTypeIndividualReminder),
	}, pushed)
	assert.Len(t, stored, 2)
}
