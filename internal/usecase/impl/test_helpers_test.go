package impl

import (
	"io"
	"log/slog"
	"time"

	"khitma/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Scheduler: &config.SchedulerConfig{
			Tolerance:            5 * time.Minute,
			LockTTL:              10 * time.Minute,
			DefaultTimezone:      "UTC",
			TimezoneConcurrency:  2,
			UserConcurrency:      2,
			VerseMaxPushDelay:    30 * time.Second,
			ReminderMaxPushDelay: 10 * time.Second,
		},
		Push: &config.PushConfig{
			RateLimit:       100,
			Burst:           10,
			MaxDeliveryWait: time.Minute,
		},
	}
}

// utcDate returns 00:00 UTC of the given civil date.
func utcDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
