package entity

import (
	"time"
)

// JobLease is the withoutOverlapping lock held by one scheduler run.
type JobLease struct {
	JobName    string
	Owner      string
	AcquiredAt time.Time
	ExpiresAt  time.Time
}

// TimezoneStatus is the outcome of one timezone within a run.
type TimezoneStatus string

const (
	TimezoneSkipped   TimezoneStatus = "skipped"   // outside the time window
	TimezoneProcessed TimezoneStatus = "processed" // inside the window, users handled
	TimezoneInvalid   TimezoneStatus = "invalid"   // unknown timezone identifier
	TimezoneFailed    TimezoneStatus = "failed"    // user set could not be loaded
)

// TimezoneReport summarizes one timezone of a scheduler run.
type TimezoneReport struct {
	Timezone  string         `json:"timezone"`
	Status    TimezoneStatus `json:"status"`
	LocalTime time.Time      `json:"local_time"`
	Users     int            `json:"users"`
	Processed int            `json:"processed"`
	Skipped   int            `json:"skipped"`
	Failed    int            `json:"failed"`
	Error     string         `json:"error,omitempty"`
}

// RunReport summarizes one scheduler run of a job.
type RunReport struct {
	RunID      string            `json:"run_id"`
	Job        string            `json:"job"`
	DryRun     bool              `json:"dry_run"`
	Skipped    bool              `json:"skipped"` // lease held by another run
	StartedAt  time.Time         `json:"started_at"`
	FinishedAt time.Time         `json:"finished_at"`
	Timezones  []*TimezoneReport `json:"timezones"`
}

// Totals sums processed, skipped and failed users over all timezones.
func (r *RunReport) Totals() (processed, skipped, failed int) {
	for _, tz := range r.Timezones {
		processed += tz.Processed
		skipped += tz.Skipped
		failed += tz.Failed
	}

	return processed, skipped, failed
}
