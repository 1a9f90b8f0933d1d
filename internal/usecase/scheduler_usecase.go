package usecase

import (
	"context"
	"time"

	"khitma/internal/domain/entity"
)

// RunOptions adjusts a scheduler run. The zero value is a normal cron run.
type RunOptions struct {
	// Now overrides the clock; zero means time.Now.
	Now time.Time

	// Timezones restricts the run; empty means every device timezone.
	Timezones []string

	// DryRun evaluates windows and eligibility without writing or sending.
	DryRun bool

	// IgnoreWindow treats every timezone as inside its window.
	IgnoreWindow bool
}

// SchedulerUsecase runs the timezone-aware jobs.
type SchedulerUsecase interface {
	RunJob(ctx context.Context, jobName string, opts RunOptions) (*entity.RunReport, error)
}
