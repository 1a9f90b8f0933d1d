// Package cron runs the timezone-aware jobs on a fixed UTC schedule.
package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"khitma/config"
	"khitma/internal/delivery"
	deliverycontext "khitma/internal/delivery/context"
	"khitma/internal/domain/lifecycle"
	"khitma/internal/domain/schedule"
	"khitma/internal/errors"
	logs "khitma/internal/infra/log"
	"khitma/internal/usecase"
	"khitma/internal/util"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// cronServer triggers every job on each tick; the scheduler decides per
// timezone whether the local window is open.
type cronServer struct {
	cron     *cron.Cron
	spec     string
	jobs     []schedule.Job
	schedUC  usecase.SchedulerUsecase
	logger   *slog.Logger
	baseCtx  context.Context
	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
}

// ServerParams holds dependencies for the cron server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	SchedulerUC usecase.SchedulerUsecase
}

// NewServer builds the cron delivery and registers its shutdown hook.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := newServer(params.Cfg.Scheduler.CronSpec, params.SchedulerUC, params.Logger)
	if err := srv.register(); err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newServer(spec string, schedUC usecase.SchedulerUsecase, logger *slog.Logger) *cronServer {
	cronLogger := logs.NewCronLogger(logger)
	ctx, cancel := context.WithCancel(context.Background())

	return &cronServer{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		spec:    spec,
		jobs:    schedule.Jobs(),
		schedUC: schedUC,
		logger:  logger,
		baseCtx: ctx,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
}

func (s *cronServer) register() error {
	for _, job := range s.jobs {
		if _, err := s.cron.AddFunc(s.spec, func() { s.runJob(job.Name) }); err != nil {
			return errors.Wrapf(err, "invalid cron spec %q for %s", s.spec, job.Name)
		}
	}

	return nil
}

// runJob executes one scheduler run under its own request id.
func (s *cronServer) runJob(jobName string) {
	ctx := deliverycontext.WithRequest(s.baseCtx, s.logger, deliverycontext.NewRequestID())
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	report, err := s.schedUC.RunJob(ctx, jobName, usecase.RunOptions{})
	if err != nil {
		logger.Error("[Cron] job failed", slog.String("job", jobName), slog.Any("error", err))

		return
	}

	processed, skipped, failed := report.Totals()
	logger.Info("[Cron] job finished",
		slog.String("job", jobName),
		slog.String("run_id", report.RunID),
		slog.Bool("lease_skipped", report.Skipped),
		slog.Int("timezones", len(report.Timezones)),
		slog.Int("processed", processed),
		slog.Int("skipped", skipped),
		slog.Int("failed", failed),
		slog.String("took", util.FormatDuration(report.FinishedAt.Sub(report.StartedAt))),
	)
}

// Serve starts the cron loop and blocks until the server is stopped.
func (s *cronServer) Serve(ctx context.Context) error {
	s.logger.Info("[Cron] starting scheduler",
		slog.String("spec", s.spec),
		slog.Int("jobs", len(s.jobs)),
	)
	s.cron.Start()

	select {
	case <-s.done:
	case <-ctx.Done():
	}

	return nil
}

// stop waits for running jobs, cancelling them if the shutdown deadline passes.
func (s *cronServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("[Cron] shutting down scheduler")

	var err error
	s.stopOnce.Do(func() {
		defer close(s.done)
		defer s.cancel()

		select {
		case <-s.cron.Stop().Done():
		case <-shutdownCtx.Done():
			err = errors.Wrap(shutdownCtx.Err(), "cron jobs still running at shutdown")
		}
	})

	return err
}
