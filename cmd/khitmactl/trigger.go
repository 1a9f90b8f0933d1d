package main

import (
	"context"
	"strings"

	"khitma/internal/domain/entity"
	"khitma/internal/domain/schedule"
	"khitma/internal/errors"
	"khitma/internal/infra/notification"
	"khitma/internal/infra/persistence"
	"khitma/internal/infra/persistence/postgres"
	"khitma/internal/infra/pubsub"
	"khitma/internal/usecase"
	"khitma/internal/usecase/impl"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

const targetAll = "all"

func triggerCmd() *cobra.Command {
	var (
		timezones []string
		dryRun    bool
		force     bool
		at        string
	)

	cmd := &cobra.Command{
		Use:       "trigger <assign|notify|remind|all>",
		Short:     "Run a scheduler job now",
		Long:      "Run a scheduler job once. --force treats every timezone as inside its window; --dry-run writes and sends nothing.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(schedule.ActionAssign), string(schedule.ActionNotify), string(schedule.ActionRemind), targetAll},
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := resolveJobs(args[0])
			if err != nil {
				return err
			}

			now, err := parseAt(at)
			if err != nil {
				return err
			}

			opts := usecase.RunOptions{
				Now:          now,
				Timezones:    timezones,
				DryRun:       dryRun,
				IgnoreWindow: force,
			}

			var schedUC usecase.SchedulerUsecase

			return runApp(cmd.Context(), schedulerOptions(), func(ctx context.Context) error {
				reports := make([]*entity.RunReport, 0, len(jobs))
				for _, job := range jobs {
					report, err := schedUC.RunJob(ctx, job.Name, opts)
					if err != nil {
						return errors.Wrapf(err, "job %s", job.Name)
					}
					reports = append(reports, report)
				}

				return printJSON(cmd.OutOrStdout(), reports)
			}, &schedUC)
		},
	}

	cmd.Flags().StringSliceVar(&timezones, "timezone", nil, "Restrict the run to these IANA timezones (repeatable)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Evaluate windows and eligibility without writing or sending")
	cmd.Flags().BoolVar(&force, "force", false, "Ignore the local time window")
	cmd.Flags().StringVar(&at, "at", "", "Evaluate as of this RFC3339 instant instead of now")

	return cmd
}

// resolveJobs maps a CLI target to jobs in local-day order.
func resolveJobs(target string) ([]schedule.Job, error) {
	target = strings.ToLower(strings.TrimSpace(target))
	if target == targetAll {
		return schedule.Jobs(), nil
	}

	job, err := schedule.JobByAction(target)
	if err != nil {
		return nil, err
	}

	return []schedule.Job{job}, nil
}

// schedulerOptions mirrors the scheduler process wiring without the cron delivery.
func schedulerOptions() fx.Option {
	return fx.Options(
		postgres.Module,
		notification.Module,
		pubsub.Module,
		fx.Provide(
			persistence.NewJobLockRepository,
			func(uc usecase.PushDeliveryUsecase) pubsub.Deliverer { return uc },
			impl.NewVerseService,
			impl.NewEligibilityService,
			impl.NewNotificationComposer,
			impl.NewNotificationDispatcher,
			impl.NewPushDeliveryService,
			impl.NewSchedulerService,
		),
	)
}
