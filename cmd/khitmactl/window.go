package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"khitma/config"
	"khitma/internal/domain/schedule"

	"github.com/spf13/cobra"
)

const defaultWindowTolerance = 5 * time.Minute

// windowRow is one job's window as seen from a timezone.
type windowRow struct {
	Job        string
	TargetHour int
	Open       bool
}

func windowCmd() *cobra.Command {
	var (
		timezone  string
		at        string
		tolerance time.Duration
	)

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Show the local time of a timezone and which job windows are open",
		RunE: func(cmd *cobra.Command, _ []string) error {
			now, err := parseAt(at)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("tolerance") {
				tolerance = configuredTolerance()
			}

			local, rows, err := windowStatus(timezone, now, tolerance)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "timezone:   %s\n", timezone)
			fmt.Fprintf(out, "local time: %s\n", local.Format(time.RFC3339))
			fmt.Fprintf(out, "local date: %s\n", schedule.LocalDate(local).Format(time.DateOnly))
			fmt.Fprintf(out, "tolerance:  %s\n\n", tolerance)

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "JOB\tTARGET\tOPEN")
			for _, row := range rows {
				fmt.Fprintf(tw, "%s\t%02d:00\t%t\n", row.Job, row.TargetHour, row.Open)
			}

			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&timezone, "timezone", "", "IANA timezone, e.g. Asia/Riyadh")
	cmd.Flags().StringVar(&at, "at", "", "Evaluate as of this RFC3339 instant instead of now")
	cmd.Flags().DurationVar(&tolerance, "tolerance", defaultWindowTolerance, "Window half-width; defaults to scheduler.tolerance")
	_ = cmd.MarkFlagRequired("timezone")

	return cmd
}

// windowStatus evaluates every job's window for timezone at now.
func windowStatus(timezone string, now time.Time, tolerance time.Duration) (time.Time, []windowRow, error) {
	local, err := schedule.LocalNow(timezone, now)
	if err != nil {
		return time.Time{}, nil, err
	}

	jobs := schedule.Jobs()
	rows := make([]windowRow, 0, len(jobs))
	for _, job := range jobs {
		rows = append(rows, windowRow{
			Job:        job.Name,
			TargetHour: job.TargetHour,
			Open:       schedule.WithinWindowAt(local, job.TargetHour, tolerance),
		})
	}

	return local, rows, nil
}

// configuredTolerance reads scheduler.tolerance, falling back to the default
// when no config file is available.
func configuredTolerance() time.Duration {
	cfg, err := config.New()
	if err != nil || cfg.Scheduler == nil || cfg.Scheduler.Tolerance <= 0 {
		return defaultWindowTolerance
	}

	return cfg.Scheduler.Tolerance
}
