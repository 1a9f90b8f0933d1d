// Command khitmactl is the operator CLI for the scheduler and the verse catalog.
//
// Usage:
//
//	khitmactl trigger notify --timezone Asia/Riyadh --dry-run
//	khitmactl trigger all --force --at 2024-03-10T06:00:00Z
//	khitmactl window --timezone Europe/Istanbul
//	khitmactl verses import --source file://./data --key verses.json
package main

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"khitma/config"
	"khitma/internal/errors"
	logs "khitma/internal/infra/log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "khitmactl",
		Short:         "Operate the Khitma notification scheduler",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(triggerCmd())
	root.AddCommand(windowCmd())
	root.AddCommand(versesCmd())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := root.ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}

// runApp builds the fx graph for a command, populates targets, and runs fn
// between the app's start and stop hooks.
func runApp(ctx context.Context, options fx.Option, fn func(ctx context.Context) error, targets ...any) error {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			func() context.Context { return ctx },
		),
		options,
		fx.Populate(targets...),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}

	runErr := fn(ctx)

	stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
	defer cancel()

	return errors.Join(runErr, app.Stop(stopCtx))
}

// parseAt reads an --at flag; empty means now.
func parseAt(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}

	at, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "--at must be RFC3339, got %q", raw)
	}

	return at, nil
}

func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return errors.WithStack(encoder.Encode(v))
}
