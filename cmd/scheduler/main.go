// Command scheduler runs the timezone-aware verse and reminder jobs.
package main

import (
	"context"
	"log/slog"
	"os"

	"khitma/config"
	"khitma/internal/delivery"
	"khitma/internal/delivery/cron"
	logs "khitma/internal/infra/log"
	"khitma/internal/infra/notification"
	"khitma/internal/infra/persistence"
	"khitma/internal/infra/persistence/postgres"
	"khitma/internal/infra/pubsub"
	"khitma/internal/usecase"
	"khitma/internal/usecase/impl"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	_ = godotenv.Load()

	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		postgres.Module,
		fx.Provide(persistence.NewJobLockRepository),
	)
}

func injectService() fx.Option {
	return fx.Options(
		notification.Module,
		pubsub.Module,
		// The inline push provider delivers through this process's gateway.
		fx.Provide(func(uc usecase.PushDeliveryUsecase) pubsub.Deliverer { return uc }),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewVerseService,
			impl.NewEligibilityService,
			impl.NewNotificationComposer,
			impl.NewNotificationDispatcher,
			impl.NewPushDeliveryService,
			impl.NewSchedulerService,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				cron.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
