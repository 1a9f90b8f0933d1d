package pubsub

import (
	"context"
	"log/slog"

	"khitma/config"
	"khitma/internal/domain/constants"
	"khitma/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopQueue drops jobs when push delivery is disabled; inbox entries are still stored.
type noopQueue struct {
	logger *slog.Logger
}

func (q *noopQueue) Enqueue(_ context.Context, job *service.PushJob) error {
	q.logger.Debug("[NoopPubSub] Push delivery disabled, skipping",
		slog.String("notification_id", job.NotificationID),
	)

	return nil
}

func (q *noopQueue) Close() error {
	return nil
}

// QueueParams holds dependencies for PushQueue, injected by Fx
type QueueParams struct {
	fx.In

	Lc        fx.Lifecycle
	Ctx       context.Context
	Config    *config.Config
	Logger    *slog.Logger
	Deliverer Deliverer `optional:"true"`
}

// NewPushQueue creates a PushQueue based on configuration
func NewPushQueue(params QueueParams) (service.PushQueue, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, push delivery disabled")

		return &noopQueue{logger: logger}, nil
	}

	var queue service.PushQueue
	var err error

	switch cfg.Provider {
	case constants.PubSubProviderInline:
		if params.Deliverer == nil {
			return nil, errors.New("inline provider requires a push deliverer in this process")
		}
		logger.Info("Delivering pushes in process")

		queue = NewInlineQueue(params.Deliverer, logger)

	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		queue = NewLocalHTTPQueue(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}

		queue, err = NewGooglePubSubQueue(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing PushQueue")

			return queue.Close()
		},
	})

	return queue, nil
}

// Module provides the push queue FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPushQueue),
)
