package notification

import (
	"context"
	"log/slog"

	"khitma/config"
	"khitma/internal/domain/service"

	"go.uber.org/fx"
)

// GatewayParams holds dependencies for the push gateway, injected by Fx.
type GatewayParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushGateway builds the configured providers behind one routing gateway.
// Both providers share one rate limiter so the configured rate is a process total.
func NewPushGateway(params GatewayParams) (service.PushGateway, error) {
	cfg := params.Config
	limiter := NewLimiter(cfg.Push.RateLimit, cfg.Push.Burst)

	var fcmGateway, expoGateway service.PushGateway
	if cfg.Firebase != nil && (cfg.Firebase.CredentialsPath != "" || cfg.Firebase.ProjectID != "") {
		gateway, err := NewFirebaseGateway(params.Ctx, cfg.Firebase.CredentialsPath, limiter, params.Logger)
		if err != nil {
			return nil, err
		}
		fcmGateway = gateway
	}

	if cfg.Expo != nil && cfg.Expo.Enabled {
		expoGateway = NewExpoGateway(cfg.Expo.Host, cfg.Expo.AccessToken, limiter, params.Logger)
	}

	if fcmGateway == nil && expoGateway == nil {
		params.Logger.Warn("[Push] no push provider configured, pushes will be recorded as errors")
	}

	params.Logger.Info("[Push] gateway ready",
		slog.Bool("fcm", fcmGateway != nil),
		slog.Bool("expo", expoGateway != nil),
		slog.Float64("rate_limit", cfg.Push.RateLimit),
	)

	return NewRoutingGateway(fcmGateway, expoGateway), nil
}

// Module provides the push gateway FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPushGateway),
)
