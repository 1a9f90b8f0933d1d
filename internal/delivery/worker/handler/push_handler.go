// Package handler serves Pub/Sub push deliveries for the push worker.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"khitma/config"
	deliverycontext "khitma/internal/delivery/context"
	"khitma/internal/domain/constants"
	"khitma/internal/errors"
	"khitma/internal/infra/pubsub"
	"khitma/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// tokenValidator matches idtoken.Validate.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler handles Pub/Sub push messages carrying push jobs.
//
// Status codes drive Pub/Sub redelivery: 2xx acks, anything else retries.
// Jobs that can never succeed are acked so they do not loop forever.
type PushHandler struct {
	verifyPushAuth bool
	validate       tokenValidator
	deliveryUC     usecase.PushDeliveryUsecase
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	DeliveryUC usecase.PushDeliveryUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validate:       idtoken.Validate,
		deliveryUC:     params.DeliveryUC,
		logger:         params.Logger,
	}
}

// HandlePush decodes the envelope and delivers its job.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var envelope pubsub.PushEnvelope
	if err := c.Bind(&envelope); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	job, err := envelope.DecodeJob()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode push job",
			slog.String("message_id", envelope.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	// Message attributes and the job carry the enqueuer's request id; the
	// middleware-assigned id is the fallback.
	requestID := job.RequestID
	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	if requestID == "" {
		requestID = deliverycontext.NewRequestID()
	}
	ctx = deliverycontext.WithRequest(ctx, h.logger, requestID)
	reqLogger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	reqLogger.Info("[Worker] Processing push job",
		slog.String("job_id", job.JobID),
		slog.String("notification_id", job.NotificationID),
		slog.String("notification_type", job.NotificationType),
		slog.Int("tokens", len(job.Tokens)),
	)

	result, err := h.deliveryUC.Deliver(ctx, job)
	if err != nil {
		retryable := !errors.Is(err, usecase.ErrInvalidPushJob)
		reqLogger.Error("[Worker] Failed to deliver push job",
			slog.String("job_id", job.JobID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Push job processed",
		slog.String("job_id", job.JobID),
		slog.Int("success", result.SuccessCount),
		slog.Int("failure", result.FailureCount),
	)

	return c.NoContent(http.StatusOK)
}

// verifyPubSubToken checks the OIDC token Google attaches to authenticated push requests.
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the push endpoint URL configured on the subscription.
	scheme := "https"
	if req.TLS == nil && req.Header.Get(echo.HeaderXForwardedProto) != "https" {
		scheme = "http"
	}
	audience := scheme + "://" + req.Host + req.URL.Path

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
