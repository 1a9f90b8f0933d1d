package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"khitma/config"
	deliverycontext "khitma/internal/delivery/context"
	"khitma/internal/domain/entity"
	"khitma/internal/domain/repository"
	"khitma/internal/domain/service"
	"khitma/internal/errors"
	"khitma/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type pushDeliveryService struct {
	gateway       service.PushGateway
	deviceRepo    repository.DeviceRepository
	pushEventRepo repository.PushEventRepository
	maxWait       time.Duration
	logger        *slog.Logger
	sleep         func(ctx context.Context, d time.Duration) error
}

// PushDeliveryServiceParams holds dependencies for PushDeliveryService, injected by Fx.
type PushDeliveryServiceParams struct {
	fx.In

	Config        *config.Config
	Gateway       service.PushGateway
	DeviceRepo    repository.DeviceRepository
	PushEventRepo repository.PushEventRepository
	Logger        *slog.Logger
}

// NewPushDeliveryService creates the push delivery use case run by the push worker.
func NewPushDeliveryService(params PushDeliveryServiceParams) usecase.PushDeliveryUsecase {
	return &pushDeliveryService{
		gateway:       params.Gateway,
		deviceRepo:    params.DeviceRepo,
		pushEventRepo: params.PushEventRepo,
		maxWait:       params.Config.Push.MaxDeliveryWait,
		logger:        params.Logger,
		sleep:         sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

func (s *pushDeliveryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Deliver sends one push job. Errors before the send are returned so the job is
// redelivered; after the send, storage failures are only logged so no device gets
// the same push twice.
func (s *pushDeliveryService) Deliver(ctx context.Context, job *service.PushJob) (*service.PushBatchResult, error) {
	userID, err := uuid.Parse(job.UserID)
	if err != nil {
		return nil, errors.Wrapf(usecase.ErrInvalidPushJob, "user_id %q", job.UserID)
	}
	if len(job.Tokens) == 0 {
		return &service.PushBatchResult{}, nil
	}

	if wait := min(time.Until(job.DeliverAfter), s.maxWait); wait > 0 {
		if err := s.sleep(ctx, wait); err != nil {
			return nil, err
		}
	}

	tokens, err := s.registeredTokens(ctx, userID, job.Tokens)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		s.log(ctx).Info("[Worker] All tokens unregistered since enqueue, dropping job",
			slog.String("job_id", job.JobID),
		)

		return &service.PushBatchResult{}, nil
	}

	data := service.FlattenData(job.Data)
	result, sendErr := s.gateway.SendToTokens(ctx, tokens, &service.PushMessage{
		Title: job.Title,
		Body:  job.Body,
		Data:  data,
	})
	if sendErr != nil {
		s.log(ctx).Error("[Worker] Push gateway failed",
			slog.String("job_id", job.JobID),
			slog.Int("tokens", len(tokens)),
			slog.Any("error", sendErr),
		)
		result = &service.PushBatchResult{FailureCount: len(tokens)}
		for _, token := range tokens {
			result.Failures = append(result.Failures, service.TokenFailure{Token: token, Err: sendErr})
		}
	}

	s.recordEvents(ctx, job, userID, tokens, data, result)
	s.removeInvalidTokens(ctx, result.InvalidTokens())

	s.log(ctx).Info("[Worker] Push job delivered",
		slog.String("job_id", job.JobID),
		slog.String("notification_id", job.NotificationID),
		slog.Int("success", result.SuccessCount),
		slog.Int("failure", result.FailureCount),
	)

	return result, nil
}

// registeredTokens drops tokens the user unregistered after the job was queued.
func (s *pushDeliveryService) registeredTokens(ctx context.Context, userID uuid.UUID, tokens []string) ([]string, error) {
	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices")
	}

	current := entity.Tokens(devices)

	return slices.DeleteFunc(slices.Clone(tokens), func(token string) bool {
		return !slices.Contains(current, token)
	}), nil
}

func (s *pushDeliveryService) recordEvents(
	ctx context.Context,
	job *service.PushJob,
	userID uuid.UUID,
	tokens []string,
	data map[string]string,
	result *service.PushBatchResult,
) {
	failures := make(map[string]error, len(result.Failures))
	for _, f := range result.Failures {
		failures[f.Token] = f.Err
	}

	var notificationID *uuid.UUID
	if id, err := uuid.Parse(job.NotificationID); err == nil {
		notificationID = &id
	}

	payload := map[string]any{"title": job.Title, "body": job.Body, "data": data}
	now := time.Now()
	events := make([]*entity.PushEvent, 0, len(tokens))
	for _, token := range tokens {
		event := &entity.PushEvent{
			ID:               uuid.Must(uuid.NewV7()),
			UserID:           &userID,
			NotificationID:   notificationID,
			DeviceToken:      token,
			NotificationType: job.NotificationType,
			Event:            entity.PushEventSent,
			Payload:          payload,
			CreatedAt:        now,
		}
		if err, failed := failures[token]; failed {
			event.Event = entity.PushEventError
			if err != nil {
				event.ErrorMessage = err.Error()
			}
		}
		events = append(events, event)
	}

	if err := s.pushEventRepo.BatchCreatePushEvents(ctx, events); err != nil {
		s.log(ctx).Error("[Worker] Failed to record push events", slog.Any("error", err))
	}
}

func (s *pushDeliveryService) removeInvalidTokens(ctx context.Context, tokens []string) {
	if len(tokens) == 0 {
		return
	}

	removed, err := s.deviceRepo.DeleteDevicesByTokens(ctx, tokens)
	if err != nil {
		s.log(ctx).Warn("[Worker] Failed to delete invalid tokens", slog.Any("error", err))

		return
	}
	s.log(ctx).Info("[Worker] Removed invalid tokens", slog.Int64("removed", removed))
}
