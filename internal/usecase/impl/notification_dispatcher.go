package impl

import (
	"context"
	"log/slog"
	"maps"
	"math/rand/v2"
	"time"

	deliverycontext "khitma/internal/delivery/context"
	"khitma/internal/domain/entity"
	"khitma/internal/domain/repository"
	"khitma/internal/domain/service"
	"khitma/internal/errors"
	"khitma/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const minPushDelay = time.Second

type notificationDispatcher struct {
	notificationRepo repository.NotificationRepository
	preferenceRepo   repository.PreferenceRepository
	pushQueue        service.PushQueue
	logger           *slog.Logger
	now              func() time.Time
	jitter           func(n int64) int64
}

// NotificationDispatcherParams holds dependencies for NotificationDispatcher, injected by Fx.
type NotificationDispatcherParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	PreferenceRepo   repository.PreferenceRepository
	PushQueue        service.PushQueue
	Logger           *slog.Logger
}

// NewNotificationDispatcher creates the dispatcher.
func NewNotificationDispatcher(params NotificationDispatcherParams) usecase.NotificationDispatcher {
	return &notificationDispatcher{
		notificationRepo: params.NotificationRepo,
		preferenceRepo:   params.PreferenceRepo,
		pushQueue:        params.PushQueue,
		logger:           params.Logger,
		now:              time.Now,
		jitter:           rand.Int64N,
	}
}

func (d *notificationDispatcher) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, d.logger)
}

// Dispatch stores the inbox entry first and then enqueues one delayed push carrying
// all of the user's tokens. A queue failure never undoes the stored entry. With a
// LocalDate, a second dispatch of the same type for that date stores and sends nothing.
func (d *notificationDispatcher) Dispatch(ctx context.Context, req *usecase.DispatchRequest) (*usecase.DispatchResult, error) {
	allowed, err := d.allows(ctx, req.UserID, req.Content.Category)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return &usecase.DispatchResult{Skipped: true}, nil
	}

	now := d.now()
	notification := &entity.AppNotification{
		ID:        uuid.Must(uuid.NewV7()),
		UserID:    req.UserID,
		Type:      req.Content.Type,
		Title:     req.Content.Title,
		Body:      req.Content.Body,
		Data:      req.Content.Data,
		CreatedAt: now,
	}
	created, err := d.store(ctx, notification, req.LocalDate)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create notification")
	}
	if !created {
		d.log(ctx).Debug("[Dispatcher] Already notified for the local date, skipping",
			slog.String("user_id", req.UserID.String()),
			slog.String("type", string(req.Content.Type)),
			slog.String("local_date", req.LocalDate.Format(time.DateOnly)),
		)

		return &usecase.DispatchResult{Duplicate: true}, nil
	}

	result := &usecase.DispatchResult{Notification: notification}
	if len(req.Tokens) == 0 {
		return result, nil
	}

	data := maps.Clone(req.Content.PushData)
	if data == nil {
		data = map[string]any{}
	}
	data["notification_id"] = notification.ID.String()

	job := &service.PushJob{
		RequestID:        deliverycontext.GetRequestIDFromContext(ctx),
		JobID:            uuid.NewString(),
		NotificationID:   notification.ID.String(),
		UserID:           req.UserID.String(),
		NotificationType: string(req.Content.Type),
		Tokens:           req.Tokens,
		Title:            req.Content.Title,
		Body:             req.Content.Body,
		Data:             data,
		DeliverAfter:     now.Add(d.pushDelay(req.MaxDelay)),
	}

	if err := d.pushQueue.Enqueue(ctx, job); err != nil {
		d.log(ctx).Warn("[Dispatcher] Failed to enqueue push, inbox entry kept",
			slog.String("user_id", req.UserID.String()),
			slog.String("notification_id", notification.ID.String()),
			slog.Any("error", err),
		)
		result.PushError = err

		return result, nil
	}
	result.PushQueued = true

	return result, nil
}

// store writes the inbox entry. Dated entries go through the per-day guard.
func (d *notificationDispatcher) store(ctx context.Context, notification *entity.AppNotification, localDate time.Time) (bool, error) {
	if localDate.IsZero() {
		if err := d.notificationRepo.CreateNotification(ctx, notification); err != nil {
			return false, err
		}

		return true, nil
	}

	notification.DispatchDate = &localDate

	return d.notificationRepo.CreateDailyNotification(ctx, notification)
}

func (d *notificationDispatcher) allows(ctx context.Context, userID uuid.UUID, category entity.NotificationCategory) (bool, error) {
	pref, err := d.preferenceRepo.FindPreference(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPreferenceNotFound) {
			return true, nil
		}

		return false, errors.Wrap(err, "failed to find preference")
	}

	return pref.Allows(category), nil
}

// pushDelay returns a uniformly random delay in [1s, maxDelay], whole seconds.
func (d *notificationDispatcher) pushDelay(maxDelay time.Duration) time.Duration {
	if maxDelay <= minPushDelay {
		return minPushDelay
	}
	seconds := int64(maxDelay / time.Second)

	return time.Duration(1+d.jitter(seconds)) * time.Second
}
