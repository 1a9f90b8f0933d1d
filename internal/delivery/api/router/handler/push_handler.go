package handler

import (
	"net/http"

	"khitma/internal/delivery/api/response"
	"khitma/internal/domain/entity"
	"khitma/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PushHandlerParams holds dependencies for PushHandler, injected by Fx.
type PushHandlerParams struct {
	fx.In

	TrackingUC usecase.PushTrackingUsecase
}

// PushHandler records client reports about delivered pushes.
type PushHandler struct {
	trackingUC usecase.PushTrackingUsecase
}

// NewPushHandler is the constructor for PushHandler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	return &PushHandler{trackingUC: params.TrackingUC}
}

// PushEventRequest is what the client saw of a push.
type PushEventRequest struct {
	DeviceToken      string         `json:"device_token" validate:"max=4096"`
	NotificationType string         `json:"notification_type" validate:"max=64"`
	Title            string         `json:"title" validate:"max=512"`
	Body             string         `json:"body" validate:"max=4096"`
	Data             map[string]any `json:"data"`
}

// Received records that a push reached the device.
func (h *PushHandler) Received(c echo.Context) error {
	return h.record(c, entity.PushEventReceived)
}

// Opened records that the user opened a push.
func (h *PushHandler) Opened(c echo.Context) error {
	return h.record(c, entity.PushEventOpened)
}

func (h *PushHandler) record(c echo.Context, kind string) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	var req PushEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid push event input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	event := &usecase.PushTrackingEvent{
		UserID:           userID,
		DeviceToken:      req.DeviceToken,
		NotificationType: req.NotificationType,
		Title:            req.Title,
		Body:             req.Body,
		Data:             req.Data,
	}

	ctx := c.Request().Context()
	var pushEvent *entity.PushEvent
	if kind == entity.PushEventOpened {
		pushEvent, err = h.trackingUC.RecordOpened(ctx, event)
	} else {
		pushEvent, err = h.trackingUC.RecordReceived(ctx, event)
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, pushEvent)
}
