package handler

import (
	"net/http"
	"strconv"

	"khitma/internal/delivery/api/response"
	"khitma/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	defaultInboxLimit = 50
	maxInboxLimit     = 100
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	InboxUC usecase.InboxUsecase
}

// NotificationHandler serves the in-app inbox.
type NotificationHandler struct {
	inboxUC usecase.InboxUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{inboxUC: params.InboxUC}
}

// MarkReadRequest sets or clears read_at. An empty body marks as read.
type MarkReadRequest struct {
	Read *bool `json:"read"`
}

// ListNotifications returns the caller's inbox, newest first.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	limit := defaultInboxLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxInboxLimit {
			return response.BadRequest(c, "INVALID_LIMIT", "limit must be between 1 and 100")
		}
		limit = parsed
	}

	notifications, err := h.inboxUC.ListNotifications(c.Request().Context(), userID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications)
}

// MarkRead sets or clears read_at on one of the caller's notifications.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	var req MarkReadRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "Invalid read input")
		}
	}
	read := req.Read == nil || *req.Read

	notification, err := h.inboxUC.MarkRead(c.Request().Context(), userID, notificationID, read)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notification)
}

// DeleteNotification removes one of the caller's notifications.
func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	if err := h.inboxUC.DeleteNotification(c.Request().Context(), userID, notificationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Notification deleted successfully"})
}
