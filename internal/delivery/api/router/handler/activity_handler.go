package handler

import (
	"net/http"

	"khitma/internal/delivery/api/response"
	"khitma/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ActivityHandlerParams holds dependencies for ActivityHandler, injected by Fx.
type ActivityHandlerParams struct {
	fx.In

	ActivityUC usecase.ActivityUsecase
}

// ActivityHandler records opens and readings and serves the streak.
type ActivityHandler struct {
	activityUC usecase.ActivityUsecase
}

// NewActivityHandler is the constructor for ActivityHandler
func NewActivityHandler(params ActivityHandlerParams) *ActivityHandler {
	return &ActivityHandler{activityUC: params.ActivityUC}
}

// Ping marks the caller's local day as opened.
func (h *ActivityHandler) Ping(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	timezone, err := bindTimezone(c)
	if err != nil {
		return response.ValidationError(c, err)
	}

	activity, err := h.activityUC.Ping(c.Request().Context(), userID, timezone)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, activity)
}

// MarkReading marks the caller's local day as read.
func (h *ActivityHandler) MarkReading(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	timezone, err := bindTimezone(c)
	if err != nil {
		return response.ValidationError(c, err)
	}

	activity, err := h.activityUC.MarkReading(c.Request().Context(), userID, timezone)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, activity)
}

// Streak returns the caller's consecutive reading days.
func (h *ActivityHandler) Streak(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	timezone, err := bindTimezone(c)
	if err != nil {
		return response.ValidationError(c, err)
	}

	streak, err := h.activityUC.Streak(c.Request().Context(), userID, timezone)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, streak)
}
