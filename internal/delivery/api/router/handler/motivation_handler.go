package handler

import (
	"net/http"
	"time"

	"khitma/internal/delivery/api/response"
	"khitma/internal/domain/entity"
	"khitma/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MotivationHandlerParams holds dependencies for MotivationHandler, injected by Fx.
type MotivationHandlerParams struct {
	fx.In

	ActivityUC usecase.ActivityUsecase
	VerseUC    usecase.VerseUsecase
}

// MotivationHandler serves the daily verse.
type MotivationHandler struct {
	activityUC usecase.ActivityUsecase
	verseUC    usecase.VerseUsecase
}

// NewMotivationHandler is the constructor for MotivationHandler
func NewMotivationHandler(params MotivationHandlerParams) *MotivationHandler {
	return &MotivationHandler{
		activityUC: params.ActivityUC,
		verseUC:    params.VerseUC,
	}
}

// TodayResponse is the verse of the caller's local day.
type TodayResponse struct {
	Date  string        `json:"date"`
	Verse *entity.Verse `json:"verse"`
}

// Today returns today's verse, assigning one when the scheduler has not yet.
func (h *MotivationHandler) Today(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	timezone, err := bindTimezone(c)
	if err != nil {
		return response.ValidationError(c, err)
	}

	ctx := c.Request().Context()
	_, localDate, err := h.activityUC.LocalToday(ctx, userID, timezone)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	verse, err := h.verseUC.TodayVerse(ctx, userID, localDate)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, TodayResponse{
		Date:  localDate.Format(time.DateOnly),
		Verse: verse,
	})
}
