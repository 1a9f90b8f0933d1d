package handler

import (
	"net/http"

	"khitma/internal/delivery/api/response"
	"khitma/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PreferenceHandlerParams holds dependencies for PreferenceHandler, injected by Fx.
type PreferenceHandlerParams struct {
	fx.In

	PreferenceUC usecase.PreferenceUsecase
}

// PreferenceHandler serves notification preferences.
type PreferenceHandler struct {
	preferenceUC usecase.PreferenceUsecase
}

// NewPreferenceHandler is the constructor for PreferenceHandler
func NewPreferenceHandler(params PreferenceHandlerParams) *PreferenceHandler {
	return &PreferenceHandler{preferenceUC: params.PreferenceUC}
}

// UpdatePreferenceRequest is a partial update; absent fields keep their value.
// The hour range is checked by the usecase so the message matches other clients.
type UpdatePreferenceRequest struct {
	AllowGroupNotifications        *bool   `json:"allow_group_notifications"`
	AllowMotivationalNotifications *bool   `json:"allow_motivational_notifications"`
	AllowPersonalReminders         *bool   `json:"allow_personal_reminders"`
	PreferredPersonalReminderHour  *string `json:"preferred_personal_reminder_hour" validate:"omitempty,numeric,max=2"`
}

// GetPreference returns the caller's preferences, defaults when none are stored.
func (h *PreferenceHandler) GetPreference(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	pref, err := h.preferenceUC.GetPreference(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pref)
}

// UpdatePreference applies a partial update.
func (h *PreferenceHandler) UpdatePreference(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	var req UpdatePreferenceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid preference input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	pref, err := h.preferenceUC.UpdatePreference(c.Request().Context(), userID, &usecase.PreferenceUpdate{
		AllowGroupNotifications:        req.AllowGroupNotifications,
		AllowMotivationalNotifications: req.AllowMotivationalNotifications,
		AllowPersonalReminders:         req.AllowPersonalReminders,
		PreferredPersonalReminderHour:  req.PreferredPersonalReminderHour,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pref)
}
