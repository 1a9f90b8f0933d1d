package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"khitma/internal/delivery/api/response"
	"khitma/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDeviceRequest represents the request body for registering a device
type RegisterDeviceRequest struct {
	DeviceToken string `json:"device_token" validate:"required,max=4096"`
	Platform    string `json:"platform" validate:"required,oneof=android ios web"`
	Locale      string `json:"locale" validate:"omitempty,max=35"`
	Timezone    string `json:"timezone" validate:"omitempty,iana_tz"`
}

// RegisterDevice registers the token for the caller or refreshes its registration
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid device input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), userID, &usecase.DeviceInfo{
		DeviceToken: req.DeviceToken,
		Platform:    req.Platform,
		Locale:      req.Locale,
		Timezone:    req.Timezone,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}

// GetUserDevices lists the caller's registrations
func (h *DeviceHandler) GetUserDevices(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	devices, err := h.deviceUC.GetUserDevices(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices)
}

// UnregisterDevice removes one of the caller's tokens
func (h *DeviceHandler) UnregisterDevice(c echo.Context) error {
	userID, ok, err := callerID(c)
	if !ok {
		return err
	}

	token, err := url.PathUnescape(c.Param("token"))
	if err != nil || token == "" {
		return response.BadRequest(c, "INVALID_TOKEN_PARAM", "Invalid device token")
	}

	if err := h.deviceUC.UnregisterDevice(c.Request().Context(), userID, token); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Device unregistered successfully"})
}
