package handler

import (
	"context"
	"net/http"
	"time"

	"khitma/internal/delivery/api/response"
	"khitma/internal/infra/persistence/postgres"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	Check postgres.HealthCheck `optional:"true"`
}

// HealthHandler answers liveness probes.
type HealthHandler struct {
	check postgres.HealthCheck
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{check: params.Check}
}

// Health reports "ok", or 503 when the database does not answer.
func (h *HealthHandler) Health(c echo.Context) error {
	if h.check != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
		defer cancel()

		if err := h.check(ctx); err != nil {
			return response.Error(c, http.StatusServiceUnavailable, "UNHEALTHY", "database unavailable", nil)
		}
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
