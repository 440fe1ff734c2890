package handler

import (
	"net/http"
	"time"

	"storefront/config"

	"github.com/labstack/echo/v4"
)

// HealthHandler answers liveness probes.
type HealthHandler struct {
	serviceName string
}

// NewHealthHandler is the constructor for HealthHandler, injected by Fx.
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{serviceName: cfg.Env.ServiceName}
}

// Check reports the service as healthy.
func (h *HealthHandler) Check(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   h.serviceName,
	})
}
