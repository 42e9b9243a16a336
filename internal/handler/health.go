package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/simple-webapp/internal/model"
	"github.com/deppfellow/simple-webapp/internal/server"
)

// StatusHealthy is the only status the health endpoint reports.
const StatusHealthy = "healthy"

// HealthHandler reports liveness for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// Report returns the current health snapshot. Uptime is measured on the
// monotonic clock from server start, so it never decreases.
func (h *HealthHandler) Report() model.HealthStatus {
	return model.HealthStatus{
		Status:    StatusHealthy,
		Timestamp: time.Now().UTC(),
		Uptime:    h.server.Uptime().Seconds(),
		Version:   h.server.Config.Primary.Version,
	}
}

// CheckHealth always answers 200 while the process is serving.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Report())
}
