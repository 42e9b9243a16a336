package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/simple-webapp/internal/handler"
)

// registerSystemRoutes registers endpoints used by monitors rather than
// by the site itself.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/health", h.Health.CheckHealth)
	r.GET("/metrics", h.Metrics.Scrape)
}
