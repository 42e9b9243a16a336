package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/simple-webapp/internal/server"
)

// MetricsHandler exposes the Prometheus registry.
type MetricsHandler struct {
	Handler
}

func NewMetricsHandler(s *server.Server) *MetricsHandler {
	return &MetricsHandler{
		Handler: NewHandler(s),
	}
}

// Scrape serves the text exposition format.
func (h *MetricsHandler) Scrape(c echo.Context) error {
	h.server.Metrics.Handler().ServeHTTP(c.Response(), c.Request())
	return nil
}
