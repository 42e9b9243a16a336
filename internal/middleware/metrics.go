package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/simple-webapp/internal/server"
)

// unmatchedRoute labels requests no route matched, keeping the route
// label bounded.
const unmatchedRoute = "unmatched"

// MetricsMiddleware records request counts and latency in Prometheus.
type MetricsMiddleware struct {
	server *server.Server
}

func NewMetricsMiddleware(s *server.Server) *MetricsMiddleware {
	return &MetricsMiddleware{server: s}
}

// Observe records every request after the handler chain returns.
func (m *MetricsMiddleware) Observe() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := statusCode(c, err)

			route := c.Path()
			if route == "" || status == http.StatusNotFound {
				route = unmatchedRoute
			}

			m.server.Metrics.ObserveRequest(c.Request().Method, route, status, time.Since(start))
			return err
		}
	}
}
