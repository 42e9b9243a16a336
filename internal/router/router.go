// Package router builds the Echo instance.
//
// It registers the middleware chain and maps routes to their handlers:
// system routes (health, metrics), the JSON API and the site pages.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/simple-webapp/internal/handler"
	"github.com/deppfellow/simple-webapp/internal/middleware"
	"github.com/deppfellow/simple-webapp/internal/server"
)

// NewRouter wires middleware and routes.
//
// Middleware order, outermost first:
//  1. RequestID so every later layer can correlate
//  2. New Relic transaction, then its enrichment
//  3. ContextEnhancer for the request-scoped logger
//  4. CORS and secure headers
//  5. RequestLogger and Metrics, which see the final error
//  6. Recover, innermost, so panics flow back out as errors
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.Global.RequestLogger(),
		middlewares.Metrics.Observe(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)
	registerAPIRoutes(router, h)
	registerPageRoutes(router, h)

	return router
}
