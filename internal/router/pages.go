package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/simple-webapp/internal/handler"
	"github.com/deppfellow/simple-webapp/web"
)

// registerPageRoutes serves the HTML pages and, under the site root, the
// embedded css and js assets. Paths that match nothing fall through to
// the global error handler as 404s.
func registerPageRoutes(r *echo.Echo, h *handler.Handlers) {
	r.StaticFS("/", web.Public())

	r.GET("/", h.Pages.Page(web.PageIndex))
	r.GET("/about", h.Pages.Page(web.PageAbout))
}
