package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/simple-webapp/internal/server"
	"github.com/deppfellow/simple-webapp/web"
)

// PagesHandler serves the embedded HTML pages.
type PagesHandler struct {
	Handler
}

func NewPagesHandler(s *server.Server) *PagesHandler {
	return &PagesHandler{
		Handler: NewHandler(s),
	}
}

// Page returns a handler for the named page under web/views.
//
// Cache-Control is "no-cache" so a redeploy is picked up immediately.
func (h *PagesHandler) Page(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		page, err := web.Page(name)
		if err != nil {
			return fmt.Errorf("failed to read page %q: %w", name, err)
		}

		c.Response().Header().Set("Cache-Control", "no-cache")

		if err := c.HTMLBlob(http.StatusOK, page); err != nil {
			return fmt.Errorf("failed to write HTML response: %w", err)
		}
		return nil
	}
}
