package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/simple-webapp/internal/middleware"
	"github.com/deppfellow/simple-webapp/internal/server"
	"github.com/deppfellow/simple-webapp/internal/service"
)

// DataHandler serves the fixed data listing.
type DataHandler struct {
	Handler
	catalog *service.CatalogService
}

func NewDataHandler(s *server.Server, catalog *service.CatalogService) *DataHandler {
	return &DataHandler{
		Handler: NewHandler(s),
		catalog: catalog,
	}
}

// ListData writes the listing without an envelope; clients read
// message, timestamp and data at the top level.
func (h *DataHandler) ListData(c echo.Context) error {
	listing, err := h.catalog.List(c.Request().Context())
	if err != nil {
		return err
	}

	middleware.GetLogger(c).Debug().
		Int("items", len(listing.Data)).
		Msg("data listing served")

	return c.JSON(http.StatusOK, listing)
}
