package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/simple-webapp/internal/handler"
	"github.com/deppfellow/simple-webapp/internal/service"
)

func registerAPIRoutes(r *echo.Echo, h *handler.Handlers) {
	api := r.Group("/api")

	api.GET("/data", h.Data.ListData)

	api.POST("/submit", handler.HandleEnvelope(
		h.Submission.Handler,
		h.Submission.Submit,
		http.StatusOK,
		service.SubmissionMessage,
		handler.NewSubmitRequest,
	))
}
