package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/simple-webapp/internal/model"
	"github.com/deppfellow/simple-webapp/internal/server"
	"github.com/deppfellow/simple-webapp/internal/service"
)

// SubmissionHandler accepts the contact form.
type SubmissionHandler struct {
	Handler
	submissions *service.SubmissionService
}

func NewSubmissionHandler(s *server.Server, submissions *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{
		Handler:     NewHandler(s),
		submissions: submissions,
	}
}

// NewSubmitRequest allocates a fresh payload per request.
func NewSubmitRequest() *model.SubmitRequest {
	return &model.SubmitRequest{}
}

// Submit runs after the payload has been bound, normalized and validated.
func (h *SubmissionHandler) Submit(c echo.Context, req *model.SubmitRequest) (model.Submission, error) {
	return h.submissions.Submit(c.Request().Context(), req)
}
