package handler

import (
	"github.com/deppfellow/simple-webapp/internal/server"
	"github.com/deppfellow/simple-webapp/internal/service"
)

// Handlers groups every HTTP handler so router setup passes one value.
type Handlers struct {
	Health     *HealthHandler
	Data       *DataHandler
	Submission *SubmissionHandler
	Pages      *PagesHandler
	Metrics    *MetricsHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:     NewHealthHandler(s),
		Data:       NewDataHandler(s, services.Catalog),
		Submission: NewSubmissionHandler(s, services.Submission),
		Pages:      NewPagesHandler(s),
		Metrics:    NewMetricsHandler(s),
	}
}
