// Package service contains the business logic.
//
// It sits behind the handler layer: it receives validated payloads,
// performs the (deliberately small) business operations and returns
// the values the handlers wrap in response envelopes.
package service

import (
	"github.com/deppfellow/simple-webapp/internal/server"
)

// Services groups every service so router setup passes a single value.
type Services struct {
	Submission *SubmissionService
	Catalog    *CatalogService
}

// NewServices constructs the service container.
func NewServices(s *server.Server) (*Services, error) {
	return &Services{
		Submission: NewSubmissionService(s),
		Catalog:    NewCatalogService(s),
	}, nil
}
