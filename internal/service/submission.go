package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deppfellow/simple-webapp/internal/model"
	"github.com/deppfellow/simple-webapp/internal/server"
)

// SubmissionMessage is the success message of POST /api/submit.
const SubmissionMessage = "Data received successfully."

// SubmissionService accepts contact form submissions. Nothing is stored:
// the normalized submission is logged and echoed back.
type SubmissionService struct {
	server *server.Server
}

func NewSubmissionService(s *server.Server) *SubmissionService {
	return &SubmissionService{server: s}
}

// Submit records a validated request and returns the echo payload.
func (svc *SubmissionService) Submit(ctx context.Context, req *model.SubmitRequest) (model.Submission, error) {
	submission := req.Submission()

	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("operation", "submit").
		Str("name", submission.Name).
		Str("email", submission.Email).
		Int("message_length", len(submission.Message)).
		Msg("submission received")

	return submission, nil
}
