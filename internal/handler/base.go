package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/deppfellow/simple-webapp/internal/envelope"
	"github.com/deppfellow/simple-webapp/internal/middleware"
	"github.com/deppfellow/simple-webapp/internal/server"
	"github.com/deppfellow/simple-webapp/internal/validation"
)

// Handler is the base handler type that holds shared application
// dependencies. Concrete handlers embed it.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc is a typed endpoint that receives a validated payload.
//
// Req is normally a pointer to a struct implementing validation.Payload.
type HandlerFunc[Req validation.Payload, Res any] func(c echo.Context, req Req) (Res, error)

// ResponseHandler writes a successful result and decorates the New Relic
// transaction for that response type.
type ResponseHandler interface {
	Handle(c echo.Context, result any) error

	// GetOperation names the response type in structured logs.
	GetOperation() string

	AddAttributes(txn *newrelic.Transaction, result any)
}

// JSONResponseHandler writes the result as-is.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result any) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

func (h JSONResponseHandler) AddAttributes(txn *newrelic.Transaction, result any) {
	// http.status_code is already set by EnhanceTracing.
}

// EnvelopeResponseHandler wraps the result in a success envelope.
type EnvelopeResponseHandler struct {
	status  int
	message string
}

func (h EnvelopeResponseHandler) Handle(c echo.Context, result any) error {
	return c.JSON(h.status, envelope.Success(result, h.message))
}

func (h EnvelopeResponseHandler) GetOperation() string {
	return "handler_envelope"
}

func (h EnvelopeResponseHandler) AddAttributes(txn *newrelic.Transaction, result any) {
	if txn != nil {
		txn.AddAttribute("response.envelope", string(envelope.StatusSuccess))
	}
}

// handleRequest is the shared execution pipeline for payload endpoints:
//
//   - binding and validation, counted in the validations metric
//   - structured logging through the request-scoped logger
//   - New Relic attributes and error reporting
//   - phase timings
//   - response writing through responseHandler
func handleRequest[Req validation.Payload](
	h Handler,
	c echo.Context,
	req Req,
	handler func(c echo.Context, req Req) (any, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	route := c.Path()

	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
		responseHandler.AddAttributes(txn, nil)
	}

	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("route", route).
		Logger()

	logger.Debug().Msg("handling request")

	validationStart := time.Now()
	err := validation.BindAndValidate(c, req)
	validationDuration := time.Since(validationStart)

	h.server.Metrics.RecordValidation(route, err == nil)

	if err != nil {
		logger.Warn().
			Err(err).
			Dur("validation_duration", validationDuration).
			Msg("request validation failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("validation.status", "failed")
			txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
		}

		return err
	}

	if txn != nil {
		txn.AddAttribute("validation.status", "success")
		txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
	}

	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		logger.Error().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", time.Since(start)).
			Msg("handler execution failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("handler.status", "error")
			txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		}
		return err
	}

	totalDuration := time.Since(start)

	if txn != nil {
		txn.AddAttribute("handler.status", "success")
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
		responseHandler.AddAttributes(txn, result)
	}

	logger.Debug().
		Dur("handler_duration", handlerDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", totalDuration).
		Msg("request completed successfully")

	return responseHandler.Handle(c, result)
}

// Handle wraps a typed handler into an echo.HandlerFunc that writes the
// result as plain JSON. newReq is called once per request, so payloads
// are never shared between concurrent requests.
//
//	r.POST("/x", handler.Handle(h, fn, http.StatusCreated, func() *MyReq { return &MyReq{} }))
func Handle[Req validation.Payload, Res any](
	h Handler,
	handler HandlerFunc[Req, Res],
	status int,
	newReq func() Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(h, c, newReq(), func(c echo.Context, req Req) (any, error) {
			return handler(c, req)
		}, JSONResponseHandler{status: status})
	}
}

// HandleEnvelope is Handle with the result wrapped in a success envelope
// carrying message.
func HandleEnvelope[Req validation.Payload, Res any](
	h Handler,
	handler HandlerFunc[Req, Res],
	status int,
	message string,
	newReq func() Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(h, c, newReq(), func(c echo.Context, req Req) (any, error) {
			return handler(c, req)
		}, EnvelopeResponseHandler{status: status, message: message})
	}
}
