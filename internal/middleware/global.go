package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/deppfellow/simple-webapp/internal/envelope"
	"github.com/deppfellow/simple-webapp/internal/errs"
	"github.com/deppfellow/simple-webapp/internal/server"
	"github.com/deppfellow/simple-webapp/web"
)

// RouteNotFoundMessage is returned for unmatched routes.
const RouteNotFoundMessage = "Route not found"

// GlobalMiddlewares groups the global middleware and the global error
// handler, all sharing the application container.
type GlobalMiddlewares struct {
	server *server.Server
}

func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

// CORS returns Echo's CORS middleware configured from server config.
func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: global.server.Config.Server.AllowedOrigins(),
	})
}

// RequestLogger emits one "API" line per request, with severity picked
// from the final status: 5xx error, 4xx warn, anything else info.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			// When a handler returns an error the response has not been
			// written yet; the status comes from the error instead.
			// https://github.com/labstack/echo/issues/2310#issuecomment-1288196898
			status := v.Status
			if v.Error != nil {
				status = statusCode(c, v.Error)
			}

			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case status >= http.StatusInternalServerError:
				e = logger.Error().Err(v.Error)
			case status >= http.StatusBadRequest:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			if requestID := GetRequestID(c); requestID != "" {
				e = e.Str("request_id", requestID)
			}

			e.
				Dur("latency", v.Latency).
				Int("status", status).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

// Recover turns handler panics into errors handled by GlobalErrorHandler,
// logging the stack through the request logger.
func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.RecoverWithConfig(middleware.RecoverConfig{
		// Hand the error back up the chain so RequestLogger and Metrics
		// record the 500 before the error handler writes it.
		DisableErrorHandler: true,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			GetLogger(c).Error().
				Err(err).
				Str("stack", string(stack)).
				Msg("recovered from panic")
			return err
		},
	})
}

// Secure returns Echo's secure headers middleware.
func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// GlobalErrorHandler is the final error funnel for the whole server.
//
// Every error is translated into an error envelope:
//   - *errs.HTTPError keeps its status, code, message and field errors.
//   - Echo's 404 and 405 become "Route not found" 404s.
//   - Other *echo.HTTPError values keep their status.
//   - Anything else is a generic 500 "Internal Server Error".
//
// Browsers hitting an unmatched non-API route get the HTML 404 page.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	originalErr := err
	httpErr := toHTTPError(err)

	logger := GetLogger(c)
	if httpErr.Status >= http.StatusInternalServerError {
		logger.Error().Stack().
			Err(originalErr).
			Int("status", httpErr.Status).
			Str("error_code", httpErr.Code).
			Msg(httpErr.Message)
	} else {
		logger.Warn().
			Err(originalErr).
			Int("status", httpErr.Status).
			Str("error_code", httpErr.Code).
			Msg(httpErr.Message)
	}

	if c.Response().Committed {
		return
	}

	if httpErr.Status == http.StatusNotFound && wantsHTML(c) {
		if page, pageErr := web.Page(web.PageNotFound); pageErr == nil {
			_ = c.HTMLBlob(http.StatusNotFound, page)
			return
		}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(httpErr.Status)
		return
	}

	_ = c.JSON(httpErr.Status, envelope.FromHTTPError(httpErr))
}

// toHTTPError classifies any error into an *errs.HTTPError.
func toHTTPError(err error) *errs.HTTPError {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		switch echoErr.Code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			return errs.NewNotFoundError(RouteNotFoundMessage, nil)
		}

		if echoErr.Code >= http.StatusInternalServerError {
			return errs.NewInternalServerError()
		}

		message, ok := echoErr.Message.(string)
		if !ok {
			message = http.StatusText(echoErr.Code)
		}
		return &errs.HTTPError{
			Code:    errs.MakeUpperCaseWithUnderscores(http.StatusText(echoErr.Code)),
			Message: message,
			Status:  echoErr.Code,
		}
	}

	return errs.NewInternalServerError()
}

// statusCode returns the status a request ends with, deriving it from err
// when the handler failed before writing a response.
func statusCode(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}
	return toHTTPError(err).Status
}

// wantsHTML reports whether the 404 should be the HTML page: browser
// style requests outside the /api prefix.
func wantsHTML(c echo.Context) bool {
	req := c.Request()
	if strings.HasPrefix(req.URL.Path, "/api/") || req.URL.Path == "/api" {
		return false
	}
	if req.Method != http.MethodGet {
		return false
	}
	accept := req.Header.Get(echo.HeaderAccept)
	return accept == "" || strings.Contains(accept, echo.MIMETextHTML) || strings.Contains(accept, "*/*")
}
