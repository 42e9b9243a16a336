// Package server defines the core Server struct that composes the app's main dependencies.
//
// It contains the initialization logic to spin up the HTTP server
// and handles graceful shutdowns.
//
// It owns the lifecycle of:
//   - configuration
//   - logger + optional New Relic service wrapper
//   - Prometheus metrics
//   - http.Server
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/deppfellow/simple-webapp/internal/config"
	loggerPkg "github.com/deppfellow/simple-webapp/internal/logger"
	"github.com/deppfellow/simple-webapp/internal/metrics"
)

// Server is the application container that holds shared resources.
//
// It is not the HTTP server itself; it holds the config, the logger(s),
// metrics, the process start time and an internal *http.Server.
type Server struct {
	Config *config.Config
	Logger *zerolog.Logger

	// LoggerService optionally holds the New Relic application instance.
	LoggerService *loggerPkg.LoggerService

	Metrics *metrics.Metrics

	// StartedAt carries a monotonic clock reading, so time.Since(StartedAt)
	// never goes backwards even if the wall clock is adjusted.
	StartedAt time.Time

	httpServer *http.Server
}

// New constructs a Server. It does not start listening; call
// SetupHTTPServer and Start for that.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	return &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
		Metrics:       metrics.New(),
		StartedAt:     time.Now(),
	}, nil
}

// Uptime returns how long the process has been serving.
func (s *Server) Uptime() time.Duration {
	return time.Since(s.StartedAt)
}

// SetupHTTPServer configures the internal net/http server around handler.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:    ":" + s.Config.Server.Port,
		Handler: handler,

		// Config stores seconds.
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start binds the listener and serves until Shutdown is called.
//
// It requires SetupHTTPServer to be called first. http.ErrServerClosed is
// reported as a nil error.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}

	return s.Serve(listener)
}

// Serve accepts connections on listener. Start uses it; tests can hand in
// a listener bound to an ephemeral port.
func (s *Server) Serve(listener net.Listener) error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("addr", listener.Addr().String()).
		Str("env", s.Config.Primary.Env).
		Str("version", s.Config.Primary.Version).
		Msgf("server running at http://localhost:%s", s.Config.Server.Port)

	if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server, waiting for in-flight
// requests until ctx expires, then flushes New Relic data.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown HTTP server: %w", err)
		}
	}

	s.LoggerService.Shutdown()

	return nil
}
