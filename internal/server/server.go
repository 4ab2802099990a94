// Package server exposes the REST API for parsing reports and
// generating notes.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/kingvictorvector/portfolio-note-generator/internal/app"
	"github.com/kingvictorvector/portfolio-note-generator/internal/common"
)

// Server wraps the HTTP server and application reference.
type Server struct {
	app           *app.App
	server        *http.Server
	logger        *common.Logger
	uploadLimiter *rate.Limiter
}

// NewServer creates a new HTTP REST API server.
func NewServer(a *app.App) *Server {
	uploadRate := a.Config.Upload.RatePerSecond
	if uploadRate <= 0 {
		uploadRate = 1
	}
	burst := a.Config.Upload.Burst
	if burst <= 0 {
		burst = 1
	}

	s := &Server{
		app:           a,
		logger:        a.Logger,
		uploadLimiter: rate.NewLimiter(rate.Limit(uploadRate), burst),
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	handler := applyMiddleware(mux, a.Logger)

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", a.Config.Server.Host, a.Config.Server.Port),
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the HTTP handler for testing.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server (blocking).
func (s *Server) Start() error {
	s.logger.Info().
		Str("addr", s.server.Addr).
		Msg("Starting REST API server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
