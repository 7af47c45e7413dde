package restapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"expense_tracker/internal/config"
	"expense_tracker/internal/logger"
	"expense_tracker/pkg/ledger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	httpServer *http.Server
	logger     logger.AppLogger
}

// Dependencies groups what the server needs from the rest of the application.
// Observer and Gatherer are optional.
type Dependencies struct {
	Service  ledger.Ledger
	View     SnapshotProvider
	Observer RequestObserver
	Gatherer prometheus.Gatherer
	Logger   logger.AppLogger
}

// NewServer creates a new instance of the REST API server.
func NewServer(deps Dependencies, cfg *config.Config) (*Server, error) {
	if deps.Logger == nil {
		return nil, errors.New("logger cannot be nil for Server")
	}
	if cfg == nil {
		return nil, errors.New("config cannot be nil for Server")
	}

	h, err := NewHTTPHandler(deps.Service, deps.View, deps.Observer, deps.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize handler: %w", err)
	}

	var metricsHandler http.Handler
	if cfg.Metrics.Enabled && deps.Gatherer != nil {
		metricsHandler = promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})
	}

	limiter := newRateLimiter(cfg.RateLimit, deps.Logger)
	smux := setupRouter(h, limiter, metricsHandler, cfg)

	server := &http.Server{
		Addr:              cfg.Server.Port,
		Handler:           smux,
		ReadTimeout:       time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout:      time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:       time.Duration(cfg.Server.IdleTimeoutSeconds) * time.Second,
		ReadHeaderTimeout: time.Duration(cfg.Server.ReadHeaderTimeoutSeconds) * time.Second,
	}

	return &Server{
		httpServer: server,
		logger:     deps.Logger,
	}, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	s.logger.Info("HTTP server starting", "address", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("HTTP server ListenAndServe error", logger.FieldError, err)
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server...")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("HTTP server shutdown error", logger.FieldError, err)
		return err
	}
	s.logger.Info("HTTP server stopped gracefully.")
	return nil
}

// setupRouter creates a new ServeMux and registers all API handlers.
// Mutating routes go through the rate limiter.
func setupRouter(h *HTTPHandler, limiter *rateLimiter, metricsHandler http.Handler, cfg *config.Config) *http.ServeMux {
	smux := http.NewServeMux()

	smux.HandleFunc("GET /transactions", h.HandleListTransactions)
	smux.Handle("POST /transactions", limiter.wrap(h.HandleAddTransaction))
	smux.Handle("DELETE /transactions/{row}", limiter.wrap(h.HandleUndoTransaction))
	smux.HandleFunc("GET /filter", h.HandleGetFilter)
	smux.Handle("PUT /filter", limiter.wrap(h.HandleSetFilter))
	smux.Handle("POST /filter/apply", limiter.wrap(h.HandleApplyFilter))
	smux.HandleFunc("GET /categories", h.HandleListCategories)

	h.logger.Info("-------------------------------------")
	h.logger.Info("API Server starting", "address", cfg.Server.Port)
	h.logger.Info("Available Endpoints:")
	h.logger.Info("  GET    /transactions")
	h.logger.Info("  POST   /transactions        (Body: {'amount':50,'category':'food'})")
	h.logger.Info("  DELETE /transactions/{row}")
	h.logger.Info("  GET    /filter")
	h.logger.Info("  PUT    /filter              (Body: {'type':'amount|category|none',...})")
	h.logger.Info("  POST   /filter/apply")
	h.logger.Info("  GET    /categories")

	if metricsHandler != nil {
		smux.Handle("GET "+cfg.Metrics.Path, metricsHandler)
		h.logger.Info("  GET    " + cfg.Metrics.Path)
	}
	h.logger.Info("-------------------------------------")

	return smux
}
