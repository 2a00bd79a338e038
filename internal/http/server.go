package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/davidbz/cinematch/internal/config"
	"github.com/davidbz/cinematch/internal/http/middleware"
	"github.com/davidbz/cinematch/internal/observability"
)

// Server represents the HTTP server.
type Server struct {
	config config.ServerConfig
	srv    *http.Server
}

// NewServer creates a new HTTP server.
func NewServer(
	cfg *config.ServerConfig,
	handler *Handler,
	middlewares middleware.Middleware,
) *Server {
	return &Server{
		config: *cfg,
		srv: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      NewRouter(handler, middlewares),
			ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
			WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		},
	}
}

// NewRouter registers every route on a fresh mux and wraps it in middlewares.
func NewRouter(handler *Handler, middlewares middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/movies/search", handler.HandleSearch)
	mux.HandleFunc("GET /api/movies/{id}", handler.HandleMovie)
	mux.HandleFunc("POST /api/movies/recommendations", handler.HandleRecommend)
	mux.HandleFunc("GET /health", handler.HandleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	if middlewares == nil {
		return mux
	}
	return middlewares(mux)
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	ctx := context.Background()
	observability.FromContext(ctx).Info("starting HTTP server", observability.Int("port", s.config.Port))

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	observability.FromContext(ctx).Info("shutting down HTTP server")

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
