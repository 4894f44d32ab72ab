// Package api exposes the numeral converter over HTTP.
//
// # Endpoints
//
//	GET /healthz
//	GET /api/v1/convert?number=N
//	GET /api/v1/date?date=DD-MM-YYYY
//	GET /api/v1/layout?number=N|date=D[&scale=&cell_height=&group_width=&spacing=]
//	GET /api/v1/render?number=N|date=D&format=svg|png|pdf|json[&size=&width=&height=&lock=&theme=&bg=&fg=&grid=]
//	GET /api/v1/presets?number=N|date=D[&width=&height=&lock=]
//
// Errors are returned as {"error": {"code": "...", "message": "..."}} with a
// status derived from the error code.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache.NewMemoryCache(512, cache.TTLArtifact), nil, logger)
//	srv := api.New(runner, logger)
//	err := srv.ListenAndServe(ctx, ":8080")
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/mayanum/pkg/pipeline"
)

// Server timeouts.
const (
	ReadTimeout     = 10 * time.Second
	WriteTimeout    = 60 * time.Second
	ShutdownTimeout = 5 * time.Second
)

// Server serves the HTTP API.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New creates a server backed by the given runner.
// A nil runner gets an uncached one; a nil logger logs to the default logger.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}
	s := &Server{runner: runner, logger: logger}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/convert", s.handleConvert)
		r.Get("/date", s.handleDate)
		r.Get("/layout", s.handleLayout)
		r.Get("/render", s.handleRender)
		r.Get("/presets", s.handlePresets)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, notFound(r.URL.Path))
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return ctx.Err()
}
