// Package server exposes the summarization engine over HTTP.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/reviewlens/reviewlens/internal/config"
	"github.com/reviewlens/reviewlens/pkg/reviewlens"
)

// Server is the HTTP front for the summarizer.
type Server struct {
	server *http.Server
	router *chi.Mux
}

// New creates the HTTP server. The engine may be nil when
// initialization failed upstream; requests then answer 500, matching
// the startup contract.
func New(cfg config.ServerConfig, engine *reviewlens.Summarizer, log *logrus.Logger) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RealIP)
	router.Use(RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	handler := NewSummarizeHandler(engine, log)

	router.Post("/summarize", handler.Summarize)
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &Server{server: httpServer, router: router}
}

// Handler returns the root handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
