// Package server exposes the rebalancing simulation as a JSON HTTP API.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/etnz/assetflow"
	"github.com/etnz/assetflow/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

// Config holds server configuration
type Config struct {
	Log      zerolog.Logger
	Catalog  *assetflow.Catalog
	Settings *config.Config
}

// Server represents the HTTP server
type Server struct {
	router  *chi.Mux
	server  *http.Server
	log     zerolog.Logger
	catalog *assetflow.Catalog
	cfg     *config.Config
}

// New creates a new HTTP server. The catalog and the settings are shared by
// all requests and must not be modified afterwards.
func New(cfg Config) *Server {
	s := &Server{
		router:  chi.NewRouter(),
		log:     cfg.Log.With().Str("component", "server").Logger(),
		catalog: cfg.Catalog,
		cfg:     cfg.Settings,
	}
	if s.catalog == nil {
		s.catalog = assetflow.DefaultCatalog()
	}
	if s.cfg == nil {
		s.cfg = config.NewDefaultConfig()
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         s.cfg.Address(),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(middleware.Timeout(30 * time.Second))

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition", reportIDHeader},
		MaxAge:         300,
	}))
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Route("/models", func(r chi.Router) {
			r.Get("/", s.handleListModels)
			r.Get("/{name}", s.handleGetModel)
		})
		r.Post("/composition", s.handleComposition)
		r.Post("/compare", s.handleCompare)
		r.Post("/report", s.handleReport)
	})
}

// ServeHTTP lets the server be used as an http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Str("address", s.server.Addr).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
