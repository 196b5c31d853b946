// Package web serves the landing page and its JSON API.
package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/ziadkadry99/domain-showcase/internal/catalog"
	"github.com/ziadkadry99/domain-showcase/internal/contact"
	"github.com/ziadkadry99/domain-showcase/internal/logging"
	"github.com/ziadkadry99/domain-showcase/internal/metrics"
)

// Config holds server configuration.
type Config struct {
	Port     int
	PageSize int
	AllowAll bool // allow all CORS origins (dev mode)
}

// Deps are the collaborators the server needs. Metrics and Gatherer may be
// nil, in which case /metrics is not mounted.
type Deps struct {
	Index    *catalog.Index
	Renderer *Renderer
	Inbox    *contact.Inbox
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger
}

// Server is the landing page HTTP server.
type Server struct {
	cfg        Config
	deps       Deps
	logger     *slog.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server with all routes registered.
func New(cfg Config, deps Deps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		cfg:    cfg,
		deps:   deps,
		logger: logger,
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if s.deps.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.deps.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Get("/", s.handlePage)
	r.Get("/go/{name}", s.handleRedirect)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(Assets()))))

	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", s.handleCategories)
		r.Get("/domains", s.handleDomains)
		r.Get("/domains/{name}", s.handleDomain)
		r.Post("/contact", s.handleContact)
	})

	return r
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// Addr is the listen address derived from the configured port.
func (s *Server) Addr() string { return fmt.Sprintf(":%d", s.cfg.Port) }

func (s *Server) newHTTPServer() *http.Server {
	return &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// Run serves on ln until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, ln net.Listener) error {
	s.httpServer = s.newHTTPServer()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("showcase server listening", "addr", ln.Addr().String())
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		return s.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
