// Package server hosts the sitemap, the header fragment API and a minimal
// page shell behind a chi router.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/hailey21/notion-blog/internal/config"
	"github.com/hailey21/notion-blog/internal/header"
	"github.com/hailey21/notion-blog/internal/logging"
	"github.com/hailey21/notion-blog/internal/sitedata"
	"github.com/hailey21/notion-blog/internal/sitemap"
)

// Server serves one site.
type Server struct {
	cfg        *config.Config
	provider   sitedata.Provider
	header     *header.Renderer
	sitemap    *sitemap.Handler
	log        *logrus.Entry
	router     chi.Router
	httpServer *http.Server
}

// New creates a server for cfg reading site data from provider.
func New(cfg *config.Config, provider sitedata.Provider) *Server {
	log := logging.NewLogger("server")
	s := &Server{
		cfg:      cfg,
		provider: provider,
		header:   header.NewRenderer(cfg),
		sitemap: sitemap.NewHandler(provider,
			sitemap.NewGenerator(cfg.Host, cfg.Sitemap.Exclude),
			logging.NewLogger("sitemap")),
		log: log,
	}
	s.router = s.buildRouter()
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*", s.cfg.Host},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.Server.AllowAllOrigins {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	s.sitemap.RegisterRoutes(r)

	r.Get("/assets/header.css", s.handleAsset("text/css; charset=utf-8", header.CSS()))
	r.Get("/assets/header.js", s.handleAsset("application/javascript; charset=utf-8", header.JS()))

	r.Get("/api/header/{pageID}", s.handleHeaderFragment)

	r.Get("/", s.handlePage)
	r.Get("/*", s.handlePage)

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Start listens on the configured port until Shutdown is called. It returns
// nil once the server has been shut down.
func (s *Server) Start() error {
	s.log.WithField("addr", s.httpServer.Addr).Info("notionblog server listening")
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server. Called before Start, it makes
// Start return immediately.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleAsset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Write([]byte(body))
	}
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}
