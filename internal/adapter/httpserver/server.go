// Package httpserver exposes the dashboard page, the dashboard API, and the
// health/metrics endpoints.
package httpserver

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dereckcolon1-cell/terremoto-app/internal/dashboard"
	"github.com/dereckcolon1-cell/terremoto-app/internal/domain"
	"github.com/dereckcolon1-cell/terremoto-app/internal/observability"
)

//go:embed index.html
var indexHTML []byte

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Server exposes the dashboard over HTTP.
type Server struct {
	httpServer *http.Server
	svc        *dashboard.Service
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewServer creates the HTTP server with the dashboard page, the JSON API,
// and /healthz, /readyz, /metrics routes.
func NewServer(addr string, svc *dashboard.Service, ready ReadinessChecker, metrics *observability.Metrics, logger *slog.Logger) *Server {
	s := &Server{
		svc:     svc,
		metrics: metrics,
		logger:  logger,
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)

	router.Get("/", s.handleIndex)
	router.Get("/api/dashboard", s.handleDashboard)
	router.Get("/healthz", handleHealth)
	router.Get("/readyz", handleReady(ready))
	router.Handle("/metrics", promhttp.Handler())

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML) //nolint:errcheck // static page
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	sel, err := parseSelectors(r)
	if err != nil {
		s.metrics.DashboardRenders.WithLabelValues("bad_request").Inc()
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	d, err := s.svc.Render(r.Context(), sel)
	if err != nil {
		s.logger.Error("dashboard render failed", "error", err,
			"severity", sel.Severity, "window", sel.Window)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "earthquake feed unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, d)
}

// parseSelectors builds the Selectors for one pass from query parameters,
// falling back to the defaults for absent values. Unknown values are a
// bad request, never silently coerced.
func parseSelectors(r *http.Request) (domain.Selectors, error) {
	sel := domain.DefaultSelectors()
	q := r.URL.Query()

	var err error
	if v := q.Get("severity"); v != "" {
		if sel.Severity, err = domain.ParseSeverity(v); err != nil {
			return sel, err
		}
	}
	if v := q.Get("window"); v != "" {
		if sel.Window, err = domain.ParseWindow(v); err != nil {
			return sel, err
		}
	}
	if v := q.Get("zone"); v != "" {
		if sel.Zone, err = domain.ParseZone(v); err != nil {
			return sel, err
		}
	}
	if v := q.Get("map"); v != "" {
		sel.ShowMap = v == "true" || v == "1"
	}
	if v := q.Get("table"); v != "" {
		sel.ShowTable = v == "true" || v == "1"
	}
	if v := q.Get("rows"); v != "" {
		n, convErr := strconv.Atoi(v)
		if convErr != nil {
			return sel, fmt.Errorf("invalid rows %q", v)
		}
		sel.TableRows = domain.ClampTableRows(n)
	}
	return sel, nil
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
