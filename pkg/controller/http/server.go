package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/epiview/epiview/frontend"
	"github.com/epiview/epiview/pkg/domain/interfaces"
	"github.com/epiview/epiview/pkg/domain/model"
	"github.com/epiview/epiview/pkg/domain/types"
	"github.com/epiview/epiview/pkg/service/render"
	"github.com/epiview/epiview/pkg/utils/async"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router      chi.Router
	dashboardUC interfaces.Dashboard
	page        *render.Page

	// rendered chart PNGs keyed by dataset and chart ID
	cacheMu  sync.RWMutex
	pngCache map[string][]byte
}

// NewServer creates a new HTTP server serving the dashboard page, the
// JSON API, chart images, and Prometheus metrics
func NewServer(ctx context.Context, addr string, dashboardUC interfaces.Dashboard) (*Server, error) {
	initMetrics()

	page, err := render.NewPage()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to prepare page renderer")
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	server := &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router:      router,
		dashboardUC: dashboardUC,
		page:        page,
		pngCache:    make(map[string][]byte),
	}

	router.Get("/health", handleHealth)
	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/dashboard", server.handleDashboardJSON)
		r.Get("/dashboard/charts/{image}", server.handleChartPNG)
	})

	staticFS, err := frontend.StaticHTTPFS()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open embedded static assets")
	}
	router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(staticFS)))

	router.Get("/", server.handleDashboardPage)

	// Warm the chart cache so the first page view does not pay for
	// every PNG render
	async.Dispatch(ctx, server.warmChartCache)

	return server, nil
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "epiview",
	}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
	}
}

// handleDashboardPage serves the rendered dashboard HTML
func (s *Server) handleDashboardPage(w http.ResponseWriter, r *http.Request) {
	d, err := s.dashboardUC.BuildLatest(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	var buf bytes.Buffer
	if err := s.page.Render(&buf, d, "/static/", "/api/dashboard/charts/"); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write dashboard page", "error", err)
	}
}

// handleDashboardJSON serves the dashboard descriptor as JSON
func (s *Server) handleDashboardJSON(w http.ResponseWriter, r *http.Request) {
	d, err := s.dashboardUC.BuildLatest(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(d); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode dashboard", "error", err)
	}
}

// handleChartPNG serves a single chart as a PNG image. The path
// parameter is the chart ID with a ".png" suffix.
func (s *Server) handleChartPNG(w http.ResponseWriter, r *http.Request) {
	image := chi.URLParam(r, "image")
	chartID, ok := strings.CutSuffix(image, ".png")
	if !ok {
		http.NotFound(w, r)
		return
	}

	d, err := s.dashboardUC.BuildLatest(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	desc, err := d.Chart(types.ChartID(chartID))
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	img, err := s.renderChart(d, desc)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(img); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write chart image", "error", err, "chart", desc.ID)
	}
}

// renderChart renders a chart PNG, serving from cache when the same
// dataset and chart were rendered before
func (s *Server) renderChart(d *model.Dashboard, desc *model.ChartDescriptor) ([]byte, error) {
	key := fmt.Sprintf("%s/%s", d.Dataset, desc.ID)

	s.cacheMu.RLock()
	img, hit := s.pngCache[key]
	s.cacheMu.RUnlock()
	if hit {
		return img, nil
	}

	var buf bytes.Buffer
	if err := render.PNG(&buf, desc); err != nil {
		return nil, err
	}
	chartRendersTotal.WithLabelValues(desc.ID.String()).Inc()

	s.cacheMu.Lock()
	s.pngCache[key] = buf.Bytes()
	s.cacheMu.Unlock()

	return buf.Bytes(), nil
}

// warmChartCache pre-renders every chart of the current dashboard
func (s *Server) warmChartCache(ctx context.Context) error {
	d, err := s.dashboardUC.BuildLatest(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to build dashboard for cache warm-up")
	}

	for i := range d.Charts {
		if _, err := s.renderChart(d, &d.Charts[i]); err != nil {
			return err
		}
	}

	ctxlog.From(ctx).Info("Chart cache warmed", "charts", len(d.Charts), "dataset", d.Dataset)
	return nil
}

// writeError writes an error response with a status derived from the
// domain error
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrDatasetNotFound), errors.Is(err, model.ErrChartNotFound):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrSeriesMismatch):
		status = http.StatusUnprocessableEntity
	}

	ctxlog.From(ctx).Error("HTTP handler error", "error", err, "status", status)

	var message string
	if goErr := goerr.Unwrap(err); goErr != nil {
		message = goErr.Error()
	} else {
		message = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	}); err != nil {
		ctxlog.From(ctx).Error("Failed to encode error response", "error", err)
	}
}
