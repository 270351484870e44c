// Package httpapi serves the operational HTTP endpoints: liveness, database
// health and aggregate usage counters.
package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Sanyamodi/arogya-sakhi-bot/internal/database"
)

// ServiceName is reported by the health endpoints.
const ServiceName = "Arogya-Sakhi Bot"

const healthCheckTimeout = 3 * time.Second

// Backend is the subset of the store the endpoints need.
type Backend interface {
	Ping(ctx context.Context) error
	Stats(ctx context.Context) (*database.Stats, error)
}

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Error   string `json:"error,omitempty"`
}

// NewRouter builds the chi router for the operational endpoints.
func NewRouter(backend Backend, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &handler{backend: backend, log: logger.With("component", "http_api")}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(h.log))

	r.Get("/health", h.health)
	r.Get("/health/db", h.healthDB)
	r.Get("/stats", h.stats)
	return r
}

type handler struct {
	backend Backend
	log     *slog.Logger
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "UP", Service: ServiceName})
}

func (h *handler) healthDB(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.backend.Ping(ctx); err != nil {
		h.log.WarnContext(ctx, "Database health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "DOWN", Service: ServiceName, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "UP", Service: ServiceName})
}

func (h *handler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.backend.Stats(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "Failed to load stats", "error", err)
		http.Error(w, "failed to load stats", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.DebugContext(r.Context(), "Served request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"request_id", middleware.GetReqID(r.Context()),
				"duration", time.Since(start),
			)
		})
	}
}
