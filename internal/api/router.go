package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// buildRouter creates the HTTP router with all routes and middleware.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.corsMiddleware)

	// API v1 routes. Everything is read-only; the store is replaced
	// wholesale by ingestion, never mutated through the API.
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Get("/zones", s.handleListZones)
		r.Get("/measurements", s.handleListMeasurements)

		// Outdoor variable series
		r.Get("/outdoor/{variable}", s.handleOutdoorSeries)

		// Per-zone series, statistics, and outdoor comparison
		r.Route("/zones/{zone}", func(r chi.Router) {
			r.Get("/series/{measurement}", s.handleZoneSeries)
			r.Get("/stats/{measurement}", s.handleZoneStats)
			r.Get("/compare/{measurement}", s.handleZoneCompare)
		})
	})

	return r
}

// handleHealth returns the server health status, including a store probe
// when the server was wired with one.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	storeStatus := "unknown"
	if s.store != nil {
		if err := s.store.HealthCheck(r.Context()); err != nil {
			s.logger.Error("store health check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{
				"status":  "degraded",
				"store":   "unavailable",
				"version": s.version,
			})
			return
		}
		storeStatus = "ok"
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"store":   storeStatus,
		"version": s.version,
	})
}
