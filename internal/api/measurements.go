package api

import (
	"net/http"

	"github.com/netzero-labs/zonewatch/internal/readings"
)

// MeasurementListResponse wraps the measurement reference table.
type MeasurementListResponse struct {
	Measurements []readings.Measurement `json:"measurements"`
}

// handleListMeasurements returns all measurement types ordered by name,
// including profile-known measurements no zone column observed.
func (s *Server) handleListMeasurements(w http.ResponseWriter, r *http.Request) {
	measurements, err := s.repo.ListMeasurements(r.Context())
	if err != nil {
		s.writeRepoError(w, err)
		return
	}
	if measurements == nil {
		measurements = []readings.Measurement{}
	}
	writeJSON(w, http.StatusOK, MeasurementListResponse{Measurements: measurements})
}
