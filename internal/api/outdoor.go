package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/netzero-labs/zonewatch/internal/readings"
)

// OutdoorSeriesResponse carries a raw series for one outdoor variable.
type OutdoorSeriesResponse struct {
	Variable string           `json:"variable"`
	Points   []readings.Point `json:"points"`
}

// OutdoorDailyResponse carries a daily-resampled series for one outdoor
// variable.
type OutdoorDailyResponse struct {
	Variable string                `json:"variable"`
	Resample string                `json:"resample"`
	Points   []readings.DailyPoint `json:"points"`
}

// handleOutdoorSeries returns the series for one outdoor variable. With
// ?resample=daily the response carries per-day means instead of raw
// readings. Rows where the variable is NULL never appear.
func (s *Server) handleOutdoorSeries(w http.ResponseWriter, r *http.Request) {
	variable := chi.URLParam(r, "variable")

	resample := r.URL.Query().Get("resample")
	switch resample {
	case "":
		points, err := s.repo.OutdoorSeries(r.Context(), variable)
		if err != nil {
			s.writeRepoError(w, err)
			return
		}
		if points == nil {
			points = []readings.Point{}
		}
		writeJSON(w, http.StatusOK, OutdoorSeriesResponse{
			Variable: variable,
			Points:   points,
		})

	case "daily":
		points, err := s.repo.OutdoorDailyMeans(r.Context(), variable)
		if err != nil {
			s.writeRepoError(w, err)
			return
		}
		if points == nil {
			points = []readings.DailyPoint{}
		}
		writeJSON(w, http.StatusOK, OutdoorDailyResponse{
			Variable: variable,
			Resample: "daily",
			Points:   points,
		})

	default:
		writeBadRequest(w, "resample must be omitted or \"daily\"")
	}
}
