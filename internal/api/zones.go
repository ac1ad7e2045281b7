package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/netzero-labs/zonewatch/internal/readings"
)

// ZoneListResponse wraps the zone reference table.
type ZoneListResponse struct {
	Zones []readings.Zone `json:"zones"`
}

// ZoneSeriesResponse carries a raw series for one zone and measurement.
type ZoneSeriesResponse struct {
	Zone        string           `json:"zone"`
	Measurement string           `json:"measurement"`
	Points      []readings.Point `json:"points"`
}

// ZoneDailyResponse carries a daily-resampled series for one zone and
// measurement.
type ZoneDailyResponse struct {
	Zone        string                `json:"zone"`
	Measurement string                `json:"measurement"`
	Resample    string                `json:"resample"`
	Points      []readings.DailyPoint `json:"points"`
}

// ZoneStatsResponse carries summary statistics for one zone and measurement.
type ZoneStatsResponse struct {
	Zone        string  `json:"zone"`
	Measurement string  `json:"measurement"`
	Mean        float64 `json:"mean"`
	Max         float64 `json:"max"`
	Count       int64   `json:"count"`
}

// ZoneCompareResponse carries the joined daily means of a zone measurement
// and an outdoor variable.
type ZoneCompareResponse struct {
	Zone        string                  `json:"zone"`
	Measurement string                  `json:"measurement"`
	Outdoor     string                  `json:"outdoor"`
	Points      []readings.ComparePoint `json:"points"`
}

// handleListZones returns all zones ordered by name.
func (s *Server) handleListZones(w http.ResponseWriter, r *http.Request) {
	zones, err := s.repo.ListZones(r.Context())
	if err != nil {
		s.writeRepoError(w, err)
		return
	}
	if zones == nil {
		zones = []readings.Zone{}
	}
	writeJSON(w, http.StatusOK, ZoneListResponse{Zones: zones})
}

// handleZoneSeries returns the series for one zone and measurement.
// With ?resample=daily the response carries per-day means instead of raw
// readings.
func (s *Server) handleZoneSeries(w http.ResponseWriter, r *http.Request) {
	zone := chi.URLParam(r, "zone")
	measurement := chi.URLParam(r, "measurement")

	resample := r.URL.Query().Get("resample")
	switch resample {
	case "":
		points, err := s.repo.ZoneSeries(r.Context(), zone, measurement)
		if err != nil {
			s.writeRepoError(w, err)
			return
		}
		if points == nil {
			points = []readings.Point{}
		}
		writeJSON(w, http.StatusOK, ZoneSeriesResponse{
			Zone:        zone,
			Measurement: measurement,
			Points:      points,
		})

	case "daily":
		points, err := s.repo.ZoneDailyMeans(r.Context(), zone, measurement)
		if err != nil {
			s.writeRepoError(w, err)
			return
		}
		if points == nil {
			points = []readings.DailyPoint{}
		}
		writeJSON(w, http.StatusOK, ZoneDailyResponse{
			Zone:        zone,
			Measurement: measurement,
			Resample:    "daily",
			Points:      points,
		})

	default:
		writeBadRequest(w, "resample must be omitted or \"daily\"")
	}
}

// handleZoneStats returns mean, maximum, and count for one zone and
// measurement. An empty series yields zero statistics with count 0.
func (s *Server) handleZoneStats(w http.ResponseWriter, r *http.Request) {
	zone := chi.URLParam(r, "zone")
	measurement := chi.URLParam(r, "measurement")

	stats, err := s.repo.ZoneStats(r.Context(), zone, measurement)
	if err != nil {
		s.writeRepoError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ZoneStatsResponse{
		Zone:        zone,
		Measurement: measurement,
		Mean:        stats.Mean,
		Max:         stats.Max,
		Count:       stats.Count,
	})
}

// defaultCompareVariable is the outdoor variable compared against when the
// request does not name one.
const defaultCompareVariable = "Air_temperature"

// handleZoneCompare returns the daily means of a zone measurement joined
// with the daily means of an outdoor variable (?outdoor=Name, defaulting to
// air temperature). Days present in only one series are dropped.
func (s *Server) handleZoneCompare(w http.ResponseWriter, r *http.Request) {
	zone := chi.URLParam(r, "zone")
	measurement := chi.URLParam(r, "measurement")

	variable := r.URL.Query().Get("outdoor")
	if variable == "" {
		variable = defaultCompareVariable
	}

	points, err := s.repo.CompareDaily(r.Context(), zone, measurement, variable)
	if err != nil {
		s.writeRepoError(w, err)
		return
	}
	if points == nil {
		points = []readings.ComparePoint{}
	}

	writeJSON(w, http.StatusOK, ZoneCompareResponse{
		Zone:        zone,
		Measurement: measurement,
		Outdoor:     variable,
		Points:      points,
	})
}
