package export

import (
	"time"

	"github.com/netzero-labs/zonewatch/internal/infrastructure/logging"
	"github.com/netzero-labs/zonewatch/internal/ingest"
)

// ReadingWriter is the subset of the InfluxDB client used by the mirror.
// Writes are expected to be non-blocking and batched.
type ReadingWriter interface {
	WriteZoneReading(zone, measurement string, value float64, timestamp time.Time)
	WriteOutdoorReading(variable string, value float64, timestamp time.Time)
	Flush()
}

// Mirror writes every reading in the dataset to the time-series backend and
// flushes the final batch.
//
// Zone readings are tagged by zone and measurement name; outdoor readings by
// variable name. Points carry the source timestamps, so the mirrored history
// lines up with the store.
//
// Parameters:
//   - w: Destination writer (an influxdb.Client in production)
//   - ds: The dataset produced by a successful ingestion
//   - logger: Receives a summary event. Required.
func Mirror(w ReadingWriter, ds *ingest.Dataset, logger *logging.Logger) {
	log := logger.With("component", "export")

	zoneNames := make(map[int64]string, len(ds.Zones))
	for _, z := range ds.Zones {
		zoneNames[z.ID] = z.Name
	}
	measurementNames := make(map[int64]string, len(ds.Measurements))
	for _, m := range ds.Measurements {
		measurementNames[m.ID] = m.Name
	}

	for _, r := range ds.ZoneReadings {
		w.WriteZoneReading(zoneNames[r.ZoneID], measurementNames[r.MeasurementID], r.Value, r.Timestamp)
	}

	outdoorPoints := 0
	for _, row := range ds.Outdoor {
		for _, variable := range ds.OutdoorColumns {
			if v, ok := row.Values[variable]; ok {
				w.WriteOutdoorReading(variable, v, row.Timestamp)
				outdoorPoints++
			}
		}
	}

	w.Flush()

	log.Info("readings mirrored",
		"zone_points", len(ds.ZoneReadings),
		"outdoor_points", outdoorPoints)
}
