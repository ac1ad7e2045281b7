package export

import (
	"testing"
	"time"

	"github.com/netzero-labs/zonewatch/internal/infrastructure/logging"
	"github.com/netzero-labs/zonewatch/internal/ingest"
)

// recordingWriter captures mirrored points for assertions.
type recordingWriter struct {
	zonePoints    []string
	outdoorPoints []string
	flushed       bool
}

func (w *recordingWriter) WriteZoneReading(zone, measurement string, _ float64, _ time.Time) {
	w.zonePoints = append(w.zonePoints, zone+"/"+measurement)
}

func (w *recordingWriter) WriteOutdoorReading(variable string, _ float64, _ time.Time) {
	w.outdoorPoints = append(w.outdoorPoints, variable)
}

func (w *recordingWriter) Flush() {
	w.flushed = true
}

func TestMirror(t *testing.T) {
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ds := &ingest.Dataset{
		Zones:          []ingest.Zone{{ID: 1, Name: "Z1"}, {ID: 2, Name: "Z2"}},
		Measurements:   []ingest.Measurement{{ID: 1, Name: "CO2"}, {ID: 2, Name: "temp"}},
		OutdoorColumns: []string{"Air_temperature", "Wind_speed"},
		Outdoor: []ingest.OutdoorRow{
			{Timestamp: ts, Values: map[string]float64{"Air_temperature": 5.0}},
			{Timestamp: ts.Add(time.Hour), Values: map[string]float64{"Air_temperature": 4.5, "Wind_speed": 2.1}},
		},
		ZoneReadings: []ingest.ZoneReading{
			{Timestamp: ts, ZoneID: 1, MeasurementID: 2, Value: 21.5},
			{Timestamp: ts, ZoneID: 2, MeasurementID: 1, Value: 640},
		},
	}

	w := &recordingWriter{}
	Mirror(w, ds, logging.Default())

	if len(w.zonePoints) != 2 {
		t.Fatalf("zone points = %d, want 2", len(w.zonePoints))
	}
	if w.zonePoints[0] != "Z1/temp" || w.zonePoints[1] != "Z2/CO2" {
		t.Errorf("zone points = %v", w.zonePoints)
	}

	// Absent outdoor cells produce no points.
	if len(w.outdoorPoints) != 3 {
		t.Fatalf("outdoor points = %d, want 3", len(w.outdoorPoints))
	}

	if !w.flushed {
		t.Error("Mirror() must flush the final batch")
	}
}

func TestMirror_EmptyDataset(t *testing.T) {
	w := &recordingWriter{}
	Mirror(w, &ingest.Dataset{}, logging.Default())

	if len(w.zonePoints) != 0 || len(w.outdoorPoints) != 0 {
		t.Error("empty dataset should mirror nothing")
	}
	if !w.flushed {
		t.Error("Mirror() must flush even with no points")
	}
}
