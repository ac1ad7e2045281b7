package ingest

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// TimeLayout is the canonical timestamp format stored in the reading store.
// All source timestamps are normalised to this layout regardless of which
// profile layout they parsed with.
const TimeLayout = "2006-01-02 15:04:05"

// Zone is a reference-table row for a monitored zone.
type Zone struct {
	ID          int64
	Name        string
	Description string
}

// Measurement is a reference-table row for a measurement type.
type Measurement struct {
	ID   int64
	Name string
	Unit string
}

// OutdoorRow is one timestamped set of outdoor variable values. Values holds
// only the variables present in that row; absent and non-numeric cells have
// no entry.
type OutdoorRow struct {
	Timestamp time.Time
	Values    map[string]float64
}

// ZoneReading is one numeric reading for a zone and measurement.
type ZoneReading struct {
	Timestamp     time.Time
	ZoneID        int64
	MeasurementID int64
	Value         float64
}

// Dataset is the fully normalised, in-memory form of a source CSV, ready to
// be bulk-loaded into a store. Building it performs no I/O beyond what
// ReadCSV already did.
type Dataset struct {
	// Zones holds the zone reference table, sorted by name with identifiers
	// assigned in that order starting at 1.
	Zones []Zone

	// Measurements holds the measurement reference table, sorted by name
	// with identifiers assigned in that order starting at 1. It contains
	// every measurement observed in a zone column plus every name in the
	// profile's unit map.
	Measurements []Measurement

	// OutdoorColumns lists the known outdoor variables actually present in
	// the source, in profile order.
	OutdoorColumns []string

	// Outdoor holds one row per source row, sparse in its values.
	Outdoor []OutdoorRow

	// ZoneReadings holds every present numeric zone cell, in source order.
	ZoneReadings []ZoneReading
}

// ZoneByID returns the zone name for an identifier, or the empty string.
func (d *Dataset) ZoneByID(id int64) string {
	for _, z := range d.Zones {
		if z.ID == id {
			return z.Name
		}
	}
	return ""
}

// MeasurementByID returns the measurement name for an identifier, or the
// empty string.
func (d *Dataset) MeasurementByID(id int64) string {
	for _, m := range d.Measurements {
		if m.ID == id {
			return m.Name
		}
	}
	return ""
}

// zoneColumn is a classified zone column with its header position.
type zoneColumn struct {
	index       int
	zone        string
	measurement string
}

// outdoorColumn is a classified outdoor column with its header position.
type outdoorColumn struct {
	index int
	name  string
}

// Build transforms a raw Table into a normalised Dataset using the profile's
// classification rules.
//
// Build is pure: given the same table and profile it always produces the
// same dataset, including identifier assignment. It fails when the header
// lacks the profile's timestamp column or when any timestamp cell matches
// none of the profile's layouts; malformed data cells are skipped silently.
//
// Parameters:
//   - table: The loaded CSV header and rows
//   - profile: Column classification rules for this dataset
//
// Returns:
//   - *Dataset: The normalised dataset
//   - error: ErrNoTimestampColumn, ErrBadTimestamp, or nil
func Build(table *Table, profile Profile) (*Dataset, error) {
	tsIndex := -1
	var zoneCols []zoneColumn
	var outdoorCols []outdoorColumn

	for i, name := range table.Header {
		col := profile.Classify(name)
		switch col.Kind {
		case KindTimestamp:
			tsIndex = i
		case KindZone:
			zoneCols = append(zoneCols, zoneColumn{index: i, zone: col.Zone, measurement: col.Measurement})
		case KindOutdoor:
			outdoorCols = append(outdoorCols, outdoorColumn{index: i, name: col.Name})
		}
	}

	if tsIndex < 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoTimestampColumn, profile.TimestampColumn)
	}

	// Outdoor columns keep profile order, not source order, so the store
	// schema and API responses are stable across column reshuffles.
	sortOutdoorColumns(outdoorCols, profile.OutdoorColumns)

	ds := &Dataset{}
	ds.Zones = buildZones(zoneCols)
	ds.Measurements = buildMeasurements(zoneCols, profile)

	zoneIDs := make(map[string]int64, len(ds.Zones))
	for _, z := range ds.Zones {
		zoneIDs[z.Name] = z.ID
	}
	measurementIDs := make(map[string]int64, len(ds.Measurements))
	for _, m := range ds.Measurements {
		measurementIDs[m.Name] = m.ID
	}

	ds.OutdoorColumns = make([]string, 0, len(outdoorCols))
	for _, oc := range outdoorCols {
		ds.OutdoorColumns = append(ds.OutdoorColumns, oc.name)
	}

	for rowNum, row := range table.Rows {
		ts, err := parseTimestamp(cell(row, tsIndex), profile.TimestampLayouts)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum+2, err)
		}

		outdoor := OutdoorRow{Timestamp: ts, Values: make(map[string]float64, len(outdoorCols))}
		for _, oc := range outdoorCols {
			if v, ok := parseValue(cell(row, oc.index)); ok {
				outdoor.Values[oc.name] = v
			}
		}
		ds.Outdoor = append(ds.Outdoor, outdoor)

		for _, zc := range zoneCols {
			v, ok := parseValue(cell(row, zc.index))
			if !ok {
				continue
			}
			ds.ZoneReadings = append(ds.ZoneReadings, ZoneReading{
				Timestamp:     ts,
				ZoneID:        zoneIDs[zc.zone],
				MeasurementID: measurementIDs[zc.measurement],
				Value:         v,
			})
		}
	}

	return ds, nil
}

// buildZones collects the distinct zone names and assigns identifiers in
// lexicographic order starting at 1.
func buildZones(cols []zoneColumn) []Zone {
	seen := make(map[string]bool)
	var names []string
	for _, zc := range cols {
		if !seen[zc.zone] {
			seen[zc.zone] = true
			names = append(names, zc.zone)
		}
	}
	sort.Strings(names)

	zones := make([]Zone, 0, len(names))
	for i, name := range names {
		zones = append(zones, Zone{
			ID:          int64(i + 1),
			Name:        name,
			Description: fmt.Sprintf("Zone %s", name),
		})
	}
	return zones
}

// buildMeasurements collects the union of observed measurement names and the
// profile's unit map keys, assigning identifiers in lexicographic order
// starting at 1.
func buildMeasurements(cols []zoneColumn, profile Profile) []Measurement {
	seen := make(map[string]bool)
	var names []string
	for _, zc := range cols {
		if !seen[zc.measurement] {
			seen[zc.measurement] = true
			names = append(names, zc.measurement)
		}
	}
	for name := range profile.Units {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)

	measurements := make([]Measurement, 0, len(names))
	for i, name := range names {
		measurements = append(measurements, Measurement{
			ID:   int64(i + 1),
			Name: name,
			Unit: profile.Unit(name),
		})
	}
	return measurements
}

// sortOutdoorColumns reorders cols to match the profile's declared order.
func sortOutdoorColumns(cols []outdoorColumn, order []string) {
	rank := make(map[string]int, len(order))
	for i, name := range order {
		rank[name] = i
	}
	sort.SliceStable(cols, func(i, j int) bool {
		return rank[cols[i].name] < rank[cols[j].name]
	})
}

// parseTimestamp tries each layout in order against the trimmed cell.
func parseTimestamp(raw string, layouts []string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	for _, layout := range layouts {
		if ts, err := time.Parse(layout, trimmed); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrBadTimestamp, raw)
}

// parseValue interprets a data cell as a numeric reading. Empty cells,
// non-numeric text, NaN, and infinities all count as absent.
func parseValue(raw string) (float64, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// cell returns row[i] or the empty string when the row is short.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
