package ingest

import "strings"

// ColumnKind categorises a CSV column during ingestion.
type ColumnKind int

const (
	// KindIgnored marks columns that carry no recognised data.
	KindIgnored ColumnKind = iota

	// KindTimestamp marks the single timestamp column.
	KindTimestamp

	// KindOutdoor marks a known outdoor variable column.
	KindOutdoor

	// KindZone marks a zone measurement column.
	KindZone
)

// String returns a human-readable name for the column kind.
func (k ColumnKind) String() string {
	switch k {
	case KindTimestamp:
		return "timestamp"
	case KindOutdoor:
		return "outdoor"
	case KindZone:
		return "zone"
	default:
		return "ignored"
	}
}

// Column is the classification result for a single CSV header name.
type Column struct {
	// Name is the original header name.
	Name string

	// Kind is the classification outcome.
	Kind ColumnKind

	// Zone is the zone name for KindZone columns (e.g. "Z1").
	Zone string

	// Measurement is the measurement name for KindZone columns. It may
	// itself contain the separator (e.g. "supply_temp").
	Measurement string
}

// Classify determines what a CSV column contains.
//
// The rules are checked in order:
//
//  1. An exact match on the profile's timestamp column is the timestamp.
//  2. A name starting with a zone prefix and containing the separator is
//     zone data; the zone name is the part before the first separator and
//     the measurement name is everything after it.
//  3. A name in the profile's known outdoor list is an outdoor variable.
//  4. Anything else is ignored.
//
// A zone column with an empty zone or measurement part (a name starting or
// ending with the separator) is ignored rather than producing degenerate
// reference rows.
func (p Profile) Classify(name string) Column {
	if name == p.TimestampColumn {
		return Column{Name: name, Kind: KindTimestamp}
	}

	if zone, measurement, ok := p.splitZone(name); ok {
		return Column{Name: name, Kind: KindZone, Zone: zone, Measurement: measurement}
	}

	for _, known := range p.OutdoorColumns {
		if name == known {
			return Column{Name: name, Kind: KindOutdoor}
		}
	}

	return Column{Name: name, Kind: KindIgnored}
}

// splitZone attempts to interpret name as <zone><sep><measurement>.
func (p Profile) splitZone(name string) (zone, measurement string, ok bool) {
	if p.Separator == "" {
		return "", "", false
	}

	matched := false
	for _, prefix := range p.ZonePrefixes {
		if prefix != "" && strings.HasPrefix(name, prefix) {
			matched = true
			break
		}
	}
	if !matched {
		return "", "", false
	}

	zone, measurement, found := strings.Cut(name, p.Separator)
	if !found || zone == "" || measurement == "" {
		return "", "", false
	}

	return zone, measurement, true
}
