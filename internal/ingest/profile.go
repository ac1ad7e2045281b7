package ingest

// Profile describes the shape of a source CSV: which column carries the
// timestamp, how zone columns are named, and which remaining columns are
// known outdoor variables.
//
// Profiles are pure data so the same ingestor can load any dataset that
// follows the wide-column convention; the net-zero house defaults live in
// the config package.
type Profile struct {
	// TimestampColumn is the exact header name of the timestamp column.
	TimestampColumn string

	// TimestampLayouts are the Go time layouts tried in order when parsing
	// timestamp cells. At least one layout must match every row.
	TimestampLayouts []string

	// Separator splits a zone column into zone name and measurement name.
	Separator string

	// ZonePrefixes lists the name prefixes that mark a column as zone data.
	ZonePrefixes []string

	// OutdoorColumns lists the known outdoor variable names. Order is
	// preserved into the store schema and API responses.
	OutdoorColumns []string

	// Units maps measurement names to display units. Keys also seed the
	// measurements reference table even when no column observes them.
	Units map[string]string
}

// Unit returns the display unit for a measurement or outdoor variable name,
// or the empty string when the profile does not know one.
func (p Profile) Unit(name string) string {
	return p.Units[name]
}
