package ingest

import "errors"

// Sentinel errors for ingestion operations.
//
// These errors can be checked using errors.Is() for specific handling:
//
//	if errors.Is(err, ingest.ErrSourceMissing) {
//	    // No CSV to ingest; keep serving the existing store
//	}
var (
	// ErrSourceMissing indicates the source CSV file does not exist.
	ErrSourceMissing = errors.New("ingest: source file missing")

	// ErrEmptySource indicates the source CSV has no header row.
	ErrEmptySource = errors.New("ingest: source file is empty")

	// ErrNoTimestampColumn indicates the header lacks the timestamp column.
	ErrNoTimestampColumn = errors.New("ingest: timestamp column not found")

	// ErrBadTimestamp indicates a timestamp cell matched none of the
	// profile's layouts.
	ErrBadTimestamp = errors.New("ingest: unparseable timestamp")
)
