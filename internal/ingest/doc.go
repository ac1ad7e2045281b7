// Package ingest transforms a wide-format sensor CSV into the normalised
// zonewatch reading store.
//
// # Pipeline
//
// Ingestion is a strict two-phase build:
//
//  1. Pure transform: the CSV is read into memory, every column is
//     classified against the dataset profile (timestamp, outdoor variable,
//     zone+measurement pair, or ignored), and a fully normalised Dataset is
//     built: reference tables with deterministic identifiers, outdoor rows,
//     and sparse zone readings. No store I/O happens in this phase, so the
//     fiddly column-sniffing logic is unit-testable in isolation.
//
//  2. Atomic publish: the Dataset is bulk-loaded into a fresh temporary
//     store file (schema applied via the embedded migrations), which is then
//     renamed over the configured store path. A failure at any point leaves
//     the previous store untouched; readers never observe a partial store.
//
// # Column classification
//
// A column is zone data iff its name starts with one of the profile's zone
// prefixes and contains the separator; the part before the first separator
// is the zone name and the remainder is the measurement name (which may
// itself contain separators, e.g. "Z2_supply_temp"). Non-zone columns are
// outdoor variables iff they appear in the profile's known outdoor list.
// Everything else is silently ignored.
//
// # Determinism
//
// Zone and measurement identifiers are assigned in lexicographic name order,
// so re-running ingestion over the same input produces identical reference
// tables. The measurement set is the union of names observed in zone columns
// and the profile's known measurement list; units come from the profile and
// default to the empty string.
//
// # Error model
//
// A missing source file fails the run before any store is touched. A
// timestamp that parses with none of the profile's layouts aborts the run.
// Missing or non-numeric data cells are not errors: they simply produce no
// reading row. Unknown columns are not errors either.
package ingest
