// Package export mirrors ingested readings into InfluxDB.
//
// The SQLite store remains the system of record; the mirror is an optional
// side channel for long-term trend tooling. Mirroring runs once after a
// successful ingestion, straight from the in-memory dataset, so the
// published store is never re-read or touched.
//
// Export failures are logged and reported but must never fail an ingestion
// run; callers treat the returned error as advisory.
package export
