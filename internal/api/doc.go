// Package api implements the HTTP REST API for the zonewatch backend.
//
// This package provides:
//   - Reference table endpoints (zones, measurements)
//   - Raw and daily-resampled series endpoints for zone and outdoor data
//   - Summary statistics and zone-vs-outdoor daily comparison
//   - Middleware stack (request ID, logging, recovery, CORS)
//
// # Architecture
//
// The API server sits between dashboard frontends and the SQLite reading
// store. The store is produced atomically by the ingest pipeline and is
// never written through this API, so every endpoint is a plain GET and the
// server needs no write coordination.
//
// # Addressing
//
// Zone data is addressed by zone and measurement name as they appear in the
// reference tables ("Z1", "temp"). Outdoor data is addressed by variable
// name ("Air_temperature"); unknown names return 404, never a SQL error.
package api
