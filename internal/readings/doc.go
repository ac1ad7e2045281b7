// Package readings provides read-only query access to a published zonewatch
// reading store.
//
// The store is built atomically by the ingest pipeline and never mutated
// afterwards, so every operation here is a pure query: reference table
// listings, raw time series, summary statistics, and daily aggregates
// computed in SQL with strftime grouping.
//
// Zone data is addressed by zone and measurement name; outdoor data by
// variable name, which maps onto a dedicated store column. Variable names
// are validated against the actual table schema before being placed in SQL
// text, so only real columns are ever interpolated.
//
// The Repository interface exists so HTTP handlers can be tested against a
// stub; SQLiteRepository is the production implementation.
package readings
