// Package database provides SQLite connectivity for the zonewatch reading store.
//
// This package manages:
//   - Store connection with WAL mode for concurrent dashboard reads
//   - Schema migrations applied from an embedded filesystem
//   - Connection lifecycle and health checks
//   - STRICT mode tables for type safety
//
// Security Considerations:
//   - All queries use parameterised statements (no SQL injection)
//   - Store file permissions are set to 0600 (owner read/write only)
//
// Performance Characteristics:
//   - WAL mode allows concurrent reads during writes
//   - Busy timeout prevents lock contention errors
//   - Single writer connection matches SQLite's write model
//
// Usage:
//
//	db, err := database.Open(database.Config{Path: cfg.Store.Path})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Close()
//
//	// Apply schema
//	if err := db.Migrate(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// Store Lifecycle:
//
// The reading store is never migrated in place after it holds data. Ingestion
// opens a fresh temporary file, applies the full schema via Migrate, bulk-loads
// it, and atomically renames it over the configured path. Migrations therefore
// only ever run against empty stores, and readers always see either the old
// complete store or the new complete store.
package database
