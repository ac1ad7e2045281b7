// Package influxdb provides InfluxDB connectivity for zonewatch.
//
// It wraps the official influxdb-client-go v2 library for mirroring ingested
// sensor readings into a time-series database.
//
// # Purpose
//
// The SQLite store is the system of record; the InfluxDB mirror is an
// optional side channel so long-term trend tooling (Grafana and friends)
// can query the same readings without touching the dashboard store.
// Export failures never fail an ingestion run.
//
// # Usage
//
//	cfg := config.InfluxDBConfig{
//	    Enabled: true,
//	    URL:     "http://localhost:8086",
//	    Token:   "your-token",
//	    Org:     "netzero",
//	    Bucket:  "readings",
//	}
//
//	client, err := influxdb.Connect(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	client.WriteZoneReading("Z1", "temp", 21.5, ts)
//
// # Thread Safety
//
// All methods are safe for concurrent use from multiple goroutines.
// The underlying write API uses non-blocking batched writes.
//
// # Error Handling
//
// Write operations are non-blocking and batch errors are delivered via the
// SetOnError callback. Connection and health check errors are returned
// directly.
package influxdb
