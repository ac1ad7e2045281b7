package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestRun_InvalidConfig verifies run fails with an invalid config path.
func TestRun_InvalidConfig(t *testing.T) {
	t.Setenv("ZONEWATCH_CONFIG", "/nonexistent/path/config.yaml")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := run(ctx); err == nil {
		t.Fatal("run() should fail with invalid config path")
	}
}

// TestRun_MissingStorePath verifies run fails when the store path is empty.
func TestRun_MissingStorePath(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test-config.yaml")

	configContent := `
store:
  path: ""

ingest:
  csv_path: "./data/sensors.csv"

logging:
  level: error
  format: text
`

	if err := os.WriteFile(configPath, []byte(configContent), 0600); err != nil {
		t.Fatalf("writing test config: %v", err)
	}
	t.Setenv("ZONEWATCH_CONFIG", configPath)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := run(ctx); err == nil {
		t.Fatal("run() should fail with empty store path")
	}
}

// TestRun_MissingSourceNoStore verifies run fails when neither a store nor
// a source CSV exists.
func TestRun_MissingSourceNoStore(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test-config.yaml")

	configContent := `
store:
  path: "` + filepath.Join(tmpDir, "zonewatch.db") + `"
  busy_timeout: 5

ingest:
  csv_path: "` + filepath.Join(tmpDir, "missing.csv") + `"

api:
  host: "127.0.0.1"
  port: 18099

logging:
  level: error
  format: text
`

	if err := os.WriteFile(configPath, []byte(configContent), 0600); err != nil {
		t.Fatalf("writing test config: %v", err)
	}
	t.Setenv("ZONEWATCH_CONFIG", configPath)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := run(ctx); err == nil {
		t.Fatal("run() should fail when no store exists and the source is missing")
	}
}

// TestGetConfigPath verifies environment override and default.
func TestGetConfigPath(t *testing.T) {
	t.Setenv("ZONEWATCH_CONFIG", "/custom/config.yaml")
	if got := getConfigPath(); got != "/custom/config.yaml" {
		t.Errorf("getConfigPath() = %q, want /custom/config.yaml", got)
	}

	t.Setenv("ZONEWATCH_CONFIG", "")
	if got := getConfigPath(); got != defaultConfigPath {
		t.Errorf("getConfigPath() = %q, want %q", got, defaultConfigPath)
	}
}

// TestRun_ServesIngestedStore runs the full pipeline: ingest a small CSV,
// start the API, then shut down via context cancellation.
func TestRun_ServesIngestedStore(t *testing.T) {
	tmpDir := t.TempDir()

	csvPath := filepath.Join(tmpDir, "sensors.csv")
	csvContent := "Timestamp,Z1_temp,Air_temperature\n" +
		"2024-01-01 00:00:00,21.5,5.0\n"
	if err := os.WriteFile(csvPath, []byte(csvContent), 0600); err != nil {
		t.Fatalf("writing test CSV: %v", err)
	}

	configPath := filepath.Join(tmpDir, "test-config.yaml")
	configContent := `
store:
  path: "` + filepath.Join(tmpDir, "zonewatch.db") + `"
  wal_mode: true
  busy_timeout: 5

ingest:
  csv_path: "` + csvPath + `"

api:
  host: "127.0.0.1"
  port: 18098

logging:
  level: error
  format: text
`
	if err := os.WriteFile(configPath, []byte(configContent), 0600); err != nil {
		t.Fatalf("writing test config: %v", err)
	}
	t.Setenv("ZONEWATCH_CONFIG", configPath)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := run(ctx); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	// The store file was published.
	if _, err := os.Stat(filepath.Join(tmpDir, "zonewatch.db")); err != nil {
		t.Errorf("published store missing: %v", err)
	}
}
