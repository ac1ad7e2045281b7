package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_ValidConfig(t *testing.T) {
	// Create a temporary config file
	content := `
store:
  path: "/tmp/test.db"
  wal_mode: true
  busy_timeout: 5
ingest:
  csv_path: "/tmp/test.csv"
api:
  host: "0.0.0.0"
  port: 8080
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Store.Path != "/tmp/test.db" {
		t.Errorf("Store.Path = %q, want %q", cfg.Store.Path, "/tmp/test.db")
	}

	if cfg.Ingest.CSVPath != "/tmp/test.csv" {
		t.Errorf("Ingest.CSVPath = %q, want %q", cfg.Ingest.CSVPath, "/tmp/test.csv")
	}

	// The default profile should survive a config that doesn't mention it
	if cfg.Ingest.Profile.TimestampColumn != "Timestamp" {
		t.Errorf("Profile.TimestampColumn = %q, want %q", cfg.Ingest.Profile.TimestampColumn, "Timestamp")
	}
	if cfg.Ingest.Profile.Separator != "_" {
		t.Errorf("Profile.Separator = %q, want %q", cfg.Ingest.Profile.Separator, "_")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("invalid: [yaml: content"), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Error("Load() expected error for invalid YAML, got nil")
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	content := `
store:
  path: ""
api:
  port: 8080
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Error("Load() expected validation error for empty store.path, got nil")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	content := `
store:
  path: "/tmp/from-file.db"
ingest:
  csv_path: "/tmp/from-file.csv"
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("ZONEWATCH_STORE_PATH", "/tmp/from-env.db")
	t.Setenv("ZONEWATCH_REBUILD", "true")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Store.Path != "/tmp/from-env.db" {
		t.Errorf("Store.Path = %q, want env override %q", cfg.Store.Path, "/tmp/from-env.db")
	}
	if !cfg.Ingest.Rebuild {
		t.Error("Ingest.Rebuild = false, want true from ZONEWATCH_REBUILD")
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Store:  StoreConfig{Path: "/data/zonewatch.db"},
			Ingest: IngestConfig{CSVPath: "/data/readings.csv", Profile: DefaultProfile()},
			API:    APIConfig{Port: 8080},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "missing store path",
			mutate:  func(c *Config) { c.Store.Path = "" },
			wantErr: true,
		},
		{
			name:    "missing csv path",
			mutate:  func(c *Config) { c.Ingest.CSVPath = "" },
			wantErr: true,
		},
		{
			name:    "missing timestamp column",
			mutate:  func(c *Config) { c.Ingest.Profile.TimestampColumn = "" },
			wantErr: true,
		},
		{
			name:    "no timestamp layouts",
			mutate:  func(c *Config) { c.Ingest.Profile.TimestampLayouts = nil },
			wantErr: true,
		},
		{
			name:    "empty separator",
			mutate:  func(c *Config) { c.Ingest.Profile.Separator = "" },
			wantErr: true,
		},
		{
			name:    "no zone prefixes",
			mutate:  func(c *Config) { c.Ingest.Profile.ZonePrefixes = nil },
			wantErr: true,
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.API.Port = 70000 },
			wantErr: true,
		},
		{
			name:    "influxdb enabled without url",
			mutate:  func(c *Config) { c.InfluxDB.Enabled = true },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultProfile_KnownUnits(t *testing.T) {
	p := DefaultProfile()

	wantUnits := map[string]string{
		"temp":            "°C",
		"humidity":        "%",
		"CO2":             "ppm",
		"Air_temperature": "°C",
	}
	for name, unit := range wantUnits {
		if got := p.Units[name]; got != unit {
			t.Errorf("Units[%q] = %q, want %q", name, got, unit)
		}
	}

	if len(p.OutdoorColumns) != 8 {
		t.Errorf("OutdoorColumns count = %d, want 8", len(p.OutdoorColumns))
	}
}
