package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for zonewatch.
// All configuration is loaded from YAML and can be overridden by environment variables.
type Config struct {
	Store    StoreConfig    `yaml:"store"`
	Ingest   IngestConfig   `yaml:"ingest"`
	API      APIConfig      `yaml:"api"`
	InfluxDB InfluxDBConfig `yaml:"influxdb"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// StoreConfig contains settings for the SQLite reading store.
type StoreConfig struct {
	// Path is the filesystem path to the store file. Ingestion replaces the
	// file at this path atomically; reads always see a complete store.
	Path        string `yaml:"path"`
	WALMode     bool   `yaml:"wal_mode"`
	BusyTimeout int    `yaml:"busy_timeout"`
}

// IngestConfig contains settings for the CSV ingestion run.
type IngestConfig struct {
	// CSVPath is the wide-format source file to ingest.
	CSVPath string `yaml:"csv_path"`

	// Rebuild forces ingestion even when a store already exists at store.path.
	Rebuild bool `yaml:"rebuild"`

	// Profile describes the dataset variant being ingested.
	Profile ProfileConfig `yaml:"profile"`
}

// ProfileConfig describes the column schema of one dataset variant.
//
// The original deployment shipped two hand-forked ingestion scripts for two
// CSV variants; a profile captures everything that differed between them so
// a single ingestor serves both.
type ProfileConfig struct {
	// TimestampColumn is the mandatory date-time column name.
	TimestampColumn string `yaml:"timestamp_column"`

	// TimestampLayouts are the accepted Go time layouts for the timestamp
	// column, tried in order.
	TimestampLayouts []string `yaml:"timestamp_layouts"`

	// Separator splits zone columns into zone prefix and measurement name.
	Separator string `yaml:"separator"`

	// ZonePrefixes are the name prefixes that mark a column as zone data.
	ZonePrefixes []string `yaml:"zone_prefixes"`

	// OutdoorColumns is the fixed list of known outdoor variable names.
	// Columns outside this list (and not zone data) are silently ignored.
	OutdoorColumns []string `yaml:"outdoor_columns"`

	// Units maps measurement names to display units. Names absent from the
	// map get an empty unit. The keys also seed the measurements reference
	// table, so known measurements exist even when a variant omits them.
	Units map[string]string `yaml:"units"`
}

// APIConfig contains HTTP API server settings.
type APIConfig struct {
	Host     string           `yaml:"host"`
	Port     int              `yaml:"port"`
	Timeouts APITimeoutConfig `yaml:"timeouts"`
	CORS     CORSConfig       `yaml:"cors"`
}

// APITimeoutConfig contains HTTP timeout settings in seconds.
type APITimeoutConfig struct {
	Read  int `yaml:"read"`
	Write int `yaml:"write"`
	Idle  int `yaml:"idle"`
}

// CORSConfig contains Cross-Origin Resource Sharing settings.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
	AllowedMethods []string `yaml:"allowed_methods"`
	AllowedHeaders []string `yaml:"allowed_headers"`
}

// InfluxDBConfig contains settings for the optional InfluxDB mirror of
// ingested readings.
type InfluxDBConfig struct {
	Enabled       bool   `yaml:"enabled"`
	URL           string `yaml:"url"`
	Token         string `yaml:"token"`
	Org           string `yaml:"org"`
	Bucket        string `yaml:"bucket"`
	BatchSize     int    `yaml:"batch_size"`
	FlushInterval int    `yaml:"flush_interval"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Load reads configuration from a YAML file and applies environment variable overrides.
//
// The configuration loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults)
//  3. Environment variables (override file values)
//
// Environment variables follow the pattern: ZONEWATCH_SECTION_KEY
// For example: ZONEWATCH_STORE_PATH, ZONEWATCH_API_HOST
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - *Config: Loaded and validated configuration
//   - error: If file cannot be read, parsed, or validation fails
func Load(path string) (*Config, error) {
	// Start with defaults
	cfg := defaultConfig()

	// Read and parse YAML file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns a Config with sensible defaults.
// The default profile matches the net-zero house hourly dataset.
func defaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Path:        "./data/zonewatch.db",
			WALMode:     true,
			BusyTimeout: 5,
		},
		Ingest: IngestConfig{
			CSVPath: "./data/net_zero_house_data.csv",
			Profile: DefaultProfile(),
		},
		API: APIConfig{
			Host: "0.0.0.0",
			Port: 8080,
			Timeouts: APITimeoutConfig{
				Read:  30,
				Write: 30,
				Idle:  60,
			},
		},
		InfluxDB: InfluxDBConfig{
			Enabled:       false,
			BatchSize:     500,
			FlushInterval: 10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
}

// DefaultProfile returns the column schema of the net-zero house dataset.
//
// Zone columns are named like "Z1_temp" and "Z3_CO2": zone prefix, separator,
// then the measurement name. The outdoor columns arrive under fixed names.
func DefaultProfile() ProfileConfig {
	return ProfileConfig{
		TimestampColumn: "Timestamp",
		TimestampLayouts: []string{
			"2006-01-02 15:04:05",
			"2006-01-02T15:04:05",
			"2006-01-02 15:04",
		},
		Separator:    "_",
		ZonePrefixes: []string{"Z"},
		OutdoorColumns: []string{
			"Air_temperature",
			"Relative_humidity",
			"Wind_speed",
			"Wind_direction",
			"Barometric_pressure",
			"Precipitation",
			"Solar_radiation",
			"Outdoor_CO2",
		},
		Units: map[string]string{
			"temp":                "°C",
			"humidity":            "%",
			"CO2":                 "ppm",
			"Air_temperature":     "°C",
			"Relative_humidity":   "%",
			"Wind_speed":          "m/s",
			"Wind_direction":      "°",
			"Barometric_pressure": "hPa",
			"Precipitation":       "mm",
			"Solar_radiation":     "W/m²",
			"Outdoor_CO2":         "ppm",
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables follow the pattern: ZONEWATCH_SECTION_KEY
func applyEnvOverrides(cfg *Config) {
	// Store
	if v := os.Getenv("ZONEWATCH_STORE_PATH"); v != "" {
		cfg.Store.Path = v
	}

	// Ingest
	if v := os.Getenv("ZONEWATCH_CSV_PATH"); v != "" {
		cfg.Ingest.CSVPath = v
	}
	if v := os.Getenv("ZONEWATCH_REBUILD"); v != "" {
		cfg.Ingest.Rebuild = v == "1" || strings.EqualFold(v, "true")
	}

	// API
	if v := os.Getenv("ZONEWATCH_API_HOST"); v != "" {
		cfg.API.Host = v
	}

	// InfluxDB
	if v := os.Getenv("ZONEWATCH_INFLUXDB_TOKEN"); v != "" {
		cfg.InfluxDB.Token = v
	}
}

// Validate checks the configuration for errors.
//
// Returns:
//   - error: Description of validation failure, or nil if valid
func (c *Config) Validate() error {
	var errs []string

	// Store validation
	if c.Store.Path == "" {
		errs = append(errs, "store.path is required")
	}

	// Ingest validation
	if c.Ingest.CSVPath == "" {
		errs = append(errs, "ingest.csv_path is required")
	}
	if c.Ingest.Profile.TimestampColumn == "" {
		errs = append(errs, "ingest.profile.timestamp_column is required")
	}
	if len(c.Ingest.Profile.TimestampLayouts) == 0 {
		errs = append(errs, "ingest.profile.timestamp_layouts must list at least one layout")
	}
	if c.Ingest.Profile.Separator == "" {
		errs = append(errs, "ingest.profile.separator is required")
	}
	if len(c.Ingest.Profile.ZonePrefixes) == 0 {
		errs = append(errs, "ingest.profile.zone_prefixes must list at least one prefix")
	}

	// API validation
	if c.API.Port < 1 || c.API.Port > 65535 {
		errs = append(errs, "api.port must be between 1 and 65535")
	}

	// InfluxDB validation (only when enabled)
	if c.InfluxDB.Enabled {
		if c.InfluxDB.URL == "" {
			errs = append(errs, "influxdb.url is required when influxdb is enabled")
		}
		if c.InfluxDB.Org == "" {
			errs = append(errs, "influxdb.org is required when influxdb is enabled")
		}
		if c.InfluxDB.Bucket == "" {
			errs = append(errs, "influxdb.bucket is required when influxdb is enabled")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// GetReadTimeout returns the API read timeout as a Duration.
func (c *Config) GetReadTimeout() time.Duration {
	return time.Duration(c.API.Timeouts.Read) * time.Second
}

// GetWriteTimeout returns the API write timeout as a Duration.
func (c *Config) GetWriteTimeout() time.Duration {
	return time.Duration(c.API.Timeouts.Write) * time.Second
}

// GetIdleTimeout returns the API idle timeout as a Duration.
func (c *Config) GetIdleTimeout() time.Duration {
	return time.Duration(c.API.Timeouts.Idle) * time.Second
}
