// zonewatch - Environmental Sensor Dashboard Backend
//
// This is the main entry point for the zonewatch application. zonewatch
// ingests wide-format sensor CSVs from an instrumented building into a
// normalised SQLite store and serves it to dashboard frontends over a
// read-only HTTP API.
//
// The store is rebuilt from source atomically: a fresh store file is built
// beside the live one and renamed into place, so the API never observes a
// partially loaded store.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/netzero-labs/zonewatch/migrations"

	"github.com/netzero-labs/zonewatch/internal/api"
	"github.com/netzero-labs/zonewatch/internal/export"
	"github.com/netzero-labs/zonewatch/internal/infrastructure/config"
	"github.com/netzero-labs/zonewatch/internal/infrastructure/database"
	"github.com/netzero-labs/zonewatch/internal/infrastructure/influxdb"
	"github.com/netzero-labs/zonewatch/internal/infrastructure/logging"
	"github.com/netzero-labs/zonewatch/internal/ingest"
	"github.com/netzero-labs/zonewatch/internal/readings"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	// Create a context that cancels on interrupt signals (Ctrl+C, SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
// Returning an error allows main to handle exit codes consistently.
//
// Parameters:
//   - ctx: Context for cancellation and shutdown signals
//
// Returns:
//   - error: nil on clean shutdown, or error describing failure
func run(ctx context.Context) error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting zonewatch",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	// Load configuration
	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	// Ingest when the store is missing or a rebuild is requested
	if err := maybeIngest(ctx, cfg, log); err != nil {
		return err
	}

	// Open the published store for serving
	db, err := database.Open(database.Config{
		Path:        cfg.Store.Path,
		WALMode:     cfg.Store.WALMode,
		BusyTimeout: cfg.Store.BusyTimeout,
	})
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer func() {
		log.Info("closing store")
		if closeErr := db.Close(); closeErr != nil {
			log.Error("error closing store", "error", closeErr)
		}
	}()
	log.Info("store opened", "path", cfg.Store.Path)

	// Migrate is a no-op on a freshly ingested store; it upgrades stores
	// published by older builds.
	if migrateErr := db.Migrate(ctx); migrateErr != nil {
		return fmt.Errorf("running migrations: %w", migrateErr)
	}

	// Start the HTTP API
	repo := readings.NewSQLiteRepository(db.DB)
	server, err := api.New(api.Deps{
		Config:  cfg.API,
		Logger:  log,
		Repo:    repo,
		Store:   db,
		Version: version,
	})
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}
	if startErr := server.Start(ctx); startErr != nil {
		return fmt.Errorf("starting API server: %w", startErr)
	}
	defer func() {
		if closeErr := server.Close(); closeErr != nil {
			log.Error("error closing API server", "error", closeErr)
		}
	}()

	// Verify everything is healthy before declaring readiness
	if err := healthCheck(ctx, db, server); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	log.Info("all health checks passed")

	log.Info("initialisation complete, waiting for shutdown signal")

	// Wait for shutdown signal
	<-ctx.Done()

	log.Info("shutdown signal received, cleaning up")

	// Deferred Close() calls will run in reverse order:
	// 1. API server
	// 2. Store

	log.Info("zonewatch stopped")
	return nil
}

// maybeIngest rebuilds the store from the source CSV when the store is
// missing or cfg.Ingest.Rebuild is set, then mirrors the readings to
// InfluxDB if the mirror is enabled.
//
// A missing source is fatal only when there is no store to serve; with an
// existing store the run continues on the previous data.
func maybeIngest(ctx context.Context, cfg *config.Config, log *logging.Logger) error {
	_, statErr := os.Stat(cfg.Store.Path)
	storeExists := statErr == nil

	if storeExists && !cfg.Ingest.Rebuild {
		log.Info("store present, skipping ingestion", "path", cfg.Store.Path)
		return nil
	}

	ingestor := &ingest.Ingestor{
		SourcePath:  cfg.Ingest.CSVPath,
		StorePath:   cfg.Store.Path,
		Profile:     buildProfile(cfg.Ingest.Profile),
		BusyTimeout: cfg.Store.BusyTimeout,
		Logger:      log,
	}

	ds, err := ingestor.Run(ctx)
	if err != nil {
		if storeExists && errors.Is(err, ingest.ErrSourceMissing) {
			log.Warn("source CSV missing, serving existing store", "path", cfg.Ingest.CSVPath)
			return nil
		}
		return fmt.Errorf("ingesting source data: %w", err)
	}

	mirrorReadings(cfg, ds, log)
	return nil
}

// mirrorReadings sends the ingested dataset to InfluxDB when the mirror is
// enabled. Mirror problems are logged, never fatal.
func mirrorReadings(cfg *config.Config, ds *ingest.Dataset, log *logging.Logger) {
	if !cfg.InfluxDB.Enabled {
		return
	}

	influxClient, err := influxdb.Connect(cfg.InfluxDB)
	if err != nil {
		log.Warn("InfluxDB mirror unavailable, skipping export", "error", err)
		return
	}
	defer func() {
		if closeErr := influxClient.Close(); closeErr != nil {
			log.Error("error closing InfluxDB", "error", closeErr)
		}
	}()
	log.Info("InfluxDB connected",
		"url", cfg.InfluxDB.URL,
		"org", cfg.InfluxDB.Org,
		"bucket", cfg.InfluxDB.Bucket,
	)

	influxClient.SetOnError(func(err error) {
		log.Error("InfluxDB write error", "error", err)
	})

	export.Mirror(influxClient, ds, log)
}

// buildProfile converts the config profile into the ingest package's form.
func buildProfile(p config.ProfileConfig) ingest.Profile {
	return ingest.Profile{
		TimestampColumn:  p.TimestampColumn,
		TimestampLayouts: p.TimestampLayouts,
		Separator:        p.Separator,
		ZonePrefixes:     p.ZonePrefixes,
		OutdoorColumns:   p.OutdoorColumns,
		Units:            p.Units,
	}
}

// getConfigPath returns the configuration file path.
// Uses ZONEWATCH_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("ZONEWATCH_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}

// healthCheck verifies the store and API server are healthy.
//
// Parameters:
//   - ctx: Context for timeout/cancellation
//   - db: Store connection to check
//   - server: API server to check
//
// Returns:
//   - error: First health check failure, or nil if all healthy
func healthCheck(ctx context.Context, db *database.DB, server *api.Server) error {
	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	if err := server.HealthCheck(ctx); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	return nil
}
