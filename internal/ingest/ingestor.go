package ingest

import (
	"context"
	"fmt"
	"os"

	"github.com/netzero-labs/zonewatch/internal/infrastructure/database"
	"github.com/netzero-labs/zonewatch/internal/infrastructure/logging"
)

// rebuildSuffix is appended to the store path for the temporary build file.
// Keeping it in the same directory guarantees the final rename is atomic.
const rebuildSuffix = ".rebuild"

// Ingestor runs the full CSV-to-store pipeline: read, build, publish.
type Ingestor struct {
	// SourcePath is the filesystem path to the source CSV.
	SourcePath string

	// StorePath is the filesystem path to the published reading store.
	StorePath string

	// Profile describes the source CSV layout.
	Profile Profile

	// BusyTimeout is the store lock timeout in seconds for the build.
	BusyTimeout int

	// Logger receives progress and outcome events. Required.
	Logger *logging.Logger
}

// Run executes one complete ingestion.
//
// The source is read and transformed entirely in memory, then bulk-loaded
// into a temporary store file that is atomically renamed over StorePath.
// On any failure the previous store (if one exists) is left untouched and
// the temporary file is removed.
//
// The returned Dataset lets callers mirror the loaded readings elsewhere
// without re-reading the store.
//
// Parameters:
//   - ctx: Context for cancellation during the store build
//
// Returns:
//   - *Dataset: The dataset that was published
//   - error: Sentinel or wrapped pipeline error
func (i *Ingestor) Run(ctx context.Context) (*Dataset, error) {
	log := i.Logger.With("component", "ingest")

	table, err := ReadCSV(i.SourcePath)
	if err != nil {
		return nil, err
	}
	log.Info("source loaded",
		"path", i.SourcePath,
		"columns", len(table.Header),
		"rows", len(table.Rows))

	ds, err := Build(table, i.Profile)
	if err != nil {
		return nil, err
	}
	log.Info("dataset built",
		"zones", len(ds.Zones),
		"measurements", len(ds.Measurements),
		"outdoor_columns", len(ds.OutdoorColumns),
		"zone_readings", len(ds.ZoneReadings))

	if err := i.publish(ctx, ds); err != nil {
		return nil, err
	}
	log.Info("store published", "path", i.StorePath)

	return ds, nil
}

// publish builds a fresh store beside StorePath and renames it into place.
func (i *Ingestor) publish(ctx context.Context, ds *Dataset) error {
	tmpPath := i.StorePath + rebuildSuffix

	// A leftover build file from a crashed run is stale; discard it.
	_ = os.Remove(tmpPath) //nolint:errcheck // Best effort cleanup

	if err := i.buildStore(ctx, tmpPath, ds); err != nil {
		_ = os.Remove(tmpPath) //nolint:errcheck // Best effort cleanup
		return err
	}

	if err := os.Rename(tmpPath, i.StorePath); err != nil {
		_ = os.Remove(tmpPath) //nolint:errcheck // Best effort cleanup
		return fmt.Errorf("publishing store: %w", err)
	}
	return nil
}

// buildStore creates and fills the temporary store file.
//
// The build opens without WAL so no sidecar files exist at rename time; the
// serving process applies its own journal mode when it opens the published
// store.
func (i *Ingestor) buildStore(ctx context.Context, path string, ds *Dataset) error {
	db, err := database.Open(database.Config{
		Path:        path,
		WALMode:     false,
		BusyTimeout: i.BusyTimeout,
	})
	if err != nil {
		return fmt.Errorf("creating build store: %w", err)
	}
	defer db.Close() //nolint:errcheck // Best effort on error path

	if err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("applying schema to build store: %w", err)
	}

	if err := writeDataset(ctx, db, ds); err != nil {
		return err
	}

	if err := db.Close(); err != nil {
		return err
	}
	return nil
}
