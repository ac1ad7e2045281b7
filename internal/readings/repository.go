package readings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// Repository defines read-only query operations on a reading store.
type Repository interface {
	// Reference tables
	ListZones(ctx context.Context) ([]Zone, error)
	ListMeasurements(ctx context.Context) ([]Measurement, error)

	// Zone series
	ZoneSeries(ctx context.Context, zone, measurement string) ([]Point, error)
	ZoneStats(ctx context.Context, zone, measurement string) (*Stats, error)
	ZoneDailyMeans(ctx context.Context, zone, measurement string) ([]DailyPoint, error)

	// Outdoor series
	OutdoorSeries(ctx context.Context, variable string) ([]Point, error)
	OutdoorDailyMeans(ctx context.Context, variable string) ([]DailyPoint, error)

	// Zone-vs-outdoor daily comparison
	CompareDaily(ctx context.Context, zone, measurement, variable string) ([]ComparePoint, error)
}

// SQLiteRepository implements Repository against a published SQLite store.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite-backed reading repository.
//
// Parameters:
//   - db: Open SQLite connection to a published store
//
// Returns:
//   - *SQLiteRepository: Repository instance ready for use
//
// Security: Uses parameterised SQL queries to prevent injection. Outdoor
// variable names are validated against the table schema before use.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// ListZones returns all zones ordered by name.
func (r *SQLiteRepository) ListZones(ctx context.Context) ([]Zone, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, description FROM zones ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("listing zones: %w", err)
	}
	defer rows.Close() //nolint:errcheck // Read-only rows

	var zones []Zone
	for rows.Next() {
		var z Zone
		if err := rows.Scan(&z.ID, &z.Name, &z.Description); err != nil {
			return nil, fmt.Errorf("scanning zone row: %w", err)
		}
		zones = append(zones, z)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating zone rows: %w", err)
	}
	return zones, nil
}

// ListMeasurements returns all measurement types ordered by name.
func (r *SQLiteRepository) ListMeasurements(ctx context.Context) ([]Measurement, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, unit FROM measurements ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("listing measurements: %w", err)
	}
	defer rows.Close() //nolint:errcheck // Read-only rows

	var measurements []Measurement
	for rows.Next() {
		var m Measurement
		if err := rows.Scan(&m.ID, &m.Name, &m.Unit); err != nil {
			return nil, fmt.Errorf("scanning measurement row: %w", err)
		}
		measurements = append(measurements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating measurement rows: %w", err)
	}
	return measurements, nil
}

// ZoneSeries returns the full raw series for one zone and measurement,
// ordered by timestamp.
//
// Returns:
//   - []Point: The series, possibly empty
//   - error: ErrZoneNotFound or ErrMeasurementNotFound when the names are
//     unknown, otherwise the underlying query error
func (r *SQLiteRepository) ZoneSeries(ctx context.Context, zone, measurement string) ([]Point, error) {
	zoneID, measurementID, err := r.resolveNames(ctx, zone, measurement)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT timestamp, value
		FROM zone_readings
		WHERE zone_id = ? AND measurement_id = ?
		ORDER BY timestamp`,
		zoneID, measurementID)
	if err != nil {
		return nil, fmt.Errorf("querying zone series: %w", err)
	}
	defer rows.Close() //nolint:errcheck // Read-only rows

	return scanPoints(rows)
}

// ZoneStats returns mean, maximum, and count for one zone and measurement.
// An empty series yields zero statistics, not an error.
func (r *SQLiteRepository) ZoneStats(ctx context.Context, zone, measurement string) (*Stats, error) {
	zoneID, measurementID, err := r.resolveNames(ctx, zone, measurement)
	if err != nil {
		return nil, err
	}

	var mean, max sql.NullFloat64
	var count int64
	err = r.db.QueryRowContext(ctx, `
		SELECT AVG(value), MAX(value), COUNT(*)
		FROM zone_readings
		WHERE zone_id = ? AND measurement_id = ?`,
		zoneID, measurementID).Scan(&mean, &max, &count)
	if err != nil {
		return nil, fmt.Errorf("querying zone stats: %w", err)
	}

	return &Stats{Mean: mean.Float64, Max: max.Float64, Count: count}, nil
}

// ZoneDailyMeans returns the per-day mean series for one zone and
// measurement, ordered by day.
func (r *SQLiteRepository) ZoneDailyMeans(ctx context.Context, zone, measurement string) ([]DailyPoint, error) {
	zoneID, measurementID, err := r.resolveNames(ctx, zone, measurement)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT strftime('%Y-%m-%d', timestamp) AS day, AVG(value)
		FROM zone_readings
		WHERE zone_id = ? AND measurement_id = ?
		GROUP BY day
		ORDER BY day`,
		zoneID, measurementID)
	if err != nil {
		return nil, fmt.Errorf("querying zone daily means: %w", err)
	}
	defer rows.Close() //nolint:errcheck // Read-only rows

	return scanDailyPoints(rows)
}

// OutdoorSeries returns the full raw series for one outdoor variable,
// ordered by timestamp. Rows where the variable is NULL are omitted.
//
// Returns:
//   - []Point: The series, possibly empty
//   - error: ErrUnknownVariable when the variable has no store column,
//     otherwise the underlying query error
func (r *SQLiteRepository) OutdoorSeries(ctx context.Context, variable string) ([]Point, error) {
	column, err := r.outdoorColumn(ctx, variable)
	if err != nil {
		return nil, err
	}

	// Column name is schema-validated above; values stay parameterised.
	query := fmt.Sprintf(`
		SELECT timestamp, %s
		FROM outdoor_readings
		WHERE %s IS NOT NULL
		ORDER BY timestamp`, column, column)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying outdoor series: %w", err)
	}
	defer rows.Close() //nolint:errcheck // Read-only rows

	return scanPoints(rows)
}

// OutdoorDailyMeans returns the per-day mean series for one outdoor
// variable, ordered by day.
func (r *SQLiteRepository) OutdoorDailyMeans(ctx context.Context, variable string) ([]DailyPoint, error) {
	column, err := r.outdoorColumn(ctx, variable)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT strftime('%%Y-%%m-%%d', timestamp) AS day, AVG(%s)
		FROM outdoor_readings
		WHERE %s IS NOT NULL
		GROUP BY day
		ORDER BY day`, column, column)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying outdoor daily means: %w", err)
	}
	defer rows.Close() //nolint:errcheck // Read-only rows

	return scanDailyPoints(rows)
}

// CompareDaily joins a zone's daily means with an outdoor variable's daily
// means on matching days, ordered by day. Days missing from either side are
// dropped.
func (r *SQLiteRepository) CompareDaily(ctx context.Context, zone, measurement, variable string) ([]ComparePoint, error) {
	zoneDaily, err := r.ZoneDailyMeans(ctx, zone, measurement)
	if err != nil {
		return nil, err
	}
	outdoorDaily, err := r.OutdoorDailyMeans(ctx, variable)
	if err != nil {
		return nil, err
	}

	outdoorByDay := make(map[string]float64, len(outdoorDaily))
	for _, p := range outdoorDaily {
		outdoorByDay[p.Day] = p.Mean
	}

	var points []ComparePoint
	for _, p := range zoneDaily {
		if outdoorMean, ok := outdoorByDay[p.Day]; ok {
			points = append(points, ComparePoint{
				Day:         p.Day,
				ZoneMean:    p.Mean,
				OutdoorMean: outdoorMean,
			})
		}
	}
	return points, nil
}

// resolveNames maps zone and measurement names to their identifiers.
func (r *SQLiteRepository) resolveNames(ctx context.Context, zone, measurement string) (int64, int64, error) {
	var zoneID int64
	err := r.db.QueryRowContext(ctx,
		"SELECT id FROM zones WHERE name = ?", zone).Scan(&zoneID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, 0, fmt.Errorf("%w: %q", ErrZoneNotFound, zone)
	}
	if err != nil {
		return 0, 0, fmt.Errorf("resolving zone %q: %w", zone, err)
	}

	var measurementID int64
	err = r.db.QueryRowContext(ctx,
		"SELECT id FROM measurements WHERE name = ?", measurement).Scan(&measurementID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, 0, fmt.Errorf("%w: %q", ErrMeasurementNotFound, measurement)
	}
	if err != nil {
		return 0, 0, fmt.Errorf("resolving measurement %q: %w", measurement, err)
	}

	return zoneID, measurementID, nil
}

// outdoorColumn maps an outdoor variable name to its store column, checking
// the schema so only real data columns reach SQL text.
func (r *SQLiteRepository) outdoorColumn(ctx context.Context, variable string) (string, error) {
	column := strings.ToLower(variable)
	if column == "id" || column == "timestamp" {
		return "", fmt.Errorf("%w: %q", ErrUnknownVariable, variable)
	}

	var name string
	err := r.db.QueryRowContext(ctx,
		"SELECT name FROM pragma_table_info('outdoor_readings') WHERE name = ?",
		column).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %q", ErrUnknownVariable, variable)
	}
	if err != nil {
		return "", fmt.Errorf("validating outdoor variable %q: %w", variable, err)
	}

	return name, nil
}

// scanPoints drains a (timestamp, value) result set.
func scanPoints(rows *sql.Rows) ([]Point, error) {
	var points []Point
	for rows.Next() {
		var p Point
		if err := rows.Scan(&p.Timestamp, &p.Value); err != nil {
			return nil, fmt.Errorf("scanning series row: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating series rows: %w", err)
	}
	return points, nil
}

// scanDailyPoints drains a (day, mean) result set.
func scanDailyPoints(rows *sql.Rows) ([]DailyPoint, error) {
	var points []DailyPoint
	for rows.Next() {
		var p DailyPoint
		if err := rows.Scan(&p.Day, &p.Mean); err != nil {
			return nil, fmt.Errorf("scanning daily row: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating daily rows: %w", err)
	}
	return points, nil
}
