package ingest

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/netzero-labs/zonewatch/internal/infrastructure/database"
)

// writeDataset bulk-loads a Dataset into a freshly migrated store.
//
// All inserts run in a single transaction so a failed load leaves the
// temporary store file discardable rather than half-filled.
func writeDataset(ctx context.Context, db *database.DB, ds *Dataset) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	if err := insertZones(ctx, tx, ds.Zones); err != nil {
		return err
	}
	if err := insertMeasurements(ctx, tx, ds.Measurements); err != nil {
		return err
	}
	if err := insertOutdoorRows(ctx, tx, ds); err != nil {
		return err
	}
	if err := insertZoneReadings(ctx, tx, ds.ZoneReadings); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing dataset load: %w", err)
	}
	return nil
}

func insertZones(ctx context.Context, tx *sql.Tx, zones []Zone) error {
	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO zones (id, name, description) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing zone insert: %w", err)
	}
	defer stmt.Close() //nolint:errcheck // Statement cleanup

	for _, z := range zones {
		if _, err := stmt.ExecContext(ctx, z.ID, z.Name, z.Description); err != nil {
			return fmt.Errorf("inserting zone %q: %w", z.Name, err)
		}
	}
	return nil
}

func insertMeasurements(ctx context.Context, tx *sql.Tx, measurements []Measurement) error {
	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO measurements (id, name, unit) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing measurement insert: %w", err)
	}
	defer stmt.Close() //nolint:errcheck // Statement cleanup

	for _, m := range measurements {
		if _, err := stmt.ExecContext(ctx, m.ID, m.Name, m.Unit); err != nil {
			return fmt.Errorf("inserting measurement %q: %w", m.Name, err)
		}
	}
	return nil
}

// insertOutdoorRows loads the sparse outdoor rows. The INSERT column list is
// built from the dataset's present outdoor columns, checked against the
// actual table schema first so a profile/schema mismatch fails loudly
// instead of injecting unknown identifiers into SQL text.
func insertOutdoorRows(ctx context.Context, tx *sql.Tx, ds *Dataset) error {
	if len(ds.OutdoorColumns) == 0 {
		return nil
	}

	valid, err := tableColumns(ctx, tx, "outdoor_readings")
	if err != nil {
		return err
	}

	columns := make([]string, 0, len(ds.OutdoorColumns)+1)
	columns = append(columns, "timestamp")
	for _, name := range ds.OutdoorColumns {
		col := StoreColumn(name)
		if !valid[col] {
			return fmt.Errorf("outdoor variable %q has no store column %q", name, col)
		}
		columns = append(columns, col)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	query := fmt.Sprintf("INSERT INTO outdoor_readings (%s) VALUES (%s)",
		strings.Join(columns, ", "), placeholders)

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("preparing outdoor insert: %w", err)
	}
	defer stmt.Close() //nolint:errcheck // Statement cleanup

	for _, row := range ds.Outdoor {
		args := make([]interface{}, 0, len(columns))
		args = append(args, row.Timestamp.Format(TimeLayout))
		for _, name := range ds.OutdoorColumns {
			if v, ok := row.Values[name]; ok {
				args = append(args, v)
			} else {
				args = append(args, nil)
			}
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("inserting outdoor row at %s: %w",
				row.Timestamp.Format(TimeLayout), err)
		}
	}
	return nil
}

func insertZoneReadings(ctx context.Context, tx *sql.Tx, readings []ZoneReading) error {
	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO zone_readings (timestamp, zone_id, measurement_id, value) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing zone reading insert: %w", err)
	}
	defer stmt.Close() //nolint:errcheck // Statement cleanup

	for _, r := range readings {
		_, err := stmt.ExecContext(ctx, r.Timestamp.Format(TimeLayout), r.ZoneID, r.MeasurementID, r.Value)
		if err != nil {
			return fmt.Errorf("inserting zone reading at %s: %w",
				r.Timestamp.Format(TimeLayout), err)
		}
	}
	return nil
}

// tableColumns returns the set of column names for a store table. The query
// runs on the transaction because the store holds a single connection.
func tableColumns(ctx context.Context, tx *sql.Tx, table string) (map[string]bool, error) {
	rows, err := tx.QueryContext(ctx,
		"SELECT name FROM pragma_table_info(?)", table)
	if err != nil {
		return nil, fmt.Errorf("reading %s schema: %w", table, err)
	}
	defer rows.Close() //nolint:errcheck // Read-only rows

	columns := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning %s schema: %w", table, err)
		}
		columns[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s schema: %w", table, err)
	}
	return columns, nil
}

// StoreColumn maps an outdoor variable name to its store column name.
// Source headers use mixed case ("Air_temperature"); store columns are the
// lowercase form ("air_temperature").
func StoreColumn(name string) string {
	return strings.ToLower(name)
}
