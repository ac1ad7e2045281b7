package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// Table is a raw CSV file loaded into memory: one header row and the data
// rows beneath it, untyped and unclassified.
type Table struct {
	// Header holds the column names from the first row.
	Header []string

	// Rows holds the data rows, each with one cell per header column.
	Rows [][]string
}

// ReadCSV loads the CSV file at path into a Table.
//
// The file must have a header row; a missing file returns ErrSourceMissing
// and an empty file returns ErrEmptySource. Rows with a cell count that
// differs from the header are rejected, matching encoding/csv defaults.
//
// Parameters:
//   - path: Filesystem path to the source CSV
//
// Returns:
//   - *Table: The loaded header and rows
//   - error: Sentinel or wrapped read error
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceMissing, path)
		}
		return nil, fmt.Errorf("opening source file: %w", err)
	}
	defer f.Close() //nolint:errcheck // Read-only file

	reader := csv.NewReader(f)
	reader.ReuseRecord = false

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s", ErrEmptySource, path)
		}
		return nil, fmt.Errorf("reading header row: %w", err)
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading data row %d: %w", len(rows)+2, err)
		}
		rows = append(rows, record)
	}

	return &Table{Header: header, Rows: rows}, nil
}
