package ingest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeTestCSV writes content to a temp file and returns its path.
func writeTestCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sensors.csv")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing test CSV: %v", err)
	}
	return path
}

func TestReadCSV(t *testing.T) {
	path := writeTestCSV(t,
		"Timestamp,Z1_temp,Air_temperature\n"+
			"2024-01-01 00:00:00,21.5,5.0\n"+
			"2024-01-01 01:00:00,,4.5\n")

	table, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}

	if len(table.Header) != 3 {
		t.Errorf("len(Header) = %d, want 3", len(table.Header))
	}
	if len(table.Rows) != 2 {
		t.Fatalf("len(Rows) = %d, want 2", len(table.Rows))
	}
	if table.Rows[1][1] != "" {
		t.Errorf("empty cell = %q, want empty string", table.Rows[1][1])
	}
}

func TestReadCSV_MissingFile(t *testing.T) {
	_, err := ReadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, ErrSourceMissing) {
		t.Errorf("ReadCSV() error = %v, want ErrSourceMissing", err)
	}
}

func TestReadCSV_EmptyFile(t *testing.T) {
	path := writeTestCSV(t, "")

	_, err := ReadCSV(path)
	if !errors.Is(err, ErrEmptySource) {
		t.Errorf("ReadCSV() error = %v, want ErrEmptySource", err)
	}
}

func TestReadCSV_HeaderOnly(t *testing.T) {
	path := writeTestCSV(t, "Timestamp,Z1_temp\n")

	table, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if len(table.Rows) != 0 {
		t.Errorf("len(Rows) = %d, want 0", len(table.Rows))
	}
}

func TestReadCSV_RaggedRow(t *testing.T) {
	path := writeTestCSV(t,
		"Timestamp,Z1_temp,Air_temperature\n"+
			"2024-01-01 00:00:00,21.5\n")

	_, err := ReadCSV(path)
	if err == nil {
		t.Error("ReadCSV() should reject rows with a mismatched cell count")
	}
}
