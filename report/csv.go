package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteCSV writes records with a header row to w.
func WriteCSV(w io.Writer, records []*Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Columns()); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write(r.Row()); err != nil {
			return fmt.Errorf("write csv row for %s: %w", r.Filename, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes records to a CSV file, creating parent directories
// as needed.
func WriteCSVFile(path string, records []*Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteCSV(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
