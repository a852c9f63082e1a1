package export

import (
	"encoding/csv"
	"io"
)

// CSVExporter writes a two-column Field,Value table
type CSVExporter struct{}

// Format returns "csv"
func (CSVExporter) Format() string { return FormatCSV }

// Export writes the header row and one row per field
func (CSVExporter) Export(w io.Writer, rec Record) error {
	cw := csv.NewWriter(w)
	records := [][]string{{"Field", "Value"}}
	for _, row := range Rows(rec) {
		records = append(records, []string{row.Label, row.Value})
	}
	if err := cw.WriteAll(records); err != nil {
		return &ExportError{Format: FormatCSV, Message: "failed to write CSV", Cause: err}
	}
	return nil
}
