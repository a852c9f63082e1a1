// Package export writes extraction results to CSV, XLSX or JSON files.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-extractor/internal/fields"
	"github.com/jonathan/resume-extractor/internal/types"
)

// Supported formats
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
	FormatJSON = "json"
)

// Record is one resume's extraction result plus where it came from
type Record struct {
	Source string
	Result types.Result
	Meta   types.Metadata
	Order  []string // field order for row formats; sorted field names when empty
}

// Exporter writes a record in one format
type Exporter interface {
	Format() string
	Export(w io.Writer, rec Record) error
}

// ExportError represents an error writing an export
type ExportError struct { //nolint:revive
	Format  string
	Path    string
	Message string
	Cause   error
}

func (e *ExportError) Error() string {
	target := e.Format
	if e.Path != "" {
		target = e.Path
	}
	if e.Cause != nil {
		return fmt.Sprintf("export error for %s: %s: %v", target, e.Message, e.Cause)
	}
	return fmt.Sprintf("export error for %s: %s", target, e.Message)
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}

// New returns the exporter for format
func New(format string) (Exporter, error) {
	switch strings.ToLower(format) {
	case FormatCSV:
		return CSVExporter{}, nil
	case FormatXLSX:
		return XLSXExporter{}, nil
	case FormatJSON:
		return JSONExporter{}, nil
	default:
		return nil, &ExportError{Format: format, Message: "unsupported format"}
	}
}

// OutputPath names the export after the input file's basename
func OutputPath(dir, source, format string) string {
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, base+"."+format)
}

// WriteFile exports rec into dir and returns the written path
func WriteFile(dir, format string, rec Record) (string, error) {
	exp, err := New(format)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", &ExportError{Format: format, Path: dir, Message: "failed to create output directory", Cause: err}
	}

	path := OutputPath(dir, rec.Source, exp.Format())
	f, err := os.Create(path)
	if err != nil {
		return "", &ExportError{Format: format, Path: path, Message: "failed to create file", Cause: err}
	}
	defer func() { _ = f.Close() }()

	if err := exp.Export(f, rec); err != nil {
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", &ExportError{Format: format, Path: path, Message: "failed to close file", Cause: err}
	}
	return path, nil
}

// Row is one labelled field of a row-oriented export
type Row struct {
	Label string
	Value string
}

// Rows renders the record as labelled rows. Lists are joined with "; ", the
// tech stack with newlines, and faulted fields are empty.
func Rows(rec Record) []Row {
	order := rec.Order
	if len(order) == 0 {
		order = rec.Result.Fields()
	}

	rows := make([]Row, 0, len(order))
	for _, name := range order {
		v, ok := rec.Result[name]
		if !ok {
			continue
		}
		rows = append(rows, Row{Label: fields.Label(name), Value: cellValue(name, v)})
	}
	return rows
}

func cellValue(name string, v types.Value) string {
	switch v.Kind {
	case types.KindText:
		return v.Text
	case types.KindList:
		if name == fields.TechStack {
			return v.Join("\n")
		}
		return v.Join("; ")
	default:
		return ""
	}
}
