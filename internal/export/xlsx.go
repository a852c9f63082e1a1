package export

import (
	"io"

	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet the XLSX exporter writes
const SheetName = "Resume"

// XLSXExporter writes the Field,Value table to a workbook
type XLSXExporter struct{}

// Format returns "xlsx"
func (XLSXExporter) Format() string { return FormatXLSX }

// Export writes the workbook to w
func (XLSXExporter) Export(w io.Writer, rec Record) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	// NewFile starts with "Sheet1"; rename it so the workbook has one sheet
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return &ExportError{Format: FormatXLSX, Message: "failed to name sheet", Cause: err}
	}

	write := func(col, row int, v string) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		return f.SetCellValue(SheetName, cell, v)
	}

	row := 1
	for _, cells := range append([]Row{{Label: "Field", Value: "Value"}}, Rows(rec)...) {
		if err := write(1, row, cells.Label); err != nil {
			return &ExportError{Format: FormatXLSX, Message: "failed to write cell", Cause: err}
		}
		if err := write(2, row, cells.Value); err != nil {
			return &ExportError{Format: FormatXLSX, Message: "failed to write cell", Cause: err}
		}
		row++
	}

	_ = f.SetColWidth(SheetName, "A", "A", 20) // labels
	_ = f.SetColWidth(SheetName, "B", "B", 80) // values

	if _, err := f.WriteTo(w); err != nil {
		return &ExportError{Format: FormatXLSX, Message: "xlsx write", Cause: err}
	}
	return nil
}
