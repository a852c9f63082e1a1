package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jonathan/resume-extractor/internal/fields"
	"github.com/jonathan/resume-extractor/internal/schemas"
	"github.com/jonathan/resume-extractor/internal/types"
)

func sampleRecord() Record {
	return Record{
		Source: "resumes/jane_doe.pdf",
		Result: types.Result{
			fields.Name:      types.Text("Jane Doe"),
			fields.Skills:    types.SortedSet([]string{"python", "go"}),
			fields.TechStack: types.List([]string{"Languages: python", "Tools: ", "Platforms: "}),
			fields.Location:  types.None(),
			fields.Score:     types.Text("2/5"),
		},
		Meta: types.Metadata{
			Source:    "resumes/jane_doe.pdf",
			Hash:      "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08",
			Timestamp: "2025-10-26T12:00:00Z",
		},
		Order: []string{fields.Name, fields.Location, fields.Skills, fields.Companies, fields.TechStack, fields.Score},
	}
}

func TestRows(t *testing.T) {
	rows := Rows(sampleRecord())

	assert.Equal(t, []Row{
		{Label: "Name", Value: "Jane Doe"},
		{Label: "Location", Value: ""},
		{Label: "Skills", Value: "go; python"},
		{Label: "Tech Stack", Value: "Languages: python\nTools: \nPlatforms: "},
		{Label: "Resume Score", Value: "2/5"},
	}, rows)
}

func TestRows_DefaultOrder(t *testing.T) {
	rec := sampleRecord()
	rec.Order = nil

	rows := Rows(rec)
	require.Len(t, rows, 5)
	assert.Equal(t, "Location", rows[0].Label)
	assert.Equal(t, "Tech Stack", rows[4].Label)
}

func TestCSVExporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CSVExporter{}.Export(&buf, sampleRecord()))

	want := "Field,Value\n" +
		"Name,Jane Doe\n" +
		"Location,\n" +
		"Skills,go; python\n" +
		"Tech Stack,\"Languages: python\nTools: \nPlatforms: \"\n" +
		"Resume Score,2/5\n"
	assert.Equal(t, want, buf.String())
}

func TestXLSXExporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, XLSXExporter{}.Export(&buf, sampleRecord()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, []string{"Field", "Value"}, rows[0])
	assert.Equal(t, []string{"Name", "Jane Doe"}, rows[1])
	assert.Equal(t, []string{"Skills", "go; python"}, rows[3])
}

func TestJSONExporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSONExporter{}.Export(&buf, sampleRecord()))

	require.NoError(t, schemas.ValidateExtraction(buf.Bytes()))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "resumes/jane_doe.pdf", doc["source"])

	got := doc["fields"].(map[string]any)
	assert.Equal(t, "Jane Doe", got[fields.Name])
	assert.Equal(t, []any{"go", "python"}, got[fields.Skills])
	assert.Nil(t, got[fields.Location])
	assert.Contains(t, got, fields.Location)
}

func TestJSONExporter_EmptyListIsArray(t *testing.T) {
	var buf bytes.Buffer
	rec := Record{Source: "a.txt", Result: types.Result{fields.Companies: types.SortedSet(nil)}}
	require.NoError(t, JSONExporter{}.Export(&buf, rec))

	assert.Contains(t, buf.String(), `"companies": []`)
	assert.NoError(t, schemas.ValidateExtraction(buf.Bytes()))
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	for _, format := range []string{FormatCSV, FormatXLSX, FormatJSON} {
		t.Run(format, func(t *testing.T) {
			path, err := WriteFile(dir, format, sampleRecord())
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, "jane_doe."+format), path)

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.NotZero(t, info.Size())
		})
	}
}

func TestWriteFile_UnsupportedFormat(t *testing.T) {
	_, err := WriteFile(t.TempDir(), "pdf", sampleRecord())
	require.Error(t, err)

	var exportErr *ExportError
	require.True(t, errors.As(err, &exportErr))
	assert.Equal(t, "pdf", exportErr.Format)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "resume.csv"), OutputPath("out", "/data/in/resume.pdf", "csv"))
	assert.Equal(t, filepath.Join("out", "notes.json"), OutputPath("out", "notes", "json"))
}
