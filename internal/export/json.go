package export

import (
	"encoding/json"
	"io"

	"github.com/jonathan/resume-extractor/internal/types"
)

// JSONExporter writes the record as a JSON document. Text fields are strings,
// list fields arrays and faulted fields null.
type JSONExporter struct{}

// Format returns "json"
func (JSONExporter) Format() string { return FormatJSON }

type jsonDocument struct {
	Source    string         `json:"source"`
	Hash      string         `json:"hash,omitempty"`
	Timestamp string         `json:"timestamp,omitempty"`
	Fields    map[string]any `json:"fields"`
}

// Export writes indented JSON to w
func (JSONExporter) Export(w io.Writer, rec Record) error {
	doc := jsonDocument{
		Source:    rec.Source,
		Hash:      rec.Meta.Hash,
		Timestamp: rec.Meta.Timestamp,
		Fields:    make(map[string]any, len(rec.Result)),
	}
	for name, v := range rec.Result {
		doc.Fields[name] = jsonValue(v)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return &ExportError{Format: FormatJSON, Message: "failed to encode JSON", Cause: err}
	}
	return nil
}

func jsonValue(v types.Value) any {
	switch v.Kind {
	case types.KindText:
		return v.Text
	case types.KindList:
		if v.Items == nil {
			return []string{}
		}
		return v.Items
	default:
		return nil
	}
}
