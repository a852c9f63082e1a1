// Package types provides type definitions for the documents and extraction results
// shared by the resume-extractor packages.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Entity labels the extractors understand. Any external tagger must emit these.
const (
	LabelPerson = "PERSON"
	LabelGPE    = "GPE"
)

// Entity is a single tagged span produced by an external named-entity tagger
type Entity struct {
	Text       string  `json:"text"`
	Start      int     `json:"start"`
	End        int     `json:"end"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence,omitempty"`
}

// Metadata describes where a document came from
type Metadata struct {
	Source    string `json:"source"`
	Hash      string `json:"hash"`      // SHA256 hex digest of the normalized text
	Timestamp string `json:"timestamp"` // RFC3339 format
}

// Document is the normalized resume text plus optional entity annotation.
// A Document is read-only once built; extractors share it across goroutines.
type Document struct {
	Text     string
	Entities []Entity // nil when no tagger output is available
	Meta     Metadata
}

// NewDocument creates a Document from already-normalized text
func NewDocument(text string, entities []Entity) *Document {
	return &Document{Text: text, Entities: entities}
}

// HasEntities reports whether entity annotation is available
func (d *Document) HasEntities() bool {
	return d != nil && d.Entities != nil
}

// EntitiesWithLabel returns the entities carrying the given label, in document order
func (d *Document) EntitiesWithLabel(label string) []Entity {
	if !d.HasEntities() {
		return nil
	}
	out := make([]Entity, 0, len(d.Entities))
	for _, e := range d.Entities {
		if e.Label == label {
			out = append(out, e)
		}
	}
	return out
}
