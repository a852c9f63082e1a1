// Package schemas embeds the JSON Schemas of the files the extractor writes.
package schemas

import _ "embed"

// ExtractionResult is the schema of a JSON export
//
//go:embed extraction_result.schema.json
var ExtractionResult []byte
