// Package ingestion loads resume files and normalizes their text for extraction.
package ingestion

import "fmt"

// LoadError represents a failure to read or decode an input file
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// UnsupportedFormatError is returned for file extensions no loader handles
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format %q (supported: .txt, .md, .pdf, .html, .htm)", e.Ext)
}
