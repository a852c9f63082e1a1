// Package fields implements one extractor per resume field and the registry that
// maps field names to them.
//
// Extractors read only the shared Document; derivers read only results that were
// already extracted. None of them returns an error: a field that cannot be found
// reports its not-found sentinel.
package fields

import (
	"go.uber.org/zap"

	"github.com/jonathan/resume-extractor/internal/dates"
	"github.com/jonathan/resume-extractor/internal/patterns"
	"github.com/jonathan/resume-extractor/internal/types"
)

// Field names
const (
	Name       = "name"
	Email      = "email"
	Phone      = "phone"
	Location   = "location"
	Skills     = "skills"
	Experience = "experience"
	JobTitles  = "job_titles"
	JobHistory = "job_history"
	Companies  = "companies"
	TechStack  = "tech_stack"
	Score      = "score"
)

// Extractor computes one field from the document
type Extractor interface {
	Name() string
	Extract(doc *types.Document, debug bool) types.Value
}

// Deriver computes one field from previously extracted fields
type Deriver interface {
	Name() string
	Dependencies() []string
	Derive(prior types.Result, debug bool) types.Value
}

// Env is what every extractor is built with
type Env struct {
	Library *patterns.Library
	Logger  *zap.Logger
	Parser  dates.Parser
}

func (e Env) library() *patterns.Library {
	if e.Library == nil {
		return patterns.Default()
	}
	return e.Library
}

// debugLogger returns the field's named logger, or a no-op logger when debug is off
func (e Env) debugLogger(field string, debug bool) *zap.Logger {
	if !debug || e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger.Named(field)
}
