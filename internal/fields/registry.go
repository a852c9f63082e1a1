package fields

import (
	"fmt"
	"strings"
)

// Definition describes a registered field
type Definition struct {
	Name         string
	Label        string
	Derived      bool
	Dependencies []string
}

// Registry holds the extractors and derivers in registration order
type Registry struct {
	order      []string
	extractors map[string]Extractor
	derivers   map[string]Deriver
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		extractors: make(map[string]Extractor),
		derivers:   make(map[string]Deriver),
	}
}

// Default returns the registry of every built-in field, in report order
func Default(env Env) *Registry {
	r := NewRegistry()
	r.Register(NewNameExtractor(env))
	r.Register(NewEmailExtractor(env))
	r.Register(NewPhoneExtractor(env))
	r.Register(NewLocationExtractor(env))
	r.Register(NewSkillsExtractor(env))
	r.Register(NewExperienceExtractor(env))
	r.Register(NewJobTitleExtractor(env))
	r.Register(NewJobHistoryExtractor(env))
	r.Register(NewCompanyExtractor(env))
	r.RegisterDeriver(NewTechStackDeriver(env))
	r.RegisterDeriver(NewScoreDeriver(env))
	return r
}

// Register adds an extractor, replacing any field of the same name
func (r *Registry) Register(e Extractor) {
	r.add(e.Name())
	delete(r.derivers, e.Name())
	r.extractors[e.Name()] = e
}

// RegisterDeriver adds a deriver, replacing any field of the same name
func (r *Registry) RegisterDeriver(d Deriver) {
	r.add(d.Name())
	delete(r.extractors, d.Name())
	r.derivers[d.Name()] = d
}

func (r *Registry) add(name string) {
	if !r.Has(name) {
		r.order = append(r.order, name)
	}
}

// Names returns every registered field name in registration order
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Has reports whether name is registered
func (r *Registry) Has(name string) bool {
	_, e := r.extractors[name]
	_, d := r.derivers[name]
	return e || d
}

// Extractor returns the document extractor for name
func (r *Registry) Extractor(name string) (Extractor, bool) {
	e, ok := r.extractors[name]
	return e, ok
}

// Deriver returns the deriver for name
func (r *Registry) Deriver(name string) (Deriver, bool) {
	d, ok := r.derivers[name]
	return d, ok
}

// Definitions describes every registered field in registration order
func (r *Registry) Definitions() []Definition {
	defs := make([]Definition, 0, len(r.order))
	for _, name := range r.order {
		def := Definition{Name: name, Label: Label(name)}
		if d, ok := r.derivers[name]; ok {
			def.Derived = true
			def.Dependencies = append([]string(nil), d.Dependencies()...)
		}
		defs = append(defs, def)
	}
	return defs
}

// DependencyError reports derivers whose inputs are not document extractors
type DependencyError struct {
	Field               string
	MissingDependencies []string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("field %s: missing dependencies: %v", e.Field, e.MissingDependencies)
}

// Validate checks that every deriver depends only on registered extractors
func (r *Registry) Validate() error {
	for _, name := range r.order {
		d, ok := r.derivers[name]
		if !ok {
			continue
		}
		var missing []string
		for _, dep := range d.Dependencies() {
			if _, ok := r.extractors[dep]; !ok {
				missing = append(missing, dep)
			}
		}
		if len(missing) > 0 {
			return &DependencyError{Field: name, MissingDependencies: missing}
		}
	}
	return nil
}

var labels = map[string]string{
	Name:       "Name",
	Email:      "Email",
	Phone:      "Phone",
	Location:   "Location",
	Skills:     "Skills",
	JobTitles:  "Job Titles",
	JobHistory: "Job History",
	Companies:  "Companies",
	Experience: "Total Experience",
	Score:      "Resume Score",
	TechStack:  "Tech Stack",
}

// Label returns the human-readable label of a field
func Label(name string) string {
	if l, ok := labels[name]; ok {
		return l
	}
	words := strings.Fields(strings.ReplaceAll(name, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
