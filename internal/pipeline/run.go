// Package pipeline runs the field extractors over a document and assembles the result.
package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-extractor/internal/fields"
	"github.com/jonathan/resume-extractor/internal/types"
)

// Phases reported in progress events
const (
	PhaseExtract = "extract"
	PhaseDerive  = "derive"
)

// ProgressEvent represents a progress update during a run
type ProgressEvent struct {
	Field   string `json:"field"`
	Phase   string `json:"phase"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called after each field completes
type ProgressCallback func(event ProgressEvent)

// Selection chooses the fields to report and where to enable debug diagnostics
type Selection struct {
	Fields      []string // empty means every registered field
	Debug       bool
	DebugFields map[string]bool
}

func (s Selection) debugFor(field string) bool {
	return s.Debug || s.DebugFields[field]
}

// Orchestrator runs document extractors concurrently, then derivers in order
type Orchestrator struct {
	Registry   *fields.Registry
	Workers    int
	Logger     *zap.Logger
	OnProgress ProgressCallback
}

// New creates an orchestrator using one worker per CPU
func New(registry *fields.Registry, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		Registry: registry,
		Workers:  runtime.GOMAXPROCS(0),
		Logger:   logger,
	}
}

func (o *Orchestrator) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o *Orchestrator) workers() int {
	if o.Workers < 1 {
		return 1
	}
	return o.Workers
}

// emitProgress calls the progress callback if configured
func (o *Orchestrator) emitProgress(runID, field, phase string, v types.Value) {
	if o.OnProgress != nil {
		o.OnProgress(ProgressEvent{
			Field:   field,
			Phase:   phase,
			Message: fmt.Sprintf("%s: %s", fields.Label(field), v),
			RunID:   runID,
			Content: v,
		})
	}
}

// plan is the work for one run
type plan struct {
	selected []string
	extract  []string
	derive   []string
}

// resolve validates the selection against the registry. Unknown names are
// skipped with a warning; dependencies of selected derivers are added to the
// extraction set but not to the selection.
func (o *Orchestrator) resolve(names []string, log *zap.Logger) plan {
	if len(names) == 0 {
		names = o.Registry.Names()
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		if !o.Registry.Has(name) {
			log.Warn("unknown field skipped", zap.String("field", name))
			continue
		}
		wanted[name] = true
	}

	needed := make(map[string]bool)
	for name := range wanted {
		if d, ok := o.Registry.Deriver(name); ok {
			for _, dep := range d.Dependencies() {
				if _, ok := o.Registry.Extractor(dep); ok {
					needed[dep] = true
				} else {
					log.Warn("dependency is not an extractor", zap.String("field", name), zap.String("dependency", dep))
				}
			}
		}
	}

	var p plan
	for _, name := range o.Registry.Names() {
		if wanted[name] {
			p.selected = append(p.selected, name)
		}
		if _, ok := o.Registry.Deriver(name); ok {
			if wanted[name] {
				p.derive = append(p.derive, name)
			}
			continue
		}
		if wanted[name] || needed[name] {
			p.extract = append(p.extract, name)
		}
	}
	return p
}

// Run extracts the selected fields from doc. It never fails: a faulting
// extractor reports None and a cancelled context leaves the remaining fields None.
func (o *Orchestrator) Run(ctx context.Context, doc *types.Document, sel Selection) types.Result {
	runID := uuid.NewString()
	log := o.logger().With(zap.String("run_id", runID))
	p := o.resolve(sel.Fields, log)

	log.Info("extraction started",
		zap.String("source", doc.Meta.Source),
		zap.Strings("fields", p.selected),
		zap.Int("workers", o.workers()))
	started := time.Now()

	all := make(types.Result, len(p.extract)+len(p.derive))
	var mu sync.Mutex // protects all

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers())
	for _, name := range p.extract {
		name := name
		e, _ := o.Registry.Extractor(name)
		g.Go(func() error {
			v := types.None()
			if gCtx.Err() == nil {
				v = o.extract(e, doc, sel.debugFor(name), log)
			}
			mu.Lock()
			all[name] = v
			mu.Unlock()
			o.emitProgress(runID, name, PhaseExtract, v)
			return nil
		})
	}
	_ = g.Wait()

	for _, name := range p.derive {
		d, _ := o.Registry.Deriver(name)
		v := types.None()
		if ctx.Err() == nil {
			v = o.derive(d, all, sel.debugFor(name), log)
		}
		all[name] = v
		o.emitProgress(runID, name, PhaseDerive, v)
	}

	result := make(types.Result, len(p.selected))
	for _, name := range p.selected {
		result[name] = all[name]
	}

	log.Info("extraction finished",
		zap.Int("fields", len(result)),
		zap.Duration("elapsed", time.Since(started)))
	return result
}

// RunAll runs every document independently, in order
func (o *Orchestrator) RunAll(ctx context.Context, docs []*types.Document, sel Selection) []types.Result {
	results := make([]types.Result, 0, len(docs))
	for _, doc := range docs {
		results = append(results, o.Run(ctx, doc, sel))
	}
	return results
}

func (o *Orchestrator) extract(e fields.Extractor, doc *types.Document, debug bool, log *zap.Logger) (v types.Value) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("extractor panicked", zap.String("field", e.Name()), zap.String("panic", fmt.Sprint(r)))
			v = types.None()
		}
	}()
	started := time.Now()
	v = e.Extract(doc, debug)
	log.Debug("field extracted", zap.String("field", e.Name()), zap.Duration("elapsed", time.Since(started)))
	return v
}

func (o *Orchestrator) derive(d fields.Deriver, prior types.Result, debug bool, log *zap.Logger) (v types.Value) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("deriver panicked", zap.String("field", d.Name()), zap.String("panic", fmt.Sprint(r)))
			v = types.None()
		}
	}()
	return d.Derive(prior, debug)
}
