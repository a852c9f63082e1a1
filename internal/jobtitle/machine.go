// Package jobtitle finds the current or most recent job title in resume text.
//
// The Machine moves a document through a fixed sequence of states: it locates the
// work-experience section, cuts it into job blocks on date and label anchors, dates
// each block, selects the latest one and pulls a title out of it with an ordered list
// of rules. Any stage that yields nothing ends the run in Failed.
package jobtitle

import (
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-extractor/internal/dates"
	"github.com/jonathan/resume-extractor/internal/patterns"
)

// State is the stage a run reached
type State int

const (
	NoSection State = iota
	Segmented
	Dated
	Selected
	Titled
	Failed
)

func (s State) String() string {
	switch s {
	case NoSection:
		return "no_section"
	case Segmented:
		return "segmented"
	case Dated:
		return "dated"
	case Selected:
		return "selected"
	case Titled:
		return "titled"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Entry is one job block of the work-experience section
type Entry struct {
	Text      string
	Start     int // byte offset of the block in the full text
	StartDate *time.Time
	EndDate   *time.Time
	IsCurrent bool
	DateLabel string
	Dated     bool
}

// Outcome reports the title found and how the run got there
type Outcome struct {
	Title    string
	State    State
	Entries  []Entry
	Selected int // index into Entries, -1 when no block was selected
	Rule     string
}

// Found reports whether a title was extracted
func (o Outcome) Found() bool {
	return o.State == Titled && o.Title != ""
}

// Machine runs the title search. It holds no per-run state and is safe for concurrent use.
type Machine struct {
	lib    *patterns.Library
	parser dates.Parser
	logger *zap.Logger
	re     compiled
}

// New creates a Machine. A nil logger discards diagnostics.
func New(lib *patterns.Library, parser dates.Parser, logger *zap.Logger) *Machine {
	if lib == nil {
		lib = patterns.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Machine{lib: lib, parser: parser, logger: logger, re: compile(lib)}
}

// WithLogger returns a copy of m that logs to logger
func (m *Machine) WithLogger(logger *zap.Logger) *Machine {
	c := *m
	if logger == nil {
		logger = zap.NewNop()
	}
	c.logger = logger
	return &c
}

// Run extracts the latest job title from text
func (m *Machine) Run(text string) Outcome {
	out := Outcome{State: NoSection, Selected: -1}

	if title, rule := m.headerTitle(text); title != "" {
		m.logger.Debug("title found in header", zap.String("title", title), zap.String("rule", rule))
		out.Title, out.State, out.Rule = title, Titled, rule
		return out
	}

	sec, ok := m.findSection(text)
	if !ok {
		m.logger.Debug("no work experience section, trying fresher phrases")
		if title := m.fresherTitle(text); title != "" {
			out.Title, out.State, out.Rule = title, Titled, "fresher"
			return out
		}
		out.State = Failed
		return out
	}

	entries := m.segment(sec)
	if len(entries) == 0 {
		m.logger.Debug("no job entries parsed", zap.Int("section_start", sec.start))
		out.State = Failed
		return out
	}
	out.State = Segmented
	m.logger.Debug("section segmented", zap.Int("blocks", len(entries)))

	entries = m.date(entries)
	out.Entries = entries
	out.State = Dated

	idx := selectLatest(entries)
	out.Selected = idx
	out.State = Selected
	latest := entries[idx]
	m.logger.Debug("latest job selected",
		zap.Int("block", idx),
		zap.Int("line", lineNumber(text, latest.Start)),
		zap.Bool("current", latest.IsCurrent),
		zap.String("dates", latest.DateLabel))

	if title, rule := m.titleFromBlock(latest); title != "" {
		out.Title, out.State, out.Rule = title, Titled, rule
		return out
	}

	if title, rule := m.labelledNear(text, entries, idx); title != "" {
		m.logger.Debug("title found near latest job", zap.String("title", title), zap.String("rule", rule))
		out.Title, out.State, out.Rule = title, Titled, rule
		return out
	}

	m.logger.Debug("could not extract title from latest job", zap.Int("line", lineNumber(text, latest.Start)))
	out.State = Failed
	return out
}

// History returns a title for every job block, most recent first, without duplicates
func (m *Machine) History(text string) []string {
	var titles []string

	sec, ok := m.findSection(text)
	if ok {
		entries := m.date(m.segment(sec))
		for _, i := range recencyOrder(entries) {
			if title, _ := m.titleFromBlock(entries[i]); title != "" {
				titles = append(titles, title)
			}
		}
	} else if title := m.fresherTitle(text); title != "" {
		titles = append(titles, title)
	}

	if len(titles) == 0 {
		if title, _ := m.headerTitle(text); title != "" {
			titles = append(titles, title)
		}
	}
	return dedupe(titles)
}
