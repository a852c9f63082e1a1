package jobtitle

import (
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

type span struct {
	start   *time.Time
	end     *time.Time
	current bool
	label   string
}

// parseRange tries the month-name, bare-year and numeric range families in order
func (m *Machine) parseRange(text string) (span, bool) {
	for _, re := range m.re.ranges {
		match := re.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		startTok := strings.ReplaceAll(match[1], "’", "'")
		endTok := strings.ReplaceAll(match[2], "’", "'")

		sp := span{label: match[0]}
		if t, ok := m.parser.Parse(startTok); ok {
			sp.start = &t
		}
		sp.current = endTok == "" || m.lib.IsCurrentToken(endTok)
		if sp.current {
			now := m.parser.Now()
			sp.end = &now
		} else if t, ok := m.parser.Parse(endTok); ok {
			sp.end = &t
		}

		if sp.start != nil || sp.end != nil {
			return sp, true
		}
	}
	return span{}, false
}

// date attaches a range to every block; blocks without one stay as undated candidates
func (m *Machine) date(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		if sp, ok := m.parseRange(e.Text); ok {
			e.StartDate, e.EndDate = sp.start, sp.end
			e.IsCurrent = sp.current
			e.DateLabel = sp.label
			e.Dated = true
			m.logger.Debug("job block dated",
				zap.Int("offset", e.Start),
				zap.String("dates", sp.label),
				zap.Bool("current", sp.current))
		} else {
			m.logger.Debug("job block undated, kept as candidate", zap.Int("offset", e.Start))
		}
		out[i] = e
	}
	return out
}

// selectLatest prefers the current block that started last, then the block that ended
// last. Ties keep the earlier block.
func selectLatest(entries []Entry) int {
	best := -1
	for i, e := range entries {
		if !e.IsCurrent {
			continue
		}
		if best < 0 || stamp(e.StartDate) > stamp(entries[best].StartDate) {
			best = i
		}
	}
	if best >= 0 {
		return best
	}
	for i, e := range entries {
		if best < 0 || stamp(e.EndDate) > stamp(entries[best].EndDate) {
			best = i
		}
	}
	return best
}

// recencyOrder returns entry indexes: current blocks by start, then the rest by end,
// undated blocks last in document order
func recencyOrder(entries []Entry) []int {
	idx := make([]int, len(entries))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ea, eb := entries[idx[a]], entries[idx[b]]
		if ea.IsCurrent != eb.IsCurrent {
			return ea.IsCurrent
		}
		if ea.IsCurrent {
			return stamp(ea.StartDate) > stamp(eb.StartDate)
		}
		return stamp(ea.EndDate) > stamp(eb.EndDate)
	})
	return idx
}

// stamp orders optional dates; a missing date sorts before every real one
func stamp(t *time.Time) int64 {
	if t == nil {
		return -1 << 62
	}
	return t.Unix()
}
