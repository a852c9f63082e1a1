package dates

import (
	"regexp"
	"strings"
	"time"
)

// Range is one "start - end" span found in text
type Range struct {
	Text    string
	Offset  int
	Start   time.Time
	End     time.Time
	Current bool
}

// Months returns the calendar month length of the range
func (r Range) Months() int {
	return MonthsBetween(r.Start, r.End)
}

// RangeFinder locates "Mon YYYY - Mon YYYY|Present" spans and resolves them to times
type RangeFinder struct {
	parser Parser
	re     *regexp.Regexp
}

// NewRangeFinder builds a finder whose open-ended ranges end on any word of the
// currentAlternation regex fragment, or on a bare "--"
func NewRangeFinder(parser Parser, currentAlternation string) *RangeFinder {
	token := `[A-Za-z]{3,9}[\s'’]?\d{2,4}`
	expr := `(` + token + `)\s*[-–]\s*(?:(` + token + `)|(--|(?i:\b(?:` + currentAlternation + `)\b)))`
	return &RangeFinder{parser: parser, re: regexp.MustCompile(expr)}
}

// FindAll returns every range whose start (and closed end) parse. Unparsable
// spans are skipped.
func (f *RangeFinder) FindAll(text string) []Range {
	var out []Range
	for _, m := range f.re.FindAllStringSubmatchIndex(text, -1) {
		startTok := text[m[2]:m[3]]
		start, ok := f.parser.Parse(startTok)
		if !ok {
			continue
		}

		r := Range{Text: text[m[0]:m[1]], Offset: m[0], Start: start}
		if m[4] >= 0 {
			end, ok := f.parser.Parse(text[m[4]:m[5]])
			if !ok {
				continue
			}
			r.End = end
		} else {
			r.End = f.parser.Now()
			r.Current = true
		}
		out = append(out, r)
	}
	return out
}

// String renders the range as it appeared in the text
func (r Range) String() string {
	return strings.TrimSpace(r.Text)
}
