package jobtitle

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-extractor/internal/dates"
	"github.com/jonathan/resume-extractor/internal/patterns"
)

const (
	headerScanLen   = 1500
	minBlockLen     = 40
	labelAnchorDist = 50
	windowRadius    = 1200
)

type compiled struct {
	sectionHeaders []*regexp.Regexp
	sectionEnd     *regexp.Regexp
	qualifiedEnd   *regexp.Regexp
	ranges         []*regexp.Regexp
}

func compile(lib *patterns.Library) compiled {
	var c compiled
	for _, h := range lib.WorkHeaders() {
		body := strings.ReplaceAll(regexp.QuoteMeta(h), " ", `\s+`)
		c.sectionHeaders = append(c.sectionHeaders, regexp.MustCompile(`(?im)^\s*\W*(`+body+`)`))
	}

	ends := make([]string, 0, len(lib.SectionEndHeaders()))
	for _, h := range lib.SectionEndHeaders() {
		ends = append(ends, regexp.QuoteMeta(h))
	}
	alt := strings.Join(ends, "|")
	c.sectionEnd = regexp.MustCompile(`(?im)^\W*((?:` + alt + `)\b)`)
	// "TECHNICAL SKILLS", "Key Skills & Tools", "PERSONAL PROJECTS:"
	c.qualifiedEnd = regexp.MustCompile(`(?im)^[^\w\n]*((?:[A-Za-z&/]+[ \t]+){1,3}(?:` + alt + `)\b(?:[ \t]*(?:&|and|/)[ \t]*[A-Za-z]+){0,2}[ \t]*[:\-–—]?[ \t]*)$`)

	cur := lib.CurrentAlternation()
	month := `\b` + dates.MonthPattern + `\s*['’]?\s*\d{2,4}`
	c.ranges = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(` + month + `)\s*[-–—]\s*(` + month + `|\b(?:` + cur + `)\b|--)`),
		regexp.MustCompile(`(?i)\(?(\d{4})\s*[-–—]+\s*(\d{4}|\b(?:` + cur + `)\b)\)?`),
		regexp.MustCompile(`(?i)(\d{1,2}/\d{4})\s*[-–—]+\s*(\d{1,2}/\d{4}|\b(?:` + cur + `)\b)`),
	}
	return c
}

var (
	headerAsPattern = regexp.MustCompile(`(?i)(?:presently|currently|working)\s+as\s+(\b[A-Z][a-zA-Z\s,]+?)(?:\s+(?:for|in|at)\b|\s*[,;:\n])`)
	nameShapedLine  = regexp.MustCompile(`^\s*[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\s*$`)
	fresherPattern  = regexp.MustCompile(`(?i)\b([A-Za-z\s]{4,30}(?:trainee|fresher|intern))\b`)
	objectiveLine   = regexp.MustCompile(`(?i)(?:seeking|looking\s+for|objective|career|role\s+of)`)
	labelAnchor     = regexp.MustCompile(`(?i)\b(?:role|title|designation|position)\s*[:\-\s]`)
	bulletJobStart  = regexp.MustCompile(`^\s*(?:\d+\.|\*|•|➤)\s*[A-Z][a-z]+`)
	notJobStart     = regexp.MustCompile(`(?i)responsibilities|description|project|skill`)
)

type section struct {
	text  string
	start int
}

// headerTitle checks the top of the resume for an explicit current role
func (m *Machine) headerTitle(text string) (string, string) {
	header := prefix(text, headerScanLen)

	if match := headerAsPattern.FindStringSubmatch(header); match != nil {
		title := m.CleanTitle(match[1])
		if title != "" && m.lib.HasTitleIndicator(title) && len(strings.Fields(title)) >= 2 {
			return title, "header"
		}
	}

	lines := strings.Split(header, "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}
	for _, line := range lines {
		if !m.lib.HasHeaderTitleNoun(line) || len(strings.Fields(line)) >= 10 {
			continue
		}
		if nameShapedLine.MatchString(line) {
			continue
		}
		if title := m.CleanTitle(line); title != "" && m.lib.HasTitleIndicator(title) {
			return title, "header_line"
		}
	}
	return "", ""
}

// fresherTitle scans every line for a trainee/fresher/intern phrase outside objective statements
func (m *Machine) fresherTitle(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if objectiveLine.MatchString(line) {
			continue
		}
		if match := fresherPattern.FindStringSubmatch(line); match != nil {
			if title := m.CleanTitle(match[1]); title != "" {
				return title
			}
		}
	}
	return ""
}

// findSection returns the work-experience section: from the earliest header to the
// first section-end header that follows it
func (m *Machine) findSection(text string) (section, bool) {
	start := -1
	for _, re := range m.re.sectionHeaders {
		if loc := re.FindStringSubmatchIndex(text); loc != nil {
			if start < 0 || loc[2] < start {
				start = loc[2]
			}
		}
	}
	if start < 0 {
		return section{}, false
	}

	end := len(text)
	if from := start + 10; from < len(text) {
		end = from + m.sectionEndIn(text[from:])
	}

	body := strings.TrimRightFunc(text[start:end], unicode.IsSpace)
	if body == "" {
		return section{}, false
	}
	return section{text: body, start: start}, true
}

// sectionEndIn returns the offset of the first section-end header in rest, or len(rest).
// A header is a line led by an end word, or a short header-cased line ending in one.
func (m *Machine) sectionEndIn(rest string) int {
	end := len(rest)
	if loc := m.re.sectionEnd.FindStringSubmatchIndex(rest); loc != nil {
		end = loc[2]
	}
	for _, loc := range m.re.qualifiedEnd.FindAllStringSubmatchIndex(rest, -1) {
		if loc[2] >= end {
			break
		}
		if headerCased(rest[loc[2]:loc[3]]) {
			return loc[2]
		}
	}
	return end
}

// headerCased reports whether every word of line starts upper-case, ignoring connectors
func headerCased(line string) bool {
	for _, w := range strings.Fields(line) {
		switch strings.ToLower(w) {
		case "&", "and", "/", "of":
			continue
		}
		r, _ := utf8.DecodeRuneInString(w)
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// segment cuts the section into blocks at date-range and title-label anchors.
// Month-name ranges claim their span first; a later family only anchors outside it.
func (m *Machine) segment(sec section) []Entry {
	var (
		anchors []int
		spans   [][]int
	)
	for _, re := range m.re.ranges {
		for _, loc := range re.FindAllStringIndex(sec.text, -1) {
			if !overlaps(spans, loc) {
				spans = append(spans, loc)
				anchors = append(anchors, loc[0])
			}
		}
	}
	dateAnchors := len(anchors)
	for _, loc := range labelAnchor.FindAllStringIndex(sec.text, -1) {
		near := false
		for _, p := range anchors[:dateAnchors] {
			if abs(loc[0]-p) < labelAnchorDist {
				near = true
				break
			}
		}
		if !near {
			anchors = append(anchors, loc[0])
		}
	}
	anchors = sortedUnique(anchors)

	if len(anchors) == 0 {
		m.logger.Debug("no date or title anchors, grouping lines")
		return m.segmentLines(sec)
	}

	entries := make([]Entry, 0, len(anchors))
	for i, start := range anchors {
		end := len(sec.text)
		if i+1 < len(anchors) {
			end = anchors[i+1]
		}
		raw := sec.text[start:end]
		body := strings.TrimSpace(raw)
		if utf8.RuneCountInString(body) < minBlockLen {
			continue
		}
		lead := len(raw) - len(strings.TrimLeftFunc(raw, unicode.IsSpace))
		entries = append(entries, Entry{Text: body, Start: sec.start + start + lead})
	}
	return entries
}

// segmentLines groups lines into blocks, starting a new block at each bulleted title line
func (m *Machine) segmentLines(sec section) []Entry {
	var (
		entries    []Entry
		block      []string
		blockStart int
		offset     int
	)

	flush := func() {
		if len(block) == 0 {
			return
		}
		body := strings.Join(block, "\n")
		if utf8.RuneCountInString(body) > minBlockLen {
			entries = append(entries, Entry{Text: body, Start: sec.start + blockStart})
		}
	}

	for _, raw := range strings.SplitAfter(sec.text, "\n") {
		lineStart := offset
		offset += len(raw)
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lineStart += strings.Index(raw, line)

		isStart := bulletJobStart.MatchString(line) &&
			m.lib.HasTitleIndicator(line) &&
			!notJobStart.MatchString(line)

		if isStart && len(block) > 0 {
			flush()
			block = nil
		}
		if len(block) == 0 {
			blockStart = lineStart
		}
		block = append(block, line)
	}
	flush()
	return entries
}

func prefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func window(s string, center, radius int) string {
	lo, hi := center-radius, center+radius
	if lo < 0 {
		lo = 0
	}
	if hi > len(s) {
		hi = len(s)
	}
	for lo > 0 && lo < len(s) && !utf8.RuneStart(s[lo]) {
		lo--
	}
	for hi < len(s) && !utf8.RuneStart(s[hi]) {
		hi++
	}
	if lo >= hi {
		return ""
	}
	return s[lo:hi]
}

func lineNumber(text string, pos int) int {
	if pos < 0 || pos > len(text) {
		return -1
	}
	return strings.Count(text[:pos], "\n") + 1
}

func overlaps(spans [][]int, loc []int) bool {
	for _, sp := range spans {
		if loc[0] < sp[1] && sp[0] < loc[1] {
			return true
		}
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sortedUnique(xs []int) []int {
	if len(xs) == 0 {
		return xs
	}
	sort.Ints(xs)
	out := xs[:1]
	for _, x := range xs[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}
	return out
}
