package jobtitle

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

var (
	labelledAnywhere = regexp.MustCompile(`(?i)\b(?:title|designation|role|position)\s*[:\-]\s*(.+)`)
	// the capture stops before the first field cue that follows it
	labelledStop = regexp.MustCompile(`(?i)(?:title|role|designation|position)\s*[:\-]\s*([A-Z][^\n]*?)\s*(?:Project|Duration|Team|Client|Development|Description|Roles?|Organization|Company|Project\s*Name|Responsibilities|Date|Environment|Skills?)`)
	fieldCue     = regexp.MustCompile(`(?i)\s{2,}|[,;|\n]|Project Duration|Project Name|Client Name|Roles|Responsibilities`)
	companyLine  = regexp.MustCompile(`(?i)\b(?:pvt|llc|inc|corp|ltd|university)\b|client name|organization`)
	contextCue   = regexp.MustCompile(`(?i)company|organization|client|university|pvt|ltd|corp`)
	titleSep     = regexp.MustCompile(`[-–—:]`)
	leadBullet   = regexp.MustCompile(`^\s*(?:\d+\.|\*|•|➤)\s*`)
)

type titleRule struct {
	name  string
	apply func(m *Machine, e Entry) string
}

// Evaluated in order; the first non-empty title wins.
var titleRules = []titleRule{
	{"labelled", (*Machine).ruleLabelled},
	{"labelled_stop", (*Machine).ruleLabelledStop},
	{"top_lines", (*Machine).ruleTopLines},
	{"context", (*Machine).ruleContext},
	{"title_noun", (*Machine).ruleTitleNoun},
}

func (m *Machine) titleFromBlock(e Entry) (string, string) {
	for _, r := range titleRules {
		if title := r.apply(m, e); title != "" {
			m.logger.Debug("title extracted", zap.String("rule", r.name), zap.String("title", title))
			return title, r.name
		}
	}
	return "", ""
}

// plausible cleans raw and keeps it only if a title indicator survives
func (m *Machine) plausible(raw string) string {
	title := m.CleanTitle(raw)
	if title == "" || !m.lib.HasTitleIndicator(title) {
		return ""
	}
	return title
}

// labelValue returns the text after a title label, cut at the next field cue
func labelValue(text string) (string, bool) {
	match := labelledAnywhere.FindStringSubmatch(text)
	if match == nil {
		return "", false
	}
	value := strings.TrimSpace(match[1])
	if loc := fieldCue.FindStringIndex(value); loc != nil {
		value = value[:loc[0]]
	}
	return value, true
}

func (m *Machine) ruleLabelled(e Entry) string {
	value, ok := labelValue(e.Text)
	if !ok {
		return ""
	}
	return m.plausible(value)
}

func (m *Machine) ruleLabelledStop(e Entry) string {
	match := labelledStop.FindStringSubmatch(e.Text)
	if match == nil {
		return ""
	}
	return m.plausible(match[1])
}

// ruleTopLines looks for a short title line among the first six lines of the block
func (m *Machine) ruleTopLines(e Entry) string {
	lines := strings.Split(e.Text, "\n")
	if len(lines) > 6 {
		lines = lines[:6]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		n := utf8.RuneCountInString(line)
		words := len(strings.Fields(line))
		if n < 3 || n > 120 || words < 1 || words > 8 {
			continue
		}
		if !m.lib.HasTitleIndicator(line) || companyLine.MatchString(line) {
			continue
		}

		// "1. Acme (Noida) - Senior Advisor" or "Senior Advisor - Acme"
		if loc := titleSep.FindStringIndex(line); loc != nil {
			if title := m.plausible(line[loc[1]:]); title != "" {
				return title
			}
			if title := m.plausible(leadBullet.ReplaceAllString(line[:loc[0]], "")); title != "" {
				return title
			}
			continue
		}
		if title := m.plausible(leadBullet.ReplaceAllString(line, "")); title != "" {
			return title
		}
	}
	return ""
}

// ruleContext accepts a title-indicator line followed within four lines by company or date context
func (m *Machine) ruleContext(e Entry) string {
	lines := strings.Split(e.Text, "\n")
	for i := 0; i < len(lines)-1; i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || !m.lib.HasTitleIndicator(line) {
			continue
		}
		end := i + 5
		if end > len(lines) {
			end = len(lines)
		}
		ctx := strings.TrimSpace(strings.Join(lines[i+1:end], " "))
		if !contextCue.MatchString(ctx) {
			if _, dated := m.parseRange(ctx); !dated {
				continue
			}
		}
		if title := m.plausible(line); title != "" {
			return title
		}
	}
	return ""
}

func (m *Machine) ruleTitleNoun(e Entry) string {
	for _, match := range m.lib.TitleNounPattern().FindAllString(e.Text, -1) {
		if title := m.plausible(match); title != "" {
			return title
		}
	}
	return ""
}

// labelledNear searches the other blocks, current ones first and then by distance,
// and finally the raw text around the selected block, for a labelled title
func (m *Machine) labelledNear(text string, entries []Entry, selected int) (string, string) {
	pos := entries[selected].Start

	order := make([]int, 0, len(entries))
	for i := range entries {
		if i != selected {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		ea, eb := entries[order[a]], entries[order[b]]
		if ea.IsCurrent != eb.IsCurrent {
			return ea.IsCurrent
		}
		return abs(ea.Start-pos) < abs(eb.Start-pos)
	})

	for _, i := range order {
		if value, ok := labelValue(entries[i].Text); ok {
			if title := m.CleanTitle(value); title != "" {
				return title, "nearby_block"
			}
		}
	}

	if value, ok := labelValue(window(text, pos, windowRadius)); ok {
		if title := m.CleanTitle(value); title != "" {
			return title, "nearby_text"
		}
	}
	return "", ""
}

func dedupe(titles []string) []string {
	seen := make(map[string]struct{}, len(titles))
	out := make([]string, 0, len(titles))
	for _, t := range titles {
		key := strings.ToLower(t)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}
