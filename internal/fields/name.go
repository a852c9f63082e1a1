package fields

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-extractor/internal/ingestion"
	"github.com/jonathan/resume-extractor/internal/types"
)

const nameScanLen = 500

var (
	nameLine      = regexp.MustCompile(`^(?:[A-Z][a-z]+|[A-Z]+)(?:\s+(?:[A-Z][a-z]+|[A-Z]+)){1,2}$`)
	upperNameLine = regexp.MustCompile(`^[A-Z]{2,}(?:\s+[A-Z]{2,}){1,2}$`)
	contactLine   = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+|\+91\s?\d{10}`)
	nameAbove     = regexp.MustCompile(`^((?:[A-Z]{2,}|[A-Z][a-z]+)(?:[ \t]+(?:[A-Z]{2,}|[A-Z][a-z]+)){1,2})\b`)
	nameNoise     = regexp.MustCompile(`(?i)\b(?:university|college|school|board|session|education)\b`)
	nameInHeader  = regexp.MustCompile(`\b([A-Z][a-z]+(?:[ \t]+[A-Z][a-z]+)+|[A-Z]{2,}[ \t]+[A-Z]{2,})\b`)
	labeledName   = regexp.MustCompile(`\b(?i:candidate\s+name|name)\s*[:\-]?\s*([A-Z][a-z]+(?:[ \t]+[A-Z][a-z]+){0,2})`)
)

// NameExtractor runs the name strategies in order and returns the first hit:
// a name-shaped first line, a name-shaped line just above the contact details,
// a capitalized phrase near the top, a "Name:" label, then PERSON entities.
type NameExtractor struct{ env Env }

// NewNameExtractor creates the name extractor
func NewNameExtractor(env Env) *NameExtractor { return &NameExtractor{env: env} }

// Name returns the field name
func (n *NameExtractor) Name() string { return Name }

// Extract returns the candidate's name or "Not found"
func (n *NameExtractor) Extract(doc *types.Document, debug bool) types.Value {
	log := n.env.debugLogger(Name, debug)
	lines := ingestion.Lines(doc.Text)

	strategies := []struct {
		name string
		run  func() string
	}{
		{"first_line", func() string { return n.firstLine(lines) }},
		{"above_contact", func() string { return n.aboveContact(lines) }},
		{"header_phrase", func() string { return n.headerPhrase(doc.Text) }},
		{"label", func() string { return labelled(doc.Text) }},
		{"entity", func() string { return n.personEntity(doc) }},
	}
	for _, s := range strategies {
		if name := s.run(); name != "" {
			log.Debug("name found", zap.String("strategy", s.name), zap.String("name", name))
			return types.Text(name)
		}
	}
	log.Debug("no name strategy matched")
	return types.NotFoundText()
}

func (n *NameExtractor) firstLine(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	line := lines[0]
	if n.env.library().IsBoilerplate(line) || len(strings.Fields(line)) < 2 {
		return ""
	}
	if nameLine.MatchString(line) || upperNameLine.MatchString(line) {
		return line
	}
	return ""
}

func (n *NameExtractor) aboveContact(lines []string) string {
	lib := n.env.library()
	for i, line := range lines {
		if !contactLine.MatchString(line) {
			continue
		}
		for j := max(0, i-5); j < i; j++ {
			m := nameAbove.FindStringSubmatch(lines[j])
			if m == nil {
				continue
			}
			cand := strings.TrimSpace(m[1])
			if nameNoise.MatchString(cand) || lib.IsBoilerplate(cand) || lib.HasTitleIndicator(cand) {
				continue
			}
			return cand
		}
		return ""
	}
	return ""
}

func (n *NameExtractor) headerPhrase(text string) string {
	lib := n.env.library()
	head := text
	if len(head) > nameScanLen {
		head = head[:nameScanLen]
	}
	for _, m := range nameInHeader.FindAllStringSubmatch(head, -1) {
		cand := strings.TrimSpace(m[1])
		if lib.IsBoilerplate(cand) || len(strings.Fields(cand)) < 2 {
			continue
		}
		return cand
	}
	return ""
}

func labelled(text string) string {
	if m := labeledName.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func (n *NameExtractor) personEntity(doc *types.Document) string {
	lib := n.env.library()
	for _, e := range doc.EntitiesWithLabel(types.LabelPerson) {
		cand := strings.TrimSpace(e.Text)
		if len(strings.Fields(cand)) < 2 || lib.MentionsInstitution(cand) {
			continue
		}
		if nameLine.MatchString(cand) {
			return cand
		}
	}
	return ""
}
