package fields

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-extractor/internal/types"
)

var (
	emailPattern  = regexp.MustCompile(`\b[\w.-]+@[\w.-]+\.\w+\b`)
	labeledEmail  = regexp.MustCompile(`(?i)\b(?:email|e-mail)\b\s*[:\-]?\s*(\w[\w.-]*@[\w.-]+\.\w+)`)
	indianPhone   = regexp.MustCompile(`\+91\s?\d{10}`)
	labeledPhone  = regexp.MustCompile(`(?i)(?:mobile|phone|contact)\s*[:\-]?\s*(\+?\d[\d\s\-.]{8,})`)
	phonePatterns = []*regexp.Regexp{
		indianPhone,
		regexp.MustCompile(`\b[6-9]\d{9}\b`),
		regexp.MustCompile(`\+\d{1,3}[-\s]?\d{6,12}`),
		regexp.MustCompile(`\b\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`),
	}
)

// EmailExtractor prefers an "Email:" labelled address over the first address in the text
type EmailExtractor struct{ env Env }

// NewEmailExtractor creates the email extractor
func NewEmailExtractor(env Env) *EmailExtractor { return &EmailExtractor{env: env} }

// Name returns the field name
func (e *EmailExtractor) Name() string { return Email }

// Extract returns the email address or "Not found"
func (e *EmailExtractor) Extract(doc *types.Document, debug bool) types.Value {
	log := e.env.debugLogger(Email, debug)

	matches := emailPattern.FindAllString(doc.Text, -1)
	log.Debug("email matches", zap.Strings("matches", matches))

	if m := labeledEmail.FindStringSubmatch(doc.Text); m != nil {
		log.Debug("labelled email matched", zap.String("email", m[1]))
		return types.Text(strings.TrimSpace(m[1]))
	}
	if len(matches) > 0 {
		return types.Text(strings.TrimSpace(matches[0]))
	}
	return types.NotFoundText()
}

// PhoneExtractor tries the phone patterns in priority order. An earlier pattern
// wins even when a later one matches earlier in the text.
type PhoneExtractor struct{ env Env }

// NewPhoneExtractor creates the phone extractor
func NewPhoneExtractor(env Env) *PhoneExtractor { return &PhoneExtractor{env: env} }

// Name returns the field name
func (p *PhoneExtractor) Name() string { return Phone }

// Extract returns the phone number or "Not found"
func (p *PhoneExtractor) Extract(doc *types.Document, debug bool) types.Value {
	log := p.env.debugLogger(Phone, debug)

	for i, re := range phonePatterns {
		if m := re.FindString(doc.Text); m != "" {
			log.Debug("phone matched", zap.Int("pattern", i+1), zap.String("phone", m))
			return types.Text(strings.TrimSpace(m))
		}
	}
	if m := labeledPhone.FindStringSubmatch(doc.Text); m != nil {
		log.Debug("labelled phone matched", zap.String("phone", m[1]))
		return types.Text(strings.TrimSpace(m[1]))
	}
	return types.NotFoundText()
}
