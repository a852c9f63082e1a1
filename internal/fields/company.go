package fields

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-extractor/internal/types"
)

var (
	companyLabels = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bOrganization\s*[:\-]?[ \t]*([^\n]+)`),
		regexp.MustCompile(`(?i)\bEmployer\s*[:\-]?[ \t]*([^\n]+)`),
		regexp.MustCompile(`(?i)\bCompany\s*[:\-]?[ \t]*([^\n]+)`),
	}
	companyTableRow = regexp.MustCompile(`<tr>\s*<td>([^<]+)</td>`)
	companyPhrases  = []*regexp.Regexp{
		regexp.MustCompile(`\bat[ \t]+([A-Z][a-zA-Z0-9&., \t]+)`),
		regexp.MustCompile(`\bworking[ \t]+in[ \t]+([A-Z][a-zA-Z0-9&., \t]+)`),
	}
	companyParens   = regexp.MustCompile(`\(.*?\)`)
	companyRoleTail = regexp.MustCompile(`(?i)\bas\s+a\b.*`)
	companyLocTail  = regexp.MustCompile(`(?i),?\s*\b(?:India|UK|United Kingdom|Bangalore|Noida|Gurgaon|Fleet|Hamshire)\b.*`)
)

const (
	minCompanyWords = 2
	maxCompanyWords = 6
)

// CompanyExtractor collects employer names from labels, table rows and
// "at X" phrases
type CompanyExtractor struct{ env Env }

// NewCompanyExtractor creates the company extractor
func NewCompanyExtractor(env Env) *CompanyExtractor { return &CompanyExtractor{env: env} }

// Name returns the field name
func (c *CompanyExtractor) Name() string { return Companies }

// Extract returns the sorted set of cleaned company names
func (c *CompanyExtractor) Extract(doc *types.Document, debug bool) types.Value {
	log := c.env.debugLogger(Companies, debug)

	var raw []string
	collect := func(source string, re *regexp.Regexp) {
		for _, m := range re.FindAllStringSubmatch(doc.Text, -1) {
			raw = append(raw, strings.TrimSpace(m[1]))
			log.Debug("company candidate", zap.String("source", source), zap.String("text", m[1]))
		}
	}
	for _, re := range companyLabels {
		collect("label", re)
	}
	collect("table", companyTableRow)
	for _, re := range companyPhrases {
		collect("phrase", re)
	}

	var out []string
	for _, r := range raw {
		if name, ok := cleanCompany(r); ok {
			out = append(out, name)
		}
	}
	return types.SortedSet(out)
}

func cleanCompany(raw string) (string, bool) {
	s := companyParens.ReplaceAllString(raw, "")
	s = companyRoleTail.ReplaceAllString(s, "")
	s = companyLocTail.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)

	if strings.Contains(strings.ToUpper(s), "FROM TO") {
		return "", false
	}
	words := len(strings.Fields(s))
	if words < minCompanyWords || words > maxCompanyWords {
		return "", false
	}
	if strings.Contains(strings.ToLower(s), "client") {
		return "", false
	}
	return s, true
}
