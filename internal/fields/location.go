package fields

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jonathan/resume-extractor/internal/ensemble"
	"github.com/jonathan/resume-extractor/internal/types"
)

// Location strategy origins
const (
	OriginLabeled      = "labeled"
	OriginPhrase       = "phrase"
	OriginPIN          = "pin_code"
	OriginSector       = "sector"
	OriginWork         = "work_experience"
	OriginTraining     = "training"
	OriginNearContact  = "near_contact"
	OriginEntity       = "entity"
	OriginCurrentBlock = "current_block"
)

const currentBlockBonus = 0.15

type locationRule struct {
	origin     string
	confidence float64
	re         *regexp.Regexp // group 1 holds the city text
}

var (
	locationRules = []locationRule{
		{OriginLabeled, 0.85, regexp.MustCompile(`(?i)\b(?:location|address|residence)\b\s*[:\-]?\s*([^\n]+)`)},
		{OriginPhrase, 0.70, regexp.MustCompile(`(?i)\b(?:based\s+(?:out\s+of|in)|located\s+in)\s+([a-z][a-z \t,]+)`)},
		{OriginPIN, 0.70, regexp.MustCompile(`\b([A-Z][a-zA-Z \t]+)[ \t]+[–\-][ \t]*\d{6}`)},
		{OriginSector, 0.70, regexp.MustCompile(`(?i)Sector\s*-?\d{1,3}\s*,?\s*([a-z]+)`)},
		{OriginWork, 0.95, regexp.MustCompile(`(?i)[^\n]{0,100}\(([^)\n]+)\)[^\n]{0,100}?(?:present|202\d|current)`)},
		{OriginTraining, 0.65, regexp.MustCompile(`(?i)(?:training|project|consultant)[^\n]*?,[ \t]*([a-z][a-z \t]+)`)},
	}
	contactMarker = regexp.MustCompile(`@[a-zA-Z]+\.[a-zA-Z]+|\+?\d{10}`)
	currentMarker = regexp.MustCompile(`(?i)\b(?:present|current|till\s+date)\b`)
	parenthetical = regexp.MustCompile(`\(([^)]+)\)`)
)

// LocationExtractor gathers city candidates from several strategies and lets the
// ensemble pick one. A city from the block around the current job wins outright.
type LocationExtractor struct{ env Env }

// NewLocationExtractor creates the location extractor
func NewLocationExtractor(env Env) *LocationExtractor { return &LocationExtractor{env: env} }

// Name returns the field name
func (l *LocationExtractor) Name() string { return Location }

type textLine struct {
	text   string
	offset int
}

// Extract returns the title-cased city or "Not found"
func (l *LocationExtractor) Extract(doc *types.Document, debug bool) types.Value {
	log := l.env.debugLogger(Location, debug)
	text := doc.Text
	pool := ensemble.NewPool(len(text))

	for _, rule := range locationRules {
		for _, m := range rule.re.FindAllStringSubmatchIndex(text, -1) {
			if m[2] < 0 {
				continue
			}
			l.addCandidate(pool, text[m[2]:m[3]], ensemble.Candidate{
				Confidence: rule.confidence,
				Origin:     rule.origin,
				Position:   m[0],
				Context:    text[m[0]:m[1]],
			})
		}
	}

	lines := splitLines(text)
	for i, line := range lines {
		if contactMarker.MatchString(line.text) {
			l.scanBlock(pool, lines[max(0, i-5):min(len(lines), i+2)], 0.65, OriginNearContact, 0)
			break
		}
	}

	for _, e := range doc.EntitiesWithLabel(types.LabelGPE) {
		l.addCandidate(pool, e.Text, ensemble.Candidate{
			Confidence: 0.75,
			Origin:     OriginEntity,
			Position:   e.Start,
			Context:    e.Text,
		})
	}

	for i, line := range lines {
		if currentMarker.MatchString(line.text) {
			l.scanBlock(pool, lines[max(0, i-1):min(len(lines), i+3)], 0.99, OriginCurrentBlock, currentBlockBonus)
			break
		}
	}

	for _, c := range pool.Candidates() {
		log.Debug("location candidate",
			zap.String("city", c.Value),
			zap.String("origin", c.Origin),
			zap.Float64("score", c.Score))
	}

	lib := l.env.library()
	if best, ok := pool.Best(OriginCurrentBlock); ok {
		log.Debug("current block override", zap.String("city", best.Value))
		return types.Text(titleCity(lib.CanonicalCity(best.Value)))
	}
	group, ok := ensemble.Vote(pool.Candidates(), lib.CanonicalCity)
	if !ok {
		log.Debug("no location above threshold", zap.Float64("aggregate", group.Aggregate))
		return types.NotFoundText()
	}
	log.Debug("location vote", zap.String("city", group.Key), zap.Float64("aggregate", group.Aggregate))
	return types.Text(titleCity(group.Key))
}

// addCandidate adds the first known city inside raw, if any
func (l *LocationExtractor) addCandidate(pool *ensemble.Pool, raw string, c ensemble.Candidate) {
	lib := l.env.library()
	m := lib.CityPattern().FindString(raw)
	if m == "" {
		return
	}
	city := lib.CanonicalCity(m)
	if !lib.IsCity(city) {
		return
	}
	c.Value = city
	pool.Add(c)
}

// scanBlock proposes parenthesized text and every known city on each block line.
// Each candidate's context is its own line.
func (l *LocationExtractor) scanBlock(pool *ensemble.Pool, block []textLine, confidence float64, origin string, bonus float64) {
	lib := l.env.library()
	for _, line := range block {
		base := ensemble.Candidate{
			Confidence: confidence,
			Origin:     origin,
			Position:   line.offset,
			Context:    line.text,
			Bonus:      bonus,
		}
		if m := parenthetical.FindStringSubmatch(line.text); m != nil {
			l.addCandidate(pool, m[1], base)
		}
		for _, loc := range lib.CityPattern().FindAllStringIndex(line.text, -1) {
			c := base
			c.Position = line.offset + loc[0]
			l.addCandidate(pool, line.text[loc[0]:loc[1]], c)
		}
	}
}

// splitLines returns the trimmed non-empty lines with their byte offsets
func splitLines(text string) []textLine {
	var out []textLine
	offset := 0
	for _, raw := range strings.SplitAfter(text, "\n") {
		if t := strings.TrimSpace(raw); t != "" {
			out = append(out, textLine{text: t, offset: offset + strings.Index(raw, t)})
		}
		offset += len(raw)
	}
	return out
}

func titleCity(city string) string {
	return cases.Title(language.Und).String(city)
}
