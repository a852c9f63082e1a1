package fields

import (
	"fmt"
	"regexp"
	"strconv"

	"go.uber.org/zap"

	"github.com/jonathan/resume-extractor/internal/dates"
	"github.com/jonathan/resume-extractor/internal/types"
)

const maxStatedYears = 50

var statedYears = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(\d{1,2})\s*\+?\s*(?:years|yrs)\s+(?:of\s+)?experience\b`),
	regexp.MustCompile(`(?i)(?:total\s+)?experience\s*[:\-]?\s*(\d{1,2})\s*\+?\s*(?:years|yrs)`),
}

// ExperienceExtractor totals the months covered by date ranges, or reports an
// explicitly stated number of years when that is larger
type ExperienceExtractor struct {
	env    Env
	ranges *dates.RangeFinder
}

// NewExperienceExtractor creates the experience extractor
func NewExperienceExtractor(env Env) *ExperienceExtractor {
	return &ExperienceExtractor{
		env:    env,
		ranges: dates.NewRangeFinder(env.Parser, env.library().CurrentAlternation()),
	}
}

// Name returns the field name
func (e *ExperienceExtractor) Name() string { return Experience }

// Extract returns "N+ years" or "Y years M months"; nothing found reads "0 years 0 months"
func (e *ExperienceExtractor) Extract(doc *types.Document, debug bool) types.Value {
	log := e.env.debugLogger(Experience, debug)

	total := 0
	for _, r := range e.ranges.FindAll(doc.Text) {
		if m := r.Months(); m > 0 {
			total += m
			log.Debug("date range", zap.String("range", r.Text), zap.Int("months", m))
		}
	}

	stated := 0
	for _, re := range statedYears {
		for _, m := range re.FindAllStringSubmatch(doc.Text, -1) {
			n, err := strconv.Atoi(m[1])
			if err == nil && n < maxStatedYears && n > stated {
				stated = n
			}
		}
	}
	log.Debug("experience totals", zap.Int("range_months", total), zap.Int("stated_years", stated))

	if stated > 0 && stated*12 > total {
		return types.Text(fmt.Sprintf("%d+ years", stated))
	}
	return types.Text(fmt.Sprintf("%d years %d months", total/12, total%12))
}
