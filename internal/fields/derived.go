package fields

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-extractor/internal/types"
)

// TechStackDeriver groups the extracted skills into languages, tools and platforms
type TechStackDeriver struct{ env Env }

// NewTechStackDeriver creates the tech-stack deriver
func NewTechStackDeriver(env Env) *TechStackDeriver { return &TechStackDeriver{env: env} }

// Name returns the field name
func (t *TechStackDeriver) Name() string { return TechStack }

// Dependencies returns the fields the tech stack is computed from
func (t *TechStackDeriver) Dependencies() []string { return []string{Skills} }

// Derive returns three "Category: a, b" lines, or an empty list without skills
func (t *TechStackDeriver) Derive(prior types.Result, debug bool) types.Value {
	skills := prior[Skills]
	if !skills.Found() {
		return types.List(nil)
	}

	lib := t.env.library()
	var languages, tools, platforms []string
	for _, s := range skills.Items {
		switch {
		case lib.IsLanguage(s):
			languages = append(languages, s)
		case lib.IsTool(s):
			tools = append(tools, s)
		case lib.IsPlatform(s):
			platforms = append(platforms, s)
		}
	}

	lines := []string{
		stackLine("Languages", languages),
		stackLine("Tools", tools),
		stackLine("Platforms", platforms),
	}
	t.env.debugLogger(TechStack, debug).Debug("tech stack", zap.Strings("lines", lines))
	return types.List(lines)
}

func stackLine(label string, items []string) string {
	sorted := append([]string(nil), items...)
	sort.Strings(sorted)
	return label + ": " + strings.Join(sorted, ", ")
}

// Score thresholds
const (
	minScoredTitles    = 3
	minScoredSkills    = 5
	minScoredCompanies = 3
)

// ScoreBreakdown records which completeness criteria a resume meets
type ScoreBreakdown struct {
	Name      bool
	Contact   bool
	Titles    bool
	Skills    bool
	Companies bool
}

// Total returns the number of criteria met, 0 to 5
func (b ScoreBreakdown) Total() int {
	n := 0
	for _, ok := range []bool{b.Name, b.Contact, b.Titles, b.Skills, b.Companies} {
		if ok {
			n++
		}
	}
	return n
}

// Breakdown evaluates the criteria against extracted fields
func Breakdown(prior types.Result) ScoreBreakdown {
	return ScoreBreakdown{
		Name:      prior[Name].Found(),
		Contact:   prior[Email].Found() && prior[Phone].Found(),
		Titles:    prior[JobHistory].Len() >= minScoredTitles,
		Skills:    prior[Skills].Len() >= minScoredSkills,
		Companies: prior[Companies].Len() >= minScoredCompanies,
	}
}

// ScoreDeriver rates how complete the extracted resume is
type ScoreDeriver struct{ env Env }

// NewScoreDeriver creates the score deriver
func NewScoreDeriver(env Env) *ScoreDeriver { return &ScoreDeriver{env: env} }

// Name returns the field name
func (s *ScoreDeriver) Name() string { return Score }

// Dependencies returns the fields the score is computed from
func (s *ScoreDeriver) Dependencies() []string {
	return []string{Name, Email, Phone, JobHistory, Skills, Companies}
}

// Derive returns the score as "N/5"
func (s *ScoreDeriver) Derive(prior types.Result, debug bool) types.Value {
	b := Breakdown(prior)
	s.env.debugLogger(Score, debug).Debug("score breakdown",
		zap.Bool("name", b.Name),
		zap.Bool("contact", b.Contact),
		zap.Bool("titles", b.Titles),
		zap.Bool("skills", b.Skills),
		zap.Bool("companies", b.Companies))
	return types.Text(fmt.Sprintf("%d/5", b.Total()))
}
