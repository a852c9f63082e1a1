package fields

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-extractor/internal/types"
)

var (
	listSeparators = strings.NewReplacer("\uf0b7", "\n", "•", "\n", "●", "\n", "▪", "\n", ",", "\n")
	compoundC      = regexp.MustCompile(`(?i)\bC\s*[/,\\&]*(?:\s*(?:and)?\s*)?C\+\+`)
)

// SkillsExtractor reports every vocabulary skill that occurs in the text
type SkillsExtractor struct{ env Env }

// NewSkillsExtractor creates the skills extractor
func NewSkillsExtractor(env Env) *SkillsExtractor { return &SkillsExtractor{env: env} }

// Name returns the field name
func (s *SkillsExtractor) Name() string { return Skills }

// Extract returns the sorted, lowercase set of matched skills
func (s *SkillsExtractor) Extract(doc *types.Document, debug bool) types.Value {
	log := s.env.debugLogger(Skills, debug)

	text := listSeparators.Replace(doc.Text)
	text = compoundC.ReplaceAllString(text, "C\nC++")

	var found []string
	for _, m := range s.env.library().Skills() {
		if m.MatchString(text) {
			found = append(found, m.Skill)
		}
	}
	log.Debug("skills matched", zap.Int("count", len(found)))
	return types.SortedSet(found)
}
