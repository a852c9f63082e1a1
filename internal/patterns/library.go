// Package patterns provides the immutable vocabulary tables (skills, cities, section
// headers, job-title words) that the field extractors match resume text against.
package patterns

import (
	"regexp"
	"sort"
	"strings"
)

// Extras holds caller-supplied vocabulary merged into the defaults at construction
type Extras struct {
	Skills      []string
	Cities      []string
	CityAliases map[string]string
}

// SkillMatcher pairs a canonical skill name with its compiled matcher
type SkillMatcher struct {
	Skill string
	re    *regexp.Regexp
}

// MatchString reports whether the skill occurs in text
func (m SkillMatcher) MatchString(text string) bool {
	return m.re.MatchString(text)
}

// Library is a read-only set of lookup tables. It is safe for concurrent use.
type Library struct {
	skills        []SkillMatcher
	languages     map[string]struct{}
	tools         map[string]struct{}
	platforms     map[string]struct{}
	cities        map[string]struct{}
	cityAliases   map[string]string
	cityRe        *regexp.Regexp
	workHeaders   []string
	endHeaders    []string
	currentWords  []string
	currentRe     string
	indicators    []string
	indicatorRe   *regexp.Regexp
	noise         []*regexp.Regexp
	abbreviations map[string]string
	acronyms      map[string]struct{}
	boilerplate   map[string]struct{}
	institutionRe *regexp.Regexp
	headerNounRe  *regexp.Regexp
	titleNounRe   *regexp.Regexp
}

var defaultLibrary = New(Extras{})

// Default returns the shared library built from the default tables
func Default() *Library {
	return defaultLibrary
}

// New builds a library from the default tables plus extras
func New(extras Extras) *Library {
	lib := &Library{
		languages:     toSet(defaultLanguages),
		tools:         toSet(defaultTools),
		platforms:     toSet(defaultPlatforms),
		cities:        toSet(defaultCities),
		cityAliases:   make(map[string]string, len(defaultCityAliases)+len(extras.CityAliases)),
		workHeaders:   append([]string(nil), defaultWorkHeaders...),
		endHeaders:    append([]string(nil), defaultSectionEndHeaders...),
		currentWords:  append([]string(nil), defaultCurrentKeywords...),
		indicators:    append([]string(nil), defaultTitleIndicators...),
		abbreviations: make(map[string]string, len(defaultTitleAbbreviations)),
		acronyms:      toSet(defaultTitleAcronyms),
		boilerplate:   toSet(defaultNameBoilerplate),
	}

	skills := append([]string(nil), defaultSkills...)
	for _, s := range extras.Skills {
		if s = normalizeKey(s); s != "" {
			skills = append(skills, s)
		}
	}
	lib.skills = compileSkills(skills)

	for _, c := range extras.Cities {
		if c = normalizeKey(c); c != "" {
			lib.cities[c] = struct{}{}
		}
	}
	for k, v := range defaultCityAliases {
		lib.cityAliases[k] = v
	}
	for k, v := range extras.CityAliases {
		k, v = normalizeKey(k), normalizeKey(v)
		if k != "" && v != "" {
			lib.cityAliases[k] = v
		}
	}
	for alias, canonical := range lib.cityAliases {
		lib.cities[alias] = struct{}{}
		lib.cities[canonical] = struct{}{}
	}
	lib.cityRe = regexp.MustCompile(`(?i)\b(?:` + alternation(keys(lib.cities)) + `)\b`)

	for k, v := range defaultTitleAbbreviations {
		lib.abbreviations[k] = v
	}
	for _, p := range defaultTitleNoise {
		lib.noise = append(lib.noise, regexp.MustCompile(`(?i)`+p))
	}

	lib.currentRe = alternation(lib.currentWords)
	lib.indicatorRe = regexp.MustCompile(`(?i)\b(?:` + alternation(lib.indicators) + `)s?\b`)
	lib.institutionRe = regexp.MustCompile(`(?i)\b(?:` + alternation(defaultInstitutionWords) + `)`)
	lib.headerNounRe = regexp.MustCompile(`(?i)\b(?:` + strings.Join(headerTitleNouns, "|") + `)\b`)
	lib.titleNounRe = regexp.MustCompile(`[A-Z][A-Za-z&/\-\s]{3,60}(?:` + strings.Join(titleNouns, "|") + `)`)

	return lib
}

func compileSkills(skills []string) []SkillMatcher {
	seen := make(map[string]struct{}, len(skills))
	out := make([]SkillMatcher, 0, len(skills))
	for _, s := range skills {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		// "+" and "#" on the right keep "c" from matching inside "c++" or "c#"
		body := strings.ReplaceAll(regexp.QuoteMeta(s), " ", `\s+`)
		out = append(out, SkillMatcher{
			Skill: s,
			re:    regexp.MustCompile(`(?i)(?:^|[^\w])` + body + `(?:$|[^\w+#])`),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Skill < out[j].Skill })
	return out
}

// Skills returns the skill matchers sorted by skill name
func (l *Library) Skills() []SkillMatcher {
	return l.skills
}

// IsLanguage reports whether skill is a programming or query language
func (l *Library) IsLanguage(skill string) bool { return has(l.languages, skill) }

// IsTool reports whether skill is a developer tool
func (l *Library) IsTool(skill string) bool { return has(l.tools, skill) }

// IsPlatform reports whether skill is an operating platform
func (l *Library) IsPlatform(skill string) bool { return has(l.platforms, skill) }

// IsCity reports whether name (already normalized) is a known city
func (l *Library) IsCity(name string) bool { return has(l.cities, name) }

// CityPattern matches any known city or alias on word boundaries, case-insensitively
func (l *Library) CityPattern() *regexp.Regexp { return l.cityRe }

var regionSuffix = regexp.MustCompile(`(?i),?\s*(?:india|up|uttar pradesh|ncr)\s*$`)

// CanonicalCity lowercases name, strips trailing region qualifiers and folds aliases
func (l *Library) CanonicalCity(name string) string {
	city := strings.ToLower(strings.TrimSpace(name))
	city = strings.TrimSpace(regionSuffix.ReplaceAllString(city, ""))
	if canonical, ok := l.cityAliases[city]; ok {
		return canonical
	}
	return city
}

// WorkHeaders returns the work-experience section header phrases
func (l *Library) WorkHeaders() []string { return l.workHeaders }

// SectionEndHeaders returns the headers that close a work-experience section
func (l *Library) SectionEndHeaders() []string { return l.endHeaders }

// CurrentKeywords returns the present-tense employment keywords
func (l *Library) CurrentKeywords() []string { return l.currentWords }

// CurrentAlternation returns a regex alternation of the present-tense keywords,
// longest first, with inner spaces matching any whitespace
func (l *Library) CurrentAlternation() string { return l.currentRe }

// IsCurrentToken reports whether an end-of-range token denotes ongoing employment
func (l *Library) IsCurrentToken(token string) bool {
	token = strings.TrimSpace(token)
	if token == "--" {
		return true
	}
	lower := strings.ToLower(token)
	for _, kw := range l.currentWords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// HasTitleIndicator reports whether s contains a job-title indicator word
func (l *Library) HasTitleIndicator(s string) bool { return l.indicatorRe.MatchString(s) }

// HasHeaderTitleNoun reports whether s contains one of the strong title nouns
func (l *Library) HasHeaderTitleNoun(s string) bool { return l.headerNounRe.MatchString(s) }

// TitleNounPattern matches a capitalized phrase ending in a known title noun
func (l *Library) TitleNounPattern() *regexp.Regexp { return l.titleNounRe }

// TitleNoise returns the noise patterns stripped from titles, in order
func (l *Library) TitleNoise() []*regexp.Regexp { return l.noise }

// ExpandAbbreviation returns the expansion of a title word, if any
func (l *Library) ExpandAbbreviation(word string) (string, bool) {
	expanded, ok := l.abbreviations[strings.TrimRight(strings.ToLower(word), ".")]
	return expanded, ok
}

// IsAcronym reports whether word stays upper-case in titles
func (l *Library) IsAcronym(word string) bool { return has(l.acronyms, strings.ToUpper(word)) }

// IsBoilerplate reports whether a line is a resume heading rather than a name
func (l *Library) IsBoilerplate(line string) bool {
	return has(l.boilerplate, strings.ToLower(strings.TrimSpace(line)))
}

// MentionsInstitution reports whether s refers to an educational institution
func (l *Library) MentionsInstitution(s string) bool { return l.institutionRe.MatchString(s) }

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

func has(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}

func keys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// alternation quotes words, sorts them longest first and joins them with "|"
func alternation(words []string) string {
	sorted := append([]string(nil), words...)
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})
	quoted := make([]string, len(sorted))
	for i, w := range sorted {
		quoted[i] = strings.ReplaceAll(regexp.QuoteMeta(w), " ", `\s*`)
	}
	return strings.Join(quoted, "|")
}
