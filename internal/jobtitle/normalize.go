package jobtitle

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	parenthetical = regexp.MustCompile(`\s*\([^)]*\)`)
	edgePunct     = regexp.MustCompile(`^[,;:\-–—|\s]+|[,\-–—|\s]+$`)
	spaceRun      = regexp.MustCompile(`\s+`)
	dashJoin      = regexp.MustCompile(`\s+[-–—]\s+`)
	andWord       = regexp.MustCompile(`(?i)\s*\band\b\s*`)
	realWord      = regexp.MustCompile(`[a-zA-Z]{3,}`)
	caseSplit     = regexp.MustCompile(`\s+|-`)
)

// CleanTitle strips noise from a raw title, expands abbreviations and fixes casing.
// It returns "" when nothing title-like remains.
func (m *Machine) CleanTitle(raw string) string {
	title := raw
	if strings.TrimSpace(title) == "" {
		return ""
	}

	for _, re := range m.lib.TitleNoise() {
		title = re.ReplaceAllString(title, "")
	}
	title = parenthetical.ReplaceAllString(title, "")

	// expansions are mixed case, so casing is judged on the text as written
	singleCase := isSingleCase(title)

	words := strings.Fields(title)
	for i, w := range words {
		if expanded, ok := m.lib.ExpandAbbreviation(w); ok {
			words[i] = expanded
		}
	}
	title = strings.Join(words, " ")

	title = edgePunct.ReplaceAllString(title, "")
	title = spaceRun.ReplaceAllString(title, " ")
	title = dashJoin.ReplaceAllString(title, " ")
	title = andWord.ReplaceAllString(title, " and ")
	title = strings.TrimSpace(title)

	if n := utf8.RuneCountInString(title); n < 3 || n > 120 {
		return ""
	}
	if !realWord.MatchString(title) {
		return ""
	}

	if singleCase {
		title = m.titleCase(title)
	}
	return title
}

// titleCase capitalizes each word, keeping short acronyms upper-case
func (m *Machine) titleCase(s string) string {
	caser := cases.Title(language.Und)
	var b strings.Builder
	last := 0
	emit := func(part string) {
		if part == "" {
			return
		}
		if utf8.RuneCountInString(part) <= 3 && m.lib.IsAcronym(part) {
			b.WriteString(strings.ToUpper(part))
			return
		}
		b.WriteString(caser.String(part))
	}
	for _, loc := range caseSplit.FindAllStringIndex(s, -1) {
		emit(s[last:loc[0]])
		b.WriteString(s[loc[0]:loc[1]])
		last = loc[1]
	}
	emit(s[last:])
	return b.String()
}

// isSingleCase reports whether every cased letter in s has the same case
func isSingleCase(s string) bool {
	var upper, lower bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		}
	}
	return upper != lower
}
