package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TwoDigitMode decides how a bare "Mon NN" token is read
type TwoDigitMode int

const (
	// TwoDigitYear reads "Mar 15" as March 2015
	TwoDigitYear TwoDigitMode = iota
	// TwoDigitDay reads "Mar 15" as 15 March of the clock's year
	TwoDigitDay
)

// ParseTwoDigitMode maps a config value ("year" or "day") to a mode
func ParseTwoDigitMode(s string) (TwoDigitMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "year":
		return TwoDigitYear, true
	case "day":
		return TwoDigitDay, true
	default:
		return TwoDigitYear, false
	}
}

// MonthPattern matches a month name or abbreviation (case-insensitive when used inside (?i))
const MonthPattern = `(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*`

var months = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// LookupMonth resolves a month name or abbreviation
func LookupMonth(word string) (time.Month, bool) {
	m, ok := months[strings.ToLower(strings.TrimRight(word, "."))]
	return m, ok
}

var (
	numericMonthYear = regexp.MustCompile(`^(\d{1,2})\s*/\s*(\d{4})$`)
	bareYear         = regexp.MustCompile(`^(\d{4})$`)
	monthFullYear    = regexp.MustCompile(`^([A-Za-z]+)\.?\s*['’]?\s*(\d{4})$`)
	monthApostrophe  = regexp.MustCompile(`^([A-Za-z]+)\.?\s*['’]\s*(\d{2})$`)
	monthTwoDigit    = regexp.MustCompile(`^([A-Za-z]+)\.?\s*(\d{2})$`)
)

// Parser turns single date tokens into times. The zero value reads two-digit
// numbers as years and uses the system clock.
type Parser struct {
	Clock    Clock
	TwoDigit TwoDigitMode
}

// Now returns the parser clock's present time
func (p Parser) Now() time.Time {
	if p.Clock == nil {
		return time.Now()
	}
	return p.Clock.Now()
}

// Parse reads one token such as "Jan 2018", "Jul'20", "05/2021" or "2019".
// Days are normalized to the first of the month unless the token names a day.
func (p Parser) Parse(token string) (time.Time, bool) {
	token = strings.TrimSpace(strings.ReplaceAll(token, "’", "'"))
	if token == "" {
		return time.Time{}, false
	}

	if m := numericMonthYear.FindStringSubmatch(token); m != nil {
		month, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[2])
		if month < 1 || month > 12 {
			return time.Time{}, false
		}
		return firstOfMonth(year, time.Month(month)), true
	}

	if m := bareYear.FindStringSubmatch(token); m != nil {
		year, _ := strconv.Atoi(m[1])
		return firstOfMonth(year, time.January), true
	}

	if m := monthFullYear.FindStringSubmatch(token); m != nil {
		month, ok := LookupMonth(m[1])
		if !ok {
			return time.Time{}, false
		}
		year, _ := strconv.Atoi(m[2])
		return firstOfMonth(year, month), true
	}

	if m := monthApostrophe.FindStringSubmatch(token); m != nil {
		month, ok := LookupMonth(m[1])
		if !ok {
			return time.Time{}, false
		}
		yy, _ := strconv.Atoi(m[2])
		return firstOfMonth(p.expandYear(yy), month), true
	}

	if m := monthTwoDigit.FindStringSubmatch(token); m != nil {
		month, ok := LookupMonth(m[1])
		if !ok {
			return time.Time{}, false
		}
		nn, _ := strconv.Atoi(m[2])
		if p.TwoDigit == TwoDigitDay && nn >= 1 && nn <= daysIn(p.Now().Year(), month) {
			return time.Date(p.Now().Year(), month, nn, 0, 0, 0, 0, time.UTC), true
		}
		return firstOfMonth(p.expandYear(nn), month), true
	}

	return time.Time{}, false
}

// expandYear maps a two-digit year to 20YY, or 19YY when 20YY is in the future
func (p Parser) expandYear(yy int) int {
	year := 2000 + yy
	if year > p.Now().Year() {
		year -= 100
	}
	return year
}

func firstOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
