package dates

import (
	"regexp"
	"strconv"
	"time"
)

// datePattern couples an anchored regular expression with its format tag,
// hard-coded confidence weight, and the extractor that builds a calendar
// date from the capture groups. Patterns are evaluated in table order and
// the first match whose extractor accepts wins; an extractor rejection
// (month or day out of range, unknown month name) falls through to the
// next pattern.
type datePattern struct {
	re         *regexp.Regexp
	tag        string
	confidence float64
	extract    func(m []string) (time.Time, bool)
}

// datePatterns is the fixed priority list. Ordering is load-bearing:
// earlier, higher-confidence patterns must win over looser ones. All
// expressions are anchored so shorter shapes cannot shadow longer forms.
var datePatterns = []datePattern{
	{
		re:         regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`),
		tag:        "iso-full",
		confidence: 1.00,
		extract: func(m []string) (time.Time, bool) {
			return buildDate(atoi(m[1]), atoi(m[2]), atoi(m[3]))
		},
	},
	{
		re:         regexp.MustCompile(`^(\d{4})-(\d{2})$`),
		tag:        "year-month",
		confidence: 0.90,
		extract: func(m []string) (time.Time, bool) {
			return buildDate(atoi(m[1]), atoi(m[2]), 1)
		},
	},
	{
		re:         regexp.MustCompile(`^(\d{4})$`),
		tag:        "year-only",
		confidence: 0.80,
		extract: func(m []string) (time.Time, bool) {
			return buildDate(atoi(m[1]), 1, 1)
		},
	},
	{
		re:         regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`),
		tag:        "us-full",
		confidence: 0.85,
		extract: func(m []string) (time.Time, bool) {
			return buildDate(atoi(m[3]), atoi(m[1]), atoi(m[2]))
		},
	},
	{
		re:         regexp.MustCompile(`^(\d{1,2})/(\d{4})$`),
		tag:        "us-month-year",
		confidence: 0.80,
		extract: func(m []string) (time.Time, bool) {
			return buildDate(atoi(m[2]), atoi(m[1]), 1)
		},
	},
	{
		re:         regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\.(\d{4})$`),
		tag:        "eu-full",
		confidence: 0.85,
		extract: func(m []string) (time.Time, bool) {
			return buildDate(atoi(m[3]), atoi(m[2]), atoi(m[1]))
		},
	},
	{
		re:         regexp.MustCompile(`^(\d{1,2})\.(\d{4})$`),
		tag:        "eu-month-year",
		confidence: 0.80,
		extract: func(m []string) (time.Time, bool) {
			return buildDate(atoi(m[2]), atoi(m[1]), 1)
		},
	},
	{
		re:         regexp.MustCompile(`^([a-z]+)\.?\s+(\d{4})$`),
		tag:        "month-year",
		confidence: 0.90,
		extract: func(m []string) (time.Time, bool) {
			month, ok := monthByName(m[1])
			if !ok {
				return time.Time{}, false
			}
			return buildDate(atoi(m[2]), int(month), 1)
		},
	},
	{
		re:         regexp.MustCompile(`^([a-z]+)\s+(\d{1,2}),?\s+(\d{4})$`),
		tag:        "month-day-year",
		confidence: 0.95,
		extract: func(m []string) (time.Time, bool) {
			month, ok := fullMonths[m[1]]
			if !ok {
				return time.Time{}, false
			}
			return buildDate(atoi(m[3]), int(month), atoi(m[2]))
		},
	},
	{
		re:         regexp.MustCompile(`^([a-z]{3,4})\.?\s+(\d{1,2}),?\s+(\d{4})$`),
		tag:        "abbrev-month-day-year",
		confidence: 0.90,
		extract: func(m []string) (time.Time, bool) {
			month, ok := abbrevMonths[m[1]]
			if !ok {
				return time.Time{}, false
			}
			return buildDate(atoi(m[3]), int(month), atoi(m[2]))
		},
	},
	{
		re:         regexp.MustCompile(`^q([1-4])\s+(\d{4})$`),
		tag:        "quarter",
		confidence: 0.70,
		extract: func(m []string) (time.Time, bool) {
			return buildDate(atoi(m[2]), quarterStartMonth(atoi(m[1])), 1)
		},
	},
	{
		re:         regexp.MustCompile(`^(\d{4})\s+q([1-4])$`),
		tag:        "quarter",
		confidence: 0.70,
		extract: func(m []string) (time.Time, bool) {
			return buildDate(atoi(m[1]), quarterStartMonth(atoi(m[2])), 1)
		},
	},
}

// presentKeywords denote an ongoing, unterminated position. Matched as
// case-insensitive substrings of the trimmed input.
var presentKeywords = []string{
	"present",
	"current",
	"now",
	"ongoing",
	"today",
	"till date",
	"till now",
	"continuing",
}

// fallbackLayouts is the generic calendar-parse attempt for inputs no
// pattern recognized, tried in order.
var fallbackLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01",
	"2006/01/02",
	"2006/01",
	"01/02/2006",
	"02-01-2006",
	"January 2, 2006",
	"January 2006",
	"Jan 2, 2006",
	"Jan 2006",
}

var fullMonths = map[string]time.Month{
	"january":   time.January,
	"february":  time.February,
	"march":     time.March,
	"april":     time.April,
	"may":       time.May,
	"june":      time.June,
	"july":      time.July,
	"august":    time.August,
	"september": time.September,
	"october":   time.October,
	"november":  time.November,
	"december":  time.December,
}

var abbrevMonths = map[string]time.Month{
	"jan":  time.January,
	"feb":  time.February,
	"mar":  time.March,
	"apr":  time.April,
	"may":  time.May,
	"jun":  time.June,
	"jul":  time.July,
	"aug":  time.August,
	"sep":  time.September,
	"sept": time.September,
	"oct":  time.October,
	"nov":  time.November,
	"dec":  time.December,
}

// monthByName resolves a lower-cased month name, full or abbreviated.
func monthByName(name string) (time.Month, bool) {
	if month, ok := fullMonths[name]; ok {
		return month, true
	}
	month, ok := abbrevMonths[name]
	return month, ok
}

// quarterStartMonth maps quarter 1-4 to its first month (1, 4, 7, 10).
func quarterStartMonth(quarter int) int {
	return (quarter-1)*3 + 1
}

// buildDate constructs a UTC date, rejecting values that time.Date would
// silently normalize (month 13, February 30, and so on).
func buildDate(year, month, day int) (time.Time, bool) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// atoi converts digit-only capture groups; the regexes guarantee the
// input is numeric.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
