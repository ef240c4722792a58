// Package dates converts free-text date strings from career documents into
// confidence-scored calendar dates and provides range, duration, and
// overlap primitives over them. Parsing never fails: unrecognized input
// degrades to a zero-confidence value rather than an error.
package dates

import (
	"strings"
	"time"

	"github.com/Jackela/AI-Recruitment-Clerk-sub012/internal/types"
)

// Format tags reported on ParsedDate values that do not come from the
// pattern table.
const (
	FormatPresent     = "present"
	FormatFallback    = "fallback"
	FormatUnknown     = "unknown"
	FormatUnparseable = "unparseable"
)

const (
	confidencePresent  = 1.0
	confidenceFallback = 0.60
)

// minReasonableYear bounds generic date parsing; career histories do not
// reach further back than this.
const minReasonableYear = 1950

// Parser turns date-like strings into ParsedDate values. The zero value is
// not usable; construct with NewParser or NewParserWithClock. A Parser is
// immutable and safe for concurrent use.
type Parser struct {
	now func() time.Time
}

// NewParser returns a Parser resolving present-dates against the system
// clock.
func NewParser() *Parser {
	return &Parser{now: time.Now}
}

// NewParserWithClock returns a Parser with an injected time source, used
// to make present-date resolution and reasonableness bounds deterministic.
// A nil clock falls back to the system clock.
func NewParserWithClock(now func() time.Time) *Parser {
	if now == nil {
		now = time.Now
	}
	return &Parser{now: now}
}

// ParseDate converts a single date-like string into a ParsedDate. Order of
// evaluation, first match wins: empty input, present keywords, the fixed
// pattern table, a generic fallback parse bounded to reasonable years, and
// finally an unparseable zero-confidence value. It never panics and never
// returns an error.
func (p *Parser) ParseDate(text string) types.ParsedDate {
	raw := strings.TrimSpace(text)
	trimmed := strings.ToLower(raw)
	if trimmed == "" {
		return types.ParsedDate{Original: text, Format: FormatUnknown}
	}

	for _, keyword := range presentKeywords {
		if strings.Contains(trimmed, keyword) {
			nowDate := p.now().UTC()
			return types.ParsedDate{
				Date:       &nowDate,
				Original:   text,
				Confidence: confidencePresent,
				Format:     FormatPresent,
				IsPresent:  true,
			}
		}
	}

	for _, pattern := range datePatterns {
		m := pattern.re.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		date, ok := pattern.extract(m)
		if !ok {
			continue
		}
		return types.ParsedDate{
			Date:       &date,
			Original:   text,
			Confidence: pattern.confidence,
			Format:     pattern.tag,
		}
	}

	// Parse the case-preserved text: the RFC3339 T and Z literals are
	// case-sensitive in time.Parse, month names are not.
	for _, layout := range fallbackLayouts {
		date, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		if !yearInBounds(date.Year(), p.now()) {
			continue
		}
		date = date.UTC()
		return types.ParsedDate{
			Date:       &date,
			Original:   text,
			Confidence: confidenceFallback,
			Format:     FormatFallback,
		}
	}

	return types.ParsedDate{Original: text, Format: FormatUnparseable}
}

// NormalizeToISO renders a date-like string in canonical form: the literal
// "present" for present-keyword input, an empty string for unparseable
// input, and zero-padded YYYY-MM-DD otherwise (day 1 for formats without a
// day component). Applying it to its own output is a no-op.
func (p *Parser) NormalizeToISO(text string) string {
	parsed := p.ParseDate(text)
	if parsed.IsPresent {
		return "present"
	}
	if !parsed.HasDate() {
		return ""
	}
	return parsed.Date.Format("2006-01-02")
}

// IsReasonableDate reports whether a parsed date is plausible for a career
// history: present-dates always are, missing dates never are, and concrete
// dates must fall between minReasonableYear and next year.
func (p *Parser) IsReasonableDate(parsed types.ParsedDate) bool {
	if parsed.IsPresent {
		return true
	}
	if !parsed.HasDate() {
		return false
	}
	return yearInBounds(parsed.Date.Year(), p.now())
}

func yearInBounds(year int, now time.Time) bool {
	return year >= minReasonableYear && year <= now.Year()+1
}
