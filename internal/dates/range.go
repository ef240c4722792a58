package dates

import (
	"time"

	"github.com/Jackela/AI-Recruitment-Clerk-sub012/internal/types"
)

// CalculateDuration measures the span between two parsed dates at month
// granularity. If the start date or the effective end date (now when the
// end is present) is missing, the duration is all-zero. Negative spans
// collapse to zero rather than signaling an error. Day-of-month is never
// consulted: two dates in the same calendar month yield zero months.
func (p *Parser) CalculateDuration(start, end types.ParsedDate) types.Duration {
	endDate := p.EffectiveEnd(end)
	if !start.HasDate() || endDate == nil {
		return types.Duration{}
	}
	total := MonthsBetween(*start.Date, *endDate)
	if total < 0 {
		total = 0
	}
	return types.Duration{
		Years:       total / 12,
		Months:      total % 12,
		TotalMonths: total,
	}
}

// CreateDateRange parses both boundary strings and derives the duration
// between them.
func (p *Parser) CreateDateRange(startText, endText string) types.DateRange {
	start := p.ParseDate(startText)
	end := p.ParseDate(endText)
	return types.DateRange{
		Start:    start,
		End:      end,
		Duration: p.CalculateDuration(start, end),
	}
}

// CheckDateRangeOverlap reports whether two ranges share any covered time.
// Effective ends resolve present-dates to now; a missing start or missing
// non-present end on either side means no overlap is claimed. Boundaries
// are inclusive: ranges touching on a single date count as overlapping.
func (p *Parser) CheckDateRangeOverlap(a, b types.DateRange) bool {
	aEnd := p.EffectiveEnd(a.End)
	bEnd := p.EffectiveEnd(b.End)
	if !a.Start.HasDate() || !b.Start.HasDate() || aEnd == nil || bEnd == nil {
		return false
	}
	return !a.Start.Date.After(*bEnd) && !b.Start.Date.After(*aEnd)
}

// DateBounds scans ranges for the earliest start and latest effective end,
// ignoring missing starts and missing non-present ends. Present-ended
// ranges resolve to now, so an ongoing position always extends the latest
// bound. Both results are nil when no range contributes.
func (p *Parser) DateBounds(ranges []types.DateRange) (earliest, latest *time.Time) {
	for _, r := range ranges {
		if r.Start.HasDate() {
			if earliest == nil || r.Start.Date.Before(*earliest) {
				start := *r.Start.Date
				earliest = &start
			}
		}
		if end := p.EffectiveEnd(r.End); end != nil {
			if latest == nil || end.After(*latest) {
				e := *end
				latest = &e
			}
		}
	}
	return earliest, latest
}

// EffectiveEnd resolves a range end for computation: present-dates read
// the clock, everything else uses the parsed date as-is (nil when
// unparseable).
func (p *Parser) EffectiveEnd(end types.ParsedDate) *time.Time {
	if end.IsPresent {
		now := p.now().UTC()
		return &now
	}
	return end.Date
}

// MonthsBetween returns the signed calendar-month difference between two
// dates. Day-of-month is ignored.
func MonthsBetween(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
}
