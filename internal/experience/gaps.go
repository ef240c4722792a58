package experience

import (
	"github.com/Jackela/AI-Recruitment-Clerk-sub012/internal/types"
)

// minGapMonths is the smallest month-difference between consecutive
// positions reported as a career gap. A difference of exactly one month is
// treated as a continuous transition, not a gap.
const minGapMonths = 2

// detectGaps scans consecutive pairs of the sorted valid positions and
// emits a DateRange for every uncovered span of at least minGapMonths
// between one position's end and the next position's start. The emitted
// range reuses the two boundary ParsedDates verbatim.
func (a *Analyzer) detectGaps(valid []types.AnalyzedPosition) []types.DateRange {
	gaps := []types.DateRange{}
	for i := 1; i < len(valid); i++ {
		prevEnd := valid[i-1].DateRange.End
		nextStart := valid[i].DateRange.Start

		duration := a.parser.CalculateDuration(prevEnd, nextStart)
		if duration.TotalMonths < minGapMonths {
			continue
		}
		gaps = append(gaps, types.DateRange{
			Start:    prevEnd,
			End:      nextStart,
			Duration: duration,
		})
	}
	return gaps
}

// detectOverlaps runs an all-pairs scan over the valid positions and
// appends BOTH ranges of every pair sharing covered time. A position
// overlapping several others appears once per pair; the list is
// deliberately not deduplicated, so consumers must not assume uniqueness.
func (a *Analyzer) detectOverlaps(valid []types.AnalyzedPosition) []types.DateRange {
	overlaps := []types.DateRange{}
	for i := 0; i < len(valid); i++ {
		for j := i + 1; j < len(valid); j++ {
			if a.sharesCoveredTime(valid[i].DateRange, valid[j].DateRange) {
				overlaps = append(overlaps, valid[i].DateRange, valid[j].DateRange)
			}
		}
	}
	return overlaps
}

// sharesCoveredTime is the analyzer's pair test: strictly shared time, so a
// back-to-back history whose boundary dates touch reports no overlaps and
// stays mutually exclusive with gap detection. The exported
// dates.CheckDateRangeOverlap primitive keeps inclusive boundaries.
func (a *Analyzer) sharesCoveredTime(x, y types.DateRange) bool {
	xEnd := a.parser.EffectiveEnd(x.End)
	yEnd := a.parser.EffectiveEnd(y.End)
	if !x.Start.HasDate() || !y.Start.HasDate() || xEnd == nil || yEnd == nil {
		return false
	}
	return x.Start.Date.Before(*yEnd) && y.Start.Date.Before(*xEnd)
}
