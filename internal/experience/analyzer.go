// Package experience turns raw career-history records into a normalized
// analysis: merged non-overlapping experience totals, employment gap and
// overlap detection, relevance scoring against target skills, and
// heuristic seniority classification. All computation is synchronous and
// allocation-local; an Analyzer holds no mutable state and is safe for
// concurrent use. The package never returns errors from analysis: bad
// input degrades to zero-confidence values that drop out of aggregates.
package experience

import (
	"math"
	"sort"
	"time"

	"github.com/Jackela/AI-Recruitment-Clerk-sub012/internal/dates"
	"github.com/Jackela/AI-Recruitment-Clerk-sub012/internal/types"
)

// Analyzer computes experience analyses. The clock is injectable so
// present-date resolution and recency windows are deterministic in tests.
type Analyzer struct {
	parser *dates.Parser
	now    func() time.Time
}

// NewAnalyzer returns an Analyzer on the system clock.
func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithClock(time.Now)
}

// NewAnalyzerWithClock returns an Analyzer with an injected time source;
// the embedded date parser shares the same clock. A nil clock falls back
// to the system clock.
func NewAnalyzerWithClock(now func() time.Time) *Analyzer {
	if now == nil {
		now = time.Now
	}
	return &Analyzer{
		parser: dates.NewParserWithClock(now),
		now:    now,
	}
}

// AnalyzeExperience is the orchestrating entry point: it analyzes every
// input position, then runs the aggregate computations over the valid
// subset (positions with a nonzero measured duration, sorted by start
// date). Nil or empty input returns the empty analysis. It never panics
// and never returns an error.
func (a *Analyzer) AnalyzeExperience(positions []types.WorkExperience, targetSkills []string) types.ExperienceAnalysis {
	if len(positions) == 0 {
		return emptyAnalysis()
	}

	analyzed := make([]types.AnalyzedPosition, 0, len(positions))
	for _, position := range positions {
		analyzed = append(analyzed, a.AnalyzePosition(position, targetSkills))
	}

	valid := validPositions(analyzed)

	totalMonths := a.mergeTotalMonths(valid)
	relevantMonths := a.relevantMonths(valid)

	return types.ExperienceAnalysis{
		TotalMonths:     totalMonths,
		TotalYears:      round1(float64(totalMonths) / 12),
		RelevantMonths:  relevantMonths,
		RelevantYears:   round1(float64(relevantMonths) / 12),
		Seniority:       a.determineSeniority(valid, totalMonths),
		Gaps:            a.detectGaps(valid),
		Overlaps:        a.detectOverlaps(valid),
		ConfidenceScore: calculateConfidence(analyzed),
		Details:         a.buildDetails(analyzed, valid),
	}
}

// emptyAnalysis is the fixed result for nil or empty input: all zeros,
// empty (non-nil) range lists, entry seniority.
func emptyAnalysis() types.ExperienceAnalysis {
	return types.ExperienceAnalysis{
		Seniority: types.SeniorityEntry,
		Gaps:      []types.DateRange{},
		Overlaps:  []types.DateRange{},
	}
}

// validPositions filters to positions with a measured duration and sorts
// them ascending by start date. A zero duration covers both unparseable
// dates and same-calendar-month spans; both drop out of aggregates by
// contract. Every returned position has non-nil start and effective end
// dates.
func validPositions(analyzed []types.AnalyzedPosition) []types.AnalyzedPosition {
	valid := make([]types.AnalyzedPosition, 0, len(analyzed))
	for _, position := range analyzed {
		if position.DateRange.Duration.TotalMonths > 0 {
			valid = append(valid, position)
		}
	}
	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].DateRange.Start.Date.Before(*valid[j].DateRange.Start.Date)
	})
	return valid
}

// buildDetails summarizes durations over the valid subset; position count
// and current-position detection cover every analyzed record.
func (a *Analyzer) buildDetails(analyzed, valid []types.AnalyzedPosition) types.ExperienceDetails {
	details := types.ExperienceDetails{PositionCount: len(analyzed)}
	for _, position := range analyzed {
		if position.DateRange.End.IsPresent {
			details.HasCurrentPosition = true
			break
		}
	}

	if len(valid) == 0 {
		return details
	}

	sum := 0
	shortest := valid[0].DateRange.Duration.TotalMonths
	longest := shortest
	for _, position := range valid {
		months := position.DateRange.Duration.TotalMonths
		sum += months
		if months < shortest {
			shortest = months
		}
		if months > longest {
			longest = months
		}
	}

	details.AverageMonths = round1(float64(sum) / float64(len(valid)))
	details.ShortestMonths = shortest
	details.LongestMonths = longest
	return details
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
