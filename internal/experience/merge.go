package experience

import (
	"math"

	"github.com/Jackela/AI-Recruitment-Clerk-sub012/internal/dates"
	"github.com/Jackela/AI-Recruitment-Clerk-sub012/internal/types"
)

// Relevant-experience weighting. Positions flagged relevant or scoring
// above the floor contribute duration × relevanceScore; positions started
// within the recency window get a boosted duration.
const (
	relevantScoreFloor = 0.7
	recencyBoost       = 1.2
	recencyYears       = 3
)

// mergeTotalMonths computes the aggregate non-overlapping experience in
// months with a single left-to-right pass over the sorted valid positions.
// The frontier tracks the already-counted span: a position starting
// strictly after it contributes its full duration, a position starting at
// or before it contributes only the months by which its end extends past
// the frontier. The result equals the length of the union of all position
// intervals; overlapping time is never double-counted and uncovered gaps
// are never counted.
func (a *Analyzer) mergeTotalMonths(valid []types.AnalyzedPosition) int {
	if len(valid) == 0 {
		return 0
	}

	total := 0
	frontier := *valid[0].DateRange.Start.Date
	for _, position := range valid {
		start := *position.DateRange.Start.Date
		end := *a.parser.EffectiveEnd(position.DateRange.End)

		if start.After(frontier) {
			total += position.DateRange.Duration.TotalMonths
			frontier = end
			continue
		}
		if end.After(frontier) {
			total += dates.MonthsBetween(frontier, end)
			frontier = end
		}
	}
	return total
}

// relevantMonths sums relevance-weighted durations over the valid
// positions that are flagged relevant or score above the floor. Durations
// of positions started within the last recencyYears are boosted before
// weighting; the float sum is rounded to whole months once at the end.
func (a *Analyzer) relevantMonths(valid []types.AnalyzedPosition) int {
	cutoff := a.now().UTC().AddDate(-recencyYears, 0, 0)

	total := 0.0
	for _, position := range valid {
		if !position.IsRelevant && position.RelevanceScore <= relevantScoreFloor {
			continue
		}
		months := float64(position.DateRange.Duration.TotalMonths)
		if position.DateRange.Start.Date.After(cutoff) {
			months *= recencyBoost
		}
		total += months * position.RelevanceScore
	}
	return int(math.Round(total))
}
