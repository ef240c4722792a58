package experience

import (
	"strings"

	"github.com/Jackela/AI-Recruitment-Clerk-sub012/internal/types"
)

// Seniority classification windows and fallback year thresholds.
const (
	recentPositionYears = 2
	maxRecentPositions  = 3

	expertYears = 10
	seniorYears = 5
	entryYears  = 2
)

// determineSeniority classifies the career history. Keyword evidence from
// recent positions wins in strict tier priority (expert, then senior, then
// entry); without any keyword evidence the total experience length decides.
func (a *Analyzer) determineSeniority(valid []types.AnalyzedPosition, totalMonths int) types.SeniorityLevel {
	recent := a.recentPositions(valid)

	tiers := []struct {
		keywords []string
		level    types.SeniorityLevel
	}{
		{expertKeywords, types.SeniorityExpert},
		{seniorKeywords, types.SenioritySenior},
		{entryKeywords, types.SeniorityEntry},
	}
	for _, tier := range tiers {
		for _, position := range recent {
			searchText := strings.ToLower(position.Title + " " + position.Summary)
			if containsAny(searchText, tier.keywords) {
				return tier.level
			}
		}
	}

	years := float64(totalMonths) / 12
	switch {
	case years >= expertYears:
		return types.SeniorityExpert
	case years >= seniorYears:
		return types.SenioritySenior
	case years <= entryYears:
		return types.SeniorityEntry
	default:
		return types.SeniorityMid
	}
}

// recentPositions returns the last maxRecentPositions of the sorted valid
// set that are still ongoing or ended within the last recentPositionYears.
// Classification leans on current titles rather than decade-old ones.
func (a *Analyzer) recentPositions(valid []types.AnalyzedPosition) []types.AnalyzedPosition {
	cutoff := a.now().UTC().AddDate(-recentPositionYears, 0, 0)

	recent := make([]types.AnalyzedPosition, 0, len(valid))
	for _, position := range valid {
		if position.DateRange.End.IsPresent {
			recent = append(recent, position)
			continue
		}
		if end := a.parser.EffectiveEnd(position.DateRange.End); end != nil && !end.Before(cutoff) {
			recent = append(recent, position)
		}
	}

	if len(recent) > maxRecentPositions {
		recent = recent[len(recent)-maxRecentPositions:]
	}
	return recent
}
