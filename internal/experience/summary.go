package experience

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Jackela/AI-Recruitment-Clerk-sub012/internal/types"
)

// noExperienceSummary is returned for an analysis with zero counted months.
const noExperienceSummary = "No work experience found"

// GetExperienceSummary renders the one-line human-readable report for an
// analysis: total years and seniority, position count, then relevant
// experience when it differs from the total, gap count when gaps exist,
// and a current-employment note.
func GetExperienceSummary(analysis types.ExperienceAnalysis) string {
	if analysis.TotalMonths == 0 {
		return noExperienceSummary
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s years total experience (%s level) across %d position(s)",
		formatYears(analysis.TotalYears), analysis.Seniority, analysis.Details.PositionCount)

	if analysis.RelevantYears > 0 && analysis.RelevantYears != analysis.TotalYears {
		fmt.Fprintf(&sb, ", including %s years of relevant experience", formatYears(analysis.RelevantYears))
	}
	if len(analysis.Gaps) > 0 {
		fmt.Fprintf(&sb, " with %d career gap(s)", len(analysis.Gaps))
	}
	if analysis.Details.HasCurrentPosition {
		sb.WriteString(" (currently employed)")
	}

	return sb.String()
}

// formatYears renders a year count without a trailing zero decimal:
// 5 rather than 5.0, but 5.5 stays 5.5.
func formatYears(years float64) string {
	return strconv.FormatFloat(years, 'f', -1, 64)
}
