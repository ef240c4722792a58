package experience

import (
	"testing"

	"github.com/Jackela/AI-Recruitment-Clerk-sub012/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestGetExperienceSummary_NoExperience(t *testing.T) {
	summary := GetExperienceSummary(types.ExperienceAnalysis{})

	assert.Equal(t, "No work experience found", summary)
}

func TestGetExperienceSummary_Basic(t *testing.T) {
	analysis := types.ExperienceAnalysis{
		TotalMonths: 60,
		TotalYears:  5,
		Seniority:   types.SenioritySenior,
		Details:     types.ExperienceDetails{PositionCount: 3},
	}

	summary := GetExperienceSummary(analysis)

	assert.Equal(t, "5 years total experience (senior level) across 3 position(s)", summary)
}

func TestGetExperienceSummary_IncludesRelevantClause(t *testing.T) {
	analysis := types.ExperienceAnalysis{
		TotalMonths:   66,
		TotalYears:    5.5,
		RelevantYears: 4.2,
		Seniority:     types.SenioritySenior,
		Details:       types.ExperienceDetails{PositionCount: 2},
	}

	summary := GetExperienceSummary(analysis)

	assert.Equal(t,
		"5.5 years total experience (senior level) across 2 position(s), including 4.2 years of relevant experience",
		summary)
}

func TestGetExperienceSummary_OmitsRelevantClauseWhenEqualToTotal(t *testing.T) {
	analysis := types.ExperienceAnalysis{
		TotalMonths:   60,
		TotalYears:    5,
		RelevantYears: 5,
		Seniority:     types.SeniorityMid,
		Details:       types.ExperienceDetails{PositionCount: 1},
	}

	summary := GetExperienceSummary(analysis)

	assert.NotContains(t, summary, "relevant")
}

func TestGetExperienceSummary_OmitsRelevantClauseWhenZero(t *testing.T) {
	analysis := types.ExperienceAnalysis{
		TotalMonths: 24,
		TotalYears:  2,
		Seniority:   types.SeniorityEntry,
		Details:     types.ExperienceDetails{PositionCount: 1},
	}

	summary := GetExperienceSummary(analysis)

	assert.NotContains(t, summary, "relevant")
}

func TestGetExperienceSummary_GapsAndCurrentEmployment(t *testing.T) {
	analysis := types.ExperienceAnalysis{
		TotalMonths:   96,
		TotalYears:    8,
		RelevantYears: 6.5,
		Seniority:     types.SenioritySenior,
		Gaps:          []types.DateRange{{}, {}},
		Details: types.ExperienceDetails{
			PositionCount:      4,
			HasCurrentPosition: true,
		},
	}

	summary := GetExperienceSummary(analysis)

	assert.Equal(t,
		"8 years total experience (senior level) across 4 position(s), including 6.5 years of relevant experience with 2 career gap(s) (currently employed)",
		summary)
}
