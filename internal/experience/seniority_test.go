package experience

import (
	"testing"

	"github.com/Jackela/AI-Recruitment-Clerk-sub012/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetermineSeniority_KeywordTiers(t *testing.T) {
	analyzer := NewAnalyzerWithClock(testClock)

	tests := []struct {
		title    string
		expected types.SeniorityLevel
	}{
		{"Principal Engineer", types.SeniorityExpert},
		{"Distinguished Engineer", types.SeniorityExpert},
		{"Chief Technology Officer", types.SeniorityExpert},
		{"Software Architect", types.SeniorityExpert},
		{"Senior Software Engineer", types.SenioritySenior},
		{"Staff Engineer", types.SenioritySenior},
		{"Tech Lead", types.SenioritySenior},
		{"Junior Developer", types.SeniorityEntry},
		{"Software Engineering Intern", types.SeniorityEntry},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			valid := analyzeAll(analyzer, []types.WorkExperience{
				{Company: "Acme", Position: tt.title, StartDate: "2024-01-01", EndDate: "present"},
			})
			level := analyzer.determineSeniority(valid, analyzer.mergeTotalMonths(valid))
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestDetermineSeniority_ExpertTierBeatsSeniorRegardlessOfOrder(t *testing.T) {
	analyzer := NewAnalyzerWithClock(testClock)
	valid := analyzeAll(analyzer, []types.WorkExperience{
		{Company: "A", Position: "Senior Developer", StartDate: "2023-01-01", EndDate: "present"},
		{Company: "B", Position: "VP of Engineering", StartDate: "2024-01-01", EndDate: "present"},
	})

	level := analyzer.determineSeniority(valid, analyzer.mergeTotalMonths(valid))

	assert.Equal(t, types.SeniorityExpert, level)
}

func TestDetermineSeniority_SummaryTextCounts(t *testing.T) {
	analyzer := NewAnalyzerWithClock(testClock)
	valid := analyzeAll(analyzer, []types.WorkExperience{
		{
			Company:   "Acme",
			Position:  "Engineer",
			StartDate: "2023-01-01",
			EndDate:   "present",
			Summary:   "Acted as tech lead for the platform team",
		},
	})

	level := analyzer.determineSeniority(valid, analyzer.mergeTotalMonths(valid))

	assert.Equal(t, types.SenioritySenior, level)
}

func TestDetermineSeniority_OldTitlesAreIgnored(t *testing.T) {
	analyzer := NewAnalyzerWithClock(testClock)
	valid := analyzeAll(analyzer, []types.WorkExperience{
		{Company: "A", Position: "Principal Engineer", StartDate: "2010-01-01", EndDate: "2012-01-01"},
		{Company: "B", Position: "Developer", StartDate: "2023-01-01", EndDate: "present"},
	})

	// The principal title ended over a decade ago, so keyword evidence is
	// absent and 53 merged months land in the mid bracket.
	level := analyzer.determineSeniority(valid, analyzer.mergeTotalMonths(valid))

	assert.Equal(t, types.SeniorityMid, level)
}

func TestDetermineSeniority_FallbackYears(t *testing.T) {
	analyzer := NewAnalyzerWithClock(testClock)

	tests := []struct {
		name        string
		totalMonths int
		expected    types.SeniorityLevel
	}{
		{"over ten years", 121, types.SeniorityExpert},
		{"exactly ten years", 120, types.SeniorityExpert},
		{"exactly five years", 60, types.SenioritySenior},
		{"just under five years", 59, types.SeniorityMid},
		{"just over two years", 25, types.SeniorityMid},
		{"exactly two years", 24, types.SeniorityEntry},
		{"no experience", 0, types.SeniorityEntry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := analyzer.determineSeniority(nil, tt.totalMonths)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestRecentPositions_WindowBoundary(t *testing.T) {
	analyzer := NewAnalyzerWithClock(testClock)
	valid := analyzeAll(analyzer, []types.WorkExperience{
		{Company: "Old", Position: "Engineer", StartDate: "2020-01-01", EndDate: "2022-01-01"},
		{Company: "Edge", Position: "Engineer", StartDate: "2022-06-01", EndDate: "2023-06-15"},
		{Company: "Ongoing", Position: "Engineer", StartDate: "2024-01-01", EndDate: "present"},
	})

	recent := analyzer.recentPositions(valid)

	// The cutoff sits exactly two years before the clock; an end date on
	// the cutoff itself still counts as recent.
	require.Len(t, recent, 2)
	assert.Equal(t, "Edge", recent[0].Company)
	assert.Equal(t, "Ongoing", recent[1].Company)
}

func TestRecentPositions_CappedAtLastThree(t *testing.T) {
	analyzer := NewAnalyzerWithClock(testClock)
	valid := analyzeAll(analyzer, []types.WorkExperience{
		{Company: "First", Position: "Engineer", StartDate: "2020-01-01", EndDate: "present"},
		{Company: "Second", Position: "Engineer", StartDate: "2021-01-01", EndDate: "present"},
		{Company: "Third", Position: "Engineer", StartDate: "2022-01-01", EndDate: "present"},
		{Company: "Fourth", Position: "Engineer", StartDate: "2023-01-01", EndDate: "present"},
	})

	recent := analyzer.recentPositions(valid)

	require.Len(t, recent, 3)
	assert.Equal(t, "Second", recent[0].Company)
	assert.Equal(t, "Fourth", recent[2].Company)
}

func TestRecentPositions_EmptyInput(t *testing.T) {
	analyzer := NewAnalyzerWithClock(testClock)

	assert.Empty(t, analyzer.recentPositions(nil))
	assert.Empty(t, analyzer.recentPositions([]types.AnalyzedPosition{}))
}
