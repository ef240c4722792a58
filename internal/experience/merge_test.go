package experience

import (
	"testing"

	"github.com/Jackela/AI-Recruitment-Clerk-sub012/internal/types"
	"github.com/stretchr/testify/assert"
)

// analyzeAll builds the sorted valid set for aggregate tests the same way
// AnalyzeExperience does.
func analyzeAll(a *Analyzer, positions []types.WorkExperience) []types.AnalyzedPosition {
	analyzed := make([]types.AnalyzedPosition, 0, len(positions))
	for _, position := range positions {
		analyzed = append(analyzed, a.AnalyzePosition(position, nil))
	}
	return validPositions(analyzed)
}

func TestMergeTotalMonths_ContiguousPositions(t *testing.T) {
	analyzer := NewAnalyzerWithClock(testClock)
	valid := analyzeAll(analyzer, []types.WorkExperience{
		{Company: "A", Position: "Engineer", StartDate: "2018-01-01", EndDate: "2019-01-01"},
		{Company: "B", Position: "Engineer", StartDate: "2019-01-01", EndDate: "2021-01-01"},
		{Company: "C", Position: "Engineer", StartDate: "2021-01-01", EndDate: "2023-01-01"},
	})

	assert.Equal(t, 60, analyzer.mergeTotalMonths(valid))
}

func TestMergeTotalMonths_NonOverlappingSumsIndividuals(t *testing.T) {
	analyzer := NewAnalyzerWithClock(testClock)
	valid := analyzeAll(analyzer, []types.WorkExperience{
		{Company: "A", Position: "Engineer", StartDate: "2018-01-01", EndDate: "2018-07-01"},
		{Company: "B", Position: "Engineer", StartDate: "2020-01-01", EndDate: "2020-06-01"},
	})

	// 6 + 5 months; the uncovered span between them is not counted.
	assert.Equal(t, 11, analyzer.mergeTotalMonths(valid))
}

func TestMergeTotalMonths_OverlapCountedOnce(t *testing.T) {
	analyzer := NewAnalyzerWithClock(testClock)
	valid := analyzeAll(analyzer, []types.WorkExperience{
		{Company: "A", Position: "Engineer", StartDate: "2018-01-01", EndDate: "2022-01-01"},
		{Company: "B", Position: "Engineer", StartDate: "2021-01-01", EndDate: "2023-01-01"},
	})

	total := analyzer.mergeTotalMonths(valid)

	// Union is 2018-01 through 2023-01: less than the 72-month sum, at
	// least the 48-month maximum.
	assert.Equal(t, 60, total)
	assert.Less(t, total, 48+24)
	assert.GreaterOrEqual(t, total, 48)
}

func TestMergeTotalMonths_ContainedPositionAddsNothing(t *testing.T) {
	analyzer := NewAnalyzerWithClock(testClock)
	valid := analyzeAll(analyzer, []types.WorkExperience{
		{Company: "A", Position: "Engineer", StartDate: "2018-01-01", EndDate: "2022-01-01"},
		{Company: "B", Position: "Engineer", StartDate: "2019-01-01", EndDate: "2020-01-01"},
	})

	assert.Equal(t, 48, analyzer.mergeTotalMonths(valid))
}

func TestMergeTotalMonths_UnsortedInput(t *testing.T) {
	analyzer := NewAnalyzerWithClock(testClock)
	valid := analyzeAll(analyzer, []types.WorkExperience{
		{Company: "C", Position: "Engineer", StartDate: "2021-01-01", EndDate: "2023-01-01"},
		{Company: "A", Position: "Engineer", StartDate: "2018-01-01", EndDate: "2019-01-01"},
		{Company: "B", Position: "Engineer", StartDate: "2019-01-01", EndDate: "2021-01-01"},
	})

	assert.Equal(t, 60, analyzer.mergeTotalMonths(valid))
}

func TestMergeTotalMonths_PresentEnd(t *testing.T) {
	analyzer := NewAnalyzerWithClock(testClock)
	valid := analyzeAll(analyzer, []types.WorkExperience{
		{Company: "A", Position: "Engineer", StartDate: "2018-01-01", EndDate: "present"},
	})

	// 2018-01 through the fixed 2025-06 clock.
	assert.Equal(t, 89, analyzer.mergeTotalMonths(valid))
}

func TestMergeTotalMonths_Empty(t *testing.T) {
	analyzer := NewAnalyzerWithClock(testClock)

	assert.Equal(t, 0, analyzer.mergeTotalMonths(nil))
}

func TestRelevantMonths_WeightsByRelevanceScore(t *testing.T) {
	analyzer := NewAnalyzerWithClock(testClock)
	valid := analyzeAll(analyzer, []types.WorkExperience{
		// Three technical hits (software, engineer, api): score 0.65.
		{Company: "Acme", Position: "Software Engineer", StartDate: "2018-01-01", EndDate: "2020-01-01", Summary: "Built REST APIs"},
	})

	// round(24 * 0.65) with no recency boost.
	assert.Equal(t, 16, analyzer.relevantMonths(valid))
}

func TestRelevantMonths_RecencyBoost(t *testing.T) {
	analyzer := NewAnalyzerWithClock(testClock)
	valid := analyzeAll(analyzer, []types.WorkExperience{
		{Company: "Acme", Position: "Software Engineer", StartDate: "2023-01-01", EndDate: "2024-01-01", Summary: "Built REST APIs"},
	})

	// Started within the last three years: round(12 * 1.2 * 0.65) = 9.
	assert.Equal(t, 9, analyzer.relevantMonths(valid))
}

func TestRelevantMonths_SkipsIrrelevantPositions(t *testing.T) {
	analyzer := NewAnalyzerWithClock(testClock)
	valid := analyzeAll(analyzer, []types.WorkExperience{
		{Company: "Shop", Position: "Cashier", StartDate: "2018-01-01", EndDate: "2020-01-01", Summary: "Handled cash register"},
	})

	assert.Equal(t, 0, analyzer.relevantMonths(valid))
}
