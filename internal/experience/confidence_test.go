package experience

import (
	"testing"

	"github.com/Jackela/AI-Recruitment-Clerk-sub012/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPositionConfidence_Rubric(t *testing.T) {
	analyzer := NewAnalyzerWithClock(testClock)

	tests := []struct {
		name     string
		position types.WorkExperience
		expected float64
	}{
		{
			name: "complete position",
			position: types.WorkExperience{
				Company: "Acme Corp", Position: "Software Engineer",
				StartDate: "2020-01-01", EndDate: "2022-01-01",
			},
			expected: 100,
		},
		{
			name: "year-only dates earn half date points",
			position: types.WorkExperience{
				Company: "Acme Corp", Position: "Software Engineer",
				StartDate: "2020", EndDate: "2022",
			},
			expected: 80,
		},
		{
			name: "strong start with weak end earns half date points",
			position: types.WorkExperience{
				Company: "Acme Corp", Position: "Software Engineer",
				StartDate: "2020-01-01", EndDate: "2022",
			},
			expected: 80,
		},
		{
			name: "unparseable start earns no date or duration points",
			position: types.WorkExperience{
				Company: "Acme Corp", Position: "Software Engineer",
				StartDate: "???", EndDate: "2022-01-01",
			},
			expected: 50,
		},
		{
			name: "short title",
			position: types.WorkExperience{
				Company: "Acme Corp", Position: "Dev",
				StartDate: "2020-01-01", EndDate: "2022-01-01",
			},
			expected: 80,
		},
		{
			name: "medium title",
			position: types.WorkExperience{
				Company: "Acme Corp", Position: "Agent",
				StartDate: "2020-01-01", EndDate: "2022-01-01",
			},
			expected: 90,
		},
		{
			name: "empty title",
			position: types.WorkExperience{
				Company: "Acme Corp", Position: "",
				StartDate: "2020-01-01", EndDate: "2022-01-01",
			},
			expected: 70,
		},
		{
			// Three characters, nine bytes: tiers count characters.
			name: "multibyte title is tiered by character count",
			position: types.WorkExperience{
				Company: "Acme Corp", Position: "工程师",
				StartDate: "2020-01-01", EndDate: "2022-01-01",
			},
			expected: 80,
		},
		{
			name: "long multibyte title reaches the top tier",
			position: types.WorkExperience{
				Company: "Acme Corp", Position: "ソフトウェアエンジニア",
				StartDate: "2020-01-01", EndDate: "2022-01-01",
			},
			expected: 100,
		},
		{
			name: "single-letter company earns nothing",
			position: types.WorkExperience{
				Company: "A", Position: "Software Engineer",
				StartDate: "2020-01-01", EndDate: "2022-01-01",
			},
			expected: 80,
		},
		{
			name: "blank company earns nothing",
			position: types.WorkExperience{
				Company: "   ", Position: "Software Engineer",
				StartDate: "2020-01-01", EndDate: "2022-01-01",
			},
			expected: 80,
		},
		{
			name: "single-character multibyte company earns nothing",
			position: types.WorkExperience{
				Company: "谷", Position: "Software Engineer",
				StartDate: "2020-01-01", EndDate: "2022-01-01",
			},
			expected: 80,
		},
		{
			name: "two-character multibyte company qualifies",
			position: types.WorkExperience{
				Company: "谷歌", Position: "Software Engineer",
				StartDate: "2020-01-01", EndDate: "2022-01-01",
			},
			expected: 100,
		},
		{
			name: "same-month position loses duration points",
			position: types.WorkExperience{
				Company: "Acme Corp", Position: "Software Engineer",
				StartDate: "2020-03-05", EndDate: "2020-03-25",
			},
			expected: 90,
		},
		{
			name: "fifty-year span is still plausible",
			position: types.WorkExperience{
				Company: "Acme Corp", Position: "Software Engineer",
				StartDate: "1970-01-01", EndDate: "2020-01-01",
			},
			expected: 100,
		},
		{
			name: "span past fifty years loses duration points",
			position: types.WorkExperience{
				Company: "Acme Corp", Position: "Software Engineer",
				StartDate: "1970-01-01", EndDate: "2020-02-01",
			},
			expected: 90,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyzed := analyzer.AnalyzePosition(tt.position, nil)
			assert.InDelta(t, tt.expected, positionConfidence(analyzed), 1e-9)
		})
	}
}

func TestCalculateConfidence_AveragesAcrossAllPositions(t *testing.T) {
	analyzer := NewAnalyzerWithClock(testClock)
	analyzed := []types.AnalyzedPosition{
		analyzer.AnalyzePosition(types.WorkExperience{
			Company: "Acme Corp", Position: "Software Engineer",
			StartDate: "2020-01-01", EndDate: "2022-01-01",
		}, nil),
		analyzer.AnalyzePosition(types.WorkExperience{
			Company: "A", Position: "Dev",
			StartDate: "2020", EndDate: "2022",
		}, nil),
	}

	// (100 + 40) / 2
	assert.InDelta(t, 70.0, calculateConfidence(analyzed), 1e-9)
}

func TestCalculateConfidence_RoundsToOneDecimal(t *testing.T) {
	analyzer := NewAnalyzerWithClock(testClock)
	analyzed := []types.AnalyzedPosition{
		analyzer.AnalyzePosition(types.WorkExperience{
			Company: "Acme Corp", Position: "Software Engineer",
			StartDate: "2020-01-01", EndDate: "2022-01-01",
		}, nil),
		analyzer.AnalyzePosition(types.WorkExperience{
			Company: "Acme Corp", Position: "Software Engineer",
			StartDate: "2020", EndDate: "2022",
		}, nil),
		analyzer.AnalyzePosition(types.WorkExperience{
			Company: "A", Position: "Dev",
			StartDate: "???", EndDate: "??",
		}, nil),
	}

	// (100 + 80 + 10) / 3 = 63.333...
	assert.InDelta(t, 63.3, calculateConfidence(analyzed), 1e-9)
}

func TestCalculateConfidence_NoPositions(t *testing.T) {
	assert.Zero(t, calculateConfidence(nil))
	assert.Zero(t, calculateConfidence([]types.AnalyzedPosition{}))
}
