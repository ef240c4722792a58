package experience

import (
	"strings"
	"unicode/utf8"

	"github.com/Jackela/AI-Recruitment-Clerk-sub012/internal/types"
)

// Per-position confidence rubric, 100 points total: parsed-date quality,
// title and company completeness, and duration plausibility.
const (
	datePointsFull = 40
	datePointsHalf = 20

	dateConfidenceFull = 0.8
	dateConfidenceHalf = 0.6

	titlePointsLong   = 30
	titlePointsMedium = 20
	titlePointsShort  = 10
	titleLongChars    = 10
	titleMediumChars  = 5

	companyPoints = 20

	durationPoints   = 10
	minPlausibleSpan = 1
	maxPlausibleSpan = 600
)

// calculateConfidence scores how trustworthy the extracted history looks,
// averaging the per-position rubric across every analyzed position. The
// result is a 0-100 percentage rounded to one decimal; zero positions
// score zero.
func calculateConfidence(analyzed []types.AnalyzedPosition) float64 {
	if len(analyzed) == 0 {
		return 0
	}

	total := 0.0
	for _, position := range analyzed {
		total += positionConfidence(position)
	}
	return round1(total / float64(len(analyzed)))
}

// positionConfidence applies the weighted rubric to one position: 40
// points for date quality (full when both boundary confidences are high,
// half on a decent start alone), 30 for title length, 20 for a real
// company name, 10 for a plausible duration.
func positionConfidence(position types.AnalyzedPosition) float64 {
	score := 0.0

	startConfidence := position.DateRange.Start.Confidence
	endConfidence := position.DateRange.End.Confidence
	switch {
	case startConfidence > dateConfidenceFull && endConfidence > dateConfidenceFull:
		score += datePointsFull
	case startConfidence > dateConfidenceHalf:
		score += datePointsHalf
	}

	switch titleLength := utf8.RuneCountInString(position.Title); {
	case titleLength >= titleLongChars:
		score += titlePointsLong
	case titleLength >= titleMediumChars:
		score += titlePointsMedium
	case titleLength >= 1:
		score += titlePointsShort
	}

	if utf8.RuneCountInString(strings.TrimSpace(position.Company)) > 1 {
		score += companyPoints
	}

	months := position.DateRange.Duration.TotalMonths
	if months >= minPlausibleSpan && months <= maxPlausibleSpan {
		score += durationPoints
	}

	return score
}
