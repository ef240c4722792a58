// Package types provides type definitions for structured data used throughout the experience-analysis system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SeniorityLevel classifies a career history into one of four tiers.
type SeniorityLevel string

// Seniority tiers, ordered from least to most experienced.
const (
	SeniorityEntry  SeniorityLevel = "entry"
	SeniorityMid    SeniorityLevel = "mid"
	SenioritySenior SeniorityLevel = "senior"
	SeniorityExpert SeniorityLevel = "expert"
)

// ExperienceDetails summarizes per-position duration statistics.
// AverageMonths, ShortestMonths, and LongestMonths cover positions with a
// nonzero measured duration; PositionCount and HasCurrentPosition cover
// every analyzed position.
type ExperienceDetails struct {
	PositionCount      int     `json:"positionCount"`
	AverageMonths      float64 `json:"averageMonths"`
	ShortestMonths     int     `json:"shortestMonths"`
	LongestMonths      int     `json:"longestMonths"`
	HasCurrentPosition bool    `json:"hasCurrentPosition"`
}

// ExperienceAnalysis is the aggregate report for one career history:
// merged non-overlapping totals, relevance-weighted totals, seniority
// classification, detected gap and overlap ranges, and a composite
// confidence score on a 0-100 scale.
type ExperienceAnalysis struct {
	TotalMonths     int               `json:"totalMonths"`
	TotalYears      float64           `json:"totalYears"`
	RelevantMonths  int               `json:"relevantMonths"`
	RelevantYears   float64           `json:"relevantYears"`
	Seniority       SeniorityLevel    `json:"seniority"`
	Gaps            []DateRange       `json:"gaps"`
	Overlaps        []DateRange       `json:"overlaps"`
	ConfidenceScore float64           `json:"confidenceScore"`
	Details         ExperienceDetails `json:"details"`
}
