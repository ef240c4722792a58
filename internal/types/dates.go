// Package types provides type definitions for structured data used throughout the experience-analysis system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// ParsedDate represents a single date-like string resolved into a
// confidence-scored calendar date.
//
// Invariant: IsPresent=true implies Date is populated (resolved to "now"
// at parse time) and Confidence is 1.0. A nil Date with IsPresent=false
// denotes an unparseable value.
type ParsedDate struct {
	Date       *time.Time `json:"date"`
	Original   string     `json:"original"`
	Confidence float64    `json:"confidence"`
	Format     string     `json:"format"`
	IsPresent  bool       `json:"isPresent"`
}

// HasDate reports whether the parse produced a calendar date.
func (p ParsedDate) HasDate() bool {
	return p.Date != nil
}

// Duration represents an elapsed span at month granularity. It is always
// derived from a pair of dates, never constructed independently.
type Duration struct {
	Years       int `json:"years"`
	Months      int `json:"months"`
	TotalMonths int `json:"totalMonths"`
}

// DateRange pairs the parsed start and end of a position with the derived
// duration between them. Immutable once built.
type DateRange struct {
	Start    ParsedDate `json:"start"`
	End      ParsedDate `json:"end"`
	Duration Duration   `json:"duration"`
}
