// Package types provides type definitions for structured data used throughout the experience-analysis system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// WorkExperience represents one raw position record handed over by the
// upstream document normalizer. Date fields may be any supported format,
// empty, or a present-keyword literal such as "present" or "current".
type WorkExperience struct {
	Company   string `json:"company"`
	Position  string `json:"position"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Summary   string `json:"summary"`
}

// WorkHistory is the input document for an analysis run: the ordered list
// of raw positions plus optional caller-supplied target skills.
type WorkHistory struct {
	Positions    []WorkExperience `json:"positions" validate:"required"`
	TargetSkills []string         `json:"targetSkills,omitempty"`
}

// AnalyzedPosition is the per-position analysis record: the parsed date
// range plus relevance scoring, extracted skills, and seniority indicator
// tags. Built once per input record and never mutated afterwards.
type AnalyzedPosition struct {
	Company             string    `json:"company"`
	Title               string    `json:"title"`
	Summary             string    `json:"summary"`
	DateRange           DateRange `json:"dateRange"`
	RelevanceScore      float64   `json:"relevanceScore"`
	IsRelevant          bool      `json:"isRelevant"`
	ExtractedSkills     []string  `json:"extractedSkills"`
	SeniorityIndicators []string  `json:"seniorityIndicators"`
}

// Validate validates the WorkHistory using the validator.
func (h *WorkHistory) Validate() error {
	validate := validator.New()
	return validate.Struct(h)
}
