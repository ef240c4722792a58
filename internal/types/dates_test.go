// Package types provides type definitions for structured data used throughout the experience-analysis system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParsedDate_HasDate(t *testing.T) {
	date := time.Date(2020, time.March, 1, 0, 0, 0, 0, time.UTC)
	parsed := ParsedDate{
		Date:       &date,
		Original:   "2020-03-01",
		Confidence: 1.0,
		Format:     "iso-full",
	}
	assert.True(t, parsed.HasDate())

	unparseable := ParsedDate{Original: "???", Format: "unparseable"}
	assert.False(t, unparseable.HasDate())

	assert.False(t, ParsedDate{}.HasDate())
}
