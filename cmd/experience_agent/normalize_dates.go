package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Jackela/AI-Recruitment-Clerk-sub012/internal/dates"
	"github.com/spf13/cobra"
)

var normalizeDatesCmd = &cobra.Command{
	Use:   "normalize-dates",
	Short: "Normalize a batch of raw date strings to ISO form",
	Long:  "Reads a JSON array of raw date strings, parses each one with the multi-format date parser, and writes normalized records (original text, ISO date, detected format, confidence, present flag) to a file.",
	RunE:  runNormalizeDates,
}

var (
	normalizeInputFile  string
	normalizeOutputFile string
	normalizeAsOf       string
)

// normalizedDate is one output record of the normalize-dates command.
type normalizedDate struct {
	Original   string  `json:"original"`
	ISO        string  `json:"iso"`
	Format     string  `json:"format"`
	Confidence float64 `json:"confidence"`
	IsPresent  bool    `json:"isPresent"`
}

func init() {
	normalizeDatesCmd.Flags().StringVarP(&normalizeInputFile, "in", "i", "", "Path to input JSON array of raw date strings (required)")
	normalizeDatesCmd.Flags().StringVarP(&normalizeOutputFile, "out", "o", "", "Path to output normalized records JSON file (required)")
	normalizeDatesCmd.Flags().StringVar(&normalizeAsOf, "as-of", "", "Reference date for present-keyword resolution (YYYY-MM-DD, defaults to today)")

	if err := normalizeDatesCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	if err := normalizeDatesCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(normalizeDatesCmd)
}

func runNormalizeDates(_ *cobra.Command, _ []string) error {
	parser, err := buildDateParser(normalizeAsOf)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(normalizeInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var rawDates []string
	if err := json.Unmarshal(content, &rawDates); err != nil {
		return fmt.Errorf("failed to unmarshal JSON (want an array of strings): %w", err)
	}

	records := make([]normalizedDate, 0, len(rawDates))
	for _, raw := range rawDates {
		parsed := parser.ParseDate(raw)
		records = append(records, normalizedDate{
			Original:   raw,
			ISO:        parser.NormalizeToISO(raw),
			Format:     parsed.Format,
			Confidence: parsed.Confidence,
			IsPresent:  parsed.IsPresent,
		})
	}

	// Marshal to JSON with indentation
	jsonBytes, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal normalized records: %w", err)
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(normalizeOutputFile)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Write to output file
	if err := os.WriteFile(normalizeOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully normalized %d date string(s)\n", len(records))
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", normalizeOutputFile)

	return nil
}

// buildDateParser mirrors buildAnalyzer for the standalone date command.
func buildDateParser(asOf string) (*dates.Parser, error) {
	if asOf == "" {
		return dates.NewParser(), nil
	}
	ref, err := time.Parse("2006-01-02", asOf)
	if err != nil {
		return nil, fmt.Errorf("invalid --as-of date (want YYYY-MM-DD): %w", err)
	}
	return dates.NewParserWithClock(func() time.Time { return ref }), nil
}
