// Package main provides the entry point for the experience analysis CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "experience_agent",
	Short: "Career history analysis CLI",
	Long:  "Experience agent analyzes raw career-history records: it parses free-form date strings, merges overlapping positions into non-overlapping totals, detects employment gaps and overlaps, and scores relevance and seniority.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
