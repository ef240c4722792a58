package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Jackela/AI-Recruitment-Clerk-sub012/internal/config"
	"github.com/Jackela/AI-Recruitment-Clerk-sub012/internal/experience"
	"github.com/Jackela/AI-Recruitment-Clerk-sub012/internal/observability"
	"github.com/Jackela/AI-Recruitment-Clerk-sub012/internal/schemas"
	"github.com/Jackela/AI-Recruitment-Clerk-sub012/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze one or more work-history JSON files",
	Long: `Analyzes work-history JSON files into experience analysis artifacts: merged
non-overlapping experience totals, employment gaps and overlaps, relevance
scoring against target skills, seniority classification, and a confidence
score for the extraction quality.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runAnalyze,
}

var (
	analyzeConfigPath string
	analyzeInputs     []string
	analyzeOutputFile string
	analyzeOutputDir  string
	analyzeSkills     []string
	analyzeAsOf       string
	analyzeVerbose    bool
)

func init() {
	// Config file flag (processed first)
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCmd.Flags().StringArrayVarP(&analyzeInputs, "in", "i", nil, "Path to a work-history JSON file (repeatable)")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output analysis JSON file (single input only)")
	analyzeCmd.Flags().StringVar(&analyzeOutputDir, "out-dir", "", "Directory for analysis artifacts, one per input (mutually exclusive with --out)")
	analyzeCmd.Flags().StringSliceVar(&analyzeSkills, "skills", nil, "Comma-separated target skills weighted in relevance scoring")
	analyzeCmd.Flags().StringVar(&analyzeAsOf, "as-of", "", "Reference date for ongoing positions (YYYY-MM-DD, defaults to today)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print the analysis box and position timeline")

	rootCmd.AddCommand(analyzeCmd)
}

// analyzeResult carries one input's analysis so results can be reported in
// input order after the batch fan-out completes.
type analyzeResult struct {
	input     string
	outPath   string
	analysis  types.ExperienceAnalysis
	positions []types.AnalyzedPosition
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	// Step 1: Load config file if provided
	var cfg config.Config
	if analyzeConfigPath != "" {
		loadedCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Validate loaded config
		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("in") {
		cfg.Inputs = analyzeInputs
	}
	if cmd.Flags().Changed("out-dir") {
		cfg.OutDir = analyzeOutputDir
	}
	if cmd.Flags().Changed("skills") {
		cfg.TargetSkills = analyzeSkills
	}
	if cmd.Flags().Changed("as-of") {
		cfg.AsOf = analyzeAsOf
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(analyzeDefaults())

	// Step 4: Validate required fields
	if len(cfg.Inputs) == 0 {
		return fmt.Errorf("at least one input file must be provided (via --in or config)")
	}
	if analyzeOutputFile != "" && cfg.OutDir != "" {
		return fmt.Errorf("--out and --out-dir are mutually exclusive; provide only one")
	}
	if analyzeOutputFile != "" && len(cfg.Inputs) > 1 {
		return fmt.Errorf("--out accepts exactly one input; use --out-dir for multiple files")
	}

	analyzer, err := buildAnalyzer(cfg.AsOf)
	if err != nil {
		return err
	}

	ctx := context.Background()
	results := make([]*analyzeResult, len(cfg.Inputs))

	g, gCtx := errgroup.WithContext(ctx)
	for i, input := range cfg.Inputs {
		i, input := i, input // per-iteration copies; required while go.mod targets go < 1.22
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			outPath := outputPathFor(input, analyzeOutputFile, cfg.OutDir)
			result, err := analyzeFile(analyzer, input, outPath, cfg.TargetSkills, cfg.Verbose)
			if err != nil {
				return fmt.Errorf("analysis of %s failed: %w", input, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	for _, result := range results {
		_, _ = fmt.Fprintf(os.Stdout, "%s: %s\n", result.input, experience.GetExperienceSummary(result.analysis))
		if result.outPath != "" {
			_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", result.outPath)
		}
		if cfg.Verbose {
			printer.PrintAnalysis(&result.analysis)
			printer.PrintTimeline(result.positions)
		}
	}

	return nil
}

// analyzeDefaults returns the built-in defaults merged beneath config and
// flag values. Only the as-of date has one: it falls back to today (UTC).
// Inputs and output paths have no defaults; missing inputs stay a
// validation error and an empty out path still means print-only.
func analyzeDefaults() config.Config {
	return config.Config{
		AsOf: time.Now().UTC().Format("2006-01-02"),
	}
}

// buildAnalyzer returns an analyzer pinned to the as-of date when one is
// given, otherwise one on the system clock.
func buildAnalyzer(asOf string) (*experience.Analyzer, error) {
	if asOf == "" {
		return experience.NewAnalyzer(), nil
	}
	ref, err := time.Parse("2006-01-02", asOf)
	if err != nil {
		return nil, fmt.Errorf("invalid --as-of date (want YYYY-MM-DD): %w", err)
	}
	return experience.NewAnalyzerWithClock(func() time.Time { return ref }), nil
}

// outputPathFor resolves where one input's artifact goes: the explicit
// --out path, a per-input file under --out-dir, or empty for print-only.
func outputPathFor(inputPath, outFile, outDir string) string {
	if outFile != "" {
		return outFile
	}
	if outDir == "" {
		return ""
	}
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return filepath.Join(outDir, base+".analysis.json")
}

func analyzeFile(analyzer *experience.Analyzer, inputPath, outPath string, runSkills []string, verbose bool) (*analyzeResult, error) {
	// Load work history
	history, err := experience.LoadWorkHistory(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load work history: %w", err)
	}

	// Run-level skills and the document's own targetSkills both count;
	// the analyzer deduplicates them after normalization.
	targetSkills := append(append([]string{}, runSkills...), history.TargetSkills...)

	analysis := analyzer.AnalyzeExperience(history.Positions, targetSkills)

	result := &analyzeResult{
		input:    inputPath,
		outPath:  outPath,
		analysis: analysis,
	}
	if verbose {
		result.positions = timelinePositions(analyzer, history.Positions, targetSkills)
	}

	if outPath == "" {
		return result, nil
	}

	// Marshal to JSON with indentation
	jsonBytes, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analysis: %w", err)
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(outPath)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	// Write to output file
	if err := os.WriteFile(outPath, jsonBytes, 0644); err != nil {
		return nil, fmt.Errorf("failed to write output file: %w", err)
	}

	if err := validateArtifact(outPath); err != nil {
		return nil, err
	}

	return result, nil
}

// validateArtifact checks a written analysis artifact against the
// experience_analysis schema. Validation failures fail the run;
// schema-loading problems only warn, since the artifact itself is fine.
func validateArtifact(outPath string) error {
	schemaPath := schemas.ResolveSchemaPath("schemas/experience_analysis.schema.json")
	if schemaPath == "" {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not locate experience_analysis schema; skipping artifact validation\n")
		return nil
	}

	if err := schemas.ValidateJSON(schemaPath, outPath); err != nil {
		// Distinguish between validation errors (data doesn't match schema) and schema load errors
		var validationErr *schemas.ValidationError
		var schemaLoadErr *schemas.SchemaLoadError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("generated JSON does not validate against schema: %w", err)
		} else if errors.As(err, &schemaLoadErr) {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema (schema loading failed): %v\n", err)
		} else {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
		}
	}

	return nil
}

// timelinePositions re-analyzes each record for display and orders them
// chronologically, records without a parsed start date last.
func timelinePositions(analyzer *experience.Analyzer, positions []types.WorkExperience, targetSkills []string) []types.AnalyzedPosition {
	analyzed := make([]types.AnalyzedPosition, 0, len(positions))
	for _, position := range positions {
		analyzed = append(analyzed, analyzer.AnalyzePosition(position, targetSkills))
	}
	sort.SliceStable(analyzed, func(i, j int) bool {
		a, b := analyzed[i].DateRange.Start.Date, analyzed[j].DateRange.Start.Date
		if a == nil || b == nil {
			return a != nil
		}
		return a.Before(*b)
	})
	return analyzed
}
