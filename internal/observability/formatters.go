// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/Jackela/AI-Recruitment-Clerk-sub012/internal/types"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// maxSkillsPerRow is the number of skills previewed per timeline row
	maxSkillsPerRow = 3
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysis outputs a human-readable summary of an experience analysis.
func (p *Printer) PrintAnalysis(analysis *types.ExperienceAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Total:      %.1f years (%d months)\n", analysis.TotalYears, analysis.TotalMonths))
	sb.WriteString(fmt.Sprintf("Relevant:   %.1f years (%d months)\n", analysis.RelevantYears, analysis.RelevantMonths))
	sb.WriteString(fmt.Sprintf("Seniority:  %s\n", analysis.Seniority))
	sb.WriteString(fmt.Sprintf("Confidence: %.1f%%\n", analysis.ConfidenceScore))
	sb.WriteString("\n")

	positionsLine := fmt.Sprintf("Positions:  %d", analysis.Details.PositionCount)
	if analysis.Details.HasCurrentPosition {
		positionsLine += " (one ongoing)"
	}
	sb.WriteString(positionsLine + "\n")
	sb.WriteString(fmt.Sprintf("Overlaps:   %d\n", len(analysis.Overlaps)))

	if len(analysis.Gaps) > 0 {
		sb.WriteString(fmt.Sprintf("Gaps:       %d\n", len(analysis.Gaps)))
		count := min(len(analysis.Gaps), maxItemsToShow)
		for i := 0; i < count; i++ {
			gap := analysis.Gaps[i]
			sb.WriteString(fmt.Sprintf("  • %s → %s (%d months)\n",
				formatBoundary(gap.Start), formatBoundary(gap.End), gap.Duration.TotalMonths))
		}
		if len(analysis.Gaps) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.Gaps)-maxItemsToShow))
		}
	} else {
		sb.WriteString("Gaps:       0\n")
	}

	p.printBox("EXPERIENCE ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTimeline outputs the analyzed positions as a chronological table.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintTimeline(positions []types.AnalyzedPosition) {
	if len(positions) == 0 {
		return
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(p.out)
	tw.SetStyle(table.StyleRounded)
	tw.Style().Options.SeparateHeader = true
	tw.Style().Options.DrawBorder = true

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignCenter},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignCenter, WidthMax: 24},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignCenter, WidthMax: 28},
		{Number: 4, Align: text.AlignCenter, AlignHeader: text.AlignCenter},
		{Number: 5, Align: text.AlignCenter, AlignHeader: text.AlignCenter},
		{Number: 6, Align: text.AlignRight, AlignHeader: text.AlignCenter},
		{Number: 7, Align: text.AlignCenter, AlignHeader: text.AlignCenter},
		{Number: 8, Align: text.AlignLeft, AlignHeader: text.AlignCenter, WidthMax: 40},
	})

	tw.AppendHeader(table.Row{"#", "Company", "Title", "Start", "End", "Months", "Relevant", "Skills"})

	for i, position := range positions {
		relevant := ""
		if position.IsRelevant {
			relevant = "✓"
		}
		tw.AppendRow(table.Row{
			i + 1,
			position.Company,
			position.Title,
			formatBoundary(position.DateRange.Start),
			formatBoundary(position.DateRange.End),
			position.DateRange.Duration.TotalMonths,
			relevant,
			previewSkills(position.ExtractedSkills),
		})
	}

	tw.Render()
}

// formatBoundary renders a parsed range boundary for display: the literal
// "present" for ongoing positions, "?" when nothing parsed.
func formatBoundary(parsed types.ParsedDate) string {
	if parsed.IsPresent {
		return "present"
	}
	if !parsed.HasDate() {
		return "?"
	}
	return parsed.Date.Format("2006-01-02")
}

// previewSkills joins the first maxSkillsPerRow skills, noting how many
// were cut.
func previewSkills(skills []string) string {
	if len(skills) == 0 {
		return ""
	}
	if len(skills) <= maxSkillsPerRow {
		return strings.Join(skills, ", ")
	}
	return fmt.Sprintf("%s +%d more",
		strings.Join(skills[:maxSkillsPerRow], ", "), len(skills)-maxSkillsPerRow)
}
