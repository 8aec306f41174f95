// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/yamshy/resume-assistant/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobAnalysis outputs a human-readable summary of the analyzed posting
func (p *Printer) PrintJobAnalysis(ja *types.JobAnalysis) {
	if ja == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:   %s\n", ja.Company))
	sb.WriteString(fmt.Sprintf("Role:      %s\n", ja.RoleTitle))
	if ja.Seniority != "" {
		sb.WriteString(fmt.Sprintf("Seniority: %s\n", ja.Seniority))
	}

	if len(ja.Requirements) > 0 {
		sb.WriteString("\nRequirements:\n")
		count := min(len(ja.Requirements), maxItemsToShow)
		for i := 0; i < count; i++ {
			req := ja.Requirements[i]
			sb.WriteString(fmt.Sprintf("  • %s", req.Skill))
			if req.Level != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", req.Level))
			}
			sb.WriteString("\n")
		}
		if len(ja.Requirements) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(ja.Requirements)-maxItemsToShow))
		}
	}

	if len(ja.Keywords) > 0 {
		sb.WriteString(fmt.Sprintf("\nKeywords: %s\n", strings.Join(ja.Keywords, ", ")))
	}

	p.printBox("JOB ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResult outputs per-requirement scores and the overall match score
func (p *Printer) PrintMatchResult(match *types.MatchResult) {
	if match == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall score: %.2f\n\n", match.OverallScore))

	for _, rm := range match.Requirements {
		marker := "✗"
		if rm.Matched {
			marker = "✓"
		}
		sb.WriteString(fmt.Sprintf("  %s %s (%.2f)\n", marker, rm.Requirement.Skill, rm.Score))
	}

	if len(match.MissingKeywords) > 0 {
		sb.WriteString(fmt.Sprintf("\nMissing keywords: %s\n", strings.Join(match.MissingKeywords, ", ")))
	}

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSummaries outputs a one-line-per-draft listing
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSummaries(summaries []types.ResumeSummary) {
	if len(summaries) == 0 {
		fmt.Fprintln(p.out, "No drafts stored.")
		return
	}

	for _, s := range summaries {
		fmt.Fprintf(p.out, "%s  v%d  %-18s  %.2f  %s — %s\n",
			s.ID, s.Version, s.Status, s.Score, s.RoleTitle, s.Company)
	}
}
