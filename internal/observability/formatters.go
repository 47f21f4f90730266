// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/samay2504/GenAI-Resume/internal/batch"
	"github.com/samay2504/GenAI-Resume/internal/types"
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

// PrintParsedResume outputs a human-readable summary of one parsed record.
func (p *Printer) PrintParsedResume(record *types.ParsedResume) {
	if record == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:    %s\n", record.Basics.Name))
	sb.WriteString(fmt.Sprintf("Email:   %s\n", record.Basics.Email))
	sb.WriteString(fmt.Sprintf("Method:  %s\n", record.Metadata.ParsingMethod))
	sb.WriteString("\n")

	sb.WriteString("Sections:\n")
	for kind, value := range record.Sections {
		sb.WriteString(fmt.Sprintf("  • %s (%s)\n", kind, describeValue(value)))
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBatchSummary outputs per-file outcomes and aggregate counts.
func (p *Printer) PrintBatchSummary(results []batch.FileResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	var ok, failed int
	for _, r := range results {
		if r.Status == batch.StatusSuccess {
			ok++
		} else {
			failed++
		}
	}
	sb.WriteString(fmt.Sprintf("Processed: %d   succeeded: %d   failed: %d\n\n", len(results), ok, failed))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := results[i]
		line := fmt.Sprintf("  %-8s %s", r.Status, r.FileName)
		if r.Error != "" {
			line += fmt.Sprintf(" (%s)", r.Error)
		}
		sb.WriteString(line + "\n")
	}
	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(results)-maxItemsToShow))
	}

	p.printBox("BATCH SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// describeValue summarizes a polymorphic section value for display.
func describeValue(value any) string {
	switch v := value.(type) {
	case []string:
		return fmt.Sprintf("%d items", len(v))
	case []types.EducationEntry:
		return fmt.Sprintf("%d entries", len(v))
	case string:
		return fmt.Sprintf("%d chars", len(v))
	default:
		return "value"
	}
}
