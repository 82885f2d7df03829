// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/identity-verifier/internal/types"
	"github.com/jonathan/identity-verifier/internal/validation"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
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

// PrintVerdictReport outputs a human-readable summary of a reconciliation
// verdict, one line per compared field.
func (p *Printer) PrintVerdictReport(report *types.VerdictReport) {
	if report == nil {
		return
	}

	var sb strings.Builder

	if report.DocumentType != "" {
		sb.WriteString(fmt.Sprintf("Document: %s\n", report.DocumentType))
	}
	sb.WriteString(fmt.Sprintf("Verdict:  %s\n", strings.ToUpper(report.Verdict)))
	sb.WriteString(fmt.Sprintf("Score:    %.2f%% (%d/%d fields)\n", report.SimilarityScore, report.MatchedFields, report.TotalFields))

	if len(report.Details) > 0 {
		sb.WriteString("\n")

		fields := make([]string, 0, len(report.Details))
		for field := range report.Details {
			fields = append(fields, field)
		}
		sort.Strings(fields)

		for _, field := range fields {
			result := report.Details[field]
			mark := "✗"
			if result.Match {
				mark = "✓"
			}
			sb.WriteString(fmt.Sprintf("%s %-16s %3d  %s\n", mark, field, result.Similarity, truncateValue(result.ExtractedValue, 24)))
		}
	}

	p.printBox("VERIFICATION VERDICT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExtractedRecord outputs the canonical fields pulled out of a document.
func (p *Printer) PrintExtractedRecord(record types.ExtractedRecord) {
	if len(record) == 0 {
		return
	}

	fields := make([]string, 0, len(record))
	for field := range record {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var sb strings.Builder
	for _, field := range fields {
		sb.WriteString(fmt.Sprintf("%-18s %s\n", field+":", truncateValue(record[field], 32)))
	}

	p.printBox("EXTRACTED DETAILS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintNumberCheck outputs a document number format check result.
func (p *Printer) PrintNumberCheck(docType string, result validation.Result) {
	content := fmt.Sprintf("Document: %s\nStatus:   %s\nDetail:   %s", docType, strings.ToUpper(result.Status), result.Message)
	p.printBox("DOCUMENT NUMBER CHECK", content)
}

// truncateValue renders a value as a single-line string of at most maxLen
// characters.
func truncateValue(v any, maxLen int) string {
	s := fmt.Sprintf("%v", v)
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) > maxLen {
		s = s[:maxLen-3] + "..."
	}
	return s
}
