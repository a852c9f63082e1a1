// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-extractor/internal/fields"
	"github.com/jonathan/resume-extractor/internal/jobtitle"
	"github.com/jonathan/resume-extractor/internal/types"
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
		if r := []rune(line); len(r) > boxWidth-4 {
			line = string(r[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResult outputs the extracted fields of one resume in the given order.
// Fields missing from the result are skipped.
func (p *Printer) PrintResult(source string, result types.Result, order []string) {
	if len(result) == 0 {
		return
	}

	var sb strings.Builder
	for _, name := range order {
		v, ok := result[name]
		if !ok {
			continue
		}
		label := fields.Label(name)
		switch {
		case v.IsNone():
			sb.WriteString(fmt.Sprintf("%s: (failed)\n", label))
		case v.Kind == types.KindList && len(v.Items) > 0:
			sb.WriteString(fmt.Sprintf("%s:\n", label))
			count := min(len(v.Items), maxItemsToShow)
			for _, item := range v.Items[:count] {
				sb.WriteString(fmt.Sprintf("  • %s\n", item))
			}
			if len(v.Items) > maxItemsToShow {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(v.Items)-maxItemsToShow))
			}
		default:
			sb.WriteString(fmt.Sprintf("%s: %s\n", label, v))
		}
	}

	p.printBox("EXTRACTED FIELDS: "+source, strings.TrimRight(sb.String(), "\n"))
}

// PrintScore outputs which completeness criteria a resume meets
func (p *Printer) PrintScore(b fields.ScoreBreakdown) {
	mark := func(ok bool) string {
		if ok {
			return "✓"
		}
		return "✗"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s Name found\n", mark(b.Name)))
	sb.WriteString(fmt.Sprintf("%s Email and phone found\n", mark(b.Contact)))
	sb.WriteString(fmt.Sprintf("%s At least 3 job titles\n", mark(b.Titles)))
	sb.WriteString(fmt.Sprintf("%s At least 5 skills\n", mark(b.Skills)))
	sb.WriteString(fmt.Sprintf("%s At least 3 companies\n", mark(b.Companies)))
	sb.WriteString(fmt.Sprintf("\nTotal: %d/5", b.Total()))

	p.printBox("RESUME SCORE", sb.String())
}

// PrintJobOutcome outputs how the latest job title was chosen
func (p *Printer) PrintJobOutcome(out jobtitle.Outcome) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("State:    %s\n", out.State))
	if out.Found() {
		sb.WriteString(fmt.Sprintf("Title:    %s (%s)\n", out.Title, out.Rule))
	}
	sb.WriteString(fmt.Sprintf("Blocks:   %d\n", len(out.Entries)))

	count := min(len(out.Entries), maxItemsToShow)
	for i, e := range out.Entries[:count] {
		marker := " "
		if i == out.Selected {
			marker = "→"
		}
		label := e.DateLabel
		if label == "" {
			label = "undated"
		}
		if e.IsCurrent {
			label += ", current"
		}
		sb.WriteString(fmt.Sprintf("%s %d. %s\n", marker, i+1, label))
	}
	if len(out.Entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(out.Entries)-maxItemsToShow))
	}

	p.printBox("JOB TITLE SELECTION", strings.TrimRight(sb.String(), "\n"))
}
