// Package observability provides logging setup and formatted CLI output.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-page/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI
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
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDocumentSummary outputs the composed name and which sections will render.
func (p *Printer) PrintDocumentSummary(doc *types.ResumeDocument, fullName string) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", fullName))
	sb.WriteString(fmt.Sprintf("Contact:  %s\n", contactSummary(doc.Info.Contact)))
	sb.WriteString("\n")

	sb.WriteString(sectionLine("Experiences", doc.Experiences.Present, headings(doc.Experiences.Entries, func(e types.Experience) string { return e.Role })))
	sb.WriteString(sectionLine("Education", doc.Education.Present, headings(doc.Education.Entries, func(e types.Education) string { return e.Field })))
	sb.WriteString(sectionLine("Projects", doc.Projects.Present, headings(doc.Projects.Entries, func(e types.Project) string { return e.Name })))
	sb.WriteString(sectionLine("Certifications", doc.Certifications.Present, headings(doc.Certifications.Entries, func(e types.Certification) string { return e.Name })))

	p.printBox("CONTENT DOCUMENT", strings.TrimRight(sb.String(), "\n"))
}

func contactSummary(c types.ContactInfo) string {
	var parts []string
	for _, v := range []string{c.Phone, c.Email, c.Website} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) == 0 {
		return "(none)"
	}
	return strings.Join(parts, ", ")
}

func sectionLine(name string, present bool, items []string) string {
	if !present {
		return fmt.Sprintf("%-15s removed\n", name+":")
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-15s %d entries\n", name+":", len(items)))
	for i, item := range items {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("  • %s\n", item))
	}
	return sb.String()
}

func headings[T any](entries []T, heading func(T) string) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, heading(e))
	}
	return out
}
