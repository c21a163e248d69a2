// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-paginator/internal/pagination"
	"github.com/jonathan/cv-paginator/internal/types"
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
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintPages outputs the section layout of every page of a logical pagination run.
func (p *Printer) PrintPages(res pagination.Result) {
	var sb strings.Builder

	for i, page := range res.Pages {
		whole := make(map[string]types.Section, len(page.Sections))
		for _, s := range page.Sections {
			whole[pagination.SectionKey(s)] = s
		}

		sb.WriteString(fmt.Sprintf("Page %d\n", page.Number))
		if len(page.Layout) == 0 {
			sb.WriteString("  (empty)\n")
		}
		for _, key := range page.Layout {
			if part, ok := page.PartialSections[key]; ok {
				end := part.StartIndex + len(part.Items)
				sb.WriteString(fmt.Sprintf("  • %s [items %d-%d of %d]\n", part.Title, part.StartIndex+1, end, part.TotalItems))
				continue
			}
			if s, ok := whole[key]; ok {
				sb.WriteString(fmt.Sprintf("  • %s (%d items)\n", s.Title, len(s.Items)))
			}
		}
		if i < len(res.Pages)-1 {
			sb.WriteString("\n")
		}
	}

	if res.Truncated {
		sb.WriteString("\n⚠ Content truncated at the page limit")
	}

	p.printBox(fmt.Sprintf("PAGINATION (%d pages)", res.PageCount()), strings.TrimRight(sb.String(), "\n"))
}

// PrintFlow outputs block placements of a flow run with their offsets.
func (p *Printer) PrintFlow(res pagination.FlowResult) {
	var sb strings.Builder

	for i, page := range res.Pages {
		sb.WriteString(fmt.Sprintf("Page %d (%d blocks)\n", page.Index+1, len(page.Placements)))
		for j, pl := range page.Placements {
			if j == maxItemsToShow {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(page.Placements)-maxItemsToShow))
				break
			}
			sb.WriteString(fmt.Sprintf("  %s y=%.0f h=%.0f\n", describeBlock(pl.Block), pl.Y, pl.Height))
		}
		if i < len(res.Pages)-1 {
			sb.WriteString("\n")
		}
	}

	if res.Truncated {
		sb.WriteString("\n⚠ Content truncated at the page limit")
	}

	p.printBox(fmt.Sprintf("FLOW LAYOUT (%d pages)", res.PageCount()), strings.TrimRight(sb.String(), "\n"))
}

func describeBlock(b pagination.ContentBlock) string {
	switch b.Kind {
	case pagination.BlockSection:
		if b.TotalItems > 0 && b.Section != nil {
			return fmt.Sprintf("%s [%d-%d/%d]", b.Title, b.StartIndex+1, b.StartIndex+len(b.Section.Items), b.TotalItems)
		}
		return b.Title
	case pagination.BlockImage:
		if b.Image != nil {
			return "image " + b.Image.Source
		}
		return "image"
	case pagination.BlockItem:
		if b.Item != nil {
			return "item " + b.Item.Heading
		}
		return "item"
	default:
		return string(b.Kind)
	}
}

// PrintViolations outputs any layout violations found.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintViolations(violations *types.Violations) {
	if violations == nil || violations.Count() == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO VIOLATIONS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d violations:\n\n", violations.Count()))

	for i, v := range violations.Violations {
		details := v.Details
		if len(details) > 45 {
			details = details[:42] + "..."
		}
		marker := "⚠"
		if v.Severity == types.SeverityError {
			marker = "✗"
		}
		if v.Page != nil {
			sb.WriteString(fmt.Sprintf("%s %s (page %d)\n", marker, v.Type, *v.Page))
		} else {
			sb.WriteString(fmt.Sprintf("%s %s\n", marker, v.Type))
		}
		sb.WriteString(fmt.Sprintf("  %s\n", details))
		if i < len(violations.Violations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("LAYOUT VIOLATIONS", strings.TrimRight(sb.String(), "\n"))
}
