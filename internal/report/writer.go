// Package report renders per-language vacancy statistics.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fr4nk3nst1ner/vacancystats/internal/models"
	"github.com/fr4nk3nst1ner/vacancystats/internal/utils"
)

const (
	// FormatTable renders boxed terminal tables.
	FormatTable = "table"
	// FormatMarkdown renders GitHub flavoured markdown tables.
	FormatMarkdown = "markdown"

	failedCell = "error"
)

// Header is the column layout shared by every writer.
var Header = []string{"Language", "Vacancies found", "Vacancies processed", "Average salary"}

// Writer renders a single report.
type Writer interface {
	Write(w io.Writer, title string, report *models.Report) error
}

// Section pairs a report with the title it is printed under.
type Section struct {
	Title  string
	Report *models.Report
}

// NewWriter returns the writer for a format name
func NewWriter(format string, color bool) (Writer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatTable:
		return NewTableWriter(WithColor(color)), nil
	case FormatMarkdown:
		return NewMarkdownWriter(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want %s or %s)", format, FormatTable, FormatMarkdown)
	}
}

// WriteAll renders every section, separated by a blank line.
func WriteAll(w io.Writer, writer Writer, sections []Section) error {
	for i, section := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := writer.Write(w, section.Title, section.Report); err != nil {
			return fmt.Errorf("failed to render %q: %w", section.Title, err)
		}
	}
	return nil
}

// rows converts a report into plain text cells, in report order.
// salaryCell formats the average salary column.
func rows(report *models.Report, salaryCell func(*int) string) [][]string {
	entries := report.Entries()
	out := make([][]string, 0, len(entries))
	for _, e := range entries {
		if e.Failed() {
			out = append(out, []string{e.Language, failedCell, failedCell, failedCell})
			continue
		}
		out = append(out, []string{
			e.Language,
			utils.FormatCount(e.Summary.VacanciesFound),
			utils.FormatCount(e.Summary.VacanciesProcessed),
			salaryCell(e.Summary.AverageSalary),
		})
	}
	return out
}
