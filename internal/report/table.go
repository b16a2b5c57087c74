package report

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/vacancystats/internal/models"
	"github.com/fr4nk3nst1ner/vacancystats/internal/ui"
	"github.com/fr4nk3nst1ner/vacancystats/internal/utils"
)

// TableWriter draws a report as a pterm table inside a titled box.
type TableWriter struct {
	color bool
}

// TableWriterOption configures a TableWriter.
type TableWriterOption func(*TableWriter)

// WithColor colours the average salary column by band
func WithColor(color bool) TableWriterOption {
	return func(w *TableWriter) {
		w.color = color
	}
}

// NewTableWriter creates a TableWriter.
func NewTableWriter(opts ...TableWriterOption) *TableWriter {
	w := &TableWriter{}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write renders the report under title.
func (t *TableWriter) Write(w io.Writer, title string, report *models.Report) error {
	salaryCell := utils.FormatSalary
	if t.color {
		salaryCell = ui.ColorizeSalary
	}

	data := pterm.TableData{Header}
	data = append(data, rows(report, salaryCell)...)

	table, err := pterm.DefaultTable.
		WithHasHeader().
		WithData(data).
		Srender()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	_, err = fmt.Fprintln(w, pterm.DefaultBox.WithTitle(title).Sprint(table))
	return err
}
