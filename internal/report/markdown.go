package report

import (
	"io"

	"github.com/nao1215/markdown"

	"github.com/fr4nk3nst1ner/vacancystats/internal/models"
	"github.com/fr4nk3nst1ner/vacancystats/internal/utils"
)

// MarkdownWriter outputs reports as markdown sections, one table per report.
type MarkdownWriter struct{}

// NewMarkdownWriter creates a MarkdownWriter
func NewMarkdownWriter() *MarkdownWriter {
	return &MarkdownWriter{}
}

// Write renders the report under a level two heading.
func (m *MarkdownWriter) Write(w io.Writer, title string, report *models.Report) error {
	md := markdown.NewMarkdown(w)

	md.H2(title)
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: Header,
		Rows:   rows(report, utils.FormatSalary),
	})

	return md.Build()
}
