package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fr4nk3nst1ner/vacancystats/internal/models"
)

func sampleReport() *models.Report {
	r := models.NewReport("headhunter")
	r.Set("Python", models.LanguageSummary{VacanciesFound: 2345, VacanciesProcessed: 610, AverageSalary: models.Int(215430)})
	r.Set("Go", models.LanguageSummary{VacanciesFound: 2, VacanciesProcessed: 1, AverageSalary: models.Int(150000)})
	r.Set("Lua", models.LanguageSummary{VacanciesFound: 12})
	return r
}

func TestTableWriter(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	var buf bytes.Buffer
	err := NewTableWriter().Write(&buf, "HeadHunter Moscow", sampleReport())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "HeadHunter Moscow")
	for _, col := range Header {
		assert.Contains(t, out, col)
	}
	assert.Contains(t, out, "2,345")
	assert.Contains(t, out, "215,430")
	assert.Contains(t, out, "150,000")

	// rows keep report order, not alphabetical order
	python := strings.Index(out, "Python")
	golang := strings.Index(out, "Go ")
	lua := strings.Index(out, "Lua")
	assert.True(t, python < golang && golang < lua, "unexpected row order:\n%s", out)

	luaLine := lineContaining(out, "Lua")
	assert.Contains(t, luaLine, "-")
	assert.Contains(t, luaLine, "12")
}

func TestTableWriter_Color(t *testing.T) {
	pterm.EnableColor()

	var buf bytes.Buffer
	err := NewTableWriter(WithColor(true)).Write(&buf, "SuperJob Moscow", sampleReport())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "215,430")
}

func TestTableWriter_FailedLanguage(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	r := models.NewReport("superjob")
	r.SetFailed("Rust", errors.New("status 500"))

	var buf bytes.Buffer
	require.NoError(t, NewTableWriter().Write(&buf, "SuperJob Moscow", r))
	assert.Contains(t, lineContaining(buf.String(), "Rust"), failedCell)
}

func TestMarkdownWriter(t *testing.T) {
	var buf bytes.Buffer
	err := NewMarkdownWriter().Write(&buf, "SuperJob Moscow", sampleReport())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "## SuperJob Moscow")
	assert.Contains(t, out, "Vacancies processed")
	assert.Contains(t, out, "150,000")
	assert.Contains(t, lineContaining(out, "Lua"), "-")
	assert.Less(t, strings.Index(out, "Python"), strings.Index(out, "Lua"))
}

func TestWriteAll(t *testing.T) {
	var buf bytes.Buffer
	err := WriteAll(&buf, NewMarkdownWriter(), []Section{
		{Title: "HeadHunter Moscow", Report: sampleReport()},
		{Title: "SuperJob Moscow", Report: sampleReport()},
	})
	require.NoError(t, err)

	out := buf.String()
	hh := strings.Index(out, "HeadHunter Moscow")
	sj := strings.Index(out, "SuperJob Moscow")
	require.True(t, hh >= 0 && sj > hh)
	assert.Contains(t, out[hh:sj], "\n\n")
}

func TestNewWriter(t *testing.T) {
	w, err := NewWriter("", false)
	require.NoError(t, err)
	assert.IsType(t, &TableWriter{}, w)

	w, err = NewWriter("Markdown", false)
	require.NoError(t, err)
	assert.IsType(t, &MarkdownWriter{}, w)

	_, err = NewWriter("csv", false)
	assert.Error(t, err)
}

func lineContaining(s, sub string) string {
	for _, line := range strings.Split(s, "\n") {
		if strings.Contains(line, sub) {
			return line
		}
	}
	return ""
}
