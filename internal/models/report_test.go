package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_KeepsInsertionOrder(t *testing.T) {
	r := NewReport("headhunter")
	for _, language := range []string{"Python", "C", "Go", "1С", "C#"} {
		r.Set(language, LanguageSummary{})
	}
	assert.Equal(t, []string{"Python", "C", "Go", "1С", "C#"}, r.Languages())
	assert.Equal(t, 5, r.Len())
}

func TestReport_SetReplacesInPlace(t *testing.T) {
	r := NewReport("superjob")
	r.Set("Go", LanguageSummary{VacanciesFound: 1})
	r.Set("Lua", LanguageSummary{VacanciesFound: 2})
	r.Set("Go", LanguageSummary{VacanciesFound: 3, VacanciesProcessed: 1, AverageSalary: Int(100)})

	assert.Equal(t, []string{"Go", "Lua"}, r.Languages())
	got, ok := r.Get("Go")
	require.True(t, ok)
	assert.Equal(t, 3, got.VacanciesFound)
	assert.True(t, got.HasAverage())
}

func TestReport_Failures(t *testing.T) {
	r := NewReport("superjob")
	r.Set("Go", LanguageSummary{})
	r.SetFailed("Lua", errors.New("boom"))

	assert.Equal(t, 1, r.Failures())
	_, ok := r.Get("Lua")
	assert.False(t, ok)
	_, ok = r.Get("Rust")
	assert.False(t, ok)

	entries := r.Entries()
	require.Len(t, entries, 2)
	assert.True(t, entries[1].Failed())
	assert.EqualError(t, entries[1].Err, "boom")
}

func TestReport_ZeroValue(t *testing.T) {
	var r Report
	_, ok := r.Get("Go")
	assert.False(t, ok)
	r.Set("Go", LanguageSummary{VacanciesFound: 1})
	assert.Equal(t, []string{"Go"}, r.Languages())
}
