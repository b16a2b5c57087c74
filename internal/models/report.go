package models

// ReportEntry is one row of a Report.
type ReportEntry struct {
	Language string
	Summary  LanguageSummary
	// Err is set when the language could not be collected and the run was told to keep going.
	Err error
}

// Failed reports whether the entry holds an error instead of statistics
func (e ReportEntry) Failed() bool {
	return e.Err != nil
}

// Report maps language names to their summaries, preserving insertion order.
type Report struct {
	Source  string
	entries []ReportEntry
	index   map[string]int
}

// NewReport creates an empty report for the named source
func NewReport(source string) *Report {
	return &Report{
		Source: source,
		index:  make(map[string]int),
	}
}

// Set stores the summary for a language. A language that is already present keeps its position.
func (r *Report) Set(language string, summary LanguageSummary) {
	r.put(ReportEntry{Language: language, Summary: summary})
}

// SetFailed records that a language could not be collected.
func (r *Report) SetFailed(language string, err error) {
	r.put(ReportEntry{Language: language, Err: err})
}

func (r *Report) put(entry ReportEntry) {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if i, ok := r.index[entry.Language]; ok {
		r.entries[i] = entry
		return
	}
	r.index[entry.Language] = len(r.entries)
	r.entries = append(r.entries, entry)
}

// Get returns the summary stored for a language
func (r *Report) Get(language string) (LanguageSummary, bool) {
	i, ok := r.index[language]
	if !ok || r.entries[i].Failed() {
		return LanguageSummary{}, false
	}
	return r.entries[i].Summary, true
}

// Languages returns the language names in insertion order.
func (r *Report) Languages() []string {
	languages := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		languages = append(languages, e.Language)
	}
	return languages
}

// Entries returns a copy of the rows in insertion order.
func (r *Report) Entries() []ReportEntry {
	out := make([]ReportEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of languages in the report
func (r *Report) Len() int {
	return len(r.entries)
}

// Failures returns the number of languages that could not be collected.
func (r *Report) Failures() int {
	n := 0
	for _, e := range r.entries {
		if e.Failed() {
			n++
		}
	}
	return n
}
