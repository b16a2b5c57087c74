package models

// SalaryRange is the salary block a platform attaches to a vacancy.
// A nil bound means the platform did not report it.
type SalaryRange struct {
	From     *int   `json:"from,omitempty"`
	To       *int   `json:"to,omitempty"`
	Currency string `json:"currency"`
}

// Vacancy is a single job posting returned by a search API
type Vacancy struct {
	ID     string       `json:"id"`
	Title  string       `json:"title"`
	Salary *SalaryRange `json:"salary,omitempty"`
	Source string       `json:"source"`
}

// LanguageSummary holds the aggregated statistics for one search term on one platform.
type LanguageSummary struct {
	VacanciesFound     int  `json:"vacancies_found"`
	VacanciesProcessed int  `json:"vacancies_processed"`
	AverageSalary      *int `json:"average_salary"`
}

// HasAverage reports whether an average salary could be computed
func (s LanguageSummary) HasAverage() bool {
	return s.AverageSalary != nil
}

// Int returns a pointer to v. Handy when building salary bounds.
func Int(v int) *int {
	return &v
}
