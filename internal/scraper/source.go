package scraper

import (
	"context"

	"github.com/fr4nk3nst1ner/vacancystats/internal/models"
)

// UnknownTotal marks a page whose platform did not report a total count.
const UnknownTotal = -1

// Page is one parsed page of search results.
type Page struct {
	Vacancies []models.Vacancy
	// Found is the platform's total for the search, or UnknownTotal
	Found int
	// More is true when the platform reports further pages.
	More bool
}

// PageSource fetches single pages of search results from a job platform.
// Implementations must not retry; every failure is returned to the caller.
type PageSource interface {
	// Name is a short lowercase identifier used in logs and errors
	Name() string
	// FetchPage returns the zero-based page of results for term.
	FetchPage(ctx context.Context, term string, page int) (*Page, error)
}
