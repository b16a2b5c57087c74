package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fr4nk3nst1ner/vacancystats/internal/client"
	"github.com/fr4nk3nst1ner/vacancystats/internal/models"
	"github.com/fr4nk3nst1ner/vacancystats/internal/utils"
)

const (
	superJobAPIURL = "https://api.superjob.ru/2.0/vacancies/"

	// SuperJobMoscowTown is the superjob.ru town id for Moscow
	SuperJobMoscowTown = 4
)

// SuperJobConfig configures the superjob.ru source.
type SuperJobConfig struct {
	BaseURL   string
	APIKey    string
	Town      int
	PageSize  int
	UserAgent string
}

// SuperJob queries the superjob.ru vacancy search. It needs an application key.
type SuperJob struct {
	httpClient *http.Client
	cfg        SuperJobConfig
}

type superJobResponse struct {
	Objects *[]superJobVacancy `json:"objects"`
	Total   *int               `json:"total"`
	More    bool               `json:"more"`
}

type superJobVacancy struct {
	ID          int    `json:"id"`
	Profession  string `json:"profession"`
	PaymentFrom int    `json:"payment_from"`
	PaymentTo   int    `json:"payment_to"`
	Currency    string `json:"currency"`
}

// NewSuperJob creates a SuperJob source
func NewSuperJob(httpClient *http.Client, cfg SuperJobConfig) *SuperJob {
	if cfg.BaseURL == "" {
		cfg.BaseURL = superJobAPIURL
	}
	if cfg.Town == 0 {
		cfg.Town = SuperJobMoscowTown
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	return &SuperJob{httpClient: httpClient, cfg: cfg}
}

// Name returns the source name.
func (s *SuperJob) Name() string {
	return utils.SourceSuperJob
}

// FetchPage fetches one page of superjob.ru search results.
func (s *SuperJob) FetchPage(ctx context.Context, term string, page int) (*Page, error) {
	params := url.Values{}
	params.Set("keyword", term)
	params.Set("town", strconv.Itoa(s.cfg.Town))
	params.Set("count", strconv.Itoa(s.cfg.PageSize))
	params.Set("page", strconv.Itoa(page))

	headers := client.DefaultHeaders(s.cfg.UserAgent)
	headers.Set("X-Api-App-Id", s.cfg.APIKey)

	var resp superJobResponse
	if err := client.GetJSON(ctx, s.httpClient, s.cfg.BaseURL, params, headers, &resp); err != nil {
		return nil, err
	}

	if resp.Objects == nil {
		return nil, fmt.Errorf("%w: missing %q", client.ErrMalformedResponse, "objects")
	}

	result := &Page{
		Vacancies: make([]models.Vacancy, 0, len(*resp.Objects)),
		Found:     UnknownTotal,
		More:      resp.More,
	}
	if resp.Total != nil {
		result.Found = *resp.Total
	}

	for _, object := range *resp.Objects {
		result.Vacancies = append(result.Vacancies, models.Vacancy{
			ID:    strconv.Itoa(object.ID),
			Title: object.Profession,
			Salary: &models.SalaryRange{
				From:     payment(object.PaymentFrom),
				To:       payment(object.PaymentTo),
				Currency: object.Currency,
			},
			Source: utils.SourceSuperJob,
		})
	}

	return result, nil
}

// payment converts SuperJob's "0 means not specified" into a missing bound
func payment(v int) *int {
	if v <= 0 {
		return nil
	}
	return models.Int(v)
}
