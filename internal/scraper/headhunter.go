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
	headHunterAPIURL = "https://api.hh.ru/vacancies"

	// HeadHunterMoscowArea is the hh.ru area id for Moscow
	HeadHunterMoscowArea = 1
)

// HeadHunterConfig configures the hh.ru source.
type HeadHunterConfig struct {
	BaseURL  string
	Area     int
	PageSize int
	// OnlyWithSalary asks hh.ru to return only vacancies that state a salary.
	OnlyWithSalary bool
	UserAgent      string
}

// HeadHunter queries the public hh.ru vacancy search.
type HeadHunter struct {
	httpClient *http.Client
	cfg        HeadHunterConfig
}

type headHunterResponse struct {
	Items *[]headHunterVacancy `json:"items"`
	Found *int                 `json:"found"`
	Page  *int                 `json:"page"`
	Pages *int                 `json:"pages"`
}

type headHunterVacancy struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Salary *struct {
		From     *int   `json:"from"`
		To       *int   `json:"to"`
		Currency string `json:"currency"`
	} `json:"salary"`
}

// NewHeadHunter creates a HeadHunter source
func NewHeadHunter(httpClient *http.Client, cfg HeadHunterConfig) *HeadHunter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = headHunterAPIURL
	}
	if cfg.Area == 0 {
		cfg.Area = HeadHunterMoscowArea
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	return &HeadHunter{httpClient: httpClient, cfg: cfg}
}

// Name returns the source name.
func (h *HeadHunter) Name() string {
	return utils.SourceHeadHunter
}

// FetchPage fetches one page of hh.ru search results.
func (h *HeadHunter) FetchPage(ctx context.Context, term string, page int) (*Page, error) {
	params := url.Values{}
	params.Set("text", term)
	params.Set("area", strconv.Itoa(h.cfg.Area))
	params.Set("per_page", strconv.Itoa(h.cfg.PageSize))
	params.Set("page", strconv.Itoa(page))
	if h.cfg.OnlyWithSalary {
		params.Set("only_with_salary", "true")
	}

	// hh.ru rejects requests without an identifying agent
	headers := client.DefaultHeaders(h.cfg.UserAgent)
	headers.Set("HH-User-Agent", headers.Get("User-Agent"))

	var resp headHunterResponse
	if err := client.GetJSON(ctx, h.httpClient, h.cfg.BaseURL, params, headers, &resp); err != nil {
		return nil, err
	}

	switch {
	case resp.Items == nil:
		return nil, fmt.Errorf("%w: missing %q", client.ErrMalformedResponse, "items")
	case resp.Found == nil:
		return nil, fmt.Errorf("%w: missing %q", client.ErrMalformedResponse, "found")
	case resp.Page == nil || resp.Pages == nil:
		return nil, fmt.Errorf("%w: missing pagination", client.ErrMalformedResponse)
	}

	result := &Page{
		Vacancies: make([]models.Vacancy, 0, len(*resp.Items)),
		Found:     *resp.Found,
		More:      *resp.Page < *resp.Pages-1,
	}

	for _, item := range *resp.Items {
		vacancy := models.Vacancy{
			ID:     item.ID,
			Title:  item.Name,
			Source: utils.SourceHeadHunter,
		}
		if item.Salary != nil {
			vacancy.Salary = &models.SalaryRange{
				From:     item.Salary.From,
				To:       item.Salary.To,
				Currency: item.Salary.Currency,
			}
		}
		result.Vacancies = append(result.Vacancies, vacancy)
	}

	return result, nil
}
