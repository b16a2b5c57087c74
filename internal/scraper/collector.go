package scraper

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/fr4nk3nst1ner/vacancystats/internal/models"
	"github.com/fr4nk3nst1ner/vacancystats/internal/salary"
	"github.com/fr4nk3nst1ner/vacancystats/internal/utils"
)

const (
	// DefaultPageSize is the largest page both platforms accept
	DefaultPageSize = 100
	// DefaultMaxPages bounds the capped pagination policy.
	DefaultMaxPages = 20
	// DefaultCurrency is the currency salaries are averaged in.
	DefaultCurrency = "RUB"

	progressTemplate = `{{string . "prefix"}} {{counters . }} {{bar . }} {{percent . }}`
)

// Policy selects when the collector stops requesting pages.
type Policy string

const (
	// PolicyExhaustive follows pages until the platform reports there are no more.
	PolicyExhaustive Policy = "exhaustive"
	// PolicyCapped requests min(MaxPages, found/PageSize+1) pages.
	PolicyCapped Policy = "capped"
)

// ParsePolicy converts a policy name into a Policy.
func ParsePolicy(name string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(name))) {
	case PolicyExhaustive, "":
		return PolicyExhaustive, nil
	case PolicyCapped:
		return PolicyCapped, nil
	default:
		return "", fmt.Errorf("unknown pagination policy %q (want exhaustive or capped)", name)
	}
}

// CappedPages returns how many pages the capped policy requests for a search.
func CappedPages(found, pageSize, maxPages int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if found < 0 {
		found = 0
	}
	return min(maxPages, found/pageSize+1)
}

// Options tune a Collector. Zero values fall back to the package defaults.
type Options struct {
	Policy   Policy
	MaxPages int
	PageSize int
	// Currency is the ISO code vacancies must be paid in to be counted.
	Currency string
	// Pacer runs between two pages of the same language. Nil means NoPause.
	Pacer Pacer
	// Concurrency is the number of languages collected at once.
	Concurrency int
	// KeepGoing records a failed language in the report instead of aborting the source.
	KeepGoing bool
	// ProgressWriter receives a progress bar when set
	ProgressWriter io.Writer
}

// Collector turns paginated search results into per-language statistics.
type Collector struct {
	source PageSource
	opts   Options
}

// NewCollector creates a Collector over source.
func NewCollector(source PageSource, opts Options) *Collector {
	if opts.Policy == "" {
		opts.Policy = PolicyExhaustive
	}
	if opts.MaxPages <= 0 {
		opts.MaxPages = DefaultMaxPages
	}
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.Currency == "" {
		opts.Currency = DefaultCurrency
	}
	opts.Currency = utils.NormalizeCurrency(opts.Currency)
	if opts.Pacer == nil {
		opts.Pacer = NoPause
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}

	return &Collector{source: source, opts: opts}
}

// Source returns the name of the underlying platform
func (c *Collector) Source() string {
	return c.source.Name()
}

// Collect pages through the results for term and summarises them.
// Any page failure aborts the language; salaries gathered so far are dropped.
func (c *Collector) Collect(ctx context.Context, term string) (models.LanguageSummary, error) {
	log := zerolog.Ctx(ctx).With().
		Str("source", c.source.Name()).
		Str("language", term).
		Logger()

	var salaries []int
	found := UnknownTotal
	returned := 0

	for page := 0; ; page++ {
		if page > 0 {
			if err := c.opts.Pacer.Wait(ctx); err != nil {
				return models.LanguageSummary{}, err
			}
		}

		result, err := c.source.FetchPage(ctx, term, page)
		if err != nil {
			return models.LanguageSummary{}, fmt.Errorf("%s: %q page %d: %w", c.source.Name(), term, page, err)
		}

		found = result.Found
		returned += len(result.Vacancies)
		for _, vacancy := range result.Vacancies {
			if estimate, ok := c.estimate(vacancy); ok {
				salaries = append(salaries, estimate)
			}
		}

		log.Debug().
			Int("page", page).
			Int("vacancies", len(result.Vacancies)).
			Int("found", result.Found).
			Bool("more", result.More).
			Msg("Fetched page")

		if !c.hasNextPage(result, page) {
			break
		}
	}

	summary := models.LanguageSummary{
		VacanciesFound:     found,
		VacanciesProcessed: len(salaries),
	}
	if found == UnknownTotal {
		summary.VacanciesFound = len(salaries)
	}
	if avg, ok := salary.Average(salaries); ok {
		summary.AverageSalary = &avg
	}

	log.Debug().
		Int("returned", returned).
		Int("processed", summary.VacanciesProcessed).
		Msg("Collected language")

	return summary, nil
}

// estimate applies the currency filter and the salary estimator to one vacancy
func (c *Collector) estimate(vacancy models.Vacancy) (int, bool) {
	if vacancy.Salary == nil {
		return 0, false
	}
	if !utils.SameCurrency(vacancy.Salary.Currency, c.opts.Currency) {
		return 0, false
	}
	return salary.Estimate(vacancy.Salary.From, vacancy.Salary.To)
}

func (c *Collector) hasNextPage(result *Page, page int) bool {
	if !result.More {
		return false
	}
	if c.opts.Policy == PolicyCapped {
		return page+1 < CappedPages(result.Found, c.opts.PageSize, c.opts.MaxPages)
	}
	return true
}

type languageResult struct {
	summary models.LanguageSummary
	err     error
}

// CollectAll collects every language and returns the report in input order,
// whatever order the languages finish in.
func (c *Collector) CollectAll(ctx context.Context, languages []string) (*models.Report, error) {
	log := zerolog.Ctx(ctx)
	results := make([]languageResult, len(languages))

	bar := c.startProgress(len(languages))
	defer func() {
		if bar != nil {
			bar.Finish()
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.Concurrency)

	for i, language := range languages {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			summary, err := c.Collect(gctx, language)
			if err != nil {
				if !c.opts.KeepGoing || ctx.Err() != nil {
					return err
				}
				log.Warn().Err(err).
					Str("source", c.source.Name()).
					Str("language", language).
					Msg("Skipping language")
				results[i] = languageResult{err: err}
			} else {
				results[i] = languageResult{summary: summary}
			}

			if bar != nil {
				bar.Increment()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := models.NewReport(c.source.Name())
	for i, language := range languages {
		if results[i].err != nil {
			report.SetFailed(language, results[i].err)
			continue
		}
		report.Set(language, results[i].summary)
	}
	return report, nil
}

func (c *Collector) startProgress(total int) *pb.ProgressBar {
	if c.opts.ProgressWriter == nil {
		return nil
	}

	bar := pb.New(total)
	bar.SetTemplateString(progressTemplate)
	bar.Set("prefix", c.source.Name())
	bar.SetWriter(c.opts.ProgressWriter)
	return bar.Start()
}
