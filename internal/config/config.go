// Package config holds the run configuration and the rules for loading it.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"

	"github.com/fr4nk3nst1ner/vacancystats/internal/scraper"
	"github.com/fr4nk3nst1ner/vacancystats/internal/utils"
)

const (
	// AppName is used for the XDG config directory.
	AppName = "vacancystats"

	// EnvSuperJobAPIKey holds the SuperJob application secret.
	EnvSuperJobAPIKey = "SUPERJOB_API_KEY"
	// EnvProxy routes every request through a proxy
	EnvProxy = "VACANCYSTATS_PROXY"

	// DefaultHeadHunterDelay keeps hh.ru from throttling consecutive pages.
	DefaultHeadHunterDelay = time.Second
	// DefaultTimeout applies to each HTTP request.
	DefaultTimeout = 10 * time.Second
)

// DefaultLanguages is the list of search terms compared by default.
var DefaultLanguages = []string{
	"JavaScript",
	"Java",
	"Python",
	"PHP",
	"1С",
	"C++",
	"C#",
	"C",
	"Go",
	"Lua",
}

var (
	// ErrMissingAPIKey is returned when SuperJob is selected without a key.
	ErrMissingAPIKey = errors.New(EnvSuperJobAPIKey + " is required to query SuperJob")
	// ErrNoLanguages is returned when the language list is empty.
	ErrNoLanguages = errors.New("at least one language is required")
)

// Config is the complete configuration of a run. It is built once in main
// and handed to the components that need it.
type Config struct {
	Languages []string `yaml:"languages"`
	Source    string   `yaml:"source"`
	Currency  string   `yaml:"currency"`
	Format    string   `yaml:"format"`

	HeadHunter HeadHunterConfig `yaml:"headhunter"`
	SuperJob   SuperJobConfig   `yaml:"superjob"`

	Concurrency int           `yaml:"concurrency"`
	KeepGoing   bool          `yaml:"keep_going"`
	Timeout     time.Duration `yaml:"timeout"`
	Proxy       string        `yaml:"proxy"`
	UserAgent   string        `yaml:"user_agent"`
}

// HeadHunterConfig configures the hh.ru source.
type HeadHunterConfig struct {
	Title          string        `yaml:"title"`
	BaseURL        string        `yaml:"base_url"`
	Area           int           `yaml:"area"`
	PageSize       int           `yaml:"page_size"`
	OnlyWithSalary bool          `yaml:"only_with_salary"`
	Pagination     string        `yaml:"pagination"`
	MaxPages       int           `yaml:"max_pages"`
	Delay          time.Duration `yaml:"delay"`
	MaxDelay       time.Duration `yaml:"max_delay"`
}

// SuperJobConfig configures the superjob.ru source.
type SuperJobConfig struct {
	Title      string        `yaml:"title"`
	BaseURL    string        `yaml:"base_url"`
	APIKey     string        `yaml:"api_key"`
	Town       int           `yaml:"town"`
	PageSize   int           `yaml:"page_size"`
	Pagination string        `yaml:"pagination"`
	MaxPages   int           `yaml:"max_pages"`
	Delay      time.Duration `yaml:"delay"`
	MaxDelay   time.Duration `yaml:"max_delay"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Languages: append([]string(nil), DefaultLanguages...),
		Source:    utils.SourceAll,
		Currency:  scraper.DefaultCurrency,
		Format:    "table",
		HeadHunter: HeadHunterConfig{
			Title:      "HeadHunter Moscow",
			Area:       scraper.HeadHunterMoscowArea,
			PageSize:   scraper.DefaultPageSize,
			Pagination: string(scraper.PolicyExhaustive),
			MaxPages:   scraper.DefaultMaxPages,
			Delay:      DefaultHeadHunterDelay,
		},
		SuperJob: SuperJobConfig{
			Title:      "SuperJob Moscow",
			Town:       scraper.SuperJobMoscowTown,
			PageSize:   scraper.DefaultPageSize,
			Pagination: string(scraper.PolicyExhaustive),
			MaxPages:   scraper.DefaultMaxPages,
		},
		Concurrency: 1,
		Timeout:     DefaultTimeout,
	}
}

// DefaultPath returns the config file looked up when no path is given
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}

// Sources returns the selected sources in the order they are reported.
func (c *Config) Sources() ([]string, error) {
	return utils.ExpandSources(c.Source)
}

// Uses reports whether the named source is selected.
func (c *Config) Uses(source string) bool {
	sources, err := c.Sources()
	if err != nil {
		return false
	}
	for _, s := range sources {
		if s == source {
			return true
		}
	}
	return false
}

// Validate checks the configuration and returns every problem found.
func (c *Config) Validate() error {
	var errs []error

	if len(c.Languages) == 0 {
		errs = append(errs, ErrNoLanguages)
	}
	for _, language := range c.Languages {
		if strings.TrimSpace(language) == "" {
			errs = append(errs, errors.New("languages must not be blank"))
			break
		}
	}
	if _, err := c.Sources(); err != nil {
		errs = append(errs, err)
	}
	if _, err := utils.ParseCurrency(c.Currency); err != nil {
		errs = append(errs, err)
	}
	if c.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency))
	}
	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %s", c.Timeout))
	}

	if c.Uses(utils.SourceHeadHunter) {
		errs = append(errs, validatePaging(utils.SourceHeadHunter, c.HeadHunter.PageSize, c.HeadHunter.Pagination, c.HeadHunter.MaxPages, c.HeadHunter.Delay)...)
	}
	if c.Uses(utils.SourceSuperJob) {
		errs = append(errs, validatePaging(utils.SourceSuperJob, c.SuperJob.PageSize, c.SuperJob.Pagination, c.SuperJob.MaxPages, c.SuperJob.Delay)...)
		if strings.TrimSpace(c.SuperJob.APIKey) == "" {
			errs = append(errs, ErrMissingAPIKey)
		}
	}

	return errors.Join(errs...)
}

func validatePaging(source string, pageSize int, pagination string, maxPages int, delay time.Duration) []error {
	var errs []error
	if pageSize < 1 || pageSize > scraper.DefaultPageSize {
		errs = append(errs, fmt.Errorf("%s: page size must be between 1 and %d, got %d", source, scraper.DefaultPageSize, pageSize))
	}
	policy, err := scraper.ParsePolicy(pagination)
	if err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", source, err))
	}
	if policy == scraper.PolicyCapped && maxPages < 1 {
		errs = append(errs, fmt.Errorf("%s: capped pagination needs max pages of at least 1, got %d", source, maxPages))
	}
	if delay < 0 {
		errs = append(errs, fmt.Errorf("%s: delay must not be negative", source))
	}
	return errs
}
