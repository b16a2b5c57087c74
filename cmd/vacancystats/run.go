package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/fr4nk3nst1ner/vacancystats/internal/client"
	"github.com/fr4nk3nst1ner/vacancystats/internal/config"
	"github.com/fr4nk3nst1ner/vacancystats/internal/report"
	"github.com/fr4nk3nst1ner/vacancystats/internal/scraper"
	"github.com/fr4nk3nst1ner/vacancystats/internal/ui"
	"github.com/fr4nk3nst1ner/vacancystats/internal/utils"
)

func run(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	opts.apply(cmd.Flags(), cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration:\n%w", err)
	}

	if opts.noColor {
		pterm.DisableColor()
	}

	stderr := cmd.ErrOrStderr()
	logger := newLogger(stderr, opts.debug, opts.quiet, opts.noColor)
	ctx := logger.WithContext(cmd.Context())

	writer, err := report.NewWriter(cfg.Format, !opts.noColor)
	if err != nil {
		return err
	}

	httpClient, err := client.CreateHTTPClient(cfg.Proxy, cfg.Timeout)
	if err != nil {
		return err
	}

	var progress io.Writer
	if !opts.quiet {
		progress = stderr
	}

	ui.PrintBanner(stderr, opts.silence)

	sections, err := collect(ctx, cfg, httpClient, progress)
	if err != nil {
		return err
	}

	// Tables are printed only once every source succeeded.
	return report.WriteAll(cmd.OutOrStdout(), writer, sections)
}

// apply copies explicitly set flags over the loaded configuration.
func (o *rootOptions) apply(flags *pflag.FlagSet, cfg *config.Config) {
	if flags.Changed("source") {
		cfg.Source = o.source
	}
	if flags.Changed("languages") {
		cfg.Languages = config.ParseLanguages(o.languages)
	}
	if flags.Changed("pagination") {
		cfg.HeadHunter.Pagination = o.pagination
		cfg.SuperJob.Pagination = o.pagination
	}
	if flags.Changed("max-pages") {
		cfg.HeadHunter.MaxPages = o.maxPages
		cfg.SuperJob.MaxPages = o.maxPages
	}
	if flags.Changed("delay") {
		cfg.HeadHunter.Delay = o.delay
		cfg.HeadHunter.MaxDelay = 0
		cfg.SuperJob.Delay = o.delay
		cfg.SuperJob.MaxDelay = 0
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency = o.concurrency
	}
	if flags.Changed("keep-going") {
		cfg.KeepGoing = o.keepGoing
	}
	if flags.Changed("format") {
		cfg.Format = o.format
	}
	if flags.Changed("currency") {
		cfg.Currency = o.currency
	}
	if flags.Changed("only-with-salary") {
		cfg.HeadHunter.OnlyWithSalary = o.onlyWithSalary
	}
	if flags.Changed("proxy") {
		cfg.Proxy = o.proxy
	}
	if flags.Changed("timeout") {
		cfg.Timeout = o.timeout
	}
}

// collect runs every selected source in order and returns one section per source.
func collect(ctx context.Context, cfg *config.Config, httpClient *http.Client, progress io.Writer) ([]report.Section, error) {
	log := zerolog.Ctx(ctx)

	sources, err := cfg.Sources()
	if err != nil {
		return nil, err
	}

	sections := make([]report.Section, 0, len(sources))
	for _, name := range sources {
		collector, title, err := newCollector(name, cfg, httpClient, progress)
		if err != nil {
			return nil, err
		}

		log.Info().
			Str("source", name).
			Int("languages", len(cfg.Languages)).
			Msg("Collecting vacancy statistics")

		result, err := collector.CollectAll(ctx, cfg.Languages)
		if err != nil {
			return nil, err
		}
		sections = append(sections, report.Section{Title: title, Report: result})
	}
	return sections, nil
}

// newCollector builds the collector and the table title for a source.
func newCollector(name string, cfg *config.Config, httpClient *http.Client, progress io.Writer) (*scraper.Collector, string, error) {
	opts := scraper.Options{
		Currency:       cfg.Currency,
		Concurrency:    cfg.Concurrency,
		KeepGoing:      cfg.KeepGoing,
		ProgressWriter: progress,
	}

	switch name {
	case utils.SourceHeadHunter:
		hh := cfg.HeadHunter
		policy, err := scraper.ParsePolicy(hh.Pagination)
		if err != nil {
			return nil, "", err
		}
		opts.Policy = policy
		opts.MaxPages = hh.MaxPages
		opts.PageSize = hh.PageSize
		opts.Pacer = newPacer(hh.Delay, hh.MaxDelay)

		source := scraper.NewHeadHunter(httpClient, scraper.HeadHunterConfig{
			BaseURL:        hh.BaseURL,
			Area:           hh.Area,
			PageSize:       hh.PageSize,
			OnlyWithSalary: hh.OnlyWithSalary,
			UserAgent:      cfg.UserAgent,
		})
		return scraper.NewCollector(source, opts), hh.Title, nil

	case utils.SourceSuperJob:
		sj := cfg.SuperJob
		policy, err := scraper.ParsePolicy(sj.Pagination)
		if err != nil {
			return nil, "", err
		}
		opts.Policy = policy
		opts.MaxPages = sj.MaxPages
		opts.PageSize = sj.PageSize
		opts.Pacer = newPacer(sj.Delay, sj.MaxDelay)

		source := scraper.NewSuperJob(httpClient, scraper.SuperJobConfig{
			BaseURL:   sj.BaseURL,
			APIKey:    sj.APIKey,
			Town:      sj.Town,
			PageSize:  sj.PageSize,
			UserAgent: cfg.UserAgent,
		})
		return scraper.NewCollector(source, opts), sj.Title, nil

	default:
		return nil, "", fmt.Errorf("unknown source %q", name)
	}
}

func newPacer(delay, maxDelay time.Duration) scraper.Pacer {
	if delay <= 0 && maxDelay <= 0 {
		return scraper.NoPause
	}
	return scraper.RandomPacer{Min: delay, Max: maxDelay}
}
