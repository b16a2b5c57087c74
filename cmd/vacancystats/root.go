package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

// rootOptions holds the command line flags. Flags only override the loaded
// configuration when they were set explicitly.
type rootOptions struct {
	configPath     string
	source         string
	languages      string
	pagination     string
	maxPages       int
	delay          time.Duration
	concurrency    int
	keepGoing      bool
	format         string
	currency       string
	onlyWithSalary bool
	proxy          string
	timeout        time.Duration
	debug          bool
	quiet          bool
	noColor        bool
	silence        bool
}

// NewRootCmd creates the vacancystats command.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "vacancystats",
		Short: "Compare programming languages by vacancies and average salary",
		Long: `vacancystats queries the hh.ru and superjob.ru vacancy search APIs for a list of
programming languages, estimates a salary for every vacancy that states one and
prints a table per platform with the number of vacancies found, the number of
vacancies with a usable salary and their average.

The SuperJob API needs an application key in the SUPERJOB_API_KEY environment
variable (a .env file in the working directory is read as well).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML config file (default $XDG_CONFIG_HOME/vacancystats/config.yaml)")
	flags.StringVarP(&opts.source, "source", "s", "all", "Source to query (all, headhunter, superjob)")
	flags.StringVarP(&opts.languages, "languages", "l", "", "Comma separated list of languages to compare")
	flags.StringVar(&opts.pagination, "pagination", "exhaustive", "Pagination policy for every source (exhaustive, capped)")
	flags.IntVar(&opts.maxPages, "max-pages", 20, "Pages per language with capped pagination")
	flags.DurationVar(&opts.delay, "delay", time.Second, "Pause between two pages of the same language (0 disables it)")
	flags.IntVar(&opts.concurrency, "concurrency", 1, "Number of languages fetched at once per source")
	flags.BoolVar(&opts.keepGoing, "keep-going", false, "Report a failed language and continue instead of aborting")
	flags.StringVarP(&opts.format, "format", "f", "table", "Output format (table, markdown)")
	flags.StringVar(&opts.currency, "currency", "RUB", "Only average salaries paid in this ISO 4217 currency")
	flags.BoolVar(&opts.onlyWithSalary, "only-with-salary", false, "Ask hh.ru for vacancies that state a salary only")
	flags.StringVar(&opts.proxy, "proxy", "", "Proxy URL to use")
	flags.DurationVar(&opts.timeout, "timeout", 10*time.Second, "Timeout for each HTTP request")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Only log warnings and hide progress bars")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable coloured output")
	flags.BoolVar(&opts.silence, "silence", true, "Silence the banner")

	return cmd
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
