package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/user/catalog-service/internal/adapter/chromedp_fetcher"
	"github.com/user/catalog-service/internal/adapter/httpfetch"
	"github.com/user/catalog-service/internal/repository"
	"github.com/user/catalog-service/internal/usecase"
	"github.com/user/catalog-service/pkg/config"
	"github.com/user/catalog-service/pkg/logger"
	"github.com/user/catalog-service/pkg/metrics"
)

// options are the flags shared by every subcommand. Empty values fall back
// to the service configuration.
type options struct {
	site    string
	mode    string
	verbose bool
	pretty  bool
}

type scrapeFunc func(ctx context.Context, catalog usecase.Catalog) (interface{}, error)

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "scrape",
		Short:         "Scrape one catalog page and print the assembled JSON",
		Long:          "Fetches a product, blog, category or home page from the marketing site, runs the extraction pipeline and prints the response the API would serve. Caching and the fetch-failure log are not used.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.site, "site", "", "Site base URL (default: SITE_BASE_URL)")
	flags.StringVar(&opts.mode, "mode", "", "Fetch mode, http or browser (default: FETCH_MODE)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log fetches to stderr")
	flags.BoolVar(&opts.pretty, "pretty", true, "Indent the JSON output")

	cmd.AddCommand(
		newProductCmd(opts),
		newBlogCmd(opts),
		newCategoryCmd(opts),
		newFeaturedCmd(opts),
	)
	return cmd
}

func run(cmd *cobra.Command, opts *options, scrape scrapeFunc) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.site != "" {
		cfg.SiteBaseURL = opts.site
	}
	if opts.mode != "" {
		cfg.FetchMode = opts.mode
	}

	log := zap.NewNop()
	if opts.verbose {
		if log, err = logger.New(cfg.LogLevel); err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
		defer func() { _ = log.Sync() }()
	}
	m := metrics.New(prometheus.NewRegistry())

	fetcher, closeFetcher, err := newFetcher(cfg, m, log)
	if err != nil {
		return err
	}
	defer closeFetcher()

	catalog, err := usecase.NewCatalogUseCase(fetcher, nil, nil, m, log, cfg.SiteBaseURL, 0)
	if err != nil {
		return err
	}

	result, err := scrape(cmd.Context(), catalog)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if opts.pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(result)
}

func newFetcher(cfg *config.Config, m *metrics.Metrics, log *zap.Logger) (repository.PageFetcher, func(), error) {
	switch cfg.FetchMode {
	case "http":
		return httpfetch.NewFetcher(cfg.UserAgent, cfg.FetchTimeout(), cfg.FetchRatePerSecond, m, log), func() {}, nil
	case "browser":
		browser, err := chromedp_fetcher.NewChromedpFetcher(cfg.UserAgent, cfg.FetchTimeout(), m, log)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to start headless browser: %w", err)
		}
		return browser, browser.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown fetch mode %q, expected http or browser", cfg.FetchMode)
	}
}
