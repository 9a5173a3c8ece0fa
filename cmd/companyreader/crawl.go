package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/clearmob/companyreader/internal/config"
	"github.com/clearmob/companyreader/internal/crawler"
	"github.com/clearmob/companyreader/internal/extract"
	seclog "github.com/clearmob/companyreader/internal/log"
	"github.com/clearmob/companyreader/internal/model"
	"github.com/clearmob/companyreader/internal/pipeline"
	"github.com/clearmob/companyreader/internal/report"
	"github.com/clearmob/companyreader/internal/transport"
)

// runRootCmd crawls the homepage and writes the export file named by args[0].
func runRootCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	run, err := runCrawl(ctx, cfg, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d records from %d articles to %s\n",
		len(run.Records), run.Stats.PagesFetched-run.Stats.PagesSkipped, cfg.OutputFile)
	return nil
}

// buildConfig creates a Config from the defaults, the configuration file
// and the command flags, in that order of precedence.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.Verbose = getVerboseFlag(cmd)

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if _, err := config.Load(cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	if len(args) > 0 {
		cfg.OutputFile = args[0]
	}

	return cfg, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates the redacting logger writing to w.
func setupLogger(w io.Writer, verbose bool) *slog.Logger {
	return seclog.NewSecureLogger(w, verbose)
}

// runCrawl wires the crawl components from cfg and runs the default pipeline.
func runCrawl(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*model.Run, error) {
	client, err := transport.NewClient(transport.Options{
		Timeout:      cfg.Timeout,
		ProxyAddress: cfg.ProxyAddress,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}
	if client.ProxyAddress() != "" {
		logger.Info("using SOCKS5 proxy", "address", client.ProxyAddress())
	}

	filter, err := crawler.NewFilter(cfg.Patterns)
	if err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	fetcher := crawler.NewHTTPFetcher(
		client.HTTPClientWithConfig(cfg.Cookie, cfg.Headers),
		crawler.WithUserAgent(cfg.UserAgent),
		crawler.WithMaxBodySize(cfg.MaxBodySize),
	)

	extractor := extract.NewExtractor(filter,
		extract.WithMarkers(cfg.Markers),
		extract.WithLogger(logger),
	)

	spider := crawler.NewSpider(fetcher, extractor,
		crawler.WithConcurrency(cfg.Concurrency),
		crawler.WithProgressInterval(cfg.ProgressInterval),
		crawler.WithLogger(logger),
	)

	p := pipeline.DefaultPipeline(pipeline.DefaultPipelineConfig{
		Fetcher:    fetcher,
		Filter:     filter,
		Spider:     spider,
		OutputFile: cfg.OutputFile,
		Format:     report.FormatFor(cfg.JSONReport, cfg.MarkdownReport),
		Logger:     logger,
	}, pipeline.WithLogger(logger))

	logger.Debug("starting crawl",
		"entry", cfg.EntryURL,
		"concurrency", cfg.Concurrency,
		"timeout", cfg.Timeout,
		"output", cfg.OutputFile,
	)

	run := model.NewRun(cfg.EntryURL)
	if err := p.Execute(ctx, run); err != nil {
		return run, err
	}
	return run, nil
}
