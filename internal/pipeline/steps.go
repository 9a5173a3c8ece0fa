package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/clearmob/companyreader/internal/crawler"
	"github.com/clearmob/companyreader/internal/model"
	"github.com/clearmob/companyreader/internal/report"
)

// Step names, in the order DefaultPipeline runs them.
const (
	StepDiscover = "discover"
	StepDedupe   = "dedupe"
	StepCrawl    = "crawl"
	StepSort     = "sort"
	StepExport   = "export"
)

// DiscoverStep reads the homepage and collects its viable article links.
type DiscoverStep struct {
	fetcher crawler.Fetcher
	filter  *crawler.Filter
	logger  *slog.Logger
}

// NewDiscoverStep creates a DiscoverStep.
func NewDiscoverStep(fetcher crawler.Fetcher, filter *crawler.Filter, logger *slog.Logger) *DiscoverStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &DiscoverStep{fetcher: fetcher, filter: filter, logger: logger}
}

// Name returns the step name.
func (s *DiscoverStep) Name() string {
	return StepDiscover
}

// Do fetches run.EntryURL and stores its viable links in run.Links.
// A homepage that cannot be fetched fails the run.
func (s *DiscoverStep) Do(ctx context.Context, run *model.Run) error {
	s.logger.Info("reading main page", "url", run.EntryURL)

	resp := s.fetcher.Fetch(ctx, run.EntryURL)
	if !resp.OK() {
		return fmt.Errorf("failed to read main page %s: %w", run.EntryURL, resp.Err)
	}

	links, err := crawler.ExtractLinks(bytes.NewReader(resp.Body))
	if err != nil {
		return fmt.Errorf("failed to parse main page %s: %w", run.EntryURL, err)
	}

	run.Links = s.filter.ViableLinks(links)
	s.logger.Info("main page read",
		"links", len(links),
		"viable", len(run.Links),
	)
	return nil
}

// DedupeStep canonicalizes the discovered links and removes duplicates.
type DedupeStep struct {
	filter *crawler.Filter
}

// NewDedupeStep creates a DedupeStep.
func NewDedupeStep(filter *crawler.Filter) *DedupeStep {
	return &DedupeStep{filter: filter}
}

// Name returns the step name.
func (s *DedupeStep) Name() string {
	return StepDedupe
}

// Do stores the canonical, unique article URLs in run.URLs.
func (s *DedupeStep) Do(_ context.Context, run *model.Run) error {
	run.URLs = s.filter.Dedupe(run.Links)
	return nil
}

// CrawlStep fetches every article URL and extracts its company records.
type CrawlStep struct {
	spider *crawler.Spider
}

// NewCrawlStep creates a CrawlStep.
func NewCrawlStep(spider *crawler.Spider) *CrawlStep {
	return &CrawlStep{spider: spider}
}

// Name returns the step name.
func (s *CrawlStep) Name() string {
	return StepCrawl
}

// Do stores the extracted records and the crawl stats in run.
// Failed and skipped pages only show up in the stats.
func (s *CrawlStep) Do(ctx context.Context, run *model.Run) error {
	run.Records, run.Stats = s.spider.Crawl(ctx, run.URLs)
	return nil
}

// SortStep orders the records by article URL.
type SortStep struct{}

// NewSortStep creates a SortStep.
func NewSortStep() *SortStep {
	return &SortStep{}
}

// Name returns the step name.
func (s *SortStep) Name() string {
	return StepSort
}

// Do sorts run.Records by URL, keeping card order within a page.
func (s *SortStep) Do(_ context.Context, run *model.Run) error {
	model.SortByURL(run.Records)
	return nil
}

// ExportStep writes the records to the output file.
type ExportStep struct {
	path   string
	format report.Format
	logger *slog.Logger
}

// NewExportStep creates an ExportStep that writes path in format.
func NewExportStep(path string, format report.Format, logger *slog.Logger) *ExportStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportStep{path: path, format: format, logger: logger}
}

// Name returns the step name.
func (s *ExportStep) Name() string {
	return StepExport
}

// Do creates or truncates the output file and writes the run to it.
// Missing parent directories are created.
func (s *ExportStep) Do(_ context.Context, run *model.Run) (err error) {
	dir := filepath.Dir(s.path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644) //nolint:gosec // exports are meant to be shared
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	w, err := report.NewWriter(f, s.format)
	if err != nil {
		return err
	}
	n, err := w.Write(run)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}

	s.logger.Info("export written",
		"file", s.path,
		"format", s.format,
		"records", len(run.Records),
		"bytes", n,
	)
	return nil
}

// DefaultPipelineConfig holds the collaborators of the default pipeline.
type DefaultPipelineConfig struct {
	// Fetcher reads the homepage.
	Fetcher crawler.Fetcher

	// Filter selects and canonicalizes article links.
	Filter *crawler.Filter

	// Spider crawls the article pages.
	Spider *crawler.Spider

	// OutputFile is the export file path.
	OutputFile string

	// Format is the export file format.
	Format report.Format

	// Logger is passed to the steps that log. Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultPipeline creates the standard crawl pipeline:
// discover, dedupe, crawl, sort and export.
func DefaultPipeline(cfg DefaultPipelineConfig, opts ...Option) *Pipeline {
	p := New(opts...)

	p.AddSteps(
		NewDiscoverStep(cfg.Fetcher, cfg.Filter, cfg.Logger),
		NewDedupeStep(cfg.Filter),
		NewCrawlStep(cfg.Spider),
		NewSortStep(),
		NewExportStep(cfg.OutputFile, cfg.Format, cfg.Logger),
	)

	return p
}
