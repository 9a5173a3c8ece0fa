package crawler

import (
	"bytes"
	"context"
	"io"
	"log/slog"

	"github.com/clearmob/companyreader/internal/model"
)

// Default crawl settings.
const (
	DefaultConcurrency      = 20
	DefaultProgressInterval = 5
)

// PageExtractor turns one fetched page into company records.
// An error means the page is unusable as a whole.
type PageExtractor interface {
	Extract(sourceURL string, body io.Reader) ([]model.CompanyRecord, error)
}

// Spider fetches article pages concurrently and extracts their records.
type Spider struct {
	fetcher   Fetcher
	extractor PageExtractor

	// concurrency is the maximum number of requests in flight.
	concurrency int

	// progressInterval is the number of completed pages between progress logs.
	progressInterval int

	logger *slog.Logger
}

// SpiderOption configures a Spider.
type SpiderOption func(*Spider)

// WithConcurrency sets the maximum number of requests in flight.
func WithConcurrency(n int) SpiderOption {
	return func(s *Spider) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithProgressInterval sets how many completed pages pass between progress logs.
func WithProgressInterval(n int) SpiderOption {
	return func(s *Spider) {
		if n > 0 {
			s.progressInterval = n
		}
	}
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) SpiderOption {
	return func(s *Spider) {
		s.logger = logger
	}
}

// NewSpider creates a Spider that fetches with fetcher and extracts with extractor.
func NewSpider(fetcher Fetcher, extractor PageExtractor, opts ...SpiderOption) *Spider {
	s := &Spider{
		fetcher:          fetcher,
		extractor:        extractor,
		concurrency:      DefaultConcurrency,
		progressInterval: DefaultProgressInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Concurrency returns the maximum number of requests in flight.
func (s *Spider) Concurrency() int {
	return s.concurrency
}

// Crawl fetches every URL and returns the extracted records in the order
// pages completed.
//
// A page whose fetch fails is logged and contributes no records. A page
// the extractor rejects, for example because it has no article title, is
// logged and skipped; the crawl carries on with the remaining pages.
func (s *Spider) Crawl(ctx context.Context, urls []string) ([]model.CompanyRecord, model.Stats) {
	var stats model.Stats
	records := make([]model.CompanyRecord, 0, len(urls))

	s.logger.Info("searching descendant pages",
		"pages", len(urls),
		"concurrency", s.concurrency,
	)

	completed := 0
	for resp := range FetchMany(ctx, s.fetcher, urls, s.concurrency) {
		completed++
		if completed%s.progressInterval == 0 {
			s.logger.Info("parsing descendant pages",
				"from", completed-s.progressInterval+1,
				"to", completed,
			)
		}

		if !resp.OK() {
			stats.PagesFailed++
			s.logger.Error("request failed",
				"url", resp.URL,
				"status", resp.StatusCode,
				"error", resp.Err,
			)
			continue
		}
		stats.PagesFetched++

		pageRecords, err := s.extractor.Extract(resp.FinalURL, bytes.NewReader(resp.Body))
		if err != nil {
			stats.PagesSkipped++
			s.logger.Warn("skipping page",
				"url", resp.FinalURL,
				"error", err,
			)
			continue
		}

		records = append(records, pageRecords...)
	}

	stats.Records = len(records)
	s.logger.Info("descendant pages searched",
		"fetched", stats.PagesFetched,
		"failed", stats.PagesFailed,
		"skipped", stats.PagesSkipped,
		"records", stats.Records,
	)

	return records, stats
}
