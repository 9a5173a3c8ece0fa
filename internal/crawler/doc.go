// Package crawler discovers article links on a news homepage and fetches
// the article pages concurrently.
//
// # Components
//
//   - Filter: classifies and canonicalizes links with injected patterns
//   - Dedupe: reduces links to their unique canonical forms
//   - ExtractLinks: collects anchor hrefs from the homepage
//   - HTTPFetcher: fetches one page; FetchMany fetches many with a bound
//   - Spider: streams fetched pages to a PageExtractor and aggregates records
//
// # Concurrency
//
// At most the configured number of requests are in flight at once.
// Responses are handed over in completion order through a channel and
// processed by a single consumer loop, so the collected records never
// need a lock.
//
// # Usage
//
//	spider := crawler.NewSpider(fetcher, extractor, crawler.WithConcurrency(20))
//	records, stats := spider.Crawl(ctx, urls)
package crawler
