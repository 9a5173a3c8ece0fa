package model

import "time"

// Stats holds counters collected while crawling article pages.
type Stats struct {
	// PagesFetched is the number of pages that returned a 2xx response.
	PagesFetched int `json:"pages_fetched"`

	// PagesFailed is the number of pages whose fetch failed.
	PagesFailed int `json:"pages_failed"`

	// PagesSkipped is the number of fetched pages dropped because the
	// article title could not be found.
	PagesSkipped int `json:"pages_skipped"`

	// Records is the number of records emitted.
	Records int `json:"records"`
}

// PagesCompleted returns the number of pages whose fetch finished,
// successfully or not.
func (s Stats) PagesCompleted() int {
	return s.PagesFetched + s.PagesFailed
}

// Run is the state of one crawl, filled in step by step by the pipeline.
type Run struct {
	// EntryURL is the homepage the crawl starts from.
	EntryURL string `json:"entry_url"`

	// StartedAt is when the run was created.
	StartedAt time.Time `json:"started_at"`

	// Links are the viable article links found on the homepage, raw.
	Links []string `json:"links"`

	// URLs are the canonical, deduplicated article URLs to crawl.
	URLs []string `json:"urls"`

	// Records are the extracted company records.
	Records []CompanyRecord `json:"records"`

	// Stats are the crawl counters.
	Stats Stats `json:"stats"`

	// PerformedSteps lists the names of completed pipeline steps.
	PerformedSteps []string `json:"performed_steps"`
}

// NewRun creates a Run for the given homepage.
func NewRun(entryURL string) *Run {
	return &Run{
		EntryURL:       entryURL,
		StartedAt:      time.Now(),
		Links:          make([]string, 0),
		URLs:           make([]string, 0),
		Records:        make([]CompanyRecord, 0),
		PerformedSteps: make([]string, 0),
	}
}
