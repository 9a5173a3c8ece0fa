package config

import "errors"

// Configuration validation errors returned by Config.Validate.
var (
	// ErrNoOutputFile is returned when no export file name is given.
	ErrNoOutputFile = errors.New("no output file specified")

	// ErrInvalidEntryURL is returned when the entry URL is not an absolute
	// http or https URL.
	ErrInvalidEntryURL = errors.New("invalid entry url")

	// ErrInvalidTimeout is returned when the timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidConcurrency is returned when the concurrency is not positive.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrInvalidProgressInterval is returned when the progress interval is
	// not positive.
	ErrInvalidProgressInterval = errors.New("invalid progress interval: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidMaxBodySize is returned when the max body size is negative.
	// Use 0 for the default limit.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be non-negative")

	// ErrInvalidPattern is returned when a URL pattern does not compile.
	ErrInvalidPattern = errors.New("invalid url pattern")
)
