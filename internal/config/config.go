package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"github.com/clearmob/companyreader/internal/crawler"
	"github.com/clearmob/companyreader/internal/extract"
)

// Default configuration values.
const (
	// DefaultEntryURL is the homepage the crawl starts from.
	DefaultEntryURL = "http://www.techcrunch.com"

	// DefaultTimeout bounds each HTTP request, including reading the body.
	DefaultTimeout = 30 * time.Second

	// DefaultConcurrency is the number of article requests in flight.
	DefaultConcurrency = crawler.DefaultConcurrency

	// DefaultProgressInterval is the number of completed pages between
	// progress log lines.
	DefaultProgressInterval = crawler.DefaultProgressInterval

	// DefaultUserAgent is sent with every request.
	DefaultUserAgent = crawler.DefaultUserAgent

	// DefaultMaxBodySize limits how much of a response body is read.
	DefaultMaxBodySize = crawler.DefaultMaxBodySize

	// AppName is the application name used for XDG directory paths.
	AppName = "companyreader"
)

// Config holds all configuration options for companyreader.
// It is populated from CLI flags and the optional configuration file and
// passed down explicitly; nothing reads it from global state.
type Config struct {
	// EntryURL is the homepage whose article links are crawled.
	EntryURL string

	// Concurrency is the maximum number of article requests in flight.
	Concurrency int

	// ProgressInterval is the number of completed pages between progress logs.
	ProgressInterval int

	// Timeout is the timeout of a single HTTP request.
	Timeout time.Duration

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string

	// MaxBodySize is the maximum response body size in bytes to read.
	// Zero disables the limit.
	MaxBodySize int64

	// ProxyAddress is an optional SOCKS5 proxy in "host:port" format.
	// Requests go out directly when empty.
	ProxyAddress string

	// Headers are extra HTTP headers sent with every request.
	Headers map[string]string

	// Cookie is an HTTP cookie sent with every request.
	// Format: "name=value" or "name1=value1; name2=value2"
	Cookie string

	// Patterns override the URL filter's regular expressions.
	// Empty fields keep the defaults.
	Patterns crawler.Patterns

	// Markers override the page extractor's selectors.
	// Empty fields keep the defaults.
	Markers extract.Markers

	// OutputFile is the path of the export file. Required.
	OutputFile string

	// JSONReport writes the export as JSON instead of CSV.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport writes the export as a Markdown table instead of CSV.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// Verbose enables debug logging.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, FindConfigFile searches the default locations.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		EntryURL:         DefaultEntryURL,
		Concurrency:      DefaultConcurrency,
		ProgressInterval: DefaultProgressInterval,
		Timeout:          DefaultTimeout,
		UserAgent:        DefaultUserAgent,
		MaxBodySize:      DefaultMaxBodySize,
		Patterns:         crawler.DefaultPatterns(),
		Markers:          extract.DefaultMarkers(),
	}
}

// XDGConfigDir returns the XDG config directory for companyreader.
// On Linux: ~/.config/companyreader
// On macOS: ~/Library/Application Support/companyreader
// On Windows: %APPDATA%\companyreader
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid and returns the first
// problem found.
func (c *Config) Validate() error {
	if c.OutputFile == "" {
		return ErrNoOutputFile
	}

	u, err := url.Parse(c.EntryURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidEntryURL, c.EntryURL)
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	if c.ProgressInterval <= 0 {
		return ErrInvalidProgressInterval
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}

	if _, err := crawler.NewFilter(c.Patterns); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}

	return nil
}
