package config

import (
	"fmt"
	"maps"
	"time"

	"github.com/clearmob/companyreader/internal/crawler"
	"github.com/clearmob/companyreader/internal/extract"
)

// File represents the structure of the configuration file.
// Every field is optional; zero values leave the built-in defaults alone.
type File struct {
	// EntryURL replaces the homepage the crawl starts from.
	EntryURL string `yaml:"entryURL,omitempty"`

	// Concurrency is the number of article requests in flight.
	Concurrency int `yaml:"concurrency,omitempty"`

	// ProgressInterval is the number of completed pages between progress logs.
	ProgressInterval int `yaml:"progressInterval,omitempty"`

	// Timeout is a Go duration string such as "30s" or "1m".
	Timeout string `yaml:"timeout,omitempty"`

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string `yaml:"userAgent,omitempty"`

	// MaxBodySize is the maximum response body size in bytes to read.
	// An explicit 0 disables the limit.
	MaxBodySize *int64 `yaml:"maxBodySize,omitempty"`

	// Proxy is a SOCKS5 proxy address in "host:port" format.
	Proxy string `yaml:"proxy,omitempty"`

	// Cookie is an HTTP cookie sent with every request.
	Cookie string `yaml:"cookie,omitempty"`

	// Headers are custom HTTP headers sent with every request.
	Headers map[string]string `yaml:"headers,omitempty"`

	// Patterns override the URL filter's regular expressions.
	Patterns crawler.Patterns `yaml:"patterns,omitempty"`

	// Markers override the page extractor's selectors.
	Markers extract.Markers `yaml:"markers,omitempty"`
}

// ApplyTo copies the values set in the file onto cfg.
func (f *File) ApplyTo(cfg *Config) error {
	if f.EntryURL != "" {
		cfg.EntryURL = f.EntryURL
	}
	if f.Concurrency != 0 {
		cfg.Concurrency = f.Concurrency
	}
	if f.ProgressInterval != 0 {
		cfg.ProgressInterval = f.ProgressInterval
	}
	if f.Timeout != "" {
		timeout, err := time.ParseDuration(f.Timeout)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidTimeout, err)
		}
		cfg.Timeout = timeout
	}
	if f.UserAgent != "" {
		cfg.UserAgent = f.UserAgent
	}
	if f.MaxBodySize != nil {
		cfg.MaxBodySize = *f.MaxBodySize
	}
	if f.Proxy != "" {
		cfg.ProxyAddress = f.Proxy
	}
	if f.Cookie != "" {
		cfg.Cookie = f.Cookie
	}
	if len(f.Headers) > 0 {
		if cfg.Headers == nil {
			cfg.Headers = make(map[string]string, len(f.Headers))
		}
		maps.Copy(cfg.Headers, f.Headers)
	}
	cfg.Patterns = f.Patterns.Merge(cfg.Patterns)
	cfg.Markers = f.Markers.Merge(cfg.Markers)
	return nil
}
