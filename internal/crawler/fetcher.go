package crawler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/net/html/charset"
	"golang.org/x/sync/errgroup"
)

// Default fetch settings.
const (
	DefaultUserAgent   = "Mozilla/5.0 (X11; Linux x86_64; rv:109.0) Gecko/20100101 Firefox/115.0"
	DefaultMaxBodySize = 10 * 1024 * 1024 // 10MB
)

// ErrUnexpectedStatus is wrapped by the error of a response whose status
// code is not 2xx.
var ErrUnexpectedStatus = errors.New("unexpected status code")

// Response is the outcome of fetching one URL.
type Response struct {
	// URL is the URL that was requested.
	URL string

	// FinalURL is the URL of the last request after redirects.
	// It equals URL when the request failed before a response arrived.
	FinalURL string

	// StatusCode is the HTTP status code, 0 when no response arrived.
	StatusCode int

	// Body is the response body decoded to UTF-8.
	Body []byte

	// Err is set when the fetch failed. Body is not usable then.
	Err error
}

// OK reports whether the fetch succeeded with a 2xx response.
func (r Response) OK() bool {
	return r.Err == nil
}

// Fetcher fetches a single URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) Response
}

// HTTPFetcher fetches pages with an http.Client.
type HTTPFetcher struct {
	client      *http.Client
	userAgent   string
	maxBodySize int64
}

// FetcherOption configures an HTTPFetcher.
type FetcherOption func(*HTTPFetcher)

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) FetcherOption {
	return func(f *HTTPFetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// WithMaxBodySize limits how many bytes of a response body are read.
// Zero disables the limit; negative sizes are ignored.
func WithMaxBodySize(size int64) FetcherOption {
	return func(f *HTTPFetcher) {
		if size >= 0 {
			f.maxBodySize = size
		}
	}
}

// NewHTTPFetcher creates an HTTPFetcher using client.
// The client's timeout is the per-request timeout.
func NewHTTPFetcher(client *http.Client, opts ...FetcherOption) *HTTPFetcher {
	f := &HTTPFetcher{
		client:      client,
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch performs a GET request for pageURL.
// Transport errors, timeouts and non-2xx responses are reported in Err.
func (f *HTTPFetcher) Fetch(ctx context.Context, pageURL string) Response {
	res := Response{URL: pageURL, FinalURL: pageURL}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		res.Err = err
		return res
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		res.Err = err
		return res
	}
	defer resp.Body.Close()

	res.StatusCode = resp.StatusCode
	if resp.Request != nil && resp.Request.URL != nil {
		res.FinalURL = resp.Request.URL.String()
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		res.Err = fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
		return res
	}

	var reader io.Reader = resp.Body
	if f.maxBodySize > 0 {
		reader = io.LimitReader(resp.Body, f.maxBodySize)
	}
	raw, err := io.ReadAll(reader)
	if err != nil {
		res.Err = fmt.Errorf("failed to read body: %w", err)
		return res
	}

	body, err := decodeUTF8(raw, resp.Header.Get("Content-Type"))
	if err != nil {
		res.Err = fmt.Errorf("failed to decode body: %w", err)
		return res
	}
	res.Body = body

	return res
}

// decodeUTF8 converts body to UTF-8 using the charset from the content type
// or, failing that, from the document itself.
func decodeUTF8(body []byte, contentType string) ([]byte, error) {
	r, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}

// FetchMany fetches urls with at most concurrency requests in flight and
// sends each Response on the returned channel as soon as it completes.
// The channel is closed once every URL has been attempted. The caller must
// drain the channel.
func FetchMany(ctx context.Context, f Fetcher, urls []string, concurrency int) <-chan Response {
	if concurrency < 1 {
		concurrency = 1
	}
	out := make(chan Response, concurrency)

	go func() {
		defer close(out)

		var g errgroup.Group
		g.SetLimit(concurrency)

		for _, u := range urls {
			g.Go(func() error {
				out <- f.Fetch(ctx, u)
				return nil
			})
		}

		_ = g.Wait() //nolint:errcheck // fetch errors travel in Response.Err
	}()

	return out
}
