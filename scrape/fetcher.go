package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gocolly/colly"
)

const (
	// DefaultFetchTimeout bounds a single page load. Rendering-heavy news
	// pages can take a long time to settle, so this is generous.
	DefaultFetchTimeout = 45 * time.Second

	// DefaultSettleDelay is the fixed grace period after a page load.
	// Dynamic pages have no completion signal beyond network idle, so a
	// bounded wait is the only option.
	DefaultSettleDelay = 7 * time.Second

	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

// Fetcher loads a URL and returns its fully rendered HTML.
// Implementations must enforce an explicit timeout.
type Fetcher interface {
	FetchRenderedHTML(ctx context.Context, pageURL string) (string, error)
}

// PageFetcher implements Fetcher over an HTTP collector with an explicit
// request timeout and a bounded post-load settle delay.
type PageFetcher struct {
	timeout   time.Duration
	settle    time.Duration
	userAgent string
	logger    *slog.Logger
}

var _ Fetcher = (*PageFetcher)(nil)

// FetcherOption configures a PageFetcher.
type FetcherOption func(*PageFetcher)

// WithFetchTimeout sets the per-request timeout.
func WithFetchTimeout(timeout time.Duration) FetcherOption {
	return func(f *PageFetcher) {
		if timeout > 0 {
			f.timeout = timeout
		}
	}
}

// WithSettleDelay sets the post-load grace period.
func WithSettleDelay(settle time.Duration) FetcherOption {
	return func(f *PageFetcher) {
		if settle >= 0 {
			f.settle = settle
		}
	}
}

// WithUserAgent sets the User-Agent header sent with page requests.
func WithUserAgent(userAgent string) FetcherOption {
	return func(f *PageFetcher) {
		if userAgent != "" {
			f.userAgent = userAgent
		}
	}
}

// WithFetcherLogger sets a custom logger.
func WithFetcherLogger(logger *slog.Logger) FetcherOption {
	return func(f *PageFetcher) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// NewPageFetcher creates a page fetcher with the default timeout, settle
// delay and user agent.
func NewPageFetcher(opts ...FetcherOption) *PageFetcher {
	f := &PageFetcher{
		timeout:   DefaultFetchTimeout,
		settle:    DefaultSettleDelay,
		userAgent: defaultUserAgent,
		logger:    slog.Default().With("component", "page-fetcher"),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FetchRenderedHTML loads pageURL and returns the page body. A fresh
// collector per call keeps fetches stateless; the settle delay runs after
// the load so late-arriving content has a bounded chance to land.
func (f *PageFetcher) FetchRenderedHTML(ctx context.Context, pageURL string) (string, error) {
	f.logger.Info("fetching page", "url", pageURL)

	c := colly.NewCollector(
		colly.UserAgent(f.userAgent),
	)
	c.SetRequestTimeout(f.timeout)

	var html string
	var fetchErr error

	c.OnResponse(func(r *colly.Response) {
		html = string(r.Body)
	})
	c.OnError(func(r *colly.Response, err error) {
		fetchErr = err
	})

	if err := c.Visit(pageURL); err != nil {
		return "", fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	if fetchErr != nil {
		return "", fmt.Errorf("fetch %s: %w", pageURL, fetchErr)
	}
	if html == "" {
		return "", fmt.Errorf("fetch %s: empty response body", pageURL)
	}

	if err := f.waitSettle(ctx); err != nil {
		return "", err
	}

	return html, nil
}

// waitSettle sleeps for the settle delay, honoring context cancellation.
func (f *PageFetcher) waitSettle(ctx context.Context) error {
	if f.settle <= 0 {
		return nil
	}
	timer := time.NewTimer(f.settle)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
