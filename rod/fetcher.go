// Package rod renders recipe pages in headless Chrome for websites that
// inject their structured data with JavaScript.
package rod

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fwojciec/locrecipe"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// structuredDataSelector matches the markup the extractor reads.
const structuredDataSelector = `script[type="application/ld+json"], [itemscope]`

// Ensure Fetcher implements locrecipe.Fetcher at compile time.
var _ locrecipe.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser  *browser
	maxPages int64
	wait     time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithMaxPages sets how many pages are rendered before Chrome is restarted.
func WithMaxPages(n int64) Option {
	return func(f *Fetcher) {
		f.maxPages = n
	}
}

// WithStructuredDataWait sets how long Fetch waits after page load for
// JSON-LD or microdata to appear. Zero disables the wait.
func WithStructuredDataWait(d time.Duration) Option {
	return func(f *Fetcher) {
		f.wait = d
	}
}

// NewFetcher launches headless Chrome, downloading it if needed.
// Close must be called when the Fetcher is no longer needed.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		maxPages: DefaultMaxPages,
		wait:     2 * time.Second,
	}
	for _, opt := range opts {
		opt(f)
	}

	b, err := newBrowser(f.maxPages)
	if err != nil {
		return nil, locrecipe.Errorf(locrecipe.EINTERNAL, "%v", err)
	}
	f.browser = b
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := f.browser.get().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", fmt.Errorf("opening page: %w", err)
	}
	defer page.Close()
	defer f.browser.rendered()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", fmt.Errorf("navigating to %s: %w", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", fmt.Errorf("loading %s: %w", url, err)
	}

	if f.wait > 0 {
		if err := waitForStructuredData(page, f.wait); err != nil && ctx.Err() != nil {
			return "", ctx.Err()
		}
	}

	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", url, err)
	}
	return html, nil
}

// waitForStructuredData blocks until the page carries JSON-LD or microdata
// or d elapses. Pages without structured data are still returned.
func waitForStructuredData(page *rod.Page, d time.Duration) error {
	_, err := page.Timeout(d).Element(structuredDataSelector)
	if errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

// Close stops Chrome. It is safe to call more than once.
func (f *Fetcher) Close() error {
	return f.browser.close()
}
