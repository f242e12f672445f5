// Package crawl provides batch recipe scraping.
// It coordinates fetching, scraper selection, conversion, and storage
// of recipe pages.
package crawl

import (
	"context"
	"net/url"
	"sync/atomic"

	"github.com/fwojciec/locrecipe"
	"github.com/fwojciec/locrecipe/bloom"
	"golang.org/x/sync/errgroup"
)

const (
	// defaultConcurrency is used when Scraper.Concurrency is not positive.
	defaultConcurrency = 4
	// seenFalsePositiveRate sizes the default deduplication filter.
	seenFalsePositiveRate = 0.0001
)

// Scraper scrapes batches of recipe pages and stores the results.
type Scraper struct {
	Fetcher     locrecipe.Fetcher
	Registry    locrecipe.ScraperRegistry
	Recipes     locrecipe.RecipeService
	RateLimiter locrecipe.DomainLimiter
	Concurrency int

	// Backoff paces fetch retries. DefaultBackoff is used when nil.
	Backoff Backoff

	// Seen holds URLs to skip. URLs are added as they are scheduled.
	// A filter sized for the batch is created when nil.
	Seen *bloom.Filter

	// OnRetry, if set, is called before each fetch retry.
	OnRetry RetryNotice
}

// Result holds the outcome of a batch.
type Result struct {
	Saved   int
	Failed  int
	Skipped int
	Bytes   int
}

// ProgressEvent reports progress during a batch.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Title     string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// scrapeResult holds the outcome of processing a single URL.
type scrapeResult struct {
	position int
	url      string
	recipe   *locrecipe.Recipe
	bytes    int
	err      error
}

// ScrapeAll scrapes every URL and stores the recipes in input order.
// Duplicate and already seen URLs are skipped. A failing URL is counted
// and reported through progress but does not stop the batch.
func (s *Scraper) ScrapeAll(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	seen := s.Seen
	if seen == nil {
		seen = bloom.NewFilter(uint(max(len(urls), 1)), seenFalsePositiveRate)
	}

	var result Result
	var pending []string
	for _, u := range urls {
		if seen.TestAndAdd(u) {
			result.Skipped++
			continue
		}
		pending = append(pending, u)
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	total := len(pending)
	progress(ProgressEvent{Type: ProgressStarted, Total: total})

	resultCh := make(chan scrapeResult, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range pending {
			g.Go(func() error {
				resultCh <- s.processURL(gctx, i, u)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]scrapeResult, total)
	for r := range resultCh {
		results[r.position] = r
		n := int(completed.Add(1))
		if r.err != nil {
			progress(ProgressEvent{Type: ProgressFailed, Completed: n, Total: total, URL: r.url, Error: r.err})
			continue
		}
		progress(ProgressEvent{Type: ProgressCompleted, Completed: n, Total: total, URL: r.url, Title: r.recipe.Title})
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, r := range results {
		if r.err != nil {
			result.Failed++
			continue
		}
		if err := s.Recipes.CreateRecipe(ctx, r.recipe); err != nil {
			result.Failed++
			progress(ProgressEvent{Type: ProgressFailed, Completed: total, Total: total, URL: r.url, Error: err})
			continue
		}
		result.Saved++
		result.Bytes += r.bytes
	}

	progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})

	return &result, nil
}

// processURL fetches, scrapes and converts a single URL.
func (s *Scraper) processURL(ctx context.Context, position int, rawURL string) scrapeResult {
	result := scrapeResult{
		position: position,
		url:      rawURL,
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		result.err = locrecipe.Errorf(locrecipe.EINVALID, "invalid URL %q", rawURL)
		return result
	}

	backoff := s.Backoff
	if backoff == nil {
		backoff = DefaultBackoff
	}
	fetch := func(ctx context.Context, url string) (string, error) {
		if s.RateLimiter != nil {
			if err := s.RateLimiter.Wait(ctx, u.Host); err != nil {
				return "", err
			}
		}
		return s.Fetcher.Fetch(ctx, url)
	}
	html, err := backoff.Fetch(ctx, rawURL, fetch, s.OnRetry)
	if err != nil {
		result.err = err
		return result
	}

	scraper, err := s.Registry.ScraperFor(html, rawURL)
	if err != nil {
		result.err = err
		return result
	}

	recipe, err := locrecipe.ToRecipe(scraper, rawURL)
	if err != nil {
		result.err = err
		return result
	}
	if err := recipe.Validate(); err != nil {
		result.err = err
		return result
	}
	recipe.ContentHash = ComputeHash(html)

	result.recipe = recipe
	result.bytes = len(html)
	return result
}
