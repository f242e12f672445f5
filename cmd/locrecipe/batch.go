package main

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/fwojciec/locrecipe"
	"github.com/fwojciec/locrecipe/bloom"
	"github.com/fwojciec/locrecipe/crawl"
)

// seenFalsePositiveRate sizes the deduplication filter seeded from the database.
const seenFalsePositiveRate = 0.0001

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	filter, err := c.urlFilter()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locrecipe.ErrorMessage(err))
		return err
	}

	urls, err := c.collectURLs(deps, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locrecipe.ErrorMessage(err))
		return err
	}

	if c.Preview {
		for _, u := range urls {
			fmt.Fprintln(deps.Stdout, u)
		}
		return nil
	}

	if len(urls) == 0 {
		fmt.Fprintln(deps.Stdout, "No URLs to scrape.")
		return nil
	}

	var seen *bloom.Filter
	if c.SkipExisting {
		if seen, err = seedSeen(deps, len(urls)); err != nil {
			return err
		}
	}

	scraper := &crawl.Scraper{
		Fetcher:     deps.Fetcher,
		Registry:    deps.Registry,
		Recipes:     deps.Recipes,
		RateLimiter: crawl.NewDomainLimiter(c.Rate),
		Concurrency: c.Concurrency,
		Seen:        seen,
		OnRetry: func(url string, attempt int, err error) {
			fmt.Fprintf(deps.Stderr, "  retry %s (attempt %d): %s\n", crawl.DisplayURL(url, 60), attempt, locrecipe.ErrorMessage(err))
		},
	}

	result, err := scraper.ScrapeAll(deps.Ctx, urls, func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Scraping %d URLs...\n", event.Total)
		case crawl.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "[%d/%d] %s (%s)\n", event.Completed, event.Total, crawl.DisplayURL(event.URL, 60), event.Title)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "[%d/%d] failed %s: %s\n", event.Completed, event.Total, crawl.DisplayURL(event.URL, 60), locrecipe.ErrorMessage(event.Error))
		}
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locrecipe.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d recipes (%s), %d failed, %d skipped\n",
		result.Saved, crawl.FormatBytes(result.Bytes), result.Failed, result.Skipped)
	return nil
}

// urlFilter compiles the include and exclude patterns.
// Returns nil when no pattern is given.
func (c *BatchCmd) urlFilter() (*locrecipe.URLFilter, error) {
	if len(c.Include) == 0 && len(c.Exclude) == 0 {
		return nil, nil
	}
	filter := &locrecipe.URLFilter{}
	for _, p := range c.Include {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, locrecipe.Errorf(locrecipe.EINVALID, "invalid include pattern %q: %v", p, err)
		}
		filter.Include = append(filter.Include, re)
	}
	for _, p := range c.Exclude {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, locrecipe.Errorf(locrecipe.EINVALID, "invalid exclude pattern %q: %v", p, err)
		}
		filter.Exclude = append(filter.Exclude, re)
	}
	return filter, nil
}

// collectURLs reads URLs from the sitemap or the URL file.
func (c *BatchCmd) collectURLs(deps *Dependencies, filter *locrecipe.URLFilter) ([]string, error) {
	switch {
	case c.Sitemap != "":
		return deps.Sitemaps.DiscoverURLs(deps.Ctx, c.Sitemap, filter)
	case c.File != "":
		return readURLFile(c.File, filter)
	default:
		return nil, locrecipe.Errorf(locrecipe.EINVALID, "a URL file or --sitemap is required")
	}
}

// readURLFile reads one URL per line, skipping blank lines and # comments.
func readURLFile(path string, filter *locrecipe.URLFilter) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if filter.Match(line) {
			urls = append(urls, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return urls, nil
}

// seedSeen returns a deduplication filter holding every stored source URL.
func seedSeen(deps *Dependencies, pending int) (*bloom.Filter, error) {
	existing, err := deps.Recipes.FindRecipes(deps.Ctx, locrecipe.RecipeFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locrecipe.ErrorMessage(err))
		return nil, err
	}

	seen := bloom.NewFilter(uint(max(pending+len(existing), 1)), seenFalsePositiveRate)
	for _, r := range existing {
		seen.Add(r.SourceURL)
	}
	deps.Logger.Debug("deduplication filter seeded", "stored", len(existing), "estimated", seen.EstimatedCount())
	return seen, nil
}
