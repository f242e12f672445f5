package locrecipe

import (
	"context"
	"regexp"
)

// SitemapService discovers page URLs from website sitemaps.
type SitemapService interface {
	// DiscoverURLs returns the URLs listed in the sitemaps of baseURL's site.
	// Sitemaps are located through robots.txt, falling back to
	// /sitemap.xml, and sitemap indexes are followed.
	//
	// Only URLs under baseURL's path that pass filter are returned.
	// A nil filter accepts everything.
	DiscoverURLs(ctx context.Context, baseURL string, filter *URLFilter) ([]string, error)
}

// URLFilter selects URLs by pattern.
type URLFilter struct {
	// Include, when set, keeps only URLs matching at least one pattern.
	Include []*regexp.Regexp

	// Exclude drops URLs matching any pattern. It is applied after Include.
	Exclude []*regexp.Regexp
}

// Match reports whether url passes the filter. A nil filter matches all.
func (f *URLFilter) Match(url string) bool {
	if f == nil {
		return true
	}
	if len(f.Include) > 0 && !anyMatch(f.Include, url) {
		return false
	}
	return !anyMatch(f.Exclude, url)
}

func anyMatch(patterns []*regexp.Regexp, s string) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
