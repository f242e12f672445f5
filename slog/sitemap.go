package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/locrecipe"
)

var _ locrecipe.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService logs each sitemap crawl of a recipe website.
type LoggingSitemapService struct {
	next   locrecipe.SitemapService
	logger *slog.Logger
}

func NewLoggingSitemapService(next locrecipe.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: logger}
}

// DiscoverURLs logs the site, the filter shape and the number of recipe
// URLs found. Failures are logged at warn level.
func (s *LoggingSitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *locrecipe.URLFilter) (urls []string, err error) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelWarn
		}
		include, exclude := filterSize(filter)
		s.logger.Log(ctx, level, "discover recipe urls",
			"site", baseURL,
			"include", include,
			"exclude", exclude,
			"found", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DiscoverURLs(ctx, baseURL, filter)
}

func filterSize(f *locrecipe.URLFilter) (include, exclude int) {
	if f == nil {
		return 0, 0
	}
	return len(f.Include), len(f.Exclude)
}
