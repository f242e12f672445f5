package slog

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/fwojciec/locrecipe"
)

var _ locrecipe.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher logs every recipe page download.
type LoggingFetcher struct {
	next   locrecipe.Fetcher
	logger *slog.Logger
}

func NewLoggingFetcher(next locrecipe.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch records the page's host, size and timing. Missing pages are logged
// at info, other failures at warn.
func (f *LoggingFetcher) Fetch(ctx context.Context, pageURL string) (html string, err error) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		if err != nil && locrecipe.ErrorCode(err) != locrecipe.ENOTFOUND {
			level = slog.LevelWarn
		}
		f.logger.Log(ctx, level, "fetch page",
			"host", pageHost(pageURL),
			"url", pageURL,
			"size", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, pageURL)
}

func (f *LoggingFetcher) Close() (err error) {
	defer func() {
		f.logger.Debug("close fetcher", "err", err)
	}()
	return f.next.Close()
}

func pageHost(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
