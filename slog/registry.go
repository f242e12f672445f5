package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/locrecipe"
)

// Ensure LoggingRegistry implements locrecipe.ScraperRegistry.
var _ locrecipe.ScraperRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps a ScraperRegistry with debug logging for scraper
// selection.
type LoggingRegistry struct {
	next   locrecipe.ScraperRegistry
	logger *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next locrecipe.ScraperRegistry, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, logger: logger}
}

// Get delegates to the wrapped registry.
func (r *LoggingRegistry) Get(host string) locrecipe.ScraperFactory {
	return r.next.Get(host)
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(host string, factory locrecipe.ScraperFactory) {
	r.next.Register(host, factory)
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []string {
	return r.next.List()
}

// ScraperFor delegates to the wrapped registry and logs the selected host.
func (r *LoggingRegistry) ScraperFor(html, pageURL string) (s locrecipe.Scraper, err error) {
	defer func(begin time.Time) {
		host := "(none)"
		if s != nil {
			host = s.Host()
		}
		r.logger.Info("scraper selection",
			"url", pageURL,
			"scraper", host,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ScraperFor(html, pageURL)
}
