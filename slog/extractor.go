package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/locrecipe"
)

// Ensure LoggingExtractor implements locrecipe.StructuredDataExtractor.
var _ locrecipe.StructuredDataExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a StructuredDataExtractor with debug logging.
type LoggingExtractor struct {
	next   locrecipe.StructuredDataExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next locrecipe.StructuredDataExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs node counts per syntax.
func (e *LoggingExtractor) Extract(html string) (ext locrecipe.Extraction, err error) {
	defer func(begin time.Time) {
		e.logger.Debug("structured data extraction",
			"bytes", len(html),
			"jsonld", len(ext[locrecipe.SyntaxJSONLD]),
			"microdata", len(ext[locrecipe.SyntaxMicrodata]),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
