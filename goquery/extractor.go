package goquery

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/locrecipe"
)

var _ locrecipe.StructuredDataExtractor = (*Extractor)(nil)

// Config controls which syntaxes an Extractor reads and whether malformed
// blocks are reported.
type Config struct {
	// Syntaxes lists the syntaxes to extract. Defaults to DefaultSyntaxes.
	Syntaxes []locrecipe.Syntax

	// LogErrors reports malformed JSON-LD blocks at WARN instead of
	// dropping them silently.
	LogErrors bool

	// Logger receives the reports when LogErrors is set. Defaults to a
	// logger that discards everything.
	Logger *slog.Logger
}

// Extractor reads JSON-LD and microdata from HTML pages.
// It holds no mutable state and is safe for concurrent use.
type Extractor struct {
	syntaxes  []locrecipe.Syntax
	logErrors bool
	logger    *slog.Logger
}

// NewExtractor creates an Extractor from cfg.
func NewExtractor(cfg Config) *Extractor {
	e := &Extractor{
		syntaxes:  cfg.Syntaxes,
		logErrors: cfg.LogErrors,
		logger:    cfg.Logger,
	}
	if len(e.syntaxes) == 0 {
		e.syntaxes = locrecipe.DefaultSyntaxes
	}
	if e.logger == nil {
		e.logger = slog.New(slog.DiscardHandler)
	}
	return e
}

// Extract returns the structured data of html, keyed by syntax.
// Only enabled syntaxes appear in the result; an enabled syntax with no
// data maps to an empty slice.
func (e *Extractor) Extract(html string) (locrecipe.Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, locrecipe.Errorf(locrecipe.EINVALID, "failed to parse HTML: %v", err)
	}

	ext := make(locrecipe.Extraction, len(e.syntaxes))
	if slices.Contains(e.syntaxes, locrecipe.SyntaxJSONLD) {
		ext[locrecipe.SyntaxJSONLD] = e.extractJSONLD(doc)
	}
	if slices.Contains(e.syntaxes, locrecipe.SyntaxMicrodata) {
		ext[locrecipe.SyntaxMicrodata] = extractMicrodata(doc)
	}
	return ext, nil
}
