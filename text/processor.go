// Package text implements locrecipe.TextProcessor: whitespace and unicode
// normalization plus parsers for the durations, yields and tag lists found
// in recipe structured data.
package text

import (
	"html"
	"strings"

	"github.com/fwojciec/locrecipe"
	"golang.org/x/text/unicode/norm"
)

// Ensure Processor implements locrecipe.TextProcessor at compile time.
var _ locrecipe.TextProcessor = (*Processor)(nil)

// Processor is the default locrecipe.TextProcessor. It holds no state and
// is safe for concurrent use.
type Processor struct{}

// NewProcessor creates a new Processor.
func NewProcessor() *Processor {
	return &Processor{}
}

// Normalize unescapes HTML entities, applies NFC composition and collapses
// every run of whitespace (including non-breaking spaces) to a single space.
func (p *Processor) Normalize(s string) string {
	return Normalize(s)
}

// Normalize is the package-level form of Processor.Normalize.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = html.UnescapeString(s)
	s = norm.NFC.String(s)
	return strings.Join(strings.Fields(s), " ")
}

// Tags splits a comma-separated string into trimmed tags, dropping empty
// entries and case-insensitive duplicates while keeping the first spelling.
func (p *Processor) Tags(s string) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, raw := range strings.Split(s, ",") {
		tag := strings.TrimSpace(raw)
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}
