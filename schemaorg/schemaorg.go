// Package schemaorg locates the schema.org Recipe entity among the
// structured data of a page and reads its fields.
//
// A SchemaOrg value is built once from an extraction and never mutated
// afterwards, so its accessors may be called concurrently.
package schemaorg

import (
	"github.com/fwojciec/locrecipe"
	"github.com/fwojciec/locrecipe/text"
)

// SchemaOrg is the recipe model of a single page: the selected Recipe node,
// the syntax it was found in, and lookup tables for the Person,
// AggregateRating and WebSite entities published alongside it.
type SchemaOrg struct {
	format locrecipe.Syntax
	data   locrecipe.Node

	people      map[string]locrecipe.Node
	ratings     map[string]locrecipe.Node
	websiteName string

	text locrecipe.TextProcessor
}

// Option configures a SchemaOrg.
type Option func(*SchemaOrg)

// WithTextProcessor sets the processor used to normalize and parse values.
// Defaults to text.NewProcessor().
func WithTextProcessor(p locrecipe.TextProcessor) Option {
	return func(s *SchemaOrg) {
		s.text = p
	}
}

// New indexes the entities of ext and selects its Recipe node.
// A page without a Recipe is not an error: every accessor then applies
// its own contract to an empty node.
func New(ext locrecipe.Extraction, opts ...Option) *SchemaOrg {
	s := &SchemaOrg{
		data:    locrecipe.Node{},
		people:  make(map[string]locrecipe.Node),
		ratings: make(map[string]locrecipe.Node),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.text == nil {
		s.text = text.NewProcessor()
	}

	s.indexWebsite(ext)
	s.indexPeople(ext)
	s.indexRatings(ext)

	if syntax, node, ok := locate(ext); ok {
		s.format = syntax
		s.data = node
	}
	return s
}

// NewFromHTML extracts the structured data of html and builds a SchemaOrg.
func NewFromHTML(html string, extractor locrecipe.StructuredDataExtractor, opts ...Option) (*SchemaOrg, error) {
	ext, err := extractor.Extract(html)
	if err != nil {
		return nil, err
	}
	return New(ext, opts...), nil
}

// Format returns the syntax the Recipe node was found in, or "" if none.
func (s *SchemaOrg) Format() locrecipe.Syntax {
	return s.format
}

// Found reports whether the page carries a Recipe node.
func (s *SchemaOrg) Found() bool {
	return s.format != ""
}

// Data returns the selected Recipe node. Callers must not modify it.
func (s *SchemaOrg) Data() locrecipe.Node {
	return s.data
}
