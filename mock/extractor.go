package mock

import "github.com/fwojciec/locrecipe"

var (
	_ locrecipe.StructuredDataExtractor = (*StructuredDataExtractor)(nil)
	_ locrecipe.MetadataExtractor       = (*MetadataExtractor)(nil)
)

// StructuredDataExtractor is a mock implementation of
// locrecipe.StructuredDataExtractor.
type StructuredDataExtractor struct {
	ExtractFn func(html string) (locrecipe.Extraction, error)
}

func (e *StructuredDataExtractor) Extract(html string) (locrecipe.Extraction, error) {
	return e.ExtractFn(html)
}

// MetadataExtractor is a mock implementation of locrecipe.MetadataExtractor.
type MetadataExtractor struct {
	ExtractMetadataFn func(html, pageURL string) (*locrecipe.PageMetadata, error)
}

func (e *MetadataExtractor) ExtractMetadata(html, pageURL string) (*locrecipe.PageMetadata, error) {
	return e.ExtractMetadataFn(html, pageURL)
}
