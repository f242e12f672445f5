package trafilatura

import (
	"net/url"
	"strings"

	"github.com/fwojciec/locrecipe"
	"github.com/fwojciec/locrecipe/text"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements locrecipe.MetadataExtractor at compile time.
var _ locrecipe.MetadataExtractor = (*Extractor)(nil)

// Extractor reads page metadata with go-trafilatura. It is an alternative
// to the readability extractor that looks at more meta tag variants and
// JSON-LD Article/WebPage entities.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractMetadata processes raw HTML and returns its metadata.
func (e *Extractor) ExtractMetadata(rawHTML, pageURL string) (*locrecipe.PageMetadata, error) {
	if rawHTML == "" {
		return nil, locrecipe.Errorf(locrecipe.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if pageURL != "" {
		u, err := url.Parse(pageURL)
		if err != nil {
			return nil, locrecipe.Errorf(locrecipe.EINVALID, "invalid page URL: %v", err)
		}
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	meta := result.Metadata
	return &locrecipe.PageMetadata{
		Title:       text.Normalize(meta.Title),
		SiteName:    text.Normalize(meta.Sitename),
		Image:       meta.Image,
		Description: text.Normalize(meta.Description),
		Author:      text.Normalize(meta.Author),
	}, nil
}
