package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/locrecipe"
	"github.com/fwojciec/locrecipe/text"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements locrecipe.MetadataExtractor at compile time.
var _ locrecipe.MetadataExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to discover generic page metadata for
// pages whose structured data is incomplete.
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

	var base *url.URL
	if pageURL != "" {
		u, err := url.Parse(pageURL)
		if err != nil {
			return nil, locrecipe.Errorf(locrecipe.EINVALID, "invalid page URL: %v", err)
		}
		base = u
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), base)
	if err != nil {
		return nil, err
	}

	return &locrecipe.PageMetadata{
		Title:       text.Normalize(article.Title),
		SiteName:    text.Normalize(article.SiteName),
		Image:       article.Image,
		Description: text.Normalize(article.Excerpt),
		Author:      text.Normalize(article.Byline),
		Language:    article.Language,
	}, nil
}
