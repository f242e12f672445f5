package locrecipe

// PageMetadata holds generic page information discovered without
// structured data, from meta tags and content heuristics.
type PageMetadata struct {
	Title       string
	SiteName    string
	Image       string
	Description string
	Author      string
	Language    string
}

// MetadataExtractor discovers generic page metadata.
type MetadataExtractor interface {
	// ExtractMetadata parses raw HTML. The page URL resolves relative links.
	ExtractMetadata(html, pageURL string) (*PageMetadata, error)
}
