package locrecipe

// Syntax identifies an on-page structured data encoding.
type Syntax string

// Supported structured data syntaxes.
const (
	SyntaxJSONLD    Syntax = "json-ld"
	SyntaxMicrodata Syntax = "microdata"
)

// DefaultSyntaxes lists the supported syntaxes in lookup priority order.
var DefaultSyntaxes = []Syntax{SyntaxJSONLD, SyntaxMicrodata}

// Extraction holds the nodes found on a page, per syntax, in document order.
type Extraction map[Syntax][]Node

// Len returns the total number of top-level nodes across all syntaxes.
func (e Extraction) Len() int {
	n := 0
	for _, nodes := range e {
		n += len(nodes)
	}
	return n
}

// StructuredDataExtractor turns raw page markup into structured data nodes.
type StructuredDataExtractor interface {
	// Extract parses the markup and returns the nodes of each enabled syntax.
	// A malformed embedded block is skipped, never returned as an error.
	Extract(html string) (Extraction, error)
}
