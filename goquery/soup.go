package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/locrecipe"
	"github.com/fwojciec/locrecipe/text"
)

// Document and Selection re-export the goquery types used by callers of
// the helpers below.
type (
	Document  = goquery.Document
	Selection = goquery.Selection
)

// NewDocument parses html for the selector helpers below.
func NewDocument(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, locrecipe.Errorf(locrecipe.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// Text returns the normalized text of the first element matching selector,
// or ENOTFOUND when nothing matches.
func Text(doc *goquery.Document, selector string) (string, error) {
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return "", locrecipe.Errorf(locrecipe.ENOTFOUND, "no element matches %q", selector)
	}
	return text.Normalize(sel.Text()), nil
}

// TextAll returns the normalized, non-empty text of every element matching
// selector.
func TextAll(doc *goquery.Document, selector string) []string {
	var out []string
	doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		if t := text.Normalize(sel.Text()); t != "" {
			out = append(out, t)
		}
	})
	return out
}

// Meta returns the content of the first <meta> whose name or property is key.
func Meta(doc *goquery.Document, key string) string {
	var content string
	doc.Find("meta[content]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		name, _ := sel.Attr("name")
		property, _ := sel.Attr("property")
		if !strings.EqualFold(name, key) && !strings.EqualFold(property, key) {
			return true
		}
		content = strings.TrimSpace(sel.AttrOr("content", ""))
		return content == ""
	})
	return content
}

// CanonicalURL returns the page's canonical link, then og:url, resolved
// against pageURL. It falls back to pageURL itself.
func CanonicalURL(doc *goquery.Document, pageURL string) string {
	base, err := url.Parse(pageURL)
	if err != nil {
		return pageURL
	}

	candidates := []string{
		doc.Find(`link[rel="canonical"][href]`).First().AttrOr("href", ""),
		Meta(doc, "og:url"),
	}
	for _, href := range candidates {
		if resolved := resolveURL(base, href); resolved != "" {
			return resolved
		}
	}
	return pageURL
}

// resolveURL resolves href against base. Returns empty string for empty or
// unparseable hrefs and for non-HTTP schemes.
func resolveURL(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" || isNonHTTPLink(href) {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
