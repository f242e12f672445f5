package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/locrecipe"
	"github.com/goccy/go-json"
)

const jsonLDMediaType = "application/ld+json"

// Wrappers some CMSes leave around inline JSON.
var jsonLDWrappers = strings.NewReplacer(
	"<!--", "",
	"-->", "",
	"//<![CDATA[", "",
	"//]]>", "",
	"<![CDATA[", "",
	"]]>", "",
)

// extractJSONLD decodes every JSON-LD script in document order. A script
// holding an array contributes each of its objects.
func (e *Extractor) extractJSONLD(doc *goquery.Document) []locrecipe.Node {
	nodes := []locrecipe.Node{}
	doc.Find("script[type]").Each(func(i int, sel *goquery.Selection) {
		typ, _ := sel.Attr("type")
		mediaType, _, _ := strings.Cut(typ, ";")
		if !strings.EqualFold(strings.TrimSpace(mediaType), jsonLDMediaType) {
			return
		}

		raw := strings.TrimSpace(jsonLDWrappers.Replace(sel.Text()))
		if raw == "" {
			return
		}

		v, err := decodeJSON(raw)
		if err != nil {
			if e.logErrors {
				e.logger.Warn("malformed json-ld block", "index", i, "error", err)
			}
			return
		}

		switch v := asNodes(v).(type) {
		case locrecipe.Node:
			nodes = append(nodes, v)
		case []any:
			for _, el := range v {
				if node, ok := locrecipe.AsNode(el); ok {
					nodes = append(nodes, node)
				}
			}
		}
	})
	return nodes
}

// decodeJSON keeps numbers as json.Number so that integers and decimals
// survive unchanged.
func decodeJSON(raw string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// asNodes turns every JSON object in v into a Node, at any depth.
func asNodes(v any) any {
	switch v := v.(type) {
	case map[string]any:
		node := make(locrecipe.Node, len(v))
		for key, val := range v {
			node[key] = asNodes(val)
		}
		return node
	case []any:
		for i, el := range v {
			v[i] = asNodes(el)
		}
		return v
	}
	return v
}
