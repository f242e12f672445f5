package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/locrecipe"
)

// extractMicrodata returns one node per top-level item: an itemscope
// element that is not the property value of an enclosing item.
func extractMicrodata(doc *goquery.Document) []locrecipe.Node {
	nodes := []locrecipe.Node{}
	doc.Find("[itemscope]").Each(func(_ int, sel *goquery.Selection) {
		if _, isProp := sel.Attr("itemprop"); isProp && sel.ParentsFiltered("[itemscope]").Length() > 0 {
			return
		}
		nodes = append(nodes, microdataItem(sel))
	})
	return nodes
}

// microdataItem converts an itemscope element into a node.
func microdataItem(item *goquery.Selection) locrecipe.Node {
	node := locrecipe.Node{}

	if itemtype, ok := item.Attr("itemtype"); ok {
		var types []any
		for i, t := range strings.Fields(itemtype) {
			context, name := splitItemType(t)
			if i == 0 && context != "" {
				node["@context"] = context
			}
			types = append(types, name)
		}
		switch len(types) {
		case 0:
		case 1:
			node["@type"] = types[0]
		default:
			node["@type"] = types
		}
	}
	if id, ok := item.Attr("itemid"); ok && id != "" {
		node["@id"] = id
	}

	collectProperties(item, node)
	return node
}

// collectProperties walks the descendants of an item, stopping at nested
// items, and records each itemprop on node.
func collectProperties(parent *goquery.Selection, node locrecipe.Node) {
	parent.Children().Each(func(_ int, child *goquery.Selection) {
		props, hasProp := child.Attr("itemprop")
		_, isScope := child.Attr("itemscope")

		if hasProp {
			value := propertyValue(child)
			for _, name := range strings.Fields(props) {
				addProperty(node, name, value)
			}
		}
		if !isScope {
			collectProperties(child, node)
		}
	})
}

// addProperty stores a single value as a scalar and promotes the property
// to a list when it repeats.
func addProperty(node locrecipe.Node, name string, value any) {
	existing, ok := node[name]
	if !ok {
		node[name] = value
		return
	}
	if list, ok := existing.([]any); ok {
		node[name] = append(list, value)
		return
	}
	node[name] = []any{existing, value}
}

// propertyValue reads the value of an itemprop element.
func propertyValue(sel *goquery.Selection) any {
	if _, ok := sel.Attr("itemscope"); ok {
		return microdataItem(sel)
	}
	if content, ok := sel.Attr("content"); ok {
		return content
	}

	var attr string
	switch goquery.NodeName(sel) {
	case "meta":
		attr = "content"
	case "a", "link", "area":
		attr = "href"
	case "img", "audio", "video", "source", "iframe", "embed", "track":
		attr = "src"
	case "object":
		attr = "data"
	case "data", "meter":
		attr = "value"
	case "time":
		if datetime, ok := sel.Attr("datetime"); ok {
			return datetime
		}
	}
	if attr != "" {
		v, _ := sel.Attr(attr)
		return strings.TrimSpace(v)
	}
	return strings.TrimSpace(sel.Text())
}

// splitItemType splits "https://schema.org/Recipe" into its vocabulary
// and type name.
func splitItemType(itemtype string) (context, name string) {
	i := strings.LastIndexAny(itemtype, "/#")
	if i < 0 {
		return "", itemtype
	}
	return itemtype[:i], itemtype[i+1:]
}
