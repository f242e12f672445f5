package schemaorg

import (
	"strings"

	"github.com/fwojciec/locrecipe"
)

// schemaOrgHost must appear in a node's @context for it to be considered.
const schemaOrgHost = "schema.org"

// locate selects the Recipe node of the page. Syntaxes are tried in
// priority order and the first match ends the search.
func locate(ext locrecipe.Extraction) (locrecipe.Syntax, locrecipe.Node, bool) {
	for _, syntax := range locrecipe.DefaultSyntaxes {
		for _, node := range recipesFirst(ext[syntax]) {
			if !strings.Contains(node.Context(), schemaOrgHost) {
				continue
			}

			if recipe, ok := node.FindEntity("Recipe"); ok {
				return syntax, recipe, true
			}

			if node.Matches("WebPage") {
				if main := node.Child("mainEntity"); main.Matches("Recipe") {
					return syntax, main, true
				}
			}
		}
	}
	return "", nil, false
}

// recipesFirst returns a copy of nodes with every node whose own @type is
// exactly "Recipe" moved to the front, preserving relative order.
func recipesFirst(nodes []locrecipe.Node) []locrecipe.Node {
	ordered := make([]locrecipe.Node, 0, len(nodes))
	for _, node := range nodes {
		if node.IsExactly("Recipe") {
			ordered = append(ordered, node)
		}
	}
	for _, node := range nodes {
		if !node.IsExactly("Recipe") {
			ordered = append(ordered, node)
		}
	}
	return ordered
}
