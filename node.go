package locrecipe

import (
	"encoding/json"
	"strings"
)

// Node is a single structured-data entity decoded from JSON-LD or microdata.
//
// Values are strings, json.Number, bool, nil, []any, or nested Nodes.
// The reserved keys @type, @id, @context and @graph have typed getters;
// every other key is read through Get and its helpers.
type Node map[string]any

// AsNode returns v as a Node if it is an object value.
func AsNode(v any) (Node, bool) {
	switch v := v.(type) {
	case Node:
		return v, v != nil
	case map[string]any:
		return Node(v), v != nil
	}
	return nil, false
}

// Get returns the raw value stored under key.
func (n Node) Get(key string) (any, bool) {
	v, ok := n[key]
	return v, ok
}

// Has reports whether key is present, even with a null value.
func (n Node) Has(key string) bool {
	_, ok := n[key]
	return ok
}

// String returns the value under key if it is a string or a number.
func (n Node) String(key string) string {
	switch v := n[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	}
	return ""
}

// Child returns the nested node stored under key, or nil.
func (n Node) Child(key string) Node {
	child, _ := AsNode(n[key])
	return child
}

// Types returns @type as a list, whether it was encoded as a string or a list.
func (n Node) Types() []string {
	switch v := n["@type"].(type) {
	case string:
		return []string{v}
	case []string:
		return v
	case []any:
		types := make([]string, 0, len(v))
		for _, t := range v {
			if s, ok := t.(string); ok {
				types = append(types, s)
			}
		}
		return types
	}
	return nil
}

// ID returns @id.
func (n Node) ID() string {
	return n.String("@id")
}

// Context returns @context flattened to text. A list context joins its
// string members with newlines; an object context yields its @vocab.
func (n Node) Context() string {
	switch v := n["@context"].(type) {
	case string:
		return v
	case []any:
		var parts []string
		for _, c := range v {
			switch c := c.(type) {
			case string:
				parts = append(parts, c)
			case Node, map[string]any:
				child, _ := AsNode(c)
				parts = append(parts, child.String("@vocab"))
			}
		}
		return strings.Join(parts, "\n")
	case Node, map[string]any:
		child, _ := AsNode(v)
		return child.String("@vocab")
	}
	return ""
}

// Graph returns the nodes of @graph. List elements are flattened one level
// and anything that is not an object is skipped.
func (n Node) Graph() []Node {
	var items []any
	switch v := n["@graph"].(type) {
	case []any:
		items = v
	case Node, map[string]any:
		items = []any{v}
	default:
		return nil
	}

	var nodes []Node
	for _, item := range items {
		if list, ok := item.([]any); ok {
			for _, el := range list {
				if node, ok := AsNode(el); ok {
					nodes = append(nodes, node)
				}
			}
			continue
		}
		if node, ok := AsNode(item); ok {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

// Matches reports whether schemaType appears in the node's @type.
//
// The test is a case-insensitive substring match over the newline-joined
// type strings, so "Recipe" also matches a type such as "RecipeCollection".
// Some publishers are only recognized because of this leniency.
func (n Node) Matches(schemaType string) bool {
	if n == nil {
		return false
	}
	joined := strings.ToLower(strings.Join(n.Types(), "\n"))
	return strings.Contains(joined, strings.ToLower(schemaType))
}

// IsExactly reports whether @type is the single literal string schemaType.
func (n Node) IsExactly(schemaType string) bool {
	t, ok := n["@type"].(string)
	return ok && t == schemaType
}

// FindEntity returns the node itself if it matches schemaType, otherwise
// the first matching node of its @graph.
func (n Node) FindEntity(schemaType string) (Node, bool) {
	if n.Matches(schemaType) {
		return n, true
	}
	for _, child := range n.Graph() {
		if child.Matches(schemaType) {
			return child, true
		}
	}
	return nil, false
}
