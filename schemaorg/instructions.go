package schemaorg

import (
	"strings"

	"github.com/fwojciec/locrecipe"
)

// maxInstructionDepth bounds how deeply nested HowToSections are followed.
const maxInstructionDepth = 32

// instruction is one element of a recipeInstructions tree.
type instruction interface {
	lines(depth int) []string
}

type (
	plainText    string
	howToStep    locrecipe.Node
	howToSection locrecipe.Node
)

// parseInstruction tags a raw value. Values that are neither text nor a
// HowToStep or HowToSection contribute nothing.
func parseInstruction(v any) instruction {
	if s, ok := v.(string); ok {
		return plainText(s)
	}
	node, ok := locrecipe.AsNode(v)
	if !ok {
		return nil
	}
	switch {
	case node.IsExactly("HowToStep"):
		return howToStep(node)
	case node.IsExactly("HowToSection"):
		return howToSection(node)
	}
	return nil
}

func (t plainText) lines(int) []string {
	return []string{string(t)}
}

func (s howToStep) lines(int) []string {
	node := locrecipe.Node(s)

	var out []string
	own := stringify(node["text"])
	if name := node.String("name"); name != "" && !strings.HasPrefix(own, strings.TrimRight(name, ".")) {
		out = append(out, name)
	}

	if v := node["itemListElement"]; truthy(v) {
		return append(out, stepText(v))
	}
	return append(out, own)
}

// stepText reads the text of a step's itemListElement, which publishers
// encode as a node, a list of nodes or plain text.
func stepText(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case []any:
		parts := make([]string, 0, len(v))
		for _, el := range v {
			if t := stepText(el); t != "" {
				parts = append(parts, t)
			}
		}
		return strings.Join(parts, " ")
	}
	if node, ok := locrecipe.AsNode(v); ok {
		return stringify(node["text"])
	}
	return ""
}

func (s howToSection) lines(depth int) []string {
	if depth >= maxInstructionDepth {
		return nil
	}
	node := locrecipe.Node(s)

	var out []string
	name := node.String("name")
	if name == "" {
		name = node.String("Name")
	}
	if name != "" {
		out = append(out, name)
	}

	items, ok := node["itemListElement"].([]any)
	if !ok {
		items = []any{node["itemListElement"]}
	}
	for _, item := range items {
		if child := parseInstruction(item); child != nil {
			out = append(out, child.lines(depth+1)...)
		}
	}
	return out
}

// Instructions returns the recipe steps as newline-separated text.
// Section headings and step names appear on their own lines.
func (s *SchemaOrg) Instructions() string {
	raw := s.data["recipeInstructions"]
	if !truthy(raw) {
		return ""
	}

	if list, ok := raw.([]any); ok {
		if _, nested := list[0].([]any); nested {
			raw = flatten(list)
		}
	}
	if node, ok := locrecipe.AsNode(raw); ok {
		raw = node["itemListElement"]
		if raw == nil {
			return ""
		}
	}

	items, ok := raw.([]any)
	if !ok {
		if text, ok := raw.(string); ok {
			return text
		}
		return stringify(raw)
	}

	var lines []string
	for _, item := range items {
		step := parseInstruction(item)
		if step == nil {
			continue
		}
		for _, line := range step.lines(0) {
			if line = s.text.Normalize(line); line != "" {
				lines = append(lines, line)
			}
		}
	}
	return strings.Join(lines, "\n")
}

// InstructionsList returns Instructions split into one entry per line.
func (s *SchemaOrg) InstructionsList() []string {
	var list []string
	for _, line := range strings.Split(s.Instructions(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			list = append(list, line)
		}
	}
	return list
}
