package schemaorg

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/fwojciec/locrecipe"
)

// truthy reports whether v carries a value: nil, false, zero numbers, empty
// strings, lists and objects are all empty.
func truthy(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case json.Number:
		f, err := v.Float64()
		return err != nil || f != 0
	case float64:
		return v != 0
	case int:
		return v != 0
	case []any:
		return len(v) > 0
	case locrecipe.Node:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	}
	return true
}

// stringify renders a scalar value as text.
func stringify(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		parts := make([]string, 0, len(v))
		for _, el := range v {
			parts = append(parts, stringify(el))
		}
		return strings.Join(parts, ", ")
	}
	return fmt.Sprint(v)
}

// first returns the first element of a list, or v itself if it is not one.
func first(v any) any {
	if list, ok := v.([]any); ok {
		if len(list) == 0 {
			return nil
		}
		return list[0]
	}
	return v
}

// join renders a list with sep, or stringifies a scalar.
func join(v any, sep string) string {
	list, ok := v.([]any)
	if !ok {
		return stringify(v)
	}
	parts := make([]string, 0, len(list))
	for _, el := range list {
		parts = append(parts, stringify(el))
	}
	return strings.Join(parts, sep)
}

// toFloat converts numbers and numeric strings.
func toFloat(v any) (float64, bool) {
	switch v := v.(type) {
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	}
	return 0, false
}

// present reports whether key holds a non-null value, which is how the
// "requires key" accessors decide between a value and ENOTFOUND.
func present(n locrecipe.Node, key string) (any, bool) {
	v, ok := n.Get(key)
	return v, ok && v != nil
}
