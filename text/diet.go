package text

import (
	"strings"
	"unicode"
)

// DietName turns a schema.org diet identifier into a display name:
// "https://schema.org/GlutenFreeDiet" becomes "Gluten Free Diet".
func (p *Processor) DietName(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndex(s, "schema.org/"); i >= 0 {
		s = s[i+len("schema.org/"):]
	}
	return splitCamelCase(s)
}

// splitCamelCase inserts a space at each lower-to-upper case boundary.
// Text that already contains spaces is left alone.
func splitCamelCase(s string) string {
	if strings.ContainsRune(s, ' ') {
		return s
	}
	var sb strings.Builder
	var prev rune
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
			sb.WriteRune(' ')
		}
		sb.WriteRune(r)
		prev = r
	}
	return sb.String()
}
