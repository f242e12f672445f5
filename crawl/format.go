package crawl

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ComputeHash returns the hex xxHash of a page's markup.
func ComputeHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// DisplayURL shortens a URL for progress output. The scheme and a leading
// "www." are dropped, then the start is cut so the recipe slug stays visible.
func DisplayURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	s := url
	if _, rest, ok := strings.Cut(s, "://"); ok {
		s = rest
	}
	s = strings.TrimPrefix(s, "www.")

	switch {
	case len(s) <= maxLen:
		return s
	case maxLen < 4:
		return s[:maxLen]
	default:
		return "..." + s[len(s)-maxLen+3:]
	}
}

var byteUnits = []string{"KB", "MB", "GB"}

// FormatBytes formats a byte count using binary units.
func FormatBytes(bytes int) string {
	if bytes < 1024 {
		return fmt.Sprintf("%d B", bytes)
	}
	value := float64(bytes) / 1024
	unit := 0
	for value >= 1024 && unit < len(byteUnits)-1 {
		value /= 1024
		unit++
	}
	return fmt.Sprintf("%.1f %s", value, byteUnits[unit])
}
