package text

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/fwojciec/locrecipe"
)

var (
	yieldNumberRe = regexp.MustCompile(`\d+`)
	yieldRangeRe  = regexp.MustCompile(`(?i)\d+\s*(?:-|–|to)\s*(\d+)`)
	yieldItemsRe  = regexp.MustCompile(`(?i)\b(?:sandwiches|tacquitos|makes|cups|appetizer|porzioni)\b`)
)

// yieldType is a countable yield noun in singular and plural form.
type yieldType struct {
	singular string
	plural   string
}

var yieldTypes = []yieldType{
	{"dozen", "dozen"},
	{"batch", "batches"},
	{"cake", "cakes"},
	{"sandwich", "sandwiches"},
	{"bun", "buns"},
	{"cookie", "cookies"},
	{"muffin", "muffins"},
	{"cupcake", "cupcakes"},
	{"loaf", "loaves"},
	{"pie", "pies"},
	{"cup", "cups"},
	{"pint", "pints"},
	{"can", "cans"},
	{"serving", "servings"},
	{"slice", "slices"},
	{"item", "items"},
	{"portion", "portions"},
	{"pizza", "pizzas"},
	{"roll", "rolls"},
	{"bar", "bars"},
	{"piece", "pieces"},
	{"jar", "jars"},
	{"ball", "balls"},
	{"tart", "tarts"},
	{"taco", "tacos"},
	{"skewer", "skewers"},
	{"pancake", "pancakes"},
}

// Yields parses a yield description into "<count> <noun>", for example
// "Makes 12 cookies" becomes "12 cookies" and "4-6" becomes "6 servings".
func (p *Processor) Yields(s string) (string, error) {
	s = Normalize(s)
	if s == "" {
		return "", locrecipe.Errorf(locrecipe.EINVALID, "cannot extract yield information from empty string")
	}

	if m := yieldRangeRe.FindStringSubmatchIndex(s); m != nil {
		s = s[m[2]:]
	}

	count := 0
	if n := yieldNumberRe.FindString(s); n != "" {
		count, _ = strconv.Atoi(n)
	}

	lower := strings.ToLower(s)
	var best *yieldType
	for i := range yieldTypes {
		t := &yieldTypes[i]
		if (hasWordPrefix(lower, t.singular) || hasWordPrefix(lower, t.plural)) && (best == nil || len(t.singular) > len(best.singular)) {
			best = t
		}
	}
	if best != nil {
		if count == 1 {
			return fmt.Sprintf("%d %s", count, best.singular), nil
		}
		return fmt.Sprintf("%d %s", count, best.plural), nil
	}

	if yieldItemsRe.MatchString(s) {
		return fmt.Sprintf("%d %s", count, plural(count, "item")), nil
	}
	return fmt.Sprintf("%d %s", count, plural(count, "serving")), nil
}

// hasWordPrefix reports whether word starts a word somewhere in s,
// so "can" matches "2 cans" but not "pecan".
func hasWordPrefix(s, word string) bool {
	for i := 0; ; {
		j := strings.Index(s[i:], word)
		if j < 0 {
			return false
		}
		j += i
		if j == 0 || !isLetter(s[j-1]) {
			return true
		}
		i = j + 1
	}
}

func isLetter(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 0x80
}

func plural(n int, noun string) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}
