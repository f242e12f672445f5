package scrapers

import (
	"strings"

	"github.com/fwojciec/locrecipe"
	"github.com/fwojciec/locrecipe/goquery"
	"github.com/fwojciec/locrecipe/text"
)

// Equipment removes duplicates and empty entries, keeping first occurrences
// in order.
func Equipment(items []string) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, item := range items {
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}

// WPRMEquipment reads the equipment list rendered by the WP Recipe Maker
// plugin.
func WPRMEquipment(doc *goquery.Document) ([]string, error) {
	var items []string
	doc.Find("div.wprm-recipe-equipment-name").Each(func(_ int, sel *goquery.Selection) {
		item := strings.TrimSpace(strings.TrimRight(text.Normalize(sel.Text()), "*"))
		if item != "" {
			items = append(items, item)
		}
	})
	if len(items) == 0 {
		return nil, locrecipe.Errorf(locrecipe.ENOTFOUND, "equipment not found")
	}
	return Equipment(items), nil
}

// GroupIngredients assigns ingredients to the headings they appear under in
// the page markup. headingSel matches group headings and itemSel matches
// ingredient elements; each element is mapped back to the closest entry of
// ingredients so that group contents match the structured data.
//
// Pages without headings, or whose markup lists a different number of
// ingredients, yield a single unnamed group.
func GroupIngredients(ingredients []string, doc *goquery.Document, headingSel, itemSel string) []locrecipe.IngredientGroup {
	fallback := []locrecipe.IngredientGroup{{Ingredients: ingredients}}
	if doc.Find(headingSel).Length() == 0 || doc.Find(itemSel).Length() != len(ingredients) {
		return fallback
	}

	var groups []locrecipe.IngredientGroup
	index := make(map[string]int)
	heading := ""
	doc.Find(headingSel + ", " + itemSel).Each(func(_ int, sel *goquery.Selection) {
		if sel.Is(headingSel) {
			heading = text.Normalize(sel.Text())
			return
		}
		i, ok := index[heading]
		if !ok {
			i = len(groups)
			index[heading] = i
			groups = append(groups, locrecipe.IngredientGroup{Purpose: heading})
		}
		groups[i].Ingredients = append(groups[i].Ingredients, bestMatch(text.Normalize(sel.Text()), ingredients))
	})
	if len(groups) == 0 {
		return fallback
	}
	return groups
}

// bestMatch returns the candidate most similar to s, or s itself when
// nothing shares a bigram with it.
func bestMatch(s string, candidates []string) string {
	best, bestScore := s, 0.0
	for _, c := range candidates {
		if c == s {
			return c
		}
		if score := similarity(s, c); score > bestScore {
			best, bestScore = c, score
		}
	}
	return best
}

// similarity is the Dice coefficient of the character bigrams of a and b,
// ignoring case and spaces.
func similarity(a, b string) float64 {
	x, y := bigrams(a), bigrams(b)
	if len(x) == 0 || len(y) == 0 {
		return 0
	}
	counts := make(map[string]int, len(x))
	for _, g := range x {
		counts[g]++
	}
	shared := 0
	for _, g := range y {
		if counts[g] > 0 {
			counts[g]--
			shared++
		}
	}
	return 2 * float64(shared) / float64(len(x)+len(y))
}

func bigrams(s string) []string {
	r := []rune(strings.ToLower(strings.ReplaceAll(s, " ", "")))
	if len(r) < 2 {
		return nil
	}
	out := make([]string, 0, len(r)-1)
	for i := 0; i < len(r)-1; i++ {
		out = append(out, string(r[i:i+2]))
	}
	return out
}
