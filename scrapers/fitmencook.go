package scrapers

import (
	"strings"

	"github.com/fwojciec/locrecipe"
	"github.com/fwojciec/locrecipe/goquery"
)

var _ locrecipe.Scraper = (*FitMenCook)(nil)

// FitMenCook publishes servings in an h4 and ingredients in a custom list
// where bold entries are subheadings.
type FitMenCook struct {
	*Default
}

func (s *FitMenCook) Host() string { return "fitmencook.com" }

// Yields uses the last number found in any h4.
func (s *FitMenCook) Yields() (string, error) {
	servings := ""
	s.doc.Find("h4").Each(func(_ int, sel *goquery.Selection) {
		for _, word := range strings.Fields(sel.Text()) {
			if isDigits(word) {
				servings = word
			}
		}
	})
	if servings == "" {
		return "", locrecipe.Errorf(locrecipe.ENOTFOUND, "servings not found")
	}
	return s.text.Yields(servings + " servings")
}

func (s *FitMenCook) Ingredients() ([]string, error) {
	if s.doc.Find("div.fmc_ingredients").Length() == 0 {
		return nil, locrecipe.Errorf(locrecipe.ENOTFOUND, "ingredients container not found")
	}
	return goquery.TextAll(s.doc, "div.fmc_ingredients li:not(:has(strong))"), nil
}

func (s *FitMenCook) IngredientGroups() ([]locrecipe.IngredientGroup, error) {
	return singleGroup(s.Ingredients())
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
