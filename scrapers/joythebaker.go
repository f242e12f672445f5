package scrapers

import (
	"github.com/fwojciec/locrecipe"
	"github.com/fwojciec/locrecipe/goquery"
)

var _ locrecipe.Scraper = (*JoyTheBaker)(nil)

// JoyTheBaker uses the Tasty Recipes plugin.
type JoyTheBaker struct {
	*Default
}

func (s *JoyTheBaker) Host() string { return "joythebaker.com" }

// TotalTime reads the plugin's total time. A page without it reports no
// value rather than an error.
func (s *JoyTheBaker) TotalTime() (*int, error) {
	raw, err := goquery.Text(s.doc, "span.tasty-recipes-total-time")
	if err != nil {
		return nil, nil
	}
	minutes, err := s.text.Minutes(raw)
	if err != nil {
		return nil, nil
	}
	return &minutes, nil
}

func (s *JoyTheBaker) IngredientGroups() ([]locrecipe.IngredientGroup, error) {
	ingredients, err := s.Ingredients()
	if err != nil {
		return nil, err
	}
	return GroupIngredients(ingredients, s.doc,
		".tasty-recipes-ingredients-body p",
		".tasty-recipes-ingredients-body ul li",
	), nil
}
