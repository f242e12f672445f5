package scrapers

import (
	"github.com/fwojciec/locrecipe"
	"github.com/fwojciec/locrecipe/goquery"
)

var _ locrecipe.Scraper = (*JoyFoodSunshine)(nil)

// JoyFoodSunshine uses WP Recipe Maker for ingredients and equipment.
type JoyFoodSunshine struct {
	*Default
}

func (s *JoyFoodSunshine) Host() string { return "joyfoodsunshine.com" }

func (s *JoyFoodSunshine) Ingredients() ([]string, error) {
	ingredients := goquery.TextAll(s.doc, "li.wprm-recipe-ingredient")
	if len(ingredients) == 0 {
		return s.Default.Ingredients()
	}
	return ingredients, nil
}

func (s *JoyFoodSunshine) IngredientGroups() ([]locrecipe.IngredientGroup, error) {
	return singleGroup(s.Ingredients())
}

func (s *JoyFoodSunshine) Equipment() ([]string, error) {
	return WPRMEquipment(s.doc)
}
