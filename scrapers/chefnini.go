package scrapers

import "github.com/fwojciec/locrecipe"

var _ locrecipe.Scraper = (*Chefnini)(nil)

// Chefnini groups ingredients under h3 headings.
type Chefnini struct {
	*Default
}

func (s *Chefnini) Host() string { return "chefnini.com" }

func (s *Chefnini) IngredientGroups() ([]locrecipe.IngredientGroup, error) {
	ingredients, err := s.Ingredients()
	if err != nil {
		return nil, err
	}
	return GroupIngredients(ingredients, s.doc,
		"h3:not([itemprop='recipeYield'])",
		"ul li[itemprop='ingredients']",
	), nil
}
