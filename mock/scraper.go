package mock

import "github.com/fwojciec/locrecipe"

var _ locrecipe.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of locrecipe.Scraper.
// Unset functions report their field as not found.
type Scraper struct {
	HostFn                func() string
	CanonicalURLFn        func() (string, error)
	SiteNameFn            func() (string, error)
	LanguageFn            func() (string, error)
	TitleFn               func() (string, error)
	CategoryFn            func() (string, error)
	AuthorFn              func() (string, error)
	DescriptionFn         func() (string, error)
	ImageFn               func() (string, error)
	TotalTimeFn           func() (*int, error)
	CookTimeFn            func() (*int, error)
	PrepTimeFn            func() (*int, error)
	YieldsFn              func() (string, error)
	IngredientsFn         func() ([]string, error)
	IngredientGroupsFn    func() ([]locrecipe.IngredientGroup, error)
	InstructionsFn        func() (string, error)
	InstructionsListFn    func() ([]string, error)
	NutrientsFn           func() (map[string]string, error)
	EquipmentFn           func() ([]string, error)
	RatingsFn             func() (float64, error)
	RatingsCountFn        func() (*int, error)
	CuisineFn             func() (string, error)
	CookingMethodFn       func() (string, error)
	KeywordsFn            func() ([]string, error)
	DietaryRestrictionsFn func() ([]string, error)
}

func (s *Scraper) Host() string {
	if s.HostFn == nil {
		return ""
	}
	return s.HostFn()
}

func (s *Scraper) CanonicalURL() (string, error) {
	if s.CanonicalURLFn == nil {
		return "", notFound("CanonicalURL")
	}
	return s.CanonicalURLFn()
}

func (s *Scraper) SiteName() (string, error) {
	if s.SiteNameFn == nil {
		return "", notFound("SiteName")
	}
	return s.SiteNameFn()
}

func (s *Scraper) Language() (string, error) {
	if s.LanguageFn == nil {
		return "", notFound("Language")
	}
	return s.LanguageFn()
}

func (s *Scraper) Title() (string, error) {
	if s.TitleFn == nil {
		return "", notFound("Title")
	}
	return s.TitleFn()
}

func (s *Scraper) Category() (string, error) {
	if s.CategoryFn == nil {
		return "", notFound("Category")
	}
	return s.CategoryFn()
}

func (s *Scraper) Author() (string, error) {
	if s.AuthorFn == nil {
		return "", notFound("Author")
	}
	return s.AuthorFn()
}

func (s *Scraper) Description() (string, error) {
	if s.DescriptionFn == nil {
		return "", notFound("Description")
	}
	return s.DescriptionFn()
}

func (s *Scraper) Image() (string, error) {
	if s.ImageFn == nil {
		return "", notFound("Image")
	}
	return s.ImageFn()
}

func (s *Scraper) TotalTime() (*int, error) {
	if s.TotalTimeFn == nil {
		return nil, notFound("TotalTime")
	}
	return s.TotalTimeFn()
}

func (s *Scraper) CookTime() (*int, error) {
	if s.CookTimeFn == nil {
		return nil, notFound("CookTime")
	}
	return s.CookTimeFn()
}

func (s *Scraper) PrepTime() (*int, error) {
	if s.PrepTimeFn == nil {
		return nil, notFound("PrepTime")
	}
	return s.PrepTimeFn()
}

func (s *Scraper) Yields() (string, error) {
	if s.YieldsFn == nil {
		return "", notFound("Yields")
	}
	return s.YieldsFn()
}

func (s *Scraper) Ingredients() ([]string, error) {
	if s.IngredientsFn == nil {
		return nil, notFound("Ingredients")
	}
	return s.IngredientsFn()
}

func (s *Scraper) IngredientGroups() ([]locrecipe.IngredientGroup, error) {
	if s.IngredientGroupsFn == nil {
		return nil, notFound("IngredientGroups")
	}
	return s.IngredientGroupsFn()
}

func (s *Scraper) Instructions() (string, error) {
	if s.InstructionsFn == nil {
		return "", notFound("Instructions")
	}
	return s.InstructionsFn()
}

func (s *Scraper) InstructionsList() ([]string, error) {
	if s.InstructionsListFn == nil {
		return nil, notFound("InstructionsList")
	}
	return s.InstructionsListFn()
}

func (s *Scraper) Nutrients() (map[string]string, error) {
	if s.NutrientsFn == nil {
		return nil, notFound("Nutrients")
	}
	return s.NutrientsFn()
}

func (s *Scraper) Equipment() ([]string, error) {
	if s.EquipmentFn == nil {
		return nil, notFound("Equipment")
	}
	return s.EquipmentFn()
}

func (s *Scraper) Ratings() (float64, error) {
	if s.RatingsFn == nil {
		return 0, notFound("Ratings")
	}
	return s.RatingsFn()
}

func (s *Scraper) RatingsCount() (*int, error) {
	if s.RatingsCountFn == nil {
		return nil, notFound("RatingsCount")
	}
	return s.RatingsCountFn()
}

func (s *Scraper) Cuisine() (string, error) {
	if s.CuisineFn == nil {
		return "", notFound("Cuisine")
	}
	return s.CuisineFn()
}

func (s *Scraper) CookingMethod() (string, error) {
	if s.CookingMethodFn == nil {
		return "", notFound("CookingMethod")
	}
	return s.CookingMethodFn()
}

func (s *Scraper) Keywords() ([]string, error) {
	if s.KeywordsFn == nil {
		return nil, notFound("Keywords")
	}
	return s.KeywordsFn()
}

func (s *Scraper) DietaryRestrictions() ([]string, error) {
	if s.DietaryRestrictionsFn == nil {
		return nil, notFound("DietaryRestrictions")
	}
	return s.DietaryRestrictionsFn()
}

func notFound(field string) error {
	return locrecipe.Errorf(locrecipe.ENOTFOUND, "%s not set", field)
}
