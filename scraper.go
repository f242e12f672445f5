package locrecipe

import "fmt"

// Scraper exposes the fields of the recipe published on a single page.
//
// Methods whose field is missing from the page return ENOTFOUND; a site
// adapter may return ENOTPROVIDED for fields the website never publishes.
// Optional fields that are legitimately empty return zero values and no error.
type Scraper interface {
	Host() string
	CanonicalURL() (string, error)
	SiteName() (string, error)
	Language() (string, error)

	Title() (string, error)
	Category() (string, error)
	Author() (string, error)
	Description() (string, error)
	Image() (string, error)

	// Times are in minutes. A nil result with no error means the page
	// declares the field but carries no usable value.
	TotalTime() (*int, error)
	CookTime() (*int, error)
	PrepTime() (*int, error)
	Yields() (string, error)

	Ingredients() ([]string, error)
	IngredientGroups() ([]IngredientGroup, error)
	Instructions() (string, error)
	InstructionsList() ([]string, error)
	Nutrients() (map[string]string, error)
	Equipment() ([]string, error)

	Ratings() (float64, error)
	RatingsCount() (*int, error)

	Cuisine() (string, error)
	CookingMethod() (string, error)
	Keywords() ([]string, error)
	DietaryRestrictions() ([]string, error)
}

// ScraperFactory builds a Scraper for a page's markup.
type ScraperFactory func(html, pageURL string) (Scraper, error)

// ScraperRegistry manages site-specific scrapers keyed by host.
type ScraperRegistry interface {
	// Get returns the factory registered for host, or nil.
	Get(host string) ScraperFactory

	// Register adds a factory for host, replacing any existing one.
	Register(host string, factory ScraperFactory)

	// List returns all registered hosts.
	List() []string

	// ScraperFor builds the scraper matching the page URL's host.
	// Returns ENOTIMPLEMENTED if no scraper handles the host.
	ScraperFor(html, pageURL string) (Scraper, error)
}

// ToRecipe reads every field of s into a Recipe. Absent fields and fields
// whose value cannot be interpreted are left empty; any other error aborts
// the conversion.
func ToRecipe(s Scraper, sourceURL string) (*Recipe, error) {
	var c collector
	var err error
	r := &Recipe{
		SourceURL: sourceURL,
		Host:      s.Host(),
	}

	r.CanonicalURL, err = s.CanonicalURL()
	c.check("canonical_url", err)
	r.SiteName, err = s.SiteName()
	c.check("site_name", err)
	r.Language, err = s.Language()
	c.check("language", err)
	r.Title, err = s.Title()
	c.check("title", err)
	r.Category, err = s.Category()
	c.check("category", err)
	r.Author, err = s.Author()
	c.check("author", err)
	r.Description, err = s.Description()
	c.check("description", err)
	r.Image, err = s.Image()
	c.check("image", err)
	r.TotalTime, err = s.TotalTime()
	c.check("total_time", err)
	r.CookTime, err = s.CookTime()
	c.check("cook_time", err)
	r.PrepTime, err = s.PrepTime()
	c.check("prep_time", err)
	r.Yields, err = s.Yields()
	c.check("yields", err)
	r.Ingredients, err = s.Ingredients()
	c.check("ingredients", err)
	r.IngredientGroups, err = s.IngredientGroups()
	c.check("ingredient_groups", err)
	r.Instructions, err = s.Instructions()
	c.check("instructions", err)
	r.InstructionsList, err = s.InstructionsList()
	c.check("instructions_list", err)
	r.Nutrients, err = s.Nutrients()
	c.check("nutrients", err)
	r.Equipment, err = s.Equipment()
	c.check("equipment", err)
	r.Cuisine, err = s.Cuisine()
	c.check("cuisine", err)
	r.CookingMethod, err = s.CookingMethod()
	c.check("cooking_method", err)
	r.Keywords, err = s.Keywords()
	c.check("keywords", err)
	r.DietaryRestrictions, err = s.DietaryRestrictions()
	c.check("dietary_restrictions", err)
	r.RatingsCount, err = s.RatingsCount()
	c.check("ratings_count", err)

	rating, err := s.Ratings()
	if c.check("ratings", err) {
		r.Ratings = &rating
	}

	if c.err != nil {
		return nil, c.err
	}
	return r, nil
}

// collector keeps the first error that is neither an absence nor an
// uninterpretable value.
type collector struct {
	err error
}

// check records err and reports whether the field produced a value.
func (c *collector) check(field string, err error) bool {
	if err == nil {
		return true
	}
	if IsAbsent(err) || ErrorCode(err) == EINVALID {
		return false
	}
	if c.err == nil {
		c.err = fmt.Errorf("%s: %w", field, err)
	}
	return false
}
