package schemaorg

import (
	"math"
	"strings"

	"github.com/fwojciec/locrecipe"
)

// SiteName returns the name of the page's WebSite entity.
func (s *SchemaOrg) SiteName() (string, error) {
	if s.websiteName == "" {
		return "", locrecipe.Errorf(locrecipe.ENOTFOUND, "site name not found in SchemaOrg")
	}
	return s.text.Normalize(s.websiteName), nil
}

// Language returns inLanguage, falling back to language.
func (s *SchemaOrg) Language() string {
	if v := s.data["inLanguage"]; truthy(v) {
		return stringify(first(v))
	}
	return stringify(first(s.data["language"]))
}

// Title returns the normalized recipe name, empty if absent.
func (s *SchemaOrg) Title() string {
	return s.text.Normalize(stringify(first(s.data["name"])))
}

// Category returns recipeCategory, comma-joined if it is a list.
func (s *SchemaOrg) Category() string {
	return join(s.data["recipeCategory"], ",")
}

// Author returns the trimmed name of the recipe's author, empty if absent.
// An author given by reference is resolved through the Person index.
func (s *SchemaOrg) Author() string {
	author := s.data["author"]
	if !truthy(author) {
		author = s.data["Author"]
	}

	if list, ok := author.([]any); ok && len(list) > 0 {
		switch list[0].(type) {
		case locrecipe.Node, map[string]any, string:
			author = list[0]
		}
	}

	if node, ok := locrecipe.AsNode(author); ok {
		key := node.ID()
		if key == "" {
			key = node.String("url")
		}
		if person, ok := s.people[key]; ok && key != "" {
			node = person
		}
		author = first(node["name"])
	}

	name, _ := author.(string)
	return strings.TrimSpace(name)
}

// readDuration parses a duration field. It returns nil when the field holds
// no usable value. Besides text, a QuantitativeValue-style object carrying
// maxValue is accepted, since some publishers encode durations that way.
func (s *SchemaOrg) readDuration(key string) (*int, error) {
	var raw string
	switch v := s.data[key].(type) {
	case string:
		raw = v
	case locrecipe.Node, map[string]any:
		node, _ := locrecipe.AsNode(v)
		if !truthy(node["maxValue"]) {
			return nil, nil
		}
		raw = stringify(node["maxValue"])
	default:
		return nil, nil
	}

	minutes, err := s.text.Minutes(raw)
	if err != nil {
		return nil, err
	}
	return &minutes, nil
}

// TotalTime returns totalTime in minutes, or prepTime plus cookTime when
// totalTime is absent or zero. Unparseable parts count as zero.
func (s *SchemaOrg) TotalTime() (*int, error) {
	if !s.data.Has("totalTime") && !s.data.Has("prepTime") && !s.data.Has("cookTime") {
		return nil, locrecipe.Errorf(locrecipe.ENOTFOUND, "cooking time information not found in SchemaOrg")
	}

	if total, err := s.readDuration("totalTime"); err == nil && total != nil && *total != 0 {
		return total, nil
	}

	sum := 0
	if prep, err := s.readDuration("prepTime"); err == nil && prep != nil {
		sum += *prep
	}
	if cook, err := s.readDuration("cookTime"); err == nil && cook != nil {
		sum += *cook
	}
	if sum == 0 {
		return nil, nil
	}
	return &sum, nil
}

// CookTime returns cookTime in minutes.
func (s *SchemaOrg) CookTime() (*int, error) {
	if !s.data.Has("cookTime") {
		return nil, locrecipe.Errorf(locrecipe.ENOTFOUND, "cooktime information not found in SchemaOrg")
	}
	return s.readDuration("cookTime")
}

// PrepTime returns prepTime in minutes.
func (s *SchemaOrg) PrepTime() (*int, error) {
	if !s.data.Has("prepTime") {
		return nil, locrecipe.Errorf(locrecipe.ENOTFOUND, "preptime information not found in SchemaOrg")
	}
	return s.readDuration("prepTime")
}

// Yields returns the parsed recipeYield (or yield), first element if a list.
func (s *SchemaOrg) Yields() (string, error) {
	if !s.data.Has("recipeYield") && !s.data.Has("yield") {
		return "", locrecipe.Errorf(locrecipe.ENOTFOUND, "servings information not found in SchemaOrg")
	}

	v := s.data["recipeYield"]
	if !truthy(v) {
		v = s.data["yield"]
	}
	v = first(v)
	if !truthy(v) {
		return "", nil
	}
	return s.text.Yields(stringify(v))
}

// Image returns the absolute URL of the recipe image. A relative URL yields
// an empty string so that callers fall back to generic image discovery.
func (s *SchemaOrg) Image() (string, error) {
	image, ok := present(s.data, "image")
	if !ok {
		return "", locrecipe.Errorf(locrecipe.ENOTFOUND, "image not found in SchemaOrg")
	}

	image = first(image)
	if node, ok := locrecipe.AsNode(image); ok {
		image = first(node["url"])
	}

	url, _ := image.(string)
	if !strings.Contains(url, "http://") && !strings.Contains(url, "https://") {
		return "", nil
	}
	return url, nil
}

// Ingredients returns the normalized recipeIngredient (or ingredients) list.
func (s *SchemaOrg) Ingredients() []string {
	v := s.data["recipeIngredient"]
	if !truthy(v) {
		v = s.data["ingredients"]
	}

	var items []any
	switch v := v.(type) {
	case string:
		items = []any{v}
	case []any:
		items = v
		if len(v) > 0 {
			if _, nested := v[0].([]any); nested {
				items = flatten(v)
			}
		}
	}

	ingredients := make([]string, 0, len(items))
	for _, item := range items {
		if !truthy(item) {
			continue
		}
		if ingredient := s.text.Normalize(stringify(item)); ingredient != "" {
			ingredients = append(ingredients, ingredient)
		}
	}
	return ingredients
}

// Nutrients returns the nutrition object with keyword keys (@type, ...)
// and empty values removed.
func (s *SchemaOrg) Nutrients() map[string]string {
	nutrients := make(map[string]string)
	nutrition, ok := locrecipe.AsNode(first(s.data["nutrition"]))
	if !ok {
		return nutrients
	}
	for key, val := range nutrition {
		if key == "" || strings.HasPrefix(key, "@") || !truthy(val) {
			continue
		}
		nutrients[s.text.Normalize(key)] = s.text.Normalize(stringify(val))
	}
	return nutrients
}

// rating returns the aggregate rating of the recipe, resolved through the
// rating index when it is a reference.
func (s *SchemaOrg) rating() any {
	v := first(s.data["aggregateRating"])
	if !truthy(v) {
		entity, ok := s.data.FindEntity("AggregateRating")
		if !ok {
			return nil
		}
		v = entity
	}

	if node, ok := locrecipe.AsNode(v); ok {
		if indexed, ok := s.ratings[node.ID()]; ok && node.ID() != "" {
			return indexed
		}
		return node
	}
	return v
}

// Ratings returns ratingValue rounded to two decimals.
func (s *SchemaOrg) Ratings() (float64, error) {
	v := s.rating()
	if node, ok := locrecipe.AsNode(v); ok {
		v = node["ratingValue"]
	}
	if !truthy(v) {
		return 0, locrecipe.Errorf(locrecipe.ENOTFOUND, "no ratingValue in SchemaOrg")
	}
	f, ok := toFloat(v)
	if !ok {
		return 0, locrecipe.Errorf(locrecipe.ENOTFOUND, "invalid ratingValue %q in SchemaOrg", stringify(v))
	}
	return math.Round(f*100) / 100, nil
}

// RatingsCount returns ratingCount, falling back to reviewCount.
// A count of zero is reported as nil without an error.
func (s *SchemaOrg) RatingsCount() (*int, error) {
	v := s.rating()
	if node, ok := locrecipe.AsNode(v); ok {
		v = node["ratingCount"]
		if !truthy(v) {
			if count, ok := present(node, "reviewCount"); ok {
				v = count
			}
		}
	}
	if v == nil || v == "" {
		return nil, locrecipe.Errorf(locrecipe.ENOTFOUND, "no ratingCount in SchemaOrg")
	}
	f, ok := toFloat(v)
	if !ok {
		return nil, locrecipe.Errorf(locrecipe.ENOTFOUND, "invalid ratingCount %q in SchemaOrg", stringify(v))
	}
	if f == 0 {
		return nil, nil
	}
	count := int(f)
	return &count, nil
}

// Cuisine returns recipeCuisine, comma-joined if it is a list.
func (s *SchemaOrg) Cuisine() (string, error) {
	v, ok := present(s.data, "recipeCuisine")
	if !ok {
		return "", locrecipe.Errorf(locrecipe.ENOTFOUND, "no cuisine data in SchemaOrg")
	}
	return join(v, ","), nil
}

// Description returns the normalized description.
func (s *SchemaOrg) Description() (string, error) {
	v, ok := present(s.data, "description")
	if !ok {
		return "", locrecipe.Errorf(locrecipe.ENOTFOUND, "no description data in SchemaOrg")
	}
	return s.text.Normalize(stringify(first(v))), nil
}

// CookingMethod returns the normalized cookingMethod.
func (s *SchemaOrg) CookingMethod() (string, error) {
	v, ok := present(s.data, "cookingMethod")
	if !ok {
		return "", locrecipe.Errorf(locrecipe.ENOTFOUND, "no cooking method data in SchemaOrg")
	}
	return s.text.Normalize(stringify(first(v))), nil
}

// Keywords returns the recipe keywords as distinct tags.
func (s *SchemaOrg) Keywords() ([]string, error) {
	v, ok := present(s.data, "keywords")
	if !ok {
		return nil, locrecipe.Errorf(locrecipe.ENOTFOUND, "no keywords data in SchemaOrg")
	}
	return s.text.Tags(s.text.Normalize(join(v, ", "))), nil
}

// DietaryRestrictions returns the display names of suitableForDiet.
func (s *SchemaOrg) DietaryRestrictions() ([]string, error) {
	v, ok := present(s.data, "suitableForDiet")
	if !ok {
		return nil, locrecipe.Errorf(locrecipe.ENOTFOUND, "no dietary restrictions data in SchemaOrg")
	}

	diets, ok := v.([]any)
	if !ok {
		diets = []any{v}
	}
	names := make([]string, 0, len(diets))
	for _, diet := range diets {
		names = append(names, s.text.DietName(stringify(diet)))
	}
	return s.text.Tags(strings.Join(names, ", ")), nil
}

// flatten expands nested lists by one level.
func flatten(list []any) []any {
	var out []any
	for _, el := range list {
		if nested, ok := el.([]any); ok {
			out = append(out, nested...)
			continue
		}
		out = append(out, el)
	}
	return out
}
