package scrapers

import (
	"math"
	"regexp"
	"strconv"

	"github.com/fwojciec/locrecipe"
	"github.com/fwojciec/locrecipe/goquery"
)

var _ locrecipe.Scraper = (*USAPears)(nil)

var starRatingRe = regexp.MustCompile(`(\d+)-star\.svg`)

// Misspelled nutrient properties published by usapears.org.
var usaPearsNutrientNames = map[string]string{
	"carbohydrates": "carbohydrateContent",
	"protein":       "proteinContent",
	"fat":           "fatContent",
}

const (
	usaPearsIngredientSel = `li[itemprop="ingredients"]:not(:has(strong))`
	usaPearsHeadingSel    = `li[itemprop="ingredients"] strong`
)

// USAPears keeps most of its recipe in legacy microdata-like markup.
type USAPears struct {
	*Default
}

func (s *USAPears) Host() string { return "usapears.org" }

// Author falls back to the Twitter card's "Written by" label.
func (s *USAPears) Author() (string, error) {
	if author := s.schema.Author(); author != "" {
		return author, nil
	}
	if goquery.Meta(s.doc, "twitter:label1") == "Written by" {
		if author := goquery.Meta(s.doc, "twitter:data1"); author != "" {
			return author, nil
		}
	}
	return "", locrecipe.Errorf(locrecipe.ENOTFOUND, "author not found")
}

// legendTime returns the minutes shown next to the recipe legend labelled
// label, or zero when the page has no such legend.
func (s *USAPears) legendTime(label string) (int, error) {
	var value *goquery.Selection
	s.doc.Find("div.recipe-legend").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if sel.Text() != label {
			return true
		}
		value = sel.Parent().Find("div.recipe-value-data").First()
		return false
	})
	if value == nil || value.Length() == 0 {
		return 0, nil
	}
	return s.text.Minutes(value.Text())
}

func (s *USAPears) PrepTime() (*int, error) {
	minutes, err := s.legendTime("Prep Time")
	if err != nil {
		return nil, err
	}
	return &minutes, nil
}

func (s *USAPears) CookTime() (*int, error) {
	minutes, err := s.legendTime("Cook Time")
	if err != nil {
		return nil, err
	}
	return &minutes, nil
}

func (s *USAPears) TotalTime() (*int, error) {
	prep, err := s.PrepTime()
	if err != nil {
		return nil, err
	}
	cook, err := s.CookTime()
	if err != nil {
		return nil, err
	}
	total := *prep + *cook
	return &total, nil
}

func (s *USAPears) Ingredients() ([]string, error) {
	ingredients := goquery.TextAll(s.doc, usaPearsIngredientSel)
	if len(ingredients) == 0 {
		return nil, locrecipe.Errorf(locrecipe.ENOTFOUND, "ingredients not found")
	}
	return ingredients, nil
}

func (s *USAPears) IngredientGroups() ([]locrecipe.IngredientGroup, error) {
	ingredients, err := s.Ingredients()
	if err != nil {
		return nil, err
	}
	return GroupIngredients(ingredients, s.doc, usaPearsHeadingSel, usaPearsIngredientSel), nil
}

// Nutrients reads the nutrition list, dropping the bold label that repeats
// each property name.
func (s *USAPears) Nutrients() (map[string]string, error) {
	container := s.doc.Find(`ul[itemprop="nutrition"]`).First()
	if container.Length() == 0 {
		return nil, locrecipe.Errorf(locrecipe.ENOTFOUND, "nutrition container not found")
	}

	nutrients := make(map[string]string)
	container.Find("li[itemprop]").Each(func(_ int, sel *goquery.Selection) {
		name := sel.AttrOr("itemprop", "")
		if corrected, ok := usaPearsNutrientNames[name]; ok {
			name = corrected
		}
		item := sel.Clone()
		item.Find("strong").Remove()
		nutrients[name] = s.text.Normalize(item.Text())
	})
	return nutrients, nil
}

// Ratings averages the star images of the page's comments.
func (s *USAPears) Ratings() (float64, error) {
	comments := s.doc.Find("p.comment-rating")
	if comments.Length() == 0 {
		return 0, locrecipe.Errorf(locrecipe.ENOTFOUND, "ratings not found")
	}

	total := 0
	comments.Each(func(_ int, sel *goquery.Selection) {
		src := sel.Find("img[src]").First().AttrOr("src", "")
		if m := starRatingRe.FindStringSubmatch(src); m != nil {
			stars, _ := strconv.Atoi(m[1])
			total += stars
		}
	})
	return math.Round(float64(total)/float64(comments.Length())*100) / 100, nil
}
