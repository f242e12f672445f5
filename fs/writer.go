// Package fs provides file-based storage for scraped recipes.
package fs

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/fwojciec/locrecipe"
	"gopkg.in/yaml.v3"
)

// RecipePath returns the relative path a recipe is written to:
// <host>/<slug>.md, where slug is derived from the source URL path and
// falls back to the title for root URLs.
//
// Example: https://www.chefkoch.de/rezepte/1/Suppe.html → chefkoch.de/rezepte-1-suppe.md
func RecipePath(recipe *locrecipe.Recipe) (string, error) {
	u, err := url.Parse(recipe.SourceURL)
	if err != nil {
		return "", locrecipe.Errorf(locrecipe.EINVALID, "invalid source URL %q", recipe.SourceURL)
	}

	host := recipe.Host
	if host == "" {
		host = strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	}
	host = slugify(host, ".")
	if host == "" || strings.Trim(host, ".") == "" {
		return "", locrecipe.Errorf(locrecipe.EINVALID, "recipe host required for %q", recipe.SourceURL)
	}

	path := strings.TrimSuffix(u.Path, "/")
	if i := strings.LastIndex(path, "."); i > strings.LastIndex(path, "/") {
		path = path[:i]
	}
	slug := slugify(path, "")
	if slug == "" {
		slug = slugify(recipe.Title, "")
	}
	if slug == "" {
		slug = "index"
	}

	return host + "/" + slug + ".md", nil
}

// slugify lowercases s and replaces every run of characters that are not
// letters, digits or listed in keep with a single dash.
func slugify(s, keep string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune(keep, r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
			continue
		}
		dash = true
	}
	return b.String()
}

type frontmatter struct {
	Title               string            `yaml:"title"`
	Source              string            `yaml:"source"`
	Canonical           string            `yaml:"canonical,omitempty"`
	Site                string            `yaml:"site,omitempty"`
	Language            string            `yaml:"language,omitempty"`
	Author              string            `yaml:"author,omitempty"`
	Category            string            `yaml:"category,omitempty"`
	Cuisine             string            `yaml:"cuisine,omitempty"`
	CookingMethod       string            `yaml:"cooking_method,omitempty"`
	Image               string            `yaml:"image,omitempty"`
	Yields              string            `yaml:"yields,omitempty"`
	TotalTime           *int              `yaml:"total_time,omitempty"`
	PrepTime            *int              `yaml:"prep_time,omitempty"`
	CookTime            *int              `yaml:"cook_time,omitempty"`
	Ratings             *float64          `yaml:"ratings,omitempty"`
	RatingsCount        *int              `yaml:"ratings_count,omitempty"`
	Keywords            []string          `yaml:"keywords,omitempty"`
	DietaryRestrictions []string          `yaml:"dietary_restrictions,omitempty"`
	Nutrients           map[string]string `yaml:"nutrients,omitempty"`
	Scraped             string            `yaml:"scraped,omitempty"`
}

// FormatRecipe formats a recipe as markdown with YAML frontmatter.
func FormatRecipe(recipe *locrecipe.Recipe) (string, error) {
	fm := frontmatter{
		Title:               recipe.Title,
		Source:              recipe.SourceURL,
		Canonical:           recipe.CanonicalURL,
		Site:                recipe.SiteName,
		Language:            recipe.Language,
		Author:              recipe.Author,
		Category:            recipe.Category,
		Cuisine:             recipe.Cuisine,
		CookingMethod:       recipe.CookingMethod,
		Image:               recipe.Image,
		Yields:              recipe.Yields,
		TotalTime:           recipe.TotalTime,
		PrepTime:            recipe.PrepTime,
		CookTime:            recipe.CookTime,
		Ratings:             recipe.Ratings,
		RatingsCount:        recipe.RatingsCount,
		Keywords:            recipe.Keywords,
		DietaryRestrictions: recipe.DietaryRestrictions,
		Nutrients:           recipe.Nutrients,
	}
	if !recipe.ScrapedAt.IsZero() {
		fm.Scraped = recipe.ScrapedAt.Format("2006-01-02")
	}

	head, err := yaml.Marshal(&fm)
	if err != nil {
		return "", fmt.Errorf("failed to encode frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(head)
	b.WriteString("---\n\n# ")
	b.WriteString(recipe.Title)
	b.WriteString("\n")

	if recipe.Description != "" {
		b.WriteString("\n")
		b.WriteString(recipe.Description)
		b.WriteString("\n")
	}

	writeIngredients(&b, recipe)

	steps := recipe.InstructionsList
	if len(steps) == 0 && recipe.Instructions != "" {
		steps = strings.Split(recipe.Instructions, "\n")
	}
	if len(steps) > 0 {
		b.WriteString("\n## Instructions\n\n")
		for i, step := range steps {
			fmt.Fprintf(&b, "%d. %s\n", i+1, step)
		}
	}

	if len(recipe.Equipment) > 0 {
		b.WriteString("\n## Equipment\n\n")
		writeList(&b, recipe.Equipment)
	}

	return b.String(), nil
}

func writeIngredients(b *strings.Builder, recipe *locrecipe.Recipe) {
	if len(recipe.Ingredients) == 0 {
		return
	}
	b.WriteString("\n## Ingredients\n\n")

	groups := recipe.IngredientGroups
	if len(groups) <= 1 {
		writeList(b, recipe.Ingredients)
		return
	}
	for i, g := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		if g.Purpose != "" {
			b.WriteString("### ")
			b.WriteString(g.Purpose)
			b.WriteString("\n\n")
		}
		writeList(b, g.Ingredients)
	}
}

func writeList(b *strings.Builder, items []string) {
	for _, item := range items {
		b.WriteString("- ")
		b.WriteString(item)
		b.WriteString("\n")
	}
}
