package locrecipe

import (
	"context"
	"time"
)

// Recipe is the flattened result of scraping a single page.
type Recipe struct {
	ID           string `json:"id,omitempty"`
	SourceURL    string `json:"sourceUrl"`
	CanonicalURL string `json:"canonicalUrl,omitempty"`
	Host         string `json:"host"`
	SiteName     string `json:"siteName,omitempty"`
	Language     string `json:"language,omitempty"`

	Title       string `json:"title"`
	Category    string `json:"category,omitempty"`
	Author      string `json:"author,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`

	TotalTime *int   `json:"totalTime,omitempty"`
	CookTime  *int   `json:"cookTime,omitempty"`
	PrepTime  *int   `json:"prepTime,omitempty"`
	Yields    string `json:"yields,omitempty"`

	Ingredients      []string          `json:"ingredients"`
	IngredientGroups []IngredientGroup `json:"ingredientGroups,omitempty"`
	Instructions     string            `json:"instructions"`
	InstructionsList []string          `json:"instructionsList,omitempty"`
	Nutrients        map[string]string `json:"nutrients,omitempty"`
	Equipment        []string          `json:"equipment,omitempty"`

	Ratings      *float64 `json:"ratings,omitempty"`
	RatingsCount *int     `json:"ratingsCount,omitempty"`

	Cuisine             string   `json:"cuisine,omitempty"`
	CookingMethod       string   `json:"cookingMethod,omitempty"`
	Keywords            []string `json:"keywords,omitempty"`
	DietaryRestrictions []string `json:"dietaryRestrictions,omitempty"`

	// Hash of the page markup the recipe was scraped from.
	ContentHash string    `json:"contentHash,omitempty"`
	ScrapedAt   time.Time `json:"scrapedAt,omitempty"`
}

// IngredientGroup is a named subset of a recipe's ingredients,
// e.g. "For the dough". Purpose is empty for the default group.
type IngredientGroup struct {
	Purpose     string   `json:"purpose,omitempty"`
	Ingredients []string `json:"ingredients"`
}

// Validate returns an error if the recipe contains invalid fields.
func (r *Recipe) Validate() error {
	if r.SourceURL == "" {
		return Errorf(EINVALID, "recipe source URL required")
	}
	if r.Title == "" {
		return Errorf(EINVALID, "recipe title required")
	}
	return nil
}

// RecipeService represents a service for managing scraped recipes.
type RecipeService interface {
	// CreateRecipe stores a new recipe.
	CreateRecipe(ctx context.Context, recipe *Recipe) error

	// FindRecipeByID retrieves a recipe by ID.
	// Returns ENOTFOUND if recipe does not exist.
	FindRecipeByID(ctx context.Context, id string) (*Recipe, error)

	// FindRecipes retrieves recipes matching the filter.
	FindRecipes(ctx context.Context, filter RecipeFilter) ([]*Recipe, error)

	// DeleteRecipe permanently removes a recipe.
	// Returns ENOTFOUND if recipe does not exist.
	DeleteRecipe(ctx context.Context, id string) error
}

// RecipeFilter represents a filter for FindRecipes.
type RecipeFilter struct {
	ID        *string `json:"id"`
	Host      *string `json:"host"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RecipeStore persists recipes to storage with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type RecipeStore interface {
	Save(ctx context.Context, recipe *Recipe) error
	Commit() error
	Abort() error
}
