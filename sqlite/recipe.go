package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/locrecipe"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ locrecipe.RecipeService = (*RecipeService)(nil)

const recipeColumns = `id, source_url, canonical_url, host, site_name, language,
	title, category, author, description, image,
	total_time, cook_time, prep_time, yields,
	ingredients, ingredient_groups, instructions, instructions_list, nutrients, equipment,
	ratings, ratings_count, cuisine, cooking_method, keywords, dietary_restrictions,
	content_hash, scraped_at`

// RecipeService implements locrecipe.RecipeService using SQLite.
type RecipeService struct {
	db *DB
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(db *DB) *RecipeService {
	return &RecipeService{db: db}
}

// CreateRecipe stores recipe. A recipe scraped again from the same source
// URL replaces the stored one and keeps its ID.
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *locrecipe.Recipe) error {
	if err := recipe.Validate(); err != nil {
		return err
	}

	if recipe.ScrapedAt.IsZero() {
		recipe.ScrapedAt = time.Now().UTC()
	}
	if recipe.ContentHash == "" {
		recipe.ContentHash = hashContent(recipe.Title, strings.Join(recipe.Ingredients, "\n"), recipe.Instructions)
	}

	args, err := recipeArgs(recipe)
	if err != nil {
		return err
	}

	var id string
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO recipes (`+recipeColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(source_url) DO UPDATE SET
			canonical_url = excluded.canonical_url,
			host = excluded.host,
			site_name = excluded.site_name,
			language = excluded.language,
			title = excluded.title,
			category = excluded.category,
			author = excluded.author,
			description = excluded.description,
			image = excluded.image,
			total_time = excluded.total_time,
			cook_time = excluded.cook_time,
			prep_time = excluded.prep_time,
			yields = excluded.yields,
			ingredients = excluded.ingredients,
			ingredient_groups = excluded.ingredient_groups,
			instructions = excluded.instructions,
			instructions_list = excluded.instructions_list,
			nutrients = excluded.nutrients,
			equipment = excluded.equipment,
			ratings = excluded.ratings,
			ratings_count = excluded.ratings_count,
			cuisine = excluded.cuisine,
			cooking_method = excluded.cooking_method,
			keywords = excluded.keywords,
			dietary_restrictions = excluded.dietary_restrictions,
			content_hash = excluded.content_hash,
			scraped_at = excluded.scraped_at
		RETURNING id
	`, append([]any{uuid.New().String()}, args...)...).Scan(&id)
	if err != nil {
		return err
	}

	recipe.ID = id
	return nil
}

// recipeArgs returns the column values of recipe after id, in recipeColumns order.
func recipeArgs(r *locrecipe.Recipe) ([]any, error) {
	lists := []struct {
		name  string
		value any
	}{
		{"ingredients", nonNil(r.Ingredients)},
		{"ingredient_groups", nonNil(r.IngredientGroups)},
		{"instructions_list", nonNil(r.InstructionsList)},
		{"nutrients", nonNilMap(r.Nutrients)},
		{"equipment", nonNil(r.Equipment)},
		{"keywords", nonNil(r.Keywords)},
		{"dietary_restrictions", nonNil(r.DietaryRestrictions)},
	}
	encoded := make(map[string]string, len(lists))
	for _, l := range lists {
		v, err := encodeJSON(l.value, l.name)
		if err != nil {
			return nil, err
		}
		encoded[l.name] = v
	}

	return []any{
		r.SourceURL, r.CanonicalURL, r.Host, r.SiteName, r.Language,
		r.Title, r.Category, r.Author, r.Description, r.Image,
		nullInt(r.TotalTime), nullInt(r.CookTime), nullInt(r.PrepTime), r.Yields,
		encoded["ingredients"], encoded["ingredient_groups"], r.Instructions,
		encoded["instructions_list"], encoded["nutrients"], encoded["equipment"],
		nullFloat(r.Ratings), nullInt(r.RatingsCount), r.Cuisine, r.CookingMethod,
		encoded["keywords"], encoded["dietary_restrictions"],
		r.ContentHash, r.ScrapedAt.UTC().Format(time.RFC3339),
	}, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func nonNilMap(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}

// FindRecipeByID retrieves a recipe by ID.
func (s *RecipeService) FindRecipeByID(ctx context.Context, id string) (*locrecipe.Recipe, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+recipeColumns+` FROM recipes WHERE id = ?`, id)
	recipe, err := scanRecipe(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, locrecipe.Errorf(locrecipe.ENOTFOUND, "recipe not found")
	}
	if err != nil {
		return nil, err
	}
	return recipe, nil
}

// FindRecipes retrieves recipes matching the filter, most recently scraped first.
func (s *RecipeService) FindRecipes(ctx context.Context, filter locrecipe.RecipeFilter) ([]*locrecipe.Recipe, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + recipeColumns + " FROM recipes WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Host != nil {
		query.WriteString(" AND host = ?")
		args = append(args, *filter.Host)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY scraped_at DESC, title ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipes []*locrecipe.Recipe
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}

	return recipes, rows.Err()
}

// DeleteRecipe permanently removes a recipe.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM recipes WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return locrecipe.Errorf(locrecipe.ENOTFOUND, "recipe not found")
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecipe(row rowScanner) (*locrecipe.Recipe, error) {
	var r locrecipe.Recipe
	var (
		totalTime, cookTime, prepTime, ratingsCount sql.NullInt64
		ratings                                     sql.NullFloat64
		ingredients, groups, steps, nutrients       string
		equipment, keywords, diets, scrapedAt       string
	)

	err := row.Scan(
		&r.ID, &r.SourceURL, &r.CanonicalURL, &r.Host, &r.SiteName, &r.Language,
		&r.Title, &r.Category, &r.Author, &r.Description, &r.Image,
		&totalTime, &cookTime, &prepTime, &r.Yields,
		&ingredients, &groups, &r.Instructions, &steps, &nutrients, &equipment,
		&ratings, &ratingsCount, &r.Cuisine, &r.CookingMethod, &keywords, &diets,
		&r.ContentHash, &scrapedAt,
	)
	if err != nil {
		return nil, err
	}

	r.TotalTime = intPtr(totalTime)
	r.CookTime = intPtr(cookTime)
	r.PrepTime = intPtr(prepTime)
	r.Ratings = floatPtr(ratings)
	r.RatingsCount = intPtr(ratingsCount)

	columns := []struct {
		name  string
		value string
		dst   any
	}{
		{"ingredients", ingredients, &r.Ingredients},
		{"ingredient_groups", groups, &r.IngredientGroups},
		{"instructions_list", steps, &r.InstructionsList},
		{"nutrients", nutrients, &r.Nutrients},
		{"equipment", equipment, &r.Equipment},
		{"keywords", keywords, &r.Keywords},
		{"dietary_restrictions", diets, &r.DietaryRestrictions},
	}
	for _, c := range columns {
		if err := decodeJSON(c.value, c.name, c.dst); err != nil {
			return nil, err
		}
	}

	if r.ScrapedAt, err = parseRFC3339(scrapedAt, "scraped_at"); err != nil {
		return nil, err
	}

	return &r, nil
}
