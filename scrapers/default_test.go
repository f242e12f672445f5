package scrapers_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/locrecipe"
	"github.com/fwojciec/locrecipe/mock"
	"github.com/fwojciec/locrecipe/scrapers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// page wraps a JSON-LD block and extra head/body markup into an HTML page.
func page(jsonLD, head, body string) string {
	html := `<!DOCTYPE html><html lang="en-GB"><head>` + head
	if jsonLD != "" {
		html += `<script type="application/ld+json">` + jsonLD + `</script>`
	}
	return html + `</head><body>` + body + `</body></html>`
}

const soupJSONLD = `{
	"@context": "https://schema.org",
	"@graph": [
		{"@type": "WebSite", "name": "Soup Site"},
		{"@type": "Person", "@id": "#jane", "name": "Jane"},
		{
			"@type": "Recipe",
			"name": "Tomato Soup",
			"author": {"@id": "#jane"},
			"recipeCategory": "Soup",
			"description": "Warming.",
			"image": "https://example.com/soup.jpg",
			"totalTime": "PT40M",
			"prepTime": "PT10M",
			"cookTime": "PT30M",
			"recipeYield": "4",
			"recipeIngredient": ["4 tomatoes", "1 onion"],
			"recipeInstructions": [
				{"@type": "HowToStep", "text": "Chop."},
				{"@type": "HowToStep", "text": "Simmer."}
			],
			"nutrition": {"calories": "120 kcal"},
			"aggregateRating": {"ratingValue": "4.5", "ratingCount": "10"},
			"recipeCuisine": "Italian",
			"keywords": "soup, easy"
		}
	]
}`

func intPtr(v int) *int { return &v }

func TestDefault_SchemaFields(t *testing.T) {
	t.Parallel()

	d, err := scrapers.NewDefault(scrapers.Config{}, page(soupJSONLD, `<link rel="canonical" href="/soup">`, ""), "https://www.example.com/recipes/soup?ref=1")
	require.NoError(t, err)

	assert.Equal(t, "example.com", d.Host())

	canonical, err := d.CanonicalURL()
	require.NoError(t, err)
	assert.Equal(t, "https://www.example.com/soup", canonical)

	site, err := d.SiteName()
	require.NoError(t, err)
	assert.Equal(t, "Soup Site", site)

	lang, err := d.Language()
	require.NoError(t, err)
	assert.Equal(t, "en-GB", lang)

	title, err := d.Title()
	require.NoError(t, err)
	assert.Equal(t, "Tomato Soup", title)

	author, err := d.Author()
	require.NoError(t, err)
	assert.Equal(t, "Jane", author)

	total, err := d.TotalTime()
	require.NoError(t, err)
	assert.Equal(t, intPtr(40), total)

	yields, err := d.Yields()
	require.NoError(t, err)
	assert.Equal(t, "4 servings", yields)

	groups, err := d.IngredientGroups()
	require.NoError(t, err)
	assert.Equal(t, []locrecipe.IngredientGroup{{Ingredients: []string{"4 tomatoes", "1 onion"}}}, groups)

	steps, err := d.InstructionsList()
	require.NoError(t, err)
	assert.Equal(t, []string{"Chop.", "Simmer."}, steps)

	nutrients, err := d.Nutrients()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"calories": "120 kcal"}, nutrients)

	_, err = d.Equipment()
	assert.Equal(t, locrecipe.ENOTFOUND, locrecipe.ErrorCode(err))

	keywords, err := d.Keywords()
	require.NoError(t, err)
	assert.Equal(t, []string{"soup", "easy"}, keywords)
}

func TestDefault_Fallbacks(t *testing.T) {
	t.Parallel()

	t.Run("uses page metadata when structured data is missing", func(t *testing.T) {
		t.Parallel()

		meta := &mock.MetadataExtractor{
			ExtractMetadataFn: func(_, pageURL string) (*locrecipe.PageMetadata, error) {
				assert.Equal(t, "https://example.com/soup", pageURL)
				return &locrecipe.PageMetadata{
					Title:       "Meta Title",
					SiteName:    "Meta Site",
					Image:       "https://example.com/meta.jpg",
					Description: "Meta description.",
					Author:      "Meta Author",
				}, nil
			},
		}

		d, err := scrapers.NewDefault(scrapers.Config{Metadata: meta},
			page(`{"@context":"https://schema.org","@type":"Recipe","image":"/relative.jpg"}`, "", ""),
			"https://example.com/soup")
		require.NoError(t, err)

		title, err := d.Title()
		require.NoError(t, err)
		assert.Equal(t, "Meta Title", title)

		site, err := d.SiteName()
		require.NoError(t, err)
		assert.Equal(t, "Meta Site", site)

		image, err := d.Image()
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/meta.jpg", image)

		description, err := d.Description()
		require.NoError(t, err)
		assert.Equal(t, "Meta description.", description)

		author, err := d.Author()
		require.NoError(t, err)
		assert.Equal(t, "Meta Author", author)
	})

	t.Run("uses open graph tags without a metadata extractor", func(t *testing.T) {
		t.Parallel()

		d, err := scrapers.NewDefault(scrapers.Config{},
			page("", `<meta property="og:site_name" content="OG Site"><meta property="og:image" content="https://example.com/og.jpg">`, ""),
			"https://example.com/soup")
		require.NoError(t, err)

		site, err := d.SiteName()
		require.NoError(t, err)
		assert.Equal(t, "OG Site", site)

		image, err := d.Image()
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/og.jpg", image)
	})

	t.Run("ignores metadata failures", func(t *testing.T) {
		t.Parallel()

		meta := &mock.MetadataExtractor{
			ExtractMetadataFn: func(_, _ string) (*locrecipe.PageMetadata, error) {
				return nil, errors.New("boom")
			},
		}

		d, err := scrapers.NewDefault(scrapers.Config{Metadata: meta}, page("", "", ""), "https://example.com/soup")
		require.NoError(t, err)

		_, err = d.Title()
		assert.Equal(t, locrecipe.ENOTFOUND, locrecipe.ErrorCode(err))

		_, err = d.Ingredients()
		assert.Equal(t, locrecipe.ENOTFOUND, locrecipe.ErrorCode(err))

		_, err = d.Instructions()
		assert.Equal(t, locrecipe.ENOTFOUND, locrecipe.ErrorCode(err))
	})
}

func TestDefault_InvalidURL(t *testing.T) {
	t.Parallel()

	_, err := scrapers.NewDefault(scrapers.Config{}, "<html></html>", "://bad")

	assert.Equal(t, locrecipe.EINVALID, locrecipe.ErrorCode(err))
}

func TestDefault_ToRecipe(t *testing.T) {
	t.Parallel()

	d, err := scrapers.NewDefault(scrapers.Config{}, page(soupJSONLD, "", ""), "https://example.com/soup")
	require.NoError(t, err)

	recipe, err := locrecipe.ToRecipe(d, "https://example.com/soup")

	require.NoError(t, err)
	assert.Equal(t, "Tomato Soup", recipe.Title)
	assert.Equal(t, "example.com", recipe.Host)
	assert.Equal(t, "Chop.\nSimmer.", recipe.Instructions)
	require.NotNil(t, recipe.Ratings)
	assert.InDelta(t, 4.5, *recipe.Ratings, 1e-9)
	assert.Equal(t, intPtr(10), recipe.RatingsCount)
	assert.Equal(t, "Italian", recipe.Cuisine)
	assert.Nil(t, recipe.Equipment)
	assert.NoError(t, recipe.Validate())
}

func TestDefault_ToRecipe_UnparseableDuration(t *testing.T) {
	t.Parallel()

	html := page(`{"@context":"https://schema.org","@type":"Recipe","name":"Overnight Oats",
		"cookTime":"overnight","prepTime":"PT10M",
		"recipeIngredient":["1 cup oats","1 cup milk"],
		"recipeInstructions":[{"@type":"HowToStep","text":"Mix and chill."}]}`, "", "")
	d, err := scrapers.NewDefault(scrapers.Config{}, html, "https://example.com/oats")
	require.NoError(t, err)

	_, err = d.CookTime()
	require.Equal(t, locrecipe.EINVALID, locrecipe.ErrorCode(err))

	recipe, err := locrecipe.ToRecipe(d, "https://example.com/oats")

	require.NoError(t, err)
	assert.Nil(t, recipe.CookTime)
	assert.Equal(t, intPtr(10), recipe.PrepTime)
	assert.Equal(t, intPtr(10), recipe.TotalTime)
	assert.Equal(t, "Overnight Oats", recipe.Title)
	assert.Equal(t, []string{"1 cup oats", "1 cup milk"}, recipe.Ingredients)
	assert.Equal(t, "Mix and chill.", recipe.Instructions)
}
