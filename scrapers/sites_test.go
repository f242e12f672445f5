package scrapers_test

import (
	"testing"

	"github.com/fwojciec/locrecipe"
	"github.com/fwojciec/locrecipe/scrapers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scrape builds the registered scraper for html served at pageURL.
func scrape(t *testing.T, html, pageURL string) locrecipe.Scraper {
	t.Helper()
	s, err := scrapers.NewRegistry(scrapers.Config{}).ScraperFor(html, pageURL)
	require.NoError(t, err)
	return s
}

func TestAmazingRibs(t *testing.T) {
	t.Parallel()

	s := scrape(t, page("", "", `
<div class="wprm-recipe-equipment-name">Smoker</div>
<div class="wprm-recipe-equipment-name">Chimney starter</div>`), "https://amazingribs.com/ribs")

	got, err := s.Equipment()

	require.NoError(t, err)
	assert.Equal(t, []string{"Chimney starter", "Smoker"}, got)
}

func TestAnitasTableTalk(t *testing.T) {
	t.Parallel()

	s := scrape(t, page(`{"@context":"https://schema.org","@type":"Recipe","totalTime":"PT5M","recipeYield":"2"}`, "", ""),
		"https://anitastabletalk.com/cake")

	_, err := s.TotalTime()
	assert.Equal(t, locrecipe.ENOTPROVIDED, locrecipe.ErrorCode(err))

	_, err = s.Yields()
	assert.Equal(t, locrecipe.ENOTPROVIDED, locrecipe.ErrorCode(err))

	recipe, err := locrecipe.ToRecipe(s, "https://anitastabletalk.com/cake")
	require.NoError(t, err)
	assert.Nil(t, recipe.TotalTime)
}

func TestChefkoch(t *testing.T) {
	t.Parallel()

	t.Run("reads rendered steps", func(t *testing.T) {
		t.Parallel()

		s := scrape(t, page(`{"@context":"https://schema.org","@type":"Recipe","recipeInstructions":"All at once."}`, "", `
<span class="instruction__text" data-testid="recipe-instruction"> Kartoffeln schälen. </span>
<span class="instruction__text" data-testid="recipe-instruction">Kochen.</span>`), "https://www.chefkoch.de/rezepte/1")

		got, err := s.Instructions()
		require.NoError(t, err)
		assert.Equal(t, "Kartoffeln schälen.\nKochen.", got)

		list, err := s.InstructionsList()
		require.NoError(t, err)
		assert.Equal(t, []string{"Kartoffeln schälen.", "Kochen."}, list)
	})

	t.Run("falls back to structured data", func(t *testing.T) {
		t.Parallel()

		s := scrape(t, page(`{"@context":"https://schema.org","@type":"Recipe","recipeInstructions":"All at once."}`, "", ""),
			"https://www.chefkoch.de/rezepte/1")

		got, err := s.Instructions()
		require.NoError(t, err)
		assert.Equal(t, "All at once.", got)
	})
}

func TestChefnini(t *testing.T) {
	t.Parallel()

	s := scrape(t, page(`{"@context":"https://schema.org","@type":"Recipe","recipeIngredient":["200 g farine","2 oeufs","sucre glace"]}`, "", `
<h3 itemprop="recipeYield">4 personnes</h3>
<h3>Pâte</h3>
<ul><li itemprop="ingredients">200 g farine</li><li itemprop="ingredients">2 oeufs</li></ul>
<h3>Déco</h3>
<ul><li itemprop="ingredients">sucre glace</li></ul>`), "https://www.chefnini.com/tarte")

	got, err := s.IngredientGroups()

	require.NoError(t, err)
	assert.Equal(t, []locrecipe.IngredientGroup{
		{Purpose: "Pâte", Ingredients: []string{"200 g farine", "2 oeufs"}},
		{Purpose: "Déco", Ingredients: []string{"sucre glace"}},
	}, got)
}

func TestFitMenCook(t *testing.T) {
	t.Parallel()

	s := scrape(t, page("", "", `
<h4>Servings: 3</h4>
<div class="fmc_ingredients"><ul>
	<li><strong>Chicken</strong></li>
	<li>8 oz chicken breast</li>
	<li>1 cup rice</li>
</ul></div>`), "https://fitmencook.com/bowl")

	yields, err := s.Yields()
	require.NoError(t, err)
	assert.Equal(t, "3 servings", yields)

	ingredients, err := s.Ingredients()
	require.NoError(t, err)
	assert.Equal(t, []string{"8 oz chicken breast", "1 cup rice"}, ingredients)

	groups, err := s.IngredientGroups()
	require.NoError(t, err)
	assert.Equal(t, []locrecipe.IngredientGroup{{Ingredients: ingredients}}, groups)
}

func TestJoyFoodSunshine(t *testing.T) {
	t.Parallel()

	s := scrape(t, page("", "", `
<ul><li class="wprm-recipe-ingredient">1 cup  butter</li><li class="wprm-recipe-ingredient">2 eggs</li></ul>
<div class="wprm-recipe-equipment-name">Mixer</div>`), "https://joyfoodsunshine.com/cookies")

	ingredients, err := s.Ingredients()
	require.NoError(t, err)
	assert.Equal(t, []string{"1 cup butter", "2 eggs"}, ingredients)

	equipment, err := s.Equipment()
	require.NoError(t, err)
	assert.Equal(t, []string{"Mixer"}, equipment)
}

func TestJoyTheBaker(t *testing.T) {
	t.Parallel()

	t.Run("reads total time and groups", func(t *testing.T) {
		t.Parallel()

		s := scrape(t, page(`{"@context":"https://schema.org","@type":"Recipe","recipeIngredient":["1 cup flour","1 cup sugar"]}`, "", `
<span class="tasty-recipes-total-time">1 hour 15 minutes</span>
<div class="tasty-recipes-ingredients-body">
	<p>Cake</p><ul><li>1 cup flour</li></ul>
	<p>Frosting</p><ul><li>1 cup sugar</li></ul>
</div>`), "https://joythebaker.com/cake")

		total, err := s.TotalTime()
		require.NoError(t, err)
		assert.Equal(t, intPtr(75), total)

		groups, err := s.IngredientGroups()
		require.NoError(t, err)
		assert.Equal(t, []locrecipe.IngredientGroup{
			{Purpose: "Cake", Ingredients: []string{"1 cup flour"}},
			{Purpose: "Frosting", Ingredients: []string{"1 cup sugar"}},
		}, groups)
	})

	t.Run("missing total time is nothing", func(t *testing.T) {
		t.Parallel()

		s := scrape(t, page("", "", ""), "https://joythebaker.com/cake")

		total, err := s.TotalTime()
		require.NoError(t, err)
		assert.Nil(t, total)
	})
}

func TestKingArthur(t *testing.T) {
	t.Parallel()

	s := scrape(t, page(`{"@context":"https://schema.org","@type":"Recipe",
		"recipeInstructions":[{"@type":"HowToStep","text":"<p>Weigh the flour.</p><p>Mix the dough.</p>"}]}`, "", ""),
		"https://www.kingarthurbaking.com/recipes/bread")

	got, err := s.InstructionsList()

	require.NoError(t, err)
	assert.Equal(t, []string{"Weigh the flour.", "Mix the dough."}, got)
}

func TestReceitasNestleBR(t *testing.T) {
	t.Parallel()

	s := scrape(t, page(`{"@context":"https://schema.org","@type":"Recipe",
		"recipeInstructions":[{"@type":"HowToSection","name":"Modo de Preparo","itemListElement":[{"@type":"HowToStep","text":"Misture tudo."}]}]}`, "",
		`<div class="recipeDetail__infoItem--time">45 min</div>`), "https://www.receitasnestle.com.br/receitas/bolo")

	total, err := s.TotalTime()
	require.NoError(t, err)
	assert.Equal(t, intPtr(45), total)

	instructions, err := s.Instructions()
	require.NoError(t, err)
	assert.Equal(t, "Misture tudo.", instructions)
}

func TestUSAPears(t *testing.T) {
	t.Parallel()

	html := page("", `<meta name="twitter:label1" content="Written by"><meta name="twitter:data1" content="Pear Bureau">`, `
<div><div class="recipe-legend">Prep Time</div><div class="recipe-value-data">10 minutes</div></div>
<div><div class="recipe-legend">Cook Time</div><div class="recipe-value-data">20 minutes</div></div>
<ul>
	<li itemprop="ingredients"><strong>Salad</strong></li>
	<li itemprop="ingredients">2 pears</li>
	<li itemprop="ingredients">1 cup greens</li>
</ul>
<ul itemprop="nutrition">
	<li itemprop="calories"><strong>Calories: </strong>150</li>
	<li itemprop="protein"><strong>Protein: </strong>2 g</li>
</ul>
<p class="comment-rating"><img src="/img/5-star.svg"></p>
<p class="comment-rating"><img src="/img/4-star.svg"></p>`)

	s := scrape(t, html, "https://usapears.org/recipe/salad")

	author, err := s.Author()
	require.NoError(t, err)
	assert.Equal(t, "Pear Bureau", author)

	total, err := s.TotalTime()
	require.NoError(t, err)
	assert.Equal(t, intPtr(30), total)

	ingredients, err := s.Ingredients()
	require.NoError(t, err)
	assert.Equal(t, []string{"2 pears", "1 cup greens"}, ingredients)

	groups, err := s.IngredientGroups()
	require.NoError(t, err)
	assert.Equal(t, []locrecipe.IngredientGroup{
		{Purpose: "Salad", Ingredients: []string{"2 pears", "1 cup greens"}},
	}, groups)

	nutrients, err := s.Nutrients()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"calories": "150", "proteinContent": "2 g"}, nutrients)

	rating, err := s.Ratings()
	require.NoError(t, err)
	assert.InDelta(t, 4.5, rating, 1e-9)
}
