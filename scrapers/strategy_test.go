package scrapers_test

import (
	"testing"

	"github.com/fwojciec/locrecipe"
	"github.com/fwojciec/locrecipe/goquery"
	"github.com/fwojciec/locrecipe/scrapers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEquipment(t *testing.T) {
	t.Parallel()

	got := scrapers.Equipment([]string{"Pot", "", "Knife", "Pot"})

	assert.Equal(t, []string{"Pot", "Knife"}, got)
}

func TestWPRMEquipment(t *testing.T) {
	t.Parallel()

	t.Run("reads equipment names", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewDocument(`
<div class="wprm-recipe-equipment-name">Dutch oven*</div>
<div class="wprm-recipe-equipment-name"> Ladle </div>
<div class="wprm-recipe-equipment-name">Dutch oven</div>`)
		require.NoError(t, err)

		got, err := scrapers.WPRMEquipment(doc)

		require.NoError(t, err)
		assert.Equal(t, []string{"Dutch oven", "Ladle"}, got)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewDocument(`<div></div>`)
		require.NoError(t, err)

		_, err = scrapers.WPRMEquipment(doc)

		assert.Equal(t, locrecipe.ENOTFOUND, locrecipe.ErrorCode(err))
	})
}

func TestGroupIngredients(t *testing.T) {
	t.Parallel()

	t.Run("groups by heading and matches structured ingredients", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewDocument(`
<h3>For the dough</h3>
<ul><li class="i">2 cups  flour</li><li class="i">1 tsp yeast</li></ul>
<h3>For the topping</h3>
<ul><li class="i">Cheese, grated</li></ul>`)
		require.NoError(t, err)

		ingredients := []string{"2 cups flour", "1 tsp yeast", "1 cup cheese (grated)"}

		got := scrapers.GroupIngredients(ingredients, doc, "h3", "li.i")

		assert.Equal(t, []locrecipe.IngredientGroup{
			{Purpose: "For the dough", Ingredients: []string{"2 cups flour", "1 tsp yeast"}},
			{Purpose: "For the topping", Ingredients: []string{"1 cup cheese (grated)"}},
		}, got)
	})

	t.Run("items before the first heading form an unnamed group", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewDocument(`
<ul><li class="i">salt</li></ul>
<h3>Sauce</h3>
<ul><li class="i">tomatoes</li></ul>`)
		require.NoError(t, err)

		got := scrapers.GroupIngredients([]string{"salt", "tomatoes"}, doc, "h3", "li.i")

		assert.Equal(t, []locrecipe.IngredientGroup{
			{Ingredients: []string{"salt"}},
			{Purpose: "Sauce", Ingredients: []string{"tomatoes"}},
		}, got)
	})

	t.Run("falls back to a single group without headings", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewDocument(`<ul><li class="i">salt</li></ul>`)
		require.NoError(t, err)

		got := scrapers.GroupIngredients([]string{"salt"}, doc, "h3", "li.i")

		assert.Equal(t, []locrecipe.IngredientGroup{{Ingredients: []string{"salt"}}}, got)
	})

	t.Run("falls back to a single group when counts differ", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewDocument(`<h3>A</h3><ul><li class="i">salt</li></ul>`)
		require.NoError(t, err)

		got := scrapers.GroupIngredients([]string{"salt", "pepper"}, doc, "h3", "li.i")

		assert.Equal(t, []locrecipe.IngredientGroup{{Ingredients: []string{"salt", "pepper"}}}, got)
	})
}
