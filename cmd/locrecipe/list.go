package main

import (
	"fmt"

	"github.com/fwojciec/locrecipe"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := locrecipe.RecipeFilter{Limit: c.Limit}
	if c.Host != "" {
		filter.Host = &c.Host
	}

	recipes, err := deps.Recipes.FindRecipes(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locrecipe.ErrorMessage(err))
		return err
	}

	if len(recipes) == 0 {
		fmt.Fprintln(deps.Stdout, "No recipes found. Use 'locrecipe batch' or 'locrecipe scrape --save' to add some.")
		return nil
	}

	for _, r := range recipes {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", r.ID, r.Title, r.SourceURL)
	}
	return nil
}

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	recipe, err := deps.Recipes.FindRecipeByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locrecipe.ErrorMessage(err))
		return err
	}
	return writeRecipe(deps.Stdout, recipe, c.Format)
}

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Recipes.DeleteRecipe(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locrecipe.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Deleted recipe %s\n", c.ID)
	return nil
}
