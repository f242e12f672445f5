package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/locrecipe"
	"github.com/fwojciec/locrecipe/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	filter := locrecipe.RecipeFilter{}
	if c.Host != "" {
		filter.Host = &c.Host
	}

	recipes, err := deps.Recipes.FindRecipes(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locrecipe.ErrorMessage(err))
		return err
	}

	dir := filepath.Clean(c.Dir)
	store := fs.NewFileStore(filepath.Dir(dir), filepath.Base(dir))
	if err := exportRecipes(deps, store, recipes); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locrecipe.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d recipes to %s\n", len(recipes), dir)
	return nil
}

// exportRecipes saves every recipe to store and commits, aborting on failure.
func exportRecipes(deps *Dependencies, store locrecipe.RecipeStore, recipes []*locrecipe.Recipe) error {
	for _, r := range recipes {
		if err := store.Save(deps.Ctx, r); err != nil {
			_ = store.Abort()
			return err
		}
	}
	return store.Commit()
}
