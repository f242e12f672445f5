package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/locrecipe"
	"github.com/fwojciec/locrecipe/crawl"
	"github.com/fwojciec/locrecipe/fs"
	"github.com/goccy/go-json"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to fetch %s: %s\n", c.URL, locrecipe.ErrorMessage(err))
		return err
	}
	return scrapeAndWrite(deps, html, c.URL, c.Format, c.Save)
}

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	html, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.File, err)
	}
	return scrapeAndWrite(deps, string(html), c.URL, c.Format, c.Save)
}

// scrapeAndWrite converts html into a recipe, optionally stores it and
// prints it in the requested format.
func scrapeAndWrite(deps *Dependencies, html, pageURL, format string, save bool) error {
	scraper, err := deps.Registry.ScraperFor(html, pageURL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locrecipe.ErrorMessage(err))
		return err
	}

	recipe, err := locrecipe.ToRecipe(scraper, pageURL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locrecipe.ErrorMessage(err))
		return err
	}
	recipe.ContentHash = crawl.ComputeHash(html)

	if save {
		if err := deps.Recipes.CreateRecipe(deps.Ctx, recipe); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", locrecipe.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "Saved recipe %s\n", recipe.ID)
	}

	return writeRecipe(deps.Stdout, recipe, format)
}

// writeRecipe prints recipe as indented JSON or markdown.
func writeRecipe(w io.Writer, recipe *locrecipe.Recipe, format string) error {
	switch format {
	case "markdown":
		out, err := fs.FormatRecipe(recipe)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	default:
		out, err := json.MarshalIndent(recipe, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode recipe: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", out)
		return err
	}
}
