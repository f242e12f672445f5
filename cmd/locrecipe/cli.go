package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/locrecipe"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Fetcher  locrecipe.Fetcher
	Registry locrecipe.ScraperRegistry
	Sitemaps locrecipe.SitemapService

	// Recipes is nil for commands that do not use the database.
	Recipes locrecipe.RecipeService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB        string        `env:"LOCRECIPE_DB" default:"${db}" help:"SQLite database path"`
	Verbose   bool          `short:"v" env:"LOCRECIPE_VERBOSE" help:"Log every fetch, extraction and store operation"`
	Timeout   time.Duration `short:"t" env:"LOCRECIPE_TIMEOUT" default:"10s" help:"Fetch timeout per page"`
	UserAgent string        `env:"LOCRECIPE_USER_AGENT" default:"${user_agent}" help:"User-Agent header sent with requests"`
	Wild      bool          `short:"w" help:"Use the generic scraper for websites without a dedicated one"`
	Render    bool          `short:"r" help:"Render pages in headless Chrome before scraping"`
	Metadata  string        `enum:"readability,trafilatura" default:"readability" help:"Page metadata fallback (readability, trafilatura)"`

	Scrape ScrapeCmd `cmd:"" help:"Scrape a recipe from a URL"`
	Parse  ParseCmd  `cmd:"" help:"Scrape a recipe from a saved HTML file"`
	Batch  BatchCmd  `cmd:"" help:"Scrape many recipe URLs into the database"`
	List   ListCmd   `cmd:"" help:"List stored recipes"`
	Show   ShowCmd   `cmd:"" help:"Print a stored recipe"`
	Delete DeleteCmd `cmd:"" help:"Delete a stored recipe"`
	Export ExportCmd `cmd:"" help:"Write stored recipes as markdown files"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL    string `arg:"" help:"Recipe page URL"`
	Format string `short:"f" enum:"json,markdown" default:"json" help:"Output format (json, markdown)"`
	Save   bool   `short:"s" help:"Store the recipe in the database"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	File   string `arg:"" type:"existingfile" help:"HTML file"`
	URL    string `required:"" help:"URL the page was saved from"`
	Format string `short:"f" enum:"json,markdown" default:"json" help:"Output format (json, markdown)"`
	Save   bool   `short:"s" help:"Store the recipe in the database"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	File         string   `arg:"" optional:"" help:"File with one URL per line"`
	Sitemap      string   `help:"Discover URLs from the sitemaps of this site instead of a file"`
	Include      []string `short:"i" help:"Only scrape URLs matching regex (repeatable)"`
	Exclude      []string `short:"x" help:"Skip URLs matching regex (repeatable)"`
	Concurrency  int      `short:"c" default:"4" help:"Concurrent fetch limit"`
	Rate         float64  `default:"1" help:"Requests per second per website"`
	SkipExisting bool     `help:"Skip URLs already in the database"`
	Preview      bool     `short:"p" help:"Print the URLs without scraping"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Host  string `help:"Only list recipes from this website"`
	Limit int    `short:"n" help:"Maximum number of recipes"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID     string `arg:"" help:"Recipe ID"`
	Format string `short:"f" enum:"json,markdown" default:"markdown" help:"Output format (json, markdown)"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Recipe ID"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir  string `arg:"" help:"Output directory, replaced atomically"`
	Host string `help:"Only export recipes from this website"`
}
