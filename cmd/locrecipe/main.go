package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/locrecipe"
	"github.com/fwojciec/locrecipe/goquery"
	lrhttp "github.com/fwojciec/locrecipe/http"
	"github.com/fwojciec/locrecipe/readability"
	"github.com/fwojciec/locrecipe/rod"
	"github.com/fwojciec/locrecipe/scrapers"
	locslog "github.com/fwojciec/locrecipe/slog"
	"github.com/fwojciec/locrecipe/sqlite"
	"github.com/fwojciec/locrecipe/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Default database path, overridden by --db or LOCRECIPE_DB.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Recipes replaces the SQLite service when set, for end-to-end testing.
	Recipes locrecipe.RecipeService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("locrecipe"),
		kong.Description("Scrape recipes from web pages using their schema.org structured data"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{
			"db":         m.DBPath,
			"user_agent": lrhttp.DefaultUserAgent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'locrecipe --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	extractor := goquery.NewExtractor(goquery.Config{
		LogErrors: cli.Verbose,
		Logger:    logger,
	})
	cfg := scrapers.Config{
		Extractor: locslog.NewLoggingExtractor(extractor, logger),
		Metadata:  metadataExtractor(cli.Metadata),
	}
	var opts []scrapers.RegistryOption
	if cli.Wild {
		opts = append(opts, scrapers.WithWildMode())
	}
	deps.Registry = locslog.NewLoggingRegistry(scrapers.NewRegistry(cfg, opts...), logger)

	var fetcher locrecipe.Fetcher = lrhttp.NewFetcher(
		lrhttp.WithTimeout(cli.Timeout),
		lrhttp.WithUserAgent(cli.UserAgent),
	)
	if cli.Render && needsFetcher(kongCtx.Command()) {
		if fetcher, err = rod.NewFetcher(); err != nil {
			return fmt.Errorf("failed to start browser: %w", err)
		}
	}
	deps.Fetcher = locslog.NewLoggingFetcher(fetcher, logger)
	defer deps.Fetcher.Close()

	sitemaps := lrhttp.NewSitemapService(&http.Client{Timeout: cli.Timeout}, cli.UserAgent)
	deps.Sitemaps = locslog.NewLoggingSitemapService(sitemaps, logger)

	if m.Recipes == nil && needsDB(kongCtx.Command(), cli) {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set LOCRECIPE_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()
		m.Recipes = sqlite.NewRecipeService(m.DB)
	}
	if m.Recipes != nil {
		deps.Recipes = locslog.NewLoggingRecipeService(m.Recipes, logger)
	}

	return kongCtx.Run(deps)
}

// needsDB reports whether the parsed command reads or writes stored recipes.
func needsDB(command string, cli *CLI) bool {
	name, _, _ := strings.Cut(command, " ")
	switch name {
	case "batch":
		return !cli.Batch.Preview
	case "scrape":
		return cli.Scrape.Save
	case "parse":
		return cli.Parse.Save
	case "list", "show", "delete", "export":
		return true
	}
	return false
}

// needsFetcher reports whether the parsed command downloads pages.
func needsFetcher(command string) bool {
	name, _, _ := strings.Cut(command, " ")
	return name == "scrape" || name == "batch"
}

// metadataExtractor returns the page metadata fallback named by the
// --metadata flag.
func metadataExtractor(name string) locrecipe.MetadataExtractor {
	if name == "trafilatura" {
		return trafilatura.NewExtractor()
	}
	return readability.NewExtractor()
}

// newLogger logs warnings to w, or everything when verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "locrecipe.db"
	}
	dir := filepath.Join(home, ".locrecipe")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "locrecipe.db")
}
