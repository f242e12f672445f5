// Package scrapers implements locrecipe.Scraper on top of the schema.org
// model, with site adapters for publishers whose structured data is
// missing or wrong.
//
// Every adapter embeds *Default and overrides only the fields it fixes.
// Reusable behavior, such as reading WP Recipe Maker equipment or grouping
// ingredients under their headings, lives in standalone strategy functions
// that adapters call explicitly.
package scrapers

import (
	"net/url"
	"strings"
	"sync"

	"github.com/fwojciec/locrecipe"
	"github.com/fwojciec/locrecipe/goquery"
	"github.com/fwojciec/locrecipe/schemaorg"
	"github.com/fwojciec/locrecipe/text"
)

var _ locrecipe.Scraper = (*Default)(nil)

// Config holds the collaborators shared by every scraper.
type Config struct {
	// Extractor reads the page's structured data.
	// Defaults to a goquery extractor for all syntaxes.
	Extractor locrecipe.StructuredDataExtractor

	// Metadata provides generic fallbacks such as the page title.
	// Optional; without it fields missing from structured data stay missing.
	Metadata locrecipe.MetadataExtractor

	// Text normalizes and parses values. Defaults to text.NewProcessor().
	Text locrecipe.TextProcessor
}

func (c Config) withDefaults() Config {
	if c.Extractor == nil {
		c.Extractor = goquery.NewExtractor(goquery.Config{})
	}
	if c.Text == nil {
		c.Text = text.NewProcessor()
	}
	return c
}

// Default reads every field from the page's schema.org Recipe, falling back
// to generic page metadata for descriptive fields.
type Default struct {
	html    string
	pageURL string
	host    string

	schema *schemaorg.SchemaOrg
	doc    *goquery.Document
	text   locrecipe.TextProcessor

	metadata     locrecipe.MetadataExtractor
	metadataOnce sync.Once
	meta         locrecipe.PageMetadata
}

// NewDefault parses html and builds its schema.org model.
func NewDefault(cfg Config, html, pageURL string) (*Default, error) {
	cfg = cfg.withDefaults()

	host, err := hostOf(pageURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocument(html)
	if err != nil {
		return nil, err
	}

	schema, err := schemaorg.NewFromHTML(html, cfg.Extractor, schemaorg.WithTextProcessor(cfg.Text))
	if err != nil {
		return nil, err
	}

	return &Default{
		html:     html,
		pageURL:  pageURL,
		host:     host,
		schema:   schema,
		doc:      doc,
		text:     cfg.Text,
		metadata: cfg.Metadata,
	}, nil
}

// Schema returns the page's schema.org model.
func (d *Default) Schema() *schemaorg.SchemaOrg {
	return d.schema
}

// pageMeta runs the metadata extractor once, on first use. A failure leaves
// the metadata empty, which only disables the fallbacks.
func (d *Default) pageMeta() locrecipe.PageMetadata {
	d.metadataOnce.Do(func() {
		if d.metadata == nil {
			return
		}
		if meta, err := d.metadata.ExtractMetadata(d.html, d.pageURL); err == nil && meta != nil {
			d.meta = *meta
		}
	})
	return d.meta
}

// Host returns the page host without a leading "www.".
func (d *Default) Host() string {
	return d.host
}

// CanonicalURL returns the canonical link or og:url, else the page URL.
func (d *Default) CanonicalURL() (string, error) {
	return goquery.CanonicalURL(d.doc, d.pageURL), nil
}

// SiteName prefers the WebSite entity name, then page metadata,
// then og:site_name.
func (d *Default) SiteName() (string, error) {
	name, err := d.schema.SiteName()
	if err == nil {
		return name, nil
	}
	if name := d.pageMeta().SiteName; name != "" {
		return name, nil
	}
	if name := goquery.Meta(d.doc, "og:site_name"); name != "" {
		return d.text.Normalize(name), nil
	}
	return "", err
}

// Language prefers the recipe's inLanguage, then the document's lang
// attribute, then detected metadata.
func (d *Default) Language() (string, error) {
	if lang := d.schema.Language(); lang != "" {
		return lang, nil
	}
	if lang := strings.TrimSpace(d.doc.Find("html").AttrOr("lang", "")); lang != "" {
		return lang, nil
	}
	if lang := d.pageMeta().Language; lang != "" {
		return lang, nil
	}
	return "", locrecipe.Errorf(locrecipe.ENOTFOUND, "language not found")
}

// Title prefers the recipe name, then the page metadata title.
func (d *Default) Title() (string, error) {
	if title := d.schema.Title(); title != "" {
		return title, nil
	}
	if title := d.pageMeta().Title; title != "" {
		return title, nil
	}
	return "", locrecipe.Errorf(locrecipe.ENOTFOUND, "title not found")
}

// Category returns the recipeCategory.
func (d *Default) Category() (string, error) {
	if category := d.schema.Category(); category != "" {
		return category, nil
	}
	return "", locrecipe.Errorf(locrecipe.ENOTFOUND, "category not found")
}

// Author prefers the recipe author, then the page byline.
func (d *Default) Author() (string, error) {
	if author := d.schema.Author(); author != "" {
		return author, nil
	}
	if author := d.pageMeta().Author; author != "" {
		return author, nil
	}
	return "", locrecipe.Errorf(locrecipe.ENOTFOUND, "author not found")
}

// Description prefers the recipe description, then page metadata.
func (d *Default) Description() (string, error) {
	description, err := d.schema.Description()
	if err == nil {
		return description, nil
	}
	if description := d.pageMeta().Description; description != "" {
		return description, nil
	}
	return "", err
}

// Image falls back to metadata when the schema image is missing or
// relative.
func (d *Default) Image() (string, error) {
	image, err := d.schema.Image()
	if err == nil && image != "" {
		return image, nil
	}
	if image := d.pageMeta().Image; image != "" {
		return image, nil
	}
	if image := goquery.Meta(d.doc, "og:image"); strings.HasPrefix(image, "http") {
		return image, nil
	}
	if err != nil {
		return "", err
	}
	return "", locrecipe.Errorf(locrecipe.ENOTFOUND, "image not found")
}

// Time fields are read from structured data only.
func (d *Default) TotalTime() (*int, error) { return d.schema.TotalTime() }
func (d *Default) CookTime() (*int, error)  { return d.schema.CookTime() }
func (d *Default) PrepTime() (*int, error)  { return d.schema.PrepTime() }
func (d *Default) Yields() (string, error)  { return d.schema.Yields() }

// Ingredients returns the recipeIngredient list.
func (d *Default) Ingredients() ([]string, error) {
	ingredients := d.schema.Ingredients()
	if len(ingredients) == 0 {
		return nil, locrecipe.Errorf(locrecipe.ENOTFOUND, "ingredients not found")
	}
	return ingredients, nil
}

// IngredientGroups returns all ingredients in a single unnamed group.
func (d *Default) IngredientGroups() ([]locrecipe.IngredientGroup, error) {
	return singleGroup(d.Ingredients())
}

// Instructions returns the steps separated by newlines.
func (d *Default) Instructions() (string, error) {
	instructions := d.schema.Instructions()
	if instructions == "" {
		return "", locrecipe.Errorf(locrecipe.ENOTFOUND, "instructions not found")
	}
	return instructions, nil
}

// InstructionsList returns one entry per step.
func (d *Default) InstructionsList() ([]string, error) {
	return splitLines(d.Instructions())
}

// Nutrients returns the nutrition properties keyed by schema.org name.
func (d *Default) Nutrients() (map[string]string, error) {
	nutrients := d.schema.Nutrients()
	if len(nutrients) == 0 {
		return nil, locrecipe.Errorf(locrecipe.ENOTFOUND, "nutrients not found")
	}
	return nutrients, nil
}

// Equipment is only published through site-specific markup.
func (d *Default) Equipment() ([]string, error) {
	return nil, locrecipe.Errorf(locrecipe.ENOTFOUND, "equipment not found")
}

// Rating fields and the classification fields below come straight from
// structured data.
func (d *Default) Ratings() (float64, error)              { return d.schema.Ratings() }
func (d *Default) RatingsCount() (*int, error)            { return d.schema.RatingsCount() }
func (d *Default) Cuisine() (string, error)               { return d.schema.Cuisine() }
func (d *Default) CookingMethod() (string, error)         { return d.schema.CookingMethod() }
func (d *Default) Keywords() ([]string, error)            { return d.schema.Keywords() }
func (d *Default) DietaryRestrictions() ([]string, error) { return d.schema.DietaryRestrictions() }

// singleGroup wraps ingredients in one unnamed group.
func singleGroup(ingredients []string, err error) ([]locrecipe.IngredientGroup, error) {
	if err != nil {
		return nil, err
	}
	return []locrecipe.IngredientGroup{{Ingredients: ingredients}}, nil
}

// splitLines turns newline-separated instructions into a list.
func splitLines(instructions string, err error) ([]string, error) {
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, line := range strings.Split(instructions, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// hostOf returns the lowercased host of rawURL without a leading "www.".
func hostOf(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", locrecipe.Errorf(locrecipe.EINVALID, "invalid page URL: %v", err)
	}
	return normalizeHost(u.Hostname()), nil
}

func normalizeHost(host string) string {
	return strings.TrimPrefix(strings.ToLower(host), "www.")
}
