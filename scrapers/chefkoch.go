package scrapers

import (
	"strings"

	"github.com/fwojciec/locrecipe"
	"github.com/fwojciec/locrecipe/goquery"
)

var _ locrecipe.Scraper = (*Chefkoch)(nil)

// Chefkoch reads instructions from the rendered step list, which is more
// complete than its structured data.
type Chefkoch struct {
	*Default
}

func (s *Chefkoch) Host() string { return "chefkoch.de" }

func (s *Chefkoch) Instructions() (string, error) {
	steps := goquery.TextAll(s.doc, `span.instruction__text[data-testid="recipe-instruction"]`)
	if len(steps) == 0 {
		return s.Default.Instructions()
	}
	return strings.Join(steps, "\n"), nil
}

func (s *Chefkoch) InstructionsList() ([]string, error) {
	return splitLines(s.Instructions())
}
