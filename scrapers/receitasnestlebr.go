package scrapers

import (
	"strings"

	"github.com/fwojciec/locrecipe"
	"github.com/fwojciec/locrecipe/goquery"
)

var _ locrecipe.Scraper = (*ReceitasNestleBR)(nil)

// ReceitasNestleBR shows the total time in a detail box and prefixes its
// instructions with a "Modo de Preparo" heading.
type ReceitasNestleBR struct {
	*Default
}

const nestlePreparationHeading = "Modo de Preparo"

func (s *ReceitasNestleBR) Host() string { return "receitasnestle.com.br" }

func (s *ReceitasNestleBR) TotalTime() (*int, error) {
	raw, err := goquery.Text(s.doc, "div.recipeDetail__infoItem--time")
	if err != nil {
		return nil, err
	}
	minutes, err := s.text.Minutes(raw)
	if err != nil {
		return nil, err
	}
	return &minutes, nil
}

func (s *ReceitasNestleBR) Instructions() (string, error) {
	instructions, err := s.Default.Instructions()
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(instructions, nestlePreparationHeading) {
		if _, rest, ok := strings.Cut(instructions, "\n"); ok {
			return rest, nil
		}
	}
	return instructions, nil
}

func (s *ReceitasNestleBR) InstructionsList() ([]string, error) {
	return splitLines(s.Instructions())
}
