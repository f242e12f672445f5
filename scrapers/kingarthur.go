package scrapers

import (
	"strings"

	"github.com/fwojciec/locrecipe"
	"github.com/fwojciec/locrecipe/goquery"
)

var _ locrecipe.Scraper = (*KingArthur)(nil)

// KingArthur embeds HTML paragraphs in recipeInstructions.
type KingArthur struct {
	*Default
}

func (s *KingArthur) Host() string { return "kingarthurbaking.com" }

// Instructions returns one line per embedded paragraph, or the structured
// instructions unchanged when they carry no paragraphs.
func (s *KingArthur) Instructions() (string, error) {
	instructions, err := s.Default.Instructions()
	if err != nil {
		return "", err
	}
	fragment, err := goquery.NewDocument(instructions)
	if err != nil {
		return instructions, nil
	}
	if paragraphs := goquery.TextAll(fragment, "p"); len(paragraphs) > 0 {
		return strings.Join(paragraphs, "\n"), nil
	}
	return instructions, nil
}

func (s *KingArthur) InstructionsList() ([]string, error) {
	return splitLines(s.Instructions())
}
