package scrapers

import (
	"slices"

	"github.com/fwojciec/locrecipe"
)

var _ locrecipe.Scraper = (*AmazingRibs)(nil)

// AmazingRibs reads equipment from WP Recipe Maker markup, sorted by name.
type AmazingRibs struct {
	*Default
}

func (s *AmazingRibs) Host() string { return "amazingribs.com" }

func (s *AmazingRibs) Equipment() ([]string, error) {
	equipment, err := WPRMEquipment(s.doc)
	if err != nil {
		return nil, err
	}
	slices.Sort(equipment)
	return equipment, nil
}
