package scrapers

import "github.com/fwojciec/locrecipe"

var _ locrecipe.Scraper = (*AnitasTableTalk)(nil)

// AnitasTableTalk publishes neither a total time nor a yield.
type AnitasTableTalk struct {
	*Default
}

func (s *AnitasTableTalk) Host() string { return "anitastabletalk.com" }

func (s *AnitasTableTalk) TotalTime() (*int, error) {
	return nil, locrecipe.Errorf(locrecipe.ENOTPROVIDED, "total time not provided by anitastabletalk.com")
}

func (s *AnitasTableTalk) Yields() (string, error) {
	return "", locrecipe.Errorf(locrecipe.ENOTPROVIDED, "yields not provided by anitastabletalk.com")
}
