package mock

import "github.com/fwojciec/locrecipe"

var _ locrecipe.ScraperRegistry = (*ScraperRegistry)(nil)

// ScraperRegistry is a mock implementation of locrecipe.ScraperRegistry.
type ScraperRegistry struct {
	GetFn        func(host string) locrecipe.ScraperFactory
	RegisterFn   func(host string, factory locrecipe.ScraperFactory)
	ListFn       func() []string
	ScraperForFn func(html, pageURL string) (locrecipe.Scraper, error)
}

func (r *ScraperRegistry) Get(host string) locrecipe.ScraperFactory {
	return r.GetFn(host)
}

func (r *ScraperRegistry) Register(host string, factory locrecipe.ScraperFactory) {
	r.RegisterFn(host, factory)
}

func (r *ScraperRegistry) List() []string {
	return r.ListFn()
}

func (r *ScraperRegistry) ScraperFor(html, pageURL string) (locrecipe.Scraper, error) {
	return r.ScraperForFn(html, pageURL)
}
