package scrapers

import (
	"slices"

	"github.com/fwojciec/locrecipe"
)

var _ locrecipe.ScraperRegistry = (*Registry)(nil)

// adapters lists the built-in site adapters by host.
var adapters = map[string]func(*Default) locrecipe.Scraper{
	"amazingribs.com":       func(d *Default) locrecipe.Scraper { return &AmazingRibs{d} },
	"anitastabletalk.com":   func(d *Default) locrecipe.Scraper { return &AnitasTableTalk{d} },
	"chefkoch.de":           func(d *Default) locrecipe.Scraper { return &Chefkoch{d} },
	"chefnini.com":          func(d *Default) locrecipe.Scraper { return &Chefnini{d} },
	"fitmencook.com":        func(d *Default) locrecipe.Scraper { return &FitMenCook{d} },
	"joyfoodsunshine.com":   func(d *Default) locrecipe.Scraper { return &JoyFoodSunshine{d} },
	"joythebaker.com":       func(d *Default) locrecipe.Scraper { return &JoyTheBaker{d} },
	"kingarthurbaking.com":  func(d *Default) locrecipe.Scraper { return &KingArthur{d} },
	"receitasnestle.com.br": func(d *Default) locrecipe.Scraper { return &ReceitasNestleBR{d} },
	"usapears.org":          func(d *Default) locrecipe.Scraper { return &USAPears{d} },
}

// Registry manages site-specific scrapers keyed by host. Hosts are compared
// without a leading "www.". Pages from unknown hosts are rejected unless
// wild mode is enabled, in which case the Default scraper handles them.
type Registry struct {
	cfg       Config
	wildMode  bool
	factories map[string]locrecipe.ScraperFactory
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithWildMode makes the registry fall back to the Default scraper for
// hosts without an adapter.
func WithWildMode() RegistryOption {
	return func(r *Registry) {
		r.wildMode = true
	}
}

// NewRegistry creates a Registry with every built-in adapter registered.
func NewRegistry(cfg Config, opts ...RegistryOption) *Registry {
	r := &Registry{
		cfg:       cfg.withDefaults(),
		factories: make(map[string]locrecipe.ScraperFactory, len(adapters)),
	}
	for _, opt := range opts {
		opt(r)
	}
	for host, adapt := range adapters {
		r.Register(host, r.adapterFactory(adapt))
	}
	return r
}

func (r *Registry) adapterFactory(adapt func(*Default) locrecipe.Scraper) locrecipe.ScraperFactory {
	return func(html, pageURL string) (locrecipe.Scraper, error) {
		d, err := NewDefault(r.cfg, html, pageURL)
		if err != nil {
			return nil, err
		}
		return adapt(d), nil
	}
}

// Get returns the factory for host.
// Returns nil if no factory is registered for the host.
func (r *Registry) Get(host string) locrecipe.ScraperFactory {
	return r.factories[normalizeHost(host)]
}

// Register adds a factory for host.
// If a factory is already registered for the host, it is replaced.
func (r *Registry) Register(host string, factory locrecipe.ScraperFactory) {
	r.factories[normalizeHost(host)] = factory
}

// List returns all registered hosts in sorted order.
func (r *Registry) List() []string {
	hosts := make([]string, 0, len(r.factories))
	for host := range r.factories {
		hosts = append(hosts, host)
	}
	slices.Sort(hosts)
	return hosts
}

// ScraperFor builds the scraper for the host of pageURL.
func (r *Registry) ScraperFor(html, pageURL string) (locrecipe.Scraper, error) {
	host, err := hostOf(pageURL)
	if err != nil {
		return nil, err
	}
	if factory, ok := r.factories[host]; ok {
		return factory(html, pageURL)
	}
	if r.wildMode {
		return NewDefault(r.cfg, html, pageURL)
	}
	return nil, locrecipe.Errorf(locrecipe.ENOTIMPLEMENTED, "website %q is not supported", host)
}
