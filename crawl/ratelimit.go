package crawl

import (
	"context"
	"net"
	"strings"
	"sync"

	"github.com/fwojciec/locrecipe"
	"golang.org/x/time/rate"
)

var _ locrecipe.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out requests to each recipe website. Hosts are
// compared case-insensitively without port or leading "www.", so
// www.example.com and example.com share one budget.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
}

// NewDomainLimiter allows rps requests per second to each host, without
// bursting. A non-positive rps disables limiting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
	}
}

// Wait blocks until a request to host is allowed or ctx is done.
func (d *DomainLimiter) Wait(ctx context.Context, host string) error {
	return d.limiter(host).Wait(ctx)
}

// Hosts returns the number of distinct hosts seen so far.
func (d *DomainLimiter) Hosts() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.limiters)
}

func (d *DomainLimiter) limiter(host string) *rate.Limiter {
	key := limiterKey(host)

	d.mu.Lock()
	defer d.mu.Unlock()

	limiter, ok := d.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(d.limit, 1)
		d.limiters[key] = limiter
	}
	return limiter
}

func limiterKey(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return strings.TrimPrefix(strings.ToLower(host), "www.")
}
