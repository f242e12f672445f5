package mock

import (
	"context"

	"github.com/fwojciec/locrecipe"
)

var _ locrecipe.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of locrecipe.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *locrecipe.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *locrecipe.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
