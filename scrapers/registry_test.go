package scrapers_test

import (
	"testing"

	"github.com/fwojciec/locrecipe"
	"github.com/fwojciec/locrecipe/mock"
	"github.com/fwojciec/locrecipe/scrapers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_ScraperFor(t *testing.T) {
	t.Parallel()

	t.Run("returns the adapter for a known host", func(t *testing.T) {
		t.Parallel()

		r := scrapers.NewRegistry(scrapers.Config{})

		s, err := r.ScraperFor(page("", "", ""), "https://www.chefkoch.de/rezepte/1")

		require.NoError(t, err)
		assert.IsType(t, &scrapers.Chefkoch{}, s)
		assert.Equal(t, "chefkoch.de", s.Host())
	})

	t.Run("rejects unknown hosts", func(t *testing.T) {
		t.Parallel()

		r := scrapers.NewRegistry(scrapers.Config{})

		_, err := r.ScraperFor(page("", "", ""), "https://unknown.example/soup")

		require.Error(t, err)
		assert.Equal(t, locrecipe.ENOTIMPLEMENTED, locrecipe.ErrorCode(err))
	})

	t.Run("uses the default scraper in wild mode", func(t *testing.T) {
		t.Parallel()

		r := scrapers.NewRegistry(scrapers.Config{}, scrapers.WithWildMode())

		s, err := r.ScraperFor(page(soupJSONLD, "", ""), "https://unknown.example/soup")

		require.NoError(t, err)
		assert.IsType(t, &scrapers.Default{}, s)
		title, err := s.Title()
		require.NoError(t, err)
		assert.Equal(t, "Tomato Soup", title)
	})

	t.Run("rejects invalid URLs", func(t *testing.T) {
		t.Parallel()

		r := scrapers.NewRegistry(scrapers.Config{})

		_, err := r.ScraperFor("", "://bad")

		assert.Equal(t, locrecipe.EINVALID, locrecipe.ErrorCode(err))
	})
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	r := scrapers.NewRegistry(scrapers.Config{})
	custom := &mock.Scraper{HostFn: func() string { return "example.com" }}

	r.Register("www.Example.com", func(_, _ string) (locrecipe.Scraper, error) {
		return custom, nil
	})

	require.NotNil(t, r.Get("example.com"))
	assert.Nil(t, r.Get("other.example"))
	assert.Contains(t, r.List(), "example.com")
	assert.Contains(t, r.List(), "usapears.org")
	assert.Len(t, r.List(), 11)

	s, err := r.ScraperFor("<html></html>", "https://example.com/soup")

	require.NoError(t, err)
	assert.Same(t, custom, s)
}
