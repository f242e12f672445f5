package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/locrecipe"
	"github.com/fwojciec/locrecipe/mock"
	locslog "github.com/fwojciec/locrecipe/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingRegistry_ScraperFor(t *testing.T) {
	t.Parallel()

	t.Run("logs selected scraper with duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		scraper := &mock.Scraper{HostFn: func() string { return "chefkoch.de" }}
		inner := &mock.ScraperRegistry{
			ScraperForFn: func(html, pageURL string) (locrecipe.Scraper, error) {
				return scraper, nil
			},
		}

		registry := locslog.NewLoggingRegistry(inner, logger)
		s, err := registry.ScraperFor("<html></html>", "https://www.chefkoch.de/rezepte/1")

		require.NoError(t, err)
		assert.Equal(t, scraper, s)
		output := buf.String()
		assert.Contains(t, output, "scraper selection")
		assert.Contains(t, output, "scraper=chefkoch.de")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs unsupported hosts", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ScraperRegistry{
			ScraperForFn: func(html, pageURL string) (locrecipe.Scraper, error) {
				return nil, locrecipe.Errorf(locrecipe.ENOTIMPLEMENTED, "website not supported")
			},
		}

		registry := locslog.NewLoggingRegistry(inner, logger)
		_, err := registry.ScraperFor("<html></html>", "https://unknown.example")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "scraper=(none)")
		assert.Contains(t, output, "website not supported")
	})
}

func TestLoggingRegistry_Delegates(t *testing.T) {
	t.Parallel()

	var registered string
	inner := &mock.ScraperRegistry{
		GetFn:      func(host string) locrecipe.ScraperFactory { return nil },
		RegisterFn: func(host string, _ locrecipe.ScraperFactory) { registered = host },
		ListFn:     func() []string { return []string{"a.com", "b.com"} },
	}

	registry := locslog.NewLoggingRegistry(inner, slog.New(slog.DiscardHandler))
	registry.Register("c.com", nil)

	assert.Equal(t, "c.com", registered)
	assert.Nil(t, registry.Get("a.com"))
	assert.Equal(t, []string{"a.com", "b.com"}, registry.List())
}
