package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/locrecipe"
	"github.com/fwojciec/locrecipe/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_ExtractMetadata(t *testing.T) {
	t.Parallel()

	t.Run("reads meta tags", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html lang="en">
<head>
<title>Tomato Soup | Soup Site</title>
<meta property="og:title" content="Tomato Soup">
<meta property="og:site_name" content="Soup Site">
<meta name="description" content="A warming soup for cold evenings.">
</head>
<body>
<nav>Home | Recipes | About</nav>
<article>
<h1>Tomato Soup</h1>
<p>This tomato soup is the one we make every week once the weather turns cold. It takes
about forty minutes from start to finish and needs only a handful of ingredients.</p>
<p>Roast the tomatoes first for a deeper flavour, then simmer them with the onion and
stock before blending until smooth. Serve with crusty bread and plenty of butter.</p>
</article>
<footer>Copyright Soup Site</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.ExtractMetadata(html, "https://example.com/soup")

		require.NoError(t, err)
		assert.Equal(t, "Tomato Soup", result.Title)
		assert.Equal(t, "Soup Site", result.SiteName)
		assert.Equal(t, "A warming soup for cold evenings.", result.Description)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := trafilatura.NewExtractor().ExtractMetadata("", "https://example.com")

		assert.Equal(t, locrecipe.EINVALID, locrecipe.ErrorCode(err))
	})

	t.Run("rejects invalid URLs", func(t *testing.T) {
		t.Parallel()

		_, err := trafilatura.NewExtractor().ExtractMetadata("<html></html>", "://bad")

		assert.Equal(t, locrecipe.EINVALID, locrecipe.ErrorCode(err))
	})
}
