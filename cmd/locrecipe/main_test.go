package main_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/locrecipe"
	main "github.com/fwojciec/locrecipe/cmd/locrecipe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recipePage = `<!DOCTYPE html><html lang="en"><head>
<script type="application/ld+json">{
	"@context": "https://schema.org",
	"@type": "Recipe",
	"name": %q,
	"recipeIngredient": ["2 cups stock", "1 onion"],
	"recipeInstructions": [{"@type": "HowToStep", "text": "Simmer."}],
	"totalTime": "PT30M"
}</script>
</head><body></body></html>`

func newRecipeServer(t *testing.T) *httptest.Server {
	t.Helper()
	titles := map[string]string{"/soup": "Tomato Soup", "/stew": "Beef Stew"}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		title, ok := titles[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, recipePage, title)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// run executes the program with a fresh Main against dbPath.
func run(dbPath string, args ...string) (string, string, error) {
	m := main.NewMain()
	m.DBPath = dbPath
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	err := m.Run(context.Background(), args, stdout, stderr)
	return stdout.String(), stderr.String(), err
}

func TestMain_Run_EndToEnd(t *testing.T) {
	t.Parallel()

	srv := newRecipeServer(t)
	tmp := t.TempDir()
	dbPath := filepath.Join(tmp, "recipes.db")

	stdout, _, err := run(dbPath, "--wild", "scrape", srv.URL+"/soup", "--save")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"title": "Tomato Soup"`)
	assert.Contains(t, stdout, `"totalTime": 30`)

	urls := filepath.Join(tmp, "urls.txt")
	require.NoError(t, os.WriteFile(urls, []byte(strings.Join([]string{
		srv.URL + "/soup",
		srv.URL + "/stew",
		srv.URL + "/missing",
	}, "\n")), 0644))

	stdout, stderr, err := run(dbPath, "--wild", "batch", urls, "--rate", "1000", "--skip-existing")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Saved 1 recipes")
	assert.Contains(t, stdout, "1 failed, 1 skipped")
	assert.Contains(t, stderr, "/missing")

	stdout, _, err = run(dbPath, "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Tomato Soup")
	assert.Contains(t, stdout, "Beef Stew")

	out := filepath.Join(tmp, "cookbook")
	_, _, err = run(dbPath, "export", out)
	require.NoError(t, err)
	files, err := filepath.Glob(filepath.Join(out, "*", "*.md"))
	require.NoError(t, err)
	assert.Len(t, files, 2)
	content, err := os.ReadFile(filepath.Join(out, "127.0.0.1", "stew.md"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "# Beef Stew")
	assert.Contains(t, string(content), "- 2 cups stock")
}

func TestMain_Run_RejectsUnsupportedWebsite(t *testing.T) {
	t.Parallel()

	srv := newRecipeServer(t)

	stdout, stderr, err := run(filepath.Join(t.TempDir(), "recipes.db"), "scrape", srv.URL+"/soup")

	assert.Equal(t, locrecipe.ENOTIMPLEMENTED, locrecipe.ErrorCode(err))
	assert.Contains(t, stderr, "is not supported")
	assert.Empty(t, stdout)
}

func TestMain_Run_Parse(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	path := filepath.Join(tmp, "soup.html")
	require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf(recipePage, "Tomato Soup")), 0644))

	stdout, _, err := run(filepath.Join(tmp, "recipes.db"),
		"--wild", "parse", path, "--url", "https://example.com/soup", "--format", "markdown")

	require.NoError(t, err)
	assert.Contains(t, stdout, "# Tomato Soup")
	assert.Contains(t, stdout, "1. Simmer.")
	_, err = os.Stat(filepath.Join(tmp, "recipes.db"))
	assert.True(t, os.IsNotExist(err), "parse without --save should not create the database")
}
