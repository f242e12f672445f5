package goquery_test

import (
	"testing"

	"github.com/fwojciec/locrecipe"
	"github.com/fwojciec/locrecipe/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	t.Parallel()

	doc, err := goquery.NewDocument(`<div><p class="step">  Mix
	well </p><p class="step">Bake</p><p class="step"> </p></div>`)
	require.NoError(t, err)

	got, err := goquery.Text(doc, "p.step")
	require.NoError(t, err)
	assert.Equal(t, "Mix well", got)

	assert.Equal(t, []string{"Mix well", "Bake"}, goquery.TextAll(doc, "p.step"))

	_, err = goquery.Text(doc, "h1")
	assert.Equal(t, locrecipe.ENOTFOUND, locrecipe.ErrorCode(err))
	assert.Nil(t, goquery.TextAll(doc, "h1"))
}

func TestMeta(t *testing.T) {
	t.Parallel()

	doc, err := goquery.NewDocument(`<head>
<meta property="og:site_name" content="Example Kitchen">
<meta name="twitter:data1" content=" Jane ">
</head>`)
	require.NoError(t, err)

	assert.Equal(t, "Example Kitchen", goquery.Meta(doc, "og:site_name"))
	assert.Equal(t, "Jane", goquery.Meta(doc, "twitter:data1"))
	assert.Equal(t, "", goquery.Meta(doc, "description"))
}

func TestCanonicalURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			"canonical link",
			`<link rel="canonical" href="/recipes/soup">`,
			"https://example.com/recipes/soup",
		},
		{
			"og url",
			`<meta property="og:url" content="https://example.com/soup">`,
			"https://example.com/soup",
		},
		{
			"page url fallback",
			`<link rel="canonical" href="javascript:void(0)">`,
			"https://example.com/page?id=1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := goquery.NewDocument(tt.html)
			require.NoError(t, err)

			assert.Equal(t, tt.want, goquery.CanonicalURL(doc, "https://example.com/page?id=1"))
		})
	}
}
