package goquery_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/nyhetsindex/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExtractor() *goquery.ListingExtractor {
	return goquery.NewListingExtractor("https://www.linkoping.se", "/nyheter/")
}

func TestListingExtractor(t *testing.T) {
	t.Parallel()

	t.Run("extracts item with heading and time element", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<article>
	<h2>Rubrik</h2>
	<time datetime="2024-08-28">28 augusti 2024</time>
	<a href="/nyheter/test-artikel">Läs mer</a>
</article>
</body></html>`

		items, err := newExtractor().Extract(html, 5)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Rubrik", items[0].Title)
		assert.Equal(t, "2024-08-28", items[0].RawDate)
		assert.Equal(t, "https://www.linkoping.se/nyheter/test-artikel", items[0].URL)
	})

	t.Run("falls back to anchor text when container has no heading", func(t *testing.T) {
		t.Parallel()

		html := `<ul><li><a href="/nyheter/utan-rubrik">Nyhet utan rubrik</a></li></ul>`

		items, err := newExtractor().Extract(html, 5)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Nyhet utan rubrik", items[0].Title)
	})

	t.Run("absolute hrefs pass through unchanged", func(t *testing.T) {
		t.Parallel()

		html := `<div><h3>Rubrik</h3><a href="https://www.linkoping.se/nyheter/abs">x</a></div>`

		items, err := newExtractor().Extract(html, 5)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "https://www.linkoping.se/nyheter/abs", items[0].URL)
	})

	t.Run("deduplicates by URL keeping the first occurrence", func(t *testing.T) {
		t.Parallel()

		html := `<body>
<div><h2>Första</h2><a href="/nyheter/samma">a</a></div>
<div><h2>Andra</h2><a href="https://www.linkoping.se/nyheter/samma">b</a></div>
</body>`

		items, err := newExtractor().Extract(html, 5)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Första", items[0].Title)
	})

	t.Run("never returns more than maxItems", func(t *testing.T) {
		t.Parallel()

		var b strings.Builder
		for i := range 10 {
			fmt.Fprintf(&b, `<div><h2>Nyhet %d</h2><a href="/nyheter/n%d">x</a></div>`, i, i)
		}

		items, err := newExtractor().Extract(b.String(), 5)

		require.NoError(t, err)
		assert.Len(t, items, 5)
	})

	t.Run("returned URLs are unique", func(t *testing.T) {
		t.Parallel()

		var b strings.Builder
		for i := range 6 {
			fmt.Fprintf(&b, `<div><h2>Nyhet</h2><a href="/nyheter/n%d">x</a><a href="/nyheter/n%d">x</a></div>`, i, i)
		}

		items, err := newExtractor().Extract(b.String(), 20)

		require.NoError(t, err)
		seen := make(map[string]bool)
		for _, item := range items {
			assert.False(t, seen[item.URL], "duplicate URL %s", item.URL)
			seen[item.URL] = true
		}
	})

	t.Run("discards items with empty title", func(t *testing.T) {
		t.Parallel()

		html := `<div><a href="/nyheter/tom"><img src="bild.png"></a></div>
<div><h2>Med rubrik</h2><a href="/nyheter/riktig">x</a></div>`

		items, err := newExtractor().Extract(html, 5)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Med rubrik", items[0].Title)
	})

	t.Run("ignores anchors outside the news path", func(t *testing.T) {
		t.Parallel()

		html := `<div><h2>Kontakt</h2><a href="/kontakt/">x</a></div>
<div><h2>Nyhet</h2><a href="/nyheter/riktig">x</a></div>`

		items, err := newExtractor().Extract(html, 5)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "https://www.linkoping.se/nyheter/riktig", items[0].URL)
	})

	t.Run("prefers time text when datetime attribute is absent", func(t *testing.T) {
		t.Parallel()

		html := `<article><h2>Rubrik</h2><time>28 augusti 2024</time><a href="/nyheter/a">x</a></article>`

		items, err := newExtractor().Extract(html, 5)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "28 augusti 2024", items[0].RawDate)
	})

	t.Run("falls back to container text when no time element exists", func(t *testing.T) {
		t.Parallel()

		html := `<article><h2>Rubrik</h2><span>Publicerad 2024-08-28</span><a href="/nyheter/a">Läs mer</a></article>`

		items, err := newExtractor().Extract(html, 5)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Rubrik Publicerad 2024-08-28 Läs mer", items[0].RawDate)
	})

	t.Run("container walk stops at the nearest article ancestor", func(t *testing.T) {
		t.Parallel()

		html := `<article>
	<h2>Yttre rubrik</h2>
	<div><span><a href="/nyheter/djup">länk</a></span></div>
</article>`

		items, err := newExtractor().Extract(html, 5)

		require.NoError(t, err)
		require.Len(t, items, 1)
		// The div at the second level wins over the article above it.
		assert.Equal(t, "länk", items[0].Title)
	})

	t.Run("items preserve document order", func(t *testing.T) {
		t.Parallel()

		html := `<div><h2>Ett</h2><a href="/nyheter/1">x</a></div>
<div><h2>Två</h2><a href="/nyheter/2">x</a></div>
<div><h2>Tre</h2><a href="/nyheter/3">x</a></div>`

		items, err := newExtractor().Extract(html, 5)

		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "Ett", items[0].Title)
		assert.Equal(t, "Två", items[1].Title)
		assert.Equal(t, "Tre", items[2].Title)
	})
}
