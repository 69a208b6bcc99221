package goquery_test

import (
	"testing"

	"github.com/fwojciec/nyhetsindex/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailExtractor(t *testing.T) {
	t.Parallel()

	extractor := goquery.NewDetailExtractor()

	t.Run("concatenates main region paragraphs", func(t *testing.T) {
		t.Parallel()

		got, err := extractor.Extract("<main><p>Del ett.</p><p>Del två.</p></main>")

		require.NoError(t, err)
		assert.Equal(t, "Del ett. Del två.", got)
	})

	t.Run("prefers article over main", func(t *testing.T) {
		t.Parallel()

		html := `<body>
<main><p>Sidotext.</p></main>
<article><p>Artikeltext.</p></article>
</body>`

		got, err := extractor.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Artikeltext.", got)
	})

	t.Run("region without paragraphs contributes its entire text", func(t *testing.T) {
		t.Parallel()

		got, err := extractor.Extract("<article><div>Bara en div.</div></article>")

		require.NoError(t, err)
		assert.Equal(t, "Bara en div.", got)
	})

	t.Run("falls back to all paragraphs in the document", func(t *testing.T) {
		t.Parallel()

		html := `<body><div><p>Första stycket.</p></div><div><p>Andra stycket.</p></div></body>`

		got, err := extractor.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Första stycket. Andra stycket.", got)
	})

	t.Run("tolerates malformed HTML", func(t *testing.T) {
		t.Parallel()

		got, err := extractor.Extract("<main><p>öppet stycke</main>")

		require.NoError(t, err)
		assert.Equal(t, "öppet stycke", got)
	})

	t.Run("returns empty string for empty document", func(t *testing.T) {
		t.Parallel()

		got, err := extractor.Extract("")

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
