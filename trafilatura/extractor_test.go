package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/nyhetsindex/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor(t *testing.T) {
	t.Parallel()

	extractor := trafilatura.NewExtractor()

	t.Run("extracts body text and drops boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Nyhet</title></head>
<body>
<nav><a href="/">Hem</a><a href="/nyheter/">Nyheter</a></nav>
<div class="content">
	<h1>Ny simhall invigd</h1>
	<p>Kommunen invigde i dag den nya simhallen. Anläggningen rymmer en
	50-metersbassäng och en familjedel med vattenrutschkanor.</p>
	<p>Simhallen är öppen alla dagar mellan klockan sex och tjugotvå.</p>
</div>
<footer>Kontakta kommunen</footer>
</body>
</html>`

		got, err := extractor.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, got, "nya simhallen")
		assert.Contains(t, got, "öppen alla dagar")
		assert.NotContains(t, got, "  ")
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		t.Parallel()

		got, err := extractor.Extract("   ")

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
