package nyhetsindex_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/nyhetsindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate_ISO(t *testing.T) {
	t.Parallel()

	t.Run("plain ISO date", func(t *testing.T) {
		t.Parallel()

		got, ok := nyhetsindex.NormalizeDate("2024-08-28")

		require.True(t, ok)
		assert.Equal(t, "2024-08-28", got)
	})

	t.Run("ISO date with trailing time", func(t *testing.T) {
		t.Parallel()

		got, ok := nyhetsindex.NormalizeDate("2024-09-01T12:34")

		require.True(t, ok)
		assert.Equal(t, "2024-09-01", got)
	})

	t.Run("ISO date embedded in surrounding text", func(t *testing.T) {
		t.Parallel()

		got, ok := nyhetsindex.NormalizeDate("Publicerad 2024-08-28 av kommunen")

		require.True(t, ok)
		assert.Equal(t, "2024-08-28", got)
	})

	t.Run("first match governs when multiple dates are present", func(t *testing.T) {
		t.Parallel()

		got, ok := nyhetsindex.NormalizeDate("2024-01-02 uppdaterad 2024-03-04")

		require.True(t, ok)
		assert.Equal(t, "2024-01-02", got)
	})

	t.Run("invalid calendar date falls through", func(t *testing.T) {
		t.Parallel()

		// Not a real date; the Swedish strategy cannot parse it either.
		_, ok := nyhetsindex.NormalizeDate("2024-02-31")

		assert.False(t, ok)
	})
}

func TestNormalizeDate_Swedish(t *testing.T) {
	t.Parallel()

	t.Run("all month names", func(t *testing.T) {
		t.Parallel()

		months := []string{
			"januari", "februari", "mars", "april", "maj", "juni",
			"juli", "augusti", "september", "oktober", "november", "december",
		}
		for i, name := range months {
			got, ok := nyhetsindex.NormalizeDate(fmt.Sprintf("15 %s 2024", name))

			require.True(t, ok, "month %s", name)
			assert.Equal(t, fmt.Sprintf("2024-%02d-15", i+1), got)
		}
	})

	t.Run("case insensitive month name", func(t *testing.T) {
		t.Parallel()

		got, ok := nyhetsindex.NormalizeDate("28 Augusti 2024")

		require.True(t, ok)
		assert.Equal(t, "2024-08-28", got)
	})

	t.Run("single digit day", func(t *testing.T) {
		t.Parallel()

		got, ok := nyhetsindex.NormalizeDate("3 maj 2024")

		require.True(t, ok)
		assert.Equal(t, "2024-05-03", got)
	})

	t.Run("out of range day is unparseable", func(t *testing.T) {
		t.Parallel()

		_, ok := nyhetsindex.NormalizeDate("32 augusti 2024")

		assert.False(t, ok)
	})

	t.Run("unknown month name is unparseable", func(t *testing.T) {
		t.Parallel()

		_, ok := nyhetsindex.NormalizeDate("28 augustus 2024")

		assert.False(t, ok)
	})

	t.Run("embedded in surrounding text", func(t *testing.T) {
		t.Parallel()

		got, ok := nyhetsindex.NormalizeDate("Nyheter Publicerad 28 augusti 2024 Läs mer")

		require.True(t, ok)
		assert.Equal(t, "2024-08-28", got)
	})
}

func TestNormalizeDate_Unparseable(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "igår", "nyheter", "28/08/2024"} {
		_, ok := nyhetsindex.NormalizeDate(text)

		assert.False(t, ok, "input %q", text)
	}
}
