package cratedocs_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/cratedocs"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeSpace(t *testing.T) {
	t.Parallel()

	t.Run("collapses runs of whitespace", func(t *testing.T) {
		t.Parallel()

		got := cratedocs.NormalizeSpace("  a \n\n\tb   c\r\n")

		assert.Equal(t, "a b c", got)
	})

	t.Run("returns empty for whitespace only", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, cratedocs.NormalizeSpace(" \n\t "))
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		once := cratedocs.NormalizeSpace("x  y z")

		assert.Equal(t, once, cratedocs.NormalizeSpace(once))
		assert.Equal(t, "x y z", once)
	})
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	const url = "https://docs.rs/serde/latest/serde/index.html"

	t.Run("keeps short text unchanged", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("a", cratedocs.MaxTextLength)

		assert.Equal(t, text, cratedocs.Truncate(text, url))
	})

	t.Run("cuts long text and appends suffix", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("ab", cratedocs.MaxTextLength)

		got := cratedocs.Truncate(text, url)

		suffix := cratedocs.TruncationSuffix(url)
		assert.Len(t, got, cratedocs.MaxTextLength+len(suffix))
		assert.Equal(t, text[:cratedocs.MaxTextLength], got[:cratedocs.MaxTextLength])
		assert.True(t, strings.HasSuffix(got, suffix))
		assert.Contains(t, got, "[Content truncated. Full documentation available at "+url+"]")
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("é", cratedocs.MaxTextLength+1)

		got := cratedocs.Truncate(text, url)

		assert.True(t, utf8.ValidString(got))
		assert.Equal(t, strings.Repeat("é", cratedocs.MaxTextLength)+cratedocs.TruncationSuffix(url), got)
	})

	t.Run("multi-byte text within limit is unchanged", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("é", cratedocs.MaxTextLength)

		assert.Equal(t, text, cratedocs.Truncate(text, url))
	})
}
