package bookqa_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/bookqa"
	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	t.Parallel()

	t.Run("keeps short text", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "short", bookqa.Truncate("short", 200))
	})

	t.Run("cuts at character count", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "abc", bookqa.Truncate("abcdef", 3))
	})

	t.Run("counts runes not bytes", func(t *testing.T) {
		t.Parallel()

		got := bookqa.Truncate("héllo wörld", 4)

		assert.Equal(t, "héll", got)
		assert.True(t, utf8.ValidString(got))
	})

	t.Run("returns empty for non-positive limit", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, bookqa.Truncate("abc", 0))
	})
}

func TestSnippet(t *testing.T) {
	t.Parallel()

	t.Run("wraps window around term", func(t *testing.T) {
		t.Parallel()

		content := strings.Repeat("a", 60) + "Insurance" + strings.Repeat("b", 60)

		got, ok := bookqa.Snippet(content, "insurance", 50)

		assert.True(t, ok)
		assert.Equal(t, "..."+strings.Repeat("a", 50)+"Insurance"+strings.Repeat("b", 50)+"...", got)
	})

	t.Run("clamps to content bounds", func(t *testing.T) {
		t.Parallel()

		got, ok := bookqa.Snippet("Claims are paid.", "claims", 50)

		assert.True(t, ok)
		assert.Equal(t, "...Claims are paid....", got)
	})

	t.Run("uses first occurrence", func(t *testing.T) {
		t.Parallel()

		got, ok := bookqa.Snippet("risk one, then risk two", "risk", 3)

		assert.True(t, ok)
		assert.Equal(t, "...risk on...", got)
	})

	t.Run("reports missing term", func(t *testing.T) {
		t.Parallel()

		_, ok := bookqa.Snippet("nothing here", "policy", 50)

		assert.False(t, ok)
	})

	t.Run("reports empty term", func(t *testing.T) {
		t.Parallel()

		_, ok := bookqa.Snippet("content", "", 50)

		assert.False(t, ok)
	})

	t.Run("keeps multibyte characters intact", func(t *testing.T) {
		t.Parallel()

		got, ok := bookqa.Snippet("ééé risk ééé", "risk", 2)

		assert.True(t, ok)
		assert.Equal(t, "...é risk é...", got)
	})
}

func TestHit_Content(t *testing.T) {
	t.Parallel()

	ch := &bookqa.Hit{Source: bookqa.SourceChapter, Chapter: &bookqa.Chapter{Content: "chapter text"}}
	p := &bookqa.Hit{Source: bookqa.SourceParagraph, Paragraph: &bookqa.Paragraph{Content: "paragraph text"}}
	b := &bookqa.Hit{Source: bookqa.SourceBook, Book: &bookqa.Book{Title: "T"}}

	assert.Equal(t, "chapter text", ch.Content())
	assert.Equal(t, "paragraph text", p.Content())
	assert.Empty(t, b.Content())
}
