package bookqa_test

import (
	"testing"

	"github.com/fwojciec/bookqa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBook_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts title and author", func(t *testing.T) {
		t.Parallel()

		b := &bookqa.Book{Title: "Risk", Author: "A. Writer"}

		assert.NoError(t, b.Validate())
	})

	t.Run("requires title", func(t *testing.T) {
		t.Parallel()

		b := &bookqa.Book{Author: "A. Writer"}

		err := b.Validate()
		require.Error(t, err)
		assert.Equal(t, bookqa.EINVALID, bookqa.ErrorCode(err))
	})

	t.Run("requires author", func(t *testing.T) {
		t.Parallel()

		b := &bookqa.Book{Title: "Risk"}

		err := b.Validate()
		require.Error(t, err)
		assert.Equal(t, "book author required", bookqa.ErrorMessage(err))
	})
}

func TestChapter_Validate(t *testing.T) {
	t.Parallel()

	t.Run("rejects zero number", func(t *testing.T) {
		t.Parallel()

		c := &bookqa.Chapter{Number: 0, Title: "Intro"}

		err := c.Validate()
		require.Error(t, err)
		assert.Equal(t, bookqa.EINVALID, bookqa.ErrorCode(err))
	})

	t.Run("rejects empty title", func(t *testing.T) {
		t.Parallel()

		c := &bookqa.Chapter{Number: 2}

		err := c.Validate()
		require.Error(t, err)
		assert.Equal(t, "chapter 2 title required", bookqa.ErrorMessage(err))
	})
}

func TestManuscript_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires at least one chapter", func(t *testing.T) {
		t.Parallel()

		m := &bookqa.Manuscript{Book: bookqa.Book{Title: "Risk", Author: "A. Writer"}}

		err := m.Validate()
		require.Error(t, err)
		assert.Equal(t, "manuscript has no chapters", bookqa.ErrorMessage(err))
	})

	t.Run("reports untitled chapter position", func(t *testing.T) {
		t.Parallel()

		m := &bookqa.Manuscript{
			Book:     bookqa.Book{Title: "Risk", Author: "A. Writer"},
			Chapters: []bookqa.ManuscriptChapter{{Title: "One"}, {}},
		}

		err := m.Validate()
		require.Error(t, err)
		assert.Equal(t, "chapter 2 title required", bookqa.ErrorMessage(err))
	})

	t.Run("accepts complete manuscript", func(t *testing.T) {
		t.Parallel()

		m := &bookqa.Manuscript{
			Book:     bookqa.Book{Title: "Risk", Author: "A. Writer"},
			Chapters: []bookqa.ManuscriptChapter{{Title: "One", Paragraphs: []string{"Text."}}},
		}

		assert.NoError(t, m.Validate())
	})
}
