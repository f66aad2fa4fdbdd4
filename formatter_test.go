package bookqa_test

import (
	"testing"

	"github.com/fwojciec/bookqa"
	"github.com/stretchr/testify/assert"
)

func TestFormatBook(t *testing.T) {
	t.Parallel()

	t.Run("formats four labeled lines", func(t *testing.T) {
		t.Parallel()

		b := &bookqa.Book{
			Title:         "Principles of Insurance",
			Author:        "Jane Broker",
			Genre:         "Finance",
			PublishedDate: "2020-01-15",
		}

		expected := "Book Title: Principles of Insurance\nAuthor: Jane Broker\nGenre: Finance\nPublished Date: 2020-01-15"
		assert.Equal(t, expected, bookqa.FormatBook(b))
	})

	t.Run("keeps labels for empty fields", func(t *testing.T) {
		t.Parallel()

		got := bookqa.FormatBook(&bookqa.Book{Title: "T", Author: "A"})

		assert.Equal(t, "Book Title: T\nAuthor: A\nGenre: \nPublished Date: ", got)
	})
}
