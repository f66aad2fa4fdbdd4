package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/bookqa"
	"github.com/fwojciec/bookqa/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bookPage = `<!DOCTYPE html>
<html>
<head>
<title>The Art of Insurance</title>
<meta name="author" content="Jane Smith">
</head>
<body>
<nav class="main-nav"><a href="/">Home</a><a href="/books">Books</a></nav>
<article>
<h1>Introduction to Insurance</h1>
<p>Insurance is a means of protection from financial loss. It is a form of risk
management, primarily used to hedge against the risk of a contingent or uncertain loss.</p>
<p>The history of insurance dates back to ancient Babylon, where traders paid lenders
an additional sum in exchange for the guarantee that a loan would be cancelled if a
shipment was stolen or lost at sea.</p>
</article>
<footer><p>Copyright 2024 Example Press</p></footer>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts manuscript body", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(bookPage)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "means of protection from financial loss")
		assert.Contains(t, result.ContentHTML, "ancient Babylon")
	})

	t.Run("removes navigation and footer boilerplate", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(bookPage)

		require.NoError(t, err)
		assert.NotContains(t, result.ContentHTML, "main-nav")
		assert.NotContains(t, result.ContentHTML, "Example Press")
	})

	t.Run("extracts book title", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(bookPage)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Book.Title)
		assert.Zero(t, result.Book.ID)
	})

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract(" \n")

		require.Error(t, err)
		assert.Equal(t, bookqa.EINVALID, bookqa.ErrorCode(err))
	})
}
