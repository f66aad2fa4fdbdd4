// Package readability extracts manuscript content from HTML pages using
// go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/bookqa"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements bookqa.Extractor at compile time.
var _ bookqa.Extractor = (*Extractor)(nil)

// bylinePrefix is stripped from bylines such as "By Jane Smith".
const bylinePrefix = "by "

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article body. The title and
// byline become the book title and author.
func (e *Extractor) Extract(rawHTML string) (*bookqa.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, bookqa.Errorf(bookqa.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, bookqa.Errorf(bookqa.EINVALID, "failed to extract content: %v", err)
	}
	if strings.TrimSpace(article.Content) == "" {
		return nil, bookqa.Errorf(bookqa.EINVALID, "no manuscript content found")
	}

	return &bookqa.ExtractResult{
		Book: bookqa.Book{
			Title:  strings.TrimSpace(article.Title),
			Author: author(article.Byline),
		},
		ContentHTML: article.Content,
	}, nil
}

// author normalizes a byline into an author name.
func author(byline string) string {
	byline = strings.TrimSpace(byline)
	if len(byline) > len(bylinePrefix) && strings.EqualFold(byline[:len(bylinePrefix)], bylinePrefix) {
		byline = strings.TrimSpace(byline[len(bylinePrefix):])
	}
	return byline
}
