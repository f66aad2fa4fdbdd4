// Package trafilatura extracts manuscript content and book metadata from
// HTML pages using go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/bookqa"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements bookqa.Extractor at compile time.
var _ bookqa.Extractor = (*Extractor)(nil)

// dateLayout formats extracted publication dates.
const dateLayout = "2006-01-02"

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the manuscript body together with
// the title, author, first category and publication date it detects.
func (e *Extractor) Extract(rawHTML string) (*bookqa.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, bookqa.Errorf(bookqa.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, bookqa.Errorf(bookqa.EINVALID, "failed to extract content: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}
	if strings.TrimSpace(contentHTML) == "" {
		return nil, bookqa.Errorf(bookqa.EINVALID, "no manuscript content found")
	}

	md := result.Metadata
	book := bookqa.Book{
		Title:  strings.TrimSpace(md.Title),
		Author: strings.TrimSpace(md.Author),
	}
	if len(md.Categories) > 0 {
		book.Genre = md.Categories[0]
	}
	if !md.Date.IsZero() {
		book.PublishedDate = md.Date.Format(dateLayout)
	}

	return &bookqa.ExtractResult{
		Book:        book,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
