// Package goquery extracts book metadata and body content from HTML
// manuscripts using CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/bookqa"
)

// Compile-time interface verification.
var _ bookqa.Extractor = (*Extractor)(nil)

// chromeSelector matches page furniture that never holds manuscript text.
const chromeSelector = "script, style, noscript, nav, header, footer, aside, form"

// contentSelectors are tried in order; the first match holds the body.
var contentSelectors = []string{"main", "article", "[role=main]", "body"}

// metaNames lists accepted <meta name> values per book field, in order.
var metaNames = struct {
	title, author, genre, published []string
}{
	title:     []string{"title", "dc.title", "og:title"},
	author:    []string{"author", "dc.creator", "book:author"},
	genre:     []string{"genre", "keywords", "dc.subject"},
	published: []string{"date", "published", "dc.date", "book:release_date"},
}

// Extractor reads book metadata and the manuscript body from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses html and returns the book fields found in its head and
// the inner HTML of its main content element with page chrome removed.
func (e *Extractor) Extract(html string) (*bookqa.ExtractResult, error) {
	if strings.TrimSpace(html) == "" {
		return nil, bookqa.Errorf(bookqa.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, bookqa.Errorf(bookqa.EINVALID, "failed to parse HTML: %v", err)
	}

	result := &bookqa.ExtractResult{
		Book: bookqa.Book{
			Title:         metaContent(doc, metaNames.title),
			Author:        metaContent(doc, metaNames.author),
			Genre:         metaContent(doc, metaNames.genre),
			PublishedDate: metaContent(doc, metaNames.published),
		},
	}
	if result.Book.Title == "" {
		result.Book.Title = strings.TrimSpace(doc.Find("head title").First().Text())
	}

	doc.Find(chromeSelector).Remove()

	for _, selector := range contentSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		content, err := sel.Html()
		if err != nil {
			return nil, bookqa.Errorf(bookqa.EINVALID, "failed to render content: %v", err)
		}
		if strings.TrimSpace(content) != "" {
			result.ContentHTML = strings.TrimSpace(content)
			break
		}
	}

	if result.ContentHTML == "" {
		return nil, bookqa.Errorf(bookqa.EINVALID, "no manuscript content found")
	}

	return result, nil
}

// metaContent returns the first non-empty content of a <meta> tag whose
// name or property matches one of names, compared case-insensitively.
func metaContent(doc *goquery.Document, names []string) string {
	for _, name := range names {
		var found string
		doc.Find("meta").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			key, ok := sel.Attr("name")
			if !ok {
				key, ok = sel.Attr("property")
			}
			if !ok || !strings.EqualFold(strings.TrimSpace(key), name) {
				return true
			}
			found = strings.TrimSpace(sel.AttrOr("content", ""))
			return found == ""
		})
		if found != "" {
			return found
		}
	}
	return ""
}
