package search

import (
	"fmt"
	"strings"

	"github.com/fwojciec/bookqa"
)

// FormatHits renders hits grouped by source: book information, then chapter
// matches, then paragraph matches. Empty groups are omitted.
func FormatHits(terms []string, hits []bookqa.Hit) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Here's what I found about: %s\n\n", strings.Join(terms, ", "))

	if hasSource(hits, bookqa.SourceBook) {
		sb.WriteString("Book Information:\n")
		for _, h := range hits {
			if h.Source != bookqa.SourceBook {
				continue
			}
			fmt.Fprintf(&sb, "Found '%s' in:\n", h.Term)
			fmt.Fprintf(&sb, "Title: %s\n", h.Book.Title)
			fmt.Fprintf(&sb, "Author: %s\n", h.Book.Author)
			fmt.Fprintf(&sb, "Genre: %s\n", h.Book.Genre)
			fmt.Fprintf(&sb, "Published: %s\n\n", h.Book.PublishedDate)
		}
	}

	if hasSource(hits, bookqa.SourceChapter) {
		sb.WriteString("Chapter Matches:\n")
		for _, h := range hits {
			if h.Source != bookqa.SourceChapter {
				continue
			}
			fmt.Fprintf(&sb, "Found '%s' in Chapter %d: %s\n", h.Term, h.ChapterNumber, h.Chapter.Title)
			writeContext(&sb, h)
		}
	}

	if hasSource(hits, bookqa.SourceParagraph) {
		sb.WriteString("Paragraph Matches:\n")
		for _, h := range hits {
			if h.Source != bookqa.SourceParagraph {
				continue
			}
			fmt.Fprintf(&sb, "Found '%s' in Chapter %d, Paragraph %d\n", h.Term, h.ChapterNumber, h.ParagraphNumber)
			writeContext(&sb, h)
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

// writeContext writes the snippet line for h followed by a blank separator.
// Hits matched through another column (such as a chapter title) have no
// snippet and get only the separator.
func writeContext(sb *strings.Builder, h bookqa.Hit) {
	if snippet, ok := bookqa.Snippet(h.Content(), h.Term, bookqa.SnippetRadius); ok {
		fmt.Fprintf(sb, "Context: %s\n", snippet)
	}
	sb.WriteString("\n")
}

// FormatDigest renders paragraph hits as a chapter/paragraph digest with
// truncated content.
func FormatDigest(term string, hits []bookqa.Hit) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Here's what I found about %s:\n", term)
	for _, h := range hits {
		fmt.Fprintf(&sb, "Chapter %d, Paragraph %d:\n%s%s\n\n",
			h.ChapterNumber, h.ParagraphNumber,
			bookqa.Truncate(h.Content(), digestPreviewLength), bookqa.Ellipsis)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func hasSource(hits []bookqa.Hit, src bookqa.Source) bool {
	for _, h := range hits {
		if h.Source == src {
			return true
		}
	}
	return false
}
