// Package search implements lexical search across the book, its chapters
// and its paragraphs, and renders grouped results with context snippets.
package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/bookqa"
)

// HistoryTerm is the term searched by the history digest.
const HistoryTerm = "history"

// Response text for degenerate searches.
const (
	NoTermsMessage   = "Please provide specific terms to search for."
	NoHistoryMessage = "I couldn't find any information about history."
)

// digestPreviewLength bounds each paragraph in the history digest.
const digestPreviewLength = 200

// allSources lists every collection in display order.
var allSources = []bookqa.Source{bookqa.SourceBook, bookqa.SourceChapter, bookqa.SourceParagraph}

// Engine searches every collection of a Repository for each term.
type Engine struct {
	repo bookqa.Repository
}

// NewEngine returns an Engine backed by repo.
func NewEngine(repo bookqa.Repository) *Engine {
	return &Engine{repo: repo}
}

// Search looks up each term in every collection and renders the hits.
// Stopwords are removed first; if nothing is left the repository is not
// queried.
func (e *Engine) Search(ctx context.Context, terms []string) (string, error) {
	filtered := bookqa.FilterTerms(terms)
	if len(filtered) == 0 {
		return NoTermsMessage, nil
	}

	hits, err := e.Collect(ctx, filtered)
	if err != nil {
		return "", err
	}
	if len(hits) == 0 {
		return NoResultsMessage(filtered), nil
	}

	return FormatHits(filtered, hits), nil
}

// History renders a digest of paragraphs mentioning HistoryTerm.
func (e *Engine) History(ctx context.Context) (string, error) {
	hits, err := e.Collect(ctx, []string{HistoryTerm}, bookqa.SourceParagraph)
	if err != nil {
		return "", err
	}
	if len(hits) == 0 {
		return NoHistoryMessage, nil
	}
	return FormatDigest(HistoryTerm, hits), nil
}

// Collect returns one hit per matching record per term, in term order and
// then source order. Records matching several terms appear several times.
// When no sources are given every collection is searched.
func (e *Engine) Collect(ctx context.Context, terms []string, sources ...bookqa.Source) ([]bookqa.Hit, error) {
	if len(sources) == 0 {
		sources = allSources
	}

	hits := []bookqa.Hit{}
	for _, term := range bookqa.FilterTerms(terms) {
		for _, src := range sources {
			found, err := e.collectSource(ctx, term, src)
			if err != nil {
				return nil, err
			}
			hits = append(hits, found...)
		}
	}
	return hits, nil
}

func (e *Engine) collectSource(ctx context.Context, term string, src bookqa.Source) ([]bookqa.Hit, error) {
	var hits []bookqa.Hit

	switch src {
	case bookqa.SourceBook:
		books, err := e.repo.SearchBooks(ctx, term)
		if err != nil {
			return nil, err
		}
		for _, b := range books {
			hits = append(hits, bookqa.Hit{Source: src, Term: term, Book: b})
		}

	case bookqa.SourceChapter:
		chapters, err := e.repo.SearchChapters(ctx, term)
		if err != nil {
			return nil, err
		}
		for _, c := range chapters {
			hits = append(hits, bookqa.Hit{Source: src, Term: term, Chapter: c, ChapterNumber: c.Number})
		}

	case bookqa.SourceParagraph:
		paragraphs, err := e.repo.SearchParagraphs(ctx, term)
		if err != nil {
			return nil, err
		}
		for _, m := range paragraphs {
			hits = append(hits, bookqa.Hit{
				Source:          src,
				Term:            term,
				Paragraph:       m.Paragraph,
				ChapterNumber:   m.ChapterNumber,
				ParagraphNumber: m.Paragraph.Number,
			})
		}

	default:
		return nil, bookqa.Errorf(bookqa.EINTERNAL, "unknown search source %d", src)
	}

	return hits, nil
}

// NoResultsMessage is the response when no collection matched any term.
func NoResultsMessage(terms []string) string {
	return fmt.Sprintf("I couldn't find any information about: %s", strings.Join(terms, ", "))
}
