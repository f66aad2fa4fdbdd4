// Package slog provides logging decorators for bookqa services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/bookqa"
)

// Ensure LoggingRepository implements bookqa.Repository.
var _ bookqa.Repository = (*LoggingRepository)(nil)

// LoggingRepository wraps a Repository with debug logging.
type LoggingRepository struct {
	next   bookqa.Repository
	logger *slog.Logger
}

// NewLoggingRepository creates a new LoggingRepository.
func NewLoggingRepository(next bookqa.Repository, logger *slog.Logger) *LoggingRepository {
	return &LoggingRepository{next: next, logger: logger}
}

// FindBook delegates to the wrapped repository and logs the lookup.
func (r *LoggingRepository) FindBook(ctx context.Context, id int) (book *bookqa.Book, err error) {
	defer func(begin time.Time) {
		r.logger.DebugContext(ctx, "find book",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.FindBook(ctx, id)
}

// FindChapterByNumber delegates to the wrapped repository and logs the lookup.
func (r *LoggingRepository) FindChapterByNumber(ctx context.Context, n int) (ch *bookqa.Chapter, err error) {
	defer func(begin time.Time) {
		r.logger.DebugContext(ctx, "find chapter",
			"number", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.FindChapterByNumber(ctx, n)
}

// FindParagraphByNumber delegates to the wrapped repository and logs the lookup.
func (r *LoggingRepository) FindParagraphByNumber(ctx context.Context, n int) (m *bookqa.ParagraphMatch, err error) {
	defer func(begin time.Time) {
		r.logger.DebugContext(ctx, "find paragraph",
			"number", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.FindParagraphByNumber(ctx, n)
}

// SearchBooks delegates to the wrapped repository and logs the match count.
func (r *LoggingRepository) SearchBooks(ctx context.Context, pattern string) (books []*bookqa.Book, err error) {
	defer func(begin time.Time) {
		r.logger.DebugContext(ctx, "search books",
			"pattern", pattern,
			"count", len(books),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.SearchBooks(ctx, pattern)
}

// SearchChapters delegates to the wrapped repository and logs the match count.
func (r *LoggingRepository) SearchChapters(ctx context.Context, pattern string) (chapters []*bookqa.Chapter, err error) {
	defer func(begin time.Time) {
		r.logger.DebugContext(ctx, "search chapters",
			"pattern", pattern,
			"count", len(chapters),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.SearchChapters(ctx, pattern)
}

// SearchParagraphs delegates to the wrapped repository and logs the match count.
func (r *LoggingRepository) SearchParagraphs(ctx context.Context, pattern string) (matches []*bookqa.ParagraphMatch, err error) {
	defer func(begin time.Time) {
		r.logger.DebugContext(ctx, "search paragraphs",
			"pattern", pattern,
			"count", len(matches),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.SearchParagraphs(ctx, pattern)
}
