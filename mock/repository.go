package mock

import (
	"context"

	"github.com/fwojciec/bookqa"
)

var _ bookqa.Repository = (*Repository)(nil)

// Repository is a mock implementation of bookqa.Repository.
type Repository struct {
	FindBookFn              func(ctx context.Context, id int) (*bookqa.Book, error)
	FindChapterByNumberFn   func(ctx context.Context, n int) (*bookqa.Chapter, error)
	FindParagraphByNumberFn func(ctx context.Context, n int) (*bookqa.ParagraphMatch, error)
	SearchBooksFn           func(ctx context.Context, pattern string) ([]*bookqa.Book, error)
	SearchChaptersFn        func(ctx context.Context, pattern string) ([]*bookqa.Chapter, error)
	SearchParagraphsFn      func(ctx context.Context, pattern string) ([]*bookqa.ParagraphMatch, error)
}

func (r *Repository) FindBook(ctx context.Context, id int) (*bookqa.Book, error) {
	return r.FindBookFn(ctx, id)
}

func (r *Repository) FindChapterByNumber(ctx context.Context, n int) (*bookqa.Chapter, error) {
	return r.FindChapterByNumberFn(ctx, n)
}

func (r *Repository) FindParagraphByNumber(ctx context.Context, n int) (*bookqa.ParagraphMatch, error) {
	return r.FindParagraphByNumberFn(ctx, n)
}

func (r *Repository) SearchBooks(ctx context.Context, pattern string) ([]*bookqa.Book, error) {
	return r.SearchBooksFn(ctx, pattern)
}

func (r *Repository) SearchChapters(ctx context.Context, pattern string) ([]*bookqa.Chapter, error) {
	return r.SearchChaptersFn(ctx, pattern)
}

func (r *Repository) SearchParagraphs(ctx context.Context, pattern string) ([]*bookqa.ParagraphMatch, error) {
	return r.SearchParagraphsFn(ctx, pattern)
}
