package mock

import (
	"context"

	"github.com/fwojciec/bookqa"
)

var _ bookqa.LibraryService = (*LibraryService)(nil)

// LibraryService is a mock implementation of bookqa.LibraryService.
type LibraryService struct {
	ImportManuscriptFn func(ctx context.Context, m *bookqa.Manuscript) (*bookqa.Book, error)
}

func (s *LibraryService) ImportManuscript(ctx context.Context, m *bookqa.Manuscript) (*bookqa.Book, error) {
	return s.ImportManuscriptFn(ctx, m)
}
