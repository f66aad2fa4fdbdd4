package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/bookqa"
)

// Ensure LoggingLibraryService implements bookqa.LibraryService.
var _ bookqa.LibraryService = (*LoggingLibraryService)(nil)

// LoggingLibraryService wraps a LibraryService with logging.
type LoggingLibraryService struct {
	next   bookqa.LibraryService
	logger *slog.Logger
}

// NewLoggingLibraryService creates a new LoggingLibraryService.
func NewLoggingLibraryService(next bookqa.LibraryService, logger *slog.Logger) *LoggingLibraryService {
	return &LoggingLibraryService{next: next, logger: logger}
}

// ImportManuscript delegates to the wrapped service and logs the import.
func (s *LoggingLibraryService) ImportManuscript(ctx context.Context, m *bookqa.Manuscript) (book *bookqa.Book, err error) {
	defer func(begin time.Time) {
		var title string
		var chapters int
		if m != nil {
			title = m.Book.Title
			chapters = len(m.Chapters)
		}
		s.logger.InfoContext(ctx, "import manuscript",
			"title", title,
			"chapters", chapters,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ImportManuscript(ctx, m)
}
