package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/fwojciec/bookqa"
)

// Compile-time interface verification.
var _ bookqa.LibraryService = (*LibraryService)(nil)

// LibraryService implements bookqa.LibraryService using SQLite.
type LibraryService struct {
	db *DB
}

// NewLibraryService creates a new LibraryService.
func NewLibraryService(db *DB) *LibraryService {
	return &LibraryService{db: db}
}

// ImportManuscript replaces the stored book with m in a single transaction.
// The imported book always takes bookqa.DefaultBookID.
func (s *LibraryService) ImportManuscript(ctx context.Context, m *bookqa.Manuscript) (*bookqa.Book, error) {
	if m == nil {
		return nil, bookqa.Errorf(bookqa.EINVALID, "manuscript required")
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	book := m.Book
	book.ID = bookqa.DefaultBookID

	err := s.db.withConn(ctx, func(conn *sql.Conn) error {
		tx, err := conn.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		// Chapters and paragraphs go with the books via ON DELETE CASCADE.
		if _, err := tx.ExecContext(ctx, `DELETE FROM books`); err != nil {
			return fmt.Errorf("failed to clear books: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO books (id, title, author, genre, published_date)
			VALUES (?, ?, ?, ?, ?)
		`, book.ID, book.Title, book.Author, book.Genre, book.PublishedDate); err != nil {
			return fmt.Errorf("failed to insert book: %w", err)
		}

		for i, ch := range m.Chapters {
			content := strings.Join(ch.Paragraphs, "\n\n")
			res, err := tx.ExecContext(ctx, `
				INSERT INTO chapters (book_id, number, title, content, content_hash)
				VALUES (?, ?, ?, ?, ?)
			`, book.ID, i+1, ch.Title, content, hashContent(content))
			if err != nil {
				return fmt.Errorf("failed to insert chapter %d: %w", i+1, err)
			}
			chapterID, err := res.LastInsertId()
			if err != nil {
				return fmt.Errorf("failed to read chapter %d id: %w", i+1, err)
			}

			for j, p := range ch.Paragraphs {
				if _, err := tx.ExecContext(ctx, `
					INSERT INTO paragraphs (chapter_id, number, content)
					VALUES (?, ?, ?)
				`, chapterID, j+1, p); err != nil {
					return fmt.Errorf("failed to insert paragraph %d of chapter %d: %w", j+1, i+1, err)
				}
			}
		}

		return tx.Commit()
	})
	if err != nil {
		return nil, queryError("import manuscript", err)
	}

	return &book, nil
}
