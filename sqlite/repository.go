package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fwojciec/bookqa"
)

// Compile-time interface verification.
var _ bookqa.Repository = (*Repository)(nil)

// Repository implements bookqa.Repository using SQLite.
// Each call holds its own connection for exactly one query.
type Repository struct {
	db *DB
}

// NewRepository creates a new Repository.
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// FindBook retrieves a book by ID.
func (r *Repository) FindBook(ctx context.Context, id int) (*bookqa.Book, error) {
	var b bookqa.Book

	err := r.db.withConn(ctx, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, `
			SELECT id, title, author, genre, published_date
			FROM books
			WHERE id = ?
		`, id).Scan(&b.ID, &b.Title, &b.Author, &b.Genre, &b.PublishedDate)
	})

	if errors.Is(err, sql.ErrNoRows) {
		return nil, bookqa.Errorf(bookqa.ENOTFOUND, "book %d not found", id)
	}
	if err != nil {
		return nil, queryError("find book", err)
	}

	return &b, nil
}

// FindChapterByNumber retrieves a chapter by its number.
func (r *Repository) FindChapterByNumber(ctx context.Context, n int) (*bookqa.Chapter, error) {
	var c bookqa.Chapter

	err := r.db.withConn(ctx, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, `
			SELECT id, book_id, number, title, content, content_hash
			FROM chapters
			WHERE number = ?
			ORDER BY book_id
			LIMIT 1
		`, n).Scan(&c.ID, &c.BookID, &c.Number, &c.Title, &c.Content, &c.ContentHash)
	})

	if errors.Is(err, sql.ErrNoRows) {
		return nil, bookqa.Errorf(bookqa.ENOTFOUND, "chapter %d not found", n)
	}
	if err != nil {
		return nil, queryError("find chapter", err)
	}

	return &c, nil
}

// FindParagraphByNumber retrieves the first paragraph, in chapter order,
// with the given number.
func (r *Repository) FindParagraphByNumber(ctx context.Context, n int) (*bookqa.ParagraphMatch, error) {
	var p bookqa.Paragraph
	var chapterNumber int

	err := r.db.withConn(ctx, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, `
			SELECT p.id, p.chapter_id, p.number, p.content, c.number
			FROM paragraphs p
			JOIN chapters c ON p.chapter_id = c.id
			WHERE p.number = ?
			ORDER BY c.number
			LIMIT 1
		`, n).Scan(&p.ID, &p.ChapterID, &p.Number, &p.Content, &chapterNumber)
	})

	if errors.Is(err, sql.ErrNoRows) {
		return nil, bookqa.Errorf(bookqa.ENOTFOUND, "paragraph %d not found", n)
	}
	if err != nil {
		return nil, queryError("find paragraph", err)
	}

	return &bookqa.ParagraphMatch{Paragraph: &p, ChapterNumber: chapterNumber}, nil
}

// SearchBooks returns books whose title, author or genre contain pattern.
func (r *Repository) SearchBooks(ctx context.Context, pattern string) ([]*bookqa.Book, error) {
	like := likePattern(pattern)
	books := []*bookqa.Book{}

	err := r.db.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, `
			SELECT id, title, author, genre, published_date
			FROM books
			WHERE LOWER(title) LIKE ? ESCAPE '\'
			   OR LOWER(author) LIKE ? ESCAPE '\'
			   OR LOWER(genre) LIKE ? ESCAPE '\'
			ORDER BY id
		`, like, like, like)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var b bookqa.Book
			if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Genre, &b.PublishedDate); err != nil {
				return err
			}
			books = append(books, &b)
		}
		return rows.Err()
	})

	if err != nil {
		return nil, queryError("search books", err)
	}

	return books, nil
}

// SearchChapters returns chapters whose title or content contain pattern.
func (r *Repository) SearchChapters(ctx context.Context, pattern string) ([]*bookqa.Chapter, error) {
	like := likePattern(pattern)
	chapters := []*bookqa.Chapter{}

	err := r.db.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, `
			SELECT id, book_id, number, title, content, content_hash
			FROM chapters
			WHERE LOWER(title) LIKE ? ESCAPE '\'
			   OR LOWER(content) LIKE ? ESCAPE '\'
			ORDER BY number
		`, like, like)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var c bookqa.Chapter
			if err := rows.Scan(&c.ID, &c.BookID, &c.Number, &c.Title, &c.Content, &c.ContentHash); err != nil {
				return err
			}
			chapters = append(chapters, &c)
		}
		return rows.Err()
	})

	if err != nil {
		return nil, queryError("search chapters", err)
	}

	return chapters, nil
}

// SearchParagraphs returns paragraphs whose content contains pattern.
func (r *Repository) SearchParagraphs(ctx context.Context, pattern string) ([]*bookqa.ParagraphMatch, error) {
	like := likePattern(pattern)
	matches := []*bookqa.ParagraphMatch{}

	err := r.db.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, `
			SELECT p.id, p.chapter_id, p.number, p.content, c.number
			FROM paragraphs p
			JOIN chapters c ON p.chapter_id = c.id
			WHERE LOWER(p.content) LIKE ? ESCAPE '\'
			ORDER BY c.number, p.number
		`, like)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var p bookqa.Paragraph
			var chapterNumber int
			if err := rows.Scan(&p.ID, &p.ChapterID, &p.Number, &p.Content, &chapterNumber); err != nil {
				return err
			}
			matches = append(matches, &bookqa.ParagraphMatch{Paragraph: &p, ChapterNumber: chapterNumber})
		}
		return rows.Err()
	})

	if err != nil {
		return nil, queryError("search paragraphs", err)
	}

	return matches, nil
}
