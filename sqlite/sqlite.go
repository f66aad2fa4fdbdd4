// Package sqlite provides SQLite-based storage for the book, its chapters
// and its paragraphs.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fwojciec/bookqa"
	"github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/ncruces/go-sqlite3/ext/unicode"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection and creates the schema if needed.
// Every connection gets Unicode aware lower() and LIKE.
func (db *DB) Open() error {
	conn, err := driver.Open(db.path, unicode.Register)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit to one connection.
	// This also keeps an in-memory database alive between queries.
	conn.SetMaxOpenConns(1)

	// Verify connection
	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Set busy timeout to wait 5 seconds before failing on lock contention.
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// WAL mode is not supported for in-memory databases.
	if db.path != ":memory:" {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	// Enable foreign key constraints
	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	db.db = conn

	// Create schema
	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// withConn reserves a connection for the duration of fn and always returns
// it to the pool before withConn returns. Failure to obtain a connection is
// reported as EUNAVAILABLE.
func (db *DB) withConn(ctx context.Context, fn func(conn *sql.Conn) error) error {
	if db.db == nil {
		return bookqa.Errorf(bookqa.EUNAVAILABLE, "database is not open")
	}

	conn, err := db.db.Conn(ctx)
	if err != nil {
		return bookqa.Errorf(bookqa.EUNAVAILABLE, "failed to acquire connection: %v", err)
	}
	defer conn.Close()

	return fn(conn)
}

// createSchema creates the database tables if they don't exist.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS books (
			id INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			author TEXT NOT NULL,
			genre TEXT NOT NULL DEFAULT '',
			published_date TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS chapters (
			id INTEGER PRIMARY KEY,
			book_id INTEGER NOT NULL REFERENCES books(id) ON DELETE CASCADE,
			number INTEGER NOT NULL CHECK (number >= 1),
			title TEXT NOT NULL,
			content TEXT NOT NULL DEFAULT '',
			content_hash TEXT NOT NULL DEFAULT '',
			UNIQUE (book_id, number)
		);

		CREATE TABLE IF NOT EXISTS paragraphs (
			id INTEGER PRIMARY KEY,
			chapter_id INTEGER NOT NULL REFERENCES chapters(id) ON DELETE CASCADE,
			number INTEGER NOT NULL CHECK (number >= 1),
			content TEXT NOT NULL DEFAULT '',
			UNIQUE (chapter_id, number)
		);

		CREATE INDEX IF NOT EXISTS idx_paragraphs_number ON paragraphs(number);
	`

	_, err := db.db.Exec(schema)
	return err
}
