package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/bookqa"
)

// Run executes the load command.
func (c *LoadCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot read %s\n", c.Path)
		return fmt.Errorf("failed to read manuscript: %w", err)
	}

	var m *bookqa.Manuscript
	if c.isHTML() {
		m, err = c.parseHTML(deps, string(data))
	} else {
		m, err = deps.Parser.Parse(string(data))
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookqa.ErrorMessage(err))
		return err
	}

	book, err := deps.Library.ImportManuscript(deps.Ctx, m)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookqa.ErrorMessage(err))
		return err
	}

	paragraphs := 0
	for _, ch := range m.Chapters {
		paragraphs += len(ch.Paragraphs)
	}
	fmt.Fprintf(deps.Stdout, "Loaded %q by %s: %d chapters, %d paragraphs\n",
		book.Title, book.Author, len(m.Chapters), paragraphs)
	return nil
}

func (c *LoadCmd) isHTML() bool {
	switch c.Format {
	case "html":
		return true
	case "markdown":
		return false
	}
	ext := strings.ToLower(filepath.Ext(c.Path))
	return ext == ".html" || ext == ".htm" || ext == ".xhtml"
}

// parseHTML extracts metadata and body from html, converts the body to
// Markdown and parses it. Metadata from the HTML head wins over headings.
func (c *LoadCmd) parseHTML(deps *Dependencies, html string) (*bookqa.Manuscript, error) {
	extractor, ok := deps.Extractors[c.Extractor]
	if !ok {
		return nil, bookqa.Errorf(bookqa.EINVALID, "unknown extractor %q", c.Extractor)
	}

	result, err := extractor.Extract(html)
	if err != nil {
		return nil, err
	}

	md, err := deps.Converter.Convert(result.ContentHTML)
	if err != nil {
		return nil, err
	}

	m, err := deps.Parser.Parse(md)
	if err != nil {
		return nil, err
	}

	if result.Book.Title != "" {
		m.Book.Title = result.Book.Title
	}
	if result.Book.Author != "" {
		m.Book.Author = result.Book.Author
	}
	if result.Book.Genre != "" {
		m.Book.Genre = result.Book.Genre
	}
	if result.Book.PublishedDate != "" {
		m.Book.PublishedDate = result.Book.PublishedDate
	}
	return m, nil
}
