package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/bookqa"
	main "github.com/fwojciec/bookqa/cmd/bookqa"
	"github.com/fwojciec/bookqa/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func importingLibrary(imported **bookqa.Manuscript) *mock.LibraryService {
	return &mock.LibraryService{
		ImportManuscriptFn: func(_ context.Context, m *bookqa.Manuscript) (*bookqa.Book, error) {
			*imported = m
			if err := m.Validate(); err != nil {
				return nil, err
			}
			b := m.Book
			b.ID = bookqa.DefaultBookID
			return &b, nil
		},
	}
}

func TestLoadCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("loads markdown manuscript", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "book.md", "markdown source")

		var imported *bookqa.Manuscript
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Parser: &mock.ManuscriptParser{
				ParseFn: func(markdown string) (*bookqa.Manuscript, error) {
					assert.Equal(t, "markdown source", markdown)
					return &bookqa.Manuscript{
						Book: bookqa.Book{Title: "The Art of Insurance", Author: "Jane Smith"},
						Chapters: []bookqa.ManuscriptChapter{
							{Title: "One", Paragraphs: []string{"a", "b"}},
							{Title: "Two", Paragraphs: []string{"c"}},
						},
					}, nil
				},
			},
			Library: importingLibrary(&imported),
		}

		err := (&main.LoadCmd{Path: path, Format: "auto"}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, imported)
		assert.Equal(t, "Loaded \"The Art of Insurance\" by Jane Smith: 2 chapters, 3 paragraphs\n", stdout.String())
	})

	t.Run("loads html manuscript with head metadata", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "book.html", "<html>raw</html>")

		var imported *bookqa.Manuscript
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Extractors: map[string]bookqa.Extractor{"goquery": &mock.Extractor{
				ExtractFn: func(html string) (*bookqa.ExtractResult, error) {
					assert.Equal(t, "<html>raw</html>", html)
					return &bookqa.ExtractResult{
						Book:        bookqa.Book{Title: "Head Title", Author: "Head Author"},
						ContentHTML: "<h1>One</h1><p>a</p>",
					}, nil
				},
			}},
			Converter: &mock.Converter{
				ConvertFn: func(html string) (string, error) {
					assert.Equal(t, "<h1>One</h1><p>a</p>", html)
					return "# One\n\na\n", nil
				},
			},
			Parser: &mock.ManuscriptParser{
				ParseFn: func(markdown string) (*bookqa.Manuscript, error) {
					assert.Equal(t, "# One\n\na\n", markdown)
					return &bookqa.Manuscript{
						Book:     bookqa.Book{Title: "Heading Title", Genre: "Finance"},
						Chapters: []bookqa.ManuscriptChapter{{Title: "One", Paragraphs: []string{"a"}}},
					}, nil
				},
			},
			Library: importingLibrary(&imported),
		}

		err := (&main.LoadCmd{Path: path, Format: "auto", Extractor: "goquery"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, bookqa.Book{Title: "Head Title", Author: "Head Author", Genre: "Finance"}, imported.Book)
	})

	t.Run("format flag overrides extension", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "book.txt", "<html></html>")

		extracted := false
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Extractors: map[string]bookqa.Extractor{"readability": &mock.Extractor{
				ExtractFn: func(html string) (*bookqa.ExtractResult, error) {
					extracted = true
					return nil, bookqa.Errorf(bookqa.EINVALID, "no manuscript content found")
				},
			}},
		}

		err := (&main.LoadCmd{Path: path, Format: "html", Extractor: "readability"}).Run(deps)

		assert.True(t, extracted)
		assert.Equal(t, bookqa.EINVALID, bookqa.ErrorCode(err))
	})

	t.Run("rejects unknown extractor", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "book.html", "<html></html>")
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     &bytes.Buffer{},
			Stderr:     &bytes.Buffer{},
			Extractors: map[string]bookqa.Extractor{},
		}

		err := (&main.LoadCmd{Path: path, Extractor: "lynx"}).Run(deps)

		assert.Equal(t, bookqa.EINVALID, bookqa.ErrorCode(err))
	})

	t.Run("reports invalid manuscript", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "book.md", "no headings")

		var imported *bookqa.Manuscript
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Parser: &mock.ManuscriptParser{
				ParseFn: func(markdown string) (*bookqa.Manuscript, error) {
					return &bookqa.Manuscript{Book: bookqa.Book{Title: "T", Author: "A"}}, nil
				},
			},
			Library: importingLibrary(&imported),
		}

		err := (&main.LoadCmd{Path: path, Format: "markdown"}).Run(deps)

		assert.Equal(t, bookqa.EINVALID, bookqa.ErrorCode(err))
		assert.Contains(t, stderr.String(), "manuscript has no chapters")
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr}

		err := (&main.LoadCmd{Path: filepath.Join(t.TempDir(), "missing.md")}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "cannot read")
	})
}
