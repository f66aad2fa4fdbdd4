package bookqa

import "context"

// DefaultBookID identifies the single book served by a deployment.
const DefaultBookID = 1

// Book represents the book being queried.
type Book struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	Genre         string `json:"genre"`
	PublishedDate string `json:"publishedDate"`
}

// Validate returns an error if the book contains invalid fields.
func (b *Book) Validate() error {
	if b.Title == "" {
		return Errorf(EINVALID, "book title required")
	}
	if b.Author == "" {
		return Errorf(EINVALID, "book author required")
	}
	return nil
}

// Chapter represents a numbered chapter of the book.
type Chapter struct {
	ID          int    `json:"id"`
	BookID      int    `json:"bookId"`
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	ContentHash string `json:"contentHash"`
}

// Validate returns an error if the chapter contains invalid fields.
func (c *Chapter) Validate() error {
	if c.Number < 1 {
		return Errorf(EINVALID, "chapter number must be positive")
	}
	if c.Title == "" {
		return Errorf(EINVALID, "chapter %d title required", c.Number)
	}
	return nil
}

// Paragraph represents a numbered paragraph within a chapter.
type Paragraph struct {
	ID        int    `json:"id"`
	ChapterID int    `json:"chapterId"`
	Number    int    `json:"number"`
	Content   string `json:"content"`
}

// ParagraphMatch pairs a paragraph with the number of its parent chapter.
type ParagraphMatch struct {
	Paragraph     *Paragraph `json:"paragraph"`
	ChapterNumber int        `json:"chapterNumber"`
}

// Repository provides read-only access to the book, its chapters and its
// paragraphs.
//
// Search patterns are raw terms matched as case-insensitive substrings.
// Searches with no matching rows return an empty slice. Every method returns
// EUNAVAILABLE when the underlying store cannot be reached.
type Repository interface {
	// FindBook retrieves a book by ID.
	// Returns ENOTFOUND if the book does not exist.
	FindBook(ctx context.Context, id int) (*Book, error)

	// FindChapterByNumber retrieves a chapter by its number.
	// Returns ENOTFOUND if no chapter has that number.
	FindChapterByNumber(ctx context.Context, n int) (*Chapter, error)

	// FindParagraphByNumber retrieves the first paragraph, in chapter order,
	// with the given number.
	// Returns ENOTFOUND if no paragraph has that number.
	FindParagraphByNumber(ctx context.Context, n int) (*ParagraphMatch, error)

	// SearchBooks returns books whose title, author or genre contain pattern.
	SearchBooks(ctx context.Context, pattern string) ([]*Book, error)

	// SearchChapters returns chapters whose title or content contain pattern,
	// ordered by chapter number.
	SearchChapters(ctx context.Context, pattern string) ([]*Chapter, error)

	// SearchParagraphs returns paragraphs whose content contains pattern,
	// ordered by chapter and paragraph number.
	SearchParagraphs(ctx context.Context, pattern string) ([]*ParagraphMatch, error)
}

// Manuscript is the importable form of a book: its metadata plus ordered
// chapters, each made of ordered paragraphs.
type Manuscript struct {
	Book     Book                `json:"book"`
	Chapters []ManuscriptChapter `json:"chapters"`
}

// ManuscriptChapter is one chapter of a Manuscript.
type ManuscriptChapter struct {
	Title      string   `json:"title"`
	Paragraphs []string `json:"paragraphs"`
}

// Validate returns an error if the manuscript cannot be imported.
func (m *Manuscript) Validate() error {
	if err := m.Book.Validate(); err != nil {
		return err
	}
	if len(m.Chapters) == 0 {
		return Errorf(EINVALID, "manuscript has no chapters")
	}
	for i, ch := range m.Chapters {
		if ch.Title == "" {
			return Errorf(EINVALID, "chapter %d title required", i+1)
		}
	}
	return nil
}

// LibraryService stores imported books.
type LibraryService interface {
	// ImportManuscript replaces the stored book with the manuscript.
	// Chapters and paragraphs are numbered from 1 in manuscript order.
	ImportManuscript(ctx context.Context, m *Manuscript) (*Book, error)
}
