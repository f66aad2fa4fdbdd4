package bookqa

// Source identifies the collection a Hit came from.
type Source int

// Hit sources, in display order.
const (
	SourceBook Source = iota
	SourceChapter
	SourceParagraph
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case SourceBook:
		return "book"
	case SourceChapter:
		return "chapter"
	case SourceParagraph:
		return "paragraph"
	}
	return "unknown"
}

// Hit is one record matched by a search term. The same record appears once
// for every term that matches it.
type Hit struct {
	Source Source
	Term   string

	// Exactly one of these is set, according to Source.
	Book      *Book
	Chapter   *Chapter
	Paragraph *Paragraph

	// Locator. Zero when not applicable to Source.
	ChapterNumber   int
	ParagraphNumber int
}

// Content returns the text a snippet is taken from.
// Book hits have no content.
func (h *Hit) Content() string {
	switch h.Source {
	case SourceChapter:
		if h.Chapter != nil {
			return h.Chapter.Content
		}
	case SourceParagraph:
		if h.Paragraph != nil {
			return h.Paragraph.Content
		}
	}
	return ""
}
