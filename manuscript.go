package bookqa

// ExtractResult holds what an Extractor finds in an HTML manuscript.
type ExtractResult struct {
	// Book holds metadata read from the document head. ID is never set.
	Book Book

	// ContentHTML is the manuscript body with page chrome removed.
	ContentHTML string
}

// Extractor reads book metadata and body content from HTML.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., from an Extractor).
	Convert(html string) (string, error)
}

// ManuscriptParser parses Markdown into a Manuscript.
type ManuscriptParser interface {
	Parse(markdown string) (*Manuscript, error)
}
