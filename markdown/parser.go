// Package markdown parses Markdown manuscripts into bookqa.Manuscript values.
//
// A manuscript may open with YAML front matter between "---" lines holding
// the book fields. Headings mark chapters and blank-line separated blocks
// inside a chapter become its paragraphs. Fenced code blocks are dropped.
package markdown

import (
	"strings"

	"github.com/fwojciec/bookqa"
	"github.com/goccy/go-yaml"
)

// Compile-time interface verification.
var _ bookqa.ManuscriptParser = (*Parser)(nil)

const frontMatterDelim = "---"

// frontMatter holds the book fields accepted in front matter.
type frontMatter struct {
	Title         string `yaml:"title"`
	Author        string `yaml:"author"`
	Genre         string `yaml:"genre"`
	Published     string `yaml:"published"`
	PublishedDate string `yaml:"published_date"`
}

// Parser parses Markdown manuscripts.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse converts markdown into a Manuscript.
//
// Chapters are "#" headings. When the document has a single "#" heading
// and at least one "##" heading, the "#" heading is taken as the book
// title and "##" headings become chapters. Text before the first chapter
// heading is ignored. The result is not validated so callers can fill in
// book fields found elsewhere first.
func (p *Parser) Parse(markdown string) (*bookqa.Manuscript, error) {
	markdown = strings.ReplaceAll(markdown, "\r\n", "\n")

	fm, body, err := splitFrontMatter(markdown)
	if err != nil {
		return nil, err
	}

	lines := stripCodeBlocks(strings.Split(body, "\n"))

	m := &bookqa.Manuscript{
		Book: bookqa.Book{
			Title:         fm.Title,
			Author:        fm.Author,
			Genre:         fm.Genre,
			PublishedDate: fm.Published,
		},
	}
	if m.Book.PublishedDate == "" {
		m.Book.PublishedDate = fm.PublishedDate
	}

	chapterLevel, bookTitle := detectChapterLevel(lines)
	if m.Book.Title == "" {
		m.Book.Title = bookTitle
	}

	var current *bookqa.ManuscriptChapter
	var block []string

	flush := func() {
		if current != nil && len(block) > 0 {
			current.Paragraphs = append(current.Paragraphs, strings.Join(block, " "))
		}
		block = nil
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if level, text, ok := heading(trimmed); ok {
			if level == chapterLevel {
				flush()
				m.Chapters = append(m.Chapters, bookqa.ManuscriptChapter{Title: text})
				current = &m.Chapters[len(m.Chapters)-1]
				continue
			}
			if level < chapterLevel {
				flush()
				continue
			}
			// Sub-headings read as their own paragraph.
			flush()
			block = append(block, text)
			flush()
			continue
		}

		if trimmed == "" {
			flush()
			continue
		}
		block = append(block, trimmed)
	}
	flush()

	return m, nil
}

// splitFrontMatter separates YAML front matter from the body. Documents
// without front matter return an empty frontMatter and the full text.
func splitFrontMatter(markdown string) (frontMatter, string, error) {
	var fm frontMatter

	trimmed := strings.TrimLeft(markdown, "\n")
	if !strings.HasPrefix(trimmed, frontMatterDelim+"\n") {
		return fm, markdown, nil
	}

	rest := trimmed[len(frontMatterDelim)+1:]
	end := strings.Index(rest, "\n"+frontMatterDelim)
	if end == -1 {
		if strings.HasPrefix(rest, frontMatterDelim) {
			end = 0
		} else {
			return fm, "", bookqa.Errorf(bookqa.EINVALID, "front matter not closed")
		}
	}

	raw := rest[:end]
	body := rest[end:]
	body = strings.TrimPrefix(body, "\n")
	body = strings.TrimPrefix(body, frontMatterDelim)

	if strings.TrimSpace(raw) != "" {
		if err := yaml.Unmarshal([]byte(raw), &fm); err != nil {
			return fm, "", bookqa.Errorf(bookqa.EINVALID, "invalid front matter: %v", err)
		}
	}

	return fm, body, nil
}

// stripCodeBlocks removes fenced code blocks, fences included.
func stripCodeBlocks(lines []string) []string {
	out := make([]string, 0, len(lines))
	inFence := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
			// Keep the block boundary so surrounding text splits.
			out = append(out, "")
			continue
		}
		if !inFence {
			out = append(out, line)
		}
	}
	return out
}

// heading reports the level and text of an ATX heading line.
func heading(line string) (int, string, bool) {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > 6 {
		return 0, "", false
	}
	if level < len(line) && line[level] != ' ' && line[level] != '\t' {
		return 0, "", false
	}
	text := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(line[level:]), "#"))
	return level, text, true
}

// detectChapterLevel picks the heading level that marks chapters and,
// when a lone top-level heading titles the book, returns that title.
func detectChapterLevel(lines []string) (int, string) {
	var h1 []string
	h2 := 0
	for _, line := range lines {
		level, text, ok := heading(strings.TrimSpace(line))
		if !ok {
			continue
		}
		switch level {
		case 1:
			h1 = append(h1, text)
		case 2:
			h2++
		}
	}
	if len(h1) == 1 && h2 > 0 {
		return 2, h1[0]
	}
	if len(h1) == 0 && h2 > 0 {
		return 2, ""
	}
	return 1, ""
}
