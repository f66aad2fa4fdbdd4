package bookqa

import "strings"

// FormatBook formats book metadata as four labeled lines.
func FormatBook(b *Book) string {
	var sb strings.Builder
	sb.WriteString("Book Title: " + b.Title + "\n")
	sb.WriteString("Author: " + b.Author + "\n")
	sb.WriteString("Genre: " + b.Genre + "\n")
	sb.WriteString("Published Date: " + b.PublishedDate)
	return sb.String()
}
