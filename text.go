package bookqa

import (
	"strings"
	"unicode/utf8"
)

// Ellipsis marks truncated text.
const Ellipsis = "..."

// SnippetRadius is the number of characters kept on each side of a term.
const SnippetRadius = 50

// Truncate returns the first n characters of s.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// Snippet returns the text around the first case-insensitive occurrence of
// term in content: up to radius characters on each side, wrapped in
// ellipses. It reports false when term does not occur.
func Snippet(content, term string, radius int) (string, bool) {
	term = strings.ToLower(term)
	if term == "" {
		return "", false
	}

	lower := strings.ToLower(content)
	pos := strings.Index(lower, term)
	if pos < 0 {
		return "", false
	}

	// Lower-casing can change byte lengths for some scripts; offsets are
	// only valid against the original text when it did not.
	src := content
	if len(lower) != len(content) {
		src = lower
	}

	start := pos
	for i := 0; i < radius && start > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(src[:start])
		start -= size
	}
	end := pos + len(term)
	for i := 0; i < radius && end < len(src); i++ {
		_, size := utf8.DecodeRuneInString(src[end:])
		end += size
	}

	return Ellipsis + src[start:end] + Ellipsis, true
}
