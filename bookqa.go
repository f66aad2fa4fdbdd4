// Package bookqa answers natural language questions about a single book
// made of chapters and paragraphs. Questions are classified into intents,
// numbers and search terms are extracted, and the answer is either a direct
// record lookup or a lexical search across the book's collections.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g., sqlite/, nlu/, search/).
package bookqa
