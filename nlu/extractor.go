// Package nlu classifies questions about the book into intents and extracts
// chapter/paragraph numbers and search terms from them.
package nlu

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/bookqa"
)

// Ensure Extractor implements bookqa.Classifier at compile time.
var _ bookqa.Classifier = (*Extractor)(nil)

// minTermLength is the shortest word, in characters, kept as a search term.
const minTermLength = 3

// wordRe splits text into words, dropping punctuation.
var wordRe = regexp.MustCompile(`[\p{L}\p{N}]+(?:'[\p{L}]+)?`)

// pattern is a structured phrasing that decides the intent on its own.
type pattern struct {
	re     *regexp.Regexp
	intent bookqa.Intent
	// ordinal is the capture group holding the chapter or paragraph number
	// the handler needs, or 0 when the phrasing carries none.
	ordinal int
}

// compoundPatterns are tested in order before any keyword lookup.
var compoundPatterns = []pattern{
	{re: mustPattern(`\bwhat (?:does|do) chapter (N) (?:say|tell|cover|discuss)`), intent: bookqa.IntentChapterQuery, ordinal: 1},
	{re: mustPattern(`\bwhat is chapter (N) about\b`), intent: bookqa.IntentChapterQuery, ordinal: 1},
	{re: mustPattern(`\bwhat(?:'s| is) in chapter (N)\b`), intent: bookqa.IntentChapterQuery, ordinal: 1},
	{re: mustPattern(`\btell me what chapter (N) (?:says|covers)\b`), intent: bookqa.IntentChapterQuery, ordinal: 1},
	{re: mustPattern(`\bparagraph (N) (?:in|of|from) chapter (N)\b`), intent: bookqa.IntentParagraph, ordinal: 1},
	{re: mustPattern(`\b(?:show|list|read|display)(?: me)?(?: all)?(?: the)? paragraphs? (?:in|of|from) chapter (N)\b`), intent: bookqa.IntentParagraph},
}

// mustPattern compiles expr with every "(N)" replaced by a number group.
func mustPattern(expr string) *regexp.Regexp {
	return regexp.MustCompile(strings.ReplaceAll(expr, "(N)", `(`+numberPattern+`)\b`))
}

// Extractor classifies questions with a fixed-priority rule cascade:
// compound patterns, then keyword sets in bookqa.KeywordIntents order,
// then IntentUnknown.
type Extractor struct {
	keywords bookqa.KeywordTable
}

// NewExtractor returns an Extractor using a private copy of keywords.
// A nil table selects bookqa.DefaultKeywords.
func NewExtractor(keywords bookqa.KeywordTable) *Extractor {
	if keywords == nil {
		keywords = bookqa.DefaultKeywords()
	}
	return &Extractor{keywords: keywords.Clone()}
}

// Classify returns the intent of question and the entities found in it.
func (e *Extractor) Classify(question string) (bookqa.Intent, []bookqa.Entity) {
	q := strings.ToLower(strings.TrimSpace(question))

	if intent, entities, ok := matchPattern(q); ok {
		return intent, entities
	}

	intent, matched := e.matchKeywords(q)
	return intent, extractEntities(q, matched)
}

func matchPattern(q string) (bookqa.Intent, []bookqa.Entity, bool) {
	for _, p := range compoundPatterns {
		m := p.re.FindStringSubmatch(q)
		if m == nil {
			continue
		}
		entities := []bookqa.Entity{}
		if p.ordinal > 0 {
			if n, ok := parseNumber(m[p.ordinal]); ok {
				entities = append(entities, bookqa.Entity{Text: n, Kind: bookqa.EntityCardinal})
			}
		}
		return p.intent, entities, true
	}
	return bookqa.IntentUnknown, nil, false
}

// matchKeywords returns the first keyword intent with a phrase contained in
// q, along with every phrase of that intent found in q.
func (e *Extractor) matchKeywords(q string) (bookqa.Intent, []string) {
	for _, intent := range bookqa.KeywordIntents {
		var matched []string
		for _, phrase := range e.keywords[intent] {
			if strings.Contains(q, phrase) {
				matched = append(matched, phrase)
			}
		}
		if len(matched) > 0 {
			return intent, matched
		}
	}
	return bookqa.IntentUnknown, nil
}

// extractEntities returns CARDINAL entities for every number in q. When q
// has none it returns TERM entities for the remaining meaningful words,
// skipping words of the keyword phrases that selected the intent.
func extractEntities(q string, matchedPhrases []string) []bookqa.Entity {
	words := wordRe.FindAllString(q, -1)

	entities := []bookqa.Entity{}
	for _, w := range words {
		if n, ok := parseNumber(w); ok {
			entities = append(entities, bookqa.Entity{Text: n, Kind: bookqa.EntityCardinal})
		}
	}
	if len(entities) > 0 {
		return entities
	}

	skip := make(map[string]struct{})
	for _, phrase := range matchedPhrases {
		for _, w := range wordRe.FindAllString(phrase, -1) {
			skip[w] = struct{}{}
		}
	}

	for _, w := range words {
		if utf8.RuneCountInString(w) < minTermLength || bookqa.IsStopword(w) {
			continue
		}
		if _, ok := skip[w]; ok {
			continue
		}
		entities = append(entities, bookqa.Entity{Text: w, Kind: bookqa.EntityTerm})
	}
	return entities
}
