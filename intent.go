package bookqa

import (
	"fmt"
	"strings"
)

// Intent is the classified purpose of a question.
type Intent int

// Intent values. IntentUnknown is the zero value.
const (
	IntentUnknown Intent = iota
	IntentBook
	IntentChapter
	IntentParagraph
	IntentSearch
	IntentHistory
	IntentChapterQuery
)

var intentNames = [...]string{
	IntentUnknown:      "unknown",
	IntentBook:         "book",
	IntentChapter:      "chapter",
	IntentParagraph:    "paragraph",
	IntentSearch:       "search",
	IntentHistory:      "history",
	IntentChapterQuery: "chapter_query",
}

// String returns the intent name used in configuration and logs.
func (i Intent) String() string {
	if i < 0 || int(i) >= len(intentNames) {
		return fmt.Sprintf("intent(%d)", int(i))
	}
	return intentNames[i]
}

// ParseIntent returns the intent with the given name.
func ParseIntent(name string) (Intent, error) {
	for i, n := range intentNames {
		if n == name {
			return Intent(i), nil
		}
	}
	return IntentUnknown, Errorf(EINVALID, "unknown intent %q", name)
}

// KeywordIntents lists the intents selected by keyword lookup, in the order
// they are tested. The first intent with a matching phrase wins.
var KeywordIntents = []Intent{
	IntentBook,
	IntentChapter,
	IntentParagraph,
	IntentSearch,
	IntentHistory,
}

// EntityKind tags an Entity.
type EntityKind string

// Entity kinds.
const (
	// EntityCardinal is a chapter or paragraph ordinal in decimal form.
	EntityCardinal EntityKind = "CARDINAL"
	// EntityTerm is a free-text search token.
	EntityTerm EntityKind = "TERM"
)

// Entity is a typed span extracted from a question.
type Entity struct {
	Text string     `json:"text"`
	Kind EntityKind `json:"kind"`
}

// FirstEntity returns the text of the first entity of the given kind.
func FirstEntity(entities []Entity, kind EntityKind) (string, bool) {
	for _, e := range entities {
		if e.Kind == kind {
			return e.Text, true
		}
	}
	return "", false
}

// Classifier turns question text into an intent and its entities.
type Classifier interface {
	// Classify never fails: unrecognized input yields IntentUnknown.
	// The returned entity slice is never nil.
	Classify(question string) (Intent, []Entity)
}

// KeywordTable maps keyword intents to the phrases that select them.
// Phrases are lower case and matched by substring containment.
type KeywordTable map[Intent][]string

// DefaultKeywords returns a new copy of the built-in keyword table.
func DefaultKeywords() KeywordTable {
	return KeywordTable{
		IntentBook:      {"book", "title", "author", "about", "tell me about", "what is", "genre"},
		IntentChapter:   {"chapter", "chapters", "section"},
		IntentParagraph: {"paragraph", "paragraphs", "text", "content"},
		IntentSearch:    {"search", "find", "look for", "where", "what", "how", "tell me about"},
		IntentHistory:   {"history", "origin", "evolution", "background"},
	}
}

// Clone returns a deep copy of the table with phrases lower-cased and
// trimmed. Blank phrases are dropped.
func (t KeywordTable) Clone() KeywordTable {
	out := make(KeywordTable, len(t))
	for intent, phrases := range t {
		cp := make([]string, 0, len(phrases))
		for _, p := range phrases {
			p = strings.ToLower(strings.TrimSpace(p))
			if p != "" {
				cp = append(cp, p)
			}
		}
		out[intent] = cp
	}
	return out
}

// Validate returns an error if the table names an intent that cannot be
// selected by keyword.
func (t KeywordTable) Validate() error {
	for intent := range t {
		if !isKeywordIntent(intent) {
			return Errorf(EINVALID, "intent %q cannot be selected by keyword", intent)
		}
	}
	return nil
}

func isKeywordIntent(intent Intent) bool {
	for _, k := range KeywordIntents {
		if k == intent {
			return true
		}
	}
	return false
}

var stopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "with": {}, "by": {},
}

// IsStopword reports whether word is ignored as a search term.
func IsStopword(word string) bool {
	_, ok := stopwords[strings.ToLower(word)]
	return ok
}

// FilterTerms lower-cases and trims terms, dropping blanks and stopwords.
// The result is never nil.
func FilterTerms(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" || IsStopword(term) {
			continue
		}
		out = append(out, term)
	}
	return out
}
