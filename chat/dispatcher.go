// Package chat answers questions about the book by dispatching classified
// intents to lookup handlers or to the search engine.
package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/fwojciec/bookqa"
	"github.com/fwojciec/bookqa/search"
)

// Ensure Dispatcher implements bookqa.Answerer at compile time.
var _ bookqa.Answerer = (*Dispatcher)(nil)

// Preview lengths, in characters, for chapter and paragraph content.
const (
	ChapterPreviewLength      = 200
	ChapterQueryPreviewLength = 500
	ParagraphPreviewLength    = 200
)

// Fixed responses.
const (
	UnknownMessage          = "I'm not sure what you're asking. Can you clarify?"
	NoBookMessage           = "No book information found."
	MissingChapterMessage   = "Please specify a chapter number."
	MissingParagraphMessage = "Please specify a paragraph number."
	UnavailableMessage      = "Sorry, I can't reach the book right now. Please try again in a moment."
	FailureMessage          = "Sorry, I ran into a problem answering that. Please try asking your question differently."
)

// Dispatcher routes each intent to its handler.
type Dispatcher struct {
	classifier bookqa.Classifier
	repo       bookqa.Repository
	search     *search.Engine
	logger     *slog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used to report faults.
// Faults are discarded if not specified.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// NewDispatcher creates a Dispatcher that classifies questions with
// classifier and reads the book from repo.
func NewDispatcher(classifier bookqa.Classifier, repo bookqa.Repository, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		classifier: classifier,
		repo:       repo,
		search:     search.NewEngine(repo),
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// AnswerQuestion classifies question and answers it. It never fails:
// repository faults, unexpected errors and panics are logged and reported
// as an apology.
func (d *Dispatcher) AnswerQuestion(ctx context.Context, question string) (answer string) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.ErrorContext(ctx, "answer panicked", "question", question, "panic", r)
			answer = FailureMessage
		}
	}()

	intent, entities := d.classifier.Classify(question)

	text, err := d.Answer(ctx, intent, entities)
	if err != nil {
		d.logger.ErrorContext(ctx, "answer failed",
			"question", question,
			"intent", intent.String(),
			"code", bookqa.ErrorCode(err),
			"err", err,
		)
		return Apology(err)
	}
	return text
}

// Answer produces the response for an already classified question.
// Returned errors are repository or internal faults; expected conditions
// such as a missing chapter number are answered with text.
func (d *Dispatcher) Answer(ctx context.Context, intent bookqa.Intent, entities []bookqa.Entity) (string, error) {
	switch intent {
	case bookqa.IntentBook:
		return d.answerBook(ctx)
	case bookqa.IntentChapter:
		return d.answerChapter(ctx, entities)
	case bookqa.IntentParagraph:
		return d.answerParagraph(ctx, entities)
	case bookqa.IntentChapterQuery:
		return d.answerChapterQuery(ctx, entities)
	case bookqa.IntentHistory:
		return d.search.History(ctx)
	case bookqa.IntentSearch:
		return d.search.Search(ctx, entityTexts(entities))
	case bookqa.IntentUnknown:
		return UnknownMessage, nil
	}
	return "", bookqa.Errorf(bookqa.EINTERNAL, "unhandled intent %s", intent)
}

// Apology converts a fault into user-facing text.
func Apology(err error) string {
	if bookqa.ErrorCode(err) == bookqa.EUNAVAILABLE {
		return UnavailableMessage
	}
	return FailureMessage
}

func (d *Dispatcher) answerBook(ctx context.Context) (string, error) {
	book, err := d.repo.FindBook(ctx, bookqa.DefaultBookID)
	if bookqa.ErrorCode(err) == bookqa.ENOTFOUND {
		return NoBookMessage, nil
	} else if err != nil {
		return "", err
	}
	return bookqa.FormatBook(book), nil
}

func (d *Dispatcher) answerChapter(ctx context.Context, entities []bookqa.Entity) (string, error) {
	ch, missing, err := d.findChapter(ctx, entities)
	if ch == nil {
		return missing, err
	}
	return fmt.Sprintf("Chapter %d: %s\nContent: %s%s",
		ch.Number, ch.Title, bookqa.Truncate(ch.Content, ChapterPreviewLength), bookqa.Ellipsis), nil
}

func (d *Dispatcher) answerChapterQuery(ctx context.Context, entities []bookqa.Entity) (string, error) {
	ch, missing, err := d.findChapter(ctx, entities)
	if ch == nil {
		return missing, err
	}
	return fmt.Sprintf("Here's what Chapter %d says:\n%s\n\n%s%s",
		ch.Number, ch.Title, bookqa.Truncate(ch.Content, ChapterQueryPreviewLength), bookqa.Ellipsis), nil
}

// findChapter looks up the chapter named by the first CARDINAL entity.
// When it returns a nil chapter and nil error, the string is the response
// explaining why.
func (d *Dispatcher) findChapter(ctx context.Context, entities []bookqa.Entity) (*bookqa.Chapter, string, error) {
	text, ok := bookqa.FirstEntity(entities, bookqa.EntityCardinal)
	if !ok {
		return nil, MissingChapterMessage, nil
	}
	notFound := fmt.Sprintf("Chapter %s not found.", text)

	n, err := strconv.Atoi(text)
	if err != nil || n < 1 {
		return nil, notFound, nil
	}

	ch, err := d.repo.FindChapterByNumber(ctx, n)
	if bookqa.ErrorCode(err) == bookqa.ENOTFOUND {
		return nil, notFound, nil
	} else if err != nil {
		return nil, "", err
	}
	return ch, "", nil
}

func (d *Dispatcher) answerParagraph(ctx context.Context, entities []bookqa.Entity) (string, error) {
	text, ok := bookqa.FirstEntity(entities, bookqa.EntityCardinal)
	if !ok {
		return MissingParagraphMessage, nil
	}
	notFound := fmt.Sprintf("Paragraph %s not found.", text)

	n, err := strconv.Atoi(text)
	if err != nil || n < 1 {
		return notFound, nil
	}

	m, err := d.repo.FindParagraphByNumber(ctx, n)
	if bookqa.ErrorCode(err) == bookqa.ENOTFOUND {
		return notFound, nil
	} else if err != nil {
		return "", err
	}
	return fmt.Sprintf("Paragraph %d (Chapter %d): %s%s",
		m.Paragraph.Number, m.ChapterNumber,
		bookqa.Truncate(m.Paragraph.Content, ParagraphPreviewLength), bookqa.Ellipsis), nil
}

// entityTexts returns the text of every entity. Numbers are valid search
// terms too.
func entityTexts(entities []bookqa.Entity) []string {
	texts := make([]string, 0, len(entities))
	for _, e := range entities {
		texts = append(texts, e.Text)
	}
	return texts
}
