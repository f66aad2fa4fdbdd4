package bookqa

import "context"

// Answerer answers natural language questions about the book.
type Answerer interface {
	// AnswerQuestion always returns user-facing text. Faults are reported
	// as apologies rather than errors.
	AnswerQuestion(ctx context.Context, question string) string
}
