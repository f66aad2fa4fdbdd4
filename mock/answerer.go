package mock

import (
	"context"

	"github.com/fwojciec/bookqa"
)

var _ bookqa.Answerer = (*Answerer)(nil)

// Answerer is a mock implementation of bookqa.Answerer.
type Answerer struct {
	AnswerQuestionFn func(ctx context.Context, question string) string
}

func (a *Answerer) AnswerQuestion(ctx context.Context, question string) string {
	return a.AnswerQuestionFn(ctx, question)
}
