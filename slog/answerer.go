package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/bookqa"
	"github.com/google/uuid"
)

// Ensure LoggingAnswerer implements bookqa.Answerer.
var _ bookqa.Answerer = (*LoggingAnswerer)(nil)

// LoggingAnswerer wraps an Answerer and logs each question under a fresh
// request id.
type LoggingAnswerer struct {
	next   bookqa.Answerer
	logger *slog.Logger
}

// NewLoggingAnswerer creates a new LoggingAnswerer.
func NewLoggingAnswerer(next bookqa.Answerer, logger *slog.Logger) *LoggingAnswerer {
	return &LoggingAnswerer{next: next, logger: logger}
}

// AnswerQuestion delegates to the wrapped answerer and logs the exchange.
// The request id is attached to the context passed on, so records logged
// further down through a ContextHandler carry the same id.
func (a *LoggingAnswerer) AnswerQuestion(ctx context.Context, question string) (response string) {
	id := uuid.New().String()
	ctx = WithRequestID(ctx, id)
	defer func(begin time.Time) {
		a.logger.InfoContext(ctx, "answer",
			RequestIDKey, id,
			"question", question,
			"bytes", len(response),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return a.next.AnswerQuestion(ctx, question)
}
