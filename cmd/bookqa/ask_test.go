package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/bookqa"
	main "github.com/fwojciec/bookqa/cmd/bookqa"
	"github.com/fwojciec/bookqa/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("joins words and prints answer", func(t *testing.T) {
		t.Parallel()

		var got string
		answerer := &mock.Answerer{
			AnswerQuestionFn: func(_ context.Context, question string) string {
				got = question
				return "It is about insurance."
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Answerer: answerer,
		}

		cmd := &main.AskCmd{Question: []string{"What", "is", "the", "book", "about?"}}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "What is the book about?", got)
		assert.Equal(t, "It is about insurance.\n", stdout.String())
	})

	t.Run("rejects blank question", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
		}

		cmd := &main.AskCmd{Question: []string{"  "}}
		err := cmd.Run(deps)

		assert.Equal(t, bookqa.EINVALID, bookqa.ErrorCode(err))
		assert.Contains(t, stderr.String(), "please provide a question")
	})
}
