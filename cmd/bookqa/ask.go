package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/bookqa"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	question := strings.TrimSpace(strings.Join(c.Question, " "))
	if question == "" {
		fmt.Fprintln(deps.Stderr, "error: please provide a question")
		return bookqa.Errorf(bookqa.EINVALID, "question required")
	}

	fmt.Fprintln(deps.Stdout, deps.Answerer.AnswerQuestion(deps.Ctx, question))
	return nil
}
