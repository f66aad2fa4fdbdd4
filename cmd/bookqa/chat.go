package main

import (
	"bufio"
	"fmt"
	"strings"
)

const chatBanner = `Welcome! I'm your book assistant.

You can ask me about:
  Book information - 'Tell me about the book'
  Chapters         - 'What does chapter 1 say?'
  Paragraphs       - 'Show paragraph 2 in chapter 1'
  Search           - 'Search for insurance claims'

Type 'exit' to quit.`

// exitWords end a chat session.
var exitWords = map[string]bool{"exit": true, "quit": true, "bye": true}

// Run executes the chat command.
func (c *ChatCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, chatBanner)

	scanner := bufio.NewScanner(deps.Stdin)
	for {
		fmt.Fprint(deps.Stdout, "\nYou: ")
		if !scanner.Scan() {
			fmt.Fprintln(deps.Stdout)
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			return nil
		}

		question := strings.TrimSpace(scanner.Text())
		switch {
		case question == "":
			fmt.Fprintln(deps.Stdout, "Please type your question.")
			continue
		case exitWords[strings.ToLower(question)]:
			fmt.Fprintln(deps.Stdout, "Goodbye! Have a great day!")
			return nil
		}

		if err := deps.Ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "Assistant: %s\n", deps.Answerer.AnswerQuestion(deps.Ctx, question))
	}
}
