package main

import (
	"fmt"

	"github.com/fwojciec/bookqa"
)

// Run executes the info command.
func (c *InfoCmd) Run(deps *Dependencies) error {
	book, err := deps.Repository.FindBook(deps.Ctx, bookqa.DefaultBookID)
	if bookqa.ErrorCode(err) == bookqa.ENOTFOUND {
		fmt.Fprintln(deps.Stdout, "No book loaded. Use 'bookqa load' to import one.")
		return nil
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookqa.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, bookqa.FormatBook(book))
	return nil
}
