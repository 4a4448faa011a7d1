package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/MrSnakeDoc/lc/internal/domain"
)

var errInvalidArgs = &usageError{msg: "Invalid number of arguments."}

// usageError is a mistake on the command line.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// fatalError marks an infrastructure failure: configuration folder,
// settings, shortcut file or listener.
type fatalError struct {
	err error
}

func (e *fatalError) Error() string { return e.err.Error() }

func (e *fatalError) Unwrap() error { return e.err }

func fatal(err error) error {
	if err == nil {
		return nil
	}
	return &fatalError{err: err}
}

func (c *CLI) printUserError(err error) {
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		fmt.Fprintln(c.Stdout, color.HiRedString("%s", nf.Error()))
		if len(nf.Suggestions) > 0 {
			fmt.Fprintf(c.Stdout, "Did you mean: %s?\n",
				color.New(color.FgWhite, color.Bold).Sprint(strings.Join(nf.Suggestions, ", ")))
		}
		return
	}
	fmt.Fprintln(c.Stdout, color.HiRedString("%s", err.Error()))
}
