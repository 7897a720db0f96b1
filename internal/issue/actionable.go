// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"

	"github.com/venvrun/venvrun/pkg/types"
)

type (
	// ActionableError is a failure venvrun can explain: the step that failed,
	// the path it was looking at and hints on how to fix the project layout.
	//
	// Use New for construction:
	//
	//	err := issue.New("locate marker file").
	//		At(dir).
	//		Hint("Create a %s file in the project root", venv.MarkerFileName).
	//		Wrap(venv.ErrMarkerFileNotFound)
	ActionableError struct {
		// Operation is the failed step as a verb phrase ("resolve interpreter").
		Operation string
		// Path is the file or directory involved, empty when none is.
		Path types.FilesystemPath
		// Hints tell the user how to repair the situation.
		Hints []string
		// Cause is the underlying error, usually one of the launcher sentinels.
		Cause error
	}

	// Builder accumulates the parts of an ActionableError.
	Builder struct {
		err ActionableError
	}
)

// New starts an ActionableError for operation.
func New(operation string) *Builder {
	return &Builder{err: ActionableError{Operation: operation}}
}

// Wrap attaches operation and path to err. A nil err stays nil.
func Wrap(err error, operation string, path types.FilesystemPath) error {
	if err == nil {
		return nil
	}
	return New(operation).At(path).Wrap(err)
}

// At records the path involved.
func (b *Builder) At(path types.FilesystemPath) *Builder {
	b.err.Path = path
	return b
}

// Hint adds a fix-it hint. Arguments are applied fmt.Sprintf style.
func (b *Builder) Hint(format string, args ...any) *Builder {
	if len(args) > 0 {
		format = fmt.Sprintf(format, args...)
	}
	b.err.Hints = append(b.err.Hints, format)
	return b
}

// Wrap finishes the error with cause, which may be nil.
func (b *Builder) Wrap(cause error) error {
	ae := b.err
	ae.Hints = append([]string(nil), b.err.Hints...)
	ae.Cause = cause
	return &ae
}

// Error renders "failed to <operation>: <path>: <cause>", leaving out the
// parts that are not set.
func (e *ActionableError) Error() string {
	parts := []string{"failed to " + e.Operation}
	if e.Path != "" {
		parts = append(parts, e.Path.String())
	}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	return strings.Join(parts, ": ")
}

// Unwrap returns the cause for errors.Is/As.
func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// Format renders the error followed by its hints as a bullet list. With
// verbose set, the numbered chain of wrapped causes is appended.
func (e *ActionableError) Format(verbose bool) string {
	var msg strings.Builder
	msg.WriteString(e.Error())

	if len(e.Hints) > 0 {
		msg.WriteString("\n")
		for _, hint := range e.Hints {
			msg.WriteString("\n  • " + hint)
		}
	}

	if verbose {
		if chain := causeChain(e.Cause); len(chain) > 0 {
			msg.WriteString("\n\nError chain:")
			for i, link := range chain {
				fmt.Fprintf(&msg, "\n  %d. %s", i+1, link)
			}
		}
	}

	return msg.String()
}

// PathOf returns the path recorded by the outermost ActionableError in err's chain.
func PathOf(err error) (types.FilesystemPath, bool) {
	var ae *ActionableError
	if !errors.As(err, &ae) || ae.Path == "" {
		return "", false
	}
	return ae.Path, true
}

func causeChain(err error) []string {
	var chain []string
	for ; err != nil; err = errors.Unwrap(err) {
		chain = append(chain, err.Error())
	}
	return chain
}
