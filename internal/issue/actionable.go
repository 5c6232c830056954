// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
)

type (
	// ActionableError is an error with context for user-facing messages:
	// what operation failed, what resource was involved, and how to fix it.
	//
	// Use the ErrorContext builder for construction:
	//
	//	err := issue.NewErrorContext().
	//		WithOperation("load forgefile").
	//		WithResource("./forgefile.toml").
	//		WithSuggestion("Run 'podforge init' to create one").
	//		Wrap(originalErr).
	//		BuildError()
	ActionableError struct {
		// Operation describes what was being attempted (e.g. "build image").
		Operation string

		// Resource identifies the file, image, or registry involved (optional).
		Resource string

		// Suggestions provides hints on how to fix the issue (optional).
		Suggestions []string

		// Cause is the underlying error (optional).
		Cause error
	}

	// ErrorContext is a fluent builder for ActionableError values. Context
	// can be accumulated before the error occurs and completed at the
	// failure site.
	ErrorContext struct {
		operation   string
		resource    string
		suggestions []string
		cause       error
	}
)

// NewErrorContext creates a new ErrorContext builder.
func NewErrorContext() *ErrorContext {
	return &ErrorContext{}
}

// WrapWithOperation wraps an error with operation context. Returns nil for
// a nil error so it can be used on the happy path without a check.
func WrapWithOperation(err error, operation string) *ActionableError {
	if err == nil {
		return nil
	}
	return &ActionableError{
		Operation: operation,
		Cause:     err,
	}
}

// Error implements the error interface. Returns the concise form used in
// non-verbose output.
func (e *ActionableError) Error() string {
	var msg strings.Builder

	msg.WriteString("failed to ")
	msg.WriteString(e.Operation)

	if e.Resource != "" {
		msg.WriteString(": ")
		msg.WriteString(e.Resource)
	}

	if e.Cause != nil {
		msg.WriteString(": ")
		msg.WriteString(e.Cause.Error())
	}

	return msg.String()
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// Format returns the error with its suggestions; in verbose mode the full
// error chain is appended.
func (e *ActionableError) Format(verbose bool) string {
	var msg strings.Builder

	msg.WriteString(e.Error())

	for _, suggestion := range e.Suggestions {
		msg.WriteString("\n  • ")
		msg.WriteString(suggestion)
	}

	if verbose && e.Cause != nil {
		msg.WriteString("\n\nError chain:")
		err := e.Cause
		depth := 1
		for err != nil {
			fmt.Fprintf(&msg, "\n  %d. %s", depth, err.Error())
			err = errors.Unwrap(err)
			depth++
		}
	}

	return msg.String()
}

// HasSuggestions reports whether any suggestions are attached.
func (e *ActionableError) HasSuggestions() bool {
	return len(e.Suggestions) > 0
}

// WithOperation sets the operation being performed, a verb phrase like
// "build image" or "push image".
func (c *ErrorContext) WithOperation(op string) *ErrorContext {
	c.operation = op
	return c
}

// WithResource sets the resource (file, image name, registry) involved.
func (c *ErrorContext) WithResource(res string) *ErrorContext {
	c.resource = res
	return c
}

// WithSuggestion adds a suggestion for how to fix the issue. Can be called
// multiple times.
func (c *ErrorContext) WithSuggestion(sug string) *ErrorContext {
	c.suggestions = append(c.suggestions, sug)
	return c
}

// Wrap records the underlying error as the cause.
func (c *ErrorContext) Wrap(err error) *ErrorContext {
	c.cause = err
	return c
}

// Build creates an ActionableError from the context. Returns nil when no
// operation is set; the operation is required.
func (c *ErrorContext) Build() *ActionableError {
	if c.operation == "" {
		return nil
	}
	return &ActionableError{
		Operation:   c.operation,
		Resource:    c.resource,
		Suggestions: c.suggestions,
		Cause:       c.cause,
	}
}

// BuildError creates the ActionableError as a plain error, for direct use
// in return statements.
func (c *ErrorContext) BuildError() error {
	if err := c.Build(); err != nil {
		return err
	}
	return nil
}
