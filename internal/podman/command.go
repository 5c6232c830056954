// SPDX-License-Identifier: MPL-2.0

package podman

import (
	"context"
	"slices"
)

// Command is one immutable, fully assembled podman invocation: the binary,
// its ordered argument vector, and the delegate that will run it. Commands
// are created fresh per call by the New*Command constructors, executed at
// most once, and never shared, so no locking is needed around them.
type Command struct {
	binary   string
	args     []string
	delegate Delegate
}

// newCommand binds an assembled argument vector to a delegate.
func newCommand(global GlobalOptions, args []string, delegate Delegate) *Command {
	return &Command{
		binary:   global.BinaryOrDefault(),
		args:     args,
		delegate: delegate,
	}
}

// Argv returns a copy of the full command line, binary included.
func (c *Command) Argv() []string {
	return append([]string{c.binary}, slices.Clone(c.args)...)
}

// Execute runs the command through the delegate and returns the captured
// output lines in emission order. By podman convention the last line of a
// build carries the image hash. Failures surface as *ExecutionError.
func (c *Command) Execute(ctx context.Context) ([]string, error) {
	return c.delegate.Execute(ctx, c.binary, c.args)
}
