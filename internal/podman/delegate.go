// SPDX-License-Identifier: MPL-2.0

package podman

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

type (
	// ExecCommandFunc is the function signature for creating exec.Cmd.
	// This allows injection of mock implementations for testing.
	ExecCommandFunc func(ctx context.Context, name string, arg ...string) *exec.Cmd

	// Delegate executes a fully assembled argument vector as a subprocess
	// and returns the captured stdout as ordered lines. It fails with an
	// *ExecutionError on non-zero exit or launch failure. The delegate
	// owns process lifetime and stream draining; any timeout or
	// cancellation policy is applied through the context.
	Delegate interface {
		Execute(ctx context.Context, name string, args []string) ([]string, error)
	}

	// ProcessDelegateOption configures a ProcessDelegate.
	ProcessDelegateOption func(*ProcessDelegate)

	// ProcessDelegate is the default Delegate. It spawns the binary,
	// captures stdout and stderr separately, and reports failures with
	// the full command line and both streams attached.
	ProcessDelegate struct {
		execCommand ExecCommandFunc
	}

	// DryRunDelegate logs the command line it would run without spawning
	// anything. Execute always succeeds with no output lines.
	DryRunDelegate struct {
		Logger *log.Logger
	}
)

// WithExecCommand sets a custom exec command function for testing.
func WithExecCommand(fn ExecCommandFunc) ProcessDelegateOption {
	return func(d *ProcessDelegate) {
		d.execCommand = fn
	}
}

// NewProcessDelegate creates the default subprocess delegate.
func NewProcessDelegate(opts ...ProcessDelegateOption) *ProcessDelegate {
	d := &ProcessDelegate{
		execCommand: exec.CommandContext,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Execute runs the argument vector and returns stdout split into lines,
// in the order the process emitted them. On failure it returns an
// *ExecutionError carrying the argv, the exit code (-1 if the process
// never launched), and the combined captured output.
func (d *ProcessDelegate) Execute(ctx context.Context, name string, args []string) ([]string, error) {
	cmd := d.execCommand(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	lines := splitLines(stdout.String())
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return nil, &ExecutionError{
			Argv:     append([]string{name}, args...),
			ExitCode: exitCode,
			Output:   append(lines, splitLines(stderr.String())...),
			Cause:    err,
		}
	}

	return lines, nil
}

// Execute logs the command line and returns no output.
func (d *DryRunDelegate) Execute(_ context.Context, name string, args []string) ([]string, error) {
	if d.Logger != nil {
		d.Logger.Info("dry run", "cmd", name+" "+strings.Join(args, " "))
	}
	return nil, nil
}

// splitLines splits captured process output into lines, dropping a single
// trailing newline so that a final "abc123\n" yields one line, not two.
func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}
