// SPDX-License-Identifier: MPL-2.0

package podman

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidConfiguration is the sentinel error wrapped by ConfigurationError.
	ErrInvalidConfiguration = errors.New("invalid command configuration")

	// ErrCommandFailed is the sentinel error wrapped by ExecutionError.
	ErrCommandFailed = errors.New("podman command failed")

	// ErrLoginFailed is the sentinel error wrapped by LoginError.
	ErrLoginFailed = errors.New("podman login failed")
)

type (
	// ConfigurationError is returned by command constructors when a
	// required input is missing or malformed. No process is spawned.
	ConfigurationError struct {
		// Op is the podman operation being configured (e.g. "build", "tag").
		Op string
		// Field is the offending input.
		Field string
		// Reason describes why the input was rejected.
		Reason string
	}

	// ExecutionError is returned when the delegate reports a failure:
	// either the process exited non-zero or it could not be launched.
	// It carries the full argument vector and the captured output for
	// diagnosis. Login failures are never surfaced as ExecutionError;
	// the Executor converts them to redacted LoginError values.
	ExecutionError struct {
		// Argv is the full command line, binary included.
		Argv []string
		// ExitCode is the process exit code, or -1 when the process
		// could not be launched at all.
		ExitCode int
		// Output holds the captured output lines up to the failure.
		Output []string
		// Cause is the underlying exec error.
		Cause error
	}

	// LoginError is the redacted replacement for an ExecutionError raised
	// by a login attempt. It carries only the scrubbed message and does
	// not wrap the original error, so the raw password is unreachable
	// through any unwrap path.
	LoginError struct {
		// Registry is the registry the login targeted.
		Registry string
		// Message is the scrubbed diagnostic text.
		Message string
	}
)

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s configuration: %s: %s", e.Op, e.Field, e.Reason)
}

// Unwrap returns ErrInvalidConfiguration for errors.Is compatibility.
func (e *ConfigurationError) Unwrap() error { return ErrInvalidConfiguration }

// Error implements the error interface. The message embeds the command
// line and the captured output, matching what podman printed.
func (e *ExecutionError) Error() string {
	msg := fmt.Sprintf("command %q failed with exit code %d", strings.Join(e.Argv, " "), e.ExitCode)
	if len(e.Output) > 0 {
		msg += ": " + strings.Join(e.Output, "\n")
	}
	return msg
}

// Unwrap returns the sentinel and the underlying exec error so callers can
// match either with errors.Is.
func (e *ExecutionError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrCommandFailed}
	}
	return []error{ErrCommandFailed, e.Cause}
}

// Error implements the error interface.
func (e *LoginError) Error() string { return e.Message }

// Unwrap returns ErrLoginFailed for errors.Is compatibility. The original
// execution error is deliberately not part of the chain.
func (e *LoginError) Unwrap() error { return ErrLoginFailed }

// requireValue rejects empty required inputs with a ConfigurationError.
func requireValue(op, field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ConfigurationError{Op: op, Field: field, Reason: "must be non-empty"}
	}
	return nil
}
