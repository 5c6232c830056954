// SPDX-License-Identifier: MPL-2.0

// Package podman translates declarative image-build configuration into
// podman CLI invocations and executes them through a subprocess delegate.
// It owns the argument grammar (global flags, then operation, then
// operation flags, then positionals) and the guarantee that registry
// passwords never leak into logs or surfaced errors.
package podman

import (
	"context"
	"os"
	"os/exec"

	"github.com/charmbracelet/log"
)

// Executor is the high-level entry point for podman operations. One method
// per operation; each assembles a fresh Command, executes it synchronously,
// and propagates typed failures. Executors are safe for concurrent use:
// the global options are read-only and every call builds its own Command.
type Executor struct {
	logger   *log.Logger
	global   GlobalOptions
	delegate Delegate
}

// NewExecutor creates an Executor over the given global options. A nil
// delegate selects the default subprocess delegate; a nil logger gets a
// stderr logger with a "podman" prefix.
func NewExecutor(logger *log.Logger, global GlobalOptions, delegate Delegate) *Executor {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "podman",
		})
	}
	if delegate == nil {
		delegate = NewProcessDelegate()
	}
	return &Executor{
		logger:   logger,
		global:   global,
		delegate: delegate,
	}
}

// Available reports whether the configured podman binary can be resolved.
func (e *Executor) Available() bool {
	_, err := exec.LookPath(e.global.BinaryOrDefault())
	return err == nil
}

// Build runs podman build for the given spec and returns the captured
// output lines. The last line conventionally carries the image hash; use
// ImageHash to extract it.
func (e *Executor) Build(ctx context.Context, spec BuildSpec) ([]string, error) {
	cmd, err := NewBuildCommand(e.global, spec, e.delegate)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("building image", "containerfile", spec.ContainerFile, "format", spec.Format)
	return cmd.Execute(ctx)
}

// Tag runs podman tag, attaching fullImageName to the image identified by
// imageHash (as produced by Build).
func (e *Executor) Tag(ctx context.Context, imageHash, fullImageName string) error {
	cmd, err := NewTagCommand(e.global, imageHash, fullImageName, e.delegate)
	if err != nil {
		return err
	}

	e.logger.Debug("tagging image", "hash", imageHash, "name", fullImageName)
	_, err = cmd.Execute(ctx)
	return err
}

// Save runs podman save, writing fullImageName into the named archive.
func (e *Executor) Save(ctx context.Context, archiveName, fullImageName string) error {
	cmd, err := NewSaveCommand(e.global, archiveName, fullImageName, e.delegate)
	if err != nil {
		return err
	}

	e.logger.Debug("saving image", "archive", archiveName, "name", fullImageName)
	_, err = cmd.Execute(ctx)
	return err
}

// Push runs podman push for the fully qualified image name.
func (e *Executor) Push(ctx context.Context, fullImageName string) error {
	cmd, err := NewPushCommand(e.global, fullImageName, e.delegate)
	if err != nil {
		return err
	}

	e.logger.Debug("pushing image", "name", fullImageName)
	_, err = cmd.Execute(ctx)
	return err
}

// Login runs podman login against the credentials' registry. On failure
// the underlying execution error is not propagated as-is: podman echoes
// the full command line in its failure messages, so the message is first
// scrubbed of the password, the scrubbed text is logged, and a LoginError
// carrying only the scrubbed text is returned. The raw password is
// unreachable through the returned error, its unwrap chain, or the log.
func (e *Executor) Login(ctx context.Context, creds RegistryCredentials) error {
	cmd, err := NewLoginCommand(e.global, creds, e.delegate)
	if err != nil {
		return err
	}

	if _, err := cmd.Execute(ctx); err != nil {
		msg := RedactPassword(err.Error(), creds.Password)
		e.logger.Error(msg)
		return &LoginError{Registry: creds.Registry, Message: msg}
	}
	return nil
}

// Version runs podman version and returns its output lines.
func (e *Executor) Version(ctx context.Context) ([]string, error) {
	return NewVersionCommand(e.global, e.delegate).Execute(ctx)
}

// RemoveLocalImage runs podman rmi, removing the image from local storage.
func (e *Executor) RemoveLocalImage(ctx context.Context, fullImageName string) error {
	cmd, err := NewRemoveImageCommand(e.global, fullImageName, e.delegate)
	if err != nil {
		return err
	}

	e.logger.Debug("removing local image", "name", fullImageName)
	_, err = cmd.Execute(ctx)
	return err
}
