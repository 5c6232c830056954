// SPDX-License-Identifier: MPL-2.0

// Package forgefile defines the schema and parsing for forgefile TOML
// files: the declarative description of a container image build that
// podforge translates into podman invocations.
package forgefile

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultName is the forgefile podforge looks for in the working directory.
const DefaultName = "forgefile.toml"

const (
	// FormatOCI produces images in the OCI image format.
	FormatOCI = "oci"
	// FormatDocker produces images in the legacy Docker image format.
	FormatDocker = "docker"
)

var (
	// ErrInvalidForgefile is the sentinel error wrapped by ValidationError.
	ErrInvalidForgefile = errors.New("invalid forgefile")
)

type (
	// Forgefile is the root of the declarative build description.
	Forgefile struct {
		// Image holds the single image this forgefile builds.
		Image ImageSpec `toml:"image"`
		// Registry optionally names the registry that push and login
		// target. Credentials never live here; they come from the
		// environment or flags at invocation time.
		Registry string `toml:"registry,omitempty"`

		// FilePath is the location this forgefile was loaded from.
		// Not part of the TOML schema.
		FilePath string `toml:"-"`
	}

	// ImageSpec describes how to build and name one image.
	ImageSpec struct {
		// Name is the repository path of the image (e.g. "team/app"). Required.
		Name string `toml:"name"`
		// Tags are the tags applied after a successful build. At least one.
		Tags []string `toml:"tags"`
		// ContainerFile is the Containerfile to build. Defaults to "Containerfile".
		ContainerFile string `toml:"containerfile,omitempty"`
		// Format is the output image format: "oci" (default) or "docker".
		Format string `toml:"format,omitempty"`
		// NoCache disables build caching.
		NoCache bool `toml:"no_cache,omitempty"`
		// Squash squashes the newly built layers.
		Squash bool `toml:"squash,omitempty"`
		// SquashAll squashes all layers including the base image's.
		SquashAll bool `toml:"squash_all,omitempty"`
		// Layers, Pull and PullAlways are tri-state: omitted keys leave
		// the corresponding podman flag out entirely.
		Layers     *bool `toml:"layers,omitempty"`
		Pull       *bool `toml:"pull,omitempty"`
		PullAlways *bool `toml:"pull_always,omitempty"`
		// Platform is the target platform (e.g. "linux/arm64").
		Platform string `toml:"platform,omitempty"`
		// Args are build arguments, emitted in declaration order. An
		// array of tables rather than a map: order is significant to
		// podman's build cache.
		Args []BuildArg `toml:"args,omitempty"`
	}

	// BuildArg is one named build argument.
	BuildArg struct {
		Name  string `toml:"name"`
		Value string `toml:"value"`
	}

	// ValidationError is returned when a forgefile is structurally valid
	// TOML but violates the schema.
	ValidationError struct {
		Field  string
		Reason string
	}
)

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid forgefile: %s: %s", e.Field, e.Reason)
}

// Unwrap returns ErrInvalidForgefile for errors.Is compatibility.
func (e *ValidationError) Unwrap() error { return ErrInvalidForgefile }

// Validate checks schema constraints that TOML decoding cannot express.
func (f *Forgefile) Validate() error {
	if strings.TrimSpace(f.Image.Name) == "" {
		return &ValidationError{Field: "image.name", Reason: "must be non-empty"}
	}
	if len(f.Image.Tags) == 0 {
		return &ValidationError{Field: "image.tags", Reason: "at least one tag is required"}
	}
	for i, tag := range f.Image.Tags {
		if strings.TrimSpace(tag) == "" {
			return &ValidationError{Field: fmt.Sprintf("image.tags[%d]", i), Reason: "must be non-empty"}
		}
	}
	switch f.Image.Format {
	case "", FormatOCI, FormatDocker:
	default:
		return &ValidationError{Field: "image.format", Reason: fmt.Sprintf("unknown format %q (valid: oci, docker)", f.Image.Format)}
	}
	for i, arg := range f.Image.Args {
		if strings.TrimSpace(arg.Name) == "" {
			return &ValidationError{Field: fmt.Sprintf("image.args[%d].name", i), Reason: "must be non-empty"}
		}
	}
	return nil
}

// FullNames returns the fully qualified image names this forgefile
// produces, one per tag, in tag order. The registry prefix is applied
// when set.
func (f *Forgefile) FullNames() []string {
	names := make([]string, 0, len(f.Image.Tags))
	for _, tag := range f.Image.Tags {
		name := f.Image.Name + ":" + tag
		if f.Registry != "" {
			name = f.Registry + "/" + name
		}
		names = append(names, name)
	}
	return names
}

// ContainerFileOrDefault returns the configured Containerfile, falling
// back to "Containerfile".
func (s ImageSpec) ContainerFileOrDefault() string {
	if strings.TrimSpace(s.ContainerFile) == "" {
		return "Containerfile"
	}
	return s.ContainerFile
}

// FormatOrDefault returns the configured format, falling back to "oci".
func (s ImageSpec) FormatOrDefault() string {
	if s.Format == "" {
		return FormatOCI
	}
	return s.Format
}
