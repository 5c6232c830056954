// SPDX-License-Identifier: MPL-2.0

package podman

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// FormatOCI produces images in the OCI image format.
	FormatOCI ImageFormat = "oci"
	// FormatDocker produces images in the legacy Docker image format.
	FormatDocker ImageFormat = "docker"

	// TLSVerifyDefault leaves TLS verification to the podman defaults.
	TLSVerifyDefault TLSVerify = ""
	// TLSVerifyEnabled requires HTTPS and verified certificates for registry contacts.
	TLSVerifyEnabled TLSVerify = "true"
	// TLSVerifyDisabled allows contacting registries over plain HTTP.
	TLSVerifyDisabled TLSVerify = "false"
)

var (
	// ErrInvalidImageFormat is the sentinel error wrapped by InvalidImageFormatError.
	ErrInvalidImageFormat = errors.New("invalid image format")

	// ErrInvalidTLSVerify is the sentinel error wrapped by InvalidTLSVerifyError.
	ErrInvalidTLSVerify = errors.New("invalid tls-verify mode")
)

type (
	// ImageFormat selects the output format of a built image.
	// The zero value ("") is invalid: build specs must state a format.
	ImageFormat string

	// InvalidImageFormatError is returned when an ImageFormat is not a recognized format.
	InvalidImageFormatError struct {
		Value ImageFormat
	}

	// TLSVerify is the tri-state TLS verification mode applied to every
	// registry-facing command. The zero value ("") means "not specified"
	// and emits no flag.
	TLSVerify string

	// InvalidTLSVerifyError is returned when a TLSVerify value is not a recognized mode.
	InvalidTLSVerifyError struct {
		Value TLSVerify
	}

	// GlobalOptions holds the root-level podman flags that precede every
	// subcommand. It is supplied once per Executor and never mutated, so
	// concurrent reads are safe.
	GlobalOptions struct {
		// Binary is the podman binary to invoke. Empty means "podman",
		// resolved from PATH by the delegate.
		Binary string
		// ConnectionURI selects the podman service endpoint (--url).
		ConnectionURI string
		// Root is an alternate storage directory (--root).
		Root string
		// TLSVerify controls registry TLS verification (--tls-verify).
		TLSVerify TLSVerify
	}

	// BuildArg is a single --build-arg entry. Build args are kept as an
	// ordered slice rather than a map: podman caches on the argument list,
	// so caller-supplied order must survive into the argv.
	BuildArg struct {
		Name  string
		Value string
	}

	// BuildSpec describes one image build. Optional flags use pointers so
	// that "not set" is distinguishable from an explicit false: an unset
	// field never injects a flag.
	BuildSpec struct {
		// ContainerFile is the Containerfile to build. Required.
		ContainerFile string
		// Format is the output image format. Required.
		Format ImageFormat
		// NoCache disables build caching.
		NoCache bool
		// Squash squashes the newly built layers into a single layer.
		Squash bool
		// SquashAll squashes all layers, including those of the base image.
		// Independent of Squash; podman decides what both set means.
		SquashAll bool
		// Layers controls intermediate layer caching (--layers=<bool>).
		Layers *bool
		// Pull attempts to pull a newer base image (--pull=<bool>).
		Pull *bool
		// PullAlways always pulls the base image (--pull-always=<bool>).
		PullAlways *bool
		// Platform is the target platform (--platform=<os/arch>).
		Platform string
		// BuildArgs are emitted in slice order, one --build-arg each.
		BuildArgs []BuildArg
	}

	// RegistryCredentials carries login material for one registry. It is
	// ephemeral: it lives for the duration of a single Login call and is
	// never logged or stored. The password must never appear in any error
	// surfaced by this package.
	RegistryCredentials struct {
		Registry string
		Username string
		Password string
	}
)

// Validate returns an error if the ImageFormat is not one of the defined formats.
func (f ImageFormat) Validate() error {
	switch f {
	case FormatOCI, FormatDocker:
		return nil
	default:
		return &InvalidImageFormatError{Value: f}
	}
}

// String returns the string representation of the ImageFormat.
func (f ImageFormat) String() string { return string(f) }

// Error implements the error interface.
func (e *InvalidImageFormatError) Error() string {
	return fmt.Sprintf("invalid image format %q (valid: oci, docker)", e.Value)
}

// Unwrap returns ErrInvalidImageFormat so callers can use errors.Is for detection.
func (e *InvalidImageFormatError) Unwrap() error { return ErrInvalidImageFormat }

// Validate returns an error if the TLSVerify mode is not one of the defined modes.
// The zero value ("") is valid and means "use the podman default".
func (v TLSVerify) Validate() error {
	switch v {
	case TLSVerifyDefault, TLSVerifyEnabled, TLSVerifyDisabled:
		return nil
	default:
		return &InvalidTLSVerifyError{Value: v}
	}
}

// String returns the string representation of the TLSVerify mode.
func (v TLSVerify) String() string { return string(v) }

// Error implements the error interface.
func (e *InvalidTLSVerifyError) Error() string {
	return fmt.Sprintf("invalid tls-verify mode %q (valid: empty, true, false)", e.Value)
}

// Unwrap returns ErrInvalidTLSVerify so callers can use errors.Is for detection.
func (e *InvalidTLSVerifyError) Unwrap() error { return ErrInvalidTLSVerify }

// Args renders the root-level flags. They are consumed first by every
// command constructor so that global flags always precede the operation.
func (g GlobalOptions) Args() []string {
	var args []string
	if g.ConnectionURI != "" {
		args = append(args, "--url="+g.ConnectionURI)
	}
	if g.Root != "" {
		args = append(args, "--root="+g.Root)
	}
	if g.TLSVerify != TLSVerifyDefault {
		args = append(args, "--tls-verify="+string(g.TLSVerify))
	}
	return args
}

// BinaryOrDefault returns the configured binary, or "podman" when unset.
func (g GlobalOptions) BinaryOrDefault() string {
	if strings.TrimSpace(g.Binary) == "" {
		return "podman"
	}
	return g.Binary
}
