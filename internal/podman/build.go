// SPDX-License-Identifier: MPL-2.0

package podman

import "strconv"

// NewBuildCommand assembles a podman build invocation from a BuildSpec.
// Argument order is fixed and matches the podman grammar: global flags,
// the build operation, its flags, then the Containerfile as the final
// positional argument. Optional tri-state fields emit no flag when unset.
//
// Generated command: <binary> [global flags] build --format <fmt> [flags] <containerfile>
func NewBuildCommand(global GlobalOptions, spec BuildSpec, delegate Delegate) (*Command, error) {
	if err := requireValue("build", "container file", spec.ContainerFile); err != nil {
		return nil, err
	}
	if err := spec.Format.Validate(); err != nil {
		return nil, &ConfigurationError{Op: "build", Field: "format", Reason: err.Error()}
	}

	args := global.Args()
	args = append(args, "build", "--format", string(spec.Format))

	if spec.NoCache {
		args = append(args, "--no-cache")
	}
	if spec.Squash {
		args = append(args, "--squash")
	}
	if spec.SquashAll {
		args = append(args, "--squash-all")
	}
	if spec.Layers != nil {
		args = append(args, "--layers="+strconv.FormatBool(*spec.Layers))
	}
	if spec.Pull != nil {
		args = append(args, "--pull="+strconv.FormatBool(*spec.Pull))
	}
	if spec.PullAlways != nil {
		args = append(args, "--pull-always="+strconv.FormatBool(*spec.PullAlways))
	}
	if spec.Platform != "" {
		args = append(args, "--platform="+spec.Platform)
	}

	// One --build-arg per entry, in caller-supplied order.
	for _, a := range spec.BuildArgs {
		args = append(args, "--build-arg="+a.Name+"="+a.Value)
	}

	args = append(args, spec.ContainerFile)

	return newCommand(global, args, delegate), nil
}

// ImageHash extracts the image identifier from build output: the last
// non-empty line. The second return is false when no such line exists.
func ImageHash(lines []string) (string, bool) {
	for i := len(lines) - 1; i >= 0; i-- {
		if lines[i] != "" {
			return lines[i], true
		}
	}
	return "", false
}
