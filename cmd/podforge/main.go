// SPDX-License-Identifier: MPL-2.0

// podforge builds, tags, saves and pushes container images with podman,
// driven by a declarative forgefile.
package main

func main() {
	Execute()
}
