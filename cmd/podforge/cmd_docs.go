// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

// forgefileReference is the rendered `podforge docs` content: the full
// forgefile schema with an example.
const forgefileReference = `# The forgefile

A forgefile (` + "`forgefile.toml`" + `) describes one container image:
how it is built, what it is called, and where it goes.

## Example

` + "```toml" + `
registry = "registry.example.com"

[image]
name          = "team/app"
tags          = ["1.2.3", "latest"]
containerfile = "Containerfile"
format        = "oci"
no_cache      = false
platform      = "linux/amd64"

[[image.args]]
name  = "VERSION"
value = "1.2.3"
` + "```" + `

## Fields

| Field | Meaning |
|---|---|
| ` + "`registry`" + ` | Optional registry prefix for push and login |
| ` + "`image.name`" + ` | Repository path of the image (required) |
| ` + "`image.tags`" + ` | Tags applied after the build (at least one) |
| ` + "`image.containerfile`" + ` | Containerfile to build (default ` + "`Containerfile`" + `) |
| ` + "`image.format`" + ` | ` + "`oci`" + ` (default) or ` + "`docker`" + ` |
| ` + "`image.no_cache`" + ` | Disable build caching |
| ` + "`image.squash`" + ` | Squash newly built layers |
| ` + "`image.squash_all`" + ` | Squash all layers including the base image's |
| ` + "`image.layers`" + ` | Cache intermediate layers (omit to leave up to podman) |
| ` + "`image.pull`" + ` | Pull base images (omit to leave up to podman) |
| ` + "`image.pull_always`" + ` | Always pull base images (omit to leave up to podman) |
| ` + "`image.platform`" + ` | Target platform, e.g. ` + "`linux/arm64`" + ` |
| ` + "`image.args`" + ` | Build arguments, passed in declaration order |

Credentials never live in the forgefile. Put the registry password in the
` + "`PODFORGE_REGISTRY_PASSWORD`" + ` environment variable.
`

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Show the forgefile reference",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := glamour.Render(forgefileReference, "dark")
		if err != nil {
			// Fall back to the raw markdown if the renderer chokes.
			fmt.Print(forgefileReference)
			return nil
		}
		fmt.Print(out)
		return nil
	},
}
